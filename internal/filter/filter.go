// Package filter implements the license-category question filter. The same
// predicate runs in the browser (web/static/js/filter.js reads the cookie and
// toggles visibility); this package is the reference implementation used at
// build time and in tests.
package filter

import "strings"

// ValidTags is the closed set of license-category capability tags.
var ValidTags = []string{"A", "B", "C", "D", "T", "AM", "PT"}

// IsValidTag reports whether tag is a known capability tag.
func IsValidTag(tag string) bool {
	for _, t := range ValidTags {
		if t == tag {
			return true
		}
	}
	return false
}

// Tags parses a question's comma-separated license_categories value into a
// trimmed list. A nil or empty value yields nil.
func Tags(licenseCategories *string) []string {
	if licenseCategories == nil || *licenseCategories == "" {
		return nil
	}
	parts := strings.Split(*licenseCategories, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}

// Matches reports whether a question with the given license_categories value
// passes the user's selection. An empty selection matches every question;
// otherwise the question matches iff any of its tags is selected. A question
// without tags never matches a non-empty selection.
func Matches(licenseCategories *string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, tag := range Tags(licenseCategories) {
		for _, s := range selected {
			if tag == s {
				return true
			}
		}
	}
	return false
}

// Tagged is anything carrying a license_categories value.
type Tagged interface {
	LicenseTags() *string
}

// Apply filters a slice down to the elements matching the selection.
func Apply[T Tagged](items []T, selected []string) []T {
	if len(selected) == 0 {
		return items
	}
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if Matches(item.LicenseTags(), selected) {
			kept = append(kept, item)
		}
	}
	return kept
}
