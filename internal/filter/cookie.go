package filter

import (
	"encoding/json"
	"net/url"
)

// CookieName is the client-side cookie holding the selected capability tags.
// The value is a URL-encoded JSON array, readable by the static pages'
// JavaScript without any server involvement.
const CookieName = "license_categories"

// EncodeCookie serializes a tag selection into the cookie value format.
// Unknown tags are dropped so the cookie only ever carries the closed set.
func EncodeCookie(tags []string) string {
	valid := make([]string, 0, len(tags))
	for _, t := range tags {
		if IsValidTag(t) {
			valid = append(valid, t)
		}
	}
	raw, err := json.Marshal(valid)
	if err != nil {
		// A string slice cannot fail to marshal.
		return "%5B%5D"
	}
	return url.QueryEscape(string(raw))
}

// DecodeCookie parses a cookie value back into a tag selection. Any
// malformed value decodes to the empty, unfiltered selection; a broken
// cookie must never break the page.
func DecodeCookie(value string) []string {
	if value == "" {
		return nil
	}
	raw, err := url.QueryUnescape(value)
	if err != nil {
		return nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil
	}
	valid := make([]string, 0, len(tags))
	for _, t := range tags {
		if IsValidTag(t) {
			valid = append(valid, t)
		}
	}
	if len(valid) == 0 {
		return nil
	}
	return valid
}
