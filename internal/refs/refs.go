// Package refs handles the pre-rendered traffic-regulation reference
// documents: a closed vocabulary of identifiers, body extraction from the
// full HTML files, link rewriting into site routes, and sanitization.
package refs

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"driving-theory-web/internal/cache"
	"driving-theory-web/internal/i18n"

	"github.com/microcosm-cc/bluemonday"
)

// Pages is the closed vocabulary of reference-document identifiers, in
// enumeration order. New documents are appended by the authoring pipeline;
// identifiers never change.
var Pages = []string{
	"kierowanie_ruchem",
	"kodeks1", "kodeks2", "kodeks3", "kodeks4", "kodeks5",
	"kodeks6", "kodeks7", "kodeks8", "kodeks9", "kodeks10",
	"kodeks11", "kodeks12", "kodeks13", "kodeks14", "kodeks15",
	"kodeks16", "kodeks17", "kodeks18", "kodeks19", "kodeks20",
	"kodeks21", "kodeks22", "kodeks23", "kodeks24", "kodeks25", "kodeks26",
	"przepisy_ogolne",
	"sygnaly_swietlne",
	"znaki_drogowe_poziome",
	"znaki_informacyjne",
	"znaki_inne",
	"znaki_kierunku_miejscowosci",
	"znaki_kolejowe",
	"znaki_nakazu",
	"znaki_ostrzegawcze",
	"znaki_uzupelniajace",
	"znaki_zakazu",
}

var titles = map[string]string{
	"kierowanie_ruchem":           "Kierowanie ruchem",
	"przepisy_ogolne":             "Przepisy ogólne",
	"sygnaly_swietlne":            "Sygnały świetlne",
	"znaki_drogowe_poziome":       "Znaki drogowe poziome",
	"znaki_informacyjne":          "Znaki informacyjne",
	"znaki_inne":                  "Znaki inne",
	"znaki_kierunku_miejscowosci": "Znaki kierunku i miejscowości",
	"znaki_kolejowe":              "Znaki kolejowe",
	"znaki_nakazu":                "Znaki nakazu",
	"znaki_ostrzegawcze":          "Znaki ostrzegawcze",
	"znaki_uzupelniajace":         "Znaki uzupełniające",
	"znaki_zakazu":                "Znaki zakazu",
}

func init() {
	for i := 1; i <= 26; i++ {
		titles[fmt.Sprintf("kodeks%d", i)] = fmt.Sprintf("Kodeks drogowy - Część %d", i)
	}
}

// IsValid reports whether id belongs to the vocabulary.
func IsValid(id string) bool {
	_, ok := titles[id]
	return ok
}

// Title returns the display title of a document, or the identifier itself
// for an unknown id.
func Title(id string) string {
	if t, ok := titles[id]; ok {
		return t
	}
	return id
}

var (
	bodyPattern = regexp.MustCompile(`(?is)<body[^>]*>(.*)</body>`)
	linkPattern = regexp.MustCompile(`(?i)href="([a-z0-9_]+)\.html(#[a-z0-9.]+)?"`)
)

// ExtractBody pulls the body fragment out of a full HTML document. Documents
// without a body tag are returned whole.
func ExtractBody(html string) string {
	if m := bodyPattern.FindStringSubmatch(html); m != nil {
		return m[1]
	}
	return html
}

// RewriteLinks converts document-relative links like
// href="znaki_zakazu.html#b23" into site routes under the given locale.
func RewriteLinks(html string, locale i18n.Locale) string {
	return linkPattern.ReplaceAllStringFunc(html, func(match string) string {
		m := linkPattern.FindStringSubmatch(match)
		return fmt.Sprintf(`href="/%s/references/%s/%s"`, locale, m[1], m[2])
	})
}

// Loader reads, extracts and sanitizes reference documents from a directory,
// memoizing processed bodies in the build cache keyed by content hash.
type Loader struct {
	dir       string
	cache     *cache.Cache
	sanitizer *bluemonday.Policy
}

// NewLoader creates a Loader. cache may be nil to disable caching.
func NewLoader(dir string, c *cache.Cache) *Loader {
	sanitizer := bluemonday.UGCPolicy()
	sanitizer.AllowAttrs("id").Globally()
	sanitizer.AllowAttrs("class").Globally()
	return &Loader{dir: dir, cache: c, sanitizer: sanitizer}
}

// Body returns the sanitized body fragment of a document. Links are still in
// their source form; callers rewrite them per locale with RewriteLinks.
func (l *Loader) Body(id string) (string, error) {
	if !IsValid(id) {
		return "", fmt.Errorf("unknown reference document %q", id)
	}

	raw, err := os.ReadFile(filepath.Join(l.dir, id+".html"))
	if err != nil {
		return "", fmt.Errorf("failed to read reference document %s: %w", id, err)
	}

	key := cacheKey(id, raw)
	if l.cache != nil {
		if hit, err := l.cache.Get(key); err == nil && hit != nil {
			return string(hit), nil
		}
	}

	body := l.sanitizer.Sanitize(ExtractBody(string(raw)))

	if l.cache != nil {
		if err := l.cache.Set(key, []byte(body)); err != nil {
			return "", err
		}
	}
	return body, nil
}

func cacheKey(id string, raw []byte) string {
	sum := sha256.Sum256(raw)
	return "refs:" + id + ":" + hex.EncodeToString(sum[:])
}
