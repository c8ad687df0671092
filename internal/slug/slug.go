package slug

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"driving-theory-web/internal/i18n"
)

// ErrInvalidFormat is returned when a slug does not start with a numeric ID
// followed by a hyphen.
var ErrInvalidFormat = errors.New("invalid slug format")

// maxTextLength bounds the derived-text portion of a slug.
const maxTextLength = 70

// boundaryCutoff is the earliest position at which a hyphen boundary is
// preferred over a hard cut when truncating (70 * 0.7).
const boundaryCutoff = 49

// removeSet contains punctuation that is stripped outright during
// normalization instead of being turned into a separator.
const removeSet = `*+~.()'"!:@`

// translit maps non-ASCII characters of the supported locales to their Latin
// replacements. The table is a compatibility contract: previously published
// URLs embed its output, so entries must never change, only grow.
var translit = map[rune]string{
	// Polish
	'ą': "a", 'ć': "c", 'ę': "e", 'ł': "l", 'ń': "n",
	'ó': "o", 'ś': "s", 'ź': "z", 'ż': "z",
	// German
	'ä': "a", 'ö': "o", 'ü': "u", 'ß': "ss",
	// Cyrillic, Ukrainian variant
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'ґ': "g", 'д': "d",
	'е': "e", 'є': "ye", 'ж': "zh", 'з': "z", 'и': "i", 'і': "i",
	'ї': "yi", 'й': "j", 'к': "k", 'л': "l", 'м': "m", 'н': "n",
	'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "h", 'ц': "c", 'ч': "ch", 'ш': "sh", 'щ': "sh",
	'ь': "", 'ю': "yu", 'я': "ya", 'ъ': "u", 'ы': "y", 'э': "e",
}

// Encode builds the canonical slug for an entity: the numeric ID, a hyphen,
// and a lossy URL-safe rendition of text. The ID prefix is the only part
// consumers may rely on; the text suffix is an SEO hint and may go stale.
func Encode(id int64, text string) string {
	return strconv.FormatInt(id, 10) + "-" + normalize(text)
}

// DecodeID extracts the numeric ID from a slug of the form "<id>-<text>".
// The text suffix is ignored entirely, so stale or altered suffixes still
// resolve. Anything without a leading digit run followed by a hyphen fails
// with ErrInvalidFormat.
func DecodeID(s string) (int64, error) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(s) || s[i] != '-' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	id, err := strconv.ParseInt(s[:i], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return id, nil
}

// normalize lowercases, transliterates and strips text down to [a-z0-9-],
// then truncates the result to maxTextLength.
func normalize(text string) string {
	lower := strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(lower))
	hyphen := false
	for _, r := range lower {
		if strings.ContainsRune(removeSet, r) {
			continue
		}
		if rep, ok := translit[r]; ok {
			if rep != "" {
				b.WriteString(rep)
				hyphen = false
			}
			continue
		}
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			hyphen = false
		case r == '-' || r == '_' || r == '/' || unicode.IsSpace(r):
			// Separator; collapse runs and never lead with one.
			if b.Len() > 0 && !hyphen {
				b.WriteByte('-')
				hyphen = true
			}
		default:
			// Anything unmapped is dropped.
		}
	}

	return truncate(strings.TrimRight(b.String(), "-"))
}

// truncate bounds s to maxTextLength bytes (the input is ASCII by
// construction). A hard cut is softened to the last hyphen boundary when one
// exists at or after boundaryCutoff, so words are not cut mid-way unless the
// leading word itself is overlong.
func truncate(s string) string {
	if len(s) <= maxTextLength {
		return s
	}
	cut := s[:maxTextLength]
	if i := strings.LastIndexByte(cut, '-'); i >= boundaryCutoff {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, "-")
}

// QuestionPath returns the canonical route for a question page.
func QuestionPath(locale i18n.Locale, id int64, questionText string) string {
	return "/" + string(locale) + "/questions/" + Encode(id, questionText) + "/"
}

// CategoryPath returns the canonical route for a category page.
func CategoryPath(locale i18n.Locale, id int64, categoryName string) string {
	return "/" + string(locale) + "/categories/" + Encode(id, categoryName) + "/"
}
