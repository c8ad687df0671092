package site

import (
	"context"

	"driving-theory-web/internal/i18n"
	"driving-theory-web/internal/refs"
	"driving-theory-web/internal/service"
	"driving-theory-web/internal/slug"
)

// Route is one emitted static page.
type Route struct {
	// Locale is empty for locale-independent routes such as the root.
	Locale     i18n.Locale
	Path       string
	ChangeFreq string
	Priority   float64
}

// Enumerator produces the exhaustive route list for the static build and the
// sitemap. The output is a deterministic, total function of the store
// contents: locales in canonical order, entities in ascending-ID order.
type Enumerator struct {
	content *service.ContentService
}

// NewEnumerator creates an Enumerator over the given content service.
func NewEnumerator(content *service.ContentService) *Enumerator {
	return &Enumerator{content: content}
}

// Enumerate returns every route of the site in its canonical order.
func (e *Enumerator) Enumerate(ctx context.Context) ([]Route, error) {
	routes := []Route{
		{Path: "/", ChangeFreq: "weekly", Priority: 1.0},
	}

	for _, locale := range i18n.All() {
		routes = append(routes,
			Route{Locale: locale, Path: "/" + string(locale) + "/", ChangeFreq: "weekly", Priority: 0.9},
			Route{Locale: locale, Path: "/" + string(locale) + "/questions/", ChangeFreq: "weekly", Priority: 0.8},
		)

		categories, err := e.content.ListCategories(ctx, locale)
		if err != nil {
			return nil, err
		}
		for _, c := range categories {
			routes = append(routes, Route{
				Locale:     locale,
				Path:       slug.CategoryPath(locale, c.ID, c.Name),
				ChangeFreq: "monthly",
				Priority:   0.7,
			})
		}

		questions, err := e.content.ListQuestions(ctx, locale)
		if err != nil {
			return nil, err
		}
		for _, q := range questions {
			routes = append(routes, Route{
				Locale:     locale,
				Path:       slug.QuestionPath(locale, q.ID, q.Question),
				ChangeFreq: "monthly",
				Priority:   0.6,
			})
		}

		for _, page := range refs.Pages {
			routes = append(routes, Route{
				Locale:     locale,
				Path:       "/" + string(locale) + "/references/" + page + "/",
				ChangeFreq: "monthly",
				Priority:   0.5,
			})
		}

		routes = append(routes,
			Route{Locale: locale, Path: "/" + string(locale) + "/terms/", ChangeFreq: "yearly", Priority: 0.3},
			Route{Locale: locale, Path: "/" + string(locale) + "/privacy/", ChangeFreq: "yearly", Priority: 0.3},
		)
	}

	return routes, nil
}
