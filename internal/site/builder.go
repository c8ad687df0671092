package site

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"time"

	"driving-theory-web/internal/config"
	"driving-theory-web/internal/data"
	"driving-theory-web/internal/filter"
	"driving-theory-web/internal/i18n"
	"driving-theory-web/internal/logger"
	"driving-theory-web/internal/refs"
	"driving-theory-web/internal/service"
	"driving-theory-web/internal/slug"
	"driving-theory-web/web"
)

// Builder renders the whole static site into the output directory. The build
// is all-or-nothing: pages are written into a staging directory and swapped
// into place only after every locale has rendered.
type Builder struct {
	cfg     *config.Config
	log     logger.Logger
	content *service.ContentService
	view    renderer
	refs    *refs.Loader
	now     func() time.Time
}

type renderer interface {
	Render(w io.Writer, name string, data map[string]interface{}) error
}

// questionEntry is the per-question view model used on list and detail pages.
type questionEntry struct {
	data.QuestionWithContext
	Path         string
	CategoryPath string
	Tags         []string
}

// categoryEntry is the per-category view model used on home pages.
type categoryEntry struct {
	data.Category
	Path  string
	Count int
}

// NewBuilder creates a Builder.
func NewBuilder(cfg *config.Config, log logger.Logger, content *service.ContentService, v renderer, refsLoader *refs.Loader) *Builder {
	return &Builder{
		cfg:     cfg,
		log:     log,
		content: content,
		view:    v,
		refs:    refsLoader,
		now:     time.Now,
	}
}

// Build generates the complete site. Any failure aborts the build without
// touching an existing output directory.
func (b *Builder) Build(ctx context.Context) error {
	for _, locale := range i18n.All() {
		if err := b.content.VerifyLocale(ctx, locale); err != nil {
			return fmt.Errorf("store verification failed: %w", err)
		}
	}

	staging := b.cfg.Site.OutDir + ".staging"
	if err := os.RemoveAll(staging); err != nil {
		return err
	}
	if err := os.MkdirAll(staging, 0o755); err != nil {
		return err
	}

	if err := b.writePage(staging, "/", "root.html", map[string]interface{}{
		"Target": "/" + string(i18n.Default) + "/",
	}); err != nil {
		return err
	}

	total := 1
	for _, locale := range i18n.All() {
		n, err := b.buildLocale(ctx, staging, locale)
		if err != nil {
			return fmt.Errorf("build failed for locale %s: %w", locale, err)
		}
		total += n
		b.log.With(map[string]interface{}{"locale": locale, "pages": n}).Info("Locale rendered")
	}

	if err := b.writeNotFound(staging); err != nil {
		return err
	}
	if err := b.writeSitemap(ctx, staging); err != nil {
		return err
	}
	if err := b.copyAssets(staging); err != nil {
		return err
	}

	if err := os.RemoveAll(b.cfg.Site.OutDir); err != nil {
		return err
	}
	if err := os.Rename(staging, b.cfg.Site.OutDir); err != nil {
		return err
	}

	b.log.With(map[string]interface{}{"pages": total, "out": b.cfg.Site.OutDir}).Info("Site built")
	return nil
}

func (b *Builder) buildLocale(ctx context.Context, staging string, locale i18n.Locale) (int, error) {
	tr := i18n.T(locale)
	pages := 0

	all, err := b.content.ListAllWithContext(ctx, locale)
	if err != nil {
		return 0, err
	}
	categories, err := b.content.ListCategories(ctx, locale)
	if err != nil {
		return 0, err
	}

	entries := make([]questionEntry, len(all))
	countByCategory := make(map[int64]int)
	for i, q := range all {
		entries[i] = questionEntry{
			QuestionWithContext: q,
			Path:                slug.QuestionPath(locale, q.ID, q.Question.Question),
			CategoryPath:        slug.CategoryPath(locale, q.Category.ID, q.Category.Name),
			Tags:                filter.Tags(q.LicenseCategories),
		}
		countByCategory[q.CategoryID]++
	}

	categoryEntries := make([]categoryEntry, len(categories))
	for i, c := range categories {
		categoryEntries[i] = categoryEntry{
			Category: c,
			Path:     slug.CategoryPath(locale, c.ID, c.Name),
			Count:    countByCategory[c.ID],
		}
	}

	base := map[string]interface{}{
		"Locale": locale, "T": tr, "Locales": i18n.All(),
	}

	// Locale home
	if err := b.writePage(staging, "/"+string(locale)+"/", "home.html", merge(base, map[string]interface{}{
		"Categories":    categoryEntries,
		"QuestionCount": len(entries),
	})); err != nil {
		return pages, err
	}
	pages++

	// Question index with the client-side license filter
	if err := b.writePage(staging, "/"+string(locale)+"/questions/", "questions.html", merge(base, map[string]interface{}{
		"Questions":  entries,
		"FilterTags": filter.ValidTags,
	})); err != nil {
		return pages, err
	}
	pages++

	// Category pages
	for _, c := range categoryEntries {
		inCategory := make([]questionEntry, 0, c.Count)
		for _, q := range entries {
			if q.CategoryID == c.ID {
				inCategory = append(inCategory, q)
			}
		}
		if err := b.writePage(staging, c.Path, "category.html", merge(base, map[string]interface{}{
			"Category":   c,
			"Questions":  inCategory,
			"FilterTags": filter.ValidTags,
		})); err != nil {
			return pages, err
		}
		pages++
	}

	// Question pages with prev/next navigation over the ascending-ID order
	for i, q := range entries {
		pageData := merge(base, map[string]interface{}{
			"Question": q,
			"Correct":  q.Correct(),
		})
		if i > 0 {
			pageData["PrevPath"] = entries[i-1].Path
		}
		if i < len(entries)-1 {
			pageData["NextPath"] = entries[i+1].Path
		}
		if err := b.writePage(staging, q.Path, "question.html", pageData); err != nil {
			return pages, err
		}
		pages++
	}

	// Reference documents
	for _, id := range refs.Pages {
		body, err := b.refs.Body(id)
		if err != nil {
			return pages, err
		}
		body = refs.RewriteLinks(body, locale)
		if err := b.writePage(staging, "/"+string(locale)+"/references/"+id+"/", "reference.html", merge(base, map[string]interface{}{
			"Title": refs.Title(id),
			"Body":  template.HTML(body),
		})); err != nil {
			return pages, err
		}
		pages++
	}

	// Legal pages
	for _, doc := range []struct{ id, title string }{
		{LegalTerms, tr.Terms},
		{LegalPrivacy, tr.Privacy},
	} {
		body, err := renderLegal(web.ContentFS, doc.id, locale)
		if err != nil {
			return pages, err
		}
		if err := b.writePage(staging, "/"+string(locale)+"/"+doc.id+"/", "legal.html", merge(base, map[string]interface{}{
			"Title": doc.title,
			"Body":  body,
		})); err != nil {
			return pages, err
		}
		pages++
	}

	return pages, nil
}

// writePage renders one template into <staging><path>index.html.
func (b *Builder) writePage(staging, path, tmpl string, pageData map[string]interface{}) error {
	dir := filepath.Join(staging, filepath.FromSlash(path))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(dir, "index.html"))
	if err != nil {
		return err
	}
	defer f.Close()

	if pageData == nil {
		pageData = map[string]interface{}{}
	}
	pageData["Path"] = path
	pageData["BaseURL"] = b.cfg.Site.BaseURL

	if err := b.view.Render(f, tmpl, pageData); err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	return f.Close()
}

func (b *Builder) writeNotFound(staging string) error {
	f, err := os.Create(filepath.Join(staging, "404.html"))
	if err != nil {
		return err
	}
	defer f.Close()
	pageData := map[string]interface{}{
		"Locale": i18n.Default, "T": i18n.T(i18n.Default), "Locales": i18n.All(),
		"Path": "/404.html", "BaseURL": b.cfg.Site.BaseURL,
	}
	if err := b.view.Render(f, "404.html", pageData); err != nil {
		return err
	}
	return f.Close()
}

func (b *Builder) writeSitemap(ctx context.Context, staging string) error {
	routes, err := NewEnumerator(b.content).Enumerate(ctx)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(staging, "sitemap.xml"))
	if err != nil {
		return err
	}
	defer f.Close()
	if err := WriteSitemap(f, b.cfg.Site.BaseURL, routes, b.now()); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	rf, err := os.Create(filepath.Join(staging, "robots.txt"))
	if err != nil {
		return err
	}
	defer rf.Close()
	if err := WriteRobots(rf, b.cfg.Site.BaseURL); err != nil {
		return err
	}
	return rf.Close()
}

func (b *Builder) copyAssets(staging string) error {
	if err := os.CopyFS(staging, web.StaticFS); err != nil {
		return fmt.Errorf("failed to copy static assets: %w", err)
	}
	if b.cfg.Site.MediaDir != "" {
		if err := os.CopyFS(filepath.Join(staging, "media"), os.DirFS(b.cfg.Site.MediaDir)); err != nil {
			return fmt.Errorf("failed to copy media: %w", err)
		}
	}
	return nil
}

func merge(base, extra map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
