package site

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"
)

const sitemapDateFormat = "2006-01-02"

type sitemapURL struct {
	XMLName    xml.Name `xml:"url"`
	Loc        string   `xml:"loc"`
	LastMod    string   `xml:"lastmod"`
	ChangeFreq string   `xml:"changefreq"`
	Priority   float64  `xml:"priority"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// WriteSitemap emits the sitemap XML for the given routes. Route order is
// preserved, so an unchanged route list produces a byte-identical document.
func WriteSitemap(w io.Writer, baseURL string, routes []Route, lastMod time.Time) error {
	base := strings.TrimRight(baseURL, "/")

	sitemap := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]sitemapURL, len(routes)),
	}
	for i, route := range routes {
		sitemap.URLs[i] = sitemapURL{
			Loc:        base + route.Path,
			LastMod:    lastMod.Format(sitemapDateFormat),
			ChangeFreq: route.ChangeFreq,
			Priority:   route.Priority,
		}
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")
	if err := encoder.Encode(sitemap); err != nil {
		return fmt.Errorf("failed to generate sitemap XML: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// WriteRobots emits robots.txt pointing crawlers at the sitemap.
func WriteRobots(w io.Writer, baseURL string) error {
	base := strings.TrimRight(baseURL, "/")
	_, err := fmt.Fprintf(w, "User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", base)
	return err
}
