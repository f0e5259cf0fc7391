// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package seo generates the sitemap and robots policy for crawlers. Both
// are pure functions of the current data and the configured base URL,
// regenerated per request rather than persisted.
package seo

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"royalsite/internal/models"
)

// sitemapEntry is one <url> element in the sitemap.
type sitemapEntry struct {
	XMLName    xml.Name `xml:"url"`
	Loc        string   `xml:"loc"`
	LastMod    string   `xml:"lastmod"`
	ChangeFreq string   `xml:"changefreq"`
	Priority   string   `xml:"priority"`
}

// urlSet is the sitemap root element.
type urlSet struct {
	XMLName xml.Name       `xml:"urlset"`
	XMLNS   string         `xml:"xmlns,attr"`
	URLs    []sitemapEntry `xml:"url"`
}

// staticRoute carries the fixed crawl metadata for one public page.
type staticRoute struct {
	path       string
	priority   string
	changeFreq string
}

// staticRoutes lists the five public pages in sitemap order.
var staticRoutes = []staticRoute{
	{"", "1.0", "daily"},
	{"about/", "0.8", "monthly"},
	{"services/", "0.9", "weekly"},
	{"portfolio/", "0.9", "weekly"},
	{"contact/", "0.7", "monthly"},
}

// Sitemap renders the sitemap XML: one entry per static route, stamped
// with today's date, plus one entry per active project, stamped with the
// project's last update. Inactive projects are absent.
func Sitemap(baseURL string, projects []models.Project, now time.Time) ([]byte, error) {
	base := strings.TrimRight(baseURL, "/") + "/"
	today := now.Format("2006-01-02")

	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, route := range staticRoutes {
		set.URLs = append(set.URLs, sitemapEntry{
			Loc:        base + route.path,
			LastMod:    today,
			ChangeFreq: route.changeFreq,
			Priority:   route.priority,
		})
	}

	for _, p := range projects {
		if !p.IsActive {
			continue
		}
		set.URLs = append(set.URLs, sitemapEntry{
			Loc:        fmt.Sprintf("%sportfolio/?project=%s", base, p.ID),
			LastMod:    p.UpdatedAt.Format("2006-01-02"),
			ChangeFreq: "monthly",
			Priority:   "0.6",
		})
	}

	body, err := xml.MarshalIndent(set, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("marshal sitemap: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}
