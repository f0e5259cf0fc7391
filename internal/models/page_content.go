// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// PageKey identifies one of the five public pages.
type PageKey string

const (
	PageHome      PageKey = "home"
	PageAbout     PageKey = "about"
	PageServices  PageKey = "services"
	PagePortfolio PageKey = "portfolio"
	PageContact   PageKey = "contact"
)

// PageKeys lists every page key in navigation order.
var PageKeys = []PageKey{PageHome, PageAbout, PageServices, PagePortfolio, PageContact}

// ValidPageKey reports whether s names one of the five public pages.
func ValidPageKey(s string) bool {
	switch PageKey(s) {
	case PageHome, PageAbout, PageServices, PagePortfolio, PageContact:
		return true
	}
	return false
}

// PageContent is the admin-authored copy for one public page: hero title,
// subtitle, body (Markdown) and SEO meta description. At most one row per
// page key. A missing row is not an error — the page renders with
// zero-value defaults.
type PageContent struct {
	ID              uuid.UUID `json:"id"`
	Page            PageKey   `json:"page"`
	Title           Localized `json:"title"`
	Subtitle        Localized `json:"subtitle"`
	Content         Localized `json:"content"` // Markdown source
	MetaDescription Localized `json:"meta_description"`
	UpdatedAt       time.Time `json:"updated_at"`
}
