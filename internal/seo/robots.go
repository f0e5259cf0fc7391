// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package seo

import (
	"fmt"
	"strings"
)

// Robots renders the robots.txt policy. The admin surface, uploaded media
// and the JSON API are disallowed; the five public pages are explicitly
// allowed so crawlers prioritise them.
func Robots(baseURL string) []byte {
	base := strings.TrimRight(baseURL, "/")

	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("\n")
	b.WriteString("# Sitemap\n")
	fmt.Fprintf(&b, "Sitemap: %s/sitemap.xml\n", base)
	b.WriteString("\n")
	b.WriteString("# Disallow admin and private areas\n")
	b.WriteString("Disallow: /admin/\n")
	b.WriteString("Disallow: /static/admin/\n")
	b.WriteString("Disallow: /media/\n")
	b.WriteString("Disallow: /api/\n")
	b.WriteString("\n")
	b.WriteString("# Allow important pages\n")
	b.WriteString("Allow: /about/\n")
	b.WriteString("Allow: /services/\n")
	b.WriteString("Allow: /portfolio/\n")
	b.WriteString("Allow: /contact/\n")
	b.WriteString("\n")
	b.WriteString("# Crawl delay (optional)\n")
	b.WriteString("Crawl-delay: 1\n")

	return []byte(b.String())
}
