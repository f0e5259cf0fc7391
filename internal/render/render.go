// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public site.
// Every page template is paired with the base layout, which carries the
// shared header, navigation, footer and the language direction switch.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"path/filepath"

	"royalsite/internal/markdown"
	"royalsite/internal/models"
)

//go:embed templates/site/*.html
var siteFS embed.FS

// PageData holds all data passed to site templates.
type PageData struct {
	Title   string              // Page title for <title> tag
	Page    models.PageKey      // Active navigation entry
	Lang    models.Lang         // Requested language, drives text and direction
	Company *models.CompanyInfo // Footer and contact details (nil until loaded)
	Content *models.PageContent // Editable hero/intro copy for this page
	Data    map[string]any      // Page-specific data
}

// Dir returns the HTML text direction for the requested language.
func (d *PageData) Dir() string {
	if d.Lang == models.LangArabic {
		return "rtl"
	}
	return "ltr"
}

// Renderer handles template parsing and execution for site pages.
type Renderer struct {
	templates map[string]*template.Template
	funcMap   template.FuncMap
}

// New creates a Renderer by parsing all site templates from the embedded
// filesystem. Each page template is paired with the base layout.
// When devMode is true, templates use CDN-hosted TailwindCSS; when false,
// they reference the compiled local stylesheet.
func New(devMode bool) (*Renderer, error) {
	r := &Renderer{
		templates: make(map[string]*template.Template),
		funcMap: template.FuncMap{
			// loc resolves a bilingual field for the requested language.
			"loc": func(l models.Localized, lang models.Lang) string {
				return l.In(lang)
			},
			// markdown renders trusted admin-authored copy to HTML.
			"markdown": func(src string) template.HTML {
				out, err := markdown.ToHTML(src)
				if err != nil {
					return ""
				}
				return template.HTML(out)
			},
			"activeClass": func(current models.PageKey, target string) string {
				if string(current) == target {
					return "text-amber-600 font-semibold"
				}
				return "text-gray-700 hover:text-amber-600"
			},
			// isDev returns true when the app runs in development mode.
			// Used by templates to conditionally load CDN vs local assets.
			"isDev": func() bool {
				return devMode
			},
			// otherLang returns the language the switcher links to.
			"otherLang": func(lang models.Lang) models.Lang {
				if lang == models.LangArabic {
					return models.LangEnglish
				}
				return models.LangArabic
			},
		},
	}

	entries, err := siteFS.ReadDir("templates/site")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}

	// Parse each page template paired with the base layout.
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == "base.html" {
			continue
		}

		tmplName := name[:len(name)-len(filepath.Ext(name))]

		tmpl, parseErr := template.New("base.html").Funcs(r.funcMap).ParseFS(
			siteFS, "templates/site/base.html", "templates/site/"+name,
		)
		if parseErr != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, parseErr)
		}

		r.templates[tmplName] = tmpl
	}

	return r, nil
}

// Page renders a full site page through the base layout.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	tmpl, ok := rn.templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := executeTemplate(w, tmpl, "base.html", data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// executeTemplate wraps template execution with error handling.
func executeTemplate(w io.Writer, tmpl *template.Template, name string, data any) error {
	return tmpl.ExecuteTemplate(w, name, data)
}
