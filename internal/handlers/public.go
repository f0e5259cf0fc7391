// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the site. Handlers are
// grouped by concern (public, contact, auth, admin API) and receive their
// dependencies through the handler struct.
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"royalsite/internal/models"
	"royalsite/internal/render"
	"royalsite/internal/seo"
	"royalsite/internal/store"
)

// Public groups handlers for the five public pages plus the crawler
// endpoints. Every page loads the company profile and its editable copy;
// the rest of the data depends on the page.
type Public struct {
	renderer       *render.Renderer
	pageContents   *store.PageContentStore
	company        *store.CompanyStore
	statistics     *store.StatisticsStore
	services       *store.ServiceStore
	projects       *store.ProjectStore
	team           *store.TeamStore
	testimonials   *store.TestimonialStore
	whyChooseUs    *store.WhyChooseUsStore
	certifications *store.CertificationStore
	faqs           *store.FAQStore
	baseURL        string
}

// NewPublic creates a new Public handler group. baseURL is the absolute
// site URL used in the sitemap and robots output.
func NewPublic(renderer *render.Renderer, pageContents *store.PageContentStore, company *store.CompanyStore, statistics *store.StatisticsStore, services *store.ServiceStore, projects *store.ProjectStore, team *store.TeamStore, testimonials *store.TestimonialStore, whyChooseUs *store.WhyChooseUsStore, certifications *store.CertificationStore, faqs *store.FAQStore, baseURL string) *Public {
	return &Public{
		renderer:       renderer,
		pageContents:   pageContents,
		company:        company,
		statistics:     statistics,
		services:       services,
		projects:       projects,
		team:           team,
		testimonials:   testimonials,
		whyChooseUs:    whyChooseUs,
		certifications: certifications,
		faqs:           faqs,
		baseURL:        baseURL,
	}
}

// homePreviewCount limits the homepage preview sections.
const homePreviewCount = 3

// langCookie remembers the visitor's language choice across pages.
const langCookie = "rs_lang"

// resolveLang picks the page language: an explicit lang query wins and is
// persisted in a cookie, otherwise the cookie applies, otherwise English.
func resolveLang(w http.ResponseWriter, r *http.Request) models.Lang {
	if raw := r.URL.Query().Get("lang"); raw != "" {
		lang := models.ParseLang(raw)
		http.SetCookie(w, &http.Cookie{
			Name:     langCookie,
			Value:    string(lang),
			Path:     "/",
			MaxAge:   365 * 24 * 60 * 60,
			SameSite: http.SameSiteLaxMode,
		})
		return lang
	}
	if cookie, err := r.Cookie(langCookie); err == nil {
		return models.ParseLang(cookie.Value)
	}
	return models.LangEnglish
}

// pageData assembles the shared layout data for one public page: the
// requested language, the company profile and the page's editable copy.
// A missing page_contents row is fine — the template falls back to
// zero values.
func (p *Public) pageData(w http.ResponseWriter, r *http.Request, page models.PageKey, fallbackTitle string) *render.PageData {
	lang := resolveLang(w, r)

	company, err := p.company.Get()
	if err != nil {
		slog.Error("load company info failed", "error", err)
	}

	content, err := p.pageContents.Find(page)
	if err != nil {
		slog.Error("load page content failed", "error", err, "page", page)
	}

	title := fallbackTitle
	if content != nil && !content.Title.IsZero() {
		title = content.Title.In(lang)
	}

	return &render.PageData{
		Title:   title,
		Page:    page,
		Lang:    lang,
		Company: company,
		Content: content,
		Data:    map[string]any{},
	}
}

// Home renders the homepage: hero copy, the statistics block, and
// three-item previews of services, featured projects and testimonials.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	data := p.pageData(w, r, models.PageHome, "Home")

	stats, err := p.statistics.Get()
	if err != nil {
		slog.Error("load statistics failed", "error", err)
	}
	if stats != nil {
		data.Data["Statistics"] = stats
	}

	services, err := p.services.ListActive(homePreviewCount)
	if err != nil {
		slog.Error("list services failed", "error", err)
	}
	data.Data["Services"] = services

	featured, err := p.projects.ListFeatured(homePreviewCount)
	if err != nil {
		slog.Error("list featured projects failed", "error", err)
	}
	data.Data["FeaturedProjects"] = featured

	testimonials, err := p.testimonials.ListActive(homePreviewCount)
	if err != nil {
		slog.Error("list testimonials failed", "error", err)
	}
	data.Data["Testimonials"] = testimonials

	why, err := p.whyChooseUs.ListActive()
	if err != nil {
		slog.Error("list why-choose-us failed", "error", err)
	}
	data.Data["WhyChooseUs"] = why

	certs, err := p.certifications.ListActive()
	if err != nil {
		slog.Error("list certifications failed", "error", err)
	}
	data.Data["Certifications"] = certs

	p.renderer.Page(w, r, "home", data)
}

// About renders the about page: the company story, statistics, the team,
// testimonials and certifications.
func (p *Public) About(w http.ResponseWriter, r *http.Request) {
	data := p.pageData(w, r, models.PageAbout, "About Us")

	stats, err := p.statistics.Get()
	if err != nil {
		slog.Error("load statistics failed", "error", err)
	}
	if stats != nil {
		data.Data["Statistics"] = stats
	}

	team, err := p.team.ListActive()
	if err != nil {
		slog.Error("list team failed", "error", err)
	}
	data.Data["Team"] = team

	testimonials, err := p.testimonials.ListActive(0)
	if err != nil {
		slog.Error("list testimonials failed", "error", err)
	}
	data.Data["Testimonials"] = testimonials

	certs, err := p.certifications.ListActive()
	if err != nil {
		slog.Error("list certifications failed", "error", err)
	}
	data.Data["Certifications"] = certs

	p.renderer.Page(w, r, "about", data)
}

// Services renders the full services listing with the FAQ section.
// An optional faq_category query narrows the FAQ list; unknown values
// fall back to all categories.
func (p *Public) Services(w http.ResponseWriter, r *http.Request) {
	data := p.pageData(w, r, models.PageServices, "Our Services")

	services, err := p.services.ListActive(0)
	if err != nil {
		slog.Error("list services failed", "error", err)
	}
	data.Data["Services"] = services

	category := r.URL.Query().Get("faq_category")
	if !models.ValidFAQCategory(category) {
		category = ""
	}
	faqs, err := p.faqs.ListActive(category)
	if err != nil {
		slog.Error("list faqs failed", "error", err)
	}
	data.Data["FAQs"] = faqs

	p.renderer.Page(w, r, "services", data)
}

// Portfolio renders the project gallery: an optional category filter, a
// fixed page size of nine, and an optional single-project detail selected
// with the project query parameter.
func (p *Public) Portfolio(w http.ResponseWriter, r *http.Request) {
	data := p.pageData(w, r, models.PagePortfolio, "Our Work")
	q := r.URL.Query()

	// Unknown categories fall back to the unfiltered gallery.
	category := q.Get("category")
	if !models.ValidCategory(category) {
		category = ""
	}
	data.Data["Category"] = models.ProjectCategory(category)
	data.Data["Categories"] = models.ProjectCategories

	page, _ := strconv.Atoi(q.Get("page"))
	projects, pagination, err := p.projects.ListActivePaged(category, page)
	if err != nil {
		slog.Error("list projects failed", "error", err)
	}
	data.Data["Projects"] = projects
	data.Data["Pagination"] = pagination

	// Project detail, shown above the gallery. Hidden projects are not
	// reachable through their direct URL either.
	if rawID := q.Get("project"); rawID != "" {
		if id, err := uuid.Parse(rawID); err == nil {
			project, err := p.projects.FindByID(id)
			if err != nil {
				slog.Error("find project failed", "error", err, "id", id)
			}
			if project != nil && project.IsActive {
				data.Data["Project"] = project
			}
		}
	}

	p.renderer.Page(w, r, "portfolio", data)
}

// ContactPage renders the contact form and company details. A sent=1
// query shows the post-submit confirmation (the form handler redirects
// here after a successful submission).
func (p *Public) ContactPage(w http.ResponseWriter, r *http.Request) {
	data := p.pageData(w, r, models.PageContact, "Contact Us")
	data.Data["Sent"] = r.URL.Query().Get("sent") == "1"
	for _, field := range contactFormFields {
		data.Data[field] = ""
	}
	p.renderer.Page(w, r, "contact", data)
}

// Sitemap serves the crawler sitemap: the five public pages plus every
// active project.
func (p *Public) Sitemap(w http.ResponseWriter, r *http.Request) {
	projects, err := p.projects.ListActive()
	if err != nil {
		slog.Error("list projects for sitemap failed", "error", err)
	}

	body, err := seo.Sitemap(p.baseURL, projects, time.Now())
	if err != nil {
		slog.Error("render sitemap failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml")
	w.Write(body)
}

// Robots serves the robots.txt policy.
func (p *Public) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write(seo.Robots(p.baseURL))
}
