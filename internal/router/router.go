// Package router sets up all HTTP routes and middleware chains for the
// site. It organizes routes into public and admin API groups with
// appropriate middleware stacks.
package router

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"royalsite/internal/handlers"
	"royalsite/internal/middleware"
	"royalsite/internal/session"
	"royalsite/web"
)

// contactRateLimit allows a handful of form submissions per minute per IP;
// browsing is never limited.
const (
	contactRateLimit  = 5
	contactRateWindow = time.Minute
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(sessionStore *session.Store, public *handlers.Public, contact *handlers.Contact, admin *handlers.Admin, auth *handlers.Auth, media *handlers.Media, secureCookies bool) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check — no auth, no CSRF.
	r.Get("/health", healthHandler)

	// Crawler endpoints.
	r.Get("/sitemap.xml", public.Sitemap)
	r.Get("/robots.txt", public.Robots)

	// Embedded static assets (compiled CSS).
	staticFS, _ := fs.Sub(web.StaticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// Public pages. Both spellings resolve so shared links keep working.
	pages := map[string]http.HandlerFunc{
		"/":           public.Home,
		"/about/":     public.About,
		"/services/":  public.Services,
		"/portfolio/": public.Portfolio,
		"/contact/":   public.ContactPage,
	}
	for path, h := range pages {
		r.Get(path, h)
		if path != "/" {
			r.Get(path[:len(path)-1], h)
		}
	}

	// Contact form intake — rate limited per IP.
	contactLimiter := middleware.NewRateLimiter(contactRateLimit, contactRateWindow)
	r.Group(func(r chi.Router) {
		r.Use(contactLimiter.Middleware)
		r.Post("/contact/", contact.Submit)
		r.Post("/contact", contact.Submit)
	})

	// Admin JSON API — CSRF protected, session authenticated.
	r.Route("/admin/api", func(r chi.Router) {
		r.Use(middleware.NewCSRF(secureCookies))

		// Login is the only route reachable without a session.
		r.Post("/login", auth.Login)
		r.Post("/logout", auth.Logout)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Get("/dashboard", admin.Dashboard)
			r.Get("/me", auth.Me)

			r.Route("/services", func(r chi.Router) {
				r.Get("/", admin.ServiceList)
				r.Post("/", admin.ServiceCreate)
				r.Get("/{id}", admin.ServiceGet)
				r.Put("/{id}", admin.ServiceUpdate)
				r.Delete("/{id}", admin.ServiceDelete)
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", admin.ProjectList)
				r.Post("/", admin.ProjectCreate)
				r.Get("/{id}", admin.ProjectGet)
				r.Put("/{id}", admin.ProjectUpdate)
				r.Delete("/{id}", admin.ProjectDelete)
				r.Post("/{id}/images", admin.ProjectImageAdd)
				r.Delete("/{id}/images/{imageID}", admin.ProjectImageDelete)
			})

			r.Route("/team", func(r chi.Router) {
				r.Get("/", admin.TeamList)
				r.Post("/", admin.TeamCreate)
				r.Put("/{id}", admin.TeamUpdate)
				r.Delete("/{id}", admin.TeamDelete)
			})

			r.Route("/testimonials", func(r chi.Router) {
				r.Get("/", admin.TestimonialList)
				r.Post("/", admin.TestimonialCreate)
				r.Put("/{id}", admin.TestimonialUpdate)
				r.Delete("/{id}", admin.TestimonialDelete)
			})

			r.Route("/why-choose-us", func(r chi.Router) {
				r.Get("/", admin.WhyChooseUsList)
				r.Post("/", admin.WhyChooseUsCreate)
				r.Put("/{id}", admin.WhyChooseUsUpdate)
				r.Delete("/{id}", admin.WhyChooseUsDelete)
			})

			r.Route("/certifications", func(r chi.Router) {
				r.Get("/", admin.CertificationList)
				r.Post("/", admin.CertificationCreate)
				r.Put("/{id}", admin.CertificationUpdate)
				r.Delete("/{id}", admin.CertificationDelete)
			})

			r.Route("/faqs", func(r chi.Router) {
				r.Get("/", admin.FAQList)
				r.Post("/", admin.FAQCreate)
				r.Put("/{id}", admin.FAQUpdate)
				r.Delete("/{id}", admin.FAQDelete)
			})

			// Singletons.
			r.Get("/company", admin.CompanyGet)
			r.Put("/company", admin.CompanySave)
			r.Get("/statistics", admin.StatisticsGet)
			r.Post("/statistics", admin.StatisticsCreate)
			r.Put("/statistics", admin.StatisticsUpdate)
			r.Delete("/statistics", admin.StatisticsDelete)

			// Per-page editable copy.
			r.Route("/pages", func(r chi.Router) {
				r.Get("/", admin.PageContentList)
				r.Get("/{page}", admin.PageContentGet)
				r.Put("/{page}", admin.PageContentSave)
			})

			// Contact inbox.
			r.Route("/messages", func(r chi.Router) {
				r.Get("/", admin.MessageList)
				r.Get("/{id}", admin.MessageGet)
				r.Patch("/{id}", admin.MessageUpdateStatus)
			})

			// Photo uploads.
			r.Post("/media", media.Upload)
			r.Delete("/media", media.Delete)

			// User management — admin only.
			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/", admin.UserList)
				r.Post("/", admin.UserCreate)
				r.Delete("/{id}", admin.UserDelete)
			})
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
