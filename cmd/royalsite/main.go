// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the Royal Site server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"royalsite/internal/config"
	"royalsite/internal/database"
	"royalsite/internal/handlers"
	"royalsite/internal/imaging"
	"royalsite/internal/render"
	"royalsite/internal/router"
	"royalsite/internal/session"
	"royalsite/internal/storage"
	"royalsite/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed the admin account and default page content (no-op once present).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey (Redis-compatible session store).
	valkeyClient, err := session.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// In non-development environments, mark session cookies as Secure (HTTPS-only).
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)

	// HTML template renderer for the public site. In dev mode, templates load
	// assets from CDN; in production they use compiled local files embedded in
	// the binary.
	renderer, err := render.New(cfg.IsDev())
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	// Initialize data stores.
	userStore := store.NewUserStore(db)
	companyStore := store.NewCompanyStore(db)
	statisticsStore := store.NewStatisticsStore(db)
	pageContentStore := store.NewPageContentStore(db)
	serviceStore := store.NewServiceStore(db)
	projectStore := store.NewProjectStore(db)
	teamStore := store.NewTeamStore(db)
	testimonialStore := store.NewTestimonialStore(db)
	whyChooseUsStore := store.NewWhyChooseUsStore(db)
	certificationStore := store.NewCertificationStore(db)
	faqStore := store.NewFAQStore(db)
	contactStore := store.NewContactStore(db)

	// Connect to S3-compatible object storage (optional — app works without it).
	var storageClient *storage.Client
	if cfg.S3Endpoint != "" && cfg.S3AccessKey != "" {
		storageClient, err = storage.New(
			cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
			cfg.S3Bucket, cfg.S3PublicURL,
		)
		if err != nil {
			slog.Error("failed to initialize S3 storage", "error", err)
			os.Exit(1)
		}
		if storageClient != nil {
			slog.Info("s3 storage connected",
				"endpoint", cfg.S3Endpoint,
				"bucket", cfg.S3Bucket,
			)
		}
	} else {
		slog.Warn("s3 storage not configured — media uploads disabled")
	}

	// Start the image processing pipeline (libvips worker pool).
	imaging.Startup(runtime.NumCPU())
	defer imaging.Shutdown()

	// The canonical site URL feeds sitemap and robots output. Fall back to the
	// listen address for local development.
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("http://localhost:%s", cfg.Port)
	}

	// Create handler groups with their dependencies.
	publicHandlers := handlers.NewPublic(renderer, pageContentStore, companyStore,
		statisticsStore, serviceStore, projectStore, teamStore, testimonialStore,
		whyChooseUsStore, certificationStore, faqStore, baseURL)
	contactHandlers := handlers.NewContact(publicHandlers, contactStore)
	adminHandlers := handlers.NewAdmin(pageContentStore, companyStore, statisticsStore,
		serviceStore, projectStore, teamStore, testimonialStore, whyChooseUsStore,
		certificationStore, faqStore, contactStore, userStore)
	authHandlers := handlers.NewAuth(sessionStore, userStore)
	mediaHandlers := handlers.NewMedia(storageClient)

	// Set up the Chi router with all middleware and routes.
	r := router.New(sessionStore, publicHandlers, contactHandlers, adminHandlers,
		authHandlers, mediaHandlers, secureCookies)

	// Create the HTTP server with sensible timeouts. WriteTimeout covers media
	// uploads that fan out into variant generation.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
