// Copyright (c) 2026 Hanvil Academy
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the Hanvil Academy site server.
// It loads configuration, connects to the optional backing services, sets
// up routing, and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"database/sql"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hanvil/internal/cache"
	"hanvil/internal/config"
	"hanvil/internal/content"
	"hanvil/internal/database"
	"hanvil/internal/handlers"
	"hanvil/internal/relay"
	"hanvil/internal/render"
	"hanvil/internal/router"
	"hanvil/internal/storage"
	"hanvil/internal/store"
	"hanvil/internal/viewstate"
	"hanvil/web"
)

func main() {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Structured logger: text in development, JSON elsewhere.
	var logHandler slog.Handler
	if cfg.IsDev() {
		logHandler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		logHandler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	slog.SetDefault(slog.New(logHandler))

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Site copy is embedded; SITE_CONTENT_FILE swaps it without a rebuild.
	var site *content.Site
	if cfg.SiteContentFile != "" {
		site, err = content.LoadFile(cfg.SiteContentFile)
	} else {
		site, err = content.Load()
	}
	if err != nil {
		slog.Error("failed to load site content", "error", err)
		os.Exit(1)
	}
	slog.Info("site content loaded",
		"faqs", len(site.FAQs),
		"events", len(site.Events),
	)

	// PostgreSQL is optional. Without it applications and contact messages
	// are only logged.
	var (
		applications *store.ApplicationStore
		contactLog   *store.ContactLogStore
	)
	if cfg.HasDatabase() {
		var db *sql.DB
		db, err = database.Connect(cfg.DSN())
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := database.Migrate(db); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		applications = store.NewApplicationStore(db)
		contactLog = store.NewContactLogStore(db)
	} else {
		slog.Warn("database not configured, applications will not be stored")
	}

	// Valkey holds page instances and the page cache. Production requires
	// it; elsewhere the site runs on in-memory instances without a cache.
	var (
		states    viewstate.Store
		pageCache *cache.PageCache
	)
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	switch {
	case err == nil:
		defer valkeyClient.Close()
		states = viewstate.NewValkeyStore(valkeyClient, viewstate.DefaultTTL)
		pageCache = cache.NewPageCache(valkeyClient, cache.DefaultPageTTL)
		// Cached pages from the previous deploy may embed stale markup.
		pageCache.InvalidateAll(context.Background())
	case cfg.Env == "production":
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	default:
		slog.Warn("valkey unavailable, using in-memory page instances", "error", err)
		states = viewstate.NewMemoryStore(viewstate.DefaultTTL)
	}

	// S3-compatible storage for admissions documents (optional).
	var storageClient *storage.Client
	if cfg.HasS3() {
		storageClient, err = storage.New(
			cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3BucketPrivate,
		)
		if err != nil {
			slog.Error("failed to initialize S3 storage", "error", err)
			os.Exit(1)
		}
		slog.Info("s3 storage connected",
			"endpoint", cfg.S3Endpoint,
			"bucket", cfg.S3BucketPrivate,
		)
	} else {
		slog.Warn("s3 storage not configured, admissions documents will not be kept")
	}

	// Contact form relay.
	var deliverer relay.Deliverer = relay.Unconfigured{}
	if cfg.HasEmailJS() {
		deliverer = relay.NewEmailJS(relay.Config{
			ServiceID:  cfg.EmailJSServiceID,
			TemplateID: cfg.EmailJSTemplateID,
			PublicKey:  cfg.EmailJSPublicKey,
			BaseURL:    cfg.EmailJSBaseURL,
		})
	} else {
		slog.Warn("emailjs not configured, contact form submissions will fail")
	}

	whatsApp := site.School.WhatsApp
	if cfg.SchoolWhatsApp != "" {
		whatsApp = cfg.SchoolWhatsApp
	}

	renderer, err := render.New(site, cfg.IsDev())
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	secureCookies := !cfg.IsDev()

	contactHandlers, err := handlers.NewContact(renderer, deliverer, contactLog, whatsApp)
	if err != nil {
		slog.Error("failed to build whatsapp qr code", "error", err)
		os.Exit(1)
	}

	static, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		slog.Error("failed to open static assets", "error", err)
		os.Exit(1)
	}

	r, stop := router.New(router.Deps{
		Public:        handlers.NewPublic(renderer, site, pageCache, secureCookies),
		Lists:         handlers.NewLists(renderer, site, states),
		Contact:       contactHandlers,
		Admissions:    handlers.NewAdmissions(renderer, site, applications, storageClient),
		Static:        static,
		SecureCookies: secureCookies,
	})
	defer stop()

	// WriteTimeout covers admissions uploads relayed to S3.
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
