package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Lixing-Zhang/room-scanner/backend/internal/config"
	"github.com/Lixing-Zhang/room-scanner/backend/internal/handlers"
	"github.com/Lixing-Zhang/room-scanner/backend/internal/metrics"
	"github.com/Lixing-Zhang/room-scanner/backend/internal/middleware"
	"github.com/Lixing-Zhang/room-scanner/backend/internal/repository"
	"github.com/Lixing-Zhang/room-scanner/backend/internal/service"
	"github.com/Lixing-Zhang/room-scanner/backend/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting room scanner api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
		"scan_delay_ms", cfg.Scanner.DelayMS,
		"default_locale", cfg.Scanner.DefaultLocale,
	)

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	// Initialize repositories
	productRepo := repository.NewInMemoryProductRepository()

	catalog, err := productRepo.GetAll(context.Background())
	if err != nil {
		log.Error("failed to load product catalog", "error", err)
		os.Exit(1)
	}
	log.Info("product catalog loaded", "products", len(catalog))

	// Initialize services
	productService := service.NewProductService(productRepo)
	scanService := service.NewScanService(productService, service.ScanConfig{
		Delay:         time.Duration(cfg.Scanner.DelayMS) * time.Millisecond,
		PointCount:    cfg.Scanner.PointCount,
		DefaultLocale: cfg.Scanner.DefaultLocale,
	}, cfg.Scanner.Seed, m, log)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log, len(catalog))
	productHandler := handlers.NewProductHandler(productService, log)
	scanHandler := handlers.NewScanHandler(scanService, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(m.Middleware)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Language", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)
	if cfg.Metrics.Enabled {
		r.Handle("/metrics", m.Handler())
	}

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Product endpoints
		r.Get("/product", productHandler.ListProducts)
		r.Get("/product/search", productHandler.SearchProducts)
		r.Get("/product/suggest", productHandler.SuggestProducts)
		r.Get("/product/{productId}", productHandler.GetProduct)

		// Room scanner endpoints
		r.Get("/styles", scanHandler.ListStyles)
		r.Get("/scan-results", scanHandler.ScanResults)
		r.Post("/scan", scanHandler.RunScan)
		r.Get("/ar/fallback", scanHandler.ARFallback)
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
