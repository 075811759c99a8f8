package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sms-admin/internal/adapters/http/handlers"
	"sms-admin/internal/adapters/http/middleware"
	"sms-admin/internal/adapters/http/routes"
	"sms-admin/internal/adapters/http/views"
	"sms-admin/internal/adapters/storage"
	"sms-admin/internal/config"
	"sms-admin/internal/core/services"
	"sms-admin/internal/pkg/apiclient"
	"sms-admin/internal/pkg/sequence"
	"sms-admin/internal/pkg/session"
	"sms-admin/web"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	_ "sms-admin/docs" // Swagger docs
)

// @title Student Management Admin
// @version 1.0
// @description Server-rendered admin front end for the student management backend. Only the JSON endpoints are listed.

// @BasePath /
// @schemes http https

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Optional shared limiter storage
	var limiterStorage fiber.Storage
	var closers []io.Closer
	if cfg.Redis.Addr != "" {
		rdb := storage.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, "sms-admin:")
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if rdb.Healthy(ctx) {
			limiterStorage = rdb
			closers = append(closers, rdb)
			log.Printf("✅ Redis connected [%s]", cfg.Redis.Addr)
		} else {
			log.Printf("⚠️ Warning: Redis at %s unreachable, rate limits stay in memory", cfg.Redis.Addr)
			_ = rdb.Close()
		}
		cancel()
	}

	api := apiclient.Config{
		BaseURL:    cfg.Backend.BaseURL,
		HTTPClient: apiclient.NewHTTPClient(cfg.Backend.Timeout),
	}
	gateway := handlers.NewGateway(api, session.CookieOptions{
		Name:     cfg.Session.CookieName,
		Secure:   cfg.Cookie.Secure,
		SameSite: cfg.Cookie.SameSite,
		Domain:   cfg.Cookie.Domain,
	}, cfg.Session.TTL, apiclient.NewMetrics(reg), sequence.NewTracker())

	// Background backend probe
	monitor := services.NewHealthMonitor(apiclient.New(api, nil, nil), cfg.Health.Spec, 5*time.Second)
	if err := monitor.Start(); err != nil {
		log.Fatalf("❌ Failed to start health monitor: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Student Management Admin v1.0",
		Views:        views.NewEngine(web.Views(), cfg.IsDev()),
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg, limiterStorage)

	routes.Setup(app, routes.Deps{
		Config:   cfg,
		Gateway:  gateway,
		Monitor:  monitor,
		Registry: reg,
		Storage:  limiterStorage,
	})

	// Graceful shutdown
	stopped := make(chan struct{})
	go gracefulShutdown(app, stopped, monitor, closers...)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
	<-stopped
}

// gracefulShutdown waits for SIGINT/SIGTERM and then shuts down.
// stopped is closed when everything is released.
func gracefulShutdown(app *fiber.App, stopped chan<- struct{}, monitor *services.HealthMonitor, closers ...io.Closer) {
	defer close(stopped)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdown(app, monitor, closers...)
}

// shutdown stops the server, then the health monitor, then closes the
// shared connections
func shutdown(app *fiber.App, monitor *services.HealthMonitor, closers ...io.Closer) {
	log.Println("🛑 Shutting down server...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	monitor.Stop()
	for _, c := range closers {
		if err := c.Close(); err != nil {
			log.Printf("❌ Error closing connection: %v", err)
		}
	}
	log.Println("✅ Server stopped gracefully")
}
