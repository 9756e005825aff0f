package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ringledger/ringledger/config"
	"github.com/ringledger/ringledger/pkg/api/handlers"
	custommw "github.com/ringledger/ringledger/pkg/api/middleware"
	"github.com/ringledger/ringledger/pkg/billing"
	"github.com/ringledger/ringledger/pkg/cache"
	"github.com/ringledger/ringledger/pkg/callsync"
	"github.com/ringledger/ringledger/pkg/database"
	"github.com/ringledger/ringledger/pkg/jobs"
	"github.com/ringledger/ringledger/pkg/logger"
	"github.com/ringledger/ringledger/pkg/metrics"
	custommiddleware "github.com/ringledger/ringledger/pkg/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	appLog := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize database
	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Redis cache
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Initialize services
	syncService := callsync.NewService(db.Ent, callsync.Config{
		BaseURL: cfg.CRMAPIBaseURL,
		OAuth: callsync.OAuthConfig{
			TokenURL:     cfg.CRMTokenURL,
			ClientID:     cfg.CRMClientID,
			ClientSecret: cfg.CRMClientSecret,
		},
		PageSize:          cfg.SyncPageSize,
		MaxPagesPerWindow: cfg.SyncMaxPagesPerDay,
		DefaultRateCents:  cfg.SyncDefaultRateCents,
	}, appLog, prometheusMetrics)

	var usageReporter billing.UsageReporter
	if cfg.StripeSecretKey != "" {
		usageReporter = billing.NewStripeReporter(cfg.StripeSecretKey)
		log.Printf("✅ Stripe usage reporting enabled")
	} else {
		log.Printf("ℹ️  Stripe usage reporting disabled (no secret key configured)")
	}
	billingService := billing.NewService(db.Ent, usageReporter, appLog, prometheusMetrics)

	// Initialize cron manager for auto-sync and reconciliation jobs
	cronManager := jobs.NewCronManager(db.Ent, syncService, billingService, redisClient, appLog, jobs.Config{
		CooldownMinutes:       cfg.SyncCooldownMinutes,
		ReconciliationEnabled: cfg.ReconciliationEnabled,
	})
	if cfg.AutoSyncEnabled {
		if err := cronManager.SetupJobs(); err != nil {
			log.Fatalf("❌ Failed to setup cron jobs: %v", err)
		}
		cronManager.Start()
		log.Printf("✅ Cron jobs started successfully")
	} else {
		log.Printf("ℹ️  Auto-sync scheduler disabled (AUTO_SYNC_ENABLED=false)")
	}

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	globalRateLimiter := custommiddleware.NewRateLimiter(
		float64(cfg.RateLimitRequestsPerMinute)/60.0, cfg.RateLimitBurst)

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	e.Use(prometheusMetrics.Middleware())
	e.Use(middleware.CORSWithConfig(custommiddleware.CORSConfig(nil)))
	e.Use(middleware.Gzip())
	e.Use(middleware.Secure())
	e.Use(globalRateLimiter.Middleware())

	// Health check endpoints (public)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "RingLedger API",
			"version":     "0.1.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}

		if _, err := redisClient.Redis.Ping(ctx).Result(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Initialize handlers
	syncHandler := handlers.NewSyncHandler(db.Ent, syncService)
	callHandler := handlers.NewCallHandler(db.Ent)

	// API v1 routes (require JWT)
	v1 := e.Group("/api/v1")
	v1.Use(custommw.JWTMiddleware(cfg.JWTSecret))
	{
		v1.POST("/sync", syncHandler.TriggerSync)
		v1.GET("/sync/runs", syncHandler.ListRuns)
		v1.GET("/sync/runs/:id", syncHandler.GetRun)

		v1.GET("/calls", callHandler.ListCalls)
		v1.GET("/calls/stats", callHandler.GetCallStats)
		v1.GET("/calls/:id", callHandler.GetCall)

		// Admin routes (require admin role)
		adminGroup := v1.Group("/admin")
		adminGroup.Use(custommw.AdminMiddleware())
		{
			adminGroup.POST("/sync/backfill", syncHandler.TriggerBackfill)
		}
	}

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 RingLedger API starting on %s", address)
	log.Printf("📝 Log level: %s, Log format: %s", cfg.LogLevel, cfg.LogFormat)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d)", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	log.Printf("⏰ Cron jobs: auto-sync sweep every minute, reconciliation nightly 1AM, spend reset monthly")

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	if cfg.AutoSyncEnabled {
		cronManager.Stop()
		log.Println("✅ Cron jobs stopped")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
