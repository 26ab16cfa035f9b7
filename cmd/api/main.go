package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dafibh/hillside/hillside-backend/internal/config"
	"github.com/dafibh/hillside/hillside-backend/internal/handler"
	"github.com/dafibh/hillside/hillside-backend/internal/middleware"
	"github.com/dafibh/hillside/hillside-backend/internal/repository/postgres"
	"github.com/dafibh/hillside/hillside-backend/internal/repository/storage"
	"github.com/dafibh/hillside/hillside-backend/internal/service"
	"github.com/dafibh/hillside/hillside-backend/internal/websocket"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// @title Hillside Bookkeeping API
// @version 1.0
// @description Transaction ledger, statements and reports for Hillside Studio.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Apply pending migrations before the pool starts serving queries
	if cfg.RunMigrations {
		if err := postgres.RunMigrations(cfg.DatabaseURL); err != nil {
			log.Fatal().Err(err).Msg("Failed to run migrations")
		}
	}

	// Connect to database. A failed ping is not fatal: the ledger reports the
	// store as unavailable and the owner can reload once it is back.
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create database pool")
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		log.Warn().Err(err).Msg("Database not reachable at startup")
	} else {
		log.Info().Msg("Connected to database")
	}

	// Initialize repositories
	transactionRepo := postgres.NewTransactionRepository(pool)

	var reportRepo storage.ReportRepository
	if cfg.S3.Enabled() {
		s3Repo, err := storage.NewS3ReportRepository(context.Background(), cfg.S3)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize report storage")
		}
		reportRepo = s3Repo
		log.Info().Str("bucket", cfg.S3.Bucket).Msg("Report archive enabled")
	}

	// Initialize WebSocket hub
	hub := websocket.NewHub()

	// Initialize services
	notices := service.NewNoticeBoard(cfg.NoticeTTL, hub)
	defer notices.Close()

	hub.Handle(websocket.MessageTypeNoticeDismiss, notices.HandleDismissMessage)

	ledgerService := service.NewLedgerService(transactionRepo, notices, hub, cfg.Capital)
	transactionService := service.NewTransactionService(transactionRepo)
	importService := service.NewImportService(transactionRepo, ledgerService, hub)
	reportService := service.NewReportService(reportRepo, hub, cfg.CompanyName, cfg.ReportURLExpiry)

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 10*time.Second)
	if err := ledgerService.Load(loadCtx); err != nil {
		log.Warn().Err(err).Msg("Initial ledger load failed")
	}
	cancelLoad()

	// Auth0 guard is optional for a single-owner deployment
	var authMiddleware *middleware.AuthMiddleware
	var wsValidator handler.JWTValidator
	if cfg.AuthEnabled() {
		authMiddleware, err = middleware.NewAuthMiddleware(cfg.Auth0Domain, cfg.Auth0Audience)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create auth middleware")
		}
		validator, err := websocket.NewAuth0JWTValidator(cfg.Auth0Domain, cfg.Auth0Audience)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create WebSocket validator")
		}
		wsValidator = validator
	} else {
		log.Warn().Msg("AUTH0_DOMAIN not set, API is running without authentication")
	}

	rateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimitPerMinute, cfg.RateLimitBurst)
	defer rateLimiter.Stop()

	// Initialize handlers
	transactionHandler := handler.NewTransactionHandler(ledgerService, transactionService, importService)
	ledgerHandler := handler.NewLedgerHandler(ledgerService, transactionService, notices)
	dashboardHandler := handler.NewDashboardHandler(ledgerService, reportService)
	statementHandler := handler.NewStatementHandler(ledgerService)
	reportHandler := handler.NewReportHandler(ledgerService, reportService)
	webSocketHandler := handler.NewWebSocketHandler(hub, wsValidator, cfg.CORSOrigins)
	openAPIHandler := handler.NewOpenAPIHandler(cfg.Port, cfg.PublicURL)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Request ID middleware
	e.Use(echomiddleware.RequestID())

	// CORS middleware
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		ExposeHeaders:    []string{echo.HeaderContentDisposition},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Security headers middleware (helmet-like)
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         31536000,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))

	// Request logging middleware with zerolog
	e.Use(zerologMiddleware())

	// Recovery middleware
	e.Use(echomiddleware.Recover())

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// API documentation
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/openapi.json", openAPIHandler.ServeOpenAPI3Spec)

	// Register API routes
	handler.RegisterRoutes(e, authMiddleware, rateLimiter, transactionHandler, ledgerHandler, dashboardHandler, statementHandler, reportHandler, webSocketHandler)

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// zerologMiddleware returns a middleware that logs requests using zerolog
func zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			event := log.Info()
			if res.Status >= http.StatusInternalServerError {
				event = log.Error()
			}
			event.
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Msg("request")

			return nil
		}
	}
}
