package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/retailpulse/searchd/internal/config"
	"github.com/retailpulse/searchd/internal/index/fuzzy"
	"github.com/retailpulse/searchd/internal/index/primary"
	logpkg "github.com/retailpulse/searchd/internal/logger"
	"github.com/retailpulse/searchd/internal/metrics"
	chiTransport "github.com/retailpulse/searchd/internal/transport/chi"
	analyticsuc "github.com/retailpulse/searchd/internal/usecase/analytics"
	ingestuc "github.com/retailpulse/searchd/internal/usecase/ingest"
	searchuc "github.com/retailpulse/searchd/internal/usecase/search"
	"github.com/retailpulse/searchd/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting searchd API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Bool("fuzzy_enabled", cfg.Engine.FuzzyEnabled()),
		zap.Float64("fuzzy_threshold", cfg.Engine.FuzzyThreshold),
	)

	// Register engine metrics explicitly (no init())
	metrics.RegisterSearchMetrics()

	// Build the engine — composition root, no ambient singleton.
	analyticsLog := analyticsuc.NewLog(cfg.Engine.AnalyticsEnabled())
	engine := searchuc.New(
		primary.New(),
		fuzzy.New(cfg.Engine.FuzzyThreshold),
		analyticsLog,
		logger,
		searchuc.Config{
			EnableFuzzy:     cfg.Engine.FuzzyEnabled(),
			EnableAnalytics: cfg.Engine.AnalyticsEnabled(),
			MaxResults:      cfg.Engine.MaxResults,
			FuzzyThreshold:  cfg.Engine.FuzzyThreshold,
		},
	)

	// Data adapter. Seed demo data so a fresh instance answers immediately;
	// real deployments rebuild via PUT /index once upstream data is fetched.
	adapter := ingestuc.New(engine, logger)
	if cfg.Engine.DemoDataEnabled() {
		report := adapter.Rebuild(ingestuc.DemoDataset())
		logger.Info("Seeded demo dataset", zap.Int("documents", report.Indexed))
	}

	server := chiTransport.NewServer(engine, adapter, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(chiTransport.RateLimitMiddleware(cfg.Auth.RatePerMinute))
	r.Use(metrics.Middleware())
	r.Group(server.Routes)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
