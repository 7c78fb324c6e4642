package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/fivehundred/internal/auth"
	"github.com/mmynk/fivehundred/internal/config"
	"github.com/mmynk/fivehundred/internal/metrics"
	"github.com/mmynk/fivehundred/internal/middleware"
	"github.com/mmynk/fivehundred/internal/service"
	"github.com/mmynk/fivehundred/internal/storage"
	"github.com/mmynk/fivehundred/internal/storage/memory"
	"github.com/mmynk/fivehundred/internal/storage/sqlite"
	"github.com/mmynk/fivehundred/pkg/logging"
	"github.com/mmynk/fivehundred/pkg/proto/protoconnect"
)

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	// A missing .env is normal outside development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
	}

	cfg, err := config.Load(getEnv("CONFIG_PATH", "config.toml"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}
	level, _ := logging.ParseLevel(cfg.Log.Level)
	logging.SetupWithLevel(level)

	store, err := openStore(cfg.Database)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "driver", cfg.Database.Driver, "database", cfg.Database.Path)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	handler, err := newHandler(cfg, store, reg)
	if err != nil {
		slog.Error("Failed to build handler", "error", err)
		os.Exit(1)
	}

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Connect server starting", "address", server.Addr, "url", fmt.Sprintf("http://localhost%s", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	timeout, _ := cfg.GetShutdownTimeout()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	slog.Info("Shutting down", "timeout", timeout)
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Shutdown failed", "error", err)
	}
}

func openStore(cfg config.DatabaseConfig) (storage.Store, error) {
	switch cfg.Driver {
	case "memory":
		return memory.New(), nil
	case "sqlite":
		store, err := sqlite.New(cfg.Path)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

// newHandler mounts the Connect services and /metrics on one mux.
func newHandler(cfg *config.Config, store storage.Store, reg *prometheus.Registry) (http.Handler, error) {
	ttl, err := cfg.GetTokenTTL()
	if err != nil {
		return nil, err
	}
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, ttl)
	authenticator := auth.NewPasswordAuthenticator(store)
	m := metrics.New(reg)

	interceptors := []connect.Interceptor{middleware.MetricsInterceptor(m)}
	if cfg.RateLimit.RPS > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		interceptors = append([]connect.Interceptor{limiter.Interceptor()}, interceptors...)
	}
	interceptors = append(interceptors,
		middleware.RequireAuth(jwtManager, service.PublicProcedures...),
		middleware.LoggingInterceptor(slog.Default()),
	)
	opts := connect.WithInterceptors(interceptors...)

	mux := http.NewServeMux()

	authPath, authHandler := protoconnect.NewAuthServiceHandler(service.NewAuthService(authenticator, jwtManager, slog.Default()), opts)
	mux.Handle(authPath, authHandler)

	idle, err := cfg.GetGameIdleTimeout()
	if err != nil {
		return nil, err
	}
	scorePath, scoreHandler := protoconnect.NewScoreServiceHandler(service.NewScoreService(store, m, service.WithIdleTimeout(idle)), opts)
	mux.Handle(scorePath, scoreHandler)

	if cfg.Server.MetricsPath != "" {
		mux.Handle(cfg.Server.MetricsPath, promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	}

	return loggingMiddleware(corsMiddleware(mux)), nil
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
