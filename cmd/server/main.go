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
	"github.com/spf13/pflag"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/sharemates/internal/auth"
	"github.com/mmynk/sharemates/internal/config"
	"github.com/mmynk/sharemates/internal/events"
	"github.com/mmynk/sharemates/internal/metrics"
	"github.com/mmynk/sharemates/internal/middleware"
	"github.com/mmynk/sharemates/internal/seed"
	"github.com/mmynk/sharemates/internal/service"
	"github.com/mmynk/sharemates/internal/storage/sqlite"
	"github.com/mmynk/sharemates/pkg/logging"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	cfg := config.Load()
	flags := pflag.NewFlagSet("sharemates", pflag.ContinueOnError)
	cfg.BindFlags(flags)
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := logging.ParseLevel(cfg.LogLevel)
	logging.SetupWithLevel(level)

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	if cfg.SeedFile != "" {
		f, err := seed.Load(cfg.SeedFile)
		if err != nil {
			return err
		}
		n, err := seed.Apply(context.Background(), store, f)
		if err != nil {
			return fmt.Errorf("apply seed: %w", err)
		}
		slog.Info("Seed applied", "file", cfg.SeedFile, "households_created", n)
	}

	var publisher events.Publisher = events.Nop{}
	if cfg.AMQPURL != "" {
		p, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			return fmt.Errorf("initialize AMQP publisher: %w", err)
		}
		defer p.Close()
		publisher = p
		slog.Info("Publishing ledger events", "exchange", cfg.AMQPExchange)
	} else {
		slog.Info("Event publishing disabled - no AMQP_URL provided")
	}

	m := metrics.New()

	// Identity must be attached before the logging and metrics interceptors run.
	var interceptors []connect.Interceptor
	if identity := authInterceptor(cfg); identity != nil {
		interceptors = append(interceptors, identity)
	} else {
		slog.Warn("JWT_SECRET not set - all calls are anonymous")
	}
	interceptors = append(interceptors, middleware.LoggingInterceptor(), middleware.MetricsInterceptor(m))

	svc := service.NewHouseholdService(store, service.WithPublisher(publisher), service.WithMetrics(m))
	path, handler := service.NewHouseholdServiceHandler(svc, connect.WithInterceptors(interceptors...))

	mux := http.NewServeMux()
	mux.Handle(path, handler)
	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr: ":" + cfg.Port,
		// Wrap with h2c for HTTP/2 without TLS (required for Connect)
		Handler:           h2c.NewHandler(loggingMiddleware(corsMiddleware(mux)), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Connect server starting", "address", srv.Addr, "url", fmt.Sprintf("http://localhost%s", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("Server stopped gracefully")
	return nil
}

// authInterceptor selects how callers are identified: nil without a secret,
// RequireAuth when configured, OptionalAuth otherwise.
func authInterceptor(cfg *config.Config) connect.Interceptor {
	if cfg.JWTSecret == "" {
		return nil
	}
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	if cfg.RequireAuth {
		slog.Info("Identity tokens required on every call")
		return middleware.RequireAuth(jwtManager)
	}
	return middleware.OptionalAuth(jwtManager)
}

// loggingMiddleware logs HTTP requests that are not Connect calls at debug
// level; RPCs are logged by the interceptor.
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
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
