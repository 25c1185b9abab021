package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/securepass/securepass-go/internal/config"
	"github.com/securepass/securepass-go/internal/crypto"
	"github.com/securepass/securepass-go/internal/handler"
	"github.com/securepass/securepass-go/internal/history"
	"github.com/securepass/securepass-go/internal/middleware"
	"github.com/securepass/securepass-go/internal/repository"
	"github.com/securepass/securepass-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	genService := service.NewGeneratorService(crypto.NewGenerator(nil), cfg.DefaultLength, cfg.MaxLength)
	strengthService := service.NewStrengthService(true)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.SecurityHeaders)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	tokens := crypto.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiry)

	// History belongs to accounts, so it is only offered alongside auth.
	var histService *service.HistoryService

	db, err := repository.NewDB(ctx, cfg.DatabaseDSN)
	if err == nil {
		if err = repository.Migrate(ctx, db); err != nil {
			db.Close()
		}
	}
	if err != nil {
		slog.Warn("database unavailable, auth and history routes disabled", "error", err)
	} else {
		defer db.Close()

		store, closeStore := newHistoryStore(ctx, cfg)
		defer closeStore()
		histService = service.NewHistoryService(store, cfg.HistorySize)

		userRepo := repository.NewUserRepository(db)
		authService := service.NewAuthService(userRepo, crypto.NewHasher(crypto.DefaultHashParams()), tokens)
		authHandler := handler.NewAuthHandler(authService)
		histHandler := handler.NewHistoryHandler(histService)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))
			r.Post("/api/v1/auth/register", authHandler.HandleRegister)
			r.Post("/api/v1/auth/login", authHandler.HandleLogin)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(tokens))
			r.Get("/api/v1/auth/me", authHandler.HandleMe)
			r.Get("/api/v1/history", histHandler.HandleList)
			r.Delete("/api/v1/history", histHandler.HandleClear)
		})
	}

	genHandler := handler.NewGeneratorHandler(genService, histService)
	strengthHandler := handler.NewStrengthHandler(strengthService, histService)

	r.Group(func(r chi.Router) {
		r.Use(middleware.OptionalJWTAuth(tokens))
		r.Post("/api/v1/evaluate", strengthHandler.HandleEvaluate)
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

// newHistoryStore connects to Redis when configured and falls back to
// process memory otherwise.
func newHistoryStore(ctx context.Context, cfg config.Config) (history.Store, func()) {
	memory := func() (history.Store, func()) {
		return history.NewMemoryStore(cfg.HistorySize), func() {}
	}
	if cfg.RedisAddr == "" {
		return memory()
	}

	var opt *redis.Options
	if strings.Contains(cfg.RedisAddr, "://") {
		parsed, err := redis.ParseURL(cfg.RedisAddr)
		if err != nil {
			slog.Warn("invalid REDIS_ADDR, keeping history in memory", "error", err)
			return memory()
		}
		opt = parsed
	} else {
		opt = &redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword}
	}
	opt.DialTimeout = 2 * time.Second
	opt.ReadTimeout = 500 * time.Millisecond
	opt.WriteTimeout = 500 * time.Millisecond

	rdb := redis.NewClient(opt)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		slog.Warn("redis unavailable, keeping history in memory", "error", err)
		rdb.Close()
		return memory()
	}

	slog.Info("history stored in redis", "addr", opt.Addr)
	return history.NewRedisStore(rdb, cfg.HistorySize, cfg.HistoryTTL), func() { rdb.Close() }
}
