package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shoponline_web/internal/backend"
	"shoponline_web/internal/cache"
	"shoponline_web/internal/cart"
	"shoponline_web/internal/config"
	"shoponline_web/internal/handlers"
	"shoponline_web/internal/logger"
	"shoponline_web/internal/middleware"
	"shoponline_web/internal/routes"
	"shoponline_web/internal/session"
)

func main() {
	config.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("❌ Configuration invalide : %v", err)
	}

	logg, err := logger.New(cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("❌ Impossible d'initialiser le logger : %v", err)
	}
	defer func() { _ = logg.Sync() }()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	counter := newCounter(ctx, cfg, logg)

	sessions := session.NewManager(session.NewCookieStore(cfg.SessionSecret, cfg.CookieSecure))
	api := backend.New(cfg.BackendURL, cfg.BackendTimeout, backend.WithLogger(logg))
	carts := cart.NewRegistry(cfg.CartIdleTTL)
	h := handlers.New(api, sessions, carts, logg)

	r, err := routes.NewRouter(routes.Deps{
		Config:   cfg,
		Log:      logg,
		Sessions: sessions,
		Limiter:  middleware.NewRateLimiter(counter, logg, h.LimitedPage),
		Handlers: h,
	})
	if err != nil {
		logg.Fatal("❌ Impossible de construire le routeur", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logg.Info("🚀 Vitrine ShopOnline lancée",
			zap.String("port", cfg.Port),
			zap.String("backend", cfg.BackendURL),
			zap.String("env", cfg.Env),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal("❌ Serveur arrêté", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logg.Info("🛑 Arrêt demandé, fermeture des connexions...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logg.Error("❌ Arrêt forcé", zap.Error(err))
	}
	if closer, ok := counter.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
	logg.Info("✅ Serveur arrêté proprement")
}

// newCounter utilise Redis s'il est configuré et joignable, sinon des
// compteurs en mémoire (limites propres à cette instance).
func newCounter(ctx context.Context, cfg config.Config, logg *zap.Logger) cache.Counter {
	if cfg.RedisHost == "" {
		logg.Warn("⚠️ REDIS_HOST absent, limites de débit en mémoire")
		return cache.NewMemoryCounter()
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	client, err := cache.NewRedis(pingCtx, cfg.RedisHost, cfg.RedisPassword)
	if err != nil {
		logg.Warn("⚠️ Redis injoignable, limites de débit en mémoire", zap.Error(err))
		return cache.NewMemoryCounter()
	}
	logg.Info("✅ Connecté à Redis", zap.String("host", cfg.RedisHost))
	return cache.NewRedisCounter(client)
}
