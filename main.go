package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"debt-planner/config"
	httpLayer "debt-planner/http"
	"debt-planner/logger"
	"debt-planner/money"
	"debt-planner/repository"
	"debt-planner/service"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file (yaml, toml or json)")
	flag.Parse()

	if err := run(configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Development: cfg.Log.Development,
		File:        cfg.Log.File,
	})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if !cfg.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cache, closeCache := newCache(ctx, cfg, log)
	defer closeCache()

	formatter := money.NewFormatter(cfg.Planner.Currency)
	projectionService := service.NewProjectionService(cache, cfg.Cache.TTL, cfg.Planner.MaxMonths, formatter, logger.Component(log, "projection"))
	strategyService := service.NewStrategyService(cache, service.StrategySettings{
		Mode:      cfg.Mode(),
		MinBudget: cfg.Planner.MinBudget,
		MaxLoans:  cfg.Planner.MaxLoans,
		MaxMonths: cfg.Planner.MaxMonths,
		CacheTTL:  cfg.Cache.TTL,
	}, formatter, logger.Component(log, "strategy"))

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Refill)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(httpLayer.RouterDeps{
		Projection: httpLayer.NewProjectionHandler(projectionService),
		Strategy:   httpLayer.NewStrategyHandler(strategyService),
		Limiter:    rateLimiter,
		Log:        logger.Component(log, "http"),
	})

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("debt planner API listening",
			zap.String("addr", server.Addr),
			zap.String("allocation_mode", string(cfg.Mode())))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", zap.Error(err))
		return err
	}
	log.Info("server exited")
	return nil
}

// newCache returns Redis when it is enabled and reachable, otherwise an
// in-process cache, together with the function that releases it.
func newCache(ctx context.Context, cfg *config.Config, log *zap.Logger) (repository.CacheRepository, func()) {
	if !cfg.Redis.Enabled {
		memory := repository.NewMemoryCache()
		return memory, memory.Stop
	}

	redisCache := repository.NewRedisCache(repository.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, logger.Component(log, "cache"))

	if err := redisCache.Connect(ctx, cfg.Redis.MaxRetries); err != nil {
		log.Warn("redis unavailable, using in-memory cache", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		_ = redisCache.Close()
		memory := repository.NewMemoryCache()
		return memory, memory.Stop
	}
	log.Info("using redis cache", zap.String("addr", cfg.Redis.Addr))
	return redisCache, func() { _ = redisCache.Close() }
}
