// Package main запускает HTTP-сервер сервиса ресторана.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/mmeshcher/restaurant-system/internal/config"
	"github.com/mmeshcher/restaurant-system/internal/handler"
	"github.com/mmeshcher/restaurant-system/internal/llm"
	"github.com/mmeshcher/restaurant-system/internal/menu"
	"github.com/mmeshcher/restaurant-system/internal/repository"
	"github.com/mmeshcher/restaurant-system/internal/service"
	"github.com/mmeshcher/restaurant-system/internal/tobi"
)

func main() {
	logger, _ := zap.NewProduction()

	cfg, err := config.Parse()
	if err != nil {
		logger.Sugar().Fatalw("configuration error", "error", err.Error())
	}

	logger = buildLogger(cfg.LogLevel)
	defer logger.Sync()

	sugar := logger.Sugar()

	repo, err := repository.NewPostgresRepository(cfg.DatabaseURI)
	if err != nil {
		sugar.Fatalw("database initialization error", "error", err.Error())
	}
	defer repo.Close()

	selector := tobi.NewSelector(menu.Categories(), nil)

	var generator service.Generator
	if cfg.UseLocalAI && cfg.LlamaServerURL != "" {
		generator = llm.NewClient(cfg.LlamaServerURL)
		sugar.Infow("llm delegation enabled", "url", cfg.LlamaServerURL)
	}

	svc := service.NewService(repo, selector, generator, cfg, logger)
	defer svc.Close()

	h := handler.NewHandler(svc, logger, cfg)

	r := h.SetupRouter()

	server := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// Запуск HTTP-сервера
	g.Go(func() error {
		sugar.Infow("starting restaurant server",
			"addr", cfg.RunAddress,
			"environment", cfg.Environment,
			"restaurant", cfg.RestaurantName,
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown при отмене контекста (сигнал или ошибка в другой горутине)
	g.Go(func() error {
		<-ctx.Done()
		sugar.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		sugar.Info("server stopped gracefully")
		return nil
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalw("application terminated with error", "error", err)
	}
}

func buildLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := zcfg.Build()
	if err != nil {
		logger, _ = zap.NewProduction()
	}
	return logger
}
