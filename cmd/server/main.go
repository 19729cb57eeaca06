package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/waruna834/skills-project-manager/internal/app"
	"github.com/waruna834/skills-project-manager/internal/config"
	"github.com/waruna834/skills-project-manager/internal/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	l, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = l.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bootstrap, cleanup, err := app.Bootstrap(ctx, cfg, l)
	if err != nil {
		l.Fatal("failed to bootstrap app", zap.Error(err))
	}
	defer func() {
		if err := cleanup(); err != nil {
			l.Warn("cleanup error", zap.Error(err))
		}
	}()

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		l.Fatal("invalid HTTP port", zap.Error(err))
	}

	errCh := make(chan error, 1)
	go func() {
		l.Info("server listening", zap.String("addr", addr), zap.String("env", cfg.App.Environment))
		errCh <- bootstrap.Fiber.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			l.Error("server error", zap.Error(err))
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := bootstrap.Fiber.ShutdownWithContext(shutdownCtx); err != nil {
			l.Warn("shutdown error", zap.Error(err))
		}
		l.Info("server stopped")
	}
}
