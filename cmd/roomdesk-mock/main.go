package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"roomdesk/internal/config"
	"roomdesk/internal/logger"
	"roomdesk/internal/mock"
	"roomdesk/internal/mockserver"
)

func main() {
	cfg := config.Load()

	zl, err := logger.New(cfg.Log.Level, cfg.Log.Format, "roomdesk-mock")
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zl.Sync()

	store := mock.NewStore(zl, mock.WithLatency(cfg.MockLatency))
	srv := mockserver.New(store, zl)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		zl.Info("shutting down")
		if err := srv.Shutdown(); err != nil {
			zl.Warn("shutdown failed", zap.Error(err))
		}
	}()

	if err := srv.Listen(cfg.MockServerAddr); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
