package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"brekkie/internal/commons"
	"brekkie/internal/config"
	"brekkie/internal/infrastructure/logger"
	"brekkie/internal/infrastructure/mysql"
	"brekkie/internal/ledger"
	"brekkie/internal/order"
	"brekkie/internal/server"
	"brekkie/internal/site"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := commons.LoadConfigFile(path, cfg); err != nil {
			log.Fatalf("loading config file: %v", err)
		}
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	home, err := site.New(zapLogger)
	if err != nil {
		zapLogger.Fatal("parsing page template", zap.Error(err))
	}

	orderCtrl := order.NewModule(cfg, zapLogger)
	ledgerCtrl, sheetCtrl, err := ledger.NewModule(db, cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("wiring ledger module", zap.Error(err))
	}

	router := server.NewRouter(home, orderCtrl, ledgerCtrl, sheetCtrl, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
