package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fiscal-gateway/internal/api"
	"fiscal-gateway/internal/auth"
	_ "fiscal-gateway/internal/drivers/aisino"
	_ "fiscal-gateway/internal/drivers/atol"
	_ "fiscal-gateway/internal/drivers/custom"
	_ "fiscal-gateway/internal/drivers/evotor"
	_ "fiscal-gateway/internal/drivers/hdm"
	_ "fiscal-gateway/internal/drivers/newland"
	_ "fiscal-gateway/internal/drivers/shtrih"
	"fiscal-gateway/internal/gateway"
	"fiscal-gateway/internal/metrics"
	"fiscal-gateway/internal/settings"

	goeen_log "github.com/eencloud/goeen/log"
)

func main() {
	logger := goeen_log.NewContext(os.Stdout, "", goeen_log.LevelInfo).GetLogger("fiscal-gateway", goeen_log.LevelInfo)
	logger.Info("Starting fiscal device gateway...")

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logger.Fatalf("DATABASE_URL is required to read fiscal device configurations")
	}

	store, err := settings.NewPostgresStore(dsn)
	if err != nil {
		logger.Fatalf("Failed to open settings store: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Errorf("Failed to close settings store: %v", err)
		}
	}()

	verifier := auth.NewTokenVerifier(auth.ParseTokenSpec(os.Getenv("GATEWAY_TOKENS")), logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if controlURL := os.Getenv("CONTROL_SERVER_URL"); controlURL != "" {
		verifier.StartRefresh(ctx, controlURL, 30*time.Second)
		logger.Infof("Caller token refresh enabled against %s", controlURL)
	}

	metrics.Register()

	dispatcher := gateway.NewDispatcher(logger, store)

	apiAddr := ":8475"
	if port := os.Getenv("GATEWAY_PORT"); port != "" {
		apiAddr = ":" + port
	}

	server := api.NewServer(apiAddr, logger, dispatcher, verifier)

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Errorf("API Server failed: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Stop(shutdownCtx); err != nil {
		logger.Errorf("Server shutdown failed: %v", err)
	}

	logger.Info("Fiscal device gateway stopped")
}
