package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Laminito/ameublement-market/internal/app/router"
	"github.com/Laminito/ameublement-market/internal/pkg/backend"
	"github.com/Laminito/ameublement-market/internal/pkg/cleanup"
	"github.com/Laminito/ameublement-market/internal/pkg/config"
	redisdb "github.com/Laminito/ameublement-market/internal/pkg/db/redis"
	"github.com/Laminito/ameublement-market/internal/pkg/log_messages"
	"github.com/Laminito/ameublement-market/internal/pkg/logger"
)

func main() {

	ctx := context.Background()

	cfg, err := config.LoadFromConfig()
	if err != nil {
		log.Fatalf("%s: %v", log_messages.FailedLoadingConfiguration, err)
	}

	logger.Init(cfg.Logging.LogLevel)

	// Connect to Redis
	redisClient, err := redisdb.ConnectToRedis(ctx, cfg.Redis, nil)
	if err != nil {
		log.Fatalf("%s: %v", log_messages.FailedConnectingToRedis, err)
	}

	backendClient := backend.NewClient(cfg.Backend)

	engine := router.SetupRouter(cfg, redisClient, backendClient)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: engine,
	}

	go func() {
		logger.CtxInfo(ctx, "storefront listening on "+server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.CtxError(ctx, "Failed to start server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	cleanup.CleanupResources(ctx, redisClient, server)
}
