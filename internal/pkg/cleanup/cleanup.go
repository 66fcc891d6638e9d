package cleanup

import (
	"context"
	"net/http"
	"time"

	"github.com/Laminito/ameublement-market/internal/pkg/db/redis"
	"github.com/Laminito/ameublement-market/internal/pkg/log_messages"
	"github.com/Laminito/ameublement-market/internal/pkg/logger"
)

func CleanupResources(
	ctx context.Context,
	redisClient *redis.RedisClient,
	server *http.Server,
) {
	logger.CtxInfo(ctx, log_messages.CleanupStarted)

	cleanupHTTPServer(server, ctx)
	cleanupRedisResource(redisClient, ctx)

	logger.CtxInfo(ctx, log_messages.CleanupCompleted)
}

func cleanupHTTPServer(server *http.Server, ctx context.Context) {
	if server == nil {
		return
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, 8*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.CtxError(ctx, "Failed to shutdown HTTP server", err)
	} else {
		logger.CtxInfo(ctx, "HTTP server shutdown successfully")
	}
}

func cleanupRedisResource(redisClient *redis.RedisClient, ctx context.Context) {
	if redisClient == nil || redisClient.Client == nil {
		return
	}
	if err := redis.Disconnect(redisClient.Client); err != nil {
		logger.CtxError(ctx, "Failed to close Redis client", err)
	} else {
		logger.CtxInfo(ctx, "Redis client closed successfully")
	}
}
