package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const healthPingTimeout = 3 * time.Second

// Health reports the service and its dependencies. Any dependency down turns
// the whole response into a 503 so load balancers stop routing here.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
		defer cancel()

		deps := gin.H{
			"postgres": pingPostgres(ctx, db),
			"redis":    pingRedis(ctx, rdb),
		}

		status, code := "ok", http.StatusOK
		for _, estado := range deps {
			if estado != "up" {
				status, code = "degraded", http.StatusServiceUnavailable
				break
			}
		}

		c.JSON(code, gin.H{"status": status, "deps": deps})
	}
}

func pingPostgres(ctx context.Context, db *gorm.DB) string {
	if db == nil {
		return "down"
	}
	sqlDB, err := db.DB()
	if err != nil || sqlDB.PingContext(ctx) != nil {
		return "down"
	}
	return "up"
}

func pingRedis(ctx context.Context, rdb *redis.Client) string {
	if rdb == nil {
		return "down"
	}
	if rdb.Ping(ctx).Err() != nil {
		return "down"
	}
	return "up"
}
