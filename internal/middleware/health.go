package middleware

import (
	"context"
	"database/sql"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthStatus struct {
	Status      string    `json:"status"`
	LastChecked time.Time `json:"last_checked"`
	Uptime      string    `json:"uptime"`
	Version     string    `json:"version"`
}

var (
	healthStatus = HealthStatus{
		Status:  "ok",
		Version: "1.0.0",
	}
	healthMutex sync.RWMutex
	startTime   = time.Now()
)

func HealthCheckHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		healthMutex.RLock()
		status := healthStatus
		healthMutex.RUnlock()

		status.Uptime = time.Since(startTime).String()
		status.LastChecked = time.Now()

		c.JSON(http.StatusOK, status)
	}
}

func UpdateHealthStatus(status string) {
	healthMutex.Lock()
	defer healthMutex.Unlock()

	healthStatus.Status = status
}

// MonitorDatabase pings the pool on an interval and flips the reported
// status between ok and degraded. Runs until ctx is canceled.
func MonitorDatabase(ctx context.Context, db *sql.DB, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := db.PingContext(ctx); err != nil {
				UpdateHealthStatus("degraded")
			} else {
				UpdateHealthStatus("ok")
			}
		}
	}
}
