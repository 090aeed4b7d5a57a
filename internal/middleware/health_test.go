package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func healthBody(router *gin.Engine) string {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp.Body.String()
}

func TestHealthReportsUpdatedStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", HealthCheckHandler())

	UpdateHealthStatus("degraded")
	defer UpdateHealthStatus("ok")

	assert.Contains(t, healthBody(router), `"status":"degraded"`)

	UpdateHealthStatus("ok")
	assert.Contains(t, healthBody(router), `"status":"ok"`)
}

func TestMonitorDatabaseFlipsStatusOnPingFailure(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	dbMock.ExpectPing().WillReturnError(errors.New("connection refused"))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", HealthCheckHandler())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		MonitorDatabase(ctx, db, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return strings.Contains(healthBody(router), `"status":"degraded"`)
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done
	UpdateHealthStatus("ok")
}
