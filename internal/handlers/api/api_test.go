package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpize/internal/repositories/memory"
	"helpize/internal/services"
	"helpize/internal/utils"
	"helpize/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestListAlerts_EmptyIsArray(t *testing.T) {
	svc := services.NewAlertService(memory.NewAlertRepository(), logger.NewNop())
	router := gin.New()
	router.GET("/api/alerts", NewAlertHandler(svc, logger.NewNop()).ListAlerts)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/alerts", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestListAlerts_NullUserForAnonymous(t *testing.T) {
	svc := services.NewAlertService(memory.NewAlertRepository(), logger.NewNop())
	ctx := context.Background()
	_, err := svc.Create(ctx, "Hall", "fire", nil)
	require.NoError(t, err)
	_, err = svc.Create(ctx, "Park", "flood", utils.StringPtr("a@b.c"))
	require.NoError(t, err)

	router := gin.New()
	router.GET("/api/alerts", NewAlertHandler(svc, logger.NewNop()).ListAlerts)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/alerts", nil))

	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Nil(t, body[0]["user"])
	assert.Contains(t, body[0], "user")
	assert.Equal(t, "a@b.c", body[1]["user"])
	assert.Equal(t, "Park", body[1]["location"])
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealth(t *testing.T) {
	router := gin.New()
	router.GET("/ok", NewHealthHandler(nil).Health)
	router.GET("/bad", NewHealthHandler(map[string]Pinger{
		"mongodb": pingFunc(func(context.Context) error { return errors.New("connection refused") }),
	}).Health)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bad", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
}
