package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"safety-tracker-backend/internal/api/handlers"
	"safety-tracker-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
)

func newHealthHTTP(ping func(context.Context) error) *testutils.HTTPTestSuite {
	handler := handlers.NewHealthHandlerWithCheck(ping)
	client := testutils.SetupHTTPTest()
	client.Router.GET("/health", handler.Health)
	client.Router.GET("/health/ready", handler.Ready)
	client.Router.GET("/health/live", handler.Live)
	return client
}

func TestHealth(t *testing.T) {
	healthy := newHealthHTTP(func(context.Context) error { return nil })
	down := newHealthHTTP(func(context.Context) error { return errors.New("connection refused") })

	var resp handlers.HealthResponse
	testutils.AssertJSONResponse(t, healthy.MakeRequest(http.MethodGet, "/health", nil), http.StatusOK, &resp)
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "healthy", resp.Services["database"])
	assert.Equal(t, handlers.Version, resp.Version)

	testutils.AssertJSONResponse(t, down.MakeRequest(http.MethodGet, "/health", nil), http.StatusServiceUnavailable, &resp)
	assert.Equal(t, "unhealthy", resp.Status)
	assert.Contains(t, resp.Services["database"], "connection refused")
}

func TestReady(t *testing.T) {
	healthy := newHealthHTTP(func(context.Context) error { return nil })
	down := newHealthHTTP(func(context.Context) error { return errors.New("connection refused") })

	var resp map[string]interface{}
	testutils.AssertJSONResponse(t, healthy.MakeRequest(http.MethodGet, "/health/ready", nil), http.StatusOK, &resp)
	assert.Equal(t, true, resp["ready"])

	testutils.AssertJSONResponse(t, down.MakeRequest(http.MethodGet, "/health/ready", nil), http.StatusServiceUnavailable, &resp)
	assert.Equal(t, false, resp["ready"])
}

func TestLive_IgnoresDatabase(t *testing.T) {
	down := newHealthHTTP(func(context.Context) error { return errors.New("connection refused") })

	var resp map[string]interface{}
	testutils.AssertJSONResponse(t, down.MakeRequest(http.MethodGet, "/health/live", nil), http.StatusOK, &resp)
	assert.Equal(t, true, resp["alive"])
}
