package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func okPing(context.Context) error { return nil }

func failingPing(context.Context) error { return errors.New("connection refused") }

func TestHealthHandler(t *testing.T) {
	handler := NewHandler("v1.0.0")
	handler.RegisterChecker("postgres", NewPingChecker("postgres", okPing))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var response Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	require.Equal(t, StatusHealthy, response.Status)
	require.Equal(t, "v1.0.0", response.Version)
	require.Len(t, response.Checks, 1)
}

func TestHealthHandler_Unhealthy(t *testing.T) {
	handler := NewHandler("v1.0.0")
	handler.RegisterChecker("postgres", NewPingChecker("postgres", okPing))
	handler.RegisterChecker("redis", NewPingChecker("redis", failingPing))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var response Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	require.Equal(t, StatusUnhealthy, response.Status)
	require.Equal(t, "connection refused", response.Checks["redis"].Message)
}

func TestBacklogChecker_Degrades(t *testing.T) {
	stale := NewBacklogChecker("outbox", time.Minute, func(context.Context) (time.Time, error) {
		return time.Now().Add(-time.Hour), nil
	})
	require.Equal(t, StatusDegraded, stale.Check(context.Background()).Status)

	empty := NewBacklogChecker("outbox", time.Minute, func(context.Context) (time.Time, error) {
		return time.Time{}, nil
	})
	require.Equal(t, StatusHealthy, empty.Check(context.Background()).Status)

	handler := NewHandler("dev")
	handler.RegisterChecker("outbox", stale)
	response := handler.Run(context.Background())
	require.Equal(t, StatusDegraded, response.Status)
}

func TestRouter(t *testing.T) {
	handler := NewHandler("dev")
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("checkout_requests_total 1"))
	})
	router := Router(handler, metrics)

	cases := []struct {
		path string
		code int
		body string
	}{
		{"/livez", http.StatusOK, "ok"},
		{"/readyz", http.StatusOK, "ready"},
		{"/metrics", http.StatusOK, "checkout_requests_total 1"},
		{"/unknown", http.StatusNotFound, ""},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
		require.Equal(t, tc.code, w.Code, tc.path)
		if tc.body != "" {
			require.Equal(t, tc.body, w.Body.String(), tc.path)
		}
	}

	handler.RegisterChecker("postgres", NewPingChecker("postgres", failingPing))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Equal(t, "not ready", w.Body.String())
}

func TestPingChecker_ReceivesDeadline(t *testing.T) {
	checker := NewPingChecker("redis", func(ctx context.Context) error {
		if _, ok := ctx.Deadline(); !ok {
			return errors.New("missing deadline")
		}
		return nil
	})

	handler := NewHandler("dev")
	handler.RegisterChecker("redis", checker)
	require.Equal(t, StatusHealthy, handler.Run(context.Background()).Status)
}
