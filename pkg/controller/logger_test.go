package controller_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"skychart/pkg/controller"
	"skychart/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetClientIP(t *testing.T) {
	cases := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded for", map[string]string{"X-Forwarded-For": "1.2.3.4, 5.6.7.8"}, "10.0.0.1:1", "1.2.3.4"},
		{"forwarded for garbage", map[string]string{"X-Forwarded-For": "unknown", "X-Real-IP": "9.8.7.6"}, "10.0.0.1:1", "9.8.7.6"},
		{"real ip", map[string]string{"X-Real-IP": "9.8.7.6"}, "10.0.0.1:1", "9.8.7.6"},
		{"remote addr", nil, "10.0.0.1:12345", "10.0.0.1"},
		{"invalid remote addr", nil, "not-an-addr", "not-an-addr"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tc.remote
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			require.Equal(t, tc.want, controller.GetClientIP(req))
		})
	}
}

// observe serves req through WithLogger with an observed logger in its context.
func observe(t *testing.T, next http.Handler, req *http.Request, quiet ...string) (*httptest.ResponseRecorder, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	req = req.WithContext(logger.WithLogger(req.Context(), zap.New(core)))

	rec := httptest.NewRecorder()
	controller.WithLogger(next, quiet...).ServeHTTP(rec, req)

	return rec, logs
}

func TestWithLogger_RequestID(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(controller.RequestIDKey).(string)
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(controller.RequestIDHeader, "abc-123")
	rec, logs := observe(t, next, req)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "abc-123", seen)
	require.Equal(t, "abc-123", rec.Header().Get(controller.RequestIDHeader))
	require.Equal(t, "abc-123", logs.All()[0].ContextMap()[string(controller.RequestIDKey)])

	// generated when missing or unusable
	for _, id := range []string{"", "has space", strings.Repeat("x", 200)} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if id != "" {
			req.Header.Set(controller.RequestIDHeader, id)
		}
		rec, _ := observe(t, next, req)
		got := rec.Header().Get(controller.RequestIDHeader)
		require.NotEmpty(t, got)
		require.NotEqual(t, id, got)
		require.Equal(t, got, seen)
	}
}

func TestWithLogger_LevelFollowsStatus(t *testing.T) {
	cases := []struct {
		status int
		level  zapcore.Level
	}{
		{http.StatusOK, zapcore.InfoLevel},
		{http.StatusNotFound, zapcore.WarnLevel},
		{http.StatusServiceUnavailable, zapcore.ErrorLevel},
	}
	for _, tc := range cases {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			_, _ = w.Write([]byte("hello"))
		})
		_, logs := observe(t, next, httptest.NewRequest(http.MethodGet, "/v1/charts?limit=5", nil))

		entries := logs.All()
		require.Len(t, entries, 1)
		require.Equal(t, tc.level, entries[0].Level)
		fields := entries[0].ContextMap()
		require.Equal(t, int64(tc.status), fields["status_code"])
		require.Equal(t, int64(5), fields["bytes"])
		require.Equal(t, "/v1/charts", fields["path"])
		require.Equal(t, "limit=5", fields["query"])
	}
}

func TestWithLogger_QuietPaths(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	_, logs := observe(t, ok, httptest.NewRequest(http.MethodGet, "/metrics", nil), "/metrics")
	require.Equal(t, zapcore.DebugLevel, logs.All()[0].Level)

	// failures stay visible on quiet paths
	fail := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	_, logs = observe(t, fail, httptest.NewRequest(http.MethodGet, "/metrics", nil), "/metrics")
	require.Equal(t, zapcore.ErrorLevel, logs.All()[0].Level)
}

func TestWithLogger_DefaultLogger(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment, ""))
	rec := httptest.NewRecorder()
	controller.WithLogger(http.NotFoundHandler()).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/", nil).WithContext(context.Background()))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
