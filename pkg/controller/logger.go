package controller

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"skychart/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-Id"

const maxRequestIDLen = 128

// statusRecorder captures the status code and body size written downstream.
type statusRecorder struct {
	http.ResponseWriter

	status int
	bytes  int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += n

	return n, err //nolint: wrapcheck
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rec *statusRecorder) Unwrap() http.ResponseWriter { return rec.ResponseWriter }

// GetClientIP returns the first valid address of X-Forwarded-For, then
// X-Real-IP, then the connection's remote address.
func GetClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); net.ParseIP(ip) != nil {
			return ip
		}
	}

	if xrip := strings.TrimSpace(r.Header.Get("X-Real-IP")); net.ParseIP(xrip) != nil {
		return xrip
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return ip
}

// CtxKey is a string-based type used for storing values in request contexts.
type CtxKey string

// RequestIDKey is the context key under which the current request ID is stored.
const RequestIDKey CtxKey = "RequestID"

// requestID reuses a caller supplied ID when it is short printable ASCII.
func requestID(r *http.Request) string {
	id := r.Header.Get(RequestIDHeader)
	if id == "" || len(id) > maxRequestIDLen {
		return uuid.NewString()
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return uuid.NewString()
		}
	}

	return id
}

func accessLevel(status int) zapcore.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zapcore.ErrorLevel
	case status >= http.StatusBadRequest:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}

// WithLogger returns a middleware that puts a request scoped logger and request
// ID into the context, echoes the ID in the response and writes an access log
// whose level follows the status class. Requests under quietPaths, such as
// the metrics endpoint, are logged at debug level.
func WithLogger(next http.Handler, quietPaths ...string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := requestID(r)
		w.Header().Set(RequestIDHeader, id)

		ctx := context.WithValue(r.Context(), RequestIDKey, id)
		ctx = logger.WithFields(ctx, zap.String(string(RequestIDKey), id))

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r.WithContext(ctx))

		level := accessLevel(rec.status)
		for _, p := range quietPaths {
			if p != "" && strings.HasPrefix(r.URL.Path, p) && level == zapcore.InfoLevel {
				level = zapcore.DebugLevel
			}
		}

		if ce := logger.Get(ctx).Check(level, "Access log"); ce != nil {
			ce.Write(
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("query", r.URL.RawQuery),
				zap.Int("status_code", rec.status),
				zap.Int("bytes", rec.bytes),
				zap.Float64("latency", time.Since(start).Seconds()),
				zap.String("client_ip", GetClientIP(r)),
				zap.String("user_agent", r.UserAgent()),
				zap.String("referer", r.Referer()),
			)
		}
	})
}
