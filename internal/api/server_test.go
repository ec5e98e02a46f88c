package api_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"skychart/internal/api"
	"skychart/internal/api/handler/v1handler"
	mockchart "skychart/internal/chart/mock"
	"skychart/pkg/metrics"
	"skychart/pkg/zodiac"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newServer(t *testing.T) (*httptest.Server, *mockchart.MockService, *rsa.PrivateKey) {
	t.Helper()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})

	svc := mockchart.NewMockService(gomock.NewController(t))
	reg := prometheus.NewRegistry()
	mp, err := metrics.NewMeterProvider(reg)
	require.NoError(t, err)
	srv, err := api.NewServer(api.Deps{
		Deps:          v1handler.Deps{Charts: svc},
		MeterProvider: mp,
		Gatherer:      reg,
	}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: string(pubPEM)},
		RequestTimeout:    5 * time.Second,
		MetricsPath:       "/metrics",
	})
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)

	return ts, svc, priv
}

func get(t *testing.T, url, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = res.Body.Close() })

	return res
}

func TestServer_RequiresAuth(t *testing.T) {
	ts, _, _ := newServer(t)

	res := get(t, ts.URL+"/v1/classify?longitude=10", "")
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
}

func TestServer_AuthenticatedRoute(t *testing.T) {
	ts, svc, priv := newServer(t)

	now := time.Now()
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString(priv)
	require.NoError(t, err)

	c, err := zodiac.Classify(10, 1)
	require.NoError(t, err)
	svc.EXPECT().Classify(10.0, 0.0).Return(c, nil)

	res := get(t, ts.URL+"/v1/classify?longitude=10", token)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "application/json", res.Header.Get("Content-Type"))
}

func TestServer_PublicEndpoints(t *testing.T) {
	ts, _, _ := newServer(t)

	res := get(t, ts.URL+"/specs/v1.yaml", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "application/yaml", res.Header.Get("Content-Type"))

	res = get(t, ts.URL+"/v1/docs/", "")
	require.Equal(t, http.StatusOK, res.StatusCode)

	// the previous requests are counted by the metrics middleware
	res = get(t, ts.URL+"/metrics", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
}
