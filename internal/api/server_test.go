package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"vatcheck/internal/api"
	"vatcheck/internal/api/handler/v1handler"
	"vatcheck/internal/config"
	"vatcheck/pkg/domain"
	"vatcheck/pkg/logger"

	mockchecker "vatcheck/internal/checker/mock"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func newTestServer(t *testing.T) (*mockchecker.MockChecker, *httptest.Server) {
	t.Helper()

	ctrl := gomock.NewController(t)
	c := mockchecker.NewMockChecker(ctrl)

	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{Name: "vatcheck_test_total"}))

	srv := httptest.NewServer(api.NewHandler(api.Deps{
		Deps:     v1handler.Deps{Checker: c},
		Gatherer: reg,
	}, api.Options{MetricsPath: "/metrics"}))
	t.Cleanup(srv.Close)

	return c, srv
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()

	res, err := http.Get(url) //nolint: noctx
	require.NoError(t, err)
	t.Cleanup(func() { _ = res.Body.Close() })

	return res
}

func TestServer_Routes(t *testing.T) {
	c, srv := newTestServer(t)
	c.EXPECT().Check(gomock.Any(), "DE123456789").Return(domain.CheckResult{Valid: true})

	res := get(t, srv.URL+"/v1/check/DE123456789")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NotEmpty(t, res.Header.Get("X-Request-Id"))
	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))

	for path, contentType := range map[string]string{
		"/healthz":       "application/json",
		"/specs/v1.yaml": "application/yaml",
	} {
		res = get(t, srv.URL+path)
		require.Equal(t, http.StatusOK, res.StatusCode, path)
		require.Equal(t, contentType, res.Header.Get("Content-Type"), path)
	}

	res = get(t, srv.URL+"/metrics")
	require.Equal(t, http.StatusOK, res.StatusCode)

	res = get(t, srv.URL+"/debug/pprof/")
	require.Equal(t, http.StatusOK, res.StatusCode)

	res = get(t, srv.URL+"/nope")
	require.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestNewOptions(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.Addr = ":9999"
	cfg.HTTP.RequestTimeout = 3 * time.Second
	cfg.HTTP.MetricsPath = "/m"

	opts := api.NewOptions(cfg)
	require.Equal(t, ":9999", opts.Addr)
	require.Equal(t, 3*time.Second, opts.RequestTimeout)
	require.Equal(t, "/m", opts.MetricsPath)

	srv := api.NewServer(api.Deps{}, opts)
	require.Equal(t, ":9999", srv.Addr)
	require.NotNil(t, srv.ErrorLog)
}
