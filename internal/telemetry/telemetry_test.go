package telemetry

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandlerServesMetricsAndHealth(t *testing.T) {
	tel := New(Options{Name: "test"})
	srv := httptest.NewServer(tel.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp2, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)
}

func TestNewDefaultsName(t *testing.T) {
	tel := New(Options{})
	require.NotNil(t, tel.Logger)
	require.NotNil(t, tel.Registry)
	require.NotNil(t, tel.Stats)
}
