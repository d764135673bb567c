package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"orgconnect/infrastructure/metrics"
)

func TestHandler_ExposesCollectors(t *testing.T) {
	reg := metrics.NewRegistry()
	metrics.SchedulerTicks.WithLabelValues("audit").Inc()
	metrics.Logins.WithLabelValues("success").Inc()

	srv := httptest.NewServer(metrics.Handler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	require.Contains(t, string(body), `orgconnect_scheduler_ticks_total{job="audit"}`)
	require.Contains(t, string(body), `orgconnect_logins_total{outcome="success"}`)
	require.Contains(t, string(body), "orgconnect_open_workspaces")
}

func TestCountersAccumulate(t *testing.T) {
	before := testutil.ToFloat64(metrics.ViewsRendered.WithLabelValues("dashboard"))
	metrics.ViewsRendered.WithLabelValues("dashboard").Inc()
	metrics.ViewsRendered.WithLabelValues("dashboard").Inc()
	require.Equal(t, before+2, testutil.ToFloat64(metrics.ViewsRendered.WithLabelValues("dashboard")))
}
