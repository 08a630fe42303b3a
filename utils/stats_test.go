package utils

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()

	s.Observe(0, 10)
	assert.Equal(t, 10.0, s.AveragePopulation)
	assert.Zero(t, testutil.ToFloat64(s.generationsDone))

	s.Update(1, 20, 10*time.Millisecond)
	assert.Equal(t, 1, s.TotalGenerations)
	assert.Equal(t, 20, s.Population)
	assert.InDelta(t, 11.0, s.AveragePopulation, 1e-9)
	assert.InDelta(t, 100.0, s.GenerationsPerSecond, 1e-6)

	assert.Equal(t, 1.0, testutil.ToFloat64(s.generation))
	assert.Equal(t, 20.0, testutil.ToFloat64(s.population))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.generationsDone))
	assert.Equal(t, 1, testutil.CollectAndCount(s.advanceSeconds))
}

func TestMetricsHandler(t *testing.T) {
	s := NewStats()
	s.Update(3, 42, time.Millisecond)
	handler := NewMetricsHandler(s)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "life_population 42")
	assert.Contains(t, string(body), "life_generations_total 1")

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestServeMetricsOnListener(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- ServeMetrics(ctx, ln, NewMetricsHandler(NewStats()), NewNopLogger())
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("metrics server did not stop")
	}
}
