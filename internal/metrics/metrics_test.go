package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveRequest(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewMetrics(registry)

	m.ObserveRequest(http.MethodGet, "/api/hotels/", http.StatusOK, 0.01, 120)
	m.ObserveRequest(http.MethodGet, "/api/hotels/", http.StatusOK, 0.02, 120)
	m.ObserveRequest(http.MethodPost, "/api/hotels/", http.StatusForbidden, 0.01, 30)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/hotels/", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/api/hotels/", "403")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.HTTPRequestDuration))
}

func TestHandler(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewMetrics(registry)
	m.ObserveRequest(http.MethodGet, "/api/bookings/", http.StatusOK, 0.01, 10)

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	RegisterDBStats(registry, db)

	srv := httptest.NewServer(Handler(registry))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.Contains(string(body), "hotel_booking_http_requests_total"))
	assert.True(t, strings.Contains(string(body), "go_sql_max_open_connections"))
}
