//go:build unit

package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"stay-booking/internal/domain/reservation"
	"stay-booking/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := metrics.New()

	m.BookingAttempt("created")
	m.BookingAttempt("created")
	m.BookingAttempt("conflict")
	m.StatusTransition(reservation.StatusPending, reservation.StatusConfirmed)
	m.NotificationFailed("reservation.created")
	m.RecordThrottle("")

	expected := `
# HELP stay_booking_booking_attempts_total Reservation creation attempts segmented by outcome.
# TYPE stay_booking_booking_attempts_total counter
stay_booking_booking_attempts_total{outcome="conflict"} 1
stay_booking_booking_attempts_total{outcome="created"} 2
# HELP stay_booking_booking_status_transitions_total Reservation status transitions segmented by source and target status.
# TYPE stay_booking_booking_status_transitions_total counter
stay_booking_booking_status_transitions_total{from="PENDING",to="CONFIRMED"} 1
# HELP stay_booking_notification_failures_total Notifications that could not be handed to the notifier.
# TYPE stay_booking_notification_failures_total counter
stay_booking_notification_failures_total{event="reservation.created"} 1
# HELP stay_booking_http_throttles_total Requests rejected by the rate limiter.
# TYPE stay_booking_http_throttles_total counter
stay_booking_http_throttles_total{reason="unspecified"} 1
`
	err := testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected),
		"stay_booking_booking_attempts_total",
		"stay_booking_booking_status_transitions_total",
		"stay_booking_notification_failures_total",
		"stay_booking_http_throttles_total",
	)
	assert.NoError(t, err)
}

func TestMetrics_ObserveHTTP(t *testing.T) {
	m := metrics.New()

	m.ObserveHTTP(http.MethodGet, "/api/reservations/:id", http.StatusOK, 20*time.Millisecond)
	m.ObserveHTTP(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	count, err := testutil.GatherAndCount(m.Registry(), "stay_booking_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `route="unmatched"`)
	assert.Contains(t, string(body), `stay_booking_http_request_duration_seconds_count{method="GET",route="/api/reservations/:id"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
