package shared

import "stay-booking/internal/domain/reservation"

//go:generate mockgen -source=metrics.go -destination=../../../tests/mock/shared/metrics_mock.go -package=sharedmock

// Booking attempt outcomes.
const (
	OutcomeCreated          = "created"
	OutcomeValidationFailed = "validation_failed"
	OutcomeUnavailable      = "unavailable"
	OutcomeConflict         = "conflict"
	OutcomePropertyNotFound = "property_not_found"
	OutcomeError            = "error"
)

// BookingMetrics records engine activity. The Prometheus adapter lives in infra/metrics.
type BookingMetrics interface {
	BookingAttempt(outcome string)
	StatusTransition(from, to reservation.Status)
	NotificationFailed(event string)
}

type NopMetrics struct{}

func (NopMetrics) BookingAttempt(string)                                   {}
func (NopMetrics) StatusTransition(reservation.Status, reservation.Status) {}
func (NopMetrics) NotificationFailed(string)                               {}
