package reservation

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	ReasonCancelledByGuest = "Cancelled by guest"
	ReasonCancelledByHost  = "Cancelled by host"

	DefaultCancellationWindowDays = 2
)

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusCompleted},
}

func CanTransition(from, to Status) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (r *Reservation) transition(to Status, now time.Time) error {
	if !CanTransition(r.status, to) {
		return &InvalidTransitionError{From: r.status, To: to}
	}
	r.status = to
	r.updatedAt = now
	return nil
}

// Confirm moves a PENDING reservation to CONFIRMED and marks it paid.
func (r *Reservation) Confirm(now time.Time) error {
	if err := r.transition(StatusConfirmed, now); err != nil {
		return err
	}
	r.markPaid(now)
	return nil
}

func (r *Reservation) Cancel(reason string, now time.Time) error {
	if err := r.transition(StatusCancelled, now); err != nil {
		return err
	}
	r.cancellationReason = strings.TrimSpace(reason)
	return nil
}

func (r *Reservation) Complete(now time.Time) error {
	return r.transition(StatusCompleted, now)
}

// RecordPayment stores payment details on a PENDING or CONFIRMED reservation,
// confirming it when it was still pending. It reports whether the status changed.
func (r *Reservation) RecordPayment(method, reference string, now time.Time) (bool, error) {
	if !r.status.IsActive() {
		return false, &InvalidTransitionError{From: r.status, To: StatusConfirmed}
	}
	method = strings.TrimSpace(method)
	if method == "" {
		return false, ErrEmptyPaymentMethod
	}

	confirmed := false
	if r.status == StatusPending {
		if err := r.transition(StatusConfirmed, now); err != nil {
			return false, err
		}
		confirmed = true
	}

	r.markPaid(now)
	r.payment.Method = method
	r.payment.Reference = strings.TrimSpace(reference)
	r.updatedAt = now
	return confirmed, nil
}

func (r *Reservation) markPaid(now time.Time) {
	if r.payment.IsPaid {
		return
	}
	paidAt := now
	r.payment.IsPaid = true
	r.payment.PaidAt = &paidAt
}

// CancellationPolicy limits how late a guest may cancel. Privileged actors
// (admins, property owners) are not bound by it.
type CancellationPolicy struct {
	MinDaysBeforeCheckIn int
}

func NewCancellationPolicy(minDays int) CancellationPolicy {
	if minDays < 0 {
		minDays = 0
	}
	return CancellationPolicy{MinDaysBeforeCheckIn: minDays}
}

func (p CancellationPolicy) Check(r *Reservation, today time.Time, privileged bool) error {
	if privileged {
		return nil
	}
	days := DaysBetween(today, r.CheckIn())
	if days < p.MinDaysBeforeCheckIn {
		return &CancellationWindowError{DaysUntilCheckIn: days, MinimumDays: p.MinDaysBeforeCheckIn}
	}
	return nil
}

// CancellationReasonFor picks the stored reason depending on who cancelled.
func CancellationReasonFor(r *Reservation, actorID uuid.UUID) string {
	if r.BelongsTo(actorID) {
		return ReasonCancelledByGuest
	}
	return ReasonCancelledByHost
}
