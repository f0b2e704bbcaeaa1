package notify

import (
	"context"
	"time"

	"stay-booking/internal/domain/reservation"

	"github.com/google/uuid"
)

//go:generate mockgen -source=notifier.go -destination=../../../tests/mock/notify/notifier_mock.go -package=notifymock

type EventType string

const (
	EventReservationCreated   EventType = "reservation_created"
	EventStatusChanged        EventType = "status_changed"
	EventReservationCancelled EventType = "reservation_cancelled"
	EventPaymentRecorded      EventType = "payment_recorded"
)

// Event is the payload handed to notifiers. It is JSON encoded on the queue.
type Event struct {
	Type               EventType `json:"type"`
	ReservationID      uuid.UUID `json:"reservation_id"`
	PropertyID         uuid.UUID `json:"property_id"`
	UserID             uuid.UUID `json:"user_id"`
	PreviousStatus     string    `json:"previous_status,omitempty"`
	Status             string    `json:"status"`
	CheckIn            string    `json:"check_in"`
	CheckOut           string    `json:"check_out"`
	GuestCount         int       `json:"guest_count"`
	TotalPrice         string    `json:"total_price"`
	CancellationReason string    `json:"cancellation_reason,omitempty"`
	PaymentMethod      string    `json:"payment_method,omitempty"`
	PaymentReference   string    `json:"payment_reference,omitempty"`
	OccurredAt         time.Time `json:"occurred_at"`
}

func NewEvent(typ EventType, r *reservation.Reservation, previous reservation.Status, at time.Time) Event {
	return Event{
		Type:               typ,
		ReservationID:      r.ID(),
		PropertyID:         r.PropertyID(),
		UserID:             r.UserID(),
		PreviousStatus:     previous.String(),
		Status:             r.Status().String(),
		CheckIn:            r.CheckIn().Format(reservation.DateLayout),
		CheckOut:           r.CheckOut().Format(reservation.DateLayout),
		GuestCount:         r.GuestCount(),
		TotalPrice:         r.TotalPrice().String(),
		CancellationReason: r.CancellationReason(),
		PaymentMethod:      r.Payment().Method,
		PaymentReference:   r.Payment().Reference,
		OccurredAt:         at,
	}
}

type Notifier interface {
	NotifyReservationCreated(ctx context.Context, ev Event) error
	NotifyStatusChanged(ctx context.Context, ev Event) error
	NotifyReservationCancelled(ctx context.Context, ev Event) error
	NotifyPaymentRecorded(ctx context.Context, ev Event) error
}

type Contact struct {
	Name  string
	Email string
}

// Recipients are the people an event about one reservation is mailed to.
type Recipients struct {
	PropertyTitle string
	Guest         Contact
	Owner         Contact
}

type RecipientLookup interface {
	RecipientsFor(ctx context.Context, reservationID uuid.UUID) (*Recipients, error)
}
