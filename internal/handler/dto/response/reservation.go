package response

import (
	"time"

	"stay-booking/internal/domain/reservation"
	"stay-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentResponse struct {
	IsPaid    bool       `json:"isPaid"`
	PaidAt    *time.Time `json:"paidAt,omitempty"`
	Method    *string    `json:"method,omitempty"`
	Reference *string    `json:"reference,omitempty"`
}

type ReservationResponse struct {
	ID                 uuid.UUID       `json:"id"`
	PropertyID         uuid.UUID       `json:"propertyId"`
	UserID             uuid.UUID       `json:"userId"`
	CheckInDate        string          `json:"checkInDate"`
	CheckOutDate       string          `json:"checkOutDate"`
	NumberOfDays       int             `json:"numberOfDays"`
	PricePerDay        string          `json:"pricePerDay"`
	CleaningFee        string          `json:"cleaningFee"`
	ServiceFee         string          `json:"serviceFee"`
	TaxAmount          string          `json:"taxAmount"`
	TotalPrice         string          `json:"totalPrice"`
	TotalPriceCents    int64           `json:"totalPriceCents"`
	GuestCount         int             `json:"guestCount"`
	Status             string          `json:"status"`
	SpecialRequests    *string         `json:"specialRequests,omitempty"`
	CancellationReason *string         `json:"cancellationReason,omitempty"`
	Payment            PaymentResponse `json:"payment"`
	Version            int32           `json:"version"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

type ReservationPageResponse struct {
	Items      []*ReservationResponse `json:"items"`
	NextCursor *string                `json:"nextCursor,omitempty"`
}

type CalendarResponse struct {
	PropertyID   uuid.UUID              `json:"propertyId"`
	Year         int                    `json:"year"`
	Month        int                    `json:"month"`
	Reservations []*ReservationResponse `json:"reservations"`
}

type CurrentCountResponse struct {
	PropertyID uuid.UUID `json:"propertyId"`
	Count      int64     `json:"count"`
}

type CompleteElapsedResponse struct {
	Completed int `json:"completed"`
}

func FromReservation(r *reservation.Reservation) *ReservationResponse {
	payment := r.Payment()
	return &ReservationResponse{
		ID:                 r.ID(),
		PropertyID:         r.PropertyID(),
		UserID:             r.UserID(),
		CheckInDate:        r.CheckIn().Format(reservation.DateLayout),
		CheckOutDate:       r.CheckOut().Format(reservation.DateLayout),
		NumberOfDays:       r.NumberOfDays(),
		PricePerDay:        r.PricePerDay().String(),
		CleaningFee:        r.CleaningFee().String(),
		ServiceFee:         r.ServiceFee().String(),
		TaxAmount:          r.TaxAmount().String(),
		TotalPrice:         r.TotalPrice().String(),
		TotalPriceCents:    r.TotalPrice().Cents(),
		GuestCount:         r.GuestCount(),
		Status:             r.Status().String(),
		SpecialRequests:    optional(r.SpecialRequests().String()),
		CancellationReason: optional(r.CancellationReason()),
		Payment: PaymentResponse{
			IsPaid:    payment.IsPaid,
			PaidAt:    payment.PaidAt,
			Method:    optional(payment.Method),
			Reference: optional(payment.Reference),
		},
		Version:   r.Version(),
		CreatedAt: r.CreatedAt(),
		UpdatedAt: r.UpdatedAt(),
	}
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:                 v.ID,
		PropertyID:         v.PropertyID,
		UserID:             v.UserID,
		CheckInDate:        v.CheckInDate.Format(reservation.DateLayout),
		CheckOutDate:       v.CheckOutDate.Format(reservation.DateLayout),
		NumberOfDays:       v.NumberOfDays,
		PricePerDay:        reservation.NewMoney(v.PricePerDayCents).String(),
		CleaningFee:        reservation.NewMoney(v.CleaningFeeCents).String(),
		ServiceFee:         reservation.NewMoney(v.ServiceFeeCents).String(),
		TaxAmount:          reservation.NewMoney(v.TaxAmountCents).String(),
		TotalPrice:         reservation.NewMoney(v.TotalPriceCents).String(),
		TotalPriceCents:    v.TotalPriceCents,
		GuestCount:         v.GuestCount,
		Status:             v.Status,
		SpecialRequests:    v.SpecialRequests,
		CancellationReason: v.CancellationReason,
		Payment: PaymentResponse{
			IsPaid:    v.IsPaid,
			PaidAt:    v.PaymentDate,
			Method:    v.PaymentMethod,
			Reference: v.PaymentReference,
		},
		Version:   v.Version,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, len(views))
	for i, v := range views {
		out[i] = FromReservationView(v)
	}
	return out
}

func FromPage(p *queries.Page) *ReservationPageResponse {
	return &ReservationPageResponse{
		Items:      FromReservationViews(p.Items),
		NextCursor: p.NextCursor,
	}
}

func FromCalendar(v *queries.CalendarView) *CalendarResponse {
	return &CalendarResponse{
		PropertyID:   v.PropertyID,
		Year:         v.Year,
		Month:        int(v.Month),
		Reservations: FromReservationViews(v.Reservations),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
