package response

import (
	"stay-booking/internal/domain/reservation"
	"stay-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityResponse struct {
	PropertyID   uuid.UUID `json:"propertyId"`
	CheckInDate  string    `json:"checkInDate"`
	CheckOutDate string    `json:"checkOutDate"`
	Available    bool      `json:"available"`
}

type QuoteResponse struct {
	PropertyID   uuid.UUID `json:"propertyId"`
	CheckInDate  string    `json:"checkInDate"`
	CheckOutDate string    `json:"checkOutDate"`
	NumberOfDays int       `json:"numberOfDays"`
	PricePerDay  string    `json:"pricePerDay"`
	Subtotal     string    `json:"subtotal"`
	CleaningFee  string    `json:"cleaningFee"`
	ServiceFee   string    `json:"serviceFee"`
	TaxAmount    string    `json:"taxAmount"`
	Total        string    `json:"total"`
	TotalCents   int64     `json:"totalCents"`
}

func FromAvailability(v *queries.AvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{
		PropertyID:   v.PropertyID,
		CheckInDate:  v.CheckIn.Format(reservation.DateLayout),
		CheckOutDate: v.CheckOut.Format(reservation.DateLayout),
		Available:    v.Available,
	}
}

func FromQuote(v *queries.QuoteView) *QuoteResponse {
	b := v.Breakdown
	return &QuoteResponse{
		PropertyID:   v.PropertyID,
		CheckInDate:  v.CheckIn.Format(reservation.DateLayout),
		CheckOutDate: v.CheckOut.Format(reservation.DateLayout),
		NumberOfDays: b.Days,
		PricePerDay:  b.PricePerDay.String(),
		Subtotal:     b.Subtotal.String(),
		CleaningFee:  b.CleaningFee.String(),
		ServiceFee:   b.ServiceFee.String(),
		TaxAmount:    b.TaxAmount.String(),
		Total:        b.Total.String(),
		TotalCents:   b.Total.Cents(),
	}
}
