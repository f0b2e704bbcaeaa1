package request

import (
	"strings"

	"stay-booking/internal/domain/reservation"
	"stay-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	PropertyID      uuid.UUID `json:"property_id" binding:"required"`
	CheckInDate     string    `json:"check_in_date" binding:"required"`
	CheckOutDate    string    `json:"check_out_date" binding:"required"`
	GuestCount      int       `json:"guest_count"`
	SpecialRequests string    `json:"special_requests,omitempty" binding:"max=2000"`
}

func (r CreateReservationRequest) ToInput(userID uuid.UUID) (commands.CreateReservationInput, error) {
	period, err := reservation.ParseStayPeriod(r.CheckInDate, r.CheckOutDate)
	if err != nil {
		return commands.CreateReservationInput{}, err
	}
	return commands.CreateReservationInput{
		PropertyID:      r.PropertyID,
		UserID:          userID,
		CheckIn:         period.CheckIn(),
		CheckOut:        period.CheckOut(),
		GuestCount:      r.GuestCount,
		SpecialRequests: strings.TrimSpace(r.SpecialRequests),
	}, nil
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateStatusRequest) ToStatus() (reservation.Status, error) {
	return reservation.NewStatus(strings.ToUpper(strings.TrimSpace(r.Status)))
}

type RecordPaymentRequest struct {
	PaymentMethod    string `json:"payment_method" binding:"required,max=100"`
	PaymentReference string `json:"payment_reference" binding:"max=255"`
}

type ListReservationsQuery struct {
	Filter string `form:"filter"`
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

type StayQuery struct {
	CheckIn  string `form:"check_in" binding:"required"`
	CheckOut string `form:"check_out" binding:"required"`
}

func (q StayQuery) Period() (reservation.StayPeriod, error) {
	return reservation.ParseStayPeriod(q.CheckIn, q.CheckOut)
}

type CalendarQuery struct {
	Year  int `form:"year" binding:"required,min=1970,max=9999"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}
