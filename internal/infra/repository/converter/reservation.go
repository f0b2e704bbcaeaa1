package converter

import (
	"stay-booking/internal/domain/reservation"
	sqlc "stay-booking/internal/infra/sqlc/generated"
	"stay-booking/internal/pkg/pgconv"
	"stay-booking/internal/usecase/queries"
)

func ReservationToCreateParams(res *reservation.Reservation) sqlc.CreateReservationParams {
	payment := res.Payment()
	return sqlc.CreateReservationParams{
		ID:                 res.ID(),
		PropertyID:         res.PropertyID(),
		UserID:             res.UserID(),
		CheckInDate:        pgconv.DateToPgtype(res.CheckIn()),
		CheckOutDate:       pgconv.DateToPgtype(res.CheckOut()),
		NumberOfDays:       int32(res.NumberOfDays()), // #nosec G115 -- bounded by the date range check
		PricePerDayCents:   res.PricePerDay().Cents(),
		CleaningFeeCents:   res.CleaningFee().Cents(),
		ServiceFeeCents:    res.ServiceFee().Cents(),
		TaxAmountCents:     res.TaxAmount().Cents(),
		TotalPriceCents:    res.TotalPrice().Cents(),
		GuestCount:         int32(res.GuestCount()), // #nosec G115 -- bounded by max guests
		Status:             res.Status().String(),
		SpecialRequests:    pgconv.StringToNullableText(res.SpecialRequests().String()),
		CancellationReason: pgconv.StringToNullableText(res.CancellationReason()),
		IsPaid:             payment.IsPaid,
		PaymentDate:        pgconv.TimePtrToPgtype(payment.PaidAt),
		PaymentMethod:      pgconv.StringToNullableText(payment.Method),
		PaymentReference:   pgconv.StringToNullableText(payment.Reference),
		Version:            res.Version(),
		CreatedAt:          pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:          pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

// ReservationToUpdateParams carries only the fields a state transition may change.
func ReservationToUpdateParams(res *reservation.Reservation, expectedVersion int32) sqlc.UpdateReservationStateParams {
	payment := res.Payment()
	return sqlc.UpdateReservationStateParams{
		Status:             res.Status().String(),
		CancellationReason: pgconv.StringToNullableText(res.CancellationReason()),
		IsPaid:             payment.IsPaid,
		PaymentDate:        pgconv.TimePtrToPgtype(payment.PaidAt),
		PaymentMethod:      pgconv.StringToNullableText(payment.Method),
		PaymentReference:   pgconv.StringToNullableText(payment.Reference),
		UpdatedAt:          pgconv.TimeToPgtype(res.UpdatedAt()),
		ID:                 res.ID(),
		ExpectedVersion:    expectedVersion,
	}
}

func ReservationFromRow(row sqlc.Reservations) (*reservation.Reservation, error) {
	status, err := reservation.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}

	payment := reservation.Payment{
		IsPaid:    row.IsPaid,
		PaidAt:    pgconv.TimePtrFromPgtype(row.PaymentDate),
		Method:    pgconv.StringFromPgtype(row.PaymentMethod),
		Reference: pgconv.StringFromPgtype(row.PaymentReference),
	}

	return reservation.Reconstruct(reservation.ReconstructParams{
		ID:         row.ID,
		PropertyID: row.PropertyID,
		UserID:     row.UserID,
		Period: reservation.NewStayPeriod(
			pgconv.DateFromPgtype(row.CheckInDate),
			pgconv.DateFromPgtype(row.CheckOutDate),
		),
		NumberOfDays:       int(row.NumberOfDays),
		PricePerDay:        reservation.NewMoney(row.PricePerDayCents),
		CleaningFee:        reservation.NewMoney(row.CleaningFeeCents),
		ServiceFee:         reservation.NewMoney(row.ServiceFeeCents),
		TaxAmount:          reservation.NewMoney(row.TaxAmountCents),
		TotalPrice:         reservation.NewMoney(row.TotalPriceCents),
		GuestCount:         int(row.GuestCount),
		Status:             status,
		SpecialRequests:    reservation.NewNote(pgconv.StringFromPgtype(row.SpecialRequests)),
		CancellationReason: pgconv.StringFromPgtype(row.CancellationReason),
		Payment:            payment,
		Version:            row.Version,
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}

func ReservationsFromRows(rows []sqlc.Reservations) ([]*reservation.Reservation, error) {
	out := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		res, err := ReservationFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

func ReservationViewFromRow(row sqlc.Reservations) *queries.ReservationView {
	return &queries.ReservationView{
		ID:                 row.ID,
		PropertyID:         row.PropertyID,
		UserID:             row.UserID,
		CheckInDate:        pgconv.DateFromPgtype(row.CheckInDate),
		CheckOutDate:       pgconv.DateFromPgtype(row.CheckOutDate),
		NumberOfDays:       int(row.NumberOfDays),
		PricePerDayCents:   row.PricePerDayCents,
		CleaningFeeCents:   row.CleaningFeeCents,
		ServiceFeeCents:    row.ServiceFeeCents,
		TaxAmountCents:     row.TaxAmountCents,
		TotalPriceCents:    row.TotalPriceCents,
		GuestCount:         int(row.GuestCount),
		Status:             row.Status,
		SpecialRequests:    pgconv.StringPtrFromPgtype(row.SpecialRequests),
		CancellationReason: pgconv.StringPtrFromPgtype(row.CancellationReason),
		IsPaid:             row.IsPaid,
		PaymentDate:        pgconv.TimePtrFromPgtype(row.PaymentDate),
		PaymentMethod:      pgconv.StringPtrFromPgtype(row.PaymentMethod),
		PaymentReference:   pgconv.StringPtrFromPgtype(row.PaymentReference),
		Version:            row.Version,
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func ReservationViewsFromRows(rows []sqlc.Reservations) []*queries.ReservationView {
	out := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		out[i] = ReservationViewFromRow(row)
	}
	return out
}
