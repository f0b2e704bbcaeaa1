package converter

import (
	"stay-booking/internal/domain/property"
	sqlc "stay-booking/internal/infra/sqlc/generated"
	"stay-booking/internal/pkg/pgconv"
)

func PropertyFromRow(row sqlc.Properties) (*property.Property, error) {
	status, err := property.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}
	return property.Reconstruct(property.Params{
		ID:               row.ID,
		OwnerID:          row.OwnerID,
		Title:            row.Title,
		PricePerDayCents: row.PricePerDayCents,
		Bedrooms:         pgconv.IntPtrFromPgtype(row.Bedrooms),
		MinStayDays:      pgconv.IntPtrFromPgtype(row.MinStayDays),
		MaxStayDays:      pgconv.IntPtrFromPgtype(row.MaxStayDays),
		MaxGuests:        pgconv.IntPtrFromPgtype(row.MaxGuests),
		Status:           status,
		Policies: property.Policies{
			PetsAllowed:    row.PetsAllowed,
			SmokingAllowed: row.SmokingAllowed,
			PartiesAllowed: row.PartiesAllowed,
		},
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}
