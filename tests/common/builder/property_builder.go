//go:build unit || e2e

package builder

import (
	"time"

	"stay-booking/internal/domain/property"
	sqlc "stay-booking/internal/infra/sqlc/generated"
	"stay-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PropertyBuilder struct {
	ID               uuid.UUID
	OwnerID          uuid.UUID
	Title            string
	PricePerDayCents int64
	Bedrooms         *int
	MinStayDays      *int
	MaxStayDays      *int
	MaxGuests        *int
	Status           property.Status
	Policies         property.Policies
	CreatedAt        time.Time
}

func NewPropertyBuilder() *PropertyBuilder {
	return &PropertyBuilder{
		ID:               uuid.New(),
		OwnerID:          uuid.New(),
		Title:            "Seaside Cottage",
		PricePerDayCents: 10000,
		Status:           property.StatusAvailable,
		CreatedAt:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *PropertyBuilder) With(mutate func(*PropertyBuilder)) *PropertyBuilder {
	mutate(b)
	return b
}

func (b *PropertyBuilder) params() property.Params {
	return property.Params{
		ID:               b.ID,
		OwnerID:          b.OwnerID,
		Title:            b.Title,
		PricePerDayCents: b.PricePerDayCents,
		Bedrooms:         b.Bedrooms,
		MinStayDays:      b.MinStayDays,
		MaxStayDays:      b.MaxStayDays,
		MaxGuests:        b.MaxGuests,
		Status:           b.Status,
		Policies:         b.Policies,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.CreatedAt,
	}
}

// Build methods
func (b *PropertyBuilder) BuildDomain() (*property.Property, error) {
	return property.NewProperty(b.params())
}

// MustBuild skips validation so that tests can model rows the constructor would reject.
func (b *PropertyBuilder) MustBuild() *property.Property {
	return property.Reconstruct(b.params())
}

func (b *PropertyBuilder) BuildRow() sqlc.Properties {
	return sqlc.Properties{
		ID:               b.ID,
		OwnerID:          b.OwnerID,
		Title:            b.Title,
		PricePerDayCents: b.PricePerDayCents,
		Bedrooms:         pgconv.IntPtrToPgtype(b.Bedrooms),
		MinStayDays:      pgconv.IntPtrToPgtype(b.MinStayDays),
		MaxStayDays:      pgconv.IntPtrToPgtype(b.MaxStayDays),
		MaxGuests:        pgconv.IntPtrToPgtype(b.MaxGuests),
		Status:           b.Status.String(),
		PetsAllowed:      b.Policies.PetsAllowed,
		SmokingAllowed:   b.Policies.SmokingAllowed,
		PartiesAllowed:   b.Policies.PartiesAllowed,
		CreatedAt:        pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:        pgconv.TimeToPgtype(b.CreatedAt),
	}
}

// Fluent builder methods
func (b *PropertyBuilder) WithID(id uuid.UUID) *PropertyBuilder {
	b.ID = id
	return b
}

func (b *PropertyBuilder) WithOwnerID(ownerID uuid.UUID) *PropertyBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *PropertyBuilder) WithTitle(title string) *PropertyBuilder {
	b.Title = title
	return b
}

func (b *PropertyBuilder) WithPricePerDay(cents int64) *PropertyBuilder {
	b.PricePerDayCents = cents
	return b
}

func (b *PropertyBuilder) WithBedrooms(n int) *PropertyBuilder {
	b.Bedrooms = &n
	return b
}

func (b *PropertyBuilder) WithStayBounds(minDays, maxDays int) *PropertyBuilder {
	b.MinStayDays = &minDays
	b.MaxStayDays = &maxDays
	return b
}

func (b *PropertyBuilder) WithMinStay(days int) *PropertyBuilder {
	b.MinStayDays = &days
	return b
}

func (b *PropertyBuilder) WithMaxStay(days int) *PropertyBuilder {
	b.MaxStayDays = &days
	return b
}

func (b *PropertyBuilder) WithMaxGuests(n int) *PropertyBuilder {
	b.MaxGuests = &n
	return b
}

func (b *PropertyBuilder) WithStatus(status property.Status) *PropertyBuilder {
	b.Status = status
	return b
}

func (b *PropertyBuilder) AsMaintenance() *PropertyBuilder {
	b.Status = property.StatusMaintenance
	return b
}
