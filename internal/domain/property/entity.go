package property

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle        = errors.New("property title cannot be empty")
	ErrNegativePrice     = errors.New("price per day cannot be negative")
	ErrInvalidStatus     = errors.New("invalid property status")
	ErrInvalidStayBounds = errors.New("min stay days cannot exceed max stay days")
	ErrNonPositiveBound  = errors.New("stay and guest bounds must be positive")
	ErrNegativeBedrooms  = errors.New("bedrooms cannot be negative")
)

// Property is the read-only view of a listing that the booking engine works against.
// Amounts are in cents.
type Property struct {
	id               uuid.UUID
	ownerID          uuid.UUID
	title            string
	pricePerDayCents int64
	bedrooms         *int
	minStayDays      *int
	maxStayDays      *int
	maxGuests        *int
	status           Status
	policies         Policies
	createdAt        time.Time
	updatedAt        time.Time
}

type Params struct {
	ID               uuid.UUID
	OwnerID          uuid.UUID
	Title            string
	PricePerDayCents int64
	Bedrooms         *int
	MinStayDays      *int
	MaxStayDays      *int
	MaxGuests        *int
	Status           Status
	Policies         Policies
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewProperty(p Params) (*Property, error) {
	if strings.TrimSpace(p.Title) == "" {
		return nil, ErrEmptyTitle
	}
	if p.PricePerDayCents < 0 {
		return nil, ErrNegativePrice
	}
	if !p.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if p.Bedrooms != nil && *p.Bedrooms < 0 {
		return nil, ErrNegativeBedrooms
	}
	for _, bound := range []*int{p.MinStayDays, p.MaxStayDays, p.MaxGuests} {
		if bound != nil && *bound < 1 {
			return nil, ErrNonPositiveBound
		}
	}
	if p.MinStayDays != nil && p.MaxStayDays != nil && *p.MinStayDays > *p.MaxStayDays {
		return nil, ErrInvalidStayBounds
	}

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	return Reconstruct(p), nil
}

// Reconstruct rebuilds a Property from storage without validation.
func Reconstruct(p Params) *Property {
	return &Property{
		id:               p.ID,
		ownerID:          p.OwnerID,
		title:            strings.TrimSpace(p.Title),
		pricePerDayCents: p.PricePerDayCents,
		bedrooms:         p.Bedrooms,
		minStayDays:      p.MinStayDays,
		maxStayDays:      p.MaxStayDays,
		maxGuests:        p.MaxGuests,
		status:           p.Status,
		policies:         p.Policies,
		createdAt:        p.CreatedAt,
		updatedAt:        p.UpdatedAt,
	}
}

func (p *Property) IsAvailable() bool {
	return p.status == StatusAvailable
}

// AllowsStayOf reports whether a stay of the given length is within the min/max bounds.
func (p *Property) AllowsStayOf(days int) bool {
	if p.minStayDays != nil && days < *p.minStayDays {
		return false
	}
	if p.maxStayDays != nil && days > *p.maxStayDays {
		return false
	}
	return true
}

func (p *Property) IsOwnedBy(userID uuid.UUID) bool {
	return p.ownerID == userID
}

func (p *Property) ID() uuid.UUID           { return p.id }
func (p *Property) OwnerID() uuid.UUID      { return p.ownerID }
func (p *Property) Title() string           { return p.title }
func (p *Property) PricePerDayCents() int64 { return p.pricePerDayCents }
func (p *Property) Bedrooms() *int          { return p.bedrooms }
func (p *Property) MinStayDays() *int       { return p.minStayDays }
func (p *Property) MaxStayDays() *int       { return p.maxStayDays }
func (p *Property) MaxGuests() *int         { return p.maxGuests }
func (p *Property) Status() Status          { return p.status }
func (p *Property) Policies() Policies      { return p.policies }
func (p *Property) CreatedAt() time.Time    { return p.createdAt }
func (p *Property) UpdatedAt() time.Time    { return p.updatedAt }
