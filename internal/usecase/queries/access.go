package queries

import (
	"context"

	"stay-booking/internal/domain/property"
	"stay-booking/internal/domain/user"
	"stay-booking/internal/pkg/errs"
	"stay-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=access.go -destination=../../../tests/mock/queries/access_mock.go -package=queriesmock

// Access describes how a user relates to a reservation or property.
type Access struct {
	IsAdmin         bool
	IsPropertyOwner bool
	IsGuest         bool
}

// Privileged actors may set any status and skip the cancellation window.
func (a Access) Privileged() bool {
	return a.IsAdmin || a.IsPropertyOwner
}

type AccessPolicy interface {
	// ResolveAccess returns ErrForbidden when the user is neither admin, property owner nor guest.
	ResolveAccess(ctx context.Context, reservationID, userID uuid.UUID, role user.Role) (Access, error)
	// ResolvePropertyAccess admits admins and the property owner only.
	ResolvePropertyAccess(ctx context.Context, propertyID, userID uuid.UUID, role user.Role) (Access, error)
}

type accessPolicyImpl struct {
	store      ReservationReadStore
	properties shared.PropertyReader
}

func NewAccessPolicy(store ReservationReadStore, uow shared.UnitOfWork) AccessPolicy {
	return &accessPolicyImpl{
		store:      store,
		properties: uow.Reader().Properties(),
	}
}

func (p *accessPolicyImpl) ResolveAccess(ctx context.Context, reservationID, userID uuid.UUID, role user.Role) (Access, error) {
	facts, err := p.store.FindAccessFacts(ctx, reservationID)
	if err != nil {
		return Access{}, shared.MarkNotFound(err, errs.ErrReservationNotFound)
	}

	access := Access{
		IsAdmin:         role.IsAdmin(),
		IsPropertyOwner: facts.OwnerID == userID,
		IsGuest:         facts.GuestID == userID,
	}
	if !access.Privileged() && !access.IsGuest {
		return Access{}, errs.ErrForbidden
	}
	return access, nil
}

func (p *accessPolicyImpl) ResolvePropertyAccess(ctx context.Context, propertyID, userID uuid.UUID, role user.Role) (Access, error) {
	prop, err := p.loadProperty(ctx, propertyID)
	if err != nil {
		return Access{}, err
	}

	access := Access{
		IsAdmin:         role.IsAdmin(),
		IsPropertyOwner: prop.IsOwnedBy(userID),
	}
	if !access.Privileged() {
		return Access{}, errs.ErrForbidden
	}
	return access, nil
}

func (p *accessPolicyImpl) loadProperty(ctx context.Context, propertyID uuid.UUID) (*property.Property, error) {
	prop, err := p.properties.GetByID(ctx, propertyID)
	if err != nil {
		return nil, shared.MarkNotFound(err, errs.ErrPropertyNotFound)
	}
	return prop, nil
}
