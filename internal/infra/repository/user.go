package repository

import (
	"context"

	"stay-booking/internal/infra"
	sqlc "stay-booking/internal/infra/sqlc/generated"
	"stay-booking/internal/pkg/pgconv"
	"stay-booking/internal/usecase/notify"

	"github.com/google/uuid"
)

//go:generate mockgen -source=user.go -destination=../../../tests/mock/repository/user_mock.go -package=repositorymock

type UserQueries interface {
	GetNotificationRecipients(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetNotificationRecipientsRow, error)
}

// UserRepository resolves the guest and host contacts of a reservation.
type UserRepository struct {
	queries UserQueries
	db      sqlc.DBTX
}

func NewUserRepository(queries UserQueries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) RecipientsFor(ctx context.Context, reservationID uuid.UUID) (*notify.Recipients, error) {
	row, err := r.queries.GetNotificationRecipients(ctx, r.db, reservationID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation recipients not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reservation recipients", err)
	}

	return &notify.Recipients{
		PropertyTitle: row.PropertyTitle,
		Guest:         notify.Contact{Name: row.GuestName, Email: row.GuestEmail},
		Owner:         notify.Contact{Name: row.OwnerName, Email: row.OwnerEmail},
	}, nil
}
