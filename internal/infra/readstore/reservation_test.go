//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"stay-booking/internal/infra"
	"stay-booking/internal/infra/readstore"
	sqlc "stay-booking/internal/infra/sqlc/generated"
	"stay-booking/internal/pkg/pgconv"
	"stay-booking/internal/usecase/queries"
	"stay-booking/tests/common/builder"
	readstoremock "stay-booking/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReservationReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	b := builder.NewReservationBuilder()

	testCases := []struct {
		name       string
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: row mapped to view"},
		{name: "error: not found", queryErr: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error: database failure", queryErr: errors.New("timeout"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
			mockDB := &mockDBTX{}
			mockQueries.EXPECT().GetReservationByID(ctx, mockDB, b.ID).Return(b.BuildRow(), tc.queryErr)

			view, err := readstore.NewReservationReadStore(mockQueries, mockDB).FindByID(ctx, b.ID)

			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			want := b.BuildView()
			assert.Equal(t, want.ID, view.ID)
			assert.Equal(t, want.TotalPriceCents, view.TotalPriceCents)
			assert.Equal(t, "PENDING", view.Status)
			assert.Equal(t, want.SpecialRequests, view.SpecialRequests)
			assert.Nil(t, view.PaymentMethod)
		})
	}
}

func TestReservationReadStore_FindAccessFacts(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	row := sqlc.GetReservationAccessRow{ID: uuid.New(), UserID: uuid.New(), PropertyID: uuid.New(), OwnerID: uuid.New()}
	mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
	mockDB := &mockDBTX{}
	mockQueries.EXPECT().GetReservationAccess(ctx, mockDB, row.ID).Return(row, nil)

	facts, err := readstore.NewReservationReadStore(mockQueries, mockDB).FindAccessFacts(ctx, row.ID)

	require.NoError(t, err)
	assert.Equal(t, &queries.AccessFacts{
		ReservationID: row.ID,
		GuestID:       row.UserID,
		PropertyID:    row.PropertyID,
		OwnerID:       row.OwnerID,
	}, facts)
}

func TestReservationReadStore_ListByUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	after := &queries.CursorKey{Date: today.AddDate(0, 0, 3), ID: uuid.New()}
	rows := []sqlc.Reservations{builder.NewReservationBuilder().WithUserID(userID).BuildRow()}

	testCases := []struct {
		name   string
		filter queries.ListFilter
		after  *queries.CursorKey
		expect func(m *readstoremock.MockReservationViewQueriesMockRecorder, db sqlc.DBTX)
	}{
		{
			name:   "all: first page passes NULL keyset",
			filter: queries.ListAll,
			expect: func(m *readstoremock.MockReservationViewQueriesMockRecorder, db sqlc.DBTX) {
				m.ListReservationsByUser(ctx, db, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ListReservationsByUserParams) ([]sqlc.Reservations, error) {
						assert.False(t, arg.AfterDate.Valid)
						assert.False(t, arg.AfterID.Valid)
						assert.Equal(t, int32(20), arg.MaxRows)
						return rows, nil
					})
			},
		},
		{
			name:   "upcoming: passes today and keyset",
			filter: queries.ListUpcoming,
			after:  after,
			expect: func(m *readstoremock.MockReservationViewQueriesMockRecorder, db sqlc.DBTX) {
				m.ListUpcomingReservationsByUser(ctx, db, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ListUpcomingReservationsByUserParams) ([]sqlc.Reservations, error) {
						assert.True(t, arg.Today.Time.Equal(today))
						assert.True(t, arg.AfterDate.Time.Equal(after.Date))
						assert.Equal(t, [16]byte(after.ID), arg.AfterID.Bytes)
						return rows, nil
					})
			},
		},
		{
			name:   "past",
			filter: queries.ListPast,
			expect: func(m *readstoremock.MockReservationViewQueriesMockRecorder, db sqlc.DBTX) {
				m.ListPastReservationsByUser(ctx, db, gomock.Any()).Return(rows, nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
			mockDB := &mockDBTX{}
			tc.expect(mockQueries.EXPECT(), mockDB)

			views, err := readstore.NewReservationReadStore(mockQueries, mockDB).
				ListByUser(ctx, userID, tc.filter, today, tc.after, 20)

			require.NoError(t, err)
			require.Len(t, views, 1)
			assert.Equal(t, userID, views[0].UserID)
		})
	}

	t.Run("error: database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().ListReservationsByUser(ctx, mockDB, gomock.Any()).Return(nil, errors.New("timeout"))

		_, err := readstore.NewReservationReadStore(mockQueries, mockDB).ListByUser(ctx, userID, queries.ListAll, today, nil, 20)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestReservationReadStore_CalendarAndCount(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	propertyID := uuid.New()
	from := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
	mockDB := &mockDBTX{}
	mockQueries.EXPECT().ListActiveReservationsByCheckInRange(ctx, mockDB, sqlc.ListActiveReservationsByCheckInRangeParams{
		PropertyID: propertyID,
		RangeStart: pgconv.DateToPgtype(from),
		RangeEnd:   pgconv.DateToPgtype(to),
	}).Return(nil, nil)
	mockQueries.EXPECT().CountCurrentReservations(ctx, mockDB, gomock.Any()).Return(int64(2), nil)

	store := readstore.NewReservationReadStore(mockQueries, mockDB)

	views, err := store.ListActiveByCheckIn(ctx, propertyID, from, to)
	require.NoError(t, err)
	assert.Empty(t, views)

	count, err := store.CountCurrent(ctx, propertyID, from)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

// Mock DBTX for testing
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
