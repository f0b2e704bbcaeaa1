//go:build unit

package queries_test

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"stay-booking/internal/domain/reservation"
	"stay-booking/internal/domain/user"
	"stay-booking/internal/infra"
	"stay-booking/internal/infra/memstore"
	"stay-booking/internal/pkg/clock"
	"stay-booking/internal/pkg/errs"
	"stay-booking/internal/usecase/queries"
	"stay-booking/tests/common/builder"
	queriesmock "stay-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

func day(n int) time.Time {
	return reservation.CalendarDate(now).AddDate(0, 0, n)
}

// =============================================================================
// Cursor
// =============================================================================

func TestCursor(t *testing.T) {
	id := uuid.New()
	date := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

	t.Run("round trip", func(t *testing.T) {
		key, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(date, id))
		require.NoError(t, err)
		assert.True(t, date.Equal(key.Date))
		assert.Equal(t, id, key.ID)
	})

	invalid := map[string]string{
		"empty":        "",
		"not base64":   "%%%",
		"wrong prefix": base64.URLEncoding.EncodeToString([]byte("v2:2024-07-01_" + id.String())),
		"no separator": base64.URLEncoding.EncodeToString([]byte("v1:2024-07-01")),
		"bad date":     base64.URLEncoding.EncodeToString([]byte("v1:2024-13-01_" + id.String())),
		"bad id":       base64.URLEncoding.EncodeToString([]byte("v1:2024-07-01_nope")),
	}
	for name, cursor := range invalid {
		t.Run("invalid: "+name, func(t *testing.T) {
			_, err := queries.DecodeAfterCursor(cursor)
			assert.True(t, errs.Is(err, errs.ErrInvalidCursor))
		})
	}
}

// =============================================================================
// ReservationQueries
// =============================================================================

func TestReservationQueries_ListMine(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	clk := clock.NewMockClock(now)

	t.Run("defaults filter and limit, emits cursor on a full page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		views := make([]*queries.ReservationView, queries.DefaultListLimit)
		for i := range views {
			views[i] = builder.NewReservationBuilder().WithUserID(userID).BuildView()
		}
		store := queriesmock.NewMockReservationReadStore(ctrl)
		store.EXPECT().
			ListByUser(ctx, userID, queries.ListAll, reservation.CalendarDate(now), (*queries.CursorKey)(nil), queries.DefaultListLimit).
			Return(views, nil)

		page, err := queries.NewReservationQueries(store, clk).ListMine(ctx, userID, "", "", 0)

		require.NoError(t, err)
		assert.Len(t, page.Items, queries.DefaultListLimit)
		require.NotNil(t, page.NextCursor)

		last := views[len(views)-1]
		key, err := queries.DecodeAfterCursor(*page.NextCursor)
		require.NoError(t, err)
		assert.Equal(t, last.ID, key.ID)
		assert.True(t, last.CheckInDate.Equal(key.Date))
	})

	t.Run("past filter pages by check-out date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		view := builder.NewReservationBuilder().WithDates(day(-10), day(-7)).BuildView()
		store := queriesmock.NewMockReservationReadStore(ctrl)
		store.EXPECT().ListByUser(ctx, userID, queries.ListPast, gomock.Any(), gomock.Any(), 1).
			Return([]*queries.ReservationView{view}, nil)

		page, err := queries.NewReservationQueries(store, clk).ListMine(ctx, userID, queries.ListPast, "", 1)

		require.NoError(t, err)
		key, err := queries.DecodeAfterCursor(*page.NextCursor)
		require.NoError(t, err)
		assert.True(t, view.CheckOutDate.Equal(key.Date))
	})

	t.Run("short page has no cursor and limit is capped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := queriesmock.NewMockReservationReadStore(ctrl)
		store.EXPECT().ListByUser(ctx, userID, queries.ListUpcoming, gomock.Any(), gomock.Any(), queries.MaxListLimit).
			Return(nil, nil)

		page, err := queries.NewReservationQueries(store, clk).ListMine(ctx, userID, queries.ListUpcoming, "", 10_000)

		require.NoError(t, err)
		assert.NotNil(t, page.Items)
		assert.Empty(t, page.Items)
		assert.Nil(t, page.NextCursor)
	})

	t.Run("rejects unknown filter and bad cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		q := queries.NewReservationQueries(queriesmock.NewMockReservationReadStore(ctrl), clk)

		_, err := q.ListMine(ctx, userID, "someday", "", 10)
		assert.True(t, errs.Is(err, reservation.ErrValidation))

		_, err = q.ListMine(ctx, userID, queries.ListAll, "garbage", 10)
		assert.True(t, errs.Is(err, errs.ErrInvalidCursor))
	})
}

func TestReservationQueries_GetByID(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		storeErr  error
		expectErr error
	}{
		{name: "success"},
		{name: "not found is marked", storeErr: infra.NewRepoErr(infra.KindNotFound, "reservation not found"), expectErr: errs.ErrReservationNotFound},
		{name: "other errors pass through", storeErr: errors.New("db down")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			view := builder.NewReservationBuilder().BuildView()
			store := queriesmock.NewMockReservationReadStore(ctrl)
			if tc.storeErr != nil {
				store.EXPECT().FindByID(ctx, view.ID).Return(nil, tc.storeErr)
			} else {
				store.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
			}

			got, err := queries.NewReservationQueries(store, clock.NewMockClock(now)).GetByID(ctx, view.ID)

			switch {
			case tc.expectErr != nil:
				assert.True(t, errs.Is(err, tc.expectErr))
				assert.True(t, errs.IsNotFound(err))
			case tc.storeErr != nil:
				assert.Error(t, err)
				assert.False(t, errs.IsNotFound(err))
			default:
				require.NoError(t, err)
				assert.Equal(t, view, got)
			}
		})
	}
}

func TestReservationQueries_MonthlyCalendar(t *testing.T) {
	ctx := context.Background()
	propertyID := uuid.New()

	t.Run("queries the month's half-open range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := queriesmock.NewMockReservationReadStore(ctrl)
		store.EXPECT().ListActiveByCheckIn(ctx, propertyID,
			time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)).
			Return(nil, nil)

		cal, err := queries.NewReservationQueries(store, clock.NewMockClock(now)).MonthlyCalendar(ctx, propertyID, 2024, time.December)

		require.NoError(t, err)
		assert.Equal(t, time.December, cal.Month)
		assert.NotNil(t, cal.Reservations)
	})

	t.Run("rejects month out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		q := queries.NewReservationQueries(queriesmock.NewMockReservationReadStore(ctrl), clock.NewMockClock(now))
		_, err := q.MonthlyCalendar(ctx, propertyID, 2024, time.Month(13))
		assert.True(t, errs.Is(err, reservation.ErrValidation))
	})
}

// =============================================================================
// AccessPolicy
// =============================================================================

func TestAccessPolicy(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	guestID := uuid.New()

	store := memstore.NewStore()
	prop := builder.NewPropertyBuilder().WithOwnerID(ownerID).MustBuild()
	store.PutProperty(prop)
	res := builder.NewReservationBuilder().WithPropertyID(prop.ID()).WithUserID(guestID).BuildDomain()
	store.PutReservation(res)

	policy := queries.NewAccessPolicy(memstore.NewReadStore(store), memstore.NewUnitOfWork(store))

	t.Run("reservation access", func(t *testing.T) {
		testCases := []struct {
			name       string
			userID     uuid.UUID
			role       user.Role
			privileged bool
			forbidden  bool
		}{
			{name: "guest", userID: guestID, role: user.RoleGuest},
			{name: "owner", userID: ownerID, role: user.RoleHost, privileged: true},
			{name: "admin", userID: uuid.New(), role: user.RoleAdmin, privileged: true},
			{name: "stranger", userID: uuid.New(), role: user.RoleGuest, forbidden: true},
			{name: "other host", userID: uuid.New(), role: user.RoleHost, forbidden: true},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				access, err := policy.ResolveAccess(ctx, res.ID(), tc.userID, tc.role)
				if tc.forbidden {
					assert.True(t, errs.Is(err, errs.ErrForbidden))
					return
				}
				require.NoError(t, err)
				assert.Equal(t, tc.privileged, access.Privileged())
			})
		}
	})

	t.Run("property access admits owner and admin only", func(t *testing.T) {
		_, err := policy.ResolvePropertyAccess(ctx, prop.ID(), ownerID, user.RoleHost)
		assert.NoError(t, err)

		_, err = policy.ResolvePropertyAccess(ctx, prop.ID(), uuid.New(), user.RoleAdmin)
		assert.NoError(t, err)

		_, err = policy.ResolvePropertyAccess(ctx, prop.ID(), guestID, user.RoleGuest)
		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})

	t.Run("unknown ids are not found", func(t *testing.T) {
		_, err := policy.ResolveAccess(ctx, uuid.New(), guestID, user.RoleGuest)
		assert.True(t, errs.Is(err, errs.ErrReservationNotFound))

		_, err = policy.ResolvePropertyAccess(ctx, uuid.New(), ownerID, user.RoleHost)
		assert.True(t, errs.Is(err, errs.ErrPropertyNotFound))
	})
}

// =============================================================================
// PropertyQueries
// =============================================================================

func TestPropertyQueries(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewStore()
	prop := builder.NewPropertyBuilder().WithPricePerDay(10000).WithBedrooms(1).WithStayBounds(2, 14).MustBuild()
	store.PutProperty(prop)
	store.PutReservation(builder.NewReservationBuilder().
		WithPropertyID(prop.ID()).
		WithDates(day(10), day(13)).
		AsConfirmed().
		BuildDomain())

	q := queries.NewPropertyQueries(memstore.NewUnitOfWork(store),
		reservation.NewPricingCalculator(reservation.DefaultFeeSchedule()),
		clock.NewMockClock(now))

	t.Run("availability", func(t *testing.T) {
		testCases := []struct {
			name      string
			from, to  int
			available bool
		}{
			{name: "free dates", from: 20, to: 23, available: true},
			{name: "overlapping booking", from: 12, to: 15},
			{name: "touching the boundary day", from: 13, to: 16},
			{name: "shorter than minimum stay", from: 20, to: 21},
			{name: "longer than maximum stay", from: 20, to: 40},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				view, err := q.IsAvailable(ctx, prop.ID(), reservation.NewStayPeriod(day(tc.from), day(tc.to)))
				require.NoError(t, err)
				assert.Equal(t, tc.available, view.Available)
			})
		}
	})

	t.Run("availability of unknown property", func(t *testing.T) {
		_, err := q.IsAvailable(ctx, uuid.New(), reservation.NewStayPeriod(day(1), day(3)))
		assert.True(t, errs.Is(err, errs.ErrPropertyNotFound))
	})

	t.Run("quote", func(t *testing.T) {
		view, err := q.Quote(ctx, prop.ID(), reservation.NewStayPeriod(day(20), day(23)))
		require.NoError(t, err)
		assert.Equal(t, 3, view.Breakdown.Days)
		assert.Equal(t, int64(30000), view.Breakdown.Subtotal.Cents())
		assert.Equal(t, view.Breakdown.Subtotal.
			Add(view.Breakdown.CleaningFee).
			Add(view.Breakdown.ServiceFee).
			Add(view.Breakdown.TaxAmount), view.Breakdown.Total)
	})

	t.Run("quote rejects past dates", func(t *testing.T) {
		_, err := q.Quote(ctx, prop.ID(), reservation.NewStayPeriod(day(-1), day(2)))
		assert.True(t, errs.Is(err, reservation.ErrPastDate))
	})
}
