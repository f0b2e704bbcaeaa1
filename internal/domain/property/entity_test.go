//go:build unit

package property_test

import (
	"testing"

	"stay-booking/internal/domain/property"
	"stay-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.PropertyBuilder)
	errIs  error
}

func TestProperty(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewPropertyBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Seaside Cottage", actual.Title())
		assert.Equal(t, int64(10000), actual.PricePerDayCents())
		assert.True(t, actual.IsAvailable())
		assert.Nil(t, actual.Bedrooms())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "blank title",
				mutate: func(b *builder.PropertyBuilder) { b.WithTitle("   ") },
				errIs:  property.ErrEmptyTitle,
			},
			{
				name:   "negative price",
				mutate: func(b *builder.PropertyBuilder) { b.WithPricePerDay(-1) },
				errIs:  property.ErrNegativePrice,
			},
			{
				name:   "free listing",
				mutate: func(b *builder.PropertyBuilder) { b.WithPricePerDay(0) },
			},
			{
				name:   "unknown status",
				mutate: func(b *builder.PropertyBuilder) { b.WithStatus("Closed") },
				errIs:  property.ErrInvalidStatus,
			},
			{
				name:   "negative bedrooms",
				mutate: func(b *builder.PropertyBuilder) { b.WithBedrooms(-1) },
				errIs:  property.ErrNegativeBedrooms,
			},
			{
				name:   "zero max guests",
				mutate: func(b *builder.PropertyBuilder) { b.WithMaxGuests(0) },
				errIs:  property.ErrNonPositiveBound,
			},
			{
				name:   "min stay above max stay",
				mutate: func(b *builder.PropertyBuilder) { b.WithStayBounds(5, 3) },
				errIs:  property.ErrInvalidStayBounds,
			},
			{
				name:   "equal stay bounds",
				mutate: func(b *builder.PropertyBuilder) { b.WithStayBounds(3, 3) },
			},
		})
	})

	t.Run("availability by status", func(t *testing.T) {
		for _, tc := range []struct {
			status    property.Status
			available bool
		}{
			{property.StatusAvailable, true},
			{property.StatusMaintenance, false},
			{property.StatusUnavailable, false},
		} {
			p := builder.NewPropertyBuilder().WithStatus(tc.status).MustBuild()
			assert.Equal(t, tc.available, p.IsAvailable(), tc.status)
		}
	})

	t.Run("stay bounds are inclusive", func(t *testing.T) {
		p := builder.NewPropertyBuilder().WithStayBounds(2, 5).MustBuild()
		assert.False(t, p.AllowsStayOf(1))
		assert.True(t, p.AllowsStayOf(2))
		assert.True(t, p.AllowsStayOf(5))
		assert.False(t, p.AllowsStayOf(6))

		unbounded := builder.NewPropertyBuilder().MustBuild()
		assert.True(t, unbounded.AllowsStayOf(365))
	})

	t.Run("ownership", func(t *testing.T) {
		owner := uuid.New()
		p := builder.NewPropertyBuilder().WithOwnerID(owner).MustBuild()
		assert.True(t, p.IsOwnedBy(owner))
		assert.False(t, p.IsOwnedBy(uuid.New()))
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewPropertyBuilder()
			if tc.mutate != nil {
				b.With(tc.mutate)
			}
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, actual)
		})
	}
}
