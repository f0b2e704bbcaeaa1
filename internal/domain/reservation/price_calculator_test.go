//go:build unit

package reservation_test

import (
	"testing"

	"stay-booking/internal/domain/reservation"
	"stay-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricingCalculator(t *testing.T) {
	calc := reservation.NewPricingCalculator(reservation.DefaultFeeSchedule())

	type want struct {
		days     int
		subtotal string
		cleaning string
		service  string
		tax      string
		total    string
	}

	tests := []struct {
		name     string
		prop     *builder.PropertyBuilder
		checkIn  string
		checkOut string
		want     want
	}{
		{
			name:     "three nights without bedroom info",
			prop:     builder.NewPropertyBuilder().WithPricePerDay(10000),
			checkIn:  "2024-07-01",
			checkOut: "2024-07-04",
			want:     want{3, "300.00", "25.00", "30.00", "15.00", "370.00"},
		},
		{
			name:     "eight nights triggers long-stay cleaning",
			prop:     builder.NewPropertyBuilder().WithPricePerDay(10000),
			checkIn:  "2024-07-01",
			checkOut: "2024-07-09",
			want:     want{8, "800.00", "37.50", "80.00", "40.00", "957.50"},
		},
		{
			name:     "seven nights is not a long stay",
			prop:     builder.NewPropertyBuilder().WithPricePerDay(10000),
			checkIn:  "2024-07-01",
			checkOut: "2024-07-08",
			want:     want{7, "700.00", "25.00", "70.00", "35.00", "830.00"},
		},
		{
			name:     "two bedrooms add fifty percent",
			prop:     builder.NewPropertyBuilder().WithPricePerDay(10000).WithBedrooms(2),
			checkIn:  "2024-07-01",
			checkOut: "2024-07-03",
			want:     want{2, "200.00", "37.50", "20.00", "10.00", "267.50"},
		},
		{
			name:     "bedrooms and long stay compound",
			prop:     builder.NewPropertyBuilder().WithPricePerDay(5000).WithBedrooms(1),
			checkIn:  "2024-07-01",
			checkOut: "2024-07-11",
			want:     want{10, "500.00", "46.88", "50.00", "25.00", "621.88"},
		},
		{
			name:     "zero bedrooms equals base fee",
			prop:     builder.NewPropertyBuilder().WithPricePerDay(10000).WithBedrooms(0),
			checkIn:  "2024-07-01",
			checkOut: "2024-07-02",
			want:     want{1, "100.00", "25.00", "10.00", "5.00", "140.00"},
		},
		{
			name:     "percentages round half up",
			prop:     builder.NewPropertyBuilder().WithPricePerDay(1005),
			checkIn:  "2024-07-01",
			checkOut: "2024-07-02",
			want:     want{1, "10.05", "25.00", "1.01", "0.50", "36.56"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period, err := reservation.ParseStayPeriod(tt.checkIn, tt.checkOut)
			require.NoError(t, err)

			got, err := calc.Quote(tt.prop.MustBuild(), period)
			require.NoError(t, err)

			assert.Equal(t, tt.want.days, got.Days)
			assert.Equal(t, tt.want.subtotal, got.Subtotal.String())
			assert.Equal(t, tt.want.cleaning, got.CleaningFee.String())
			assert.Equal(t, tt.want.service, got.ServiceFee.String())
			assert.Equal(t, tt.want.tax, got.TaxAmount.String())
			assert.Equal(t, tt.want.total, got.Total.String())

			sum := got.PricePerDay.Times(int64(got.Days)).Add(got.CleaningFee).Add(got.ServiceFee).Add(got.TaxAmount)
			assert.Equal(t, got.Total, sum)
		})
	}

	t.Run("rejects empty period", func(t *testing.T) {
		period, err := reservation.ParseStayPeriod("2024-07-01", "2024-07-01")
		require.NoError(t, err)

		_, err = calc.Quote(builder.NewPropertyBuilder().MustBuild(), period)
		assert.ErrorIs(t, err, reservation.ErrInvalidDateRange)
	})

	t.Run("custom schedule", func(t *testing.T) {
		fees := reservation.DefaultFeeSchedule()
		fees.BaseCleaningFee = reservation.NewMoney(0)
		fees.ServiceFeeBP = 0
		fees.TaxBP = 2000
		custom := reservation.NewPricingCalculator(fees)

		period, err := reservation.ParseStayPeriod("2024-07-01", "2024-07-03")
		require.NoError(t, err)

		got, err := custom.Quote(builder.NewPropertyBuilder().WithPricePerDay(10000).MustBuild(), period)
		require.NoError(t, err)
		assert.Equal(t, "0.00", got.CleaningFee.String())
		assert.True(t, got.ServiceFee.IsZero())
		assert.Equal(t, "240.00", got.Total.String())
	})
}

func TestMoney(t *testing.T) {
	_, err := reservation.NewMoneyFromCents(-1)
	assert.ErrorIs(t, err, reservation.ErrNegativeAmount)

	assert.Equal(t, "0.05", reservation.NewMoney(5).String())
	assert.Equal(t, "-1.50", reservation.NewMoney(-150).String())
	assert.Equal(t, int64(3), reservation.NewMoney(25).ApplyBasisPoints(1000).Cents())
	assert.Equal(t, int64(2), reservation.NewMoney(24).ApplyBasisPoints(1000).Cents())
}
