package reservation

import (
	"stay-booking/internal/domain/property"
)

// FeeSchedule holds the configurable rates used for quotes. Rates are basis
// points (1/100 of a percent).
type FeeSchedule struct {
	BaseCleaningFee       Money
	BedroomSurchargeBP    int64
	LongStayMultiplierBP  int64
	LongStayThresholdDays int
	ServiceFeeBP          int64
	TaxBP                 int64
}

func DefaultFeeSchedule() FeeSchedule {
	return FeeSchedule{
		BaseCleaningFee:       NewMoney(2500),
		BedroomSurchargeBP:    2500,
		LongStayMultiplierBP:  15000,
		LongStayThresholdDays: 7,
		ServiceFeeBP:          1000,
		TaxBP:                 500,
	}
}

type PriceBreakdown struct {
	Days        int
	PricePerDay Money
	Subtotal    Money
	CleaningFee Money
	ServiceFee  Money
	TaxAmount   Money
	Total       Money
}

type PriceCalculator interface {
	Quote(prop *property.Property, period StayPeriod) (PriceBreakdown, error)
}

type PricingCalculator struct {
	fees FeeSchedule
}

func NewPricingCalculator(fees FeeSchedule) *PricingCalculator {
	return &PricingCalculator{fees: fees}
}

func (c *PricingCalculator) Quote(prop *property.Property, period StayPeriod) (PriceBreakdown, error) {
	days := period.Days()
	if days < 1 {
		return PriceBreakdown{}, newValidationError(KindInvalidDateRange, "stay must be at least one day")
	}

	pricePerDay, err := NewMoneyFromCents(prop.PricePerDayCents())
	if err != nil {
		return PriceBreakdown{}, err
	}

	subtotal := pricePerDay.Times(int64(days))
	cleaning := c.cleaningFee(prop.Bedrooms(), days)
	service := subtotal.ApplyBasisPoints(c.fees.ServiceFeeBP)
	tax := subtotal.ApplyBasisPoints(c.fees.TaxBP)

	return PriceBreakdown{
		Days:        days,
		PricePerDay: pricePerDay,
		Subtotal:    subtotal,
		CleaningFee: cleaning,
		ServiceFee:  service,
		TaxAmount:   tax,
		Total:       subtotal.Add(cleaning).Add(service).Add(tax),
	}, nil
}

// cleaningFee = base * (1 + surcharge*bedrooms) * (long stay ? multiplier : 1),
// rounded once at the end.
func (c *PricingCalculator) cleaningFee(bedrooms *int, days int) Money {
	sizeBP := int64(basisPointsScale)
	if bedrooms != nil {
		sizeBP += c.fees.BedroomSurchargeBP * int64(*bedrooms)
	}

	durationBP := int64(basisPointsScale)
	if days > c.fees.LongStayThresholdDays {
		durationBP = c.fees.LongStayMultiplierBP
	}

	num := c.fees.BaseCleaningFee.Cents() * sizeBP * durationBP
	return NewMoney(divRoundHalfUp(num, basisPointsScale*basisPointsScale))
}
