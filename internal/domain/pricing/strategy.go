package pricing

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownStrategy reports an unrecognized strategy name. Selection
// never falls back silently; the caller aborts the booking.
var ErrUnknownStrategy = errors.New("unknown pricing strategy")

// Strategy names accepted by ForName.
const (
	StrategyFlat     = "flat"
	StrategyDiscount = "discount"
	StrategyPeak     = "peak"
)

// Breakdown is the priced result of a rental quote.
type Breakdown struct {
	Strategy  string  `json:"strategy"`
	DailyRate float64 `json:"daily_rate"`
	Days      int     `json:"days"`
	Subtotal  float64 `json:"subtotal"`
	Discount  float64 `json:"discount"`
	Surcharge float64 `json:"surcharge"`
	Total     float64 `json:"total"`
}

// Strategy turns a daily rate and a duration in whole days into a
// price breakdown.
type Strategy interface {
	Calculate(dailyRate float64, days int) Breakdown
}

// ForName resolves a strategy by its registered name.
func ForName(name string) (Strategy, error) {
	switch name {
	case StrategyFlat:
		return flatPricing{}, nil
	case StrategyDiscount:
		return tenureDiscountPricing{}, nil
	case StrategyPeak:
		return peakSurchargePricing{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// DurationDays is the calendar-day difference between end and start,
// floored at a minimum of one billable day.
func DurationDays(start, end time.Time) int {
	days := int(end.Sub(start).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}

// flatPricing is rate times days, no adjustment.
type flatPricing struct{}

func (flatPricing) Calculate(dailyRate float64, days int) Breakdown {
	subtotal := dailyRate * float64(days)
	return Breakdown{
		Strategy:  StrategyFlat,
		DailyRate: dailyRate,
		Days:      days,
		Subtotal:  subtotal,
		Total:     subtotal,
	}
}

// tenureDiscountPricing applies a tiered discount for long rentals.
// Tiers are checked highest first; only one applies.
type tenureDiscountPricing struct{}

func (tenureDiscountPricing) Calculate(dailyRate float64, days int) Breakdown {
	subtotal := dailyRate * float64(days)

	var rate float64
	switch {
	case days >= 30:
		rate = 0.20
	case days >= 14:
		rate = 0.15
	case days >= 7:
		rate = 0.10
	}

	discount := subtotal * rate
	return Breakdown{
		Strategy:  StrategyDiscount,
		DailyRate: dailyRate,
		Days:      days,
		Subtotal:  subtotal,
		Discount:  discount,
		Total:     subtotal - discount,
	}
}

// peakSurchargePricing adds a flat 25% peak-season surcharge.
type peakSurchargePricing struct{}

const peakSurchargeRate = 0.25

func (peakSurchargePricing) Calculate(dailyRate float64, days int) Breakdown {
	subtotal := dailyRate * float64(days)
	surcharge := subtotal * peakSurchargeRate
	return Breakdown{
		Strategy:  StrategyPeak,
		DailyRate: dailyRate,
		Days:      days,
		Subtotal:  subtotal,
		Surcharge: surcharge,
		Total:     subtotal + surcharge,
	}
}
