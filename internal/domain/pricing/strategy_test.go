package pricing

import (
	"errors"
	"testing"
	"time"
)

func TestForName(t *testing.T) {
	for _, name := range []string{StrategyFlat, StrategyDiscount, StrategyPeak} {
		if _, err := ForName(name); err != nil {
			t.Fatalf("expected strategy for %q, got %v", name, err)
		}
	}

	if _, err := ForName("dynamic"); !errors.Is(err, ErrUnknownStrategy) {
		t.Fatalf("expected ErrUnknownStrategy, got %v", err)
	}
	if _, err := ForName(""); !errors.Is(err, ErrUnknownStrategy) {
		t.Fatalf("expected ErrUnknownStrategy, got %v", err)
	}
}

func TestFlatPricing(t *testing.T) {
	s, _ := ForName(StrategyFlat)
	b := s.Calculate(100, 3)
	if b.Subtotal != 300 || b.Discount != 0 || b.Surcharge != 0 || b.Total != 300 {
		t.Fatalf("unexpected breakdown: %+v", b)
	}
}

func TestTenureDiscountPricing(t *testing.T) {
	cases := []struct {
		name         string
		days         int
		wantDiscount float64
		wantTotal    float64
	}{
		{"below first tier", 6, 0, 600},
		{"weekly tier", 7, 70, 630},
		{"mid weekly tier", 13, 130, 1170},
		{"biweekly tier", 14, 210, 1190},
		{"monthly tier", 30, 600, 2400},
		{"beyond monthly", 45, 900, 3600},
	}

	s, _ := ForName(StrategyDiscount)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := s.Calculate(100, tc.days)
			if b.Discount != tc.wantDiscount {
				t.Fatalf("expected discount %f, got %f", tc.wantDiscount, b.Discount)
			}
			if b.Total != tc.wantTotal {
				t.Fatalf("expected total %f, got %f", tc.wantTotal, b.Total)
			}
			if b.Surcharge != 0 {
				t.Fatalf("discount pricing must not surcharge: %+v", b)
			}
		})
	}
}

func TestPeakSurchargePricing(t *testing.T) {
	s, _ := ForName(StrategyPeak)
	b := s.Calculate(80, 2)
	if b.Subtotal != 160 || b.Surcharge != 40 || b.Total != 200 {
		t.Fatalf("unexpected breakdown: %+v", b)
	}
	if b.Discount != 0 {
		t.Fatalf("peak pricing must not discount: %+v", b)
	}
}

func TestDurationDays(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	if got := DurationDays(start, start.AddDate(0, 0, 5)); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
	// Sub-day rentals are floored to one billable day.
	if got := DurationDays(start, start.Add(6*time.Hour)); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	if got := DurationDays(start, start); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
}
