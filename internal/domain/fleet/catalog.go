package fleet

import (
	"errors"
	"fmt"

	"car_rental/internal/domain/entities"
)

// ErrUnknownCategory reports an intake attempt with a category outside
// the closed economy/luxury/suv set.
var ErrUnknownCategory = errors.New("unknown vehicle category")

// CategoryProfile is the equipment and pricing package a category
// assigns to a vehicle at fleet intake.
type CategoryProfile struct {
	DailyRate       float64
	TrackerType     string
	TrackerInterval int // seconds between GPS updates
}

// catalog mirrors the per-category vehicle packages: economy vehicles
// get the basic tracker on a slow cycle, luxury the premium tracker on
// a fast one.
var catalog = map[entities.VehicleCategory]CategoryProfile{
	entities.CategoryEconomy: {DailyRate: 30, TrackerType: "BasicGPS", TrackerInterval: 300},
	entities.CategoryLuxury:  {DailyRate: 100, TrackerType: "PremiumGPS", TrackerInterval: 60},
	entities.CategorySUV:     {DailyRate: 65, TrackerType: "AdvancedGPS", TrackerInterval: 120},
}

// ProfileFor returns the intake profile for a category. Rates may be
// overridden per deployment through configuration; the override map
// replaces the catalog rate when it carries the category.
func ProfileFor(category entities.VehicleCategory, rateOverrides map[entities.VehicleCategory]float64) (CategoryProfile, error) {
	p, ok := catalog[category]
	if !ok {
		return CategoryProfile{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	if rate, ok := rateOverrides[category]; ok && rate > 0 {
		p.DailyRate = rate
	}
	return p, nil
}
