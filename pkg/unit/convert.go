package unit

import (
	"errors"
	"fmt"
)

// ErrIncompatibleUnits indicates a conversion between different categories.
var ErrIncompatibleUnits = errors.New("incompatible units")

// ErrNoStaticFactor indicates a unit whose rate is dynamic (currencies).
var ErrNoStaticFactor = errors.New("unit has no static conversion factor")

// Convert converts a value between two static units of the same category.
//
// Currency units carry no static factor and are rejected here; callers route
// them through the exchange cache instead.
func Convert(value float64, from, to Unit) (float64, error) {
	if from.Category != to.Category {
		return 0, fmt.Errorf("%w: cannot convert from %s to %s", ErrIncompatibleUnits, from, to)
	}
	if from.Category == Currency {
		return 0, fmt.Errorf("%w: %s to %s requires live rates", ErrNoStaticFactor, from, to)
	}
	return value * from.Factor / to.Factor, nil
}
