// Package unit holds the static unit catalog and the conversion engine.
//
// Every unit belongs to exactly one category and carries a conversion factor
// relative to the category's base unit (meter for length, kilogram for mass).
// Currency units are part of the catalog for lookup and listing, but their
// rates are dynamic and live in the exchange package.
package unit

import (
	"errors"
	"fmt"
)

// Category groups units that can be converted between each other.
type Category int

const (
	Length Category = iota
	Mass
	Currency
)

// String returns the category's display name.
func (c Category) String() string {
	switch c {
	case Length:
		return "Length"
	case Mass:
		return "Mass"
	case Currency:
		return "Currency"
	default:
		return "Unknown"
	}
}

// Categories lists all categories in display order.
func Categories() []Category {
	return []Category{Length, Mass, Currency}
}

// Unit describes a single convertible unit.
//
// Factor is the factor-to-base: base_quantity = Factor * unit_quantity.
// Currency units have Factor 0; their rate is resolved at conversion time.
type Unit struct {
	Name     string
	Abbr     string
	Category Category
	Factor   float64
}

// String renders the unit the way the REPL prints it, e.g. "meter (m)".
// Currency codes have no separate long name and render as the bare code.
func (u Unit) String() string {
	if u.Name == u.Abbr {
		return u.Name
	}
	return fmt.Sprintf("%s (%s)", u.Name, u.Abbr)
}

// ErrUnknownUnit indicates a token that resolves to no unit in the catalog.
var ErrUnknownUnit = errors.New("unknown unit")

// catalog is the fixed unit table, in listing order within each category.
var catalog = []Unit{
	{Name: "meter", Abbr: "m", Category: Length, Factor: 1},
	{Name: "centimeter", Abbr: "cm", Category: Length, Factor: 0.01},
	{Name: "kilometer", Abbr: "km", Category: Length, Factor: 1000},
	{Name: "yard", Abbr: "yd", Category: Length, Factor: 0.9144},
	{Name: "foot", Abbr: "ft", Category: Length, Factor: 0.3048},
	{Name: "inch", Abbr: "in", Category: Length, Factor: 0.0254},

	{Name: "kilogram", Abbr: "kg", Category: Mass, Factor: 1},
	{Name: "gram", Abbr: "g", Category: Mass, Factor: 0.001},
	{Name: "ton", Abbr: "t", Category: Mass, Factor: 1000},
	{Name: "pound", Abbr: "lb", Category: Mass, Factor: 0.453592},
	{Name: "ounce", Abbr: "oz", Category: Mass, Factor: 0.0283495},

	{Name: "USD", Abbr: "USD", Category: Currency},
	{Name: "EUR", Abbr: "EUR", Category: Currency},
	{Name: "JPY", Abbr: "JPY", Category: Currency},
	{Name: "KRW", Abbr: "KRW", Category: Currency},
	{Name: "GBP", Abbr: "GBP", Category: Currency},
	{Name: "AUD", Abbr: "AUD", Category: Currency},
}

var byToken = func() map[string]Unit {
	m := make(map[string]Unit, len(catalog)*2)
	for _, u := range catalog {
		m[u.Name] = u
		m[u.Abbr] = u
	}
	return m
}()

// Lookup resolves a case-sensitive long name or abbreviation to a unit.
func Lookup(token string) (Unit, error) {
	u, ok := byToken[token]
	if !ok {
		return Unit{}, fmt.Errorf("%w: %q", ErrUnknownUnit, token)
	}
	return u, nil
}

// All returns the full catalog in stable category order.
func All() []Unit {
	out := make([]Unit, len(catalog))
	copy(out, catalog)
	return out
}

// ByCategory returns all units of a single category in listing order.
func ByCategory(c Category) []Unit {
	var out []Unit
	for _, u := range catalog {
		if u.Category == c {
			out = append(out, u)
		}
	}
	return out
}
