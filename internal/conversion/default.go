package conversion

import (
	"unitgrader/internal/units"
	"unitgrader/pkg/domain"
)

// Temperature formulas. The 9/5 and 5/9 ratios are applied as a single factor
// so results match the reference answers bit for bit. The float64 conversions
// keep the compiler from fusing multiply and add.
var temperature = Entries{ //nolint: gochecknoglobals
	{domain.Celsius, domain.Fahrenheit}: func(x float64) float64 { return float64(x*(9.0/5)) + 32 },
	{domain.Celsius, domain.Kelvin}:     func(x float64) float64 { return x + 273.15 },
	{domain.Celsius, domain.Rankine}:    func(x float64) float64 { return (x + 273.15) * (9.0 / 5) },

	{domain.Fahrenheit, domain.Celsius}: func(x float64) float64 { return (x - 32) * (5.0 / 9) },
	{domain.Fahrenheit, domain.Kelvin}:  func(x float64) float64 { return (x + 459.67) * (5.0 / 9) },
	{domain.Fahrenheit, domain.Rankine}: func(x float64) float64 { return x + 459.67 },

	{domain.Kelvin, domain.Celsius}:    func(x float64) float64 { return x - 273.15 },
	{domain.Kelvin, domain.Fahrenheit}: func(x float64) float64 { return float64(x*(9.0/5)) - 459.67 },
	{domain.Kelvin, domain.Rankine}:    func(x float64) float64 { return x * (9.0 / 5) },

	{domain.Rankine, domain.Celsius}:    func(x float64) float64 { return (x - 491.67) * (5.0 / 9) },
	{domain.Rankine, domain.Fahrenheit}: func(x float64) float64 { return x - 459.67 },
	{domain.Rankine, domain.Kelvin}:     func(x float64) float64 { return x * (5.0 / 9) },
}

func mul(k float64) Func { return func(x float64) float64 { return x * k } }
func div(k float64) Func { return func(x float64) float64 { return x / k } }

// Volume factors are approximations. cups/gallons and cubic-feet/gallons use
// different constants in each direction and do not round-trip exactly.
var volume = Entries{ //nolint: gochecknoglobals
	{domain.Liters, domain.Tablespoons}: mul(67.628),
	{domain.Liters, domain.CubicInches}: mul(61.024),
	{domain.Liters, domain.Cups}:        mul(4.167),
	{domain.Liters, domain.CubicFeet}:   div(28.317),
	{domain.Liters, domain.Gallons}:     div(3.785),

	{domain.Tablespoons, domain.Liters}:      div(67.628),
	{domain.Tablespoons, domain.CubicInches}: div(1.108),
	{domain.Tablespoons, domain.Cups}:        div(16.231),
	{domain.Tablespoons, domain.CubicFeet}:   div(1915),
	{domain.Tablespoons, domain.Gallons}:     div(256),

	{domain.CubicInches, domain.Liters}:      div(61.024),
	{domain.CubicInches, domain.Tablespoons}: mul(1.108),
	{domain.CubicInches, domain.Cups}:        div(14.646),
	{domain.CubicInches, domain.CubicFeet}:   div(1728),
	{domain.CubicInches, domain.Gallons}:     div(231),

	{domain.Cups, domain.Liters}:      div(4.167),
	{domain.Cups, domain.CubicInches}: mul(14.646),
	{domain.Cups, domain.Tablespoons}: mul(16.231),
	{domain.Cups, domain.CubicFeet}:   div(118),
	{domain.Cups, domain.Gallons}:     div(15.772),

	{domain.CubicFeet, domain.Liters}:      mul(28.317),
	{domain.CubicFeet, domain.CubicInches}: mul(1728),
	{domain.CubicFeet, domain.Tablespoons}: mul(1915),
	{domain.CubicFeet, domain.Cups}:        mul(118),
	{domain.CubicFeet, domain.Gallons}:     mul(7.481),

	{domain.Gallons, domain.Liters}:      mul(3.785),
	{domain.Gallons, domain.CubicInches}: mul(231),
	{domain.Gallons, domain.CubicFeet}:   div(7.48),
	{domain.Gallons, domain.Tablespoons}: mul(256),
	{domain.Gallons, domain.Cups}:        mul(15.773),
}

var defaultTable = mustValidate(NewTable(units.Default(), map[domain.Category]Entries{ //nolint: gochecknoglobals
	domain.CategoryTemperature: temperature,
	domain.CategoryVolume:      volume,
}))

// mustValidate panics when t is missing a pair or has one outside its categories.
func mustValidate(t *Table) *Table {
	if err := t.Validate(); err != nil {
		panic(err)
	}

	return t
}

// Default returns the conversion table for the default unit registry.
func Default() *Table {
	return defaultTable
}
