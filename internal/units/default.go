package units

import "unitgrader/pkg/domain"

var defaultRegistry = mustNew( //nolint: gochecknoglobals
	Set{
		Category: domain.CategoryTemperature,
		Units:    []domain.Unit{domain.Kelvin, domain.Celsius, domain.Fahrenheit, domain.Rankine},
	},
	Set{
		Category: domain.CategoryVolume,
		Units: []domain.Unit{
			domain.Liters,
			domain.Tablespoons,
			domain.CubicInches,
			domain.Cups,
			domain.CubicFeet,
			domain.Gallons,
		},
	},
)

func mustNew(sets ...Set) *Registry {
	r, err := New(sets...)
	if err != nil {
		panic(err)
	}

	return r
}

// Default returns the registry of temperature and volume units supported by
// the grader.
func Default() *Registry {
	return defaultRegistry
}
