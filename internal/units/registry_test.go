package units_test

import (
	"testing"
	"unitgrader/internal/units"
	"unitgrader/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestDefault_CategoryOf(t *testing.T) {
	reg := units.Default()

	tests := []struct {
		unit     string
		category domain.Category
		ok       bool
	}{
		{"Kelvin", domain.CategoryTemperature, true},
		{"Celsius", domain.CategoryTemperature, true},
		{"Fahrenheit", domain.CategoryTemperature, true},
		{"Rankine", domain.CategoryTemperature, true},
		{"liters", domain.CategoryVolume, true},
		{"tablespoons", domain.CategoryVolume, true},
		{"cubic-inches", domain.CategoryVolume, true},
		{"cups", domain.CategoryVolume, true},
		{"cubic-feet", domain.CategoryVolume, true},
		{"gallons", domain.CategoryVolume, true},
		{"KELvin", "", false},
		{"celsius", "", false},
		{"Liters", "", false},
		{"NoneExist", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.unit, func(t *testing.T) {
			got, ok := reg.CategoryOf(tt.unit)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.category, got)

			// lookups are stable
			again, ok2 := reg.CategoryOf(tt.unit)
			require.Equal(t, got, again)
			require.Equal(t, ok, ok2)
		})
	}
}

func TestDefault_Listing(t *testing.T) {
	reg := units.Default()

	require.Equal(t, []domain.Category{domain.CategoryTemperature, domain.CategoryVolume}, reg.Categories())
	require.Equal(t,
		[]domain.Unit{domain.Kelvin, domain.Celsius, domain.Fahrenheit, domain.Rankine},
		reg.Units(domain.CategoryTemperature))
	require.Len(t, reg.Units(domain.CategoryVolume), 6)
	require.Nil(t, reg.Units("weight"))

	require.True(t, reg.HasCategory(domain.CategoryVolume))
	require.False(t, reg.HasCategory("Volume"))
	require.True(t, reg.Contains(domain.CategoryVolume, domain.Cups))
	require.False(t, reg.Contains(domain.CategoryTemperature, domain.Cups))
	require.False(t, reg.Contains("weight", domain.Cups))
}

func TestDefault_UnitsReturnsCopy(t *testing.T) {
	reg := units.Default()

	us := reg.Units(domain.CategoryTemperature)
	us[0] = "mutated"

	require.Equal(t, domain.Kelvin, reg.Units(domain.CategoryTemperature)[0])
}

func TestNew_RejectsDuplicates(t *testing.T) {
	_, err := units.New(
		units.Set{Category: "a", Units: []domain.Unit{"x", "y"}},
		units.Set{Category: "b", Units: []domain.Unit{"y"}},
	)
	require.ErrorContains(t, err, `unit "y" registered in both "a" and "b"`)

	_, err = units.New(
		units.Set{Category: "a", Units: []domain.Unit{"x"}},
		units.Set{Category: "a", Units: []domain.Unit{"z"}},
	)
	require.ErrorContains(t, err, `category "a" registered twice`)
}
