package grader_test

import (
	"testing"
	"unitgrader/internal/grader"
	"unitgrader/internal/units"
	"unitgrader/pkg/domain"
	"unitgrader/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestResolveCategory(t *testing.T) {
	registry := units.Default()

	tests := []struct {
		name     string
		input    string
		from     string
		to       string
		category domain.Category
		kind     serrors.Kind
	}{
		{name: "temperature", input: "100", from: "Celsius", to: "Kelvin", category: domain.CategoryTemperature},
		{name: "volume", input: "1", from: "cups", to: "cubic-feet", category: domain.CategoryVolume},
		{name: "same unit", input: "-3", from: "Rankine", to: "Rankine", category: domain.CategoryTemperature},
		{name: "non numeric input", input: "dog", from: "Celsius", to: "Kelvin", kind: serrors.ErrInvalidNumber},
		{name: "input checked first", input: "dog", from: "Dummy", to: "liters", kind: serrors.ErrInvalidNumber},
		{name: "unknown from unit", input: "1", from: "celsius", to: "Kelvin", kind: serrors.ErrUnknownUnit},
		{name: "unknown to unit", input: "1", from: "Celsius", to: "KELVIN", kind: serrors.ErrUnknownUnit},
		{name: "category mismatch", input: "1", from: "Celsius", to: "liters", kind: serrors.ErrCategoryMismatch},
		{name: "category mismatch reversed", input: "1", from: "cubic-feet", to: "Fahrenheit", kind: serrors.ErrCategoryMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, err := grader.ResolveCategory(registry, tt.from, tt.to, tt.input)
			if tt.kind != nil {
				require.ErrorIs(t, err, tt.kind)
				require.Equal(t, tt.kind, serrors.KindOf(err))
				require.Empty(t, category)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.category, category)
		})
	}
}

func TestResolveCategory_NilRegistry(t *testing.T) {
	_, err := grader.ResolveCategory(nil, "Celsius", "Kelvin", "1")
	require.ErrorIs(t, err, serrors.ErrInternal)
}
