package serrors_test

import (
	"errors"
	"fmt"
	"unitgrader/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrBadRequest,
		serrors.ErrInternal,
		serrors.ErrInvalidNumber,
		serrors.ErrUnknownUnit,
		serrors.ErrUnknownCategory,
		serrors.ErrCategoryMismatch,
		serrors.ErrMissingConversion,
		serrors.ErrConversionFailed,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}

	// Ensure some expected inequalities
	require.NotEqual(t, serrors.ErrUnknownUnit, serrors.ErrCategoryMismatch, "UnknownUnit should not equal CategoryMismatch")
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("invalid syntax")

	e1 := serrors.With(serrors.ErrUnknownUnit, "unit %q is not supported", "celsius")
	require.Equal(t, `unit "celsius" is not supported`, e1.Error(), "With() Error() mismatch")

	e2 := serrors.Wrap(serrors.ErrInvalidNumber, base, "parsing input value")
	require.Equal(t, "parsing input value: invalid syntax", e2.Error(), "Wrap() Error() mismatch")

	e3 := serrors.With(serrors.ErrCategoryMismatch, "")
	require.Equal(t, "CATEGORY_MISMATCH", e3.Error(), "empty message should fall back to the kind")
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrConversionFailed, base, "converting")

	require.ErrorIs(t, e, serrors.ErrConversionFailed)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrMissingConversion, "errors.Is should not match a different kind")
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrUnknownCategory, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k, "errors.As should extract Kind")
	require.Equal(t, serrors.ErrUnknownCategory, k)

	var ce *customError
	require.ErrorAs(t, e, &ce, "errors.As should extract wrapped error type")
	require.Equal(t, base, ce, "extracted cause pointer mismatch")
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("grading: %w", serrors.With(serrors.ErrUnknownUnit, "unit %q is not supported", "dog"))
	require.Equal(t, serrors.ErrUnknownUnit, serrors.KindOf(wrapped))
	require.Equal(t, serrors.ErrCategoryMismatch, serrors.KindOf(serrors.ErrCategoryMismatch))
	require.Nil(t, serrors.KindOf(errors.New("plain")))
	require.Nil(t, serrors.KindOf(nil))
}
