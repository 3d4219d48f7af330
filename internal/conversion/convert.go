package conversion

import (
	"math"
	"unitgrader/pkg/domain"
	"unitgrader/pkg/serrors"
)

// Convert converts value from one unit to another within category using
// table, and rounds the result to one decimal place.
//
// Both units must belong to category. Converting a unit to itself returns the
// rounded value without consulting the table. Otherwise the converted value is
// rounded to three places first, to drop floating point noise, and then to one.
//
// A conversion function that panics, or that turns a finite value into an
// infinite or NaN one, fails with serrors.ErrConversionFailed. An infinite
// result from an input within overflowHeadroom of the float64 limit is a plain
// overflow and is returned as is.
func Convert(value float64, from, to domain.Unit, category domain.Category, table *Table) (float64, error) {
	reg := table.Registry()
	if !reg.HasCategory(category) {
		return 0, serrors.With(serrors.ErrUnknownCategory, "category %q is not a valid category", category)
	}
	if !reg.Contains(category, from) || !reg.Contains(category, to) {
		return 0, serrors.With(serrors.ErrUnknownUnit,
			"from unit %q or to unit %q is not a valid %s unit", from, to, category)
	}

	if from == to {
		return Round(value, 1), nil
	}

	fn, ok := table.Lookup(category, from, to)
	if !ok {
		return 0, serrors.With(serrors.ErrMissingConversion, "conversion from %s to %s does not exist", from, to)
	}

	converted, err := apply(fn, value)
	if err != nil {
		return 0, err
	}
	if !isFinite(converted) && isFinite(value) && !overflowed(value, converted) {
		return 0, serrors.With(serrors.ErrConversionFailed,
			"conversion from %s to %s of %v produced %v", from, to, value, converted)
	}

	return Round(Round(converted, 3), 1), nil
}

func apply(fn Func, value float64) (out float64, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = serrors.With(serrors.ErrConversionFailed, "conversion function panicked: %v", p)
		}
	}()

	return fn(value), nil
}

// overflowHeadroom bounds the factor by which a conversion may grow its input.
const overflowHeadroom = 1 << 20

func overflowed(value, converted float64) bool {
	return math.IsInf(converted, 0) && math.Abs(value) > math.MaxFloat64/overflowHeadroom
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
