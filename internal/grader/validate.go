package grader

import (
	"unitgrader/internal/units"
	"unitgrader/pkg/domain"
	"unitgrader/pkg/serrors"
)

// ResolveCategory validates the question inputs and returns the category
// shared by fromUnit and toUnit.
//
// Checks run in order: the input value must be numeric, both units must be
// registered, and both must belong to the same category. A unit converted to
// itself always resolves. The function never panics; an unexpected failure
// is reported as serrors.ErrInternal.
func ResolveCategory(registry *units.Registry, fromUnit, toUnit, inputValue string) (category domain.Category, err error) {
	defer func() {
		if p := recover(); p != nil {
			category = ""
			err = serrors.With(serrors.ErrInternal, "could not resolve category: %v", p)
		}
	}()

	if _, err := ParseNumber(inputValue); err != nil {
		return "", serrors.Wrap(serrors.ErrInvalidNumber, err, "%q as input value needs to be numeric", inputValue)
	}

	fromCategory, ok := registry.CategoryOf(fromUnit)
	if !ok {
		return "", serrors.With(serrors.ErrUnknownUnit, "%q as from unit is not supported", fromUnit)
	}
	toCategory, ok := registry.CategoryOf(toUnit)
	if !ok {
		return "", serrors.With(serrors.ErrUnknownUnit, "%q as to unit is not supported", toUnit)
	}

	if fromCategory != toCategory {
		return "", serrors.With(serrors.ErrCategoryMismatch,
			"%q is a %s unit but %q is a %s unit", fromUnit, fromCategory, toUnit, toCategory)
	}

	return fromCategory, nil
}
