// Package units holds the registry of unit categories and the units that
// belong to each of them.
package units

import (
	"unitgrader/pkg/domain"

	"github.com/go-faster/errors"
)

// Set lists the units of one category.
type Set struct {
	Category domain.Category
	Units    []domain.Unit
}

// Registry maps categories to their unit sets. It is immutable after New and
// safe for concurrent use.
type Registry struct {
	sets       []Set
	categoryOf map[domain.Unit]domain.Category
	members    map[domain.Category]map[domain.Unit]struct{}
}

// New builds a registry from the given sets. It fails when a category is
// listed twice or when a unit appears in more than one category.
func New(sets ...Set) (*Registry, error) {
	r := &Registry{
		categoryOf: make(map[domain.Unit]domain.Category),
		members:    make(map[domain.Category]map[domain.Unit]struct{}, len(sets)),
	}

	for _, set := range sets {
		if _, ok := r.members[set.Category]; ok {
			return nil, errors.Errorf("category %q registered twice", set.Category)
		}

		members := make(map[domain.Unit]struct{}, len(set.Units))
		for _, u := range set.Units {
			if other, ok := r.categoryOf[u]; ok {
				return nil, errors.Errorf("unit %q registered in both %q and %q", u, other, set.Category)
			}
			r.categoryOf[u] = set.Category
			members[u] = struct{}{}
		}
		r.members[set.Category] = members
		r.sets = append(r.sets, Set{Category: set.Category, Units: append([]domain.Unit(nil), set.Units...)})
	}

	return r, nil
}

// CategoryOf returns the category whose unit set contains unit. Matching is
// exact and case-sensitive; an empty or unknown unit reports false.
func (r *Registry) CategoryOf(unit string) (domain.Category, bool) {
	c, ok := r.categoryOf[domain.Unit(unit)]

	return c, ok
}

// HasCategory reports whether the category is registered.
func (r *Registry) HasCategory(category domain.Category) bool {
	_, ok := r.members[category]

	return ok
}

// Contains reports whether unit belongs to category.
func (r *Registry) Contains(category domain.Category, unit domain.Unit) bool {
	_, ok := r.members[category][unit]

	return ok
}

// Categories returns the registered categories in registration order.
func (r *Registry) Categories() []domain.Category {
	out := make([]domain.Category, 0, len(r.sets))
	for _, s := range r.sets {
		out = append(out, s.Category)
	}

	return out
}

// Units returns the units of category in registration order, or nil when the
// category is unknown.
func (r *Registry) Units(category domain.Category) []domain.Unit {
	for _, s := range r.sets {
		if s.Category == category {
			return append([]domain.Unit(nil), s.Units...)
		}
	}

	return nil
}
