// Package conversion holds the conversion-factor table and the engine that
// applies it.
package conversion

import (
	"fmt"
	"strings"
	"unitgrader/internal/units"
	"unitgrader/pkg/domain"

	"github.com/go-faster/errors"
)

// Func converts a value from one unit into another. It must be pure.
type Func func(x float64) float64

// Pair is an ordered (source, target) unit pair.
type Pair struct {
	From domain.Unit
	To   domain.Unit
}

func (p Pair) String() string { return fmt.Sprintf("%s->%s", p.From, p.To) }

// Entries maps ordered unit pairs of one category to their conversion function.
type Entries map[Pair]Func

// Table maps (category, source, target) to a conversion function. It is
// immutable after NewTable and safe for concurrent use.
type Table struct {
	registry *units.Registry
	funcs    map[domain.Category]Entries
}

// NewTable builds a table over the given unit registry. Entries are copied; the
// table is not checked for completeness, see Validate.
func NewTable(registry *units.Registry, funcs map[domain.Category]Entries) *Table {
	t := &Table{
		registry: registry,
		funcs:    make(map[domain.Category]Entries, len(funcs)),
	}
	for c, entries := range funcs {
		cp := make(Entries, len(entries))
		for p, f := range entries {
			cp[p] = f
		}
		t.funcs[c] = cp
	}

	return t
}

// Registry returns the unit registry the table is defined over.
func (t *Table) Registry() *units.Registry {
	return t.registry
}

// Lookup returns the conversion function for the ordered pair (from, to) in
// category. It reports false when the category is unknown, when either unit
// does not belong to the category, or when no function is registered.
func (t *Table) Lookup(category domain.Category, from, to domain.Unit) (Func, bool) {
	if !t.registry.HasCategory(category) {
		return nil, false
	}
	if !t.registry.Contains(category, from) || !t.registry.Contains(category, to) {
		return nil, false
	}

	f, ok := t.funcs[category][Pair{From: from, To: to}]
	if !ok || f == nil {
		return nil, false
	}

	return f, true
}

// Pairs returns the ordered pairs of category that have a conversion
// function, following the registry's unit order.
func (t *Table) Pairs(category domain.Category) []Pair {
	var out []Pair
	for _, from := range t.registry.Units(category) {
		for _, to := range t.registry.Units(category) {
			if from == to {
				continue
			}
			if _, ok := t.Lookup(category, from, to); ok {
				out = append(out, Pair{From: from, To: to})
			}
		}
	}

	return out
}

// Validate checks that every ordered pair of distinct units in every
// registered category has a conversion function, and that no function is
// registered for a unit outside its category. A missing pair is a
// configuration error.
func (t *Table) Validate() error {
	var problems []string

	for _, c := range t.registry.Categories() {
		for _, from := range t.registry.Units(c) {
			for _, to := range t.registry.Units(c) {
				if from == to {
					continue
				}
				if _, ok := t.Lookup(c, from, to); !ok {
					problems = append(problems, fmt.Sprintf("%s: missing %s", c, Pair{From: from, To: to}))
				}
			}
		}
	}

	for c, entries := range t.funcs {
		for p := range entries {
			if !t.registry.Contains(c, p.From) || !t.registry.Contains(c, p.To) {
				problems = append(problems, fmt.Sprintf("%s: unexpected %s", c, p))
			}
		}
	}

	if len(problems) > 0 {
		return errors.Errorf("invalid conversion table: %s", strings.Join(problems, "; "))
	}

	return nil
}
