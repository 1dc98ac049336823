package pricenorm

import (
	"errors"
	"log/slog"
)

// ErrUnknownDimension is returned when no conversion rule ever nominated a
// canonical unit for the requested dimension.
var ErrUnknownDimension = errors.New("no canonical unit registered for dimension")

// CanonicalConflict records that two rules nominated different canonical
// units for the same dimension, and which one won.
type CanonicalConflict struct {
	Dimension Dimension
	Kept      string
	Dropped   string
}

type factorKey struct {
	from string
	to   string
}

// UnitResolver holds the lookup structures derived from a conversion table.
// Built once, read-only afterwards, so it is safe for concurrent use.
type UnitResolver struct {
	unitDimension map[string]Dimension
	factors       map[factorKey]float64
	canonical     map[Dimension]string

	// Conflicts lists every canonical-unit disagreement found while
	// building, so callers can assert on them instead of scraping logs.
	Conflicts []CanonicalConflict
}

// NewUnitResolver scans the rules once and builds the three lookups. The
// canonical unit per dimension is the lexicographically smallest ToUnit seen
// for that dimension, so the outcome does not depend on rule order.
func NewUnitResolver(rules []ConversionRule) *UnitResolver {
	r := &UnitResolver{
		unitDimension: make(map[string]Dimension),
		factors:       make(map[factorKey]float64),
		canonical:     make(map[Dimension]string),
	}
	for _, rule := range rules {
		r.unitDimension[rule.FromUnit] = rule.Dimension
		r.unitDimension[rule.ToUnit] = rule.Dimension
		r.factors[factorKey{rule.FromUnit, rule.ToUnit}] = rule.Factor

		current, ok := r.canonical[rule.Dimension]
		switch {
		case !ok:
			r.canonical[rule.Dimension] = rule.ToUnit
		case current != rule.ToUnit:
			kept, dropped := current, rule.ToUnit
			if rule.ToUnit < current {
				kept, dropped = rule.ToUnit, current
			}
			r.canonical[rule.Dimension] = kept
			r.Conflicts = append(r.Conflicts, CanonicalConflict{
				Dimension: rule.Dimension,
				Kept:      kept,
				Dropped:   dropped,
			})
			slog.Warn("canonical unit conflict",
				"dimension", rule.Dimension.String(),
				"kept", kept,
				"dropped", dropped)
		}
	}
	return r
}

// CanonicalUnit returns the reference unit for a dimension.
func (r *UnitResolver) CanonicalUnit(dim Dimension) (string, error) {
	unit, ok := r.canonical[dim]
	if !ok {
		return "", ErrUnknownDimension
	}
	return unit, nil
}

// UnitDimension reports which dimension a unit belongs to.
func (r *UnitResolver) UnitDimension(unit string) (Dimension, bool) {
	dim, ok := r.unitDimension[unit]
	return dim, ok
}

// IsSupportedUnit reports whether the unit appears in any conversion rule.
func (r *UnitResolver) IsSupportedUnit(unit string) bool {
	_, ok := r.unitDimension[unit]
	return ok
}

// AreUnitsCompatible reports whether both units belong to the same dimension.
func (r *UnitResolver) AreUnitsCompatible(a, b string) bool {
	da, okA := r.unitDimension[a]
	db, okB := r.unitDimension[b]
	return okA && okB && da == db
}

// ConversionFactor resolves the multiplier from one unit to another:
// identity, then direct lookup, then composition through the dimension's
// canonical unit. The canonical->to leg may be derived as the reciprocal of
// to->canonical, since rules are not required to exist in both directions.
// A false result means no conversion path exists.
func (r *UnitResolver) ConversionFactor(from, to string) (float64, bool) {
	if from == to {
		return 1, true
	}
	if f, ok := r.factors[factorKey{from, to}]; ok {
		return f, true
	}
	if !r.AreUnitsCompatible(from, to) {
		return 0, false
	}
	canon, ok := r.canonical[r.unitDimension[from]]
	if !ok {
		return 0, false
	}

	toCanon, ok := r.legFactor(from, canon)
	if !ok {
		return 0, false
	}
	fromCanon, ok := r.legFactor(canon, to)
	if !ok {
		// derive the second leg from the reverse rule
		reverse, okRev := r.legFactor(to, canon)
		if !okRev || reverse == 0 {
			return 0, false
		}
		fromCanon = 1 / reverse
	}
	return toCanon * fromCanon, true
}

func (r *UnitResolver) legFactor(from, to string) (float64, bool) {
	if from == to {
		return 1, true
	}
	f, ok := r.factors[factorKey{from, to}]
	return f, ok
}
