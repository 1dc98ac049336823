package pricenorm

import (
	"fmt"
	"math"
)

// maxUnitLen bounds unit symbols; longer strings indicate free text leaking
// in from the form layer.
const maxUnitLen = 20

// ConversionRule is one directed conversion edge, e.g.
// FromUnit "kg", ToUnit "g", Factor 1000 means 1 kg = 1000 g.
type ConversionRule struct {
	FromUnit  string
	ToUnit    string
	Factor    float64
	Dimension Dimension
}

// ValidateRules checks the static fact base before a resolver is built from
// it. A failure here is a data error, not a user-input error, so it is the
// one class of problem worth treating as fatal at startup.
func ValidateRules(rules []ConversionRule) error {
	for i, r := range rules {
		if r.FromUnit == "" || r.ToUnit == "" {
			return fmt.Errorf("rule %d: empty unit symbol", i)
		}
		if len(r.FromUnit) > maxUnitLen || len(r.ToUnit) > maxUnitLen {
			return fmt.Errorf("rule %d: unit symbol longer than %d chars", i, maxUnitLen)
		}
		if !(r.Factor > 0) || math.IsInf(r.Factor, 0) {
			return fmt.Errorf("rule %d (%s->%s): factor must be positive and finite, got %v",
				i, r.FromUnit, r.ToUnit, r.Factor)
		}
		if !r.Dimension.Valid() {
			return fmt.Errorf("rule %d (%s->%s): unknown dimension %q",
				i, r.FromUnit, r.ToUnit, r.Dimension)
		}
	}
	return nil
}

// DefaultRules returns the built-in conversion table. Every rule targets its
// dimension's canonical unit directly: g, ml, unit, cm, cm2.
func DefaultRules() []ConversionRule {
	return []ConversionRule{
		// mass, canonical g
		{FromUnit: "g", ToUnit: "g", Factor: 1, Dimension: DimensionMass},
		{FromUnit: "kg", ToUnit: "g", Factor: 1000, Dimension: DimensionMass},
		{FromUnit: "mg", ToUnit: "g", Factor: 0.001, Dimension: DimensionMass},
		{FromUnit: "lb", ToUnit: "g", Factor: 453.59237, Dimension: DimensionMass},
		{FromUnit: "oz", ToUnit: "g", Factor: 28.349523125, Dimension: DimensionMass},

		// volume, canonical ml
		{FromUnit: "ml", ToUnit: "ml", Factor: 1, Dimension: DimensionVolume},
		{FromUnit: "l", ToUnit: "ml", Factor: 1000, Dimension: DimensionVolume},
		{FromUnit: "tsp", ToUnit: "ml", Factor: 4.92892159375, Dimension: DimensionVolume},
		{FromUnit: "tbsp", ToUnit: "ml", Factor: 14.78676478125, Dimension: DimensionVolume},
		{FromUnit: "cup", ToUnit: "ml", Factor: 236.5882365, Dimension: DimensionVolume},
		{FromUnit: "fl-oz", ToUnit: "ml", Factor: 29.5735295625, Dimension: DimensionVolume},

		// count, canonical unit
		{FromUnit: "unit", ToUnit: "unit", Factor: 1, Dimension: DimensionCount},
		{FromUnit: "pair", ToUnit: "unit", Factor: 2, Dimension: DimensionCount},
		{FromUnit: "dozen", ToUnit: "unit", Factor: 12, Dimension: DimensionCount},

		// length, canonical cm
		{FromUnit: "cm", ToUnit: "cm", Factor: 1, Dimension: DimensionLength},
		{FromUnit: "mm", ToUnit: "cm", Factor: 0.1, Dimension: DimensionLength},
		{FromUnit: "m", ToUnit: "cm", Factor: 100, Dimension: DimensionLength},
		{FromUnit: "km", ToUnit: "cm", Factor: 100000, Dimension: DimensionLength},

		// area, canonical cm2
		{FromUnit: "cm2", ToUnit: "cm2", Factor: 1, Dimension: DimensionArea},
		{FromUnit: "m2", ToUnit: "cm2", Factor: 10000, Dimension: DimensionArea},
	}
}
