package pricenorm

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// NormalizationResult reports the outcome of validating and converting one
// amount/unit pair. Failures are data, not errors; this runs inline with
// interactive input and must never panic the caller.
type NormalizationResult struct {
	Valid           bool
	CanonicalAmount float64
	CanonicalUnit   string
	ErrorMessage    string
}

// ConversionRequest is one entry of a batch conversion. ID is caller-supplied
// for correlation; blank IDs are filled with a generated UUID.
type ConversionRequest struct {
	ID        string
	Amount    float64
	Unit      string
	Dimension Dimension
}

// ConversionResult pairs a batch request's ID with its normalization outcome.
type ConversionResult struct {
	ID     string
	Result NormalizationResult
}

// Engine converts amounts to canonical units and derives comparable prices.
// It is a pure view over its resolver; safe for concurrent use.
type Engine struct {
	resolver *UnitResolver
}

func NewEngine(resolver *UnitResolver) *Engine {
	return &Engine{resolver: resolver}
}

// Resolver exposes the underlying lookup structures.
func (e *Engine) Resolver() *UnitResolver {
	return e.resolver
}

// ConvertAmount converts amount between two units. A false result means no
// conversion path exists and the amount is unusable.
func (e *Engine) ConvertAmount(amount float64, fromUnit, toUnit string) (float64, bool) {
	factor, ok := e.resolver.ConversionFactor(fromUnit, toUnit)
	if !ok {
		return 0, false
	}
	return amount * factor, true
}

// ValidateAndConvert checks an amount/unit pair against an expected dimension
// and converts it to the dimension's canonical unit. Checks run in order and
// the first failure wins; there are no partial results.
//
// A zero amount passes validation but makes every price-per-unit figure
// divide by zero, so callers computing prices must guard it.
func (e *Engine) ValidateAndConvert(amount float64, unit string, expected Dimension) NormalizationResult {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return NormalizationResult{
			ErrorMessage: "amount must be a positive finite number",
		}
	}
	dim, ok := e.resolver.UnitDimension(unit)
	if !ok {
		return NormalizationResult{
			ErrorMessage: fmt.Sprintf("unsupported unit %q", unit),
		}
	}
	if dim != expected {
		return NormalizationResult{
			ErrorMessage: fmt.Sprintf("unit %q (dimension %s) does not match expected dimension %s",
				unit, dim, expected),
		}
	}
	canon, err := e.resolver.CanonicalUnit(expected)
	if err != nil {
		return NormalizationResult{
			ErrorMessage: fmt.Sprintf("conversion to canonical unit failed for %q", unit),
		}
	}
	converted, ok := e.ConvertAmount(amount, unit, canon)
	if !ok {
		// unreachable once the dimension checks pass, kept as a guard
		return NormalizationResult{
			ErrorMessage: fmt.Sprintf("conversion to canonical unit failed for %q", unit),
		}
	}
	return NormalizationResult{
		Valid:           true,
		CanonicalAmount: converted,
		CanonicalUnit:   canon,
	}
}

// CalculateNormalizedPrice returns the price per canonical unit, or false
// when the amount/unit pair does not validate. Callers must not guess a
// divisor on failure.
func (e *Engine) CalculateNormalizedPrice(totalPrice, amount float64, unit string, dim Dimension) (float64, bool) {
	res := e.ValidateAndConvert(amount, unit, dim)
	if !res.Valid {
		return 0, false
	}
	return totalPrice / res.CanonicalAmount, true
}

// BatchConvertToCanonical validates and converts each request independently;
// one bad request does not abort the batch.
func (e *Engine) BatchConvertToCanonical(requests []ConversionRequest) []ConversionResult {
	results := make([]ConversionResult, 0, len(requests))
	for _, req := range requests {
		id := req.ID
		if id == "" {
			id = uuid.New().String()
		}
		results = append(results, ConversionResult{
			ID:     id,
			Result: e.ValidateAndConvert(req.Amount, req.Unit, req.Dimension),
		})
	}
	return results
}
