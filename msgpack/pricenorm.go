// Package pricenormmsgpack holds the msgpack wire representations of the
// engine's types, kept separate from the root package so wire tags never
// leak into the core model.
package pricenormmsgpack

import "pricenorm"

type ConversionRule struct {
	FromUnit  string  `msgpack:"from_unit,omitempty"`
	ToUnit    string  `msgpack:"to_unit,omitempty"`
	Factor    float64 `msgpack:"factor,omitempty"`
	Dimension string  `msgpack:"dimension,omitempty"`
}

type ConversionRequest struct {
	ID        string  `msgpack:"id,omitempty"`
	Amount    float64 `msgpack:"amount"`
	Unit      string  `msgpack:"unit,omitempty"`
	Dimension string  `msgpack:"dimension,omitempty"`
}

type NormalizationResult struct {
	Valid           bool    `msgpack:"valid"`
	CanonicalAmount float64 `msgpack:"canonical_amount,omitempty"`
	CanonicalUnit   string  `msgpack:"canonical_unit,omitempty"`
	ErrorMessage    string  `msgpack:"error,omitempty"`
}

type ConversionResult struct {
	ID     string              `msgpack:"id,omitempty"`
	Result NormalizationResult `msgpack:"result"`
}

type BatchConversionRequest struct {
	Requests []ConversionRequest `msgpack:"requests,omitempty"`
}

type BatchConversionResult struct {
	Results []ConversionResult `msgpack:"results,omitempty"`
}

type ConvertAmountRequest struct {
	Amount   float64 `msgpack:"amount"`
	FromUnit string  `msgpack:"from_unit,omitempty"`
	ToUnit   string  `msgpack:"to_unit,omitempty"`
}

type ConvertAmountResult struct {
	OK     bool    `msgpack:"ok"`
	Amount float64 `msgpack:"amount,omitempty"`
}

type CanonicalUnitRequest struct {
	Dimension string `msgpack:"dimension,omitempty"`
}

type CanonicalUnitResult struct {
	Unit string `msgpack:"unit,omitempty"`
}

type Offer struct {
	Amount           float64 `msgpack:"amount"`
	AmountUnit       string  `msgpack:"amount_unit,omitempty"`
	TotalPrice       float64 `msgpack:"total_price"`
	ShippingCost     float64 `msgpack:"shipping_cost,omitempty"`
	ShippingIncluded bool    `msgpack:"shipping_included,omitempty"`
}

type InventoryItem struct {
	ID                 string `msgpack:"id,omitempty"`
	Name               string `msgpack:"name,omitempty"`
	Category           string `msgpack:"category,omitempty"`
	CanonicalDimension string `msgpack:"canonical_dimension,omitempty"`
	CanonicalUnit      string `msgpack:"canonical_unit,omitempty"`
	ShelfLifeSensitive bool   `msgpack:"shelf_life_sensitive,omitempty"`
}

type OfferMetrics struct {
	Valid                         bool    `msgpack:"valid"`
	ErrorMessage                  string  `msgpack:"error,omitempty"`
	CanonicalAmount               float64 `msgpack:"canonical_amount,omitempty"`
	CanonicalUnit                 string  `msgpack:"canonical_unit,omitempty"`
	PricePerCanonicalExclShipping float64 `msgpack:"price_excl_shipping,omitempty"`
	TotalWithShipping             float64 `msgpack:"total_with_shipping,omitempty"`
	PricePerCanonicalInclShipping float64 `msgpack:"price_incl_shipping,omitempty"`
	EffectivePricePerCanonical    float64 `msgpack:"effective_price,omitempty"`
}

type ShelfLifeRequest struct {
	Item     InventoryItem `msgpack:"item"`
	Quantity float64       `msgpack:"quantity"`
}

type ShelfLifeWarning struct {
	ShouldShowWarning bool    `msgpack:"should_show_warning"`
	Severity          string  `msgpack:"severity,omitempty"`
	WarningMessage    string  `msgpack:"message,omitempty"`
	ExceededThreshold float64 `msgpack:"exceeded_threshold,omitempty"`
	ActualQuantity    float64 `msgpack:"actual_quantity,omitempty"`
}

func ToCoreRequest(req ConversionRequest) pricenorm.ConversionRequest {
	return pricenorm.ConversionRequest{
		ID:        req.ID,
		Amount:    req.Amount,
		Unit:      req.Unit,
		Dimension: pricenorm.Dimension(req.Dimension),
	}
}

func NewNormalizationResult(res pricenorm.NormalizationResult) NormalizationResult {
	return NormalizationResult{
		Valid:           res.Valid,
		CanonicalAmount: res.CanonicalAmount,
		CanonicalUnit:   res.CanonicalUnit,
		ErrorMessage:    res.ErrorMessage,
	}
}

func NewConversionResult(res pricenorm.ConversionResult) ConversionResult {
	return ConversionResult{
		ID:     res.ID,
		Result: NewNormalizationResult(res.Result),
	}
}

func ToCoreItem(item InventoryItem) pricenorm.InventoryItem {
	return pricenorm.InventoryItem{
		ID:                 item.ID,
		Name:               item.Name,
		Category:           item.Category,
		CanonicalDimension: pricenorm.Dimension(item.CanonicalDimension),
		CanonicalUnit:      item.CanonicalUnit,
		ShelfLifeSensitive: item.ShelfLifeSensitive,
	}
}

func NewShelfLifeWarning(res pricenorm.ShelfLifeWarningResult) ShelfLifeWarning {
	return ShelfLifeWarning{
		ShouldShowWarning: res.ShouldShowWarning,
		Severity:          res.Severity,
		WarningMessage:    res.WarningMessage,
		ExceededThreshold: res.ExceededThreshold,
		ActualQuantity:    res.ActualQuantity,
	}
}
