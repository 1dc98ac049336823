package pricenorm

import (
	"math"
	"testing"
)

var flourItem = InventoryItem{
	ID:                 "item-flour",
	Name:               "Flour",
	Category:           "baking",
	CanonicalDimension: DimensionMass,
	CanonicalUnit:      "g",
	ShelfLifeSensitive: true,
}

func TestComputeOfferMetricsWithShipping(t *testing.T) {
	e := newTestEngine(t)
	offer := Offer{
		Amount:           1,
		AmountUnit:       "kg",
		TotalPrice:       20,
		ShippingCost:     5,
		ShippingIncluded: false,
	}
	m := e.ComputeOfferMetrics(offer, flourItem)
	if !m.Valid {
		t.Fatalf("expected valid metrics, got %q", m.ErrorMessage)
	}
	if m.CanonicalAmount != 1000 || m.CanonicalUnit != "g" {
		t.Fatalf("expected 1000 g, got %v %s", m.CanonicalAmount, m.CanonicalUnit)
	}
	if math.Abs(m.PricePerCanonicalExclShipping-0.02) > 1e-12 {
		t.Fatalf("excl shipping: expected 0.02, got %v", m.PricePerCanonicalExclShipping)
	}
	if m.TotalWithShipping != 25 {
		t.Fatalf("total with shipping: expected 25, got %v", m.TotalWithShipping)
	}
	if math.Abs(m.PricePerCanonicalInclShipping-0.025) > 1e-12 {
		t.Fatalf("incl shipping: expected 0.025, got %v", m.PricePerCanonicalInclShipping)
	}
	if m.EffectivePricePerCanonical != m.PricePerCanonicalInclShipping {
		t.Fatalf("effective price must equal the incl-shipping figure")
	}
}

func TestComputeOfferMetricsShippingAlreadyIncluded(t *testing.T) {
	e := newTestEngine(t)
	offer := Offer{
		Amount:           500,
		AmountUnit:       "g",
		TotalPrice:       10,
		ShippingCost:     3,
		ShippingIncluded: true,
	}
	m := e.ComputeOfferMetrics(offer, flourItem)
	if !m.Valid {
		t.Fatalf("expected valid metrics, got %q", m.ErrorMessage)
	}
	if m.TotalWithShipping != 10 {
		t.Fatalf("shipping already included: expected 10, got %v", m.TotalWithShipping)
	}
	if m.PricePerCanonicalExclShipping != m.PricePerCanonicalInclShipping {
		t.Fatalf("both figures should match when shipping is included")
	}
}

func TestComputeOfferMetricsInvalidOffer(t *testing.T) {
	e := newTestEngine(t)
	offer := Offer{Amount: 1, AmountUnit: "ml", TotalPrice: 5}
	m := e.ComputeOfferMetrics(offer, flourItem)
	if m.Valid {
		t.Fatalf("volume offer against a mass item should fail")
	}
	if m.ErrorMessage == "" {
		t.Fatalf("failure should carry the normalization message")
	}
	if m.EffectivePricePerCanonical != 0 {
		t.Fatalf("no numbers on failure")
	}
}

func TestComputeOfferMetricsZeroAmount(t *testing.T) {
	e := newTestEngine(t)
	offer := Offer{Amount: 0, AmountUnit: "kg", TotalPrice: 5}
	m := e.ComputeOfferMetrics(offer, flourItem)
	if !m.Valid {
		t.Fatalf("zero amount validates, got %q", m.ErrorMessage)
	}
	if !math.IsInf(m.PricePerCanonicalInclShipping, 1) {
		t.Fatalf("zero amount yields +Inf prices for the caller to guard, got %v",
			m.PricePerCanonicalInclShipping)
	}
}
