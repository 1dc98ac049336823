package pricenorm

// InventoryItem is the slice of an item record this engine consumes. The
// CanonicalUnit must match the resolver's canonical unit for the item's
// dimension; that is an integration contract with the repository layer, not
// something validated here.
type InventoryItem struct {
	ID                 string
	Name               string
	Category           string
	CanonicalDimension Dimension
	CanonicalUnit      string
	ShelfLifeSensitive bool
}

// Offer is a price input as entered in a form: a quantity in some unit, a
// total price, and optional shipping. Never mutated by the engine.
type Offer struct {
	Amount           float64
	AmountUnit       string
	TotalPrice       float64
	ShippingCost     float64
	ShippingIncluded bool
}

// OfferMetrics are the comparable per-canonical-unit price figures for one
// offer. Recomputed from scratch on every input change; never cached.
type OfferMetrics struct {
	Valid        bool
	ErrorMessage string

	CanonicalAmount float64
	CanonicalUnit   string

	PricePerCanonicalExclShipping float64
	TotalWithShipping             float64
	PricePerCanonicalInclShipping float64

	// EffectivePricePerCanonical is the primary cross-offer comparison
	// figure. Current policy: it always includes shipping.
	EffectivePricePerCanonical float64
}

// ComputeOfferMetrics normalizes an offer's quantity against its item and
// derives the price figures. On validation failure the metrics carry the
// normalization error and no numbers. A zero canonical amount yields +Inf
// prices, which callers must guard before display.
func (e *Engine) ComputeOfferMetrics(offer Offer, item InventoryItem) OfferMetrics {
	res := e.ValidateAndConvert(offer.Amount, offer.AmountUnit, item.CanonicalDimension)
	if !res.Valid {
		return OfferMetrics{ErrorMessage: res.ErrorMessage}
	}

	totalWithShipping := offer.TotalPrice
	if !offer.ShippingIncluded {
		totalWithShipping += offer.ShippingCost
	}
	exclShipping := offer.TotalPrice / res.CanonicalAmount
	inclShipping := totalWithShipping / res.CanonicalAmount

	return OfferMetrics{
		Valid:                         true,
		CanonicalAmount:               res.CanonicalAmount,
		CanonicalUnit:                 res.CanonicalUnit,
		PricePerCanonicalExclShipping: exclShipping,
		TotalWithShipping:             totalWithShipping,
		PricePerCanonicalInclShipping: inclShipping,
		EffectivePricePerCanonical:    inclShipping,
	}
}
