package pricenorm

import "fmt"

// Severity tiers for shelf-life warnings.
const (
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityHigh    = "high"
)

const (
	defaultThresholdMultiplier = 3.0
	defaultMinimumQuantity     = 10.0

	warningRatio = 3.0
	highRatio    = 5.0
)

// ShelfLifeConfig tunes the warning policy. Zero-value fields fall back to
// the documented defaults, so partial overrides work.
type ShelfLifeConfig struct {
	DefaultThresholdMultiplier float64
	MinimumQuantityThreshold   float64
	CategoryThresholds         map[string]float64
	ItemThresholds             map[string]float64
}

// DefaultShelfLifeConfig returns the policy defaults: multiplier 3.0,
// quantity floor 10, no per-category or per-item overrides.
func DefaultShelfLifeConfig() ShelfLifeConfig {
	return ShelfLifeConfig{
		DefaultThresholdMultiplier: defaultThresholdMultiplier,
		MinimumQuantityThreshold:   defaultMinimumQuantity,
	}
}

func (c ShelfLifeConfig) thresholdMultiplier() float64 {
	if c.DefaultThresholdMultiplier > 0 {
		return c.DefaultThresholdMultiplier
	}
	return defaultThresholdMultiplier
}

func (c ShelfLifeConfig) minimumQuantity() float64 {
	if c.MinimumQuantityThreshold > 0 {
		return c.MinimumQuantityThreshold
	}
	return defaultMinimumQuantity
}

// resolveThreshold walks the override chain: item, then category, then the
// global default. Kept as a flat lookup chain so the precedence stays
// auditable.
func (c ShelfLifeConfig) resolveThreshold(item InventoryItem) float64 {
	if t, ok := c.ItemThresholds[item.ID]; ok && t > 0 {
		return t
	}
	if t, ok := c.CategoryThresholds[item.Category]; ok && t > 0 {
		return t
	}
	return c.thresholdMultiplier()
}

// ShelfLifeWarningResult is the classifier output. Recomputed on demand,
// never cached.
type ShelfLifeWarningResult struct {
	ShouldShowWarning bool
	Severity          string
	WarningMessage    string
	ExceededThreshold float64
	ActualQuantity    float64
}

// AnalyzeShelfLifeWarning classifies a purchase quantity against an item's
// shelf-life policy. Pure function of its inputs.
//
// Quantities below the minimum floor never warn, regardless of the
// multiplier math; this keeps small routine purchases quiet.
func AnalyzeShelfLifeWarning(item InventoryItem, quantity float64, cfg ShelfLifeConfig) ShelfLifeWarningResult {
	if !item.ShelfLifeSensitive {
		return ShelfLifeWarningResult{Severity: SeverityInfo}
	}

	threshold := cfg.resolveThreshold(item)
	if quantity < cfg.minimumQuantity() {
		return ShelfLifeWarningResult{Severity: SeverityInfo}
	}
	if quantity <= threshold {
		return ShelfLifeWarningResult{Severity: SeverityInfo}
	}

	ratio := quantity / threshold
	var severity, message string
	switch {
	case ratio >= highRatio:
		severity = SeverityHigh
		message = fmt.Sprintf("%s: %g far exceeds the shelf-life threshold of %g; most of it is likely to spoil",
			item.Name, quantity, threshold)
	case ratio >= warningRatio:
		severity = SeverityWarning
		message = fmt.Sprintf("%s: %g is well above the shelf-life threshold of %g; consider a smaller purchase",
			item.Name, quantity, threshold)
	default:
		severity = SeverityInfo
		message = fmt.Sprintf("%s: %g exceeds the shelf-life threshold of %g",
			item.Name, quantity, threshold)
	}

	return ShelfLifeWarningResult{
		ShouldShowWarning: true,
		Severity:          severity,
		WarningMessage:    message,
		ExceededThreshold: threshold,
		ActualQuantity:    quantity,
	}
}
