package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"pricenorm"
)

func main() {
	rules := pricenorm.DefaultRules()
	if err := pricenorm.ValidateRules(rules); err != nil {
		log.Fatal(err)
	}

	dir, err := os.MkdirTemp("", "pricenorm-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	store, err := pricenorm.OpenStore(filepath.Join(dir, "pricenorm.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	// ship the conversion table as data
	if err := store.SaveRules(rules); err != nil {
		log.Fatal(err)
	}
	loaded, err := store.LoadRules()
	if err != nil {
		log.Fatal(err)
	}

	engine := pricenorm.NewEngine(pricenorm.NewUnitResolver(loaded))

	flour := pricenorm.InventoryItem{
		ID:                 "item-flour",
		Name:               "Flour",
		Category:           "baking",
		CanonicalDimension: pricenorm.DimensionMass,
		CanonicalUnit:      "g",
		ShelfLifeSensitive: true,
	}
	offer := pricenorm.Offer{
		Amount:       1,
		AmountUnit:   "kg",
		TotalPrice:   20,
		ShippingCost: 5,
	}

	res := engine.ValidateAndConvert(offer.Amount, offer.AmountUnit, flour.CanonicalDimension)
	fmt.Printf("normalized: %.0f %s\n", res.CanonicalAmount, res.CanonicalUnit)

	metrics := engine.ComputeOfferMetrics(offer, flour)
	fmt.Printf("price per %s: %.4f (%.4f with shipping)\n",
		metrics.CanonicalUnit,
		metrics.PricePerCanonicalExclShipping,
		metrics.PricePerCanonicalInclShipping)

	if err := store.SaveOffer("offer-1", flour.ID, offer); err != nil {
		log.Fatal(err)
	}

	warning := pricenorm.AnalyzeShelfLifeWarning(flour, 15, pricenorm.DefaultShelfLifeConfig())
	if warning.ShouldShowWarning {
		fmt.Printf("[%s] %s\n", warning.Severity, warning.WarningMessage)
	}
}
