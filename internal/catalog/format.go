package catalog

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Skotchmaster/sleepsound/internal/models"
)

var printer = message.NewPrinter(language.English)

// FormatPrice renders whole rupees with digit grouping, e.g. ₹12,999.
func FormatPrice(v int64) string {
	return printer.Sprintf("₹%d", v)
}

type PriceDisplay struct {
	Price           int64  `json:"price"`
	DisplayPrice    string `json:"display_price"`
	ScaledOriginal  int64  `json:"scaled_original,omitempty"`
	Savings         int64  `json:"savings,omitempty"`
	DiscountPercent int    `json:"discount_percent,omitempty"`
}

func round(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}

// DiscountPercent compares the list price against the catalog price.
func DiscountPercent(p models.Product) int {
	if p.OriginalPrice <= 0 {
		return 0
	}
	return int(round((1 - float64(p.Price)/float64(p.OriginalPrice)) * 100))
}

// Display scales the list price by the same factor the configuration applied
// to the catalog price, so the shown discount stays consistent.
func Display(p models.Product, current int64) PriceDisplay {
	d := PriceDisplay{Price: current, DisplayPrice: FormatPrice(current)}
	if p.OriginalPrice <= 0 || p.Price <= 0 {
		return d
	}
	scaled := float64(p.OriginalPrice) * float64(current) / float64(p.Price)
	d.ScaledOriginal = round(scaled)
	d.Savings = max(0, round(scaled-float64(current)))
	if d.ScaledOriginal > 0 {
		d.DiscountPercent = int(round((1 - float64(current)/float64(d.ScaledOriginal)) * 100))
	}
	return d
}
