package cart

import (
	"math"
	"strconv"
	"strings"
)

// Checkout pricing policy. Values are in rupees; delivery is free above the
// threshold, otherwise a flat fee applies.
const (
	FreeDeliveryThreshold = 2500.0
	FlatDeliveryFee       = 499.0
	TaxRate               = 0.08 // 8% GST
)

// DeliveryFee is free for subtotals strictly above the threshold.
func DeliveryFee(subtotal float64) float64 {
	if subtotal > FreeDeliveryThreshold {
		return 0
	}
	return FlatDeliveryFee
}

// Tax is rounded to the nearest whole unit.
func Tax(subtotal float64) float64 {
	return math.Round(subtotal * TaxRate)
}

func GrandTotal(subtotal float64) float64 {
	return subtotal + DeliveryFee(subtotal) + Tax(subtotal)
}

// ParsePrice coerces a string-formatted price into a usable number. Invalid
// or negative input yields 0 rather than an error; upstream payloads send
// prices both as numbers and as strings.
func ParsePrice(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return NormalizePrice(v)
}

// NormalizePrice clamps non-finite and negative prices to 0.
func NormalizePrice(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
