package cart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeliveryFeeBoundary(t *testing.T) {
	// Threshold is strictly greater-than.
	assert.Equal(t, 499.0, DeliveryFee(2500))
	assert.Equal(t, 0.0, DeliveryFee(2500.01))
	assert.Equal(t, 499.0, DeliveryFee(0))
	assert.Equal(t, 0.0, DeliveryFee(10000))
}

func TestTaxRoundsToNearestUnit(t *testing.T) {
	assert.Equal(t, 96.0, Tax(1197))  // 95.76 rounds up
	assert.Equal(t, 40.0, Tax(500))   // exact
	assert.Equal(t, 20.0, Tax(249.9)) // 19.992 rounds up
	assert.Equal(t, 0.0, Tax(0))
}

func TestGrandTotal(t *testing.T) {
	subtotal := 1197.0
	assert.Equal(t, subtotal+499+96, GrandTotal(subtotal))

	above := 3000.0
	assert.Equal(t, above+0+240, GrandTotal(above))
}

func TestParsePrice(t *testing.T) {
	assert.Equal(t, 250.0, ParsePrice("250"))
	assert.Equal(t, 399.5, ParsePrice(" 399.50 "))
	assert.Equal(t, 0.0, ParsePrice("abc"))
	assert.Equal(t, 0.0, ParsePrice(""))
	assert.Equal(t, 0.0, ParsePrice("-10"))
}

func TestNormalizePrice(t *testing.T) {
	assert.Equal(t, 120.0, NormalizePrice(120))
	assert.Equal(t, 0.0, NormalizePrice(-1))
	assert.Equal(t, 0.0, NormalizePrice(math.NaN()))
	assert.Equal(t, 0.0, NormalizePrice(math.Inf(1)))
}
