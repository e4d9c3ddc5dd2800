package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOnPromotionIsDerived(t *testing.T) {
	tests := []struct {
		name    string
		product Product
		want    bool
	}{
		{"discount below original", Product{Price: 270, OriginalPrice: 300, DiscountPrice: 270}, true},
		{"no discount", Product{Price: 300}, false},
		{"discount without original", Product{Price: 270, DiscountPrice: 270}, false},
		{"discount equals original", Product{Price: 300, OriginalPrice: 300, DiscountPrice: 300}, false},
		{"discount above original", Product{Price: 300, OriginalPrice: 250, DiscountPrice: 300}, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.product.OnPromotion(), tt.name)
	}
}

func TestEffectivePrice(t *testing.T) {
	promo := Product{Price: 300, OriginalPrice: 300, DiscountPrice: 270}
	assert.Equal(t, 270.0, promo.EffectivePrice())

	plain := Product{Price: 300}
	assert.Equal(t, 300.0, plain.EffectivePrice())
}

func TestNormalizeAvailability(t *testing.T) {
	p := Product{StockQuantity: 0, IsAvailable: true}
	p.NormalizeAvailability()
	assert.False(t, p.IsAvailable)

	p = Product{StockQuantity: 3, IsAvailable: true}
	p.NormalizeAvailability()
	assert.True(t, p.IsAvailable)

	// Manual "hide while in stock" is respected.
	p = Product{StockQuantity: 3, IsAvailable: false}
	p.NormalizeAvailability()
	assert.False(t, p.IsAvailable)
}
