package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShippingMethodNoneIsNotFree(t *testing.T) {
	// "Nothing chosen" and "free shipping" both cost 0 but are different values.
	assert.False(t, ShippingNone.Valid())
	assert.True(t, ShippingFree.Valid())
	assert.Equal(t, 0, ShippingNone.Cost())
	assert.Equal(t, 0, ShippingFree.Cost())
	assert.Equal(t, "", ShippingNone.Label())
	assert.Equal(t, "FREE SHIPPING", ShippingFree.Label())
}

func TestShippingMethodCosts(t *testing.T) {
	assert.Equal(t, 10000, ShippingRegular.Cost())
	assert.Equal(t, 20000, ShippingExpress.Cost())
	assert.Equal(t, "JNE REG", ShippingRegular.Label())
	assert.Equal(t, "JNE EXPRESS", ShippingExpress.Label())
}

func TestCheckoutStateTerminality(t *testing.T) {
	assert.False(t, CheckoutEditing.IsTerminal())
	assert.False(t, CheckoutSubmitting.IsTerminal())
	assert.True(t, CheckoutSucceeded.IsTerminal())
	assert.True(t, CheckoutFailed.IsTerminal())
}

func TestUpstreamCartLinesNormalization(t *testing.T) {
	cart := &UpstreamCart{
		Items: []UpstreamCartItem{
			{
				ID: 1, ProductID: 100, Qty: 2, PriceSnapshot: 5000,
				Product: UpstreamProduct{Title: "Mug", Images: []string{"/img/mug.png"}, Shop: UpstreamShop{ID: 10, Name: "Alpha"}},
			},
			{ID: 2, ProductID: 101, Qty: 0, PriceSnapshot: 3000},
			{
				ID: 3, ProductID: 102, Qty: 1, PriceSnapshot: 2000,
				Product: UpstreamProduct{Title: "Coaster", Images: []string{""}, Shop: UpstreamShop{ID: 10, Name: "Alpha"}},
			},
		},
	}

	lines := cart.Lines()

	assert.Len(t, lines, 2)
	assert.Equal(t, "/img/mug.png", lines[0].ImageURL)
	assert.Equal(t, PlaceholderImage, lines[1].ImageURL)
	assert.Equal(t, 10000, lines[0].Subtotal())
}

func TestUpstreamCartLinesNil(t *testing.T) {
	var cart *UpstreamCart
	lines := cart.Lines()
	assert.NotNil(t, lines)
	assert.Empty(t, lines)
}
