package entry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFractionDigits(t *testing.T) {
	assert.Equal(t, "€1234.50", EUR.Format(1234.5))
	assert.Equal(t, "$0.00", USD.Format(0))
	// JPY renders without fraction digits
	assert.Equal(t, "¥1235", JPY.Format(1234.6))
}

func TestFormatNegative(t *testing.T) {
	assert.Equal(t, "€-250.00", EUR.Format(-250))
}

func TestValid(t *testing.T) {
	for _, c := range AllCurrencies() {
		assert.True(t, c.Valid(), "expected %s to be valid", c)
	}
	assert.False(t, Currency("BTC").Valid())
}

func TestSymbolAndName(t *testing.T) {
	assert.Equal(t, "C$", CAD.Symbol())
	assert.Equal(t, "Swiss Franc", CHF.Name())
	// unknown codes fall back to the code itself
	assert.Equal(t, "XXX", Currency("XXX").Symbol())
}

func TestCatalogComplete(t *testing.T) {
	assert.Len(t, Currencies, 7)
	for _, c := range AllCurrencies() {
		info := Currencies[c]
		assert.NotEmpty(t, info.Symbol)
		assert.NotEmpty(t, info.Name)
	}
}
