package entry

import (
	"github.com/shopspring/decimal"
)

// Currency is an ISO 4217 code from the supported set.
type Currency string

const (
	EUR Currency = "EUR"
	USD Currency = "USD"
	GBP Currency = "GBP"
	JPY Currency = "JPY"
	CAD Currency = "CAD"
	AUD Currency = "AUD"
	CHF Currency = "CHF"
)

// DefaultCurrency is the session currency before the user picks one.
const DefaultCurrency = EUR

// CurrencyInfo carries the display metadata for one currency.
type CurrencyInfo struct {
	Symbol         string
	Name           string
	FractionDigits int
}

// Currencies maps each supported code to its display metadata. Adding a
// currency means adding a row here; no formatting site needs to change.
var Currencies = map[Currency]CurrencyInfo{
	EUR: {Symbol: "€", Name: "Euro", FractionDigits: 2},
	USD: {Symbol: "$", Name: "US Dollar", FractionDigits: 2},
	GBP: {Symbol: "£", Name: "British Pound", FractionDigits: 2},
	JPY: {Symbol: "¥", Name: "Japanese Yen", FractionDigits: 0},
	CAD: {Symbol: "C$", Name: "Canadian Dollar", FractionDigits: 2},
	AUD: {Symbol: "A$", Name: "Australian Dollar", FractionDigits: 2},
	CHF: {Symbol: "CHF", Name: "Swiss Franc", FractionDigits: 2},
}

// AllCurrencies lists the supported codes in a stable display order.
func AllCurrencies() []Currency {
	return []Currency{EUR, USD, GBP, JPY, CAD, AUD, CHF}
}

// Valid reports whether c is one of the supported codes.
func (c Currency) Valid() bool {
	_, ok := Currencies[c]
	return ok
}

// Symbol returns the display symbol, or the code itself for an unknown
// currency.
func (c Currency) Symbol() string {
	if info, ok := Currencies[c]; ok {
		return info.Symbol
	}
	return string(c)
}

// Name returns the full display name.
func (c Currency) Name() string {
	if info, ok := Currencies[c]; ok {
		return info.Name
	}
	return string(c)
}

// Format renders amount with the currency symbol and the currency's
// fraction-digit policy (0 for JPY, 2 otherwise).
func (c Currency) Format(amount float64) string {
	digits := 2
	if info, ok := Currencies[c]; ok {
		digits = info.FractionDigits
	}
	return c.Symbol() + decimal.NewFromFloat(amount).StringFixed(int32(digits))
}
