package services

import (
	"github.com/shopspring/decimal"
)

// ExchangeRateTable is an in-memory ExchangeRateResolver over a snapshot of
// rates relative to a base currency. Rates are "units of currency per unit of
// base"; converted amounts are floored to whole minor units so running totals
// stay lower bounds.
type ExchangeRateTable struct {
	baseCurrency string
	rates        map[string]decimal.Decimal
}

// NewExchangeRateTable creates a table with the base currency at rate 1.
func NewExchangeRateTable(baseCurrency string) *ExchangeRateTable {
	return &ExchangeRateTable{
		baseCurrency: baseCurrency,
		rates: map[string]decimal.Decimal{
			baseCurrency: decimal.NewFromInt(1),
		},
	}
}

// BaseCurrency returns the currency the rates are expressed against.
func (t *ExchangeRateTable) BaseCurrency() string {
	return t.baseCurrency
}

// SetRate sets the rate for a currency relative to the base currency.
// Non-positive rates are ignored.
func (t *ExchangeRateTable) SetRate(currency string, rate decimal.Decimal) {
	if rate.LessThanOrEqual(decimal.Zero) {
		return
	}
	t.rates[currency] = rate
}

// Convert converts a minor-unit amount between currencies through the base
// currency. ok is false when either side has no known rate.
func (t *ExchangeRateTable) Convert(amount int64, fromCurrency, toCurrency string) (int64, bool) {
	if fromCurrency == toCurrency {
		return amount, true
	}

	fromRate, fromKnown := t.rates[fromCurrency]
	toRate, toKnown := t.rates[toCurrency]

	if !fromKnown || !toKnown || fromRate.LessThanOrEqual(decimal.Zero) {
		return 0, false
	}

	converted := decimal.NewFromInt(amount).Mul(toRate).Div(fromRate)

	return converted.Floor().IntPart(), true
}
