package models

import "github.com/shopspring/decimal"

// Money is an amount in major units together with its ISO 4217 currency code,
// in the shape PayPal expects on the wire.
type Money struct {
	CurrencyCode string          `json:"currency_code"`
	Value        decimal.Decimal `json:"value"`
}

// MajorUnits converts an amount held in minor units (pence, grosze, cents)
// into major units. 10000 becomes 100 and 10050 becomes 100.5.
func MajorUnits(minor int64) decimal.Decimal {
	return decimal.New(minor, -2)
}

// NewMoney builds a Money value from an amount in minor units
func NewMoney(minor int64, currencyCode string) Money {
	return Money{
		CurrencyCode: currencyCode,
		Value:        MajorUnits(minor),
	}
}
