package models

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Money is an amount reported in a currency on a value date, as carried by
// transactions and budgets.
type Money struct {
	Amount   decimal.Decimal
	Currency Currency
	Date     civil.Date
}

// ConvertedMoney holds the USD and EUR equivalents of a Money value.
// An invalid NullDecimal means the conversion is unavailable.
type ConvertedMoney struct {
	Money
	USD decimal.NullDecimal
	EUR decimal.NullDecimal
}
