package models

import (
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// ConvertRequest represents the query of a conversion request
// swagger:model ConvertRequest
type ConvertRequest struct {
	// Amount in the reported currency
	// required: true
	// example: 512.87
	Amount string `validate:"required,numeric"`

	// Reported currency
	// required: true
	// example: AFN
	Currency string `validate:"required,len=3,alpha"`

	// Value date
	// required: true
	// example: 1973-12-05
	Date string `validate:"required,datetime=2006-01-02"`
}

// Money resolves the request into a Money value.
func (r ConvertRequest) Money() (Money, error) {
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return Money{}, fmt.Errorf("amount %q: %w", r.Amount, err)
	}
	currency, err := ParseCurrency(r.Currency)
	if err != nil {
		return Money{}, err
	}
	date, err := civil.ParseDate(r.Date)
	if err != nil {
		return Money{}, fmt.Errorf("date %q: %w", r.Date, err)
	}
	return Money{Amount: amount, Currency: currency, Date: date}, nil
}

// ConvertResponse represents the USD and EUR equivalents of an amount.
// Unavailable conversions are null.
// swagger:model ConvertResponse
type ConvertResponse struct {
	// Amount in the reported currency
	// example: 512.87
	Amount decimal.Decimal `json:"amount"`

	// Reported currency
	// example: AFN
	Currency string `json:"currency"`

	// Value date
	// example: 1973-12-05
	Date string `json:"date"`

	// Amount in US dollars
	// example: 13.47
	ValueUSD decimal.NullDecimal `json:"value_usd" swaggertype:"string"`

	// Amount in euro
	// example: 12.04
	ValueEUR decimal.NullDecimal `json:"value_eur" swaggertype:"string"`
}
