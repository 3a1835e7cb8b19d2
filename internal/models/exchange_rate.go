package models

import (
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// ErrInvalidRecord is returned for a feed record that cannot be parsed.
var ErrInvalidRecord = errors.New("invalid exchange rate record")

// EpochDate is the latest date reported by an empty rate store.
var EpochDate = civil.Date{Year: 1955, Month: 1, Day: 1}

// feed column positions
const (
	colDate = iota
	colRate
	colCurrency
	colFrequency
	colSource
	colCountryCode
	colCountry
	recordFields
)

// ExchangeRate is one observation of a currency against the US dollar.
// Rate is expressed in units of Currency per 1 USD.
type ExchangeRate struct {
	Date        civil.Date      `json:"date"`
	Currency    string          `json:"currency"`
	Rate        decimal.Decimal `json:"rate"`
	Frequency   string          `json:"frequency"`
	Source      string          `json:"source"`
	CountryCode string          `json:"country_code"`
	Country     string          `json:"country"`
}

// RatePoint is a single (date, rate) entry of a currency series.
type RatePoint struct {
	Date civil.Date      `json:"date"`
	Rate decimal.Decimal `json:"rate"`
}

// ParseExchangeRate builds an ExchangeRate from a positional feed record:
// date, rate, currency, frequency, source, country code, country.
func ParseExchangeRate(record []string) (ExchangeRate, error) {
	if len(record) < recordFields {
		return ExchangeRate{}, fmt.Errorf("%w: expected %d fields, got %d", ErrInvalidRecord, recordFields, len(record))
	}

	date, err := civil.ParseDate(strings.TrimSpace(record[colDate]))
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("%w: date %q: %v", ErrInvalidRecord, record[colDate], err)
	}

	rate, err := decimal.NewFromString(strings.TrimSpace(record[colRate]))
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("%w: rate %q: %v", ErrInvalidRecord, record[colRate], err)
	}

	currency := strings.ToUpper(strings.TrimSpace(record[colCurrency]))
	if currency == "" {
		return ExchangeRate{}, fmt.Errorf("%w: empty currency", ErrInvalidRecord)
	}

	return ExchangeRate{
		Date:        date,
		Currency:    currency,
		Rate:        rate,
		Frequency:   record[colFrequency],
		Source:      record[colSource],
		CountryCode: record[colCountryCode],
		Country:     record[colCountry],
	}, nil
}
