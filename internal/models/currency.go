package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCurrency is returned when a code is not part of the currency codelist.
var ErrUnknownCurrency = errors.New("unknown currency")

// Currency is a validated currency code. The zero value is not a valid currency;
// values come from ParseCurrency or the package level constants.
type Currency struct {
	code string
}

var (
	USD = Currency{code: "USD"}
	EUR = Currency{code: "EUR"}
)

// ParseCurrency resolves a code against the currency codelist.
func ParseCurrency(s string) (Currency, error) {
	code := strings.ToUpper(strings.TrimSpace(s))
	if _, ok := codelist[code]; !ok {
		return Currency{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, s)
	}
	return Currency{code: code}, nil
}

// MustParseCurrency is like ParseCurrency but panics on unknown codes.
func MustParseCurrency(s string) Currency {
	c, err := ParseCurrency(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Code returns the three letter code, or "" for the zero value.
func (c Currency) Code() string { return c.code }

func (c Currency) String() string { return c.code }

// IsZero reports whether c was never resolved.
func (c Currency) IsZero() bool { return c.code == "" }

// MarshalText implements encoding.TextMarshaler.
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.code), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Currency) UnmarshalText(text []byte) error {
	parsed, err := ParseCurrency(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// codelist holds the IATI Currency codelist (ISO 4217 plus withdrawn codes
// that still appear in historical reporting).
var codelist = map[string]struct{}{
	"AED": {}, "AFN": {}, "ALL": {}, "AMD": {}, "ANG": {}, "AOA": {}, "ARS": {}, "AUD": {},
	"AWG": {}, "AZN": {}, "BAM": {}, "BBD": {}, "BDT": {}, "BGN": {}, "BHD": {}, "BIF": {},
	"BMD": {}, "BND": {}, "BOB": {}, "BOV": {}, "BRL": {}, "BSD": {}, "BTN": {}, "BWP": {},
	"BYN": {}, "BYR": {}, "BZD": {}, "CAD": {}, "CDF": {}, "CHE": {}, "CHF": {}, "CHW": {},
	"CLF": {}, "CLP": {}, "CNY": {}, "COP": {}, "COU": {}, "CRC": {}, "CUC": {}, "CUP": {},
	"CVE": {}, "CZK": {}, "DJF": {}, "DKK": {}, "DOP": {}, "DZD": {}, "EEK": {}, "EGP": {},
	"ERN": {}, "ETB": {}, "EUR": {}, "FJD": {}, "FKP": {}, "GBP": {}, "GEL": {}, "GHS": {},
	"GIP": {}, "GMD": {}, "GNF": {}, "GTQ": {}, "GYD": {}, "HKD": {}, "HNL": {}, "HRK": {},
	"HTG": {}, "HUF": {}, "IDR": {}, "ILS": {}, "INR": {}, "IQD": {}, "IRR": {}, "ISK": {},
	"JMD": {}, "JOD": {}, "JPY": {}, "KES": {}, "KGS": {}, "KHR": {}, "KMF": {}, "KPW": {},
	"KRW": {}, "KWD": {}, "KYD": {}, "KZT": {}, "LAK": {}, "LBP": {}, "LKR": {}, "LRD": {},
	"LSL": {}, "LTL": {}, "LVL": {}, "LYD": {}, "MAD": {}, "MDL": {}, "MGA": {}, "MKD": {},
	"MMK": {}, "MNT": {}, "MOP": {}, "MRO": {}, "MRU": {}, "MUR": {}, "MVR": {}, "MWK": {},
	"MXN": {}, "MXV": {}, "MYR": {}, "MZN": {}, "NAD": {}, "NGN": {}, "NIO": {}, "NOK": {},
	"NPR": {}, "NZD": {}, "OMR": {}, "PAB": {}, "PEN": {}, "PGK": {}, "PHP": {}, "PKR": {},
	"PLN": {}, "PYG": {}, "QAR": {}, "RON": {}, "RSD": {}, "RUB": {}, "RWF": {}, "SAR": {},
	"SBD": {}, "SCR": {}, "SDG": {}, "SEK": {}, "SGD": {}, "SHP": {}, "SLE": {}, "SLL": {},
	"SOS": {}, "SRD": {}, "SSP": {}, "STD": {}, "STN": {}, "SVC": {}, "SYP": {}, "SZL": {},
	"THB": {}, "TJS": {}, "TMT": {}, "TND": {}, "TOP": {}, "TRY": {}, "TTD": {}, "TWD": {},
	"TZS": {}, "UAH": {}, "UGX": {}, "USD": {}, "USN": {}, "UYI": {}, "UYU": {}, "UYW": {},
	"UZS": {}, "VED": {}, "VEF": {}, "VES": {}, "VND": {}, "VUV": {}, "WST": {}, "XAF": {},
	"XAG": {}, "XAU": {}, "XBA": {}, "XBB": {}, "XBC": {}, "XBD": {}, "XCD": {}, "XDR": {},
	"XOF": {}, "XPD": {}, "XPF": {}, "XPT": {}, "XSU": {}, "XUA": {}, "YER": {}, "ZAR": {},
	"ZMK": {}, "ZMW": {}, "ZWL": {},
}
