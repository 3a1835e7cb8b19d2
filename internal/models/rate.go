package models

// LatestRateDateResponse reports the most recent date held by the rate store
// swagger:model LatestRateDateResponse
type LatestRateDateResponse struct {
	// Latest stored date, 1955-01-01 when the store is empty
	// example: 2024-03-01
	LatestDate string `json:"latest_date"`
}

// NearestRateResponse represents the rate closest to a requested date
// swagger:model NearestRateResponse
type NearestRateResponse struct {
	// Currency code
	// example: AFN
	Currency string `json:"currency"`

	// Date asked for
	// example: 1973-12-05
	RequestedDate string `json:"requested_date"`

	// Date of the matched observation
	// example: 1973-12-01
	Date string `json:"date"`

	// Units of currency per 1 USD
	// example: 38.075
	Rate string `json:"rate"`
}

// ImportRatesResponse represents the outcome of a rate import
// swagger:model ImportRatesResponse
type ImportRatesResponse struct {
	// Number of rows appended to the store
	// example: 4999
	Added int `json:"added"`
}

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: exchange rate not found
	Error string `json:"error"`
}

// RateObservation is one dated rate of a series
// swagger:model RateObservation
type RateObservation struct {
	// example: 1973-12-01
	Date string `json:"date"`

	// Units of currency per 1 USD
	// example: 38.075
	Rate string `json:"rate"`
}

// RateSeriesResponse lists every stored rate of a currency, oldest first
// swagger:model RateSeriesResponse
type RateSeriesResponse struct {
	// Currency code
	// example: AFN
	Currency string `json:"currency"`

	Rates []RateObservation `json:"rates"`
}
