package handlers

//go:generate mockgen -source=exchange_rate.go -destination=exchange_rate_mock.go -package=handlers

import (
	"context"
	"net/http"

	"cloud.google.com/go/civil"
	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/iati-rates/internal/logger"
	"github.com/sbilibin2017/iati-rates/internal/models"
)

// NearestRateFinder looks up the rate closest to a date.
type NearestRateFinder interface {
	NearestRate(ctx context.Context, currency models.Currency, date civil.Date) (models.RatePoint, bool, error)
}

// NewGetNearestRateHandler returns the stored rate closest to the requested date
// @Summary Nearest exchange rate
// @Description Returns the rate of a currency (units per 1 USD) whose date is closest to the requested one. Ties resolve to the earlier date.
// @Tags rates
// @Produce json
// @Param currency path string true "Currency code" example(AFN)
// @Param date query string true "Date (YYYY-MM-DD)" example(1973-12-05)
// @Success 200 {object} models.NearestRateResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /rates/{currency}/nearest [get]
func NewGetNearestRateHandler(finder NearestRateFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		currency, err := models.ParseCurrency(chi.URLParam(r, "currency"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		date, err := civil.ParseDate(r.URL.Query().Get("date"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
			return
		}

		point, ok, err := finder.NearestRate(r.Context(), currency, date)
		if err != nil {
			logger.Log.Errorw("failed to look up nearest rate", "currency", currency, "date", date, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to look up exchange rate")
			return
		}
		if !ok {
			writeError(w, http.StatusNotFound, "exchange rate not found")
			return
		}

		writeJSON(w, http.StatusOK, models.NearestRateResponse{
			Currency:      currency.Code(),
			RequestedDate: date.String(),
			Date:          point.Date.String(),
			Rate:          point.Rate.String(),
		})
	}
}

// RegisterGetNearestRateHandler registers the nearest rate route
func RegisterGetNearestRateHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/rates/{currency}/nearest", h)
}
