package handlers

//go:generate mockgen -source=rate_series.go -destination=rate_series_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/iati-rates/internal/logger"
	"github.com/sbilibin2017/iati-rates/internal/models"
)

// RateSeriesReader reads the stored series of one currency.
type RateSeriesReader interface {
	ListByCurrency(ctx context.Context, currency string) ([]models.RatePoint, error)
}

// NewGetRateSeriesHandler returns every stored rate of a currency
// @Summary Exchange rate series
// @Description Returns the stored rates of a currency (units per 1 USD), ascending by date.
// @Tags rates
// @Produce json
// @Param currency path string true "Currency code" example(AFN)
// @Success 200 {object} models.RateSeriesResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /rates/{currency} [get]
func NewGetRateSeriesHandler(reader RateSeriesReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		currency, err := models.ParseCurrency(chi.URLParam(r, "currency"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		points, err := reader.ListByCurrency(r.Context(), currency.Code())
		if err != nil {
			logger.Log.Errorw("failed to list exchange rates", "currency", currency, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to list exchange rates")
			return
		}
		if len(points) == 0 {
			writeError(w, http.StatusNotFound, "exchange rates not found")
			return
		}

		resp := models.RateSeriesResponse{
			Currency: currency.Code(),
			Rates:    make([]models.RateObservation, len(points)),
		}
		for i, p := range points {
			resp.Rates[i] = models.RateObservation{Date: p.Date.String(), Rate: p.Rate.String()}
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// RegisterGetRateSeriesHandler registers the rate series route
func RegisterGetRateSeriesHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/rates/{currency}", h)
}
