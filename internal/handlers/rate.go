package handlers

//go:generate mockgen -source=rate.go -destination=rate_mock.go -package=handlers

import (
	"context"
	"net/http"

	"cloud.google.com/go/civil"
	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/iati-rates/internal/logger"
	"github.com/sbilibin2017/iati-rates/internal/models"
)

// LatestRateDateReader reports the most recent date held by the rate store.
type LatestRateDateReader interface {
	LatestDate(ctx context.Context) (civil.Date, error)
}

// NewGetLatestRateDateHandler returns the latest stored rate date
// @Summary Latest rate date
// @Description Returns the most recent date held by the rate store, 1955-01-01 when it is empty
// @Tags rates
// @Produce json
// @Success 200 {object} models.LatestRateDateResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /rates/latest [get]
func NewGetLatestRateDateHandler(reader LatestRateDateReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date, err := reader.LatestDate(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to read latest rate date", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to read latest rate date")
			return
		}

		writeJSON(w, http.StatusOK, models.LatestRateDateResponse{LatestDate: date.String()})
	}
}

// RegisterGetLatestRateDateHandler registers the latest rate date route
func RegisterGetLatestRateDateHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/rates/latest", h)
}
