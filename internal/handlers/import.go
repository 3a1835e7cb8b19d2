package handlers

//go:generate mockgen -source=import.go -destination=import_mock.go -package=handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/iati-rates/internal/facades"
	"github.com/sbilibin2017/iati-rates/internal/logger"
	"github.com/sbilibin2017/iati-rates/internal/models"
	"github.com/sbilibin2017/iati-rates/internal/services"
)

// MaxImportBodyBytes bounds an uploaded rates CSV.
const MaxImportBodyBytes = 64 << 20

// RatesImporter appends rate records to the store.
type RatesImporter interface {
	Import(ctx context.Context, records [][]string) (int, error)
	ImportFromFeed(ctx context.Context) (int, error)
}

// NewImportRatesHandler imports exchange rates
// @Summary Import exchange rates
// @Description Appends rates dated after the latest stored date. The body is the IMF rates CSV with its header row; an empty body downloads the configured feed instead.
// @Tags rates
// @Accept text/csv
// @Produce json
// @Param body body string false "Rates CSV"
// @Success 200 {object} models.ImportRatesResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 413 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /rates/import [post]
// @Security BearerAuth
func NewImportRatesHandler(importer RatesImporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxImportBodyBytes))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
			writeError(w, http.StatusBadRequest, "failed to read request body")
			return
		}

		var added int
		if len(bytes.TrimSpace(body)) == 0 {
			added, err = importer.ImportFromFeed(r.Context())
		} else {
			var records [][]string
			records, err = facades.ReadRatesCSV(bytes.NewReader(body))
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			added, err = importer.Import(r.Context(), records)
		}

		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, models.ImportRatesResponse{Added: added})
		case errors.Is(err, models.ErrInvalidRecord):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrNoRatesFeed):
			writeError(w, http.StatusServiceUnavailable, err.Error())
		case errors.Is(err, facades.ErrFeedUnavailable):
			writeError(w, http.StatusBadGateway, "rates feed unavailable")
		default:
			logger.Log.Errorw("failed to import exchange rates", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to import exchange rates")
		}
	}
}

// RegisterImportRatesHandler registers the import route
func RegisterImportRatesHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/rates/import", h)
}
