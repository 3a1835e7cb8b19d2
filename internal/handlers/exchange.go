package handlers

//go:generate mockgen -source=exchange.go -destination=exchange_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/sbilibin2017/iati-rates/internal/logger"
	"github.com/sbilibin2017/iati-rates/internal/models"
)

// Converter converts a reported amount into USD and EUR.
type Converter interface {
	Convert(ctx context.Context, money models.Money) (models.ConvertedMoney, error)
}

// NewConvertHandler converts an amount reported in any currency into USD and EUR
// @Summary Convert an amount
// @Description Converts an amount reported in a currency on a value date into US dollars and euro using the nearest stored rates. Unavailable conversions are null.
// @Tags conversion
// @Produce json
// @Param amount query string true "Amount" example(512.87)
// @Param currency query string true "Currency code" example(AFN)
// @Param date query string true "Value date (YYYY-MM-DD)" example(1973-12-05)
// @Success 200 {object} models.ConvertResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /convert [get]
func NewConvertHandler(svc Converter, validate *validator.Validate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		req := models.ConvertRequest{
			Amount:   q.Get("amount"),
			Currency: q.Get("currency"),
			Date:     q.Get("date"),
		}

		if err := validate.Struct(req); err != nil {
			writeError(w, http.StatusBadRequest, validationMessage(err))
			return
		}

		money, err := req.Money()
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		converted, err := svc.Convert(r.Context(), money)
		if err != nil {
			logger.Log.Errorw("failed to convert amount", "currency", money.Currency, "date", money.Date, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to convert amount")
			return
		}

		writeJSON(w, http.StatusOK, models.ConvertResponse{
			Amount:   converted.Amount,
			Currency: converted.Currency.Code(),
			Date:     converted.Date.String(),
			ValueUSD: converted.USD,
			ValueEUR: converted.EUR,
		})
	}
}

// RegisterConvertHandler registers the conversion route
func RegisterConvertHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/convert", h)
}

func validationMessage(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err.Error()
	}
	fields := make([]string, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, strings.ToLower(fe.Field())+" is invalid ("+fe.Tag()+")")
	}
	return strings.Join(fields, "; ")
}
