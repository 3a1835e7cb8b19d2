package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/iati-rates/internal/handlers"
	"github.com/sbilibin2017/iati-rates/internal/models"
)

var (
	_ handlers.Converter            = (*handlers.MockConverter)(nil)
	_ handlers.NearestRateFinder    = (*handlers.MockNearestRateFinder)(nil)
	_ handlers.LatestRateDateReader = (*handlers.MockLatestRateDateReader)(nil)
	_ handlers.RatesImporter        = (*handlers.MockRatesImporter)(nil)
	_ handlers.RateSeriesReader     = (*handlers.MockRateSeriesReader)(nil)
)

func TestConvertHandler(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockConverter := handlers.NewMockConverter(ctrl)
	handler := handlers.NewConvertHandler(mockConverter, validator.New())

	money := models.Money{
		Amount:   decimal.RequireFromString("72000.00"),
		Currency: models.MustParseCurrency("ARS"),
		Date:     civil.Date{Year: 2012, Month: 1, Day: 1},
	}

	tests := []struct {
		name      string
		query     string
		mockSetup func()
		wantCode  int
		wantBody  string
	}{
		{
			name:  "both_available",
			query: "amount=72000.00&currency=ars&date=2012-01-01",
			mockSetup: func() {
				mockConverter.EXPECT().
					Convert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ interface{}, m models.Money) (models.ConvertedMoney, error) {
						assert.True(t, money.Amount.Equal(m.Amount))
						assert.Equal(t, money.Currency, m.Currency)
						assert.Equal(t, money.Date, m.Date)
						return models.ConvertedMoney{
							Money: m,
							USD:   decimal.NewNullDecimal(decimal.RequireFromString("16678.25")),
							EUR:   decimal.NewNullDecimal(decimal.RequireFromString("12855.59")),
						}, nil
					})
			},
			wantCode: http.StatusOK,
			wantBody: `{"amount":"72000","currency":"ARS","date":"2012-01-01","value_usd":"16678.25","value_eur":"12855.59"}`,
		},
		{
			name:  "unavailable_is_null",
			query: "amount=32.49&currency=ZWL&date=2017-06-01",
			mockSetup: func() {
				mockConverter.EXPECT().
					Convert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ interface{}, m models.Money) (models.ConvertedMoney, error) {
						return models.ConvertedMoney{Money: m}, nil
					})
			},
			wantCode: http.StatusOK,
			wantBody: `{"amount":"32.49","currency":"ZWL","date":"2017-06-01","value_usd":null,"value_eur":null}`,
		},
		{
			name:      "missing_amount",
			query:     "currency=ARS&date=2012-01-01",
			mockSetup: func() {},
			wantCode:  http.StatusBadRequest,
			wantBody:  `{"error":"amount is invalid (required)"}`,
		},
		{
			name:      "bad_date_format",
			query:     "amount=1&currency=ARS&date=2012/01/01",
			mockSetup: func() {},
			wantCode:  http.StatusBadRequest,
			wantBody:  `{"error":"date is invalid (datetime)"}`,
		},
		{
			name:      "unknown_currency",
			query:     "amount=1&currency=ZZZ&date=2012-01-01",
			mockSetup: func() {},
			wantCode:  http.StatusBadRequest,
			wantBody:  `{"error":"unknown currency: \"ZZZ\""}`,
		},
		{
			name:  "engine_error",
			query: "amount=1&currency=ARS&date=2012-01-01",
			mockSetup: func() {
				mockConverter.EXPECT().
					Convert(gomock.Any(), gomock.Any()).
					Return(models.ConvertedMoney{}, errors.New("load exchange rates: timeout"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"failed to convert amount"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/convert?"+tt.query, nil)
			w := httptest.NewRecorder()

			handler(w, req)

			res := w.Result()
			defer res.Body.Close()

			require.Equal(t, tt.wantCode, res.StatusCode)

			var body json.RawMessage
			require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
			require.JSONEq(t, tt.wantBody, string(body))
		})
	}
}
