package services

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/iati-rates/internal/models"
)

func day(s string) civil.Date {
	d, err := civil.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// readFixture returns the records of a CSV file in testdata, header excluded.
func readFixture(t *testing.T, name string) [][]string {
	t.Helper()
	f, err := os.Open("testdata/" + name)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records[1:]
}

func fixtureRates(t *testing.T) []models.ExchangeRate {
	t.Helper()
	var rates []models.ExchangeRate
	for _, record := range readFixture(t, "imf_exchangerates.csv") {
		r, err := models.ParseExchangeRate(record)
		require.NoError(t, err)
		rates = append(rates, r)
	}
	return rates
}

func fixedGeneration(key string) GenerationFunc {
	return func(context.Context) (string, error) { return key, nil }
}

func newFixtureService(t *testing.T) *ConversionService {
	ctrl := gomock.NewController(t)
	lister := NewMockExchangeRateLister(ctrl)
	lister.EXPECT().ListOrdered(gomock.Any()).Return(fixtureRates(t), nil).AnyTimes()
	return NewConversionService(lister, WithGeneration(fixedGeneration("g1")))
}

func assertAmount(t *testing.T, want string, got decimal.NullDecimal) {
	t.Helper()
	require.True(t, got.Valid, "expected a conversion, got unavailable")
	assert.True(t, dec(want).Equal(got.Decimal), "want %s, got %s", want, got.Decimal)
}

func TestConversionService_ConvertToUSD(t *testing.T) {
	svc := newFixtureService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		amount   string
		date     string
		currency string
		want     string
	}{
		{"afghani", "512.87", "1973-12-05", "AFN", "13.47"},
		{"dinar nearest later rate", "11.43", "1990-09-30", "DZD", "1.20"},
		{"kwanza tiny rate", "2.55", "1981-08-15", "AOA", "85232970.12"},
		{"east caribbean dollar", "150.00", "2014-07-29", "XCD", "55.56"},
		{"peso exact date", "72000.00", "2012-01-01", "ARS", "16678.25"},
		{"usd identity", "12.50", "2012-01-01", "USD", "12.50"},
		{"date before first rate", "16.926", "1900-01-01", "AFN", "1"},
		{"date after last rate", "40.1", "2030-01-01", "AFN", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ConvertToUSD(ctx, dec(tt.amount), day(tt.date), models.MustParseCurrency(tt.currency))
			require.NoError(t, err)
			assertAmount(t, tt.want, got)
		})
	}

	t.Run("currency without rates is unavailable", func(t *testing.T) {
		got, err := svc.ConvertToUSD(ctx, dec("32.49"), day("2017-06-01"), models.MustParseCurrency("ZWL"))
		require.NoError(t, err)
		assert.False(t, got.Valid)
	})

	t.Run("unknown code never reaches the engine", func(t *testing.T) {
		_, err := models.ParseCurrency("ZZZ")
		assert.ErrorIs(t, err, models.ErrUnknownCurrency)
	})
}

func TestConversionService_ConvertToEUR(t *testing.T) {
	svc := newFixtureService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		amount   string
		date     string
		currency string
		want     string
	}{
		{"eur identity", "12.50", "2012-01-01", "EUR", "12.50"},
		{"usd uses eur rate only", "100", "2012-01-01", "USD", "77.08"},
		{"cross conversion through usd", "72000.00", "2012-01-01", "ARS", "12855.59"},
		{"cross conversion picks nearest eur rate", "150.00", "2014-07-29", "XCD", "41.49"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ConvertToEUR(ctx, dec(tt.amount), day(tt.date), models.MustParseCurrency(tt.currency))
			require.NoError(t, err)
			assertAmount(t, tt.want, got)
		})
	}

	t.Run("source currency without rates", func(t *testing.T) {
		got, err := svc.ConvertToEUR(ctx, dec("32.49"), day("2017-06-01"), models.MustParseCurrency("ZWL"))
		require.NoError(t, err)
		assert.False(t, got.Valid)
	})
}

func TestConversionService_ConvertToEUR_NoEuroRates(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := NewMockExchangeRateLister(ctrl)
	lister.EXPECT().ListOrdered(gomock.Any()).Return([]models.ExchangeRate{
		{Date: day("2012-01-01"), Currency: "ARS", Rate: dec("4.317")},
	}, nil)
	svc := NewConversionService(lister, WithGeneration(fixedGeneration("g1")))

	for _, c := range []models.Currency{models.USD, models.MustParseCurrency("ARS")} {
		got, err := svc.ConvertToEUR(context.Background(), dec("100"), day("2012-01-01"), c)
		require.NoError(t, err)
		assert.False(t, got.Valid, c.Code())
	}
}

func TestConversionService_ZeroRateIsUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := NewMockExchangeRateLister(ctrl)
	lister.EXPECT().ListOrdered(gomock.Any()).Return([]models.ExchangeRate{
		{Date: day("2012-01-01"), Currency: "ARS", Rate: decimal.Zero},
		{Date: day("2012-01-01"), Currency: "EUR", Rate: dec("0.7708")},
	}, nil)
	svc := NewConversionService(lister, WithGeneration(fixedGeneration("g1")))
	ars := models.MustParseCurrency("ARS")

	usd, err := svc.ConvertToUSD(context.Background(), dec("100"), day("2012-01-01"), ars)
	require.NoError(t, err)
	assert.False(t, usd.Valid)

	eur, err := svc.ConvertToEUR(context.Background(), dec("100"), day("2012-01-01"), ars)
	require.NoError(t, err)
	assert.False(t, eur.Valid)
}

func TestConversionService_NearestRate(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := NewMockExchangeRateLister(ctrl)
	lister.EXPECT().ListOrdered(gomock.Any()).Return([]models.ExchangeRate{
		{Date: day("2012-01-01"), Currency: "XCD", Rate: dec("10")},
		{Date: day("2012-01-10"), Currency: "XCD", Rate: dec("20")},
		{Date: day("2012-01-05"), Currency: "ZAR", Rate: dec("7")},
	}, nil)
	svc := NewConversionService(lister, WithGeneration(fixedGeneration("g1")))
	xcd := models.MustParseCurrency("XCD")

	tests := []struct {
		name     string
		date     string
		wantDate string
		wantRate string
	}{
		{"closer to earlier", "2012-01-03", "2012-01-01", "10"},
		{"closer to later", "2012-01-08", "2012-01-10", "20"},
		{"exact match", "2012-01-10", "2012-01-10", "20"},
		{"before every entry", "2011-01-01", "2012-01-01", "10"},
		{"after every entry", "2013-01-01", "2012-01-10", "20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok, err := svc.NearestRate(context.Background(), xcd, day(tt.date))
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, day(tt.wantDate), p.Date)
			assert.True(t, dec(tt.wantRate).Equal(p.Rate))
		})
	}

	t.Run("single entry series", func(t *testing.T) {
		p, ok, err := svc.NearestRate(context.Background(), models.MustParseCurrency("ZAR"), day("1999-01-01"))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, day("2012-01-05"), p.Date)
	})

	t.Run("no rows for currency", func(t *testing.T) {
		_, ok, err := svc.NearestRate(context.Background(), models.EUR, day("2012-01-03"))
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestConversionService_NearestRateTieBreaksToEarlier(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := NewMockExchangeRateLister(ctrl)
	lister.EXPECT().ListOrdered(gomock.Any()).Return([]models.ExchangeRate{
		{Date: day("2012-01-01"), Currency: "XCD", Rate: dec("10")},
		{Date: day("2012-01-11"), Currency: "XCD", Rate: dec("20")},
	}, nil)
	svc := NewConversionService(lister, WithGeneration(fixedGeneration("g1")))

	p, ok, err := svc.NearestRate(context.Background(), models.MustParseCurrency("XCD"), day("2012-01-06"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, day("2012-01-01"), p.Date)
}

func TestConversionService_UnsortedRunIsSorted(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := NewMockExchangeRateLister(ctrl)
	lister.EXPECT().ListOrdered(gomock.Any()).Return([]models.ExchangeRate{
		{Date: day("2012-01-10"), Currency: "XCD", Rate: dec("20")},
		{Date: day("2012-01-01"), Currency: "XCD", Rate: dec("10")},
	}, nil)
	svc := NewConversionService(lister, WithGeneration(fixedGeneration("g1")))

	p, ok, err := svc.NearestRate(context.Background(), models.MustParseCurrency("XCD"), day("2012-01-02"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, day("2012-01-01"), p.Date)
}

func TestConversionService_EmptyStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := NewMockExchangeRateLister(ctrl)
	lister.EXPECT().ListOrdered(gomock.Any()).Return(nil, nil)
	svc := NewConversionService(lister, WithGeneration(fixedGeneration("g1")))
	ctx := context.Background()

	usd, err := svc.ConvertToUSD(ctx, dec("10"), day("2012-01-01"), models.MustParseCurrency("AFN"))
	require.NoError(t, err)
	assert.False(t, usd.Valid)

	eur, err := svc.ConvertToEUR(ctx, dec("10"), day("2012-01-01"), models.USD)
	require.NoError(t, err)
	assert.False(t, eur.Valid)
}

func TestConversionService_IdentityNeedsNoRates(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := NewMockExchangeRateLister(ctrl)
	svc := NewConversionService(lister, WithGeneration(fixedGeneration("g1")))
	ctx := context.Background()

	for _, amount := range []string{"0", "12.50", "-3.333", "1000000.129"} {
		usd, err := svc.ConvertToUSD(ctx, dec(amount), day("1960-01-01"), models.USD)
		require.NoError(t, err)
		assertAmount(t, amount, usd)

		eur, err := svc.ConvertToEUR(ctx, dec(amount), day("2030-01-01"), models.EUR)
		require.NoError(t, err)
		assertAmount(t, amount, eur)
	}
}

func TestConversionService_Convert(t *testing.T) {
	svc := newFixtureService(t)

	got, err := svc.Convert(context.Background(), models.Money{
		Amount:   dec("72000.00"),
		Currency: models.MustParseCurrency("ARS"),
		Date:     day("2012-01-01"),
	})
	require.NoError(t, err)
	assertAmount(t, "16678.25", got.USD)
	assertAmount(t, "12855.59", got.EUR)
	assert.Equal(t, "ARS", got.Currency.Code())
}

func TestConversionService_BuildFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := NewMockExchangeRateLister(ctrl)
	gomock.InOrder(
		lister.EXPECT().ListOrdered(gomock.Any()).Return(nil, errors.New("connection refused")),
		lister.EXPECT().ListOrdered(gomock.Any()).Return(fixtureRates(t), nil),
	)
	svc := NewConversionService(lister, WithGeneration(fixedGeneration("g1")))
	afn := models.MustParseCurrency("AFN")

	_, err := svc.ConvertToUSD(context.Background(), dec("512.87"), day("1973-12-05"), afn)
	assert.ErrorContains(t, err, "connection refused")

	got, err := svc.ConvertToUSD(context.Background(), dec("512.87"), day("1973-12-05"), afn)
	require.NoError(t, err)
	assertAmount(t, "13.47", got)
}

func TestConversionService_GenerationFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := NewMockExchangeRateLister(ctrl)
	svc := NewConversionService(lister, WithGeneration(func(context.Context) (string, error) {
		return "", errors.New("redis down")
	}))

	err := svc.Warm(context.Background())
	assert.ErrorContains(t, err, "redis down")
}

func TestConversionService_CacheLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := NewMockExchangeRateLister(ctrl)
	ctx := context.Background()
	afn := models.MustParseCurrency("AFN")

	before := []models.ExchangeRate{{Date: day("1973-12-01"), Currency: "AFN", Rate: dec("38.075")}}
	after := []models.ExchangeRate{
		{Date: day("1973-12-01"), Currency: "AFN", Rate: dec("38.075")},
		{Date: day("1973-12-05"), Currency: "AFN", Rate: dec("50")},
	}

	key := "2024-01-01"
	svc := NewConversionService(lister, WithGeneration(func(context.Context) (string, error) {
		return key, nil
	}))

	t.Run("built once and reused", func(t *testing.T) {
		lister.EXPECT().ListOrdered(gomock.Any()).Return(before, nil).Times(1)
		for i := 0; i < 5; i++ {
			got, err := svc.ConvertToUSD(ctx, dec("512.87"), day("1973-12-05"), afn)
			require.NoError(t, err)
			assertAmount(t, "13.47", got)
		}
	})

	t.Run("rebuilds after invalidation", func(t *testing.T) {
		lister.EXPECT().ListOrdered(gomock.Any()).Return(after, nil).Times(1)
		svc.Invalidate()

		got, err := svc.ConvertToUSD(ctx, dec("100"), day("1973-12-05"), afn)
		require.NoError(t, err)
		assertAmount(t, "2", got)
	})

	t.Run("rebuilds when the generation key changes", func(t *testing.T) {
		lister.EXPECT().ListOrdered(gomock.Any()).Return(after, nil).Times(1)
		key = "2024-01-02"

		require.NoError(t, svc.Warm(ctx))
		require.NoError(t, svc.Warm(ctx))
	})

	t.Run("rebuild without import yields identical lookups", func(t *testing.T) {
		lister.EXPECT().ListOrdered(gomock.Any()).Return(after, nil).Times(1)
		probes := []string{"1900-01-01", "1973-12-02", "1973-12-03", "1973-12-04", "2020-01-01"}

		var first []decimal.NullDecimal
		for _, p := range probes {
			got, err := svc.ConvertToUSD(ctx, dec("100"), day(p), afn)
			require.NoError(t, err)
			first = append(first, got)
		}

		svc.Invalidate()
		for i, p := range probes {
			got, err := svc.ConvertToUSD(ctx, dec("100"), day(p), afn)
			require.NoError(t, err)
			assert.Equal(t, first[i].Valid, got.Valid)
			assert.True(t, first[i].Decimal.Equal(got.Decimal), p)
		}
	})
}

func TestConversionService_ConcurrentCallersShareOneBuild(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := NewMockExchangeRateLister(ctrl)
	rates := fixtureRates(t)
	lister.EXPECT().ListOrdered(gomock.Any()).DoAndReturn(func(context.Context) ([]models.ExchangeRate, error) {
		time.Sleep(20 * time.Millisecond)
		return rates, nil
	}).Times(1)

	svc := NewConversionService(lister, WithGeneration(fixedGeneration("g1")))
	afn := models.MustParseCurrency("AFN")

	var wg sync.WaitGroup
	results := make([]decimal.NullDecimal, 32)
	errs := make([]error, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = svc.ConvertToUSD(context.Background(), dec("512.87"), day("1973-12-05"), afn)
		}(i)
	}
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		assertAmount(t, "13.47", results[i])
	}
}
