package services

//go:generate mockgen -source=conversion.go -destination=conversion_mock.go -package=services

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync/atomic"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"

	"github.com/sbilibin2017/iati-rates/internal/logger"
	"github.com/sbilibin2017/iati-rates/internal/models"
)

// ExchangeRateLister loads the whole rate store ordered by currency, then date.
type ExchangeRateLister interface {
	ListOrdered(ctx context.Context) ([]models.ExchangeRate, error)
}

// rateTable is an immutable snapshot of the rate store, one ascending series
// per currency code.
type rateTable struct {
	generation string
	epoch      uint64
	series     map[string][]models.RatePoint
	rows       int
}

// nearest returns the entry closest in days to date. Equidistant entries
// resolve to the earlier one.
func (t *rateTable) nearest(currency string, date civil.Date) (models.RatePoint, bool) {
	points := t.series[currency]
	if len(points) == 0 {
		return models.RatePoint{}, false
	}

	i := sort.Search(len(points), func(i int) bool {
		return !points[i].Date.Before(date)
	})
	switch i {
	case 0:
		return points[0], true
	case len(points):
		return points[len(points)-1], true
	}

	before, after := points[i-1], points[i]
	if date.DaysSince(before.Date) <= after.Date.DaysSince(date) {
		return before, true
	}
	return after, true
}

// usableRate returns the nearest rate if it can be divided by.
func (t *rateTable) usableRate(currency models.Currency, date civil.Date) (decimal.Decimal, bool) {
	p, ok := t.nearest(currency.Code(), date)
	if !ok || p.Rate.Sign() <= 0 {
		return decimal.Decimal{}, false
	}
	return p.Rate, true
}

func (t *rateTable) toUSD(amount decimal.Decimal, date civil.Date, currency models.Currency) decimal.NullDecimal {
	if currency == models.USD {
		return available(amount)
	}
	rate, ok := t.usableRate(currency, date)
	if !ok {
		return unavailable
	}
	return available(amount.Div(rate).Round(2))
}

func (t *rateTable) toEUR(amount decimal.Decimal, date civil.Date, currency models.Currency) decimal.NullDecimal {
	if currency == models.EUR {
		return available(amount)
	}
	eurRate, ok := t.usableRate(models.EUR, date)
	if !ok {
		return unavailable
	}
	if currency == models.USD {
		return available(eurRate.Mul(amount).Round(2))
	}
	srcRate, ok := t.usableRate(currency, date)
	if !ok {
		return unavailable
	}
	return available(eurRate.Mul(amount).Div(srcRate).Round(2))
}

var unavailable = decimal.NullDecimal{}

func available(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// ConversionService answers nearest-rate and USD/EUR conversion queries from
// an in-memory snapshot of the rate store.
//
// The snapshot is built lazily and published with a single pointer swap.
// At most one build runs at a time and concurrent callers wait for it, so a
// partially built snapshot is never visible. A snapshot is discarded when the
// generation key changes or Invalidate is called.
type ConversionService struct {
	lister     ExchangeRateLister
	generation GenerationFunc

	table  atomic.Pointer[rateTable]
	epoch  atomic.Uint64
	builds singleflight.Group
}

// ConversionOption configures a ConversionService.
type ConversionOption func(*ConversionService)

// WithGeneration replaces the default daily generation key.
func WithGeneration(fn GenerationFunc) ConversionOption {
	return func(svc *ConversionService) {
		svc.generation = fn
	}
}

// NewConversionService creates a new service instance
func NewConversionService(lister ExchangeRateLister, opts ...ConversionOption) *ConversionService {
	svc := &ConversionService{
		lister:     lister,
		generation: DailyGeneration(time.Now),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Invalidate drops the current snapshot; the next lookup rebuilds it.
// A build already in flight when Invalidate is called is not served.
func (svc *ConversionService) Invalidate() {
	svc.epoch.Add(1)
	svc.table.Store(nil)
	logger.Log.Debugw("rate cache invalidated", "epoch", svc.epoch.Load())
}

// Warm builds the snapshot if it is missing or stale.
func (svc *ConversionService) Warm(ctx context.Context) error {
	_, err := svc.rates(ctx)
	return err
}

// NearestRate returns the stored rate of currency whose date is closest to
// date. The boolean is false when the currency has no rates at all.
func (svc *ConversionService) NearestRate(ctx context.Context, currency models.Currency, date civil.Date) (models.RatePoint, bool, error) {
	t, err := svc.rates(ctx)
	if err != nil {
		return models.RatePoint{}, false, err
	}
	p, ok := t.nearest(currency.Code(), date)
	return p, ok, nil
}

// ConvertToUSD converts amount reported in currency on date into US dollars,
// rounded to 2 places. The result is invalid when no usable rate exists.
// Errors are returned only when the snapshot cannot be built.
func (svc *ConversionService) ConvertToUSD(ctx context.Context, amount decimal.Decimal, date civil.Date, currency models.Currency) (decimal.NullDecimal, error) {
	if currency == models.USD {
		return available(amount), nil
	}
	t, err := svc.rates(ctx)
	if err != nil {
		return unavailable, err
	}
	return t.toUSD(amount, date, currency), nil
}

// ConvertToEUR converts amount reported in currency on date into euro through
// the US dollar: amount / rate(currency) * rate(EUR), rounded to 2 places.
func (svc *ConversionService) ConvertToEUR(ctx context.Context, amount decimal.Decimal, date civil.Date, currency models.Currency) (decimal.NullDecimal, error) {
	if currency == models.EUR {
		return available(amount), nil
	}
	t, err := svc.rates(ctx)
	if err != nil {
		return unavailable, err
	}
	return t.toEUR(amount, date, currency), nil
}

// Convert returns both conversions of m against one snapshot.
func (svc *ConversionService) Convert(ctx context.Context, m models.Money) (models.ConvertedMoney, error) {
	t, err := svc.rates(ctx)
	if err != nil {
		return models.ConvertedMoney{Money: m}, err
	}
	return models.ConvertedMoney{
		Money: m,
		USD:   t.toUSD(m.Amount, m.Date, m.Currency),
		EUR:   t.toEUR(m.Amount, m.Date, m.Currency),
	}, nil
}

// rates returns a snapshot that matches the current generation key and was
// built after the last invalidation, building one if needed.
func (svc *ConversionService) rates(ctx context.Context) (*rateTable, error) {
	gen, err := svc.generation(ctx)
	if err != nil {
		return nil, fmt.Errorf("rate cache generation: %w", err)
	}

	for {
		epoch := svc.epoch.Load()
		if t := svc.table.Load(); t != nil && t.generation == gen && t.epoch == epoch {
			return t, nil
		}

		v, err, _ := svc.builds.Do("rates", func() (any, error) {
			return svc.build(context.WithoutCancel(ctx), gen)
		})
		if err != nil {
			return nil, err
		}

		// the joined build may predate an invalidation or a rollover
		if t := v.(*rateTable); t.generation == gen && t.epoch == svc.epoch.Load() {
			return t, nil
		}
	}
}

func (svc *ConversionService) build(ctx context.Context, gen string) (*rateTable, error) {
	start := time.Now()
	epoch := svc.epoch.Load()

	rates, err := svc.lister.ListOrdered(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load exchange rates", "generation", gen, "error", err)
		return nil, fmt.Errorf("load exchange rates: %w", err)
	}

	t := &rateTable{
		generation: gen,
		epoch:      epoch,
		series:     groupByCurrency(rates),
		rows:       len(rates),
	}

	if svc.epoch.Load() == epoch {
		svc.table.Store(t)
	}

	logger.Log.Infow("rate cache built",
		"generation", gen,
		"epoch", epoch,
		"currencies", len(t.series),
		"rows", t.rows,
		"took", time.Since(start),
	)
	return t, nil
}

// groupByCurrency builds the per-currency series. Rows arrive ordered by
// currency then date; a series that is not ascending is sorted.
func groupByCurrency(rates []models.ExchangeRate) map[string][]models.RatePoint {
	series := make(map[string][]models.RatePoint)
	for _, r := range rates {
		series[r.Currency] = append(series[r.Currency], models.RatePoint{Date: r.Date, Rate: r.Rate})
	}
	for _, points := range series {
		if !slices.IsSortedFunc(points, comparePoints) {
			slices.SortStableFunc(points, comparePoints)
		}
	}
	return series
}

func comparePoints(a, b models.RatePoint) int {
	switch {
	case a.Date.Before(b.Date):
		return -1
	case a.Date.After(b.Date):
		return 1
	}
	return 0
}
