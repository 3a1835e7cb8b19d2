package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/iati-rates/internal/logger"
	"github.com/sbilibin2017/iati-rates/internal/models"
)

const latestDateQuery = `SELECT MAX(date) FROM exchange_rates`

// exchangeRateRow is the exchange_rates table layout.
type exchangeRateRow struct {
	Date        time.Time       `db:"date"`
	Currency    string          `db:"currency"`
	Rate        decimal.Decimal `db:"rate"`
	Frequency   string          `db:"frequency"`
	Source      string          `db:"source"`
	CountryCode string          `db:"country_code"`
	Country     string          `db:"country"`
}

func (row exchangeRateRow) toModel() models.ExchangeRate {
	return models.ExchangeRate{
		Date:        civil.DateOf(row.Date),
		Currency:    row.Currency,
		Rate:        row.Rate,
		Frequency:   row.Frequency,
		Source:      row.Source,
		CountryCode: row.CountryCode,
		Country:     row.Country,
	}
}

func dateArg(d civil.Date) time.Time {
	return d.In(time.UTC)
}

func latestOrEpoch(last sql.NullTime) civil.Date {
	if !last.Valid {
		return models.EpochDate
	}
	return civil.DateOf(last.Time)
}

// ExchangeRateReadRepository handles exchange rate read operations
type ExchangeRateReadRepository struct {
	db *sqlx.DB
}

// NewExchangeRateReadRepository creates a new read repository
func NewExchangeRateReadRepository(db *sqlx.DB) *ExchangeRateReadRepository {
	return &ExchangeRateReadRepository{db: db}
}

// LatestDate returns the most recent stored date, or models.EpochDate when the table is empty.
func (r *ExchangeRateReadRepository) LatestDate(ctx context.Context) (civil.Date, error) {
	var last sql.NullTime
	err := r.db.GetContext(ctx, &last, latestDateQuery)

	logger.Log.Infow(
		"exchange rates query",
		"query", latestDateQuery,
		"args", []any{},
		"result", last,
		"error", err,
	)

	if err != nil {
		return civil.Date{}, err
	}
	return latestOrEpoch(last), nil
}

// ListOrdered returns every stored rate ordered by currency, then date ascending.
func (r *ExchangeRateReadRepository) ListOrdered(ctx context.Context) ([]models.ExchangeRate, error) {
	const query = `
		SELECT date, currency, rate, frequency, source, country_code, country
		FROM exchange_rates
		ORDER BY currency, date
	`

	var rows []exchangeRateRow
	err := r.db.SelectContext(ctx, &rows, query)

	logger.Log.Infow(
		"exchange rates query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{},
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	rates := make([]models.ExchangeRate, len(rows))
	for i, row := range rows {
		rates[i] = row.toModel()
	}
	return rates, nil
}

// ListByCurrency returns the (date, rate) series of one currency, ascending by date.
func (r *ExchangeRateReadRepository) ListByCurrency(ctx context.Context, currency string) ([]models.RatePoint, error) {
	const query = `
		SELECT date, rate
		FROM exchange_rates
		WHERE currency = $1
		ORDER BY date
	`

	var rows []struct {
		Date time.Time       `db:"date"`
		Rate decimal.Decimal `db:"rate"`
	}
	err := r.db.SelectContext(ctx, &rows, query, currency)

	logger.Log.Infow(
		"exchange rates query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{currency},
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	points := make([]models.RatePoint, len(rows))
	for i, row := range rows {
		points[i] = models.RatePoint{Date: civil.DateOf(row.Date), Rate: row.Rate}
	}
	return points, nil
}

// ExchangeRateWriteRepository handles exchange rate write operations
type ExchangeRateWriteRepository struct {
	db *sqlx.DB
}

// NewExchangeRateWriteRepository creates a new write repository
func NewExchangeRateWriteRepository(db *sqlx.DB) *ExchangeRateWriteRepository {
	return &ExchangeRateWriteRepository{db: db}
}

// AppendAfterLatest inserts the rates dated strictly after the latest date
// already stored, across all currencies. The read of the latest date and the
// inserts run in one transaction holding a lock that excludes concurrent
// imports, so either every qualifying row is added or none is.
func (r *ExchangeRateWriteRepository) AppendAfterLatest(ctx context.Context, rates []models.ExchangeRate) (added int, err error) {
	const lockQuery = `LOCK TABLE exchange_rates IN SHARE ROW EXCLUSIVE MODE`
	const insertQuery = `
		INSERT INTO exchange_rates (date, currency, rate, frequency, source, country_code, country)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (date, currency) DO NOTHING
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin import transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, lockQuery); err != nil {
		return 0, fmt.Errorf("lock exchange_rates: %w", err)
	}

	var last sql.NullTime
	if err = tx.GetContext(ctx, &last, latestDateQuery); err != nil {
		return 0, fmt.Errorf("read latest date: %w", err)
	}
	lastDate := latestOrEpoch(last)

	stmt, err := tx.PreparexContext(ctx, insertQuery)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	skipped := 0
	for _, rate := range rates {
		if !rate.Date.After(lastDate) {
			skipped++
			continue
		}
		res, execErr := stmt.ExecContext(ctx,
			dateArg(rate.Date), rate.Currency, rate.Rate,
			rate.Frequency, rate.Source, rate.CountryCode, rate.Country,
		)
		if execErr != nil {
			err = fmt.Errorf("insert %s %s: %w", rate.Currency, rate.Date, execErr)
			return 0, err
		}
		n, _ := res.RowsAffected()
		added += int(n)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}

	logger.Log.Infow(
		"exchange rates insert",
		"query", strings.Join(strings.Fields(insertQuery), " "),
		"args", []any{len(rates), lastDate.String()},
		"result", added,
		"skipped", skipped,
		"error", err,
	)

	return added, nil
}
