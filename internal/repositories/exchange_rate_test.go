package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/iati-rates/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func day(s string) civil.Date {
	d, err := civil.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func rate(date, currency, value string) models.ExchangeRate {
	return models.ExchangeRate{
		Date:     day(date),
		Currency: currency,
		Rate:     decimal.RequireFromString(value),
		Source:   "IMF",
	}
}

var (
	lockSQL   = regexp.QuoteMeta(`LOCK TABLE exchange_rates IN SHARE ROW EXCLUSIVE MODE`)
	latestSQL = regexp.QuoteMeta(latestDateQuery)
	insertSQL = `INSERT INTO exchange_rates`
)

func TestExchangeRateReadRepository_LatestDate(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    civil.Date
		wantErr bool
	}{
		{name: "empty table", value: nil, want: models.EpochDate},
		{name: "stored date", value: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), want: day("2024-03-01")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			mock.ExpectQuery(latestSQL).
				WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(tt.value))

			got, err := NewExchangeRateReadRepository(db).LatestDate(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}

	t.Run("query error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(latestSQL).WillReturnError(errors.New("connection reset"))

		_, err := NewExchangeRateReadRepository(db).LatestDate(context.Background())
		assert.EqualError(t, err, "connection reset")
	})
}

func TestExchangeRateReadRepository_ListOrdered(t *testing.T) {
	db, mock := newMockDB(t)
	cols := []string{"date", "currency", "rate", "frequency", "source", "country_code", "country"}
	mock.ExpectQuery(`SELECT date, currency, rate, frequency, source, country_code, country FROM exchange_rates ORDER BY currency, date`).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(time.Date(1973, 12, 1, 0, 0, 0, 0, time.UTC), "AFN", "38.075", "M", "IMF", "AF", "Afghanistan").
			AddRow(time.Date(2012, 1, 1, 0, 0, 0, 0, time.UTC), "EUR", "0.7708", "M", "IMF", "U2", "Euro Area"))

	got, err := NewExchangeRateReadRepository(db).ListOrdered(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, day("1973-12-01"), got[0].Date)
	assert.Equal(t, "AFN", got[0].Currency)
	assert.True(t, decimal.RequireFromString("38.075").Equal(got[0].Rate))
	assert.Equal(t, "Afghanistan", got[0].Country)
	assert.Equal(t, "EUR", got[1].Currency)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExchangeRateReadRepository_ListByCurrency(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT date, rate FROM exchange_rates WHERE currency = \$1 ORDER BY date`).
		WithArgs("XCD").
		WillReturnRows(sqlmock.NewRows([]string{"date", "rate"}).
			AddRow(time.Date(2014, 7, 1, 0, 0, 0, 0, time.UTC), "2.7").
			AddRow(time.Date(2014, 8, 1, 0, 0, 0, 0, time.UTC), "2.7"))

	got, err := NewExchangeRateReadRepository(db).ListByCurrency(context.Background(), "XCD")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, day("2014-07-01"), got[0].Date)
	assert.Equal(t, day("2014-08-01"), got[1].Date)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExchangeRateWriteRepository_AppendAfterLatest(t *testing.T) {
	feed := []models.ExchangeRate{
		rate("2012-01-01", "ARS", "4.317"),
		rate("2012-02-01", "ARS", "4.35"),
		rate("2012-01-01", "EUR", "0.7708"),
		rate("2012-02-01", "EUR", "0.7612"),
	}

	t.Run("empty store takes every row", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(lockSQL).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(latestSQL).WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(nil))
		prep := mock.ExpectPrepare(insertSQL)
		for _, r := range feed {
			prep.ExpectExec().
				WithArgs(r.Date.In(time.UTC), r.Currency, r.Rate, "", "IMF", "", "").
				WillReturnResult(sqlmock.NewResult(0, 1))
		}
		mock.ExpectCommit()

		added, err := NewExchangeRateWriteRepository(db).AppendAfterLatest(context.Background(), feed)
		require.NoError(t, err)
		assert.Equal(t, 4, added)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("global last date filters every currency", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(lockSQL).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(latestSQL).
			WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(time.Date(2012, 1, 1, 0, 0, 0, 0, time.UTC)))
		prep := mock.ExpectPrepare(insertSQL)
		prep.ExpectExec().WithArgs(feed[1].Date.In(time.UTC), "ARS", feed[1].Rate, "", "IMF", "", "").
			WillReturnResult(sqlmock.NewResult(0, 1))
		prep.ExpectExec().WithArgs(feed[3].Date.In(time.UTC), "EUR", feed[3].Rate, "", "IMF", "", "").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		// a currency first seen before the global last date is skipped
		withNew := append([]models.ExchangeRate{rate("2011-06-01", "XCD", "2.7")}, feed...)

		added, err := NewExchangeRateWriteRepository(db).AppendAfterLatest(context.Background(), withNew)
		require.NoError(t, err)
		assert.Equal(t, 2, added)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already imported feed adds nothing", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(lockSQL).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(latestSQL).
			WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(time.Date(2012, 2, 1, 0, 0, 0, 0, time.UTC)))
		mock.ExpectPrepare(insertSQL)
		mock.ExpectCommit()

		added, err := NewExchangeRateWriteRepository(db).AppendAfterLatest(context.Background(), feed)
		require.NoError(t, err)
		assert.Equal(t, 0, added)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure rolls back", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(lockSQL).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(latestSQL).WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(nil))
		prep := mock.ExpectPrepare(insertSQL)
		prep.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
		prep.ExpectExec().WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		added, err := NewExchangeRateWriteRepository(db).AppendAfterLatest(context.Background(), feed)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
		assert.Equal(t, 0, added)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("lock failure rolls back", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(lockSQL).WillReturnError(errors.New("lock timeout"))
		mock.ExpectRollback()

		_, err := NewExchangeRateWriteRepository(db).AppendAfterLatest(context.Background(), feed)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
