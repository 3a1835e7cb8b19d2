package services

//go:generate mockgen -source=importer.go -destination=importer_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/sbilibin2017/iati-rates/internal/logger"
	"github.com/sbilibin2017/iati-rates/internal/models"
)

// ExchangeRateAppender appends rates dated after the store's latest date.
type ExchangeRateAppender interface {
	AppendAfterLatest(ctx context.Context, rates []models.ExchangeRate) (int, error)
}

// RateCacheInvalidator drops cached rates after an import.
type RateCacheInvalidator interface {
	Invalidate()
}

// RateEpochBumper advances the shared import epoch.
type RateEpochBumper interface {
	Bump(ctx context.Context) (int64, error)
}

// RatesImportedPublisher notifies other replicas about an import.
type RatesImportedPublisher interface {
	PublishRatesImported(ctx context.Context, event models.RatesImported) error
}

// RatesFeed downloads raw rate records, header row excluded.
type RatesFeed interface {
	FetchRates(ctx context.Context) ([][]string, error)
}

var ErrNoRatesFeed = errors.New("no rates feed configured")

// RateImportService parses rate feeds into the rate store and keeps the
// conversion caches consistent with it.
type RateImportService struct {
	writer      ExchangeRateAppender
	invalidator RateCacheInvalidator
	epochs      RateEpochBumper
	publisher   RatesImportedPublisher
	feed        RatesFeed
	now         func() time.Time
}

// ImportOption configures a RateImportService.
type ImportOption func(*RateImportService)

// WithEpochBumper bumps the shared epoch after every import that added rows.
func WithEpochBumper(b RateEpochBumper) ImportOption {
	return func(svc *RateImportService) { svc.epochs = b }
}

// WithPublisher publishes a RatesImported event after every import that added rows.
func WithPublisher(p RatesImportedPublisher) ImportOption {
	return func(svc *RateImportService) { svc.publisher = p }
}

// WithFeed sets the feed used by ImportFromFeed.
func WithFeed(f RatesFeed) ImportOption {
	return func(svc *RateImportService) { svc.feed = f }
}

// NewRateImportService creates a new service instance
func NewRateImportService(writer ExchangeRateAppender, invalidator RateCacheInvalidator, opts ...ImportOption) *RateImportService {
	svc := &RateImportService{
		writer:      writer,
		invalidator: invalidator,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Import parses records and appends those dated after the store's latest
// date. A record that fails to parse aborts the whole batch before anything
// is written.
func (svc *RateImportService) Import(ctx context.Context, records [][]string) (int, error) {
	rates := make([]models.ExchangeRate, 0, len(records))
	latest := models.EpochDate
	for i, record := range records {
		rate, err := models.ParseExchangeRate(record)
		if err != nil {
			logger.Log.Errorw("failed to parse rate record", "record", i+1, "error", err)
			return 0, fmt.Errorf("record %d: %w", i+1, err)
		}
		if rate.Date.After(latest) {
			latest = rate.Date
		}
		rates = append(rates, rate)
	}

	added, err := svc.writer.AppendAfterLatest(ctx, rates)
	if err != nil {
		logger.Log.Errorw("failed to append exchange rates", "records", len(rates), "error", err)
		return 0, err
	}

	logger.Log.Infow("exchange rates imported", "records", len(rates), "added", added)

	svc.invalidator.Invalidate()
	if added > 0 {
		svc.announce(ctx, added, latest)
	}

	return added, nil
}

// ImportFromFeed downloads the configured feed and imports it.
func (svc *RateImportService) ImportFromFeed(ctx context.Context) (int, error) {
	if svc.feed == nil {
		return 0, ErrNoRatesFeed
	}
	records, err := svc.feed.FetchRates(ctx)
	if err != nil {
		logger.Log.Errorw("failed to download rates feed", "error", err)
		return 0, err
	}
	return svc.Import(ctx, records)
}

// announce propagates the import to other replicas. The rows are already
// committed, so failures are logged only.
func (svc *RateImportService) announce(ctx context.Context, added int, latest civil.Date) {
	if svc.epochs != nil {
		if _, err := svc.epochs.Bump(ctx); err != nil {
			logger.Log.Errorw("failed to bump rate epoch", "error", err)
		}
	}

	if svc.publisher != nil {
		event := models.RatesImported{
			ID:         uuid.New(),
			Added:      added,
			LatestDate: latest,
			ImportedAt: svc.now().UTC(),
		}
		if err := svc.publisher.PublishRatesImported(ctx, event); err != nil {
			logger.Log.Errorw("failed to publish rates imported event", "event_id", event.ID, "error", err)
		}
	}
}
