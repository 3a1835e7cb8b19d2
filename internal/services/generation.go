package services

//go:generate mockgen -source=generation.go -destination=generation_mock.go -package=services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cloud.google.com/go/civil"

	"github.com/sbilibin2017/iati-rates/internal/logger"
)

// GenerationFunc computes the key identifying the validity window of the rate
// cache. A cache built under a different key is rebuilt before it is served.
type GenerationFunc func(ctx context.Context) (string, error)

// RateEpochReader reads the shared import epoch.
type RateEpochReader interface {
	Current(ctx context.Context) (int64, error)
}

// DailyGeneration rolls the cache over once per UTC day.
func DailyGeneration(now func() time.Time) GenerationFunc {
	return func(context.Context) (string, error) {
		return civil.DateOf(now().UTC()).String(), nil
	}
}

// EpochGeneration combines the UTC day with the import epoch shared through
// epochs, so replicas that did not run an import still rebuild after one.
// The epoch is re-read at most once per refresh; when the read fails the last
// known epoch is kept.
func EpochGeneration(now func() time.Time, epochs RateEpochReader, refresh time.Duration) GenerationFunc {
	var (
		mu       sync.Mutex
		epoch    int64
		readAt   time.Time
		hasEpoch bool
	)

	return func(ctx context.Context) (string, error) {
		t := now()

		mu.Lock()
		defer mu.Unlock()

		if !hasEpoch || t.Sub(readAt) >= refresh {
			current, err := epochs.Current(ctx)
			switch {
			case err == nil:
				epoch, readAt, hasEpoch = current, t, true
			case !hasEpoch:
				return "", fmt.Errorf("read rate epoch: %w", err)
			default:
				readAt = t
				logger.Log.Warnw("rate epoch unavailable, keeping last known", "epoch", epoch, "error", err)
			}
		}

		return fmt.Sprintf("%s:%d", civil.DateOf(t.UTC()), epoch), nil
	}
}
