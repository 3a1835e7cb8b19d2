package repositories

import (
	"context"
	"errors"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/iati-rates/internal/logger"
)

const rateEpochKey = "exchange_rates:epoch"

// RateEpochRepository keeps a counter in Redis that every service replica reads
// as part of its rate cache generation key. Importers bump it after new rows
// are committed so that all replicas rebuild on their next lookup.
type RateEpochRepository struct {
	client *redis.Client
}

// NewRateEpochRepository creates a new repository instance
func NewRateEpochRepository(client *redis.Client) *RateEpochRepository {
	return &RateEpochRepository{client: client}
}

// Current returns the current epoch, 0 if it was never bumped
func (r *RateEpochRepository) Current(ctx context.Context) (int64, error) {
	val, err := r.client.Get(ctx, rateEpochKey).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to read rate epoch", "key", rateEpochKey, "error", err)
		return 0, err
	}

	epoch, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		logger.Log.Errorw("malformed rate epoch", "key", rateEpochKey, "value", val, "error", err)
		return 0, err
	}
	return epoch, nil
}

// Bump increments the epoch and returns the new value
func (r *RateEpochRepository) Bump(ctx context.Context) (int64, error) {
	epoch, err := r.client.Incr(ctx, rateEpochKey).Result()

	logger.Log.Infow(
		"rate epoch bump",
		"key", rateEpochKey,
		"result", epoch,
		"error", err,
	)

	return epoch, err
}
