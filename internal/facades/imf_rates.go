package facades

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/sbilibin2017/iati-rates/internal/logger"
)

// DefaultIMFRatesURL is the codeforiati mirror of the IMF exchange rate series.
const DefaultIMFRatesURL = "https://codeforiati.org/imf-exchangerates/imf_exchangerates.csv"

var (
	// ErrFeedUnavailable wraps every failure to obtain the feed records.
	ErrFeedUnavailable = errors.New("rates feed unavailable")
	// ErrUnexpectedStatus is returned when the feed answers with a non 2xx status.
	ErrUnexpectedStatus = errors.New("unexpected feed status")
)

// IMFRatesFacade downloads the IMF exchange rate CSV.
type IMFRatesFacade struct {
	client     *http.Client
	url        string
	maxElapsed time.Duration
}

// IMFOption configures an IMFRatesFacade.
type IMFOption func(*IMFRatesFacade)

// WithURL overrides the feed location.
func WithURL(url string) IMFOption {
	return func(f *IMFRatesFacade) { f.url = url }
}

// WithRetryFor bounds the total time spent retrying failed downloads.
// Zero disables retries.
func WithRetryFor(d time.Duration) IMFOption {
	return func(f *IMFRatesFacade) { f.maxElapsed = d }
}

// NewIMFRatesFacade creates a new facade with an HTTP client.
func NewIMFRatesFacade(client *http.Client, opts ...IMFOption) *IMFRatesFacade {
	f := &IMFRatesFacade{
		client:     client,
		url:        DefaultIMFRatesURL,
		maxElapsed: time.Minute,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FetchRates downloads the feed and returns its records without the header row.
func (f *IMFRatesFacade) FetchRates(ctx context.Context) ([][]string, error) {
	var records [][]string

	op := func() error {
		var err error
		records, err = f.fetch(ctx)
		var status statusError
		if errors.As(err, &status) && status.code < http.StatusInternalServerError {
			return backoff.Permanent(err)
		}
		return err
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = f.maxElapsed
	var b backoff.BackOff = policy
	if f.maxElapsed == 0 {
		b = &backoff.StopBackOff{}
	}

	notify := func(err error, wait time.Duration) {
		logger.Log.Warnw("rates feed download failed, retrying", "url", f.url, "wait", wait, "error", err)
	}

	if err := backoff.RetryNotify(op, backoff.WithContext(b, ctx), notify); err != nil {
		logger.Log.Errorw("failed to download rates feed", "url", f.url, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrFeedUnavailable, err)
	}

	logger.Log.Infow("rates feed downloaded", "url", f.url, "records", len(records))
	return records, nil
}

type statusError struct {
	code int
}

func (e statusError) Error() string {
	return fmt.Sprintf("%s: %d %s", ErrUnexpectedStatus, e.code, http.StatusText(e.code))
}

func (e statusError) Unwrap() error { return ErrUnexpectedStatus }

func (f *IMFRatesFacade) fetch(ctx context.Context) ([][]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError{code: resp.StatusCode}
	}

	records, err := ReadRatesCSV(resp.Body)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	return records, nil
}

// ReadRatesCSV reads comma separated rate records and drops the header row.
func ReadRatesCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read rates csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[1:], nil
}
