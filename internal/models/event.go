package models

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// RatesImported is emitted after an import appended rows to the rate store.
type RatesImported struct {
	ID         uuid.UUID  `json:"id"`
	Added      int        `json:"added"`
	LatestDate civil.Date `json:"latest_date"`
	ImportedAt time.Time  `json:"imported_at"`
}
