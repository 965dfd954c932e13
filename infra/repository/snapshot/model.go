// Package snapshot persists the exchange rate snapshot across runs.
package snapshot

import (
	"time"

	"github.com/google/uuid"
)

// Model is the gorm row for a persisted rate snapshot. The table holds a
// single row at a time: saves overwrite it wholesale.
type Model struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Rates     string    `gorm:"type:text;not null"`
	FetchedAt time.Time `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the default gorm table name.
func (Model) TableName() string {
	return "rate_snapshots"
}
