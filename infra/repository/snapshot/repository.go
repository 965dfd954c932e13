package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/amirasaad/unitconv/pkg/exchange"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository loads and saves the singleton rate snapshot.
type Repository struct {
	db *gorm.DB
}

// New migrates the snapshot table and returns a repository bound to db.
func New(db *gorm.DB) (*Repository, error) {
	if err := db.AutoMigrate(&Model{}); err != nil {
		return nil, fmt.Errorf("failed to migrate snapshot table: %w", err)
	}
	return &Repository{db: db}, nil
}

// Load reads the persisted snapshot. When no snapshot has ever been saved it
// returns an empty one with a zero timestamp, which the cache treats as
// stale and refreshes on first currency use.
func (r *Repository) Load() (exchange.Snapshot, error) {
	var m Model
	err := r.db.Order("fetched_at DESC").First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return exchange.EmptySnapshot(), nil
	}
	if err != nil {
		return exchange.EmptySnapshot(), fmt.Errorf("failed to load rate snapshot: %w", err)
	}

	rates := map[string]float64{}
	if err := json.Unmarshal([]byte(m.Rates), &rates); err != nil {
		return exchange.EmptySnapshot(), fmt.Errorf("failed to decode rate snapshot: %w", err)
	}
	return exchange.Snapshot{Rates: rates, FetchedAt: m.FetchedAt}, nil
}

// Save replaces the persisted snapshot with snap. Empty snapshots are not
// written, so a run that never fetched keeps whatever was stored before.
func (r *Repository) Save(snap exchange.Snapshot) error {
	if snap.IsEmpty() {
		return nil
	}
	rates, err := json.Marshal(snap.Rates)
	if err != nil {
		return fmt.Errorf("failed to encode rate snapshot: %w", err)
	}

	m := Model{
		ID:        uuid.New(),
		Rates:     string(rates),
		FetchedAt: snap.FetchedAt,
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&Model{}).Error; err != nil {
			return fmt.Errorf("failed to clear previous snapshot: %w", err)
		}
		if err := tx.Create(&m).Error; err != nil {
			return fmt.Errorf("failed to save rate snapshot: %w", err)
		}
		return nil
	})
}
