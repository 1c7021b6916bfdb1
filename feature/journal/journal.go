package journal

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// DefaultLimit is the number of entries returned by Recent when none is given.
const DefaultLimit = 50

// MaxLimit caps the number of entries a single Recent call returns.
const MaxLimit = 1000

// Journal persists storage mutations.
type Journal struct {
	db *gorm.DB
}

// New creates a journal on db and migrates its table.
func New(db *gorm.DB) (*Journal, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate journal: %w", err)
	}
	return &Journal{db: db}, nil
}

// Record stores one entry.
func (j *Journal) Record(ctx context.Context, entry Entry) error {
	if err := j.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to record %s of %s/%s: %w", entry.Operation, entry.Bucket, entry.Key, err)
	}
	return nil
}

// Recent returns up to limit entries, newest first. limit is clamped to
// MaxLimit.
func (j *Journal) Recent(ctx context.Context, limit int) ([]Entry, error) {
	switch {
	case limit <= 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}

	var entries []Entry
	if err := j.db.WithContext(ctx).Order("id desc").Limit(limit).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}
	return entries, nil
}
