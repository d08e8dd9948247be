// Package persistence implements snapshot stores and the ledger repository.
package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/budget-tracker/backend/internal/application/adapter"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/integration/persistence/model"
)

// snapshotRowID is the primary key of the single document row.
const snapshotRowID = 1

// gormStore keeps the budget document as one row in a relational database.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a database-backed snapshot store.
func NewGormStore(db *gorm.DB) adapter.SnapshotStore {
	return &gormStore{
		db: db,
	}
}

// Read returns the document bytes, or ErrNoSnapshot when the row is absent.
func (s *gormStore) Read(ctx context.Context) ([]byte, error) {
	var row model.SnapshotModel
	result := s.db.WithContext(ctx).First(&row, snapshotRowID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrNoSnapshot
		}
		return nil, fmt.Errorf("failed to read snapshot row: %w", result.Error)
	}
	return row.Document, nil
}

// Write upserts the single document row.
func (s *gormStore) Write(ctx context.Context, document []byte) error {
	row := model.SnapshotModel{
		ID:       snapshotRowID,
		Document: document,
	}
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"document", "updated_at"}),
		}).
		Create(&row)
	if result.Error != nil {
		return fmt.Errorf("failed to write snapshot row: %w", result.Error)
	}
	return nil
}
