// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// LedgerRepository owns the in-memory snapshot and serializes every mutation.
type LedgerRepository interface {
	// Load returns the current snapshot, bootstrapping and persisting an
	// empty one when no valid stored document exists. The returned snapshot
	// is shared; callers must treat it as read-only and go through Mutate
	// for changes.
	Load(ctx context.Context) (*entity.Snapshot, error)

	// Mutate runs fn against a copy of the current snapshot and persists the
	// result as one logical transaction. Only one mutation is in flight at a
	// time; overlapping calls queue. If fn returns an error no state changes;
	// if the persist fails the in-memory snapshot is left at its previous
	// value and the error is surfaced.
	Mutate(ctx context.Context, fn func(*entity.Snapshot) error) (*entity.Snapshot, error)
}
