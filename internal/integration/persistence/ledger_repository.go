// Package persistence implements snapshot stores and the ledger repository.
package persistence

import (
	"context"
	"log/slog"
	"sync"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// ledgerRepository owns the in-memory snapshot and serializes the
// load-modify-save cycle behind a single mutex, so overlapping mutations
// queue instead of clobbering each other's writes.
type ledgerRepository struct {
	mu     sync.Mutex
	store  adapter.SnapshotStore
	cached *entity.Snapshot
}

// NewLedgerRepository creates a ledger repository on top of the given store.
func NewLedgerRepository(store adapter.SnapshotStore) adapter.LedgerRepository {
	return &ledgerRepository{
		store: store,
	}
}

// Load returns the current snapshot. When no valid stored document exists —
// absent file, unreadable medium or unparseable bytes — it bootstraps an
// empty snapshot and persists it immediately so subsequent reads succeed.
// This self-heal is not an error condition and never surfaces to the caller.
func (r *ledgerRepository) Load(ctx context.Context) (*entity.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadLocked(ctx)
}

func (r *ledgerRepository) loadLocked(ctx context.Context) (*entity.Snapshot, error) {
	if r.cached != nil {
		return r.cached, nil
	}

	data, err := r.store.Read(ctx)
	if err == nil {
		if snapshot, decodeErr := decodeDocument(data); decodeErr == nil {
			r.cached = snapshot
			return r.cached, nil
		} else {
			slog.Warn("Stored snapshot is unparseable, rebuilding baseline", "error", decodeErr)
		}
	} else if err != domainerror.ErrNoSnapshot {
		slog.Warn("Snapshot read failed, rebuilding baseline", "error", err)
	}

	snapshot := entity.NewSnapshot()
	if document, encodeErr := encodeDocument(snapshot); encodeErr == nil {
		if writeErr := r.store.Write(ctx, document); writeErr != nil {
			slog.Warn("Failed to persist baseline snapshot", "error", writeErr)
		}
	}
	r.cached = snapshot
	return r.cached, nil
}

// Mutate applies fn to a deep copy of the current snapshot and persists the
// result as one logical transaction. If fn fails nothing changes; if the
// persist fails the copy is discarded so the in-memory state never advances
// past durable state.
func (r *ledgerRepository) Mutate(ctx context.Context, fn func(*entity.Snapshot) error) (*entity.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.loadLocked(ctx)
	if err != nil {
		return nil, err
	}

	next := current.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}

	document, err := encodeDocument(next)
	if err != nil {
		return nil, domainerror.NewSnapshotError(
			domainerror.ErrCodeSnapshotWriteFailed,
			"failed to serialize snapshot",
			err,
		)
	}
	if err := r.store.Write(ctx, document); err != nil {
		return nil, domainerror.NewSnapshotError(
			domainerror.ErrCodeSnapshotWriteFailed,
			"failed to persist snapshot",
			err,
		)
	}

	r.cached = next
	return next, nil
}
