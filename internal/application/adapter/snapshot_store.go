// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// SnapshotStore is the durable-storage contract for the budget document. The
// document is opaque at this boundary; shape handling belongs to the ledger
// repository above it.
type SnapshotStore interface {
	// Read returns the stored document bytes. It returns
	// domainerror.ErrNoSnapshot when no document exists; the repository
	// treats any read error as an absent document and self-heals.
	Read(ctx context.Context) ([]byte, error)

	// Write replaces the stored document wholesale. Implementations should
	// make the replace atomic where the medium allows it.
	Write(ctx context.Context, document []byte) error
}
