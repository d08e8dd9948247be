// Package entity defines the core business entities for the domain layer.
package entity

import (
	"sync"
	"time"
)

var (
	idMu   sync.Mutex
	lastID int64
)

// NewEntryID returns a unique entry identifier. IDs are unix-millisecond
// timestamps, which keeps them sortable by recency and compatible with
// historical documents; a monotonic guard prevents collisions when two
// entries are created within the same millisecond.
func NewEntryID() int64 {
	idMu.Lock()
	defer idMu.Unlock()

	id := time.Now().UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return id
}
