// Package persistence implements snapshot stores and the ledger repository.
package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/budget-tracker/backend/internal/application/adapter"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// redisStore keeps the budget document under a single Redis key.
type redisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore creates a Redis-backed snapshot store.
func NewRedisStore(client *redis.Client, key string) adapter.SnapshotStore {
	return &redisStore{
		client: client,
		key:    key,
	}
}

// Read returns the document bytes, or ErrNoSnapshot when the key is absent.
func (s *redisStore) Read(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domainerror.ErrNoSnapshot
		}
		return nil, fmt.Errorf("failed to read snapshot key: %w", err)
	}
	return data, nil
}

// Write replaces the document wholesale. A Redis SET is atomic, so readers
// never observe a partial document.
func (s *redisStore) Write(ctx context.Context, document []byte) error {
	if err := s.client.Set(ctx, s.key, document, 0).Err(); err != nil {
		return fmt.Errorf("failed to write snapshot key: %w", err)
	}
	return nil
}
