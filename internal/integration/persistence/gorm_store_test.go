// Package persistence implements snapshot stores and the ledger repository.
package persistence

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/integration/persistence/model"
)

func newGormTestStore(t *testing.T) *gormStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if err := db.AutoMigrate(&model.SnapshotModel{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return &gormStore{db: db}
}

func TestGormStoreReadAbsent(t *testing.T) {
	store := newGormTestStore(t)

	_, err := store.Read(context.Background())
	if !errors.Is(err, domainerror.ErrNoSnapshot) {
		t.Fatalf("expected ErrNoSnapshot, got %v", err)
	}
}

func TestGormStoreWriteRead(t *testing.T) {
	store := newGormTestStore(t)
	document := []byte(`{"income":[]}`)

	if err := store.Write(context.Background(), document); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	data, err := store.Read(context.Background())
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !bytes.Equal(data, document) {
		t.Errorf("read = %s, want %s", data, document)
	}
}

func TestGormStoreUpsertsSingleRow(t *testing.T) {
	store := newGormTestStore(t)

	if err := store.Write(context.Background(), []byte(`{"v":1}`)); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	if err := store.Write(context.Background(), []byte(`{"v":2}`)); err != nil {
		t.Fatalf("second write failed: %v", err)
	}

	data, err := store.Read(context.Background())
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(data) != `{"v":2}` {
		t.Errorf("read = %s, want second document", data)
	}

	var count int64
	if err := store.db.Model(&model.SnapshotModel{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("rows = %d, want a single upserted row", count)
	}
}
