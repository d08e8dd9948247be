// Package model defines database models for persistence layer.
package model

import "time"

// SnapshotModel represents the snapshots table. The budget document is a
// single wholesale-replaced blob, so the table holds exactly one row.
type SnapshotModel struct {
	ID        uint   `gorm:"primaryKey"`
	Document  []byte `gorm:"type:bytes;not null"`
	UpdatedAt time.Time
}

// TableName returns the table name for the SnapshotModel.
func (SnapshotModel) TableName() string {
	return "snapshots"
}
