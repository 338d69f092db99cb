// internal/model/snapshot.go
package model

import "time"

// Snapshot is one persisted key-value record. Each store writes its entire
// serialized state under a single key on every mutation; there are no
// partial-field updates at this layer.
type Snapshot struct {
	Key       string `gorm:"primaryKey"`
	Value     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (Snapshot) TableName() string {
	return "snapshots"
}
