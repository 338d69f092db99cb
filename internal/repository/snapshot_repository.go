// internal/repository/snapshot_repository.go
package repository

import (
	"context"
	"errors"

	"isl_learn/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SnapshotRepository is the key-value persistence layer. Every store writes
// its whole serialized state under one key per mutation.
type SnapshotRepository interface {
	Get(ctx context.Context, db *gorm.DB, key string) ([]byte, error)
	Put(ctx context.Context, db *gorm.DB, key string, value []byte) error
	Delete(ctx context.Context, db *gorm.DB, key string) error
}

type gormSnapshotRepository struct {
	// DB handle is passed in by the service layer.
}

func NewGormSnapshotRepository() SnapshotRepository {
	return &gormSnapshotRepository{}
}

func (r *gormSnapshotRepository) Get(ctx context.Context, db *gorm.DB, key string) ([]byte, error) {
	var snap model.Snapshot
	result := db.WithContext(ctx).Where("key = ?", key).First(&snap)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return snap.Value, nil
}

func (r *gormSnapshotRepository) Put(ctx context.Context, db *gorm.DB, key string, value []byte) error {
	snap := model.Snapshot{Key: key, Value: value}
	result := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&snap)
	return result.Error
}

func (r *gormSnapshotRepository) Delete(ctx context.Context, db *gorm.DB, key string) error {
	// Deleting an absent key is not an error; reset must be idempotent.
	result := db.WithContext(ctx).Where("key = ?", key).Delete(&model.Snapshot{})
	return result.Error
}
