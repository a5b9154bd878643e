package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"aps-backend/internal/database"
	"aps-backend/internal/model"
)

// DB stores items as rows of the storage_items table
type DB struct {
	db *database.DBinstanceStruct
}

// NewDB wraps an already migrated database instance
func NewDB(db *database.DBinstanceStruct) *DB {
	return &DB{db: db}
}

// GetItem implements Storage
func (s *DB) GetItem(ctx context.Context, key string) (string, error) {
	var item model.StorageItem
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return item.Value, nil
}

// SetItem implements Storage
func (s *DB) SetItem(ctx context.Context, key, value string) error {
	item := model.StorageItem{Key: key, Value: value}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&item).Error
}

// RemoveItem implements Storage
func (s *DB) RemoveItem(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Where("key = ?", key).Delete(&model.StorageItem{}).Error
}

// Close closes the underlying connection
func (s *DB) Close() error {
	return s.db.Close()
}
