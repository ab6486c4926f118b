package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domainerrors "corpsite.backend/internal/domain/errors"
)

// listNewest loads every row of M ordered by createdColumn descending. The id
// tiebreak keeps rows created within the same clock tick in insertion order
// since ids are UUIDv7.
func listNewest[M any](ctx context.Context, db *gorm.DB, createdColumn string) ([]M, error) {
	var ms []M
	if err := GetDB(ctx, db).
		Order(createdColumn + " DESC").
		Order("id DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return ms, nil
}

// deleteByID hard-deletes one row of M.
func deleteByID[M any](ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	result := GetDB(ctx, db).Where("id = ?", id).Delete(new(M))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}
