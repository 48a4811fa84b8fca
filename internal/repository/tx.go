package repository

import (
	"context"
	"errors"

	"github.com/kindledapp/kindled/internal/db"
	"gorm.io/gorm"
)

// ErrLikeNotFound is returned by UndoDelete when the like row is already
// gone; the whole transaction rolls back.
var ErrLikeNotFound = errors.New("like not found")

// UndoDelete removes a like and, if matchID is non-empty, its match in a
// single all-or-nothing transaction. Either both rows vanish or neither does.
func UndoDelete(ctx context.Context, database *gorm.DB, likeID, matchID string) error {
	return database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&db.Like{}, "id = ?", likeID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrLikeNotFound
		}

		if matchID != "" {
			if err := tx.Delete(&db.Match{}, "id = ?", matchID).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
