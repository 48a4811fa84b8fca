package repository

import (
	"context"

	"github.com/kindledapp/kindled/internal/db"
	"gorm.io/gorm"
)

// BlockRepository reads the trust-and-safety block signal. The matching core
// only consumes it as a bidirectional exclusion; block rows are written
// elsewhere.
type BlockRepository struct {
	db *gorm.DB
}

// NewBlockRepository creates a new repository bound to the given DB connection.
func NewBlockRepository(database *gorm.DB) *BlockRepository {
	return &BlockRepository{db: database}
}

// IsBlocked reports whether either user has blocked the other.
func (r *BlockRepository) IsBlocked(ctx context.Context, a, b uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Block{}).
		Where("(blocker_id = ? AND blocked_id = ?) OR (blocker_id = ? AND blocked_id = ?)", a, b, b, a).
		Count(&count).Error
	return count > 0, err
}

// BlockedUserIDs returns every user the given user has blocked or been
// blocked by.
func (r *BlockRepository) BlockedUserIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	var blocks []db.Block
	err := r.db.WithContext(ctx).
		Where("blocker_id = ? OR blocked_id = ?", userID, userID).
		Find(&blocks).Error
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(blocks))
	for i := range blocks {
		if blocks[i].BlockerID == userID {
			ids = append(ids, blocks[i].BlockedID)
		} else {
			ids = append(ids, blocks[i].BlockerID)
		}
	}
	return ids, nil
}
