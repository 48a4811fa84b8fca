package repository

import (
	"context"

	"github.com/kindledapp/kindled/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeRepository provides data access methods for the Like model.
// It encapsulates all queries related to like/pass facts between users.
type LikeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new repository bound to the given DB connection.
func NewLikeRepository(database *gorm.DB) *LikeRepository {
	return &LikeRepository{db: database}
}

// Create inserts a new like fact.
//
// Behavior:
//   - Likes are immutable: the unique index on (actor_id, target_id) plus
//     ON CONFLICT DO NOTHING means a second swipe on the same pair changes
//     nothing.
//   - Returns persisted=false when the row already existed (duplicate swipe).
//
// Example:
//
//	persisted, err := repo.Create(ctx, db.NewLike(1, 2, db.DirectionLike))
func (r *LikeRepository) Create(ctx context.Context, like *db.Like) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "actor_id"}, {Name: "target_id"}},
			DoNothing: true,
		}).
		Create(like)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Exists checks whether the actor has already swiped (either direction) on
// the target.
func (r *LikeRepository) Exists(ctx context.Context, actorID, targetID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Like{}).
		Where("actor_id = ? AND target_id = ?", actorID, targetID).
		Count(&count).Error
	return count > 0, err
}

// Get fetches the like fact for an ordered pair, if any.
func (r *LikeRepository) Get(ctx context.Context, actorID, targetID uint64) (*db.Like, error) {
	var like db.Like
	err := r.db.WithContext(ctx).
		Where("actor_id = ? AND target_id = ?", actorID, targetID).
		First(&like).Error
	if err != nil {
		return nil, err
	}
	return &like, nil
}

// MutualLikeExists checks whether the reverse pair (target → actor) already
// has a LIKE on record. Used for mutual-match detection in the ledger.
func (r *LikeRepository) MutualLikeExists(ctx context.Context, actorID, targetID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Like{}).
		Where("actor_id = ? AND target_id = ? AND direction = ?", targetID, actorID, db.DirectionLike).
		Count(&count).Error
	return count > 0, err
}

// LikedOrPassedIDs returns the IDs of every user the given user has already
// swiped on. Feeds the prior-interaction exclusion in candidate discovery.
func (r *LikeRepository) LikedOrPassedIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).
		Model(&db.Like{}).
		Where("actor_id = ?", userID).
		Pluck("target_id", &ids).Error
	return ids, err
}

// CountLikersOf returns how many users have an outstanding LIKE toward the
// given user. Used with the Redis counter cache (DB is fallback).
func (r *LikeRepository) CountLikersOf(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Like{}).
		Where("target_id = ? AND direction = ?", userID, db.DirectionLike).
		Count(&count).Error
	return count, err
}
