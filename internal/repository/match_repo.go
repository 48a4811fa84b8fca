package repository

import (
	"context"
	"time"

	"github.com/kindledapp/kindled/internal/db"
	"github.com/kindledapp/kindled/internal/utils/pagination"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MatchRepository provides data access methods for the Match model.
// Match identity is deterministic (db.MatchID), so creation is idempotent.
type MatchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new repository bound to the given DB connection.
func NewMatchRepository(database *gorm.DB) *MatchRepository {
	return &MatchRepository{db: database}
}

// ExistsByID checks whether a match row exists for the deterministic ID.
func (r *MatchRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Match{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

// Create persists a new match.
//
// Behavior:
//   - ON CONFLICT DO NOTHING on the deterministic primary key: when both
//     users swipe LIKE at nearly the same instant, the loser of the race
//     changes nothing and exactly one row survives.
//   - Returns created=false when the row already existed.
func (r *MatchRepository) Create(ctx context.Context, match *db.Match) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).
		Create(match)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// GetByID fetches a match. Returns gorm.ErrRecordNotFound if absent.
func (r *MatchRepository) GetByID(ctx context.Context, id string) (*db.Match, error) {
	var match db.Match
	if err := r.db.WithContext(ctx).First(&match, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &match, nil
}

// Update persists state changes to an existing match.
func (r *MatchRepository) Update(ctx context.Context, match *db.Match) error {
	return r.db.WithContext(ctx).Save(match).Error
}

// ListActiveForUser returns the user's ACTIVE matches, newest first.
//
// Behavior:
//   - Ordered by created_at DESC, id DESC.
//   - Supports cursor-based pagination via paginationToken.
//
// Example:
//
//	repo.ListActiveForUser(ctx, 42, nil, 20) // first 20 matches of user 42
func (r *MatchRepository) ListActiveForUser(
	ctx context.Context,
	userID uint64,
	paginationToken *string,
	limit int,
) ([]db.Match, *string, error) {
	var matches []db.Match

	// decode cursor if provided
	cursor, err := pagination.Decode(getString(paginationToken))
	if err != nil {
		return nil, nil, err
	}

	query := r.db.WithContext(ctx).
		Model(&db.Match{}).
		Where("(user_a_id = ? OR user_b_id = ?) AND state = ?", userID, userID, db.MatchStateActive).
		Order("created_at DESC, id DESC").
		Limit(limit + 1)

	// apply cursor
	if cursor.MatchID != "" && cursor.CreatedUnix > 0 {
		ts := time.UnixMilli(cursor.CreatedUnix)
		query = query.Where(
			"(created_at < ? OR (created_at = ? AND id < ?))",
			ts, ts, cursor.MatchID,
		)
	}

	if err := query.Find(&matches).Error; err != nil {
		return nil, nil, err
	}

	// pagination: build next cursor if needed
	var nextToken *string
	if len(matches) > limit {
		last := matches[limit-1]
		token, _ := pagination.Encode(pagination.Cursor{
			MatchID:     last.ID,
			CreatedUnix: last.CreatedAt.UnixMilli(),
		})
		nextToken = &token
		matches = matches[:limit]
	}

	return matches, nextToken, nil
}

// ActiveMatchedUserIDs returns the counterpart IDs of all the user's ACTIVE
// matches. Feeds the prior-interaction exclusion in candidate discovery.
func (r *MatchRepository) ActiveMatchedUserIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	var matches []db.Match
	err := r.db.WithContext(ctx).
		Where("(user_a_id = ? OR user_b_id = ?) AND state = ?", userID, userID, db.MatchStateActive).
		Find(&matches).Error
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(matches))
	for i := range matches {
		ids = append(ids, matches[i].OtherUser(userID))
	}
	return ids, nil
}

// getString safely dereferences a string pointer for pagination tokens.
func getString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
