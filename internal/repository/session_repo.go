package repository

import (
	"context"
	"errors"
	"time"

	"github.com/kindledapp/kindled/internal/db"
	"gorm.io/gorm"
)

// SessionRepository provides data access methods for swipe sessions.
// All mutation goes through the session tracker, which holds the per-user
// lock while calling these methods.
type SessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new repository bound to the given DB connection.
func NewSessionRepository(database *gorm.DB) *SessionRepository {
	return &SessionRepository{db: database}
}

// GetActiveForUser returns the user's current ACTIVE session, or nil if none.
func (r *SessionRepository) GetActiveForUser(ctx context.Context, userID uint64) (*db.SwipeSession, error) {
	var session db.SwipeSession
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND state = ?", userID, db.SessionStateActive).
		Order("started_at DESC").
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Save upserts the session row.
func (r *SessionRepository) Save(ctx context.Context, session *db.SwipeSession) error {
	return r.db.WithContext(ctx).Save(session).Error
}

// EndStale closes every ACTIVE session whose last activity is older than the
// timeout. Used by the periodic sweeper; returns the number of sessions ended.
func (r *SessionRepository) EndStale(ctx context.Context, timeout time.Duration, now time.Time) (int64, error) {
	cutoff := now.Add(-timeout)
	res := r.db.WithContext(ctx).
		Model(&db.SwipeSession{}).
		Where("state = ? AND last_activity_at < ?", db.SessionStateActive, cutoff).
		Updates(map[string]interface{}{
			"state":    db.SessionStateEnded,
			"ended_at": now,
		})
	return res.RowsAffected, res.Error
}
