package repository

import (
	"context"

	"github.com/kindledapp/kindled/internal/db"
	"gorm.io/gorm"
)

// UserRepository provides read access to users. The matching core never
// mutates profiles; that belongs to the profile subsystem.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new repository bound to the given DB connection.
func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{db: database}
}

// GetByID fetches a single user. Returns gorm.ErrRecordNotFound if absent.
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*db.User, error) {
	var user db.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ListActive returns all users in the ACTIVE state.
//
// Behavior:
//   - PAUSED, BANNED and INCOMPLETE profiles are never candidates.
//   - Ordered by ID for deterministic iteration.
func (r *UserRepository) ListActive(ctx context.Context) ([]db.User, error) {
	var users []db.User
	err := r.db.WithContext(ctx).
		Where("state = ?", db.UserStateActive).
		Order("id ASC").
		Find(&users).Error
	return users, err
}
