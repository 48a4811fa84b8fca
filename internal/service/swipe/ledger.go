package swipe

import (
	"context"
	"errors"

	"github.com/kindledapp/kindled/internal/app"
	"github.com/kindledapp/kindled/internal/db"
	"github.com/kindledapp/kindled/internal/repository"
	"gorm.io/gorm"
)

var (
	// ErrSelfSwipe rejects recording a swipe on oneself.
	ErrSelfSwipe = errors.New("cannot swipe on yourself")
	// ErrUserNotFound signals that actor or target does not resolve to a user.
	ErrUserNotFound = errors.New("user not found")
)

// LikeResult describes the outcome of recording a swipe. Duplicate swipes and
// "no match yet" are success outcomes the caller branches on, not errors.
type LikeResult struct {
	Persisted bool
	Duplicate bool
	Like      *db.Like
	Match     *db.Match
}

// Ledger records like/pass facts and detects mutual matches.
//
// Match creation is race-safe without locks: the match ID is a pure function
// of the pair, and the insert uses ON CONFLICT DO NOTHING, so two concurrent
// symmetric likes still produce exactly one match row.
type Ledger struct {
	appCtx    *app.AppContext
	userRepo  *repository.UserRepository
	likeRepo  *repository.LikeRepository
	matchRepo *repository.MatchRepository
}

// NewLedger creates a Ledger with repositories from AppContext.
func NewLedger(appCtx *app.AppContext) *Ledger {
	return &Ledger{
		appCtx:    appCtx,
		userRepo:  repository.NewUserRepository(appCtx.DB),
		likeRepo:  repository.NewLikeRepository(appCtx.DB),
		matchRepo: repository.NewMatchRepository(appCtx.DB),
	}
}

// RecordSwipe persists a like/pass from actor to target.
//
// Behavior:
//   - actor == target is rejected with ErrSelfSwipe; both users must exist.
//   - A second swipe on the same ordered pair is a no-op success reporting
//     Duplicate (at-most-once per pair).
//   - On a LIKE, a pre-existing reverse LIKE creates an ACTIVE match, unless
//     the match already exists.
func (l *Ledger) RecordSwipe(ctx context.Context, actorID, targetID uint64, direction db.Direction) (*LikeResult, error) {
	if actorID == targetID {
		return nil, ErrSelfSwipe
	}

	if _, err := l.userRepo.GetByID(ctx, actorID); err != nil {
		return nil, resolveErr(err)
	}
	if _, err := l.userRepo.GetByID(ctx, targetID); err != nil {
		return nil, resolveErr(err)
	}

	like := db.NewLike(actorID, targetID, direction)
	persisted, err := l.likeRepo.Create(ctx, like)
	if err != nil {
		return nil, err
	}
	if !persisted {
		l.appCtx.Logger.Debug("duplicate swipe ignored", "actor", actorID, "target", targetID)
		return &LikeResult{Duplicate: true}, nil
	}

	result := &LikeResult{Persisted: true, Like: like}

	if direction != db.DirectionLike {
		return result, nil
	}

	mutual, err := l.likeRepo.MutualLikeExists(ctx, actorID, targetID)
	if err != nil {
		return nil, err
	}
	if !mutual {
		return result, nil
	}

	matchID := db.MatchID(actorID, targetID)
	exists, err := l.matchRepo.ExistsByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !exists {
		match := db.NewMatch(actorID, targetID)
		created, err := l.matchRepo.Create(ctx, match)
		if err != nil {
			return nil, err
		}
		if created {
			l.appCtx.Logger.Info("match created", "match_id", match.ID, "actor", actorID, "target", targetID)
			result.Match = match
			return result, nil
		}
	}

	// lost the race with the symmetric swipe, the row is already there
	match, err := l.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	result.Match = match
	return result, nil
}

func resolveErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	return err
}
