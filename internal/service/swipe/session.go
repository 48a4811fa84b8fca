package swipe

import (
	"context"
	"time"

	"github.com/kindledapp/kindled/internal/app"
	"github.com/kindledapp/kindled/internal/db"
	"github.com/kindledapp/kindled/internal/repository"
	"github.com/kindledapp/kindled/internal/utils/striped"
)

const lockStripeCount = 256

const (
	blockedReasonLimit  = "Session swipe limit reached. Take a break!"
	velocityWarningText = "Unusually fast swiping detected. Take a moment to review profiles!"
)

// SwipeOutcome is the session-tracking verdict for one swipe. A blocked swipe
// mutates nothing; a velocity warning is advisory and does not block.
type SwipeOutcome struct {
	Allowed       bool
	Session       *db.SwipeSession
	Warning       string
	BlockedReason string
}

// Tracker groups a user's swipes into timed sessions and applies the
// anti-abuse limits.
//
// recordSwipe is a read-modify-write on the session row, so it runs under a
// per-user lock from a fixed pool of stripes. Unrelated users map to
// different stripes and proceed in parallel.
type Tracker struct {
	appCtx      *app.AppContext
	sessionRepo *repository.SessionRepository
	locks       *striped.Locks
}

// NewTracker creates a Tracker with dependencies from AppContext.
func NewTracker(appCtx *app.AppContext) *Tracker {
	return &Tracker{
		appCtx:      appCtx,
		sessionRepo: repository.NewSessionRepository(appCtx.DB),
		locks:       striped.New(lockStripeCount),
	}
}

// RecordSwipe counts one swipe against the user's current session.
//
// Behavior:
//   - Rolls the session over first when the previous one timed out.
//   - At the per-session swipe cap the swipe is blocked and nothing is
//     mutated (backpressure, not an error).
//   - Past the velocity threshold the swipe still succeeds but carries an
//     advisory warning. Velocity is only judged after a minimum number of
//     swipes so short bursts don't trip it.
func (t *Tracker) RecordSwipe(ctx context.Context, userID uint64, direction db.Direction, matched bool) (*SwipeOutcome, error) {
	lock := t.locks.For(userID)
	lock.Lock()
	defer lock.Unlock()

	now := time.Now().UTC()

	session, err := t.getOrCreateSession(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	cfg := t.appCtx.Config.Session

	if session.SwipeCount >= cfg.MaxSwipes {
		t.appCtx.Logger.Info("swipe blocked by session limit", "user", userID, "session", session.ID)
		return &SwipeOutcome{Session: session, BlockedReason: blockedReasonLimit}, nil
	}

	session.RecordSwipe(direction, matched, now)
	if err := t.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}

	warning := ""
	if session.SwipeCount >= cfg.VelocityMinCount && session.SwipesPerMinute(now) > cfg.VelocityPerMin {
		warning = velocityWarningText
		t.appCtx.Logger.Warn("suspicious swipe velocity",
			"user", userID, "session", session.ID, "per_minute", session.SwipesPerMinute(now))
	}

	return &SwipeOutcome{Allowed: true, Session: session, Warning: warning}, nil
}

// RecordMatch bumps the active session's match counter once a match is
// discovered after the swipe. The swipe and match detection are separate
// writes because the match depends on the other party's prior state.
func (t *Tracker) RecordMatch(ctx context.Context, userID uint64) error {
	lock := t.locks.For(userID)
	lock.Lock()
	defer lock.Unlock()

	session, err := t.sessionRepo.GetActiveForUser(ctx, userID)
	if err != nil || session == nil {
		return err
	}
	session.IncrementMatchCount()
	return t.sessionRepo.Save(ctx, session)
}

// EndSession explicitly closes the user's active session, if any.
func (t *Tracker) EndSession(ctx context.Context, userID uint64) error {
	lock := t.locks.For(userID)
	lock.Lock()
	defer lock.Unlock()

	session, err := t.sessionRepo.GetActiveForUser(ctx, userID)
	if err != nil || session == nil {
		return err
	}
	session.End(time.Now().UTC())
	return t.sessionRepo.Save(ctx, session)
}

// CurrentSession returns the user's active session for display, or nil.
func (t *Tracker) CurrentSession(ctx context.Context, userID uint64) (*db.SwipeSession, error) {
	return t.sessionRepo.GetActiveForUser(ctx, userID)
}

// SweepStale ends every session idle past the timeout. Returns the count.
func (t *Tracker) SweepStale(ctx context.Context) (int64, error) {
	return t.sessionRepo.EndStale(ctx, t.appCtx.Config.Session.Timeout, time.Now().UTC())
}

// StartSweeper runs SweepStale on a ticker until ctx is cancelled. Meant to
// run once per process as a background maintenance job.
func (t *Tracker) StartSweeper(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(t.appCtx.Config.Session.SweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				ended, err := t.SweepStale(ctx)
				if err != nil {
					t.appCtx.Logger.Error("stale session sweep failed", "err", err)
					continue
				}
				if ended > 0 {
					t.appCtx.Logger.Debug("ended stale sessions", "count", ended)
				}
			}
		}
	}()
}

// getOrCreateSession returns the user's active session, rolling over a timed
// out one. Caller holds the user's stripe lock.
func (t *Tracker) getOrCreateSession(ctx context.Context, userID uint64, now time.Time) (*db.SwipeSession, error) {
	existing, err := t.sessionRepo.GetActiveForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if !existing.IsTimedOut(t.appCtx.Config.Session.Timeout, now) {
			return existing, nil
		}
		existing.End(now)
		if err := t.sessionRepo.Save(ctx, existing); err != nil {
			return nil, err
		}
	}

	session := db.NewSwipeSession(userID, now)
	if err := t.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
