package swipe

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/kindledapp/kindled/internal/app"
	"github.com/kindledapp/kindled/internal/db"
	"github.com/kindledapp/kindled/internal/repository"
)

// undoState is the single most recent undoable swipe for a user, stored as
// JSON in Redis under undo:state:<userID>. The key TTL matches the undo
// window, so expiry needs no sweeper; ExpiresAt is still recorded for the
// seconds-remaining display.
type undoState struct {
	LikeID    string       `json:"like_id"`
	ActorID   uint64       `json:"actor_id"`
	TargetID  uint64       `json:"target_id"`
	Direction db.Direction `json:"direction"`
	MatchID   string       `json:"match_id,omitempty"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// UndoOutcome reports an undo attempt. Business rejections (nothing to undo,
// window expired) come back as Success=false with a message; storage failures
// surface as errors and leave the state untouched for retry.
type UndoOutcome struct {
	Success      bool
	Message      string
	MatchRemoved bool
}

// Coordinator tracks the last swipe per user and reverses it on request,
// within the configured window. Undo stack depth is exactly one: every new
// swipe overwrites the previous state.
type Coordinator struct {
	appCtx *app.AppContext
}

// NewCoordinator creates an undo Coordinator from AppContext.
func NewCoordinator(appCtx *app.AppContext) *Coordinator {
	return &Coordinator{appCtx: appCtx}
}

// RecordSwipe stores the swipe as the user's undoable action, replacing any
// prior one.
func (c *Coordinator) RecordSwipe(ctx context.Context, userID uint64, like *db.Like, match *db.Match) error {
	window := c.appCtx.Config.Undo.Window
	state := undoState{
		LikeID:    like.ID,
		ActorID:   like.ActorID,
		TargetID:  like.TargetID,
		Direction: like.Direction,
		ExpiresAt: time.Now().UTC().Add(window),
	}
	if match != nil {
		state.MatchID = match.ID
	}

	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}
	key := c.appCtx.RedisCache.KeyForUndoState(userID)
	return c.appCtx.RedisCache.Set(ctx, key, payload, window)
}

// CanUndo reports whether the user has an unexpired undoable swipe.
func (c *Coordinator) CanUndo(ctx context.Context, userID uint64) (bool, error) {
	state, err := c.loadState(ctx, userID)
	if err != nil {
		return false, err
	}
	return state != nil, nil
}

// SecondsRemaining returns how long the current undo window stays open,
// zero when there is nothing to undo.
func (c *Coordinator) SecondsRemaining(ctx context.Context, userID uint64) (int64, error) {
	state, err := c.loadState(ctx, userID)
	if err != nil || state == nil {
		return 0, err
	}
	secs := int64(time.Until(state.ExpiresAt).Seconds())
	if secs < 0 {
		return 0, nil
	}
	return secs, nil
}

// Undo reverses the user's most recent swipe: the like row and, when the
// swipe created a match, the match row vanish in one transaction. The state
// is cleared only after the delete succeeds, so a failed attempt can be
// retried.
func (c *Coordinator) Undo(ctx context.Context, userID uint64) (*UndoOutcome, error) {
	key := c.appCtx.RedisCache.KeyForUndoState(userID)

	state, err := c.loadState(ctx, userID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return &UndoOutcome{Message: "No swipe to undo"}, nil
	}

	err = repository.UndoDelete(ctx, c.appCtx.DB, state.LikeID, state.MatchID)
	if errors.Is(err, repository.ErrLikeNotFound) {
		// the like is already gone, drop the dangling state
		_ = c.appCtx.RedisCache.Del(ctx, key)
		return &UndoOutcome{Message: "No swipe to undo"}, nil
	}
	if err != nil {
		return nil, err
	}

	if err := c.appCtx.RedisCache.Del(ctx, key); err != nil {
		return nil, err
	}

	c.appCtx.Logger.Info("swipe undone",
		"user", userID, "like_id", state.LikeID, "match_removed", state.MatchID != "")

	return &UndoOutcome{Success: true, MatchRemoved: state.MatchID != ""}, nil
}

// loadState fetches and decodes the user's undo state. Returns nil when the
// key is absent or past expiry (the TTL normally handles expiry; the explicit
// check covers clock skew between writer and Redis).
func (c *Coordinator) loadState(ctx context.Context, userID uint64) (*undoState, error) {
	key := c.appCtx.RedisCache.KeyForUndoState(userID)
	raw, err := c.appCtx.RedisCache.GetOrNil(ctx, key)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	var state undoState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		_ = c.appCtx.RedisCache.Del(ctx, key)
		return nil, nil
	}
	if time.Now().UTC().After(state.ExpiresAt) {
		_ = c.appCtx.RedisCache.Del(ctx, key)
		return nil, nil
	}
	return &state, nil
}
