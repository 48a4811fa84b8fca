package swipe_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kindledapp/kindled/internal/app"
	"github.com/kindledapp/kindled/internal/cache"
	"github.com/kindledapp/kindled/internal/config"
	"github.com/kindledapp/kindled/internal/db"
	"github.com/kindledapp/kindled/internal/repository"
	"github.com/kindledapp/kindled/internal/service/swipe"
)

func setupSwipe(t *testing.T) (*app.AppContext, *miniredis.Miniredis) {
	t.Helper()

	dbName := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	dbase, err := gorm.Open(sqlite.Open(dbName), &gorm.Config{
		NowFunc:                func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	sqlDB, err := dbase.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.Migrate(dbase))

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() { mr.Close() })

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return app.New(dbase, cache.NewRedisCache(cfg), logger, cfg), mr
}

func seedUsers(t *testing.T, appCtx *app.AppContext, ids ...uint64) {
	t.Helper()
	for _, id := range ids {
		u := &db.User{
			ID:           id,
			Username:     fmt.Sprintf("user%d", id),
			Email:        fmt.Sprintf("u%d@test.com", id),
			PasswordHash: "x",
			State:        db.UserStateActive,
		}
		require.NoError(t, appCtx.DB.Create(u).Error)
	}
}

//
// InteractionLedger
//

func TestRecordSwipeRejectsSelf(t *testing.T) {
	ctx := context.Background()
	appCtx, _ := setupSwipe(t)
	ledger := swipe.NewLedger(appCtx)
	seedUsers(t, appCtx, 1)

	_, err := ledger.RecordSwipe(ctx, 1, 1, db.DirectionLike)
	assert.ErrorIs(t, err, swipe.ErrSelfSwipe)
}

func TestRecordSwipeRejectsUnknownUsers(t *testing.T) {
	ctx := context.Background()
	appCtx, _ := setupSwipe(t)
	ledger := swipe.NewLedger(appCtx)
	seedUsers(t, appCtx, 1)

	_, err := ledger.RecordSwipe(ctx, 1, 999, db.DirectionLike)
	assert.ErrorIs(t, err, swipe.ErrUserNotFound)

	_, err = ledger.RecordSwipe(ctx, 999, 1, db.DirectionLike)
	assert.ErrorIs(t, err, swipe.ErrUserNotFound)
}

func TestRecordSwipeIdempotent(t *testing.T) {
	ctx := context.Background()
	appCtx, _ := setupSwipe(t)
	ledger := swipe.NewLedger(appCtx)
	seedUsers(t, appCtx, 1, 2)

	first, err := ledger.RecordSwipe(ctx, 1, 2, db.DirectionLike)
	require.NoError(t, err)
	assert.True(t, first.Persisted)
	assert.False(t, first.Duplicate)

	second, err := ledger.RecordSwipe(ctx, 1, 2, db.DirectionLike)
	require.NoError(t, err)
	assert.False(t, second.Persisted)
	assert.True(t, second.Duplicate)

	var count int64
	require.NoError(t, appCtx.DB.Model(&db.Like{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestMutualLikeCreatesOneMatch(t *testing.T) {
	ctx := context.Background()
	appCtx, _ := setupSwipe(t)
	ledger := swipe.NewLedger(appCtx)
	seedUsers(t, appCtx, 7, 3)

	first, err := ledger.RecordSwipe(ctx, 7, 3, db.DirectionLike)
	require.NoError(t, err)
	assert.Nil(t, first.Match)

	second, err := ledger.RecordSwipe(ctx, 3, 7, db.DirectionLike)
	require.NoError(t, err)
	require.NotNil(t, second.Match)
	assert.Equal(t, "3_7", second.Match.ID)
	assert.Equal(t, db.MatchStateActive, second.Match.State)

	var count int64
	require.NoError(t, appCtx.DB.Model(&db.Match{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestMatchIDIndependentOfOrder(t *testing.T) {
	ctx := context.Background()
	appCtx, _ := setupSwipe(t)
	ledger := swipe.NewLedger(appCtx)
	seedUsers(t, appCtx, 7, 3)

	// reversed like order from the test above yields the same identity
	_, err := ledger.RecordSwipe(ctx, 3, 7, db.DirectionLike)
	require.NoError(t, err)
	result, err := ledger.RecordSwipe(ctx, 7, 3, db.DirectionLike)
	require.NoError(t, err)

	require.NotNil(t, result.Match)
	assert.Equal(t, db.MatchID(7, 3), result.Match.ID)
	assert.Equal(t, "3_7", result.Match.ID)
}

func TestPassDoesNotCreateMatch(t *testing.T) {
	ctx := context.Background()
	appCtx, _ := setupSwipe(t)
	ledger := swipe.NewLedger(appCtx)
	seedUsers(t, appCtx, 1, 2)

	_, err := ledger.RecordSwipe(ctx, 1, 2, db.DirectionLike)
	require.NoError(t, err)

	result, err := ledger.RecordSwipe(ctx, 2, 1, db.DirectionPass)
	require.NoError(t, err)
	assert.True(t, result.Persisted)
	assert.Nil(t, result.Match)
}

//
// SwipeSessionTracker
//

func TestSessionSwipeCapBoundary(t *testing.T) {
	ctx := context.Background()
	appCtx, _ := setupSwipe(t)
	appCtx.Config.Session.MaxSwipes = 3
	tracker := swipe.NewTracker(appCtx)

	// swipes up to and including the cap succeed
	for i := 0; i < 3; i++ {
		outcome, err := tracker.RecordSwipe(ctx, 1, db.DirectionLike, false)
		require.NoError(t, err)
		assert.True(t, outcome.Allowed)
	}

	// the next one is blocked and mutates nothing
	outcome, err := tracker.RecordSwipe(ctx, 1, db.DirectionPass, false)
	require.NoError(t, err)
	assert.False(t, outcome.Allowed)
	assert.NotEmpty(t, outcome.BlockedReason)
	assert.Equal(t, 3, outcome.Session.SwipeCount)
	assert.Equal(t, 0, outcome.Session.PassCount)
}

func TestSessionTimeoutRollsOver(t *testing.T) {
	ctx := context.Background()
	appCtx, _ := setupSwipe(t)
	tracker := swipe.NewTracker(appCtx)

	outcome, err := tracker.RecordSwipe(ctx, 1, db.DirectionLike, false)
	require.NoError(t, err)
	firstID := outcome.Session.ID

	// push the session past the inactivity timeout
	stale := time.Now().UTC().Add(-appCtx.Config.Session.Timeout - time.Minute)
	require.NoError(t, appCtx.DB.Model(&db.SwipeSession{}).
		Where("id = ?", firstID).
		Updates(map[string]interface{}{"last_activity_at": stale, "started_at": stale}).Error)

	outcome, err = tracker.RecordSwipe(ctx, 1, db.DirectionLike, false)
	require.NoError(t, err)
	assert.NotEqual(t, firstID, outcome.Session.ID)
	assert.Equal(t, 1, outcome.Session.SwipeCount)

	// the old session was closed
	var old db.SwipeSession
	require.NoError(t, appCtx.DB.First(&old, "id = ?", firstID).Error)
	assert.Equal(t, db.SessionStateEnded, old.State)
}

func TestSessionVelocityWarning(t *testing.T) {
	ctx := context.Background()
	appCtx, _ := setupSwipe(t)
	appCtx.Config.Session.VelocityMinCount = 2
	appCtx.Config.Session.VelocityPerMin = 0.5
	tracker := swipe.NewTracker(appCtx)

	outcome, err := tracker.RecordSwipe(ctx, 1, db.DirectionLike, false)
	require.NoError(t, err)
	assert.Empty(t, outcome.Warning) // below the minimum count

	outcome, err = tracker.RecordSwipe(ctx, 1, db.DirectionLike, false)
	require.NoError(t, err)
	assert.True(t, outcome.Allowed) // advisory only
	assert.NotEmpty(t, outcome.Warning)
}

func TestSessionCounters(t *testing.T) {
	ctx := context.Background()
	appCtx, _ := setupSwipe(t)
	tracker := swipe.NewTracker(appCtx)

	_, err := tracker.RecordSwipe(ctx, 1, db.DirectionLike, false)
	require.NoError(t, err)
	_, err = tracker.RecordSwipe(ctx, 1, db.DirectionPass, false)
	require.NoError(t, err)
	outcome, err := tracker.RecordSwipe(ctx, 1, db.DirectionLike, true)
	require.NoError(t, err)

	s := outcome.Session
	assert.Equal(t, 3, s.SwipeCount)
	assert.Equal(t, 2, s.LikeCount)
	assert.Equal(t, 1, s.PassCount)
	assert.Equal(t, 1, s.MatchCount)
	assert.Equal(t, s.SwipeCount, s.LikeCount+s.PassCount)
}

func TestRecordMatchAfterSwipe(t *testing.T) {
	ctx := context.Background()
	appCtx, _ := setupSwipe(t)
	tracker := swipe.NewTracker(appCtx)

	_, err := tracker.RecordSwipe(ctx, 1, db.DirectionLike, false)
	require.NoError(t, err)

	require.NoError(t, tracker.RecordMatch(ctx, 1))

	session, err := tracker.CurrentSession(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, 1, session.MatchCount)

	// the counter never exceeds the like count
	require.NoError(t, tracker.RecordMatch(ctx, 1))
	session, err = tracker.CurrentSession(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, session.MatchCount)
}

func TestEndSession(t *testing.T) {
	ctx := context.Background()
	appCtx, _ := setupSwipe(t)
	tracker := swipe.NewTracker(appCtx)

	_, err := tracker.RecordSwipe(ctx, 1, db.DirectionLike, false)
	require.NoError(t, err)

	require.NoError(t, tracker.EndSession(ctx, 1))

	session, err := tracker.CurrentSession(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, session)

	// ending with no active session is a no-op
	require.NoError(t, tracker.EndSession(ctx, 1))
}

func TestConcurrentSwipesSameUser(t *testing.T) {
	ctx := context.Background()
	appCtx, _ := setupSwipe(t)
	tracker := swipe.NewTracker(appCtx)

	done := make(chan error, 10)
	for i := 0; i < 10; i++ {
		go func() {
			_, err := tracker.RecordSwipe(ctx, 1, db.DirectionLike, false)
			done <- err
		}()
	}
	for i := 0; i < 10; i++ {
		require.NoError(t, <-done)
	}

	session, err := tracker.CurrentSession(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, 10, session.SwipeCount)
}

//
// UndoCoordinator
//

func TestUndoRoundTrip(t *testing.T) {
	ctx := context.Background()
	appCtx, _ := setupSwipe(t)
	ledger := swipe.NewLedger(appCtx)
	undo := swipe.NewCoordinator(appCtx)
	seedUsers(t, appCtx, 1, 2)

	_, err := ledger.RecordSwipe(ctx, 2, 1, db.DirectionLike)
	require.NoError(t, err)
	result, err := ledger.RecordSwipe(ctx, 1, 2, db.DirectionLike)
	require.NoError(t, err)
	require.NotNil(t, result.Match)

	require.NoError(t, undo.RecordSwipe(ctx, 1, result.Like, result.Match))

	can, err := undo.CanUndo(ctx, 1)
	require.NoError(t, err)
	assert.True(t, can)

	secs, err := undo.SecondsRemaining(ctx, 1)
	require.NoError(t, err)
	assert.Greater(t, secs, int64(0))

	outcome, err := undo.Undo(ctx, 1)
	require.NoError(t, err)
	assert.True(t, outcome.Success)
	assert.True(t, outcome.MatchRemoved)

	// both the like and the match are gone
	likes := repository.NewLikeRepository(appCtx.DB)
	exists, err := likes.Exists(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, exists)

	matches := repository.NewMatchRepository(appCtx.DB)
	exists, err = matches.ExistsByID(ctx, result.Match.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	// target's like toward user 1 survives the undo
	exists, err = likes.Exists(ctx, 2, 1)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUndoNothingToUndo(t *testing.T) {
	ctx := context.Background()
	appCtx, _ := setupSwipe(t)
	undo := swipe.NewCoordinator(appCtx)

	outcome, err := undo.Undo(ctx, 1)
	require.NoError(t, err)
	assert.False(t, outcome.Success)
	assert.Equal(t, "No swipe to undo", outcome.Message)
}

func TestUndoOnlyOnce(t *testing.T) {
	ctx := context.Background()
	appCtx, _ := setupSwipe(t)
	ledger := swipe.NewLedger(appCtx)
	undo := swipe.NewCoordinator(appCtx)
	seedUsers(t, appCtx, 1, 2)

	result, err := ledger.RecordSwipe(ctx, 1, 2, db.DirectionPass)
	require.NoError(t, err)
	require.NoError(t, undo.RecordSwipe(ctx, 1, result.Like, nil))

	outcome, err := undo.Undo(ctx, 1)
	require.NoError(t, err)
	assert.True(t, outcome.Success)
	assert.False(t, outcome.MatchRemoved)

	outcome, err = undo.Undo(ctx, 1)
	require.NoError(t, err)
	assert.False(t, outcome.Success)
}

func TestUndoWindowExpires(t *testing.T) {
	ctx := context.Background()
	appCtx, mr := setupSwipe(t)
	ledger := swipe.NewLedger(appCtx)
	undo := swipe.NewCoordinator(appCtx)
	seedUsers(t, appCtx, 1, 2)

	result, err := ledger.RecordSwipe(ctx, 1, 2, db.DirectionLike)
	require.NoError(t, err)
	require.NoError(t, undo.RecordSwipe(ctx, 1, result.Like, nil))

	mr.FastForward(appCtx.Config.Undo.Window + time.Second)

	can, err := undo.CanUndo(ctx, 1)
	require.NoError(t, err)
	assert.False(t, can)

	outcome, err := undo.Undo(ctx, 1)
	require.NoError(t, err)
	assert.False(t, outcome.Success)

	// the like stays on record
	likes := repository.NewLikeRepository(appCtx.DB)
	exists, err := likes.Exists(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestNewSwipeOverwritesUndoState(t *testing.T) {
	ctx := context.Background()
	appCtx, _ := setupSwipe(t)
	ledger := swipe.NewLedger(appCtx)
	undo := swipe.NewCoordinator(appCtx)
	seedUsers(t, appCtx, 1, 2, 3)

	first, err := ledger.RecordSwipe(ctx, 1, 2, db.DirectionLike)
	require.NoError(t, err)
	require.NoError(t, undo.RecordSwipe(ctx, 1, first.Like, nil))

	second, err := ledger.RecordSwipe(ctx, 1, 3, db.DirectionLike)
	require.NoError(t, err)
	require.NoError(t, undo.RecordSwipe(ctx, 1, second.Like, nil))

	outcome, err := undo.Undo(ctx, 1)
	require.NoError(t, err)
	assert.True(t, outcome.Success)

	// only the most recent swipe was reverted
	likes := repository.NewLikeRepository(appCtx.DB)
	exists, err := likes.Exists(ctx, 1, 3)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = likes.Exists(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, exists)
}
