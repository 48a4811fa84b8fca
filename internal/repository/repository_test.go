package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/kindledapp/kindled/internal/db"
	"github.com/kindledapp/kindled/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setup in-memory DB
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.Migrate(database); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return database
}

func TestLikeCreateIsImmutable(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewLikeRepository(dbase)

	// first swipe persists
	persisted, err := repo.Create(ctx, db.NewLike(1, 2, db.DirectionLike))
	assert.NoError(t, err)
	assert.True(t, persisted)

	// second swipe on the same pair changes nothing, even with the
	// opposite direction
	persisted, err = repo.Create(ctx, db.NewLike(1, 2, db.DirectionPass))
	assert.NoError(t, err)
	assert.False(t, persisted)

	like, err := repo.Get(ctx, 1, 2)
	assert.NoError(t, err)
	assert.Equal(t, db.DirectionLike, like.Direction)
}

func TestMutualLikeExists(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewLikeRepository(dbase)

	_, _ = repo.Create(ctx, db.NewLike(1, 2, db.DirectionLike))

	// no reverse like yet
	mutual, err := repo.MutualLikeExists(ctx, 1, 2)
	assert.NoError(t, err)
	assert.False(t, mutual)

	_, _ = repo.Create(ctx, db.NewLike(2, 1, db.DirectionLike))

	mutual, err = repo.MutualLikeExists(ctx, 1, 2)
	assert.NoError(t, err)
	assert.True(t, mutual)

	// a PASS in the reverse direction is not mutual
	_, _ = repo.Create(ctx, db.NewLike(3, 4, db.DirectionLike))
	_, _ = repo.Create(ctx, db.NewLike(4, 3, db.DirectionPass))
	mutual, err = repo.MutualLikeExists(ctx, 3, 4)
	assert.NoError(t, err)
	assert.False(t, mutual)
}

func TestLikedOrPassedIDs(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewLikeRepository(dbase)

	_, _ = repo.Create(ctx, db.NewLike(1, 2, db.DirectionLike))
	_, _ = repo.Create(ctx, db.NewLike(1, 3, db.DirectionPass))
	_, _ = repo.Create(ctx, db.NewLike(4, 1, db.DirectionLike))

	ids, err := repo.LikedOrPassedIDs(ctx, 1)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []uint64{2, 3}, ids)
}

func TestCountLikersOf(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewLikeRepository(dbase)

	_, _ = repo.Create(ctx, db.NewLike(1, 99, db.DirectionLike))
	_, _ = repo.Create(ctx, db.NewLike(2, 99, db.DirectionLike))
	_, _ = repo.Create(ctx, db.NewLike(3, 99, db.DirectionPass))

	count, err := repo.CountLikersOf(ctx, 99)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestMatchCreateIdempotent(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewMatchRepository(dbase)

	created, err := repo.Create(ctx, db.NewMatch(7, 3))
	assert.NoError(t, err)
	assert.True(t, created)

	// same pair in either argument order maps to the same row
	created, err = repo.Create(ctx, db.NewMatch(3, 7))
	assert.NoError(t, err)
	assert.False(t, created)

	var count int64
	_ = dbase.Model(&db.Match{}).Count(&count).Error
	assert.Equal(t, int64(1), count)
}

func TestListActiveForUserPagination(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewMatchRepository(dbase)

	// user 1 matched with 2, 3, 4 at distinct times
	for i, other := range []uint64{2, 3, 4} {
		m := db.NewMatch(1, other)
		m.CreatedAt = time.Now().UTC().Truncate(time.Millisecond).Add(time.Duration(i) * time.Second)
		require.NoError(t, dbase.Create(m).Error)
	}
	// an ended match never shows up
	ended := db.NewMatch(1, 5)
	ended.State = db.MatchStateUnmatched
	require.NoError(t, dbase.Create(ended).Error)

	page1, token, err := repo.ListActiveForUser(ctx, 1, nil, 2)
	assert.NoError(t, err)
	assert.Len(t, page1, 2)
	require.NotNil(t, token)
	// newest first
	assert.Equal(t, uint64(4), page1[0].OtherUser(1))

	page2, token2, err := repo.ListActiveForUser(ctx, 1, token, 2)
	assert.NoError(t, err)
	assert.Len(t, page2, 1)
	assert.Nil(t, token2)
	assert.Equal(t, uint64(2), page2[0].OtherUser(1))
}

func TestActiveMatchedUserIDs(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewMatchRepository(dbase)

	_, _ = repo.Create(ctx, db.NewMatch(1, 2))
	_, _ = repo.Create(ctx, db.NewMatch(9, 1))

	ids, err := repo.ActiveMatchedUserIDs(ctx, 1)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []uint64{2, 9}, ids)
}

func TestSessionEndStale(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewSessionRepository(dbase)

	now := time.Now().UTC().Truncate(time.Millisecond)

	stale := db.NewSwipeSession(1, now.Add(-10*time.Minute))
	fresh := db.NewSwipeSession(2, now.Add(-1*time.Minute))
	require.NoError(t, repo.Save(ctx, stale))
	require.NoError(t, repo.Save(ctx, fresh))

	ended, err := repo.EndStale(ctx, 5*time.Minute, now)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), ended)

	// stale session is gone from the active lookup, fresh survives
	got, err := repo.GetActiveForUser(ctx, 1)
	assert.NoError(t, err)
	assert.Nil(t, got)

	got, err = repo.GetActiveForUser(ctx, 2)
	assert.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, db.SessionStateActive, got.State)
}

func TestGetActiveForUserWithoutSessions(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewSessionRepository(dbase)

	// a user who has never swiped yields no session and no error
	got, err := repo.GetActiveForUser(ctx, 42)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestBlockIsBidirectional(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewBlockRepository(dbase)

	require.NoError(t, dbase.Create(&db.Block{BlockerID: 1, BlockedID: 2}).Error)

	blocked, err := repo.IsBlocked(ctx, 1, 2)
	assert.NoError(t, err)
	assert.True(t, blocked)

	// order of arguments does not matter
	blocked, err = repo.IsBlocked(ctx, 2, 1)
	assert.NoError(t, err)
	assert.True(t, blocked)

	ids, err := repo.BlockedUserIDs(ctx, 2)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []uint64{1}, ids)
}

func TestUndoDelete(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	likes := repository.NewLikeRepository(dbase)
	matches := repository.NewMatchRepository(dbase)

	like := db.NewLike(1, 2, db.DirectionLike)
	_, err := likes.Create(ctx, like)
	require.NoError(t, err)
	match := db.NewMatch(1, 2)
	_, err = matches.Create(ctx, match)
	require.NoError(t, err)

	require.NoError(t, repository.UndoDelete(ctx, dbase, like.ID, match.ID))

	exists, _ := likes.Exists(ctx, 1, 2)
	assert.False(t, exists)
	exists, _ = matches.ExistsByID(ctx, match.ID)
	assert.False(t, exists)

	// undoing again fails: the like is already gone
	err = repository.UndoDelete(ctx, dbase, like.ID, match.ID)
	assert.ErrorIs(t, err, repository.ErrLikeNotFound)
}

func TestUndoDeleteWithoutMatch(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	likes := repository.NewLikeRepository(dbase)

	like := db.NewLike(1, 2, db.DirectionPass)
	_, err := likes.Create(ctx, like)
	require.NoError(t, err)

	require.NoError(t, repository.UndoDelete(ctx, dbase, like.ID, ""))

	exists, _ := likes.Exists(ctx, 1, 2)
	assert.False(t, exists)
}
