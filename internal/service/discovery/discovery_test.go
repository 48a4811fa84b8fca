package discovery_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
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
	"github.com/kindledapp/kindled/internal/service/discovery"
)

//
// Test helpers
//

// setupAppCtx spins up an in-memory SQLite DB, applies migrations, starts a
// miniredis, and wires everything into an AppContext.
//
// Each test gets its own isolated DB + Redis.
func setupAppCtx(t *testing.T) *app.AppContext {
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

	redisCache := cache.NewRedisCache(cfg)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil)) // discard logs in tests

	return app.New(dbase, redisCache, logger, cfg)
}

// testUser builds an ACTIVE user with sensible defaults: age 30, straight
// pairing fields left to the caller, wide age range, 50km radius.
func testUser(id uint64, gender string, interestedIn []string, lat, lon float64) *db.User {
	birth := time.Now().UTC().AddDate(-30, 0, -1)
	return &db.User{
		ID:            id,
		Username:      fmt.Sprintf("user%d", id),
		Email:         fmt.Sprintf("u%d@test.com", id),
		PasswordHash:  "x",
		State:         db.UserStateActive,
		Gender:        gender,
		InterestedIn:  interestedIn,
		BirthDate:     &birth,
		Lat:           &lat,
		Lon:           &lon,
		MaxDistanceKm: 50,
		MinAge:        18,
		MaxAge:        99,
	}
}

func mustCreate(t *testing.T, appCtx *app.AppContext, users ...*db.User) {
	t.Helper()
	for _, u := range users {
		require.NoError(t, appCtx.DB.Create(u).Error)
	}
}

//
// CandidateFinder
//

func TestFindCandidatesPipeline(t *testing.T) {
	ctx := context.Background()
	appCtx := setupAppCtx(t)
	finder := discovery.NewFinder(appCtx)

	seeker := testUser(1, "male", []string{"female"}, 0, 0)
	near := testUser(2, "female", []string{"male"}, 0, 0.01)
	far := testUser(3, "female", []string{"male"}, 0, 0.4) // ~44km, outside 10km
	wrongGender := testUser(4, "male", []string{"female"}, 0, 0.01)
	notInterested := testUser(5, "female", []string{"female"}, 0, 0.01)
	swiped := testUser(6, "female", []string{"male"}, 0, 0.01)
	blocked := testUser(7, "female", []string{"male"}, 0, 0.01)
	paused := testUser(8, "female", []string{"male"}, 0, 0.01)
	paused.State = db.UserStatePaused

	seeker.MaxDistanceKm = 10
	mustCreate(t, appCtx, seeker, near, far, wrongGender, notInterested, swiped, blocked, paused)

	require.NoError(t, appCtx.DB.Create(db.NewLike(1, 6, db.DirectionPass)).Error)
	require.NoError(t, appCtx.DB.Create(&db.Block{BlockerID: 7, BlockedID: 1}).Error)

	candidates, err := finder.FindCandidates(ctx, seeker)
	require.NoError(t, err)

	require.Len(t, candidates, 1)
	assert.Equal(t, uint64(2), candidates[0].User.ID)
	require.NotNil(t, candidates[0].DistanceKm)
	assert.Less(t, *candidates[0].DistanceKm, 2.0)
}

func TestFindCandidatesDistanceScenario(t *testing.T) {
	ctx := context.Background()
	appCtx := setupAppCtx(t)
	finder := discovery.NewFinder(appCtx)

	seeker := testUser(1, "male", []string{"female"}, 0, 0)
	seeker.MaxDistanceKm = 10
	atTwentyTwoKm := testUser(2, "female", []string{"male"}, 0, 0.2)
	atFiveKm := testUser(3, "female", []string{"male"}, 0, 0.05)
	atNineKm := testUser(4, "female", []string{"male"}, 0, 0.08)
	mustCreate(t, appCtx, seeker, atTwentyTwoKm, atFiveKm, atNineKm)

	candidates, err := finder.FindCandidates(ctx, seeker)
	require.NoError(t, err)

	// 0.2 deg (~22km) excluded; nearer candidate ranked first
	require.Len(t, candidates, 2)
	assert.Equal(t, uint64(3), candidates[0].User.ID)
	assert.Equal(t, uint64(4), candidates[1].User.ID)
}

func TestFindCandidatesMissingLocationSortsLast(t *testing.T) {
	ctx := context.Background()
	appCtx := setupAppCtx(t)
	finder := discovery.NewFinder(appCtx)

	seeker := testUser(1, "male", []string{"female"}, 0, 0)
	located := testUser(2, "female", []string{"male"}, 0, 0.1)
	noLocation := testUser(3, "female", []string{"male"}, 0, 0)
	noLocation.Lat, noLocation.Lon = nil, nil
	mustCreate(t, appCtx, seeker, located, noLocation)

	candidates, err := finder.FindCandidates(ctx, seeker)
	require.NoError(t, err)

	// missing location skips the distance filter but sorts after located users
	require.Len(t, candidates, 2)
	assert.Equal(t, uint64(2), candidates[0].User.ID)
	assert.Equal(t, uint64(3), candidates[1].User.ID)
	assert.Nil(t, candidates[1].DistanceKm)
}

func TestFindCandidatesMutualAge(t *testing.T) {
	ctx := context.Background()
	appCtx := setupAppCtx(t)
	finder := discovery.NewFinder(appCtx)

	seeker := testUser(1, "male", []string{"female"}, 0, 0)
	// candidate is in seeker's range, but seeker is outside the candidate's
	tooPicky := testUser(2, "female", []string{"male"}, 0, 0.01)
	tooPicky.MinAge = 40
	tooPicky.MaxAge = 50
	ok := testUser(3, "female", []string{"male"}, 0, 0.01)
	mustCreate(t, appCtx, seeker, tooPicky, ok)

	candidates, err := finder.FindCandidates(ctx, seeker)
	require.NoError(t, err)

	require.Len(t, candidates, 1)
	assert.Equal(t, uint64(3), candidates[0].User.ID)
}

func TestFindCandidatesEmptyIsNotAnError(t *testing.T) {
	ctx := context.Background()
	appCtx := setupAppCtx(t)
	finder := discovery.NewFinder(appCtx)

	seeker := testUser(1, "male", []string{"female"}, 0, 0)
	mustCreate(t, appCtx, seeker)

	candidates, err := finder.FindCandidates(ctx, seeker)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

//
// Dealbreakers
//

func TestDealbreakersUnsetAlwaysPasses(t *testing.T) {
	seeker := testUser(1, "male", []string{"female"}, 0, 0)
	candidate := testUser(2, "female", []string{"male"}, 0, 0)

	assert.True(t, discovery.PassesDealbreakers(seeker, candidate))
}

func TestDealbreakersMissingAttributeFails(t *testing.T) {
	seeker := testUser(1, "male", []string{"female"}, 0, 0)
	seeker.Dealbreakers = db.Dealbreakers{
		AcceptableSmoking: []db.Smoking{db.SmokingNever},
	}

	// candidate never answered the smoking question
	unanswered := testUser(2, "female", []string{"male"}, 0, 0)
	assert.False(t, discovery.PassesDealbreakers(seeker, unanswered))

	nonSmoker := testUser(3, "female", []string{"male"}, 0, 0)
	nonSmoker.Smoking = db.SmokingNever
	assert.True(t, discovery.PassesDealbreakers(seeker, nonSmoker))

	smoker := testUser(4, "female", []string{"male"}, 0, 0)
	smoker.Smoking = db.SmokingRegularly
	assert.False(t, discovery.PassesDealbreakers(seeker, smoker))
}

func TestDealbreakersMissingHeightPasses(t *testing.T) {
	minH := 170
	seeker := testUser(1, "male", []string{"female"}, 0, 0)
	seeker.Dealbreakers = db.Dealbreakers{MinHeightCm: &minH}

	// height is optional profile data, unset does not exclude
	noHeight := testUser(2, "female", []string{"male"}, 0, 0)
	assert.True(t, discovery.PassesDealbreakers(seeker, noHeight))

	short := 160
	tooShort := testUser(3, "female", []string{"male"}, 0, 0)
	tooShort.HeightCm = &short
	assert.False(t, discovery.PassesDealbreakers(seeker, tooShort))
}

func TestDealbreakersMaxAgeDifference(t *testing.T) {
	maxDiff := 3
	seeker := testUser(1, "male", []string{"female"}, 0, 0)
	seeker.Dealbreakers = db.Dealbreakers{MaxAgeDifference: &maxDiff}

	closeAge := testUser(2, "female", []string{"male"}, 0, 0)
	assert.True(t, discovery.PassesDealbreakers(seeker, closeAge))

	older := testUser(3, "female", []string{"male"}, 0, 0)
	olderBirth := time.Now().UTC().AddDate(-40, 0, -1)
	older.BirthDate = &olderBirth
	assert.False(t, discovery.PassesDealbreakers(seeker, older))
}

//
// DailyPickSelector
//

func TestDailyPickDeterministic(t *testing.T) {
	ctx := context.Background()
	appCtx := setupAppCtx(t)
	finder := discovery.NewFinder(appCtx)
	selector := discovery.NewPickSelector(appCtx, finder)

	seeker := testUser(1, "male", []string{"female"}, 0, 0)
	mustCreate(t, appCtx, seeker,
		testUser(2, "female", []string{"male"}, 0, 0.01),
		testUser(3, "female", []string{"male"}, 0, 0.02),
		testUser(4, "female", []string{"male"}, 0, 0.03),
	)

	first, err := selector.GetDailyPick(ctx, seeker)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := selector.GetDailyPick(ctx, seeker)
	require.NoError(t, err)
	require.NotNil(t, second)

	assert.Equal(t, first.Candidate.ID, second.Candidate.ID)
	assert.Equal(t, first.Reason, second.Reason)
	assert.NotEmpty(t, first.Reason)
}

func TestDailyPickEmptyCandidateSet(t *testing.T) {
	ctx := context.Background()
	appCtx := setupAppCtx(t)
	selector := discovery.NewPickSelector(appCtx, discovery.NewFinder(appCtx))

	seeker := testUser(1, "male", []string{"female"}, 0, 0)
	mustCreate(t, appCtx, seeker)

	pick, err := selector.GetDailyPick(ctx, seeker)
	require.NoError(t, err)
	assert.Nil(t, pick)
}

func TestDailyPickStaleCacheSelfRepair(t *testing.T) {
	ctx := context.Background()
	appCtx := setupAppCtx(t)
	selector := discovery.NewPickSelector(appCtx, discovery.NewFinder(appCtx))

	seeker := testUser(1, "male", []string{"female"}, 0, 0)
	candidate := testUser(2, "female", []string{"male"}, 0, 0.01)
	mustCreate(t, appCtx, seeker, candidate)

	// simulate a cached pick who is no longer eligible
	day := time.Now().UTC().Format("2006-01-02")
	key := appCtx.RedisCache.KeyForDailyPick(seeker.ID, day)
	require.NoError(t, appCtx.RedisCache.Set(ctx, key, "999", time.Hour))

	pick, err := selector.GetDailyPick(ctx, seeker)
	require.NoError(t, err)
	require.NotNil(t, pick)
	assert.Equal(t, uint64(2), pick.Candidate.ID)

	// the repaired value was re-cached
	cached, err := appCtx.RedisCache.GetOrNil(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, strconv.FormatUint(pick.Candidate.ID, 10), cached)
}

func TestDailyPickViewedFlag(t *testing.T) {
	ctx := context.Background()
	appCtx := setupAppCtx(t)
	selector := discovery.NewPickSelector(appCtx, discovery.NewFinder(appCtx))

	seeker := testUser(1, "male", []string{"female"}, 0, 0)
	mustCreate(t, appCtx, seeker, testUser(2, "female", []string{"male"}, 0, 0.01))

	pick, err := selector.GetDailyPick(ctx, seeker)
	require.NoError(t, err)
	require.NotNil(t, pick)
	assert.False(t, pick.AlreadySeen)

	// marking is idempotent
	require.NoError(t, selector.MarkViewed(ctx, seeker.ID))
	require.NoError(t, selector.MarkViewed(ctx, seeker.ID))

	pick, err = selector.GetDailyPick(ctx, seeker)
	require.NoError(t, err)
	require.NotNil(t, pick)
	assert.True(t, pick.AlreadySeen)
}
