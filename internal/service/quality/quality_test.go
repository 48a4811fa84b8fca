package quality_test

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
	"github.com/kindledapp/kindled/internal/service/quality"
)

func setupScorer(t *testing.T) (*quality.Scorer, *app.AppContext) {
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

	appCtx := app.New(dbase, cache.NewRedisCache(cfg),
		slog.New(slog.NewTextHandler(io.Discard, nil)), cfg)
	return quality.NewScorer(appCtx), appCtx
}

// fullProfile builds a user with every scoring input filled in.
func fullProfile(id uint64, lat, lon float64) *db.User {
	birth := time.Now().UTC().AddDate(-30, 0, -1)
	return &db.User{
		ID:            id,
		Username:      fmt.Sprintf("user%d", id),
		Email:         fmt.Sprintf("u%d@test.com", id),
		PasswordHash:  "x",
		State:         db.UserStateActive,
		Gender:        "female",
		InterestedIn:  []string{"male"},
		BirthDate:     &birth,
		Lat:           &lat,
		Lon:           &lon,
		MaxDistanceKm: 50,
		MinAge:        20,
		MaxAge:        40,
		Smoking:       db.SmokingNever,
		Drinking:      db.DrinkingSocially,
		WantsKids:     db.WantsKidsSomeday,
		LookingFor:    db.LookingForLongTerm,
		Education:     db.EducationBachelors,
		Interests:     []string{"hiking", "coffee", "travel"},
		Pace: db.PacePreferences{
			MessagingFrequency: db.PaceMessagingDaily,
			TimeToFirstDate:    db.PaceFirstDateWithinWeeks,
			CommunicationStyle: db.PaceCommTexting,
			DepthPreference:    db.PaceDepthDeep,
		},
	}
}

func TestIdenticalProfilesScoreHigh(t *testing.T) {
	scorer, _ := setupScorer(t)

	me := fullProfile(1, 51.5, -0.12)
	them := fullProfile(2, 51.5, -0.12)

	q := scorer.Compute(me, them, nil)

	// identical interests, ages and lifestyle land in the top tier
	assert.GreaterOrEqual(t, q.Score, 90)
	assert.Equal(t, "Excellent Match", q.Label())
	assert.Equal(t, 5, q.StarRating())
	assert.Equal(t, 1.0, q.DistanceScore)
	assert.Equal(t, 1.0, q.AgeScore)
	assert.Equal(t, 1.0, q.InterestScore)
	assert.Equal(t, 1.0, q.LifestyleScore)
	assert.Equal(t, 1.0, q.PaceScore)
	assert.Equal(t, 0.5, q.ResponseScore)
}

func TestDistanceScoreDecay(t *testing.T) {
	scorer, _ := setupScorer(t)

	me := fullProfile(1, 0, 0)
	them := fullProfile(2, 0, 0.225) // ~25km, half of the 50km radius

	q := scorer.Compute(me, them, nil)
	assert.InDelta(t, 0.5, q.DistanceScore, 0.02)

	farAway := fullProfile(3, 0, 0.5) // ~55km, past the radius
	q = scorer.Compute(me, farAway, nil)
	assert.Equal(t, 0.0, q.DistanceScore)
}

func TestMissingLocationIsNeutral(t *testing.T) {
	scorer, _ := setupScorer(t)

	me := fullProfile(1, 0, 0)
	them := fullProfile(2, 0, 0)
	them.Lat, them.Lon = nil, nil

	q := scorer.Compute(me, them, nil)
	assert.Equal(t, 0.5, q.DistanceScore)
	assert.Nil(t, q.DistanceKm)
}

func TestAgeScore(t *testing.T) {
	scorer, _ := setupScorer(t)

	me := fullProfile(1, 0, 0)
	them := fullProfile(2, 0, 0)

	// 10 year gap with 20-year ranges: 1 - 10/20 = 0.5
	olderBirth := time.Now().UTC().AddDate(-40, 0, -1)
	them.BirthDate = &olderBirth

	q := scorer.Compute(me, them, nil)
	assert.InDelta(t, 0.5, q.AgeScore, 0.01)
	assert.Equal(t, 10, q.AgeDifference)
}

func TestInterestScore(t *testing.T) {
	scorer, _ := setupScorer(t)

	me := fullProfile(1, 0, 0)
	them := fullProfile(2, 0, 0)

	// identical sets score 1.0
	q := scorer.Compute(me, them, nil)
	assert.Equal(t, 1.0, q.InterestScore)
	assert.Equal(t, []string{"coffee", "hiking", "travel"}, q.SharedInterests)

	// Jaccard: 2 shared out of a union of 3
	them.Interests = []string{"hiking", "coffee"}
	q = scorer.Compute(me, them, nil)
	assert.InDelta(t, 2.0/3.0, q.InterestScore, 0.001)
	assert.Equal(t, []string{"coffee", "hiking"}, q.SharedInterests)

	// both empty is neutral, one-sided is low
	them.Interests = nil
	me.Interests = nil
	q = scorer.Compute(me, them, nil)
	assert.Equal(t, 0.5, q.InterestScore)

	me.Interests = []string{"hiking"}
	q = scorer.Compute(me, them, nil)
	assert.Equal(t, 0.3, q.InterestScore)
}

func TestKidsStanceCompatibility(t *testing.T) {
	scorer, _ := setupScorer(t)

	me := fullProfile(1, 0, 0)
	them := fullProfile(2, 0, 0)

	// SOMEDAY and HAS_KIDS count as a lifestyle match
	me.WantsKids = db.WantsKidsSomeday
	them.WantsKids = db.WantsKidsHasKids
	q := scorer.Compute(me, them, nil)
	assert.Equal(t, 1.0, q.LifestyleScore)
	assert.Contains(t, q.LifestyleMatches, "Compatible on kids")

	// OPEN matches anything
	them.WantsKids = db.WantsKidsOpen
	me.WantsKids = db.WantsKidsNo
	q = scorer.Compute(me, them, nil)
	assert.Equal(t, 1.0, q.LifestyleScore)

	// NO vs HAS_KIDS is a miss on one of five factors
	them.WantsKids = db.WantsKidsHasKids
	q = scorer.Compute(me, them, nil)
	assert.Equal(t, 0.8, q.LifestyleScore)
}

func TestPaceWildcards(t *testing.T) {
	a := db.PacePreferences{
		MessagingFrequency: db.PaceMessagingDaily,
		TimeToFirstDate:    db.PaceFirstDateWithinWeeks,
		CommunicationStyle: db.PaceCommMix,
		DepthPreference:    db.PaceDepthDepends,
	}
	b := db.PacePreferences{
		MessagingFrequency: db.PaceMessagingDaily,
		TimeToFirstDate:    db.PaceFirstDateWithinWeeks,
		CommunicationStyle: db.PaceCommVideoCalls,
		DepthPreference:    db.PaceDepthLight,
	}

	// 25 + 25 + wildcard 20 + wildcard 20
	assert.Equal(t, 90, quality.PaceCompatibility(a, b))
}

func TestPaceIncompleteIsUnknown(t *testing.T) {
	complete := db.PacePreferences{
		MessagingFrequency: db.PaceMessagingDaily,
		TimeToFirstDate:    db.PaceFirstDateWithinWeeks,
		CommunicationStyle: db.PaceCommTexting,
		DepthPreference:    db.PaceDepthDeep,
	}
	incomplete := db.PacePreferences{MessagingFrequency: db.PaceMessagingDaily}

	assert.Equal(t, -1, quality.PaceCompatibility(complete, incomplete))
	assert.Equal(t, 0.5, quality.PaceScore(complete, incomplete))
}

func TestPaceAdjacentAnswers(t *testing.T) {
	a := db.PacePreferences{
		MessagingFrequency: db.PaceMessagingMultipleDaily,
		TimeToFirstDate:    db.PaceFirstDateWithinDays,
		CommunicationStyle: db.PaceCommTexting,
		DepthPreference:    db.PaceDepthDeep,
	}
	b := db.PacePreferences{
		MessagingFrequency: db.PaceMessagingDaily,    // adjacent: 15
		TimeToFirstDate:    db.PaceFirstDateNoRush,   // far: 5
		CommunicationStyle: db.PaceCommTexting,       // exact: 25
		DepthPreference:    db.PaceDepthLight,        // adjacent: 15
	}

	score := quality.PaceCompatibility(a, b)
	assert.Equal(t, 60, score)
	assert.False(t, quality.IsLowPaceCompatibility(score))
	assert.True(t, quality.IsLowPaceCompatibility(45))
}

func TestResponseScoreBands(t *testing.T) {
	scorer, _ := setupScorer(t)

	me := fullProfile(1, 0, 0)
	them := fullProfile(2, 0, 0)

	cases := []struct {
		gap  time.Duration
		want float64
	}{
		{30 * time.Minute, 1.0},
		{5 * time.Hour, 0.9},
		{48 * time.Hour, 0.7},
		{100 * time.Hour, 0.5},
		{400 * time.Hour, 0.3},
		{1000 * time.Hour, 0.1},
	}
	for _, tc := range cases {
		gap := tc.gap
		q := scorer.Compute(me, them, &gap)
		assert.Equal(t, tc.want, q.ResponseScore, "gap %v", tc.gap)
	}
}

func TestScorePairUsesStoredLikes(t *testing.T) {
	scorer, appCtx := setupScorer(t)
	ctx := context.Background()

	me := fullProfile(1, 0, 0)
	them := fullProfile(2, 0, 0)
	require.NoError(t, appCtx.DB.Create(me).Error)
	require.NoError(t, appCtx.DB.Create(them).Error)

	now := time.Now().UTC().Truncate(time.Millisecond)
	mine := db.NewLike(1, 2, db.DirectionLike)
	mine.CreatedAt = now.Add(-3 * time.Hour)
	theirs := db.NewLike(2, 1, db.DirectionLike)
	theirs.CreatedAt = now
	require.NoError(t, appCtx.DB.Create(mine).Error)
	require.NoError(t, appCtx.DB.Create(theirs).Error)

	q, err := scorer.ScorePair(ctx, me, them)
	require.NoError(t, err)
	// 3 hour gap lands in the under-24h band
	assert.Equal(t, 0.9, q.ResponseScore)
}

func TestHighlightsCappedAtFive(t *testing.T) {
	scorer, _ := setupScorer(t)

	me := fullProfile(1, 51.5, -0.12)
	them := fullProfile(2, 51.5, -0.12)
	gap := 2 * time.Hour

	q := scorer.Compute(me, them, &gap)
	assert.NotEmpty(t, q.Highlights)
	assert.LessOrEqual(t, len(q.Highlights), 5)
}
