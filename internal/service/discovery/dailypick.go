package discovery

import (
	"context"
	"math/rand"
	"strconv"
	"time"

	"github.com/kindledapp/kindled/internal/app"
	"github.com/kindledapp/kindled/internal/db"
)

// DailyPick is one algorithmically selected recommendation for a seeker,
// fixed for the whole calendar day.
type DailyPick struct {
	Candidate   *db.User
	DistanceKm  *float64
	Reason      string
	Day         string
	AlreadySeen bool
}

// PickSelector chooses one deterministic candidate per seeker per UTC day.
//
// Determinism comes from a seed derived from (epoch day, seeker ID), so
// repeated calls on the same day agree even before the cache is consulted.
// The Redis entry (SETNX) makes the first write atomic across processes, and
// a stale entry (picked user no longer eligible) is evicted and re-picked
// from the current candidate set.
type PickSelector struct {
	appCtx *app.AppContext
	finder *Finder
	now    func() time.Time
}

// NewPickSelector creates a PickSelector sharing the given Finder.
func NewPickSelector(appCtx *app.AppContext, finder *Finder) *PickSelector {
	return &PickSelector{
		appCtx: appCtx,
		finder: finder,
		now:    time.Now,
	}
}

// GetDailyPick returns today's pick for the seeker, or nil when the seeker
// has no eligible candidates (a normal outcome, not an error).
func (s *PickSelector) GetDailyPick(ctx context.Context, seeker *db.User) (*DailyPick, error) {
	candidates, err := s.finder.FindCandidates(ctx, seeker)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		s.appCtx.Logger.Debug("no daily pick available", "seeker", seeker.ID)
		return nil, nil
	}

	now := s.now().UTC()
	day := now.Format("2006-01-02")
	epochDay := now.Unix() / 86400

	chosen := deterministicPick(candidates, epochDay, seeker.ID)

	cacheKey := s.appCtx.RedisCache.KeyForDailyPick(seeker.ID, day)
	ttl := s.appCtx.Config.DailyPick.CacheTTL

	// atomic populate-if-absent: concurrent first callers converge on one value
	if _, err := s.appCtx.RedisCache.SetNX(ctx, cacheKey, formatID(chosen.User.ID), ttl); err != nil {
		return nil, err
	}

	cachedVal, err := s.appCtx.RedisCache.GetOrNil(ctx, cacheKey)
	if err != nil {
		return nil, err
	}

	pick := chosen
	if cachedID, parseErr := strconv.ParseUint(cachedVal, 10, 64); parseErr == nil {
		if cached, ok := findCandidate(candidates, cachedID); ok {
			pick = cached
		} else {
			// cached user dropped out of the eligible set (blocked, paused,
			// swiped on elsewhere): evict and re-cache today's repaired pick
			s.appCtx.Logger.Info("repairing stale daily pick",
				"seeker", seeker.ID, "stale_pick", cachedID, "new_pick", chosen.User.ID)
			if err := s.appCtx.RedisCache.Del(ctx, cacheKey); err != nil {
				return nil, err
			}
			if _, err := s.appCtx.RedisCache.SetNX(ctx, cacheKey, formatID(chosen.User.ID), ttl); err != nil {
				return nil, err
			}
		}
	}

	seen, err := s.HasViewed(ctx, seeker.ID)
	if err != nil {
		return nil, err
	}

	return &DailyPick{
		Candidate:   pick.User,
		DistanceKm:  pick.DistanceKm,
		Reason:      s.generateReason(seeker, pick, epochDay),
		Day:         day,
		AlreadySeen: seen,
	}, nil
}

// HasViewed reports whether the seeker already acknowledged today's pick.
func (s *PickSelector) HasViewed(ctx context.Context, seekerID uint64) (bool, error) {
	day := s.now().UTC().Format("2006-01-02")
	key := s.appCtx.RedisCache.KeyForDailyPickViewed(seekerID, day)
	val, err := s.appCtx.RedisCache.GetOrNil(ctx, key)
	if err != nil {
		return false, err
	}
	return val != "", nil
}

// MarkViewed records that the seeker saw today's pick. Idempotent.
func (s *PickSelector) MarkViewed(ctx context.Context, seekerID uint64) error {
	day := s.now().UTC().Format("2006-01-02")
	key := s.appCtx.RedisCache.KeyForDailyPickViewed(seekerID, day)
	return s.appCtx.RedisCache.Set(ctx, key, "1", s.appCtx.Config.DailyPick.CacheTTL)
}

// deterministicPick selects the candidate at a seeded random index. Same
// (day, seeker) always yields the same index over the same candidate list.
func deterministicPick(candidates []Candidate, epochDay int64, seekerID uint64) Candidate {
	seed := epochDay*31 + int64(seekerID)
	rng := rand.New(rand.NewSource(seed))
	return candidates[rng.Intn(len(candidates))]
}

// generateReason builds a short human explanation for the pick. Attribute
// overlap adds specific reasons; generic fillers are always in the pool so
// there is never an empty result. The secondary seed includes the picked
// user, so the text is stable for the same (day, seeker, pick) triple.
func (s *PickSelector) generateReason(seeker *db.User, pick Candidate, epochDay int64) string {
	var reasons []string

	if pick.DistanceKm != nil {
		switch {
		case *pick.DistanceKm < 5:
			reasons = append(reasons, "Lives nearby!")
		case *pick.DistanceKm < 10:
			reasons = append(reasons, "Close enough for coffee!")
		}
	}

	seekerAge, pickAge := seeker.Age(), pick.User.Age()
	if seekerAge > 0 && pickAge > 0 {
		diff := seekerAge - pickAge
		if diff < 0 {
			diff = -diff
		}
		switch {
		case diff <= 2:
			reasons = append(reasons, "Similar age")
		case diff <= 5:
			reasons = append(reasons, "Age-appropriate match")
		}
	}

	if seeker.LookingFor != "" && seeker.LookingFor == pick.User.LookingFor {
		reasons = append(reasons, "Looking for the same thing")
	}
	if seeker.WantsKids != "" && seeker.WantsKids == pick.User.WantsKids {
		reasons = append(reasons, "Same stance on kids")
	}
	if seeker.Drinking != "" && seeker.Drinking == pick.User.Drinking {
		reasons = append(reasons, "Compatible drinking habits")
	}
	if seeker.Smoking != "" && seeker.Smoking == pick.User.Smoking {
		reasons = append(reasons, "Compatible smoking habits")
	}

	shared := 0
	for _, interest := range seeker.Interests {
		if containsValue(pick.User.Interests, interest) {
			shared++
		}
	}
	switch {
	case shared >= 3:
		reasons = append(reasons, "Many shared interests!")
	case shared >= 1:
		reasons = append(reasons, "Some shared interests")
	}

	reasons = append(reasons,
		"Our algorithm thinks you might click!",
		"Something different today!",
		"Expand your horizons!",
		"Why not give them a chance?",
		"Could be a pleasant surprise!",
	)

	seed := epochDay*31 + int64(seeker.ID) + int64(pick.User.ID)
	rng := rand.New(rand.NewSource(seed))
	return reasons[rng.Intn(len(reasons))]
}

func findCandidate(candidates []Candidate, id uint64) (Candidate, bool) {
	for _, c := range candidates {
		if c.User.ID == id {
			return c, true
		}
	}
	return Candidate{}, false
}

func formatID(id uint64) string {
	return strconv.FormatUint(id, 10)
}
