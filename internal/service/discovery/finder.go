package discovery

import (
	"context"
	"sort"

	"github.com/kindledapp/kindled/internal/app"
	"github.com/kindledapp/kindled/internal/db"
	"github.com/kindledapp/kindled/internal/repository"
	"github.com/kindledapp/kindled/internal/utils/geo"
)

// Candidate is a user that survived the discovery pipeline, together with
// the distance to the seeker. DistanceKm is nil when either side has no
// location set.
type Candidate struct {
	User       *db.User
	DistanceKm *float64
}

// Finder builds the ordered candidate list for a seeker.
//
// The pipeline applies, in order: not-self, no prior interaction (liked,
// passed, matched or blocked in either direction), mutual gender preference,
// mutual age preference, seeker's distance radius, seeker's dealbreakers.
// Survivors are sorted nearest first; candidates without location sort after
// all located ones, relative order preserved.
type Finder struct {
	appCtx    *app.AppContext
	userRepo  *repository.UserRepository
	likeRepo  *repository.LikeRepository
	matchRepo *repository.MatchRepository
	blockRepo *repository.BlockRepository
}

// NewFinder creates a Finder with repositories from AppContext.
func NewFinder(appCtx *app.AppContext) *Finder {
	return &Finder{
		appCtx:    appCtx,
		userRepo:  repository.NewUserRepository(appCtx.DB),
		likeRepo:  repository.NewLikeRepository(appCtx.DB),
		matchRepo: repository.NewMatchRepository(appCtx.DB),
		blockRepo: repository.NewBlockRepository(appCtx.DB),
	}
}

// FindCandidates returns the seeker's eligible candidates, nearest first.
// An empty result is a normal outcome, not an error.
func (f *Finder) FindCandidates(ctx context.Context, seeker *db.User) ([]Candidate, error) {
	active, err := f.userRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	excluded, err := f.excludedIDs(ctx, seeker.ID)
	if err != nil {
		return nil, err
	}

	f.appCtx.Logger.Debug("finding candidates",
		"seeker", seeker.ID, "active_users", len(active), "excluded", len(excluded))

	candidates := make([]Candidate, 0, len(active))
	for i := range active {
		candidate := &active[i]

		if candidate.ID == seeker.ID {
			continue
		}
		if _, ok := excluded[candidate.ID]; ok {
			continue
		}
		if !mutualGenderMatch(seeker, candidate) {
			continue
		}
		if !mutualAgeMatch(seeker, candidate) {
			continue
		}

		dist := distanceBetween(seeker, candidate)
		// distance filter only applies when both sides have a location
		if dist != nil && *dist > float64(seeker.MaxDistanceKm) {
			continue
		}
		if !PassesDealbreakers(seeker, candidate) {
			continue
		}

		candidates = append(candidates, Candidate{User: candidate, DistanceKm: dist})
	}

	// nearest first, location-less candidates at the end
	sort.SliceStable(candidates, func(i, j int) bool {
		di, dj := candidates[i].DistanceKm, candidates[j].DistanceKm
		if di == nil {
			return false
		}
		if dj == nil {
			return true
		}
		return *di < *dj
	})

	f.appCtx.Logger.Debug("candidates found", "seeker", seeker.ID, "count", len(candidates))

	return candidates, nil
}

// excludedIDs collects every user the seeker already interacted with:
// swiped on, matched with, or blocked (either direction).
func (f *Finder) excludedIDs(ctx context.Context, seekerID uint64) (map[uint64]struct{}, error) {
	excluded := make(map[uint64]struct{})

	swiped, err := f.likeRepo.LikedOrPassedIDs(ctx, seekerID)
	if err != nil {
		return nil, err
	}
	for _, id := range swiped {
		excluded[id] = struct{}{}
	}

	matched, err := f.matchRepo.ActiveMatchedUserIDs(ctx, seekerID)
	if err != nil {
		return nil, err
	}
	for _, id := range matched {
		excluded[id] = struct{}{}
	}

	blocked, err := f.blockRepo.BlockedUserIDs(ctx, seekerID)
	if err != nil {
		return nil, err
	}
	for _, id := range blocked {
		excluded[id] = struct{}{}
	}

	return excluded, nil
}

// mutualGenderMatch requires both directions: seeker wants candidate's gender
// and candidate wants seeker's. Missing gender or preference set excludes.
func mutualGenderMatch(seeker, candidate *db.User) bool {
	if seeker.Gender == "" || candidate.Gender == "" {
		return false
	}
	if len(seeker.InterestedIn) == 0 || len(candidate.InterestedIn) == 0 {
		return false
	}
	return containsValue(seeker.InterestedIn, candidate.Gender) &&
		containsValue(candidate.InterestedIn, seeker.Gender)
}

// mutualAgeMatch requires each user's age inside the other's range. A missing
// birth date (age 0) excludes.
func mutualAgeMatch(seeker, candidate *db.User) bool {
	seekerAge := seeker.Age()
	candidateAge := candidate.Age()
	if seekerAge == 0 || candidateAge == 0 {
		return false
	}
	return candidateAge >= seeker.MinAge && candidateAge <= seeker.MaxAge &&
		seekerAge >= candidate.MinAge && seekerAge <= candidate.MaxAge
}

// distanceBetween returns the great-circle distance, or nil when either user
// has no usable location.
func distanceBetween(a, b *db.User) *float64 {
	if !a.HasLocation() || !b.HasLocation() {
		return nil
	}
	d := geo.DistanceKm(*a.Lat, *a.Lon, *b.Lat, *b.Lon)
	return &d
}
