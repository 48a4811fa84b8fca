package quality

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/kindledapp/kindled/internal/app"
	"github.com/kindledapp/kindled/internal/db"
	"github.com/kindledapp/kindled/internal/repository"
	"github.com/kindledapp/kindled/internal/utils/geo"
)

// Quality is the computed compatibility between two users, from one user's
// perspective (scores can differ slightly between perspectives because the
// seeker's own distance radius and age range drive two of the sub-scores).
type Quality struct {
	DistanceScore  float64
	AgeScore       float64
	InterestScore  float64
	LifestyleScore float64
	PaceScore      float64
	ResponseScore  float64

	DistanceKm       *float64
	AgeDifference    int
	SharedInterests  []string
	LifestyleMatches []string
	PaceSyncLevel    string

	Score      int // 0-100
	Highlights []string
}

// StarRating maps the score to 1-5 stars.
func (q Quality) StarRating() int {
	switch {
	case q.Score >= 90:
		return 5
	case q.Score >= 75:
		return 4
	case q.Score >= 60:
		return 3
	case q.Score >= 40:
		return 2
	default:
		return 1
	}
}

// Label maps the score to a display tier.
func (q Quality) Label() string {
	switch {
	case q.Score >= 90:
		return "Excellent Match"
	case q.Score >= 75:
		return "Great Match"
	case q.Score >= 60:
		return "Good Match"
	case q.Score >= 40:
		return "Fair Match"
	default:
		return "Low Compatibility"
	}
}

// Scorer computes weighted compatibility between two users. The numeric
// contract is pure (see Compute); ScorePair only adds the stored
// response-time signal on top.
type Scorer struct {
	appCtx   *app.AppContext
	likeRepo *repository.LikeRepository
}

// NewScorer creates a Scorer with dependencies from AppContext.
func NewScorer(appCtx *app.AppContext) *Scorer {
	return &Scorer{
		appCtx:   appCtx,
		likeRepo: repository.NewLikeRepository(appCtx.DB),
	}
}

// ScorePair computes quality between two users, deriving the response-time
// signal from the pair's stored likes (time between the first and second
// like, when both exist).
func (s *Scorer) ScorePair(ctx context.Context, me, them *db.User) (Quality, error) {
	signal, err := s.timeBetweenLikes(ctx, me.ID, them.ID)
	if err != nil {
		return Quality{}, err
	}
	return s.Compute(me, them, signal), nil
}

// Compute is the pure scoring function: no storage access, deterministic for
// a given pair and signal snapshot. timeBetween nil means no mutual-like
// timing is known (scored neutral).
func (s *Scorer) Compute(me, them *db.User, timeBetween *time.Duration) Quality {
	w := s.appCtx.Config.Quality

	distKm := distanceBetween(me, them)
	distanceScore := calcDistanceScore(distKm, me.MaxDistanceKm)

	ageDiff := absInt(me.Age() - them.Age())
	ageScore := calcAgeScore(ageDiff, me, them)

	shared := sharedInterests(me.Interests, them.Interests)
	interestScore := calcInterestScore(me.Interests, them.Interests, len(shared))

	lifestyleMatches := findLifestyleMatches(me, them)
	lifestyleScore := calcLifestyleScore(me, them)

	paceScore := PaceScore(me.Pace, them.Pace)
	responseScore := calcResponseScore(timeBetween)

	weighted := distanceScore*w.DistanceWeight +
		ageScore*w.AgeWeight +
		interestScore*w.InterestWeight +
		lifestyleScore*w.LifestyleWeight +
		paceScore*w.PaceWeight +
		responseScore*w.ResponseWeight

	score := int(math.Round(weighted * 100))
	if score < 0 {
		score = 0
	} else if score > 100 {
		score = 100
	}

	q := Quality{
		DistanceScore:    distanceScore,
		AgeScore:         ageScore,
		InterestScore:    interestScore,
		LifestyleScore:   lifestyleScore,
		PaceScore:        paceScore,
		ResponseScore:    responseScore,
		DistanceKm:       distKm,
		AgeDifference:    ageDiff,
		SharedInterests:  shared,
		LifestyleMatches: lifestyleMatches,
		PaceSyncLevel:    PaceSyncLevel(paceScore),
		Score:            score,
	}
	q.Highlights = generateHighlights(q, timeBetween)
	return q
}

// timeBetweenLikes returns the gap between the pair's two likes, or nil when
// the pair has no mutual timing on record.
func (s *Scorer) timeBetweenLikes(ctx context.Context, meID, themID uint64) (*time.Duration, error) {
	mine, err := s.likeRepo.Get(ctx, meID, themID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	theirs, err := s.likeRepo.Get(ctx, themID, meID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	gap := mine.CreatedAt.Sub(theirs.CreatedAt)
	if gap < 0 {
		gap = -gap
	}
	return &gap, nil
}

func calcDistanceScore(distKm *float64, maxDistanceKm int) float64 {
	if distKm == nil {
		return 0.5 // location unknown, neutral
	}
	d := *distKm
	if d <= 1 {
		return 1.0
	}
	if d >= float64(maxDistanceKm) {
		return 0.0
	}
	return 1.0 - d/float64(maxDistanceKm)
}

func calcAgeScore(ageDiff int, me, them *db.User) float64 {
	if ageDiff <= 2 {
		return 1.0
	}

	// how far apart relative to the average of both accepted ranges
	avgRange := ((me.MaxAge - me.MinAge) + (them.MaxAge - them.MinAge)) / 2
	if avgRange == 0 {
		return 1.0
	}

	score := 1.0 - float64(ageDiff)/float64(avgRange)
	if score < 0 {
		return 0.0
	}
	return score
}

func calcInterestScore(mine, theirs []string, sharedCount int) float64 {
	if len(mine) == 0 && len(theirs) == 0 {
		return 0.5 // unknown, neutral
	}
	if len(mine) == 0 || len(theirs) == 0 {
		return 0.3
	}

	// Jaccard similarity: shared over the union of both sets
	union := len(mine) + len(theirs) - sharedCount
	return float64(sharedCount) / float64(union)
}

func calcLifestyleScore(me, them *db.User) float64 {
	total, matches := 0, 0

	if me.Smoking != "" && them.Smoking != "" {
		total++
		if me.Smoking == them.Smoking {
			matches++
		}
	}
	if me.Drinking != "" && them.Drinking != "" {
		total++
		if me.Drinking == them.Drinking {
			matches++
		}
	}
	if me.WantsKids != "" && them.WantsKids != "" {
		total++
		if kidsStancesCompatible(me.WantsKids, them.WantsKids) {
			matches++
		}
	}
	if me.LookingFor != "" && them.LookingFor != "" {
		total++
		if me.LookingFor == them.LookingFor {
			matches++
		}
	}
	if me.Education != "" && them.Education != "" {
		total++
		if me.Education == them.Education {
			matches++
		}
	}

	if total == 0 {
		return 0.5
	}
	return float64(matches) / float64(total)
}

// kidsStancesCompatible treats OPEN as compatible with everything, and
// SOMEDAY as compatible with HAS_KIDS.
func kidsStancesCompatible(a, b db.WantsKids) bool {
	if a == b {
		return true
	}
	if a == db.WantsKidsOpen || b == db.WantsKidsOpen {
		return true
	}
	return (a == db.WantsKidsSomeday && b == db.WantsKidsHasKids) ||
		(a == db.WantsKidsHasKids && b == db.WantsKidsSomeday)
}

func calcResponseScore(timeBetween *time.Duration) float64 {
	if timeBetween == nil || *timeBetween == 0 {
		return 0.5 // unknown
	}
	hours := int64(timeBetween.Hours())
	switch {
	case hours < 1:
		return 1.0
	case hours < 24:
		return 0.9
	case hours < 72:
		return 0.7
	case hours < 168:
		return 0.5
	case hours < 720:
		return 0.3
	default:
		return 0.1
	}
}

func sharedInterests(mine, theirs []string) []string {
	var shared []string
	for _, interest := range mine {
		for _, other := range theirs {
			if interest == other {
				shared = append(shared, interest)
				break
			}
		}
	}
	sort.Strings(shared)
	return shared
}

// formatSharedInterests renders up to three shared interests with an
// "and N more" suffix past that.
func formatSharedInterests(shared []string) string {
	switch len(shared) {
	case 0:
		return ""
	case 1:
		return shared[0]
	case 2:
		return shared[0] + " and " + shared[1]
	case 3:
		return shared[0] + ", " + shared[1] + ", and " + shared[2]
	default:
		return strings.Join(shared[:3], ", ") + fmt.Sprintf(", and %d more", len(shared)-3)
	}
}

func findLifestyleMatches(me, them *db.User) []string {
	var matches []string

	if me.Smoking != "" && me.Smoking == them.Smoking {
		switch me.Smoking {
		case db.SmokingNever:
			matches = append(matches, "Both non-smokers")
		case db.SmokingSometimes:
			matches = append(matches, "Both occasional smokers")
		}
	}

	if me.Drinking != "" && me.Drinking == them.Drinking {
		switch me.Drinking {
		case db.DrinkingNever:
			matches = append(matches, "Neither drinks")
		case db.DrinkingSocially:
			matches = append(matches, "Both social drinkers")
		}
	}

	if me.WantsKids != "" && them.WantsKids != "" {
		if me.WantsKids == them.WantsKids {
			matches = append(matches, "Same stance on kids")
		} else if kidsStancesCompatible(me.WantsKids, them.WantsKids) {
			matches = append(matches, "Compatible on kids")
		}
	}

	if me.LookingFor != "" && me.LookingFor == them.LookingFor {
		matches = append(matches, "Both looking for "+strings.ReplaceAll(string(me.LookingFor), "_", " "))
	}

	return matches
}

func generateHighlights(q Quality, timeBetween *time.Duration) []string {
	var highlights []string

	if q.DistanceKm != nil {
		switch {
		case *q.DistanceKm < 5:
			highlights = append(highlights, fmt.Sprintf("Lives nearby (%.1f km away)", *q.DistanceKm))
		case *q.DistanceKm < 15:
			highlights = append(highlights, fmt.Sprintf("%.0f km away", *q.DistanceKm))
		}
	}

	if len(q.SharedInterests) == 1 {
		highlights = append(highlights, "You both enjoy "+q.SharedInterests[0])
	} else if len(q.SharedInterests) > 1 {
		highlights = append(highlights, fmt.Sprintf("You share %d interests: %s",
			len(q.SharedInterests), formatSharedInterests(q.SharedInterests)))
	}

	highlights = append(highlights, q.LifestyleMatches...)

	if q.PaceScore >= 0.95 {
		highlights = append(highlights, "Total pace sync!")
	} else if q.PaceScore >= 0.8 {
		highlights = append(highlights, "Great communication sync")
	}

	if timeBetween != nil && *timeBetween > 0 && timeBetween.Hours() < 24 {
		highlights = append(highlights, "Quick mutual interest!")
	}

	if q.AgeDifference <= 2 {
		highlights = append(highlights, "Similar age")
	}

	if len(highlights) > 5 {
		highlights = highlights[:5]
	}
	return highlights
}

func distanceBetween(a, b *db.User) *float64 {
	if !a.HasLocation() || !b.HasLocation() {
		return nil
	}
	d := geo.DistanceKm(*a.Lat, *a.Lon, *b.Lat, *b.Lon)
	return &d
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
