package quality

import "github.com/kindledapp/kindled/internal/db"

const (
	paceDimensionMax  = 25
	paceWildcardScore = 20
	lowPaceThreshold  = 50
)

var (
	messagingOrder = []string{
		db.PaceMessagingMultipleDaily,
		db.PaceMessagingDaily,
		db.PaceMessagingEveryFewDays,
		db.PaceMessagingWeekly,
	}
	firstDateOrder = []string{
		db.PaceFirstDateWithinDays,
		db.PaceFirstDateWithinWeeks,
		db.PaceFirstDateWithinMonth,
		db.PaceFirstDateNoRush,
	}
	commOrder = []string{
		db.PaceCommTexting,
		db.PaceCommVoiceNotes,
		db.PaceCommVideoCalls,
		db.PaceCommMix,
	}
	depthOrder = []string{
		db.PaceDepthDeep,
		db.PaceDepthLight,
		db.PaceDepthDepends,
	}
)

// PaceCompatibility scores two complete pace preference sets 0-100, summing
// four dimensions worth up to 25 each. Returns -1 when either set is
// incomplete (compatibility unknown).
//
// Adjacent answers on an ordered dimension still score well; the wildcard
// answers (mix_of_everything, depends_on_vibe) sync with anything at a flat
// 20.
func PaceCompatibility(a, b db.PacePreferences) int {
	if !a.IsComplete() || !b.IsComplete() {
		return -1
	}

	score := 0
	score += dimensionScore(messagingOrder, a.MessagingFrequency, b.MessagingFrequency, false)
	score += dimensionScore(firstDateOrder, a.TimeToFirstDate, b.TimeToFirstDate, false)

	commWildcard := a.CommunicationStyle == db.PaceCommMix || b.CommunicationStyle == db.PaceCommMix
	score += dimensionScore(commOrder, a.CommunicationStyle, b.CommunicationStyle, commWildcard)

	depthWildcard := a.DepthPreference == db.PaceDepthDepends || b.DepthPreference == db.PaceDepthDepends
	score += dimensionScore(depthOrder, a.DepthPreference, b.DepthPreference, depthWildcard)

	return score
}

// PaceScore normalizes PaceCompatibility to 0.0-1.0, with 0.5 for unknown.
func PaceScore(a, b db.PacePreferences) float64 {
	comp := PaceCompatibility(a, b)
	if comp == -1 {
		return 0.5
	}
	return float64(comp) / 100.0
}

// PaceSyncLevel maps a normalized pace score to a display label.
func PaceSyncLevel(score float64) string {
	switch {
	case score >= 0.95:
		return "Perfect Sync"
	case score >= 0.8:
		return "Good Sync"
	case score >= 0.6:
		return "Fair Sync"
	case score >= 0.4:
		return "Pace Lag"
	default:
		return "Mismatched Pace"
	}
}

// IsLowPaceCompatibility reports whether a raw 0-100 pace score warrants the
// pacing warning.
func IsLowPaceCompatibility(score int) bool {
	return score >= 0 && score < lowPaceThreshold
}

// LowPaceCompatibilityWarning is the advisory shown for mismatched pacing.
const LowPaceCompatibilityWarning = "Your pacing styles differ significantly. Worth discussing early!"

func dimensionScore(order []string, a, b string, wildcard bool) int {
	if wildcard {
		return paceWildcardScore
	}
	distance := ordinal(order, a) - ordinal(order, b)
	if distance < 0 {
		distance = -distance
	}
	switch distance {
	case 0:
		return paceDimensionMax
	case 1:
		return 15
	default:
		return 5
	}
}

func ordinal(order []string, v string) int {
	for i, o := range order {
		if o == v {
			return i
		}
	}
	return -1
}
