package discovery

import "github.com/kindledapp/kindled/internal/db"

// PassesDealbreakers checks whether the candidate clears every dealbreaker
// the seeker has configured. Predicates are independent and combined with AND.
//
// Asymmetry, on purpose: an unset dealbreaker always passes, but a set
// dealbreaker fails candidates whose attribute is missing (nudges profile
// completion). Height is the exception: a missing height passes even when a
// height dealbreaker is set.
func PassesDealbreakers(seeker, candidate *db.User) bool {
	dbs := seeker.Dealbreakers

	if !dbs.HasAny() {
		return true
	}

	if len(dbs.AcceptableSmoking) > 0 {
		if candidate.Smoking == "" || !containsValue(dbs.AcceptableSmoking, candidate.Smoking) {
			return false
		}
	}

	if len(dbs.AcceptableDrinking) > 0 {
		if candidate.Drinking == "" || !containsValue(dbs.AcceptableDrinking, candidate.Drinking) {
			return false
		}
	}

	if len(dbs.AcceptableKidsStance) > 0 {
		if candidate.WantsKids == "" || !containsValue(dbs.AcceptableKidsStance, candidate.WantsKids) {
			return false
		}
	}

	if len(dbs.AcceptableLookingFor) > 0 {
		if candidate.LookingFor == "" || !containsValue(dbs.AcceptableLookingFor, candidate.LookingFor) {
			return false
		}
	}

	if len(dbs.AcceptableEducation) > 0 {
		if candidate.Education == "" || !containsValue(dbs.AcceptableEducation, candidate.Education) {
			return false
		}
	}

	// Height is optional profile data, so a candidate without it passes.
	if (dbs.MinHeightCm != nil || dbs.MaxHeightCm != nil) && candidate.HeightCm != nil {
		h := *candidate.HeightCm
		if dbs.MinHeightCm != nil && h < *dbs.MinHeightCm {
			return false
		}
		if dbs.MaxHeightCm != nil && h > *dbs.MaxHeightCm {
			return false
		}
	}

	if dbs.MaxAgeDifference != nil {
		seekerAge := seeker.Age()
		candidateAge := candidate.Age()
		if seekerAge > 0 && candidateAge > 0 {
			diff := seekerAge - candidateAge
			if diff < 0 {
				diff = -diff
			}
			if diff > *dbs.MaxAgeDifference {
				return false
			}
		}
	}

	return true
}

func containsValue[T comparable](set []T, v T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
