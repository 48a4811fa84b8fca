package db

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// UserState is the lifecycle state of a profile. Only ACTIVE users are
// eligible as candidates or seekers.
type UserState string

const (
	UserStateIncomplete UserState = "INCOMPLETE"
	UserStateActive     UserState = "ACTIVE"
	UserStatePaused     UserState = "PAUSED"
	UserStateBanned     UserState = "BANNED"
)

// Direction of a swipe.
type Direction string

const (
	DirectionLike Direction = "LIKE"
	DirectionPass Direction = "PASS"
)

// Lifestyle attribute values. Empty string means "not set".
type (
	Smoking    string
	Drinking   string
	WantsKids  string
	LookingFor string
	Education  string
)

const (
	SmokingNever     Smoking = "never"
	SmokingSometimes Smoking = "sometimes"
	SmokingRegularly Smoking = "regularly"

	DrinkingNever     Drinking = "never"
	DrinkingSocially  Drinking = "socially"
	DrinkingRegularly Drinking = "regularly"

	WantsKidsNo      WantsKids = "no"
	WantsKidsOpen    WantsKids = "open"
	WantsKidsSomeday WantsKids = "someday"
	WantsKidsHasKids WantsKids = "has_kids"

	LookingForCasual   LookingFor = "casual"
	LookingForLongTerm LookingFor = "long_term"
	LookingForMarriage LookingFor = "marriage"
	LookingForUnsure   LookingFor = "unsure"

	EducationHighSchool Education = "high_school"
	EducationBachelors  Education = "bachelors"
	EducationMasters    Education = "masters"
	EducationDoctorate  Education = "doctorate"
)

// PacePreferences captures how fast a user wants a connection to develop,
// across four independent dimensions. Empty values mean "not answered";
// the pace score treats an incomplete set as neutral.
type PacePreferences struct {
	MessagingFrequency string `json:"messaging_frequency,omitempty"`
	TimeToFirstDate    string `json:"time_to_first_date,omitempty"`
	CommunicationStyle string `json:"communication_style,omitempty"`
	DepthPreference    string `json:"depth_preference,omitempty"`
}

// Pace dimension values, ordered slowest-to-fastest where order matters.
const (
	PaceMessagingMultipleDaily = "multiple_daily"
	PaceMessagingDaily         = "daily"
	PaceMessagingEveryFewDays  = "every_few_days"
	PaceMessagingWeekly        = "weekly"

	PaceFirstDateWithinDays  = "within_days"
	PaceFirstDateWithinWeeks = "within_weeks"
	PaceFirstDateWithinMonth = "within_a_month"
	PaceFirstDateNoRush      = "no_rush"

	PaceCommTexting    = "texting"
	PaceCommVoiceNotes = "voice_notes"
	PaceCommVideoCalls = "video_calls"
	PaceCommMix        = "mix_of_everything" // wildcard: syncs with anything

	PaceDepthDeep    = "deep_and_meaningful"
	PaceDepthLight   = "light_and_fun"
	PaceDepthDepends = "depends_on_vibe" // wildcard: syncs with anything
)

// IsComplete reports whether all four dimensions were answered.
func (p PacePreferences) IsComplete() bool {
	return p.MessagingFrequency != "" &&
		p.TimeToFirstDate != "" &&
		p.CommunicationStyle != "" &&
		p.DepthPreference != ""
}

// Dealbreakers are a seeker's hard filters. An empty acceptable-set means
// "no preference" and always passes; a set dealbreaker fails candidates
// whose attribute is missing (profile-completion pressure), except height,
// where a missing value passes.
type Dealbreakers struct {
	AcceptableSmoking    []Smoking    `json:"acceptable_smoking,omitempty"`
	AcceptableDrinking   []Drinking   `json:"acceptable_drinking,omitempty"`
	AcceptableKidsStance []WantsKids  `json:"acceptable_kids_stance,omitempty"`
	AcceptableLookingFor []LookingFor `json:"acceptable_looking_for,omitempty"`
	AcceptableEducation  []Education  `json:"acceptable_education,omitempty"`
	MinHeightCm          *int         `json:"min_height_cm,omitempty"`
	MaxHeightCm          *int         `json:"max_height_cm,omitempty"`
	MaxAgeDifference     *int         `json:"max_age_difference,omitempty"`
}

// HasAny reports whether any dealbreaker is configured.
func (d Dealbreakers) HasAny() bool {
	return len(d.AcceptableSmoking) > 0 ||
		len(d.AcceptableDrinking) > 0 ||
		len(d.AcceptableKidsStance) > 0 ||
		len(d.AcceptableLookingFor) > 0 ||
		len(d.AcceptableEducation) > 0 ||
		d.MinHeightCm != nil ||
		d.MaxHeightCm != nil ||
		d.MaxAgeDifference != nil
}

// User table. The matching core only reads users; profile editing lives in
// another subsystem.
type User struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"uniqueIndex;size:64;not null"`
	Email        string `gorm:"uniqueIndex;size:128;not null"`
	PasswordHash string `gorm:"size:255;not null"`

	State        UserState `gorm:"size:16;not null;default:INCOMPLETE;index"`
	Gender       string    `gorm:"size:16"`
	InterestedIn []string  `gorm:"serializer:json"`
	BirthDate    *time.Time

	// Location is optional. NaN coordinates are treated as unset.
	Lat *float64
	Lon *float64

	MaxDistanceKm int `gorm:"not null;default:50"`
	MinAge        int `gorm:"not null;default:18"`
	MaxAge        int `gorm:"not null;default:99"`

	HeightCm   *int
	Smoking    Smoking    `gorm:"size:16"`
	Drinking   Drinking   `gorm:"size:16"`
	WantsKids  WantsKids  `gorm:"size:16"`
	LookingFor LookingFor `gorm:"size:16"`
	Education  Education  `gorm:"size:16"`

	Interests    []string        `gorm:"serializer:json"`
	Dealbreakers Dealbreakers    `gorm:"serializer:json"`
	Pace         PacePreferences `gorm:"serializer:json"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// Age derives the user's age in whole years, or 0 if birth date is unset.
func (u *User) Age() int {
	if u.BirthDate == nil {
		return 0
	}
	now := time.Now().UTC()
	years := now.Year() - u.BirthDate.Year()
	if now.YearDay() < u.BirthDate.YearDay() {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// HasLocation reports whether both coordinates are set and well-formed.
func (u *User) HasLocation() bool {
	if u.Lat == nil || u.Lon == nil {
		return false
	}
	return !math.IsNaN(*u.Lat) && !math.IsNaN(*u.Lon)
}

func (u *User) IsActive() bool {
	return u.State == UserStateActive
}

// Like represents an immutable swipe fact: actor swiped on target.
//
// Unique index on (actor_id, target_id) gives the at-most-one-row-per-pair
// invariant; inserts use ON CONFLICT DO NOTHING so a duplicate swipe is a
// no-op, never an overwrite. Rows are only ever deleted by an undo inside
// the undo window.
type Like struct {
	ID        string    `gorm:"primaryKey;size:36"`
	ActorID   uint64    `gorm:"not null;uniqueIndex:idx_likes_actor_target,priority:1"`
	TargetID  uint64    `gorm:"not null;uniqueIndex:idx_likes_actor_target,priority:2;index:idx_likes_target"`
	Direction Direction `gorm:"size:8;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// NewLike creates a Like with a fresh surrogate ID.
func NewLike(actorID, targetID uint64, direction Direction) *Like {
	return &Like{
		ID:        uuid.NewString(),
		ActorID:   actorID,
		TargetID:  targetID,
		Direction: direction,
	}
}

// MatchState is the lifecycle state of a match. All states but ACTIVE are
// terminal and carry end metadata.
type MatchState string

const (
	MatchStateActive       MatchState = "ACTIVE"
	MatchStateFriends      MatchState = "FRIENDS"
	MatchStateUnmatched    MatchState = "UNMATCHED"
	MatchStateGracefulExit MatchState = "GRACEFUL_EXIT"
	MatchStateBlocked      MatchState = "BLOCKED"
)

// Match represents a mutual LIKE between two users.
//
// The primary key is deterministic: the two user IDs sorted ascending and
// joined with "_". At most one row can ever exist per unordered pair, which
// makes creation idempotent under the symmetric-swipe race.
type Match struct {
	ID        string     `gorm:"primaryKey;size:48"`
	UserAID   uint64     `gorm:"not null;index:idx_matches_user_a"`
	UserBID   uint64     `gorm:"not null;index:idx_matches_user_b"`
	State     MatchState `gorm:"size:16;not null;default:ACTIVE;index"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	EndedAt   *time.Time
	EndedBy   *uint64
	EndReason string `gorm:"size:32"`
}

// MatchID derives the deterministic match identity for an unordered pair.
// Pure function: MatchID(a, b) == MatchID(b, a).
func MatchID(a, b uint64) string {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	return fmt.Sprintf("%d_%d", lo, hi)
}

// NewMatch creates an ACTIVE match with ordered user IDs and the
// deterministic ID.
func NewMatch(a, b uint64) *Match {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	return &Match{
		ID:      MatchID(a, b),
		UserAID: lo,
		UserBID: hi,
		State:   MatchStateActive,
	}
}

// OtherUser returns the counterpart of userID in this match.
func (m *Match) OtherUser(userID uint64) uint64 {
	if m.UserAID == userID {
		return m.UserBID
	}
	return m.UserAID
}

// Involves reports whether userID is one of the two matched users.
func (m *Match) Involves(userID uint64) bool {
	return m.UserAID == userID || m.UserBID == userID
}

// SessionState of a swipe session.
type SessionState string

const (
	SessionStateActive SessionState = "ACTIVE"
	SessionStateEnded  SessionState = "ENDED"
)

// SwipeSession is one user's bounded burst of swiping activity. Sessions are
// mutable (unlike Like/Match) because they're updated on every swipe.
//
// Invariants: likeCount + passCount == swipeCount; matchCount <= likeCount;
// at most one ACTIVE session per user at a time (enforced by the tracker
// under its per-user lock).
type SwipeSession struct {
	ID             string       `gorm:"primaryKey;size:36"`
	UserID         uint64       `gorm:"not null;index:idx_sessions_user_state,priority:1"`
	State          SessionState `gorm:"size:8;not null;index:idx_sessions_user_state,priority:2"`
	StartedAt      time.Time    `gorm:"not null"`
	LastActivityAt time.Time    `gorm:"not null"`
	EndedAt        *time.Time

	SwipeCount int `gorm:"not null;default:0"`
	LikeCount  int `gorm:"not null;default:0"`
	PassCount  int `gorm:"not null;default:0"`
	MatchCount int `gorm:"not null;default:0"`
}

// NewSwipeSession creates a fresh ACTIVE session for the user.
func NewSwipeSession(userID uint64, now time.Time) *SwipeSession {
	return &SwipeSession{
		ID:             uuid.NewString(),
		UserID:         userID,
		State:          SessionStateActive,
		StartedAt:      now,
		LastActivityAt: now,
	}
}

// RecordSwipe increments the session counters for one swipe.
func (s *SwipeSession) RecordSwipe(direction Direction, matched bool, now time.Time) {
	s.SwipeCount++
	s.LastActivityAt = now
	if direction == DirectionLike {
		s.LikeCount++
		if matched {
			s.MatchCount++
		}
	} else {
		s.PassCount++
	}
}

// IncrementMatchCount bumps the match counter after a match is discovered
// post-swipe. Capped at likeCount to preserve the session invariant.
func (s *SwipeSession) IncrementMatchCount() {
	if s.State == SessionStateActive && s.MatchCount < s.LikeCount {
		s.MatchCount++
	}
}

// End transitions the session to ENDED. Idempotent.
func (s *SwipeSession) End(now time.Time) {
	if s.State == SessionStateEnded {
		return
	}
	s.State = SessionStateEnded
	s.EndedAt = &now
}

// IsTimedOut reports whether the session has been inactive longer than timeout.
func (s *SwipeSession) IsTimedOut(timeout time.Duration, now time.Time) bool {
	if s.State == SessionStateEnded {
		return false
	}
	return now.Sub(s.LastActivityAt) >= timeout
}

// DurationSeconds returns elapsed session time in seconds.
func (s *SwipeSession) DurationSeconds(now time.Time) int64 {
	end := now
	if s.EndedAt != nil {
		end = *s.EndedAt
	}
	secs := int64(end.Sub(s.StartedAt).Seconds())
	if secs < 0 {
		return 0
	}
	return secs
}

// SwipesPerMinute returns the swipe velocity over the session so far.
func (s *SwipeSession) SwipesPerMinute(now time.Time) float64 {
	secs := s.DurationSeconds(now)
	if secs == 0 {
		return float64(s.SwipeCount)
	}
	return float64(s.SwipeCount) * 60.0 / float64(secs)
}

// LikeRatio returns likes/swipes for this session (0 when empty).
func (s *SwipeSession) LikeRatio() float64 {
	if s.SwipeCount == 0 {
		return 0
	}
	return float64(s.LikeCount) / float64(s.SwipeCount)
}

// Block is a trust-and-safety row consumed here only as a bidirectional
// exclusion signal. Rows are written by the safety subsystem.
type Block struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	BlockerID uint64    `gorm:"not null;uniqueIndex:idx_blocks_pair,priority:1"`
	BlockedID uint64    `gorm:"not null;uniqueIndex:idx_blocks_pair,priority:2;index:idx_blocks_blocked"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
