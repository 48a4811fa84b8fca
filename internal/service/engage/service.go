package engage

import (
	"context"
	"errors"
	"strconv"

	"gorm.io/gorm"

	"github.com/kindledapp/kindled/internal/app"
	"github.com/kindledapp/kindled/internal/db"
	svcErr "github.com/kindledapp/kindled/internal/errors"
	pb "github.com/kindledapp/kindled/internal/proto/engage"
	"github.com/kindledapp/kindled/internal/repository"
	"github.com/kindledapp/kindled/internal/service/discovery"
	"github.com/kindledapp/kindled/internal/service/quality"
	"github.com/kindledapp/kindled/internal/service/swipe"
)

// Service implements the Engage gRPC API. It orchestrates the discovery,
// quality and swipe services; the business rules live in those packages.
// Each method corresponds to a gRPC endpoint defined in engage.proto.
type Service struct {
	appCtx   *app.AppContext
	finder   *discovery.Finder
	selector *discovery.PickSelector
	scorer   *quality.Scorer
	ledger   *swipe.Ledger
	tracker  *swipe.Tracker
	undo     *swipe.Coordinator

	userRepo  *repository.UserRepository
	likeRepo  *repository.LikeRepository
	matchRepo *repository.MatchRepository

	pb.UnimplementedEngageServiceServer
}

// NewEngageService creates an Engage service with dependencies from AppContext.
func NewEngageService(appCtx *app.AppContext) *Service {
	finder := discovery.NewFinder(appCtx)
	return &Service{
		appCtx:    appCtx,
		finder:    finder,
		selector:  discovery.NewPickSelector(appCtx, finder),
		scorer:    quality.NewScorer(appCtx),
		ledger:    swipe.NewLedger(appCtx),
		tracker:   swipe.NewTracker(appCtx),
		undo:      swipe.NewCoordinator(appCtx),
		userRepo:  repository.NewUserRepository(appCtx.DB),
		likeRepo:  repository.NewLikeRepository(appCtx.DB),
		matchRepo: repository.NewMatchRepository(appCtx.DB),
	}
}

// FindCandidates returns the caller's browse list, nearest first.
func (s *Service) FindCandidates(ctx context.Context, req *pb.FindCandidatesRequest) (*pb.FindCandidatesResponse, error) {
	s.appCtx.Logger.Debug("FindCandidates called", "user", req.GetUserId(), "limit", req.GetLimit())

	seeker, err := s.resolveUser(ctx, req.GetUserId(), "user_id")
	if err != nil {
		return nil, err
	}

	candidates, err := s.finder.FindCandidates(ctx, seeker)
	if err != nil {
		s.appCtx.Logger.Error("FindCandidates failed", "err", err)
		return nil, svcErr.Map(err)
	}

	if limit := int(req.GetLimit()); limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	resp := &pb.FindCandidatesResponse{}
	for _, c := range candidates {
		resp.Candidates = append(resp.Candidates, toPBCandidate(c.User, c.DistanceKm))
	}

	s.appCtx.Logger.Debug("FindCandidates result", "user", seeker.ID, "count", len(resp.Candidates))
	return resp, nil
}

// PutSwipe records a swipe end to end: input validation, session accounting,
// the ledger write, match bookkeeping, undo state and the like counter cache.
//
// Behavior:
//   - Self-swipes and unknown users are rejected before any session state is
//     touched.
//   - A session-limit block short-circuits before anything is persisted.
//   - Duplicates are success responses, not errors.
//   - On a mutual match the actor's session match counter is bumped and the
//     match id is returned.
func (s *Service) PutSwipe(ctx context.Context, req *pb.PutSwipeRequest) (*pb.PutSwipeResponse, error) {
	s.appCtx.Logger.Debug("PutSwipe called",
		"actor", req.GetActorUserId(), "target", req.GetTargetUserId(), "liked", req.GetLikedTarget())

	actorID, err := parseID(req.GetActorUserId(), "actor_user_id")
	if err != nil {
		return nil, err
	}
	targetID, err := parseID(req.GetTargetUserId(), "target_user_id")
	if err != nil {
		return nil, err
	}

	// invalid input must be rejected before any session state is touched
	if actorID == targetID {
		return nil, svcErr.InvalidArgument("cannot swipe on yourself")
	}
	for _, id := range []uint64{actorID, targetID} {
		if _, err := s.userRepo.GetByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, svcErr.InvalidArgument("actor and target must be existing users")
			}
			return nil, svcErr.Map(err)
		}
	}

	direction := db.DirectionPass
	if req.GetLikedTarget() {
		direction = db.DirectionLike
	}

	outcome, err := s.tracker.RecordSwipe(ctx, actorID, direction, false)
	if err != nil {
		s.appCtx.Logger.Error("session tracking failed", "err", err)
		return nil, svcErr.Map(err)
	}
	if !outcome.Allowed {
		return &pb.PutSwipeResponse{
			Blocked:       true,
			BlockedReason: outcome.BlockedReason,
		}, nil
	}

	result, err := s.ledger.RecordSwipe(ctx, actorID, targetID, direction)
	if errors.Is(err, swipe.ErrSelfSwipe) {
		return nil, svcErr.InvalidArgument("cannot swipe on yourself")
	}
	if errors.Is(err, swipe.ErrUserNotFound) {
		return nil, svcErr.InvalidArgument("actor and target must be existing users")
	}
	if err != nil {
		s.appCtx.Logger.Error("RecordSwipe failed", "err", err)
		return nil, svcErr.Map(err)
	}

	resp := &pb.PutSwipeResponse{
		Persisted: result.Persisted,
		Duplicate: result.Duplicate,
		Warning:   outcome.Warning,
	}

	if result.Duplicate {
		return resp, nil
	}

	if result.Match != nil {
		resp.MutualMatch = true
		resp.MatchId = result.Match.ID
		if err := s.tracker.RecordMatch(ctx, actorID); err != nil {
			s.appCtx.Logger.Error("session match count update failed", "err", err)
		}
	}

	if err := s.undo.RecordSwipe(ctx, actorID, result.Like, result.Match); err != nil {
		s.appCtx.Logger.Error("undo state write failed", "err", err)
	} else {
		resp.UndoWindowSeconds = int64(s.appCtx.Config.Undo.Window.Seconds())
	}

	if direction == db.DirectionLike {
		s.refreshLikeCount(ctx, targetID)
	}

	return resp, nil
}

// UndoSwipe reverts the caller's most recent swipe within the undo window.
func (s *Service) UndoSwipe(ctx context.Context, req *pb.UndoSwipeRequest) (*pb.UndoSwipeResponse, error) {
	s.appCtx.Logger.Debug("UndoSwipe called", "user", req.GetUserId())

	userID, err := parseID(req.GetUserId(), "user_id")
	if err != nil {
		return nil, err
	}

	outcome, err := s.undo.Undo(ctx, userID)
	if err != nil {
		s.appCtx.Logger.Error("Undo failed", "err", err)
		return nil, svcErr.Map(err)
	}

	return &pb.UndoSwipeResponse{
		Success:      outcome.Success,
		Message:      outcome.Message,
		MatchRemoved: outcome.MatchRemoved,
	}, nil
}

// GetDailyPick returns today's deterministic recommendation for the caller.
func (s *Service) GetDailyPick(ctx context.Context, req *pb.GetDailyPickRequest) (*pb.GetDailyPickResponse, error) {
	s.appCtx.Logger.Debug("GetDailyPick called", "user", req.GetUserId())

	seeker, err := s.resolveUser(ctx, req.GetUserId(), "user_id")
	if err != nil {
		return nil, err
	}

	pick, err := s.selector.GetDailyPick(ctx, seeker)
	if err != nil {
		s.appCtx.Logger.Error("GetDailyPick failed", "err", err)
		return nil, svcErr.Map(err)
	}
	if pick == nil {
		return &pb.GetDailyPickResponse{}, nil
	}

	return &pb.GetDailyPickResponse{
		Available:   true,
		Candidate:   toPBCandidate(pick.Candidate, pick.DistanceKm),
		Reason:      pick.Reason,
		AlreadySeen: pick.AlreadySeen,
	}, nil
}

// MarkDailyPickViewed acknowledges today's pick. Idempotent.
func (s *Service) MarkDailyPickViewed(ctx context.Context, req *pb.MarkDailyPickViewedRequest) (*pb.MarkDailyPickViewedResponse, error) {
	userID, err := parseID(req.GetUserId(), "user_id")
	if err != nil {
		return nil, err
	}

	if err := s.selector.MarkViewed(ctx, userID); err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.MarkDailyPickViewedResponse{}, nil
}

// GetCompatibility scores the pair from the caller's perspective.
func (s *Service) GetCompatibility(ctx context.Context, req *pb.GetCompatibilityRequest) (*pb.GetCompatibilityResponse, error) {
	s.appCtx.Logger.Debug("GetCompatibility called", "user", req.GetUserId(), "other", req.GetOtherUserId())

	me, err := s.resolveUser(ctx, req.GetUserId(), "user_id")
	if err != nil {
		return nil, err
	}
	them, err := s.resolveUser(ctx, req.GetOtherUserId(), "other_user_id")
	if err != nil {
		return nil, err
	}

	q, err := s.scorer.ScorePair(ctx, me, them)
	if err != nil {
		s.appCtx.Logger.Error("ScorePair failed", "err", err)
		return nil, svcErr.Map(err)
	}

	return &pb.GetCompatibilityResponse{
		Score:           uint32(q.Score),
		Label:           q.Label(),
		StarRating:      uint32(q.StarRating()),
		PaceSyncLevel:   q.PaceSyncLevel,
		SharedInterests: q.SharedInterests,
		Highlights:      q.Highlights,
	}, nil
}

// ListMatches pages through the caller's active matches, newest first.
func (s *Service) ListMatches(ctx context.Context, req *pb.ListMatchesRequest) (*pb.ListMatchesResponse, error) {
	s.appCtx.Logger.Debug("ListMatches called", "user", req.GetUserId(), "token", req.GetPaginationToken())

	userID, err := parseID(req.GetUserId(), "user_id")
	if err != nil {
		return nil, err
	}

	matches, nextToken, err := s.matchRepo.ListActiveForUser(ctx, userID, req.PaginationToken, 20)
	if err != nil {
		s.appCtx.Logger.Error("ListActiveForUser failed", "err", err)
		return nil, svcErr.Map(err)
	}

	resp := &pb.ListMatchesResponse{}
	for i := range matches {
		m := &matches[i]
		resp.Matches = append(resp.Matches, &pb.ListMatchesResponse_Item{
			MatchId:       m.ID,
			OtherUserId:   strconv.FormatUint(m.OtherUser(userID), 10),
			UnixTimestamp: uint64(m.CreatedAt.UnixMilli()),
		})
	}
	if nextToken != nil {
		resp.NextPaginationToken = nextToken
	}

	return resp, nil
}

// CountLikedYou returns how many users like the recipient.
// Cache-first strategy:
//  1. Attempts to read from Redis (likes:count:userID).
//  2. On a miss, falls back to the DB and refreshes the cache with a 1h TTL.
func (s *Service) CountLikedYou(ctx context.Context, req *pb.CountLikedYouRequest) (*pb.CountLikedYouResponse, error) {
	recipientID, err := parseID(req.GetRecipientUserId(), "recipient_user_id")
	if err != nil {
		return nil, err
	}

	if cached, err := s.appCtx.RedisCache.GetLikeCount(ctx, recipientID); err == nil && cached > 0 {
		return &pb.CountLikedYouResponse{Count: uint64(cached)}, nil
	}

	count, err := s.likeRepo.CountLikersOf(ctx, recipientID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	if err := s.appCtx.RedisCache.UpdateLikeCount(ctx, recipientID, count); err != nil {
		s.appCtx.Logger.Error("like count cache update failed", "err", err)
	}

	return &pb.CountLikedYouResponse{Count: uint64(count)}, nil
}

// refreshLikeCount rewrites the target's cached like counter from the DB.
// Best effort: a cache failure never fails the swipe.
func (s *Service) refreshLikeCount(ctx context.Context, targetID uint64) {
	count, err := s.likeRepo.CountLikersOf(ctx, targetID)
	if err != nil {
		s.appCtx.Logger.Error("like count refresh failed", "target", targetID, "err", err)
		return
	}
	if err := s.appCtx.RedisCache.UpdateLikeCount(ctx, targetID, count); err != nil {
		s.appCtx.Logger.Error("like count cache update failed", "target", targetID, "err", err)
	}
}

func (s *Service) resolveUser(ctx context.Context, raw, field string) (*db.User, error) {
	id, err := parseID(raw, field)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	if !user.IsActive() {
		return nil, svcErr.FailedPrecondition("user is not active")
	}
	return user, nil
}

func parseID(raw, field string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, svcErr.InvalidArgument(field + " must be a valid uint64")
	}
	return id, nil
}

func toPBCandidate(u *db.User, distanceKm *float64) *pb.Candidate {
	c := &pb.Candidate{
		UserId:   strconv.FormatUint(u.ID, 10),
		Username: u.Username,
		Age:      uint32(u.Age()),
		Gender:   u.Gender,
	}
	if distanceKm != nil {
		c.DistanceKm = distanceKm
	}
	return c
}
