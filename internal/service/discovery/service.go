package discovery

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/kindredapp/kindred/internal/app"
	"github.com/kindredapp/kindred/internal/db"
	"github.com/kindredapp/kindred/internal/engine/lexicon"
	"github.com/kindredapp/kindred/internal/engine/personality"
	"github.com/kindredapp/kindred/internal/engine/preference"
	"github.com/kindredapp/kindred/internal/engine/recommend"
	"github.com/kindredapp/kindred/internal/engine/starters"
	svcErr "github.com/kindredapp/kindred/internal/errors"
	"github.com/kindredapp/kindred/internal/notify"
	pb "github.com/kindredapp/kindred/internal/proto/discovery"
	"github.com/kindredapp/kindred/internal/repository"
)

// Service implements the Discovery gRPC API: recommendations, decisions,
// likers and the matched-pair helpers (starters, personality insights).
// Each method corresponds to a gRPC endpoint defined in discovery.proto.
type Service struct {
	appCtx       *app.AppContext
	profileRepo  *repository.ProfileRepository
	decisionRepo *repository.DecisionRepository
	recoRepo     *repository.RecommendationRepository

	engine      *recommend.Engine
	learner     *preference.Learner
	personality *personality.Analyzer
	starters    *starters.Generator

	pb.UnimplementedDiscoveryServiceServer
}

// likersPageSize is the fixed page length for ListLikedYou.
const likersPageSize = 5

// recsCacheTTL bounds staleness of the cached recommendation list between
// decisions (decisions invalidate it explicitly).
const recsCacheTTL = 15 * time.Minute

// New creates the Discovery service with dependencies from AppContext.
// All engine components share the immutable lexicon.
func New(appCtx *app.AppContext, lex *lexicon.Lexicon, engine *recommend.Engine) *Service {
	profileRepo := repository.NewProfileRepository(appCtx.DB)
	pa := personality.NewAnalyzer(lex)

	return &Service{
		appCtx:       appCtx,
		profileRepo:  profileRepo,
		decisionRepo: repository.NewDecisionRepository(appCtx.DB),
		recoRepo:     repository.NewRecommendationRepository(appCtx.DB),
		engine:       engine,
		learner:      preference.NewLearner(profileRepo, profileRepo, appCtx.Logger),
		personality:  pa,
		starters:     starters.NewGenerator(pa),
	}
}

// GetRecommendations returns the user's ranked matches.
//
// Behavior:
//   - Serves from the Redis rec-list cache when present.
//   - Otherwise loads the user's snapshot (NotFound if missing) and runs the
//     recommendation engine over a fresh candidate pool, caching the result.
//   - Engine-side query failures degrade to an empty list, never an error.
func (s *Service) GetRecommendations(ctx context.Context, req *pb.GetRecommendationsRequest) (*pb.GetRecommendationsResponse, error) {
	s.appCtx.Logger.Debug("GetRecommendations called", "user", req.GetUserId())

	userID, err := parseID(req.GetUserId())
	if err != nil {
		return nil, svcErr.InvalidArgument("user_id must be a valid uint64")
	}

	key := s.appCtx.RedisCache.KeyForRecommendations(userID)
	if cached, err := s.appCtx.RedisCache.Get(ctx, key); err == nil && cached != "" {
		var recs []recommend.Recommendation
		if json.Unmarshal([]byte(cached), &recs) == nil {
			return recommendationsResponse(recs), nil
		}
	}

	snapshot, err := s.profileRepo.GetProfile(ctx, userID)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	recs := s.engine.GenerateForUser(ctx, snapshot)
	if len(recs) > 0 {
		if b, err := json.Marshal(recs); err == nil {
			_ = s.appCtx.RedisCache.Set(ctx, key, string(b), recsCacheTTL)
		}
	}

	return recommendationsResponse(recs), nil
}

func recommendationsResponse(recs []recommend.Recommendation) *pb.GetRecommendationsResponse {
	resp := &pb.GetRecommendationsResponse{}
	for _, rec := range recs {
		resp.Recommendations = append(resp.Recommendations, &pb.GetRecommendationsResponse_Recommendation{
			Id:           rec.ID,
			TargetUserId: strconv.FormatUint(rec.TargetUserID, 10),
			Score:        rec.Score,
			Reasons:      rec.Reasons,
			Confidence:   rec.Confidence,
		})
	}
	return resp
}

// PutDecision inserts or updates a decision and returns whether it resulted
// in a mutual like.
//
// Behavior:
//   - Validates actor and recipient IDs (must be different).
//   - Inserts/updates via repository.CreateOrUpdateDecision.
//   - Updates Redis like count (+1 or -1) with TTL refresh.
//   - Records the action on the matching recommendation, if any.
//   - If liked = true, checks for mutual like; a match notifies both sides.
//   - Kicks the preference learner on every like (best effort).
func (s *Service) PutDecision(ctx context.Context, req *pb.PutDecisionRequest) (*pb.PutDecisionResponse, error) {
	s.appCtx.Logger.Debug(
		"PutDecision called",
		"actor", req.GetActorUserId(),
		"recipient", req.GetRecipientUserId(),
		"liked", req.GetLikedRecipient(),
	)

	actorID, err := parseID(req.GetActorUserId())
	if err != nil {
		return nil, svcErr.InvalidArgument("actor_user_id must be a valid uint64")
	}
	recipientID, err := parseID(req.GetRecipientUserId())
	if err != nil {
		return nil, svcErr.InvalidArgument("recipient_user_id must be a valid uint64")
	}
	if actorID == recipientID {
		return nil, svcErr.InvalidArgument("cannot decide on yourself")
	}

	// write/update decision
	if err := s.decisionRepo.CreateOrUpdateDecision(ctx, actorID, recipientID, req.GetLikedRecipient()); err != nil {
		return nil, svcErr.Map(err)
	}

	// the decided-on user must not reappear in cached recommendations
	_ = s.appCtx.RedisCache.InvalidateRecommendations(ctx, actorID)

	// update cache
	key := s.appCtx.RedisCache.KeyForLikeCount(recipientID)
	if req.GetLikedRecipient() {
		_, _ = s.appCtx.RedisCache.Incr(ctx, key) // like count +1
	} else {
		_, _ = s.appCtx.RedisCache.Decr(ctx, key) // like count -1
	}
	_ = s.appCtx.RedisCache.Client.Expire(ctx, key, time.Hour).Err() // refresh TTL

	// reflect the decision on the stored recommendation
	action := recommend.ActionPassed
	if req.GetLikedRecipient() {
		action = recommend.ActionLiked
	}

	// check if recipient also liked actor → mutual
	var mutual bool
	if req.GetLikedRecipient() {
		mutual, _ = s.decisionRepo.HasLiked(ctx, recipientID, actorID)
	}
	if mutual {
		action = recommend.ActionMatch
		s.appCtx.Notifier.Notify(ctx, actorID, notify.Notification{
			Type: "new_match", Title: "Nuevo match", FromID: recipientID, Message: "¡Tenéis un match!",
		})
		s.appCtx.Notifier.Notify(ctx, recipientID, notify.Notification{
			Type: "new_match", Title: "Nuevo match", FromID: actorID, Message: "¡Tenéis un match!",
		})
	}
	if err := s.recoRepo.SetAction(ctx, actorID, recipientID, action); err != nil {
		s.appCtx.Logger.Warn("failed to record recommendation action", "actor", actorID, "err", err)
	}

	// recompute the actor's preference model from full history; failures
	// never block the decision itself
	if req.GetLikedRecipient() {
		s.relearnPreferences(ctx, actorID)
	}

	return &pb.PutDecisionResponse{MutualLikes: mutual}, nil
}

// relearnPreferences rebuilds the actor's preference model from their
// decision history and invalidates cached recommendations.
func (s *Service) relearnPreferences(ctx context.Context, actorID uint64) {
	decisions, err := s.decisionRepo.ListByActor(ctx, actorID, 500)
	if err != nil {
		s.appCtx.Logger.Warn("preference relearn skipped, history unavailable", "actor", actorID, "err", err)
		return
	}

	history := make([]preference.Interaction, len(decisions))
	for i, d := range decisions {
		history[i] = toInteraction(d)
	}

	if _, err := s.learner.Learn(ctx, actorID, history); err != nil {
		s.appCtx.Logger.Warn("preference relearn failed", "actor", actorID, "err", err)
		return
	}
	_ = s.appCtx.RedisCache.InvalidateRecommendations(ctx, actorID)
}

func toInteraction(d db.Decision) preference.Interaction {
	action := preference.ActionPassed
	if d.Liked {
		action = preference.ActionLiked
	}
	return preference.Interaction{
		Action:       action,
		TargetUserID: d.RecipientID,
		Timestamp:    d.UpdatedAt,
	}
}

// ListLikedYou returns users who liked the given recipient.
//
// Behavior:
//   - Excludes users that the recipient explicitly passed.
//   - new_only additionally excludes mutual likes.
//   - Supports cursor-based pagination with paginationToken.
//   - Returns actor_id + timestamp pairs.
func (s *Service) ListLikedYou(ctx context.Context, req *pb.ListLikedYouRequest) (*pb.ListLikedYouResponse, error) {
	s.appCtx.Logger.Debug("ListLikedYou called", "recipient", req.GetRecipientUserId(), "new_only", req.GetNewOnly())

	recipientID, err := parseID(req.GetRecipientUserId())
	if err != nil {
		return nil, svcErr.InvalidArgument("recipient_user_id must be a valid uint64")
	}

	decisions, nextToken, err := s.decisionRepo.GetLikers(ctx, recipientID, req.GetNewOnly(), req.PaginationToken, likersPageSize)
	if err != nil {
		s.appCtx.Logger.Error("GetLikers failed", "err", err)
		return nil, svcErr.Map(err)
	}

	resp := &pb.ListLikedYouResponse{}
	for _, d := range decisions {
		resp.Likers = append(resp.Likers, &pb.ListLikedYouResponse_Liker{
			ActorId:       strconv.FormatUint(d.ActorID, 10),
			UnixTimestamp: uint64(d.UpdatedAt.UnixMilli()),
		})
	}
	if nextToken != nil {
		resp.NextPaginationToken = nextToken
	}
	return resp, nil
}

// CountLikedYou returns how many users liked the recipient.
// Cache-first strategy:
//  1. Attempts to read from Redis (likes:count:userID).
//  2. If cache miss or parse error, falls back to DB via repository.CountLikers.
//  3. On DB fetch, updates Redis with a 1h TTL.
func (s *Service) CountLikedYou(ctx context.Context, req *pb.CountLikedYouRequest) (*pb.CountLikedYouResponse, error) {
	s.appCtx.Logger.Debug("CountLikedYou called", "recipient", req.GetRecipientUserId())

	recipientID, err := parseID(req.GetRecipientUserId())
	if err != nil {
		return nil, svcErr.InvalidArgument("recipient_user_id must be a valid uint64")
	}

	key := s.appCtx.RedisCache.KeyForLikeCount(recipientID)

	// try cache first
	if cached, _ := s.appCtx.RedisCache.Get(ctx, key); cached != "" {
		if n, err := strconv.ParseUint(cached, 10, 64); err == nil {
			// refresh TTL since this user is active
			_ = s.appCtx.RedisCache.Client.Expire(ctx, key, time.Hour).Err()
			return &pb.CountLikedYouResponse{Count: n}, nil
		}
	}

	// fallback: DB
	count, err := s.decisionRepo.CountLikers(ctx, recipientID)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	// set + TTL refresh
	_ = s.appCtx.RedisCache.Set(ctx, key, strconv.FormatInt(count, 10), time.Hour)

	return &pb.CountLikedYouResponse{Count: uint64(count)}, nil
}

// GetConversationStarters returns ranked openers for a matched pair.
// Deterministic for a given pair.
func (s *Service) GetConversationStarters(ctx context.Context, req *pb.GetConversationStartersRequest) (*pb.GetConversationStartersResponse, error) {
	userID, err := parseID(req.GetUserId())
	if err != nil {
		return nil, svcErr.InvalidArgument("user_id must be a valid uint64")
	}
	matchID, err := parseID(req.GetMatchUserId())
	if err != nil {
		return nil, svcErr.InvalidArgument("match_user_id must be a valid uint64")
	}

	a, err := s.profileRepo.GetProfile(ctx, userID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	b, err := s.profileRepo.GetProfile(ctx, matchID)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	resp := &pb.GetConversationStartersResponse{}
	for _, st := range s.starters.Generate(a, b) {
		resp.Starters = append(resp.Starters, &pb.GetConversationStartersResponse_Starter{
			Category:    string(st.Category),
			Text:        st.Text,
			ContextTags: st.ContextTags,
			SuccessRate: st.SuccessRate,
		})
	}
	return resp, nil
}

// GetPersonalityProfile returns keyword-derived trait insights, in fixed
// trait order.
func (s *Service) GetPersonalityProfile(ctx context.Context, req *pb.GetPersonalityProfileRequest) (*pb.GetPersonalityProfileResponse, error) {
	userID, err := parseID(req.GetUserId())
	if err != nil {
		return nil, svcErr.InvalidArgument("user_id must be a valid uint64")
	}

	snapshot, err := s.profileRepo.GetProfile(ctx, userID)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	resp := &pb.GetPersonalityProfileResponse{}
	for _, in := range s.personality.Analyze(snapshot.Bio, snapshot.Interests) {
		resp.Insights = append(resp.Insights, &pb.GetPersonalityProfileResponse_Insight{
			Trait:                string(in.Trait),
			Score:                uint32(in.Score),
			Description:          in.Description,
			CompatibilityFactors: in.CompatibilityFactors,
		})
	}
	return resp, nil
}

func parseID(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}
