package trust

import (
	"context"
	"strconv"

	"github.com/kindredapp/kindred/internal/app"
	"github.com/kindredapp/kindred/internal/engine/authenticity"
	"github.com/kindredapp/kindred/internal/engine/moderation"
	svcErr "github.com/kindredapp/kindred/internal/errors"
	pb "github.com/kindredapp/kindred/internal/proto/trust"
	"github.com/kindredapp/kindred/internal/repository"
)

// Service implements the Trust gRPC API: text, image and profile checks.
// Verdicts are advisory; enforcement is the caller's job. Non-approve
// verdicts are logged for the review queue, and a failed log write never
// fails the check itself.
type Service struct {
	appCtx      *app.AppContext
	profileRepo *repository.ProfileRepository
	modRepo     *repository.ModerationRepository

	text    *moderation.Classifier
	image   *moderation.ImageClassifier
	profile *authenticity.Analyzer

	pb.UnimplementedTrustServiceServer
}

// New creates the Trust service with dependencies from AppContext.
func New(
	appCtx *app.AppContext,
	text *moderation.Classifier,
	image *moderation.ImageClassifier,
	profile *authenticity.Analyzer,
) *Service {
	return &Service{
		appCtx:      appCtx,
		profileRepo: repository.NewProfileRepository(appCtx.DB),
		modRepo:     repository.NewModerationRepository(appCtx.DB),
		text:        text,
		image:       image,
		profile:     profile,
	}
}

// CheckText classifies free text against content policy.
//
// Behavior:
//   - context selects the length/link rules ("message", "bio", "profile");
//     unknown contexts fall back to message rules.
//   - Internal classifier errors fail open: approve, confidence 0.5.
func (s *Service) CheckText(ctx context.Context, req *pb.CheckTextRequest) (*pb.VerdictResponse, error) {
	s.appCtx.Logger.Debug("CheckText called", "context", req.GetContext(), "target", req.GetTargetId())

	textCtx := moderation.Context(req.GetContext())
	switch textCtx {
	case moderation.ContextMessage, moderation.ContextBio, moderation.ContextProfile:
	case "":
		textCtx = moderation.ContextMessage
	default:
		return nil, svcErr.InvalidArgument("context must be one of: message, bio, profile")
	}

	verdict := s.text.ClassifyText(req.GetText(), textCtx)
	s.logVerdict(ctx, string(textCtx), req.GetTargetId(), verdict)
	return toResponse(verdict), nil
}

// CheckImage classifies pre-extracted image features. Feature extraction
// happens upstream; this endpoint only applies policy thresholds.
func (s *Service) CheckImage(ctx context.Context, req *pb.CheckImageRequest) (*pb.VerdictResponse, error) {
	s.appCtx.Logger.Debug("CheckImage called", "target", req.GetTargetId())

	verdict := s.image.ClassifyImage(moderation.ImageFeatures{
		ExplicitScore: req.GetExplicitScore(),
		ViolenceScore: req.GetViolenceScore(),
		FakeScore:     req.GetFakeScore(),
		QualityScore:  req.GetQualityScore(),
	})
	s.logVerdict(ctx, "image", req.GetTargetId(), verdict)
	return toResponse(verdict), nil
}

// CheckProfile scores a full profile for authenticity.
//
// Behavior:
//   - Loads the user's snapshot (NotFound if missing).
//   - Underage profiles always come back with at least a reject.
func (s *Service) CheckProfile(ctx context.Context, req *pb.CheckProfileRequest) (*pb.VerdictResponse, error) {
	s.appCtx.Logger.Debug("CheckProfile called", "user", req.GetUserId())

	userID, err := strconv.ParseUint(req.GetUserId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("user_id must be a valid uint64")
	}

	snapshot, err := s.profileRepo.GetProfile(ctx, userID)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	verdict := s.profile.Analyze(snapshot)
	s.logVerdict(ctx, "profile", req.GetUserId(), verdict)
	return toResponse(verdict), nil
}

// logVerdict records non-approve outcomes. Log failures are swallowed: the
// verdict still stands.
func (s *Service) logVerdict(ctx context.Context, targetType, targetID string, v moderation.Verdict) {
	if v.Action == moderation.ActionApprove {
		return
	}
	if err := s.modRepo.LogVerdict(ctx, targetType, targetID, v); err != nil {
		s.appCtx.Logger.Warn("failed to persist moderation log", "target", targetID, "err", err)
	}
}

func toResponse(v moderation.Verdict) *pb.VerdictResponse {
	resp := &pb.VerdictResponse{
		IsAppropriate:   v.IsAppropriate,
		Confidence:      v.Confidence,
		Severity:        v.Severity.String(),
		SuggestedAction: v.Action.String(),
		Explanation:     v.Explanation,
	}
	for _, f := range v.Flags {
		resp.Flags = append(resp.Flags, &pb.VerdictResponse_Flag{
			Type:        string(f.Type),
			Confidence:  f.Confidence,
			Description: f.Description,
		})
	}
	return resp
}
