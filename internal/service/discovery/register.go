package discovery

import (
	"google.golang.org/grpc"

	"github.com/kindredapp/kindred/internal/app"
	"github.com/kindredapp/kindred/internal/engine/compat"
	"github.com/kindredapp/kindred/internal/engine/lexicon"
	"github.com/kindredapp/kindred/internal/engine/personality"
	"github.com/kindredapp/kindred/internal/engine/recommend"
	pb "github.com/kindredapp/kindred/internal/proto/discovery"
	"github.com/kindredapp/kindred/internal/repository"
)

// Registrar ties the Discovery service into the gRPC server
type Registrar struct {
	appCtx *app.AppContext
	lex    *lexicon.Lexicon
}

// NewRegistrar creates a new Registrar for the Discovery service
func NewRegistrar(appCtx *app.AppContext, lex *lexicon.Lexicon) *Registrar {
	return &Registrar{appCtx: appCtx, lex: lex}
}

// Register attaches the Discovery service implementation to the gRPC server
func (r *Registrar) Register(s *grpc.Server) {
	profileRepo := repository.NewProfileRepository(r.appCtx.DB)
	recoRepo := repository.NewRecommendationRepository(r.appCtx.DB)

	scorer := compat.NewScorer(personality.NewAnalyzer(r.lex), r.lex, r.appCtx.Config.Engine.Compat)
	engine := recommend.NewEngine(scorer, profileRepo, recoRepo, r.appCtx.Config.Engine.Recommend, r.appCtx.Logger)

	service := New(r.appCtx, r.lex, engine)
	pb.RegisterDiscoveryServiceServer(s, service)
}
