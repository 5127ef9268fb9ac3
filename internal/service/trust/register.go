package trust

import (
	"google.golang.org/grpc"

	"github.com/kindredapp/kindred/internal/app"
	"github.com/kindredapp/kindred/internal/engine/authenticity"
	"github.com/kindredapp/kindred/internal/engine/lexicon"
	"github.com/kindredapp/kindred/internal/engine/moderation"
	"github.com/kindredapp/kindred/internal/engine/textfeat"
	pb "github.com/kindredapp/kindred/internal/proto/trust"
)

// Registrar ties the Trust service into the gRPC server
type Registrar struct {
	appCtx *app.AppContext
	lex    *lexicon.Lexicon
}

// NewRegistrar creates a new Registrar for the Trust service
func NewRegistrar(appCtx *app.AppContext, lex *lexicon.Lexicon) *Registrar {
	return &Registrar{appCtx: appCtx, lex: lex}
}

// Register attaches the Trust service implementation to the gRPC server
func (r *Registrar) Register(s *grpc.Server) {
	eng := r.appCtx.Config.Engine

	service := New(
		r.appCtx,
		moderation.NewClassifier(textfeat.NewExtractor(r.lex), r.lex, eng.Moderation),
		moderation.NewImageClassifier(eng.Image),
		authenticity.NewAnalyzer(r.lex, eng.Authenticity),
	)
	pb.RegisterTrustServiceServer(s, service)
}
