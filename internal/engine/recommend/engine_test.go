package recommend_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kindredapp/kindred/internal/engine/compat"
	"github.com/kindredapp/kindred/internal/engine/lexicon"
	"github.com/kindredapp/kindred/internal/engine/personality"
	"github.com/kindredapp/kindred/internal/engine/profile"
	"github.com/kindredapp/kindred/internal/engine/recommend"
)

type stubSource struct {
	candidates []profile.Snapshot
	err        error
}

func (s *stubSource) QueryCandidates(context.Context, uint64, int) ([]profile.Snapshot, error) {
	return s.candidates, s.err
}

type stubStore struct {
	inserted []recommend.Recommendation
	err      error
}

func (s *stubStore) InsertRecommendations(_ context.Context, recs []recommend.Recommendation) error {
	s.inserted = append(s.inserted, recs...)
	return s.err
}

func newEngine(source recommend.CandidateSource, store recommend.Store, cfg recommend.Config) *recommend.Engine {
	lex := lexicon.Default()
	scorer := compat.NewScorer(personality.NewAnalyzer(lex), lex, compat.DefaultConfig())
	return recommend.NewEngine(scorer, source, store, cfg, slog.Default())
}

func user() profile.Snapshot {
	return profile.Snapshot{
		ID: 1, Age: 28, Gender: "male", InterestedIn: "female",
		LookingFor: "una relación seria",
		Bio:        "Me encanta viajar, cocinar y el senderismo por la montaña.",
		Interests:  []string{"viajes", "cocina", "senderismo"},
		Location:   "Madrid, Centro",
	}
}

// strongCandidate scores well against user(): same interests, area, intent.
func strongCandidate(id uint64) profile.Snapshot {
	return profile.Snapshot{
		ID: id, Age: 29, Gender: "female", InterestedIn: "male",
		LookingFor: "busco una relación seria",
		Bio:        "Viajar y cocinar son mi plan perfecto, amante del senderismo.",
		Interests:  []string{"viajes", "cocina", "senderismo"},
		Location:   "Madrid, Centro",
	}
}

// weakCandidate scores poorly: nothing in common, orientation mismatch.
func weakCandidate(id uint64) profile.Snapshot {
	return profile.Snapshot{
		ID: id, Age: 65, Gender: "male", InterestedIn: "male",
		LookingFor: "solo quiero divertirme",
		Interests:  []string{"ajedrez"},
		Location:   "Sevilla, Triana",
	}
}

func TestRank_FiltersBelowMinScore(t *testing.T) {
	store := &stubStore{}
	e := newEngine(&stubSource{}, store, recommend.DefaultConfig())

	recs := e.Rank(context.Background(), user(), []profile.Snapshot{
		strongCandidate(2),
		weakCandidate(3),
	})

	require.NotEmpty(t, recs)
	for _, r := range recs {
		assert.GreaterOrEqual(t, r.Score, 0.6)
		assert.NotEqual(t, uint64(3), r.TargetUserID)
	}
}

func TestRank_SortedDescendingAndTopN(t *testing.T) {
	store := &stubStore{}
	cfg := recommend.DefaultConfig()
	cfg.TopN = 3
	cfg.MinScore = 0 // keep everyone so ordering is observable
	e := newEngine(&stubSource{}, store, cfg)

	pool := []profile.Snapshot{weakCandidate(5), strongCandidate(2), strongCandidate(3), weakCandidate(6), strongCandidate(4)}
	recs := e.Rank(context.Background(), user(), pool)

	require.Len(t, recs, 3)
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].Score, recs[i].Score)
	}
	// all five retained rows were persisted even though the caller sees three
	assert.Len(t, store.inserted, 5)
}

func TestRank_SkipsSelf(t *testing.T) {
	e := newEngine(&stubSource{}, &stubStore{}, recommend.DefaultConfig())

	self := user()
	recs := e.Rank(context.Background(), user(), []profile.Snapshot{self, strongCandidate(2)})
	for _, r := range recs {
		assert.NotEqual(t, user().ID, r.TargetUserID)
	}
}

func TestGenerateForUser_QueryFailureDegradesToEmpty(t *testing.T) {
	e := newEngine(&stubSource{err: errors.New("db down")}, &stubStore{}, recommend.DefaultConfig())

	recs := e.GenerateForUser(context.Background(), user())
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestRank_CanceledContext(t *testing.T) {
	e := newEngine(&stubSource{}, &stubStore{}, recommend.DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	recs := e.Rank(ctx, user(), []profile.Snapshot{strongCandidate(2)})
	assert.Empty(t, recs)
}

func TestRank_StoreFailureStillReturnsResults(t *testing.T) {
	e := newEngine(&stubSource{}, &stubStore{err: errors.New("insert failed")}, recommend.DefaultConfig())

	recs := e.Rank(context.Background(), user(), []profile.Snapshot{strongCandidate(2)})
	assert.NotEmpty(t, recs)
}

func TestRank_TruncatesOversizedPool(t *testing.T) {
	cfg := recommend.DefaultConfig()
	cfg.MaxCandidates = 2
	cfg.MinScore = 0
	store := &stubStore{}
	e := newEngine(&stubSource{}, store, cfg)

	pool := []profile.Snapshot{strongCandidate(2), strongCandidate(3), strongCandidate(4), strongCandidate(5)}
	e.Rank(context.Background(), user(), pool)
	assert.Len(t, store.inserted, 2)
}

func TestRank_PopulatesRecommendationFields(t *testing.T) {
	e := newEngine(&stubSource{}, &stubStore{}, recommend.DefaultConfig())

	recs := e.Rank(context.Background(), user(), []profile.Snapshot{strongCandidate(2)})
	require.Len(t, recs, 1)

	r := recs[0]
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, uint64(1), r.SourceUserID)
	assert.Equal(t, uint64(2), r.TargetUserID)
	assert.NotEmpty(t, r.Reasons)
	assert.False(t, r.CreatedAt.IsZero())
	assert.Equal(t, recommend.ActionNone, r.ActionTaken)
}
