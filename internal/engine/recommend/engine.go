// Package recommend iterates a bounded candidate pool through the
// compatibility scorer and turns the survivors into persisted, ranked
// recommendations.
package recommend

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/kindredapp/kindred/internal/engine/compat"
	"github.com/kindredapp/kindred/internal/engine/profile"
)

// ActionTaken is the post-creation mutation the UI collaborator applies to a
// recommendation. The engine itself never changes it.
type ActionTaken string

const (
	ActionNone   ActionTaken = ""
	ActionLiked  ActionTaken = "liked"
	ActionPassed ActionTaken = "passed"
	ActionMatch  ActionTaken = "matched"
)

// Recommendation is a persisted compatibility result for one user pair.
type Recommendation struct {
	ID           string
	SourceUserID uint64
	TargetUserID uint64
	Score        float64
	Reasons      []string
	Confidence   float64
	CreatedAt    time.Time
	Viewed       bool
	ActionTaken  ActionTaken
}

// CandidateSource supplies the bounded candidate pool. Implemented by the
// persistence layer; expected to exclude the user themself and anyone
// already decided on.
type CandidateSource interface {
	QueryCandidates(ctx context.Context, forUser uint64, limit int) ([]profile.Snapshot, error)
}

// Store persists generated recommendations.
type Store interface {
	InsertRecommendations(ctx context.Context, recs []Recommendation) error
}

// Config carries the engine bounds.
type Config struct {
	MinScore      float64 `validate:"gte=0,lte=1"` // acceptance threshold for inclusion
	MaxCandidates int     `validate:"gt=0"`        // candidate pool bound per call
	TopN          int     `validate:"gt=0"`        // how many results the caller gets
}

func DefaultConfig() Config {
	return Config{MinScore: 0.6, MaxCandidates: 100, TopN: 10}
}

// Engine scores candidate pools. Per-candidate scoring has no shared state,
// so calls are safe to run concurrently.
type Engine struct {
	scorer *compat.Scorer
	source CandidateSource
	store  Store
	cfg    Config
	log    *slog.Logger
	now    func() time.Time
}

func NewEngine(scorer *compat.Scorer, source CandidateSource, store Store, cfg Config, log *slog.Logger) *Engine {
	return &Engine{scorer: scorer, source: source, store: store, cfg: cfg, log: log, now: time.Now}
}

// GenerateForUser queries the candidate pool and ranks it. A persistence
// failure during the query degrades to an empty result set, never an error:
// the surrounding application shows "no recommendations" instead of crashing.
func (e *Engine) GenerateForUser(ctx context.Context, user profile.Snapshot) []Recommendation {
	candidates, err := e.source.QueryCandidates(ctx, user.ID, e.cfg.MaxCandidates)
	if err != nil {
		e.log.Error("candidate query failed, returning no recommendations", "user", user.ID, "err", err)
		return []Recommendation{}
	}
	return e.Rank(ctx, user, candidates)
}

// Rank scores every candidate, retains those at or above the acceptance
// threshold, sorts descending, persists all retained results and returns the
// top N. The caller owns the pool bound; Rank additionally truncates
// oversized pools as a safety net.
//
// Cancellation is checked between candidates so large pools can be abandoned
// mid-loop.
func (e *Engine) Rank(ctx context.Context, user profile.Snapshot, candidates []profile.Snapshot) []Recommendation {
	if len(candidates) > e.cfg.MaxCandidates {
		candidates = candidates[:e.cfg.MaxCandidates]
	}

	retained := make([]Recommendation, 0, len(candidates))
	createdAt := e.now()

	for _, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			e.log.Warn("recommendation scoring canceled", "user", user.ID, "scored", len(retained))
			return []Recommendation{}
		}
		if candidate.ID == user.ID {
			continue
		}

		result := e.scorer.Score(user, candidate)
		if result.Score < e.cfg.MinScore {
			continue
		}
		retained = append(retained, Recommendation{
			ID:           uuid.NewString(),
			SourceUserID: user.ID,
			TargetUserID: candidate.ID,
			Score:        result.Score,
			Reasons:      result.Reasons,
			Confidence:   result.Confidence,
			CreatedAt:    createdAt,
		})
	}

	sort.Slice(retained, func(i, j int) bool {
		return retained[i].Score > retained[j].Score
	})

	if len(retained) > 0 {
		// a failed write is logged but does not cost the user their results
		if err := e.store.InsertRecommendations(ctx, retained); err != nil {
			e.log.Error("persisting recommendations failed", "user", user.ID, "count", len(retained), "err", err)
		}
	}

	if len(retained) > e.cfg.TopN {
		retained = retained[:e.cfg.TopN]
	}
	return retained
}
