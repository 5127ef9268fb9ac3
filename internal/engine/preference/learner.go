// Package preference recomputes a user's implicit preference model from
// their like/pass history. Every learning pass rebuilds the model from
// scratch (replace, not merge), which is what makes it idempotent.
package preference

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/kindredapp/kindred/internal/engine/profile"
)

// Action is what the user did with a recommendation.
type Action string

const (
	ActionLiked  Action = "liked"
	ActionPassed Action = "passed"
)

// Interaction is one historical like/pass event.
type Interaction struct {
	Action       Action
	TargetUserID uint64
	Timestamp    time.Time
}

// Model is the learned preference profile. A nil age range means no liked
// profiles carried a usable age yet.
type Model struct {
	AgeMin     *int
	AgeMax     *int
	Interests  []string // tags appearing in >= 30% of liked profiles, sorted
	Confidence float64  // min(1, likedCount/20)
}

// interestShare is the fraction of liked profiles an interest tag must appear
// in to count as preferred.
const interestShare = 0.3

// ageMargin widens the observed liked-age range on both ends.
const ageMargin = 2

// fullConfidenceLikes is the number of likes at which confidence saturates.
const fullConfidenceLikes = 20

// ProfileSource reads the profiles of liked users.
type ProfileSource interface {
	GetProfile(ctx context.Context, id uint64) (profile.Snapshot, error)
}

// Store replaces the persisted model. Last write wins; the engine holds no
// locks.
type Store interface {
	UpdatePreferenceModel(ctx context.Context, userID uint64, m Model) error
}

// Learner derives and persists preference models.
type Learner struct {
	source ProfileSource
	store  Store
	log    *slog.Logger
}

func NewLearner(source ProfileSource, store Store, log *slog.Logger) *Learner {
	return &Learner{source: source, store: store, log: log}
}

// Learn recomputes userID's model from history and writes it back. Profiles
// that cannot be read are skipped; only a failed final write is returned as
// an error. Running Learn twice on the same history yields the same model.
func (l *Learner) Learn(ctx context.Context, userID uint64, history []Interaction) (Model, error) {
	liked := lo.Filter(history, func(it Interaction, _ int) bool {
		return it.Action == ActionLiked
	})

	var likedProfiles []profile.Snapshot
	for _, it := range liked {
		p, err := l.source.GetProfile(ctx, it.TargetUserID)
		if err != nil {
			l.log.Debug("skipping unreadable liked profile", "user", userID, "target", it.TargetUserID, "err", err)
			continue
		}
		likedProfiles = append(likedProfiles, p)
	}

	model := derive(liked, likedProfiles)

	if err := l.store.UpdatePreferenceModel(ctx, userID, model); err != nil {
		return Model{}, fmt.Errorf("replacing preference model for user %d: %w", userID, err)
	}
	return model, nil
}

// derive is the pure recomputation step, separated out for testability.
func derive(liked []Interaction, likedProfiles []profile.Snapshot) Model {
	m := Model{
		Confidence: float64(len(liked)) / fullConfidenceLikes,
	}
	if m.Confidence > 1 {
		m.Confidence = 1
	}

	var ages []int
	for _, p := range likedProfiles {
		if p.Age > 0 {
			ages = append(ages, p.Age)
		}
	}
	if len(ages) > 0 {
		minAge, maxAge := ages[0], ages[0]
		for _, a := range ages[1:] {
			if a < minAge {
				minAge = a
			}
			if a > maxAge {
				maxAge = a
			}
		}
		low, high := minAge-ageMargin, maxAge+ageMargin
		m.AgeMin, m.AgeMax = &low, &high
	}

	if len(likedProfiles) > 0 {
		counts := make(map[string]int)
		for _, p := range likedProfiles {
			for _, tag := range lo.Uniq(normalizeTags(p.Interests)) {
				counts[tag]++
			}
		}
		for tag, n := range counts {
			if float64(n)/float64(len(likedProfiles)) >= interestShare {
				m.Interests = append(m.Interests, tag)
			}
		}
		sort.Strings(m.Interests)
	}

	return m
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if n := strings.ToLower(strings.TrimSpace(t)); n != "" {
			out = append(out, n)
		}
	}
	return out
}
