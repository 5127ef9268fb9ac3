package compat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kindredapp/kindred/internal/engine/compat"
	"github.com/kindredapp/kindred/internal/engine/lexicon"
	"github.com/kindredapp/kindred/internal/engine/personality"
	"github.com/kindredapp/kindred/internal/engine/profile"
)

func newScorer() *compat.Scorer {
	lex := lexicon.Default()
	return compat.NewScorer(personality.NewAnalyzer(lex), lex, compat.DefaultConfig())
}

func snap(id uint64, age int, interests []string) profile.Snapshot {
	return profile.Snapshot{ID: id, Age: age, Interests: interests}
}

func TestScore_Symmetric(t *testing.T) {
	s := newScorer()

	a := profile.Snapshot{
		ID: 1, Age: 28, Gender: "male", InterestedIn: "female",
		LookingFor: "una relación seria",
		Bio:        "Me encanta viajar, cocinar y el senderismo por la montaña.",
		Interests:  []string{"viajes", "cocina", "senderismo"},
		Location:   "Madrid, Centro",
	}
	b := profile.Snapshot{
		ID: 2, Age: 31, Gender: "female", InterestedIn: "male",
		LookingFor: "algo serio y estable",
		Bio:        "Viajar es mi pasión, disfruto cocinar para amigos y la naturaleza.",
		Interests:  []string{"viajes", "cocina", "yoga"},
		Location:   "Madrid, Chamberí",
	}

	ab := s.Score(a, b)
	ba := s.Score(b, a)
	assert.InDelta(t, ab.Score, ba.Score, 1e-9)
	assert.Equal(t, ab.Confidence, ba.Confidence)
}

func TestScore_Bounded(t *testing.T) {
	s := newScorer()

	pairs := [][2]profile.Snapshot{
		{snap(1, 20, nil), snap(2, 67, nil)},
		{snap(1, 25, []string{"a", "b"}), snap(2, 25, []string{"a", "b"})},
		{{ID: 1}, {ID: 2}},
	}
	for _, p := range pairs {
		r := s.Score(p[0], p[1])
		assert.GreaterOrEqual(t, r.Score, 0.0)
		assert.LessOrEqual(t, r.Score, 1.0)
	}
}

// interest overlap is |common| / max(len(a), len(b))
func TestScore_InterestOverlapFraction(t *testing.T) {
	s := newScorer()

	a := snap(1, 30, []string{"cine", "vino", "tenis", "jazz", "ajedrez"})
	b := snap(2, 30, []string{"cine", "vino"})

	// 2 shared out of max(5,2) = 0.4; verify through score monotonicity:
	// more shared interests must never lower the score
	low := s.Score(a, b)
	b.Interests = []string{"cine", "vino", "tenis", "jazz"}
	high := s.Score(a, b)
	assert.Greater(t, high.Score, low.Score)
}

func TestScore_EmptyProfilesStayNeutral(t *testing.T) {
	s := newScorer()

	// with no data every factor sits at its neutral prior, so the weighted
	// mean lands exactly on 0.5
	r := s.Score(profile.Snapshot{ID: 1}, profile.Snapshot{ID: 2})
	assert.InDelta(t, 0.5, r.Score, 0.05)
	assert.Empty(t, r.Reasons)
	assert.Zero(t, r.Confidence)
}

func TestScore_MissingInterestsNotPunished(t *testing.T) {
	s := newScorer()

	withEmpty := s.Score(snap(1, 30, nil), snap(2, 30, []string{"cine"}))
	withDisjoint := s.Score(snap(1, 30, []string{"tenis"}), snap(2, 30, []string{"cine"}))

	// absent data scores the neutral 0.5, disjoint data scores 0
	assert.Greater(t, withEmpty.Score, withDisjoint.Score)
}

func TestScore_IdenticalLocationBeatsDifferent(t *testing.T) {
	s := newScorer()

	a, b := snap(1, 30, nil), snap(2, 30, nil)
	a.Location, b.Location = "Madrid, Centro", "Madrid, Centro"
	same := s.Score(a, b)

	b.Location = "Sevilla, Triana"
	far := s.Score(a, b)

	assert.Greater(t, same.Score, far.Score)
}

func TestScore_AgeGapDecays(t *testing.T) {
	s := newScorer()

	near := s.Score(snap(1, 30, nil), snap(2, 32, nil))
	wide := s.Score(snap(1, 22, nil), snap(2, 60, nil))
	assert.Greater(t, near.Score, wide.Score)
}

func TestScore_OrientationMutualBeatsOneWay(t *testing.T) {
	s := newScorer()

	a := profile.Snapshot{ID: 1, Age: 30, Gender: "male", InterestedIn: "female"}
	b := profile.Snapshot{ID: 2, Age: 30, Gender: "female", InterestedIn: "male"}
	mutual := s.Score(a, b)

	b.InterestedIn = "female"
	oneWay := s.Score(a, b)
	assert.Greater(t, mutual.Score, oneWay.Score)
}

func TestScore_RelationshipIntent(t *testing.T) {
	s := newScorer()

	a, b := snap(1, 30, nil), snap(2, 30, nil)

	a.LookingFor, b.LookingFor = "una relación seria", "busco algo serio y compromiso"
	same := s.Score(a, b)

	b.LookingFor = "quiero casarme y formar una familia"
	adjacent := s.Score(a, b)

	b.LookingFor = "solo quiero divertirme y pasarlo bien"
	opposite := s.Score(a, b)

	assert.Greater(t, same.Score, adjacent.Score)
	assert.Greater(t, adjacent.Score, opposite.Score)
}

func TestScore_ReasonsForStrongFactors(t *testing.T) {
	s := newScorer()

	a := profile.Snapshot{
		ID: 1, Age: 29, Gender: "male", InterestedIn: "female",
		Interests: []string{"viajes", "cocina", "cine"},
		Location:  "Barcelona, Gràcia",
	}
	b := profile.Snapshot{
		ID: 2, Age: 30, Gender: "female", InterestedIn: "male",
		Interests: []string{"viajes", "cocina", "cine"},
		Location:  "Barcelona, Gràcia",
	}

	r := s.Score(a, b)
	assert.Contains(t, r.Reasons, "you share most of your interests")
	assert.Contains(t, r.Reasons, "you live in the same area")
	assert.Contains(t, r.Reasons, "you are close in age")
	assert.Contains(t, r.Reasons, "you are each other's stated type")
}

func TestScore_ConfidenceTracksCompleteness(t *testing.T) {
	s := newScorer()

	full := profile.Snapshot{
		ID: 1, Age: 30, Gender: "male", InterestedIn: "female",
		LookingFor: "algo serio", Bio: "bio con contenido suficiente",
		Interests: []string{"cine"}, Location: "Madrid", PhotoCount: 3,
	}
	empty := profile.Snapshot{ID: 2}

	rich := s.Score(full, full)
	sparse := s.Score(full, empty)
	assert.Greater(t, rich.Confidence, sparse.Confidence)
	assert.LessOrEqual(t, rich.Confidence, 1.0)
}

func TestScore_Deterministic(t *testing.T) {
	s := newScorer()

	a := profile.Snapshot{
		ID: 1, Age: 27, Gender: "female", InterestedIn: "male",
		Bio:       "Amante del arte, los viajes y la fotografía analógica.",
		Interests: []string{"arte", "viajes", "fotografia"},
	}
	b := profile.Snapshot{
		ID: 2, Age: 29, Gender: "male", InterestedIn: "female",
		Bio:       "Viajero empedernido, siempre con la cámara encima.",
		Interests: []string{"viajes", "fotografia", "cine"},
	}

	first := s.Score(a, b)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, s.Score(a, b))
	}
}
