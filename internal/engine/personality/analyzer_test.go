package personality_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kindredapp/kindred/internal/engine/lexicon"
	"github.com/kindredapp/kindred/internal/engine/personality"
)

func newAnalyzer() *personality.Analyzer {
	return personality.NewAnalyzer(lexicon.Default())
}

func TestAnalyze_FixedTraitOrder(t *testing.T) {
	a := newAnalyzer()

	insights := a.Analyze("", nil)
	require.Len(t, insights, len(personality.AllTraits()))
	for i, trait := range personality.AllTraits() {
		assert.Equal(t, trait, insights[i].Trait)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	a := newAnalyzer()

	bio := "Me encanta viajar, el arte y aprender idiomas nuevos."
	interests := []string{"viajes", "arte", "lectura"}

	first := a.Analyze(bio, interests)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, a.Analyze(bio, interests))
	}
}

func TestScore_EmptyInputIsZero(t *testing.T) {
	a := newAnalyzer()

	for _, trait := range personality.AllTraits() {
		assert.Zero(t, a.Score(trait, "", nil))
	}
}

func TestScore_KeywordsRaiseScore(t *testing.T) {
	a := newAnalyzer()

	none := a.Score(personality.TraitOpenness, "trabajo en una oficina", nil)
	some := a.Score(personality.TraitOpenness, "me encanta viajar y el arte", nil)
	more := a.Score(personality.TraitOpenness, "me encanta viajar y el arte", []string{"viajes", "musica"})

	assert.Zero(t, none)
	assert.Greater(t, some, none)
	assert.Greater(t, more, some)
}

func TestScore_Bounded(t *testing.T) {
	a := newAnalyzer()

	// every openness keyword in both bio and interests cannot exceed 100
	lex := lexicon.Default()
	kws := lex.TraitKeywords("openness")
	bio := ""
	for _, kw := range kws {
		bio += kw + " "
	}
	score := a.Score(personality.TraitOpenness, bio, kws)
	assert.LessOrEqual(t, score, 100)
	assert.Greater(t, score, 0)
}

func TestAnalyze_DescriptionsAndFactorsPresent(t *testing.T) {
	a := newAnalyzer()

	insights := a.Analyze("Persona tranquila, me gusta el yoga y la meditación.", []string{"yoga"})
	for _, in := range insights {
		assert.NotEmpty(t, in.Description, "trait %s has no description", in.Trait)
		assert.NotEmpty(t, in.CompatibilityFactors, "trait %s has no factors", in.Trait)
		assert.GreaterOrEqual(t, in.Score, 0)
		assert.LessOrEqual(t, in.Score, 100)
	}
}

func TestHasKeywords(t *testing.T) {
	a := newAnalyzer()

	assert.True(t, a.HasKeywords(personality.TraitExtraversion, "me encanta salir de fiesta", nil))
	assert.True(t, a.HasKeywords(personality.TraitOpenness, "", []string{"viajes"}))
	assert.False(t, a.HasKeywords(personality.TraitDiscretion, "fiesta y amigos", []string{"bailar"}))
}
