package starters_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kindredapp/kindred/internal/engine/lexicon"
	"github.com/kindredapp/kindred/internal/engine/personality"
	"github.com/kindredapp/kindred/internal/engine/profile"
	"github.com/kindredapp/kindred/internal/engine/starters"
)

func newGenerator() *starters.Generator {
	return starters.NewGenerator(personality.NewAnalyzer(lexicon.Default()))
}

func TestGenerate_TopEightSortedByPrior(t *testing.T) {
	g := newGenerator()

	a := profile.Snapshot{ID: 1, Bio: "Fiesta, amigos y salir a bailar.", Interests: []string{"viajes", "cine", "cocina"}}
	b := profile.Snapshot{ID: 2, Bio: "Lectura, tranquilidad y planes en casa.", Interests: []string{"viajes", "cine", "cocina"}}

	out := g.Generate(a, b)
	require.Len(t, out, 8)
	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i-1].SuccessRate, out[i].SuccessRate)
	}
}

func TestGenerate_SharedInterestPromptsFirst(t *testing.T) {
	g := newGenerator()

	a := profile.Snapshot{ID: 1, Interests: []string{"viajes"}}
	b := profile.Snapshot{ID: 2, Interests: []string{"viajes"}}

	out := g.Generate(a, b)
	require.NotEmpty(t, out)
	assert.Equal(t, starters.CategorySharedInterest, out[0].Category)
	assert.Contains(t, out[0].Text, "viajes")
	assert.Contains(t, out[0].ContextTags, "interest:viajes")
}

func TestGenerate_NoSharedInterestsFallsBackToLifestyle(t *testing.T) {
	g := newGenerator()

	a := profile.Snapshot{ID: 1, Interests: []string{"ajedrez"}}
	b := profile.Snapshot{ID: 2, Interests: []string{"vela"}}

	out := g.Generate(a, b)
	require.Len(t, out, 8)
	for _, st := range out {
		assert.Equal(t, starters.CategoryLifestyle, st.Category)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	g := newGenerator()

	a := profile.Snapshot{ID: 1, Bio: "Me encanta viajar y el arte.", Interests: []string{"viajes", "arte"}}
	b := profile.Snapshot{ID: 2, Bio: "Viajar es mi pasión.", Interests: []string{"arte", "viajes"}}

	first := g.Generate(a, b)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, g.Generate(a, b))
	}
}

func TestGenerate_InterestOrderIndependent(t *testing.T) {
	g := newGenerator()

	a := profile.Snapshot{ID: 1, Interests: []string{"cine", "arte", "viajes"}}
	b1 := profile.Snapshot{ID: 2, Interests: []string{"viajes", "cine", "arte"}}
	b2 := profile.Snapshot{ID: 2, Interests: []string{"arte", "viajes", "cine"}}

	assert.Equal(t, g.Generate(a, b1), g.Generate(a, b2))
}

func TestGenerate_AtMostThreeSharedInterestPrompts(t *testing.T) {
	g := newGenerator()

	shared := []string{"arte", "cine", "cocina", "viajes", "yoga"}
	a := profile.Snapshot{ID: 1, Interests: shared}
	b := profile.Snapshot{ID: 2, Interests: shared}

	out := g.Generate(a, b)
	count := 0
	for _, st := range out {
		if st.Category == starters.CategorySharedInterest {
			count++
		}
	}
	assert.Equal(t, 3, count)
}

func TestGenerate_ComplementaryPromptNeedsBothSides(t *testing.T) {
	g := newGenerator()
	lex := lexicon.Default()

	// saturate the opposite traits so both sides clear the score bar
	extKw := lex.TraitKeywords("extraversion")
	disKw := lex.TraitKeywords("discretion")
	extravert := profile.Snapshot{ID: 1, Bio: strings.Join(extKw, " "), Interests: extKw}
	reserved := profile.Snapshot{ID: 2, Bio: strings.Join(disKw, " "), Interests: disKw}

	var complementary bool
	for _, st := range g.Generate(extravert, reserved) {
		if st.Category == starters.CategoryComplementary {
			complementary = true
		}
	}
	assert.True(t, complementary, "expected a complementary prompt for opposite profiles")

	// two same-side profiles never trigger it
	for _, st := range g.Generate(extravert, extravert) {
		assert.NotEqual(t, starters.CategoryComplementary, st.Category)
	}
}
