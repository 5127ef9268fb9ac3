package lexicon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kindredapp/kindred/internal/engine/lexicon"
)

func TestDefaultCompiles(t *testing.T) {
	lex := lexicon.Default()
	require.NotNil(t, lex)
}

func TestToxicHits_LeetSpeak(t *testing.T) {
	lex := lexicon.Default()

	// "idiota" obfuscated with digit substitutions must still match
	assert.NotEmpty(t, lex.ToxicHits("eres un 1d10ta"))
	assert.NotEmpty(t, lex.ToxicHits("eres un idiota"))
	assert.Empty(t, lex.ToxicHits("me encanta la montaña"))
}

func TestToxicHits_CaseInsensitive(t *testing.T) {
	lex := lexicon.Default()
	assert.Equal(t, lex.ToxicHits("IDIOTA"), lex.ToxicHits("idiota"))
}

func TestURLCount(t *testing.T) {
	lex := lexicon.Default()
	assert.Equal(t, 0, lex.URLCount("sin enlaces aquí"))
	assert.Equal(t, 1, lex.URLCount("mira www.example.com ahora"))
	assert.Equal(t, 2, lex.URLCount("https://a.com y http://b.org"))
}

func TestContactFound(t *testing.T) {
	lex := lexicon.Default()
	assert.True(t, lex.ContactFound("escríbeme al +34 612 345 678"))
	assert.True(t, lex.ContactFound("mejor hablamos por whatsapp"))
	assert.False(t, lex.ContactFound("hablemos por aquí"))
}

func TestGenericBioAndDisposableEmail(t *testing.T) {
	lex := lexicon.Default()

	assert.True(t, lex.IsGenericBio("pregúntame lo que quieras"))
	assert.False(t, lex.IsGenericBio("soy bióloga marina y toco el violonchelo"))

	assert.True(t, lex.IsDisposableEmail("x@mailinator.com"))
	assert.False(t, lex.IsDisposableEmail("x@gmail.com"))
}

func TestSentimentCounts(t *testing.T) {
	lex := lexicon.Default()
	assert.Greater(t, lex.PositiveCount("me encanta, es genial"), 0)
	assert.Greater(t, lex.NegativeCount("odio esto, es horrible"), 0)
}

func TestTraitKeywords(t *testing.T) {
	lex := lexicon.Default()
	for _, trait := range []string{
		"openness", "conscientiousness", "extraversion", "agreeableness",
		"emotional_stability", "lifestyle_openness", "communication", "discretion",
	} {
		assert.NotEmpty(t, lex.TraitKeywords(trait), "trait %s has no keywords", trait)
	}
	assert.Empty(t, lex.TraitKeywords("no_such_trait"))
}

func TestCustomTables(t *testing.T) {
	lex, err := lexicon.New(lexicon.Tables{
		Toxic: []string{"zorp"},
	})
	require.NoError(t, err)
	assert.Len(t, lex.ToxicHits("eres un zorp total"), 1)
	// words outside the custom table don't match
	assert.Empty(t, lex.ToxicHits("eres un idiota"))
}
