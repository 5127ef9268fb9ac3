package textfeat_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kindredapp/kindred/internal/engine/lexicon"
	"github.com/kindredapp/kindred/internal/engine/textfeat"
)

func newExtractor() *textfeat.Extractor {
	return textfeat.NewExtractor(lexicon.Default())
}

func TestAnalyze_ShortInputIsNeutral(t *testing.T) {
	e := newExtractor()

	for _, text := range []string{"", " ", "a", "  .  "} {
		f := e.Analyze(text)
		assert.Contains(t, f.Issues, textfeat.IssueTooShort)
		assert.Zero(t, f.Toxicity)
		assert.Zero(t, f.SpamProbability)
		assert.Zero(t, f.ExplicitScore)
		assert.Equal(t, textfeat.SentimentNeutral, f.Sentiment)
		assert.Equal(t, 1.0, f.LanguageAppropriateness)
	}
}

// every score stays inside [0,1] no matter how hostile the input
func TestAnalyze_ScoresStayBounded(t *testing.T) {
	e := newExtractor()

	samples := []string{
		"hola, ¿qué tal tu semana?",
		"GANA DINERO GRATIS!!! www.click-aqui.com",
		strings.Repeat("idiota imbecil estupido basura ", 20),
		strings.Repeat("GRATIS!!! ", 50) + "https://spam.example.com www.otro.com +34 612 345 678",
		"mierda joder puta " + strings.Repeat("xq q k d x ", 10),
		"te voy a matar, muerete, i will kill you",
		"sexo xxx nudes onlyfans fotos intimas",
	}
	for _, text := range samples {
		f := e.Analyze(text)
		for name, v := range map[string]float64{
			"toxicity": f.Toxicity,
			"spam":     f.SpamProbability,
			"explicit": f.ExplicitScore,
			"language": f.LanguageAppropriateness,
		} {
			assert.GreaterOrEqual(t, v, 0.0, "%s below 0 for %q", name, text)
			assert.LessOrEqual(t, v, 1.0, "%s above 1 for %q", name, text)
		}
	}
}

func TestAnalyze_SpamScenario(t *testing.T) {
	e := newExtractor()

	// money promise + freebie + link categories plus the URL itself
	f := e.Analyze("GANA DINERO GRATIS!!! www.click-aqui.com")
	assert.GreaterOrEqual(t, f.SpamProbability, 0.6)
	assert.Contains(t, f.Issues, "commercial content detected")
	assert.Contains(t, f.Issues, "contains links")
}

func TestAnalyze_ToxicityAccumulates(t *testing.T) {
	e := newExtractor()

	clean := e.Analyze("me encanta pasear por la playa al atardecer")
	assert.Zero(t, clean.Toxicity)

	insult := e.Analyze("eres un idiota y un imbecil")
	assert.InDelta(t, 0.2, insult.Toxicity, 1e-9)

	threat := e.Analyze("te voy a matar")
	assert.GreaterOrEqual(t, threat.Toxicity, 0.3)
}

func TestAnalyze_Shouting(t *testing.T) {
	e := newExtractor()

	f := e.Analyze("DEJA DE ESCRIBIRME AHORA MISMO")
	assert.GreaterOrEqual(t, f.Toxicity, 0.2)
	assert.Contains(t, f.Issues, "excessive capitalization")
}

func TestAnalyze_DominantRepetition(t *testing.T) {
	e := newExtractor()

	f := e.Analyze("hola hola hola hola ya")
	assert.GreaterOrEqual(t, f.SpamProbability, 0.3)
}

func TestAnalyze_Sentiment(t *testing.T) {
	e := newExtractor()

	assert.Equal(t, textfeat.SentimentPositive, e.Analyze("me encanta este sitio, es genial").Sentiment)
	assert.Equal(t, textfeat.SentimentNegative, e.Analyze("odio los lunes, son horribles y me ponen triste").Sentiment)
	assert.Equal(t, textfeat.SentimentNeutral, e.Analyze("mañana trabajo hasta las seis").Sentiment)
}

func TestAnalyze_LanguageAppropriateness(t *testing.T) {
	e := newExtractor()

	clean := e.Analyze("encantado de saludarte, ¿cómo estás?")
	assert.Equal(t, 1.0, clean.LanguageAppropriateness)

	vulgar := e.Analyze("esto es una mierda, joder")
	assert.InDelta(t, 0.6, vulgar.LanguageAppropriateness, 1e-9)
	assert.Contains(t, vulgar.Issues, "vulgar language detected")
}

func TestAnalyze_Deterministic(t *testing.T) {
	e := newExtractor()

	text := "GANA DINERO GRATIS!!! www.click-aqui.com"
	first := e.Analyze(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, e.Analyze(text))
	}
}

func TestAnalyze_DetectsLanguage(t *testing.T) {
	e := newExtractor()

	f := e.Analyze("me apetece mucho conocerte este fin de semana en la ciudad")
	assert.Equal(t, "es", f.Language)
}
