// Package starters derives ranked conversation prompts for a pair of
// profiles from their shared interests and complementary personality traits.
// Success rates are static priors, not measured outcomes.
package starters

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/kindredapp/kindred/internal/engine/personality"
	"github.com/kindredapp/kindred/internal/engine/profile"
)

// Category tells the UI where a prompt came from.
type Category string

const (
	CategorySharedInterest Category = "shared_interest"
	CategoryLifestyle      Category = "lifestyle"
	CategoryComplementary  Category = "complementary"
)

// Starter is one generated prompt with its static prior.
type Starter struct {
	Category    Category
	Text        string
	ContextTags []string
	SuccessRate float64
}

const (
	maxSharedInterestPrompts = 3
	maxStarters              = 8

	// trait score both sides must exceed for a complementary prompt
	complementaryBar = 60
)

// sharedInterestTemplates rotate over the first shared interests; earlier
// templates carry higher priors.
var sharedInterestTemplates = []struct {
	format string
	prior  float64
}{
	{"He visto que a los dos os gusta %s, ¿qué fue lo último que hiciste?", 0.86},
	{"¡También me encanta %s! ¿Cómo empezaste?", 0.83},
	{"Tenemos %s en común, ¿me recomiendas algo para empezar?", 0.80},
}

// lifestylePrompts is the fixed generic library.
var lifestylePrompts = []Starter{
	{CategoryLifestyle, "¿Cuál es tu plan perfecto para un domingo?", []string{"plans"}, 0.74},
	{CategoryLifestyle, "¿Playa o montaña? No hay respuesta incorrecta… bueno, quizá sí.", []string{"travel"}, 0.72},
	{CategoryLifestyle, "¿Qué es lo mejor que te ha pasado esta semana?", []string{"smalltalk"}, 0.70},
	{CategoryLifestyle, "¿Cocinas o eres más de pedir a domicilio?", []string{"food"}, 0.68},
	{CategoryLifestyle, "¿Cuál fue tu último viaje y cuál será el próximo?", []string{"travel"}, 0.66},
	{CategoryLifestyle, "¿Qué canción no puedes dejar de escuchar últimamente?", []string{"music"}, 0.64},
	{CategoryLifestyle, "¿Madrugar para entrenar o trasnochar viendo series?", []string{"habits"}, 0.62},
	{CategoryLifestyle, "Si mañana fuera festivo sorpresa, ¿qué harías?", []string{"plans"}, 0.60},
	{CategoryLifestyle, "¿Cuál es tu restaurante favorito que nadie conoce?", []string{"food"}, 0.58},
	{CategoryLifestyle, "¿Qué habilidad inútil dominas a la perfección?", []string{"smalltalk"}, 0.56},
}

// complementaryPairs are the three fixed opposite-trait pairings. A prompt
// fires when one profile scores high on the first trait and the other on the
// second, in either direction.
var complementaryPairs = []struct {
	first, second personality.Trait
	text          string
	tags          []string
	prior         float64
}{
	{
		personality.TraitExtraversion, personality.TraitDiscretion,
		"Parece que uno de los dos es el alma de la fiesta y el otro más de planes tranquilos, ¿quién convence a quién?",
		[]string{"social"}, 0.67,
	},
	{
		personality.TraitOpenness, personality.TraitConscientiousness,
		"Entre improvisar un viaje y planearlo al detalle, ¿cómo sería el vuestro?",
		[]string{"travel", "planning"}, 0.65,
	},
	{
		personality.TraitLifestyleOpenness, personality.TraitEmotionalStability,
		"¿Un plan con adrenalina o una tarde sin prisas? Convénceme de tu opción.",
		[]string{"plans"}, 0.63,
	},
}

// Generator builds starter lists. Stateless; safe for concurrent use.
type Generator struct {
	personality *personality.Analyzer
}

func NewGenerator(p *personality.Analyzer) *Generator {
	return &Generator{personality: p}
}

// Generate combines shared-interest, generic and complementary-trait prompts,
// sorted by prior success rate descending and truncated to the top eight.
// Deterministic for a given pair of profiles.
func (g *Generator) Generate(a, b profile.Snapshot) []Starter {
	out := make([]Starter, 0, maxStarters)

	shared := lo.Intersect(normalizeTags(a.Interests), normalizeTags(b.Interests))
	sort.Strings(shared)
	for i, interest := range shared {
		if i >= maxSharedInterestPrompts {
			break
		}
		tpl := sharedInterestTemplates[i]
		out = append(out, Starter{
			Category:    CategorySharedInterest,
			Text:        fmt.Sprintf(tpl.format, interest),
			ContextTags: []string{"interest:" + interest},
			SuccessRate: tpl.prior,
		})
	}

	out = append(out, lifestylePrompts...)

	for _, pair := range complementaryPairs {
		aFirst := g.personality.Score(pair.first, a.Bio, a.Interests)
		aSecond := g.personality.Score(pair.second, a.Bio, a.Interests)
		bFirst := g.personality.Score(pair.first, b.Bio, b.Interests)
		bSecond := g.personality.Score(pair.second, b.Bio, b.Interests)
		if (aFirst > complementaryBar && bSecond > complementaryBar) ||
			(bFirst > complementaryBar && aSecond > complementaryBar) {
			out = append(out, Starter{
				Category:    CategoryComplementary,
				Text:        pair.text,
				ContextTags: pair.tags,
				SuccessRate: pair.prior,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SuccessRate > out[j].SuccessRate
	})
	if len(out) > maxStarters {
		out = out[:maxStarters]
	}
	return out
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
