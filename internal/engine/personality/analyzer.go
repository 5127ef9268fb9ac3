// Package personality derives named trait scores from a profile's bio and
// interest tags via keyword matching against the lexicon. Deterministic and
// stateless: identical input always yields identical output.
package personality

import (
	"math"
	"strings"

	"github.com/kindredapp/kindred/internal/engine/lexicon"
)

// Insight is one trait's result: a 0..100 score, the matching description
// band, and the pairing hints used elsewhere in the engine.
type Insight struct {
	Trait                Trait
	Score                int
	Description          string
	CompatibilityFactors []string
}

// Per-hit weights: a keyword found in the bio counts more than one found in
// the interest tags, because bios are free-form and harder to game.
const (
	bioHitWeight      = 20
	interestHitWeight = 15
)

// Analyzer scores the eight traits. Safe for concurrent use.
type Analyzer struct {
	lex *lexicon.Lexicon
}

func NewAnalyzer(lex *lexicon.Lexicon) *Analyzer {
	return &Analyzer{lex: lex}
}

// Analyze returns one Insight per trait, in fixed trait order.
func (a *Analyzer) Analyze(bio string, interests []string) []Insight {
	insights := make([]Insight, 0, len(AllTraits()))
	for _, trait := range AllTraits() {
		score := a.Score(trait, bio, interests)
		insights = append(insights, Insight{
			Trait:                trait,
			Score:                score,
			Description:          bandDescription(trait, score),
			CompatibilityFactors: compatibilityFactors[trait],
		})
	}
	return insights
}

// Score computes a single trait's 0..100 score:
//
//	min(100, 100 * matchedWeight / maxPossibleWeight)
//
// where each keyword can contribute a bio hit (20) and an interest hit (15),
// and maxPossibleWeight assumes every keyword hit both.
func (a *Analyzer) Score(trait Trait, bio string, interests []string) int {
	keywords := a.lex.TraitKeywords(string(trait))
	if len(keywords) == 0 {
		return 0
	}

	bioLower := strings.ToLower(bio)
	interestsLower := make([]string, len(interests))
	for i, tag := range interests {
		interestsLower[i] = strings.ToLower(tag)
	}

	matched := 0
	for _, kw := range keywords {
		if bioLower != "" && strings.Contains(bioLower, kw) {
			matched += bioHitWeight
		}
		for _, tag := range interestsLower {
			if strings.Contains(tag, kw) {
				matched += interestHitWeight
				break
			}
		}
	}

	maxPossible := len(keywords) * (bioHitWeight + interestHitWeight)
	score := int(math.Round(100 * float64(matched) / float64(maxPossible)))
	if score > 100 {
		score = 100
	}
	return score
}

// HasKeywords reports whether the profile text mentions any keyword of the
// given trait at all. The compatibility scorer uses this to detect shared
// trait categories without caring about magnitude.
func (a *Analyzer) HasKeywords(trait Trait, bio string, interests []string) bool {
	bioLower := strings.ToLower(bio)
	for _, kw := range a.lex.TraitKeywords(string(trait)) {
		if bioLower != "" && strings.Contains(bioLower, kw) {
			return true
		}
		for _, tag := range interests {
			if strings.Contains(strings.ToLower(tag), kw) {
				return true
			}
		}
	}
	return false
}
