// Package compat computes the weighted multi-factor compatibility score
// between two profiles, with human-readable reasons and a confidence measure
// based on how much profile data actually backed the score.
package compat

import (
	"strings"
	"unicode"

	"github.com/samber/lo"

	"github.com/kindredapp/kindred/internal/engine/lexicon"
	"github.com/kindredapp/kindred/internal/engine/personality"
	"github.com/kindredapp/kindred/internal/engine/profile"
)

// Weights are the caller-supplied factor weights. They are data, not code:
// experiments tune them through configuration. Orientation and relationship
// fit are not listed here; they enter the final score as fixed 0.1 terms.
type Weights struct {
	Interests   float64 `validate:"gte=0"`
	Location    float64 `validate:"gte=0"`
	Age         float64 `validate:"gte=0"`
	Personality float64 `validate:"gte=0"`
	Lifestyle   float64 `validate:"gte=0"`
}

func DefaultWeights() Weights {
	return Weights{
		Interests:   0.30,
		Location:    0.15,
		Age:         0.15,
		Personality: 0.25,
		Lifestyle:   0.15,
	}
}

func (w Weights) sum() float64 {
	return w.Interests + w.Location + w.Age + w.Personality + w.Lifestyle
}

// fixed additive weights for the two fit factors outside the tunable set
const (
	orientationWeight  = 0.1
	relationshipWeight = 0.1
)

// Config carries the scorer tunables.
type Config struct {
	Weights Weights

	// AgeRangeMin/Max bound the user population; the age sub-score decays
	// linearly over half this span. Kept in config (not taken from either
	// profile) so the factor stays symmetric.
	AgeRangeMin int `validate:"gte=18"`
	AgeRangeMax int `validate:"gtfield=AgeRangeMin"`
}

func DefaultConfig() Config {
	return Config{
		Weights:     DefaultWeights(),
		AgeRangeMin: 18,
		AgeRangeMax: 68,
	}
}

// Result is the outcome of scoring one ordered pair of profiles.
type Result struct {
	Score      float64  // 0..1 weighted compatibility
	Reasons    []string // one sentence per notably strong factor
	Confidence float64  // fraction of scoring fields populated on both sides
}

// subScore is the output shape of every named factor function: a value in
// [0,1] plus the sentence to surface when the factor is notably strong.
type subScore struct {
	value   float64
	notable float64 // threshold above which reason is surfaced
	reason  string
}

// neutral is the prior used whenever a factor has no data to work with.
// Absence of data must not be punished as incompatibility.
const neutral = 0.5

// sharedTraitCategories are the five fixed trait-keyword categories whose
// joint presence in both profiles nudges the personality factor.
var sharedTraitCategories = []personality.Trait{
	personality.TraitOpenness,
	personality.TraitExtraversion,
	personality.TraitAgreeableness,
	personality.TraitEmotionalStability,
	personality.TraitLifestyleOpenness,
}

// Scorer combines the per-factor sub-scores. Stateless apart from read-only
// configuration; safe for concurrent use.
type Scorer struct {
	personality *personality.Analyzer
	lex         *lexicon.Lexicon
	cfg         Config
}

func NewScorer(p *personality.Analyzer, lex *lexicon.Lexicon, cfg Config) *Scorer {
	return &Scorer{personality: p, lex: lex, cfg: cfg}
}

// Score computes the compatibility of a with b.
//
// Final score = (Σ wᵢ·sᵢ + 0.1·orientation + 0.1·relationship) / (Σ wᵢ + 0.2),
// so the result is a weighted mean in [0,1] whatever the configured weights.
func (s *Scorer) Score(a, b profile.Snapshot) Result {
	rel := s.relationshipFit(a, b)

	factors := []struct {
		weight float64
		sub    subScore
	}{
		{s.cfg.Weights.Interests, interestOverlap(a, b)},
		{s.cfg.Weights.Location, locationScore(a, b)},
		{s.cfg.Weights.Age, s.ageScore(a, b)},
		{s.cfg.Weights.Personality, s.personalityScore(a, b)},
		{s.cfg.Weights.Lifestyle, s.lifestyleScore(a, b, rel.value)},
		{orientationWeight, orientationFit(a, b)},
		{relationshipWeight, rel},
	}

	var total float64
	var reasons []string
	for _, f := range factors {
		total += f.weight * f.sub.value
		if f.sub.reason != "" && f.sub.value >= f.sub.notable {
			reasons = append(reasons, f.sub.reason)
		}
	}

	score := total / (s.cfg.Weights.sum() + orientationWeight + relationshipWeight)
	if score > 1 {
		score = 1
	}
	if score < 0 {
		score = 0
	}

	return Result{
		Score:      score,
		Reasons:    reasons,
		Confidence: (a.Completeness() + b.Completeness()) / 2,
	}
}

// --- factor functions ---

// interestOverlap is |common| / max(|A|, |B|); neutral when either side has
// no interests. Symmetric by construction.
func interestOverlap(a, b profile.Snapshot) subScore {
	if len(a.Interests) == 0 || len(b.Interests) == 0 {
		return subScore{value: neutral, notable: 2}
	}
	common := lo.Intersect(normalizeTags(a.Interests), normalizeTags(b.Interests))
	denom := len(a.Interests)
	if len(b.Interests) > denom {
		denom = len(b.Interests)
	}
	return subScore{
		value:   float64(len(common)) / float64(denom),
		notable: 0.7,
		reason:  "you share most of your interests",
	}
}

// locationScore is 1.0 on an identical location string, otherwise the shared
// fraction of comma-separated tokens; neutral when either side is missing.
func locationScore(a, b profile.Snapshot) subScore {
	la, lb := strings.TrimSpace(a.Location), strings.TrimSpace(b.Location)
	if la == "" || lb == "" {
		return subScore{value: neutral, notable: 2}
	}
	if strings.EqualFold(la, lb) {
		return subScore{value: 1, notable: 0.8, reason: "you live in the same area"}
	}
	ta, tb := locationTokens(la), locationTokens(lb)
	common := lo.Intersect(ta, tb)
	denom := len(ta)
	if len(tb) > denom {
		denom = len(tb)
	}
	return subScore{
		value:   float64(len(common)) / float64(denom),
		notable: 0.8,
		reason:  "you live close to each other",
	}
}

// ageScore decays linearly with the age gap over half the configured age
// range. Symmetric by construction.
func (s *Scorer) ageScore(a, b profile.Snapshot) subScore {
	if a.Age <= 0 || b.Age <= 0 {
		return subScore{value: neutral, notable: 2}
	}
	halfSpan := float64(s.cfg.AgeRangeMax-s.cfg.AgeRangeMin) / 2
	gap := float64(a.Age - b.Age)
	if gap < 0 {
		gap = -gap
	}
	value := 1 - gap/halfSpan
	if value < 0 {
		value = 0
	}
	return subScore{value: value, notable: 0.8, reason: "you are close in age"}
}

// orientationFit: 1.0 when each party's stated interest covers the other's
// gender, 0.7 when only one direction matches, 0.1 when neither, neutral
// when data is missing.
func orientationFit(a, b profile.Snapshot) subScore {
	if a.InterestedIn == "" || b.InterestedIn == "" || a.Gender == "" || b.Gender == "" {
		return subScore{value: neutral, notable: 2}
	}
	ab := wantsGender(a.InterestedIn, b.Gender)
	ba := wantsGender(b.InterestedIn, a.Gender)
	switch {
	case ab && ba:
		return subScore{value: 1, notable: 1, reason: "you are each other's stated type"}
	case ab || ba:
		return subScore{value: 0.7, notable: 2}
	default:
		return subScore{value: 0.1, notable: 2}
	}
}

func wantsGender(interestedIn, gender string) bool {
	return strings.EqualFold(interestedIn, "all") || strings.EqualFold(interestedIn, gender)
}

// relationshipFit maps both free-text "looking for" fields onto fixed intent
// categories: same category 1.0, adjacent 0.7, different 0.3, missing or
// unclassifiable 0.5.
func (s *Scorer) relationshipFit(a, b profile.Snapshot) subScore {
	ca := s.intentCategory(a.LookingFor)
	cb := s.intentCategory(b.LookingFor)
	if ca == "" || cb == "" {
		return subScore{value: neutral, notable: 2}
	}
	switch {
	case ca == cb:
		return subScore{value: 1, notable: 0.7, reason: "you want the same kind of relationship"}
	case adjacentIntents(ca, cb):
		return subScore{value: 0.7, notable: 0.7, reason: "you want compatible kinds of relationship"}
	default:
		return subScore{value: 0.3, notable: 2}
	}
}

// adjacentIntents pairs categories close enough to count as a partial match.
func adjacentIntents(x, y string) bool {
	pair := x + "/" + y
	switch pair {
	case "serious/marriage", "marriage/serious", "casual/friendship", "friendship/casual":
		return true
	}
	return false
}

// intentCategory returns the first intent category whose keywords appear in
// text, "" when nothing matches.
func (s *Scorer) intentCategory(text string) string {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return ""
	}
	for _, name := range s.lex.IntentNames() {
		for _, kw := range s.lex.IntentKeywords(name) {
			if strings.Contains(lower, kw) {
				return name
			}
		}
	}
	return ""
}

// personalityScore: base 0.5, plus up to 0.3 from significant-word overlap
// between the bios, plus 0.1 per trait-keyword category present in both
// profiles. Clamped to 1.
func (s *Scorer) personalityScore(a, b profile.Snapshot) subScore {
	value := neutral

	wa, wb := s.significantWords(a.Bio), s.significantWords(b.Bio)
	if len(wa) > 0 && len(wb) > 0 {
		common := lo.Intersect(wa, wb)
		denom := len(wa)
		if len(wb) > denom {
			denom = len(wb)
		}
		value += 0.3 * float64(len(common)) / float64(denom)
	}

	for _, trait := range sharedTraitCategories {
		if s.personality.HasKeywords(trait, a.Bio, a.Interests) &&
			s.personality.HasKeywords(trait, b.Bio, b.Interests) {
			value += 0.1
		}
	}

	if value > 1 {
		value = 1
	}
	return subScore{value: value, notable: 0.7, reason: "your bios suggest similar personalities"}
}

// lifestyleScore: base 0.5, plus 0.15 per shared lifestyle category, plus a
// flat 0.2 when the relationship intents are compatible. Clamped to 1.
func (s *Scorer) lifestyleScore(a, b profile.Snapshot, relFit float64) subScore {
	value := neutral

	for _, name := range s.lex.LifestyleNames() {
		if s.mentionsCategory(name, a) && s.mentionsCategory(name, b) {
			value += 0.15
		}
	}
	if relFit >= 0.7 {
		value += 0.2
	}

	if value > 1 {
		value = 1
	}
	return subScore{value: value, notable: 0.7, reason: "your lifestyles line up well"}
}

func (s *Scorer) mentionsCategory(category string, p profile.Snapshot) bool {
	bioLower := strings.ToLower(p.Bio)
	for _, kw := range s.lex.LifestyleKeywords(category) {
		if bioLower != "" && strings.Contains(bioLower, kw) {
			return true
		}
		for _, tag := range p.Interests {
			if strings.Contains(strings.ToLower(tag), kw) {
				return true
			}
		}
	}
	return false
}

// --- helpers ---

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if n := strings.ToLower(strings.TrimSpace(t)); n != "" {
			out = append(out, n)
		}
	}
	return out
}

func locationTokens(loc string) []string {
	parts := strings.Split(loc, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.ToLower(strings.TrimSpace(p)); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// significantWords are the lowercased bio words of five or more letters that
// are not stopwords, deduplicated.
func (s *Scorer) significantWords(bio string) []string {
	words := strings.FieldsFunc(strings.ToLower(bio), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	out := make([]string, 0, len(words))
	for _, w := range words {
		if len([]rune(w)) < 5 || s.lex.IsStopword(w) {
			continue
		}
		out = append(out, w)
	}
	return lo.Uniq(out)
}
