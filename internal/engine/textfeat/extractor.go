// Package textfeat turns raw user text into the numeric feature scores the
// moderation classifiers consume. All scoring is additive keyword/pattern
// arithmetic over an injected lexicon: explainable, deterministic, and never
// failing on malformed input.
package textfeat

import (
	"strings"
	"unicode"

	"github.com/abadojack/whatlanggo"

	"github.com/kindredapp/kindred/internal/engine/lexicon"
)

// Sentiment is the majority vote between positive and negative lexicon hits.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// Features are the extracted scores for one piece of text. All numeric
// fields are in [0,1].
type Features struct {
	Toxicity                float64
	SpamProbability         float64
	ExplicitScore           float64
	Sentiment               Sentiment
	LanguageAppropriateness float64
	Language                string // ISO 639-1 code of the detected language
	Issues                  []string
}

// Extractor computes Features from raw text. It is stateless apart from the
// read-only lexicon and safe for concurrent use.
type Extractor struct {
	lex *lexicon.Lexicon
}

func NewExtractor(lex *lexicon.Lexicon) *Extractor {
	return &Extractor{lex: lex}
}

// IssueTooShort is reported for empty or near-empty input, which yields
// neutral scores instead of an error.
const IssueTooShort = "content too short"

// Analyze extracts all feature scores from text. It never fails: empty or
// malformed input produces neutral scores plus an issue note.
func (e *Extractor) Analyze(text string) Features {
	f := Features{
		Sentiment:               SentimentNeutral,
		LanguageAppropriateness: 1.0,
	}

	trimmed := strings.TrimSpace(text)
	if len([]rune(trimmed)) < 2 {
		f.Issues = append(f.Issues, IssueTooShort)
		return f
	}

	info := whatlanggo.Detect(trimmed)
	f.Language = info.Lang.Iso6391()

	words := strings.Fields(trimmed)

	f.Toxicity = e.toxicity(trimmed, &f.Issues)
	f.SpamProbability = e.spamProbability(trimmed, words, &f.Issues)
	f.ExplicitScore = e.explicitScore(trimmed, &f.Issues)
	f.Sentiment = e.sentiment(trimmed)
	f.LanguageAppropriateness = e.languageAppropriateness(trimmed, words, &f.Issues)

	return f
}

// toxicity accumulates: +0.1 per toxic keyword occurrence, +0.3 per matched
// aggressive pattern, +0.2 for shouting (>30% uppercase), +0.1 for excessive
// exclamation marks (>10% of characters).
func (e *Extractor) toxicity(text string, issues *[]string) float64 {
	score := 0.0

	if hits := e.lex.ToxicHits(text); len(hits) > 0 {
		score += 0.1 * float64(len(hits))
		*issues = append(*issues, "toxic language: "+strings.Join(hits, ", "))
	}
	if n := e.lex.AggressiveMatches(text); n > 0 {
		score += 0.3 * float64(n)
		*issues = append(*issues, "aggressive expressions detected")
	}
	if upperRatio(text) > 0.3 {
		score += 0.2
		*issues = append(*issues, "excessive capitalization")
	}
	if exclamationRatio(text) > 0.1 {
		score += 0.1
		*issues = append(*issues, "excessive exclamation marks")
	}
	return clamp01(score)
}

// spamProbability accumulates: +0.2 per matched commercial/link category,
// +0.3 when one word makes up more than 30% of the text, +0.15 per URL,
// +0.25 when a phone number or off-platform handle is present.
func (e *Extractor) spamProbability(text string, words []string, issues *[]string) float64 {
	score := 0.0

	if n := e.lex.CommercialMatches(text); n > 0 {
		score += 0.2 * float64(n)
		*issues = append(*issues, "commercial content detected")
	}
	if repeated, word := dominantRepetition(words); repeated {
		score += 0.3
		*issues = append(*issues, "repeated word: "+word)
	}
	if n := e.lex.URLCount(text); n > 0 {
		score += 0.15 * float64(n)
		*issues = append(*issues, "contains links")
	}
	if e.lex.ContactFound(text) {
		score += 0.25
		*issues = append(*issues, "contact details detected")
	}
	return clamp01(score)
}

// explicitScore adds +0.3 per matched explicit-content category.
func (e *Extractor) explicitScore(text string, issues *[]string) float64 {
	n := e.lex.ExplicitMatches(text)
	if n > 0 {
		*issues = append(*issues, "explicit content detected")
	}
	return clamp01(0.3 * float64(n))
}

// sentiment is a majority vote between positive and negative lexicon hits;
// ties resolve to neutral.
func (e *Extractor) sentiment(text string) Sentiment {
	pos := e.lex.PositiveCount(text)
	neg := e.lex.NegativeCount(text)
	switch {
	case pos > neg:
		return SentimentPositive
	case neg > pos:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// languageAppropriateness starts at 1.0, loses 0.2 per vulgar keyword and
// 0.3 when chat abbreviations exceed 30% of the words. Floored at 0.
func (e *Extractor) languageAppropriateness(text string, words []string, issues *[]string) float64 {
	score := 1.0

	if hits := e.lex.VulgarHits(text); len(hits) > 0 {
		score -= 0.2 * float64(len(hits))
		*issues = append(*issues, "vulgar language detected")
	}
	if len(words) > 0 {
		abbrevs := e.lex.AbbreviationCount(text)
		if float64(abbrevs)/float64(len(words)) > 0.3 {
			score -= 0.3
			*issues = append(*issues, "heavy use of abbreviations")
		}
	}
	if score < 0 {
		return 0
	}
	return score
}

// --- helpers ---

// dominantRepetition reports whether a single word occurs more than once and
// accounts for over 30% of all words.
func dominantRepetition(words []string) (bool, string) {
	if len(words) == 0 {
		return false, ""
	}
	counts := make(map[string]int, len(words))
	for _, w := range words {
		counts[strings.ToLower(strings.Trim(w, ".,;:!?¡¿"))]++
	}
	for w, n := range counts {
		if n > 1 && float64(n)/float64(len(words)) > 0.3 {
			return true, w
		}
	}
	return false, ""
}

// upperRatio is uppercase letters over all letters; non-letters are ignored.
func upperRatio(text string) float64 {
	letters, uppers := 0, 0
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if unicode.IsUpper(r) {
			uppers++
		}
	}
	if letters == 0 {
		return 0
	}
	return float64(uppers) / float64(letters)
}

// exclamationRatio is exclamation marks over all characters.
func exclamationRatio(text string) float64 {
	runes := []rune(text)
	if len(runes) == 0 {
		return 0
	}
	bangs := 0
	for _, r := range runes {
		if r == '!' || r == '¡' {
			bangs++
		}
	}
	return float64(bangs) / float64(len(runes))
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
