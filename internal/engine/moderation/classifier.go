package moderation

import (
	"fmt"

	"github.com/kindredapp/kindred/internal/engine/lexicon"
	"github.com/kindredapp/kindred/internal/engine/textfeat"
)

// Context tells the classifier what kind of content it is looking at, so the
// matching length and link policies apply.
type Context string

const (
	ContextMessage Context = "message"
	ContextBio     Context = "bio"
	ContextProfile Context = "profile"
)

// ContextRule is the per-context content policy.
type ContextRule struct {
	MaxLength  int
	AllowLinks bool
}

// Config carries the classifier thresholds. Defaults implement the standard
// policy; tests and experiments may tighten or loosen them.
type Config struct {
	Toxicity         float64 `validate:"gte=0,lte=1"` // >= escalates to reject
	CriticalToxicity float64 `validate:"gte=0,lte=1"` // >= escalates to ban
	Spam             float64 `validate:"gte=0,lte=1"` // >= escalates to review
	Explicit         float64 `validate:"gte=0,lte=1"` // >= escalates to reject

	Contexts   map[Context]ContextRule
	Confidence ConfidenceConfig
}

func DefaultConfig() Config {
	return Config{
		Toxicity:         0.7,
		CriticalToxicity: 0.9,
		Spam:             0.6,
		Explicit:         0.8,
		Contexts: map[Context]ContextRule{
			ContextMessage: {MaxLength: 1000, AllowLinks: false},
			ContextBio:     {MaxLength: 500, AllowLinks: true},
			ContextProfile: {MaxLength: 300, AllowLinks: false},
		},
		Confidence: DefaultConfidence(),
	}
}

// Classifier applies threshold and context rules to extracted text features.
// Stateless apart from read-only configuration; safe for concurrent use.
type Classifier struct {
	extractor *textfeat.Extractor
	lex       *lexicon.Lexicon
	cfg       Config
}

func NewClassifier(extractor *textfeat.Extractor, lex *lexicon.Lexicon, cfg Config) *Classifier {
	return &Classifier{extractor: extractor, lex: lex, cfg: cfg}
}

// ClassifyText runs the full rule chain over one piece of text.
//
// Rules run in a fixed order, each only able to escalate the running
// severity/action:
//
//  1. toxicity            -> harassment, reject (ban at the critical bound)
//  2. spam probability    -> spam, review
//  3. explicit content    -> explicit, reject
//  4. context violations  -> spam, review
//  5. phishing+financial  -> scam, review
//
// On an internal error the classifier fails open: approve, confidence 0.5.
func (c *Classifier) ClassifyText(text string, context Context) (v Verdict) {
	defer func() {
		if r := recover(); r != nil {
			v = failOpen(fmt.Sprintf("classifier error, content approved by policy: %v", r))
		}
	}()

	feat := c.extractor.Analyze(text)
	b := &builder{}

	if feat.Toxicity >= c.cfg.Toxicity {
		sev, act := SeverityHigh, ActionReject
		if feat.Toxicity >= c.cfg.CriticalToxicity {
			sev, act = SeverityCritical, ActionBan
		}
		b.add(Flag{
			Type:        FlagHarassment,
			Confidence:  feat.Toxicity,
			Description: "toxic or harassing language",
		}, sev, act)
	}

	if feat.SpamProbability >= c.cfg.Spam {
		b.add(Flag{
			Type:        FlagSpam,
			Confidence:  feat.SpamProbability,
			Description: "commercial or repetitive spam content",
		}, SeverityMedium, ActionReview)
	}

	if feat.ExplicitScore >= c.cfg.Explicit {
		b.add(Flag{
			Type:        FlagExplicit,
			Confidence:  feat.ExplicitScore,
			Description: "explicit content",
		}, SeverityHigh, ActionReject)
	}

	if rule, ok := c.cfg.Contexts[context]; ok {
		if rule.MaxLength > 0 && len([]rune(text)) > rule.MaxLength {
			b.add(Flag{
				Type:        FlagSpam,
				Confidence:  0.65,
				Description: fmt.Sprintf("exceeds maximum length for %s content", context),
			}, SeverityMedium, ActionReview)
		}
		if !rule.AllowLinks && c.lex.URLCount(text) > 0 {
			b.add(Flag{
				Type:        FlagSpam,
				Confidence:  0.65,
				Description: fmt.Sprintf("links are not allowed in %s content", context),
			}, SeverityMedium, ActionReview)
		}
	}

	// phishing call-to-action plus a financial keyword in the same text is
	// the classic romance-scam opener
	if c.lex.PhishingMatches(text) > 0 && len(c.lex.FinancialHits(text)) > 0 {
		b.add(Flag{
			Type:        FlagScam,
			Confidence:  0.7,
			Description: "possible scam: financial call to action",
		}, SeverityMedium, ActionReview)
	}

	return b.verdict(c.cfg.Confidence, len(feat.Issues))
}
