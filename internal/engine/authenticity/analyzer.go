// Package authenticity implements the heuristic fake-profile detector. It
// operates on structured profile fields only, without text feature
// extraction, and produces the same verdict shape as the content classifiers.
package authenticity

import (
	"fmt"
	"strings"
	"time"

	"github.com/kindredapp/kindred/internal/engine/lexicon"
	"github.com/kindredapp/kindred/internal/engine/moderation"
	"github.com/kindredapp/kindred/internal/engine/profile"
)

// Config carries the summed-confidence thresholds that map the accumulated
// flag list to a final severity/action.
type Config struct {
	RejectTotal float64 `validate:"gte=0,lte=2"` // summed confidence >= this -> high/reject
	ReviewTotal float64 `validate:"gte=0,lte=2"` // summed confidence >= this -> medium/review

	Confidence moderation.ConfidenceConfig
}

func DefaultConfig() Config {
	return Config{
		RejectTotal: 0.8,
		ReviewTotal: 0.6,
		Confidence:  moderation.DefaultConfidence(),
	}
}

// Analyzer scores a profile snapshot for fake-profile patterns.
type Analyzer struct {
	lex *lexicon.Lexicon
	cfg Config
	now func() time.Time
}

func NewAnalyzer(lex *lexicon.Lexicon, cfg Config) *Analyzer {
	return &Analyzer{lex: lex, cfg: cfg, now: time.Now}
}

const minBioLength = 20

// newAccountWindow is the account age under which a high stated age raises a
// catfishing signal.
const newAccountWindow = 7 * 24 * time.Hour

// Analyze accumulates confidence-weighted fake-profile flags and derives the
// final severity/action from their sum.
//
// The under-18 check is a legal floor: it always forces reject regardless of
// everything else, and must never be bypassed.
func (a *Analyzer) Analyze(p profile.Snapshot) (v moderation.Verdict) {
	defer func() {
		if r := recover(); r != nil {
			v = moderation.FailOpen(fmt.Sprintf("authenticity analyzer error, profile approved by policy: %v", r))
		}
	}()

	var flags []moderation.Flag
	add := func(conf float64, ft moderation.FlagType, desc string) {
		flags = append(flags, moderation.Flag{Type: ft, Confidence: conf, Description: desc})
	}

	switch p.PhotoCount {
	case 0:
		add(0.5, moderation.FlagFakeProfile, "profile has no photos")
	case 1:
		add(0.3, moderation.FlagFakeProfile, "profile has a single photo")
	}

	bio := strings.TrimSpace(p.Bio)
	switch {
	case bio == "":
		add(0.4, moderation.FlagFakeProfile, "profile has no bio")
	case a.lex.IsGenericBio(bio):
		add(0.4, moderation.FlagFakeProfile, "bio is generic boilerplate")
	case len([]rune(bio)) < minBioLength:
		add(0.3, moderation.FlagLowQuality, "bio is too short to be meaningful")
	}

	underage := false
	switch {
	case p.Age > 0 && p.Age < 18:
		underage = true
		add(0.9, moderation.FlagUnderage, "stated age is under 18")
	case p.Age > 100:
		add(0.6, moderation.FlagFakeProfile, "stated age is implausible")
	}

	if p.Age > 50 && p.AccountAge(a.now()) > 0 && p.AccountAge(a.now()) < newAccountWindow {
		add(0.5, moderation.FlagFakeProfile, "brand-new account with a high stated age")
	}

	if len(p.Interests) == 0 {
		add(0.4, moderation.FlagFakeProfile, "profile lists no interests")
	}

	if p.Email != "" && a.lex.IsDisposableEmail(p.Email) {
		add(0.5, moderation.FlagFakeProfile, "disposable or placeholder email address")
	}

	total := 0.0
	for _, f := range flags {
		total += f.Confidence
	}

	severity, action := moderation.SeverityLow, moderation.ActionApprove
	switch {
	case total >= a.cfg.RejectTotal:
		severity, action = moderation.SeverityHigh, moderation.ActionReject
	case total >= a.cfg.ReviewTotal:
		severity, action = moderation.SeverityMedium, moderation.ActionReview
	}

	// legal floor, never bypassed
	if underage {
		severity = moderation.SeverityCritical
		if action < moderation.ActionReject {
			action = moderation.ActionReject
		}
	}

	return moderation.Compose(flags, severity, action, a.cfg.Confidence, 0)
}
