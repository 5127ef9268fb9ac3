// Package moderation implements the policy decision layer: it turns feature
// scores (from text, image, or profile analysis) into a Verdict carrying
// flags, a severity, and an approve/review/reject/ban action.
package moderation

import (
	"strings"

	"github.com/samber/lo"
)

// FlagType identifies a single detected policy concern.
type FlagType string

const (
	FlagHarassment  FlagType = "harassment"
	FlagSpam        FlagType = "spam"
	FlagExplicit    FlagType = "explicit"
	FlagScam        FlagType = "scam"
	FlagViolence    FlagType = "violence"
	FlagFakeProfile FlagType = "fake_profile"
	FlagUnderage    FlagType = "underage"
	FlagLowQuality  FlagType = "low_quality"
)

// Severity is the ordinal policy-risk level.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "low"
	}
}

// Action is the resulting disposition. Order matters: a higher action is
// never downgraded within one evaluation.
type Action int

const (
	ActionApprove Action = iota
	ActionReview
	ActionReject
	ActionBan
)

func (a Action) String() string {
	switch a {
	case ActionReview:
		return "review"
	case ActionReject:
		return "reject"
	case ActionBan:
		return "ban"
	default:
		return "approve"
	}
}

// Flag is one detected policy concern with its own confidence.
type Flag struct {
	Type        FlagType
	Confidence  float64
	Description string
}

// Verdict is the outcome of one classification pass.
//
// Invariant: IsAppropriate is true iff Flags is empty or every flag's
// confidence is below the significance threshold (0.6).
type Verdict struct {
	IsAppropriate bool
	Confidence    float64
	Flags         []Flag
	Severity      Severity
	Action        Action
	Explanation   string
}

// significantFlag is the confidence at which a flag makes content
// inappropriate on its own.
const significantFlag = 0.6

// ConfidenceConfig carries the tunable coefficients of the verdict
// confidence formula: base − Σ(flagConfidence·perFlag) − issues·perIssue,
// floored. The magnitudes are configuration, not contract.
type ConfidenceConfig struct {
	Base     float64 `validate:"gte=0,lte=1"`
	PerFlag  float64 `validate:"gte=0,lte=1"`
	PerIssue float64 `validate:"gte=0,lte=1"`
	Floor    float64 `validate:"gte=0,lte=1"`
}

func DefaultConfidence() ConfidenceConfig {
	return ConfidenceConfig{Base: 0.8, PerFlag: 0.1, PerIssue: 0.05, Floor: 0.5}
}

// builder accumulates flags while keeping severity and action monotonically
// non-decreasing: a later, lower-severity rule never softens the outcome.
type builder struct {
	flags    []Flag
	severity Severity
	action   Action
}

func (b *builder) add(f Flag, sev Severity, act Action) {
	b.flags = append(b.flags, f)
	if sev > b.severity {
		b.severity = sev
	}
	if act > b.action {
		b.action = act
	}
}

// verdict finalizes the evaluation. IsAppropriate is derived last from the
// complete flag set; it is never an input to the transitions.
func (b *builder) verdict(cfg ConfidenceConfig, issueCount int) Verdict {
	return Compose(b.flags, b.severity, b.action, cfg, issueCount)
}

// Compose assembles a Verdict from an accumulated flag set and the final
// severity/action. Shared by the rule-chain classifiers and the profile
// authenticity analyzer, which derives severity from summed confidences
// instead of per-rule escalation.
func Compose(flags []Flag, severity Severity, action Action, cfg ConfidenceConfig, issueCount int) Verdict {
	confidence := cfg.Base
	for _, f := range flags {
		confidence -= f.Confidence * cfg.PerFlag
	}
	confidence -= float64(issueCount) * cfg.PerIssue
	if confidence < cfg.Floor {
		confidence = cfg.Floor
	}

	appropriate := lo.EveryBy(flags, func(f Flag) bool {
		return f.Confidence < significantFlag
	})

	explanation := "content looks appropriate"
	if len(flags) > 0 {
		explanation = strings.Join(lo.Map(flags, func(f Flag, _ int) string {
			return f.Description
		}), "; ")
	}

	return Verdict{
		IsAppropriate: appropriate,
		Confidence:    confidence,
		Flags:         flags,
		Severity:      severity,
		Action:        action,
		Explanation:   explanation,
	}
}

// FailOpen is the neutral verdict other engine packages return on internal
// errors, mirroring failOpen for callers outside this package.
func FailOpen(note string) Verdict { return failOpen(note) }

// failOpen is the neutral verdict returned when a classifier hits an internal
// error. Moderation must never hard-block core functionality, so the default
// is approve with low confidence and a note. Deliberate product policy.
func failOpen(note string) Verdict {
	return Verdict{
		IsAppropriate: true,
		Confidence:    0.5,
		Severity:      SeverityLow,
		Action:        ActionApprove,
		Explanation:   note,
	}
}
