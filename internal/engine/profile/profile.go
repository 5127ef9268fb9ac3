package profile

import (
	"strings"
	"time"
)

// Snapshot is the narrow, read-only view of a user profile the engine
// operates on. The persistence layer owns the full record; analyzers receive
// snapshots and never mutate them.
//
// Fields the engine does not read are deliberately absent so that schema
// changes in the store cannot leak into scoring behavior.
type Snapshot struct {
	ID           uint64
	Age          int
	Gender       string
	InterestedIn string // gender the user wants to see, or "all"
	LookingFor   string // free-text relationship intent
	Bio          string
	Interests    []string
	Location     string // "city, region" style string
	Email        string
	PhotoCount   int
	CreatedAt    time.Time
}

// scoredFields is the number of fields Completeness considers. Kept in sync
// with the checks below.
const scoredFields = 7

// Completeness reports the fraction of scoring-relevant fields that are
// actually populated, in [0,1]. It feeds the confidence part of a
// compatibility result: sparse profiles produce low-confidence scores.
func (s Snapshot) Completeness() float64 {
	filled := 0
	if s.Age > 0 {
		filled++
	}
	if strings.TrimSpace(s.Gender) != "" {
		filled++
	}
	if strings.TrimSpace(s.InterestedIn) != "" {
		filled++
	}
	if strings.TrimSpace(s.LookingFor) != "" {
		filled++
	}
	if strings.TrimSpace(s.Bio) != "" {
		filled++
	}
	if len(s.Interests) > 0 {
		filled++
	}
	if strings.TrimSpace(s.Location) != "" {
		filled++
	}
	return float64(filled) / float64(scoredFields)
}

// AccountAge returns how long ago the profile was created, zero if the
// creation timestamp is missing.
func (s Snapshot) AccountAge(now time.Time) time.Duration {
	if s.CreatedAt.IsZero() {
		return 0
	}
	return now.Sub(s.CreatedAt)
}
