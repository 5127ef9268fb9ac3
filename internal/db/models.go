package db

import (
	"time"
)

// User is the auth identity. Scoring never reads this table directly; the
// engine works on Profile snapshots.
type User struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"uniqueIndex;size:64;not null"`
	Email        string `gorm:"uniqueIndex;size:128;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Active       bool   `gorm:"default:true"`
	LastLoginAt  time.Time
	Gender       string    `gorm:"size:16;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// Profile holds the scoring-relevant fields of a user, 1:1 with User.
//
// The pref_* columns are the learned PreferenceModel. They are owned by this
// row, written only by the preference learner, and always replaced as a
// whole, never merged.
type Profile struct {
	UserID       uint64   `gorm:"primaryKey"`
	Age          int      `gorm:"not null"`
	Gender       string   `gorm:"size:16"`
	InterestedIn string   `gorm:"size:16"` // gender the user wants to see, or "all"
	LookingFor   string   `gorm:"size:255"`
	Bio          string   `gorm:"type:text"`
	Interests    []string `gorm:"serializer:json"`
	Location     string   `gorm:"size:128"`
	PhotoCount   int      `gorm:"default:0"`

	PrefAgeMin     *int     `gorm:"column:pref_age_min"`
	PrefAgeMax     *int     `gorm:"column:pref_age_max"`
	PrefInterests  []string `gorm:"column:pref_interests;serializer:json"`
	PrefConfidence float64  `gorm:"column:pref_confidence;default:0"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// Decision represents an actor's like/pass decision on a recipient.
//
// Composite PK: (ActorID, RecipientID)
//   - Ensures a single row per pair (overwrite guarantee).
//
// Indexes:
//   - idx_recipient_liked_updated_actor(recipient_id, liked, updated_at DESC, actor_id)
//     Optimizes "who liked me" lists with pagination.
//   - idx_actor_recipient_liked(actor_id, recipient_id, liked)
//     Optimizes O(1) lookup for mutual like checks.
type Decision struct {
	ActorID     uint64    `gorm:"primaryKey;index:idx_actor_recipient_liked,priority:1"`
	RecipientID uint64    `gorm:"primaryKey;index:idx_recipient_liked_updated_actor,priority:1;index:idx_actor_recipient_liked,priority:2"`
	Liked       bool      `gorm:"not null;type:tinyint(1);index:idx_recipient_liked_updated_actor,priority:2;index:idx_actor_recipient_liked,priority:3"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime;index:idx_recipient_liked_updated_actor,priority:3,sort:desc"`
}

// Recommendation is a persisted compatibility result. Created by the
// recommendation engine; only the viewed/action_taken fields change
// afterwards, and only through the UI-facing update methods.
type Recommendation struct {
	ID           string   `gorm:"primaryKey;size:36"`
	SourceUserID uint64   `gorm:"index:idx_source_score,priority:1;not null"`
	TargetUserID uint64   `gorm:"not null"`
	Score        float64  `gorm:"not null;index:idx_source_score,priority:2,sort:desc"`
	Reasons      []string `gorm:"serializer:json"`
	Confidence   float64  `gorm:"not null"`
	Viewed       bool     `gorm:"default:false"`
	ActionTaken  string   `gorm:"size:16;default:''"` // "", liked, passed, matched
	CreatedAt    time.Time
}

// ModerationLog records every non-approve verdict for human follow-up.
type ModerationLog struct {
	ID          string            `gorm:"primaryKey;size:36"`
	ModeratorID string            `gorm:"size:64"` // "engine" for automated verdicts
	ActionType  string            `gorm:"size:16;not null"`
	TargetType  string            `gorm:"size:16;not null"` // message, bio, profile, image
	TargetID    string            `gorm:"size:64;not null"`
	Description string            `gorm:"type:text"`
	Severity    string            `gorm:"size:16;not null"`
	Metadata    map[string]string `gorm:"serializer:json"`
	CreatedAt   time.Time         `gorm:"autoCreateTime;index"`
}
