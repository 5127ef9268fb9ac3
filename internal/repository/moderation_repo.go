package repository

import (
	"context"
	"strconv"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kindredapp/kindred/internal/db"
	"github.com/kindredapp/kindred/internal/engine/moderation"
)

// ModerationRepository records non-approve verdicts for human follow-up.
type ModerationRepository struct {
	db *gorm.DB
}

// NewModerationRepository creates a new repository bound to the given DB connection.
func NewModerationRepository(database *gorm.DB) *ModerationRepository {
	return &ModerationRepository{db: database}
}

// LogVerdict persists one engine verdict against a target. Approve verdicts
// are not logged; callers filter those out.
func (r *ModerationRepository) LogVerdict(
	ctx context.Context,
	targetType, targetID string,
	v moderation.Verdict,
) error {
	meta := map[string]string{
		"confidence": formatFloat(v.Confidence),
	}
	for i, f := range v.Flags {
		if i >= 5 {
			break // cap metadata size, explanation carries the rest
		}
		meta[string(f.Type)] = formatFloat(f.Confidence)
	}

	entry := db.ModerationLog{
		ID:          uuid.NewString(),
		ModeratorID: "engine",
		ActionType:  v.Action.String(),
		TargetType:  targetType,
		TargetID:    targetID,
		Description: v.Explanation,
		Severity:    v.Severity.String(),
		Metadata:    meta,
	}
	return r.db.WithContext(ctx).Create(&entry).Error
}

// ListRecent returns the newest log entries, for the review queue.
func (r *ModerationRepository) ListRecent(ctx context.Context, limit int) ([]db.ModerationLog, error) {
	var rows []db.ModerationLog
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
