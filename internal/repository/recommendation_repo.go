package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kindredapp/kindred/internal/db"
	"github.com/kindredapp/kindred/internal/engine/recommend"
)

// RecommendationRepository persists engine output and applies the
// UI-facing mutations (viewed, action_taken).
type RecommendationRepository struct {
	db *gorm.DB
}

// NewRecommendationRepository creates a new repository bound to the given DB connection.
func NewRecommendationRepository(database *gorm.DB) *RecommendationRepository {
	return &RecommendationRepository{db: database}
}

// InsertRecommendations writes a freshly ranked batch. A rerun for the same
// pair upserts on (id); older rows for the pair stay untouched so the score
// history survives.
func (r *RecommendationRepository) InsertRecommendations(
	ctx context.Context,
	recs []recommend.Recommendation,
) error {
	if len(recs) == 0 {
		return nil
	}

	rows := make([]db.Recommendation, len(recs))
	for i, rec := range recs {
		rows[i] = db.Recommendation{
			ID:           rec.ID,
			SourceUserID: rec.SourceUserID,
			TargetUserID: rec.TargetUserID,
			Score:        rec.Score,
			Reasons:      rec.Reasons,
			Confidence:   rec.Confidence,
			Viewed:       rec.Viewed,
			ActionTaken:  string(rec.ActionTaken),
			CreatedAt:    rec.CreatedAt,
		}
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(rows, 50).Error
}

// ListForUser returns the user's stored recommendations, best score first.
func (r *RecommendationRepository) ListForUser(
	ctx context.Context,
	sourceUserID uint64,
	limit int,
) ([]db.Recommendation, error) {
	var rows []db.Recommendation
	err := r.db.WithContext(ctx).
		Where("source_user_id = ?", sourceUserID).
		Order("score DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// MarkViewed flags a recommendation as seen. Idempotent.
func (r *RecommendationRepository) MarkViewed(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Model(&db.Recommendation{}).
		Where("id = ?", id).
		Update("viewed", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetAction records the user's response to a recommendation. Applied to the
// latest row for the pair so reruns don't orphan the action.
func (r *RecommendationRepository) SetAction(
	ctx context.Context,
	sourceUserID, targetUserID uint64,
	action recommend.ActionTaken,
) error {
	sub := r.db.
		Table("recommendations").
		Select("id").
		Where("source_user_id = ? AND target_user_id = ?", sourceUserID, targetUserID).
		Order("created_at DESC").
		Limit(1)

	return r.db.WithContext(ctx).
		Model(&db.Recommendation{}).
		Where("id IN (?)", sub).
		Update("action_taken", string(action)).Error
}
