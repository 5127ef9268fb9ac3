package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kindredapp/kindred/internal/db"
	"github.com/kindredapp/kindred/internal/utils/pagination"
)

// DecisionRepository provides data access methods for the Decision model.
// It encapsulates all queries related to likes/passes between users.
type DecisionRepository struct {
	db *gorm.DB
}

// NewDecisionRepository creates a new repository bound to the given DB connection.
func NewDecisionRepository(database *gorm.DB) *DecisionRepository {
	return &DecisionRepository{db: database}
}

// CreateOrUpdateDecision inserts or updates a decision made by actor -> recipient.
//
// Behavior:
//   - If (actor_id, recipient_id) pair exists → the row is updated with the new "liked" value.
//   - If it doesn’t exist → a new row is inserted.
//   - Composite PK ensures overwrite guarantee.
func (r *DecisionRepository) CreateOrUpdateDecision(
	ctx context.Context,
	actorID, recipientID uint64,
	liked bool,
) error {
	decision := db.Decision{
		ActorID:     actorID,
		RecipientID: recipientID,
		Liked:       liked,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "actor_id"}, {Name: "recipient_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"liked"}),
		}).
		Create(&decision).Error
}

// GetLikers returns users who liked the given recipient.
//
// Behavior:
//   - Only decisions where recipient_id = X and liked = true are returned.
//   - Excludes users that the recipient explicitly passed (liked = false).
//   - newOnly additionally excludes mutual likes (recipient already liked back).
//   - Ordered by updated_at DESC, actor_id DESC.
//   - Supports cursor-based pagination via paginationToken.
func (r *DecisionRepository) GetLikers(
	ctx context.Context,
	recipientID uint64,
	newOnly bool,
	paginationToken *string,
	limit int,
) ([]db.Decision, *string, error) {
	var decisions []db.Decision

	// decode cursor if provided
	cursor, err := pagination.Decode(getString(paginationToken))
	if err != nil {
		return nil, nil, err
	}

	query := r.db.WithContext(ctx).
		Table("decisions d").
		Where("d.recipient_id = ? AND d.liked = true", recipientID).
		Where(`
			NOT EXISTS (
				SELECT 1 FROM decisions d2
				WHERE d2.actor_id = ?
				  AND d2.recipient_id = d.actor_id
				  AND d2.liked = false
			)`, recipientID).
		Order("d.updated_at DESC, d.actor_id DESC").
		Limit(limit + 1)

	if newOnly {
		// subquery to exclude mutual likes
		subQuery := r.db.
			Table("decisions").
			Select("1").
			Where("actor_id = d.recipient_id AND recipient_id = d.actor_id AND liked = true")
		query = query.Where("NOT EXISTS (?)", subQuery)
	}

	// apply cursor
	if !cursor.IsZero() {
		ts := time.UnixMilli(cursor.UpdatedUnix)
		query = query.Where(
			"(d.updated_at < ? OR (d.updated_at = ? AND d.actor_id < ?))",
			ts, ts, cursor.ActorID,
		)
	}

	if err := query.Find(&decisions).Error; err != nil {
		return nil, nil, err
	}

	// pagination: build next cursor if needed
	var nextToken *string
	if len(decisions) > limit {
		last := decisions[limit-1]
		token, _ := pagination.Encode(pagination.Cursor{
			ActorID:     last.ActorID,
			UpdatedUnix: last.UpdatedAt.UnixMilli(),
		})
		nextToken = &token
		decisions = decisions[:limit]
	}

	return decisions, nextToken, nil
}

// CountLikers returns how many users liked the given recipient.
//
// Behavior:
//   - Counts only decisions where recipient_id = X and liked = true.
//   - Excludes users that recipient explicitly passed.
//   - Used in conjunction with Redis cache (DB is fallback).
func (r *DecisionRepository) CountLikers(
	ctx context.Context,
	recipientID uint64,
) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("decisions d").
		Where("d.recipient_id = ? AND d.liked = true", recipientID).
		Where(`
			NOT EXISTS (
				SELECT 1 FROM decisions d2
				WHERE d2.actor_id = ?
				  AND d2.recipient_id = d.actor_id
				  AND d2.liked = false
			)`, recipientID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// HasLiked checks whether an actor has liked a recipient.
//
// Behavior:
//   - Returns true if there exists a decision row where actor_id = X,
//     recipient_id = Y, and liked = true.
//   - Used for checking mutual likes in PutDecision.
func (r *DecisionRepository) HasLiked(
	ctx context.Context,
	actorID, recipientID uint64,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("decisions d").
		Where("d.actor_id = ? AND d.recipient_id = ? AND d.liked = true", actorID, recipientID).
		Count(&count).Error
	return count > 0, err
}

// ListByActor returns the actor's full decision history, newest first.
// Feeds the preference learner's recomputation.
func (r *DecisionRepository) ListByActor(
	ctx context.Context,
	actorID uint64,
	limit int,
) ([]db.Decision, error) {
	var decisions []db.Decision
	err := r.db.WithContext(ctx).
		Where("actor_id = ?", actorID).
		Order("updated_at DESC").
		Limit(limit).
		Find(&decisions).Error
	return decisions, err
}

// getString safely dereferences a string pointer for pagination tokens.
func getString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
