package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/kindredapp/kindred/internal/db"
	"github.com/kindredapp/kindred/internal/engine/preference"
	"github.com/kindredapp/kindred/internal/engine/profile"
)

// ProfileRepository provides data access for profiles and their learned
// preference columns. It is the concrete implementation behind the scoring
// engine's CandidateSource, ProfileSource and preference Store interfaces.
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new repository bound to the given DB connection.
func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: database}
}

// profileRow is the flat join of profiles and users that a Snapshot needs.
type profileRow struct {
	UserID       uint64
	Age          int
	Gender       string
	InterestedIn string
	LookingFor   string
	Bio          string
	Interests    []string `gorm:"serializer:json"`
	Location     string
	PhotoCount   int
	Email        string
	CreatedAt    time.Time
}

func (r profileRow) snapshot() profile.Snapshot {
	return profile.Snapshot{
		ID:           r.UserID,
		Age:          r.Age,
		Gender:       r.Gender,
		InterestedIn: r.InterestedIn,
		LookingFor:   r.LookingFor,
		Bio:          r.Bio,
		Interests:    r.Interests,
		Location:     r.Location,
		Email:        r.Email,
		PhotoCount:   r.PhotoCount,
		CreatedAt:    r.CreatedAt,
	}
}

const snapshotColumns = `p.user_id, p.age, p.gender, p.interested_in, p.looking_for,
	p.bio, p.interests, p.location, p.photo_count, u.email, u.created_at`

// GetProfile loads one user's scoring snapshot.
//
// Behavior:
//   - Joins users for email and account creation time (authenticity signals).
//   - Returns gorm.ErrRecordNotFound if the user or profile is missing.
func (r *ProfileRepository) GetProfile(ctx context.Context, userID uint64) (profile.Snapshot, error) {
	var row profileRow
	err := r.db.WithContext(ctx).
		Table("profiles p").
		Select(snapshotColumns).
		Joins("JOIN users u ON u.id = p.user_id").
		Where("p.user_id = ?", userID).
		Take(&row).Error
	if err != nil {
		return profile.Snapshot{}, err
	}
	return row.snapshot(), nil
}

// QueryCandidates returns the bounded candidate pool for recommendations.
//
// Behavior:
//   - Excludes the user themself.
//   - Excludes anyone the user has already decided on (liked or passed).
//   - Only active accounts are candidates.
//   - Ordered by most recent login first, so the pool favors live users.
func (r *ProfileRepository) QueryCandidates(ctx context.Context, forUser uint64, limit int) ([]profile.Snapshot, error) {
	var rows []profileRow
	err := r.db.WithContext(ctx).
		Table("profiles p").
		Select(snapshotColumns).
		Joins("JOIN users u ON u.id = p.user_id").
		Where("p.user_id <> ?", forUser).
		Where("u.active = ?", true).
		Where(`NOT EXISTS (
			SELECT 1 FROM decisions d
			WHERE d.actor_id = ? AND d.recipient_id = p.user_id
		)`, forUser).
		Order("u.last_login_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	snapshots := make([]profile.Snapshot, len(rows))
	for i, row := range rows {
		snapshots[i] = row.snapshot()
	}
	return snapshots, nil
}

// UpdatePreferenceModel replaces the learned pref_* columns as a whole.
// Last write wins; partial merges are never performed.
func (r *ProfileRepository) UpdatePreferenceModel(ctx context.Context, userID uint64, m preference.Model) error {
	// struct update with explicit Select so zero values overwrite too,
	// and the JSON serializer applies to pref_interests
	res := r.db.WithContext(ctx).
		Model(&db.Profile{}).
		Where("user_id = ?", userID).
		Select("pref_age_min", "pref_age_max", "pref_interests", "pref_confidence").
		Updates(db.Profile{
			PrefAgeMin:     m.AgeMin,
			PrefAgeMax:     m.AgeMax,
			PrefInterests:  m.Interests,
			PrefConfidence: m.Confidence,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetPreferenceModel reads back the stored model, for API responses.
func (r *ProfileRepository) GetPreferenceModel(ctx context.Context, userID uint64) (preference.Model, error) {
	var p db.Profile
	if err := r.db.WithContext(ctx).Take(&p, "user_id = ?", userID).Error; err != nil {
		return preference.Model{}, err
	}
	return preference.Model{
		AgeMin:     p.PrefAgeMin,
		AgeMax:     p.PrefAgeMax,
		Interests:  p.PrefInterests,
		Confidence: p.PrefConfidence,
	}, nil
}
