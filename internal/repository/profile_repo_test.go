package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/kindredapp/kindred/internal/db"
	"github.com/kindredapp/kindred/internal/engine/preference"
	"github.com/kindredapp/kindred/internal/repository"
)

func TestGetProfile(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewProfileRepository(dbase)

	seedUserWithProfile(t, dbase, 1, db.Profile{
		Age: 28, Gender: "female", InterestedIn: "male",
		LookingFor: "una relación seria",
		Bio:        "Amante del arte y los viajes.",
		Interests:  []string{"arte", "viajes"},
		Location:   "Madrid, Centro",
		PhotoCount: 3,
	})

	snap, err := repo.GetProfile(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), snap.ID)
	assert.Equal(t, 28, snap.Age)
	assert.Equal(t, []string{"arte", "viajes"}, snap.Interests)
	assert.Equal(t, "user1@example.com", snap.Email)
	assert.False(t, snap.CreatedAt.IsZero())
}

func TestGetProfile_NotFound(t *testing.T) {
	repo := repository.NewProfileRepository(setupTestDB(t))

	_, err := repo.GetProfile(context.Background(), 404)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestQueryCandidates_Exclusions(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewProfileRepository(dbase)
	decisions := repository.NewDecisionRepository(dbase)

	for id := uint64(1); id <= 5; id++ {
		seedUserWithProfile(t, dbase, id, db.Profile{Age: 25 + int(id), Gender: "female"})
	}

	// user 1 already decided on 2 (liked) and 3 (passed)
	require.NoError(t, decisions.CreateOrUpdateDecision(ctx, 1, 2, true))
	require.NoError(t, decisions.CreateOrUpdateDecision(ctx, 1, 3, false))

	// user 4 is deactivated
	require.NoError(t, dbase.Model(&db.User{}).Where("id = ?", 4).Update("active", false).Error)

	candidates, err := repo.QueryCandidates(ctx, 1, 100)
	require.NoError(t, err)

	ids := make([]uint64, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.ID)
	}
	assert.ElementsMatch(t, []uint64{5}, ids)
}

func TestQueryCandidates_Limit(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewProfileRepository(dbase)

	for id := uint64(1); id <= 6; id++ {
		seedUserWithProfile(t, dbase, id, db.Profile{Age: 30, Gender: "male"})
	}

	candidates, err := repo.QueryCandidates(ctx, 1, 3)
	require.NoError(t, err)
	assert.Len(t, candidates, 3)
}

func TestPreferenceModelRoundtrip(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewProfileRepository(dbase)

	seedUserWithProfile(t, dbase, 1, db.Profile{Age: 30, Gender: "male"})

	ageMin, ageMax := 24, 33
	model := preference.Model{
		AgeMin:     &ageMin,
		AgeMax:     &ageMax,
		Interests:  []string{"cine", "viajes"},
		Confidence: 0.45,
	}
	require.NoError(t, repo.UpdatePreferenceModel(ctx, 1, model))

	got, err := repo.GetPreferenceModel(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, model, got)
}

func TestUpdatePreferenceModel_ReplacesWholly(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewProfileRepository(dbase)

	seedUserWithProfile(t, dbase, 1, db.Profile{Age: 30, Gender: "male"})

	ageMin, ageMax := 20, 40
	require.NoError(t, repo.UpdatePreferenceModel(ctx, 1, preference.Model{
		AgeMin: &ageMin, AgeMax: &ageMax,
		Interests:  []string{"cine"},
		Confidence: 0.8,
	}))

	// an empty relearn wipes the previous model instead of merging
	require.NoError(t, repo.UpdatePreferenceModel(ctx, 1, preference.Model{}))

	got, err := repo.GetPreferenceModel(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got.AgeMin)
	assert.Nil(t, got.AgeMax)
	assert.Empty(t, got.Interests)
	assert.Zero(t, got.Confidence)
}

func TestUpdatePreferenceModel_MissingProfile(t *testing.T) {
	repo := repository.NewProfileRepository(setupTestDB(t))

	err := repo.UpdatePreferenceModel(context.Background(), 404, preference.Model{})
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
