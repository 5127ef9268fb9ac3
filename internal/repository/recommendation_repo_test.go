package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/kindredapp/kindred/internal/engine/recommend"
	"github.com/kindredapp/kindred/internal/repository"
)

func rec(source, target uint64, score float64) recommend.Recommendation {
	return recommend.Recommendation{
		ID:           uuid.NewString(),
		SourceUserID: source,
		TargetUserID: target,
		Score:        score,
		Reasons:      []string{"you share most of your interests"},
		Confidence:   0.7,
		CreatedAt:    time.Now(),
	}
}

func TestInsertAndListRecommendations(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewRecommendationRepository(setupTestDB(t))

	batch := []recommend.Recommendation{
		rec(1, 2, 0.91),
		rec(1, 3, 0.74),
		rec(1, 4, 0.83),
		rec(2, 1, 0.66), // someone else's list
	}
	require.NoError(t, repo.InsertRecommendations(ctx, batch))

	rows, err := repo.ListForUser(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// best score first
	assert.Equal(t, uint64(2), rows[0].TargetUserID)
	assert.Equal(t, uint64(4), rows[1].TargetUserID)
	assert.Equal(t, uint64(3), rows[2].TargetUserID)
	assert.Equal(t, []string{"you share most of your interests"}, rows[0].Reasons)
}

func TestInsertRecommendations_EmptyBatch(t *testing.T) {
	repo := repository.NewRecommendationRepository(setupTestDB(t))
	assert.NoError(t, repo.InsertRecommendations(context.Background(), nil))
}

func TestMarkViewed(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewRecommendationRepository(setupTestDB(t))

	r := rec(1, 2, 0.8)
	require.NoError(t, repo.InsertRecommendations(ctx, []recommend.Recommendation{r}))

	require.NoError(t, repo.MarkViewed(ctx, r.ID))
	// idempotent
	require.NoError(t, repo.MarkViewed(ctx, r.ID))

	rows, err := repo.ListForUser(ctx, 1, 10)
	require.NoError(t, err)
	assert.True(t, rows[0].Viewed)

	err = repo.MarkViewed(ctx, "missing-id")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestSetAction_TargetsLatestRow(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewRecommendationRepository(setupTestDB(t))

	old := rec(1, 2, 0.7)
	old.CreatedAt = time.Now().Add(-time.Hour)
	latest := rec(1, 2, 0.9)
	require.NoError(t, repo.InsertRecommendations(ctx, []recommend.Recommendation{old, latest}))

	require.NoError(t, repo.SetAction(ctx, 1, 2, recommend.ActionLiked))

	rows, err := repo.ListForUser(ctx, 1, 10)
	require.NoError(t, err)

	byID := map[string]string{}
	for _, r := range rows {
		byID[r.ID] = r.ActionTaken
	}
	assert.Equal(t, "liked", byID[latest.ID])
	assert.Equal(t, "", byID[old.ID])
}

func TestSetAction_NoMatchingPairIsNoop(t *testing.T) {
	repo := repository.NewRecommendationRepository(setupTestDB(t))
	assert.NoError(t, repo.SetAction(context.Background(), 1, 2, recommend.ActionPassed))
}
