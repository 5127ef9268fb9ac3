package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kindredapp/kindred/internal/db"
	"github.com/kindredapp/kindred/internal/repository"
)

func TestCreateOrUpdateDecision(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewDecisionRepository(dbase)

	// insert like
	err := repo.CreateOrUpdateDecision(ctx, 1, 2, true)
	assert.NoError(t, err)

	// overwrite with pass
	err = repo.CreateOrUpdateDecision(ctx, 1, 2, false)
	assert.NoError(t, err)

	var d db.Decision
	_ = dbase.First(&d).Error
	assert.Equal(t, false, d.Liked)

	// still exactly one row for the pair
	var count int64
	dbase.Model(&db.Decision{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestGetLikers_ExcludesPassed(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewDecisionRepository(dbase)

	// actors 1,2 liked recipient 99
	_ = repo.CreateOrUpdateDecision(ctx, 1, 99, true)
	_ = repo.CreateOrUpdateDecision(ctx, 2, 99, true)
	// recipient passed actor 2 → exclude
	_ = repo.CreateOrUpdateDecision(ctx, 99, 2, false)

	decisions, _, err := repo.GetLikers(ctx, 99, false, nil, 10)
	assert.NoError(t, err)
	assert.Len(t, decisions, 1)
	assert.Equal(t, uint64(1), decisions[0].ActorID)
}

func TestGetLikers_NewOnlyExcludesMutual(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewDecisionRepository(dbase)

	// actor 1 liked 99, and 99 liked back → mutual
	_ = repo.CreateOrUpdateDecision(ctx, 1, 99, true)
	_ = repo.CreateOrUpdateDecision(ctx, 99, 1, true)

	// actor 2 liked 99, but not mutual
	_ = repo.CreateOrUpdateDecision(ctx, 2, 99, true)

	decisions, _, err := repo.GetLikers(ctx, 99, true, nil, 10)
	assert.NoError(t, err)
	assert.Len(t, decisions, 1)
	assert.Equal(t, uint64(2), decisions[0].ActorID)

	// without the filter both likers show up
	all, _, err := repo.GetLikers(ctx, 99, false, nil, 10)
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetLikers_Pagination(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewDecisionRepository(dbase)

	for actor := uint64(1); actor <= 7; actor++ {
		require.NoError(t, repo.CreateOrUpdateDecision(ctx, actor, 99, true))
	}

	page1, token, err := repo.GetLikers(ctx, 99, false, nil, 3)
	require.NoError(t, err)
	assert.Len(t, page1, 3)
	require.NotNil(t, token)

	page2, token2, err := repo.GetLikers(ctx, 99, false, token, 3)
	require.NoError(t, err)
	assert.Len(t, page2, 3)
	require.NotNil(t, token2)

	page3, token3, err := repo.GetLikers(ctx, 99, false, token2, 3)
	require.NoError(t, err)
	assert.Len(t, page3, 1)
	assert.Nil(t, token3)

	// no duplicates across pages
	seen := map[uint64]bool{}
	for _, d := range append(append(page1, page2...), page3...) {
		assert.False(t, seen[d.ActorID], "actor %d returned twice", d.ActorID)
		seen[d.ActorID] = true
	}
}

func TestGetLikers_InvalidToken(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewDecisionRepository(setupTestDB(t))

	bad := "not-a-cursor"
	_, _, err := repo.GetLikers(ctx, 99, false, &bad, 10)
	assert.Error(t, err)
}

func TestCountLikers(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewDecisionRepository(dbase)

	_ = repo.CreateOrUpdateDecision(ctx, 1, 99, true)
	_ = repo.CreateOrUpdateDecision(ctx, 2, 99, true)
	_ = repo.CreateOrUpdateDecision(ctx, 3, 99, false) // a pass is not a like
	_ = repo.CreateOrUpdateDecision(ctx, 99, 2, false) // recipient passed actor 2

	count, err := repo.CountLikers(ctx, 99)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestHasLiked(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewDecisionRepository(setupTestDB(t))

	_ = repo.CreateOrUpdateDecision(ctx, 1, 2, true)
	_ = repo.CreateOrUpdateDecision(ctx, 3, 4, false)

	liked, err := repo.HasLiked(ctx, 1, 2)
	assert.NoError(t, err)
	assert.True(t, liked)

	liked, err = repo.HasLiked(ctx, 3, 4)
	assert.NoError(t, err)
	assert.False(t, liked)

	liked, err = repo.HasLiked(ctx, 2, 1)
	assert.NoError(t, err)
	assert.False(t, liked)
}

func TestListByActor(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewDecisionRepository(setupTestDB(t))

	_ = repo.CreateOrUpdateDecision(ctx, 1, 2, true)
	_ = repo.CreateOrUpdateDecision(ctx, 1, 3, false)
	_ = repo.CreateOrUpdateDecision(ctx, 2, 1, true) // someone else's decision

	history, err := repo.ListByActor(ctx, 1, 100)
	assert.NoError(t, err)
	assert.Len(t, history, 2)
	for _, d := range history {
		assert.Equal(t, uint64(1), d.ActorID)
	}
}
