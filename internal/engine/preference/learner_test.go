package preference_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kindredapp/kindred/internal/engine/preference"
	"github.com/kindredapp/kindred/internal/engine/profile"
)

type stubProfiles struct {
	profiles map[uint64]profile.Snapshot
}

func (s *stubProfiles) GetProfile(_ context.Context, id uint64) (profile.Snapshot, error) {
	p, ok := s.profiles[id]
	if !ok {
		return profile.Snapshot{}, errors.New("not found")
	}
	return p, nil
}

type stubModelStore struct {
	saved map[uint64]preference.Model
	err   error
}

func (s *stubModelStore) UpdatePreferenceModel(_ context.Context, userID uint64, m preference.Model) error {
	if s.err != nil {
		return s.err
	}
	if s.saved == nil {
		s.saved = make(map[uint64]preference.Model)
	}
	s.saved[userID] = m
	return nil
}

func liked(target uint64) preference.Interaction {
	return preference.Interaction{Action: preference.ActionLiked, TargetUserID: target, Timestamp: time.Now()}
}

func passed(target uint64) preference.Interaction {
	return preference.Interaction{Action: preference.ActionPassed, TargetUserID: target, Timestamp: time.Now()}
}

func newLearner(src *stubProfiles, store *stubModelStore) *preference.Learner {
	return preference.NewLearner(src, store, slog.Default())
}

func TestLearn_AgeRangeWithMargin(t *testing.T) {
	src := &stubProfiles{profiles: map[uint64]profile.Snapshot{
		10: {ID: 10, Age: 25},
		11: {ID: 11, Age: 31},
		12: {ID: 12, Age: 28},
	}}
	store := &stubModelStore{}

	m, err := newLearner(src, store).Learn(context.Background(), 1, []preference.Interaction{
		liked(10), liked(11), liked(12),
	})
	require.NoError(t, err)

	require.NotNil(t, m.AgeMin)
	require.NotNil(t, m.AgeMax)
	assert.Equal(t, 23, *m.AgeMin) // 25 - 2
	assert.Equal(t, 33, *m.AgeMax) // 31 + 2
}

func TestLearn_InterestThreshold(t *testing.T) {
	src := &stubProfiles{profiles: map[uint64]profile.Snapshot{
		10: {ID: 10, Age: 25, Interests: []string{"Viajes", "cine"}},
		11: {ID: 11, Age: 26, Interests: []string{"viajes", "yoga"}},
		12: {ID: 12, Age: 27, Interests: []string{"viajes"}},
		13: {ID: 13, Age: 28, Interests: []string{"cine"}},
	}}
	store := &stubModelStore{}

	m, err := newLearner(src, store).Learn(context.Background(), 1, []preference.Interaction{
		liked(10), liked(11), liked(12), liked(13),
	})
	require.NoError(t, err)

	// viajes in 3/4, cine in 2/4 (both >= 30%); yoga in 1/4 drops out
	assert.Equal(t, []string{"cine", "viajes"}, m.Interests)
}

func TestLearn_ConfidenceSaturatesAtTwenty(t *testing.T) {
	profiles := make(map[uint64]profile.Snapshot)
	var history []preference.Interaction
	for i := uint64(1); i <= 30; i++ {
		profiles[100+i] = profile.Snapshot{ID: 100 + i, Age: 25}
		history = append(history, liked(100+i))
	}
	store := &stubModelStore{}

	m, err := newLearner(&stubProfiles{profiles: profiles}, store).Learn(context.Background(), 1, history)
	require.NoError(t, err)
	assert.Equal(t, 1.0, m.Confidence)

	m, err = newLearner(&stubProfiles{profiles: profiles}, store).Learn(context.Background(), 1, history[:5])
	require.NoError(t, err)
	assert.Equal(t, 0.25, m.Confidence)
}

func TestLearn_PassesIgnored(t *testing.T) {
	src := &stubProfiles{profiles: map[uint64]profile.Snapshot{
		10: {ID: 10, Age: 25, Interests: []string{"viajes"}},
		20: {ID: 20, Age: 60, Interests: []string{"golf"}},
	}}
	store := &stubModelStore{}

	m, err := newLearner(src, store).Learn(context.Background(), 1, []preference.Interaction{
		liked(10), passed(20),
	})
	require.NoError(t, err)

	assert.Equal(t, 27, *m.AgeMax) // only the liked profile counts
	assert.NotContains(t, m.Interests, "golf")
}

func TestLearn_Idempotent(t *testing.T) {
	src := &stubProfiles{profiles: map[uint64]profile.Snapshot{
		10: {ID: 10, Age: 25, Interests: []string{"viajes", "cine"}},
		11: {ID: 11, Age: 30, Interests: []string{"viajes"}},
	}}
	store := &stubModelStore{}
	learner := newLearner(src, store)
	history := []preference.Interaction{liked(10), liked(11)}

	first, err := learner.Learn(context.Background(), 1, history)
	require.NoError(t, err)
	second, err := learner.Learn(context.Background(), 1, history)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, second, store.saved[1])
}

func TestLearn_UnreadableProfilesSkipped(t *testing.T) {
	src := &stubProfiles{profiles: map[uint64]profile.Snapshot{
		10: {ID: 10, Age: 25},
	}}
	store := &stubModelStore{}

	m, err := newLearner(src, store).Learn(context.Background(), 1, []preference.Interaction{
		liked(10), liked(999), // 999 does not resolve
	})
	require.NoError(t, err)

	// both likes count toward confidence, only readable ages shape the range
	assert.Equal(t, 0.1, m.Confidence)
	assert.Equal(t, 23, *m.AgeMin)
	assert.Equal(t, 27, *m.AgeMax)
}

func TestLearn_EmptyHistory(t *testing.T) {
	store := &stubModelStore{}

	m, err := newLearner(&stubProfiles{}, store).Learn(context.Background(), 1, nil)
	require.NoError(t, err)

	assert.Nil(t, m.AgeMin)
	assert.Nil(t, m.AgeMax)
	assert.Empty(t, m.Interests)
	assert.Zero(t, m.Confidence)
}

func TestLearn_StoreFailureReturnsError(t *testing.T) {
	store := &stubModelStore{err: errors.New("write denied")}

	_, err := newLearner(&stubProfiles{}, store).Learn(context.Background(), 1, nil)
	assert.Error(t, err)
}
