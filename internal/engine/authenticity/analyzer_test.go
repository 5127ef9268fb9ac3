package authenticity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kindredapp/kindred/internal/engine/authenticity"
	"github.com/kindredapp/kindred/internal/engine/lexicon"
	"github.com/kindredapp/kindred/internal/engine/moderation"
	"github.com/kindredapp/kindred/internal/engine/profile"
)

func newAnalyzer() *authenticity.Analyzer {
	return authenticity.NewAnalyzer(lexicon.Default(), authenticity.DefaultConfig())
}

func credibleProfile() profile.Snapshot {
	return profile.Snapshot{
		ID:         7,
		Age:        29,
		Gender:     "female",
		Bio:        "Bióloga marina, toco el violonchelo y colecciono mapas antiguos de ciudades portuarias.",
		Interests:  []string{"buceo", "música", "viajes"},
		Location:   "Valencia, Ruzafa",
		Email:      "marta@gmail.com",
		PhotoCount: 4,
		CreatedAt:  time.Now().Add(-90 * 24 * time.Hour),
	}
}

func TestAnalyze_CredibleProfileApproves(t *testing.T) {
	v := newAnalyzer().Analyze(credibleProfile())
	assert.True(t, v.IsAppropriate)
	assert.Equal(t, moderation.ActionApprove, v.Action)
	assert.Empty(t, v.Flags)
}

func TestAnalyze_UnderageAlwaysRejects(t *testing.T) {
	a := newAnalyzer()

	// even an otherwise perfect profile
	p := credibleProfile()
	p.Age = 17

	v := a.Analyze(p)
	assert.GreaterOrEqual(t, v.Action, moderation.ActionReject)
	assert.Equal(t, moderation.SeverityCritical, v.Severity)
	assert.False(t, v.IsAppropriate)
}

func TestAnalyze_EmptyProfileRejects(t *testing.T) {
	v := newAnalyzer().Analyze(profile.Snapshot{ID: 1, Age: 25})

	// no photos + no bio + no interests sums well past the reject bound
	assert.Equal(t, moderation.ActionReject, v.Action)
	assert.Equal(t, moderation.SeverityHigh, v.Severity)
}

func TestAnalyze_GenericBio(t *testing.T) {
	p := credibleProfile()
	p.Bio = "no sé qué poner, pregúntame"

	v := newAnalyzer().Analyze(p)
	assert.NotEmpty(t, v.Flags)
	assert.Equal(t, moderation.FlagFakeProfile, v.Flags[0].Type)
}

func TestAnalyze_DisposableEmail(t *testing.T) {
	p := credibleProfile()
	p.Email = "test123@mailinator.com"

	v := newAnalyzer().Analyze(p)
	var found bool
	for _, f := range v.Flags {
		if f.Description == "disposable or placeholder email address" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestAnalyze_SinglePhotoAloneStaysApproved(t *testing.T) {
	p := credibleProfile()
	p.PhotoCount = 1

	v := newAnalyzer().Analyze(p)
	// one weak signal (0.3) is below the review bound
	assert.Equal(t, moderation.ActionApprove, v.Action)
	assert.True(t, v.IsAppropriate)
}

func TestAnalyze_NewAccountHighAge(t *testing.T) {
	p := credibleProfile()
	p.Age = 62
	p.CreatedAt = time.Now().Add(-24 * time.Hour)

	v := newAnalyzer().Analyze(p)
	var found bool
	for _, f := range v.Flags {
		if f.Description == "brand-new account with a high stated age" {
			found = true
		}
	}
	assert.True(t, found)
}
