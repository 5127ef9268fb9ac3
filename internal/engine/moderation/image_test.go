package moderation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kindredapp/kindred/internal/engine/moderation"
)

func newImageClassifier() *moderation.ImageClassifier {
	return moderation.NewImageClassifier(moderation.DefaultImageConfig())
}

func TestClassifyImage_CleanPortrait(t *testing.T) {
	c := newImageClassifier()

	v := c.ClassifyImage(moderation.ImageFeatures{QualityScore: 0.9})
	assert.True(t, v.IsAppropriate)
	assert.Equal(t, moderation.ActionApprove, v.Action)
	assert.Empty(t, v.Flags)
}

func TestClassifyImage_ExplicitRejects(t *testing.T) {
	c := newImageClassifier()

	v := c.ClassifyImage(moderation.ImageFeatures{ExplicitScore: 0.85, QualityScore: 0.9})
	assert.False(t, v.IsAppropriate)
	assert.Equal(t, moderation.ActionReject, v.Action)
	assert.Equal(t, moderation.SeverityHigh, v.Severity)
}

func TestClassifyImage_FakePhotoReviews(t *testing.T) {
	c := newImageClassifier()

	v := c.ClassifyImage(moderation.ImageFeatures{FakeScore: 0.7, QualityScore: 0.9})
	assert.Equal(t, moderation.ActionReview, v.Action)
	assert.False(t, v.IsAppropriate)
}

func TestClassifyImage_LowQualityReviewsButStaysAppropriate(t *testing.T) {
	c := newImageClassifier()

	v := c.ClassifyImage(moderation.ImageFeatures{QualityScore: 0.1})
	assert.Equal(t, moderation.ActionReview, v.Action)
	// the quality flag sits below the significance bound
	assert.True(t, v.IsAppropriate)
}

func TestClassifyImage_RejectWinsOverReview(t *testing.T) {
	c := newImageClassifier()

	v := c.ClassifyImage(moderation.ImageFeatures{
		ExplicitScore: 0.9,
		ViolenceScore: 0.8,
		FakeScore:     0.7,
		QualityScore:  0.05,
	})
	assert.Equal(t, moderation.ActionReject, v.Action)
	assert.Equal(t, moderation.SeverityHigh, v.Severity)
	assert.Len(t, v.Flags, 4)
}
