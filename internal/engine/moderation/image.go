package moderation

import "fmt"

// ImageFeatures are the per-image scores produced by the external image
// analysis collaborator. The engine does not look at pixels; it only applies
// policy to these numbers. All fields are in [0,1].
type ImageFeatures struct {
	ExplicitScore float64
	ViolenceScore float64
	FakeScore     float64 // likelihood of a stolen/stock/generated photo
	QualityScore  float64 // 0 = unusable, 1 = clean portrait
}

// ImageConfig carries the image policy thresholds.
type ImageConfig struct {
	Explicit   float64 `validate:"gte=0,lte=1"`
	Violence   float64 `validate:"gte=0,lte=1"`
	Fake       float64 `validate:"gte=0,lte=1"`
	MinQuality float64 `validate:"gte=0,lte=1"`

	Confidence ConfidenceConfig
}

func DefaultImageConfig() ImageConfig {
	return ImageConfig{
		Explicit:   0.8,
		Violence:   0.7,
		Fake:       0.6,
		MinQuality: 0.2,
		Confidence: DefaultConfidence(),
	}
}

// ImageClassifier reuses the same verdict state machine as the text
// classifier, substituting image feature scores for text features.
type ImageClassifier struct {
	cfg ImageConfig
}

func NewImageClassifier(cfg ImageConfig) *ImageClassifier {
	return &ImageClassifier{cfg: cfg}
}

// ClassifyImage applies the image policy thresholds in fixed order. Fails
// open like every other classifier.
func (c *ImageClassifier) ClassifyImage(feat ImageFeatures) (v Verdict) {
	defer func() {
		if r := recover(); r != nil {
			v = failOpen(fmt.Sprintf("image classifier error, content approved by policy: %v", r))
		}
	}()

	b := &builder{}

	if feat.ExplicitScore >= c.cfg.Explicit {
		b.add(Flag{
			Type:        FlagExplicit,
			Confidence:  feat.ExplicitScore,
			Description: "explicit image",
		}, SeverityHigh, ActionReject)
	}

	if feat.ViolenceScore >= c.cfg.Violence {
		b.add(Flag{
			Type:        FlagViolence,
			Confidence:  feat.ViolenceScore,
			Description: "violent imagery",
		}, SeverityHigh, ActionReject)
	}

	if feat.FakeScore >= c.cfg.Fake {
		b.add(Flag{
			Type:        FlagFakeProfile,
			Confidence:  feat.FakeScore,
			Description: "photo looks stolen or generated",
		}, SeverityMedium, ActionReview)
	}

	if feat.QualityScore < c.cfg.MinQuality {
		b.add(Flag{
			Type:        FlagLowQuality,
			Confidence:  0.5,
			Description: "image quality too low to verify",
		}, SeverityLow, ActionReview)
	}

	return b.verdict(c.cfg.Confidence, 0)
}
