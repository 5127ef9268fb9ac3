package personality

// Trait names the eight personality dimensions the analyzer scores. Values
// double as lexicon table keys.
type Trait string

const (
	TraitOpenness           Trait = "openness"
	TraitConscientiousness  Trait = "conscientiousness"
	TraitExtraversion       Trait = "extraversion"
	TraitAgreeableness      Trait = "agreeableness"
	TraitEmotionalStability Trait = "emotional_stability"
	TraitLifestyleOpenness  Trait = "lifestyle_openness"
	TraitCommunication      Trait = "communication"
	TraitDiscretion         Trait = "discretion"
)

// AllTraits returns the traits in their fixed presentation order.
func AllTraits() []Trait {
	return []Trait{
		TraitOpenness,
		TraitConscientiousness,
		TraitExtraversion,
		TraitAgreeableness,
		TraitEmotionalStability,
		TraitLifestyleOpenness,
		TraitCommunication,
		TraitDiscretion,
	}
}

// descriptions is the hand-authored five-band ladder per trait, from
// "very high" (index 0, score >= 80) down to "very low" (index 4).
var descriptions = map[Trait][5]string{
	TraitOpenness: {
		"constantly seeks new experiences, ideas and places",
		"enjoys novelty and is happy to step outside the routine",
		"balances familiar comforts with the occasional adventure",
		"prefers the known and the predictable",
		"strongly attached to routine and familiar surroundings",
	},
	TraitConscientiousness: {
		"highly disciplined, organized and goal-driven",
		"reliable and structured in most areas of life",
		"keeps a working balance between planning and improvising",
		"tends to go with the flow rather than plan ahead",
		"avoids structure and long-term commitments",
	},
	TraitExtraversion: {
		"energized by people, crowds and constant social contact",
		"sociable and comfortable meeting new people",
		"enjoys company but also values time alone",
		"reserved, opens up slowly in social settings",
		"strongly prefers solitude or very small groups",
	},
	TraitAgreeableness: {
		"deeply empathetic, generous and oriented toward others",
		"warm, cooperative and easy to get along with",
		"friendly, with healthy boundaries",
		"guarded and slow to extend trust",
		"fiercely independent, puts own needs first",
	},
	TraitEmotionalStability: {
		"unshakably calm and centered under pressure",
		"generally relaxed, recovers quickly from setbacks",
		"even-tempered with occasional stressful stretches",
		"sensitive to stress and emotional swings",
		"easily overwhelmed by pressure or conflict",
	},
	TraitLifestyleOpenness: {
		"always up for trying a new sport, dish or plan",
		"active lifestyle with room for spontaneity",
		"mixes active plans with quiet ones",
		"settled habits, rarely tries new activities",
		"firmly committed to a fixed daily routine",
	},
	TraitCommunication: {
		"exceptional listener and storyteller, thrives on deep conversation",
		"articulate and genuinely interested in dialogue",
		"communicates clearly when the topic matters",
		"speaks little, prefers actions over words",
		"finds sustained conversation draining",
	},
	TraitDiscretion: {
		"intensely private, shares only with a trusted few",
		"values privacy and a quiet personal life",
		"moderately private, selective about sharing",
		"open book, shares freely",
		"broadcasts everything, little sense of privacy",
	},
}

// compatibilityFactors are the hand-authored pairing hints attached to each
// trait's insight.
var compatibilityFactors = map[Trait][]string{
	TraitOpenness:           {"shared curiosity", "travel companionship", "trying new things together"},
	TraitConscientiousness:  {"aligned life goals", "mutual reliability"},
	TraitExtraversion:       {"shared social circle", "going-out energy"},
	TraitAgreeableness:      {"emotional support", "low-conflict dynamic"},
	TraitEmotionalStability: {"calm under stress", "steady commitment"},
	TraitLifestyleOpenness:  {"active plans together", "spontaneous weekends"},
	TraitCommunication:      {"deep conversations", "easy conflict resolution"},
	TraitDiscretion:         {"respect for personal space", "quiet nights in"},
}

// bandDescription selects the ladder entry for a 0..100 score using the
// 80/60/40/20 thresholds.
func bandDescription(trait Trait, score int) string {
	ladder := descriptions[trait]
	switch {
	case score >= 80:
		return ladder[0]
	case score >= 60:
		return ladder[1]
	case score >= 40:
		return ladder[2]
	case score >= 20:
		return ladder[3]
	default:
		return ladder[4]
	}
}
