package catalog

import "heartwise/models"

// The question list is append-only within a catalog version so stored
// assessments keep resolving against the IDs they were scored with.
var questions = []models.Question{
	{
		ID:       "boundaries-consent",
		Tier:     models.TierFree,
		Category: "boundaries",
		Text:     "How do they treat your boundaries and consent?",
		Options: []models.Option{
			{Value: "always-respects", Label: "Always respects them", Weight: 95},
			{Value: "usually-respects", Label: "Usually respects them", Weight: 70},
			{Value: "flexible", Label: "Treats them as flexible", Weight: 20},
			{Value: "boundaries-not-important", Label: "Says boundaries aren't important", Weight: 5},
		},
	},
	{
		ID:       "honesty-relationship-status",
		Tier:     models.TierFree,
		Category: "honesty",
		Text:     "How do they describe their current relationship status?",
		Options: []models.Option{
			{Value: "fully-single", Label: "Fully single", Weight: 90},
			{Value: "recently-separated", Label: "Recently separated", Weight: 55},
			{Value: "complicated", Label: "It's complicated", Weight: 25},
			{Value: "seeing-others", Label: "Still seeing other people", Weight: 15},
		},
	},
	{
		ID:       "control-relationship-dynamics",
		Tier:     models.TierFree,
		Category: "control",
		Text:     "What relationship dynamic do they say they want?",
		Options: []models.Option{
			{Value: "equal-partnership", Label: "An equal partnership", Weight: 95},
			{Value: "takes-turns-leading", Label: "Taking turns leading", Weight: 75},
			{Value: "strict-traditional", Label: "Strict traditional roles", Weight: 35},
			{Value: "prefers-control", Label: "They prefer to be in control", Weight: 20},
		},
	},
	{
		ID:       "emotional-conflict-style",
		Tier:     models.TierFree,
		Category: "emotional",
		Text:     "How do they handle disagreements with you?",
		Options: []models.Option{
			{Value: "talks-it-through", Label: "Talks it through calmly", Weight: 90},
			{Value: "needs-space-first", Label: "Needs space, then talks", Weight: 70},
			{Value: "shuts-down", Label: "Shuts down completely", Weight: 40},
			{Value: "explosive", Label: "Gets explosive", Weight: 10},
		},
	},
	{
		ID:       "trauma-past-relationships",
		Tier:     models.TierFree,
		Category: "trauma",
		Text:     "How do they talk about their past relationships?",
		Options: []models.Option{
			{Value: "balanced-reflection", Label: "Balanced, owns their part", Weight: 90},
			{Value: "mostly-private", Label: "Keeps it mostly private", Weight: 60},
			{Value: "still-bitter", Label: "Still clearly bitter", Weight: 35},
			{Value: "all-their-fault", Label: "Everything was the ex's fault", Weight: 15},
		},
	},
	{
		ID:       "financial-approach",
		Tier:     models.TierFree,
		Category: "financial",
		Text:     "How do they approach conversations about money?",
		Options: []models.Option{
			{Value: "open-and-planned", Label: "Open, plans ahead", Weight: 90},
			{Value: "casual-but-honest", Label: "Casual but honest", Weight: 70},
			{Value: "secretive", Label: "Secretive about it", Weight: 35},
			{Value: "avoid-discussing", Label: "Refuses to discuss it", Weight: 20},
		},
	},
	{
		ID:       "safety-anger-management",
		Tier:     models.TierFree,
		Category: "safety",
		Text:     "When they get angry, what does it look like?",
		Options: []models.Option{
			{Value: "stays-composed", Label: "Stays composed", Weight: 90},
			{Value: "raises-voice-rarely", Label: "Raises their voice rarely", Weight: 60},
			{Value: "often-lose-control", Label: "Often loses control", Weight: 10},
			{Value: "physical-expression", Label: "Gets physical (throwing, slamming)", Weight: 5},
		},
	},
	{
		ID:       "communication-daily-checkins",
		Tier:     models.TierFree,
		Category: "communication",
		Text:     "How consistent is their day-to-day communication?",
		Options: []models.Option{
			{Value: "steady-and-warm", Label: "Steady and warm", Weight: 90},
			{Value: "busy-but-present", Label: "Busy but present", Weight: 70},
			{Value: "hot-and-cold", Label: "Hot and cold", Weight: 40},
			{Value: "mostly-absent", Label: "Mostly absent", Weight: 20},
		},
	},
	{
		ID:       "values-family-importance",
		Tier:     models.TierFree,
		Category: "values",
		Text:     "How important is family to them?",
		Options: []models.Option{
			{Value: "central", Label: "Central to their life", Weight: 90},
			{Value: "important", Label: "Important, with balance", Weight: 75},
			{Value: "distant", Label: "Distant from family", Weight: 50},
			{Value: "dismissive", Label: "Dismissive of family ties", Weight: 30},
		},
	},
	{
		ID:       "lifestyle-social-energy",
		Tier:     models.TierFree,
		Category: "lifestyle",
		Text:     "How does their social energy match yours?",
		Options: []models.Option{
			{Value: "great-match", Label: "Great match", Weight: 90},
			{Value: "workable-difference", Label: "Different but workable", Weight: 65},
			{Value: "often-drained", Label: "One of us is often drained", Weight: 40},
			{Value: "constant-friction", Label: "Constant friction", Weight: 25},
		},
	},
	{
		ID:       "future-shared-goals",
		Tier:     models.TierPremium,
		Category: "future",
		Text:     "Have you talked about long-term goals, and do they align?",
		Options: []models.Option{
			{Value: "aligned", Label: "Yes, strongly aligned", Weight: 95},
			{Value: "mostly-aligned", Label: "Mostly aligned", Weight: 75},
			{Value: "avoided-topic", Label: "They avoid the topic", Weight: 35},
			{Value: "clearly-different", Label: "Clearly different goals", Weight: 20},
		},
	},
	{
		ID:       "commitment-pace",
		Tier:     models.TierPremium,
		Category: "commitment",
		Text:     "How do they handle commitment pacing?",
		Options: []models.Option{
			{Value: "intentional", Label: "Intentional and clear", Weight: 90},
			{Value: "slow-but-steady", Label: "Slow but steady", Weight: 70},
			{Value: "avoids-labels", Label: "Avoids labels entirely", Weight: 40},
			{Value: "love-bombing", Label: "Very intense very fast", Weight: 25},
		},
	},
	{
		ID:       "emotional-support-under-stress",
		Tier:     models.TierPremium,
		Category: "emotional",
		Text:     "When you're stressed, how do they show up for you?",
		Options: []models.Option{
			{Value: "attuned", Label: "Attuned and supportive", Weight: 95},
			{Value: "tries-hard", Label: "Tries, sometimes misses", Weight: 70},
			{Value: "uncomfortable", Label: "Visibly uncomfortable with feelings", Weight: 40},
			{Value: "dismissive", Label: "Dismissive of your stress", Weight: 15},
		},
	},
	{
		ID:       "communication-active-listening",
		Tier:     models.TierPremium,
		Category: "communication",
		Text:     "Do they listen and remember what you express?",
		Options: []models.Option{
			{Value: "remembers-details", Label: "Remembers the small details", Weight: 95},
			{Value: "listens-in-moment", Label: "Listens in the moment", Weight: 70},
			{Value: "waits-to-talk", Label: "Mostly waits for their turn to talk", Weight: 40},
			{Value: "interrupts", Label: "Interrupts or changes the subject", Weight: 20},
		},
	},
	{
		ID:       "maturity-accountability",
		Tier:     models.TierPremium,
		Category: "maturity",
		Text:     "When they make a mistake, what happens?",
		Options: []models.Option{
			{Value: "owns-it", Label: "Owns it and repairs", Weight: 95},
			{Value: "apologizes-eventually", Label: "Apologizes eventually", Weight: 65},
			{Value: "deflects", Label: "Deflects or minimizes", Weight: 35},
			{Value: "blames-you", Label: "Turns it around on you", Weight: 10},
		},
	},
	{
		ID:       "lifestyle-habits-alignment",
		Tier:     models.TierPremium,
		Category: "lifestyle",
		Text:     "How well do your daily habits and routines fit together?",
		Options: []models.Option{
			{Value: "natural-fit", Label: "Natural fit", Weight: 90},
			{Value: "some-compromise", Label: "Some compromise needed", Weight: 70},
			{Value: "frequent-friction", Label: "Frequent friction", Weight: 40},
			{Value: "incompatible", Label: "Feels incompatible", Weight: 25},
		},
	},
	{
		ID:       "values-spending-priorities",
		Tier:     models.TierExclusive,
		Category: "values",
		Text:     "Do their spending priorities reflect values you share?",
		Options: []models.Option{
			{Value: "strongly-shared", Label: "Strongly shared", Weight: 90},
			{Value: "mostly-shared", Label: "Mostly shared", Weight: 70},
			{Value: "some-concern", Label: "Some things concern me", Weight: 45},
			{Value: "opposed", Label: "Opposed to mine", Weight: 25},
		},
	},
	{
		ID:       "interest-curiosity-about-you",
		Tier:     models.TierExclusive,
		Category: "interest",
		Text:     "How curious are they about your inner world?",
		Options: []models.Option{
			{Value: "deeply-curious", Label: "Deeply curious", Weight: 95},
			{Value: "interested", Label: "Interested", Weight: 75},
			{Value: "surface-level", Label: "Surface level only", Weight: 45},
			{Value: "self-focused", Label: "Mostly talks about themselves", Weight: 25},
		},
	},
	{
		ID:       "future-children-alignment",
		Tier:     models.TierExclusive,
		Category: "future",
		Text:     "Where do they stand on children, relative to you?",
		Options: []models.Option{
			{Value: "same-page", Label: "Same page", Weight: 95},
			{Value: "open-discussion", Label: "Open, still discussing", Weight: 70},
			{Value: "unclear", Label: "Won't give a clear answer", Weight: 40},
			{Value: "opposite", Label: "Opposite of what I want", Weight: 15},
		},
	},
	{
		ID:       "fun-shared-laughter",
		Tier:     models.TierExclusive,
		Category: "fun",
		Text:     "How often do you genuinely laugh together?",
		Options: []models.Option{
			{Value: "all-the-time", Label: "All the time", Weight: 95},
			{Value: "often", Label: "Often", Weight: 75},
			{Value: "sometimes", Label: "Sometimes", Weight: 50},
			{Value: "rarely", Label: "Rarely", Weight: 30},
		},
	},
}
