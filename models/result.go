package models

// Severity grades how concerning a red flag is
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// FlagCategory groups red flags by the kind of concern they signal
type FlagCategory string

const (
	FlagConsent    FlagCategory = "consent"
	FlagBoundaries FlagCategory = "boundaries"
	FlagHonesty    FlagCategory = "honesty"
	FlagControl    FlagCategory = "control"
	FlagEmotional  FlagCategory = "emotional"
	FlagTrauma     FlagCategory = "trauma"
	FlagFinancial  FlagCategory = "financial"
	FlagSafety     FlagCategory = "safety"
)

// RedFlag is a detected answer pattern worth the user's attention
type RedFlag struct {
	Severity Severity     `json:"severity" bson:"severity"`
	Category FlagCategory `json:"category" bson:"category"`
	Signal   string       `json:"signal" bson:"signal"`
	Guidance string       `json:"guidance,omitempty" bson:"guidance,omitempty"`
}

// CategoryScore is the rounded average answer weight within one category
type CategoryScore struct {
	Category string `json:"category" bson:"category"`
	Score    int    `json:"score" bson:"score"`
	Label    string `json:"label" bson:"label"`
}

// Band is the qualitative compatibility tier derived from the capped score
type Band string

const (
	BandStrongAlignment  Band = "strong-alignment"
	BandPromising        Band = "promising"
	BandMixedSignals     Band = "mixed-signals"
	BandCaution          Band = "caution"
	BandLowCompatibility Band = "low-compatibility"
)

// Action is the recommended next step after an assessment
type Action string

const (
	ActionProceed       Action = "proceed"
	ActionWithAwareness Action = "proceed-with-awareness"
	ActionPauseReflect  Action = "pause-and-reflect"
)

// CompatibilityResult is the full verdict produced by the scoring engine.
// It is a value object: built once per scoring call and never mutated.
type CompatibilityResult struct {
	OverallScore      int             `json:"overallScore" bson:"overallScore"`
	Band              Band            `json:"band" bson:"band"`
	BandLabel         string          `json:"bandLabel" bson:"bandLabel"`
	BandDescription   string          `json:"bandDescription" bson:"bandDescription"`
	CategoryScores    []CategoryScore `json:"categoryScores" bson:"categoryScores"`
	Strengths         []string        `json:"strengths" bson:"strengths"`
	AwarenessAreas    []string        `json:"awarenessAreas" bson:"awarenessAreas"`
	RedFlags          []RedFlag       `json:"redFlags" bson:"redFlags"`
	RecommendedAction Action          `json:"recommendedAction" bson:"recommendedAction"`
	ActionLabel       string          `json:"actionLabel" bson:"actionLabel"`
	ActionGuidance    string          `json:"actionGuidance" bson:"actionGuidance"`
}

// LocalCategory is the fallback scorer's five-level scale. It is deliberately
// a different enum from Band: the two paths score on different scales.
type LocalCategory string

const (
	LocalHighPotential  LocalCategory = "high-potential"
	LocalWorthExploring LocalCategory = "worth-exploring"
	LocalMixedSignals   LocalCategory = "mixed-signals"
	LocalCaution        LocalCategory = "caution"
	LocalHighRisk       LocalCategory = "high-risk"
)

// LocalScore is the fallback path's output shape
type LocalScore struct {
	Score    int           `json:"score" bson:"score"`
	Category LocalCategory `json:"category" bson:"category"`
}
