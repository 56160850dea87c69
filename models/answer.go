package models

// Answer is one answered question. Weight is normally copied from the chosen
// option; Category is optional and only consulted when the question ID carries
// no parseable category prefix.
type Answer struct {
	QuestionID string `json:"questionId" bson:"questionId"`
	Value      string `json:"value" bson:"value"`
	Weight     int    `json:"weight" bson:"weight"`
	Category   string `json:"category,omitempty" bson:"category,omitempty"`
}

// ReflectionNotes holds free-text journaling the user may attach to an
// assessment. All fields are optional; a field counts as present for scoring
// once it exceeds a minimum length.
type ReflectionNotes struct {
	BestMoment       string `json:"bestMoment,omitempty" bson:"bestMoment,omitempty"`
	WorstMoment      string `json:"worstMoment,omitempty" bson:"worstMoment,omitempty"`
	VulnerableMoment string `json:"vulnerableMoment,omitempty" bson:"vulnerableMoment,omitempty"`
	SharedValues     string `json:"sharedValues,omitempty" bson:"sharedValues,omitempty"`
	GutFeeling       string `json:"gutFeeling,omitempty" bson:"gutFeeling,omitempty"`
}
