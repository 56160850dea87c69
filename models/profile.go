package models

// Importance marks how strongly a user weighs a self-declared value
type Importance string

const (
	ImportanceHigh        Importance = "high"
	ImportanceDealbreaker Importance = "dealbreaker"
)

// ValueStatement is one self-declared priority on a user's profile,
// e.g. {"category": "values", "statement": "wants kids", "importance": "dealbreaker"}
type ValueStatement struct {
	Category   string     `json:"category" bson:"category"`
	Statement  string     `json:"statement" bson:"statement"`
	Importance Importance `json:"importance" bson:"importance"`
}

// UserProfile is the asking user's dating context. The engine only reads it
// to bias weighting; it is owned by the profile endpoints, not the engine.
type UserProfile struct {
	Age        int              `json:"age" bson:"age"`
	DatingGoal string           `json:"datingGoal" bson:"datingGoal"` // marriage | long-term | casual
	Bio        string           `json:"bio" bson:"bio"`
	Values     []ValueStatement `json:"values,omitempty" bson:"values,omitempty"`
}
