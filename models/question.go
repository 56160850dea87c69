package models

// Tier controls which subscription level unlocks a question.
// Tiers are cumulative: premium includes free, exclusive includes both.
type Tier string

const (
	TierFree      Tier = "free"
	TierPremium   Tier = "premium"
	TierExclusive Tier = "exclusive"
)

// rank orders tiers for cumulative filtering
func (t Tier) Rank() int {
	switch t {
	case TierFree:
		return 0
	case TierPremium:
		return 1
	case TierExclusive:
		return 2
	default:
		return -1
	}
}

// Includes reports whether a subscription at tier t unlocks questions at other
func (t Tier) Includes(other Tier) bool {
	return t.Rank() >= other.Rank()
}

// Option is one selectable choice on a question, weighted 0-100
type Option struct {
	Value  string `json:"value" bson:"value"`
	Label  string `json:"label" bson:"label"`
	Weight int    `json:"weight" bson:"weight"`
}

// Question is a single catalog entry. IDs follow the "<category>-<slug>"
// convention so an answer's category can be derived from its question ID.
type Question struct {
	ID       string   `json:"id" bson:"id"`
	Tier     Tier     `json:"tier" bson:"tier"`
	Category string   `json:"category" bson:"category"`
	Text     string   `json:"text" bson:"text"`
	Options  []Option `json:"options" bson:"options"`
}
