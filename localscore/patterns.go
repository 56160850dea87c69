package localscore

import (
	"sync"
	"time"

	"heartwise/models"
)

// Interaction is one recorded scoring run plus whatever outcome feedback
// arrived later. Entries are advisory only and live for the process lifetime.
type Interaction struct {
	Score     int                  `json:"score"`
	Category  models.LocalCategory `json:"category"`
	Goal      string               `json:"goal"`
	Age       int                  `json:"age"`
	Outcome   string               `json:"outcome,omitempty"`
	Feedback  string               `json:"feedback,omitempty"`
	Timestamp time.Time            `json:"timestamp"`
}

// Pattern is an aggregate accuracy row for one named signal pattern
type Pattern struct {
	Key         string  `json:"key"`
	Description string  `json:"description"`
	Accuracy    float64 `json:"accuracy"`
	UsageCount  int     `json:"usageCount"`
}

// PatternStore is the advisory memory consulted by the local scorer. The
// in-memory implementation below is the default; the interface exists so a
// deployment can back it with a real store without touching the scorer.
type PatternStore interface {
	Record(interaction Interaction)
	Query(score int, category models.LocalCategory) []Interaction
	UpdatePattern(key, description string, accurate bool)
	Patterns() []Pattern
}

// similarityWindow bounds how far apart two scores can be and still count as
// similar interactions
const similarityWindow = 15

// MemoryPatternStore keeps interactions and pattern rows in process memory,
// insertion-ordered. Appends are guarded by a mutex so concurrent readers
// never observe a partially written record.
type MemoryPatternStore struct {
	mu           sync.RWMutex
	interactions []Interaction
	patterns     map[string]*Pattern
	order        []string
}

// NewMemoryPatternStore creates an empty in-process pattern store
func NewMemoryPatternStore() *MemoryPatternStore {
	return &MemoryPatternStore{
		patterns: make(map[string]*Pattern),
	}
}

// Record appends an interaction. It never fails; the store is advisory.
func (s *MemoryPatternStore) Record(interaction Interaction) {
	if interaction.Timestamp.IsZero() {
		interaction.Timestamp = time.Now()
	}
	s.mu.Lock()
	s.interactions = append(s.interactions, interaction)
	s.mu.Unlock()
}

// Query returns past interactions whose score landed within the similarity
// window of the given score and resolved to the same category.
func (s *MemoryPatternStore) Query(score int, category models.LocalCategory) []Interaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var similar []Interaction
	for _, entry := range s.interactions {
		diff := entry.Score - score
		if diff < 0 {
			diff = -diff
		}
		if diff < similarityWindow && entry.Category == category {
			similar = append(similar, entry)
		}
	}
	return similar
}

// UpdatePattern folds one accuracy observation into the named pattern row,
// creating it on first use. Accuracy is a running mean.
func (s *MemoryPatternStore) UpdatePattern(key, description string, accurate bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.patterns[key]
	if !ok {
		p = &Pattern{Key: key, Description: description}
		s.patterns[key] = p
		s.order = append(s.order, key)
	}

	observed := 0.0
	if accurate {
		observed = 1.0
	}
	p.Accuracy = (p.Accuracy*float64(p.UsageCount) + observed) / float64(p.UsageCount+1)
	p.UsageCount++
}

// Patterns returns aggregate rows in insertion order
func (s *MemoryPatternStore) Patterns() []Pattern {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Pattern, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, *s.patterns[key])
	}
	return out
}
