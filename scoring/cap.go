package scoring

import "heartwise/models"

// Ceiling values applied when flags fire. Only the first matching rule
// applies; a critical flag always dominates.
const (
	criticalCeiling   = 45
	doubleHighCeiling = 60
	elevatedCeiling   = 75
)

// ScoreCeiling computes the upper bound the flag set places on a score.
// Priority order, first match wins:
//  1. any critical flag          -> 45
//  2. two or more high flags     -> 60
//  3. one high or two+ medium    -> 75
//  4. otherwise                  -> 100
func ScoreCeiling(flags []models.RedFlag) int {
	var critical, high, medium int
	for _, f := range flags {
		switch f.Severity {
		case models.SeverityCritical:
			critical++
		case models.SeverityHigh:
			high++
		case models.SeverityMedium:
			medium++
		}
	}

	switch {
	case critical >= 1:
		return criticalCeiling
	case high >= 2:
		return doubleHighCeiling
	case high == 1 || medium >= 2:
		return elevatedCeiling
	default:
		return 100
	}
}

// CapScore applies the flag ceiling to the raw score
func CapScore(raw int, flags []models.RedFlag) int {
	if ceiling := ScoreCeiling(flags); raw > ceiling {
		return ceiling
	}
	return raw
}
