package leaderboard

import (
	"fmt"
	"sort"
)

// Limit bounds for every board request. Out-of-range values are a
// validation error, never clamped.
const (
	MinLimit = 1
	MaxLimit = 50
)

func ValidateLimit(limit int) error {
	if limit < MinLimit || limit > MaxLimit {
		return fmt.Errorf("limit must be between %d and %d", MinLimit, MaxLimit)
	}
	return nil
}

// Rank orders rollups for display: entries with no positive total are
// dropped, the rest sort by total points descending with ties broken by
// ascending display name (byte-wise), then subject id so the order is
// total. The result is truncated to limit entries.
func Rank(entries map[string]*Entry, limit int) ([]*Entry, error) {
	if err := ValidateLimit(limit); err != nil {
		return nil, err
	}

	ranked := make([]*Entry, 0, len(entries))
	for _, e := range entries {
		if e.TotalPoints <= 0 {
			continue
		}
		ranked = append(ranked, e)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].TotalPoints != ranked[j].TotalPoints {
			return ranked[i].TotalPoints > ranked[j].TotalPoints
		}
		if ranked[i].DisplayName != ranked[j].DisplayName {
			return ranked[i].DisplayName < ranked[j].DisplayName
		}
		return ranked[i].SubjectID < ranked[j].SubjectID
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}
