package tools

import (
	"fmt"

	"github.com/xaverhimmelsbach/tolerance-pair-matching/pkg/config"
	"github.com/xaverhimmelsbach/tolerance-pair-matching/pkg/pairMatching"
)

// SweepResult holds the match count for a single tolerance of a sweep
type SweepResult struct {
	Tolerance int
	Count     int
}

// SweepTolerance matches the same two sequences with every tolerance in [from, to] and returns
// the match count per tolerance. Counts never decrease along the sweep, since raising the
// tolerance only widens the set of valid pairings.
func SweepTolerance(applicants []int, apartments []int, from int, to int) ([]SweepResult, error) {
	if from < 0 || to < from {
		return nil, fmt.Errorf("invalid tolerance range [%d, %d]", from, to)
	}

	cfg := config.Default()
	results := make([]SweepResult, 0, to-from+1)

	for tolerance := from; tolerance <= to; tolerance++ {
		matching, err := pairMatching.NewMatching(applicants, apartments, tolerance, cfg)
		if err != nil {
			return nil, err
		}

		matching.Match()
		results = append(results, SweepResult{
			Tolerance: tolerance,
			Count:     matching.Count(),
		})
	}

	return results, nil
}
