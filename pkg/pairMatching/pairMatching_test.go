package pairMatching_test

import (
	"testing"

	"gotest.tools/assert"

	"github.com/xaverhimmelsbach/tolerance-pair-matching/pkg/config"
	"github.com/xaverhimmelsbach/tolerance-pair-matching/pkg/pairMatching"
)

func mustMatch(t *testing.T, applicants []int, apartments []int, tolerance int) *pairMatching.Matching {
	matching, err := pairMatching.NewMatching(applicants, apartments, tolerance, config.Default())
	assert.NilError(t, err)
	matching.Match()
	return matching
}

func TestMatchIdenticalSequences(t *testing.T) {
	matching := mustMatch(t, []int{1, 2, 3}, []int{1, 2, 3}, 0)
	assert.Equal(t, matching.Count(), 3)
}

func TestMatchWithTolerance(t *testing.T) {
	matching := mustMatch(t, []int{1, 5}, []int{2, 6}, 1)

	assert.Equal(t, matching.Count(), 2)

	pairs := matching.Pairs()
	assert.Equal(t, pairs[0], pairMatching.Pair{Applicant: 1, Apartment: 2})
	assert.Equal(t, pairs[1], pairMatching.Pair{Applicant: 5, Apartment: 6})
}

func TestMatchEmptySequences(t *testing.T) {
	assert.Equal(t, mustMatch(t, []int{}, []int{1, 2, 3}, 100).Count(), 0)
	assert.Equal(t, mustMatch(t, []int{1, 2, 3}, []int{}, 100).Count(), 0)
	assert.Equal(t, mustMatch(t, []int{}, []int{}, 100).Count(), 0)
}

func TestMatchNoCompatiblePair(t *testing.T) {
	matching := mustMatch(t, []int{10}, []int{1}, 5)
	assert.Equal(t, matching.Count(), 0)
}

func TestMatchLeavesExtraApplicantsUnmatched(t *testing.T) {
	// Only the apartments at 60 and 75 are within reach of any applicant
	matching := mustMatch(t, []int{60, 45, 80, 60}, []int{30, 60, 75}, 5)
	assert.Equal(t, matching.Count(), 2)
}

func TestMatchIsIndependentOfInputOrder(t *testing.T) {
	sorted := mustMatch(t, []int{10, 20, 30, 40}, []int{15, 25, 35, 45}, 5)
	shuffled := mustMatch(t, []int{40, 10, 30, 20}, []int{45, 15, 25, 35}, 5)

	assert.Equal(t, sorted.Count(), shuffled.Count())
	assert.DeepEqual(t, sorted.Pairs(), shuffled.Pairs())
}

func TestMatchDoesNotMutateCallerSlices(t *testing.T) {
	applicants := []int{3, 1, 2}
	apartments := []int{9, 7, 8}

	mustMatch(t, applicants, apartments, 0)

	assert.DeepEqual(t, applicants, []int{3, 1, 2})
	assert.DeepEqual(t, apartments, []int{9, 7, 8})
}

func TestMatchCountIsBoundedByShorterSequence(t *testing.T) {
	matching := mustMatch(t, []int{1, 2, 3, 4, 5, 6, 7}, []int{1, 2, 3}, 1000)
	assert.Equal(t, matching.Count(), 3)
}

func TestMatchCountIsMonotonicInTolerance(t *testing.T) {
	applicants := []int{3, 14, 15, 92, 65, 35}
	apartments := []int{2, 71, 82, 81, 8, 28}

	previous := 0
	for tolerance := 0; tolerance <= 50; tolerance++ {
		count := mustMatch(t, applicants, apartments, tolerance).Count()
		assert.Assert(t, count >= previous, "count dropped from %d to %d at tolerance %d", previous, count, tolerance)
		previous = count
	}
}

func TestMatchIsSymmetric(t *testing.T) {
	applicants := []int{5, 12, 7, 30}
	apartments := []int{6, 28, 40}

	forward := mustMatch(t, applicants, apartments, 3)
	backward := mustMatch(t, apartments, applicants, 3)

	assert.Equal(t, forward.Count(), backward.Count())
}

func TestMatchIsIdempotent(t *testing.T) {
	matching := mustMatch(t, []int{1, 5}, []int{2, 6}, 1)

	first := matching.Count()
	second := matching.Match()

	assert.Equal(t, first, second)
	assert.Equal(t, matching.Count(), second)
}

func TestNewMatchingRejectsNegativeTolerance(t *testing.T) {
	_, err := pairMatching.NewMatching([]int{1}, []int{1}, -1, config.Default())
	assert.ErrorContains(t, err, "tolerance must not be negative")
}

func TestTolerance(t *testing.T) {
	matching, err := pairMatching.NewMatching([]int{1}, []int{1}, 7, config.Default())
	assert.NilError(t, err)
	assert.Equal(t, matching.Tolerance(), 7)
}
