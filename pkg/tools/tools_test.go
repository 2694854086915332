package tools_test

import (
	"testing"

	"gotest.tools/assert"

	"github.com/xaverhimmelsbach/tolerance-pair-matching/pkg/tools"
	"github.com/xaverhimmelsbach/tolerance-pair-matching/pkg/utils"
)

func TestSweepToleranceIsMonotonic(t *testing.T) {
	applicants := []int{3, 14, 15, 92, 65, 35}
	apartments := []int{2, 71, 82, 81, 8, 28}

	results, err := tools.SweepTolerance(applicants, apartments, 0, 40)
	assert.NilError(t, err)
	assert.Equal(t, len(results), 41)

	for i := 1; i < len(results); i++ {
		assert.Assert(t, results[i].Count >= results[i-1].Count,
			"count dropped from %d to %d at tolerance %d", results[i-1].Count, results[i].Count, results[i].Tolerance)
	}
}

func TestSweepToleranceRejectsInvalidRange(t *testing.T) {
	_, err := tools.SweepTolerance([]int{1}, []int{1}, 5, 4)
	assert.ErrorContains(t, err, "invalid tolerance range")

	_, err = tools.SweepTolerance([]int{1}, []int{1}, -1, 4)
	assert.ErrorContains(t, err, "invalid tolerance range")
}

func TestGenerateUniformProblemIsDeterministicPerSeed(t *testing.T) {
	first, err := tools.GenerateUniformProblem(100, 80, 10, 1000, 42)
	assert.NilError(t, err)
	second, err := tools.GenerateUniformProblem(100, 80, 10, 1000, 42)
	assert.NilError(t, err)

	assert.DeepEqual(t, first, second)
	assert.Equal(t, len(first.Applicants), 100)
	assert.Equal(t, len(first.Apartments), 80)
	assert.Equal(t, first.Tolerance, 10)
}

func TestGenerateUniformProblemRejectsInvalidArguments(t *testing.T) {
	_, err := tools.GenerateUniformProblem(10, 10, -1, 1000, 42)
	assert.ErrorContains(t, err, "tolerance must not be negative")

	_, err = tools.GenerateUniformProblem(-1, 10, 0, 1000, 42)
	assert.ErrorContains(t, err, "sizes must not be negative")

	_, err = tools.GenerateUniformProblem(10, 10, 0, 0, 42)
	assert.ErrorContains(t, err, "value bound must be positive")
}

func TestGenerateConstantProblemPairsUpCompletely(t *testing.T) {
	problem, err := tools.GenerateConstantProblem(5, 8, 0, 60)
	assert.NilError(t, err)

	generator := tools.NewLargestCountGenerator()
	generator.Evaluate(problem)

	results := generator.GetResults()
	assert.Equal(t, len(results), 1)
	assert.Equal(t, results[0].Meta().Count, 5)
	assert.Equal(t, results[0].Problem(), problem)
}

func TestCountGeneratorsKeepExtremes(t *testing.T) {
	full, err := tools.GenerateConstantProblem(4, 4, 0, 60)
	assert.NilError(t, err)
	empty := new(utils.Problem)

	largest := tools.NewLargestCountGenerator()
	smallest := tools.NewSmallestCountGenerator()

	for _, problem := range []*utils.Problem{full, empty} {
		largest.Evaluate(problem)
		smallest.Evaluate(problem)
	}

	assert.Equal(t, largest.GetResults()[0].Meta().Count, 4)
	assert.Equal(t, smallest.GetResults()[0].Meta().Count, 0)
}
