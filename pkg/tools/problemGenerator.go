package tools

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/xaverhimmelsbach/tolerance-pair-matching/pkg/config"
	"github.com/xaverhimmelsbach/tolerance-pair-matching/pkg/pairMatching"
	"github.com/xaverhimmelsbach/tolerance-pair-matching/pkg/utils"
)

type Result[T any] struct {
	problem *utils.Problem
	meta    T
}

// Problem returns the problem instance held by this result
func (r Result[T]) Problem() *utils.Problem {
	return r.problem
}

// Meta returns the additional information held by this result
func (r Result[T]) Meta() T {
	return r.meta
}

type Generator[T any] interface {
	Evaluate(*utils.Problem)
	GetResults() []Result[T]
}

type LargestCountGenerator struct {
	currentLargestProblem *utils.Problem
	currentLargestCount   int
}

type SmallestCountGenerator struct {
	currentSmallestProblem *utils.Problem
	currentSmallestCount   int
}

type MatchCountMeta struct {
	Count int
}

func NewLargestCountGenerator() *LargestCountGenerator {
	generator := new(LargestCountGenerator)
	generator.currentLargestCount = -1
	return generator
}

func (g *LargestCountGenerator) Evaluate(problem *utils.Problem) {
	count := matchCount(problem)
	if count > g.currentLargestCount {
		g.currentLargestProblem = problem
		g.currentLargestCount = count
	}
}

func (g *LargestCountGenerator) GetResults() []Result[MatchCountMeta] {
	return []Result[MatchCountMeta]{
		{
			problem: g.currentLargestProblem,
			meta: MatchCountMeta{
				Count: g.currentLargestCount,
			},
		},
	}
}

func NewSmallestCountGenerator() *SmallestCountGenerator {
	generator := new(SmallestCountGenerator)
	generator.currentSmallestCount = math.MaxInt
	return generator
}

func (g *SmallestCountGenerator) Evaluate(problem *utils.Problem) {
	count := matchCount(problem)
	if count < g.currentSmallestCount {
		g.currentSmallestProblem = problem
		g.currentSmallestCount = count
	}
}

func (g *SmallestCountGenerator) GetResults() []Result[MatchCountMeta] {
	return []Result[MatchCountMeta]{
		{
			problem: g.currentSmallestProblem,
			meta: MatchCountMeta{
				Count: g.currentSmallestCount,
			},
		},
	}
}

// matchCount runs the matcher on problem and returns the resulting count
func matchCount(problem *utils.Problem) int {
	matching, err := pairMatching.NewMatching(problem.Applicants, problem.Apartments, problem.Tolerance, config.Default())
	if err != nil {
		panic(err)
	}
	return matching.Match()
}

// GenerateUniformProblem returns a problem whose values are drawn uniformly from [0, maxValue)
func GenerateUniformProblem(applicants int, apartments int, tolerance int, maxValue int, seed int64) (*utils.Problem, error) {
	if err := validateShape(applicants, apartments, tolerance); err != nil {
		return nil, err
	}
	if maxValue <= 0 {
		return nil, fmt.Errorf("value bound must be positive, got %d", maxValue)
	}

	rng := rand.New(rand.NewSource(seed))

	problem := new(utils.Problem)
	problem.Tolerance = tolerance
	problem.Applicants = make([]int, applicants)
	problem.Apartments = make([]int, apartments)

	for i := range problem.Applicants {
		problem.Applicants[i] = rng.Intn(maxValue)
	}
	for i := range problem.Apartments {
		problem.Apartments[i] = rng.Intn(maxValue)
	}

	return problem, nil
}

// GenerateConstantProblem returns a problem whose values are all identical,
// which pairs up completely for any tolerance
func GenerateConstantProblem(applicants int, apartments int, tolerance int, value int) (*utils.Problem, error) {
	if err := validateShape(applicants, apartments, tolerance); err != nil {
		return nil, err
	}

	problem := new(utils.Problem)
	problem.Tolerance = tolerance
	problem.Applicants = make([]int, applicants)
	problem.Apartments = make([]int, apartments)

	for i := range problem.Applicants {
		problem.Applicants[i] = value
	}
	for i := range problem.Apartments {
		problem.Apartments[i] = value
	}

	return problem, nil
}

// validateShape checks the generation parameters shared by all problem generators
func validateShape(applicants int, apartments int, tolerance int) error {
	if applicants < 0 || apartments < 0 {
		return fmt.Errorf("sequence sizes must not be negative, got applicants=%d apartments=%d", applicants, apartments)
	}
	if tolerance < 0 {
		return fmt.Errorf("tolerance must not be negative, got %d", tolerance)
	}
	return nil
}
