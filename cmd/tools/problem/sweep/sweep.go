package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"time"

	"github.com/xaverhimmelsbach/tolerance-pair-matching/pkg/tools"
	"github.com/xaverhimmelsbach/tolerance-pair-matching/pkg/utils"
)

type SweepOutcome struct {
	// Time in nanoseconds
	Time time.Duration `json:"time"`
	// Number of swept tolerances
	Tolerances int `json:"tolerances"`
	// Potential errors
	Error string `json:"error"`
}

func main() {
	inputPath := flag.String("input", "", "Path to read the problem from")
	from := flag.Int("from", 0, "First tolerance of the sweep")
	to := flag.Int("to", 100, "Last tolerance of the sweep")
	flag.Parse()

	// Always print sweep outcome
	outcome := new(SweepOutcome)
	defer printOutcome(outcome)

	problem, err := utils.ReadProblem(*inputPath, 0)
	if err != nil {
		outcome.Error = err.Error()
		return
	}

	// Measure sweep time
	start := time.Now()
	results, err := tools.SweepTolerance(problem.Applicants, problem.Apartments, *from, *to)
	elapsed := time.Since(start)
	outcome.Time = elapsed

	if err != nil {
		outcome.Error = err.Error()
		return
	}

	outcome.Tolerances = len(results)
	for _, result := range results {
		fmt.Printf("%d %d\n", result.Tolerance, result.Count)
	}
}

func printOutcome(outcome *SweepOutcome) {
	b, err := json.Marshal(outcome)
	output := string(b)
	// Fallback if marshalling fails
	if err != nil {
		output = fmt.Sprintf("{\"error\":%q}", err)
	}
	fmt.Println(output)
}
