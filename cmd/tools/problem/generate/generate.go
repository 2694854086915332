package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"time"

	"github.com/xaverhimmelsbach/tolerance-pair-matching/pkg/tools"
	"github.com/xaverhimmelsbach/tolerance-pair-matching/pkg/utils"
)

type GenerationResult struct {
	// Time in nanoseconds
	Time time.Duration `json:"time"`
	// Number of generated applicant values
	Applicants int `json:"applicants"`
	// Number of generated apartment values
	Apartments int `json:"apartments"`
	// Potential errors
	Error string `json:"error"`
}

func main() {
	outputPath := flag.String("output", "problem.txt", "Path to write the problem to")
	applicants := flag.Int("applicants", 1000, "Number of applicant values to generate")
	apartments := flag.Int("apartments", 1000, "Number of apartment values to generate")
	tolerance := flag.Int("tolerance", 10, "Tolerance to write into the problem header")
	maxValue := flag.Int("maxvalue", 1000000, "Exclusive upper bound of generated values")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Seed for the random number generator")
	flag.Parse()

	// Always print generation result
	result := new(GenerationResult)
	defer printResult(result)

	// Measure generation time
	start := time.Now()
	problem, err := tools.GenerateUniformProblem(*applicants, *apartments, *tolerance, *maxValue, *seed)
	elapsed := time.Since(start)
	result.Time = elapsed

	if err != nil {
		result.Error = err.Error()
		return
	}

	result.Applicants = len(problem.Applicants)
	result.Apartments = len(problem.Apartments)

	outputBuffer := new(bytes.Buffer)
	if err := utils.WriteProblem(outputBuffer, problem); err != nil {
		result.Error = err.Error()
		return
	}

	if err := utils.WriteFile(*outputPath, outputBuffer); err != nil {
		result.Error = err.Error()
		return
	}
}

func printResult(result *GenerationResult) {
	b, err := json.Marshal(result)
	output := string(b)
	// Fallback if marshalling fails
	if err != nil {
		output = fmt.Sprintf("{\"error\":%q}", err)
	}
	fmt.Println(output)
}
