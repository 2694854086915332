package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/PerformLine/go-stockutil/log"
	"github.com/xaverhimmelsbach/tolerance-pair-matching/pkg/config"
	"github.com/xaverhimmelsbach/tolerance-pair-matching/pkg/pairMatching"
	"github.com/xaverhimmelsbach/tolerance-pair-matching/pkg/utils"
)

const defaultConfigPath = "config.yml"

func main() {
	// Parse arguments
	inputPath := flag.String("input", "", "Problem file to match (stdin if empty)")
	outputPath := flag.String("output", "", "Path to write the match count to (stdout if empty)")
	configPath := flag.String("config", defaultConfigPath, "Path to read program config from")
	logLevel := flag.String("loglevel", "warning", "Verbosity of log output")
	flag.Parse()

	log.SetLevelString(*logLevel)

	// Load config
	cfg, err := config.NewConfigFromFile(*configPath)
	if err != nil {
		// Only a config path the user asked for explicitly has to exist
		if *configPath == defaultConfigPath && os.IsNotExist(err) {
			log.Debugf("no config file at %s, using defaults", defaultConfigPath)
			cfg = config.Default()
		} else {
			log.Fatalf("could not load config from %s: %v", *configPath, err)
		}
	}

	// Read problem from file system or stdin
	var problem *utils.Problem
	if *inputPath == "" {
		problemBytes, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("could not read problem from stdin: %v", err)
		}
		problem, err = utils.ReadProblemFromBytes(problemBytes, cfg.Matching.DefaultTolerance)
		if err != nil {
			log.Fatalf("could not parse problem from stdin: %v", err)
		}
	} else {
		problem, err = utils.ReadProblem(*inputPath, cfg.Matching.DefaultTolerance)
		if err != nil {
			log.Fatalf("could not parse problem from %s: %v", *inputPath, err)
		}
	}

	log.Debugf("matching %d applicants against %d apartments with tolerance %d",
		len(problem.Applicants), len(problem.Apartments), problem.Tolerance)

	// Create matching instance
	matching, err := pairMatching.NewMatching(problem.Applicants, problem.Apartments, problem.Tolerance, cfg)
	if err != nil {
		log.Fatalf("could not create matching: %v", err)
	}

	// Pair up both sequences
	count := matching.Match()

	// Write match count to output
	resultBuffer := new(bytes.Buffer)
	fmt.Fprintf(resultBuffer, "%d\n", count)
	if cfg.Output.PrintPairs {
		for _, pair := range matching.Pairs() {
			fmt.Fprintf(resultBuffer, "%d %d\n", pair.Applicant, pair.Apartment)
		}
	}

	if *outputPath == "" {
		if _, err := os.Stdout.Write(resultBuffer.Bytes()); err != nil {
			log.Fatalf("could not write result to stdout: %v", err)
		}
	} else {
		if err := utils.WriteFile(*outputPath, resultBuffer); err != nil {
			log.Fatalf("could not write result to %s: %v", *outputPath, err)
		}
		log.Infof("matched %d pairs and wrote the result to %s", count, *outputPath)
	}

	// Visualize matching
	if cfg.VisualizationConfig.Enable {
		plot, err := matching.Visualize()
		if err != nil {
			log.Fatalf("could not visualize matching: %v", err)
		}
		if err := utils.WriteImageToFile(plot, "pairVisualization.png"); err != nil {
			log.Fatalf("could not write pair visualization: %v", err)
		}
		log.Infof("wrote pair visualization to pairVisualization.png")
	}
}
