package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"strconv"
	"time"

	"github.com/insertish/csp/pkg/csp"
	"github.com/samber/lo"
)

const (
	satisfiableTestDirectory   = "../../test/problems/satisfiable/"
	unsatisfiableTestDirectory = "../../test/problems/unsatisfiable/"
)

type StrategyType int

const (
	backtracking StrategyType = iota
	forward
	arc
	combined
)

type ResultType int

const (
	solved ResultType = iota
	unsatisfiable
)

var (
	strategyTypes = map[StrategyType]string{
		backtracking: "backtracking",
		forward:      "forward",
		arc:          "arc",
		combined:     "combined",
	}
	strategyOptions = map[StrategyType]csp.Options{
		backtracking: {},
		forward:      {ForwardChecking: true},
		arc:          {ArcConsistency: true},
		combined:     {ForwardChecking: true, ArcConsistency: true},
	}
	resultTypes = map[ResultType]string{
		solved:        "solved",
		unsatisfiable: "unsatisfiable",
	}
)

type TestMetadata struct {
	Name        string
	File        string
	Satisfiable bool
}

func main() {
	repetitionsPtr := flag.Int("repetitions", 5, "Number of times each problem-strategy pair is run; the reported duration is the mean")
	outFilePathPtr := flag.String("out", "", "Path to the CSV file where results will be written; if empty, they'll be written into the Standard Output")
	flag.Parse()
	repetitions := *repetitionsPtr
	outFile := *outFilePathPtr

	if repetitions < 1 {
		log.Fatalf("repetitions must be at least 1: %v", repetitions)
	}

	tests := append(
		collectTests(satisfiableTestDirectory, true),
		collectTests(unsatisfiableTestDirectory, false)...,
	)

	records := [][]string{{"problem", "strategy", "result", "durationMs", "validations", "revisions", "prunings"}}

	for _, test := range tests {
		input, err := csp.ProblemFromJson(test.File)
		if err != nil {
			log.Fatalf("cannot parse problem file %v: %v", test.File, err)
		}

		for _, strategy := range []StrategyType{backtracking, forward, arc, combined} {
			record, err := benchmark(input, test, strategy, repetitions)
			if err != nil {
				log.Fatalf("benchmark of %v with %v failed: %v", test.Name, strategyTypes[strategy], err)
			}
			records = append(records, record)
		}
	}

	writer := csv.NewWriter(os.Stdout)
	if outFile != "" {
		file, err := os.Create(outFile)
		if err != nil {
			log.Fatalf("cannot create output file: %v", err)
		}
		defer file.Close()
		writer = csv.NewWriter(file)
	}

	if err := writer.WriteAll(records); err != nil {
		log.Fatalf("cannot write results: %v", err)
	}
}

func benchmark(input csp.ProblemInput, test TestMetadata, strategy StrategyType, repetitions int) ([]string, error) {
	instance, err := input.ToCSP()
	if err != nil {
		return nil, err
	}

	solver := csp.NewSolver(strategyOptions[strategy])

	var assignment csp.Assignment
	var elapsed time.Duration
	for i := 0; i < repetitions; i++ {
		start := time.Now()
		assignment, err = solver.Solve(instance, input.InitialAssignment())
		elapsed += time.Since(start)
		if err != nil {
			return nil, err
		}
	}

	result := solved
	if assignment == nil {
		result = unsatisfiable
	}

	// A benchmark run that disagrees with the fixture's expectation is a
	// solver bug, not a measurement
	if test.Satisfiable != (result == solved) {
		return nil, fmt.Errorf("unexpected result %v for %v", resultTypes[result], test.Name)
	}

	statistics := solver.Statistics()
	return []string{
		test.Name,
		strategyTypes[strategy],
		resultTypes[result],
		strconv.FormatFloat(milliseconds(elapsed/time.Duration(repetitions)), 'f', 3, 64),
		strconv.FormatUint(statistics.Validations, 10),
		strconv.FormatUint(statistics.Revisions, 10),
		strconv.FormatUint(statistics.Prunings, 10),
	}, nil
}

func collectTests(directory string, satisfiable bool) []TestMetadata {
	entries, err := os.ReadDir(directory)
	if err != nil {
		log.Fatalf("cannot read test directory %v: %v", directory, err)
	}

	return lo.Map(entries, func(entry os.DirEntry, _ int) TestMetadata {
		return TestMetadata{
			Name:        entry.Name(),
			File:        path.Join(directory, entry.Name()),
			Satisfiable: satisfiable,
		}
	})
}

func milliseconds(duration time.Duration) float64 {
	return float64(duration.Microseconds()) / 1000
}
