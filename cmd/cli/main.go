package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/insertish/csp/pkg/csp"
	"github.com/samber/lo"
)

var (
	validStrategies = []string{"backtracking", "forward", "arc", "combined"}
	strategies      = map[string]csp.Options{
		"backtracking": {},
		"forward":      {ForwardChecking: true},
		"arc":          {ArcConsistency: true},
		"combined":     {ForwardChecking: true, ArcConsistency: true},
	}
)

func main() {
	// Define arguments
	strategyPtr := flag.String("strategy", "backtracking", `Strategy used to search for an assignment. Allowed values are:
- "backtracking" (plain depth-first backtracking, the default),
- "forward" (backtracking with forward checking),
- "arc" (backtracking with an AC-3 pre-pass on every search step) and
- "combined" (both forward checking and AC-3)`)
	filePathPtr := flag.String("file", "", "Path to the problem file")
	outFilePathPtr := flag.String("out", "", "Path to the file where the assignment will be written; if empty, it'll be written into the Standard Output")
	flag.Parse()
	strategy := strings.ToLower(*strategyPtr)
	filePath := *filePathPtr
	outFile := *outFilePathPtr

	// Validate arguments
	if !slices.Contains(validStrategies, strategy) {
		log.Fatalf("%v is not a valid strategy", strategy)
	} else if filePath == "" {
		log.Fatal("a problem file must be specified")
	}

	input, err := csp.ProblemFromJson(filePath)
	if err != nil {
		log.Fatalf("cannot parse problem file: %v", err)
	}

	instance, err := input.ToCSP()
	if err != nil {
		log.Fatalf("invalid problem: %v", err)
	}

	solver := csp.NewSolver(strategies[strategy])
	assignment, err := solver.Solve(instance, input.InitialAssignment())
	if err != nil {
		log.Fatal(err)
	} else if assignment == nil {
		fmt.Println("Not satisfiable")
		return
	}

	if !solver.Verify(instance, assignment) {
		log.Fatal("Verification failed")
	}

	output := lo.MapEntries(assignment, func(variable csp.Variable, value csp.Value) (string, any) {
		return string(variable), value
	})

	bytes, err := json.MarshalIndent(output, "", "    ")
	if err != nil {
		log.Fatal(err)
	}

	if outFile == "" {
		fmt.Println(string(bytes))
		return
	}

	if err := os.WriteFile(outFile, bytes, 0644); err != nil {
		log.Fatalf("cannot write output file: %v", err)
	}
}
