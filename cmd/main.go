package main

import (
	"fmt"
	"log"

	"github.com/insertish/csp/pkg/csp"
)

func main() {
	// The lion-unicorn riddle: the lion's statement is true exactly on
	// Thursday, the unicorn's exactly on Sunday, and exactly one of the two
	// statements holds today.
	variables := []csp.Variable{"today", "lion", "unicorn"}

	domains := map[csp.Variable][]csp.Value{
		"today":   {"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
		"lion":    {true, false},
		"unicorn": {true, false},
	}

	constraints := []csp.Constraint{
		csp.NewConditional(csp.Assignment{"lion": true, "today": "Thursday"}),
		csp.NewConditional(csp.Assignment{"unicorn": true, "today": "Sunday"}),
		csp.NewDistinct("lion", "unicorn"),
	}

	instance := csp.NewCSP(variables, domains, constraints, csp.DeriveArcs(constraints))

	solver := csp.NewSolver(csp.Options{ArcConsistency: true})
	// solver := csp.NewSolver(csp.Options{ForwardChecking: true})
	// solver := csp.NewSolver(csp.Options{})

	assignment, err := solver.Solve(instance, nil)
	if err != nil {
		log.Fatal(err)
	} else if assignment == nil {
		fmt.Println("Not satisfiable")
		return
	}

	for _, variable := range variables {
		fmt.Printf("%v: %v\n", variable, assignment[variable])
	}

	statistics := solver.Statistics()
	fmt.Printf("Validations: %v, Revisions: %v, Prunings: %v\n", statistics.Validations, statistics.Revisions, statistics.Prunings)

	if !solver.Verify(instance, assignment) {
		log.Fatal("Verification failed")
	}

	fmt.Println("Well done!")
}
