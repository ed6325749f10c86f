package csp

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

type ConstraintInput struct {
	Kind      string
	Variables []string
	Target    map[string]any
}

// ProblemInput is the JSON shape of a problem file. Values keep their JSON
// types: strings, booleans and float64 numbers.
type ProblemInput struct {
	Variables   []string
	Domains     map[string][]any
	Constraints []ConstraintInput
	Arcs        [][]string
	Assignment  map[string]any
}

func ProblemFromJson(file string) (ProblemInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return ProblemInput{}, err
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return ProblemInput{}, err
	}

	var input ProblemInput
	if err := mapstructure.Decode(inputJson, &input); err != nil {
		return ProblemInput{}, err
	}

	return input, nil
}

// ToCSP validates the input and builds a solver-ready instance. When the
// file carries no arc list, one is derived from the constraint graph so that
// arc consistency can always be enabled on file-loaded problems.
func (input ProblemInput) ToCSP() (*CSP, error) {
	variables := lo.Map(input.Variables, func(name string, _ int) Variable { return Variable(name) })

	domains := make(map[Variable][]Value, len(variables))
	for _, variable := range variables {
		domain, ok := input.Domains[string(variable)]
		if !ok || len(domain) == 0 {
			return nil, fmt.Errorf("variable %v has no domain", variable)
		}
		domains[variable] = domain
	}

	constraints := make([]Constraint, 0, len(input.Constraints))
	for _, constraintInput := range input.Constraints {
		kind, ok := constraintKinds[constraintInput.Kind]
		if !ok {
			return nil, fmt.Errorf("%v is not a valid constraint kind", constraintInput.Kind)
		}

		switch kind {
		case Distinct:
			if len(constraintInput.Variables) < 2 {
				return nil, fmt.Errorf("distinct constraint requires at least two variables: %v", constraintInput.Variables)
			}
			scope := lo.Map(constraintInput.Variables, func(name string, _ int) Variable { return Variable(name) })
			constraints = append(constraints, NewDistinct(scope...))
		case Conditional:
			if len(constraintInput.Target) == 0 {
				return nil, fmt.Errorf("conditional constraint requires a non-empty target")
			}
			target := Assignment{}
			for name, value := range constraintInput.Target {
				target[Variable(name)] = value
			}
			constraints = append(constraints, NewConditional(target))
		}
	}

	var arcs []Arc
	if len(input.Arcs) > 0 {
		arcs = make([]Arc, 0, len(input.Arcs))
		for _, pair := range input.Arcs {
			if len(pair) != 2 {
				return nil, fmt.Errorf("an arc must name exactly two variables: %v", pair)
			}
			arcs = append(arcs, Arc{Variable(pair[0]), Variable(pair[1])})
		}
	} else {
		arcs = DeriveArcs(constraints)
	}

	return NewCSP(variables, domains, constraints, arcs), nil
}

// InitialAssignment transforms the optional pre-seeded assignment of the
// problem file.
func (input ProblemInput) InitialAssignment() Assignment {
	assignment := Assignment{}
	for name, value := range input.Assignment {
		assignment[Variable(name)] = value
	}
	return assignment
}
