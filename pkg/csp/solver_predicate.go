package csp

import "maps"

// Predicate is the opaque constraint form of the simplified solver: it
// reports whether a (possibly partial) assignment is acceptable.
type Predicate func(assignment Assignment) bool

// PredicateCSP is the simplified problem formulation: variables, domains and
// a single boolean predicate instead of structured constraint variants. It
// admits no propagation, only plain backtracking.
type PredicateCSP struct {
	Variables  []Variable
	Domains    map[Variable][]Value
	Constraint Predicate
}

type PredicateSolver interface {
	// Solve behaves like Solver.Solve: nil means no solution exists.
	Solve(problem PredicateCSP, assignment Assignment) Assignment
}

func NewPredicateSolver() PredicateSolver {
	return &predicateSolver{}
}

type predicateSolver struct {
}

func (solver *predicateSolver) Solve(problem PredicateCSP, assignment Assignment) Assignment {
	if assignment == nil {
		assignment = Assignment{}
	}

	if len(assignment) == len(problem.Variables) {
		return assignment
	}

	var variable Variable
	for _, candidate := range problem.Variables {
		if _, assigned := assignment[candidate]; !assigned {
			variable = candidate
			break
		}
	}

	for _, value := range problem.Domains[variable] {
		candidate := maps.Clone(assignment)
		candidate[variable] = value

		if !problem.Constraint(candidate) {
			continue
		}

		if result := solver.Solve(problem, candidate); result != nil {
			return result
		}
	}

	return nil
}
