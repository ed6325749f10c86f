package csp

import "fmt"

// Satisfies reports whether the (possibly partial) assignment violates none
// of the constraints. Constraints without enough assigned variables are
// vacuously satisfied. Pure function of its inputs; statistics may be nil.
func Satisfies(assignment Assignment, constraints []Constraint, statistics *Statistics) bool {
	consistent, _ := satisfiesStrict(assignment, constraints, statistics)
	return consistent
}

// satisfiesStrict additionally reports whether at least one constraint had
// enough information to be evaluated rather than vacuously skipped. Callers
// use the second result to distinguish "no violation found" from "no
// constraint was even checked", notably for pairwise arc-support testing.
func satisfiesStrict(assignment Assignment, constraints []Constraint, statistics *Statistics) (consistent, evaluated bool) {
	statistics.countValidation()

	for _, constraint := range constraints {
		switch constraint.Kind {
		case Distinct:
			fired, violated := checkDistinct(assignment, constraint)
			if violated {
				return false, true
			}
			evaluated = evaluated || fired
		case Conditional:
			fired, violated := checkConditional(assignment, constraint)
			if violated {
				return false, true
			}
			evaluated = evaluated || fired
		default:
			panic(fmt.Sprintf("unknown constraint kind: %v", constraint.Kind))
		}
	}

	return true, evaluated
}

// checkDistinct fires once at least one pair of the constraint's variables is
// fully present; any equal pair is a violation.
func checkDistinct(assignment Assignment, constraint Constraint) (fired, violated bool) {
	for i, first := range constraint.Variables {
		firstValue, firstPresent := assignment[first]
		if !firstPresent {
			continue
		}

		for _, second := range constraint.Variables[i+1:] {
			secondValue, secondPresent := assignment[second]
			if !secondPresent {
				continue
			}

			fired = true
			if firstValue == secondValue {
				return true, true
			}
		}
	}

	return fired, false
}

// checkConditional implements the all-or-nothing semantics: of the target
// variables present in the assignment, either all match their required value
// or none do; a mixed match is a violation. An empty presence set is a
// vacuous pass.
func checkConditional(assignment Assignment, constraint Constraint) (fired, violated bool) {
	var anyMatch, anyMismatch bool
	for variable, required := range constraint.Target {
		value, present := assignment[variable]
		if !present {
			continue
		}

		fired = true
		if value == required {
			anyMatch = true
		} else {
			anyMismatch = true
		}
	}

	return fired, anyMatch && anyMismatch
}
