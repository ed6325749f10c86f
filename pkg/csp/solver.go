package csp

import "maps"

// Options selects the enhancement strategies layered on top of plain
// backtracking. Both default to false and may be combined, though combining
// them duplicates propagation effort: AC-3 reruns on every recursive call
// regardless of forward checking's incremental pruning.
type Options struct {
	ForwardChecking bool
	ArcConsistency  bool
}

type Solver interface {
	// Solve searches for a complete assignment extending the given partial
	// one (nil is treated as empty) that satisfies every constraint of the
	// instance. It returns nil if no such assignment exists (this is a valid
	// output where error shall be nil); an error indicates a configuration
	// fault, not search exhaustion.
	Solve(csp *CSP, assignment Assignment) (Assignment, error)

	// Verify reports whether an assignment is complete and consistent with
	// the instance's constraint set.
	Verify(csp *CSP, assignment Assignment) bool

	// Statistics returns the counters recorded by the last Solve call.
	Statistics() Statistics
}

func NewSolver(options Options) Solver {
	return &backtrackingSolver{options: options}
}

type backtrackingSolver struct {
	options    Options
	statistics Statistics
}

func (solver *backtrackingSolver) Solve(csp *CSP, assignment Assignment) (Assignment, error) {
	solver.statistics = Statistics{}

	// Fail the configuration fault upfront rather than on the first branch
	if solver.options.ArcConsistency && len(csp.Arcs) == 0 {
		return nil, missingArcsError{}
	}

	// A distinctness constraint without a full variable-value matching rules
	// the whole instance out before any search
	feasible, err := Feasible(csp)
	if err != nil {
		return nil, err
	} else if !feasible {
		return nil, nil
	}

	if assignment == nil {
		assignment = Assignment{}
	}
	return solver.search(csp, assignment)
}

func (solver *backtrackingSolver) search(csp *CSP, assignment Assignment) (Assignment, error) {
	if len(assignment) == len(csp.Variables) {
		return assignment, nil
	}

	if solver.options.ArcConsistency {
		pruned := csp.Clone()
		wipeout, err := enforceArcConsistency(pruned, &solver.statistics)
		if err != nil {
			return nil, err
		} else if wipeout {
			return nil, nil
		}
		csp = pruned
	}

	variable := solver.nextVariable(csp, assignment)

	for _, value := range csp.Domains[variable] {
		candidate := maps.Clone(assignment)
		candidate[variable] = value

		if !Satisfies(candidate, csp.Constraints, &solver.statistics) {
			continue
		}

		branch := csp.Clone()
		if solver.options.ForwardChecking && forwardCheck(branch, variable, value, &solver.statistics) {
			continue
		}

		result, err := solver.search(branch, candidate)
		if err != nil {
			return nil, err
		} else if result != nil {
			return result, nil
		}
	}

	// Every value exhausted: backtrack
	return nil, nil
}

// nextVariable picks the first unassigned variable in the fixed problem
// order. No dynamic ordering heuristic is applied.
func (solver *backtrackingSolver) nextVariable(csp *CSP, assignment Assignment) Variable {
	for _, variable := range csp.Variables {
		if _, assigned := assignment[variable]; !assigned {
			return variable
		}
	}
	panic("no unassigned variable left: completeness check missed")
}

func (solver *backtrackingSolver) Verify(csp *CSP, assignment Assignment) bool {
	if len(assignment) != len(csp.Variables) {
		return false
	}

	for _, variable := range csp.Variables {
		if _, assigned := assignment[variable]; !assigned {
			return false
		}
	}

	return Satisfies(assignment, csp.Constraints, nil)
}

func (solver *backtrackingSolver) Statistics() Statistics {
	return solver.statistics
}
