package csp

import "slices"

// forwardCheck propagates a single new assignment: it collapses the
// variable's domain to the chosen value and removes that value from the
// domain of every other variable sharing a distinctness constraint with it.
// Variables whose domain collapses to a single value cascade recursively.
//
// Conditional constraints are not propagated: their all-or-nothing shape
// does not carry enough structural information to prune a single variable's
// domain generically. They are still checked by the validator during the
// search's value trials.
//
// Pruning is destructive and not rolled back on wipeout; the caller treats
// the mutated clone as disposable.
func forwardCheck(csp *CSP, variable Variable, value Value, statistics *Statistics) (wipeout bool) {
	csp.Domains[variable] = []Value{value}

	cascade := []Variable{}
	for _, constraint := range csp.Constraints {
		if constraint.Kind != Distinct || !slices.Contains(constraint.Variables, variable) {
			continue
		}

		for _, other := range constraint.Variables {
			if other == variable {
				continue
			}

			domain := csp.Domains[other]
			if !containsValue(domain, value) {
				continue
			}

			// Removing the last remaining value empties the domain
			if len(domain) == 1 {
				return true
			}

			csp.Domains[other] = removeValue(domain, value)
			statistics.countPrunings(1)

			if len(csp.Domains[other]) == 1 {
				cascade = append(cascade, other)
			}
		}
	}

	for _, forced := range cascade {
		forcedValue := csp.Domains[forced][0]
		if forwardCheck(csp.Clone(), forced, forcedValue, statistics) {
			return true
		}
	}

	return false
}
