package csp

import (
	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"
)

// Feasible screens every distinctness constraint with a maximum bipartite
// matching between its variables and the union of their current domains. A
// constraint whose largest matching leaves some variable unmatched cannot be
// satisfied by any assignment, so the instance as a whole is unsatisfiable.
//
// This is a sound but incomplete check: a true result does not imply a
// solution exists.
func Feasible(csp *CSP) (bool, error) {
	for _, constraint := range csp.Constraints {
		if constraint.Kind != Distinct {
			continue
		}

		//** Gather the union of the constrained variables' domains
		values := []Value{}
		for _, variable := range constraint.Variables {
			values = append(values, csp.Domains[variable]...)
		}
		values = lo.Uniq(values)

		// A variable supports a value when its current domain contains it
		neighbours := func(variableAny any, valueAny any) (bool, error) {
			variable := variableAny.(Variable)
			return containsValue(csp.Domains[variable], valueAny), nil
		}

		variablesAny := lo.Map(constraint.Variables, func(variable Variable, _ int) any { return variable })
		valuesAny := lo.Map(values, func(value Value, _ int) any { return value })

		graph, err := bipartitegraph.NewBipartiteGraph(variablesAny, valuesAny, neighbours)
		if err != nil {
			return false, err
		}

		matching := graph.LargestMatching()
		if len(matching) < len(constraint.Variables) {
			return false, nil
		}
	}

	return true, nil
}
