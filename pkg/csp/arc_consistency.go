package csp

import (
	"slices"

	"github.com/samber/lo"
)

type missingArcsError struct {
}

func (err missingArcsError) Error() string {
	return "arc consistency requires an explicit arc list on the CSP instance"
}

// enforceArcConsistency runs AC-3 over the instance's arc list, pruning
// domains in place until a fixpoint or a domain wipeout is reached. The
// caller passes an already-cloned instance; pruning is destructive.
//
// Invoking it on an instance without arcs is a caller-contract violation and
// reported as an error, not a search failure.
func enforceArcConsistency(csp *CSP, statistics *Statistics) (wipeout bool, err error) {
	if len(csp.Arcs) == 0 {
		return false, missingArcsError{}
	}

	// FIFO worklist seeded with every arc; re-enqueued arcs go to the tail
	worklist := slices.Clone(csp.Arcs)
	for len(worklist) > 0 {
		arc := worklist[0]
		worklist = worklist[1:]

		x, y := arc[0], arc[1]
		if !revise(csp, x, y, statistics) {
			continue
		}

		if len(csp.Domains[x]) == 0 {
			return true, nil
		}

		// x's domain shrank: re-check every arc pointing into x
		for _, neighbour := range csp.neighbours[x] {
			worklist = append(worklist, Arc{neighbour, x})
		}
	}

	return false, nil
}

// revise removes from x's domain every value without support in y's domain.
// A value vx is supported when some vy forms a pair that is consistent under
// strict evaluation, i.e. at least one constraint actually fired on the pair.
func revise(csp *CSP, x, y Variable, statistics *Statistics) bool {
	statistics.countRevision()

	revised := lo.Filter(csp.Domains[x], func(vx Value, _ int) bool {
		return lo.SomeBy(csp.Domains[y], func(vy Value) bool {
			consistent, evaluated := satisfiesStrict(Assignment{x: vx, y: vy}, csp.Constraints, statistics)
			return consistent && evaluated
		})
	})

	removed := len(csp.Domains[x]) - len(revised)
	if removed == 0 {
		return false
	}

	statistics.countPrunings(removed)
	csp.Domains[x] = revised
	return true
}

// DeriveArcs builds the symmetric closure of the undirected constraint graph:
// one arc in each direction for every pair of variables sharing a constraint.
// Output order is deterministic for a given constraint list.
func DeriveArcs(constraints []Constraint) []Arc {
	arcs := []Arc{}
	seen := map[Arc]bool{}

	for _, constraint := range constraints {
		scope := slices.Clone(constraint.Scope())
		slices.Sort(scope)

		for i, first := range scope {
			for _, second := range scope[i+1:] {
				for _, arc := range []Arc{{first, second}, {second, first}} {
					if !seen[arc] {
						seen[arc] = true
						arcs = append(arcs, arc)
					}
				}
			}
		}
	}

	return arcs
}
