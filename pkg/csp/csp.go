package csp

import (
	"slices"
)

// CSP aggregates a problem instance: its variables (in fixed order), their
// domains, the constraint set and an optional arc list for arc consistency.
// The neighbour index is derived from the arcs once at construction time.
//
// Domains are mutated during search, but always on a private copy obtained
// through Clone; the instance a caller constructs is never touched.
type CSP struct {
	Variables   []Variable
	Domains     map[Variable][]Value
	Constraints []Constraint
	Arcs        []Arc

	neighbours map[Variable][]Variable
}

func NewCSP(variables []Variable, domains map[Variable][]Value, constraints []Constraint, arcs []Arc) *CSP {
	csp := &CSP{
		Variables:   variables,
		Domains:     domains,
		Constraints: constraints,
		Arcs:        arcs,
	}

	// Record b as a neighbour of a for each arc (a, b), in arc order
	csp.neighbours = make(map[Variable][]Variable)
	for _, arc := range arcs {
		csp.neighbours[arc[0]] = append(csp.neighbours[arc[0]], arc[1])
	}

	return csp
}

// Clone deep-copies the mutable state (the domains). Variables, constraints,
// arcs and the neighbour index are immutable during search and shared, so
// sibling search branches never observe each other's pruning.
func (csp *CSP) Clone() *CSP {
	domains := make(map[Variable][]Value, len(csp.Domains))
	for variable, domain := range csp.Domains {
		domains[variable] = slices.Clone(domain)
	}

	return &CSP{
		Variables:   csp.Variables,
		Domains:     domains,
		Constraints: csp.Constraints,
		Arcs:        csp.Arcs,
		neighbours:  csp.neighbours,
	}
}
