package csp

import (
	"fmt"

	"github.com/samber/lo"
)

// Variable identifies a problem variable. The set of variables is fixed per
// problem instance; variables are never created or destroyed during search.
type Variable string

// Value is a candidate domain value. Values may be strings, booleans or
// numbers; they are compared with ==.
type Value = any

// Assignment maps a subset of the problem's variables to exactly one chosen
// value each. A complete assignment covers every variable of the instance.
type Assignment map[Variable]Value

// Arc is an ordered pair (X, Y) meaning X's domain must be consistent with
// Y's domain. The full arc set is the symmetric closure of the undirected
// constraint graph.
type Arc [2]Variable

type ConstraintKind int

const (
	Distinct ConstraintKind = iota
	Conditional
)

var constraintKinds = map[string]ConstraintKind{
	"distinct":    Distinct,
	"conditional": Conditional,
}

// Constraint is a tagged union with exactly two variants:
//   - Distinct: Variables (size >= 2) must hold pairwise-distinct values
//     whenever assigned.
//   - Conditional: Target is a partial assignment with all-or-nothing
//     semantics; of the target variables present in the assignment under
//     test, either all match their required value or none do.
type Constraint struct {
	Kind      ConstraintKind
	Variables []Variable
	Target    Assignment
}

func NewDistinct(variables ...Variable) Constraint {
	if len(variables) < 2 {
		panic(fmt.Sprintf("a distinctness constraint requires at least two variables: %v", variables))
	}
	return Constraint{
		Kind:      Distinct,
		Variables: variables,
	}
}

func NewConditional(target Assignment) Constraint {
	if len(target) == 0 {
		panic("a conditional constraint requires a non-empty target")
	}
	return Constraint{
		Kind:   Conditional,
		Target: target,
	}
}

// Scope returns the variables the constraint ranges over.
func (constraint Constraint) Scope() []Variable {
	switch constraint.Kind {
	case Distinct:
		return constraint.Variables
	case Conditional:
		return lo.Keys(constraint.Target)
	default:
		panic(fmt.Sprintf("unknown constraint kind: %v", constraint.Kind))
	}
}

func containsValue(domain []Value, value Value) bool {
	return lo.ContainsBy(domain, func(candidate Value) bool { return candidate == value })
}

func removeValue(domain []Value, value Value) []Value {
	return lo.Filter(domain, func(candidate Value, _ int) bool { return candidate != value })
}
