package csp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredicateSolver(t *testing.T) {
	t.Run("colours the Australia map", func(t *testing.T) {
		// Arrange: the same map-colouring instance expressed as one opaque
		// predicate over partial assignments
		structured := australiaCSP()
		problem := PredicateCSP{
			Variables: structured.Variables,
			Domains:   structured.Domains,
			Constraint: func(assignment Assignment) bool {
				return Satisfies(assignment, structured.Constraints, nil)
			},
		}

		// Act
		assignment := NewPredicateSolver().Solve(problem, nil)

		// Assert
		assert.NotNil(t, assignment)
		assert.Len(t, assignment, len(problem.Variables))
		for _, pair := range australiaAdjacency {
			assert.NotEqual(t, assignment[pair[0]], assignment[pair[1]])
		}
	})

	t.Run("reports an unsatisfiable instance", func(t *testing.T) {
		// Arrange
		structured := pigeonholeCSP()
		problem := PredicateCSP{
			Variables: structured.Variables,
			Domains:   structured.Domains,
			Constraint: func(assignment Assignment) bool {
				return Satisfies(assignment, structured.Constraints, nil)
			},
		}

		// Act
		assignment := NewPredicateSolver().Solve(problem, nil)

		// Assert
		assert.Nil(t, assignment)
	})

	t.Run("keeps an initial assignment", func(t *testing.T) {
		// Arrange
		structured := australiaCSP()
		problem := PredicateCSP{
			Variables: structured.Variables,
			Domains:   structured.Domains,
			Constraint: func(assignment Assignment) bool {
				return Satisfies(assignment, structured.Constraints, nil)
			},
		}

		// Act
		assignment := NewPredicateSolver().Solve(problem, Assignment{"SA": "green"})

		// Assert
		assert.NotNil(t, assignment)
		assert.Equal(t, "green", assignment["SA"])
	})
}
