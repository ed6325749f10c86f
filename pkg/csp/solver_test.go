package csp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var strategies = map[string]Options{
	"backtracking":     {},
	"forward checking": {ForwardChecking: true},
	"arc consistency":  {ArcConsistency: true},
	"combined":         {ForwardChecking: true, ArcConsistency: true},
}

func TestSolveLionUnicorn(t *testing.T) {
	expected := Assignment{"today": "Thursday", "lion": true, "unicorn": false}

	for name, options := range strategies {
		t.Run(name, func(t *testing.T) {
			// Arrange
			solver := NewSolver(options)

			// Act
			assignment, err := solver.Solve(lionUnicornCSP(), nil)

			// Assert
			assert.Nil(t, err)
			assert.Equal(t, expected, assignment)
			assert.True(t, solver.Verify(lionUnicornCSP(), assignment))
			assert.Greater(t, solver.Statistics().Validations, uint64(0))
		})
	}
}

func TestSolveAustralia(t *testing.T) {
	for name, options := range strategies {
		t.Run(name, func(t *testing.T) {
			// Arrange
			instance := australiaCSP()
			solver := NewSolver(options)

			// Act
			assignment, err := solver.Solve(instance, nil)

			// Assert
			assert.Nil(t, err)
			assert.NotNil(t, assignment)
			assert.True(t, solver.Verify(instance, assignment))
			for _, pair := range australiaAdjacency {
				assert.NotEqual(t, assignment[pair[0]], assignment[pair[1]])
			}
			for _, variable := range instance.Variables {
				assert.True(t, containsValue(instance.Domains[variable], assignment[variable]))
			}
		})
	}
}

func TestSolveAustraliaPreseededIsUnsatisfiable(t *testing.T) {
	// WA=red and Q=green leave no colour that keeps NT and SA consistent
	initial := Assignment{"WA": "red", "Q": "green"}

	for name, options := range strategies {
		t.Run(name, func(t *testing.T) {
			// Act
			assignment, err := NewSolver(options).Solve(australiaCSP(), initial)

			// Assert
			assert.Nil(t, err)
			assert.Nil(t, assignment)
		})
	}
}

func TestSolvePigeonholeIsUnsatisfiable(t *testing.T) {
	for name, options := range strategies {
		t.Run(name, func(t *testing.T) {
			// Act
			assignment, err := NewSolver(options).Solve(pigeonholeCSP(), nil)

			// Assert
			assert.Nil(t, err)
			assert.Nil(t, assignment)
		})
	}
}

func TestSolveArcConsistencyWithoutArcsFails(t *testing.T) {
	// Arrange
	constraints := []Constraint{NewDistinct("x", "y")}
	instance := NewCSP(
		[]Variable{"x", "y"},
		map[Variable][]Value{"x": {1, 2}, "y": {1, 2}},
		constraints,
		nil,
	)

	// Act
	assignment, err := NewSolver(Options{ArcConsistency: true}).Solve(instance, nil)

	// Assert
	assert.NotNil(t, err)
	assert.Nil(t, assignment)
}

func TestSolvePreservesInitialAssignment(t *testing.T) {
	// Arrange
	instance := australiaCSP()
	initial := Assignment{"SA": "blue"}

	// Act
	assignment, err := NewSolver(Options{}).Solve(instance, initial)

	// Assert
	assert.Nil(t, err)
	assert.NotNil(t, assignment)
	assert.Equal(t, "blue", assignment["SA"])
	assert.True(t, NewSolver(Options{}).Verify(instance, assignment))
}

func TestVerify(t *testing.T) {
	// Arrange
	instance := lionUnicornCSP()
	solver := NewSolver(Options{})

	t.Run("accepts a complete consistent assignment", func(t *testing.T) {
		assert.True(t, solver.Verify(instance, Assignment{"today": "Thursday", "lion": true, "unicorn": false}))
	})

	t.Run("rejects an incomplete assignment", func(t *testing.T) {
		assert.False(t, solver.Verify(instance, Assignment{"today": "Thursday"}))
	})

	t.Run("rejects an inconsistent assignment", func(t *testing.T) {
		assert.False(t, solver.Verify(instance, Assignment{"today": "Monday", "lion": true, "unicorn": false}))
	})
}
