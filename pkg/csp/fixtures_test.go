package csp

var colours = []Value{"red", "green", "blue"}

var australiaAdjacency = [][2]Variable{
	{"WA", "NT"},
	{"WA", "SA"},
	{"NT", "SA"},
	{"NT", "Q"},
	{"SA", "Q"},
	{"SA", "NSW"},
	{"SA", "V"},
	{"Q", "NSW"},
	{"NSW", "V"},
}

// australiaCSP builds the map-colouring instance over the seven Australian
// regions with three colours and one distinctness constraint per adjacency.
func australiaCSP() *CSP {
	variables := []Variable{"WA", "NT", "SA", "Q", "NSW", "V", "T"}

	domains := make(map[Variable][]Value, len(variables))
	for _, variable := range variables {
		domains[variable] = append([]Value{}, colours...)
	}

	constraints := make([]Constraint, 0, len(australiaAdjacency))
	for _, pair := range australiaAdjacency {
		constraints = append(constraints, NewDistinct(pair[0], pair[1]))
	}

	return NewCSP(variables, domains, constraints, DeriveArcs(constraints))
}

var weekdays = []Value{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// lionUnicornCSP builds the lion-unicorn riddle: the lion's statement is true
// exactly on Thursday, the unicorn's exactly on Sunday, and exactly one of
// the two statements holds today.
func lionUnicornCSP() *CSP {
	variables := []Variable{"today", "lion", "unicorn"}

	domains := map[Variable][]Value{
		"today":   append([]Value{}, weekdays...),
		"lion":    {true, false},
		"unicorn": {true, false},
	}

	constraints := []Constraint{
		NewConditional(Assignment{"lion": true, "today": "Thursday"}),
		NewConditional(Assignment{"unicorn": true, "today": "Sunday"}),
		NewDistinct("lion", "unicorn"),
	}

	return NewCSP(variables, domains, constraints, DeriveArcs(constraints))
}

// pigeonholeCSP is unsatisfiable by counting: three pairwise-distinct
// variables over a two-value domain.
func pigeonholeCSP() *CSP {
	variables := []Variable{"x", "y", "z"}

	domains := map[Variable][]Value{
		"x": {1, 2},
		"y": {1, 2},
		"z": {1, 2},
	}

	constraints := []Constraint{NewDistinct("x", "y", "z")}

	return NewCSP(variables, domains, constraints, DeriveArcs(constraints))
}
