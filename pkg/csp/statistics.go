package csp

// Statistics counts the work performed by a solver run. A *Statistics is
// threaded explicitly through the search and propagation procedures; nil is
// accepted everywhere and disables counting.
type Statistics struct {
	Validations uint64 // Calls to the constraint validator
	Revisions   uint64 // AC-3 revise operations
	Prunings    uint64 // Domain values removed by propagation
}

func (statistics *Statistics) countValidation() {
	if statistics != nil {
		statistics.Validations++
	}
}

func (statistics *Statistics) countRevision() {
	if statistics != nil {
		statistics.Revisions++
	}
}

func (statistics *Statistics) countPrunings(amount int) {
	if statistics != nil {
		statistics.Prunings += uint64(amount)
	}
}
