package check

import "github.com/google/uuid"

// Outcome is the result of a Search or SearchConcurrent run: exactly one
// of NoCounterexample or Counterexample is meaningful, selected by Failed.
type Outcome[T any] struct {
	Failed bool

	// Valid when !Failed.
	TrialsRun int

	// Valid when Failed.
	Value       T
	ShrinkSteps int
}

// NoCounterexample builds a passing Outcome.
func NoCounterexample[T any](trialsRun int) Outcome[T] {
	return Outcome[T]{Failed: false, TrialsRun: trialsRun}
}

// Counterexample builds a failing Outcome.
func Counterexample[T any](value T, shrinkSteps int) Outcome[T] {
	return Outcome[T]{Failed: true, Value: value, ShrinkSteps: shrinkSteps}
}

// RunRecord is the value object a caller (notably cmd/rcheck) uses to
// report a completed run: everything an Outcome carries plus the
// identifying details of the run itself.
type RunRecord[T any] struct {
	RunID     uuid.UUID
	Seed      uint64
	TrialsRun int
	Outcome   Outcome[T]
}

// NewRunRecord stamps outcome with a fresh run ID and the seed/trial count
// that produced it.
func NewRunRecord[T any](seed uint64, trialsRun int, outcome Outcome[T]) RunRecord[T] {
	return RunRecord[T]{
		RunID:     uuid.New(),
		Seed:      seed,
		TrialsRun: trialsRun,
		Outcome:   outcome,
	}
}
