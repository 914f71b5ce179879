package snf

// Signal is the control value returned by one reduction Step.
type Signal int

const (
	// NextStep: the pivot was emitted as an invariant factor and the live block shrank.
	NextStep Signal = iota
	// GoToInitial: an entry was reduced modulo the pivot; re-pivot from scratch.
	GoToInitial
	// Halt: the live block is zero (or empty); the reduction is complete.
	Halt
)

// String implements fmt.Stringer.
func (s Signal) String() string {
	switch s {
	case NextStep:
		return "NextStep"
	case GoToInitial:
		return "GoToInitial"
	case Halt:
		return "Halt"
	default:
		return "Signal(?)"
	}
}

// Stats summarizes the work done by a Reducer.
type Stats struct {
	Pivots  int // NextStep signals
	Retries int // GoToInitial signals
	Halted  bool
}
