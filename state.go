package pocketcube

// Slots are numbered with the top layer first, counter-clockwise from
// the front-left corner, then the bottom layer in the same order:
//
//	top:    TFL = 0, TFR = 1, TBR = 2, TBL = 3
//	bottom: DFL = 4, DFR = 5, DBR = 6, DBL = 7
//
// Orientations: 0 = untwisted, 1 = one clockwise twist, 2 = two.

// State describes a corner-cube configuration. It is a pure value:
// compare with ==, never mutate; new states come from Identity or
// Transform.
type State struct {
	// Pos[i] is the identity (0..7) of the physical corner occupying
	// slot i. Always a permutation of {0..7} for reachable states.
	Pos [8]uint8

	// Ort[i] is the orientation (0..2) of the corner occupying slot i.
	Ort [8]uint8
}

// identityState is the solved configuration: every corner in its home
// slot, untwisted.
var identityState = State{Pos: [8]uint8{0, 1, 2, 3, 4, 5, 6, 7}}

// Identity returns the solved state.
func Identity() State {
	return identityState
}

// IsGoal reports whether the state is the solved configuration.
func (s State) IsGoal() bool {
	return s == identityState
}

// Validate checks the state invariants: Pos must be a permutation of
// {0..7} and every orientation must be in {0,1,2}. A non-nil result
// indicates a programmer error, not a recoverable condition.
func (s State) Validate() error {
	var seen [8]bool
	for _, c := range s.Pos {
		if c > 7 || seen[c] {
			return ErrBadPermutation
		}
		seen[c] = true
	}
	for _, o := range s.Ort {
		if o > 2 {
			return ErrBadOrientation
		}
	}
	return nil
}
