package pocketcube

import "strings"

// Action identifies one of the 6 legal moves: 3 clockwise generators
// and their counter-clockwise inverses. The top face is written U in
// notation, following convention.
type Action int

const (
	R      Action = iota // Right face clockwise
	T                    // Top face clockwise (U in notation)
	B                    // Back face clockwise
	RPrime               // Right face counter-clockwise
	TPrime               // Top face counter-clockwise
	BPrime               // Back face counter-clockwise

	numActions = 6
)

// actions lists every action in enumeration order.
var actions = [numActions]Action{R, T, B, RPrime, TPrime, BPrime}

// Actions returns the full closed action alphabet. The returned slice
// is a fresh copy; callers may reorder it.
func Actions() []Action {
	out := make([]Action, numActions)
	copy(out, actions[:])
	return out
}

// inverseOf pairs each action with its inverse.
var inverseOf = [numActions]Action{
	R:      RPrime,
	T:      TPrime,
	B:      BPrime,
	RPrime: R,
	TPrime: T,
	BPrime: B,
}

// Inverse returns the action that undoes a. It is involutive:
// a.Inverse().Inverse() == a for every action.
func (a Action) Inverse() Action {
	return inverseOf[a]
}

// Notation returns the two-character human token for the action: a
// face letter plus "+" for a generator or "-" for an inverse.
// Examples: R+, U-, B+.
func (a Action) Notation() string {
	switch a {
	case R:
		return "R+"
	case T:
		return "U+"
	case B:
		return "B+"
	case RPrime:
		return "R-"
	case TPrime:
		return "U-"
	case BPrime:
		return "B-"
	}
	return "?"
}

// String returns the notation string (alias for Notation).
func (a Action) String() string {
	return a.Notation()
}

// ParseAction parses a human token into an Action. Any string outside
// the 6 recognized tokens returns ErrInvalidNotation; callers parsing
// arbitrary text should treat that as "no action" rather than a fault.
func ParseAction(s string) (Action, error) {
	switch strings.TrimSpace(s) {
	case "R+":
		return R, nil
	case "U+":
		return T, nil
	case "B+":
		return B, nil
	case "R-":
		return RPrime, nil
	case "U-":
		return TPrime, nil
	case "B-":
		return BPrime, nil
	}
	return 0, ErrInvalidNotation
}

// ParseActions parses a space-separated token sequence.
// Example: "R+ U- B+". Unrecognized tokens are reported, not skipped:
// a driver replaying a recorded walk must not silently lose moves.
func ParseActions(s string) ([]Action, error) {
	parts := strings.Fields(s)
	out := make([]Action, 0, len(parts))
	for _, part := range parts {
		a, err := ParseAction(part)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// FormatActions formats a sequence of actions as space-separated
// notation tokens.
func FormatActions(as []Action) string {
	if len(as) == 0 {
		return ""
	}
	parts := make([]string, len(as))
	for i, a := range as {
		parts[i] = a.Notation()
	}
	return strings.Join(parts, " ")
}
