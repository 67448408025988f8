package pocketcube

// Env is the registration record an external search or training harness
// consumes: everything it needs to walk the state space without
// importing this package's symbols one by one. All function fields are
// pure and safe for concurrent use.
type Env struct {
	Name    string
	Initial State
	IsGoal  func(State) bool
	Actions []Action

	Transform func(State, Action) State
	Inverse   func(Action) Action

	Render       func(State) RenderedState
	RenderAction func(Action) string
	ParseAction  func(string) (Action, error)

	EncodedRows int
	EncodedCols int
	Encode      func(State) []float32
}

// NewEnv returns the populated registration record for this puzzle.
func NewEnv() Env {
	return Env{
		Name:    "cube2x2",
		Initial: Identity(),
		IsGoal:  State.IsGoal,
		Actions: Actions(),

		Transform: Transform,
		Inverse:   Action.Inverse,

		Render:       Render,
		RenderAction: Action.Notation,
		ParseAction:  ParseAction,

		EncodedRows: EncodedRows,
		EncodedCols: EncodedCols,
		Encode:      Encode,
	}
}
