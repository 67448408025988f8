package pocketcube

import "math/rand"

// Scramble applies n uniformly random actions to the identity state and
// returns the result together with the actions taken. The caller owns
// the rand source, so scrambles are reproducible by seed.
func Scramble(rng *rand.Rand, n int) (State, []Action) {
	s := Identity()
	as := make([]Action, n)
	for i := range as {
		a := actions[rng.Intn(numActions)]
		as[i] = a
		s = Transform(s, a)
	}
	return s, as
}
