package pocketcube

import (
	"math/rand"
	"testing"
)

func TestIdentityIsGoal(t *testing.T) {
	if !Identity().IsGoal() {
		t.Error("identity state should be the goal")
	}
}

func TestSingleActionBreaksGoal(t *testing.T) {
	for _, a := range Actions() {
		s := Transform(Identity(), a)
		if s.IsGoal() {
			t.Errorf("state should not be goal after %v", a)
		}
	}
}

func TestActionThenInverseIsIdentity(t *testing.T) {
	for _, a := range Actions() {
		s := Transform(Identity(), a)
		s = Transform(s, a.Inverse())
		if !s.IsGoal() {
			t.Errorf("%v then %v should return to identity", a, a.Inverse())
			t.Log(Render(s).String())
		}
	}
}

func TestInverseIsInvolutive(t *testing.T) {
	for _, a := range Actions() {
		if got := a.Inverse().Inverse(); got != a {
			t.Errorf("Inverse(Inverse(%v)) = %v, want %v", a, got, a)
		}
	}
}

func TestGeneratorOrderFour(t *testing.T) {
	for _, a := range Actions() {
		s := Identity()
		for i := 0; i < 4; i++ {
			s = Transform(s, a)
			if i < 3 && s.IsGoal() {
				t.Errorf("%v applied %d times should not be identity", a, i+1)
			}
		}
		if !s.IsGoal() {
			t.Errorf("%v applied 4 times should return to identity", a)
			t.Log(Render(s).String())
		}
	}
}

func TestHalfTurnTwiceIsIdentity(t *testing.T) {
	// R R then R R: two half turns cancel.
	s := Identity()
	s = Transform(s, R)
	s = Transform(s, R)
	s = Transform(s, R)
	s = Transform(s, R)
	if !s.IsGoal() {
		t.Error("R R R R grouped as two half turns should return to identity")
	}
}

func TestCompositionInverse(t *testing.T) {
	// R T then T' R': the inverse of a composition is the composition
	// of inverses in reverse order.
	s := TransformAll(Identity(), []Action{R, T, TPrime, RPrime})
	if !s.IsGoal() {
		t.Error("R U U' R' should return to identity")
		t.Log(Render(s).String())
	}
}

func TestInverseUndoesFromAnyReachableState(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		start, _ := Scramble(rng, 20)
		for _, a := range Actions() {
			got := Transform(Transform(start, a), a.Inverse())
			if got != start {
				t.Fatalf("trial %d: %v then %v did not restore the state", trial, a, a.Inverse())
			}
		}
	}
}

func TestTransformPreservesInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := Identity()
	for i := 0; i < 500; i++ {
		s = Transform(s, actions[rng.Intn(numActions)])
		if err := s.Validate(); err != nil {
			t.Fatalf("after %d moves: %v", i+1, err)
		}
	}
}

func TestTransformDoesNotMutateInput(t *testing.T) {
	before := Identity()
	Transform(before, R)
	if before != Identity() {
		t.Error("Transform mutated its input state")
	}
}

func TestScrambleReversal(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	s, walk := Scramble(rng, 30)
	for i := len(walk) - 1; i >= 0; i-- {
		s = Transform(s, walk[i].Inverse())
	}
	if !s.IsGoal() {
		t.Error("reversing a scramble should return to identity")
		t.Log(Render(s).String())
	}
}

func TestDerivedInverseTablesMatchGenerators(t *testing.T) {
	// The inverse tables are derived, not hand-authored. Applying a
	// generator three times must equal applying its inverse once.
	for _, g := range []Action{R, T, B} {
		rng := rand.New(rand.NewSource(int64(g)))
		start, _ := Scramble(rng, 15)

		triple := start
		for i := 0; i < 3; i++ {
			triple = Transform(triple, g)
		}
		inv := Transform(start, g.Inverse())
		if triple != inv {
			t.Errorf("%v^3 != %v from a scrambled state", g, g.Inverse())
		}
	}
}
