// Package pocketcube models the legal-move state space of a 2x2 pocket
// cube (corners only) for consumption by external search and training
// drivers.
//
// # Overview
//
// A State is an immutable value describing which physical corner sits in
// each of the 8 slots (a permutation of 0..7) and how each of those
// corners is twisted (orientation 0..2). States are created with
// Identity or by applying one of the 6 actions with Transform; they are
// never mutated in place.
//
//	s := pocketcube.Identity()
//	s = pocketcube.Transform(s, pocketcube.R)
//	s = pocketcube.Transform(s, pocketcube.RPrime)
//	fmt.Println(s.IsGoal()) // true
//
// # Actions
//
// Three generator moves (R, T, B) turn the right, top and back faces
// clockwise; RPrime, TPrime and BPrime are their inverses. The inverse
// tables are derived from the generator tables, so
// Transform(Transform(s, a), a.Inverse()) == s holds for every action.
//
// # Rendering and encoding
//
// Render projects a state onto six 2x2 colored faces for display.
// Encode produces the 7x24 one-hot feature layout used as input to a
// learned model: one row per physical corner 0..6, a single bit at
// column slot*3+orientation. The eighth corner is fixed by parity and
// is not encoded.
//
// All functions in this package are pure and safe for concurrent use;
// the only shared data are read-only tables built at package init.
package pocketcube
