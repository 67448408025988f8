package pocketcube

// A generator move cycles 4 corners between slots and twists the
// corners that land next to the turning face. Each table entry is
// authored for the clockwise move only; inverse tables are derived in
// init so the two directions can never drift apart.

// cyclePair relocates the contents of slot src to slot dst.
type cyclePair struct {
	src, dst uint8
}

// twist adds delta (mod 3) to the orientation sitting at slot after
// relocation. Slots are destination slots of the cycle.
type twist struct {
	slot  uint8
	delta uint8
}

// moveTable fully describes one action.
type moveTable struct {
	cycle  [4]cyclePair
	twists []twist
}

// generatorTables holds the hand-authored clockwise moves.
var generatorTables = map[Action]moveTable{
	R: {
		cycle:  [4]cyclePair{{1, 2}, {2, 6}, {6, 5}, {5, 1}},
		twists: []twist{{1, 2}, {2, 1}, {5, 1}, {6, 2}},
	},
	T: {
		cycle: [4]cyclePair{{0, 3}, {1, 0}, {2, 1}, {3, 2}},
		// A top-face turn never twists a corner.
	},
	B: {
		cycle:  [4]cyclePair{{2, 3}, {3, 7}, {7, 6}, {6, 2}},
		twists: []twist{{2, 2}, {3, 1}, {6, 1}, {7, 2}},
	},
}

// moveTables covers all 6 actions; inverse entries are derived from the
// generators by invertTable.
var moveTables [numActions]moveTable

func init() {
	for gen, table := range generatorTables {
		moveTables[gen] = table
		moveTables[gen.Inverse()] = invertTable(table)
	}
}

// invertTable derives the counter-clockwise table from a clockwise one:
// every cycle pair is reversed, and the twist applied at the pair's old
// destination is negated (mod 3) and re-keyed to the slot the corner
// returns to.
func invertTable(t moveTable) moveTable {
	inv := moveTable{}
	for i, p := range t.cycle {
		inv.cycle[i] = cyclePair{src: p.dst, dst: p.src}
		if d := deltaAt(t.twists, p.dst); d != 0 {
			inv.twists = append(inv.twists, twist{slot: p.src, delta: 3 - d})
		}
	}
	return inv
}

// deltaAt returns the twist delta listed for slot, or 0 if none.
func deltaAt(twists []twist, slot uint8) uint8 {
	for _, tw := range twists {
		if tw.slot == slot {
			return tw.delta
		}
	}
	return 0
}

// Transform applies an action to a state and returns the successor.
// It is pure and O(1): the untouched 4 slots are copied as-is, the
// cycled slots are relocated, then the listed twists are added mod 3
// at the destination slots.
func Transform(s State, a Action) State {
	t := moveTables[a]
	out := s
	for _, p := range t.cycle {
		out.Pos[p.dst] = s.Pos[p.src]
		out.Ort[p.dst] = s.Ort[p.src]
	}
	for _, tw := range t.twists {
		out.Ort[tw.slot] = (out.Ort[tw.slot] + tw.delta) % 3
	}
	return out
}

// TransformAll applies a sequence of actions in order.
func TransformAll(s State, as []Action) State {
	for _, a := range as {
		s = Transform(s, a)
	}
	return s
}
