package pocketcube

import "testing"

// oneBitPerRow verifies the one-hot property and returns the set column
// per row.
func oneBitPerRow(t *testing.T, buf []float32) [EncodedRows]int {
	t.Helper()
	var cols [EncodedRows]int
	for row := 0; row < EncodedRows; row++ {
		count := 0
		for col := 0; col < EncodedCols; col++ {
			switch buf[row*EncodedCols+col] {
			case 0:
			case 1:
				count++
				cols[row] = col
			default:
				t.Fatalf("row %d col %d: value %v, want 0 or 1", row, col, buf[row*EncodedCols+col])
			}
		}
		if count != 1 {
			t.Fatalf("row %d has %d set bits, want exactly 1", row, count)
		}
	}
	return cols
}

func TestEncodeIdentity(t *testing.T) {
	buf := Encode(Identity())
	if len(buf) != EncodedLen {
		t.Fatalf("encoded length %d, want %d", len(buf), EncodedLen)
	}
	cols := oneBitPerRow(t, buf)
	for corner := 0; corner < EncodedRows; corner++ {
		// Corner c sits in slot c with orientation 0.
		if want := corner * 3; cols[corner] != want {
			t.Errorf("corner %d: bit at column %d, want %d", corner, cols[corner], want)
		}
	}
}

func TestEncodeAfterRightTurn(t *testing.T) {
	buf := Encode(Transform(Identity(), R))
	cols := oneBitPerRow(t, buf)

	// After R+: corner 1 sits in slot 2 twisted once, corner 2 in
	// slot 6 twisted twice; corners 0, 3, 4, 7 stay home untwisted.
	tests := []struct {
		corner, col int
	}{
		{0, 0 * 3},
		{1, 2*3 + 1},
		{2, 6*3 + 2},
		{3, 3 * 3},
		{4, 4 * 3},
		{5, 1*3 + 2},
		{6, 5*3 + 1},
	}
	for _, tt := range tests {
		if cols[tt.corner] != tt.col {
			t.Errorf("corner %d: bit at column %d, want %d", tt.corner, cols[tt.corner], tt.col)
		}
	}
}

func TestEncodeOmitsEighthCorner(t *testing.T) {
	// Corner 7 gets no row: exactly 7 bits total regardless of where
	// it sits.
	s := Transform(Identity(), B) // B displaces corner 7
	buf := Encode(s)
	total := 0
	for _, v := range buf {
		if v == 1 {
			total++
		}
	}
	if total != EncodedRows {
		t.Errorf("encoding has %d set bits, want %d", total, EncodedRows)
	}
}

func TestEncodeIntoOnlySetsBits(t *testing.T) {
	buf := make([]float32, EncodedLen)
	buf[5] = 1 // stale bit from a previous encoding
	EncodeInto(buf, Identity())
	if buf[5] != 1 {
		t.Error("EncodeInto should never clear bits; the pre-zeroed contract is the caller's")
	}
}

func TestEncodeIntoRejectsWrongLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("EncodeInto with a short buffer should panic")
		}
	}()
	EncodeInto(make([]float32, 10), Identity())
}

func TestEncodedShape(t *testing.T) {
	rows, cols := EncodedShape()
	if rows != 7 || cols != 24 {
		t.Errorf("EncodedShape() = (%d, %d), want (7, 24)", rows, cols)
	}
}
