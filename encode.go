package pocketcube

import "fmt"

// Feature encoding follows the one-hot layout from
// https://arxiv.org/abs/1805.07470: one row per physical corner, one
// column per (slot, orientation) pair. The eighth corner is determined
// by the other seven under the puzzle's parity constraint and is
// omitted.
const (
	EncodedRows = 7
	EncodedCols = 24
	EncodedLen  = EncodedRows * EncodedCols
)

// EncodedShape returns the (rows, cols) shape of the feature encoding.
func EncodedShape() (rows, cols int) {
	return EncodedRows, EncodedCols
}

// Encode returns a freshly allocated row-major one-hot encoding of the
// state. For each corner c in 0..6 occupying slot p with orientation o,
// the bit at row c, column p*3+o is set.
func Encode(s State) []float32 {
	buf := make([]float32, EncodedLen)
	EncodeInto(buf, s)
	return buf
}

// EncodeInto writes the one-hot encoding into dst, which must be a
// zeroed row-major buffer of length EncodedLen. Only ones are written:
// a reused buffer must be re-zeroed by the caller or stale bits from
// the previous encoding survive. A wrong-length buffer is a programmer
// error and panics.
func EncodeInto(dst []float32, s State) {
	if len(dst) != EncodedLen {
		panic(fmt.Sprintf("pocketcube: encode buffer length %d, want %d", len(dst), EncodedLen))
	}
	for slot := 0; slot < 8; slot++ {
		corner := int(s.Pos[slot])
		if corner == EncodedRows {
			continue
		}
		dst[corner*EncodedCols+slot*3+int(s.Ort[slot])] = 1
	}
}
