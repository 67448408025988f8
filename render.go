package pocketcube

// Color represents a sticker color.
type Color byte

const (
	White  Color = 0 // Top face when solved
	Yellow Color = 1 // Bottom face when solved
	Red    Color = 2 // Front face when solved
	Orange Color = 3 // Back face when solved
	Blue   Color = 4 // Right face when solved
	Green  Color = 5 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Face identifies one of the six 2x2 faces of the rendered cube.
type Face int

const (
	Top    Face = 0
	Left   Face = 1
	Back   Face = 2
	Front  Face = 3
	Right  Face = 4
	Bottom Face = 5
)

func (f Face) String() string {
	switch f {
	case Top:
		return "top"
	case Left:
		return "left"
	case Back:
		return "back"
	case Front:
		return "front"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	default:
		return "?"
	}
}

// RenderedState is a six-face colored projection of a State. Each face
// is a 2x2 grid of stickers indexed
//
//	0 1
//	2 3
//
// It carries no identity of its own; Render recomputes it on every
// call.
type RenderedState struct {
	Top    [4]Color
	Left   [4]Color
	Back   [4]Color
	Front  [4]Color
	Right  [4]Color
	Bottom [4]Color
}

// cornerColors gives the fixed 3-sticker label of each physical corner,
// clockwise from the main (top or bottom) sticker. Corners are numbered
// like slots: top layer counter-clockwise from front-left, then the
// bottom layer.
var cornerColors = [8][3]Color{
	{White, Red, Green},
	{White, Blue, Red},
	{White, Orange, Blue},
	{White, Green, Orange},
	{Yellow, Green, Red},
	{Yellow, Red, Blue},
	{Yellow, Blue, Orange},
	{Yellow, Orange, Green},
}

// facelet is one sticker position on the rendered cube.
type facelet struct {
	face Face
	cell uint8
}

// cornerFacelets scatters the 3 stickers of the corner occupying each
// slot onto the rendered faces. It is a bijection onto all 24
// (face, cell) pairs: every sticker position is written exactly once.
var cornerFacelets = [8][3]facelet{
	// top layer
	{{Top, 2}, {Front, 0}, {Left, 1}},
	{{Top, 3}, {Right, 0}, {Front, 1}},
	{{Top, 1}, {Back, 0}, {Right, 1}},
	{{Top, 0}, {Left, 0}, {Back, 1}},
	// bottom layer
	{{Bottom, 0}, {Left, 3}, {Front, 2}},
	{{Bottom, 1}, {Front, 3}, {Right, 2}},
	{{Bottom, 3}, {Right, 3}, {Back, 2}},
	{{Bottom, 2}, {Back, 3}, {Left, 2}},
}

// orientColors rotates a corner's sticker triple by its orientation.
func orientColors(cols [3]Color, ort uint8) [3]Color {
	switch ort {
	case 1:
		return [3]Color{cols[2], cols[0], cols[1]}
	case 2:
		return [3]Color{cols[1], cols[2], cols[0]}
	default:
		return cols
	}
}

// Render projects a state onto its six colored faces. For every slot it
// looks up the occupying corner's sticker triple, rotates it by the
// corner's orientation, then scatters the stickers per cornerFacelets.
func Render(s State) RenderedState {
	var faces [6][4]Color
	for slot := 0; slot < 8; slot++ {
		cols := orientColors(cornerColors[s.Pos[slot]], s.Ort[slot])
		for i, fl := range cornerFacelets[slot] {
			faces[fl.face][fl.cell] = cols[i]
		}
	}
	return RenderedState{
		Top:    faces[Top],
		Left:   faces[Left],
		Back:   faces[Back],
		Front:  faces[Front],
		Right:  faces[Right],
		Bottom: faces[Bottom],
	}
}

// String returns an unfolded net of the cube:
// top on its own rows, then left/front/right/back side by side, then
// bottom.
func (r RenderedState) String() string {
	result := ""

	for row := 0; row < 2; row++ {
		result += "    "
		for col := 0; col < 2; col++ {
			result += r.Top[row*2+col].String() + " "
		}
		result += "\n"
	}

	for row := 0; row < 2; row++ {
		for _, face := range [][4]Color{r.Left, r.Front, r.Right, r.Back} {
			for col := 0; col < 2; col++ {
				result += face[row*2+col].String() + " "
			}
		}
		result += "\n"
	}

	for row := 0; row < 2; row++ {
		result += "    "
		for col := 0; col < 2; col++ {
			result += r.Bottom[row*2+col].String() + " "
		}
		result += "\n"
	}

	return result
}

// Faces returns the faces in net order (top, left, back, front, right,
// bottom) for callers that iterate rather than address by name.
func (r RenderedState) Faces() [6][4]Color {
	return [6][4]Color{r.Top, r.Left, r.Back, r.Front, r.Right, r.Bottom}
}
