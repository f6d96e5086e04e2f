package bitboard

// Generators are written for a mover whose forward direction is toward row 0.
// Black reuses them by flipping the board vertically first.

// Mirror reverses the row order of bits, keeping each row's column order.
// Row i lands on row rows-1-i, a distance of 2*(mid-i) rows; with an even row
// count there is no middle row and the distance is one row shorter.
func (g *Geometry) Mirror(bits uint64) uint64 {
	mid := g.rows / 2
	even := 0
	if g.rows%2 == 0 {
		even = 1
	}
	var out uint64
	for i, row := range g.rowMasks {
		d := 2*(mid-i) - even
		if d >= 0 {
			out |= (bits & row) << uint(d*g.cols)
		} else {
			out |= (bits & row) >> uint(-d*g.cols)
		}
	}
	return out
}

// Unmirror maps a mask from mirrored space back onto the real board. Kept
// apart from Mirror so the two directions can be tested against each other.
func (g *Geometry) Unmirror(bits uint64) uint64 {
	var out uint64
	for y, row := range g.rowMasks {
		src := g.rows - 1 - y
		r := (bits & g.rowMasks[src]) >> uint(src*g.cols)
		out |= (r << uint(y*g.cols)) & row
	}
	return out
}

// MirrorIndex returns the index idx occupies in mirrored space.
func (g *Geometry) MirrorIndex(idx int) int {
	x, y := idx%g.cols, idx/g.cols
	return (g.rows-1-y)*g.cols + x
}
