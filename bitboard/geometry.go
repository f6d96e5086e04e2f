package bitboard

import (
	"fmt"
	"math/bits"
)

// MaxSquares is the largest board a single uint64 mask can describe.
const MaxSquares = 64

// Geometry holds the dimension-derived masks shared by every generator.
// Bit 0 is the top-left square; indices grow left to right, then downward.
//
//	+---+---+---+---+---+
//	|  0|  1|  2|  3|  4|
//	+---+---+---+---+---+
//	|  5|  6|  7|  8|  9|
//	+---+---+---+---+---+
//	| 10| 11| 12| 13| 14|
//	+---+---+---+---+---+
type Geometry struct {
	rows, cols int

	rowMasks []uint64
	full     uint64

	// leftFence and rightFence are the first and last column of every row.
	leftFence  uint64
	rightFence uint64
}

// NewGeometry builds the row masks and fences for a rows x cols board.
func NewGeometry(rows, cols int) (*Geometry, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrMalformedLayout, rows, cols)
	}
	if rows*cols > MaxSquares {
		return nil, fmt.Errorf("%w: %dx%d", ErrBoardTooLarge, rows, cols)
	}
	g := &Geometry{rows: rows, cols: cols, rowMasks: make([]uint64, rows)}
	rowBits := uint64(1)<<uint(cols) - 1
	for y := 0; y < rows; y++ {
		g.rowMasks[y] = rowBits << uint(y*cols)
		g.full |= g.rowMasks[y]
	}
	g.leftFence, g.rightFence = g.scanFences()
	return g, nil
}

// scanFences finds the lowest and highest set bit of every row mask.
func (g *Geometry) scanFences() (left, right uint64) {
	for _, row := range g.rowMasks {
		left |= uint64(1) << uint(bits.TrailingZeros64(row))
		right |= uint64(1) << uint(63-bits.LeadingZeros64(row))
	}
	return left, right
}

// Rows returns the number of rows.
func (g *Geometry) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Geometry) Cols() int { return g.cols }

// Squares returns rows*cols.
func (g *Geometry) Squares() int { return g.rows * g.cols }

// RowMask returns the bits of row y.
func (g *Geometry) RowMask(y int) (uint64, error) {
	if y < 0 || y >= g.rows {
		return 0, fmt.Errorf("%w: row %d on %dx%d board", ErrOutOfBounds, y, g.rows, g.cols)
	}
	return g.rowMasks[y], nil
}

// FullMask returns the union of all row masks.
func (g *Geometry) FullMask() uint64 { return g.full }

// Complement negates bits within the board. A bare ^bits would also set the
// unused high bits of the word.
func (g *Geometry) Complement(bits uint64) uint64 { return g.full &^ bits }

// FenceMasks returns the leftmost-column and rightmost-column masks.
func (g *Geometry) FenceMasks() (left, right uint64) { return g.leftFence, g.rightFence }

// HomeRow is the pawn double-step row in white-forward orientation, or -1 on
// a single-row board.
func (g *Geometry) HomeRow() int { return g.rows - 2 }

// InBounds reports whether (x, y) lies on the board.
func (g *Geometry) InBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// Index converts a coordinate to its bit index.
func (g *Geometry) Index(x, y int) (int, error) {
	if !g.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) on %dx%d board", ErrOutOfBounds, x, y, g.cols, g.rows)
	}
	return y*g.cols + x, nil
}

// CoordOf decodes a bit index into a coordinate.
func (g *Geometry) CoordOf(idx int) Coord {
	return Coord{X: idx % g.cols, Y: idx / g.cols}
}

// bit returns the single-bit mask of idx.
func bit(idx int) uint64 { return uint64(1) << uint(idx) }
