package bitboard

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// Board is the occupancy store: one mask per color over a fixed Geometry.
// It tracks only which color holds a square, never which piece. Board is not
// safe for concurrent use; callers finish a Lift/Place pair before querying.
type Board struct {
	*Geometry

	// Occupancy bitboards for each side (index 0 = white, 1 = black).
	// The two masks never share a bit.
	occupancy [2]uint64

	// Hash of the occupancy, kept in step by Lift and Place.
	zobristKey uint64
}

// NewBoard derives the dimensions from a layout and sets every occupied square
// in the mask of its color.
func NewBoard(layout Layout) (*Board, error) {
	if err := layout.validate(); err != nil {
		return nil, err
	}
	geo, err := NewGeometry(len(layout), len(layout[0]))
	if err != nil {
		return nil, err
	}
	b := &Board{Geometry: geo}
	for y, row := range layout {
		for x, tok := range row {
			if tok == EmptyToken {
				continue
			}
			b.occupancy[tokenColor(tok)] |= bit(y*geo.cols + x)
		}
	}
	b.zobristKey = b.ComputeZobrist()
	log.Debug().Int("rows", geo.rows).Int("cols", geo.cols).
		Int("white", b.Count(White)).Int("black", b.Count(Black)).
		Msg("board constructed")
	return b, nil
}

// NewEmptyBoard returns a rows x cols board with no pieces.
func NewEmptyBoard(rows, cols int) (*Board, error) {
	geo, err := NewGeometry(rows, cols)
	if err != nil {
		return nil, err
	}
	b := &Board{Geometry: geo}
	b.zobristKey = b.ComputeZobrist()
	return b, nil
}

// Clone returns an independent copy sharing the immutable geometry.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// ColorBits returns the occupancy mask of color.
func (b *Board) ColorBits(c Color) uint64 { return b.occupancy[c&1] }

// Occupancy returns the mask of every occupied square.
func (b *Board) Occupancy() uint64 { return b.occupancy[White] | b.occupancy[Black] }

// Count returns the number of squares held by color.
func (b *Board) Count(c Color) int { return popCount(b.occupancy[c&1]) }

// Hash returns the current occupancy hash.
func (b *Board) Hash() uint64 { return b.zobristKey }

// ColorAt reports the color holding (x, y). ok is false for an empty square.
func (b *Board) ColorAt(x, y int) (c Color, ok bool, err error) {
	idx, err := b.Index(x, y)
	if err != nil {
		return White, false, err
	}
	c, ok = b.colorOf(idx)
	return c, ok, nil
}

// CheckLayout reports ErrMalformedLayout unless l has b's dimensions and
// agrees with it square by square on occupancy and color.
func (b *Board) CheckLayout(l Layout) error {
	if l.Rows() != b.rows || l.Cols() != b.cols {
		return fmt.Errorf("%w: layout is %dx%d, board is %dx%d",
			ErrMalformedLayout, l.Rows(), l.Cols(), b.rows, b.cols)
	}
	for y := range l {
		for x := range l[y] {
			_, lc, lok := l.KindAt(x, y)
			bc, bok := b.colorOf(y*b.cols + x)
			if lok != bok || (lok && lc != bc) {
				return fmt.Errorf("%w: layout and board disagree at (%d,%d)", ErrMalformedLayout, x, y)
			}
		}
	}
	return nil
}

func (b *Board) colorOf(idx int) (Color, bool) {
	switch {
	case b.occupancy[White]&bit(idx) != 0:
		return White, true
	case b.occupancy[Black]&bit(idx) != 0:
		return Black, true
	}
	return White, false
}

// Lift removes the piece at (x, y) from whichever side holds it.
func (b *Board) Lift(x, y int) error {
	idx, err := b.Index(x, y)
	if err != nil {
		return err
	}
	c, ok := b.colorOf(idx)
	if !ok {
		return fmt.Errorf("lift %s: %w", Coord{x, y}, ErrNoPiece)
	}
	b.occupancy[c] &^= bit(idx)
	b.zobristKey ^= zobristSquare[c][idx]
	return nil
}

// Place puts a piece of color on (x, y), capturing anything of the other
// color already there.
func (b *Board) Place(x, y int, c Color) error {
	idx, err := b.Index(x, y)
	if err != nil {
		return err
	}
	c &= 1
	them := c.Other()
	if b.occupancy[them]&bit(idx) != 0 {
		b.occupancy[them] &^= bit(idx)
		b.zobristKey ^= zobristSquare[them][idx]
	}
	if b.occupancy[c]&bit(idx) == 0 {
		b.occupancy[c] |= bit(idx)
		b.zobristKey ^= zobristSquare[c][idx]
	}
	return nil
}

// Validate checks the occupancy invariants and the incremental hash.
func (b *Board) Validate() error {
	if b.occupancy[White]&b.occupancy[Black] != 0 {
		return fmt.Errorf("white and black overlap: %#x", b.occupancy[White]&b.occupancy[Black])
	}
	if stray := b.Occupancy() &^ b.full; stray != 0 {
		return fmt.Errorf("occupancy outside the board: %#x", stray)
	}
	if b.zobristKey != b.ComputeZobrist() {
		return fmt.Errorf("hash %#x does not match recomputed %#x", b.zobristKey, b.ComputeZobrist())
	}
	return nil
}

// String dumps the combined occupancy row by row as '1' and '0'.
func (b *Board) String() string { return b.DumpMask(b.Occupancy()) }

// DumpMask renders any mask with the board's dimensions.
func (b *Board) DumpMask(mask uint64) string {
	var sb strings.Builder
	for y := 0; y < b.rows; y++ {
		for x := 0; x < b.cols; x++ {
			if mask&bit(y*b.cols+x) != 0 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		if y < b.rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
