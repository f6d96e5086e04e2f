// Package crosscheck holds move generators that share no code with the
// bitboard shifts, and a verifier that compares the two.
package crosscheck

import (
	"errors"
	"fmt"

	bb "github.com/jimherefornonsense/mini-chess/bitboard"
)

// ErrUnsupported is returned by an oracle that cannot handle a board size or
// piece kind.
var ErrUnsupported = errors.New("oracle does not support this position")

type offset struct{ dx, dy int }

var (
	knightOffsets = []offset{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingOffsets   = []offset{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
	rookDirs      = []offset{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	bishopDirs    = []offset{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
)

// Reference walks coordinates on the real board to find the destinations of
// the piece at (x, y). White pawns advance toward row 0 from row rows-2, black
// pawns toward the last row from row 1. The origin is always included.
func Reference(b *bb.Board, x, y int, kind bb.PieceKind) (uint64, error) {
	mover, ok, err := b.ColorAt(x, y)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("reference at %s: %w", bb.Coord{X: x, Y: y}, bb.ErrNoPiece)
	}

	w := walker{b: b, mover: mover}
	moves := w.bit(x, y)
	switch kind {
	case bb.Pawn:
		moves |= w.pawn(x, y)
	case bb.Knight:
		moves |= w.leap(x, y, knightOffsets)
	case bb.King:
		moves |= w.leap(x, y, kingOffsets)
	case bb.Rook:
		moves |= w.slide(x, y, rookDirs)
	case bb.Bishop:
		moves |= w.slide(x, y, bishopDirs)
	case bb.Queen:
		moves |= w.slide(x, y, rookDirs) | w.slide(x, y, bishopDirs)
	}
	return moves, nil
}

type walker struct {
	b     *bb.Board
	mover bb.Color
}

func (w walker) bit(x, y int) uint64 {
	return uint64(1) << uint(y*w.b.Cols()+x)
}

// state reports whether (x, y) is on the board, occupied, and held by the
// other side.
func (w walker) state(x, y int) (onBoard, occupied, enemy bool) {
	c, ok, err := w.b.ColorAt(x, y)
	if err != nil {
		return false, false, false
	}
	return true, ok, ok && c != w.mover
}

func (w walker) pawn(x, y int) uint64 {
	forward, home := -1, w.b.Rows()-2
	if w.mover == bb.Black {
		forward, home = 1, 1
	}
	var moves uint64
	if on, occ, _ := w.state(x, y+forward); on && !occ {
		moves |= w.bit(x, y+forward)
		if y == home {
			if on, occ, _ := w.state(x, y+2*forward); on && !occ {
				moves |= w.bit(x, y+2*forward)
			}
		}
	}
	for _, dx := range []int{-1, 1} {
		if _, _, enemy := w.state(x+dx, y+forward); enemy {
			moves |= w.bit(x+dx, y+forward)
		}
	}
	return moves
}

func (w walker) leap(x, y int, offsets []offset) uint64 {
	var moves uint64
	for _, o := range offsets {
		on, occ, enemy := w.state(x+o.dx, y+o.dy)
		if on && (!occ || enemy) {
			moves |= w.bit(x+o.dx, y+o.dy)
		}
	}
	return moves
}

func (w walker) slide(x, y int, dirs []offset) uint64 {
	var moves uint64
	for _, d := range dirs {
		for tx, ty := x+d.dx, y+d.dy; ; tx, ty = tx+d.dx, ty+d.dy {
			on, occ, enemy := w.state(tx, ty)
			if !on || (occ && !enemy) {
				break
			}
			moves |= w.bit(tx, ty)
			if enemy {
				break
			}
		}
	}
	return moves
}
