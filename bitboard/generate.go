package bitboard

import (
	"fmt"
	"iter"

	"github.com/rs/zerolog/log"
)

// UnknownKindPolicy documents what GenerateMoves does with a PieceKind outside
// Pawn..King: the result holds only the origin square (the stay move) and no
// error is returned. Callers that need to tell this apart from a boxed-in
// piece should check PieceKind.Valid first.
const UnknownKindPolicy = "unknown piece kinds generate only the stay move"

// generatorFunc computes moves in white-forward orientation.
type generatorFunc func(g *Geometry, sq int, occ, enemy uint64) uint64

var generators = [...]generatorFunc{
	Pawn:   (*Geometry).PawnMoves,
	Knight: (*Geometry).KnightMoves,
	Bishop: (*Geometry).BishopMoves,
	Rook:   (*Geometry).RookMoves,
	Queen:  (*Geometry).QueenMoves,
	King:   (*Geometry).KingMoves,
}

func generatorFor(k PieceKind) generatorFunc {
	if !k.Valid() {
		return nil
	}
	return generators[k]
}

// OrientedMoveMask returns the moves of the piece at (x, y) in the mover's
// own orientation: unchanged for white, mirrored for black. The origin is
// always included.
func (b *Board) OrientedMoveMask(x, y int, kind PieceKind) (uint64, Color, error) {
	sq, err := b.Index(x, y)
	if err != nil {
		return 0, White, err
	}
	mover, ok := b.colorOf(sq)
	if !ok {
		return 0, White, fmt.Errorf("generate moves at %s: %w", Coord{x, y}, ErrNoPiece)
	}

	occ := b.Occupancy()
	enemy := b.occupancy[Black]
	if mover == Black {
		mirroredWhite := b.Mirror(b.occupancy[White])
		mirroredBlack := b.Mirror(b.occupancy[Black])
		sq = b.MirrorIndex(sq)
		occ = mirroredWhite | mirroredBlack
		enemy = mirroredWhite
	}

	// Staying put is always offered.
	moves := bit(sq)
	gen := generatorFor(kind)
	if gen == nil {
		log.Debug().Stringer("kind", kind).Int("x", x).Int("y", y).Msg(UnknownKindPolicy)
		return moves, mover, nil
	}
	moves |= gen(b.Geometry, sq, occ, enemy)
	return moves, mover, nil
}

// MoveMask returns the destinations of the piece at (x, y) on the real board,
// the origin included.
func (b *Board) MoveMask(x, y int, kind PieceKind) (uint64, error) {
	moves, mover, err := b.OrientedMoveMask(x, y, kind)
	if err != nil {
		return 0, err
	}
	if mover == Black {
		moves = b.Unmirror(moves)
	}
	return moves, nil
}

// GenerateMoves returns the pseudo-legal destinations of a kind piece at
// (x, y). An empty square is an error, never an empty sequence.
func (b *Board) GenerateMoves(x, y int, kind PieceKind) (*MoveIter, error) {
	moves, err := b.MoveMask(x, y, kind)
	if err != nil {
		return nil, err
	}
	return newMoveIter(moves, b.cols), nil
}

// MoveIter decodes a move mask least significant bit first. It is consumed as
// it is read and cannot be rewound.
type MoveIter struct {
	mask uint64
	cols int
}

func newMoveIter(mask uint64, cols int) *MoveIter {
	return &MoveIter{mask: mask, cols: cols}
}

// Next returns the next destination, or ok=false once the sequence is spent.
func (it *MoveIter) Next() (c Coord, ok bool) {
	if it.mask == 0 {
		return Coord{}, false
	}
	idx := popLSB(&it.mask)
	return Coord{X: idx % it.cols, Y: idx / it.cols}, true
}

// Remaining returns how many destinations are left.
func (it *MoveIter) Remaining() int { return popCount(it.mask) }

// All adapts the iterator for range-over-func. Ranging drains it.
func (it *MoveIter) All() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for {
			c, ok := it.Next()
			if !ok || !yield(c) {
				return
			}
		}
	}
}

// Collect drains the remaining destinations into a slice.
func (it *MoveIter) Collect() []Coord {
	out := make([]Coord, 0, it.Remaining())
	for c := range it.All() {
		out = append(out, c)
	}
	return out
}
