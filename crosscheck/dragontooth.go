package crosscheck

import (
	"fmt"

	"github.com/dylhunn/dragontoothmg"

	bb "github.com/jimherefornonsense/mini-chess/bitboard"
)

// Dragontooth computes slider moves with dragontoothmg's magic bitboards.
// dragontoothmg numbers squares from a1, which on an 8x8 board is our index
// with the rows reversed, so Mirror converts both ways.
func Dragontooth(b *bb.Board, x, y int, kind bb.PieceKind) (uint64, error) {
	if b.Rows() != 8 || b.Cols() != 8 {
		return 0, fmt.Errorf("%w: %dx%d board", ErrUnsupported, b.Rows(), b.Cols())
	}
	switch kind {
	case bb.Rook, bb.Bishop, bb.Queen:
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnsupported, kind)
	}

	sq, err := b.Index(x, y)
	if err != nil {
		return 0, err
	}
	mover, ok, _ := b.ColorAt(x, y)
	if !ok {
		return 0, fmt.Errorf("dragontooth at %s: %w", bb.Coord{X: x, Y: y}, bb.ErrNoPiece)
	}

	from := uint8(b.MirrorIndex(sq))
	all := b.Mirror(b.Occupancy())
	var attacks uint64
	if kind == bb.Rook || kind == bb.Queen {
		attacks |= dragontoothmg.CalculateRookMoveBitboard(from, all)
	}
	if kind == bb.Bishop || kind == bb.Queen {
		attacks |= dragontoothmg.CalculateBishopMoveBitboard(from, all)
	}
	moves := b.Unmirror(attacks) &^ b.ColorBits(mover)
	return moves | uint64(1)<<uint(sq), nil
}
