package bitboard

// Divide counts, for each piece of color, the destinations other than staying
// put. kinds supplies the piece kind of every square and must match b.
func Divide(b *Board, kinds Layout, color Color) (map[Coord]int, error) {
	if err := b.CheckLayout(kinds); err != nil {
		return nil, err
	}
	result := make(map[Coord]int)
	pieces := b.ColorBits(color)
	for pieces != 0 {
		sq := popLSB(&pieces)
		from := b.CoordOf(sq)
		kind, _, _ := kinds.KindAt(from.X, from.Y)
		moves, err := b.MoveMask(from.X, from.Y, kind)
		if err != nil {
			return nil, err
		}
		result[from] = popCount(moves &^ bit(sq))
	}
	return result, nil
}

// Perft counts pseudo-legal move sequences of the given depth, sides
// alternating and starting with color. Stay moves are skipped, captures
// overwrite, and pawns on the last row simply stop. b and kinds are restored
// before returning.
func Perft(b *Board, kinds Layout, color Color, depth int) (uint64, error) {
	if err := b.CheckLayout(kinds); err != nil {
		return 0, err
	}
	if depth <= 0 {
		return 1, nil
	}
	return perftRec(b, kinds, color, depth)
}

func perftRec(b *Board, kinds Layout, color Color, depth int) (uint64, error) {
	if depth == 0 {
		return 1, nil
	}
	var nodes uint64
	pieces := b.ColorBits(color)
	for pieces != 0 {
		sq := popLSB(&pieces)
		from := b.CoordOf(sq)
		kind, _, _ := kinds.KindAt(from.X, from.Y)
		moves, err := b.MoveMask(from.X, from.Y, kind)
		if err != nil {
			return 0, err
		}
		moves &^= bit(sq)
		if depth == 1 {
			nodes += uint64(popCount(moves))
			continue
		}
		for moves != 0 {
			to := b.CoordOf(popLSB(&moves))
			n, err := perftMove(b, kinds, color, from, to, depth)
			if err != nil {
				return 0, err
			}
			nodes += n
		}
	}
	return nodes, nil
}

// perftMove plays from->to, recurses and undoes the move.
func perftMove(b *Board, kinds Layout, color Color, from, to Coord, depth int) (uint64, error) {
	saved := *b
	movedTok := kinds[from.Y][from.X]
	capturedTok := kinds[to.Y][to.X]

	if err := b.Lift(from.X, from.Y); err != nil {
		return 0, err
	}
	if err := b.Place(to.X, to.Y, color); err != nil {
		return 0, err
	}
	kinds[from.Y][from.X] = EmptyToken
	kinds[to.Y][to.X] = movedTok

	n, err := perftRec(b, kinds, color.Other(), depth-1)

	*b = saved
	kinds[from.Y][from.X] = movedTok
	kinds[to.Y][to.X] = capturedTok
	return n, err
}
