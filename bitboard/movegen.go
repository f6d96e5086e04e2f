package bitboard

// All generators work in white-forward orientation: "up" is toward row 0.
// sq is the origin index, occ the combined occupancy and enemy the opposing
// side's occupancy. Each returns quiet moves and captures in one mask.

// PawnMoves returns single and double pushes onto empty squares and the two
// forward diagonal captures. There is no en passant.
func (g *Geometry) PawnMoves(sq int, occ, enemy uint64) uint64 {
	pos := bit(sq)
	cols := uint(g.cols)
	empty := g.Complement(occ)
	var moveMask, attackMask uint64

	if step := pos >> cols; step&empty != 0 {
		moveMask |= step
		// Double step from the home row when both squares are clear.
		if g.HomeRow() >= 0 && pos&g.rowMasks[g.HomeRow()] != 0 {
			if step2 := step >> cols; step2&empty != 0 {
				moveMask |= step2
			}
		}
	}

	if pos&g.Complement(g.leftFence) != 0 {
		attackMask |= pos >> (cols + 1)
	}
	if pos&g.Complement(g.rightFence) != 0 {
		attackMask |= pos >> (cols - 1)
	}
	attackMask &= enemy

	return (moveMask | attackMask) & g.full
}

// KnightMoves returns the eight L-shaped jumps.
func (g *Geometry) KnightMoves(sq int, occ, enemy uint64) uint64 {
	pos := bit(sq)
	cols := uint(g.cols)
	notLeft := g.Complement(g.leftFence)
	notRight := g.Complement(g.rightFence)
	var targets uint64

	// Two rows up or down, one column across: the column step is fenced.
	//  * . *
	//  . . .
	//    N
	//  . . .
	//  * . *
	if pos&notLeft != 0 {
		targets |= (pos >> (2 * cols)) >> 1
		targets |= (pos << (2 * cols)) >> 1
	}
	if pos&notRight != 0 {
		targets |= (pos >> (2 * cols)) << 1
		targets |= (pos << (2 * cols)) << 1
	}

	// Two columns across, one row up or down: the two-column step must stay
	// inside the origin row before changing rows.
	//  * . . . *
	//  . . N . .
	//  * . . . *
	row := g.rowMasks[sq/g.cols]
	toLeft := (pos >> 2) & row
	toRight := (pos << 2) & row
	targets |= toLeft>>cols | toLeft<<cols
	targets |= toRight>>cols | toRight<<cols

	return g.leap(targets, occ, enemy)
}

// KingMoves returns the eight neighbouring squares.
func (g *Geometry) KingMoves(sq int, occ, enemy uint64) uint64 {
	pos := bit(sq)
	cols := uint(g.cols)
	var targets uint64

	// Up and down never cross a column edge.
	targets |= pos >> cols
	targets |= pos << cols

	if pos&g.Complement(g.leftFence) != 0 {
		targets |= pos >> (cols + 1) // up left
		targets |= pos >> 1          // left
		targets |= pos << (cols - 1) // down left
	}
	if pos&g.Complement(g.rightFence) != 0 {
		targets |= pos >> (cols - 1) // up right
		targets |= pos << 1          // right
		targets |= pos << (cols + 1) // down right
	}

	return g.leap(targets, occ, enemy)
}

// leap keeps on-board targets that are empty or hold an enemy piece.
func (g *Geometry) leap(targets, occ, enemy uint64) uint64 {
	targets &= g.full
	return targets&g.Complement(occ) | targets&enemy
}

// RookMoves casts the row and column rays.
func (g *Geometry) RookMoves(sq int, occ, enemy uint64) uint64 {
	return (g.rowRays(sq, occ, enemy) | g.colRays(sq, occ, enemy)) & g.full
}

// BishopMoves casts the four diagonal rays.
func (g *Geometry) BishopMoves(sq int, occ, enemy uint64) uint64 {
	return g.diagRays(sq, occ, enemy) & g.full
}

// QueenMoves is the union of rook and bishop moves.
func (g *Geometry) QueenMoves(sq int, occ, enemy uint64) uint64 {
	return (g.rowRays(sq, occ, enemy) | g.colRays(sq, occ, enemy) | g.diagRays(sq, occ, enemy)) & g.full
}

// rowRays walks left and right until the ray leaves the origin row or hits a
// piece. An enemy piece ends the ray as a capture; a friendly one just ends it.
func (g *Geometry) rowRays(sq int, occ, enemy uint64) uint64 {
	pos := bit(sq)
	inRow := pos ^ g.rowMasks[sq/g.cols]
	var moves uint64

	for to := pos >> 1; to&inRow != 0; to >>= 1 {
		if to&occ != 0 {
			moves |= to & enemy
			break
		}
		moves |= to
	}
	for to := pos << 1; to&inRow != 0; to <<= 1 {
		if to&occ != 0 {
			moves |= to & enemy
			break
		}
		moves |= to
	}
	return moves
}

// colRays walks up and down until the ray leaves the board.
func (g *Geometry) colRays(sq int, occ, enemy uint64) uint64 {
	pos := bit(sq)
	cols := uint(g.cols)
	var moves uint64

	for to := pos >> cols; to&g.full != 0; to >>= cols {
		if to&occ != 0 {
			moves |= to & enemy
			break
		}
		moves |= to
	}
	for to := pos << cols; to&g.full != 0; to <<= cols {
		if to&occ != 0 {
			moves |= to & enemy
			break
		}
		moves |= to
	}
	return moves
}

// diagRays walks the four diagonals. A ray may only step while its current
// square is off the fence on the side it is heading toward.
func (g *Geometry) diagRays(sq int, occ, enemy uint64) uint64 {
	cols := uint(g.cols)
	notLeft := g.Complement(g.leftFence)
	notRight := g.Complement(g.rightFence)

	var moves uint64
	moves |= g.diagRay(bit(sq), notLeft, occ, enemy, func(b uint64) uint64 { return b >> (cols + 1) })
	moves |= g.diagRay(bit(sq), notRight, occ, enemy, func(b uint64) uint64 { return b >> (cols - 1) })
	moves |= g.diagRay(bit(sq), notLeft, occ, enemy, func(b uint64) uint64 { return b << (cols - 1) })
	moves |= g.diagRay(bit(sq), notRight, occ, enemy, func(b uint64) uint64 { return b << (cols + 1) })
	return moves
}

func (g *Geometry) diagRay(to, open, occ, enemy uint64, step func(uint64) uint64) uint64 {
	var moves uint64
	for to&open != 0 {
		to = step(to)
		if to&g.full == 0 {
			break
		}
		if to&occ != 0 {
			moves |= to & enemy
			break
		}
		moves |= to
	}
	return moves
}
