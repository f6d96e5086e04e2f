package bitboard

import "errors"

var (
	// ErrMalformedLayout is returned for non-rectangular grids and grids with
	// zero rows or columns.
	ErrMalformedLayout = errors.New("malformed board layout")
	// ErrBoardTooLarge is returned when rows*cols exceeds the 64 bits of a mask.
	ErrBoardTooLarge = errors.New("board does not fit in 64 squares")
	// ErrOutOfBounds is returned for coordinates outside the board.
	ErrOutOfBounds = errors.New("coordinates out of bounds")
	// ErrNoPiece is returned when an operation needs a piece on an empty square.
	ErrNoPiece = errors.New("no piece at square")
	// ErrUnknownPiece is returned for a piece name or letter outside p, n, b,
	// r, q and k.
	ErrUnknownPiece = errors.New("unknown piece letter")
	// ErrUnknownColor is returned for a color name other than white or black.
	ErrUnknownColor = errors.New("unknown color")
)
