package bitboard

import (
	"fmt"
	"strings"
	"unicode"
)

// Color identifies which occupancy mask owns a square.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing color.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// ParseColor accepts "white"/"w" and "black"/"b" in any case.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	}
	return White, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// PieceKind is the closed set of movement patterns the generator knows about.
// The board itself never stores kinds; callers supply them per query.
type PieceKind uint8

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// pieceLetters holds the lowercase layout letter for each kind.
var pieceLetters = [...]rune{
	NoKind: '.',
	Pawn:   'p',
	Knight: 'n',
	Bishop: 'b',
	Rook:   'r',
	Queen:  'q',
	King:   'k',
}

// Valid reports whether k is one of the six known kinds.
func (k PieceKind) Valid() bool { return k >= Pawn && k <= King }

// Letter returns the lowercase layout letter, or '?' for unknown kinds.
func (k PieceKind) Letter() rune {
	if int(k) < len(pieceLetters) {
		return pieceLetters[k]
	}
	return '?'
}

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	case NoKind:
		return "none"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParsePieceKind maps a layout letter (either case) to its kind.
func ParsePieceKind(r rune) (PieceKind, error) {
	lr := unicode.ToLower(r)
	for k := Pawn; k <= King; k++ {
		if pieceLetters[k] == lr {
			return k, nil
		}
	}
	return NoKind, fmt.Errorf("%w: %q", ErrUnknownPiece, r)
}

// ParsePieceKindName accepts either a single letter or a full name ("rook").
func ParsePieceKindName(s string) (PieceKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) == 1 {
		return ParsePieceKind(rune(s[0]))
	}
	for k := Pawn; k <= King; k++ {
		if k.String() == s {
			return k, nil
		}
	}
	return NoKind, fmt.Errorf("%w: %q", ErrUnknownPiece, s)
}

// Coord is a decoded square: X is the column, Y the row (0 = top).
type Coord struct {
	X, Y int
}

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }
