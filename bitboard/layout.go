package bitboard

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// EmptyToken marks an empty square in a layout.
const EmptyToken = '.'

// MiniLayout is the 5x5 starting position the engine was first written for.
const MiniLayout = "rnbqk/ppppp/5/PPPPP/RNBQK"

// StandardLayout is the usual 8x8 starting position, white at the bottom.
const StandardLayout = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// Layout is a grid of square tokens, row 0 first. Uppercase letters are white
// pieces, lowercase letters black, and '.' an empty square. The letter names
// the piece kind; the Board keeps only the color, so a Layout doubles as the
// caller's kind-per-square map.
type Layout [][]rune

// ParseLayout reads rows separated by '/' or newlines. A run of digits stands
// for that many empty squares, so "3" and "..." are the same row.
func ParseLayout(s string) (Layout, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty layout", ErrMalformedLayout)
	}
	s = strings.NewReplacer("\r\n", "/", "\n", "/").Replace(s)

	var layout Layout
	for i, rowStr := range strings.Split(s, "/") {
		rowStr = strings.TrimSpace(rowStr)
		if rowStr == "" {
			return nil, fmt.Errorf("%w: row %d is empty", ErrMalformedLayout, i)
		}
		row, err := parseLayoutRow(rowStr)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		layout = append(layout, row)
	}
	if err := layout.validate(); err != nil {
		return nil, err
	}
	return layout, nil
}

func parseLayoutRow(rowStr string) ([]rune, error) {
	var row []rune
	runes := []rune(rowStr)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case unicode.IsDigit(ch):
			j := i
			for j < len(runes) && unicode.IsDigit(runes[j]) {
				j++
			}
			if j-i > 2 {
				return nil, fmt.Errorf("%w: empty run %q", ErrBoardTooLarge, string(runes[i:j]))
			}
			n, err := strconv.Atoi(string(runes[i:j]))
			if err != nil || n == 0 {
				return nil, fmt.Errorf("%w: bad empty run %q", ErrMalformedLayout, string(runes[i:j]))
			}
			if len(row)+n > MaxSquares {
				return nil, fmt.Errorf("%w: row longer than %d squares", ErrBoardTooLarge, MaxSquares)
			}
			for ; n > 0; n-- {
				row = append(row, EmptyToken)
			}
			i = j - 1
		case ch == EmptyToken || unicode.IsLetter(ch):
			if len(row) == MaxSquares {
				return nil, fmt.Errorf("%w: row longer than %d squares", ErrBoardTooLarge, MaxSquares)
			}
			row = append(row, ch)
		default:
			return nil, fmt.Errorf("%w: unexpected character %q", ErrMalformedLayout, ch)
		}
	}
	return row, nil
}

// validate rejects empty and non-rectangular grids.
func (l Layout) validate() error {
	if len(l) == 0 || len(l[0]) == 0 {
		return fmt.Errorf("%w: zero rows or columns", ErrMalformedLayout)
	}
	cols := len(l[0])
	for y, row := range l {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d squares, want %d", ErrMalformedLayout, y, len(row), cols)
		}
		for x, tok := range row {
			if tok != EmptyToken && !unicode.IsLetter(tok) {
				return fmt.Errorf("%w: bad token %q at (%d,%d)", ErrMalformedLayout, tok, x, y)
			}
		}
	}
	if len(l)*cols > MaxSquares {
		return fmt.Errorf("%w: %dx%d", ErrBoardTooLarge, len(l), cols)
	}
	return nil
}

// tokenColor returns the color a piece token encodes.
func tokenColor(tok rune) Color {
	if unicode.IsUpper(tok) {
		return White
	}
	return Black
}

// Token returns the layout letter for a kind and color.
func Token(k PieceKind, c Color) rune {
	if !k.Valid() {
		return EmptyToken
	}
	if c == White {
		return unicode.ToUpper(k.Letter())
	}
	return k.Letter()
}

// Rows returns the number of rows.
func (l Layout) Rows() int { return len(l) }

// Cols returns the number of columns.
func (l Layout) Cols() int {
	if len(l) == 0 {
		return 0
	}
	return len(l[0])
}

// KindAt returns the kind and color of the token at (x, y). ok is false for an
// empty or out-of-range square. Letters outside p/n/b/r/q/k report NoKind.
func (l Layout) KindAt(x, y int) (k PieceKind, c Color, ok bool) {
	if y < 0 || y >= len(l) || x < 0 || x >= len(l[y]) {
		return NoKind, White, false
	}
	tok := l[y][x]
	if tok == EmptyToken {
		return NoKind, White, false
	}
	k, err := ParsePieceKind(tok)
	if err != nil {
		k = NoKind
	}
	return k, tokenColor(tok), true
}

// Set writes a token at (x, y).
func (l Layout) Set(x, y int, tok rune) error {
	if y < 0 || y >= len(l) || x < 0 || x >= len(l[y]) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	l[y][x] = tok
	return nil
}

// Clear empties (x, y).
func (l Layout) Clear(x, y int) error { return l.Set(x, y, EmptyToken) }

// Clone deep-copies the grid.
func (l Layout) Clone() Layout {
	c := make(Layout, len(l))
	for i, row := range l {
		c[i] = append([]rune(nil), row...)
	}
	return c
}

// String emits the compact '/'-separated form with digit runs for empties.
func (l Layout) String() string {
	var sb strings.Builder
	for y, row := range l {
		empty := 0
		for _, tok := range row {
			if tok == EmptyToken {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteRune(tok)
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if y < len(l)-1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// Render draws the grid one row per line, as the tokens appear.
func (l Layout) Render() string {
	lines := make([]string, len(l))
	for y, row := range l {
		lines[y] = string(row)
	}
	return strings.Join(lines, "\n")
}
