package shell

import (
	"cmp"
	"errors"
	"fmt"
	"math/bits"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/maps"

	bb "github.com/jimherefornonsense/mini-chess/bitboard"
	"github.com/jimherefornonsense/mini-chess/crosscheck"
)

func (sc *ShellController) load(cmd *shellcmd) (*Response, error) {
	var (
		layout bb.Layout
		err    error
	)
	if path, ok := cmd.options["file"]; ok {
		raw, rerr := os.ReadFile(path)
		if rerr != nil {
			return nil, rerr
		}
		layout, err = bb.ParseLayout(string(raw))
	} else {
		if len(cmd.args) == 0 {
			return nil, errors.New("load: need a layout or -file <path>")
		}
		layout, err = bb.ParseLayout(strings.Join(cmd.args, "/"))
	}
	if err != nil {
		return nil, err
	}
	if err := sc.setPosition(layout); err != nil {
		return nil, err
	}
	return sc.show(cmd)
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	var sb strings.Builder
	sb.WriteString("   ")
	for x := 0; x < sc.layout.Cols(); x++ {
		sb.WriteString(strconv.Itoa(x % 10))
	}
	sb.WriteByte('\n')
	for y, row := range sc.layout {
		fmt.Fprintf(&sb, "%2d %s\n", y, string(row))
	}
	fmt.Fprintf(&sb, "%s  white %d  black %d", sc.layout, sc.board.Count(bb.White), sc.board.Count(bb.Black))
	return msg(sb.String()), nil
}

func (sc *ShellController) showBits(cmd *shellcmd) (*Response, error) {
	return msg(fmt.Sprintf("occupancy\n%s\nwhite %#x\nblack %#x",
		sc.board, sc.board.ColorBits(bb.White), sc.board.ColorBits(bb.Black))), nil
}

// moves x y [kind] lists destinations; the kind defaults to the layout's.
func (sc *ShellController) moves(cmd *shellcmd) (*Response, error) {
	xy, err := cmd.intArgs(2)
	if err != nil {
		return nil, err
	}
	kind, _, _ := sc.layout.KindAt(xy[0], xy[1])
	if len(cmd.args) > 2 {
		if kind, err = bb.ParsePieceKindName(cmd.args[2]); err != nil {
			return nil, err
		}
	}
	mask, err := sc.board.MoveMask(xy[0], xy[1], kind)
	if err != nil {
		return nil, err
	}
	it, err := sc.board.GenerateMoves(xy[0], xy[1], kind)
	if err != nil {
		return nil, err
	}
	dests := lo.Map(it.Collect(), func(c bb.Coord, _ int) string { return c.String() })

	grid := sc.layout.Clone()
	for m := mask; m != 0; m &= m - 1 {
		c := sc.board.CoordOf(bits.TrailingZeros64(m))
		if grid[c.Y][c.X] == bb.EmptyToken {
			grid[c.Y][c.X] = '*'
		}
	}
	return msg(fmt.Sprintf("%v at %s: %d destinations\n%s\n%s",
		kind, bb.Coord{X: xy[0], Y: xy[1]}, len(dests), strings.Join(dests, " "), grid.Render())), nil
}

func (sc *ShellController) lift(cmd *shellcmd) (*Response, error) {
	xy, err := cmd.intArgs(2)
	if err != nil {
		return nil, err
	}
	if err := sc.board.Lift(xy[0], xy[1]); err != nil {
		return nil, err
	}
	if err := sc.layout.Clear(xy[0], xy[1]); err != nil {
		return nil, err
	}
	return msg("lifted " + bb.Coord{X: xy[0], Y: xy[1]}.String()), nil
}

// place x y color kind
func (sc *ShellController) place(cmd *shellcmd) (*Response, error) {
	xy, err := cmd.intArgs(2)
	if err != nil {
		return nil, err
	}
	if len(cmd.args) < 4 {
		return nil, errors.New("place: usage place <x> <y> <white|black> <kind>")
	}
	color, err := bb.ParseColor(cmd.args[2])
	if err != nil {
		return nil, err
	}
	kind, err := bb.ParsePieceKindName(cmd.args[3])
	if err != nil {
		return nil, err
	}
	if err := sc.board.Place(xy[0], xy[1], color); err != nil {
		return nil, err
	}
	if err := sc.layout.Set(xy[0], xy[1], bb.Token(kind, color)); err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("placed %v %v at %s", color, kind, bb.Coord{X: xy[0], Y: xy[1]})), nil
}

// move x1 y1 x2 y2 plays a generated destination as lift then place.
func (sc *ShellController) move(cmd *shellcmd) (*Response, error) {
	v, err := cmd.intArgs(4)
	if err != nil {
		return nil, err
	}
	from, to := bb.Coord{X: v[0], Y: v[1]}, bb.Coord{X: v[2], Y: v[3]}
	kind, color, _ := sc.layout.KindAt(from.X, from.Y)
	mask, err := sc.board.MoveMask(from.X, from.Y, kind)
	if err != nil {
		return nil, err
	}
	idx, err := sc.board.Index(to.X, to.Y)
	if err != nil {
		return nil, err
	}
	if mask&(uint64(1)<<uint(idx)) == 0 {
		return nil, fmt.Errorf("%v at %s cannot reach %s", kind, from, to)
	}
	if from == to {
		return msg("stayed at " + from.String()), nil
	}

	tok := sc.layout[from.Y][from.X]
	if err := sc.board.Lift(from.X, from.Y); err != nil {
		return nil, err
	}
	if err := sc.board.Place(to.X, to.Y, color); err != nil {
		return nil, err
	}
	sc.layout[from.Y][from.X] = bb.EmptyToken
	sc.layout[to.Y][to.X] = tok
	return sc.show(cmd)
}

func (sc *ShellController) mirror(cmd *shellcmd) (*Response, error) {
	occ := sc.board.Occupancy()
	return msg(fmt.Sprintf("board\n%s\nmirrored\n%s", sc.board.DumpMask(occ), sc.board.DumpMask(sc.board.Mirror(occ)))), nil
}

func (sc *ShellController) verify(cmd *shellcmd) (*Response, error) {
	report, err := crosscheck.Verify(sc.board, sc.layout)
	if err != nil {
		return nil, err
	}
	return msg(report.String()), nil
}

func (sc *ShellController) sideArg(cmd *shellcmd, pos int) (bb.Color, error) {
	if len(cmd.args) <= pos {
		return bb.White, nil
	}
	return bb.ParseColor(cmd.args[pos])
}

// divide [color]
func (sc *ShellController) divide(cmd *shellcmd) (*Response, error) {
	color, err := sc.sideArg(cmd, 0)
	if err != nil {
		return nil, err
	}
	div, err := bb.Divide(sc.board, sc.layout, color)
	if err != nil {
		return nil, err
	}
	return msg(FormatDivide(div)), nil
}

// FormatDivide lists divide counts in row-major order with a total.
func FormatDivide(div map[bb.Coord]int) string {
	origins := maps.Keys(div)
	slices.SortFunc(origins, func(a, b bb.Coord) int {
		return cmp.Or(cmp.Compare(a.Y, b.Y), cmp.Compare(a.X, b.X))
	})
	var sb strings.Builder
	for _, c := range origins {
		fmt.Fprintf(&sb, "%s: %d\n", c, div[c])
	}
	fmt.Fprintf(&sb, "Total: %d", lo.Sum(maps.Values(div)))
	return sb.String()
}

// perft depth [color]
func (sc *ShellController) perft(cmd *shellcmd) (*Response, error) {
	d, err := cmd.intArgs(1)
	if err != nil {
		return nil, err
	}
	color, err := sc.sideArg(cmd, 1)
	if err != nil {
		return nil, err
	}
	nodes, err := bb.Perft(sc.board, sc.layout, color, d[0])
	if err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("perft(%d) %v: %d", d[0], color, nodes)), nil
}

func (sc *ShellController) hash(cmd *shellcmd) (*Response, error) {
	if err := sc.board.Validate(); err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("%016x", sc.board.Hash())), nil
}
