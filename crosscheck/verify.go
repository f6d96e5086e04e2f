package crosscheck

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	bb "github.com/jimherefornonsense/mini-chess/bitboard"
)

// Oracle computes the destination mask of the piece at (x, y) on the real
// board, origin included.
type Oracle func(b *bb.Board, x, y int, kind bb.PieceKind) (uint64, error)

// Mismatch is one square where the engine and an oracle disagree.
type Mismatch struct {
	At     bb.Coord
	Kind   bb.PieceKind
	Color  bb.Color
	Oracle string
	Got    uint64
	Want   uint64
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%v %v at %s: engine %#x, %s %#x", m.Color, m.Kind, m.At, m.Got, m.Oracle, m.Want)
}

// Report summarises a verification pass.
type Report struct {
	// Checked counts engine/oracle comparisons, not pieces.
	Checked    int
	Mismatches []Mismatch
}

// OK is true when no comparison disagreed.
func (r Report) OK() bool { return len(r.Mismatches) == 0 }

func (r Report) String() string {
	if r.OK() {
		return fmt.Sprintf("%d comparisons, all agree", r.Checked)
	}
	lines := lo.Map(r.Mismatches, func(m Mismatch, _ int) string { return m.String() })
	return fmt.Sprintf("%d comparisons, %d mismatches:\n%s", r.Checked, len(r.Mismatches), strings.Join(lines, "\n"))
}

// Verify compares the engine with the reference walker for every piece in
// the layout, and with dragontoothmg wherever it applies.
func Verify(b *bb.Board, layout bb.Layout) (Report, error) {
	if err := b.CheckLayout(layout); err != nil {
		return Report{}, err
	}
	oracles := []struct {
		name string
		fn   Oracle
	}{
		{"reference", Reference},
		{"dragontoothmg", Dragontooth},
	}

	var report Report
	for y := 0; y < b.Rows(); y++ {
		for x := 0; x < b.Cols(); x++ {
			color, ok, _ := b.ColorAt(x, y)
			if !ok {
				continue
			}
			kind, _, _ := layout.KindAt(x, y)
			got, err := b.MoveMask(x, y, kind)
			if err != nil {
				return report, err
			}
			for _, o := range oracles {
				want, err := o.fn(b, x, y, kind)
				if errors.Is(err, ErrUnsupported) {
					continue
				}
				if err != nil {
					return report, fmt.Errorf("%s: %w", o.name, err)
				}
				report.Checked++
				if got == want {
					continue
				}
				m := Mismatch{At: bb.Coord{X: x, Y: y}, Kind: kind, Color: color, Oracle: o.name, Got: got, Want: want}
				log.Debug().Stringer("mismatch", m).Msg("verify")
				report.Mismatches = append(report.Mismatches, m)
			}
		}
	}
	return report, nil
}

// Squares lists the distinct squares with at least one mismatch.
func (r Report) Squares() []bb.Coord {
	return lo.Uniq(lo.Map(r.Mismatches, func(m Mismatch, _ int) bb.Coord { return m.At }))
}
