package bitboard_test

import (
	"errors"
	"testing"

	bb "github.com/jimherefornonsense/mini-chess/bitboard"
)

func TestPerftMiniLayout(t *testing.T) {
	tests := []struct {
		color bb.Color
		depth int
		nodes uint64
	}{
		{bb.White, 0, 1},
		{bb.White, 1, 7},
		{bb.White, 2, 53},
		{bb.White, 3, 521},
		{bb.Black, 1, 7},
		{bb.Black, 2, 53},
	}
	for _, tc := range tests {
		b, l := mustBoard(t, bb.MiniLayout)
		startHash := b.Hash()
		nodes, err := bb.Perft(b, l, tc.color, tc.depth)
		if err != nil {
			t.Fatalf("Perft(%v, %d): %v", tc.color, tc.depth, err)
		}
		if nodes != tc.nodes {
			t.Fatalf("Perft(%v, %d) = %d, want %d", tc.color, tc.depth, nodes, tc.nodes)
		}
		if b.Hash() != startHash || l.String() != bb.MiniLayout {
			t.Fatalf("Perft(%v, %d) did not restore the position: %s", tc.color, tc.depth, l)
		}
		if err := b.Validate(); err != nil {
			t.Fatalf("Validate after perft: %v", err)
		}
	}
}

func TestDivideMiniLayout(t *testing.T) {
	b, l := mustBoard(t, bb.MiniLayout)
	div, err := bb.Divide(b, l, bb.White)
	if err != nil {
		t.Fatalf("Divide: %v", err)
	}
	if len(div) != 10 {
		t.Fatalf("Divide returned %d origins, want 10", len(div))
	}
	total := 0
	for _, n := range div {
		total += n
	}
	if total != 7 {
		t.Fatalf("Divide total = %d, want 7", total)
	}
	if div[bb.Coord{X: 1, Y: 4}] != 2 {
		t.Errorf("knight divide = %d, want 2", div[bb.Coord{X: 1, Y: 4}])
	}
	for x := 0; x < 5; x++ {
		if n := div[bb.Coord{X: x, Y: 3}]; n != 1 {
			t.Errorf("pawn at (%d,3) divide = %d, want 1", x, n)
		}
	}
}

func TestPerftRejectsMismatchedLayout(t *testing.T) {
	b, _ := mustBoard(t, bb.MiniLayout)
	other, _ := bb.ParseLayout("4/4/4/4")
	if _, err := bb.Perft(b, other, bb.White, 2); !errors.Is(err, bb.ErrMalformedLayout) {
		t.Fatalf("err = %v, want ErrMalformedLayout", err)
	}
	if _, err := bb.Divide(b, other, bb.White); !errors.Is(err, bb.ErrMalformedLayout) {
		t.Fatalf("err = %v, want ErrMalformedLayout", err)
	}
}

func TestPerftRejectsLayoutThatDisagreesWithBoard(t *testing.T) {
	b, _ := mustBoard(t, "P4/5/5/5/5")
	for _, s := range []string{"5/5/5/5/5", "p4/5/5/5/5", "P4/5/5/5/4P"} {
		l, err := bb.ParseLayout(s)
		if err != nil {
			t.Fatalf("ParseLayout(%q): %v", s, err)
		}
		if _, err := bb.Perft(b, l, bb.White, 2); !errors.Is(err, bb.ErrMalformedLayout) {
			t.Errorf("Perft with %q err = %v, want ErrMalformedLayout", s, err)
		}
		if _, err := bb.Divide(b, l, bb.White); !errors.Is(err, bb.ErrMalformedLayout) {
			t.Errorf("Divide with %q err = %v, want ErrMalformedLayout", s, err)
		}
		if err := b.CheckLayout(l); !errors.Is(err, bb.ErrMalformedLayout) {
			t.Errorf("CheckLayout(%q) err = %v, want ErrMalformedLayout", s, err)
		}
	}
	_, l := mustBoard(t, "P4/5/5/5/5")
	if err := b.CheckLayout(l); err != nil {
		t.Errorf("CheckLayout on its own layout: %v", err)
	}
}
