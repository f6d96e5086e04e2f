package bitboard_test

import (
	"testing"

	bb "github.com/jimherefornonsense/mini-chess/bitboard"
)

func TestRookOnEmptyBoardCenter(t *testing.T) {
	b, _ := mustBoard(t, "5/5/2R2/5/5")
	got := destinations(t, b, 2, 2, bb.Rook)
	if len(got) != 9 {
		t.Fatalf("rook at (2,2): expected 9 destinations, got %d: %v", len(got), got)
	}
	for _, c := range got {
		if c.X != 2 && c.Y != 2 {
			t.Errorf("rook reached %v, off its row and column", c)
		}
	}
}

func TestKnightInCorner(t *testing.T) {
	b, _ := mustBoard(t, "N4/5/5/5/5")
	got := destinations(t, b, 0, 0, bb.Knight)
	want := []bb.Coord{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 2}}
	if !sameCoords(got, want) {
		t.Fatalf("knight at (0,0): got %v, want %v", got, want)
	}
}

func TestWhitePawnFromHomeRow(t *testing.T) {
	b, _ := mustBoard(t, "5/5/5/2P2/5")
	got := destinations(t, b, 2, 3, bb.Pawn)
	want := []bb.Coord{{X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}}
	if !sameCoords(got, want) {
		t.Fatalf("pawn at home row: got %v, want %v", got, want)
	}
}

func TestPawnBlockedByEitherColor(t *testing.T) {
	for _, layout := range []string{"5/5/2P2/2P2/5", "5/5/2p2/2P2/5"} {
		b, _ := mustBoard(t, layout)
		got := destinations(t, b, 2, 3, bb.Pawn)
		if len(got) != 1 || got[0] != (bb.Coord{X: 2, Y: 3}) {
			t.Errorf("%s: blocked pawn should only stay, got %v", layout, got)
		}
	}
	// A blocked second square still allows the single step.
	b, _ := mustBoard(t, "5/2p2/5/2P2/5")
	if got := destinations(t, b, 2, 3, bb.Pawn); len(got) != 2 {
		t.Errorf("double step through a piece: got %v", got)
	}
}

func TestPawnCapturesDiagonally(t *testing.T) {
	b, _ := mustBoard(t, "5/5/1p1p1/2P2/5")
	got := destinations(t, b, 2, 3, bb.Pawn)
	want := []bb.Coord{{X: 2, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 3}}
	if !sameCoords(got, want) {
		t.Fatalf("pawn captures: got %v, want %v", got, want)
	}
}

func TestPawnCapturesDoNotWrap(t *testing.T) {
	// From the left edge the forward-left shift lands on the right edge of the
	// row above; the fence must stop it.
	b, _ := mustBoard(t, "5/4p/5/P4/5")
	got := destinations(t, b, 0, 3, bb.Pawn)
	want := []bb.Coord{{X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3}}
	if !sameCoords(got, want) {
		t.Fatalf("left edge pawn: got %v, want %v", got, want)
	}

	b, _ = mustBoard(t, "5/5/5/p3P/5")
	got = destinations(t, b, 4, 3, bb.Pawn)
	want = []bb.Coord{{X: 4, Y: 1}, {X: 4, Y: 2}, {X: 4, Y: 3}}
	if !sameCoords(got, want) {
		t.Fatalf("right edge pawn: got %v, want %v", got, want)
	}
}

func TestBlackPawnMirrorsWhitePawn(t *testing.T) {
	white, _ := mustBoard(t, "5/5/5/1P3/5")
	black, _ := mustBoard(t, "5/1p3/5/5/5")

	wm, err := white.MoveMask(1, 3, bb.Pawn)
	if err != nil {
		t.Fatalf("white MoveMask: %v", err)
	}
	bm, err := black.MoveMask(1, 1, bb.Pawn)
	if err != nil {
		t.Fatalf("black MoveMask: %v", err)
	}
	if white.Mirror(wm) != bm {
		t.Fatalf("black pawn moves are not the mirror of white's:\nwhite\n%s\nblack\n%s",
			white.DumpMask(wm), black.DumpMask(bm))
	}
	got := destinations(t, black, 1, 1, bb.Pawn)
	want := []bb.Coord{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 3}}
	if !sameCoords(got, want) {
		t.Fatalf("black pawn: got %v, want %v", got, want)
	}
}

func TestBlackPawnOffHomeRowAndBlocked(t *testing.T) {
	b, _ := mustBoard(t, "6/6/4p1/6")
	if got := destinations(t, b, 4, 2, bb.Pawn); !sameCoords(got, []bb.Coord{{X: 4, Y: 2}, {X: 4, Y: 3}}) {
		t.Errorf("black pawn off home row: %v", got)
	}
	b, _ = mustBoard(t, "6/4p1/4P1/6")
	if got := destinations(t, b, 4, 1, bb.Pawn); !sameCoords(got, []bb.Coord{{X: 4, Y: 1}}) {
		t.Errorf("blocked black pawn: %v", got)
	}
}

func TestOrientedMaskNeedsUnmirrorForBlack(t *testing.T) {
	b, _ := mustBoard(t, "n4/5/5/5/5")
	oriented, mover, err := b.OrientedMoveMask(0, 0, bb.Knight)
	if err != nil {
		t.Fatalf("OrientedMoveMask: %v", err)
	}
	if mover != bb.Black {
		t.Fatalf("mover = %v, want black", mover)
	}
	trueMask, err := b.MoveMask(0, 0, bb.Knight)
	if err != nil {
		t.Fatalf("MoveMask: %v", err)
	}
	if oriented == trueMask {
		t.Fatalf("oriented mask should live in mirrored space")
	}
	if b.Unmirror(oriented) != trueMask {
		t.Fatalf("Unmirror(oriented) = %#x, want %#x", b.Unmirror(oriented), trueMask)
	}
	// Origin (0,0) appears at (0,4) in black's orientation.
	if oriented&(1<<20) == 0 {
		t.Fatalf("oriented mask is missing the mirrored origin")
	}
}

func TestLeapersAndSlidersDoNotWrap(t *testing.T) {
	cases := []struct {
		name   string
		layout string
		x, y   int
		kind   bb.PieceKind
		want   []bb.Coord
	}{
		{"rook right edge", "5/5/4R/5/5", 4, 2, bb.Rook, []bb.Coord{
			{X: 4, Y: 0}, {X: 4, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2},
			{X: 3, Y: 2}, {X: 4, Y: 2}, {X: 4, Y: 3}, {X: 4, Y: 4}}},
		{"king right edge", "5/4K/5/5/5", 4, 1, bb.King, []bb.Coord{
			{X: 3, Y: 0}, {X: 4, Y: 0}, {X: 3, Y: 1}, {X: 4, Y: 1}, {X: 3, Y: 2}, {X: 4, Y: 2}}},
		{"knight far corner", "5/5/5/5/4N", 4, 4, bb.Knight, []bb.Coord{
			{X: 3, Y: 2}, {X: 2, Y: 3}, {X: 4, Y: 4}}},
		{"bishop left edge", "5/5/B4/5/5", 0, 2, bb.Bishop, []bb.Coord{
			{X: 2, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 3}, {X: 2, Y: 4}}},
		{"knight on 4x6", "6/1N4/6/6", 1, 1, bb.Knight, []bb.Coord{
			{X: 3, Y: 0}, {X: 1, Y: 1}, {X: 3, Y: 2}, {X: 0, Y: 3}, {X: 2, Y: 3}}},
		{"king on 4x6", "6/6/2k3/6", 2, 2, bb.King, []bb.Coord{
			{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2},
			{X: 3, Y: 2}, {X: 1, Y: 3}, {X: 2, Y: 3}, {X: 3, Y: 3}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, _ := mustBoard(t, tc.layout)
			got := destinations(t, b, tc.x, tc.y, tc.kind)
			if !sameCoords(got, tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSlidersStopAtPieces(t *testing.T) {
	// Enemy pawn at (2,0) is captured, own pawn at (0,2) blocks.
	b, _ := mustBoard(t, "R1p2/5/P4/5/5")
	got := destinations(t, b, 0, 0, bb.Rook)
	want := []bb.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}}
	if !sameCoords(got, want) {
		t.Fatalf("rook rays: got %v, want %v", got, want)
	}
}

func TestQueenOnEmptyBoard(t *testing.T) {
	b, _ := mustBoard(t, "5/5/2Q2/5/5")
	if got := destinations(t, b, 2, 2, bb.Queen); len(got) != 17 {
		t.Fatalf("queen at center: expected 17 destinations, got %d", len(got))
	}
	b, _ = mustBoard(t, "6/2q3/6/6")
	if got := destinations(t, b, 2, 1, bb.Queen); len(got) != 15 {
		t.Fatalf("black queen on 4x6: expected 15 destinations, got %d: %v", len(got), got)
	}
}

func TestKnightSkipsOwnPieces(t *testing.T) {
	b, _ := mustBoard(t, "5/5/5/3P1/1N3")
	got := destinations(t, b, 1, 4, bb.Knight)
	want := []bb.Coord{{X: 0, Y: 2}, {X: 2, Y: 2}, {X: 1, Y: 4}}
	if !sameCoords(got, want) {
		t.Fatalf("knight with own piece on target: got %v, want %v", got, want)
	}
}

func TestSingleColumnBoard(t *testing.T) {
	b, _ := mustBoard(t, "./././P/.")
	got := destinations(t, b, 0, 3, bb.Pawn)
	want := []bb.Coord{{X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3}}
	if !sameCoords(got, want) {
		t.Fatalf("pawn on 5x1: got %v, want %v", got, want)
	}
	if got := destinations(t, b, 0, 3, bb.Bishop); len(got) != 1 {
		t.Fatalf("bishop on a single column should only stay, got %v", got)
	}
}
