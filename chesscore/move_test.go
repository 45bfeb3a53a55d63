package chesscore_test

import (
	"testing"

	eng "github.com/oliverans/chesscore/chesscore"
)

func TestNotationRoundTrip(t *testing.T) {
	b := eng.StartingPosition()
	cases := []string{"e2e4", "g1f3", "b1c3"}
	for _, s := range cases {
		mv, err := eng.MoveFromStr(s, &b)
		if err != nil {
			t.Fatalf("MoveFromStr(%q) failed: %v", s, err)
		}
		if got := eng.MoveToStr(mv); got != s {
			t.Fatalf("MoveToStr(MoveFromStr(%q)) = %q", s, got)
		}
	}
}

func TestMoveStrIsWellformed(t *testing.T) {
	good := []string{"e2e4", "a7a8q", "h1a1", "A2A4"}
	bad := []string{"", "e2", "e2e4Q", "i2e4", "e9e4", "e2e4x"}
	for _, s := range good {
		if !eng.MoveStrIsWellformed(s) {
			t.Errorf("expected %q to be wellformed", s)
		}
	}
	for _, s := range bad {
		if eng.MoveStrIsWellformed(s) {
			t.Errorf("expected %q to not be wellformed", s)
		}
	}
}

func TestMoveEndSentinel(t *testing.T) {
	b := eng.StartingPosition()
	// e2 already holds a white pawn: moving the f1 bishop onto it should
	// fail to construct (destination occupied by the mover's own color).
	mv := eng.NewMoveFromSquares(&b, eng.SquareFromFileRank(5, 0), eng.SquareFromFileRank(4, 1), false, eng.NoPieceKind)
	if mv != eng.MoveEnd {
		t.Fatalf("expected MoveEnd for an own-piece capture, got %s", mv.String())
	}
}

func TestPromotionEncoding(t *testing.T) {
	b, err := eng.FromFEN("1n5k/P7/8/8/8/8/8/7K w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN failed: %v", err)
	}
	mv, err := eng.MoveFromStr("a7a8q", &b)
	if err != nil {
		t.Fatalf("MoveFromStr failed: %v", err)
	}
	if !mv.IsPromotion() || mv.PromotionKind() != eng.Queen {
		t.Fatalf("expected a queen promotion, got promotion=%v kind=%v", mv.IsPromotion(), mv.PromotionKind())
	}

	mv2, err := eng.MoveFromStr("a7b8q", &b)
	if err != nil {
		t.Fatalf("MoveFromStr(a7b8q) failed: %v", err)
	}
	if !mv2.IsCapture() || mv2.CaptureKind() != eng.Knight {
		t.Fatalf("expected a knight capture on promotion, got capture=%v kind=%v", mv2.IsCapture(), mv2.CaptureKind())
	}
}

func TestEnPassantFlag(t *testing.T) {
	b, err := eng.FromFEN("rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3")
	if err != nil {
		t.Fatalf("FromFEN failed: %v", err)
	}
	ep, err := eng.MoveFromStr("f5e6", &b)
	if err != nil {
		t.Fatalf("MoveFromStr(f5e6) failed: %v", err)
	}
	if !ep.IsEnPassant() {
		t.Fatalf("f5e6 should be flagged as an en-passant capture")
	}
	if got := ep.CaptureSquare(); got != eng.SquareFromFileRank(4, 4) {
		t.Fatalf("en-passant capture square: got %v want e5", got)
	}

	plain, err := eng.MoveFromStr("a2a3", &b)
	if err != nil {
		t.Fatalf("MoveFromStr(a2a3) failed: %v", err)
	}
	if plain.IsEnPassant() {
		t.Fatalf("a2a3 should not be flagged as an en-passant capture")
	}
}
