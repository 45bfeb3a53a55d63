package chesscore_test

import (
	"testing"

	eng "github.com/oliverans/chesscore/chesscore"
)

func TestFENRoundTrip(t *testing.T) {
	cases := []string{
		eng.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
	}
	for _, fen := range cases {
		b, err := eng.FromFEN(fen)
		if err != nil {
			t.Fatalf("FromFEN(%q) failed: %v", fen, err)
		}
		got := b.ToFEN()
		// Every input is already canonical the way ToFEN emits it (half-move
		// clock 0, castling rights ordered KQkq), so it must come back
		// unchanged, and reparsing the output must be a fixed point.
		if got != fen {
			t.Fatalf("ToFEN(FromFEN(%q)) = %q", fen, got)
		}
		b2, err := eng.FromFEN(got)
		if err != nil {
			t.Fatalf("round-tripped FEN failed to reparse: %q: %v", got, err)
		}
		if b2.ToFEN() != got {
			t.Fatalf("ToFEN is not a fixed point: %q -> %q", got, b2.ToFEN())
		}
	}
}

func TestFENHalfmoveClockDiscarded(t *testing.T) {
	b, err := eng.FromFEN("8/8/8/8/8/8/8/4K2k w - - 37 9")
	if err != nil {
		t.Fatalf("FromFEN failed: %v", err)
	}
	got := b.ToFEN()
	want := "8/8/8/8/8/8/8/4K2k w - - 0 9"
	if got != want {
		t.Fatalf("half-move clock not discarded: got %q want %q", got, want)
	}
}

func TestFENRejectsBadGrammar(t *testing.T) {
	bad := []string{
		"",
		"not a fen",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
	}
	for _, fen := range bad {
		if _, err := eng.FromFEN(fen); err == nil {
			t.Fatalf("FromFEN(%q) should have failed", fen)
		}
	}
}

func TestStartingPositionInvariants(t *testing.T) {
	b := eng.StartingPosition()
	if !b.Validate() {
		t.Fatalf("starting position should satisfy Board invariants")
	}
	if b.SideToMove() != eng.White {
		t.Fatalf("starting position should have white to move")
	}
	if b.FullTurnNumber() != 1 {
		t.Fatalf("starting position full-move number: got %d want 1", b.FullTurnNumber())
	}
	if _, ok := b.EnPassantTarget(); ok {
		t.Fatalf("starting position should have no en-passant target")
	}
}
