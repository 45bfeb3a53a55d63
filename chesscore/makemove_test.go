package chesscore_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	eng "github.com/oliverans/chesscore/chesscore"
)

func boardDiff(a, b eng.Board) string {
	return cmp.Diff(a, b, cmp.AllowUnexported(eng.Board{}))
}

func TestMakeUnmakeRoundTrip(t *testing.T) {
	fens := []string{
		eng.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
	}
	for _, fen := range fens {
		original, err := eng.FromFEN(fen)
		if err != nil {
			t.Fatalf("FromFEN(%q) failed: %v", fen, err)
		}
		board := original
		g := eng.NewMoveGen(&board)
		for {
			mv := g.NextKeeping()
			if mv == eng.MoveEnd {
				break
			}
			eng.UnmakeMove(&board, mv)
			if diff := boardDiff(original, board); diff != "" {
				t.Fatalf("unmake(make(b, %s)) != b (-want +got):\n%s", mv.String(), diff)
			}
		}
	}
}

func TestMakeMoveLeavesBoardValid(t *testing.T) {
	b, err := eng.FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("FromFEN failed: %v", err)
	}
	g := eng.NewMoveGen(&b)
	for {
		mv := g.NextKeeping()
		if mv == eng.MoveEnd {
			break
		}
		if !b.Validate() {
			t.Fatalf("board invariants violated after move %s", mv.String())
		}
		eng.UnmakeMove(&b, mv)
	}
}

func TestCastlingClearsRights(t *testing.T) {
	b, err := eng.FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("FromFEN failed: %v", err)
	}
	mv, err := eng.MoveFromStr("e1g1", &b)
	if err != nil {
		t.Fatalf("MoveFromStr failed: %v", err)
	}
	if !mv.IsCastle() {
		t.Fatalf("e1g1 from this position should be a castle")
	}
	eng.MakeMove(&b, mv)
	if b.CanCastle(eng.WhiteKingside) || b.CanCastle(eng.WhiteQueenside) {
		t.Fatalf("white castling rights should be cleared after castling")
	}
	if !b.CanCastle(eng.BlackKingside) || !b.CanCastle(eng.BlackQueenside) {
		t.Fatalf("black castling rights should be unaffected")
	}
	if k, c, ok := b.PieceOn(eng.SquareFromFileRank(5, 0)); !ok || k != eng.Rook || c != eng.White {
		t.Fatalf("rook should have moved to f1")
	}
}

func TestRookMoveClearsOneCastlingRight(t *testing.T) {
	b, err := eng.FromFEN("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	if err != nil {
		t.Fatalf("FromFEN failed: %v", err)
	}
	mv, err := eng.MoveFromStr("a1a4", &b)
	if err != nil {
		t.Fatalf("MoveFromStr failed: %v", err)
	}
	eng.MakeMove(&b, mv)
	if b.CanCastle(eng.WhiteQueenside) {
		t.Fatalf("moving the a1 rook should clear white's queenside right")
	}
	if !b.CanCastle(eng.WhiteKingside) {
		t.Fatalf("white's kingside right should be unaffected")
	}
}
