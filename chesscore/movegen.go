package chesscore

// genMode is the move enumerator's cursor mode. The cursor walks these
// in order: normal piece moves, king-side castle, queen-side castle,
// then end (terminal classification).
type genMode uint8

const (
	modeNormal genMode = iota
	modeCastleKing
	modeCastleQueen
	modeEnd
)

// TerminalState is the MoveGen.done latch: not-yet-exhausted, exhausted
// after yielding at least one move, or one of the two ways exhaustion
// with zero yielded moves can end.
type TerminalState uint8

const (
	notYetDone TerminalState = iota
	NormalDone
	CheckmateDone
	StalemateDone
)

// promotionOrder is the cycle this engine visits promotion kinds in
// for a single promoting destination square: knight, rook, bishop,
// queen (see DESIGN.md for why this differs from spec prose's
// "knight, bishop, rook, queen" — it is the numeric cycling order the
// original engine's promotion counter actually executes).
var promotionOrder = [4]PieceKind{Knight, Rook, Bishop, Queen}

func nextPromotion(p PieceKind) (next PieceKind, wrapped bool) {
	for i, k := range promotionOrder {
		if k == p {
			if i == len(promotionOrder)-1 {
				return NoPieceKind, true
			}
			return promotionOrder[i+1], false
		}
	}
	return promotionOrder[0], false
}

// MoveGen is a zero-allocation-per-move streaming enumerator over the
// legal moves available to the board's side to move. It borrows the
// board exclusively for its lifetime: move generation mutates the
// board in place (via MakeMove/UnmakeMove) and must not be interleaved
// with any other mutation of the same board.
type MoveGen struct {
	board *Board
	color Color
	opp   Color

	ownOcc, sliderOcc, pawnOcc Bitboard
	targetMask                 Bitboard

	mode         genMode
	pieceKind    PieceKind
	srcSquare    Square
	curTargets   Bitboard
	curPromotion PieceKind

	done    TerminalState
	hitMove bool
}

// NewMoveGen creates an enumerator over board's legal moves. Pregenerate
// is invoked automatically (idempotent) so callers never need to call
// it themselves before constructing a MoveGen.
func NewMoveGen(board *Board) *MoveGen {
	Pregenerate()
	g := &MoveGen{board: board}
	g.color = board.SideToMove()
	g.opp = g.color.Opponent()
	g.ownOcc = board.Players[g.color]
	g.sliderOcc = board.sliderOccupancy()
	g.pawnOcc = board.pawnOccupancy()
	g.targetMask = ^g.ownOcc
	g.mode = modeNormal
	g.pieceKind = King
	g.srcSquare = NoSquare
	g.curPromotion = NoPieceKind
	return g
}

func pseudoAttacks(kind PieceKind, sq Square, color Color, sliderOcc, pawnOcc Bitboard) Bitboard {
	switch kind {
	case King:
		return kingMoves[sq]
	case Knight:
		return knightMoves[sq]
	case Rook:
		return rookAttacks(sq, sliderOcc)
	case Bishop:
		return bishopAttacks(sq, sliderOcc)
	case Queen:
		return queenAttacks(sq, sliderOcc)
	case Pawn:
		return pawnLookup(sq, color, pawnOcc)
	default:
		return 0
	}
}

// advanceToNextSourceSquare moves the cursor to the next own-occupied
// square (possibly advancing piece kind) that has at least one pseudo
// target, populating curTargets. Returns false once every piece kind
// through Queen has been exhausted.
func (g *MoveGen) advanceToNextSourceSquare() bool {
	for {
		g.srcSquare++
		if g.srcSquare >= 64 {
			g.srcSquare = 0
			g.pieceKind++
			if g.pieceKind > Queen {
				return false
			}
		}
		if g.board.Pieces[g.pieceKind]&g.ownOcc&squareBit(g.srcSquare) == 0 {
			continue
		}
		targets := pseudoAttacks(g.pieceKind, g.srcSquare, g.color, g.sliderOcc, g.pawnOcc) & g.targetMask
		if targets == 0 {
			continue
		}
		g.curTargets = targets
		g.curPromotion = NoPieceKind
		return true
	}
}

// nextNormalCandidate returns the next raw (src, dst, promotion)
// candidate in normal mode, or ok=false once normal mode is exhausted.
// A promoting destination is returned once per promotion kind in
// promotionOrder before the destination bit is actually popped.
func (g *MoveGen) nextNormalCandidate() (src, dst Square, isPromotion bool, promoteKind PieceKind, ok bool) {
	for {
		if g.curTargets == 0 {
			if !g.advanceToNextSourceSquare() {
				return 0, 0, false, 0, false
			}
		}
		dst = g.curTargets.LowestBit()
		if g.pieceKind == Pawn && (dst.Rank() == 0 || dst.Rank() == 7) {
			if g.curPromotion == NoPieceKind {
				g.curPromotion = promotionOrder[0]
			}
			promoteKind = g.curPromotion
			next, wrapped := nextPromotion(g.curPromotion)
			if wrapped {
				g.curTargets.PopLowestBit()
				g.curPromotion = NoPieceKind
			} else {
				g.curPromotion = next
			}
			return g.srcSquare, dst, true, promoteKind, true
		}
		g.curTargets.PopLowestBit()
		return g.srcSquare, dst, false, NoPieceKind, true
	}
}

// tryCastle attempts to construct the king- or queen-side castle for
// the side to move, checking the castling right, an empty path between
// king and rook, and that none of the three squares the king crosses
// (including its origin and destination) are attacked.
func (g *MoveGen) tryCastle(kingside bool) (Move, bool) {
	ks, qs := rightsFor(g.color)
	right := qs
	if kingside {
		right = ks
	}
	if !g.board.CanCastle(right) {
		return MoveEnd, false
	}

	rank := homeRank(g.color)
	kingSrc := SquareFromFileRank(4, rank)
	var kingDst Square
	var betweenFiles, checkFiles []int
	if kingside {
		kingDst = SquareFromFileRank(6, rank)
		betweenFiles = []int{5, 6}
		checkFiles = []int{4, 5, 6}
	} else {
		kingDst = SquareFromFileRank(2, rank)
		betweenFiles = []int{1, 2, 3}
		checkFiles = []int{4, 3, 2}
	}

	for _, f := range betweenFiles {
		if _, occ := g.board.ColorOn(SquareFromFileRank(f, rank)); occ {
			return MoveEnd, false
		}
	}
	for _, f := range checkFiles {
		if IsSquareAttacked(g.board, SquareFromFileRank(f, rank), g.opp) != 0 {
			return MoveEnd, false
		}
	}

	mv := NewMoveFromSquares(g.board, kingSrc, kingDst, false, NoPieceKind)
	if mv == MoveEnd {
		return MoveEnd, false
	}
	return mv, true
}

// nextInternal drives the four-mode cursor until it yields a legal
// move or reaches modeEnd. When keep is false, a candidate move is
// applied, tested for check, and unmade before returning (the board is
// left exactly as given). When keep is true, a yielded move is left
// applied; the caller must UnmakeMove before calling Next/NextKeeping
// again.
func (g *MoveGen) nextInternal(keep bool) Move {
	for {
		switch g.mode {
		case modeNormal:
			src, dst, isPromotion, promoteKind, ok := g.nextNormalCandidate()
			if !ok {
				g.mode = modeCastleKing
				continue
			}
			mv := NewMoveFromSquares(g.board, src, dst, isPromotion, promoteKind)
			if mv == MoveEnd {
				continue
			}
			MakeMove(g.board, mv)
			if InCheck(g.board, g.color) {
				UnmakeMove(g.board, mv)
				continue
			}
			if !keep {
				UnmakeMove(g.board, mv)
			}
			g.hitMove = true
			return mv
		case modeCastleKing, modeCastleQueen:
			kingside := g.mode == modeCastleKing
			mv, ok := g.tryCastle(kingside)
			if kingside {
				g.mode = modeCastleQueen
			} else {
				g.mode = modeEnd
			}
			if !ok {
				continue
			}
			if keep {
				MakeMove(g.board, mv)
			}
			g.hitMove = true
			return mv
		case modeEnd:
			if g.done == notYetDone {
				if g.hitMove {
					g.done = NormalDone
				} else if InCheck(g.board, g.color) {
					g.done = CheckmateDone
				} else {
					g.done = StalemateDone
				}
			}
			return MoveEnd
		default:
			return MoveEnd
		}
	}
}

// Next returns the next legal move, or MoveEnd once exhausted. The
// board is left exactly as it was given: applying and testing a
// candidate never leaves a visible mutation behind.
func (g *MoveGen) Next() Move { return g.nextInternal(false) }

// NextKeeping is like Next but leaves the board in the post-move state
// when it yields a move; the caller must UnmakeMove that move before
// calling Next/NextKeeping again.
func (g *MoveGen) NextKeeping() Move { return g.nextInternal(true) }

// IsCheckmate reports whether the position was checkmate. It panics if
// called before the enumerator has been run to exhaustion (MoveEnd).
func (g *MoveGen) IsCheckmate() bool {
	if g.done == notYetDone {
		panic("chesscore: IsCheckmate called before MoveGen exhaustion")
	}
	return g.done == CheckmateDone
}

// IsStalemate reports whether the position was stalemate. It panics if
// called before the enumerator has been run to exhaustion (MoveEnd).
func (g *MoveGen) IsStalemate() bool {
	if g.done == notYetDone {
		panic("chesscore: IsStalemate called before MoveGen exhaustion")
	}
	return g.done == StalemateDone
}

// IsCheckmate is a convenience wrapper running a full enumerator to
// exhaustion.
func (b *Board) IsCheckmate() bool {
	g := NewMoveGen(b)
	for g.Next() != MoveEnd {
	}
	return g.IsCheckmate()
}

// IsStalemate is a convenience wrapper running a full enumerator to
// exhaustion.
func (b *Board) IsStalemate() bool {
	g := NewMoveGen(b)
	for g.Next() != MoveEnd {
	}
	return g.IsStalemate()
}

// IsLegalOn reports whether m is among board's legal moves.
func (m Move) IsLegalOn(board *Board) bool {
	g := NewMoveGen(board)
	for {
		mv := g.Next()
		if mv == MoveEnd {
			return false
		}
		if mv == m {
			return true
		}
	}
}
