package chesscore

// MakeMove applies m to b unconditionally: it does not test whether the
// resulting position leaves the mover's king in check. Legality is the
// move enumerator's responsibility (see MoveGen), not this mutator's —
// callers that need a legality-checked apply should go through
// MoveGen or Move.IsLegalOn.
//
// MakeMove panics if m's flag snapshot does not match b's current low
// flags: that mismatch means m was constructed against a different
// position than the one it is now being applied to, which is a
// programmer error, not a recoverable one.
func MakeMove(b *Board, m Move) {
	if m.LowFlags() != b.lowFlags() {
		panic("chesscore: MakeMove: move was not constructed against this board position")
	}

	moverColor := b.SideToMove()
	src, dst := m.Src(), m.Dst()

	var moverKind PieceKind
	if m.IsCastle() {
		kingside := dst.File() == 6
		rookFrom, rookTo := castleRookSquares(moverColor, kingside)

		b.removePieceAt(src)
		b.placePiece(dst, King, moverColor)
		b.removePieceAt(rookFrom)
		b.placePiece(rookTo, Rook, moverColor)

		ks, qs := rightsFor(moverColor)
		b.clearCastlingRight(ks)
		b.clearCastlingRight(qs)
		moverKind = King
	} else {
		moverKind, _, _ = b.PieceOn(src)

		if moverKind == King {
			ks, qs := rightsFor(moverColor)
			b.clearCastlingRight(ks)
			b.clearCastlingRight(qs)
		} else if moverKind == Rook {
			clearRookCornerRight(b, moverColor, src)
		}

		if m.IsCapture() {
			capSq := m.CaptureSquare()
			capKind, capColor, _ := b.PieceOn(capSq)
			b.removePieceAt(capSq)
			if capKind == Rook {
				clearRookCornerRight(b, capColor, capSq)
			}
		}

		b.removePieceAt(src)
		destKind := moverKind
		if m.IsPromotion() {
			destKind = m.PromotionKind()
		}
		b.placePiece(dst, destKind, moverColor)
	}

	b.clearEnPassantTarget()
	if !m.IsCastle() && moverKind == Pawn {
		rankDiff := dst.Rank() - src.Rank()
		if rankDiff == 2 || rankDiff == -2 {
			skipped := SquareFromFileRank(src.File(), (src.Rank()+dst.Rank())/2)
			b.setEnPassantTarget(skipped)
		}
	}

	if moverColor == Black {
		b.setFullTurnNumber(b.FullTurnNumber() + 1)
	}
	b.setSideToMove(moverColor.Opponent())
}

// UnmakeMove reverses a move previously applied with MakeMove. Calling
// it on any board state other than the immediate result of that
// MakeMove produces undefined results (a contract violation that is not
// checked here beyond what LowFlags restoration catches on the next
// move construction).
func UnmakeMove(b *Board, m Move) {
	moverColor := b.SideToMove().Opponent()
	src, dst := m.Src(), m.Dst()

	if m.IsCastle() {
		kingside := dst.File() == 6
		rookFrom, rookTo := castleRookSquares(moverColor, kingside)

		b.removePieceAt(dst)
		b.placePiece(src, King, moverColor)
		b.removePieceAt(rookTo)
		b.placePiece(rookFrom, Rook, moverColor)
	} else {
		destKind, _, _ := b.PieceOn(dst)
		b.removePieceAt(dst)
		moverKind := destKind
		if m.IsPromotion() {
			moverKind = Pawn
		}
		b.placePiece(src, moverKind, moverColor)

		if m.IsCapture() {
			b.placePiece(m.CaptureSquare(), m.CaptureKind(), moverColor.Opponent())
		}
	}

	if moverColor == Black {
		b.setFullTurnNumber(b.FullTurnNumber() - 1)
	}
	b.setLowFlags(m.LowFlags())
}

// castleRookSquares returns the rook's pre- and post-castle squares for
// a king- or queen-side castle by color.
func castleRookSquares(color Color, kingside bool) (from, to Square) {
	rank := homeRank(color)
	if kingside {
		return SquareFromFileRank(7, rank), SquareFromFileRank(5, rank)
	}
	return SquareFromFileRank(0, rank), SquareFromFileRank(3, rank)
}

// clearRookCornerRight clears color's castling right corresponding to
// its starting-corner rook if sq is that corner, whether the rook left
// from there or was captured there.
func clearRookCornerRight(b *Board, color Color, sq Square) {
	rank := homeRank(color)
	ks, qs := rightsFor(color)
	switch sq {
	case SquareFromFileRank(7, rank):
		b.clearCastlingRight(ks)
	case SquareFromFileRank(0, rank):
		b.clearCastlingRight(qs)
	}
}
