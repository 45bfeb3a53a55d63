package chesscore

// pawnAttackOrigins returns the squares a pawn of attackerColor would
// have to stand on to capture onto sq (i.e. the reverse of a pawn's
// diagonal capture offsets), clipped to the board.
func pawnAttackOrigins(attackerColor Color, sq Square) Bitboard {
	dir := 1
	if attackerColor == Black {
		dir = -1
	}
	file, rank := sq.File(), sq.Rank()
	originRank := rank - dir
	if originRank < 0 || originRank >= 8 {
		return 0
	}
	var origins Bitboard
	if file > 0 {
		origins.set(SquareFromFileRank(file-1, originRank))
	}
	if file < 7 {
		origins.set(SquareFromFileRank(file+1, originRank))
	}
	return origins
}

// IsSquareAttacked returns the union bitboard of attacker-color pieces
// that attack sq (zero if none). It treats sq as if it held a piece of
// each kind for the defending side and intersects the resulting
// pseudo-attack set with the attacker's actual pieces of that kind, per
// the standard "superpiece" attacked-square test.
func IsSquareAttacked(b *Board, sq Square, attacker Color) Bitboard {
	occ := b.sliderOccupancy()
	var attackers Bitboard
	attackers |= kingMoves[sq] & b.Pieces[King] & b.Players[attacker]
	attackers |= knightMoves[sq] & b.Pieces[Knight] & b.Players[attacker]
	attackers |= pawnAttackOrigins(attacker, sq) & b.Pieces[Pawn] & b.Players[attacker]
	rq := (b.Pieces[Rook] | b.Pieces[Queen]) & b.Players[attacker]
	if rq != 0 {
		attackers |= rookAttacks(sq, occ) & rq
	}
	bq := (b.Pieces[Bishop] | b.Pieces[Queen]) & b.Players[attacker]
	if bq != 0 {
		attackers |= bishopAttacks(sq, occ) & bq
	}
	return attackers
}

// InCheck reports whether color's king is currently attacked.
func InCheck(b *Board, color Color) bool {
	kingBB := b.Pieces[King] & b.Players[color]
	if kingBB == 0 {
		return false
	}
	sq := kingBB.LowestBit()
	return IsSquareAttacked(b, sq, color.Opponent()) != 0
}
