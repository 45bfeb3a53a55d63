package chesscore

import "errors"

// MoveToStr renders m in pure algebraic notation. Equivalent to m.String().
func MoveToStr(m Move) string { return m.String() }

func fileWellformed(ch byte) bool {
	return (ch >= 'a' && ch <= 'h') || (ch >= 'A' && ch <= 'H')
}

func rankWellformed(ch byte) bool { return ch >= '1' && ch <= '8' }

func promoteWellformed(ch byte) bool {
	switch ch {
	case 'n', 'b', 'r', 'q':
		return true
	default:
		return false
	}
}

// MoveStrIsWellformed checks the grammar of a pure algebraic move
// string (<file><rank><file><rank>[<promo>]) without requiring it to
// be legal, or even referencing a board at all.
func MoveStrIsWellformed(s string) bool {
	if len(s) != 4 && len(s) != 5 {
		return false
	}
	if !fileWellformed(s[0]) || !rankWellformed(s[1]) {
		return false
	}
	if !fileWellformed(s[2]) || !rankWellformed(s[3]) {
		return false
	}
	if len(s) == 5 && !promoteWellformed(s[4]) {
		return false
	}
	return true
}

// MoveFromStr parses pure algebraic notation and synthesizes the full
// move metadata (capture, en passant, castle) from board. Files accept
// both cases on input; promotion letters are lowercase only.
func MoveFromStr(s string, b *Board) (Move, error) {
	if !MoveStrIsWellformed(s) {
		return MoveEnd, errors.New("chesscore: malformed move string")
	}
	srcFile := lowerFileIndex(s[0])
	srcRank := int(s[1] - '1')
	dstFile := lowerFileIndex(s[2])
	dstRank := int(s[3] - '1')
	src := SquareFromFileRank(srcFile, srcRank)
	dst := SquareFromFileRank(dstFile, dstRank)

	isPromotion := len(s) == 5
	var promoteKind PieceKind
	if isPromotion {
		switch s[4] {
		case 'n':
			promoteKind = Knight
		case 'b':
			promoteKind = Bishop
		case 'r':
			promoteKind = Rook
		case 'q':
			promoteKind = Queen
		}
	}

	m := NewMoveFromSquares(b, src, dst, isPromotion, promoteKind)
	if m == MoveEnd {
		return MoveEnd, errors.New("chesscore: move does not correspond to a piece movement on this board")
	}
	return m, nil
}

func lowerFileIndex(ch byte) int {
	if ch >= 'A' && ch <= 'H' {
		ch += 'a' - 'A'
	}
	return int(ch - 'a')
}
