package chesscore

import (
	"errors"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the standard initial chess position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func pieceKindFromChar(ch rune) (PieceKind, Color, bool) {
	switch ch {
	case 'P':
		return Pawn, White, true
	case 'N':
		return Knight, White, true
	case 'B':
		return Bishop, White, true
	case 'R':
		return Rook, White, true
	case 'Q':
		return Queen, White, true
	case 'K':
		return King, White, true
	case 'p':
		return Pawn, Black, true
	case 'n':
		return Knight, Black, true
	case 'b':
		return Bishop, Black, true
	case 'r':
		return Rook, Black, true
	case 'q':
		return Queen, Black, true
	case 'k':
		return King, Black, true
	default:
		return NoPieceKind, White, false
	}
}

func charFromPieceKind(k PieceKind, c Color) byte {
	var ch byte
	switch k {
	case Pawn:
		ch = 'p'
	case Knight:
		ch = 'n'
	case Bishop:
		ch = 'b'
	case Rook:
		ch = 'r'
	case Queen:
		ch = 'q'
	case King:
		ch = 'k'
	default:
		return '?'
	}
	if c == White {
		ch -= 'a' - 'A'
	}
	return ch
}

// FromFEN parses a standard six-field FEN string into a Board. The
// half-move clock is parsed but discarded (the fifty-move rule is not
// enforced). Returns an error if the string
// violates the FEN grammar or the resulting position violates Board's
// invariants.
func FromFEN(fen string) (Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return Board{}, errors.New("chesscore: invalid FEN: not enough fields")
	}

	var b Board

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return Board{}, errors.New("chesscore: invalid FEN: expected 8 ranks")
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			k, c, ok := pieceKindFromChar(ch)
			if !ok {
				return Board{}, errors.New("chesscore: invalid FEN: unrecognized piece character")
			}
			if file >= 8 {
				return Board{}, errors.New("chesscore: invalid FEN: too many squares in rank")
			}
			b.placePiece(SquareFromFileRank(file, rank), k, c)
			file++
		}
		if file != 8 {
			return Board{}, errors.New("chesscore: invalid FEN: rank does not sum to 8 files")
		}
	}

	switch fields[1] {
	case "w":
		b.setSideToMove(White)
	case "b":
		b.setSideToMove(Black)
	default:
		return Board{}, errors.New("chesscore: invalid FEN: side to move must be 'w' or 'b'")
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				b.Flags |= uint32(WhiteKingside) << flagsCastlingShift
			case 'Q':
				b.Flags |= uint32(WhiteQueenside) << flagsCastlingShift
			case 'k':
				b.Flags |= uint32(BlackKingside) << flagsCastlingShift
			case 'q':
				b.Flags |= uint32(BlackQueenside) << flagsCastlingShift
			default:
				return Board{}, errors.New("chesscore: invalid FEN: invalid castling rights character")
			}
		}
	}

	if fields[3] != "-" {
		if len(fields[3]) != 2 {
			return Board{}, errors.New("chesscore: invalid FEN: invalid en-passant square")
		}
		fileCh, rankCh := fields[3][0], fields[3][1]
		if fileCh < 'a' || fileCh > 'h' || rankCh < '1' || rankCh > '8' {
			return Board{}, errors.New("chesscore: invalid FEN: en-passant square out of range")
		}
		b.setEnPassantTarget(SquareFromFileRank(int(fileCh-'a'), int(rankCh-'1')))
	}

	// Field 4 (half-move clock) is parsed-and-discarded, per spec.
	if len(fields) > 4 {
		if _, err := strconv.Atoi(fields[4]); err != nil {
			return Board{}, errors.New("chesscore: invalid FEN: half-move clock is not a number")
		}
	}

	fullmove := 1
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return Board{}, errors.New("chesscore: invalid FEN: full-move number is not a number")
		}
		fullmove = n
	}
	b.setFullTurnNumber(fullmove)

	if !b.Validate() {
		return Board{}, errors.New("chesscore: FEN describes an invalid position")
	}
	return b, nil
}

// ToFEN serializes b to a canonical six-field FEN string. The half-move
// clock is always emitted as 0 (it is not tracked by Board).
func (b *Board) ToFEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := SquareFromFileRank(file, rank)
			k, c, ok := b.PieceOn(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(charFromPieceKind(k, c))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	if b.SideToMove() == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	rights := b.castlingRightsBits()
	if rights == 0 {
		sb.WriteByte('-')
	} else {
		if rights&uint32(WhiteKingside) != 0 {
			sb.WriteByte('K')
		}
		if rights&uint32(WhiteQueenside) != 0 {
			sb.WriteByte('Q')
		}
		if rights&uint32(BlackKingside) != 0 {
			sb.WriteByte('k')
		}
		if rights&uint32(BlackQueenside) != 0 {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')

	if ep, ok := b.EnPassantTarget(); ok {
		sb.WriteByte('a' + byte(ep.File()))
		sb.WriteByte('1' + byte(ep.Rank()))
	} else {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')

	sb.WriteString("0")
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.FullTurnNumber()))
	return sb.String()
}
