package chesscore

import "strings"

// Move is an opaque 64-bit value carrying enough information to both
// apply and reverse itself. Bit layout:
//
//	bits 0..15   snapshot of the board's low-order flags before the move
//	bits 16..21  source square
//	bits 22..27  destination square
//	bit  28      is-promotion
//	bits 29..31  promotion piece kind
//	bit  32      is-capture
//	bits 33..35  captured piece kind
//	bits 36..41  captured piece square (differs from destination only
//	             for en passant)
//	bit  42      is-castle
type Move uint64

const (
	moveShiftLowFlags    = 0
	moveShiftSrc         = 16
	moveShiftDst         = 22
	moveShiftIsPromote   = 28
	moveShiftPromoteKind = 29
	moveShiftIsCapture   = 32
	moveShiftCaptureKind = 33
	moveShiftCaptureSq   = 36
	moveShiftIsCastle    = 42

	moveMaskSquare = 0x3f
	moveMaskKind   = 0x7
)

// MoveEnd is the sentinel returned when a move cannot be constructed
// and the value yielded once a MoveGen is exhausted.
const MoveEnd Move = ^Move(0)

func bit(shift uint) Move { return 1 << shift }

// NewMoveFromSquares infers capture, en-passant, castle, and captured
// metadata from board and packs a Move. Returns MoveEnd if dst already
// holds a piece of the side to move, or if the move looks like an
// en-passant capture but no opposing pawn actually sits at the implied
// capture square.
func NewMoveFromSquares(b *Board, src, dst Square, isPromotion bool, promoteKind PieceKind) Move {
	moverKind, moverColor, ok := b.PieceOn(src)
	if !ok {
		return MoveEnd
	}
	opp := moverColor.Opponent()

	if dstColor, occ := b.ColorOn(dst); occ && dstColor == moverColor {
		return MoveEnd
	}

	captureSq := dst
	isCapture := false
	if _, _, occ := b.PieceOn(dst); occ {
		isCapture = true
	} else if moverKind == Pawn {
		if ep, has := b.EnPassantTarget(); has && dst == ep {
			captureSq = SquareFromFileRank(dst.File(), src.Rank())
			capKind, capColor, capOK := b.PieceOn(captureSq)
			if !capOK || capKind != Pawn || capColor != opp {
				return MoveEnd
			}
			isCapture = true
		}
	}

	var capKind PieceKind
	if isCapture {
		capKind, _, _ = b.PieceOn(captureSq)
	}

	isCastle := moverKind == King && (dst.File()-src.File() == 2 || src.File()-dst.File() == 2)

	var m Move
	m |= Move(b.lowFlags()) << moveShiftLowFlags
	m |= Move(src&moveMaskSquare) << moveShiftSrc
	m |= Move(dst&moveMaskSquare) << moveShiftDst
	if isPromotion {
		m |= bit(moveShiftIsPromote)
		m |= Move(promoteKind&moveMaskKind) << moveShiftPromoteKind
	}
	if isCapture {
		m |= bit(moveShiftIsCapture)
		m |= Move(capKind&moveMaskKind) << moveShiftCaptureKind
		m |= Move(captureSq&moveMaskSquare) << moveShiftCaptureSq
	}
	if isCastle {
		m |= bit(moveShiftIsCastle)
	}
	return m
}

func (m Move) field(shift uint, mask uint64) uint64 { return (uint64(m) >> shift) & mask }

// LowFlags returns the pre-move snapshot of the board's low-order flags.
func (m Move) LowFlags() uint32 { return uint32(m.field(moveShiftLowFlags, flagsLowMask)) }

// Src returns the source square.
func (m Move) Src() Square { return Square(m.field(moveShiftSrc, moveMaskSquare)) }

// Dst returns the destination square.
func (m Move) Dst() Square { return Square(m.field(moveShiftDst, moveMaskSquare)) }

// IsPromotion reports whether this move promotes a pawn.
func (m Move) IsPromotion() bool { return m&bit(moveShiftIsPromote) != 0 }

// PromotionKind returns the promotion piece kind (meaningful only when
// IsPromotion is true).
func (m Move) PromotionKind() PieceKind { return PieceKind(m.field(moveShiftPromoteKind, moveMaskKind)) }

// IsCapture reports whether this move captures a piece.
func (m Move) IsCapture() bool { return m&bit(moveShiftIsCapture) != 0 }

// CaptureKind returns the captured piece kind (meaningful only when
// IsCapture is true).
func (m Move) CaptureKind() PieceKind { return PieceKind(m.field(moveShiftCaptureKind, moveMaskKind)) }

// CaptureSquare returns the captured piece's square, which differs from
// Dst only for an en-passant capture.
func (m Move) CaptureSquare() Square { return Square(m.field(moveShiftCaptureSq, moveMaskSquare)) }

// IsCastle reports whether this move is a castle.
func (m Move) IsCastle() bool { return m&bit(moveShiftIsCastle) != 0 }

// IsEnPassant reports whether this move is specifically an en-passant
// capture (a capture whose capture square differs from its destination).
func (m Move) IsEnPassant() bool { return m.IsCapture() && m.CaptureSquare() != m.Dst() }

func squareString(sq Square) string {
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

var promotionLetters = map[PieceKind]byte{
	Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q',
}

// String renders the move in pure algebraic notation (e.g. "e2e4",
// "e7e8q").
func (m Move) String() string {
	if m == MoveEnd {
		return "(none)"
	}
	var sb strings.Builder
	sb.WriteString(squareString(m.Src()))
	sb.WriteString(squareString(m.Dst()))
	if m.IsPromotion() {
		if ch, ok := promotionLetters[m.PromotionKind()]; ok {
			sb.WriteByte(ch)
		}
	}
	return sb.String()
}
