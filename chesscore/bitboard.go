// Package chesscore implements a bit-parallel chess board representation,
// magic-bitboard attack tables, reversible move make/unmake, and a
// streaming legal-move enumerator.
package chesscore

import "math/bits"

// Bitboard is a 64-bit word with one bit per board square. Bit s set
// means square s has the property this bitboard represents.
type Bitboard uint64

func squareBit(sq Square) Bitboard { return Bitboard(1) << uint(sq) }

func (b Bitboard) test(sq Square) bool { return b&squareBit(sq) != 0 }
func (b *Bitboard) set(sq Square)      { *b |= squareBit(sq) }
func (b *Bitboard) clear(sq Square)    { *b &^= squareBit(sq) }

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int { return bits.OnesCount64(uint64(b)) }

// LowestBit returns the index of the lowest set bit, or -1 if empty.
func (b Bitboard) LowestBit() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLowestBit removes and returns the lowest set bit's square.
func (b *Bitboard) PopLowestBit() Square {
	sq := b.LowestBit()
	*b &= *b - 1
	return sq
}
