package board

import (
	"fmt"
	"math/bits"
)

// Bitboard represents a 64-bit board where each bit corresponds to a square.
// Bit 0 = A1, Bit 7 = H1, Bit 56 = A8, Bit 63 = H8 (Little-Endian Rank-File Mapping).
type Bitboard uint64

// File masks
const (
	FileA Bitboard = 0x0101010101010101
	FileB Bitboard = 0x0202020202020202
	FileC Bitboard = 0x0404040404040404
	FileD Bitboard = 0x0808080808080808
	FileE Bitboard = 0x1010101010101010
	FileF Bitboard = 0x2020202020202020
	FileG Bitboard = 0x4040404040404040
	FileH Bitboard = 0x8080808080808080
)

// Rank masks
const (
	Rank1 Bitboard = 0x00000000000000FF
	Rank2 Bitboard = 0x000000000000FF00
	Rank3 Bitboard = 0x0000000000FF0000
	Rank4 Bitboard = 0x00000000FF000000
	Rank5 Bitboard = 0x000000FF00000000
	Rank6 Bitboard = 0x0000FF0000000000
	Rank7 Bitboard = 0x00FF000000000000
	Rank8 Bitboard = 0xFF00000000000000
)

// FileMask returns the file mask for a given file (0-7).
var FileMask = [8]Bitboard{FileA, FileB, FileC, FileD, FileE, FileF, FileG, FileH}

// RankMask returns the rank mask for a given rank (0-7).
var RankMask = [8]Bitboard{Rank1, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8}

// SquareBB returns a bitboard with only the given square set.
func SquareBB(sq Square) Bitboard {
	return 1 << sq
}

// Set sets a bit at the given square.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | (1 << sq)
}

// Clear clears a bit at the given square. No-op if already clear.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ (1 << sq)
}

// IsSet returns true if the bit at the given square is set.
func (b Bitboard) IsSet(sq Square) bool {
	return b&(1<<sq) != 0
}

// Toggle flips the bit at the given square.
func (b Bitboard) Toggle(sq Square) Bitboard {
	return b ^ (1 << sq)
}

// PopCount returns the number of set bits (population count).
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the least significant bit (lowest square index).
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLSB removes and returns the least significant bit.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	*b &= *b - 1 // Clear the LSB
	return sq
}

// More returns true if there are any bits set.
func (b Bitboard) More() bool {
	return b != 0
}

// IsEmpty returns true if no bits are set.
func (b Bitboard) IsEmpty() bool {
	return b == 0
}

// Geometric transforms. Each treats the 64-bit mask as a literal 8x8 grid
// of booleans and returns the remapped grid.

// FlipVertical mirrors the bitboard vertically (rank 1 <-> rank 8,
// files unchanged). A byte-order reversal of the eight rank bytes.
func (b Bitboard) FlipVertical() Bitboard {
	return Bitboard(bits.ReverseBytes64(uint64(b)))
}

// Rotate180 rotates the bitboard 180 degrees. Bit i maps to bit 63-i,
// which is a full bit-order reversal of the mask.
func (b Bitboard) Rotate180() Bitboard {
	return Bitboard(bits.Reverse64(uint64(b)))
}

// FlipHorizontal mirrors the bitboard horizontally (file a <-> file h,
// ranks unchanged). Equivalent to a bit-order reversal within each rank byte.
func (b Bitboard) FlipHorizontal() Bitboard {
	return b.Rotate180().FlipVertical()
}

// FlipDiagonal mirrors the bitboard across the a1-h8 diagonal, i.e. the
// bit-matrix transpose: cell (rank r, file f) maps to (rank f, file r).
// Implemented as the classic three-step masked delta swap.
func (b Bitboard) FlipDiagonal() Bitboard {
	x := uint64(b)
	t := (x ^ (x << 28)) & 0x0f0f0f0f00000000
	x ^= t ^ (t >> 28)
	t = (x ^ (x << 14)) & 0x3333000033330000
	x ^= t ^ (t >> 14)
	t = (x ^ (x << 7)) & 0x5500550055005500
	x ^= t ^ (t >> 7)
	return Bitboard(x)
}

// FlipAntiDiagonal mirrors the bitboard across the h1-a8 diagonal:
// cell (r, f) maps to (7-f, 7-r). The transpose composed with a half turn.
func (b Bitboard) FlipAntiDiagonal() Bitboard {
	return b.FlipDiagonal().Rotate180()
}

// Rotate90 rotates the bitboard 90 degrees clockwise
// (transpose, then vertical mirror).
func (b Bitboard) Rotate90() Bitboard {
	return b.FlipDiagonal().FlipVertical()
}

// Rotate270 rotates the bitboard 270 degrees clockwise; the inverse of
// Rotate90 (vertical mirror, then transpose).
func (b Bitboard) Rotate270() Bitboard {
	return b.FlipVertical().FlipDiagonal()
}

// String returns a visual representation of the bitboard.
func (b Bitboard) String() string {
	s := ""
	for rank := 7; rank >= 0; rank-- {
		s += fmt.Sprintf("%d ", rank+1)
		for file := 0; file < 8; file++ {
			sq := NewSquare(file, rank)
			if b.IsSet(sq) {
				s += "1 "
			} else {
				s += ". "
			}
		}
		s += "\n"
	}
	s += "  a b c d e f g h\n"
	return s
}

// ForEach calls the function for each set square.
func (b Bitboard) ForEach(f func(Square)) {
	for b != 0 {
		sq := b.PopLSB()
		f(sq)
	}
}

// Squares returns a slice of all squares that are set.
func (b Bitboard) Squares() []Square {
	squares := make([]Square, 0, b.PopCount())
	for b != 0 {
		squares = append(squares, b.PopLSB())
	}
	return squares
}
