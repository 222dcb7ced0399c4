package board

import (
	"fmt"
	"math/bits"
	"strings"
)

// Cross is the playable region: the 33-cell English peg solitaire cross.
// It occupies the 7x7 window files b-h, ranks 1-7, arms 3 cells wide,
// centred on e4.
//
//	8  . . . . . . . .
//	7  . . . o o o . .
//	6  . . . o o o . .
//	5  . o o o o o o o
//	4  . o o o o o o o
//	3  . o o o o o o o
//	2  . . . o o o . .
//	1  . . . o o o . .
//	   a b c d e f g h
const Cross Bitboard = 0x003838FEFEFE3838

// Center is the middle cell of the cross, empty in the starting layout.
const Center Square = E4

// Board is the set of peg positions on the playing surface.
//
// Invariant: only cells inside Cross are ever occupied. The remaining
// cells of the 8x8 grid are addressable but always read unoccupied.
type Board struct {
	occupied Bitboard
}

// New returns the starting layout: every cross cell occupied except the
// centre (32 pegs).
func New() Board {
	return Board{occupied: Cross.Clear(Center)}
}

// Empty returns a board with no cells occupied.
func Empty() Board {
	return Board{}
}

// FromMask reconstructs a board from a raw occupancy mask, e.g. one read
// back from storage. Bits outside the cross are dropped so the playable
// region invariant holds regardless of the input.
func FromMask(mask uint64) Board {
	return Board{occupied: Bitboard(mask) & Cross}
}

// Mask returns the raw occupancy mask.
func (b *Board) Mask() uint64 {
	return uint64(b.occupied)
}

// Count returns the number of pegs on the board.
func (b *Board) Count() int {
	return b.occupied.PopCount()
}

// OccupiedAt returns true if the cell holds a peg. Total over all 64
// cells; cells outside the cross always report false.
func (b *Board) OccupiedAt(sq Square) bool {
	checkSquare(sq)
	return b.occupied.IsSet(sq)
}

// RemoveAt clears the cell and reports whether a peg was removed.
// Removing from an already empty cell reports false and changes nothing.
func (b *Board) RemoveAt(sq Square) bool {
	checkSquare(sq)
	if !b.occupied.IsSet(sq) {
		return false
	}
	b.occupied = b.occupied.Toggle(sq)
	return true
}

// DiscardAt unconditionally clears the cell.
func (b *Board) DiscardAt(sq Square) {
	checkSquare(sq)
	b.occupied = b.occupied.Clear(sq)
}

// Occupy places a peg on the cell. Cells outside the cross are silently
// ignored: the call neither sets the bit nor alters any other state.
//
// Known ergonomic gap: a rejected Occupy is indistinguishable from an
// accepted one at the call site. Callers that need confirmation should
// check OccupiedAt afterward.
func (b *Board) Occupy(sq Square) {
	checkSquare(sq)
	if SquareBB(sq)&Cross == 0 {
		return
	}
	b.occupied = b.occupied.Set(sq)
}

// checkSquare panics on out-of-range squares. An invalid index is a
// programming error, not a recoverable condition.
func checkSquare(sq Square) {
	if !sq.IsValid() {
		panic(fmt.Sprintf("board: invalid square index %d", sq))
	}
}

// Corrective shifts for the whole-board transforms. The cross occupies a
// 7x7 sub-window of the 8x8 embedding, so a pure grid transform lands the
// playable region on a translated copy of its window; each board transform
// must re-anchor the result onto the original window. The translations
// are derived from the cross mask itself rather than hard-coded.
var (
	shiftFlipVertical     = realignShift(Bitboard.FlipVertical)
	shiftFlipHorizontal   = realignShift(Bitboard.FlipHorizontal)
	shiftFlipDiagonal     = realignShift(Bitboard.FlipDiagonal)
	shiftFlipAntiDiagonal = realignShift(Bitboard.FlipAntiDiagonal)
	shiftRotate90         = realignShift(Bitboard.Rotate90)
	shiftRotate180        = realignShift(Bitboard.Rotate180)
	shiftRotate270        = realignShift(Bitboard.Rotate270)
)

// realignShift solves for the translation that moves the transformed cross
// back onto the untransformed cross. The cross is symmetric about its
// centre under all eight grid transforms, so the transformed mask is an
// exact translate of Cross and the offset between their lowest set bits is
// the whole translation. Positive means shift left.
func realignShift(f func(Bitboard) Bitboard) int {
	moved := f(Cross)
	return bits.TrailingZeros64(uint64(Cross)) - bits.TrailingZeros64(uint64(moved))
}

// shifted translates a mask by n bits, left for positive n.
func shifted(b Bitboard, n int) Bitboard {
	if n >= 0 {
		return b << uint(n)
	}
	return b >> uint(-n)
}

// transform applies a pure grid transform and re-anchors the cross window.
// Kept unexported: an arbitrary f could move occupancy outside the cross.
func (b *Board) transform(f func(Bitboard) Bitboard, realign int) {
	b.occupied = shifted(f(b.occupied), realign)
}

// FlipVertical mirrors the board vertically (top arm <-> bottom arm).
func (b *Board) FlipVertical() {
	b.transform(Bitboard.FlipVertical, shiftFlipVertical)
}

// FlipHorizontal mirrors the board horizontally (left arm <-> right arm).
func (b *Board) FlipHorizontal() {
	b.transform(Bitboard.FlipHorizontal, shiftFlipHorizontal)
}

// FlipDiagonal mirrors the board across the a1-h8 diagonal.
func (b *Board) FlipDiagonal() {
	b.transform(Bitboard.FlipDiagonal, shiftFlipDiagonal)
}

// FlipAntiDiagonal mirrors the board across the h1-a8 diagonal.
func (b *Board) FlipAntiDiagonal() {
	b.transform(Bitboard.FlipAntiDiagonal, shiftFlipAntiDiagonal)
}

// Rotate90 rotates the board 90 degrees clockwise.
func (b *Board) Rotate90() {
	b.transform(Bitboard.Rotate90, shiftRotate90)
}

// Rotate180 rotates the board 180 degrees.
func (b *Board) Rotate180() {
	b.transform(Bitboard.Rotate180, shiftRotate180)
}

// Rotate270 rotates the board 270 degrees clockwise.
func (b *Board) Rotate270() {
	b.transform(Bitboard.Rotate270, shiftRotate270)
}

// String returns the occupancy grid, one character per cell, highest rank
// first: 'o' for a peg, '.' for an empty cell.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteString(fmt.Sprintf("%d ", rank+1))
		for file := 0; file < 8; file++ {
			sq := NewSquare(file, rank)
			if b.occupied.IsSet(sq) {
				sb.WriteString("o ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
