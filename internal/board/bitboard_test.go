package board

import "testing"

// mapCells is the naive reference: walk all 64 cells and move each set bit
// to wherever the coordinate remapping sends it.
func mapCells(b Bitboard, f func(rank, file int) (int, int)) Bitboard {
	var out Bitboard
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			if b.IsSet(NewSquare(file, rank)) {
				nr, nf := f(rank, file)
				out = out.Set(NewSquare(nf, nr))
			}
		}
	}
	return out
}

// sampleMasks covers every single-bit mask plus a handful of structured and
// irregular masks.
func sampleMasks() []Bitboard {
	masks := []Bitboard{
		0,
		Cross,
		FileA, FileD, FileH,
		Rank1, Rank4, Rank8,
		0x0123456789ABCDEF,
		0x8000000000000001,
		0x00FF00FF00FF00FF,
		0x55AA55AA55AA55AA,
	}
	for sq := A1; sq <= H8; sq++ {
		masks = append(masks, SquareBB(sq))
	}
	return masks
}

func TestTransformsMatchGridSemantics(t *testing.T) {
	tests := []struct {
		name  string
		fast  func(Bitboard) Bitboard
		remap func(rank, file int) (int, int)
	}{
		{"FlipVertical", Bitboard.FlipVertical, func(r, f int) (int, int) { return 7 - r, f }},
		{"FlipHorizontal", Bitboard.FlipHorizontal, func(r, f int) (int, int) { return r, 7 - f }},
		{"FlipDiagonal", Bitboard.FlipDiagonal, func(r, f int) (int, int) { return f, r }},
		{"FlipAntiDiagonal", Bitboard.FlipAntiDiagonal, func(r, f int) (int, int) { return 7 - f, 7 - r }},
		{"Rotate90", Bitboard.Rotate90, func(r, f int) (int, int) { return 7 - f, r }},
		{"Rotate180", Bitboard.Rotate180, func(r, f int) (int, int) { return 7 - r, 7 - f }},
		{"Rotate270", Bitboard.Rotate270, func(r, f int) (int, int) { return f, 7 - r }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, m := range sampleMasks() {
				got := tc.fast(m)
				want := mapCells(m, tc.remap)
				if got != want {
					t.Errorf("%s(%#016x) = %#016x, want %#016x", tc.name, uint64(m), uint64(got), uint64(want))
				}
			}
		})
	}
}

func TestFlipsAreInvolutions(t *testing.T) {
	flips := []struct {
		name string
		f    func(Bitboard) Bitboard
	}{
		{"FlipVertical", Bitboard.FlipVertical},
		{"FlipHorizontal", Bitboard.FlipHorizontal},
		{"FlipDiagonal", Bitboard.FlipDiagonal},
		{"FlipAntiDiagonal", Bitboard.FlipAntiDiagonal},
		{"Rotate180", Bitboard.Rotate180},
	}

	for _, tc := range flips {
		t.Run(tc.name, func(t *testing.T) {
			for _, m := range sampleMasks() {
				if got := tc.f(tc.f(m)); got != m {
					t.Errorf("%s applied twice: %#016x -> %#016x", tc.name, uint64(m), uint64(got))
				}
			}
		})
	}
}

func TestRotationComposition(t *testing.T) {
	for _, m := range sampleMasks() {
		if got := m.Rotate90().Rotate90(); got != m.Rotate180() {
			t.Errorf("Rotate90 twice != Rotate180 for %#016x", uint64(m))
		}
		if got := m.Rotate90().Rotate270(); got != m {
			t.Errorf("Rotate90 then Rotate270 != identity for %#016x", uint64(m))
		}
		if got := m.Rotate90().Rotate90().Rotate90().Rotate90(); got != m {
			t.Errorf("Rotate90 four times != identity for %#016x", uint64(m))
		}
	}
}

func TestBitOperations(t *testing.T) {
	var b Bitboard

	b = b.Set(D4)
	if !b.IsSet(D4) {
		t.Error("Set(D4) did not set the bit")
	}
	if b.IsSet(D5) {
		t.Error("Set(D4) set an unrelated bit")
	}

	b = b.Toggle(D4)
	if b.IsSet(D4) {
		t.Error("Toggle on a set bit did not clear it")
	}
	b = b.Toggle(D4)
	if !b.IsSet(D4) {
		t.Error("Toggle twice did not restore the bit")
	}

	b = b.Clear(D4)
	if b.IsSet(D4) {
		t.Error("Clear did not clear the bit")
	}
	// Clearing an already clear bit is a no-op.
	if got := b.Clear(D4); got != b {
		t.Error("Clear on a clear bit changed the mask")
	}
}

func TestPopCountAndIteration(t *testing.T) {
	b := SquareBB(A1) | SquareBB(E4) | SquareBB(H8)

	if got := b.PopCount(); got != 3 {
		t.Errorf("PopCount = %d, want 3", got)
	}
	if got := b.LSB(); got != A1 {
		t.Errorf("LSB = %v, want a1", got)
	}

	want := []Square{A1, E4, H8}
	got := b.Squares()
	if len(got) != len(want) {
		t.Fatalf("Squares returned %d squares, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Squares[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	var visited []Square
	b.ForEach(func(sq Square) { visited = append(visited, sq) })
	if len(visited) != 3 {
		t.Errorf("ForEach visited %d squares, want 3", len(visited))
	}

	if got := Bitboard(0).LSB(); got != NoSquare {
		t.Errorf("LSB of empty bitboard = %v, want NoSquare", got)
	}
}
