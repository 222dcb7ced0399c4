package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/solibored/internal/board"
)

// Theme defines the color scheme for the board.
type Theme struct {
	Background color.RGBA
	CrossCell  color.RGBA
	Hole       color.RGBA
	HoverCell  color.RGBA
	TextColor  color.RGBA
	DimText    color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		Background: color.RGBA{40, 44, 52, 255},    // Dark gray
		CrossCell:  color.RGBA{181, 136, 99, 255},  // Brown
		Hole:       color.RGBA{120, 86, 58, 255},   // Darker brown
		HoverCell:  color.RGBA{247, 247, 105, 100}, // Yellow highlight
		TextColor:  color.RGBA{220, 220, 220, 255}, // Light gray
		DimText:    color.RGBA{150, 150, 150, 255}, // Medium gray
	}
}

// Renderer handles all drawing operations.
type Renderer struct {
	sprites    *SpriteManager
	theme      *Theme
	boardSize  int
	squareSize int
}

// NewRenderer creates a new renderer.
func NewRenderer(boardSize, squareSize int) *Renderer {
	return &Renderer{
		sprites:    NewSpriteManager(squareSize),
		theme:      DefaultTheme(),
		boardSize:  boardSize,
		squareSize: squareSize,
	}
}

// DrawBoard draws the playable cells of the cross. Cells outside the
// cross are left as background; they are not part of the playing surface.
func (r *Renderer) DrawBoard(screen *ebiten.Image, hover board.Square) {
	board.Cross.ForEach(func(sq board.Square) {
		x, y := r.SquareToScreen(sq)
		vector.DrawFilledRect(screen, float32(x), float32(y),
			float32(r.squareSize), float32(r.squareSize), r.theme.CrossCell, false)

		// Hole marker centred in the cell.
		cx := float32(x) + float32(r.squareSize)/2
		cy := float32(y) + float32(r.squareSize)/2
		vector.DrawFilledCircle(screen, cx, cy, float32(r.squareSize)*0.32, r.theme.Hole, false)
	})

	if hover != board.NoSquare && board.SquareBB(hover)&board.Cross != 0 {
		x, y := r.SquareToScreen(hover)
		vector.DrawFilledRect(screen, float32(x), float32(y),
			float32(r.squareSize), float32(r.squareSize), r.theme.HoverCell, false)
	}
}

// DrawPegs draws a peg sprite on every occupied cell.
func (r *Renderer) DrawPegs(screen *ebiten.Image, b *board.Board) {
	for sq := board.A1; sq <= board.H8; sq++ {
		if !b.OccupiedAt(sq) {
			continue
		}
		x, y := r.SquareToScreen(sq)
		r.sprites.DrawPegAt(screen, x, y)
	}
}

// SquareToScreen converts a board square to screen coordinates.
func (r *Renderer) SquareToScreen(sq board.Square) (int, int) {
	file := sq.File()
	rank := sq.Rank()
	x := file * r.squareSize
	y := (7 - rank) * r.squareSize // Flip so rank 1 is at bottom
	return x, y
}

// ScreenToSquare converts screen coordinates to a board square.
func (r *Renderer) ScreenToSquare(x, y int) board.Square {
	if x < 0 || x >= r.boardSize || y < 0 || y >= r.boardSize {
		return board.NoSquare
	}
	file := x / r.squareSize
	rank := 7 - (y / r.squareSize) // Flip so rank 1 is at bottom
	return board.NewSquare(file, rank)
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}
