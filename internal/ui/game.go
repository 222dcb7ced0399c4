package ui

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/hailam/solibored/internal/board"
	"github.com/hailam/solibored/internal/storage"
)

// Screen layout constants.
const (
	SquareSize   = 72
	BoardSize    = SquareSize * 8
	StatusHeight = 56
	ScreenWidth  = BoardSize
	ScreenHeight = BoardSize + StatusHeight
)

// Game is the top-level Ebitengine game: a peg solitaire board
// viewer/editor. Clicking a playable cell toggles its peg; keys apply the
// eight board symmetries. There are no move rules here, only occupancy
// edits through the board API.
type Game struct {
	board    board.Board
	removals int
	renderer *Renderer
	input    *InputHandler
	store    *storage.Storage
	status   string
}

// NewGame creates the game, restoring the saved position if one exists.
func NewGame() *Game {
	g := &Game{
		board:    board.New(),
		renderer: NewRenderer(BoardSize, SquareSize),
		input:    NewInputHandler(),
		status:   "click a cell to toggle a peg",
	}

	store, err := storage.Open()
	if err != nil {
		log.Printf("storage unavailable, save/load disabled: %v", err)
		return g
	}
	g.store = store

	b, removals, err := store.LoadBoard()
	if err != nil {
		log.Printf("failed to load saved position: %v", err)
		return g
	}
	g.board = b
	g.removals = removals
	return g
}

// Update handles one frame of input.
func (g *Game) Update() error {
	g.input.Update()

	if g.input.IsLeftJustPressed() {
		x, y := g.input.MousePosition()
		if sq := g.renderer.ScreenToSquare(x, y); sq != board.NoSquare {
			g.toggleCell(sq)
		}
	}

	switch {
	case IsKeyJustPressed(ebiten.KeyV):
		g.board.FlipVertical()
		g.status = "flipped vertically"
	case IsKeyJustPressed(ebiten.KeyH):
		g.board.FlipHorizontal()
		g.status = "flipped horizontally"
	case IsKeyJustPressed(ebiten.KeyD):
		g.board.FlipDiagonal()
		g.status = "flipped across a1-h8"
	case IsKeyJustPressed(ebiten.KeyA):
		g.board.FlipAntiDiagonal()
		g.status = "flipped across h1-a8"
	case IsKeyJustPressed(ebiten.KeyR):
		g.board.Rotate90()
		g.status = "rotated 90"
	case IsKeyJustPressed(ebiten.KeyT):
		g.board.Rotate180()
		g.status = "rotated 180"
	case IsKeyJustPressed(ebiten.KeyY):
		g.board.Rotate270()
		g.status = "rotated 270"
	case IsKeyJustPressed(ebiten.KeyN):
		g.board = board.New()
		g.removals = 0
		g.status = "new board"
	case IsKeyJustPressed(ebiten.KeyE):
		g.board = board.Empty()
		g.removals = 0
		g.status = "board cleared"
	case IsKeyJustPressed(ebiten.KeyS):
		g.save()
	case IsKeyJustPressed(ebiten.KeyL):
		g.load()
	}

	return nil
}

// toggleCell removes an occupied cell or occupies an empty one. Occupy is
// a silent no-op outside the cross, so clicks there change nothing.
func (g *Game) toggleCell(sq board.Square) {
	if g.board.OccupiedAt(sq) {
		g.board.RemoveAt(sq)
		g.removals++
		g.status = fmt.Sprintf("removed %v", sq)
		return
	}
	g.board.Occupy(sq)
	if g.board.OccupiedAt(sq) {
		g.status = fmt.Sprintf("occupied %v", sq)
	}
}

func (g *Game) save() {
	if g.store == nil {
		g.status = "storage unavailable"
		return
	}
	if err := g.store.SaveBoard(g.board, g.removals); err != nil {
		log.Printf("save failed: %v", err)
		g.status = "save failed"
		return
	}
	if err := g.store.RecordSession(g.board.Count(), g.removals); err != nil {
		log.Printf("failed to record session: %v", err)
	}
	g.status = "position saved"
}

func (g *Game) load() {
	if g.store == nil {
		g.status = "storage unavailable"
		return
	}
	b, removals, err := g.store.LoadBoard()
	if err != nil {
		log.Printf("load failed: %v", err)
		g.status = "load failed"
		return
	}
	g.board = b
	g.removals = removals
	g.status = "position loaded"
}

// Draw renders one frame.
func (g *Game) Draw(screen *ebiten.Image) {
	theme := g.renderer.Theme()
	screen.Fill(theme.Background)

	hover := g.renderer.ScreenToSquare(g.input.MousePosition())
	g.renderer.DrawBoard(screen, hover)
	g.renderer.DrawPegs(screen, &g.board)

	g.drawStatus(screen)
}

// drawStatus renders the peg count, the last action and the key help.
func (g *Game) drawStatus(screen *ebiten.Image) {
	theme := g.renderer.Theme()

	if face := GetBoldFace(); face != nil {
		op := &text.DrawOptions{}
		op.GeoM.Translate(8, float64(BoardSize)+6)
		op.ColorScale.ScaleWithColor(theme.TextColor)
		text.Draw(screen, fmt.Sprintf("%d pegs - %s", g.board.Count(), g.status), face, op)
	}

	if face := GetRegularFace(); face != nil {
		op := &text.DrawOptions{}
		op.GeoM.Translate(8, float64(BoardSize)+28)
		op.ColorScale.ScaleWithColor(theme.DimText)
		text.Draw(screen, "V/H/D/A flip  R/T/Y rotate  N new  E empty  S save  L load", face, op)
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
