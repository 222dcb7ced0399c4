// solibored - a peg solitaire board built with Ebitengine
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/solibored/internal/ui"
)

func main() {
	game := ui.NewGame()

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("solibored")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
