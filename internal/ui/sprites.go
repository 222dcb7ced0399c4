// Package ui implements the board viewer/editor using Ebitengine.
package ui

import (
	"bytes"
	"embed"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed assets/peg.svg
var pegAsset embed.FS

// SpriteManager rasterizes and draws the peg sprite.
type SpriteManager struct {
	peg         *ebiten.Image
	size        int     // Display size (one cell)
	renderScale float64 // Render at higher resolution for quality
}

// NewSpriteManager creates a sprite manager with pegs of the given size.
func NewSpriteManager(size int) *SpriteManager {
	sm := &SpriteManager{
		size:        size,
		renderScale: 3.0, // Render at 3x resolution for sharp scaling
	}
	sm.loadPeg()
	return sm
}

// loadPeg renders the embedded SVG peg into an image.
func (sm *SpriteManager) loadPeg() {
	data, err := pegAsset.ReadFile("assets/peg.svg")
	if err != nil {
		log.Printf("Failed to read peg asset: %v", err)
		return
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		log.Printf("Failed to parse peg SVG: %v", err)
		return
	}

	renderSize := int(float64(sm.size) * sm.renderScale)
	icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

	rgba := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
	scanner := rasterx.NewScannerGV(renderSize, renderSize, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(renderSize, renderSize, scanner)
	icon.Draw(raster, 1.0)

	sm.peg = ebiten.NewImageFromImage(rgba)
}

// DrawPegAt draws the peg at the given pixel coordinates.
func (sm *SpriteManager) DrawPegAt(screen *ebiten.Image, x, y int) {
	if sm.peg == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	// Scale down from render resolution to display size
	scale := 1.0 / sm.renderScale
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sm.peg, op)
}

// Size returns the size of the peg sprite.
func (sm *SpriteManager) Size() int {
	return sm.size
}
