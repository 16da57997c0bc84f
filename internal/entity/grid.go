package entity

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"agario/internal/world"
)

const (
	gridStep   = 25
	gridExtent = 2001
	gridWidth  = 3
)

var ColGrid = color.RGBA{230, 240, 240, 0xff}

// Grid is the background reference lattice over the world.
type Grid struct {
	Color color.Color
}

func NewGrid() *Grid {
	return &Grid{Color: ColGrid}
}

func (g *Grid) Draw(screen *ebiten.Image, cam *world.Camera) {
	zoom := float32(cam.Zoom)
	x, y := float32(cam.X), float32(cam.Y)
	end := gridExtent * zoom

	for i := 0; i < gridExtent; i += gridStep {
		at := float32(i) * zoom
		vector.StrokeLine(screen, x, at+y, end+x, at+y, gridWidth, g.Color, false)
		vector.StrokeLine(screen, at+x, y, at+x, end+y, gridWidth, g.Color, false)
	}
}
