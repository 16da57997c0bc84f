package entity

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"agario/internal/world"
)

// Cells draws whatever is left in the shared cell list.
type Cells struct {
	List *world.CellList
}

func (c *Cells) Draw(screen *ebiten.Image, cam *world.Camera) {
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	for _, cell := range c.List.Cells {
		p := cam.WorldToScreen(cell.Pos)
		r := cam.Scale(cell.Radius())
		// skip the ones off screen
		if p.X+r < 0 || p.Y+r < 0 || p.X-r > w || p.Y-r > h {
			continue
		}
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(r), cell.Color, true)
	}
}
