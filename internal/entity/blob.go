package entity

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"agario/internal/world"
)

var ColName = color.RGBA{50, 50, 50, 0xff}

// Blob draws the player: outline, body, then the name on top.
type Blob struct {
	Player *world.Player
	Face   text.Face
}

func (b *Blob) Draw(screen *ebiten.Image, cam *world.Camera) {
	p := b.Player
	c := cam.WorldToScreen(p.Pos)
	cx, cy := float32(c.X), float32(c.Y)
	r := float32(cam.Scale(p.Radius()))

	vector.DrawFilledCircle(screen, cx, cy, r, p.Outline, true)
	vector.DrawFilledCircle(screen, cx, cy, r, p.Color, true)

	if b.Face == nil {
		return
	}
	w, h := text.Measure(p.Name, b.Face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(c.X-float64(int(w/2)), c.Y-float64(int(h/2)))
	op.ColorScale.ScaleWithColor(ColName)
	text.Draw(screen, p.Name, b.Face, op)
}
