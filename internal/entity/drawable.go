package entity

import (
	"github.com/hajimehoshi/ebiten/v2"

	"agario/internal/world"
)

// Drawable renders itself through the camera's world-to-screen transform.
type Drawable interface {
	Draw(screen *ebiten.Image, cam *world.Camera)
}

// Painter draws its drawables in the order they were added.
type Painter struct {
	paintings []Drawable
}

func NewPainter(ds ...Drawable) *Painter {
	p := &Painter{}
	for _, d := range ds {
		p.Add(d)
	}
	return p
}

func (p *Painter) Add(d Drawable) {
	p.paintings = append(p.paintings, d)
}

func (p *Painter) Len() int {
	return len(p.paintings)
}

// Paint draws one frame.
func (p *Painter) Paint(screen *ebiten.Image, cam *world.Camera) {
	for _, d := range p.paintings {
		d.Draw(screen, cam)
	}
}
