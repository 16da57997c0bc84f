package gamemode

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"agario/internal/world"
)

// Input is the slice of the keyboard and mouse a mode reads each tick.
type Input interface {
	JustPressed(key ebiten.Key) bool
	Cursor() world.Point
}

// EbitenInput reads live input from Ebiten.
type EbitenInput struct{}

func (EbitenInput) JustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

func (EbitenInput) Cursor() world.Point {
	x, y := ebiten.CursorPosition()
	return world.Point{X: float64(x), Y: float64(y)}
}
