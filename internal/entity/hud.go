package entity

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"agario/internal/world"
)

const (
	scoreWidth  = 95
	scoreHeight = 25
	hudMargin   = 8
)

var (
	ColPanel = color.RGBA{30, 50, 50, 50}
	ColScore = color.RGBA{255, 255, 255, 0xff}
)

// HUD shows the score panel and, in debug mode, the frame stats.
type HUD struct {
	Player *world.Player
	Cells  *world.CellList
	Face   text.Face
	Debug  bool
}

func (h *HUD) Draw(screen *ebiten.Image, _ *world.Camera) {
	sh := float32(screen.Bounds().Dy())
	x, y := float32(hudMargin), sh-scoreHeight-hudMargin
	vector.DrawFilledRect(screen, x, y, scoreWidth, scoreHeight, ColPanel, false)

	if h.Face != nil {
		msg := fmt.Sprintf("Score: %d", int(h.Player.Mass))
		_, th := text.Measure(msg, h.Face, 0)
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(x)+4, float64(y)+(scoreHeight-th)/2)
		op.ColorScale.ScaleWithColor(ColScore)
		text.Draw(screen, msg, h.Face, op)
	}

	if h.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.1f\nFPS: %0.1f\nCells: %d\nMass: %0.1f",
			ebiten.ActualTPS(), ebiten.ActualFPS(), h.Cells.Len(), h.Player.Mass))
	}
}
