package gamemode

import (
	"image/color"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"agario/internal/assets"
	"agario/internal/config"
	"agario/internal/entity"
	"agario/internal/world"
)

type PlayState int

const (
	PlayRunning     PlayState = iota // accepting input, world advancing
	PlayTerminating                  // quit requested
)

func (s PlayState) String() string {
	switch s {
	case PlayRunning:
		return "running"
	case PlayTerminating:
		return "terminating"
	}
	return "unknown"
}

var (
	ColBackground = color.RGBA{242, 251, 255, 0xff}
	ColDark       = color.RGBA{0, 0, 0, 0xff}
)

// PlayMode owns one session: the camera, the player, the cells and the
// painter that draws them.
type PlayMode struct {
	State PlayState
	Tick  int

	Camera  *world.Camera
	Player  *world.Player
	Cells   *world.CellList
	Painter *entity.Painter

	Input      Input
	Sound      *assets.Sound
	Background color.Color
}

// NewPlayMode builds a fresh scene. fonts and sound may be nil.
func NewPlayMode(cfg *config.Config, rng *rand.Rand, fonts *assets.Fonts, sound *assets.Sound) *PlayMode {
	cam := world.NewCamera(float64(cfg.Width), float64(cfg.Height))
	cells := world.NewCellList(rng, cfg.Cells)
	player := world.NewPlayer(rng, cfg.Name)

	blob := &entity.Blob{Player: player}
	hud := &entity.HUD{Player: player, Cells: cells, Debug: cfg.Debug}
	if fonts != nil {
		blob.Face = fonts.Regular
		hud.Face = fonts.Big
	}

	painter := entity.NewPainter(
		entity.NewGrid(),
		&entity.Cells{List: cells},
		blob,
		hud,
	)

	bg := color.Color(ColBackground)
	if cfg.Dark {
		bg = ColDark
	}

	return &PlayMode{
		State:      PlayRunning,
		Camera:     cam,
		Player:     player,
		Cells:      cells,
		Painter:    painter,
		Input:      EbitenInput{},
		Sound:      sound,
		Background: bg,
	}
}

// Update advances the session by one tick. It returns ebiten.Termination
// once a quit has been requested.
func (m *PlayMode) Update() error {
	switch m.State {
	case PlayRunning:
		m.Tick++
		if m.handleKeys() {
			m.State = PlayTerminating
			log.Printf("[Game] Quit after %d ticks, mass %.1f", m.Tick, m.Player.Mass)
			return ebiten.Termination
		}

		centre := world.Point{X: m.Camera.Width / 2, Y: m.Camera.Height / 2}
		m.Player.Move(m.Input.Cursor(), centre)
		if eaten := m.Player.CollisionDetection(m.Cells); eaten > 0 {
			m.Sound.Eat(eaten)
		}
		m.Camera.Update(m.Player)

	case PlayTerminating:
		return ebiten.Termination
	}
	return nil
}

// handleKeys reports whether a quit was requested.
func (m *PlayMode) handleKeys() bool {
	if m.Input.JustPressed(ebiten.KeyEscape) {
		return true
	}
	if m.Input.JustPressed(ebiten.KeySpace) {
		if err := m.Player.Split(); err != nil {
			log.Printf("[Input] split: %v", err)
		}
	}
	if m.Input.JustPressed(ebiten.KeyW) {
		if err := m.Player.Feed(); err != nil {
			log.Printf("[Input] feed: %v", err)
		}
	}
	return false
}

func (m *PlayMode) Draw(screen *ebiten.Image) {
	screen.Fill(m.Background)
	m.Painter.Paint(screen, m.Camera)
}
