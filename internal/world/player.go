package world

import (
	"errors"
	"image/color"
	"math"
	"math/rand"
)

// Player defaults.
const (
	PlayerMass  = 20.0
	PlayerSpeed = 4.0
	MassPerCell = 0.5

	DefaultName = "Anonymous"

	spawnMin = 100
	spawnMax = 400
)

// ErrUnsupported is returned by actions that have a key binding but no
// gameplay behind them yet.
var ErrUnsupported = errors.New("unsupported action")

var PlayerColors = []color.RGBA{
	{255, 50, 255, 0xff},
}

// Player is the blob controlled by the cursor.
type Player struct {
	Pos     Point
	Mass    float64
	Speed   float64
	Color   color.RGBA
	Outline color.RGBA
	Name    string
}

// NewPlayer spawns a player near the top-left of the world.
func NewPlayer(rng *rand.Rand, name string) *Player {
	if name == "" {
		name = DefaultName
	}
	span := spawnMax - spawnMin + 1
	col := PlayerColors[rng.Intn(len(PlayerColors))]
	return &Player{
		Pos: Point{
			X: float64(spawnMin + rng.Intn(span)),
			Y: float64(spawnMin + rng.Intn(span)),
		},
		Mass:    PlayerMass,
		Speed:   PlayerSpeed,
		Color:   col,
		Outline: Darken(col),
		Name:    name,
	}
}

// Darken takes a third off every channel, rounding down.
func Darken(c color.RGBA) color.RGBA {
	third := func(v uint8) uint8 { return uint8(int(v) * 2 / 3) }
	return color.RGBA{
		R: third(c.R),
		G: third(c.G),
		B: third(c.B),
		A: c.A,
	}
}

func (p *Player) Position() Point { return p.Pos }

func (p *Player) Weight() float64 { return p.Mass }

// Radius is the drawn and eating radius in world units.
func (p *Player) Radius() float64 {
	return p.Mass / 2
}

// Velocity maps the cursor's bearing from the screen centre onto a per-tick
// step. The bearing is scaled so that ±50 is straight up or down and ±100
// is straight left; x gets the horizontal share and y whatever is left of
// the speed. The result is not a unit vector: diagonals are slower.
func (p *Player) Velocity(cursor, centre Point) (vx, vy float64) {
	rotation := math.Atan2(cursor.Y-centre.Y, cursor.X-centre.X) * 100 / math.Pi
	normalized := (50 - math.Abs(rotation)) / 50
	vx = p.Speed * normalized
	if rotation < 0 {
		vy = -p.Speed + math.Abs(vx)
	} else {
		vy = p.Speed - math.Abs(vx)
	}
	return vx, vy
}

// Move advances the player one tick towards the cursor.
func (p *Player) Move(cursor, centre Point) {
	vx, vy := p.Velocity(cursor, centre)
	p.Pos.X += vx
	p.Pos.Y += vy
}

// CollisionDetection eats every cell within the player's radius and
// returns how many were eaten. The radius is taken once per pass so the
// outcome does not depend on cell order.
func (p *Player) CollisionDetection(cells *CellList) int {
	reach := p.Radius()
	eaten := cells.Consume(func(c Cell) bool {
		return Distance(c.Pos, p.Pos) <= reach
	})
	p.Mass += MassPerCell * float64(eaten)
	return eaten
}

// Split is bound to a key but not implemented.
func (p *Player) Split() error {
	return ErrUnsupported
}

// Feed is bound to a key but not implemented.
func (p *Player) Feed() error {
	return ErrUnsupported
}
