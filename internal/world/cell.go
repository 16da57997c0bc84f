package world

import (
	"image/color"
	"math/rand"
)

// World bounds and cell defaults.
const (
	WorldSize = 2000.0

	CellMass   = 2.0
	CellMargin = 20 // cells spawn in [CellMargin, WorldSize-CellMargin]

	DefaultCellCount = 1500
)

var CellColors = []color.RGBA{
	{80, 252, 54, 0xff},
	{36, 244, 255, 0xff},
	{243, 31, 46, 0xff},
	{4, 39, 243, 0xff},
}

// Cell is a small static piece of food.
type Cell struct {
	Pos   Point
	Mass  float64
	Color color.RGBA
}

// Radius of a cell equals its mass.
func (c Cell) Radius() float64 {
	return c.Mass
}

func NewCell(rng *rand.Rand) Cell {
	span := int(WorldSize) - 2*CellMargin + 1
	return Cell{
		Pos: Point{
			X: float64(CellMargin + rng.Intn(span)),
			Y: float64(CellMargin + rng.Intn(span)),
		},
		Mass:  CellMass,
		Color: CellColors[rng.Intn(len(CellColors))],
	}
}

// CellList is the scene's food. It is populated once and only shrinks.
type CellList struct {
	Cells []Cell
}

// NewCellList scatters n cells over the world.
func NewCellList(rng *rand.Rand, n int) *CellList {
	cells := make([]Cell, n)
	for i := range cells {
		cells[i] = NewCell(rng)
	}
	return &CellList{Cells: cells}
}

func (l *CellList) Len() int {
	return len(l.Cells)
}

// Consume removes every cell for which eat returns true and reports how
// many went. Each cell is visited exactly once and survivors keep their order.
func (l *CellList) Consume(eat func(Cell) bool) int {
	kept := l.Cells[:0]
	for _, c := range l.Cells {
		if eat(c) {
			continue
		}
		kept = append(kept, c)
	}
	n := len(l.Cells) - len(kept)
	l.Cells = kept
	return n
}
