package world

// Zoom tuning. Zoom shrinks towards ZoomFloor as mass grows.
const (
	ZoomScale   = 70.0
	ZoomFloor   = 0.2
	DefaultZoom = 0.5

	// MinMass keeps the zoom finite for a zero or negative mass.
	MinMass = 1.0
)

// Target is anything the camera can follow.
type Target interface {
	Position() Point
	Weight() float64
}

// Camera holds the world-to-screen transform: an offset plus a zoom factor.
type Camera struct {
	X, Y   float64 // offset in screen pixels
	Zoom   float64
	Width  float64
	Height float64
}

func NewCamera(width, height float64) *Camera {
	return &Camera{
		Width:  width,
		Height: height,
		Zoom:   DefaultZoom,
	}
}

// Zoom returns the zoom factor for a body of the given mass.
func Zoom(mass float64) float64 {
	if mass < MinMass {
		mass = MinMass
	}
	return ZoomScale/mass + ZoomFloor
}

// Update rescales the view for the target's mass and recentres on it.
func (c *Camera) Update(t Target) {
	c.Zoom = Zoom(t.Weight())
	c.Centre(t)
}

// Centre pins the target's position to the middle of the viewport
// at the current zoom.
func (c *Camera) Centre(t Target) {
	p := t.Position()
	c.X = (p.X - p.X*c.Zoom) - p.X + c.Width/2
	c.Y = (p.Y - p.Y*c.Zoom) - p.Y + c.Height/2
}

// SetOffset moves the view to a raw screen offset.
func (c *Camera) SetOffset(p Point) {
	c.X, c.Y = p.X, p.Y
}

func (c *Camera) WorldToScreen(p Point) Point {
	return Point{
		X: p.X*c.Zoom + c.X,
		Y: p.Y*c.Zoom + c.Y,
	}
}

// Scale converts a world length to screen pixels.
func (c *Camera) Scale(length float64) float64 {
	return length * c.Zoom
}
