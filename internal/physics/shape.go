package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ShapeKind selects which formulas are used for mass and moment mass.
type ShapeKind int

const (
	Box ShapeKind = iota
	Circle
	// Wall is immovable geometry. It has no mass and never receives impulses.
	Wall
)

func (k ShapeKind) String() string {
	switch k {
	case Box:
		return "box"
	case Circle:
		return "circle"
	case Wall:
		return "wall"
	default:
		return "unknown"
	}
}

// Shape is the unscaled outline of a body. Width/Height are used by boxes, Radius by circles.
// The shape origin (relative point 0,0) is its center.
type Shape struct {
	Kind   ShapeKind
	Width  float32
	Height float32
	Radius float32
}

// NewBox returns a box shape of the given unscaled size.
func NewBox(width, height float32) Shape {
	return Shape{Kind: Box, Width: width, Height: height}
}

// NewCircle returns a circle shape of the given unscaled radius.
func NewCircle(radius float32) Shape {
	return Shape{Kind: Circle, Radius: radius}
}

// Mass returns the mass of the shape at the given scale and density.
// Walls have no mass: the call is logged as an error and 0 is returned.
func (s Shape) Mass(scale mgl32.Vec2, density float32) float32 {
	switch s.Kind {
	case Box:
		return s.Width * scale.X() * s.Height * scale.Y() * density
	case Circle:
		return math32.Pi * s.Radius * s.Radius * ((scale.X() + scale.Y()) / 2) * density
	default:
		logf("physics: mass requested for %s shape; treating as 0", s.Kind)
		return 0
	}
}

// MomentMass returns the moment of inertia about the shape origin for the given scale and mass.
// Circles use the box formula over their bounding square.
func (s Shape) MomentMass(scale mgl32.Vec2, mass float32) float32 {
	w, h := s.Width, s.Height
	switch s.Kind {
	case Box:
	case Circle:
		w, h = 2*s.Radius, 2*s.Radius
	default:
		return 0
	}
	sw := w * scale.X()
	sh := h * scale.Y()
	return (sw*sw + sh*sh) * mass / 12
}

// HalfExtents returns half the scaled size of the shape's bounding box.
func (s Shape) HalfExtents(scale mgl32.Vec2) mgl32.Vec2 {
	if s.Kind == Circle {
		return mgl32.Vec2{s.Radius * scale.X(), s.Radius * scale.Y()}
	}
	return mgl32.Vec2{s.Width * scale.X() / 2, s.Height * scale.Y() / 2}
}
