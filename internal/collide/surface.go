package collide

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"puzzle-engine/internal/physics"
)

// Block is an axis-aligned rectangle of immovable geometry (floors, walls, ledges).
type Block struct {
	Min mgl32.Vec2
	Max mgl32.Vec2
}

// NewBlock returns the block covering the rectangle at x,y with the given size.
func NewBlock(x, y, width, height float32) Block {
	return Block{Min: mgl32.Vec2{x, y}, Max: mgl32.Vec2{x + width, y + height}}
}

// Size returns width and height.
func (b Block) Size() mgl32.Vec2 {
	return b.Max.Sub(b.Min)
}

// ContainsPoint reports whether p lies strictly inside the block. A point on an edge is
// touching, not overlapping, so push-out stops there.
func (b Block) ContainsPoint(p mgl32.Vec2) bool {
	return p.X() > b.Min.X() && p.X() < b.Max.X() && p.Y() > b.Min.Y() && p.Y() < b.Max.Y()
}

// SurfaceDirection returns the outward normal of the edge nearest to p.
// Points outside the block face away from the closest point on it.
func (b Block) SurfaceDirection(p mgl32.Vec2) float32 {
	closest := mgl32.Vec2{
		mgl32.Clamp(p.X(), b.Min.X(), b.Max.X()),
		mgl32.Clamp(p.Y(), b.Min.Y(), b.Max.Y()),
	}
	if d := p.Sub(closest); d.Len() > 0 {
		return physics.VectorDirection(d)
	}
	return nearestEdge(
		p.X()-b.Min.X(),
		b.Max.X()-p.X(),
		p.Y()-b.Min.Y(),
		b.Max.Y()-p.Y(),
	)
}

// nearestEdge returns the outward normal of the smallest of the four edge distances.
func nearestEdge(left, right, bottom, top float32) float32 {
	dir, best := float32(180), left
	if right < best {
		dir, best = 0, right
	}
	if bottom < best {
		dir, best = 270, bottom
	}
	if top < best {
		dir = 90
	}
	return dir
}

// BodySurface is the live outline of a body, so it follows the body while push-out moves it.
type BodySurface struct {
	Body *physics.RigidBody
}

// ContainsPoint reports whether p is strictly inside the body's box or (possibly stretched) circle.
func (s BodySurface) ContainsPoint(p mgl32.Vec2) bool {
	rel := s.Body.RelativePoint(p)
	shape := s.Body.Shape()
	if shape.Kind == physics.Circle {
		return rel.Len() < shape.Radius
	}
	return math32.Abs(rel.X()) < shape.Width/2 && math32.Abs(rel.Y()) < shape.Height/2
}

// SurfaceDirection returns the outward normal nearest to p: radial for circles,
// the closest edge for boxes.
func (s BodySurface) SurfaceDirection(p mgl32.Vec2) float32 {
	b := s.Body
	shape := b.Shape()
	if shape.Kind == physics.Circle {
		return physics.VectorDirection(p.Sub(b.Position))
	}
	half := shape.HalfExtents(b.Scale())
	rel := b.RelativePoint(p)
	local := mgl32.Vec2{rel.X() * b.Scale().X(), rel.Y() * b.Scale().Y()}
	dir := nearestEdge(
		local.X()+half.X(),
		half.X()-local.X(),
		local.Y()+half.Y(),
		half.Y()-local.Y(),
	)
	return physics.NormalizeAngle(dir + b.Angle())
}
