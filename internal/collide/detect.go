package collide

import (
	"github.com/go-gl/mathgl/mgl32"

	"puzzle-engine/internal/physics"
)

// circleSamples is how many perimeter points a circle outline has.
const circleSamples = 12

// Outline returns absolute sample points on the body's perimeter:
// corners and edge midpoints for boxes, evenly spaced points for circles.
func Outline(b *physics.RigidBody) []mgl32.Vec2 {
	shape := b.Shape()
	if shape.Kind == physics.Circle {
		out := make([]mgl32.Vec2, circleSamples)
		for i := range out {
			dir := physics.DirectionVector(float32(i) * 360 / circleSamples)
			out[i] = b.AbsolutePoint(dir.Mul(shape.Radius))
		}
		return out
	}
	hw, hh := shape.Width/2, shape.Height/2
	rel := [...]mgl32.Vec2{
		{-hw, -hh}, {0, -hh}, {hw, -hh}, {hw, 0},
		{hw, hh}, {0, hh}, {-hw, hh}, {-hw, 0},
	}
	out := make([]mgl32.Vec2, len(rel))
	for i, p := range rel {
		out[i] = b.AbsolutePoint(p)
	}
	return out
}

// boundingRadius is the radius of a circle around the body that contains its outline.
func boundingRadius(b *physics.RigidBody) float32 {
	half := b.Shape().HalfExtents(b.Scale())
	return half.Len()
}

// Detector is a brute-force narrow phase over every body pair and every static surface.
// It is sized for puzzle rooms of a few dozen bodies.
type Detector struct{}

// Detect reports, for each movable body, its outline points inside statics and inside other bodies.
func (Detector) Detect(w *physics.World) []physics.Collision {
	var out []physics.Collision
	for _, a := range w.Bodies {
		if a.Immovable() {
			continue
		}
		outline := Outline(a)
		for _, s := range w.Statics {
			if pts := inside(outline, s); len(pts) > 0 {
				out = append(out, physics.Collision{A: a, Surface: s, Points: pts})
			}
		}
		ra := boundingRadius(a)
		for _, b := range w.Bodies {
			if b == a {
				continue
			}
			reach := ra + boundingRadius(b)
			if d := b.Position.Sub(a.Position); d.Dot(d) > reach*reach {
				continue
			}
			surface := BodySurface{Body: b}
			if pts := inside(outline, surface); len(pts) > 0 {
				out = append(out, physics.Collision{A: a, B: b, Surface: surface, Points: pts})
			}
		}
	}
	return out
}

func inside(points []mgl32.Vec2, s physics.Surface) []mgl32.Vec2 {
	var out []mgl32.Vec2
	for _, p := range points {
		if s.ContainsPoint(p) {
			out = append(out, p)
		}
	}
	return out
}

// Overlapping reports whether any outline point of a lies inside b.
func Overlapping(a, b *physics.RigidBody) bool {
	return len(inside(Outline(a), BodySurface{Body: b})) > 0
}

// Pick returns the last body whose surface contains p, or nil. Later bodies draw on top.
func Pick(bodies []*physics.RigidBody, p mgl32.Vec2) *physics.RigidBody {
	for i := len(bodies) - 1; i >= 0; i-- {
		if (BodySurface{Body: bodies[i]}).ContainsPoint(p) {
			return bodies[i]
		}
	}
	return nil
}
