package physics

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// collinearTolerance is the angle (degrees) within which contact points count as one flat edge.
	collinearTolerance = 2
	// surfaceSnapTolerance is how close (degrees) an edge normal must be to a queried surface
	// direction before the queried direction is used instead.
	surfaceSnapTolerance = 10
)

// Surface is the geometry side of a collision: whatever a body is touching.
type Surface interface {
	// SurfaceDirection returns the outward normal, in degrees, of the surface nearest to point.
	SurfaceDirection(point mgl32.Vec2) float32
	// ContainsPoint reports whether point is inside the shape.
	ContainsPoint(point mgl32.Vec2) bool
}

// Contact is an effective collision point and the direction, in degrees, in which the
// touching body is pushed.
type Contact struct {
	Point     mgl32.Vec2
	Direction float32
}

// Normal returns the unit vector of the contact direction.
func (c Contact) Normal() mgl32.Vec2 {
	return DirectionVector(c.Direction)
}

// GroupContacts turns the raw points where a body overlaps other into effective contacts.
// Points along one straight line become a single contact at their mean, so a flat edge resting
// on another flat edge is not pushed once per sample point.
func GroupContacts(points []mgl32.Vec2, other Surface) []Contact {
	switch len(points) {
	case 0:
		return nil
	case 1:
		return []Contact{{Point: points[0], Direction: other.SurfaceDirection(points[0])}}
	}

	start, end, ok := endpoints(points)
	if !ok {
		mean := meanPoint(points)
		return []Contact{{Point: mean, Direction: other.SurfaceDirection(mean)}}
	}
	if !collinear(points, start, end) {
		out := make([]Contact, len(points))
		for i, p := range points {
			out[i] = Contact{Point: p, Direction: other.SurfaceDirection(p)}
		}
		return out
	}
	return []Contact{{Point: meanPoint(points), Direction: edgeDirection(start, end, other)}}
}

// endpoints returns the two points farthest apart. ok is false when every point coincides.
func endpoints(points []mgl32.Vec2) (start, end mgl32.Vec2, ok bool) {
	var best float32
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			d := points[j].Sub(points[i])
			if l := d.Dot(d); l > best {
				best = l
				start, end = points[i], points[j]
			}
		}
	}
	return start, end, best >= epsilon*epsilon
}

func collinear(points []mgl32.Vec2, start, end mgl32.Vec2) bool {
	line := VectorDirection(end.Sub(start))
	for _, p := range points {
		d := p.Sub(start)
		if d.Len() < epsilon {
			continue
		}
		diff := AngleDifference(VectorDirection(d), line)
		if diff > 90 {
			diff = 180 - diff
		}
		if diff > collinearTolerance {
			return false
		}
	}
	return true
}

// edgeDirection picks the normal of the line start-end that agrees with the closer of the two
// endpoint surface directions, snapping to that direction when it is near enough.
func edgeDirection(start, end mgl32.Vec2, other Surface) float32 {
	normal := NormalizeAngle(VectorDirection(end.Sub(start)) + 90)
	flipped := NormalizeAngle(normal + 180)

	best, bestDiff := normal, float32(360)
	var snap float32
	for _, surface := range []float32{other.SurfaceDirection(start), other.SurfaceDirection(end)} {
		for _, candidate := range []float32{normal, flipped} {
			if d := AngleDifference(candidate, surface); d < bestDiff {
				best, bestDiff, snap = candidate, d, surface
			}
		}
	}
	if bestDiff <= surfaceSnapTolerance {
		return snap
	}
	return best
}

func meanPoint(points []mgl32.Vec2) mgl32.Vec2 {
	var sum mgl32.Vec2
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float32(len(points)))
}
