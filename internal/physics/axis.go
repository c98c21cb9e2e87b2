package physics

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// MinAxisDistance is how far (in scaled units) a contact must be from the current axis
	// before it is considered as a new pivot.
	MinAxisDistance = 8
	// MinAxisRadius is the smallest scaled distance from the origin an axis may be moved to.
	MinAxisRadius = 1
	// IdleResetSteps is how many contact-free steps a pivoting body waits before recentering.
	IdleResetSteps = 5

	maxAxisCandidates = 8
)

type axisCandidate struct {
	point    mgl32.Vec2
	distance float32
}

// candidateBuffer is the per-step scratch storage for pivot candidates.
type candidateBuffer struct {
	items [maxAxisCandidates]axisCandidate
	n     int
}

func (c *candidateBuffer) add(point mgl32.Vec2, distance float32) {
	if c.n < len(c.items) {
		c.items[c.n] = axisCandidate{point: point, distance: distance}
		c.n++
		return
	}
	nearest := 0
	for i := 1; i < c.n; i++ {
		if c.items[i].distance < c.items[nearest].distance {
			nearest = i
		}
	}
	if distance > c.items[nearest].distance {
		c.items[nearest] = axisCandidate{point: point, distance: distance}
	}
}

// farthest returns the candidate with the largest distance. Ties keep the first registered.
func (c *candidateBuffer) farthest() (axisCandidate, bool) {
	if c.n == 0 {
		return axisCandidate{}, false
	}
	best := c.items[0]
	for _, it := range c.items[1:c.n] {
		if it.distance > best.distance {
			best = it
		}
	}
	return best, true
}

func (c *candidateBuffer) clear() {
	c.n = 0
}

// Axis returns the relative point the body currently rotates around.
func (b *RigidBody) Axis() mgl32.Vec2 { return b.axis }

// Centered reports whether the body rotates around its origin.
func (b *RigidBody) Centered() bool {
	return b.axis == (mgl32.Vec2{})
}

// AxisCandidates returns the number of pivot candidates registered since the last commit.
func (b *RigidBody) AxisCandidates() int { return b.candidates.n }

// RegisterAxisCandidate records a contact at an absolute point. Every call counts as contact for
// the idle timer; only points at least MinAxisDistance from the current axis become candidates.
func (b *RigidBody) RegisterAxisCandidate(point mgl32.Vec2) {
	b.contacted = true
	rel := b.RelativePoint(point)
	d := mulElem(rel.Sub(b.axis), b.scale).Len()
	if d < MinAxisDistance {
		return
	}
	b.candidates.add(rel, d)
}

// CommitAxisCandidates ends the contact phase of a step. A contact resets the idle timer and the
// farthest candidate, if any, becomes the new axis. The scratch buffer is always cleared.
func (b *RigidBody) CommitAxisCandidates() {
	if b.contacted {
		b.idleSteps = 0
		b.contacted = false
	}
	if best, ok := b.candidates.farthest(); ok {
		b.ChangeAxisTo(best.point)
	}
	b.candidates.clear()
}

// ChangeAxisTo moves the rotation axis to a relative point, rescaling angular velocity with the
// parallel axis theorem. The body always passes through the centered state first.
// Points closer than MinAxisRadius to the origin are ignored.
func (b *RigidBody) ChangeAxisTo(rel mgl32.Vec2) {
	r2 := b.scaledAxisRadiusSqr(rel)
	if r2 < MinAxisRadius*MinAxisRadius {
		return
	}
	b.ResetAxis()

	// TODO: the rescale conserves angular momentum but not kinetic energy once the
	// radius grows; revisit together with the pivot friction model.
	b.currentMomentMass = b.defaultMomentMass + b.mass*r2
	if b.currentMomentMass > 0 {
		b.AngularVelocity = b.defaultMomentMass * b.AngularVelocity / b.currentMomentMass
	}
	b.axis = rel
}

// ResetAxis returns the axis to the origin, undoing the angular velocity rescale.
func (b *RigidBody) ResetAxis() {
	if b.Centered() {
		return
	}
	if b.defaultMomentMass > 0 {
		b.AngularVelocity = b.AngularVelocity * b.currentMomentMass / b.defaultMomentMass
	}
	b.currentMomentMass = b.defaultMomentMass
	b.axis = mgl32.Vec2{}
}

// decayAxis counts a contact-free step and recenters the axis once the idle limit is reached.
func (b *RigidBody) decayAxis() {
	if b.idleSteps >= IdleResetSteps {
		return
	}
	b.idleSteps++
	if b.idleSteps == IdleResetSteps {
		b.ResetAxis()
	}
}

func (b *RigidBody) scaledAxisRadiusSqr(rel mgl32.Vec2) float32 {
	s := mulElem(rel, b.scale)
	return s.Dot(s)
}
