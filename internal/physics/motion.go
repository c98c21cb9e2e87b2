package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Advance moves the body forward by dt steps. dt may exceed 1 when the scheduler is catching up;
// every term is linear in dt.
func (b *RigidBody) Advance(dt float32) {
	if dt <= 0 {
		return
	}

	b.Position = b.Position.Add(b.Velocity.Mul(dt))

	if b.LinearFriction > 0 {
		speed := b.Velocity.Len()
		if next := shrinkToward(speed, b.LinearFriction*dt); next == 0 {
			b.Velocity = mgl32.Vec2{}
		} else {
			b.Velocity = b.Velocity.Mul(next / speed)
		}
	}
	if b.MaxSpeed >= 0 {
		if speed := b.Velocity.Len(); speed > b.MaxSpeed {
			b.Velocity = b.Velocity.Mul(b.MaxSpeed / speed)
		}
	}

	b.rotate(b.AngularVelocity * dt)

	if b.AngularFriction > 0 {
		b.AngularVelocity = shrinkToward(b.AngularVelocity, b.AngularFriction*dt)
	}
	if b.MaxAngularSpeed >= 0 && math32.Abs(b.AngularVelocity) > b.MaxAngularSpeed {
		b.AngularVelocity = sign(b.AngularVelocity) * b.MaxAngularSpeed
	}

	b.decayAxis()
}

// rotate turns the body by deg degrees about its current axis. Off-center rotation moves the position too.
func (b *RigidBody) rotate(deg float32) {
	if deg == 0 {
		return
	}
	if !b.Centered() {
		pivot := b.AbsolutePoint(b.axis)
		b.Position = rotateAround(b.Position, pivot, deg)
	}
	b.angle = NormalizeAngle(b.angle + deg)
}

// AddImpulse applies force at an absolute point for dt steps. The linear part changes velocity;
// the tangential part about the rotation axis changes angular velocity, and the body is turned by
// the same amount right away so the visible rotation does not lag a step behind.
func (b *RigidBody) AddImpulse(force, point mgl32.Vec2, dt float32) {
	b.AddLinearImpulse(force, dt)
	b.AddAngularImpulse(force, point, dt)
}

// AddLinearImpulse changes velocity by force·dt/mass. Massless bodies are unaffected.
func (b *RigidBody) AddLinearImpulse(force mgl32.Vec2, dt float32) {
	if b.mass <= 0 {
		return
	}
	b.Velocity = b.Velocity.Add(force.Mul(dt / b.mass))
}

// AddAngularImpulse applies the part of force tangential to the radius from the rotation axis to point.
// It returns the change in angular velocity in degrees per step.
func (b *RigidBody) AddAngularImpulse(force, point mgl32.Vec2, dt float32) float32 {
	if b.currentMomentMass <= 0 {
		return 0
	}
	radius := point.Sub(b.AbsolutePoint(b.axis))
	r := radius.Len()
	if r < epsilon {
		return 0
	}
	tangential := cross(radius.Mul(1/r), force)
	delta := mgl32.RadToDeg(tangential * r * dt / b.currentMomentMass)
	b.addSpin(delta)
	return delta
}

// addSpin changes angular velocity by delta and turns the body by the same amount.
func (b *RigidBody) addSpin(delta float32) {
	b.AngularVelocity += delta
	b.rotate(delta)
}

// PointVelocity returns the world velocity of an absolute point attached to the body.
func (b *RigidBody) PointVelocity(point mgl32.Vec2) mgl32.Vec2 {
	return b.Velocity.Add(b.spinVelocity(point))
}

// spinVelocity returns the velocity of point caused only by rotation about the current axis.
func (b *RigidBody) spinVelocity(point mgl32.Vec2) mgl32.Vec2 {
	radius := point.Sub(b.AbsolutePoint(b.axis))
	return perp(radius).Mul(mgl32.DegToRad(b.AngularVelocity))
}
