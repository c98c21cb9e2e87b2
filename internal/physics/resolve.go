package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Resolver holds the push-out tuning shared by both collision entry points.
type Resolver struct {
	// PushOutStep is the distance a body is nudged per push-out iteration.
	PushOutStep float32
	// StaticPushOutLimit caps push-out iterations against immovable geometry.
	StaticPushOutLimit int
	// BodyPushOutLimit caps push-out iterations between two bodies.
	BodyPushOutLimit int
}

// DefaultResolver is used by the package-level ResolveStatic and ResolveBodies.
var DefaultResolver = Resolver{
	PushOutStep:        0.5,
	StaticPushOutLimit: 100,
	BodyPushOutLimit:   10,
}

// ResolveStatic resolves contacts between b and immovable geometry using DefaultResolver.
func ResolveStatic(b *RigidBody, contacts []Contact, other Surface, dt float32) {
	DefaultResolver.ResolveStatic(b, contacts, other, dt)
}

// ResolveBodies resolves contacts between two bodies using DefaultResolver.
func ResolveBodies(a, b *RigidBody, contacts []Contact, surfaceB Surface, dt float32) {
	DefaultResolver.ResolveBodies(a, b, contacts, surfaceB, dt)
}

// PushOut calls nudge until overlapping reports false or limit nudges were made.
// It returns the number of nudges. Overlap left after the limit is carried into the next step.
func PushOut(nudge func(), overlapping func() bool, limit int) int {
	for i := 0; i < limit; i++ {
		if !overlapping() {
			return i
		}
		nudge()
	}
	return limit
}

// ResolveStatic bounces b off immovable geometry, one contact at a time in list order.
func (r Resolver) ResolveStatic(b *RigidBody, contacts []Contact, other Surface, dt float32) {
	for _, c := range contacts {
		point, opposing, ok := r.bounce(b, c, other, dt)
		if !ok || !b.RotationEnabled {
			continue
		}
		b.RegisterAxisCandidate(point)
		counterSpin(b, point, c.Normal(), opposing*b.Material.Friction, dt)
	}
}

// BounceWithoutRotation applies the linear part of a static bounce: push-out, rebound and friction.
// It reports whether the body was moving into the surface.
func (r Resolver) BounceWithoutRotation(b *RigidBody, c Contact, other Surface, dt float32) bool {
	_, _, ok := r.bounce(b, c, other, dt)
	return ok
}

// bounce returns the contact point after push-out and the speed the body approached with,
// or false when no impulse was applied.
func (r Resolver) bounce(b *RigidBody, c Contact, other Surface, dt float32) (mgl32.Vec2, float32, bool) {
	if b.Immovable() || dt <= 0 {
		return c.Point, 0, false
	}
	n := c.Normal()
	opposing := -b.Velocity.Dot(n)
	if opposing*dt <= 0 {
		return c.Point, 0, false
	}

	point := c.Point
	step := n.Mul(r.PushOutStep)
	PushOut(func() {
		b.Position = b.Position.Add(step)
		point = point.Add(step)
	}, func() bool {
		return other.ContainsPoint(point)
	}, r.StaticPushOutLimit)

	// Cancel the approach and add the rebound in one impulse.
	b.AddLinearImpulse(n.Mul(opposing*(1+b.Material.Bounciness)*b.mass/dt), dt)

	t := perp(n)
	if vt := b.Velocity.Dot(t); vt != 0 {
		f := math32.Min(math32.Abs(vt), opposing*b.Material.Friction)
		b.AddLinearImpulse(t.Mul(-sign(vt)*f*b.mass/dt), dt)
	}
	return point, opposing, true
}

// counterSpin removes the part of the point's spin velocity that drives it into the surface,
// then applies rotational friction, up to limit, against the point's tangential spin velocity.
func counterSpin(b *RigidBody, point, n mgl32.Vec2, limit, dt float32) {
	if b.currentMomentMass <= 0 || b.AngularVelocity == 0 {
		return
	}
	arm := point.Sub(b.AbsolutePoint(b.axis))
	into := -b.spinVelocity(point).Dot(n)
	if armN := cross(arm, n); into > 0 && math32.Abs(armN) > epsilon {
		// Angular-only effective mass: the push changes spin alone.
		j := into * b.currentMomentMass / (armN * armN)
		b.AddAngularImpulse(n.Mul(j/dt), point, dt)
	}
	spinFriction(b, point, perp(n), 0, limit)
}

// spinFriction slows the tangential speed of point due to b's spin, relative to otherSpeed,
// by at most limit. The relative speed never crosses zero, so spin is never reversed by it.
func spinFriction(b *RigidBody, point, t mgl32.Vec2, otherSpeed, limit float32) {
	rel := b.spinVelocity(point).Dot(t) - otherSpeed
	armT := cross(point.Sub(b.AbsolutePoint(b.axis)), t)
	if rel == 0 || limit <= 0 || math32.Abs(armT) <= epsilon {
		return
	}
	f := math32.Min(math32.Abs(rel), limit)
	b.addSpin(mgl32.RadToDeg(-sign(rel) * f / armT))
}

// ResolveBodies exchanges momentum between a and b for each contact. Contact directions point
// away from b, the way surfaceB reports them. An immovable b is treated as static geometry.
func (r Resolver) ResolveBodies(a, b *RigidBody, contacts []Contact, surfaceB Surface, dt float32) {
	if a.Immovable() || dt <= 0 {
		return
	}
	if b.Immovable() {
		r.ResolveStatic(a, contacts, surfaceB, dt)
		return
	}
	for _, c := range contacts {
		r.exchange(a, b, c, surfaceB, dt)
	}
}

func (r Resolver) exchange(a, b *RigidBody, c Contact, surfaceB Surface, dt float32) {
	n := c.Normal()
	u := n.Mul(-1)
	va, vb := a.Velocity.Dot(u), b.Velocity.Dot(u)
	if va-vb <= 0 {
		return
	}
	loss := clamp01((a.Material.EnergyLoss + b.Material.EnergyLoss) / 2)

	ma, mb := a.mass, b.mass
	pa, pb := exchangeMomentum(ma*va, mb*vb, ma, mb, loss)
	dpa, dpb := pa-ma*va, pb-mb*vb
	a.AddLinearImpulse(u.Mul(dpa/dt), dt)
	b.AddLinearImpulse(u.Mul(dpb/dt), dt)

	// Each body's friction is measured against the other's velocity as it is now.
	t := perp(n)
	if rel := a.Velocity.Sub(b.Velocity).Dot(t); rel != 0 {
		f := math32.Min(math32.Abs(rel), math32.Abs(dpa)/ma*a.Material.Friction)
		a.AddLinearImpulse(t.Mul(-sign(rel)*f*ma/dt), dt)
	}
	if rel := a.Velocity.Sub(b.Velocity).Dot(t); rel != 0 {
		f := math32.Min(math32.Abs(rel), math32.Abs(dpb)/mb*b.Material.Friction)
		b.AddLinearImpulse(t.Mul(sign(rel)*f*mb/dt), dt)
	}

	if a.RotationEnabled && b.RotationEnabled {
		ia, ib := a.currentMomentMass, b.currentMomentMass
		if ia > 0 && ib > 0 {
			la, lb := exchangeMomentum(a.AngularVelocity*ia, b.AngularVelocity*ib, ia, ib, loss)
			a.addSpin(la/ia - a.AngularVelocity)
			b.addSpin(lb/ib - b.AngularVelocity)

			// Spin friction at the contact, each body against the other's spin as it is now.
			p := c.Point
			spinFriction(a, p, t, b.spinVelocity(p).Dot(t), math32.Abs(dpa)/ma*a.Material.Friction)
			spinFriction(b, p, t, a.spinVelocity(p).Dot(t), math32.Abs(dpb)/mb*b.Material.Friction)
		}
	}
	if a.RotationEnabled {
		a.RegisterAxisCandidate(c.Point)
	}
	if b.RotationEnabled {
		b.RegisterAxisCandidate(c.Point)
	}

	// Split the escape between the bodies by the other's share of the total mass.
	point := c.Point
	stepA := n.Mul(r.PushOutStep * mb / (ma + mb))
	stepB := n.Mul(-r.PushOutStep * ma / (ma + mb))
	PushOut(func() {
		a.Position = a.Position.Add(stepA)
		b.Position = b.Position.Add(stepB)
		point = point.Add(stepA)
	}, func() bool {
		return surfaceB.ContainsPoint(point)
	}, r.BodyPushOutLimit)
}

// exchangeMomentum returns the post-collision momenta of a 1D collision, blended from the elastic
// result toward the shared-velocity result by loss.
func exchangeMomentum(pa, pb, ma, mb, loss float32) (float32, float32) {
	total := ma + mb
	if total <= 0 {
		return pa, pb
	}
	ea := (pa*(ma-mb) + 2*ma*pb) / total
	eb := (pb*(mb-ma) + 2*mb*pa) / total
	common := (pa + pb) / total
	return ea + (ma*common-ea)*loss, eb + (mb*common-eb)*loss
}

func clamp01(f float32) float32 {
	return mgl32.Clamp(f, 0, 1)
}
