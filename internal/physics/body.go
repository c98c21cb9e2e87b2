package physics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Unbounded disables a MaxSpeed or MaxAngularSpeed limit.
const Unbounded = -1

// Material holds the per-body collision response coefficients.
// Bounciness is in [0, ∞): 0 absorbs the approach speed, 1 reflects it.
// Friction scales the tangential impulse relative to the normal one.
// EnergyLoss is in [0, 1]: 0 exchanges momentum elastically, 1 fully inelastically.
type Material struct {
	Bounciness float32
	Friction   float32
	EnergyLoss float32
}

// DefaultMaterial is used by NewBody.
var DefaultMaterial = Material{Bounciness: 0.5, Friction: 0.3, EnergyLoss: 0.1}

// RigidBody is a movable physical entity. Position is the world location of the shape origin.
// Velocity is in units per step and AngularVelocity in degrees per step.
// Mass and moment mass are derived from shape, scale and density; change those through the setters.
type RigidBody struct {
	Position        mgl32.Vec2
	Velocity        mgl32.Vec2
	AngularVelocity float32

	LinearFriction  float32
	AngularFriction float32
	MaxSpeed        float32
	MaxAngularSpeed float32

	Material        Material
	RotationEnabled bool

	angle   float32
	scale   mgl32.Vec2
	shape   Shape
	density float32

	mass              float32
	defaultMomentMass float32
	currentMomentMass float32

	axis       mgl32.Vec2
	idleSteps  int
	contacted  bool
	candidates candidateBuffer
}

// NewBody returns a body at rest at the origin, with scale (1,1), no speed limits and the default axis.
func NewBody(shape Shape, density float32) *RigidBody {
	b := &RigidBody{
		MaxSpeed:        Unbounded,
		MaxAngularSpeed: Unbounded,
		Material:        DefaultMaterial,
		RotationEnabled: true,
		scale:           mgl32.Vec2{1, 1},
		shape:           shape,
		density:         density,
		idleSteps:       IdleResetSteps,
	}
	b.recomputeMass()
	return b
}

// Angle returns the orientation in degrees, in [0, 360).
func (b *RigidBody) Angle() float32 { return b.angle }

// SetAngle sets the orientation. The value is normalized to [0, 360).
func (b *RigidBody) SetAngle(deg float32) {
	b.angle = NormalizeAngle(deg)
}

// Scale returns the non-uniform scale factors.
func (b *RigidBody) Scale() mgl32.Vec2 { return b.scale }

// Shape returns the unscaled shape.
func (b *RigidBody) Shape() Shape { return b.shape }

// Density returns the density used to derive mass.
func (b *RigidBody) Density() float32 { return b.density }

// Mass returns the derived mass.
func (b *RigidBody) Mass() float32 { return b.mass }

// DefaultMomentMass returns the moment of inertia about the shape origin.
func (b *RigidBody) DefaultMomentMass() float32 { return b.defaultMomentMass }

// CurrentMomentMass returns the moment of inertia about the current rotation axis.
func (b *RigidBody) CurrentMomentMass() float32 { return b.currentMomentMass }

// SetScale changes the scale and recomputes mass. A rotating body keeps its angular momentum.
func (b *RigidBody) SetScale(scale mgl32.Vec2) {
	b.scale = scale
	b.recomputeMass()
}

// SetDensity changes the density and recomputes mass.
func (b *RigidBody) SetDensity(density float32) {
	b.density = density
	b.recomputeMass()
}

// SetShape changes the shape and recomputes mass.
func (b *RigidBody) SetShape(shape Shape) {
	b.shape = shape
	b.recomputeMass()
}

func (b *RigidBody) recomputeMass() {
	oldMoment := b.currentMomentMass
	b.mass = b.shape.Mass(b.scale, b.density)
	b.defaultMomentMass = b.shape.MomentMass(b.scale, b.mass)
	b.currentMomentMass = b.defaultMomentMass + b.mass*b.scaledAxisRadiusSqr(b.axis)
	if b.AngularVelocity != 0 && oldMoment > 0 && b.currentMomentMass > 0 {
		b.AngularVelocity = b.AngularVelocity * oldMoment / b.currentMomentMass
	}
}

// Speed returns the length of the velocity vector.
func (b *RigidBody) Speed() float32 { return b.Velocity.Len() }

// Direction returns the direction of motion in degrees. A body at rest reports 0.
func (b *RigidBody) Direction() float32 { return VectorDirection(b.Velocity) }

// SetMotion sets the velocity from a direction in degrees and a speed.
func (b *RigidBody) SetMotion(directionDeg, speed float32) {
	b.Velocity = DirectionVector(directionDeg).Mul(speed)
}

// AbsolutePoint transforms a relative (unscaled, unrotated) point into world space.
func (b *RigidBody) AbsolutePoint(rel mgl32.Vec2) mgl32.Vec2 {
	return b.Position.Add(rotateVec(mulElem(rel, b.scale), b.angle))
}

// RelativePoint transforms a world point into the body's unscaled, unrotated frame.
// A zero scale component maps to 0 on that axis.
func (b *RigidBody) RelativePoint(abs mgl32.Vec2) mgl32.Vec2 {
	local := rotateVec(abs.Sub(b.Position), -b.angle)
	var out mgl32.Vec2
	if b.scale.X() != 0 {
		out[0] = local.X() / b.scale.X()
	}
	if b.scale.Y() != 0 {
		out[1] = local.Y() / b.scale.Y()
	}
	return out
}

// Immovable reports whether the body cannot take impulses.
func (b *RigidBody) Immovable() bool {
	return b.shape.Kind == Wall || b.mass <= 0
}
