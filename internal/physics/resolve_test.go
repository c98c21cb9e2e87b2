package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestPushOut_Terminates(t *testing.T) {
	nudges := 0
	got := PushOut(func() { nudges++ }, func() bool { return true }, 7)
	if got != 7 || nudges != 7 {
		t.Errorf("PushOut = %d with %d nudges, want 7 and 7", got, nudges)
	}

	nudges = 0
	got = PushOut(func() { nudges++ }, func() bool { return nudges < 3 }, 100)
	if got != 3 || nudges != 3 {
		t.Errorf("PushOut = %d with %d nudges, want 3 and 3", got, nudges)
	}
}

func TestResolveStatic_PushOutCapped(t *testing.T) {
	b := newTestBox()
	b.RotationEnabled = false
	b.Velocity = mgl32.Vec2{0, -1}
	floor := &surfaceStub{direction: 90, contains: true}
	r := Resolver{PushOutStep: 1, StaticPushOutLimit: 7, BodyPushOutLimit: 3}

	r.ResolveStatic(b, []Contact{{Point: mgl32.Vec2{0, -10}, Direction: 90}}, floor, 1)

	if !approx(b.Position.Y(), 7) {
		t.Errorf("position.y = %f, want 7 after a capped push-out", b.Position.Y())
	}
	if floor.queries != 7 {
		t.Errorf("overlap queries = %d, want 7", floor.queries)
	}
}

func TestBounceWithoutRotation_SeparatingIsUntouched(t *testing.T) {
	b := newTestBox()
	b.Velocity = mgl32.Vec2{1, 2}
	floor := &surfaceStub{direction: 90, contains: true}

	applied := DefaultResolver.BounceWithoutRotation(b, Contact{Point: mgl32.Vec2{0, -10}, Direction: 90}, floor, 1)

	if applied {
		t.Error("bounce applied to a body moving away")
	}
	if b.Velocity != (mgl32.Vec2{1, 2}) || b.Position != (mgl32.Vec2{}) {
		t.Errorf("velocity=%v position=%v, want unchanged", b.Velocity, b.Position)
	}
	if floor.queries != 0 {
		t.Errorf("push-out ran %d queries for a separating body", floor.queries)
	}
}

func TestResolveStatic_Bounciness(t *testing.T) {
	floor := &surfaceStub{direction: 90}
	contact := []Contact{{Point: mgl32.Vec2{0, -10}, Direction: 90}}

	elastic := newTestBox()
	elastic.RotationEnabled = false
	elastic.Material = Material{Bounciness: 1}
	elastic.Velocity = mgl32.Vec2{0, -2}
	ResolveStatic(elastic, contact, floor, 1)
	assertVec(t, "elastic velocity", elastic.Velocity, mgl32.Vec2{0, 2})

	absorbed := newTestBox()
	absorbed.RotationEnabled = false
	absorbed.Material = Material{Bounciness: 0}
	absorbed.Velocity = mgl32.Vec2{0, -2}
	ResolveStatic(absorbed, contact, floor, 1)
	assertVec(t, "absorbed velocity", absorbed.Velocity, mgl32.Vec2{0, 0})
}

func TestResolveStatic_FrictionDoesNotOvershoot(t *testing.T) {
	b := newTestBox()
	b.RotationEnabled = false
	b.Material = Material{Bounciness: 0, Friction: 10}
	b.Velocity = mgl32.Vec2{3, -1}

	ResolveStatic(b, []Contact{{Point: mgl32.Vec2{0, -10}, Direction: 90}}, &surfaceStub{direction: 90}, 1)

	assertVec(t, "velocity", b.Velocity, mgl32.Vec2{0, 0})

	slide := newTestBox()
	slide.RotationEnabled = false
	slide.Material = Material{Bounciness: 0, Friction: 0.5}
	slide.Velocity = mgl32.Vec2{3, -1}
	ResolveStatic(slide, []Contact{{Point: mgl32.Vec2{0, -10}, Direction: 90}}, &surfaceStub{direction: 90}, 1)
	assertVec(t, "sliding velocity", slide.Velocity, mgl32.Vec2{2.5, 0})
}

func TestResolveStatic_CounterSpin(t *testing.T) {
	b := newTestBox()
	b.Position = mgl32.Vec2{0, 10}
	b.Velocity = mgl32.Vec2{0, -1}
	b.AngularVelocity = 5
	b.Material = Material{Bounciness: 0, Friction: 0}
	point := mgl32.Vec2{-10, 0}
	up := mgl32.Vec2{0, 1}
	if before := b.spinVelocity(point).Dot(up); before >= 0 {
		t.Fatalf("spin velocity along the normal = %f, want it driving into the floor", before)
	}

	ResolveStatic(b, []Contact{{Point: point, Direction: 90}}, &surfaceStub{direction: 90}, 1)

	if got := b.spinVelocity(point).Dot(up); !approx(got, 0) {
		t.Errorf("spin velocity along the normal = %f, want 0", got)
	}
	if b.AngularVelocity < -tolerance || b.AngularVelocity >= 5 {
		t.Errorf("angular velocity = %f, want reduced but not reversed", b.AngularVelocity)
	}
	if b.AxisCandidates() != 1 {
		t.Errorf("candidates = %d, want the contact registered", b.AxisCandidates())
	}
}

func TestResolveStatic_SpinFrictionCapped(t *testing.T) {
	b := newTestBox()
	b.Position = mgl32.Vec2{0, 10}
	b.Velocity = mgl32.Vec2{0, -1}
	// Clockwise spin lifts the bottom-left corner away from the floor.
	b.AngularVelocity = -5
	b.Material = Material{Bounciness: 0, Friction: 0.5}

	ResolveStatic(b, []Contact{{Point: mgl32.Vec2{-10, 0}, Direction: 90}}, &surfaceStub{direction: 90}, 1)

	// Tangential spin speed 0.87 at the corner, capped at approach speed 1 * friction 0.5,
	// over a lever of 10: 0.05 rad less spin.
	want := -5 + mgl32.RadToDeg(0.05)
	if !approx(b.AngularVelocity, want) {
		t.Errorf("angular velocity = %f, want %f", b.AngularVelocity, want)
	}
	if !approx(AngleDifference(b.Angle(), mgl32.RadToDeg(0.05)), 0) {
		t.Errorf("angle = %f, want the friction turn applied at once", b.Angle())
	}
}

func TestResolveBodies_SymmetricElasticSwap(t *testing.T) {
	a, b := newTestBox(), newTestBox()
	for _, body := range []*RigidBody{a, b} {
		body.RotationEnabled = false
		body.Material = Material{EnergyLoss: 0}
	}
	a.Velocity = mgl32.Vec2{1, 0}
	b.Position = mgl32.Vec2{20, 0}
	b.Velocity = mgl32.Vec2{-1, 0}

	ResolveBodies(a, b, []Contact{{Point: mgl32.Vec2{10, 0}, Direction: 180}}, &surfaceStub{direction: 180}, 1)

	assertVec(t, "a velocity", a.Velocity, mgl32.Vec2{-1, 0})
	assertVec(t, "b velocity", b.Velocity, mgl32.Vec2{1, 0})
}

func TestResolveBodies_InelasticSharesVelocity(t *testing.T) {
	a := NewBody(NewBox(10, 10), 2)
	b := NewBody(NewBox(10, 10), 1)
	for _, body := range []*RigidBody{a, b} {
		body.RotationEnabled = false
		body.Material = Material{EnergyLoss: 1}
	}
	a.Velocity = mgl32.Vec2{1, 0}

	ResolveBodies(a, b, []Contact{{Point: mgl32.Vec2{5, 0}, Direction: 180}}, &surfaceStub{direction: 180}, 1)

	assertVec(t, "a velocity", a.Velocity, mgl32.Vec2{2.0 / 3, 0})
	assertVec(t, "b velocity", b.Velocity, mgl32.Vec2{2.0 / 3, 0})
}

func TestResolveBodies_SeparatingIsUntouched(t *testing.T) {
	a, b := newTestBox(), newTestBox()
	a.Velocity = mgl32.Vec2{-1, 0}
	b.Velocity = mgl32.Vec2{1, 0}
	surface := &surfaceStub{direction: 180, contains: true}

	ResolveBodies(a, b, []Contact{{Point: mgl32.Vec2{10, 0}, Direction: 180}}, surface, 1)

	assertVec(t, "a velocity", a.Velocity, mgl32.Vec2{-1, 0})
	assertVec(t, "b velocity", b.Velocity, mgl32.Vec2{1, 0})
	if surface.queries != 0 || a.AxisCandidates() != 0 {
		t.Errorf("separating pair was resolved (queries=%d)", surface.queries)
	}
}

func TestResolveBodies_FrictionStopsAtZeroRelativeSpeed(t *testing.T) {
	a, b := newTestBox(), newTestBox()
	for _, body := range []*RigidBody{a, b} {
		body.RotationEnabled = false
		body.Material = Material{Friction: 100}
	}
	a.Velocity = mgl32.Vec2{1, 0.5}
	b.Velocity = mgl32.Vec2{-1, 0}

	ResolveBodies(a, b, []Contact{{Point: mgl32.Vec2{10, 0}, Direction: 180}}, &surfaceStub{direction: 180}, 1)

	if rel := a.Velocity.Y() - b.Velocity.Y(); !approx(rel, 0) {
		t.Errorf("relative tangential speed = %f, want 0", rel)
	}
}

func TestResolveBodies_RotationalExchange(t *testing.T) {
	a, b := newTestBox(), newTestBox()
	for _, body := range []*RigidBody{a, b} {
		body.Material = Material{EnergyLoss: 0}
	}
	a.Velocity = mgl32.Vec2{1, 0}
	a.AngularVelocity = 10
	b.Position = mgl32.Vec2{20, 0}

	ResolveBodies(a, b, []Contact{{Point: mgl32.Vec2{10, 0}, Direction: 180}}, &surfaceStub{direction: 180}, 1)

	if !approx(a.AngularVelocity, 0) || !approx(b.AngularVelocity, 10) {
		t.Errorf("angular velocities = %f, %f; want 0, 10", a.AngularVelocity, b.AngularVelocity)
	}
	// The change in spin turns each body in the same step.
	if !approx(AngleDifference(a.Angle(), -10), 0) || !approx(AngleDifference(b.Angle(), 10), 0) {
		t.Errorf("angles = %f, %f; want 350, 10", a.Angle(), b.Angle())
	}
	if a.AxisCandidates() != 1 || b.AxisCandidates() != 1 {
		t.Errorf("candidates = %d, %d; want 1 each", a.AxisCandidates(), b.AxisCandidates())
	}
}

func TestResolveBodies_SpinFrictionMatchesContactSpeeds(t *testing.T) {
	a, b := newTestBox(), newTestBox()
	for _, body := range []*RigidBody{a, b} {
		body.Material = Material{EnergyLoss: 0, Friction: 1}
	}
	a.Velocity = mgl32.Vec2{1, 0}
	a.AngularVelocity = 10
	b.Position = mgl32.Vec2{20, 0}
	point := mgl32.Vec2{10, 0}

	ResolveBodies(a, b, []Contact{{Point: point, Direction: 180}}, &surfaceStub{direction: 180}, 1)

	// After the swap b spins at 10 and a at 0; friction then meshes them at 0.1 rad each.
	want := mgl32.RadToDeg(0.1)
	if !approx(a.AngularVelocity, -want) || !approx(b.AngularVelocity, want) {
		t.Errorf("angular velocities = %f, %f; want %f, %f", a.AngularVelocity, b.AngularVelocity, -want, want)
	}
	tangent := mgl32.Vec2{0, -1}
	if rel := a.spinVelocity(point).Sub(b.spinVelocity(point)).Dot(tangent); !approx(rel, 0) {
		t.Errorf("relative spin speed at the contact = %f, want 0", rel)
	}
}

func TestResolveBodies_PushOutSplitsByMass(t *testing.T) {
	a := NewBody(NewBox(10, 10), 3)
	b := NewBody(NewBox(10, 10), 1)
	a.RotationEnabled, b.RotationEnabled = false, false
	a.Velocity = mgl32.Vec2{1, 0}
	r := Resolver{PushOutStep: 1, StaticPushOutLimit: 100, BodyPushOutLimit: 4}

	r.ResolveBodies(a, b, []Contact{{Point: mgl32.Vec2{5, 0}, Direction: 180}}, &surfaceStub{direction: 180, contains: true}, 1)

	// a is three times heavier, so it takes a quarter of each nudge.
	if !approx(a.Position.X(), -1) || !approx(b.Position.X(), 3) {
		t.Errorf("positions = %f, %f; want -1, 3", a.Position.X(), b.Position.X())
	}
}

func TestResolveBodies_ImmovableOtherActsStatic(t *testing.T) {
	a := newTestBox()
	a.RotationEnabled = false
	a.Material = Material{Bounciness: 1}
	a.Velocity = mgl32.Vec2{1, 0}
	wall := NewBody(NewBox(10, 10), 0)

	ResolveBodies(a, wall, []Contact{{Point: mgl32.Vec2{10, 0}, Direction: 180}}, &surfaceStub{direction: 180}, 1)

	assertVec(t, "velocity", a.Velocity, mgl32.Vec2{-1, 0})
}
