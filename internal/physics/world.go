package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Collision is one overlap reported by a Detector. B is nil when the body touches static geometry.
// Surface is the shape of whatever A touches; Points are the absolute overlap points.
type Collision struct {
	A       *RigidBody
	B       *RigidBody
	Surface Surface
	Points  []mgl32.Vec2
}

// Detector finds overlaps after the bodies have moved. Detection lives outside the physics core.
type Detector interface {
	Detect(w *World) []Collision
}

// World holds a set of bodies and runs one step at a time: integrate, detect, resolve, commit axes.
type World struct {
	Gravity  mgl32.Vec2
	Bodies   []*RigidBody
	Statics  []Surface
	Detector Detector
	Resolver Resolver

	// MaxStepSize is the largest dt handed to a single Step by Update.
	MaxStepSize float32
	// MaxStepsPerCall caps how many steps one Update may simulate.
	MaxStepsPerCall float32
}

// NewWorld returns an empty world without gravity using DefaultResolver.
func NewWorld(d Detector) *World {
	return &World{
		Detector:        d,
		Resolver:        DefaultResolver,
		MaxStepSize:     1,
		MaxStepsPerCall: 5,
	}
}

// AddBody appends a body. Order is preserved and is the order contacts are resolved in.
func (w *World) AddBody(b *RigidBody) {
	w.Bodies = append(w.Bodies, b)
}

// RemoveBody drops b from the world. It reports whether b was present.
func (w *World) RemoveBody(b *RigidBody) bool {
	for i, other := range w.Bodies {
		if other == b {
			w.Bodies = append(w.Bodies[:i], w.Bodies[i+1:]...)
			return true
		}
	}
	return false
}

// AddStatic appends immovable geometry.
func (w *World) AddStatic(s Surface) {
	w.Statics = append(w.Statics, s)
}

// Update simulates steps nominal steps, clamped to MaxStepsPerCall and split into sub-steps
// no larger than MaxStepSize. It returns the number of steps simulated.
func (w *World) Update(steps float32) float32 {
	if steps <= 0 {
		return 0
	}
	if w.MaxStepsPerCall > 0 {
		steps = math32.Min(steps, w.MaxStepsPerCall)
	}
	size := w.MaxStepSize
	if size <= 0 {
		size = steps
	}
	done := float32(0)
	for done < steps {
		dt := math32.Min(size, steps-done)
		w.Step(dt)
		done += dt
	}
	return done
}

// Step advances every body by dt, then resolves the contacts the detector reports, in order.
func (w *World) Step(dt float32) {
	if dt <= 0 {
		return
	}
	for _, b := range w.Bodies {
		if b.Immovable() {
			continue
		}
		if w.Gravity != (mgl32.Vec2{}) {
			b.Velocity = b.Velocity.Add(w.Gravity.Mul(dt))
		}
		b.Advance(dt)
	}

	if w.Detector != nil {
		for _, c := range w.Detector.Detect(w) {
			if c.A == nil || c.Surface == nil {
				continue
			}
			contacts := GroupContacts(c.Points, c.Surface)
			if c.B == nil {
				w.Resolver.ResolveStatic(c.A, contacts, c.Surface, dt)
			} else {
				w.Resolver.ResolveBodies(c.A, c.B, contacts, c.Surface, dt)
			}
		}
	}

	for _, b := range w.Bodies {
		b.CommitAxisCandidates()
	}
}
