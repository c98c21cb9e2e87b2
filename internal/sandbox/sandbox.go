package sandbox

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"puzzle-engine/internal/bodydef"
	"puzzle-engine/internal/collide"
	"puzzle-engine/internal/commands"
	"puzzle-engine/internal/logger"
	"puzzle-engine/internal/physconfig"
	"puzzle-engine/internal/physics"
)

const (
	// wallThickness is the depth of the floor and side walls around the room.
	wallThickness = 40
	// dragStrength scales a mouse drag (world units) into an impulse per unit of mass.
	dragStrength = 0.05
)

// Sandbox owns the world and everything that pokes at it: presets, commands and mouse drags.
// It is driven from the main thread only.
type Sandbox struct {
	World    *physics.World
	Config   physconfig.Config
	Presets  map[string]bodydef.Def
	Commands *commands.Registry
	Selected *physics.RigidBody

	// ConfigPath is where "cmd save" writes the config.
	ConfigPath string

	log     *logger.Logger
	paused  bool
	pending int
	grab    *grab
}

// grab is a body held by the mouse at a point relative to its origin.
type grab struct {
	body *physics.RigidBody
	rel  mgl32.Vec2
}

// New returns a sandbox with a walled room sized to the configured window.
func New(cfg physconfig.Config, presets map[string]bodydef.Def, log *logger.Logger) *Sandbox {
	w := physics.NewWorld(collide.Detector{})
	cfg.Apply(w)
	s := &Sandbox{
		World:      w,
		Config:     cfg,
		Presets:    presets,
		Commands:   commands.NewRegistry(),
		ConfigPath: physconfig.ConfigPath,
		log:        log,
	}
	s.buildRoom(float32(cfg.WindowWidth), float32(cfg.WindowHeight))
	s.registerCommands()
	return s
}

func (s *Sandbox) buildRoom(width, height float32) {
	s.World.AddStatic(collide.NewBlock(-wallThickness, -wallThickness, width+2*wallThickness, wallThickness))
	s.World.AddStatic(collide.NewBlock(-wallThickness, 0, wallThickness, height))
	s.World.AddStatic(collide.NewBlock(width, 0, wallThickness, height))
}

// Paused reports whether the simulation only advances on "cmd step".
func (s *Sandbox) Paused() bool { return s.paused }

// Tick advances the simulation by one frame of frameSeconds. While paused only queued
// single steps run.
func (s *Sandbox) Tick(frameSeconds float32) {
	if s.paused {
		for ; s.pending > 0; s.pending-- {
			s.World.Step(1)
		}
		return
	}
	s.World.Update(frameSeconds * s.Config.StepsPerSecond)
}

// Spawn builds the named preset at position and adds it to the world.
func (s *Sandbox) Spawn(name string, position mgl32.Vec2) (*physics.RigidBody, error) {
	def, ok := s.Presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset: %s", name)
	}
	b := def.Build(position, s.Config.Material())
	s.World.AddBody(b)
	return b, nil
}

// Clear removes every body.
func (s *Sandbox) Clear() {
	s.World.Bodies = nil
	s.Selected = nil
	s.grab = nil
}

// Grab selects the topmost body under p and holds it at that point. It reports whether a body was hit.
func (s *Sandbox) Grab(p mgl32.Vec2) bool {
	b := collide.Pick(s.World.Bodies, p)
	s.Selected = b
	if b == nil {
		s.grab = nil
		return false
	}
	s.grab = &grab{body: b, rel: b.RelativePoint(p)}
	return true
}

// GrabPoint returns the absolute point currently held, if any.
func (s *Sandbox) GrabPoint() (mgl32.Vec2, bool) {
	if s.grab == nil {
		return mgl32.Vec2{}, false
	}
	return s.grab.body.AbsolutePoint(s.grab.rel), true
}

// Release lets go of the held body, flinging it toward target. The impulse acts at the
// held point, so off-center drags also spin the body.
func (s *Sandbox) Release(target mgl32.Vec2) {
	if s.grab == nil {
		return
	}
	b := s.grab.body
	point := b.AbsolutePoint(s.grab.rel)
	s.grab = nil
	if b.Immovable() {
		return
	}
	force := target.Sub(point).Mul(dragStrength * b.Mass())
	b.AddImpulse(force, point, 1)
}
