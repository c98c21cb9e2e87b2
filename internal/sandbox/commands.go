package sandbox

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"puzzle-engine/internal/bodydef"
	"puzzle-engine/internal/commands"
	"puzzle-engine/internal/physconfig"
)

func (s *Sandbox) registerCommands() {
	reg := s.Commands

	spawnFS := flag.NewFlagSet("spawn", flag.ContinueOnError)
	spawnX := spawnFS.Float64("x", float64(s.Config.WindowWidth)/2, "world x")
	spawnY := spawnFS.Float64("y", float64(s.Config.WindowHeight)*3/4, "world y")
	spawnAngle := spawnFS.Float64("angle", 0, "initial angle in degrees")
	reg.Register("spawn", "spawn [--x --y --angle] <preset>", spawnFS, func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("spawn needs one preset: %s", strings.Join(bodydef.Names(s.Presets), ", "))
		}
		b, err := s.Spawn(args[0], mgl32.Vec2{float32(*spawnX), float32(*spawnY)})
		if err != nil {
			return err
		}
		b.SetAngle(float32(*spawnAngle))
		s.Selected = b
		s.log.Logf("spawned %s at %.0f,%.0f", args[0], *spawnX, *spawnY)
		return nil
	})

	impulseFS := flag.NewFlagSet("impulse", flag.ContinueOnError)
	fx := impulseFS.Float64("fx", 0, "force x")
	fy := impulseFS.Float64("fy", 0, "force y")
	px := impulseFS.Float64("px", 0, "application point x, relative to the body")
	py := impulseFS.Float64("py", 0, "application point y, relative to the body")
	reg.Register("impulse", "impulse --fx --fy [--px --py] (selected body)", impulseFS, func([]string) error {
		b := s.Selected
		if b == nil {
			return errors.New("no body selected")
		}
		point := b.AbsolutePoint(mgl32.Vec2{float32(*px), float32(*py)})
		b.AddImpulse(mgl32.Vec2{float32(*fx), float32(*fy)}, point, 1)
		return nil
	})

	reg.Register("pause", "toggle pause", nil, func([]string) error {
		s.paused = !s.paused
		s.pending = 0
		return nil
	})

	stepFS := flag.NewFlagSet("step", flag.ContinueOnError)
	stepN := stepFS.Int("n", 1, "number of steps")
	reg.Register("step", "step [--n] (while paused)", stepFS, func([]string) error {
		if !s.paused {
			return errors.New("step only works while paused")
		}
		if *stepN < 1 {
			return errors.New("--n must be at least 1")
		}
		s.pending += *stepN
		return nil
	})

	gravityFS := flag.NewFlagSet("gravity", flag.ContinueOnError)
	var gx, gy commands.OptionalFloat
	gravityFS.Var(&gx, "x", "gravity x (unchanged when omitted)")
	gravityFS.Var(&gy, "y", "gravity y (unchanged when omitted)")
	reg.Register("gravity", "gravity [--x] [--y]", gravityFS, func([]string) error {
		s.Config.GravityX = float32(gx.Or(float64(s.Config.GravityX)))
		s.Config.GravityY = float32(gy.Or(float64(s.Config.GravityY)))
		s.World.Gravity = s.Config.Gravity()
		return nil
	})

	reg.Register("clear", "remove every body", nil, func([]string) error {
		s.Clear()
		return nil
	})

	reg.Register("save", "write the current config", nil, func([]string) error {
		if err := physconfig.SaveTo(s.ConfigPath, s.Config); err != nil {
			return err
		}
		s.log.Log("saved " + s.ConfigPath)
		return nil
	})

	reg.Register("help", "list commands", nil, func([]string) error {
		for _, line := range reg.Help() {
			s.log.Log(line)
		}
		return nil
	})
}
