package sandbox

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"puzzle-engine/internal/render"
)

// HandleInput reads the mouse for one frame: left press grabs a body, release flings it.
// Space toggles pause when keyboard input is free (the terminal is closed).
func (s *Sandbox) HandleInput(v render.View, keyboardFree bool) {
	mouse := rl.GetMousePosition()
	world := v.ToWorld(mgl32.Vec2{mouse.X, mouse.Y})

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		s.Grab(world)
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		s.Release(world)
	}
	if keyboardFree && rl.IsKeyPressed(rl.KeySpace) {
		_, _ = s.Commands.Handle("cmd pause")
	}
}

// Draw renders the world and, while dragging, the pull line.
func (s *Sandbox) Draw(v render.View) {
	render.DrawWorld(v, s.World, s.Selected)
	if p, ok := s.GrabPoint(); ok {
		mouse := rl.GetMousePosition()
		render.DrawDrag(v.ToScreen(p), mgl32.Vec2{mouse.X, mouse.Y})
	}
}
