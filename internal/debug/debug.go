package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"puzzle-engine/internal/physics"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh FPS text every N frames to reduce allocations.
	updateInterval = 30
)

var panelColor = rl.NewColor(20, 20, 24, 200)

// Debug holds runtime debugging overlays: FPS and the state of the selected body.
type Debug struct {
	ShowFPS     bool
	ShowBody    bool
	frameCount  uint32
	lastFpsText string
}

// New returns a Debug system showing the body inspector and, if showFPS, the FPS counter.
func New(showFPS bool) *Debug {
	return &Debug{ShowFPS: showFPS, ShowBody: true}
}

// BodyLines describes b for the inspector panel.
func BodyLines(b *physics.RigidBody) []string {
	if b == nil {
		return nil
	}
	axis := "center"
	if !b.Centered() {
		axis = fmt.Sprintf("(%.1f, %.1f)", b.Axis().X(), b.Axis().Y())
	}
	return []string{
		fmt.Sprintf("%s  mass %.1f", b.Shape().Kind, b.Mass()),
		fmt.Sprintf("pos (%.1f, %.1f)  angle %.1f", b.Position.X(), b.Position.Y(), b.Angle()),
		fmt.Sprintf("vel (%.2f, %.2f)  spin %.2f", b.Velocity.X(), b.Velocity.Y(), b.AngularVelocity),
		fmt.Sprintf("inertia %.0f / %.0f  axis %s", b.CurrentMomentMass(), b.DefaultMomentMass(), axis),
	}
}

// Draw renders the enabled overlays. Call after the world and terminal in the draw loop.
// FPS is drawn at the top-right in green; the selected body's state at the top-left.
// FPS text is only recomputed every updateInterval frames to limit allocations.
func (d *Debug) Draw(selected *physics.RigidBody, paused bool) {
	d.frameCount++
	if d.ShowFPS && (d.lastFpsText == "" || d.frameCount%updateInterval == 0) {
		d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	if d.ShowFPS {
		w := rl.MeasureText(d.lastFpsText, fontSize)
		rl.DrawText(d.lastFpsText, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}
	if paused {
		w := rl.MeasureText("PAUSED", fontSize)
		rl.DrawText("PAUSED", screenW-w-padding, y, fontSize, rl.Yellow)
	}

	if !d.ShowBody {
		return
	}
	lines := BodyLines(selected)
	if len(lines) == 0 {
		return
	}
	var width int32
	for _, l := range lines {
		if w := rl.MeasureText(l, fontSize); w > width {
			width = w
		}
	}
	rl.DrawRectangle(padding/2, padding/2, width+padding, int32(len(lines))*lineHeight+padding, panelColor)
	for i, l := range lines {
		rl.DrawText(l, padding, padding+int32(i)*lineHeight, fontSize, rl.LightGray)
	}
}
