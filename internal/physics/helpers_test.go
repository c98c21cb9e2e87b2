package physics

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const tolerance = 1e-3

func approx(a, b float32) bool {
	return math32.Abs(a-b) <= tolerance
}

func approxVec(a, b mgl32.Vec2) bool {
	return approx(a.X(), b.X()) && approx(a.Y(), b.Y())
}

func assertVec(t *testing.T, name string, got, want mgl32.Vec2) {
	t.Helper()
	if !approxVec(got, want) {
		t.Errorf("%s = (%.4f, %.4f), want (%.4f, %.4f)", name, got.X(), got.Y(), want.X(), want.Y())
	}
}

// surfaceStub reports a fixed direction everywhere and counts containment queries.
type surfaceStub struct {
	direction float32
	contains  bool
	queries   int
}

func (s *surfaceStub) SurfaceDirection(mgl32.Vec2) float32 { return s.direction }

func (s *surfaceStub) ContainsPoint(mgl32.Vec2) bool {
	s.queries++
	return s.contains
}

// captureLogger stores logged lines.
type captureLogger struct {
	lines []string
}

func (c *captureLogger) Log(line string) { c.lines = append(c.lines, line) }

// newTestBox returns a rotation-enabled 20x20 box of density 1 (mass 400) at the origin.
func newTestBox() *RigidBody {
	return NewBody(NewBox(20, 20), 1)
}
