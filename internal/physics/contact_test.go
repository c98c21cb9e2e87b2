package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// pointSurface answers SurfaceDirection per point; unknown points get fallback.
type pointSurface struct {
	directions map[mgl32.Vec2]float32
	fallback   float32
}

func (s pointSurface) SurfaceDirection(p mgl32.Vec2) float32 {
	if d, ok := s.directions[p]; ok {
		return d
	}
	return s.fallback
}

func (s pointSurface) ContainsPoint(mgl32.Vec2) bool { return false }

func TestGroupContacts_Empty(t *testing.T) {
	if got := GroupContacts(nil, &surfaceStub{}); got != nil {
		t.Errorf("GroupContacts(nil) = %v, want nil", got)
	}
}

func TestGroupContacts_SinglePoint(t *testing.T) {
	got := GroupContacts([]mgl32.Vec2{{3, 4}}, &surfaceStub{direction: 45})
	if len(got) != 1 {
		t.Fatalf("contacts = %d, want 1", len(got))
	}
	if got[0].Direction != 45 {
		t.Errorf("direction = %f, want 45", got[0].Direction)
	}
	assertVec(t, "point", got[0].Point, mgl32.Vec2{3, 4})
}

func TestGroupContacts_CollinearPointsMerge(t *testing.T) {
	points := []mgl32.Vec2{{0, 0}, {5, 0.05}, {10, 0}}
	got := GroupContacts(points, &surfaceStub{direction: 85})
	if len(got) != 1 {
		t.Fatalf("contacts = %d, want 1", len(got))
	}
	assertVec(t, "point", got[0].Point, mgl32.Vec2{5, 0.05 / 3})
	if !approx(got[0].Direction, 85) {
		t.Errorf("direction = %f, want snapped 85", got[0].Direction)
	}
}

func TestGroupContacts_CollinearUsesEdgeNormal(t *testing.T) {
	points := []mgl32.Vec2{{0, 0}, {10, 0}}
	got := GroupContacts(points, &surfaceStub{direction: 120})
	if len(got) != 1 || !approx(got[0].Direction, 90) {
		t.Fatalf("contacts = %+v, want one contact facing 90", got)
	}

	flipped := GroupContacts(points, &surfaceStub{direction: 240})
	if len(flipped) != 1 || !approx(flipped[0].Direction, 270) {
		t.Errorf("contacts = %+v, want one contact facing 270", flipped)
	}
}

func TestGroupContacts_CloserEndpointDecides(t *testing.T) {
	surface := pointSurface{directions: map[mgl32.Vec2]float32{
		{0, 0}:  135,
		{10, 0}: 272,
	}}
	got := GroupContacts([]mgl32.Vec2{{0, 0}, {10, 0}}, surface)
	if len(got) != 1 || !approx(got[0].Direction, 272) {
		t.Errorf("contacts = %+v, want one contact snapped to 272", got)
	}
}

func TestGroupContacts_NonCollinearStaySeparate(t *testing.T) {
	points := []mgl32.Vec2{{0, 0}, {10, 0}, {5, 5}}
	got := GroupContacts(points, &surfaceStub{direction: 90})
	if len(got) != 3 {
		t.Fatalf("contacts = %d, want 3", len(got))
	}
	for i, c := range got {
		if c.Point != points[i] {
			t.Errorf("contact %d point = %v, want %v", i, c.Point, points[i])
		}
	}
}

func TestGroupContacts_CoincidentPointsCollapse(t *testing.T) {
	got := GroupContacts([]mgl32.Vec2{{2, 2}, {2, 2}}, &surfaceStub{direction: 0})
	if len(got) != 1 {
		t.Fatalf("contacts = %d, want 1", len(got))
	}
	assertVec(t, "point", got[0].Point, mgl32.Vec2{2, 2})
}
