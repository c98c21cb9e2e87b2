package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"puzzle-engine/internal/collide"
	"puzzle-engine/internal/physics"
)

const (
	outlineThickness = 2
	axisMarkerRadius = 3
)

var (
	// Reused every frame to avoid per-frame color allocations.
	blockColor    = rl.NewColor(70, 74, 82, 255)
	blockEdge     = rl.NewColor(110, 116, 128, 255)
	bodyColor     = rl.NewColor(196, 150, 82, 255)
	circleColor   = rl.NewColor(92, 160, 196, 255)
	fixedColor    = rl.NewColor(140, 140, 140, 255)
	selectedColor = rl.NewColor(240, 220, 90, 255)
	axisColor     = rl.NewColor(230, 70, 70, 255)
	dragColor     = rl.NewColor(255, 255, 255, 160)
)

func vec(p mgl32.Vec2) rl.Vector2 {
	return rl.NewVector2(p.X(), p.Y())
}

// DrawBlock draws one piece of static geometry.
func DrawBlock(v View, b collide.Block) {
	topLeft := v.ToScreen(mgl32.Vec2{b.Min.X(), b.Max.Y()})
	size := b.Size().Mul(v.zoom())
	rect := rl.NewRectangle(topLeft.X(), topLeft.Y(), size.X(), size.Y())
	rl.DrawRectangleRec(rect, blockColor)
	rl.DrawRectangleLinesEx(rect, 1, blockEdge)
}

// DrawBody draws a body from its position, angle and scale only. When the body pivots
// around a point other than its center, the pivot is marked.
func DrawBody(v View, b *physics.RigidBody, selected bool) {
	shape := b.Shape()
	fill := bodyColor
	switch {
	case b.Immovable():
		fill = fixedColor
	case shape.Kind == physics.Circle:
		fill = circleColor
	}

	outline := collide.Outline(b)
	if shape.Kind == physics.Circle {
		center := v.ToScreen(b.Position)
		half := shape.HalfExtents(b.Scale()).Mul(v.zoom())
		rl.DrawEllipse(int32(center.X()), int32(center.Y()), half.X(), half.Y(), fill)
		// Spoke so rotation is visible.
		edge := v.ToScreen(b.AbsolutePoint(mgl32.Vec2{shape.Radius, 0}))
		rl.DrawLineEx(vec(center), vec(edge), outlineThickness, rl.Black)
	} else {
		center := v.ToScreen(b.Position)
		half := shape.HalfExtents(b.Scale()).Mul(v.zoom())
		rect := rl.NewRectangle(center.X(), center.Y(), half.X()*2, half.Y()*2)
		rl.DrawRectanglePro(rect, rl.NewVector2(half.X(), half.Y()), ScreenAngle(b.Angle()), fill)
	}
	if selected {
		for i := range outline {
			a := v.ToScreen(outline[i])
			c := v.ToScreen(outline[(i+1)%len(outline)])
			rl.DrawLineEx(vec(a), vec(c), outlineThickness, selectedColor)
		}
	}
	if !b.Centered() {
		pivot := v.ToScreen(b.AbsolutePoint(b.Axis()))
		rl.DrawCircleV(vec(pivot), axisMarkerRadius, axisColor)
	}
}

// DrawWorld draws every static block and body. selected may be nil.
func DrawWorld(v View, w *physics.World, selected *physics.RigidBody) {
	for _, s := range w.Statics {
		if b, ok := s.(collide.Block); ok {
			DrawBlock(v, b)
		}
	}
	for _, b := range w.Bodies {
		DrawBody(v, b, b == selected)
	}
}

// DrawDrag draws the pull line of a mouse drag, in screen pixels.
func DrawDrag(from, to mgl32.Vec2) {
	rl.DrawLineEx(vec(from), vec(to), outlineThickness, dragColor)
}
