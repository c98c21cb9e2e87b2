package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// View maps world coordinates (y up) to screen pixels (y down).
// Center is the world point drawn at the middle of the screen.
type View struct {
	Center mgl32.Vec2
	Zoom   float32
	Width  float32
	Height float32
}

// NewView returns a view of a width×height screen whose bottom-left corner is world (0,0).
func NewView(width, height float32) View {
	return View{
		Center: mgl32.Vec2{width / 2, height / 2},
		Zoom:   1,
		Width:  width,
		Height: height,
	}
}

// ToScreen converts a world point to screen pixels.
func (v View) ToScreen(p mgl32.Vec2) mgl32.Vec2 {
	d := p.Sub(v.Center).Mul(v.zoom())
	return mgl32.Vec2{v.Width/2 + d.X(), v.Height/2 - d.Y()}
}

// ToWorld converts screen pixels to a world point.
func (v View) ToWorld(p mgl32.Vec2) mgl32.Vec2 {
	z := v.zoom()
	return mgl32.Vec2{
		v.Center.X() + (p.X()-v.Width/2)/z,
		v.Center.Y() - (p.Y()-v.Height/2)/z,
	}
}

// ScreenAngle converts a counter-clockwise world angle to raylib's clockwise screen rotation.
func ScreenAngle(deg float32) float32 {
	return -deg
}

func (v View) zoom() float32 {
	if v.Zoom <= 0 {
		return 1
	}
	return v.Zoom
}
