package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// epsilon is the magnitude below which a vector or radius is treated as zero.
const epsilon = 1e-4

// DirectionVector returns the unit vector pointing at angle degrees.
func DirectionVector(deg float32) mgl32.Vec2 {
	rad := mgl32.DegToRad(deg)
	return mgl32.Vec2{math32.Cos(rad), math32.Sin(rad)}
}

// VectorDirection returns the angle of v in degrees, in [0, 360). Zero vectors return 0.
func VectorDirection(v mgl32.Vec2) float32 {
	if v.Len() < epsilon {
		return 0
	}
	return NormalizeAngle(mgl32.RadToDeg(math32.Atan2(v.Y(), v.X())))
}

// NormalizeAngle wraps deg into [0, 360).
func NormalizeAngle(deg float32) float32 {
	deg = math32.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// AngleDifference returns the smallest absolute difference between two angles, in [0, 180].
func AngleDifference(a, b float32) float32 {
	d := NormalizeAngle(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// rotateVec rotates v by deg degrees counter-clockwise (in y-up terms).
func rotateVec(v mgl32.Vec2, deg float32) mgl32.Vec2 {
	if deg == 0 {
		return v
	}
	return mgl32.Rotate2D(mgl32.DegToRad(deg)).Mul2x1(v)
}

// rotateAround rotates p around pivot by deg degrees.
func rotateAround(p, pivot mgl32.Vec2, deg float32) mgl32.Vec2 {
	return pivot.Add(rotateVec(p.Sub(pivot), deg))
}

// perp returns v rotated by +90 degrees.
func perp(v mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{-v.Y(), v.X()}
}

// cross is the z component of the 3D cross product of a and b.
func cross(a, b mgl32.Vec2) float32 {
	return a.X()*b.Y() - a.Y()*b.X()
}

func sign(f float32) float32 {
	if f < 0 {
		return -1
	}
	return 1
}

// shrinkToward reduces |v| by amount, stopping at zero.
func shrinkToward(v, amount float32) float32 {
	if amount <= 0 {
		return v
	}
	if math32.Abs(v) <= amount {
		return 0
	}
	return v - sign(v)*amount
}

// mulElem scales a by b component-wise.
func mulElem(a, b mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{a.X() * b.X(), a.Y() * b.Y()}
}
