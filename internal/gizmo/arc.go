package gizmo

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// MaxArcPoints bounds the arc to one point per degree of a full turn.
const MaxArcPoints = 360

// Arc samples one point per whole degree in [0, degrees), rotating the unit
// direction around axis and offsetting it by origin. The number of points is
// capped at maxPoints (MaxArcPoints when maxPoints <= 0 or larger).
// Returns nil for a zero direction, a zero axis or a non-positive sweep.
func Arc(origin, direction, axis rl.Vector3, degrees float32, maxPoints int) []rl.Vector3 {
	if degrees <= 0 || math.IsNaN(float64(degrees)) {
		return nil
	}
	dir := toVec(direction)
	ax := toVec(axis)
	if dir.Len() == 0 || ax.Len() == 0 {
		return nil
	}
	dir = dir.Normalize()
	ax = ax.Normalize()

	if maxPoints <= 0 || maxPoints > MaxArcPoints {
		maxPoints = MaxArcPoints
	}
	count := maxPoints
	if float64(degrees) < float64(maxPoints) {
		count = int(math.Ceil(float64(degrees)))
	}

	o := toVec(origin)
	points := make([]rl.Vector3, count)
	for i := range count {
		q := mgl32.QuatRotate(mgl32.DegToRad(float32(i)), ax)
		points[i] = fromVec(o.Add(q.Rotate(dir)))
	}
	return points
}

// WrapDegrees maps a signed angle onto [0, 360).
func WrapDegrees(deg float32) float32 {
	w := float32(math.Mod(float64(deg), 360))
	if w < 0 {
		w += 360
	}
	return w
}

func toVec(v rl.Vector3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

func fromVec(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}
