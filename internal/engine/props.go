package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// Vec3 is a vector as written in scene files: [x, y, z].
type Vec3 [3]float32

func (v Vec3) Vector3() rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// Vec3Of is the inverse of Vector3.
func Vec3Of(v rl.Vector3) Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}
