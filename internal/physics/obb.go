package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OBB represents an Oriented Bounding Box
type OBB struct {
	Center   rl.Vector3    // World-space center
	HalfSize rl.Vector3    // Half-extents along local axes
	Axes     [3]rl.Vector3 // Local X, Y, Z axes (rotated)
}

// NewOBB creates an OBB from center, full size and a rotation matrix.
func NewOBB(center, size rl.Vector3, rot rl.Matrix) OBB {
	return OBB{
		Center:   center,
		HalfSize: rl.Vector3{X: absf(size.X) / 2, Y: absf(size.Y) / 2, Z: absf(size.Z) / 2},
		Axes: [3]rl.Vector3{
			rl.Vector3Normalize(rl.Vector3{X: rot.M0, Y: rot.M1, Z: rot.M2}),
			rl.Vector3Normalize(rl.Vector3{X: rot.M4, Y: rot.M5, Z: rot.M6}),
			rl.Vector3Normalize(rl.Vector3{X: rot.M8, Y: rot.M9, Z: rot.M10}),
		},
	}
}

// NewAABBasOBB creates an axis-aligned OBB (no rotation)
func NewAABBasOBB(center, size rl.Vector3) OBB {
	return NewOBB(center, size, rl.MatrixIdentity())
}

func (o OBB) halfSize(i int) float32 {
	switch i {
	case 0:
		return o.HalfSize.X
	case 1:
		return o.HalfSize.Y
	}
	return o.HalfSize.Z
}

// WorldAABB returns the smallest axis-aligned box enclosing o.
func (o OBB) WorldAABB() AABB {
	var ext rl.Vector3
	for i := range 3 {
		a := rl.Vector3Scale(o.Axes[i], o.halfSize(i))
		ext.X += absf(a.X)
		ext.Y += absf(a.Y)
		ext.Z += absf(a.Z)
	}
	return AABB{Min: rl.Vector3Subtract(o.Center, ext), Max: rl.Vector3Add(o.Center, ext)}
}

// Inflate grows o so that it contains every point within the world-axis
// extents ext of its surface.
func (o OBB) Inflate(ext rl.Vector3) OBB {
	grown := o
	grow := func(axis rl.Vector3) float32 {
		return absf(axis.X)*ext.X + absf(axis.Y)*ext.Y + absf(axis.Z)*ext.Z
	}
	grown.HalfSize.X += grow(o.Axes[0])
	grown.HalfSize.Y += grow(o.Axes[1])
	grown.HalfSize.Z += grow(o.Axes[2])
	return grown
}

// IntersectsSphere tests if an OBB intersects with a sphere
func (o OBB) IntersectsSphere(center rl.Vector3, radius float32) bool {
	closest := ClosestPointOnOBB(o, center)
	return rl.Vector3DistanceSqr(center, closest) <= radius*radius
}

// IntersectRay returns the entry distance along a unit direction and the
// world normal of the entered face. Rays starting inside the box miss.
func (o OBB) IntersectRay(origin, dir rl.Vector3) (float32, rl.Vector3, bool) {
	local := rl.Vector3Subtract(origin, o.Center)
	tmin := float32(-1e30)
	tmax := float32(1e30)
	entry := -1
	var sign float32

	for i := range 3 {
		axis := o.Axes[i]
		e := rl.Vector3DotProduct(axis, local)
		f := rl.Vector3DotProduct(axis, dir)
		h := o.halfSize(i)

		if absf(f) < 1e-8 {
			if e < -h || e > h {
				return 0, rl.Vector3{}, false
			}
			continue
		}
		t1 := (-h - e) / f
		t2 := (h - e) / f
		s := float32(-1)
		if t1 > t2 {
			t1, t2 = t2, t1
			s = 1
		}
		if t1 > tmin {
			tmin = t1
			entry = i
			sign = s
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, rl.Vector3{}, false
		}
	}

	if entry < 0 || tmin < 0 {
		return 0, rl.Vector3{}, false
	}
	return tmin, rl.Vector3Scale(o.Axes[entry], sign), true
}

// ClosestPointOnOBB returns the closest point on the OBB surface to the given point
func ClosestPointOnOBB(o OBB, point rl.Vector3) rl.Vector3 {
	// Transform point to OBB's local space
	local := rl.Vector3Subtract(point, o.Center)
	result := o.Center
	for i := range 3 {
		d := clampf(rl.Vector3DotProduct(local, o.Axes[i]), -o.halfSize(i), o.halfSize(i))
		result = rl.Vector3Add(result, rl.Vector3Scale(o.Axes[i], d))
	}
	return result
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
