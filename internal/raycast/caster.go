// Package raycast wraps the physics world's cast primitives behind a small
// set of convenience calls, plus a component that visualises a cast.
package raycast

import (
	"math"

	"eztester/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Infinity is the cast distance used when a ray is shot without one.
const Infinity = float32(math.MaxFloat32)

// Caster is the set of physics casts the probe delegates to.
// *physics.PhysicsWorld implements it.
type Caster interface {
	Raycast(origin, direction rl.Vector3, maxDistance float32, mask physics.LayerMask) (physics.RaycastHit, bool)
	RaycastAll(origin, direction rl.Vector3, maxDistance float32, mask physics.LayerMask) []physics.RaycastHit
	SphereCast(origin rl.Vector3, radius float32, direction rl.Vector3, maxDistance float32, mask physics.LayerMask) (physics.RaycastHit, bool)
	SphereCastAll(origin rl.Vector3, radius float32, direction rl.Vector3, maxDistance float32, mask physics.LayerMask) []physics.RaycastHit
	BoxCast(center, halfExtents, direction rl.Vector3, orientation rl.Quaternion, maxDistance float32, mask physics.LayerMask) (physics.RaycastHit, bool)
	BoxCastAll(center, halfExtents, direction rl.Vector3, orientation rl.Quaternion, maxDistance float32, mask physics.LayerMask) []physics.RaycastHit
	CapsuleCast(point1, point2 rl.Vector3, radius float32, direction rl.Vector3, maxDistance float32, mask physics.LayerMask) (physics.RaycastHit, bool)
	CapsuleCastAll(point1, point2 rl.Vector3, radius float32, direction rl.Vector3, maxDistance float32, mask physics.LayerMask) []physics.RaycastHit
}

var _ Caster = (*physics.PhysicsWorld)(nil)

func ShootRaycast(c Caster, origin, direction rl.Vector3, distance float32) (physics.RaycastHit, bool) {
	return c.Raycast(origin, direction, distance, physics.AllLayers)
}

func ShootRaycastMasked(c Caster, origin, direction rl.Vector3, distance float32, mask physics.LayerMask) (physics.RaycastHit, bool) {
	return c.Raycast(origin, direction, distance, mask)
}

// ShootRay casts an unbounded ray.
func ShootRay(c Caster, ray rl.Ray) (physics.RaycastHit, bool) {
	return c.Raycast(ray.Position, ray.Direction, Infinity, physics.AllLayers)
}

func ShootSphereCast(c Caster, origin rl.Vector3, radius float32, direction rl.Vector3, distance float32) (physics.RaycastHit, bool) {
	return c.SphereCast(origin, radius, direction, distance, physics.AllLayers)
}

func ShootSphereCastMasked(c Caster, origin rl.Vector3, radius float32, direction rl.Vector3, distance float32, mask physics.LayerMask) (physics.RaycastHit, bool) {
	return c.SphereCast(origin, radius, direction, distance, mask)
}

func ShootSphereRay(c Caster, ray rl.Ray, radius, distance float32) (physics.RaycastHit, bool) {
	return c.SphereCast(ray.Position, radius, ray.Direction, distance, physics.AllLayers)
}

func ShootBoxCast(c Caster, center, halfExtents, direction rl.Vector3, orientation rl.Quaternion, distance float32) (physics.RaycastHit, bool) {
	return c.BoxCast(center, halfExtents, direction, orientation, distance, physics.AllLayers)
}

func ShootBoxCastMasked(c Caster, center, halfExtents, direction rl.Vector3, orientation rl.Quaternion, distance float32, mask physics.LayerMask) (physics.RaycastHit, bool) {
	return c.BoxCast(center, halfExtents, direction, orientation, distance, mask)
}

func ShootBoxRay(c Caster, ray rl.Ray, halfExtents rl.Vector3, orientation rl.Quaternion, distance float32) (physics.RaycastHit, bool) {
	return c.BoxCast(ray.Position, halfExtents, ray.Direction, orientation, distance, physics.AllLayers)
}

func ShootCapsuleCast(c Caster, point1, point2 rl.Vector3, radius float32, direction rl.Vector3, distance float32) (physics.RaycastHit, bool) {
	return c.CapsuleCast(point1, point2, radius, direction, distance, physics.AllLayers)
}

func ShootCapsuleCastMasked(c Caster, point1, point2 rl.Vector3, radius float32, direction rl.Vector3, distance float32, mask physics.LayerMask) (physics.RaycastHit, bool) {
	return c.CapsuleCast(point1, point2, radius, direction, distance, mask)
}

// ShootCapsuleRay casts a zero-length capsule at the ray origin.
func ShootCapsuleRay(c Caster, ray rl.Ray, radius, distance float32) (physics.RaycastHit, bool) {
	return c.CapsuleCast(ray.Position, ray.Position, radius, ray.Direction, distance, physics.AllLayers)
}

func ShootRaycastAll(c Caster, origin, direction rl.Vector3, distance float32) []physics.RaycastHit {
	return c.RaycastAll(origin, direction, distance, physics.AllLayers)
}

func ShootRaycastAllMasked(c Caster, origin, direction rl.Vector3, distance float32, mask physics.LayerMask) []physics.RaycastHit {
	return c.RaycastAll(origin, direction, distance, mask)
}

func ShootRayAll(c Caster, ray rl.Ray, distance float32) []physics.RaycastHit {
	return c.RaycastAll(ray.Position, ray.Direction, distance, physics.AllLayers)
}

func ShootSphereCastAll(c Caster, origin rl.Vector3, radius float32, direction rl.Vector3, distance float32) []physics.RaycastHit {
	return c.SphereCastAll(origin, radius, direction, distance, physics.AllLayers)
}

func ShootSphereCastAllMasked(c Caster, origin rl.Vector3, radius float32, direction rl.Vector3, distance float32, mask physics.LayerMask) []physics.RaycastHit {
	return c.SphereCastAll(origin, radius, direction, distance, mask)
}

func ShootSphereRayAll(c Caster, ray rl.Ray, radius, distance float32) []physics.RaycastHit {
	return c.SphereCastAll(ray.Position, radius, ray.Direction, distance, physics.AllLayers)
}

func ShootBoxCastAll(c Caster, center, halfExtents, direction rl.Vector3, orientation rl.Quaternion, distance float32) []physics.RaycastHit {
	return c.BoxCastAll(center, halfExtents, direction, orientation, distance, physics.AllLayers)
}

func ShootBoxCastAllMasked(c Caster, center, halfExtents, direction rl.Vector3, orientation rl.Quaternion, distance float32, mask physics.LayerMask) []physics.RaycastHit {
	return c.BoxCastAll(center, halfExtents, direction, orientation, distance, mask)
}

func ShootBoxRayAll(c Caster, ray rl.Ray, halfExtents rl.Vector3, orientation rl.Quaternion, distance float32) []physics.RaycastHit {
	return c.BoxCastAll(ray.Position, halfExtents, ray.Direction, orientation, distance, physics.AllLayers)
}

func ShootCapsuleCastAll(c Caster, point1, point2 rl.Vector3, radius float32, direction rl.Vector3, distance float32) []physics.RaycastHit {
	return c.CapsuleCastAll(point1, point2, radius, direction, distance, physics.AllLayers)
}

func ShootCapsuleCastAllMasked(c Caster, point1, point2 rl.Vector3, radius float32, direction rl.Vector3, distance float32, mask physics.LayerMask) []physics.RaycastHit {
	return c.CapsuleCastAll(point1, point2, radius, direction, distance, mask)
}

func ShootCapsuleRayAll(c Caster, ray rl.Ray, radius, distance float32) []physics.RaycastHit {
	return c.CapsuleCastAll(ray.Position, ray.Position, radius, ray.Direction, distance, physics.AllLayers)
}
