package physics

import (
	"math"
	"sort"

	"eztester/internal/components"
	"eztester/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	GameObject *engine.GameObject
	Collider   components.Collider
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// sweep is a volume moved along a unit direction. A zero radius, zero
// extents and zero segment is a plain ray.
type sweep struct {
	origin    rl.Vector3
	direction rl.Vector3
	radius    float32
	extents   rl.Vector3 // world-axis half extents for box casts
	segment   rl.Vector3 // half axis of a capsule centred on origin
}

// Raycast checks for intersection with all collidable objects and returns the closest hit
func (p *PhysicsWorld) Raycast(origin, direction rl.Vector3, maxDistance float32, mask LayerMask) (RaycastHit, bool) {
	return closest(p.RaycastAll(origin, direction, maxDistance, mask))
}

// RaycastAll returns every object the ray enters, nearest first.
func (p *PhysicsWorld) RaycastAll(origin, direction rl.Vector3, maxDistance float32, mask LayerMask) []RaycastHit {
	return p.cast([]sweep{{origin: origin, direction: direction}}, maxDistance, mask)
}

func (p *PhysicsWorld) SphereCast(origin rl.Vector3, radius float32, direction rl.Vector3, maxDistance float32, mask LayerMask) (RaycastHit, bool) {
	return closest(p.SphereCastAll(origin, radius, direction, maxDistance, mask))
}

func (p *PhysicsWorld) SphereCastAll(origin rl.Vector3, radius float32, direction rl.Vector3, maxDistance float32, mask LayerMask) []RaycastHit {
	return p.cast([]sweep{{origin: origin, direction: direction, radius: absf(radius)}}, maxDistance, mask)
}

// BoxCast sweeps a box with the given half extents and orientation. The box
// is treated as its world-axis bounding box.
func (p *PhysicsWorld) BoxCast(center, halfExtents, direction rl.Vector3, orientation rl.Quaternion, maxDistance float32, mask LayerMask) (RaycastHit, bool) {
	return closest(p.BoxCastAll(center, halfExtents, direction, orientation, maxDistance, mask))
}

func (p *PhysicsWorld) BoxCastAll(center, halfExtents, direction rl.Vector3, orientation rl.Quaternion, maxDistance float32, mask LayerMask) []RaycastHit {
	if rl.QuaternionLength(orientation) < 1e-6 {
		orientation = rl.QuaternionIdentity()
	}
	size := rl.Vector3Scale(halfExtents, 2)
	bounds := NewOBB(center, size, rl.QuaternionToMatrix(rl.QuaternionNormalize(orientation))).WorldAABB()
	ext := rl.Vector3Scale(bounds.Size(), 0.5)
	return p.cast([]sweep{{origin: center, direction: direction, extents: ext}}, maxDistance, mask)
}

// CapsuleCast sweeps the capsule of the given radius around the segment
// point1-point2.
func (p *PhysicsWorld) CapsuleCast(point1, point2 rl.Vector3, radius float32, direction rl.Vector3, maxDistance float32, mask LayerMask) (RaycastHit, bool) {
	return closest(p.CapsuleCastAll(point1, point2, radius, direction, maxDistance, mask))
}

func (p *PhysicsWorld) CapsuleCastAll(point1, point2 rl.Vector3, radius float32, direction rl.Vector3, maxDistance float32, mask LayerMask) []RaycastHit {
	return p.cast([]sweep{{
		origin:    rl.Vector3Lerp(point1, point2, 0.5),
		direction: direction,
		radius:    absf(radius),
		segment:   rl.Vector3Scale(rl.Vector3Subtract(point2, point1), 0.5),
	}}, maxDistance, mask)
}

func closest(hits []RaycastHit) (RaycastHit, bool) {
	if len(hits) == 0 {
		return RaycastHit{}, false
	}
	return hits[0], true
}

// cast runs every sweep against every enabled collider under mask and keeps
// the nearest hit per object.
func (p *PhysicsWorld) cast(sweeps []sweep, maxDistance float32, mask LayerMask) []RaycastHit {
	if len(sweeps) == 0 || maxDistance < 0 {
		return nil
	}
	dir := sweeps[0].direction
	if rl.Vector3LengthSqr(dir) < 1e-12 {
		return nil
	}
	dir = rl.Vector3Normalize(dir)

	var hits []RaycastHit
	for _, obj := range p.Objects() {
		if !obj.Active || !mask.Contains(obj.Layer) {
			continue
		}

		var best RaycastHit
		found := false
		for _, c := range obj.Components() {
			col, ok := c.(components.Collider)
			if !ok || !col.IsEnabled() {
				continue
			}
			for _, s := range sweeps {
				s.direction = dir
				h, ok := castCollider(s, col, maxDistance)
				if ok && (!found || h.Distance < best.Distance) {
					best = h
					best.GameObject = obj
					best.Collider = col
					found = true
				}
			}
		}
		if found {
			hits = append(hits, best)
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}

func castCollider(s sweep, col components.Collider, maxDistance float32) (RaycastHit, bool) {
	if s.segment != (rl.Vector3{}) {
		switch c := col.(type) {
		case *components.BoxCollider:
			return castCapsuleBox(s, boxShape(c.GetGameObject(), c), maxDistance)
		case *components.SphereCollider:
			return castCapsuleSphere(s, c.GetCenter(), c.GetWorldRadius(), maxDistance)
		}
		return RaycastHit{}, false
	}
	switch c := col.(type) {
	case *components.BoxCollider:
		return castBox(s, boxShape(c.GetGameObject(), c), maxDistance)
	case *components.SphereCollider:
		return castSphere(s, c.GetCenter(), c.GetWorldRadius(), maxDistance)
	}
	return RaycastHit{}, false
}

// castBox intersects the ray with the target grown by the swept volume.
func castBox(s sweep, box OBB, maxDistance float32) (RaycastHit, bool) {
	grown := box.Inflate(rl.Vector3{
		X: s.extents.X + s.radius,
		Y: s.extents.Y + s.radius,
		Z: s.extents.Z + s.radius,
	})
	t, normal, ok := grown.IntersectRay(s.origin, s.direction)
	if !ok || t > maxDistance {
		return RaycastHit{}, false
	}
	centre := rl.Vector3Add(s.origin, rl.Vector3Scale(s.direction, t))
	return RaycastHit{
		Point:    ClosestPointOnOBB(box, centre),
		Normal:   normal,
		Distance: t,
	}, true
}

func castSphere(s sweep, center rl.Vector3, radius float32, maxDistance float32) (RaycastHit, bool) {
	if s.extents != (rl.Vector3{}) {
		// A box sweep against a sphere uses the sphere's bounding cube.
		return castBox(s, NewAABBasOBB(center, rl.Vector3{X: 2 * radius, Y: 2 * radius, Z: 2 * radius}), maxDistance)
	}

	r := radius + s.radius
	oc := rl.Vector3Subtract(s.origin, center)
	b := rl.Vector3DotProduct(oc, s.direction)
	c := rl.Vector3DotProduct(oc, oc) - r*r
	if c < 0 {
		// starts inside
		return RaycastHit{}, false
	}
	discriminant := b*b - c
	if discriminant < 0 {
		return RaycastHit{}, false
	}
	t := -b - float32(math.Sqrt(float64(discriminant)))
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	centre := rl.Vector3Add(s.origin, rl.Vector3Scale(s.direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(centre, center))
	return RaycastHit{
		Point:    rl.Vector3Add(center, rl.Vector3Scale(normal, radius)),
		Normal:   normal,
		Distance: t,
	}, true
}

// castCapsuleSphere moves the target instead of the capsule: the sphere
// centre travelling backwards enters the capsule grown by the sphere radius
// exactly when the swept capsule touches the sphere.
func castCapsuleSphere(s sweep, center rl.Vector3, radius float32, maxDistance float32) (RaycastHit, bool) {
	a := rl.Vector3Subtract(s.origin, s.segment)
	b := rl.Vector3Add(s.origin, s.segment)
	t, ok := rayCapsule(center, rl.Vector3Negate(s.direction), a, b, radius+s.radius)
	if !ok || t > maxDistance {
		return RaycastHit{}, false
	}

	move := rl.Vector3Scale(s.direction, t)
	nearest := closestOnSegment(rl.Vector3Add(a, move), rl.Vector3Add(b, move), center)
	normal := rl.Vector3Normalize(rl.Vector3Subtract(nearest, center))
	return RaycastHit{
		Point:    rl.Vector3Add(center, rl.Vector3Scale(normal, radius)),
		Normal:   normal,
		Distance: t,
	}, true
}

// castCapsuleBox clips the ray from the capsule centre against the box
// grown by the capsule. The grown box is bounded by slabs along the box
// axes and along each box axis crossed with the capsule segment.
func castCapsuleBox(s sweep, box OBB, maxDistance float32) (RaycastHit, bool) {
	normals := make([]rl.Vector3, 0, 6)
	normals = append(normals, box.Axes[:]...)
	for _, axis := range box.Axes {
		n := rl.Vector3CrossProduct(axis, s.segment)
		if rl.Vector3LengthSqr(n) > 1e-12 {
			normals = append(normals, rl.Vector3Normalize(n))
		}
	}

	local := rl.Vector3Subtract(s.origin, box.Center)
	tmin := float32(-1e30)
	tmax := float32(1e30)
	var entry rl.Vector3
	for _, n := range normals {
		h := s.radius + absf(rl.Vector3DotProduct(n, s.segment))
		for i, axis := range box.Axes {
			h += box.halfSize(i) * absf(rl.Vector3DotProduct(n, axis))
		}
		e := rl.Vector3DotProduct(n, local)
		f := rl.Vector3DotProduct(n, s.direction)

		if absf(f) < 1e-8 {
			if e < -h || e > h {
				return RaycastHit{}, false
			}
			continue
		}
		t1 := (-h - e) / f
		t2 := (h - e) / f
		face := rl.Vector3Negate(n)
		if t1 > t2 {
			t1, t2 = t2, t1
			face = n
		}
		if t1 > tmin {
			tmin = t1
			entry = face
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return RaycastHit{}, false
		}
	}
	if tmin < 0 || tmin > maxDistance {
		return RaycastHit{}, false
	}

	move := rl.Vector3Scale(s.direction, tmin)
	a := rl.Vector3Add(rl.Vector3Subtract(s.origin, s.segment), move)
	b := rl.Vector3Add(rl.Vector3Add(s.origin, s.segment), move)
	return RaycastHit{
		Point:    ClosestPointOnOBB(box, closestOnSegment(a, b, box.Center)),
		Normal:   entry,
		Distance: tmin,
	}, true
}

// rayCapsule returns where a ray from origin along unit dir enters the
// capsule around segment a-b. Rays starting inside miss.
func rayCapsule(origin, dir, a, b rl.Vector3, radius float32) (float32, bool) {
	if rl.Vector3DistanceSqr(origin, closestOnSegment(a, b, origin)) < radius*radius {
		return 0, false
	}

	best, found := float32(0), false
	keep := func(t float32, ok bool) {
		if ok && (!found || t < best) {
			best, found = t, true
		}
	}
	keep(raySphere(origin, dir, a, radius))
	keep(raySphere(origin, dir, b, radius))

	// Side of the cylinder, between the caps.
	ba := rl.Vector3Subtract(b, a)
	oa := rl.Vector3Subtract(origin, a)
	baba := rl.Vector3DotProduct(ba, ba)
	bard := rl.Vector3DotProduct(ba, dir)
	baoa := rl.Vector3DotProduct(ba, oa)
	qa := baba - bard*bard
	if baba > 0 && qa > 1e-8 {
		qb := baba*rl.Vector3DotProduct(dir, oa) - baoa*bard
		qc := baba*rl.Vector3DotProduct(oa, oa) - baoa*baoa - radius*radius*baba
		if h := qb*qb - qa*qc; h >= 0 {
			t := (-qb - float32(math.Sqrt(float64(h)))) / qa
			y := baoa + t*bard
			keep(t, t >= 0 && y > 0 && y < baba)
		}
	}
	return best, found
}

func raySphere(origin, dir, center rl.Vector3, radius float32) (float32, bool) {
	oc := rl.Vector3Subtract(origin, center)
	b := rl.Vector3DotProduct(oc, dir)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius
	discriminant := b*b - c
	if discriminant < 0 {
		return 0, false
	}
	t := -b - float32(math.Sqrt(float64(discriminant)))
	return t, t >= 0
}

func closestOnSegment(a, b, p rl.Vector3) rl.Vector3 {
	ab := rl.Vector3Subtract(b, a)
	l := rl.Vector3DotProduct(ab, ab)
	if l == 0 {
		return a
	}
	t := clampf(rl.Vector3DotProduct(rl.Vector3Subtract(p, a), ab)/l, 0, 1)
	return rl.Vector3Add(a, rl.Vector3Scale(ab, t))
}
