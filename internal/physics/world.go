package physics

import (
	"eztester/internal/components"
	"eztester/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// LayerMask selects GameObject layers (0-31) a cast may hit.
type LayerMask uint32

// AllLayers hits every layer.
const AllLayers = ^LayerMask(0)

// MaskOf builds a mask from layer indices. Out-of-range layers are ignored.
func MaskOf(layers ...int) LayerMask {
	var m LayerMask
	for _, l := range layers {
		if l >= 0 && l < 32 {
			m |= 1 << uint(l)
		}
	}
	return m
}

func (m LayerMask) Contains(layer int) bool {
	if layer < 0 || layer >= 32 {
		return false
	}
	return m&(1<<uint(layer)) != 0
}

type PhysicsWorld struct {
	Gravity    rl.Vector3
	Dynamics   []*engine.GameObject // dynamic rigidbodies
	Kinematics []*engine.GameObject // kinematic rigidbodies (pointer proxy, scripted movers)
	Statics    []*engine.GameObject // no rigidbody (walls, floor, anchors)

	lastPositions map[*engine.GameObject]rl.Vector3
}

func NewPhysicsWorld() *PhysicsWorld {
	return &PhysicsWorld{
		Gravity:       rl.Vector3{X: 0, Y: -20.0, Z: 0},
		Dynamics:      make([]*engine.GameObject, 0),
		Kinematics:    make([]*engine.GameObject, 0),
		Statics:       make([]*engine.GameObject, 0),
		lastPositions: make(map[*engine.GameObject]rl.Vector3),
	}
}

func (p *PhysicsWorld) AddObject(g *engine.GameObject) {
	rb := engine.GetComponent[*components.Rigidbody](g)
	if rb == nil {
		p.Statics = append(p.Statics, g)
	} else if rb.IsKinematic {
		p.Kinematics = append(p.Kinematics, g)
		p.lastPositions[g] = g.WorldPosition()
	} else {
		p.Dynamics = append(p.Dynamics, g)
	}
}

func (p *PhysicsWorld) RemoveObject(g *engine.GameObject) {
	delete(p.lastPositions, g)
	p.Dynamics = removeObject(p.Dynamics, g)
	p.Kinematics = removeObject(p.Kinematics, g)
	p.Statics = removeObject(p.Statics, g)
}

func removeObject(list []*engine.GameObject, g *engine.GameObject) []*engine.GameObject {
	for i, obj := range list {
		if obj == g {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// Refresh re-classifies g after its Rigidbody was added, removed or changed.
func (p *PhysicsWorld) Refresh(g *engine.GameObject) {
	p.RemoveObject(g)
	p.AddObject(g)
}

// Objects returns every registered object: dynamics, kinematics, then statics.
func (p *PhysicsWorld) Objects() []*engine.GameObject {
	all := make([]*engine.GameObject, 0, len(p.Dynamics)+len(p.Kinematics)+len(p.Statics))
	all = append(all, p.Dynamics...)
	all = append(all, p.Kinematics...)
	all = append(all, p.Statics...)
	return all
}

func (p *PhysicsWorld) Update(deltaTime float32) {
	if deltaTime <= 0 {
		return
	}

	// 1. Kinematic velocity follows whatever moved the transform this frame
	for _, obj := range p.Kinematics {
		rb := engine.GetComponent[*components.Rigidbody](obj)
		pos := obj.WorldPosition()
		if last, ok := p.lastPositions[obj]; ok && rb != nil {
			rb.Velocity = rl.Vector3Scale(rl.Vector3Subtract(pos, last), 1/deltaTime)
		}
		p.lastPositions[obj] = pos
	}

	// 2. Apply gravity and integrate dynamics
	for _, obj := range p.Dynamics {
		if !obj.Active {
			continue
		}
		rb := engine.GetComponent[*components.Rigidbody](obj)
		if rb == nil {
			continue
		}
		if rb.UseGravity {
			rb.Velocity = rl.Vector3Add(rb.Velocity, rl.Vector3Scale(p.Gravity, deltaTime))
		}
		obj.Transform.Position = rl.Vector3Add(
			obj.Transform.Position,
			rl.Vector3Scale(rb.Velocity, deltaTime),
		)
	}

	// 3. Dynamics vs statics and kinematics
	for _, obj := range p.Dynamics {
		if !obj.Active {
			continue
		}
		for _, other := range p.Statics {
			p.resolveAgainst(obj, other)
		}
		for _, other := range p.Kinematics {
			p.resolveAgainst(obj, other)
		}
	}
}

// resolveAgainst pushes a dynamic object out of an immovable one and
// reflects the velocity along the push axis.
func (p *PhysicsWorld) resolveAgainst(obj, other *engine.GameObject) {
	if !other.Active {
		return
	}
	rb := engine.GetComponent[*components.Rigidbody](obj)
	a, ok := colliderBounds(obj)
	if !ok || rb == nil {
		return
	}
	b, ok := colliderBounds(other)
	if !ok {
		return
	}

	push := a.Resolve(b)
	pushLen := rl.Vector3Length(push)
	if pushLen < 0.0001 {
		return
	}
	obj.Transform.Position = rl.Vector3Add(obj.Transform.Position, push)

	n := rl.Vector3Scale(push, 1/pushLen)
	vn := rl.Vector3DotProduct(rb.Velocity, n)
	if vn < 0 {
		rb.Velocity = rl.Vector3Subtract(rb.Velocity, rl.Vector3Scale(n, (1+rb.Bounciness)*vn))
	}
}

// colliderBounds returns the world AABB of the first enabled collider on g.
func colliderBounds(g *engine.GameObject) (AABB, bool) {
	for _, c := range g.Components() {
		switch col := c.(type) {
		case *components.BoxCollider:
			if col.Enabled {
				return boxShape(g, col).WorldAABB(), true
			}
		case *components.SphereCollider:
			if col.Enabled {
				r := col.GetWorldRadius()
				return NewAABBFromCenter(col.GetCenter(), rl.Vector3{X: 2 * r, Y: 2 * r, Z: 2 * r}), true
			}
		}
	}
	return AABB{}, false
}

func boxShape(g *engine.GameObject, box *components.BoxCollider) OBB {
	rot := engine.Transform{Rotation: g.WorldRotation()}.RotationMatrix()
	return NewOBB(box.GetCenter(), box.GetWorldSize(), rot)
}
