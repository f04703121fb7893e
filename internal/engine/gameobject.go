package engine

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var nextUID atomic.Uint64

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3
}

// RotationMatrix builds the rotation from the Euler angles, X then Y then Z,
// the same order the renderers use.
func (t Transform) RotationMatrix() rl.Matrix {
	rotX := rl.MatrixRotateX(t.Rotation.X * rl.Deg2rad)
	rotY := rl.MatrixRotateY(t.Rotation.Y * rl.Deg2rad)
	rotZ := rl.MatrixRotateZ(t.Rotation.Z * rl.Deg2rad)
	return rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)
}

func (t Transform) Quaternion() rl.Quaternion {
	return rl.QuaternionFromMatrix(t.RotationMatrix())
}

// Forward is the local +Z axis in world space.
func (t Transform) Forward() rl.Vector3 {
	return rl.Vector3Transform(rl.Vector3{Z: 1}, t.RotationMatrix())
}

// Up is the local +Y axis in world space.
func (t Transform) Up() rl.Vector3 {
	return rl.Vector3Transform(rl.Vector3{Y: 1}, t.RotationMatrix())
}

// Right is the local +X axis in world space.
func (t Transform) Right() rl.Vector3 {
	return rl.Vector3Transform(rl.Vector3{X: 1}, t.RotationMatrix())
}

type GameObject struct {
	UID        uint64
	Name       string
	Tags       []string
	Layer      int // 0-31, matched against physics layer masks
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:    nextUID.Add(1),
		Name:   name,
		Active: true,
		Transform: Transform{
			Position: rl.Vector3{},
			Rotation: rl.Vector3{},
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

// AddComponent attaches c. If the object already started, c is started immediately.
func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
	if g.started {
		c.Start()
	}
}

// RemoveComponent detaches c. Returns false if c was not attached.
func (g *GameObject) RemoveComponent(c Component) bool {
	for i, existing := range g.components {
		if existing == c {
			g.components = append(g.components[:i], g.components[i+1:]...)
			if d, ok := c.(Destroyable); ok {
				d.OnDestroy()
			}
			c.SetGameObject(nil)
			return true
		}
	}
	return false
}

// GetComponent returns the first component of type T, or the zero value.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	if g == nil {
		return zero
	}
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	g.started = true
	// Start may attach further components; those start on AddComponent.
	comps := make([]Component, len(g.components))
	copy(comps, g.components)
	for _, c := range comps {
		c.Start()
	}
}

func (g *GameObject) Started() bool {
	return g.started
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	comps := make([]Component, len(g.components))
	copy(comps, g.components)
	for _, c := range comps {
		c.Update(deltaTime)
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (g *GameObject) AddChild(child *GameObject) {
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	parentPos := g.Parent.WorldPosition()
	parentScale := g.Parent.WorldScale()

	// Scale local position by parent's world scale
	scaled := rl.Vector3{
		X: g.Transform.Position.X * parentScale.X,
		Y: g.Transform.Position.Y * parentScale.Y,
		Z: g.Transform.Position.Z * parentScale.Z,
	}

	parentRot := Transform{Rotation: g.Parent.WorldRotation()}
	rotated := rl.Vector3Transform(scaled, parentRot.RotationMatrix())
	return rl.Vector3Add(parentPos, rotated)
}

func (g *GameObject) WorldRotation() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return rl.Vector3Add(g.Parent.WorldRotation(), g.Transform.Rotation)
}

func (g *GameObject) WorldScale() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	ps := g.Parent.WorldScale()
	return rl.Vector3{
		X: ps.X * g.Transform.Scale.X,
		Y: ps.Y * g.Transform.Scale.Y,
		Z: ps.Z * g.Transform.Scale.Z,
	}
}

// WorldTransform flattens the hierarchy into a single transform.
func (g *GameObject) WorldTransform() Transform {
	return Transform{
		Position: g.WorldPosition(),
		Rotation: g.WorldRotation(),
		Scale:    g.WorldScale(),
	}
}
