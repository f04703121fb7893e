package components

import (
	"eztester/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Collider is implemented by every collider the physics world can cast against.
type Collider interface {
	engine.Component
	IsEnabled() bool
	SetEnabled(enabled bool)
}

type BoxCollider struct {
	engine.BaseComponent
	Size    rl.Vector3
	Offset  rl.Vector3
	Enabled bool
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:    size,
		Offset:  rl.Vector3{},
		Enabled: true,
	}
}

func (b *BoxCollider) IsEnabled() bool { return b.Enabled }
func (b *BoxCollider) SetEnabled(enabled bool) { b.Enabled = enabled }

// GetCenter returns the world-space center of this collider
func (b *BoxCollider) GetCenter() rl.Vector3 {
	g := b.GetGameObject()
	return rl.Vector3Add(g.WorldPosition(), b.Offset)
}

// GetWorldSize returns Size scaled by the owner's world scale, always positive.
func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	s := b.GetGameObject().WorldScale()
	return rl.Vector3{X: abs(b.Size.X * s.X), Y: abs(b.Size.Y * s.Y), Z: abs(b.Size.Z * s.Z)}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
