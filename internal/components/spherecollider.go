package components

import (
	"eztester/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type SphereCollider struct {
	engine.BaseComponent
	Radius  float32
	Offset  rl.Vector3
	Enabled bool
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{
		Radius:  radius,
		Offset:  rl.Vector3{},
		Enabled: true,
	}
}

func (s *SphereCollider) IsEnabled() bool { return s.Enabled }
func (s *SphereCollider) SetEnabled(enabled bool) { s.Enabled = enabled }

// GetCenter returns the world-space center of this collider
func (s *SphereCollider) GetCenter() rl.Vector3 {
	g := s.GetGameObject()
	return rl.Vector3Add(g.WorldPosition(), s.Offset)
}

// GetWorldRadius scales Radius by the largest axis of the owner's world scale.
func (s *SphereCollider) GetWorldRadius() float32 {
	sc := s.GetGameObject().WorldScale()
	m := max(abs(sc.X), abs(sc.Y), abs(sc.Z))
	return s.Radius * m
}
