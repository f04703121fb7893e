package components

import (
	"eztester/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Camera struct {
	engine.BaseComponent
	FOV        float32
	Projection rl.CameraProjection
	// Target, when set, overrides the owner's forward direction.
	Target    rl.Vector3
	HasTarget bool
}

func NewCamera() *Camera {
	return &Camera{
		FOV:        45.0,
		Projection: rl.CameraPerspective,
	}
}

// LookAt points the camera at target.
func (c *Camera) LookAt(target rl.Vector3) {
	c.Target = target
	c.HasTarget = true
}

func (c *Camera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}

	eyePos := g.WorldPosition()
	t := g.WorldTransform()

	target := c.Target
	if !c.HasTarget {
		target = rl.Vector3Add(eyePos, t.Forward())
	}

	return rl.Camera3D{
		Position:   eyePos,
		Target:     target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}
