package components

import (
	"fmt"
	"strings"

	"eztester/internal/engine"
	"eztester/internal/host"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type MeshType int

const (
	MeshCube MeshType = iota
	MeshSphere
	MeshPlane
)

// ParseMeshType maps a scene-file name to a primitive.
func ParseMeshType(s string) (MeshType, error) {
	switch strings.ToLower(s) {
	case "cube", "":
		return MeshCube, nil
	case "sphere":
		return MeshSphere, nil
	case "plane":
		return MeshPlane, nil
	}
	return MeshCube, fmt.Errorf("unknown mesh primitive %q", s)
}

type MeshRenderer struct {
	engine.BaseComponent
	MeshType MeshType
	Color    rl.Color
	Size     rl.Vector3 // sphere radius is Size.X
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType: meshType,
		Color:    color,
		Size:     size,
	}
}

func (m *MeshRenderer) Draw(d host.Drawer) {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	pos := g.WorldPosition()
	scale := g.WorldScale()
	size := rl.Vector3{X: m.Size.X * scale.X, Y: m.Size.Y * scale.Y, Z: m.Size.Z * scale.Z}

	switch m.MeshType {
	case MeshCube:
		d.DrawCube(pos, size, m.Color)
	case MeshSphere:
		d.DrawSphere(pos, size.X, m.Color)
	case MeshPlane:
		d.DrawPlane(pos, rl.Vector2{X: size.X, Y: size.Z}, m.Color)
	}
}
