// Package gizmo collects debug shapes emitted during Update and replays them
// in the 3-D pass of the same frame.
package gizmo

import (
	"eztester/internal/host"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Kind int

const (
	KindLine Kind = iota
	KindSphere
	KindCube
)

// Shape is one queued debug primitive.
type Shape struct {
	Kind   Kind
	Start  rl.Vector3 // line start, sphere/cube center
	End    rl.Vector3 // line end
	Size   rl.Vector3 // cube size
	Radius float32
	Color  rl.Color
}

// Buffer is a frame-scoped queue of debug shapes. The zero value is ready to use.
type Buffer struct {
	shapes []Shape
}

func (b *Buffer) Line(start, end rl.Vector3, color rl.Color) {
	b.shapes = append(b.shapes, Shape{Kind: KindLine, Start: start, End: end, Color: color})
}

// Ray queues a line from origin along dir; dir carries the length.
func (b *Buffer) Ray(origin, dir rl.Vector3, color rl.Color) {
	b.Line(origin, rl.Vector3Add(origin, dir), color)
}

func (b *Buffer) WireSphere(center rl.Vector3, radius float32, color rl.Color) {
	b.shapes = append(b.shapes, Shape{Kind: KindSphere, Start: center, Radius: radius, Color: color})
}

func (b *Buffer) WireCube(center, size rl.Vector3, color rl.Color) {
	b.shapes = append(b.shapes, Shape{Kind: KindCube, Start: center, Size: size, Color: color})
}

// Shapes returns the queued shapes without clearing them.
func (b *Buffer) Shapes() []Shape {
	return b.shapes
}

func (b *Buffer) Len() int {
	return len(b.shapes)
}

// Flush draws every queued shape and empties the buffer.
func (b *Buffer) Flush(d host.Drawer) {
	for _, s := range b.shapes {
		switch s.Kind {
		case KindLine:
			d.DrawLine3D(s.Start, s.End, s.Color)
		case KindSphere:
			d.DrawSphereWires(s.Start, s.Radius, s.Color)
		case KindCube:
			d.DrawCubeWires(s.Start, s.Size, s.Color)
		}
	}
	b.shapes = b.shapes[:0]
}
