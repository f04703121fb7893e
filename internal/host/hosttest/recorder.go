// Package hosttest provides an in-memory host for tests that do not open a window.
package hosttest

import (
	"eztester/internal/host"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Line struct {
	Start, End rl.Vector3
	Width      float32
	Color      rl.Color
}

type Text struct {
	Text  string
	Pos   rl.Vector2
	Style host.TextStyle
}

// Recorder implements host.Drawer and host.GUI by recording calls.
// Screen projection is the identity on X and Y; text measures
// half the font size per character.
type Recorder struct {
	Lines   []Line
	Spheres int
	Cubes   int
	Planes  int
	Models  int
	Texts   []Text
	Boxes   []string
	Labels  []string
}

var (
	_ host.Drawer = (*Recorder)(nil)
	_ host.GUI    = (*Recorder)(nil)
)

func (r *Recorder) DrawLine3D(start, end rl.Vector3, color rl.Color) {
	r.Lines = append(r.Lines, Line{Start: start, End: end, Color: color})
}

func (r *Recorder) DrawThickLine3D(start, end rl.Vector3, width float32, color rl.Color) {
	r.Lines = append(r.Lines, Line{Start: start, End: end, Width: width, Color: color})
}

func (r *Recorder) DrawSphereWires(center rl.Vector3, radius float32, color rl.Color) { r.Spheres++ }
func (r *Recorder) DrawCubeWires(center, size rl.Vector3, color rl.Color)            { r.Cubes++ }
func (r *Recorder) DrawCube(center, size rl.Vector3, color rl.Color)                 { r.Cubes++ }
func (r *Recorder) DrawSphere(center rl.Vector3, radius float32, color rl.Color)     { r.Spheres++ }
func (r *Recorder) DrawPlane(center rl.Vector3, size rl.Vector2, color rl.Color)     { r.Planes++ }
func (r *Recorder) DrawModel(model rl.Model, tint rl.Color)                          { r.Models++ }

func (r *Recorder) DrawText(text string, pos rl.Vector2, style host.TextStyle) {
	r.Texts = append(r.Texts, Text{Text: text, Pos: pos, Style: style})
}

func (r *Recorder) MeasureText(text string, style host.TextStyle) rl.Vector2 {
	return rl.Vector2{X: float32(len(text)) * style.Size / 2, Y: style.Size}
}

func (r *Recorder) WorldToScreen(p rl.Vector3) rl.Vector2 {
	return rl.Vector2{X: p.X, Y: p.Y}
}

func (r *Recorder) Box(bounds rl.Rectangle, title string) {
	r.Boxes = append(r.Boxes, title)
}

func (r *Recorder) Label(bounds rl.Rectangle, text string) {
	r.Labels = append(r.Labels, text)
}

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() {
	*r = Recorder{}
}
