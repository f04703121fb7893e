package components

import (
	"eztester/internal/engine"
	"eztester/internal/host"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// LineRenderer draws a polyline through world-space points.
type LineRenderer struct {
	engine.BaseComponent
	Points     []rl.Vector3
	StartColor rl.Color
	EndColor   rl.Color
	StartWidth float32
	EndWidth   float32
}

func NewLineRenderer(color rl.Color, width float32) *LineRenderer {
	return &LineRenderer{
		StartColor: color,
		EndColor:   color,
		StartWidth: width,
		EndWidth:   width,
	}
}

func (l *LineRenderer) PositionCount() int {
	return len(l.Points)
}

// SetPositionCount grows or truncates the point list, keeping existing points.
func (l *LineRenderer) SetPositionCount(n int) {
	if n < 0 {
		n = 0
	}
	if n <= len(l.Points) {
		l.Points = l.Points[:n]
		return
	}
	l.Points = append(l.Points, make([]rl.Vector3, n-len(l.Points))...)
}

// SetPosition sets point i; out-of-range indices are ignored.
func (l *LineRenderer) SetPosition(i int, p rl.Vector3) {
	if i < 0 || i >= len(l.Points) {
		return
	}
	l.Points[i] = p
}

// SetPositions replaces all points, reusing the backing array.
func (l *LineRenderer) SetPositions(points []rl.Vector3) {
	l.Points = append(l.Points[:0], points...)
}

func (l *LineRenderer) SetColor(c rl.Color) {
	l.StartColor = c
	l.EndColor = c
}

func (l *LineRenderer) SetWidth(w float32) {
	l.StartWidth = w
	l.EndWidth = w
}

func (l *LineRenderer) Draw(d host.Drawer) {
	g := l.GetGameObject()
	if g == nil || !g.Active || len(l.Points) < 2 {
		return
	}
	segments := len(l.Points) - 1
	for i := range segments {
		t := (float32(i) + 0.5) / float32(segments)
		color := lerpColor(l.StartColor, l.EndColor, t)
		width := l.StartWidth + (l.EndWidth-l.StartWidth)*t
		d.DrawThickLine3D(l.Points[i], l.Points[i+1], width, color)
	}
}

func lerpColor(a, b rl.Color, t float32) rl.Color {
	mix := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t + 0.5)
	}
	return rl.NewColor(mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A))
}
