package measure

import (
	"eztester/internal/engine"
	"eztester/internal/gizmo"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// distanceVisual is a single line between the anchors.
type distanceVisual struct {
	line *engine.GameObject
}

func (v *distanceVisual) Show(d *Display, a, b engine.Transform, _ float32) {
	d.Line(&v.line, "DistanceLine", a.Position, b.Position)
	v.line.Transform.Position = midpoint(a.Position, b.Position)
}

func (v *distanceVisual) Clear(d *Display) {
	d.Destroy(&v.line)
}

// angleVisual draws the base line, the anchor line and the arc between them.
type angleVisual struct {
	axis      Axis
	maxPoints int

	base   *engine.GameObject
	object *engine.GameObject
	arc    *engine.GameObject
}

func (v *angleVisual) Show(d *Display, a, b engine.Transform, value float32) {
	d.Line(&v.base, "BaseLine", a.Position, BaseLineEnd(a.Position, b.Position, v.axis))
	d.Line(&v.object, "ObjectLine", a.Position, b.Position)
	d.Line(&v.arc, "AngleLine", ArcPoints(a.Position, b.Position, v.axis, value, v.maxPoints)...)
}

func (v *angleVisual) Clear(d *Display) {
	d.Destroy(&v.base)
	d.Destroy(&v.object)
	d.Destroy(&v.arc)
}

// BaseLineEnd projects b onto a's base plane: same height as a for axis Y,
// a fixed 5 units behind a for axis X.
func BaseLineEnd(a, b rl.Vector3, axis Axis) rl.Vector3 {
	if axis == AxisX {
		return rl.Vector3{X: a.X, Y: b.Y, Z: a.Z - 5}
	}
	return rl.Vector3{X: b.X, Y: a.Y, Z: b.Z}
}

// ArcPoints samples the arc for a signed angle. The angle is wrapped to
// [0, 360) and the unit displacement a->b is rotated about Z (axis Y) or
// Y (axis X), one point per degree.
func ArcPoints(a, b rl.Vector3, axis Axis, angle float32, maxPoints int) []rl.Vector3 {
	rotation := rl.Vector3{Z: 1}
	if axis == AxisX {
		rotation = rl.Vector3{Y: 1}
	}
	return gizmo.Arc(a, rl.Vector3Subtract(b, a), rotation, gizmo.WrapDegrees(angle), maxPoints)
}
