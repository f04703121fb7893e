// Package host defines the engine services the scene helpers call every
// frame: drawing, cursor input, screen/world projection and the immediate-mode
// GUI. The raylib-backed implementation lives in raylib.go; tests use fakes.
package host

import rl "github.com/gen2brain/raylib-go/raylib"

// TextStyle describes how screen-space text is rendered.
type TextStyle struct {
	FontPath string // empty = default font
	Size     float32
	Spacing  float32
	Color    rl.Color
	Bold     bool
}

type Drawer interface {
	DrawLine3D(start, end rl.Vector3, color rl.Color)
	DrawThickLine3D(start, end rl.Vector3, width float32, color rl.Color)
	DrawSphereWires(center rl.Vector3, radius float32, color rl.Color)
	DrawCubeWires(center, size rl.Vector3, color rl.Color)
	DrawCube(center, size rl.Vector3, color rl.Color)
	DrawSphere(center rl.Vector3, radius float32, color rl.Color)
	DrawPlane(center rl.Vector3, size rl.Vector2, color rl.Color)
	DrawModel(model rl.Model, tint rl.Color)
	DrawText(text string, pos rl.Vector2, style TextStyle)
	MeasureText(text string, style TextStyle) rl.Vector2
	WorldToScreen(p rl.Vector3) rl.Vector2
}

type Input interface {
	MousePosition() rl.Vector2
	// MouseWheelMove returns the vertical scroll delta of this frame.
	MouseWheelMove() float32
	SetCursorVisible(visible bool)
}

type Projector interface {
	// ScreenToWorld unprojects a screen point at depth units along the view direction.
	ScreenToWorld(screen rl.Vector2, depth float32) rl.Vector3
	// WorldDepth is the distance of p from the camera along the view direction.
	WorldDepth(p rl.Vector3) float32
}

type GUI interface {
	Box(bounds rl.Rectangle, title string)
	Label(bounds rl.Rectangle, text string)
}

// Drawable is implemented by components rendered in the 3-D pass.
type Drawable interface {
	Draw(d Drawer)
}

// OverlayDrawable is implemented by components rendered in screen space,
// after the 3-D pass.
type OverlayDrawable interface {
	DrawOverlay(d Drawer, gui GUI)
}
