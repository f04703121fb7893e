package host

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const defaultFontSize = 20

// Raylib implements Drawer, Input, Projector and GUI on top of raylib.
// Camera must point at the camera used for the current frame.
type Raylib struct {
	Camera *rl.Camera3D
	fonts  map[string]rl.Font
}

func NewRaylib(camera *rl.Camera3D) *Raylib {
	return &Raylib{
		Camera: camera,
		fonts:  make(map[string]rl.Font),
	}
}

// Unload releases fonts loaded on demand.
func (r *Raylib) Unload() {
	for path, font := range r.fonts {
		rl.UnloadFont(font)
		delete(r.fonts, path)
	}
}

// --- Drawer ---

func (r *Raylib) DrawLine3D(start, end rl.Vector3, color rl.Color) {
	rl.DrawLine3D(start, end, color)
}

func (r *Raylib) DrawThickLine3D(start, end rl.Vector3, width float32, color rl.Color) {
	if width <= 0 {
		rl.DrawLine3D(start, end, color)
		return
	}
	rl.DrawCylinderEx(start, end, width/2, width/2, 6, color)
}

func (r *Raylib) DrawSphereWires(center rl.Vector3, radius float32, color rl.Color) {
	rl.DrawSphereWires(center, radius, 8, 8, color)
}

func (r *Raylib) DrawCubeWires(center, size rl.Vector3, color rl.Color) {
	rl.DrawCubeWiresV(center, size, color)
}

func (r *Raylib) DrawCube(center, size rl.Vector3, color rl.Color) {
	rl.DrawCubeV(center, size, color)
}

func (r *Raylib) DrawSphere(center rl.Vector3, radius float32, color rl.Color) {
	rl.DrawSphere(center, radius, color)
}

func (r *Raylib) DrawPlane(center rl.Vector3, size rl.Vector2, color rl.Color) {
	rl.DrawPlane(center, size, color)
}

func (r *Raylib) DrawModel(model rl.Model, tint rl.Color) {
	rl.DrawModel(model, rl.Vector3Zero(), 1.0, tint)
}

func (r *Raylib) DrawText(text string, pos rl.Vector2, style TextStyle) {
	font := r.font(style.FontPath)
	size := style.Size
	if size <= 0 {
		size = defaultFontSize
	}
	rl.DrawTextEx(font, text, pos, size, style.Spacing, style.Color)
	if style.Bold {
		// raylib has no bold faces; a 1px offset pass thickens the glyphs.
		rl.DrawTextEx(font, text, rl.Vector2{X: pos.X + 1, Y: pos.Y}, size, style.Spacing, style.Color)
	}
}

func (r *Raylib) MeasureText(text string, style TextStyle) rl.Vector2 {
	size := style.Size
	if size <= 0 {
		size = defaultFontSize
	}
	return rl.MeasureTextEx(r.font(style.FontPath), text, size, style.Spacing)
}

func (r *Raylib) WorldToScreen(p rl.Vector3) rl.Vector2 {
	return rl.GetWorldToScreen(p, *r.Camera)
}

func (r *Raylib) font(path string) rl.Font {
	if path == "" {
		return rl.GetFontDefault()
	}
	if f, ok := r.fonts[path]; ok {
		return f
	}
	f := rl.LoadFontEx(path, 64, nil)
	r.fonts[path] = f
	return f
}

// --- Input ---

func (r *Raylib) MousePosition() rl.Vector2 {
	return rl.GetMousePosition()
}

func (r *Raylib) MouseWheelMove() float32 {
	return rl.GetMouseWheelMove()
}

func (r *Raylib) SetCursorVisible(visible bool) {
	if visible {
		rl.ShowCursor()
	} else {
		rl.HideCursor()
	}
}

// --- Projector ---

func (r *Raylib) ScreenToWorld(screen rl.Vector2, depth float32) rl.Vector3 {
	ray := rl.GetScreenToWorldRay(screen, *r.Camera)
	return PointAtDepth(ray, r.viewDirection(), depth)
}

func (r *Raylib) WorldDepth(p rl.Vector3) float32 {
	return rl.Vector3DotProduct(rl.Vector3Subtract(p, r.Camera.Position), r.viewDirection())
}

func (r *Raylib) viewDirection() rl.Vector3 {
	return rl.Vector3Normalize(rl.Vector3Subtract(r.Camera.Target, r.Camera.Position))
}

// PointAtDepth walks ray until it is depth units in front of the camera
// along forward.
func PointAtDepth(ray rl.Ray, forward rl.Vector3, depth float32) rl.Vector3 {
	cos := rl.Vector3DotProduct(ray.Direction, forward)
	if cos <= 1e-6 {
		return rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, depth))
	}
	return rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, depth/cos))
}

// --- GUI ---

func (r *Raylib) Box(bounds rl.Rectangle, title string) {
	gui.GroupBox(bounds, title)
}

func (r *Raylib) Label(bounds rl.Rectangle, text string) {
	gui.Label(bounds, text)
}
