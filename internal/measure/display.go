package measure

import (
	"fmt"

	"eztester/internal/components"
	"eztester/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Display owns the handle objects of one measurement. Handles are created on
// first use and updated in place afterwards.
type Display struct {
	world engine.WorldAccess
	scene *engine.Scene
	opts  *Options

	text *engine.GameObject
}

// Visualizer draws the variant-specific indicators next to the value text.
type Visualizer interface {
	Show(d *Display, a, b engine.Transform, value float32)
	// Clear destroys every handle the visualizer created.
	Clear(d *Display)
}

func (d *Display) spawn(name string, c engine.Component) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.AddComponent(c)
	if d.world != nil {
		d.world.SpawnObject(g)
	} else if d.scene != nil {
		d.scene.AddGameObject(g)
	}
	return g
}

// Destroy removes *handle from the world and clears it.
func (d *Display) Destroy(handle **engine.GameObject) {
	g := *handle
	if g == nil {
		return
	}
	if d.world != nil {
		d.world.Destroy(g)
	} else if g.Scene != nil {
		g.Scene.RemoveGameObject(g)
	}
	*handle = nil
}

// Text returns the value text handle, or nil before the first ShowText.
func (d *Display) Text() *engine.GameObject {
	return d.text
}

// ShowText places the formatted value at the anchors' midpoint.
func (d *Display) ShowText(a, b rl.Vector3, value float32) {
	if d.text == nil {
		d.text = d.spawn("DistanceText", components.NewTextMesh())
	}
	d.text.Transform.Position = midpoint(a, b)

	tm := engine.GetComponent[*components.TextMesh](d.text)
	if tm == nil {
		tm = components.NewTextMesh()
		d.text.AddComponent(tm)
	}
	tm.Color = d.opts.TextColor
	tm.FontSize = d.opts.FontSize
	tm.CharacterSize = d.opts.CharacterSize
	tm.Anchor = d.opts.Anchor
	tm.Alignment = d.opts.Alignment
	tm.FontStyle = d.opts.FontStyle
	tm.FontPath = d.opts.Font
	tm.Text = FormatValue(value, d.opts.Unit)
}

// HideText destroys the value text handle if it exists.
func (d *Display) HideText() {
	d.Destroy(&d.text)
}

// Line lazily creates the named line handle in *handle and sets its points.
func (d *Display) Line(handle **engine.GameObject, name string, points ...rl.Vector3) *components.LineRenderer {
	if *handle == nil {
		*handle = d.spawn(name, components.NewLineRenderer(d.opts.Color, d.opts.LineWidth))
	}
	lr := engine.GetComponent[*components.LineRenderer](*handle)
	if lr == nil {
		lr = components.NewLineRenderer(d.opts.Color, d.opts.LineWidth)
		(*handle).AddComponent(lr)
	}
	lr.SetColor(d.opts.Color)
	lr.SetWidth(d.opts.LineWidth)
	lr.SetPositions(points)
	return lr
}

// FormatValue renders a value with two decimals followed by unit.
func FormatValue(value float32, unit string) string {
	return fmt.Sprintf("%.2f%s", value, unit)
}

func midpoint(a, b rl.Vector3) rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a, b), 0.5)
}
