package components

import (
	"eztester/internal/assets"
	"eztester/internal/engine"
	"eztester/internal/host"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type ModelRenderer struct {
	engine.BaseComponent
	Model    rl.Model
	Color    rl.Color
	fromFile bool // true if owned by the asset manager
}

func NewModelRenderer(model rl.Model, color rl.Color) *ModelRenderer {
	return &ModelRenderer{
		Model:    model,
		Color:    color,
		fromFile: false,
	}
}

// NewModelRendererFromFile loads path through the asset manager.
func NewModelRendererFromFile(path string, color rl.Color) (*ModelRenderer, error) {
	model, err := assets.LoadModel(path)
	if err != nil {
		return nil, err
	}
	return &ModelRenderer{
		Model:    model,
		Color:    color,
		fromFile: true,
	}, nil
}

// Bounds returns the model's local bounding box.
func (m *ModelRenderer) Bounds() rl.BoundingBox {
	return rl.GetModelBoundingBox(m.Model)
}

func (m *ModelRenderer) Draw(d host.Drawer) {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	// Combine: scale -> rotate -> translate
	t := g.WorldTransform()
	scaleMatrix := rl.MatrixScale(t.Scale.X, t.Scale.Y, t.Scale.Z)
	transMatrix := rl.MatrixTranslate(t.Position.X, t.Position.Y, t.Position.Z)
	m.Model.Transform = rl.MatrixMultiply(rl.MatrixMultiply(scaleMatrix, t.RotationMatrix()), transMatrix)

	d.DrawModel(m.Model, m.Color)
}

// OnDestroy implements engine.Destroyable.
func (m *ModelRenderer) OnDestroy() {
	// Only unload if not from asset manager (asset manager handles its own cleanup)
	if !m.fromFile && m.Model.MeshCount > 0 {
		rl.UnloadModel(m.Model)
	}
}
