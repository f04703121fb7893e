// Package pointer implements the mouse pointer probe: a proxy object that
// follows the cursor through the scene so colliders can be tested by hand.
package pointer

import (
	"eztester/internal/components"
	"eztester/internal/engine"
	"eztester/internal/host"
	"eztester/internal/logging"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ProxyName is the name of the object that follows the cursor.
const ProxyName = "Test Pointer Object"

const (
	instructionTitle = "Instructions"
	instructionDepth = "Use the mouse scroll to move the pointer object in the z-axis"
	instructionMove  = "Use the mouse to move the pointer object in the x and y axis"
)

type Options struct {
	MeshPath         string // model file; empty uses a sphere
	ShowCursor       bool
	Color            rl.Color
	UseCollider      bool
	UseRigidbody     bool
	ShowInstructions bool
	Radius           float32 // sphere fallback radius
}

func DefaultOptions() Options {
	return Options{
		Color:        rl.Red,
		UseCollider:  true,
		UseRigidbody: true,
		Radius:       0.5,
	}
}

// Mesh is a loaded pointer model.
type Mesh interface {
	engine.Component
	host.Drawable
	Bounds() rl.BoundingBox
}

// ModelLoader loads the pointer model at path, tinted with color.
type ModelLoader func(path string, color rl.Color) (Mesh, error)

func loadModel(path string, color rl.Color) (Mesh, error) {
	m, err := components.NewModelRendererFromFile(path, color)
	if err != nil {
		return nil, err
	}
	return m, nil
}

type Pointer struct {
	engine.BaseComponent
	Options Options

	input     host.Input
	projector host.Projector
	world     engine.WorldAccess
	load      ModelLoader
	log       *log.Logger

	proxy    *engine.GameObject
	collider components.Collider
	depth    float32
}

func New(input host.Input, projector host.Projector, world engine.WorldAccess, opts Options) *Pointer {
	return &Pointer{
		Options:   opts,
		input:     input,
		projector: projector,
		world:     world,
		load:      loadModel,
		log:       logging.New("pointer"),
	}
}

func (p *Pointer) SetLogger(l *log.Logger) { p.log = l }

// SetModelLoader replaces the loader used for MeshPath.
func (p *Pointer) SetModelLoader(load ModelLoader) { p.load = load }

// Proxy returns the object following the cursor, nil before Start.
func (p *Pointer) Proxy() *engine.GameObject { return p.proxy }

// Depth is the current distance of the proxy from the camera.
func (p *Pointer) Depth() float32 { return p.depth }

func (p *Pointer) Start() {
	p.input.SetCursorVisible(p.Options.ShowCursor)

	p.proxy = engine.NewGameObject(ProxyName)
	p.attachShape()
	if p.Options.UseRigidbody {
		p.proxy.AddComponent(components.NewKinematicRigidbody())
	}

	if p.world != nil {
		p.world.SpawnObject(p.proxy)
	} else if scene := p.Scene(); scene != nil {
		scene.AddGameObject(p.proxy)
	}

	p.depth = p.projector.WorldDepth(p.proxy.WorldPosition()) + 1
}

// attachShape adds the renderer and collider: the configured model with a
// box collider around its bounds, or a sphere when no model can be used.
func (p *Pointer) attachShape() {
	if p.Options.MeshPath == "" {
		p.log.Warn("pointer mesh is not set, using a sphere")
		p.attachSphere()
		return
	}
	mesh, err := p.load(p.Options.MeshPath, p.Options.Color)
	if err != nil {
		p.log.Warn("failed to load pointer mesh, using a sphere", "path", p.Options.MeshPath, "err", err)
		p.attachSphere()
		return
	}
	bounds := mesh.Bounds()
	box := components.NewBoxCollider(rl.Vector3Subtract(bounds.Max, bounds.Min))
	box.Offset = rl.Vector3Scale(rl.Vector3Add(bounds.Min, bounds.Max), 0.5)
	p.proxy.AddComponent(mesh)
	p.proxy.AddComponent(box)
	p.collider = box
}

func (p *Pointer) attachSphere() {
	r := p.Options.Radius
	sphere := components.NewSphereCollider(r)
	p.proxy.AddComponent(components.NewMeshRenderer(components.MeshSphere, p.Options.Color, rl.Vector3{X: r, Y: r, Z: r}))
	p.proxy.AddComponent(sphere)
	p.collider = sphere
}

func (p *Pointer) Update(deltaTime float32) {
	if p.proxy == nil {
		return
	}
	p.reconcile()

	p.depth += p.input.MouseWheelMove()
	p.proxy.Transform.Position = p.projector.ScreenToWorld(p.input.MousePosition(), p.depth)
}

// reconcile brings the proxy's collider and rigidbody in line with the options.
func (p *Pointer) reconcile() {
	if p.collider != nil {
		p.collider.SetEnabled(p.Options.UseCollider)
	}

	rb := engine.GetComponent[*components.Rigidbody](p.proxy)
	changed := false
	switch {
	case p.Options.UseRigidbody && rb == nil:
		p.proxy.AddComponent(components.NewKinematicRigidbody())
		changed = true
	case !p.Options.UseRigidbody && rb != nil:
		p.proxy.RemoveComponent(rb)
		changed = true
	}
	if changed && p.world != nil {
		p.world.RefreshPhysics(p.proxy)
	}
}

// DrawOverlay implements host.OverlayDrawable.
func (p *Pointer) DrawOverlay(_ host.Drawer, gui host.GUI) {
	if !p.Options.ShowInstructions {
		return
	}
	gui.Box(rl.Rectangle{Width: 500, Height: 65}, instructionTitle)
	gui.Label(rl.Rectangle{X: 10, Y: 15, Width: 500, Height: 20}, instructionDepth)
	gui.Label(rl.Rectangle{X: 10, Y: 35, Width: 500, Height: 20}, instructionMove)
}

// OnDestroy implements engine.Destroyable.
func (p *Pointer) OnDestroy() {
	if p.proxy == nil {
		return
	}
	if p.world != nil {
		p.world.Destroy(p.proxy)
	} else if p.proxy.Scene != nil {
		p.proxy.Scene.RemoveGameObject(p.proxy)
	}
	p.proxy = nil
}
