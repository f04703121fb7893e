package app

import (
	"eztester/internal/engine"
	"eztester/internal/gizmo"
	"eztester/internal/host"
	"eztester/internal/physics"
)

// World owns the scene, the physics world and the gizmo buffer of one run.
// It is the engine.WorldAccess handed to components, and it also casts
// (raycast.Caster) and exposes cursor input (pointer.Host).
type World struct {
	*physics.PhysicsWorld
	Scene  *engine.Scene
	Gizmos *gizmo.Buffer

	input     host.Input
	projector host.Projector
}

func NewWorld(input host.Input, projector host.Projector) *World {
	return &World{
		PhysicsWorld: physics.NewPhysicsWorld(),
		Scene:        engine.NewScene("Main"),
		Gizmos:       &gizmo.Buffer{},
		input:        input,
		projector:    projector,
	}
}

// Env is what component factories receive for this world.
func (w *World) Env() engine.Env {
	return engine.Env{Scene: w.Scene, World: w, Gizmos: w.Gizmos}
}

func (w *World) SpawnObject(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
	w.PhysicsWorld.AddObject(g)
}

// Destroy removes g and its children from physics and the scene.
func (w *World) Destroy(g *engine.GameObject) {
	w.forget(g)
	w.Scene.RemoveGameObject(g)
}

func (w *World) forget(g *engine.GameObject) {
	for _, child := range g.Children {
		w.forget(child)
	}
	w.PhysicsWorld.RemoveObject(g)
}

func (w *World) RefreshPhysics(g *engine.GameObject) {
	w.PhysicsWorld.Refresh(g)
}

func (w *World) Input() host.Input         { return w.input }
func (w *World) Projector() host.Projector { return w.projector }

// Step runs one frame of simulation: components first, then physics.
func (w *World) Step(deltaTime float32) {
	w.Scene.Update(deltaTime)
	w.PhysicsWorld.Update(deltaTime)
}

// Draw renders every drawable component of the active objects, then the
// gizmos queued during Step. Call it inside the 3-D pass.
func (w *World) Draw(d host.Drawer) {
	for _, g := range w.Scene.GameObjects {
		if !g.Active {
			continue
		}
		for _, c := range g.Components() {
			if dr, ok := c.(host.Drawable); ok {
				dr.Draw(d)
			}
		}
	}
	w.Gizmos.Flush(d)
}

// DrawOverlay renders screen-space components after the 3-D pass.
func (w *World) DrawOverlay(d host.Drawer, gui host.GUI) {
	for _, g := range w.Scene.GameObjects {
		if !g.Active {
			continue
		}
		for _, c := range g.Components() {
			if o, ok := c.(host.OverlayDrawable); ok {
				o.DrawOverlay(d, gui)
			}
		}
	}
}
