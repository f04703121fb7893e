package config

import (
	"errors"
	"fmt"
	"strings"

	"eztester/internal/assets"
	"eztester/internal/components"
	"eztester/internal/engine"
	"eztester/internal/logging"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ModelLoader builds a renderer from a model file. Loading needs a window;
// headless callers pass nil and model objects are built without one.
type ModelLoader func(path string, color rl.Color) (*components.ModelRenderer, error)

// Build creates the scene's objects in env and then attaches their
// components, so component props can refer to any object by name.
// Objects are spawned through env.World when set, else added to env.Scene.
// Unknown component types are logged and skipped. On error nothing built is
// left in the scene.
func Build(sc *Scene, env engine.Env, loadModel ModelLoader) ([]*engine.GameObject, error) {
	if env.Scene == nil {
		return nil, errors.New("build scene: no scene")
	}
	l := logging.New("config")

	objects := make([]*engine.GameObject, 0, len(sc.Objects))
	for _, def := range sc.Objects {
		g, err := newObject(def, loadModel)
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", def.Name, err)
		}
		objects = append(objects, g)
	}
	for _, g := range objects {
		if env.World != nil {
			env.World.SpawnObject(g)
		} else {
			env.Scene.AddGameObject(g)
		}
	}

	for i, def := range sc.Objects {
		for _, c := range def.Components {
			comp, err := engine.CreateComponent(c.Type, env, props(c))
			if errors.Is(err, ErrUnknownComponent) {
				l.Warn("skipping unknown component", "object", def.Name, "type", c.Type)
				continue
			}
			if err != nil {
				discard(env, objects)
				return nil, fmt.Errorf("object %q: %w", def.Name, err)
			}
			objects[i].AddComponent(comp)
		}
	}
	return objects, nil
}

func discard(env engine.Env, objects []*engine.GameObject) {
	for _, g := range objects {
		if env.World != nil {
			env.World.Destroy(g)
		} else {
			env.Scene.RemoveGameObject(g)
		}
	}
}

func props(c Component) engine.Props {
	if c.Props.Kind == 0 {
		return engine.NoProps{}
	}
	return &c.Props
}

func newObject(def Object, loadModel ModelLoader) (*engine.GameObject, error) {
	g := engine.NewGameObject(def.Name)
	g.Tags = def.Tags
	g.Layer = def.Layer
	g.Active = !def.Inactive
	g.Transform.Position = def.Position.Vector3()
	g.Transform.Rotation = def.Rotation.Vector3()
	if def.Scale != nil {
		g.Transform.Scale = def.Scale.Vector3()
	}

	size := rl.Vector3{X: 1, Y: 1, Z: 1}
	if def.Mesh != nil {
		mr, err := newMeshRenderer(*def.Mesh)
		if err != nil {
			return nil, err
		}
		size = mr.Size
		g.AddComponent(mr)
	}
	if def.Model != nil {
		if err := addModel(g, *def.Model, loadModel); err != nil {
			return nil, err
		}
	}
	if def.Collider != nil {
		c, err := newCollider(*def.Collider, size)
		if err != nil {
			return nil, err
		}
		g.AddComponent(c)
	}
	if def.Rigidbody != nil {
		g.AddComponent(newRigidbody(*def.Rigidbody))
	}
	return g, nil
}

func newMeshRenderer(def Mesh) (*components.MeshRenderer, error) {
	mt, err := components.ParseMeshType(def.Primitive)
	if err != nil {
		return nil, err
	}
	color := rl.White
	if def.Color != "" {
		if color, err = assets.ParseColor(def.Color); err != nil {
			return nil, err
		}
	}
	size := rl.Vector3{X: 1, Y: 1, Z: 1}
	if mt == components.MeshSphere {
		size = rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}
	}
	if def.Size != nil {
		size = def.Size.Vector3()
	}
	return components.NewMeshRenderer(mt, color, size), nil
}

func addModel(g *engine.GameObject, def Model, loadModel ModelLoader) error {
	color := rl.White
	if def.Color != "" {
		c, err := assets.ParseColor(def.Color)
		if err != nil {
			return err
		}
		color = c
	}
	if loadModel == nil {
		return nil
	}
	mr, err := loadModel(def.Path, color)
	if err != nil {
		logging.New("config").Warn("failed to load model", "object", g.Name, "path", def.Path, "err", err)
		return nil
	}
	g.AddComponent(mr)
	return nil
}

// newCollider builds a box or sphere collider. Sizes default to the mesh:
// the mesh size for boxes, its X extent for spheres.
func newCollider(def Collider, meshSize rl.Vector3) (components.Collider, error) {
	switch strings.ToLower(def.Shape) {
	case "box", "":
		size := meshSize
		if def.Size != nil {
			size = def.Size.Vector3()
		}
		box := components.NewBoxCollider(size)
		box.Offset = def.Offset.Vector3()
		box.Enabled = !def.Disabled
		return box, nil
	case "sphere":
		r := def.Radius
		if r <= 0 {
			r = meshSize.X
		}
		sphere := components.NewSphereCollider(r)
		sphere.Offset = def.Offset.Vector3()
		sphere.Enabled = !def.Disabled
		return sphere, nil
	}
	return nil, fmt.Errorf("unknown collider shape %q", def.Shape)
}

func newRigidbody(def Rigidbody) *components.Rigidbody {
	rb := components.NewRigidbody()
	if def.IsKinematic {
		rb = components.NewKinematicRigidbody()
	}
	if def.Mass != nil {
		rb.Mass = *def.Mass
	}
	if def.Bounciness != nil {
		rb.Bounciness = *def.Bounciness
	}
	if def.UseGravity != nil {
		rb.UseGravity = *def.UseGravity
	}
	return rb
}
