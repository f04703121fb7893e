package engine

import (
	"errors"
	"fmt"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrUnknownComponent is returned by CreateComponent for unregistered names.
var ErrUnknownComponent = errors.New("unknown component type")

// Props carries the configuration of a component as written in a scene file.
// *yaml.Node satisfies it.
type Props interface {
	Decode(v any) error
}

// Env is what a factory may use while building a component. Scene is fully
// populated with the scene file's objects, so anchors can be resolved by name.
type Env struct {
	Scene  *Scene
	World  WorldAccess
	Gizmos Gizmos
}

// Gizmos receives frame-scoped debug shapes (the equivalent of debug lines
// drawn from Update). The frame loop flushes them inside the 3-D pass.
type Gizmos interface {
	Line(start, end rl.Vector3, color rl.Color)
	WireSphere(center rl.Vector3, radius float32, color rl.Color)
	WireCube(center, size rl.Vector3, color rl.Color)
}

// ComponentFactory builds a component from its scene-file props.
type ComponentFactory func(env Env, props Props) (Component, error)

var componentRegistry = map[string]ComponentFactory{}

// RegisterComponent registers a named component factory. Panics on duplicates.
func RegisterComponent(name string, factory ComponentFactory) {
	if _, exists := componentRegistry[name]; exists {
		panic(fmt.Sprintf("component %q already registered", name))
	}
	componentRegistry[name] = factory
}

// CreateComponent looks up a registered component by name and builds it.
func CreateComponent(name string, env Env, props Props) (Component, error) {
	factory, ok := componentRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, name)
	}
	c, err := factory(env, props)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", name, err)
	}
	return c, nil
}

// RegisteredComponents returns all registered component names, sorted.
func RegisteredComponents() []string {
	names := make([]string, 0, len(componentRegistry))
	for name := range componentRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NoProps decodes nothing; for components built without configuration.
type NoProps struct{}

func (NoProps) Decode(any) error { return nil }
