package engine

import (
	"errors"
	"testing"
)

type mockProbe struct {
	BaseComponent
	Speed  float32
	Target *GameObject
}

type mockProps map[string]any

func (p mockProps) Decode(v any) error {
	dst, ok := v.(*map[string]any)
	if !ok {
		return errors.New("unsupported target")
	}
	*dst = p
	return nil
}

func mockFactory(env Env, props Props) (Component, error) {
	var raw map[string]any
	if err := props.Decode(&raw); err != nil {
		return nil, err
	}
	probe := &mockProbe{}
	if v, ok := raw["speed"].(float64); ok {
		probe.Speed = float32(v)
	}
	if name, ok := raw["target"].(string); ok && env.Scene != nil {
		probe.Target = env.Scene.FindByName(name)
	}
	return probe, nil
}

func TestRegisterComponent(t *testing.T) {
	componentRegistry = map[string]ComponentFactory{}

	RegisterComponent("MockProbe", mockFactory)

	if _, exists := componentRegistry["MockProbe"]; !exists {
		t.Error("Component not registered")
	}
}

func TestRegisterComponentDuplicate(t *testing.T) {
	componentRegistry = map[string]ComponentFactory{}

	RegisterComponent("Duplicate", mockFactory)

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on duplicate registration")
		}
	}()

	RegisterComponent("Duplicate", mockFactory)
}

func TestCreateComponent(t *testing.T) {
	componentRegistry = map[string]ComponentFactory{}
	RegisterComponent("MockProbe", mockFactory)

	scene := NewScene("Test")
	target := NewGameObject("Target")
	scene.AddGameObject(target)

	c, err := CreateComponent("MockProbe", Env{Scene: scene}, mockProps{"speed": 10.5, "target": "Target"})
	if err != nil {
		t.Fatalf("CreateComponent failed: %v", err)
	}

	probe, ok := c.(*mockProbe)
	if !ok {
		t.Fatal("CreateComponent didn't return mockProbe")
	}
	if probe.Speed != 10.5 {
		t.Errorf("Expected Speed 10.5, got %f", probe.Speed)
	}
	if probe.Target != target {
		t.Error("Target was not resolved by name")
	}
}

func TestCreateComponentNotFound(t *testing.T) {
	componentRegistry = map[string]ComponentFactory{}

	c, err := CreateComponent("DoesNotExist", Env{}, NoProps{})
	if c != nil {
		t.Error("CreateComponent should return nil for unknown component")
	}
	if !errors.Is(err, ErrUnknownComponent) {
		t.Errorf("Expected ErrUnknownComponent, got %v", err)
	}
}

func TestCreateComponentFactoryError(t *testing.T) {
	componentRegistry = map[string]ComponentFactory{}
	RegisterComponent("MockProbe", mockFactory)

	_, err := CreateComponent("MockProbe", Env{}, NoProps{})
	if err != nil {
		t.Fatalf("NoProps should decode cleanly: %v", err)
	}

	boom := errors.New("boom")
	RegisterComponent("Broken", func(Env, Props) (Component, error) { return nil, boom })
	if _, err := CreateComponent("Broken", Env{}, NoProps{}); !errors.Is(err, boom) {
		t.Errorf("Expected factory error to be wrapped, got %v", err)
	}
}

func TestRegisteredComponentsSorted(t *testing.T) {
	componentRegistry = map[string]ComponentFactory{}

	RegisterComponent("Zebra", mockFactory)
	RegisterComponent("Alpha", mockFactory)
	RegisterComponent("Middle", mockFactory)

	names := RegisteredComponents()
	if len(names) != 3 {
		t.Fatalf("Expected 3 components, got %d", len(names))
	}
	if names[0] != "Alpha" || names[1] != "Middle" || names[2] != "Zebra" {
		t.Errorf("Components not sorted: %v", names)
	}
}
