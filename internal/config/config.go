// Package config loads scene files: the window, the camera and the objects
// with their components.
package config

import (
	"errors"
	"fmt"
	"os"

	"eztester/configs"
	"eztester/internal/engine"

	"gopkg.in/yaml.v3"
)

// DefaultPath is tried when no scene path is given.
const DefaultPath = "configs/scene.yaml"

// ErrUnknownComponent is reported for component types nothing registered.
var ErrUnknownComponent = engine.ErrUnknownComponent

type Scene struct {
	Window  Window   `yaml:"window"`
	Camera  Camera   `yaml:"camera"`
	Objects []Object `yaml:"objects"`
}

type Window struct {
	Width  int32  `yaml:"width"`
	Height int32  `yaml:"height"`
	Title  string `yaml:"title"`
	FPS    int32  `yaml:"fps"`
}

type Camera struct {
	Position engine.Vec3 `yaml:"position"`
	Target   engine.Vec3 `yaml:"target"`
	FOV      float32     `yaml:"fov"`
}

type Object struct {
	Name      string       `yaml:"name"`
	Tags      []string     `yaml:"tags"`
	Layer     int          `yaml:"layer"`
	Inactive  bool         `yaml:"inactive"`
	Position  engine.Vec3  `yaml:"position"`
	Rotation  engine.Vec3  `yaml:"rotation"`
	Scale     *engine.Vec3 `yaml:"scale"`
	Mesh      *Mesh        `yaml:"mesh"`
	Model     *Model       `yaml:"model"`
	Collider  *Collider    `yaml:"collider"`
	Rigidbody *Rigidbody   `yaml:"rigidbody"`

	Components []Component `yaml:"components"`
}

// Mesh is a primitive renderer: cube, sphere or plane.
type Mesh struct {
	Primitive string       `yaml:"primitive"`
	Color     string       `yaml:"color"`
	Size      *engine.Vec3 `yaml:"size"`
}

// Model is a renderer loaded from a model file.
type Model struct {
	Path  string `yaml:"path"`
	Color string `yaml:"color"`
}

type Collider struct {
	Shape    string       `yaml:"shape"` // box or sphere
	Size     *engine.Vec3 `yaml:"size"`
	Offset   engine.Vec3  `yaml:"offset"`
	Radius   float32      `yaml:"radius"`
	Disabled bool         `yaml:"disabled"`
}

type Rigidbody struct {
	Mass        *float32 `yaml:"mass"`
	Bounciness  *float32 `yaml:"bounciness"`
	UseGravity  *bool    `yaml:"useGravity"`
	IsKinematic bool     `yaml:"isKinematic"`
}

// Component is a registered component type and its props, decoded by the
// component's factory.
type Component struct {
	Type  string    `yaml:"type"`
	Props yaml.Node `yaml:"props"`
}

// Default returns a scene with the window and camera defaults and no objects.
func Default() *Scene {
	return &Scene{
		Window: Window{Width: 1280, Height: 720, Title: "EzTester", FPS: 60},
		Camera: Camera{Position: engine.Vec3{0, 6, -14}, Target: engine.Vec3{0, 1, 0}, FOV: 45},
	}
}

// Parse decodes a scene file over the defaults.
func Parse(data []byte) (*Scene, error) {
	sc := Default()
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	return sc, nil
}

// Load reads the scene at path. An empty path tries DefaultPath and then the
// embedded demo scene. The returned source names where the scene came from.
func Load(path string) (sc *Scene, source string, err error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, "", fmt.Errorf("read scene: %w", err)
		}
		sc, err := Parse(data)
		return sc, path, err
	}

	data, err := os.ReadFile(DefaultPath)
	switch {
	case err == nil:
		sc, err := Parse(data)
		return sc, DefaultPath, err
	case !errors.Is(err, os.ErrNotExist):
		return nil, "", fmt.Errorf("read scene: %w", err)
	}

	sc, err = Parse(configs.DefaultScene)
	return sc, "embedded", err
}
