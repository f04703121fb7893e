package pointer

import (
	"errors"

	"eztester/internal/assets"
	"eztester/internal/engine"
	"eztester/internal/host"
)

// ErrNoHost is returned when the world offers no cursor input or projection.
var ErrNoHost = errors.New("world does not provide input and projection")

// Host is what the world must offer for a pointer to be built from a scene file.
type Host interface {
	Input() host.Input
	Projector() host.Projector
}

type pointerProps struct {
	Mesh             string   `yaml:"mesh"`
	ShowCursor       bool     `yaml:"showCursor"`
	Color            string   `yaml:"color"`
	UseCollider      *bool    `yaml:"useCollider"`
	UseRigidbody     *bool    `yaml:"useRigidbody"`
	ShowInstructions bool     `yaml:"showInstructions"`
	Radius           *float32 `yaml:"radius"`
}

func (p pointerProps) apply(o *Options) error {
	o.MeshPath = p.Mesh
	o.ShowCursor = p.ShowCursor
	o.ShowInstructions = p.ShowInstructions
	if p.Color != "" {
		c, err := assets.ParseColor(p.Color)
		if err != nil {
			return err
		}
		o.Color = c
	}
	if p.UseCollider != nil {
		o.UseCollider = *p.UseCollider
	}
	if p.UseRigidbody != nil {
		o.UseRigidbody = *p.UseRigidbody
	}
	if p.Radius != nil {
		o.Radius = *p.Radius
	}
	return nil
}

func init() {
	engine.RegisterComponent("MousePointer", func(env engine.Env, props engine.Props) (engine.Component, error) {
		h, ok := env.World.(Host)
		if !ok {
			return nil, ErrNoHost
		}
		var p pointerProps
		if err := props.Decode(&p); err != nil {
			return nil, err
		}
		opts := DefaultOptions()
		if err := p.apply(&opts); err != nil {
			return nil, err
		}
		return New(h.Input(), h.Projector(), env.World, opts), nil
	})
}
