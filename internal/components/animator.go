package components

import (
	"math"

	"eztester/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Animator moves its object around the position it had at Start: a
// horizontal orbit with a vertical bob, plus a spin about Y.
type Animator struct {
	engine.BaseComponent
	OrbitRadius float32 // units
	OrbitSpeed  float32 // radians per second
	BobHeight   float32 // units
	SpinSpeed   float32 // degrees per second
	Phase       float32 // radians

	origin rl.Vector3
	time   float32
}

func NewAnimator() *Animator {
	return &Animator{
		OrbitRadius: 2,
		OrbitSpeed:  0.5,
		BobHeight:   1,
		SpinSpeed:   45,
	}
}

func (a *Animator) Start() {
	if g := a.GetGameObject(); g != nil {
		a.origin = g.Transform.Position
	}
}

func (a *Animator) Update(deltaTime float32) {
	g := a.GetGameObject()
	if g == nil {
		return
	}
	a.time += deltaTime

	t := float64(a.time*a.OrbitSpeed + a.Phase)
	offset := rl.Vector3{
		X: float32(math.Cos(t)) * a.OrbitRadius,
		Y: float32(math.Sin(t*2)) * a.BobHeight,
		Z: float32(math.Sin(t)) * a.OrbitRadius,
	}
	g.Transform.Position = rl.Vector3Add(a.origin, offset)

	spin := g.Transform.Rotation.Y + a.SpinSpeed*deltaTime
	g.Transform.Rotation.Y = float32(math.Mod(float64(spin), 360))
}

type animatorProps struct {
	OrbitRadius *float32 `yaml:"orbitRadius"`
	OrbitSpeed  *float32 `yaml:"orbitSpeed"`
	BobHeight   *float32 `yaml:"bobHeight"`
	SpinSpeed   *float32 `yaml:"spinSpeed"`
	Phase       float32  `yaml:"phase"`
}

func init() {
	engine.RegisterComponent("Animator", func(_ engine.Env, props engine.Props) (engine.Component, error) {
		var p animatorProps
		if err := props.Decode(&p); err != nil {
			return nil, err
		}
		a := NewAnimator()
		a.Phase = p.Phase
		for _, f := range []struct {
			src *float32
			dst *float32
		}{
			{p.OrbitRadius, &a.OrbitRadius},
			{p.OrbitSpeed, &a.OrbitSpeed},
			{p.BobHeight, &a.BobHeight},
			{p.SpinSpeed, &a.SpinSpeed},
		} {
			if f.src != nil {
				*f.dst = *f.src
			}
		}
		return a, nil
	})
}
