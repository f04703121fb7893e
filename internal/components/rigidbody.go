package components

import (
	"eztester/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Rigidbody struct {
	engine.BaseComponent
	Velocity    rl.Vector3
	Mass        float32
	Bounciness  float32 // 0 = no bounce, 1 = perfect bounce
	UseGravity  bool
	IsKinematic bool // moves by script, never pushed by physics
}

func NewRigidbody() *Rigidbody {
	return &Rigidbody{
		Velocity:    rl.Vector3{},
		Mass:        1.0,
		Bounciness:  0.2,
		UseGravity:  true,
		IsKinematic: false,
	}
}

// NewKinematicRigidbody returns a rigidbody that follows its transform.
func NewKinematicRigidbody() *Rigidbody {
	rb := NewRigidbody()
	rb.IsKinematic = true
	rb.UseGravity = false
	return rb
}
