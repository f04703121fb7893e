package raycast

import (
	"errors"
	"fmt"
	"strings"

	"eztester/internal/assets"
	"eztester/internal/engine"
	"eztester/internal/logging"
	"eztester/internal/physics"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrInvalidRayType is returned when a scene names an unknown cast shape.
var ErrInvalidRayType = errors.New("invalid ray type")

type RayType int

const (
	RayTypeRay RayType = iota
	RayTypeSphere
	RayTypeBox
	RayTypeCapsule
)

var rayTypeNames = [...]string{"Ray", "Sphere", "Box", "Capsule"}

func (r RayType) String() string {
	if r < 0 || int(r) >= len(rayTypeNames) {
		return fmt.Sprintf("RayType(%d)", int(r))
	}
	return rayTypeNames[r]
}

func ParseRayType(s string) (RayType, error) {
	for i, name := range rayTypeNames {
		if strings.EqualFold(name, s) {
			return RayType(i), nil
		}
	}
	return RayTypeRay, fmt.Errorf("%w: %q", ErrInvalidRayType, s)
}

// Viewer draws a cast from its owner every frame and, with CheckHit, runs it.
type Viewer struct {
	engine.BaseComponent

	RayType  RayType
	Distance float32
	Color    rl.Color
	CheckHit bool
	// Extent is the sphere and capsule radius and the box half extent, for
	// both the cast and its gizmo.
	Extent float32

	OnHit engine.EventWithArg[physics.RaycastHit]

	direction rl.Vector3
	origin    rl.Vector3
	caster    Caster
	gizmos    engine.Gizmos
	log       *log.Logger
}

func NewViewer(caster Caster, gizmos engine.Gizmos) *Viewer {
	return &Viewer{
		RayType:   RayTypeRay,
		Distance:  10,
		Color:     rl.Red,
		Extent:    0.1,
		direction: rl.Vector3{Z: 1},
		caster:    caster,
		gizmos:    gizmos,
		log:       logging.New("raycast"),
	}
}

// SetLogger replaces the viewer's logger.
func (v *Viewer) SetLogger(l *log.Logger) { v.log = l }

func (v *Viewer) SetDirection(dir rl.Vector3) { v.direction = dir }
func (v *Viewer) Direction() rl.Vector3       { return v.direction }

// Origin is the owner position sampled by the last Update.
func (v *Viewer) Origin() rl.Vector3 { return v.origin }

func (v *Viewer) Update(deltaTime float32) {
	g := v.GetGameObject()
	if g == nil {
		return
	}
	v.origin = g.WorldPosition()
	reach := rl.Vector3Scale(v.direction, v.Distance)
	end := rl.Vector3Add(v.origin, reach)

	if v.gizmos != nil {
		v.gizmos.Line(v.origin, end, v.Color)
		v.drawShape(end)
	}

	if !v.CheckHit || v.caster == nil {
		return
	}
	hit, ok := v.cast(g)
	if !ok {
		return
	}
	target := ""
	if hit.GameObject != nil {
		target = hit.GameObject.Name
	}
	v.log.Info("hit", "target", target, "source", g.Name, "distance", hit.Distance)
	v.OnHit.Invoke(hit)
}

func (v *Viewer) drawShape(end rl.Vector3) {
	switch v.RayType {
	case RayTypeSphere:
		v.gizmos.WireSphere(end, v.Extent, v.Color)
	case RayTypeBox:
		size := 2 * v.Extent
		v.gizmos.WireCube(end, rl.Vector3{X: size, Y: size, Z: size}, v.Color)
	case RayTypeCapsule:
		v.gizmos.WireSphere(v.origin, v.Extent, v.Color)
		v.gizmos.WireSphere(end, v.Extent, v.Color)
	}
}

func (v *Viewer) cast(g *engine.GameObject) (physics.RaycastHit, bool) {
	ray := rl.Ray{Position: v.origin, Direction: v.direction}
	switch v.RayType {
	case RayTypeSphere:
		return ShootSphereCast(v.caster, v.origin, v.Extent, v.direction, v.Distance)
	case RayTypeBox:
		half := rl.Vector3{X: v.Extent, Y: v.Extent, Z: v.Extent}
		rot := engine.Transform{Rotation: g.WorldRotation()}.Quaternion()
		return ShootBoxRay(v.caster, ray, half, rot, v.Distance)
	case RayTypeCapsule:
		return ShootCapsuleRay(v.caster, ray, v.Extent, v.Distance)
	}
	return ShootRaycast(v.caster, v.origin, v.direction, v.Distance)
}

type viewerProps struct {
	RayType   string       `yaml:"rayType"`
	Direction *engine.Vec3 `yaml:"direction"`
	Distance  *float32     `yaml:"distance"`
	Color     string       `yaml:"color"`
	CheckHit  bool         `yaml:"checkHit"`
	Extent    *float32     `yaml:"extent"`
}

func init() {
	engine.RegisterComponent("RaycastViewer", func(env engine.Env, props engine.Props) (engine.Component, error) {
		caster, ok := env.World.(Caster)
		if !ok {
			return nil, errors.New("world does not support casts")
		}
		var p viewerProps
		if err := props.Decode(&p); err != nil {
			return nil, err
		}

		v := NewViewer(caster, env.Gizmos)
		v.CheckHit = p.CheckHit
		if p.RayType != "" {
			rt, err := ParseRayType(p.RayType)
			if err != nil {
				return nil, err
			}
			v.RayType = rt
		}
		if p.Direction != nil {
			v.direction = p.Direction.Vector3()
		}
		if p.Distance != nil {
			v.Distance = *p.Distance
		}
		if p.Extent != nil {
			v.Extent = *p.Extent
		}
		if p.Color != "" {
			c, err := assets.ParseColor(p.Color)
			if err != nil {
				return nil, err
			}
			v.Color = c
		}
		return v, nil
	})
}
