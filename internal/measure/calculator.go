package measure

import (
	"math"

	"eztester/internal/engine"
	"eztester/internal/logging"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Calculator turns two anchor transforms into a scalar.
type Calculator interface {
	Calculate(a, b engine.Transform) float32
}

// Distance is the straight-line distance between two anchors.
type Distance struct{}

func (Distance) Calculate(a, b engine.Transform) float32 {
	return rl.Vector3Distance(a.Position, b.Position)
}

// Angle is the signed tilt of b relative to a, in degrees.
type Angle struct {
	Axis Axis

	log    *log.Logger
	warned bool
}

func NewAngle(axis Axis) *Angle {
	return &Angle{Axis: axis, log: logging.New("measure")}
}

// SetLogger replaces the calculator's logger.
func (c *Angle) SetLogger(l *log.Logger) { c.log = l }

// Calculate returns ComputeAngle and warns the first time the geometry is degenerate.
func (c *Angle) Calculate(a, b engine.Transform) float32 {
	angle, ok := ComputeAngle(a, b, c.Axis)
	if !ok && !c.warned {
		c.warned = true
		if c.log != nil {
			c.log.Warn("the inclination normal is zero, the angle will be zero", "axis", c.Axis)
		}
	}
	return angle
}

// degenerateLength is the length under which an inclination normal counts as zero.
const degenerateLength = 1e-5

// ComputeAngle measures the angle between a's base plane and the plane
// through a containing the displacement to b. The base plane is normal to
// a's up (axis Y) or right (axis X) vector; the inclined plane's normal is
// the displacement crossed with a's forward (axis Y) or up (axis X) vector.
// The result is negated when b is below a on the active axis and lies in
// (-180, 180]. It returns false, with a zero angle, when the displacement is
// colinear with the reference direction.
func ComputeAngle(a, b engine.Transform, axis Axis) (float32, bool) {
	baseNormal := a.Up()
	reference := a.Forward()
	if axis == AxisX {
		baseNormal = a.Right()
		reference = a.Up()
	}

	displacement := rl.Vector3Subtract(b.Position, a.Position)
	inclination := rl.Vector3CrossProduct(displacement, reference)
	if rl.Vector3Length(inclination) < degenerateLength {
		return 0, false
	}

	angle := unsignedAngle(baseNormal, inclination)

	below := b.Position.Y < a.Position.Y
	if axis == AxisX {
		below = b.Position.X < a.Position.X
	}
	if below {
		angle = -angle
	}
	if angle <= -180 {
		angle = 180
	}
	return angle, true
}

// unsignedAngle returns the angle between u and v in degrees, in [0, 180].
func unsignedAngle(u, v rl.Vector3) float32 {
	denom := math.Sqrt(float64(rl.Vector3LengthSqr(u)) * float64(rl.Vector3LengthSqr(v)))
	if denom < 1e-15 {
		return 0
	}
	cos := float64(rl.Vector3DotProduct(u, v)) / denom
	cos = math.Max(-1, math.Min(1, cos))
	return float32(math.Acos(cos) * 180 / math.Pi)
}
