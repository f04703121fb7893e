package measure

import (
	"bytes"
	"strings"
	"testing"

	"eztester/internal/engine"
	"eztester/internal/logging"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(x, y, z float32) engine.Transform {
	return engine.Transform{
		Position: rl.Vector3{X: x, Y: y, Z: z},
		Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
	}
}

var samplePoints = []engine.Transform{
	at(0, 0, 0),
	at(1, 2, 3),
	at(-4, 0.5, 7),
	at(10, -10, 0),
	at(0.25, 0.25, -0.25),
}

func TestDistanceIsSymmetric(t *testing.T) {
	var d Distance
	for _, a := range samplePoints {
		for _, b := range samplePoints {
			assert.Equal(t, d.Calculate(a, b), d.Calculate(b, a))
		}
	}
}

func TestDistanceToSelfIsZero(t *testing.T) {
	var d Distance
	for _, a := range samplePoints {
		assert.Zero(t, d.Calculate(a, a))
	}
}

func TestDistanceTriangleInequality(t *testing.T) {
	var d Distance
	for _, a := range samplePoints {
		for _, b := range samplePoints {
			for _, c := range samplePoints {
				assert.LessOrEqual(t, d.Calculate(a, c), d.Calculate(a, b)+d.Calculate(b, c)+1e-4)
			}
		}
	}
}

func TestDistanceValue(t *testing.T) {
	assert.InDelta(t, 5, Distance{}.Calculate(at(0, 0, 0), at(3, 4, 0)), 1e-6)
}

func TestAngleBelowIsNegative(t *testing.T) {
	angle, ok := ComputeAngle(at(0, 0, 0), at(0, -1, 5), AxisY)
	require.True(t, ok)
	assert.Less(t, angle, float32(0))
	assert.InDelta(t, -90, angle, 1e-3)
}

func TestAngleSignFlipsAcrossAnchor(t *testing.T) {
	tests := []struct {
		name       string
		above      engine.Transform
		below      engine.Transform
		axis       Axis
		wantAbove  float32
		checkValue bool
	}{
		{"axis Y", at(0, 1, 5), at(0, -1, 5), AxisY, 90, true},
		{"axis Y off-centre", at(2, 1, 5), at(2, -1, 5), AxisY, 0, false},
		{"axis X", at(1, 0, 5), at(-1, 0, 5), AxisX, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			up, ok := ComputeAngle(at(0, 0, 0), tt.above, tt.axis)
			require.True(t, ok)
			down, ok := ComputeAngle(at(0, 0, 0), tt.below, tt.axis)
			require.True(t, ok)

			assert.GreaterOrEqual(t, up, float32(0))
			assert.LessOrEqual(t, down, float32(0))
			assert.InDelta(t, up, -down, 1e-3, "magnitude is preserved")
			if tt.checkValue {
				assert.InDelta(t, tt.wantAbove, up, 1e-3)
			}
		})
	}
}

func TestAngleDegenerateAlongReference(t *testing.T) {
	angle, ok := ComputeAngle(at(0, 0, 0), at(0, 0, 5), AxisY)
	assert.False(t, ok)
	assert.Zero(t, angle)

	angle, ok = ComputeAngle(at(0, 0, 0), at(0, 3, 0), AxisX)
	assert.False(t, ok)
	assert.Zero(t, angle)

	angle, ok = ComputeAngle(at(1, 1, 1), at(1, 1, 1), AxisY)
	assert.False(t, ok, "identical positions")
	assert.Zero(t, angle)
}

func TestAngleFollowsAnchorOrientation(t *testing.T) {
	facingX := at(0, 0, 0)
	facingX.Rotation = rl.Vector3{Y: 90}

	_, ok := ComputeAngle(facingX, at(5, 0, 0), AxisY)
	assert.False(t, ok, "B lies along the rotated forward vector")

	angle, ok := ComputeAngle(at(0, 0, 0), at(5, 0, 0), AxisY)
	require.True(t, ok)
	assert.InDelta(t, 180, angle, 1e-3)
}

func TestAngleRange(t *testing.T) {
	coords := []float32{-3, -1, -0.5, 0, 0.5, 1, 3}
	rotations := []rl.Vector3{{}, {X: 30}, {Y: 135}, {X: -60, Z: 45}, {X: 180, Y: 10, Z: 200}}

	for _, rot := range rotations {
		a := at(0, 0, 0)
		a.Rotation = rot
		for _, x := range coords {
			for _, y := range coords {
				for _, z := range coords {
					for _, axis := range []Axis{AxisX, AxisY} {
						angle, _ := ComputeAngle(a, at(x, y, z), axis)
						assert.Greater(t, angle, float32(-180))
						assert.LessOrEqual(t, angle, float32(180))
					}
				}
			}
		}
	}
}

func TestAngleWarnsOnce(t *testing.T) {
	var out bytes.Buffer
	calc := NewAngle(AxisY)
	calc.SetLogger(logging.NewTo(&out, "measure"))

	assert.Zero(t, calc.Calculate(at(0, 0, 0), at(0, 0, 0)))
	assert.Zero(t, calc.Calculate(at(0, 0, 0), at(0, 0, 2)))

	assert.Equal(t, 1, strings.Count(out.String(), "inclination normal is zero"))
}

func TestParseOptions(t *testing.T) {
	axis, err := ParseAxis("x")
	require.NoError(t, err)
	assert.Equal(t, AxisX, axis)

	_, err = ParseAxis("Z")
	assert.ErrorIs(t, err, ErrInvalidAxis)

	dt, err := ParseDisplayType("textingame")
	require.NoError(t, err)
	assert.Equal(t, DisplayTextInGame, dt)
	assert.Equal(t, "TextInGame", dt.String())

	_, err = ParseDisplayType("Hologram")
	assert.ErrorIs(t, err, ErrInvalidDisplayType)
}

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	assert.Equal(t, int32(30), o.FontSize)
	assert.Equal(t, float32(0.1), o.CharacterSize)
	assert.Equal(t, DisplayBoth, o.DisplayType)
	assert.Equal(t, AxisY, o.Axis)
	assert.False(t, o.ShowDistance)
	assert.Equal(t, rl.Red, o.Color)
	assert.Equal(t, rl.White, o.TextColor)
	assert.Empty(t, o.Unit)
	assert.Equal(t, 360, o.MaxArcPoints)

	assert.Equal(t, "°", DefaultAngleOptions().Unit)
}
