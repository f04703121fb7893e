package measure

import (
	"errors"
	"fmt"
	"strings"

	"eztester/internal/components"
	"eztester/internal/gizmo"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	ErrInvalidAxis        = errors.New("invalid axis")
	ErrInvalidDisplayType = errors.New("invalid display type")
)

// Axis selects the plane and sign convention of an angle measurement.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

func ParseAxis(s string) (Axis, error) {
	switch strings.ToUpper(s) {
	case "X":
		return AxisX, nil
	case "Y":
		return AxisY, nil
	}
	return AxisY, fmt.Errorf("%w: %q", ErrInvalidAxis, s)
}

// DisplayType selects how a measurement shows its value.
type DisplayType int

const (
	DisplayDebugLine DisplayType = iota
	DisplayTextInGame
	DisplayBoth
)

var displayTypeNames = [...]string{"DebugLine", "TextInGame", "Both"}

func (d DisplayType) String() string {
	if d < 0 || int(d) >= len(displayTypeNames) {
		return fmt.Sprintf("DisplayType(%d)", int(d))
	}
	return displayTypeNames[d]
}

func ParseDisplayType(s string) (DisplayType, error) {
	for i, name := range displayTypeNames {
		if strings.EqualFold(name, s) {
			return DisplayType(i), nil
		}
	}
	return DisplayBoth, fmt.Errorf("%w: %q", ErrInvalidDisplayType, s)
}

// Options configures a measurement and its display handles.
type Options struct {
	Axis         Axis
	DisplayType  DisplayType
	ShowDistance bool

	FontSize      int32
	CharacterSize float32
	Anchor        components.TextAnchor
	Alignment     components.TextAlignment
	FontStyle     components.FontStyle
	Font          string // optional font file

	Color     rl.Color // lines
	TextColor rl.Color
	LineWidth float32
	Unit      string // appended to the displayed value

	MaxArcPoints int
}

func DefaultOptions() Options {
	return Options{
		Axis:          AxisY,
		DisplayType:   DisplayBoth,
		FontSize:      30,
		CharacterSize: 0.1,
		Anchor:        components.AnchorMiddleCenter,
		Alignment:     components.TextAlignCenter,
		FontStyle:     components.FontBold,
		Color:         rl.Red,
		TextColor:     rl.White,
		LineWidth:     0.1,
		MaxArcPoints:  gizmo.MaxArcPoints,
	}
}

// DefaultAngleOptions is DefaultOptions with a degree unit.
func DefaultAngleOptions() Options {
	o := DefaultOptions()
	o.Unit = "°"
	return o
}
