package components

import (
	"fmt"
	"strings"

	"eztester/internal/engine"
	"eztester/internal/host"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// TextAnchor selects which point of the text block sits on the object position.
type TextAnchor int

const (
	AnchorUpperLeft TextAnchor = iota
	AnchorUpperCenter
	AnchorUpperRight
	AnchorMiddleLeft
	AnchorMiddleCenter
	AnchorMiddleRight
	AnchorLowerLeft
	AnchorLowerCenter
	AnchorLowerRight
)

var anchorNames = []string{
	"UpperLeft", "UpperCenter", "UpperRight",
	"MiddleLeft", "MiddleCenter", "MiddleRight",
	"LowerLeft", "LowerCenter", "LowerRight",
}

func (a TextAnchor) String() string {
	if a < 0 || int(a) >= len(anchorNames) {
		return fmt.Sprintf("TextAnchor(%d)", int(a))
	}
	return anchorNames[a]
}

func ParseTextAnchor(s string) (TextAnchor, error) {
	for i, name := range anchorNames {
		if strings.EqualFold(name, s) {
			return TextAnchor(i), nil
		}
	}
	return AnchorMiddleCenter, fmt.Errorf("unknown text anchor %q", s)
}

// TextAlignment controls horizontal alignment of lines within the text block
type TextAlignment int

const (
	TextAlignLeft TextAlignment = iota
	TextAlignCenter
	TextAlignRight
)

func ParseTextAlignment(s string) (TextAlignment, error) {
	switch strings.ToLower(s) {
	case "left":
		return TextAlignLeft, nil
	case "center":
		return TextAlignCenter, nil
	case "right":
		return TextAlignRight, nil
	}
	return TextAlignCenter, fmt.Errorf("unknown text alignment %q", s)
}

type FontStyle int

const (
	FontNormal FontStyle = iota
	FontBold
	FontItalic
	FontBoldAndItalic
)

func ParseFontStyle(s string) (FontStyle, error) {
	switch strings.ToLower(s) {
	case "normal":
		return FontNormal, nil
	case "bold":
		return FontBold, nil
	case "italic":
		return FontItalic, nil
	case "boldanditalic":
		return FontBoldAndItalic, nil
	}
	return FontNormal, fmt.Errorf("unknown font style %q", s)
}

// pixelsPerCharacterUnit converts FontSize*CharacterSize to screen pixels.
const pixelsPerCharacterUnit = 10

// TextMesh is text anchored at a world position and drawn in screen space.
type TextMesh struct {
	engine.BaseComponent

	Text          string
	Color         rl.Color
	FontSize      int32
	CharacterSize float32
	Anchor        TextAnchor
	Alignment     TextAlignment
	FontStyle     FontStyle
	FontPath      string
}

func NewTextMesh() *TextMesh {
	return &TextMesh{
		Color:         rl.White,
		FontSize:      30,
		CharacterSize: 0.1,
		Anchor:        AnchorMiddleCenter,
		Alignment:     TextAlignCenter,
		FontStyle:     FontBold,
	}
}

// PixelSize is the rendered glyph height in pixels.
func (t *TextMesh) PixelSize() float32 {
	return float32(t.FontSize) * t.CharacterSize * pixelsPerCharacterUnit
}

func (t *TextMesh) style() host.TextStyle {
	return host.TextStyle{
		FontPath: t.FontPath,
		Size:     t.PixelSize(),
		Spacing:  1,
		Color:    t.Color,
		Bold:     t.FontStyle == FontBold || t.FontStyle == FontBoldAndItalic,
	}
}

// DrawOverlay implements host.OverlayDrawable.
func (t *TextMesh) DrawOverlay(d host.Drawer, _ host.GUI) {
	g := t.GetGameObject()
	if g == nil || !g.Active || t.Text == "" {
		return
	}

	style := t.style()
	lines := strings.Split(t.Text, "\n")
	sizes := make([]rl.Vector2, len(lines))
	var block rl.Vector2
	for i, line := range lines {
		sizes[i] = d.MeasureText(line, style)
		block.X = max(block.X, sizes[i].X)
		block.Y += style.Size
	}

	origin := rl.Vector2Add(d.WorldToScreen(g.WorldPosition()), anchorOffset(t.Anchor, block))
	for i, line := range lines {
		x := origin.X + alignOffset(t.Alignment, block.X, sizes[i].X)
		y := origin.Y + float32(i)*style.Size
		d.DrawText(line, rl.Vector2{X: x, Y: y}, style)
	}
}

// anchorOffset moves the block's top-left corner so that the anchor point
// lands on the screen position.
func anchorOffset(a TextAnchor, block rl.Vector2) rl.Vector2 {
	col := int(a) % 3
	row := int(a) / 3
	return rl.Vector2{
		X: -block.X * float32(col) / 2,
		Y: -block.Y * float32(row) / 2,
	}
}

func alignOffset(a TextAlignment, blockWidth, lineWidth float32) float32 {
	switch a {
	case TextAlignCenter:
		return (blockWidth - lineWidth) / 2
	case TextAlignRight:
		return blockWidth - lineWidth
	}
	return 0
}
