package measure

import (
	"eztester/internal/assets"
	"eztester/internal/components"
	"eztester/internal/engine"
	"eztester/internal/logging"
)

// measurementProps is the scene-file form of Options plus anchor names.
type measurementProps struct {
	A             string   `yaml:"a"`
	B             string   `yaml:"b"`
	Axis          string   `yaml:"axis"`
	DisplayType   string   `yaml:"displayType"`
	ShowDistance  bool     `yaml:"showDistance"`
	FontSize      *int32   `yaml:"fontSize"`
	CharacterSize *float32 `yaml:"characterSize"`
	Anchor        string   `yaml:"anchor"`
	Alignment     string   `yaml:"alignment"`
	FontStyle     string   `yaml:"fontStyle"`
	Font          string   `yaml:"font"`
	Color         string   `yaml:"color"`
	TextColor     string   `yaml:"textColor"`
	LineWidth     *float32 `yaml:"lineWidth"`
	Unit          *string  `yaml:"unit"`
	MaxArcPoints  *int     `yaml:"maxArcPoints"`
}

func (p measurementProps) apply(o *Options) error {
	var err error
	o.ShowDistance = p.ShowDistance
	if p.Axis != "" {
		if o.Axis, err = ParseAxis(p.Axis); err != nil {
			return err
		}
	}
	if p.DisplayType != "" {
		if o.DisplayType, err = ParseDisplayType(p.DisplayType); err != nil {
			return err
		}
	}
	if p.Anchor != "" {
		if o.Anchor, err = components.ParseTextAnchor(p.Anchor); err != nil {
			return err
		}
	}
	if p.Alignment != "" {
		if o.Alignment, err = components.ParseTextAlignment(p.Alignment); err != nil {
			return err
		}
	}
	if p.FontStyle != "" {
		if o.FontStyle, err = components.ParseFontStyle(p.FontStyle); err != nil {
			return err
		}
	}
	if p.Color != "" {
		if o.Color, err = assets.ParseColor(p.Color); err != nil {
			return err
		}
	}
	if p.TextColor != "" {
		if o.TextColor, err = assets.ParseColor(p.TextColor); err != nil {
			return err
		}
	}
	if p.FontSize != nil {
		o.FontSize = *p.FontSize
	}
	if p.CharacterSize != nil {
		o.CharacterSize = *p.CharacterSize
	}
	if p.LineWidth != nil {
		o.LineWidth = *p.LineWidth
	}
	if p.Unit != nil {
		o.Unit = *p.Unit
	}
	if p.MaxArcPoints != nil {
		o.MaxArcPoints = *p.MaxArcPoints
	}
	o.Font = p.Font
	return nil
}

// resolveAnchors looks the anchors up by name. Unknown names leave the
// anchor unset; Start reports it.
func resolveAnchors(m *Measurement, scene *engine.Scene, p measurementProps) {
	if scene == nil {
		return
	}
	l := logging.New("measure")
	for _, anchor := range []struct {
		name string
		ref  *engine.GameObjectRef
	}{{p.A, &m.A}, {p.B, &m.B}} {
		if anchor.name == "" {
			continue
		}
		g := scene.FindByName(anchor.name)
		if g == nil {
			l.Warn("anchor not found", "name", anchor.name)
		}
		anchor.ref.Set(g)
	}
}

func measurementFactory(defaults func() Options, build func(engine.Env, Options) *Measurement) engine.ComponentFactory {
	return func(env engine.Env, props engine.Props) (engine.Component, error) {
		var p measurementProps
		if err := props.Decode(&p); err != nil {
			return nil, err
		}
		opts := defaults()
		if err := p.apply(&opts); err != nil {
			return nil, err
		}
		m := build(env, opts)
		resolveAnchors(m, env.Scene, p)
		return m, nil
	}
}

func init() {
	engine.RegisterComponent("DistanceMeasurement", measurementFactory(DefaultOptions, NewDistanceMeasurement))
	engine.RegisterComponent("AngleMeasurement", measurementFactory(DefaultAngleOptions, NewAngleMeasurement))
}
