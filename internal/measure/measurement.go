// Package measure implements the distance and angle measurement components.
package measure

import (
	"eztester/internal/engine"
	"eztester/internal/logging"

	"github.com/charmbracelet/log"
)

// Measurement tracks two anchors and shows a computed value between them.
type Measurement struct {
	engine.BaseComponent

	A, B    engine.GameObjectRef
	Options Options

	calc    Calculator
	visual  Visualizer
	display *Display
	gizmos  engine.Gizmos
	world   engine.WorldAccess
	log     *log.Logger
}

func newMeasurement(env engine.Env, opts Options, calc Calculator, visual Visualizer) *Measurement {
	m := &Measurement{
		Options: opts,
		calc:    calc,
		visual:  visual,
		gizmos:  env.Gizmos,
		world:   env.World,
		log:     logging.New("measure"),
	}
	m.display = &Display{world: env.World, scene: env.Scene, opts: &m.Options}
	return m
}

func NewDistanceMeasurement(env engine.Env, opts Options) *Measurement {
	return newMeasurement(env, opts, Distance{}, &distanceVisual{})
}

func NewAngleMeasurement(env engine.Env, opts Options) *Measurement {
	angle := NewAngle(opts.Axis)
	m := newMeasurement(env, opts, angle, &angleVisual{axis: opts.Axis, maxPoints: opts.MaxArcPoints})
	angle.SetLogger(m.log)
	return m
}

// SetLogger replaces the logger of the measurement and its calculator.
func (m *Measurement) SetLogger(l *log.Logger) {
	m.log = l
	if a, ok := m.calc.(*Angle); ok {
		a.SetLogger(l)
	}
}

func (m *Measurement) SetAnchors(a, b *engine.GameObject) {
	m.A.Set(a)
	m.B.Set(b)
}

// Display exposes the handle objects, mostly for inspection.
func (m *Measurement) Display() *Display {
	return m.display
}

func (m *Measurement) Calculator() Calculator {
	return m.calc
}

func (m *Measurement) Start() {
	if !m.A.IsValid() || !m.B.IsValid() {
		m.log.Warn("anchor A or B is not set", "object", m.ownerName())
	}
}

// anchors resolves both anchors, or returns false if either is missing.
func (m *Measurement) anchors() (a, b *engine.GameObject, ok bool) {
	scene := m.Scene()
	a = m.A.Get(scene)
	b = m.B.Get(scene)
	return a, b, a != nil && b != nil
}

// Value computes the measurement now. It is 0 while an anchor is missing.
func (m *Measurement) Value() float32 {
	a, b, ok := m.anchors()
	if !ok {
		return 0
	}
	return m.calc.Calculate(a.WorldTransform(), b.WorldTransform())
}

// Calculate measures two arbitrary objects with this measurement's calculator.
func (m *Measurement) Calculate(a, b *engine.GameObject) float32 {
	if a == nil || b == nil {
		return 0
	}
	return m.calc.Calculate(a.WorldTransform(), b.WorldTransform())
}

func (m *Measurement) Update(deltaTime float32) {
	if !m.Options.ShowDistance {
		return
	}
	a, b, ok := m.anchors()
	if !ok {
		return
	}
	ta, tb := a.WorldTransform(), b.WorldTransform()
	if m.display.scene == nil {
		m.display.scene = m.Scene()
	}

	switch m.Options.DisplayType {
	case DisplayDebugLine:
		m.display.HideText()
		m.debugLine(ta, tb)
	case DisplayTextInGame:
		m.showIndicators(ta, tb)
	case DisplayBoth:
		m.debugLine(ta, tb)
		m.showIndicators(ta, tb)
	}
}

func (m *Measurement) debugLine(a, b engine.Transform) {
	m.log.Debugf("Calculation: %.2f units", m.calc.Calculate(a, b))
	if m.gizmos != nil {
		m.gizmos.Line(a.Position, b.Position, m.Options.Color)
	}
}

func (m *Measurement) showIndicators(a, b engine.Transform) {
	value := m.calc.Calculate(a, b)
	m.display.ShowText(a.Position, b.Position, value)
	m.visual.Show(m.display, a, b, value)
}

// OnDestroy implements engine.Destroyable.
func (m *Measurement) OnDestroy() {
	m.display.HideText()
	m.visual.Clear(m.display)
}

func (m *Measurement) ownerName() string {
	if g := m.GetGameObject(); g != nil {
		return g.Name
	}
	return ""
}
