package components

import (
	"testing"

	"eztester/internal/engine"
	"eztester/internal/host/hosttest"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func attach(c engine.Component) *engine.GameObject {
	g := engine.NewGameObject("Owner")
	g.AddComponent(c)
	return g
}

func TestLineRendererPositions(t *testing.T) {
	l := NewLineRenderer(rl.Red, 0.1)
	attach(l)

	l.SetPositionCount(2)
	l.SetPosition(0, rl.Vector3{X: 1})
	l.SetPosition(1, rl.Vector3{X: 2})
	l.SetPosition(5, rl.Vector3{X: 9}) // ignored

	require.Equal(t, 2, l.PositionCount())
	assert.Equal(t, rl.Vector3{X: 2}, l.Points[1])

	l.SetPositionCount(3)
	assert.Equal(t, rl.Vector3{X: 1}, l.Points[0], "growing keeps existing points")

	l.SetPositions([]rl.Vector3{{Y: 1}})
	assert.Equal(t, 1, l.PositionCount())
}

func TestLineRendererDrawsSegments(t *testing.T) {
	l := NewLineRenderer(rl.Red, 0.1)
	attach(l)
	l.SetPositions([]rl.Vector3{{}, {X: 1}, {X: 2}, {X: 3}})

	rec := &hosttest.Recorder{}
	l.Draw(rec)

	require.Len(t, rec.Lines, 3)
	assert.Equal(t, rl.Vector3{X: 2}, rec.Lines[2].Start)
	assert.InDelta(t, 0.1, rec.Lines[0].Width, 1e-6)
	assert.Equal(t, rl.Red, rec.Lines[1].Color)
}

func TestLineRendererNeedsTwoPoints(t *testing.T) {
	l := NewLineRenderer(rl.Red, 0.1)
	attach(l)
	l.SetPositions([]rl.Vector3{{X: 1}})

	rec := &hosttest.Recorder{}
	l.Draw(rec)

	assert.Empty(t, rec.Lines)
}

func TestLerpColor(t *testing.T) {
	c := lerpColor(rl.NewColor(0, 0, 0, 255), rl.NewColor(200, 100, 50, 255), 0.5)
	assert.Equal(t, rl.NewColor(100, 50, 25, 255), c)
}

func TestTextMeshDefaults(t *testing.T) {
	tm := NewTextMesh()

	assert.Equal(t, int32(30), tm.FontSize)
	assert.InDelta(t, 0.1, tm.CharacterSize, 1e-6)
	assert.Equal(t, AnchorMiddleCenter, tm.Anchor)
	assert.Equal(t, TextAlignCenter, tm.Alignment)
	assert.Equal(t, FontBold, tm.FontStyle)
	assert.InDelta(t, 30, tm.PixelSize(), 1e-4)
}

func TestTextMeshMiddleCenterAnchor(t *testing.T) {
	tm := NewTextMesh()
	tm.Text = "1.00"
	g := attach(tm)
	g.Transform.Position = rl.Vector3{X: 100, Y: 50}

	rec := &hosttest.Recorder{}
	tm.DrawOverlay(rec, rec)

	require.Len(t, rec.Texts, 1)
	// 4 chars * 15px = 60 wide, 30 high, centered on (100, 50).
	assert.InDelta(t, 70, rec.Texts[0].Pos.X, 1e-4)
	assert.InDelta(t, 35, rec.Texts[0].Pos.Y, 1e-4)
	assert.True(t, rec.Texts[0].Style.Bold)
}

func TestTextMeshMultilineAlignment(t *testing.T) {
	tm := NewTextMesh()
	tm.Text = "abcd\nab"
	tm.Anchor = AnchorUpperLeft
	tm.Alignment = TextAlignRight
	attach(tm)

	rec := &hosttest.Recorder{}
	tm.DrawOverlay(rec, rec)

	require.Len(t, rec.Texts, 2)
	assert.InDelta(t, 0, rec.Texts[0].Pos.X, 1e-4)
	assert.InDelta(t, 30, rec.Texts[1].Pos.X, 1e-4)
	assert.InDelta(t, 30, rec.Texts[1].Pos.Y, 1e-4)
}

func TestTextMeshEmptyTextDrawsNothing(t *testing.T) {
	tm := NewTextMesh()
	attach(tm)

	rec := &hosttest.Recorder{}
	tm.DrawOverlay(rec, rec)

	assert.Empty(t, rec.Texts)
}

func TestParseEnums(t *testing.T) {
	a, err := ParseTextAnchor("lowerright")
	require.NoError(t, err)
	assert.Equal(t, AnchorLowerRight, a)
	assert.Equal(t, "LowerRight", a.String())

	_, err = ParseTextAnchor("nowhere")
	assert.Error(t, err)

	al, err := ParseTextAlignment("Right")
	require.NoError(t, err)
	assert.Equal(t, TextAlignRight, al)

	fs, err := ParseFontStyle("BoldAndItalic")
	require.NoError(t, err)
	assert.Equal(t, FontBoldAndItalic, fs)

	m, err := ParseMeshType("Sphere")
	require.NoError(t, err)
	assert.Equal(t, MeshSphere, m)

	_, err = ParseMeshType("torus")
	assert.Error(t, err)
}

func TestMeshRendererScalesSize(t *testing.T) {
	mr := NewMeshRenderer(MeshSphere, rl.Red, rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5})
	g := attach(mr)
	g.Transform.Scale = rl.Vector3{X: 2, Y: 2, Z: 2}

	rec := &hosttest.Recorder{}
	mr.Draw(rec)
	assert.Equal(t, 1, rec.Spheres)

	g.Active = false
	mr.Draw(rec)
	assert.Equal(t, 1, rec.Spheres, "inactive objects are not drawn")
}

func TestColliderWorldExtents(t *testing.T) {
	box := NewBoxCollider(rl.Vector3{X: 1, Y: 2, Z: 3})
	g := attach(box)
	g.Transform.Scale = rl.Vector3{X: -2, Y: 1, Z: 1}
	g.Transform.Position = rl.Vector3{X: 5}
	box.Offset = rl.Vector3{Y: 1}

	assert.Equal(t, rl.Vector3{X: 2, Y: 2, Z: 3}, box.GetWorldSize())
	assert.Equal(t, rl.Vector3{X: 5, Y: 1}, box.GetCenter())

	sphere := NewSphereCollider(0.5)
	sg := attach(sphere)
	sg.Transform.Scale = rl.Vector3{X: 1, Y: 3, Z: 1}
	assert.InDelta(t, 1.5, sphere.GetWorldRadius(), 1e-6)

	sphere.SetEnabled(false)
	assert.False(t, sphere.IsEnabled())
}

func TestCameraLooksForwardByDefault(t *testing.T) {
	cam := NewCamera()
	g := attach(cam)
	g.Transform.Position = rl.Vector3{Y: 2}

	rc := cam.GetRaylibCamera()
	assert.InDelta(t, 1, rc.Target.Z, 1e-5)
	assert.InDelta(t, 2, rc.Target.Y, 1e-5)

	cam.LookAt(rl.Vector3{X: 3})
	assert.Equal(t, rl.Vector3{X: 3}, cam.GetRaylibCamera().Target)
}

func TestAnimatorOrbitsStartPosition(t *testing.T) {
	a := NewAnimator()
	a.BobHeight = 0
	a.SpinSpeed = 90
	g := attach(a)
	g.Transform.Position = rl.Vector3{X: 10, Y: 1}
	g.Start()

	a.Update(0)
	assert.InDelta(t, 12, g.Transform.Position.X, 1e-5, "starts at phase 0 on +X")
	assert.InDelta(t, 1, g.Transform.Position.Y, 1e-5)

	for range 100 {
		a.Update(0.05)
		assert.InDelta(t, 2, rl.Vector3Distance(rl.Vector3{X: 10, Y: 1}, g.Transform.Position), 1e-4)
	}
	assert.InDelta(t, 90, g.Transform.Rotation.Y, 1e-3, "450 degrees wraps to 90")
}

func TestAnimatorFactory(t *testing.T) {
	c, err := engine.CreateComponent("Animator", engine.Env{}, engine.NoProps{})
	require.NoError(t, err)
	assert.Equal(t, NewAnimator(), c)
}
