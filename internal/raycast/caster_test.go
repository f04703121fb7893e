package raycast

import (
	"testing"

	"eztester/internal/components"
	"eztester/internal/engine"
	"eztester/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCaster struct {
	mock.Mock
}

func (m *MockCaster) Raycast(origin, direction rl.Vector3, maxDistance float32, mask physics.LayerMask) (physics.RaycastHit, bool) {
	args := m.Called(origin, direction, maxDistance, mask)
	return args.Get(0).(physics.RaycastHit), args.Bool(1)
}

func (m *MockCaster) RaycastAll(origin, direction rl.Vector3, maxDistance float32, mask physics.LayerMask) []physics.RaycastHit {
	args := m.Called(origin, direction, maxDistance, mask)
	return args.Get(0).([]physics.RaycastHit)
}

func (m *MockCaster) SphereCast(origin rl.Vector3, radius float32, direction rl.Vector3, maxDistance float32, mask physics.LayerMask) (physics.RaycastHit, bool) {
	args := m.Called(origin, radius, direction, maxDistance, mask)
	return args.Get(0).(physics.RaycastHit), args.Bool(1)
}

func (m *MockCaster) SphereCastAll(origin rl.Vector3, radius float32, direction rl.Vector3, maxDistance float32, mask physics.LayerMask) []physics.RaycastHit {
	args := m.Called(origin, radius, direction, maxDistance, mask)
	return args.Get(0).([]physics.RaycastHit)
}

func (m *MockCaster) BoxCast(center, halfExtents, direction rl.Vector3, orientation rl.Quaternion, maxDistance float32, mask physics.LayerMask) (physics.RaycastHit, bool) {
	args := m.Called(center, halfExtents, direction, orientation, maxDistance, mask)
	return args.Get(0).(physics.RaycastHit), args.Bool(1)
}

func (m *MockCaster) BoxCastAll(center, halfExtents, direction rl.Vector3, orientation rl.Quaternion, maxDistance float32, mask physics.LayerMask) []physics.RaycastHit {
	args := m.Called(center, halfExtents, direction, orientation, maxDistance, mask)
	return args.Get(0).([]physics.RaycastHit)
}

func (m *MockCaster) CapsuleCast(point1, point2 rl.Vector3, radius float32, direction rl.Vector3, maxDistance float32, mask physics.LayerMask) (physics.RaycastHit, bool) {
	args := m.Called(point1, point2, radius, direction, maxDistance, mask)
	return args.Get(0).(physics.RaycastHit), args.Bool(1)
}

func (m *MockCaster) CapsuleCastAll(point1, point2 rl.Vector3, radius float32, direction rl.Vector3, maxDistance float32, mask physics.LayerMask) []physics.RaycastHit {
	args := m.Called(point1, point2, radius, direction, maxDistance, mask)
	return args.Get(0).([]physics.RaycastHit)
}

var (
	origin  = rl.Vector3{X: 1, Y: 2, Z: 3}
	dir     = rl.Vector3{Z: 1}
	half    = rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}
	rot     = rl.Quaternion{W: 1}
	mask    = physics.MaskOf(3)
	ray     = rl.Ray{Position: origin, Direction: dir}
	top     = rl.Vector3{X: 1, Y: 4, Z: 3}
	someHit = physics.RaycastHit{GameObject: engine.NewGameObject("target"), Distance: 4}
	allHits = []physics.RaycastHit{someHit, {Distance: 7}}
)

func TestSingleHitCastsForwardArguments(t *testing.T) {
	tests := []struct {
		name   string
		method string
		args   []any
		shoot  func(Caster) (physics.RaycastHit, bool)
	}{
		{"raycast", "Raycast", []any{origin, dir, float32(10), physics.AllLayers},
			func(c Caster) (physics.RaycastHit, bool) { return ShootRaycast(c, origin, dir, 10) }},
		{"raycast masked", "Raycast", []any{origin, dir, float32(10), mask},
			func(c Caster) (physics.RaycastHit, bool) { return ShootRaycastMasked(c, origin, dir, 10, mask) }},
		{"ray", "Raycast", []any{origin, dir, Infinity, physics.AllLayers},
			func(c Caster) (physics.RaycastHit, bool) { return ShootRay(c, ray) }},
		{"sphere", "SphereCast", []any{origin, float32(0.5), dir, float32(10), physics.AllLayers},
			func(c Caster) (physics.RaycastHit, bool) { return ShootSphereCast(c, origin, 0.5, dir, 10) }},
		{"sphere masked", "SphereCast", []any{origin, float32(0.5), dir, float32(10), mask},
			func(c Caster) (physics.RaycastHit, bool) { return ShootSphereCastMasked(c, origin, 0.5, dir, 10, mask) }},
		{"sphere ray", "SphereCast", []any{origin, float32(0.5), dir, float32(10), physics.AllLayers},
			func(c Caster) (physics.RaycastHit, bool) { return ShootSphereRay(c, ray, 0.5, 10) }},
		{"box", "BoxCast", []any{origin, half, dir, rot, float32(10), physics.AllLayers},
			func(c Caster) (physics.RaycastHit, bool) { return ShootBoxCast(c, origin, half, dir, rot, 10) }},
		{"box masked", "BoxCast", []any{origin, half, dir, rot, float32(10), mask},
			func(c Caster) (physics.RaycastHit, bool) { return ShootBoxCastMasked(c, origin, half, dir, rot, 10, mask) }},
		{"box ray", "BoxCast", []any{origin, half, dir, rot, float32(10), physics.AllLayers},
			func(c Caster) (physics.RaycastHit, bool) { return ShootBoxRay(c, ray, half, rot, 10) }},
		{"capsule", "CapsuleCast", []any{origin, top, float32(0.5), dir, float32(10), physics.AllLayers},
			func(c Caster) (physics.RaycastHit, bool) { return ShootCapsuleCast(c, origin, top, 0.5, dir, 10) }},
		{"capsule masked", "CapsuleCast", []any{origin, top, float32(0.5), dir, float32(10), mask},
			func(c Caster) (physics.RaycastHit, bool) {
				return ShootCapsuleCastMasked(c, origin, top, 0.5, dir, 10, mask)
			}},
		{"capsule ray", "CapsuleCast", []any{origin, origin, float32(0.5), dir, float32(10), physics.AllLayers},
			func(c Caster) (physics.RaycastHit, bool) { return ShootCapsuleRay(c, ray, 0.5, 10) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &MockCaster{}
			c.On(tt.method, tt.args...).Return(someHit, true).Once()

			hit, ok := tt.shoot(c)

			assert.True(t, ok)
			assert.Equal(t, someHit, hit)
			c.AssertExpectations(t)
		})
	}
}

func TestAllHitsCastsForwardArguments(t *testing.T) {
	tests := []struct {
		name   string
		method string
		args   []any
		shoot  func(Caster) []physics.RaycastHit
	}{
		{"raycast", "RaycastAll", []any{origin, dir, float32(10), physics.AllLayers},
			func(c Caster) []physics.RaycastHit { return ShootRaycastAll(c, origin, dir, 10) }},
		{"raycast masked", "RaycastAll", []any{origin, dir, float32(10), mask},
			func(c Caster) []physics.RaycastHit { return ShootRaycastAllMasked(c, origin, dir, 10, mask) }},
		{"ray", "RaycastAll", []any{origin, dir, float32(10), physics.AllLayers},
			func(c Caster) []physics.RaycastHit { return ShootRayAll(c, ray, 10) }},
		{"sphere", "SphereCastAll", []any{origin, float32(0.5), dir, float32(10), physics.AllLayers},
			func(c Caster) []physics.RaycastHit { return ShootSphereCastAll(c, origin, 0.5, dir, 10) }},
		{"sphere masked", "SphereCastAll", []any{origin, float32(0.5), dir, float32(10), mask},
			func(c Caster) []physics.RaycastHit { return ShootSphereCastAllMasked(c, origin, 0.5, dir, 10, mask) }},
		{"sphere ray", "SphereCastAll", []any{origin, float32(0.5), dir, float32(10), physics.AllLayers},
			func(c Caster) []physics.RaycastHit { return ShootSphereRayAll(c, ray, 0.5, 10) }},
		{"box", "BoxCastAll", []any{origin, half, dir, rot, float32(10), physics.AllLayers},
			func(c Caster) []physics.RaycastHit { return ShootBoxCastAll(c, origin, half, dir, rot, 10) }},
		{"box masked", "BoxCastAll", []any{origin, half, dir, rot, float32(10), mask},
			func(c Caster) []physics.RaycastHit { return ShootBoxCastAllMasked(c, origin, half, dir, rot, 10, mask) }},
		{"box ray", "BoxCastAll", []any{origin, half, dir, rot, float32(10), physics.AllLayers},
			func(c Caster) []physics.RaycastHit { return ShootBoxRayAll(c, ray, half, rot, 10) }},
		{"capsule", "CapsuleCastAll", []any{origin, top, float32(0.5), dir, float32(10), physics.AllLayers},
			func(c Caster) []physics.RaycastHit { return ShootCapsuleCastAll(c, origin, top, 0.5, dir, 10) }},
		{"capsule masked", "CapsuleCastAll", []any{origin, top, float32(0.5), dir, float32(10), mask},
			func(c Caster) []physics.RaycastHit {
				return ShootCapsuleCastAllMasked(c, origin, top, 0.5, dir, 10, mask)
			}},
		{"capsule ray", "CapsuleCastAll", []any{origin, origin, float32(0.5), dir, float32(10), physics.AllLayers},
			func(c Caster) []physics.RaycastHit { return ShootCapsuleRayAll(c, ray, 0.5, 10) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &MockCaster{}
			c.On(tt.method, tt.args...).Return(allHits).Once()

			hits := tt.shoot(c)

			assert.Equal(t, allHits, hits, "hits are returned untouched")
			c.AssertExpectations(t)
		})
	}
}

func TestMissIsPassedThrough(t *testing.T) {
	c := &MockCaster{}
	c.On("Raycast", origin, dir, float32(1), physics.AllLayers).Return(physics.RaycastHit{}, false)

	hit, ok := ShootRaycast(c, origin, dir, 1)

	assert.False(t, ok)
	assert.Nil(t, hit.GameObject)
}

func TestShootAgainstPhysicsWorld(t *testing.T) {
	w := physics.NewPhysicsWorld()
	g := engine.NewGameObject("wall")
	g.Transform.Position = rl.Vector3{X: 1, Y: 2, Z: 8}
	g.AddComponent(components.NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1}))
	w.AddObject(g)

	hit, ok := ShootRay(w, ray)
	assert.True(t, ok)
	assert.Equal(t, g, hit.GameObject)
	assert.Len(t, ShootRayAll(w, ray, 100), 1)
}
