package hosttest

import (
	"eztester/internal/host"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/mock"
)

var (
	_ host.Input     = (*MockInput)(nil)
	_ host.Projector = (*MockProjector)(nil)
)

// MockInput is a testify mock of host.Input.
type MockInput struct {
	mock.Mock
}

func (m *MockInput) MousePosition() rl.Vector2 {
	return m.Called().Get(0).(rl.Vector2)
}

func (m *MockInput) MouseWheelMove() float32 {
	return m.Called().Get(0).(float32)
}

func (m *MockInput) SetCursorVisible(visible bool) {
	m.Called(visible)
}

// MockProjector is a testify mock of host.Projector.
type MockProjector struct {
	mock.Mock
}

func (m *MockProjector) ScreenToWorld(screen rl.Vector2, depth float32) rl.Vector3 {
	return m.Called(screen, depth).Get(0).(rl.Vector3)
}

func (m *MockProjector) WorldDepth(p rl.Vector3) float32 {
	return m.Called(p).Get(0).(float32)
}
