package engine

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// Destroyable is implemented by components that own resources which must be
// released when their GameObject leaves the scene.
type Destroyable interface {
	OnDestroy()
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}

// Scene returns the scene of the owning GameObject, or nil when detached.
func (b *BaseComponent) Scene() *Scene {
	if b.gameObject == nil {
		return nil
	}
	return b.gameObject.Scene
}
