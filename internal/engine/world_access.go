package engine

// WorldAccess provides components with access to world-level operations
// without creating circular import dependencies. Implementations may offer
// more (the demo world also casts rays); components type-assert for that.
type WorldAccess interface {
	SpawnObject(g *GameObject)
	Destroy(g *GameObject)
	// RefreshPhysics re-registers g after its Rigidbody was added or removed.
	RefreshPhysics(g *GameObject)
}
