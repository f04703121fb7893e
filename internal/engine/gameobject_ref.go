package engine

// GameObjectRef is a non-owning reference to a GameObject by UID.
// Measurements use it for their anchors so that a destroyed anchor
// resolves to nil instead of a stale pointer.
//
// Example:
//
//	type Follower struct {
//	    engine.BaseComponent
//	    Target engine.GameObjectRef
//	}
//
//	func (f *Follower) Update(dt float32) {
//	    if target := f.Target.Get(f.Scene()); target != nil {
//	        // Use the target...
//	    }
//	}
type GameObjectRef struct {
	UID uint64 // 0 = none
}

// RefTo returns a reference to g, or an empty reference for nil.
func RefTo(g *GameObject) GameObjectRef {
	var r GameObjectRef
	r.Set(g)
	return r
}

// Get resolves the reference against scene.
// Returns nil if the reference is empty or the GameObject is no longer in the scene.
func (r GameObjectRef) Get(scene *Scene) *GameObject {
	if r.UID == 0 || scene == nil {
		return nil
	}
	return scene.FindByUID(r.UID)
}

// IsValid reports whether the reference points to something.
// It does not check that the GameObject still exists.
func (r GameObjectRef) IsValid() bool {
	return r.UID != 0
}

func (r *GameObjectRef) Set(g *GameObject) {
	if g == nil {
		r.UID = 0
	} else {
		r.UID = g.UID
	}
}

func (r *GameObjectRef) Clear() {
	r.UID = 0
}
