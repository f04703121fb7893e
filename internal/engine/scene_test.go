package engine

import "testing"

func TestSceneAddGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Player")

	scene.AddGameObject(obj)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject, got %d", len(scene.GameObjects))
	}

	if scene.GameObjects[0] != obj {
		t.Error("GameObject not added to scene")
	}

	if obj.Scene != scene {
		t.Error("GameObject.Scene not set")
	}
}

func TestSceneUIDLookup(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Player")

	scene.AddGameObject(obj)

	// Test O(1) lookup
	found := scene.FindByUID(obj.UID)
	if found != obj {
		t.Errorf("FindByUID failed: expected %v, got %v", obj, found)
	}

	// Test non-existent UID
	notFound := scene.FindByUID(99999)
	if notFound != nil {
		t.Error("FindByUID should return nil for non-existent UID")
	}
}

func TestSceneRemoveGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj1 := NewGameObject("Player")
	obj2 := NewGameObject("Enemy")

	scene.AddGameObject(obj1)
	scene.AddGameObject(obj2)

	scene.RemoveGameObject(obj1)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject after removal, got %d", len(scene.GameObjects))
	}

	if scene.GameObjects[0] != obj2 {
		t.Error("Wrong GameObject removed")
	}

	// Verify UID map was updated
	if scene.FindByUID(obj1.UID) != nil {
		t.Error("Removed GameObject still in UID map")
	}

	if scene.FindByUID(obj2.UID) != obj2 {
		t.Error("Remaining GameObject not in UID map")
	}
}

func TestSceneFindByName(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("UniquePlayer")

	scene.AddGameObject(obj)

	found := scene.FindByName("UniquePlayer")
	if found != obj {
		t.Error("FindByName failed")
	}

	notFound := scene.FindByName("DoesNotExist")
	if notFound != nil {
		t.Error("FindByName should return nil for non-existent name")
	}
}

func TestSceneRemoveWithChildren(t *testing.T) {
	scene := NewScene("Test")
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")

	scene.AddGameObject(parent)
	scene.AddGameObject(child)
	parent.AddChild(child)

	scene.RemoveGameObject(parent)

	// Both parent and child should be removed
	if len(scene.GameObjects) != 0 {
		t.Errorf("Expected 0 GameObjects, got %d", len(scene.GameObjects))
	}

	// Verify UID map cleaned up
	if scene.FindByUID(parent.UID) != nil {
		t.Error("Parent still in UID map after removal")
	}
	if scene.FindByUID(child.UID) != nil {
		t.Error("Child still in UID map after removal")
	}
}

func TestSceneUIDMapInitialization(t *testing.T) {
	scene := NewScene("Test")

	if scene.uidMap == nil {
		t.Error("uidMap should be initialized in NewScene")
	}

	// Adding to a scene with a nil uid map initializes it.
	scene.uidMap = nil
	obj := NewGameObject("Test")
	scene.AddGameObject(obj) // Should not panic

	if scene.uidMap == nil {
		t.Error("uidMap should be initialized on first AddGameObject")
	}
}

type spawnerComponent struct {
	BaseComponent
	spawned *GameObject
}

func (s *spawnerComponent) Update(deltaTime float32) {
	if s.spawned == nil {
		s.spawned = NewGameObject("Spawned")
		s.spawned.AddComponent(&countingComponent{})
		s.Scene().AddGameObject(s.spawned)
	}
}

func TestSceneAddDuringUpdate(t *testing.T) {
	scene := NewScene("Test")
	spawner := NewGameObject("Spawner")
	comp := &spawnerComponent{}
	spawner.AddComponent(comp)
	scene.AddGameObject(spawner)
	scene.Start()

	scene.Update(0.016)

	if len(scene.GameObjects) != 2 {
		t.Fatalf("Expected 2 GameObjects, got %d", len(scene.GameObjects))
	}
	counter := GetComponent[*countingComponent](comp.spawned)
	if counter.starts != 1 {
		t.Errorf("Object added to running scene should start once, got %d", counter.starts)
	}
	if counter.updates != 0 {
		t.Errorf("Object added mid-frame should not update that frame, got %d", counter.updates)
	}

	scene.Update(0.016)
	if counter.updates != 1 {
		t.Errorf("Expected 1 update on the next frame, got %d", counter.updates)
	}
}

func TestSceneRemoveCallsOnDestroy(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Obj")
	comp := &countingComponent{}
	obj.AddComponent(comp)
	scene.AddGameObject(obj)

	scene.RemoveGameObject(obj)

	if !comp.destroyed {
		t.Error("OnDestroy should run when the object leaves the scene")
	}
	if obj.Scene != nil {
		t.Error("Removed object should be detached from the scene")
	}
}
