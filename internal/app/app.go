// Package app runs a scene in a raylib window: it builds the scene from its
// config, then updates, simulates and draws it once per frame.
package app

import (
	"fmt"

	"eztester/internal/assets"
	"eztester/internal/components"
	"eztester/internal/config"
	"eztester/internal/engine"
	"eztester/internal/host"
	"eztester/internal/logging"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	// Component factories referenced by scene files.
	_ "eztester/internal/measure"
	_ "eztester/internal/pointer"
	_ "eztester/internal/raycast"
)

type App struct {
	Config *config.Scene
	World  *World

	camera rl.Camera3D
	host   *host.Raylib
	log    *log.Logger
}

func New(sc *config.Scene) *App {
	a := &App{
		Config: sc,
		camera: Camera(sc.Camera),
		log:    logging.New("app"),
	}
	a.host = host.NewRaylib(&a.camera)
	a.World = NewWorld(a.host, a.host)
	return a
}

// Camera places a camera object as the scene describes and returns its
// raylib camera.
func Camera(c config.Camera) rl.Camera3D {
	g := engine.NewGameObject("Main Camera")
	g.Transform.Position = c.Position.Vector3()
	cam := components.NewCamera()
	cam.FOV = c.FOV
	cam.LookAt(c.Target.Vector3())
	g.AddComponent(cam)
	return cam.GetRaylibCamera()
}

// Run opens the window and blocks until it is closed.
func (a *App) Run() error {
	win := a.Config.Window
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(win.Width, win.Height, win.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(win.FPS)
	defer a.host.Unload()
	defer assets.Unload()

	if _, err := config.Build(a.Config, a.World.Env(), components.NewModelRendererFromFile); err != nil {
		return fmt.Errorf("build scene: %w", err)
	}
	a.World.Scene.Start()
	a.log.Info("scene started", "objects", len(a.World.Scene.GameObjects), "components", len(engine.RegisteredComponents()))

	for !rl.WindowShouldClose() {
		a.World.Step(rl.GetFrameTime())
		a.draw()
	}
	a.log.Info("window closed")
	return nil
}

func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	rl.BeginMode3D(a.camera)
	rl.DrawGrid(20, 1)
	a.World.Draw(a.host)
	rl.EndMode3D()

	a.World.DrawOverlay(a.host, a.host)
	rl.DrawFPS(int32(rl.GetScreenWidth())-90, 10)
	rl.EndDrawing()
}
