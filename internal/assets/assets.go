package assets

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrEmptyModel is returned when a model file loads without any mesh.
var ErrEmptyModel = errors.New("model has no meshes")

var manager *Manager

// Manager caches models by path so that several probes can share a mesh.
type Manager struct {
	models map[string]rl.Model
}

// Color name mapping for scene files
var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Gold":      rl.Gold,
	"White":     rl.White,
	"Gray":      rl.Gray,
	"LightGray": rl.LightGray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Pink":      rl.Pink,
	"Maroon":    rl.Maroon,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"SkyBlue":   rl.SkyBlue,
	"DarkBlue":  rl.DarkBlue,
	"Lime":      rl.Lime,
	"DarkGreen": rl.DarkGreen,
	"Magenta":   rl.Magenta,
}

// LookupColor returns a raylib color from a name string
func LookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	return rl.White
}

// ParseColor accepts a color name ("Red", "red") or hex ("#ff0000", "#ff000080").
func ParseColor(s string) (rl.Color, error) {
	for name, c := range colorByName {
		if strings.EqualFold(name, s) {
			return c, nil
		}
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return rl.Color{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return rl.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return rl.NewColor(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

func Init() {
	manager = &Manager{
		models: make(map[string]rl.Model),
	}
}

// LoadModel loads (or returns the cached) model at path. Requires a window.
func LoadModel(path string) (rl.Model, error) {
	if manager == nil {
		Init()
	}
	if m, ok := manager.models[path]; ok {
		return m, nil
	}
	if _, err := os.Stat(path); err != nil {
		return rl.Model{}, fmt.Errorf("load model: %w", err)
	}
	m := rl.LoadModel(path)
	if m.MeshCount == 0 {
		return rl.Model{}, fmt.Errorf("load model %s: %w", path, ErrEmptyModel)
	}
	manager.models[path] = m
	return m, nil
}

// IsCached reports whether path is owned by the manager; such models must not
// be unloaded by their users.
func IsCached(path string) bool {
	if manager == nil {
		return false
	}
	_, ok := manager.models[path]
	return ok
}

// Unload releases all cached models.
func Unload() {
	if manager == nil {
		return
	}
	for path, m := range manager.models {
		rl.UnloadModel(m)
		delete(manager.models, path)
	}
}
