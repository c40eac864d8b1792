package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed *.json
var LevelsFS embed.FS

// Dir is where Load looks for on-disk overrides of the embedded levels.
var Dir = "levels"

const EntityPlayerSpawn = "player_spawn"

// Level is a tile grid. Rows are stored top row first; world space is Y-up
// with tile (0, Height-1) sitting on the origin.
type Level struct {
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	TileSize  float64     `json:"tile_size"`
	Layers    [][]int     `json:"layers"`
	LayerMeta []LayerMeta `json:"layer_meta,omitempty"`
	Entities  []Entity    `json:"entities,omitempty"`
}

type LayerMeta struct {
	Physics bool   `json:"physics"`
	Color   string `json:"color,omitempty"`
}

type Entity struct {
	Type  string         `json:"type"`
	X     int            `json:"x"`
	Y     int            `json:"y"`
	Props map[string]any `json:"props,omitempty"`
}

// Rect is a world-space box given by its center and size.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func LoadLevelFromFS(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return parse(name, data)
}

// Load reads a level, preferring the on-disk copy over the embedded one.
func Load(name string) (*Level, error) {
	if data, err := os.ReadFile(filepath.Join(Dir, name)); err == nil {
		return parse(name, data)
	}
	return LoadLevelFromFS(name)
}

func parse(name string, data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level %s: %w", name, err)
	}
	if lvl.TileSize == 0 {
		lvl.TileSize = 1
	}
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}
	return &lvl, nil
}

func (l *Level) Validate() error {
	var errs []error
	if l.Width <= 0 || l.Height <= 0 {
		errs = append(errs, fmt.Errorf("size %dx%d must be positive", l.Width, l.Height))
	}
	if l.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("tile_size %v must be positive", l.TileSize))
	}
	for i, layer := range l.Layers {
		if len(layer) != l.Width*l.Height {
			errs = append(errs, fmt.Errorf("layer %d has %d tiles, want %d", i, len(layer), l.Width*l.Height))
		}
	}
	if _, _, ok := l.Spawn(); !ok {
		errs = append(errs, errors.New("no player_spawn entity"))
	}
	return errors.Join(errs...)
}

// Spawn returns the world position of the player spawn point.
func (l *Level) Spawn() (float64, float64, bool) {
	for _, e := range l.Entities {
		if e.Type == EntityPlayerSpawn {
			x, y := l.TileCenter(e.X, e.Y)
			return x, y, true
		}
	}
	return 0, 0, false
}

// TileCenter maps a grid cell to its world-space center.
func (l *Level) TileCenter(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * l.TileSize, (float64(l.Height-1-row) + 0.5) * l.TileSize
}

// SolidRuns merges each row of a physics layer into horizontal runs, so the
// ground is a few long boxes instead of one box per tile.
func (l *Level) SolidRuns(layerIdx int) []Rect {
	if layerIdx < 0 || layerIdx >= len(l.Layers) {
		return nil
	}
	layer := l.Layers[layerIdx]
	var out []Rect
	for row := 0; row < l.Height; row++ {
		start := -1
		for col := 0; col <= l.Width; col++ {
			solid := col < l.Width && layer[row*l.Width+col] > 0
			if solid && start < 0 {
				start = col
			}
			if !solid && start >= 0 {
				x0, y := l.TileCenter(start, row)
				x1, _ := l.TileCenter(col-1, row)
				out = append(out, Rect{
					X:      (x0 + x1) / 2,
					Y:      y,
					Width:  float64(col-start) * l.TileSize,
					Height: l.TileSize,
				})
				start = -1
			}
		}
	}
	return out
}

// PhysicsLayers lists the indices of layers flagged for collision.
func (l *Level) PhysicsLayers() []int {
	var out []int
	for i := range l.Layers {
		if i < len(l.LayerMeta) && l.LayerMeta[i].Physics {
			out = append(out, i)
		}
	}
	return out
}
