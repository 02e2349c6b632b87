package rtype

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-rtype/internal/core"
)

// DefaultLevel is the level played when none is selected.
const DefaultLevel = "level2"

//go:embed levels/*.yaml
var embeddedLevels embed.FS

// ErrLevelNotFound is returned when no level file matches an ID.
var ErrLevelNotFound = errors.New("level not found")

// levelFile is the YAML layout of a level.
type levelFile struct {
	ID      string   `yaml:"id"`
	Name    string   `yaml:"name"`
	Tile    int      `yaml:"tile"`
	Palette string   `yaml:"palette"` // glyph per tile index; index 0 is empty space
	Collide [2]int   `yaml:"collide"` // inclusive range of collidable tile indices
	Rows    []string `yaml:"rows"`
}

// Level is a tile layer. Tiles whose index falls inside the collidable
// range block the player.
type Level struct {
	ID   string
	Name string
	Tile int

	glyphs      []rune
	tiles       [][]int
	collideFrom int
	collideTo   int
}

// LevelInfo describes an available level.
type LevelInfo struct {
	ID     string
	Name   string
	Source string
}

// ParseLevel decodes and checks a YAML level.
func ParseLevel(data []byte) (*Level, error) {
	var f levelFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("level: parse: %w", err)
	}
	if f.ID == "" {
		return nil, errors.New("level: missing id")
	}
	if f.Tile <= 0 {
		return nil, fmt.Errorf("level %s: tile size must be positive", f.ID)
	}
	glyphs := []rune(f.Palette)
	if len(glyphs) < 2 {
		return nil, fmt.Errorf("level %s: palette needs an empty glyph and at least one tile", f.ID)
	}
	if f.Collide[0] < 1 || f.Collide[1] >= len(glyphs) || f.Collide[0] > f.Collide[1] {
		return nil, fmt.Errorf("level %s: collide range %v outside palette", f.ID, f.Collide)
	}
	if len(f.Rows) == 0 {
		return nil, fmt.Errorf("level %s: no rows", f.ID)
	}

	index := make(map[rune]int, len(glyphs))
	for i, g := range glyphs {
		index[g] = i
	}

	width := len([]rune(f.Rows[0]))
	tiles := make([][]int, len(f.Rows))
	for r, row := range f.Rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("level %s: row %d has %d tiles, expected %d", f.ID, r, len(runes), width)
		}
		tiles[r] = make([]int, width)
		for c, g := range runes {
			i, ok := index[g]
			if !ok {
				return nil, fmt.Errorf("level %s: row %d col %d: glyph %q not in palette", f.ID, r, c, g)
			}
			tiles[r][c] = i
		}
	}

	name := f.Name
	if name == "" {
		name = f.ID
	}
	return &Level{
		ID:          f.ID,
		Name:        name,
		Tile:        f.Tile,
		glyphs:      glyphs,
		tiles:       tiles,
		collideFrom: f.Collide[0],
		collideTo:   f.Collide[1],
	}, nil
}

// LoadLevel loads a level by ID. A non-empty dir is searched first for
// <id>.yaml; the embedded levels are the fallback.
func LoadLevel(dir, id string) (*Level, error) {
	if id == "" {
		id = DefaultLevel
	}
	name := id + ".yaml"

	if dir != "" {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err == nil {
			return ParseLevel(data)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("level: read %s: %w", name, err)
		}
	}

	data, err := embeddedLevels.ReadFile("levels/" + name)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", id, ErrLevelNotFound)
	}
	return ParseLevel(data)
}

// ListLevels returns the embedded levels plus any valid levels in dir,
// sorted by ID. Directory levels shadow embedded ones with the same ID.
func ListLevels(dir string) ([]LevelInfo, error) {
	found := make(map[string]LevelInfo)

	collect := func(fsys fs.FS, root, source string) error {
		entries, err := fs.ReadDir(fsys, root)
		if err != nil {
			return err
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
				continue
			}
			data, err := fs.ReadFile(fsys, path.Join(root, e.Name()))
			if err != nil {
				continue
			}
			lvl, err := ParseLevel(data)
			if err != nil {
				continue
			}
			found[lvl.ID] = LevelInfo{ID: lvl.ID, Name: lvl.Name, Source: source}
		}
		return nil
	}

	if err := collect(embeddedLevels, "levels", "embedded"); err != nil {
		return nil, fmt.Errorf("level: list embedded: %w", err)
	}
	if dir != "" {
		if err := collect(os.DirFS(dir), ".", dir); err != nil {
			return nil, fmt.Errorf("level: list %s: %w", dir, err)
		}
	}

	out := make([]LevelInfo, 0, len(found))
	for _, info := range found {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (l *Level) Cols() int { return len(l.tiles[0]) }
func (l *Level) Rows() int { return len(l.tiles) }

// Width returns the level width in world pixels.
func (l *Level) Width() float64 {
	return float64(l.Cols() * l.Tile)
}

// TileAt returns the tile index at a grid cell, 0 outside the map.
func (l *Level) TileAt(col, row int) int {
	if row < 0 || row >= len(l.tiles) || col < 0 || col >= len(l.tiles[row]) {
		return 0
	}
	return l.tiles[row][col]
}

// Glyph returns the palette glyph of a tile index.
func (l *Level) Glyph(tile int) rune {
	if tile < 0 || tile >= len(l.glyphs) {
		return l.glyphs[0]
	}
	return l.glyphs[tile]
}

// Collidable reports whether the tile at a grid cell blocks the player.
func (l *Level) Collidable(col, row int) bool {
	t := l.TileAt(col, row)
	return t >= l.collideFrom && t <= l.collideTo
}

// SolidAt reports whether the world point (x, y) lies in a collidable tile.
func (l *Level) SolidAt(x, y float64) bool {
	ts := float64(l.Tile)
	return l.Collidable(int(math.Floor(x/ts)), int(math.Floor(y/ts)))
}

// Overlaps reports whether a box intersects any collidable tile. Touching a
// tile edge does not count.
func (l *Level) Overlaps(b core.Box) bool {
	ts := float64(l.Tile)
	c0 := int(math.Floor(b.X / ts))
	c1 := int(math.Ceil(b.Right()/ts)) - 1
	r0 := int(math.Floor(b.Y / ts))
	r1 := int(math.Ceil(b.Bottom()/ts)) - 1

	c0, r0 = max(c0, 0), max(r0, 0)
	c1, r1 = min(c1, l.Cols()-1), min(r1, l.Rows()-1)

	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			if l.Collidable(c, r) {
				return true
			}
		}
	}
	return false
}
