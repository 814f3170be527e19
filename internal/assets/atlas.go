// Package assets provides decoded sprite atlases for the runner.
//
// An atlas is a TexturePacker-style JSON document mapping animation frame
// keys like "Run (3).png" to a source rectangle on the sheet plus a trim
// offset (the position of the visible pixels inside the untrimmed sprite).
// Atlases are loaded once at startup and shared by pointer for the whole
// session; they are never copied per obstacle.
package assets

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/vovakirdan/tui-runner/internal/core"
)

//go:embed data/boy.json
var defaultBoyJSON []byte

//go:embed data/tiles.json
var defaultTilesJSON []byte

// SheetRect is a rectangle as stored in the atlas JSON.
type SheetRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Rect converts a SheetRect to a core geometry rectangle.
func (r SheetRect) Rect() core.Rect {
	return core.NewRect(r.X, r.Y, r.W, r.H)
}

// Cell describes one sprite on the sheet: where its pixels live on the
// sheet image (Frame) and how the trimmed sprite sits inside its original
// untrimmed bounds (SpriteSourceSize, used as a draw offset).
type Cell struct {
	Frame            SheetRect `json:"frame"`
	SpriteSourceSize SheetRect `json:"spriteSourceSize"`
}

// Sheet is a decoded sprite atlas. Logically read-only after parsing;
// share it by pointer, never deep-copy it.
type Sheet struct {
	Frames map[string]Cell `json:"frames"`
}

// Parse decodes an atlas from its JSON representation.
func Parse(data []byte) (*Sheet, error) {
	var s Sheet
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("assets: cannot parse atlas: %w", err)
	}
	if len(s.Frames) == 0 {
		return nil, fmt.Errorf("assets: atlas has no frames")
	}
	return &s, nil
}

// Load reads and decodes an atlas from a JSON file on disk.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot read atlas %s: %w", path, err)
	}
	return Parse(data)
}

// DefaultBoySheet returns the embedded character atlas.
func DefaultBoySheet() (*Sheet, error) {
	return Parse(defaultBoyJSON)
}

// DefaultTileSheet returns the embedded obstacle tile atlas.
func DefaultTileSheet() (*Sheet, error) {
	return Parse(defaultTilesJSON)
}

// Cell looks up a sprite by its frame key.
func (s *Sheet) Cell(name string) (Cell, bool) {
	c, ok := s.Frames[name]
	return c, ok
}

// MustCell looks up a sprite by its frame key and panics if it is absent.
// Keys are validated at initialization, so a miss here is a programming
// error, not a runtime condition.
func (s *Sheet) MustCell(name string) Cell {
	c, ok := s.Frames[name]
	if !ok {
		panic(fmt.Sprintf("assets: missing atlas frame %q", name))
	}
	return c
}

// Validate checks that every given frame key exists in the atlas.
// Called once at initialization so that per-tick lookups cannot fail.
func (s *Sheet) Validate(names []string) error {
	for _, name := range names {
		if _, ok := s.Frames[name]; !ok {
			return fmt.Errorf("assets: atlas is missing frame %q", name)
		}
	}
	return nil
}
