package assets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `{"frames": `},
		{"no frames", `{"frames": {}}`},
		{"wrong shape", `[1, 2, 3]`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.data)); err == nil {
				t.Error("Parse() should fail")
			}
		})
	}
}

func TestParseDecodesFrames(t *testing.T) {
	data := `{
		"frames": {
			"Run (1).png": {
				"frame": {"x": 12, "y": 11, "w": 72, "h": 99},
				"spriteSourceSize": {"x": 12, "y": 11, "w": 72, "h": 99}
			}
		}
	}`

	sheet, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	cell, ok := sheet.Cell("Run (1).png")
	if !ok {
		t.Fatal("parsed frame not found")
	}
	if cell.Frame.X != 12 || cell.Frame.W != 72 {
		t.Errorf("frame = %+v", cell.Frame)
	}
	if r := cell.Frame.Rect(); r.Right() != 84 {
		t.Errorf("Rect().Right() = %d, expected 84", r.Right())
	}
}

func TestDefaultSheets(t *testing.T) {
	boy, err := DefaultBoySheet()
	if err != nil {
		t.Fatalf("DefaultBoySheet() failed: %v", err)
	}
	if _, ok := boy.Cell("Idle (1).png"); !ok {
		t.Error("character atlas is missing Idle (1).png")
	}
	if _, ok := boy.Cell("Dead (10).png"); !ok {
		t.Error("character atlas is missing Dead (10).png")
	}

	tiles, err := DefaultTileSheet()
	if err != nil {
		t.Fatalf("DefaultTileSheet() failed: %v", err)
	}
	cell, ok := tiles.Cell("13.png")
	if !ok {
		t.Fatal("tile atlas is missing 13.png")
	}
	if cell.Frame.W != 128 || cell.Frame.H != 93 {
		t.Errorf("tile size = %dx%d, expected 128x93", cell.Frame.W, cell.Frame.H)
	}
}

func TestValidate(t *testing.T) {
	sheet, err := DefaultTileSheet()
	if err != nil {
		t.Fatalf("DefaultTileSheet() failed: %v", err)
	}

	if err := sheet.Validate([]string{"1.png", "13.png"}); err != nil {
		t.Errorf("Validate() failed for present frames: %v", err)
	}

	err = sheet.Validate([]string{"1.png", "99.png"})
	if err == nil {
		t.Fatal("Validate() should fail for a missing frame")
	}
	if !strings.Contains(err.Error(), "99.png") {
		t.Errorf("error should name the missing frame, got %q", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atlas.json")
	data := `{"frames": {"1.png": {"frame": {"x": 0, "y": 0, "w": 8, "h": 8}}}}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	sheet, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if _, ok := sheet.Cell("1.png"); !ok {
		t.Error("loaded atlas is missing its frame")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Load() should fail for a missing file")
	}
}

func TestMustCellPanicsOnMiss(t *testing.T) {
	sheet, err := DefaultBoySheet()
	if err != nil {
		t.Fatal(err)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustCell() should panic for a missing frame")
		}
	}()
	sheet.MustCell("nope.png")
}
