package devtools

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"deepdelve/pkg/engine/world"
)

func TestSurfaceGlyph_Unique(t *testing.T) {
	seen := make(map[rune]world.Surface)
	for s := world.Wall; s <= world.Stalagmite; s++ {
		r := SurfaceGlyph(s)
		if r == '?' {
			t.Errorf("%s has no glyph", s)
		}
		if prev, ok := seen[r]; ok {
			t.Errorf("%s and %s share %q", prev, s, r)
		}
		seen[r] = s
	}
}

func TestRenderMap_Plain(t *testing.T) {
	lvl := DevLevel()
	var buf bytes.Buffer
	if err := RenderMap(&buf, lvl, false); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != lvl.Grid.Height {
		t.Fatalf("expected %d rows, got %d", lvl.Grid.Height, len(lines))
	}
	for i, line := range lines {
		if n := len([]rune(line)); n != lvl.Grid.Width {
			t.Errorf("row %d has %d glyphs", i, n)
		}
	}
	if lines[0] != strings.Repeat("#", lvl.Grid.Width) {
		t.Errorf("top border: %q", lines[0])
	}
	if []rune(lines[lvl.Start.Y])[lvl.Start.X] != '@' {
		t.Error("start not drawn")
	}
	if !strings.ContainsRune(buf.String(), '+') {
		t.Error("door not drawn")
	}
}

func TestRenderMap_ColoredKeepsGlyphs(t *testing.T) {
	lvl := DevLevel()
	var plain, colored bytes.Buffer
	if err := RenderMap(&plain, lvl, false); err != nil {
		t.Fatal(err)
	}
	if err := RenderMap(&colored, lvl, true); err != nil {
		t.Fatal(err)
	}
	if strings.Count(colored.String(), "\n") != strings.Count(plain.String(), "\n") {
		t.Error("colored render changed the row count")
	}
}

func TestDevLevel_HasEverySurface(t *testing.T) {
	g := DevLevel().Grid
	for s := world.Wall; s <= world.Stalagmite; s++ {
		if g.CountSurface(s) == 0 {
			t.Errorf("dev level is missing %s", s)
		}
	}
	if err := g.Validate(); err != nil {
		t.Errorf("dev level invalid: %v", err)
	}
}

func TestDumpMapToFile(t *testing.T) {
	dir := t.TempDir()
	path, err := DumpMapToFile(DevLevel(), dir)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	for _, want := range []string{
		"--- Metadata ---",
		`name: "Dev Test Map"`,
		"--- Legend (cell symbols) ---",
		"--- Map ---",
		"surface: DeepWater count: 1",
		`name: "Goblin" count: 1`,
		"=== END MAP DUMP ===",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("dump is missing %q", want)
		}
	}
}

func TestDumpMapToFile_NoLevel(t *testing.T) {
	if _, err := DumpMapToFile(nil, t.TempDir()); err == nil {
		t.Error("expected an error")
	}
}

func TestSaveScreenshotHTML(t *testing.T) {
	path, err := SaveScreenshotHTML(DevLevel(), t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	if !strings.Contains(text, `<span class="start">@</span>`) {
		t.Error("start missing from screenshot")
	}
	if !strings.Contains(text, "Health Potion") {
		t.Error("spawn list missing from screenshot")
	}
	if got := strings.Count(text, `<div class="map-row">`); got != devMapSize {
		t.Errorf("expected %d rows, got %d", devMapSize, got)
	}
}
