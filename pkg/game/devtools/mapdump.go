// Package devtools provides developer tools for inspecting generated levels.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"unicode"

	"github.com/gookit/color"

	"deepdelve/pkg/engine/world"
	"deepdelve/pkg/game/generator"
	"deepdelve/pkg/game/level"
)

const mapDumpFilename = "map.txt"

var surfaceGlyphs = map[world.Surface]rune{
	world.Wall:         '#',
	world.Floor:        '.',
	world.UpStairs:     '<',
	world.DownStairs:   '>',
	world.Grass:        '"',
	world.DeepWater:    '~',
	world.ShallowWater: '≈',
	world.Bridge:       '=',
	world.Road:         ':',
	world.Gravel:       ';',
	world.WoodFloor:    '_',
	world.Path:         ',',
	world.Stalactite:   '╨',
	world.Stalagmite:   '╥',
}

var surfaceStyles = map[world.Surface]color.Style{
	world.Wall:         {color.FgGray},
	world.Floor:        {color.FgGray, color.OpBold},
	world.UpStairs:     {color.FgCyan, color.OpBold},
	world.DownStairs:   {color.FgCyan, color.OpBold},
	world.Grass:        {color.FgGreen},
	world.DeepWater:    {color.FgBlue, color.OpBold},
	world.ShallowWater: {color.FgCyan},
	world.Bridge:       {color.FgYellow},
	world.Road:         {color.FgYellow},
	world.Gravel:       {color.FgGray},
	world.WoodFloor:    {color.FgYellow},
	world.Path:         {color.FgWhite},
	world.Stalactite:   {color.FgMagenta},
	world.Stalagmite:   {color.FgMagenta},
}

var (
	colorStart  = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	colorDoor   = color.Style{color.FgYellow, color.OpBold}
	colorEntity = color.Style{color.FgRed}
)

// SurfaceGlyph returns the single-character symbol for a surface
func SurfaceGlyph(s world.Surface) rune {
	if r, ok := surfaceGlyphs[s]; ok {
		return r
	}
	return '?'
}

// entityGlyph returns the manifest overlay symbol for a spawn name
func entityGlyph(name string) rune {
	if name == generator.DoorEntity {
		return '+'
	}
	for _, r := range name {
		return unicode.ToLower(r)
	}
	return '?'
}

// overlay maps tile indices to the first spawn placed there
func overlay(spawns []generator.Spawn) map[int]string {
	out := make(map[int]string, len(spawns))
	for _, s := range spawns {
		if _, ok := out[s.Index]; !ok {
			out[s.Index] = s.Name
		}
	}
	return out
}

// RenderMap writes the level grid to w, one row per line, with the start as
// '@' and spawns drawn over their tile. colored wraps each glyph in ANSI
// colors.
func RenderMap(w io.Writer, lvl *level.Level, colored bool) error {
	bw := bufio.NewWriter(w)
	g := lvl.Grid
	spawnAt := overlay(lvl.Spawns)

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			idx := g.Index(x, y)
			glyph, style := cellGlyph(g, idx, lvl.Start, spawnAt)
			if colored {
				bw.WriteString(style.Sprint(string(glyph)))
			} else {
				bw.WriteRune(glyph)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func cellGlyph(g *world.Grid, idx int, start world.Point, spawnAt map[int]string) (rune, color.Style) {
	if g.Index(start.X, start.Y) == idx {
		return '@', colorStart
	}
	if name, ok := spawnAt[idx]; ok {
		if name == generator.DoorEntity {
			return entityGlyph(name), colorDoor
		}
		return entityGlyph(name), colorEntity
	}
	s := g.Tiles[idx].Surface
	return SurfaceGlyph(s), surfaceStyles[s]
}

// writeLegend lists every surface symbol in declaration order
func writeLegend(w io.Writer) {
	for s := world.Wall; s <= world.Stalagmite; s++ {
		fmt.Fprintf(w, "%c = %s  ", SurfaceGlyph(s), s)
	}
	fmt.Fprintln(w, "@ = start  + = door  a-z = first letter of a spawn")
}

// DumpMapToFile writes a debug dump of lvl to dir/map.txt: metadata, legend,
// the map with overlays, surface counts and the spawn manifest. It returns the
// absolute path written.
func DumpMapToFile(lvl *level.Level, dir string) (string, error) {
	if lvl == nil || lvl.Grid == nil {
		return "", fmt.Errorf("no level")
	}

	absPath, err := filepath.Abs(filepath.Join(dir, mapDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteMapDump(f, lvl); err != nil {
		return absPath, err
	}
	return absPath, f.Sync()
}

// WriteMapDump writes the map.txt sections for lvl to w
func WriteMapDump(w io.Writer, lvl *level.Level) error {
	g := lvl.Grid

	fmt.Fprintln(w, "=== MAP DUMP DEBUG (level layout, spawns) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "name: %q\n", g.Name)
	fmt.Fprintf(w, "depth: %d\n", lvl.Depth)
	fmt.Fprintf(w, "level_seed: %d\n", lvl.Seed)
	fmt.Fprintf(w, "width: %d\n", g.Width)
	fmt.Fprintf(w, "height: %d\n", g.Height)
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, x=horizontal, y=vertical, index=y*width+x)\n")
	fmt.Fprintf(w, "start: %d,%d\n", lvl.Start.X, lvl.Start.Y)
	fmt.Fprintf(w, "outdoors: %v\n", g.Outdoors)
	fmt.Fprintf(w, "snapshots: %d\n", len(lvl.History))
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	writeLegend(w)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map ---")
	if err := RenderMap(w, lvl, false); err != nil {
		return err
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Surfaces ---")
	for s := world.Wall; s <= world.Stalagmite; s++ {
		if n := g.CountSurface(s); n > 0 {
			fmt.Fprintf(w, "  surface: %s count: %d\n", s, n)
		}
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Spawns ---")
	if len(lvl.Spawns) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, s := range lvl.Spawns {
		p := g.PointOf(s.Index)
		fmt.Fprintf(w, "  x: %d y: %d name: %q\n", p.X, p.Y, s.Name)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Spawn totals:")
	totals := make(map[string]int)
	for _, s := range lvl.Spawns {
		totals[s.Name]++
	}
	names := make([]string, 0, len(totals))
	for n := range totals {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintf(w, "  name: %q count: %d\n", n, totals[n])
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Down stairs:")
	for _, idx := range g.IndicesOf(world.DownStairs) {
		p := g.PointOf(idx)
		fmt.Fprintf(w, "  x: %d y: %d\n", p.X, p.Y)
	}
	fmt.Fprintln(w, "")

	_, err := fmt.Fprintln(w, "=== END MAP DUMP ===")
	return err
}
