package devtools

import (
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"deepdelve/pkg/engine/world"
	"deepdelve/pkg/game/generator"
	"deepdelve/pkg/game/level"
)

var surfaceClasses = map[world.Surface]string{
	world.Wall:         "wall",
	world.Floor:        "floor",
	world.UpStairs:     "stairs",
	world.DownStairs:   "stairs",
	world.Grass:        "grass",
	world.DeepWater:    "deep-water",
	world.ShallowWater: "shallow-water",
	world.Bridge:       "wood",
	world.Road:         "road",
	world.Gravel:       "gravel",
	world.WoodFloor:    "wood",
	world.Path:         "road",
	world.Stalactite:   "rock",
	world.Stalagmite:   "rock",
}

const screenshotHead = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Deep Delve - Level</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .meta {
            color: #888;
            margin-bottom: 20px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.2;
            font-size: 16px;
        }
        .start { color: #00ff00; font-weight: bold; }
        .wall { color: #666; }
        .floor { color: #888; }
        .stairs { color: #00ffff; font-weight: bold; }
        .grass { color: #00aa00; }
        .deep-water { color: #4444ff; font-weight: bold; }
        .shallow-water { color: #66aaff; }
        .wood { color: #aaaa00; }
        .road { color: #ccaa66; }
        .gravel { color: #777; }
        .rock { color: #ff66ff; }
        .door { color: #ffff00; font-weight: bold; }
        .entity { color: #ff4444; }
        .spawns {
            margin-top: 20px;
            color: #888;
        }
        .spawn { color: #ccc; margin: 5px 0; }
    </style>
</head>
<body>
`

// SaveScreenshotHTML writes lvl as a timestamped HTML file in dir and returns
// its path
func SaveScreenshotHTML(lvl *level.Level, dir string) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	filename := filepath.Join(dir, fmt.Sprintf("screenshot-%s.html", timestamp))

	var sb strings.Builder
	WriteHTML(&sb, lvl)

	if err := os.WriteFile(filename, []byte(sb.String()), 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// WriteHTML renders the whole level with its spawn manifest as an HTML page
func WriteHTML(w io.Writer, lvl *level.Level) {
	g := lvl.Grid
	spawnAt := overlay(lvl.Spawns)

	io.WriteString(w, screenshotHead)
	fmt.Fprintf(w, `    <div class="header">%s</div>`+"\n", html.EscapeString(g.Name))
	fmt.Fprintf(w, `    <div class="meta">Depth %d, seed %d, %dx%d</div>`+"\n", lvl.Depth, lvl.Seed, g.Width, g.Height)

	io.WriteString(w, `    <div class="map-container">`+"\n")
	for y := 0; y < g.Height; y++ {
		io.WriteString(w, `        <div class="map-row">`)
		for x := 0; x < g.Width; x++ {
			icon, class := cellHTMLInfo(g, g.Index(x, y), lvl.Start, spawnAt)
			fmt.Fprintf(w, `<span class="%s">%s</span>`, class, html.EscapeString(string(icon)))
		}
		io.WriteString(w, "</div>\n")
	}
	io.WriteString(w, `    </div>`+"\n")

	if len(lvl.Spawns) > 0 {
		io.WriteString(w, `    <div class="spawns">`+"\n")
		for _, s := range lvl.Spawns {
			p := g.PointOf(s.Index)
			fmt.Fprintf(w, `        <div class="spawn">%d,%d %s</div>`+"\n", p.X, p.Y, html.EscapeString(s.Name))
		}
		io.WriteString(w, `    </div>`+"\n")
	}

	io.WriteString(w, "</body>\n</html>\n")
}

func cellHTMLInfo(g *world.Grid, idx int, start world.Point, spawnAt map[int]string) (rune, string) {
	if g.Index(start.X, start.Y) == idx {
		return '@', "start"
	}
	if name, ok := spawnAt[idx]; ok {
		if name == generator.DoorEntity {
			return entityGlyph(name), "door"
		}
		return entityGlyph(name), "entity"
	}
	s := g.Tiles[idx].Surface
	return SurfaceGlyph(s), surfaceClasses[s]
}
