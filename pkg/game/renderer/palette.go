// Package renderer turns grids into pixels and steps through a level's build
// history, independent of the window toolkit that shows them.
package renderer

import (
	"image/color"

	"deepdelve/pkg/engine/world"
)

// Color palette, one flat color per surface
var (
	ColorBackground = color.RGBA{26, 26, 46, 255}
	ColorStart      = color.RGBA{0, 255, 0, 255}
	ColorUnknown    = color.RGBA{255, 0, 255, 255}

	surfaceColors = map[world.Surface]color.RGBA{
		world.Wall:         {60, 60, 80, 255},
		world.Floor:        {160, 160, 180, 255},
		world.UpStairs:     {100, 255, 255, 255},
		world.DownStairs:   {0, 200, 255, 255},
		world.Grass:        {40, 140, 40, 255},
		world.DeepWater:    {30, 50, 200, 255},
		world.ShallowWater: {100, 150, 255, 255},
		world.Bridge:       {200, 180, 100, 255},
		world.Road:         {180, 160, 110, 255},
		world.Gravel:       {120, 120, 130, 255},
		world.WoodFloor:    {150, 110, 60, 255},
		world.Path:         {210, 200, 160, 255},
		world.Stalactite:   {255, 150, 255, 255},
		world.Stalagmite:   {220, 120, 220, 255},
	}
)

// SurfaceColor returns the flat color of a surface
func SurfaceColor(s world.Surface) color.RGBA {
	if c, ok := surfaceColors[s]; ok {
		return c
	}
	return ColorUnknown
}

// Pixels returns the grid as RGBA bytes, one pixel per tile in row-major
// order. A non-nil start is drawn in ColorStart.
func Pixels(g *world.Grid, start *world.Point) []byte {
	pix := make([]byte, 4*len(g.Tiles))
	for idx, t := range g.Tiles {
		putPixel(pix, idx, SurfaceColor(t.Surface))
	}
	if start != nil && g.Contains(start.X, start.Y) {
		putPixel(pix, g.Index(start.X, start.Y), ColorStart)
	}
	return pix
}

func putPixel(pix []byte, idx int, c color.RGBA) {
	o := idx * 4
	pix[o] = c.R
	pix[o+1] = c.G
	pix[o+2] = c.B
	pix[o+3] = c.A
}
