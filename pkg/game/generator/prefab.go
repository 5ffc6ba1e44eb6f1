package generator

import (
	"math/rand"
	"slices"
	"unicode/utf8"

	"github.com/zyedidia/generic/mapset"

	"deepdelve/pkg/engine/logger"
	"deepdelve/pkg/engine/world"
)

// Glyph is what one template character stamps onto the grid
type Glyph struct {
	Surface world.Surface
	// Entity is appended to the spawn manifest when not empty
	Entity string
}

// Legend maps template characters to glyphs
type Legend map[rune]Glyph

// PrefabTemplate is a fixed hand-drawn layout. Rows must all have the same
// rune count.
type PrefabTemplate struct {
	Name   string
	Rows   []string
	Legend Legend
	// FirstDepth and LastDepth bound the levels a vault may appear on
	FirstDepth int
	LastDepth  int
}

// Width returns the template width in tiles
func (t PrefabTemplate) Width() int {
	w := 0
	for _, row := range t.Rows {
		w = max(w, utf8.RuneCountInString(row))
	}
	return w
}

// Height returns the template height in tiles
func (t PrefabTemplate) Height() int {
	return len(t.Rows)
}

// OrcCamp is a moated camp with a leader, guards and watch fires
var OrcCamp = PrefabTemplate{
	Name: "orc camp",
	Rows: []string{
		"            ",
		" ≈≈≈≈o≈≈≈≈≈ ",
		" ≈☼      ☼≈ ",
		" ≈ g      ≈ ",
		" ≈        ≈ ",
		" ≈    g   ≈ ",
		" o   O    o ",
		" ≈        ≈ ",
		" ≈ g      ≈ ",
		" ≈    g   ≈ ",
		" ≈☼      ☼≈ ",
		" ≈≈≈≈o≈≈≈≈≈ ",
	},
	Legend: Legend{
		' ': {Surface: world.Floor},
		'≈': {Surface: world.DeepWater},
		'☼': {Surface: world.Floor, Entity: "Watch Fire"},
		'g': {Surface: world.Floor, Entity: "Goblin"},
		'O': {Surface: world.Floor, Entity: "Orc Leader"},
		'o': {Surface: world.Floor, Entity: "Orc"},
	},
}

// ObviousTrap is a potion ringed by bear traps
var ObviousTrap = PrefabTemplate{
	Name: "obvious trap",
	Rows: []string{
		"     ",
		" ^^^ ",
		" ^!^ ",
		" ^^^ ",
		"     ",
	},
	Legend: Legend{
		' ': {Surface: world.Floor},
		'^': {Surface: world.Floor, Entity: "Bear Trap"},
		'!': {Surface: world.Floor, Entity: "Health Potion"},
	},
	FirstDepth: 0,
	LastDepth:  100,
}

// stamp writes the template with its top left corner at (x0, y0). Tiles
// falling outside the playable area are skipped.
func stamp(data *BuildData, t PrefabTemplate, x0, y0 int) []int {
	g := data.Grid
	var stamped []int
	for ty, row := range t.Rows {
		tx := 0
		for _, ch := range row {
			x, y := x0+tx, y0+ty
			tx++
			if !g.InBounds(x, y) {
				continue
			}
			glyph, ok := t.Legend[ch]
			if !ok {
				logger.Warning("unknown prefab glyph", "prefab", t.Name, "glyph", string(ch))
				continue
			}
			idx := g.Index(x, y)
			g.Tiles[idx].Surface = glyph.Surface
			if glyph.Entity != "" {
				data.AddSpawn(idx, glyph.Entity)
			}
			stamped = append(stamped, idx)
		}
	}
	return stamped
}

// dropSpawnsIn removes manifest entries inside footprint
func dropSpawnsIn(data *BuildData, footprint world.Rect) {
	data.Spawns = slices.DeleteFunc(data.Spawns, func(s Spawn) bool {
		p := data.Grid.PointOf(s.Index)
		return footprint.Contains(p.X, p.Y)
	})
}

// PrefabSection stamps a template at an anchored position over whatever the
// earlier stages produced
type PrefabSection struct {
	Template PrefabTemplate
	X        XAnchor
	Y        YAnchor
}

// NewPrefabSection returns a section stage for the template
func NewPrefabSection(t PrefabTemplate, x XAnchor, y YAnchor) *PrefabSection {
	return &PrefabSection{Template: t, X: x, Y: y}
}

// BuildMeta clears spawns under the footprint and stamps the template
func (p *PrefabSection) BuildMeta(_ *rand.Rand, data *BuildData) {
	g := data.Grid
	w, h := p.Template.Width(), p.Template.Height()

	var x0, y0 int
	switch p.X {
	case Left:
		x0 = 0
	case XCenter:
		x0 = g.Width/2 - w/2
	case Right:
		x0 = g.Width - 1 - w
	}
	switch p.Y {
	case Top:
		y0 = 0
	case YCenter:
		y0 = g.Height/2 - h/2
	case Bottom:
		y0 = g.Height - 1 - h
	}

	dropSpawnsIn(data, world.NewRect(x0, y0, w, h))
	stamp(data, p.Template, x0, y0)
}

// PrefabVaults drops small templates onto open floor
type PrefabVaults struct {
	Vaults []PrefabTemplate
	// MaxCount is the number of placement attempts
	MaxCount int
}

// NewPrefabVaults returns a vault stage over the templates
func NewPrefabVaults(maxCount int, vaults ...PrefabTemplate) *PrefabVaults {
	return &PrefabVaults{Vaults: vaults, MaxCount: maxCount}
}

// BuildMeta places up to MaxCount vaults that are valid for the depth. Each
// vault needs an all-Floor footprint that no earlier vault used.
func (p *PrefabVaults) BuildMeta(rng *rand.Rand, data *BuildData) {
	depth := data.Depth()
	var eligible []PrefabTemplate
	for _, v := range p.Vaults {
		if depth >= v.FirstDepth && depth <= v.LastDepth {
			eligible = append(eligible, v)
		}
	}
	if len(eligible) == 0 || p.MaxCount <= 0 {
		return
	}

	used := mapset.New[int]()
	for i := 0; i < p.MaxCount; i++ {
		vault := eligible[rng.Intn(len(eligible))]
		slots := vaultSlots(data.Grid, vault, used)
		if len(slots) == 0 {
			continue
		}

		pos := slots[rng.Intn(len(slots))]
		dropSpawnsIn(data, world.NewRect(pos.X, pos.Y, vault.Width(), vault.Height()))
		for _, idx := range stamp(data, vault, pos.X, pos.Y) {
			used.Put(idx)
		}
		data.TakeSnapshot()
	}
}

// vaultSlots lists every top left corner the vault fits at
func vaultSlots(g *world.Grid, vault PrefabTemplate, used mapset.Set[int]) []world.Point {
	w, h := vault.Width(), vault.Height()
	var slots []world.Point
	for y := 2; y+h < g.Height-2; y++ {
		for x := 2; x+w < g.Width-2; x++ {
			if vaultFits(g, x, y, w, h, used) {
				slots = append(slots, world.Point{X: x, Y: y})
			}
		}
	}
	return slots
}

func vaultFits(g *world.Grid, x0, y0, w, h int, used mapset.Set[int]) bool {
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			idx := g.Index(x, y)
			if g.Tiles[idx].Surface != world.Floor || used.Has(idx) {
				return false
			}
		}
	}
	return true
}
