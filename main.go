package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"

	"deepdelve/pkg/engine/logger"
	"deepdelve/pkg/engine/terminal"
	"deepdelve/pkg/game/config"
	"deepdelve/pkg/game/devtools"
	"deepdelve/pkg/game/level"
	"deepdelve/pkg/game/spawns"
)

// logSpawner stands in for an entity runtime and accepts every spawn
type logSpawner struct{}

func (logSpawner) SpawnNamed(name string, x, y int) bool {
	logger.Debug("spawn", "name", name, "x", x, "y", y)
	return true
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML configuration file")
	depth := flag.Int("depth", 0, "deepest level to generate, every level from 0 is built on the way down")
	seed := flag.Int64("seed", 0, "run seed, overrides the configuration when non-zero")
	width := flag.Int("width", 0, "width of randomly built levels")
	height := flag.Int("height", 0, "height of randomly built levels")
	dumpDir := flag.String("dump", "", "write map.txt for the last level into this directory")
	htmlDir := flag.String("html", "", "write an HTML screenshot of the last level into this directory")
	devMap := flag.Bool("devmap", false, "render the developer test map instead of generating")
	noColor := flag.Bool("no-color", false, "never color the map")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := logger.Initialize(cfg.Logging); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	gotext.Configure(cfg.Locale.Directory, cfg.Locale.Language, cfg.Locale.Domain)

	gen := cfg.Generation
	if *seed != 0 {
		gen.Seed = *seed
	}
	if *width != 0 {
		gen.Width = *width
	}
	if *height != 0 {
		gen.Height = *height
	}
	if gen.Seed == 0 {
		gen.Seed = time.Now().UnixNano()
	}
	cfg.Generation = gen
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	var lvl *level.Level
	if *devMap {
		lvl = devtools.DevLevel()
	} else {
		lvl, err = descend(gen, *depth)
		if err != nil {
			logger.Error("generation failed", "error", err)
			os.Exit(1)
		}
	}

	if err := show(lvl, !*noColor); err != nil {
		logger.Error("rendering failed", "error", err)
		os.Exit(1)
	}

	if *dumpDir != "" {
		path, err := devtools.DumpMapToFile(lvl, *dumpDir)
		if err != nil {
			logger.Error("map dump failed", "error", err)
			os.Exit(1)
		}
		logger.Info("map dumped", "path", path)
	}
	if *htmlDir != "" {
		path, err := devtools.SaveScreenshotHTML(lvl, *htmlDir)
		if err != nil {
			logger.Error("screenshot failed", "error", err)
			os.Exit(1)
		}
		logger.Info("screenshot saved", "path", path)
	}
}

// descend builds every level from the town down to depth and returns the last
func descend(gen config.GenerationConfig, depth int) (*level.Level, error) {
	catalog := spawns.Default()
	if gen.SpawnTable != "" {
		var err error
		catalog, err = spawns.Load(gen.SpawnTable)
		if err != nil {
			return nil, err
		}
	}

	m := level.NewManager(level.Options{
		BaseSeed:      gen.Seed,
		Width:         gen.Width,
		Height:        gen.Height,
		RecordHistory: gen.RecordHistory,
		Catalog:       catalog,
		Spawner:       logSpawner{},
	})
	logger.Info("generating", "seed", gen.Seed, "depth", depth)

	lvl, err := m.Enter(0)
	for err == nil && lvl.Depth < depth {
		lvl, err = m.Advance()
	}
	return lvl, err
}

func show(lvl *level.Level, wantColor bool) error {
	fmt.Println(gotext.Get("Level %d: %s", lvl.Depth, lvl.Grid.Name))
	if !terminal.FitsWidth(lvl.Grid.Width) {
		columns, _ := terminal.Size()
		logger.Warning(gotext.Get("Terminal is %d columns wide, the map needs %d", columns, lvl.Grid.Width))
	}
	return devtools.RenderMap(os.Stdout, lvl, wantColor && terminal.IsInteractive())
}
