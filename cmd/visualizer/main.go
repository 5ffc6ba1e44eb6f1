// Command visualizer replays how a level was built, one snapshot per step.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"

	"deepdelve/pkg/engine/logger"
	"deepdelve/pkg/game/config"
	"deepdelve/pkg/game/level"
	"deepdelve/pkg/game/renderer/ebiten"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML configuration file")
	depth := flag.Int("depth", 2, "level to replay")
	seed := flag.Int64("seed", 0, "run seed, overrides the configuration when non-zero")
	scale := flag.Int("scale", 8, "screen pixels per tile")
	delay := flag.Int("delay", 10, "updates between snapshots")
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

	if *seed != 0 {
		cfg.Generation.Seed = *seed
	}
	if cfg.Generation.Seed == 0 {
		cfg.Generation.Seed = time.Now().UnixNano()
	}

	m := level.NewManager(level.Options{
		BaseSeed:      cfg.Generation.Seed,
		Width:         cfg.Generation.Width,
		Height:        cfg.Generation.Height,
		RecordHistory: true,
	})
	lvl, err := m.Enter(*depth)
	if err != nil {
		logger.Error("generation failed", "error", err)
		os.Exit(1)
	}

	title := gotext.Get("Level %d: %s", lvl.Depth, lvl.Grid.Name)
	viewer := ebiten.NewViewer(title, lvl.History, &lvl.Start, *scale, *delay)
	if err := viewer.Run(); err != nil {
		logger.Error("viewer failed", "error", err)
		os.Exit(1)
	}
}
