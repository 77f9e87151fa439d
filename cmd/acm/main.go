package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/axiscontrols/config"
)

func main() {
	configPath := flag.String("config", "acm.yaml", "runner config file")
	profile := flag.String("profile", "", "local axis profile (overrides config)")
	machinePath := flag.String("machine", "", "machine file (overrides config; empty runs the demo machine)")
	tps := flag.Int("tps", 0, "ticks per second (overrides config)")
	paused := flag.Bool("paused", false, "start paused")
	noWatch := flag.Bool("nowatch", false, "do not reload the profile when it changes")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *profile != "" {
		cfg.Profile = *profile
	}
	if *machinePath != "" {
		cfg.Machine = *machinePath
	}
	if *tps > 0 {
		cfg.TPS = *tps
	}
	if *paused {
		cfg.Paused = true
	}
	if *noWatch {
		cfg.Watch = false
	}

	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game, err := NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
