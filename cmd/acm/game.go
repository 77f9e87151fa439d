package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/axiscontrols/config"
	"github.com/milk9111/axiscontrols/input/ebitendev"
	"github.com/milk9111/axiscontrols/machine"
	"github.com/milk9111/axiscontrols/session"
	"github.com/milk9111/axiscontrols/store"
)

type Game struct {
	cfg     config.Config
	dev     *ebitendev.Device
	session *session.Session
	profile *store.File
	watcher *store.Watcher

	width, height int
}

func NewGame(cfg config.Config) (*Game, error) {
	dev := ebitendev.New()
	s := session.New(dev)
	s.Pause(cfg.Paused)

	profile, err := store.OpenFile(cfg.Profile)
	if err != nil {
		return nil, err
	}
	if err := s.LoadProfile(profile); err != nil {
		log.Printf("acm: profile %s: %v", cfg.Profile, err)
	}

	m, err := loadMachine(cfg.Machine)
	if err != nil {
		return nil, err
	}
	if err := s.LoadMachine(m); err != nil {
		log.Printf("acm: machine %s: %v", m.Name, err)
	}

	g := &Game{
		cfg:     cfg,
		dev:     dev,
		session: s,
		profile: profile,
		width:   cfg.Window.Width,
		height:  cfg.Window.Height,
	}
	if cfg.Watch {
		w, err := store.NewWatcher(cfg.Profile)
		if err != nil {
			log.Printf("acm: watch %s: %v", cfg.Profile, err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func loadMachine(path string) (*machine.Machine, error) {
	if path != "" {
		return machine.Load(path)
	}
	spec, err := config.LoadSpec[machine.Spec](config.DemoMachine)
	if err != nil {
		return nil, err
	}
	return machine.New(&spec)
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.dev.Poll()
	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.session.Pause(!g.session.Paused())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		g.session.Start()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.save()
	}

	g.session.Tick(g.dt())
	return nil
}

// dt is the duration of the current tick, falling back to the configured
// rate until ebiten has measured one.
func (g *Game) dt() float64 {
	tps := ebiten.ActualTPS()
	if tps <= 0 {
		tps = float64(g.cfg.TPS)
	}
	return 1 / tps
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case name, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		if err := g.profile.Reload(); err != nil {
			log.Printf("acm: reload %s: %v", name, err)
			return
		}
		if err := g.session.LoadProfile(g.profile); err != nil {
			log.Printf("acm: reload %s: %v", name, err)
		}
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("acm: watch: %v", err)
		}
	default:
	}
}

func (g *Game) save() {
	if err := g.session.SaveProfile(g.profile); err != nil {
		log.Printf("acm: save profile: %v", err)
	}
	if err := g.session.SaveMachine(); err != nil {
		log.Printf("acm: save machine: %v", err)
		return
	}
	if g.cfg.Machine == "" {
		return
	}
	if err := g.session.Machine.Save(g.cfg.Machine); err != nil {
		log.Printf("acm: save machine: %v", err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawMachine(screen, g.session.Machine)
	drawAxes(screen, g.session.Axes, 10, 40)

	status := "running"
	if g.session.Paused() {
		status = "paused"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %.1f  t=%.1fs  %s  [F1 pause] [F2 reset axes] [F5 save]",
		ebiten.ActualTPS(), g.session.Elapsed(), status), 10, 10)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.dev.SetScreenSize(g.width, g.height)
	return g.width, g.height
}
