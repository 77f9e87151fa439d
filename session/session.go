// Package session owns everything one simulation needs: the axis registry,
// the control router and the loaded machine. Each tick updates axes, then
// applies controls, then steps the machine.
package session

import (
	"errors"
	"fmt"
	"log"

	"github.com/milk9111/axiscontrols/axes"
	"github.com/milk9111/axiscontrols/controls"
	"github.com/milk9111/axiscontrols/input"
	"github.com/milk9111/axiscontrols/machine"
	"github.com/milk9111/axiscontrols/store"
)

var ErrNoMachine = errors.New("session: no machine loaded")

type Session struct {
	Axes     *axes.Manager
	Controls *controls.Manager
	Machine  *machine.Machine

	scheduler *Scheduler
	paused    bool
	ticks     uint64
	elapsed   float64
}

// New builds an empty session reading input from dev.
func New(dev input.Device) *Session {
	s := &Session{Axes: axes.NewManager(dev)}
	s.Controls = controls.NewManager(s.Axes, nil)
	s.scheduler = NewScheduler(
		s.Axes,
		SystemFunc(func(float64) { s.Controls.Apply() }),
		SystemFunc(func(dt float64) { s.Machine.Update(dt) }),
	)
	return s
}

// SetLogger redirects load warnings of both managers.
func (s *Session) SetLogger(l *log.Logger) {
	s.Axes.SetLogger(l)
	s.Controls.SetLogger(l)
}

// LoadProfile replaces the local axes with those saved in c.
func (s *Session) LoadProfile(c store.Config) error {
	return s.Axes.LoadConfig(c)
}

func (s *Session) SaveProfile(c store.Config) error {
	return s.Axes.SaveConfig(c)
}

// LoadMachine makes m the simulated machine, restores its embedded axes and
// control settings, and starts it. Entries that fail to load are skipped and
// reported in the returned error.
func (s *Session) LoadMachine(m *machine.Machine) error {
	if m == nil {
		return ErrNoMachine
	}
	s.Axes.ClearMachine()
	s.Machine = m
	s.Controls.SetBlocks(m)

	errs := []error{
		s.Axes.LoadMachine(m.Data()),
		s.Controls.Load(m.Data()),
	}
	for _, b := range m.Blocks() {
		s.Controls.BlockControls(b.Type, b.ID)
	}
	s.Start()
	return errors.Join(errs...)
}

// SaveMachine embeds the machine axes and control settings in the
// machine's data blob.
func (s *Session) SaveMachine() error {
	if s.Machine == nil {
		return ErrNoMachine
	}
	s.Axes.SaveMachine(s.Machine.Data())
	s.Controls.Save(s.Machine.Data())
	return nil
}

// UnloadMachine drops the machine together with its axes and controls.
func (s *Session) UnloadMachine() {
	s.Axes.ClearMachine()
	s.Controls.Clear()
	s.Controls.SetBlocks(nil)
	s.Machine = nil
}

// RemoveBlock destroys a block and forgets its controls.
func (s *Session) RemoveBlock(id string) error {
	if s.Machine == nil {
		return ErrNoMachine
	}
	if err := s.Machine.RemoveBlock(id); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	s.Controls.Forget(id)
	return nil
}

// Start resets every axis, so no momentum carries over from an earlier run.
func (s *Session) Start() {
	s.Axes.Initialise()
	s.ticks = 0
	s.elapsed = 0
}

func (s *Session) Pause(paused bool) { s.paused = paused }

func (s *Session) Paused() bool { return s.paused }

// Ticks is the number of ticks run since Start.
func (s *Session) Ticks() uint64 { return s.ticks }

// Elapsed is the simulated time since Start in seconds.
func (s *Session) Elapsed() float64 { return s.elapsed }

// Tick advances the simulation by dt seconds. A paused session, or a
// non-positive dt, skips the whole tick and reports false.
func (s *Session) Tick(dt float64) bool {
	if s == nil || s.paused || dt <= 0 {
		return false
	}
	s.scheduler.Update(dt)
	s.ticks++
	s.elapsed += dt
	return true
}
