package session

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/milk9111/axiscontrols/axes"
	"github.com/milk9111/axiscontrols/controls"
	"github.com/milk9111/axiscontrols/input"
	"github.com/milk9111/axiscontrols/machine"
	"github.com/milk9111/axiscontrols/store"
)

func buggy(t *testing.T) *machine.Machine {
	t.Helper()
	m, err := machine.New(&machine.Spec{
		Name: "buggy",
		Blocks: []machine.BlockSpec{
			{ID: "s1", Type: controls.BlockSteeringBlock},
			{ID: "w1", Type: controls.BlockWheel, X: 40, Radius: 8},
		},
		Data: map[string]any{
			"number-of-axes":      1,
			"axis-0-name":         "steer",
			"axis-steer-type":     "Key",
			"axis-steer-raw":      true,
			"axis-steer-positive": "key-D",

			"controls-count":                       1,
			"controls-0-block":                     "s1",
			"controls-0-type":                      controls.BlockSteeringBlock,
			controls.Key("s1", "ANGLE", "enabled"): true,
			controls.Key("s1", "ANGLE", "axis"):    "steer",
		},
	})
	if err != nil {
		t.Fatalf("machine: %v", err)
	}
	return m
}

func TestSchedulerOrder(t *testing.T) {
	var got []string
	s := NewScheduler(
		SystemFunc(func(float64) { got = append(got, "a") }),
		nil,
		SystemFunc(func(float64) { got = append(got, "b") }),
	)
	s.Add(SystemFunc(func(float64) { got = append(got, "c") }))
	s.Update(0.1)

	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("got %v", got)
	}
	if len(s.Systems()) != 3 {
		t.Fatalf("nil system should be skipped")
	}
}

func TestTickDrivesMachine(t *testing.T) {
	dev := input.NewVirtual()
	s := New(dev)
	if err := s.LoadMachine(buggy(t)); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := len(s.Controls.Blocks()); got != 2 {
		t.Fatalf("every block should have cached controls, got %d", got)
	}

	dev.Press("D", true)
	if !s.Tick(0.1) {
		t.Fatalf("tick skipped")
	}
	steer, _ := s.Machine.Get("s1")
	if steer.Angle() != 45 {
		t.Fatalf("expected full lock of 45 degrees, got %v", steer.Angle())
	}
	if got := steer.Body().Angle(); math.Abs(got-math.Pi/4) > 1e-6 {
		t.Fatalf("body angle %v", got)
	}

	s.Pause(true)
	dev.Press("D", false)
	if s.Tick(0.1) || s.Ticks() != 1 {
		t.Fatalf("paused session must skip ticks")
	}
	if steer.Angle() != 45 {
		t.Fatalf("paused tick changed the machine")
	}
	s.Pause(false)
	s.Tick(0.1)
	if steer.Angle() != 0 {
		t.Fatalf("expected centered steering, got %v", steer.Angle())
	}
}

func TestMachineAxesAndProfile(t *testing.T) {
	dev := input.NewVirtual()
	s := New(dev)

	profile, err := store.OpenFile(filepath.Join(t.TempDir(), "profile.yaml"))
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if _, err := s.Axes.Create(axes.Local, axes.TypeStandard, "throttle"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.SaveProfile(profile); err != nil {
		t.Fatalf("save profile: %v", err)
	}

	other := New(dev)
	if err := other.LoadProfile(profile); err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if _, ok := other.Axes.GetIn(axes.Local, "throttle"); !ok {
		t.Fatalf("profile axis missing")
	}

	if err := other.LoadMachine(buggy(t)); err != nil {
		t.Fatalf("load machine: %v", err)
	}
	if other.Axes.Len(axes.Machine) != 1 || other.Axes.Len(axes.Local) != 1 {
		t.Fatalf("unexpected axis counts")
	}

	c, _ := other.Controls.BlockControl("", "w1", "SPEED")
	c.Settings().Axis = "throttle"
	if err := other.SaveMachine(); err != nil {
		t.Fatalf("save machine: %v", err)
	}
	if got := other.Machine.Data().ReadString(controls.Key("w1", "SPEED", "axis")); got != "throttle" {
		t.Fatalf("control settings not embedded, got %q", got)
	}

	if err := other.RemoveBlock("w1"); err != nil {
		t.Fatalf("remove block: %v", err)
	}
	if _, ok := other.Controls.Controls("w1"); ok {
		t.Fatalf("controls of a removed block should be forgotten")
	}

	other.UnloadMachine()
	if other.Axes.Len(axes.Machine) != 0 || other.Machine != nil {
		t.Fatalf("unload left machine state behind")
	}
	if err := other.SaveMachine(); !errors.Is(err, ErrNoMachine) {
		t.Fatalf("expected ErrNoMachine, got %v", err)
	}
}
