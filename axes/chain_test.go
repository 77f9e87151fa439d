package axes

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/milk9111/axiscontrols/input"
	"github.com/milk9111/axiscontrols/store"
)

// newChainFixture returns a manager with two mouse axes reading 0.5 and
// -0.5 once updated.
func newChainFixture(t *testing.T) (*Manager, *input.Virtual) {
	t.Helper()
	dev := input.NewVirtual()
	dev.SetCursor(960, 540)

	m := NewManager(dev)
	if _, err := m.Create(Local, TypeMouse, "h"); err != nil {
		t.Fatalf("create h: %v", err)
	}
	v, err := m.Create(Local, TypeMouse, "v")
	if err != nil {
		t.Fatalf("create v: %v", err)
	}
	v.(*MouseAxis).Vertical = true
	return m, dev
}

func TestChainAxisMethods(t *testing.T) {
	tests := []struct {
		method ChainMethod
		want   float64
	}{
		{ChainSum, 0},
		{ChainSubtract, 1},
		{ChainAverage, 0},
		{ChainMultiply, -0.25},
		{ChainMaximum, 0.5},
		{ChainMinimum, -0.5},
		{ChainMethod("Unknown"), 0},
	}

	for _, tc := range tests {
		t.Run(string(tc.method), func(t *testing.T) {
			m, _ := newChainFixture(t)
			c := NewChainAxis("combo")
			c.SubAxis1 = "h"
			c.SubAxis2 = "v"
			c.Method = tc.method
			if err := m.Add(Local, c); err != nil {
				t.Fatalf("add chain: %v", err)
			}

			m.Update(0.1)
			if !approx(c.OutputValue(), tc.want) {
				t.Fatalf("got %v, want %v", c.OutputValue(), tc.want)
			}
			if c.Status() != StatusOK {
				t.Fatalf("expected OK status, got %v", c.Status())
			}
		})
	}
}

func TestChainAxisSumClamps(t *testing.T) {
	m, dev := newChainFixture(t)
	dev.SetCursor(1280, 0)

	c := NewChainAxis("combo")
	c.SubAxis1 = "h"
	c.SubAxis2 = "v"
	if err := m.Add(Local, c); err != nil {
		t.Fatalf("add chain: %v", err)
	}
	m.Update(0.1)
	if c.OutputValue() != 1 {
		t.Fatalf("expected clamped sum of 1, got %v", c.OutputValue())
	}
}

func TestChainAxisForwardReference(t *testing.T) {
	blob := store.NewMemoryBlob(map[string]any{
		"number-of-axes":    3,
		"axis-0-name":       "combo",
		"axis-combo-type":   "Chain",
		"axis-combo-sub1":   "h",
		"axis-combo-sub2":   "v",
		"axis-combo-method": "Subtract",
		"axis-1-name":       "h",
		"axis-h-type":       "Mouse",
		"axis-2-name":       "v",
		"axis-v-type":       "Mouse",
		"axis-v-vertical":   true,
	})

	dev := input.NewVirtual()
	dev.SetCursor(960, 540)
	m := NewManager(dev)
	if err := m.LoadMachine(blob); err != nil {
		t.Fatalf("load: %v", err)
	}

	a, ok := m.GetIn(Machine, "combo")
	if !ok {
		t.Fatalf("combo not loaded")
	}
	c := a.(*ChainAxis)
	if !c.Linked() {
		t.Fatalf("chain saved before its sub axes should still link")
	}
	m.Update(0.1)
	if !approx(c.OutputValue(), 1) {
		t.Fatalf("expected 1, got %v", c.OutputValue())
	}
}

func TestChainAxisBrokenLinks(t *testing.T) {
	tests := []struct {
		name string
		sub1 string
	}{
		{"missing", "ghost"},
		{"self", "combo"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, _ := newChainFixture(t)
			c := NewChainAxis("combo")
			c.SubAxis1 = tc.sub1
			c.SubAxis2 = "h"
			if err := m.Add(Local, c); err != nil {
				t.Fatalf("add chain: %v", err)
			}

			if c.Linked() || c.Status() != StatusError {
				t.Fatalf("expected Error status, got %v", c.Status())
			}
			m.Update(0.1)
			if !approx(c.OutputValue(), 0.5) {
				t.Fatalf("unresolved side should read as 0, got %v", c.OutputValue())
			}
		})
	}
}

func TestChainAxisRelinksAfterRemove(t *testing.T) {
	m, _ := newChainFixture(t)
	c := NewChainAxis("combo")
	c.SubAxis1 = "h"
	if err := m.Add(Local, c); err != nil {
		t.Fatalf("add chain: %v", err)
	}

	m.Remove(Local, "h")
	if c.Linked() {
		t.Fatalf("chain should lose its link when the sub axis is removed")
	}
	if _, err := m.Create(Machine, TypeMouse, "h"); err != nil {
		t.Fatalf("create machine h: %v", err)
	}
	if !c.Linked() {
		t.Fatalf("chain should fall back to a machine axis of the same name")
	}
}

func TestChainAxisCycleDoesNotRecurse(t *testing.T) {
	m := NewManager(input.NewVirtual())
	a := NewChainAxis("a")
	a.SubAxis1 = "b"
	b := NewChainAxis("b")
	b.SubAxis1 = "a"
	if err := m.Add(Local, a); err != nil {
		t.Fatalf("add a: %v", err)
	}
	if err := m.Add(Local, b); err != nil {
		t.Fatalf("add b: %v", err)
	}

	for i := 0; i < 10; i++ {
		m.Update(0.1)
	}
	if a.OutputValue() != 0 || b.OutputValue() != 0 {
		t.Fatalf("cycle of idle chains should stay at 0")
	}
}

func TestChainAxisWarnsOncePerLinkChange(t *testing.T) {
	var buf bytes.Buffer
	var std bytes.Buffer
	log.SetOutput(&std)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	m := NewManager(input.NewVirtual())
	m.SetLogger(log.New(&buf, "", 0))

	c := NewChainAxis("combo")
	c.SubAxis1 = "missing"
	if err := m.Add(Local, c); err != nil {
		t.Fatalf("add chain: %v", err)
	}
	for _, name := range []string{"a", "b", "c", "d"} {
		if _, err := m.Create(Local, TypeKey, name); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}
	if n := strings.Count(buf.String(), "\n"); n != 1 {
		t.Fatalf("expected one warning for an unchanged broken link, got %d:\n%s", n, buf.String())
	}

	if _, err := m.Create(Local, TypeKey, "missing"); err != nil {
		t.Fatalf("create missing: %v", err)
	}
	if !c.Linked() {
		t.Fatalf("chain should link once its sub axis exists")
	}
	m.Remove(Local, "missing")
	if n := strings.Count(buf.String(), "\n"); n != 2 {
		t.Fatalf("breaking the link again should warn again, got %d lines", n)
	}
	if std.Len() != 0 {
		t.Fatalf("warnings leaked to the standard logger: %s", std.String())
	}
}
