// Package axes turns raw button and stick input into smoothed, bounded
// signals in [-1, 1] that controls can read once per tick.
package axes

import (
	"errors"
	"log"
	"math"

	"github.com/milk9111/axiscontrols/input"
	"github.com/milk9111/axiscontrols/store"
)

var (
	ErrEmptyName     = errors.New("axes: empty axis name")
	ErrDuplicateAxis = errors.New("axes: duplicate axis name")
	ErrUnknownType   = errors.New("axes: unknown axis type")
	ErrNotFound      = errors.New("axes: axis not found")
)

// Type tags a concrete axis variant. It is persisted as "axis-<name>-type".
type Type string

const (
	TypeKey        Type = "Key"
	TypeStandard   Type = "Standard"
	TypeController Type = "Controller"
	TypeChain      Type = "Chain"
	TypeCustom     Type = "Custom"
	TypeMouse      Type = "Mouse"
)

type Status int

const (
	StatusOK Status = iota
	StatusDisconnected
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusDisconnected:
		return "Disconnected"
	case StatusError:
		return "Error"
	}
	return "Unknown"
}

// Axis is one independently simulated signal generator.
type Axis interface {
	Name() string
	Type() Type
	// Connected is true when every bound physical input is present. An axis
	// without bindings is connected.
	Connected() bool
	Status() Status
	InputValue() float64
	// OutputValue is always within [-1, 1].
	OutputValue() float64
	Saveable() bool
	SetSaveable(saveable bool)

	// Initialise zeroes the simulation state. Call it whenever the axis
	// becomes active.
	Initialise()
	// Update advances the simulation by dt seconds.
	Update(dt float64)

	// Clone copies the tunables into a new axis with fresh state.
	Clone() Axis
	Load(f store.Fields)
	Save(f store.Fields)
	// Delete removes every key Save writes.
	Delete(f store.Fields)
	// Equals compares type, name and every persisted tunable.
	Equals(other Axis) bool
}

// Resolver finds axes by name.
type Resolver interface {
	Get(name string) (Axis, bool)
}

// Linker is implemented by axes that read other axes. Links are resolved
// after every axis exists so forward references work.
type Linker interface {
	Link(r Resolver)
	Unlink()
}

// Key returns the persistence key of one field of the named axis.
func Key(name, field string) string {
	return "axis-" + name + "-" + field
}

type base struct {
	name      string
	dev       input.Device
	transient bool
	logger    *log.Logger
}

// setLogger routes the axis' warnings; the owning Manager calls it when the
// axis joins the registry.
func (b *base) setLogger(l *log.Logger) { b.logger = l }

func (b *base) logf(format string, args ...any) {
	if b.logger != nil {
		b.logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

func (b *base) Name() string { return b.name }

func (b *base) Saveable() bool { return !b.transient }

func (b *base) SetSaveable(saveable bool) { b.transient = !saveable }

func (b *base) key(field string) string { return Key(b.name, field) }

// button loads a button binding. A bad id is logged and leaves the axis
// unbound rather than failing the load.
func (b *base) button(f store.Fields, field string, current input.Button) input.Button {
	id := f.String(b.key(field), input.ID(current))
	btn, err := input.Parse(b.dev, id)
	if err != nil {
		b.logf("axes: axis %q field=%s: %v", b.name, field, err)
		return nil
	}
	return btn
}

func (b *base) remove(f store.Fields, fields ...string) {
	f.Remove(b.key("type"))
	for _, field := range fields {
		f.Remove(b.key(field))
	}
}

func clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return max(-1, min(1, v))
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

func bindValue(b input.Button) float64 {
	if b == nil {
		return 0
	}
	return b.Value()
}

func bindConnected(b input.Button) bool {
	return b == nil || b.Connected()
}

func bindingStatus(connected bool) Status {
	if !connected {
		return StatusDisconnected
	}
	return StatusOK
}
