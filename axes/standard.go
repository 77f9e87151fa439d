package axes

import (
	"math"

	"github.com/milk9111/axiscontrols/input"
	"github.com/milk9111/axiscontrols/store"
)

// StandardAxis is the two-key axis without inertia: the net force moves the
// output directly.
type StandardAxis struct {
	base

	Sensitivity float64
	Gravity     float64
	Snap        bool
	Invert      bool

	PositiveBind input.Button
	NegativeBind input.Button

	last  float64
	value float64
}

func NewStandardAxis(name string, dev input.Device) *StandardAxis {
	return &StandardAxis{
		base:        base{name: name, dev: dev},
		Sensitivity: 1,
		Gravity:     1,
	}
}

func (a *StandardAxis) Type() Type { return TypeStandard }

func (a *StandardAxis) Connected() bool {
	return bindConnected(a.PositiveBind) && bindConnected(a.NegativeBind)
}

func (a *StandardAxis) Status() Status { return bindingStatus(a.Connected()) }

func (a *StandardAxis) InputValue() float64 {
	v := bindValue(a.PositiveBind) - bindValue(a.NegativeBind)
	if a.Invert {
		return -v
	}
	return v
}

func (a *StandardAxis) OutputValue() float64 { return a.value }

func (a *StandardAxis) Initialise() {
	a.value = 0
	a.last = 0
}

func (a *StandardAxis) Update(dt float64) {
	in := a.InputValue()

	gravity := a.Gravity
	if a.value > 0 {
		gravity = -a.Gravity
	}
	force := in*a.Sensitivity + (1-math.Abs(in))*gravity
	a.value = clamp(a.value + force*dt)

	if a.Snap && math.Abs(a.value-in) > 1 {
		a.value = 0
	}
	if in == 0 && (a.last > 0) != (a.value > 0) {
		a.value = 0
	}
	a.last = a.value
}

func (a *StandardAxis) Clone() Axis {
	clone := NewStandardAxis(a.name, a.dev)
	clone.Sensitivity = a.Sensitivity
	clone.Gravity = a.Gravity
	clone.Snap = a.Snap
	clone.Invert = a.Invert
	clone.PositiveBind = a.PositiveBind
	clone.NegativeBind = a.NegativeBind
	clone.transient = a.transient
	return clone
}

var standardAxisFields = []string{"sensitivity", "gravity", "snap", "invert", "positive", "negative"}

func (a *StandardAxis) Load(f store.Fields) {
	a.Sensitivity = f.Float(a.key("sensitivity"), a.Sensitivity)
	a.Gravity = f.Float(a.key("gravity"), a.Gravity)
	a.Snap = f.Bool(a.key("snap"), a.Snap)
	a.Invert = f.Bool(a.key("invert"), a.Invert)
	a.PositiveBind = a.button(f, "positive", a.PositiveBind)
	a.NegativeBind = a.button(f, "negative", a.NegativeBind)
}

func (a *StandardAxis) Save(f store.Fields) {
	f.SetString(a.key("type"), string(a.Type()))
	f.SetFloat(a.key("sensitivity"), a.Sensitivity)
	f.SetFloat(a.key("gravity"), a.Gravity)
	f.SetBool(a.key("snap"), a.Snap)
	f.SetBool(a.key("invert"), a.Invert)
	f.SetString(a.key("positive"), input.ID(a.PositiveBind))
	f.SetString(a.key("negative"), input.ID(a.NegativeBind))
}

func (a *StandardAxis) Delete(f store.Fields) {
	a.remove(f, standardAxisFields...)
}

func (a *StandardAxis) Equals(other Axis) bool {
	o, ok := other.(*StandardAxis)
	if !ok || o == nil {
		return false
	}
	return a.name == o.name &&
		a.Sensitivity == o.Sensitivity &&
		a.Gravity == o.Gravity &&
		a.Snap == o.Snap &&
		a.Invert == o.Invert &&
		input.Same(a.PositiveBind, o.PositiveBind) &&
		input.Same(a.NegativeBind, o.NegativeBind)
}
