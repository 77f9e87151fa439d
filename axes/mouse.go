package axes

import (
	"github.com/milk9111/axiscontrols/input"
	"github.com/milk9111/axiscontrols/store"
)

// MouseAxis follows the cursor along one screen axis.
type MouseAxis struct {
	base

	// Vertical selects the Y axis; screen up is positive.
	Vertical bool
	// Center shifts the zero point as a fraction of half the screen.
	Center float64
	// Range is the fraction of half the screen that spans zero to one.
	Range  float64
	Invert bool

	value float64
}

func NewMouseAxis(name string, dev input.Device) *MouseAxis {
	return &MouseAxis{
		base:  base{name: name, dev: dev},
		Range: 1,
	}
}

func (a *MouseAxis) Type() Type { return TypeMouse }

func (a *MouseAxis) Connected() bool { return true }

func (a *MouseAxis) Status() Status { return StatusOK }

func (a *MouseAxis) InputValue() float64 {
	if a.dev == nil {
		return 0
	}
	x, y := a.dev.Cursor()
	w, h := a.dev.ScreenSize()

	pos, size := float64(x), float64(w)
	if a.Vertical {
		pos, size = float64(h-y), float64(h)
	}
	half := size / 2
	if half <= 0 || a.Range <= 0 {
		return 0
	}
	v := (pos - half*(1+a.Center)) / (half * a.Range)
	if a.Invert {
		v = -v
	}
	return v
}

func (a *MouseAxis) OutputValue() float64 { return a.value }

func (a *MouseAxis) Initialise() { a.value = 0 }

func (a *MouseAxis) Update(float64) {
	a.value = clamp(a.InputValue())
}

func (a *MouseAxis) Clone() Axis {
	clone := NewMouseAxis(a.name, a.dev)
	clone.Vertical = a.Vertical
	clone.Center = a.Center
	clone.Range = a.Range
	clone.Invert = a.Invert
	clone.transient = a.transient
	return clone
}

var mouseAxisFields = []string{"vertical", "center", "range", "invert"}

func (a *MouseAxis) Load(f store.Fields) {
	a.Vertical = f.Bool(a.key("vertical"), a.Vertical)
	a.Center = f.Float(a.key("center"), a.Center)
	a.Range = f.Float(a.key("range"), a.Range)
	a.Invert = f.Bool(a.key("invert"), a.Invert)
}

func (a *MouseAxis) Save(f store.Fields) {
	f.SetString(a.key("type"), string(a.Type()))
	f.SetBool(a.key("vertical"), a.Vertical)
	f.SetFloat(a.key("center"), a.Center)
	f.SetFloat(a.key("range"), a.Range)
	f.SetBool(a.key("invert"), a.Invert)
}

func (a *MouseAxis) Delete(f store.Fields) {
	a.remove(f, mouseAxisFields...)
}

func (a *MouseAxis) Equals(other Axis) bool {
	o, ok := other.(*MouseAxis)
	if !ok || o == nil {
		return false
	}
	return a.name == o.name &&
		a.Vertical == o.Vertical &&
		a.Center == o.Center &&
		a.Range == o.Range &&
		a.Invert == o.Invert
}
