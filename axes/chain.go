package axes

import (
	"fmt"
	"strings"

	"github.com/milk9111/axiscontrols/store"
)

// ChainMethod combines the outputs of two axes.
type ChainMethod string

const (
	ChainSum      ChainMethod = "Sum"
	ChainSubtract ChainMethod = "Subtract"
	ChainAverage  ChainMethod = "Average"
	ChainMultiply ChainMethod = "Multiply"
	ChainMaximum  ChainMethod = "Maximum"
	ChainMinimum  ChainMethod = "Minimum"
)

func (m ChainMethod) apply(a, b float64) float64 {
	switch m {
	case ChainSubtract:
		return a - b
	case ChainAverage:
		return (a + b) / 2
	case ChainMultiply:
		return a * b
	case ChainMaximum:
		return max(a, b)
	case ChainMinimum:
		return min(a, b)
	}
	return a + b
}

// ChainAxis combines two other axes, referenced by name.
type ChainAxis struct {
	base

	SubAxis1 string
	SubAxis2 string
	Method   ChainMethod

	axis1 Axis
	axis2 Axis
	value float64
	// broken describes the unresolved links of the last Link, so a warning
	// is logged once per change rather than on every registry update.
	broken string
}

func NewChainAxis(name string) *ChainAxis {
	return &ChainAxis{
		base:   base{name: name},
		Method: ChainSum,
	}
}

func (a *ChainAxis) Type() Type { return TypeChain }

// Link resolves both sub axes. A chain never links to itself.
func (a *ChainAxis) Link(r Resolver) {
	var problems []string
	a.axis1 = a.resolve(r, a.SubAxis1, &problems)
	a.axis2 = a.resolve(r, a.SubAxis2, &problems)

	broken := strings.Join(problems, ", ")
	if broken != "" && broken != a.broken {
		a.logf("axes: chain %q: %s", a.name, broken)
	}
	a.broken = broken
}

func (a *ChainAxis) resolve(r Resolver, name string, problems *[]string) Axis {
	if name == "" || r == nil {
		return nil
	}
	if name == a.name {
		*problems = append(*problems, "refers to itself")
		return nil
	}
	ax, ok := r.Get(name)
	if !ok {
		*problems = append(*problems, fmt.Sprintf("sub axis %q not found", name))
		return nil
	}
	return ax
}

func (a *ChainAxis) Unlink() {
	a.axis1 = nil
	a.axis2 = nil
	a.broken = ""
}

// Linked reports whether every named sub axis resolved.
func (a *ChainAxis) Linked() bool {
	return (a.SubAxis1 == "" || a.axis1 != nil) && (a.SubAxis2 == "" || a.axis2 != nil)
}

func (a *ChainAxis) Connected() bool {
	return (a.axis1 == nil || a.axis1.Connected()) && (a.axis2 == nil || a.axis2.Connected())
}

func (a *ChainAxis) Status() Status {
	if !a.Linked() {
		return StatusError
	}
	return bindingStatus(a.Connected())
}

func output(ax Axis) float64 {
	if ax == nil {
		return 0
	}
	return ax.OutputValue()
}

func (a *ChainAxis) InputValue() float64 {
	return a.Method.apply(output(a.axis1), output(a.axis2))
}

func (a *ChainAxis) OutputValue() float64 { return a.value }

func (a *ChainAxis) Initialise() { a.value = 0 }

// Update samples the sub axes' current outputs, so a cycle of chains lags by
// a tick instead of recursing.
func (a *ChainAxis) Update(float64) {
	a.value = clamp(a.InputValue())
}

func (a *ChainAxis) Clone() Axis {
	clone := NewChainAxis(a.name)
	clone.SubAxis1 = a.SubAxis1
	clone.SubAxis2 = a.SubAxis2
	clone.Method = a.Method
	clone.transient = a.transient
	return clone
}

var chainAxisFields = []string{"sub1", "sub2", "method"}

func (a *ChainAxis) Load(f store.Fields) {
	a.SubAxis1 = f.String(a.key("sub1"), a.SubAxis1)
	a.SubAxis2 = f.String(a.key("sub2"), a.SubAxis2)
	a.Method = ChainMethod(f.String(a.key("method"), string(a.Method)))
}

func (a *ChainAxis) Save(f store.Fields) {
	f.SetString(a.key("type"), string(a.Type()))
	f.SetString(a.key("sub1"), a.SubAxis1)
	f.SetString(a.key("sub2"), a.SubAxis2)
	f.SetString(a.key("method"), string(a.Method))
}

func (a *ChainAxis) Delete(f store.Fields) {
	a.remove(f, chainAxisFields...)
	a.Unlink()
}

func (a *ChainAxis) Equals(other Axis) bool {
	o, ok := other.(*ChainAxis)
	if !ok || o == nil {
		return false
	}
	return a.name == o.name &&
		a.SubAxis1 == o.SubAxis1 &&
		a.SubAxis2 == o.SubAxis2 &&
		a.Method == o.Method
}
