package axes

import (
	"fmt"
	"slices"

	"github.com/milk9111/axiscontrols/input"
)

// Constructor builds an axis with default tunables.
type Constructor func(name string, dev input.Device) Axis

var constructors = map[Type]Constructor{
	TypeKey:        func(name string, dev input.Device) Axis { return NewKeyAxis(name, dev) },
	TypeStandard:   func(name string, dev input.Device) Axis { return NewStandardAxis(name, dev) },
	TypeController: func(name string, dev input.Device) Axis { return NewControllerAxis(name, dev) },
	TypeChain:      func(name string, dev input.Device) Axis { return NewChainAxis(name) },
	TypeCustom:     func(name string, dev input.Device) Axis { return NewCustomAxis(name, dev) },
	TypeMouse:      func(name string, dev input.Device) Axis { return NewMouseAxis(name, dev) },
}

// Register adds or replaces the constructor for an axis type. It is not safe
// to call while axes are being loaded.
func Register(t Type, c Constructor) {
	if t == "" || c == nil {
		return
	}
	constructors[t] = c
}

// New builds an axis of type t.
func New(t Type, name string, dev input.Device) (Axis, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	c, ok := constructors[t]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
	return c(name, dev), nil
}

// Types lists registered axis types in sorted order.
func Types() []Type {
	out := make([]Type, 0, len(constructors))
	for t := range constructors {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}
