package axes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/axiscontrols/input"
	"github.com/milk9111/axiscontrols/store"
)

// scriptBudget bounds a single script run so a runaway loop cannot stall
// the tick.
const scriptBudget = 50 * time.Millisecond

// CustomAxis runs user scripts written in tengo. The initialise script runs
// on Initialise, the update script every tick; both assign the global
// `output`. Scripts see `dt`, `elapsed`, a persistent `state` map and the
// functions axis(name), key(name) and button(id).
type CustomAxis struct {
	base

	InitialiseCode string
	UpdateCode     string

	resolver Resolver
	state    *tengo.Map
	init     *tengo.Compiled
	update   *tengo.Compiled
	compiled bool
	err      error
	elapsed  float64
	value    float64
}

func NewCustomAxis(name string, dev input.Device) *CustomAxis {
	return &CustomAxis{
		base:  base{name: name, dev: dev},
		state: &tengo.Map{Value: map[string]tengo.Object{}},
	}
}

func (a *CustomAxis) Type() Type { return TypeCustom }

func (a *CustomAxis) Link(r Resolver) { a.resolver = r }

func (a *CustomAxis) Unlink() { a.resolver = nil }

func (a *CustomAxis) Connected() bool { return true }

// Err returns the last compile or runtime error, nil while healthy.
func (a *CustomAxis) Err() error { return a.err }

func (a *CustomAxis) Status() Status {
	if a.err != nil {
		return StatusError
	}
	return StatusOK
}

func (a *CustomAxis) InputValue() float64 { return a.value }

func (a *CustomAxis) OutputValue() float64 { return a.value }

// SetCode replaces both scripts; they are recompiled on next use.
func (a *CustomAxis) SetCode(initialise, update string) {
	a.InitialiseCode = initialise
	a.UpdateCode = update
	a.compiled = false
	a.init, a.update = nil, nil
	a.err = nil
}

func (a *CustomAxis) Initialise() {
	a.value = 0
	a.elapsed = 0
	a.state = &tengo.Map{Value: map[string]tengo.Object{}}
	a.err = nil
	a.compile()
	if a.init != nil {
		a.run(a.init, 0)
	}
}

func (a *CustomAxis) Update(dt float64) {
	if !a.compiled {
		a.compile()
	}
	if a.update == nil {
		return
	}
	a.elapsed += dt
	a.run(a.update, dt)
}

func (a *CustomAxis) compile() {
	a.compiled = true
	var err error
	if a.init, err = a.compileScript(a.InitialiseCode); err != nil {
		a.fail("compile initialise", err)
		return
	}
	if a.update, err = a.compileScript(a.UpdateCode); err != nil {
		a.fail("compile update", err)
	}
}

func (a *CustomAxis) compileScript(src string) (*tengo.Compiled, error) {
	if strings.TrimSpace(src) == "" {
		return nil, nil
	}
	script := tengo.NewScript([]byte(src))
	_ = script.Add("dt", 0.0)
	_ = script.Add("elapsed", 0.0)
	_ = script.Add("output", 0.0)
	_ = script.Add("state", map[string]any{})
	_ = script.Add("axis", &tengo.UserFunction{Name: "axis", Value: a.scriptAxis})
	_ = script.Add("key", &tengo.UserFunction{Name: "key", Value: a.scriptKey})
	_ = script.Add("button", &tengo.UserFunction{Name: "button", Value: a.scriptButton})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	return script.Compile()
}

func (a *CustomAxis) run(c *tengo.Compiled, dt float64) {
	for name, v := range map[string]any{
		"dt":      dt,
		"elapsed": a.elapsed,
		"output":  a.value,
		"state":   a.state,
	} {
		if err := c.Set(name, v); err != nil {
			a.fail("set "+name, err)
			return
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), scriptBudget)
	defer cancel()
	if err := c.RunContext(ctx); err != nil {
		a.fail("run", err)
		return
	}

	a.value = clamp(c.Get("output").Float())
	a.err = nil
}

// fail records err, logging only when it differs from the previous one so a
// broken script does not flood the log every tick.
func (a *CustomAxis) fail(stage string, err error) {
	err = fmt.Errorf("axes: custom %q %s: %w", a.name, stage, err)
	if a.err == nil || a.err.Error() != err.Error() {
		a.logf("%v", err)
	}
	a.err = err
}

func (a *CustomAxis) scriptAxis(args ...tengo.Object) (tengo.Object, error) {
	if len(args) < 1 || a.resolver == nil {
		return &tengo.Float{Value: 0}, nil
	}
	name := objectAsString(args[0])
	if name == a.name {
		return &tengo.Float{Value: a.value}, nil
	}
	ax, ok := a.resolver.Get(name)
	if !ok {
		return &tengo.Float{Value: 0}, nil
	}
	return &tengo.Float{Value: ax.OutputValue()}, nil
}

func (a *CustomAxis) scriptKey(args ...tengo.Object) (tengo.Object, error) {
	if len(args) < 1 || a.dev == nil {
		return tengo.FalseValue, nil
	}
	if a.dev.KeyPressed(objectAsString(args[0])) {
		return tengo.TrueValue, nil
	}
	return tengo.FalseValue, nil
}

func (a *CustomAxis) scriptButton(args ...tengo.Object) (tengo.Object, error) {
	if len(args) < 1 {
		return &tengo.Float{Value: 0}, nil
	}
	b, err := input.Parse(a.dev, objectAsString(args[0]))
	if err != nil || b == nil {
		return &tengo.Float{Value: 0}, nil
	}
	return &tengo.Float{Value: b.Value()}, nil
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return strings.TrimSpace(v.Value)
	default:
		return strings.Trim(v.String(), "\"")
	}
}

func (a *CustomAxis) Clone() Axis {
	clone := NewCustomAxis(a.name, a.dev)
	clone.InitialiseCode = a.InitialiseCode
	clone.UpdateCode = a.UpdateCode
	clone.transient = a.transient
	return clone
}

var customAxisFields = []string{"initialise", "update"}

func (a *CustomAxis) Load(f store.Fields) {
	a.SetCode(
		f.String(a.key("initialise"), a.InitialiseCode),
		f.String(a.key("update"), a.UpdateCode),
	)
}

func (a *CustomAxis) Save(f store.Fields) {
	f.SetString(a.key("type"), string(a.Type()))
	f.SetString(a.key("initialise"), a.InitialiseCode)
	f.SetString(a.key("update"), a.UpdateCode)
}

func (a *CustomAxis) Delete(f store.Fields) {
	a.remove(f, customAxisFields...)
	a.Unlink()
}

func (a *CustomAxis) Equals(other Axis) bool {
	o, ok := other.(*CustomAxis)
	if !ok || o == nil {
		return false
	}
	return a.name == o.name &&
		a.InitialiseCode == o.InitialiseCode &&
		a.UpdateCode == o.UpdateCode
}
