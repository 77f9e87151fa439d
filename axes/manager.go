package axes

import (
	"fmt"
	"log"

	"github.com/milk9111/axiscontrols/input"
	"github.com/milk9111/axiscontrols/store"
)

// Namespace partitions the registry. Names are unique within a namespace;
// the same name may exist in both.
type Namespace int

const (
	// Local axes belong to the player profile and are available to every machine.
	Local Namespace = iota
	// Machine axes are saved inside the currently loaded machine.
	Machine
)

func (n Namespace) String() string {
	if n == Machine {
		return "machine"
	}
	return "local"
}

func (n Namespace) valid() bool {
	return n == Local || n == Machine
}

// registry keeps axes in insertion order so saves are deterministic.
type registry struct {
	order  []string
	byName map[string]Axis
}

func (r *registry) get(name string) (Axis, bool) {
	a, ok := r.byName[name]
	return a, ok
}

func (r *registry) put(a Axis) (Axis, bool) {
	if r.byName == nil {
		r.byName = make(map[string]Axis)
	}
	prev, ok := r.byName[a.Name()]
	if !ok {
		r.order = append(r.order, a.Name())
	}
	r.byName[a.Name()] = a
	return prev, ok
}

func (r *registry) remove(name string) (Axis, bool) {
	a, ok := r.byName[name]
	if !ok {
		return nil, false
	}
	delete(r.byName, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return a, true
}

func (r *registry) list() []Axis {
	out := make([]Axis, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

// Manager owns every axis of a session. It is not safe for concurrent use;
// the host drives it from its simulation thread.
type Manager struct {
	dev    input.Device
	logger *log.Logger
	spaces [2]registry
}

func NewManager(dev input.Device) *Manager {
	return &Manager{dev: dev}
}

// SetLogger redirects load warnings. Nil restores the standard logger.
func (m *Manager) SetLogger(l *log.Logger) {
	if m == nil {
		return
	}
	m.logger = l
	for _, ns := range []Namespace{Local, Machine} {
		for _, a := range m.space(ns).list() {
			m.adopt(a)
		}
	}
}

// adopt hands the manager's logger to a.
func (m *Manager) adopt(a Axis) {
	if l, ok := a.(interface{ setLogger(*log.Logger) }); ok {
		l.setLogger(m.logger)
	}
}

func (m *Manager) logf(format string, args ...any) {
	if m.logger != nil {
		m.logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

// Device returns the input device new axes are bound to.
func (m *Manager) Device() input.Device {
	if m == nil {
		return nil
	}
	return m.dev
}

func (m *Manager) space(ns Namespace) *registry {
	if !ns.valid() {
		ns = Local
	}
	return &m.spaces[ns]
}

// Create builds a default axis of type t and adds it to ns.
func (m *Manager) Create(ns Namespace, t Type, name string) (Axis, error) {
	a, err := New(t, name, m.dev)
	if err != nil {
		return nil, err
	}
	if err := m.Add(ns, a); err != nil {
		return nil, err
	}
	a.Initialise()
	return a, nil
}

// Add registers a new axis. A name already present in ns is rejected with
// ErrDuplicateAxis; use Put to replace.
func (m *Manager) Add(ns Namespace, a Axis) error {
	if m == nil || a == nil {
		return nil
	}
	if a.Name() == "" {
		return ErrEmptyName
	}
	if _, ok := m.space(ns).get(a.Name()); ok {
		return fmt.Errorf("%w: %s axis %q", ErrDuplicateAxis, ns, a.Name())
	}
	m.adopt(a)
	m.space(ns).put(a)
	m.Link()
	return nil
}

// Put registers a, replacing any axis of the same name in ns. The replaced
// axis is unlinked and returned.
func (m *Manager) Put(ns Namespace, a Axis) (Axis, bool) {
	if m == nil || a == nil || a.Name() == "" {
		return nil, false
	}
	m.adopt(a)
	prev, replaced := m.space(ns).put(a)
	if replaced && prev != a {
		if !prev.Equals(a) {
			m.logf("axes: %s axis %q replaced with different settings", ns, a.Name())
		}
		unlink(prev)
	}
	m.Link()
	return prev, replaced
}

// Remove drops an axis from ns and releases its links. Chains that read it
// lose the link until an axis of that name is added again.
func (m *Manager) Remove(ns Namespace, name string) (Axis, bool) {
	if m == nil {
		return nil, false
	}
	a, ok := m.space(ns).remove(name)
	if !ok {
		return nil, false
	}
	unlink(a)
	m.Link()
	return a, true
}

// Delete removes an axis and erases its persisted footprint from f.
func (m *Manager) Delete(ns Namespace, name string, f store.Fields) bool {
	a, ok := m.Remove(ns, name)
	if !ok {
		return false
	}
	if f != nil {
		a.Delete(f)
	}
	return true
}

// Get resolves a name, local axes first, then machine axes.
func (m *Manager) Get(name string) (Axis, bool) {
	if m == nil || name == "" {
		return nil, false
	}
	if a, ok := m.spaces[Local].get(name); ok {
		return a, true
	}
	return m.spaces[Machine].get(name)
}

// GetIn resolves a name within one namespace only.
func (m *Manager) GetIn(ns Namespace, name string) (Axis, bool) {
	if m == nil || !ns.valid() {
		return nil, false
	}
	return m.space(ns).get(name)
}

// Axes lists the axes of ns in insertion order.
func (m *Manager) Axes(ns Namespace) []Axis {
	if m == nil || !ns.valid() {
		return nil
	}
	return m.space(ns).list()
}

// Len returns the number of axes in ns.
func (m *Manager) Len(ns Namespace) int {
	if m == nil || !ns.valid() {
		return 0
	}
	return len(m.space(ns).order)
}

// ClearMachine drops every machine axis, e.g. when a machine is unloaded.
func (m *Manager) ClearMachine() {
	if m == nil {
		return
	}
	for _, a := range m.spaces[Machine].list() {
		unlink(a)
	}
	m.spaces[Machine] = registry{}
	m.Link()
}

// scoped resolves within its own namespace before falling back to the other.
type scoped struct {
	m  *Manager
	ns Namespace
}

func (s scoped) Get(name string) (Axis, bool) {
	if a, ok := s.m.space(s.ns).get(name); ok {
		return a, true
	}
	return s.m.space(1 - s.ns).get(name)
}

// Link re-resolves every axis-to-axis reference. It runs after every
// registry change and as the second phase of a load.
func (m *Manager) Link() {
	if m == nil {
		return
	}
	for _, ns := range []Namespace{Local, Machine} {
		r := scoped{m: m, ns: ns}
		for _, a := range m.space(ns).list() {
			if l, ok := a.(Linker); ok {
				l.Link(r)
			}
		}
	}
}

func unlink(a Axis) {
	if l, ok := a.(Linker); ok {
		l.Unlink()
	}
}

func (m *Manager) each(fn func(Axis)) {
	// Plain axes first so axes reading others see this tick's values.
	for _, linked := range []bool{false, true} {
		for _, ns := range []Namespace{Local, Machine} {
			for _, a := range m.space(ns).list() {
				if _, ok := a.(Linker); ok == linked {
					fn(a)
				}
			}
		}
	}
}

// Initialise resets every axis, e.g. when a machine starts simulating.
func (m *Manager) Initialise() {
	if m == nil {
		return
	}
	m.each(func(a Axis) { a.Initialise() })
}

// Update advances every axis by dt seconds.
func (m *Manager) Update(dt float64) {
	if m == nil {
		return
	}
	m.each(func(a Axis) { a.Update(dt) })
}
