package axes

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/milk9111/axiscontrols/store"
)

const countKey = "number-of-axes"

func indexKey(i int) string {
	return "axis-" + strconv.Itoa(i) + "-name"
}

// LoadConfig replaces the local axes with those saved in the profile.
func (m *Manager) LoadConfig(c store.Config) error {
	return m.load(Local, store.ConfigFields(c))
}

// SaveConfig writes every saveable local axis to the profile and saves it.
func (m *Manager) SaveConfig(c store.Config) error {
	m.save(Local, store.ConfigFields(c))
	if err := c.Save(); err != nil {
		return fmt.Errorf("axes: save config: %w", err)
	}
	return nil
}

// LoadMachine replaces the machine axes with those embedded in b.
func (m *Manager) LoadMachine(b store.Blob) error {
	return m.load(Machine, store.BlobFields(b))
}

// SaveMachine embeds every saveable machine axis in b.
func (m *Manager) SaveMachine(b store.Blob) {
	m.save(Machine, store.BlobFields(b))
}

// load reconstructs every axis first and links them afterwards, so an axis
// may refer to one saved after it. Entries that fail are logged and skipped;
// whatever loaded is kept. Axes whose configuration did not change keep
// running with their current state.
func (m *Manager) load(ns Namespace, f store.Fields) error {
	if m == nil {
		return nil
	}

	previous := m.space(ns)
	loaded := registry{}
	errs := m.construct(ns, f, &loaded)

	kept := 0
	for _, name := range loaded.order {
		a := loaded.byName[name]
		if old, ok := previous.get(name); ok && old.Equals(a) {
			loaded.byName[name] = old
			kept++
			continue
		}
		a.Initialise()
	}
	for _, old := range previous.list() {
		if cur, ok := loaded.get(old.Name()); !ok || cur != old {
			unlink(old)
		}
	}

	m.spaces[ns] = loaded
	m.Link()
	m.logf("axes: loaded %s axes count=%d unchanged=%d", ns, len(loaded.order), kept)
	return errors.Join(errs...)
}

func (m *Manager) construct(ns Namespace, f store.Fields, into *registry) (errs []error) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("axes: loading %s axes aborted after %d: %v", ns, len(into.order), r)
			m.logf("%v", err)
			errs = append(errs, err)
		}
	}()

	count := f.Int(countKey, 0)
	for i := 0; i < count; i++ {
		name := f.String(indexKey(i), "")
		if name == "" {
			err := fmt.Errorf("axes: %s index %d: %w", ns, i, ErrEmptyName)
			m.logf("%v", err)
			errs = append(errs, err)
			continue
		}

		a, err := New(Type(f.String(Key(name, "type"), "")), name, m.dev)
		if err != nil {
			err = fmt.Errorf("axes: %s axis %q: %w", ns, name, err)
			m.logf("%v", err)
			errs = append(errs, err)
			continue
		}
		m.adopt(a)
		a.Load(f)

		if prev, ok := into.put(a); ok && !prev.Equals(a) {
			m.logf("axes: %s axis %q listed twice with different settings, keeping the later one", ns, name)
		}
	}
	return errs
}

func (m *Manager) save(ns Namespace, f store.Fields) {
	if m == nil {
		return
	}

	old := f.Int(countKey, 0)
	for i := 0; i < old; i++ {
		f.Remove(indexKey(i))
	}

	n := 0
	for _, a := range m.space(ns).list() {
		if !a.Saveable() {
			continue
		}
		a.Save(f)
		f.SetString(indexKey(n), a.Name())
		n++
	}
	f.SetInt(countKey, n)
}
