package main

import (
	"fmt"
	"io"
	"log"
	"text/tabwriter"

	"github.com/milk9111/axiscontrols/axes"
	"github.com/milk9111/axiscontrols/input"
	"github.com/milk9111/axiscontrols/store"
)

// profile is a profile file with its local axes loaded. Axes are bound to
// a virtual device since no input is read.
type profile struct {
	file *store.File
	axes *axes.Manager
}

func openProfile(path string) (*profile, error) {
	f, err := store.OpenFile(path)
	if err != nil {
		return nil, err
	}
	m := axes.NewManager(input.NewVirtual())
	m.SetLogger(log.Default())
	if err := m.LoadConfig(f); err != nil {
		log.Printf("axisctl: %s: %v", path, err)
	}
	return &profile{file: f, axes: m}, nil
}

func (p *profile) list(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTYPE\tSTATUS")
	for _, a := range p.axes.Axes(axes.Local) {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", a.Name(), a.Type(), a.Status())
	}
	return tw.Flush()
}

func (p *profile) export(name string) ([]byte, error) {
	a, ok := p.axes.GetIn(axes.Local, name)
	if !ok {
		return nil, fmt.Errorf("axisctl: export %q: %w", name, axes.ErrNotFound)
	}
	return axes.Marshal(a)
}

// importAxis stores the exported axis in data, replacing any axis of the
// same name.
func (p *profile) importAxis(data []byte) (string, bool, error) {
	a, err := axes.Unmarshal(data, p.axes.Device())
	if err != nil {
		return "", false, err
	}
	old, replaced := p.axes.Put(axes.Local, a)
	if replaced && old != nil {
		old.Delete(store.ConfigFields(p.file))
	}
	if err := p.save(); err != nil {
		return "", false, err
	}
	return a.Name(), replaced, nil
}

func (p *profile) delete(name string) error {
	if !p.axes.Delete(axes.Local, name, store.ConfigFields(p.file)) {
		return fmt.Errorf("axisctl: delete %q: %w", name, axes.ErrNotFound)
	}
	return p.save()
}

func (p *profile) save() error {
	return p.axes.SaveConfig(p.file)
}
