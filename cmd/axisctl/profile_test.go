package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/milk9111/axiscontrols/axes"
	"github.com/milk9111/axiscontrols/input"
	"github.com/milk9111/axiscontrols/store"
)

func writeProfile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	f, err := store.OpenFile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	m := axes.NewManager(input.NewVirtual())
	steer := axes.NewKeyAxis("steer", m.Device())
	steer.Sensitivity = 3
	steer.Snap = true
	if err := m.Add(axes.Local, steer); err != nil {
		t.Fatalf("add steer: %v", err)
	}
	if _, err := m.Create(axes.Local, axes.TypeStandard, "drive"); err != nil {
		t.Fatalf("add drive: %v", err)
	}
	if err := m.SaveConfig(f); err != nil {
		t.Fatalf("save: %v", err)
	}
	return path
}

func TestProfileList(t *testing.T) {
	p, err := openProfile(writeProfile(t))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	var out bytes.Buffer
	if err := p.list(&out); err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, want := range []string{"steer", "Key", "drive", "Standard"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("list output missing %q:\n%s", want, out.String())
		}
	}
}

func TestProfileExportImport(t *testing.T) {
	src, err := openProfile(writeProfile(t))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	data, err := src.export("steer")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if _, err := src.export("missing"); !errors.Is(err, axes.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	dstPath := filepath.Join(t.TempDir(), "other.yaml")
	dst, err := openProfile(dstPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	name, replaced, err := dst.importAxis(data)
	if err != nil || name != "steer" || replaced {
		t.Fatalf("import = %q, %v, %v", name, replaced, err)
	}
	if _, replaced, _ = dst.importAxis(data); !replaced {
		t.Fatalf("second import should replace")
	}

	reopened, err := openProfile(dstPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	want, _ := src.axes.GetIn(axes.Local, "steer")
	got, ok := reopened.axes.GetIn(axes.Local, "steer")
	if !ok || !got.Equals(want) {
		t.Fatalf("imported axis not persisted unchanged")
	}
	if n := reopened.axes.Len(axes.Local); n != 1 {
		t.Fatalf("expected 1 axis, got %d", n)
	}
}

func TestProfileDelete(t *testing.T) {
	path := writeProfile(t)
	p, err := openProfile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := p.delete("drive"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := p.delete("drive"); !errors.Is(err, axes.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	f, err := store.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	for _, k := range f.Keys() {
		if strings.HasPrefix(k, axes.Key("drive", "")) {
			t.Fatalf("key %q survived delete", k)
		}
	}
	if !f.HasKey(axes.Key("steer", "type")) {
		t.Fatalf("steer should be kept")
	}
}
