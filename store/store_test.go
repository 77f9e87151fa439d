package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile", "axes.yaml")

	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("open missing file: %v", err)
	}
	if len(f.Keys()) != 0 {
		t.Fatalf("expected empty store, got %v", f.Keys())
	}

	f.SetFloat("axis-steer-gravity", 0.25)
	f.SetFloat("axis-steer-momentum", 2)
	f.SetBool("axis-steer-snap", true)
	f.SetString("axis-steer-positive", "key-D")
	f.SetInt("number-of-axes", 3)
	if err := f.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	g, err := OpenFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}

	if got := g.GetFloat("axis-steer-gravity", 0); got != 0.25 {
		t.Fatalf("gravity: got %v", got)
	}
	if got := g.GetFloat("axis-steer-momentum", 0); got != 2 {
		t.Fatalf("whole float should read back as 2, got %v", got)
	}
	if !g.GetBool("axis-steer-snap", false) {
		t.Fatalf("snap: expected true")
	}
	if got := g.GetString("axis-steer-positive", ""); got != "key-D" {
		t.Fatalf("positive: got %q", got)
	}
	if got := g.GetInt("number-of-axes", 0); got != 3 {
		t.Fatalf("count: got %d", got)
	}
}

func TestFileDefaults(t *testing.T) {
	f, err := OpenFile(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	f.SetString("name", "steer")

	if got := f.GetFloat("missing", 1.5); got != 1.5 {
		t.Fatalf("missing float should default, got %v", got)
	}
	if got := f.GetInt("name", 7); got != 7 {
		t.Fatalf("mismatched type should default, got %v", got)
	}
	f.RemoveKey("name")
	if f.HasKey("name") {
		t.Fatalf("key should be removed")
	}
}

func TestFileRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("- just\n- a list\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenFile(path); err == nil {
		t.Fatalf("expected unmarshal error for a non-mapping document")
	}
}

func TestBlobFields(t *testing.T) {
	b := NewMemoryBlob(nil)
	f := BlobFields(b)

	if got := f.Float("axis-a-gravity", 3); got != 3 {
		t.Fatalf("missing blob key should default, got %v", got)
	}
	f.SetFloat("axis-a-gravity", 0.5)
	f.SetBool("axis-a-raw", true)
	f.SetString("axis-a-type", "Key")
	f.SetInt("number-of-axes", 1)

	cases := []struct {
		name string
		ok   bool
	}{
		{"float", f.Float("axis-a-gravity", 3) == 0.5},
		{"bool", f.Bool("axis-a-raw", false)},
		{"string", f.String("axis-a-type", "") == "Key"},
		{"int", f.Int("number-of-axes", 0) == 1},
		{"has", f.Has("axis-a-type")},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if !c.ok {
				t.Fatalf("%s read back wrong", c.name)
			}
		})
	}

	f.Remove("axis-a-type")
	if b.HasKey("axis-a-type") {
		t.Fatalf("remove through fields should reach the blob")
	}
	if b.Len() != 3 {
		t.Fatalf("expected 3 keys left, got %d", b.Len())
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "axes.yaml")
	if err := os.WriteFile(path, []byte("a: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("b: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("a: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	abs, _ := filepath.Abs(path)
	select {
	case got := <-w.Events:
		if got != abs {
			t.Fatalf("expected event for %s, got %s", abs, got)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for file event")
	}
}
