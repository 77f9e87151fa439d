package axes

import (
	"fmt"
	"strings"

	"github.com/milk9111/axiscontrols/input"
	"github.com/milk9111/axiscontrols/store"
	"gopkg.in/yaml.v3"
)

// Document is the yaml form of a single axis, used to share axes between
// profiles.
type Document struct {
	Type   Type           `yaml:"type"`
	Name   string         `yaml:"name"`
	Fields map[string]any `yaml:"fields,omitempty"`
}

// Marshal encodes a's tunables as a yaml Document.
func Marshal(a Axis) ([]byte, error) {
	if a == nil {
		return nil, ErrNotFound
	}
	blob := store.NewMemoryBlob(nil)
	a.Save(store.BlobFields(blob))

	prefix := Key(a.Name(), "")
	doc := Document{Type: a.Type(), Name: a.Name(), Fields: map[string]any{}}
	for k, v := range blob.Data() {
		field, ok := strings.CutPrefix(k, prefix)
		if !ok || field == "type" {
			continue
		}
		doc.Fields[field] = v
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("axes: marshal %q: %w", a.Name(), err)
	}
	return out, nil
}

// Unmarshal decodes a Document into a new axis bound to dev. Fields the
// document omits keep their defaults.
func Unmarshal(data []byte, dev input.Device) (Axis, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("axes: unmarshal: %w", err)
	}

	a, err := New(doc.Type, doc.Name, dev)
	if err != nil {
		return nil, err
	}

	blob := store.NewMemoryBlob(nil)
	for field, v := range doc.Fields {
		blob.Write(Key(doc.Name, field), v)
	}
	a.Load(store.BlobFields(blob))
	return a, nil
}
