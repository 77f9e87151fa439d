package store

import "maps"

// MemoryBlob is a Blob held in memory; a machine file embeds its Data.
type MemoryBlob struct {
	data values
}

// NewMemoryBlob wraps data, which may be nil.
func NewMemoryBlob(data map[string]any) *MemoryBlob {
	if data == nil {
		data = map[string]any{}
	}
	return &MemoryBlob{data: values(data)}
}

// Data returns a copy of the blob contents for serialisation.
func (b *MemoryBlob) Data() map[string]any {
	if b == nil {
		return nil
	}
	return maps.Clone(map[string]any(b.data))
}

func (b *MemoryBlob) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

func (b *MemoryBlob) HasKey(key string) bool {
	if b == nil {
		return false
	}
	_, ok := b.data[key]
	return ok
}

func (b *MemoryBlob) ReadFloat(key string) float64 {
	v, _ := b.data.float(key)
	return v
}

func (b *MemoryBlob) ReadBool(key string) bool {
	v, _ := b.data.bool(key)
	return v
}

func (b *MemoryBlob) ReadString(key string) string {
	v, _ := b.data.string(key)
	return v
}

func (b *MemoryBlob) ReadInt(key string) int {
	v, _ := b.data.int(key)
	return v
}

func (b *MemoryBlob) Write(key string, value any) {
	b.data[key] = value
}

func (b *MemoryBlob) RemoveKey(key string) {
	delete(b.data, key)
}

var _ Blob = (*MemoryBlob)(nil)
