// Package store holds the key/value persistence the axis and control
// registries read and write: the player-profile configuration and the
// per-machine data blob.
package store

import "errors"

var ErrKeyNotFound = errors.New("store: key not found")

// Config is the player-profile key/value store. Getters fall back to def
// when the key is missing or holds a value of another type.
type Config interface {
	HasKey(key string) bool
	GetFloat(key string, def float64) float64
	GetBool(key string, def bool) bool
	GetString(key string, def string) string
	GetInt(key string, def int) int
	SetFloat(key string, value float64)
	SetBool(key string, value bool)
	SetString(key string, value string)
	SetInt(key string, value int)
	RemoveKey(key string)
	Save() error
}

// Blob is the data embedded in a machine save. Read* return the zero value
// for a missing key; callers check HasKey first.
type Blob interface {
	HasKey(key string) bool
	ReadFloat(key string) float64
	ReadBool(key string) bool
	ReadString(key string) string
	ReadInt(key string) int
	Write(key string, value any)
	RemoveKey(key string)
}

// Fields gives Config and Blob one shape so a value is loaded and saved by
// the same code regardless of where it lives.
type Fields interface {
	Has(key string) bool
	Float(key string, def float64) float64
	Bool(key string, def bool) bool
	String(key string, def string) string
	Int(key string, def int) int
	SetFloat(key string, value float64)
	SetBool(key string, value bool)
	SetString(key string, value string)
	SetInt(key string, value int)
	Remove(key string)
}

func ConfigFields(c Config) Fields {
	return configFields{c}
}

type configFields struct{ c Config }

func (f configFields) Has(key string) bool                   { return f.c.HasKey(key) }
func (f configFields) Float(key string, def float64) float64 { return f.c.GetFloat(key, def) }
func (f configFields) Bool(key string, def bool) bool        { return f.c.GetBool(key, def) }
func (f configFields) String(key string, def string) string  { return f.c.GetString(key, def) }
func (f configFields) Int(key string, def int) int           { return f.c.GetInt(key, def) }
func (f configFields) SetFloat(key string, v float64)        { f.c.SetFloat(key, v) }
func (f configFields) SetBool(key string, v bool)            { f.c.SetBool(key, v) }
func (f configFields) SetString(key string, v string)        { f.c.SetString(key, v) }
func (f configFields) SetInt(key string, v int)              { f.c.SetInt(key, v) }
func (f configFields) Remove(key string)                     { f.c.RemoveKey(key) }

func BlobFields(b Blob) Fields {
	return blobFields{b}
}

type blobFields struct{ b Blob }

func (f blobFields) Has(key string) bool { return f.b.HasKey(key) }

func (f blobFields) Float(key string, def float64) float64 {
	if !f.b.HasKey(key) {
		return def
	}
	return f.b.ReadFloat(key)
}

func (f blobFields) Bool(key string, def bool) bool {
	if !f.b.HasKey(key) {
		return def
	}
	return f.b.ReadBool(key)
}

func (f blobFields) String(key string, def string) string {
	if !f.b.HasKey(key) {
		return def
	}
	return f.b.ReadString(key)
}

func (f blobFields) Int(key string, def int) int {
	if !f.b.HasKey(key) {
		return def
	}
	return f.b.ReadInt(key)
}

func (f blobFields) SetFloat(key string, v float64) { f.b.Write(key, v) }
func (f blobFields) SetBool(key string, v bool)     { f.b.Write(key, v) }
func (f blobFields) SetString(key string, v string) { f.b.Write(key, v) }
func (f blobFields) SetInt(key string, v int)       { f.b.Write(key, v) }
func (f blobFields) Remove(key string)              { f.b.RemoveKey(key) }
