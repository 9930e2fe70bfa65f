package signals

import (
	"encoding/json"
	"fmt"
)

// Frame is a named, append-only key/value record produced after a redemption
// attempt. Downstream declarative steps address its values by frame name and
// key; the producer never reads a frame back.
type Frame struct {
	name   string
	keys   []string
	values map[string]string
}

func NewFrame(name string) *Frame {
	return &Frame{
		name:   name,
		values: make(map[string]string),
	}
}

func (f *Frame) Name() string {
	return f.name
}

// Append records a value under key. Frames are append-only: writing an
// existing key is refused.
func (f *Frame) Append(key, value string) error {
	if _, exists := f.values[key]; exists {
		return fmt.Errorf("frame %q already has a value for %q", f.name, key)
	}
	f.keys = append(f.keys, key)
	f.values[key] = value
	return nil
}

func (f *Frame) Get(key string) (string, bool) {
	v, ok := f.values[key]
	return v, ok
}

// Keys returns the frame's keys in append order.
func (f *Frame) Keys() []string {
	out := make([]string, len(f.keys))
	copy(out, f.keys)
	return out
}

// Values returns a copy of the frame's contents.
func (f *Frame) Values() map[string]string {
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

func (f *Frame) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name   string            `json:"name"`
		Values map[string]string `json:"values"`
	}{
		Name:   f.name,
		Values: f.values,
	})
}
