// Package kv provides the string key/value slots toolbar state is persisted in.
package kv

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Surface is a flat string key/value store.
type Surface interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Memory is an in-process Surface.
type Memory map[string]string

func NewMemory() Memory { return Memory{} }

func (m Memory) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m Memory) Set(key, value string) error {
	m[key] = value
	return nil
}

// File is a Surface backed by a JSON object on disk. Every Set rewrites the
// file; there are only a handful of slots.
type File struct {
	path  string
	slots map[string]string
}

// OpenFile loads path. A missing file starts empty and so does a file that is
// not a JSON object of strings; only real I/O errors are returned.
func OpenFile(path string) (*File, error) {
	f := &File{path: path, slots: map[string]string{}}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}
	var slots map[string]string
	if err := json.Unmarshal(data, &slots); err == nil && slots != nil {
		f.slots = slots
	}
	return f, nil
}

func (f *File) Path() string { return f.path }

func (f *File) Get(key string) (string, bool) {
	v, ok := f.slots[key]
	return v, ok
}

func (f *File) Set(key, value string) error {
	if cur, ok := f.slots[key]; ok && cur == value {
		return nil
	}
	f.slots[key] = value
	return f.flush()
}

// Keys returns the stored keys in sorted order.
func (f *File) Keys() []string {
	keys := make([]string, 0, len(f.slots))
	for k := range f.slots {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (f *File) flush() error {
	if dir := filepath.Dir(f.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create state dir: %w", err)
		}
	}
	data, err := json.MarshalIndent(f.slots, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}
