package java

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("unknown unit format")

// Unit is one source file: its classes in declaration order and optionally
// the source text the spans point into.
type Unit struct {
	File    string       `json:"file,omitempty" yaml:"file,omitempty"`
	Source  string       `json:"source,omitempty" yaml:"source,omitempty"`
	Classes []ClassModel `json:"classes" yaml:"classes"`
}

// IsUnitFile reports whether path has an extension Load understands.
func IsUnitFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// Load reads a unit from a .json, .yaml or .yml file. An empty File field is
// set to path.
func Load(path string) (*Unit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read unit: %w", err)
	}
	u, err := Decode(filepath.Ext(path), data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if u.File == "" {
		u.File = path
	}
	return u, nil
}

// Decode decodes a unit in the format named by ext.
func Decode(ext string, data []byte) (*Unit, error) {
	u := &Unit{}
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(u); err != nil {
			return nil, fmt.Errorf("decode json unit: %w", err)
		}
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(u); err != nil {
			return nil, fmt.Errorf("decode yaml unit: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	return u, nil
}

// FindClass returns the class with the qualified or simple name, or nil.
func (u *Unit) FindClass(name string) *ClassModel {
	for i := range u.Classes {
		if u.Classes[i].Name == name {
			return &u.Classes[i]
		}
	}
	for i := range u.Classes {
		if u.Classes[i].SimpleName() == name {
			return &u.Classes[i]
		}
	}
	return nil
}
