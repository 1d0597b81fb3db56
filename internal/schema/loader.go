package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads and parses a binding file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read binding file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File and applies defaults.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse binding YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// applyDefaults fills in optional values:
//   - version defaults to "1";
//   - naming defaults to map when a rename table is given, identity otherwise;
//   - match filters of a field default their name to the field.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	for i := range f.Types {
		tb := &f.Types[i]

		if tb.Naming == "" {
			tb.Naming = NamingIdentity
			if len(tb.Rename) > 0 {
				tb.Naming = NamingMap
			}
		}

		for j := range tb.Fields {
			fb := &tb.Fields[j]
			defaultMatchName(fb.Filter, fb.Name)
		}
	}
}

func defaultMatchName(def *FilterDef, name string) {
	if def == nil {
		return
	}

	if def.Match != nil && def.Match.Name == "" {
		def.Match.Name = name
	}

	defaultMatchName(def.Not, name)

	for i := range def.Any {
		defaultMatchName(&def.Any[i], name)
	}

	for i := range def.All {
		defaultMatchName(&def.All[i], name)
	}
}
