/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for vbo tooling.
package config

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/vbo/parser"
)

// Config represents the vbo configuration file.
type Config struct {
	// ConvertCoordinates converts lat/long to decimal degrees. Nil means true.
	ConvertCoordinates *bool `yaml:"convertCoordinates" json:"convertCoordinates"`

	// RawData keeps original tokens instead of decoded numbers.
	RawData bool `yaml:"rawData" json:"rawData"`

	// Timezone is the IANA zone creation dates are read in (e.g. "Europe/London").
	// Empty means the local zone.
	Timezone string `yaml:"timezone" json:"timezone"`

	// Format is the default output format for the convert command.
	Format string `yaml:"format" json:"format"`

	// Files specifies VBO files to load (paths or globs).
	Files []FileSpec `yaml:"files" json:"files"`

	// root is the directory the config was loaded from.
	root string
}

// FileSpec represents a VBO file specification.
// It can be specified as a simple string path or as an object with overrides.
type FileSpec struct {
	// Path is the file path (supports ** globs). Overrides apply to
	// every file the pattern matches.
	Path string `yaml:"path" json:"path"`

	// RawData overrides the global raw data setting for this file.
	RawData *bool `yaml:"rawData" json:"rawData"`

	// ConvertCoordinates overrides the global coordinate conversion for this file.
	ConvertCoordinates *bool `yaml:"convertCoordinates" json:"convertCoordinates"`
}

// UnmarshalYAML handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		f.Path = node.Value
		return nil
	}

	type rawFileSpec FileSpec
	return node.Decode((*rawFileSpec)(f))
}

// UnmarshalJSON handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Path = s
		return nil
	}

	type rawFileSpec FileSpec
	return json.Unmarshal(data, (*rawFileSpec)(f))
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{}
}

// Location returns the configured timezone.
// An empty Timezone yields nil, which the parser reads as time.Local.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return nil, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// OptionsForFile returns parser.Options with configuration applied.
// File-level overrides take precedence over global config. Every FileSpec
// whose path or glob matches applies, in order, so later entries win.
// An invalid Timezone is ignored here; call Location to validate it.
func (c *Config) OptionsForFile(path string) parser.Options {
	opts := parser.Options{
		ConvertCoordinates: c.ConvertCoordinates,
		RawData:            c.RawData,
	}
	if loc, err := c.Location(); err == nil {
		opts.Location = loc
	}

	for _, spec := range c.Files {
		if spec.matches(c.root, path) {
			if spec.RawData != nil {
				opts.RawData = *spec.RawData
			}
			if spec.ConvertCoordinates != nil {
				opts.ConvertCoordinates = spec.ConvertCoordinates
			}
		}
	}

	return opts
}

// FilePaths returns the list of file paths from all FileSpecs.
func (c *Config) FilePaths() []string {
	paths := make([]string, 0, len(c.Files))
	for _, spec := range c.Files {
		paths = append(paths, spec.Path)
	}
	return paths
}
