/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	vbofs "bennypowers.dev/vbo/fs"
	"bennypowers.dev/vbo/internal/logger"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "vbo"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

type decodeFunc func(data []byte, cfg *Config) error

// configFormats lists the supported config files in priority order.
var configFormats = []struct {
	ext    string
	decode decodeFunc
}{
	{".yaml", decodeYAML},
	{".yml", decodeYAML},
	{".json", decodeJSONC},
}

func decodeYAML(data []byte, cfg *Config) error {
	return yaml.Unmarshal(data, cfg)
}

// decodeJSONC accepts comments and trailing commas.
func decodeJSONC(data []byte, cfg *Config) error {
	return json.Unmarshal(jsonc.ToJSON(data), cfg)
}

// Load reads the first of .config/vbo.{yaml,yml,json} found under rootDir.
// Returns nil if no config found (not an error).
// Relative file patterns in the config are resolved against rootDir.
func Load(filesystem vbofs.FileSystem, rootDir string) (*Config, error) {
	for _, format := range configFormats {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+format.ext)
		if !filesystem.Exists(configPath) {
			continue
		}

		data, err := filesystem.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		cfg := &Config{root: rootDir}
		if err := format.decode(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
		}
		return cfg, nil
	}

	return nil, nil
}

// LoadOrDefault returns config or defaults if not found or unreadable.
func LoadOrDefault(filesystem vbofs.FileSystem, rootDir string) *Config {
	cfg, err := Load(filesystem, rootDir)
	if err != nil {
		logger.Warn("ignoring config: %v", err)
	}
	if err != nil || cfg == nil {
		return Default()
	}
	return cfg
}

// ExpandFiles resolves Files against rootDir and returns the matching paths,
// in config order with each path listed once. Globs match regular files only;
// plain paths are returned as given, and fail later when read.
func (c *Config) ExpandFiles(filesystem vbofs.FileSystem, rootDir string) ([]string, error) {
	var result []string
	seen := make(map[string]bool)

	for _, spec := range c.Files {
		pattern := resolve(rootDir, spec.Path)

		var paths []string
		if containsGlob(pattern) {
			matches, err := glob(filesystem, pattern)
			if err != nil {
				return nil, fmt.Errorf("failed to expand %s: %w", spec.Path, err)
			}
			paths = matches
		} else {
			paths = []string{pattern}
		}

		for _, p := range paths {
			if !seen[p] {
				seen[p] = true
				result = append(result, p)
			}
		}
	}

	return result, nil
}

// matches reports whether path is selected by the spec's path or glob.
func (f FileSpec) matches(rootDir, path string) bool {
	if f.Path == path {
		return true
	}
	pattern := resolve(rootDir, f.Path)
	target := resolve(rootDir, path)
	if !containsGlob(pattern) {
		return pattern == target
	}
	ok, _ := doublestar.Match(filepath.ToSlash(pattern), filepath.ToSlash(target))
	return ok
}

func resolve(rootDir, path string) string {
	if filepath.IsAbs(path) || rootDir == "" {
		return filepath.Clean(path)
	}
	return filepath.Join(rootDir, path)
}

func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// glob walks the non-glob prefix of pattern and collects matching files.
func glob(filesystem vbofs.FileSystem, pattern string) ([]string, error) {
	base, rel := doublestar.SplitPattern(filepath.ToSlash(pattern))
	base = filepath.FromSlash(base)

	var matches []string
	err := fs.WalkDir(filesystem, base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable directories are skipped.
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		name, err := filepath.Rel(base, path)
		if err != nil {
			return nil
		}
		if ok, _ := doublestar.Match(rel, filepath.ToSlash(name)); ok {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return matches, nil
}
