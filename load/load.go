/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load provides a high-level API for loading VBO logs from disk or over HTTP.
package load

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"bennypowers.dev/vbo/config"
	"bennypowers.dev/vbo/fs"
	"bennypowers.dev/vbo/parser"
	"bennypowers.dev/vbo/record"
)

// ErrRemoteDisabled indicates a URL was given but no Fetcher is configured.
var ErrRemoteDisabled = errors.New("remote logs require a fetcher")

// Options configures how logs are loaded.
type Options struct {
	// Root is the directory local paths and the config file are resolved against.
	// Defaults to the working directory.
	Root string

	// FS is the filesystem to use. Defaults to OS filesystem if nil.
	FS fs.FileSystem

	// Config replaces config discovery. Nil loads .config/vbo.* from Root.
	Config *config.Config

	// Parser replaces the parser options derived from Config when set.
	Parser *parser.Options

	// Fetcher enables http:// and https:// specs. Nil means local files only.
	Fetcher Fetcher

	// FetchTimeout bounds a single fetch. Defaults to DefaultTimeout when zero.
	FetchTimeout time.Duration
}

// IsRemote reports whether spec is an http or https URL.
func IsRemote(spec string) bool {
	return strings.HasPrefix(spec, "http://") || strings.HasPrefix(spec, "https://")
}

// Load reads and parses the log that spec names.
//
// The spec can be:
//   - Local file path: "session.vbo" or "/path/to/session.vbo"
//   - URL: "https://example.com/logs/session.vbo" (requires Options.Fetcher)
//
// Per-file settings from the config apply to spec as written.
func Load(ctx context.Context, spec string, opts Options) (*record.File, error) {
	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}

	root := opts.Root
	if root == "" {
		root = "."
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.LoadOrDefault(filesystem, root)
	}

	parseOpts := cfg.OptionsForFile(spec)
	if opts.Parser != nil {
		parseOpts = *opts.Parser
	}

	content, err := resolveContent(ctx, spec, root, filesystem, opts)
	if err != nil {
		return nil, err
	}

	file, err := parser.Parse(content, parseOpts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", spec, err)
	}
	return file, nil
}

// resolveContent returns the bytes of a local file or remote log.
func resolveContent(ctx context.Context, spec, root string, filesystem fs.FileSystem, opts Options) ([]byte, error) {
	if IsRemote(spec) {
		return fetchRemote(ctx, spec, opts)
	}

	path := spec
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	content, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return content, nil
}

func fetchRemote(ctx context.Context, url string, opts Options) ([]byte, error) {
	if opts.Fetcher == nil {
		return nil, fmt.Errorf("%s: %w", url, ErrRemoteDisabled)
	}

	timeout := opts.FetchTimeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return opts.Fetcher.Fetch(ctx, url)
}
