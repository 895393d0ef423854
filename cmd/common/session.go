/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package common holds the state shared by the vbo subcommands.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"bennypowers.dev/vbo/config"
	"bennypowers.dev/vbo/fs"
	"bennypowers.dev/vbo/load"
	"bennypowers.dev/vbo/parser"
	"bennypowers.dev/vbo/record"
)

// Viper keys for the global flags.
const (
	KeyRaw                = "raw"
	KeyConvertCoordinates = "convert-coordinates"
	KeyTimezone           = "timezone"
	KeyLogLevel           = "log-level"
	KeyQuiet              = "quiet"
)

// ErrNoFiles is returned when neither arguments nor config name any input.
var ErrNoFiles = errors.New("no files specified and no files found in config")

// Session bundles the filesystem, config and fetcher a command works with.
type Session struct {
	FS      fs.FileSystem
	Config  *config.Config
	Fetcher load.Fetcher
	root    string
}

// NewSession loads .config/vbo.* below root, falling back to defaults.
func NewSession(filesystem fs.FileSystem, root string) *Session {
	return &Session{
		FS:      filesystem,
		Config:  config.LoadOrDefault(filesystem, root),
		Fetcher: load.NewHTTPFetcher(load.DefaultMaxSize),
		root:    root,
	}
}

// Files returns args, or the config's file list when args is empty.
func (s *Session) Files(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	files, err := s.Config.ExpandFiles(s.FS, s.root)
	if err != nil {
		return nil, fmt.Errorf("error expanding config files: %w", err)
	}
	if len(files) == 0 {
		return nil, ErrNoFiles
	}
	return files, nil
}

// Options returns parser options for path.
// Flags and VBO_* environment variables override the config file.
func (s *Session) Options(path string) (parser.Options, error) {
	opts := s.Config.OptionsForFile(path)

	if viper.IsSet(KeyRaw) {
		opts.RawData = viper.GetBool(KeyRaw)
	}
	if viper.IsSet(KeyConvertCoordinates) {
		opts.ConvertCoordinates = parser.Bool(viper.GetBool(KeyConvertCoordinates))
	}

	if tz := viper.GetString(KeyTimezone); viper.IsSet(KeyTimezone) && tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return parser.Options{}, fmt.Errorf("invalid timezone %q: %w", tz, err)
		}
		opts.Location = loc
	} else if _, err := s.Config.Location(); err != nil {
		return parser.Options{}, err
	}

	return opts, nil
}

// Parse reads and parses a local path or URL with the options that apply to it.
func (s *Session) Parse(ctx context.Context, path string) (*record.File, error) {
	opts, err := s.Options(path)
	if err != nil {
		return nil, err
	}
	return load.Load(ctx, path, load.Options{
		Root:    s.root,
		FS:      s.FS,
		Config:  s.Config,
		Parser:  &opts,
		Fetcher: s.Fetcher,
	})
}

// Quiet reports whether --quiet or VBO_QUIET is set.
func Quiet() bool {
	return viper.GetBool(KeyQuiet)
}
