/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"sort"
	"testing"
	"time"

	"bennypowers.dev/vbo/internal/mapfs"
	"bennypowers.dev/vbo/testutil"
)

func TestLoad_SimpleYAML(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/simple", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config, got nil")
	}

	if cfg.ConvertCoordinates == nil || *cfg.ConvertCoordinates {
		t.Errorf("expected convertCoordinates false, got %v", cfg.ConvertCoordinates)
	}
	if !cfg.RawData {
		t.Error("expected rawData true")
	}
	if cfg.Timezone != "UTC" {
		t.Errorf("expected timezone 'UTC', got %q", cfg.Timezone)
	}
	if cfg.Format != "yaml" {
		t.Errorf("expected format 'yaml', got %q", cfg.Format)
	}
	if len(cfg.Files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(cfg.Files))
	}
	if cfg.Files[0].Path != "./laps/session.vbo" {
		t.Errorf("expected path './laps/session.vbo', got %q", cfg.Files[0].Path)
	}
	if cfg.Files[1].RawData == nil || *cfg.Files[1].RawData {
		t.Errorf("expected per-file rawData false, got %v", cfg.Files[1].RawData)
	}

	loc, err := cfg.Location()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc != time.UTC {
		t.Errorf("expected UTC, got %v", loc)
	}
}

func TestLoad_JSONWithComments(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/jsonc", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config, got nil")
	}

	if cfg.Timezone != "Europe/London" {
		t.Errorf("expected timezone 'Europe/London', got %q", cfg.Timezone)
	}
	if len(cfg.Files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(cfg.Files))
	}
	if cfg.Files[0].Path != "./session.vbo" {
		t.Errorf("expected string form path './session.vbo', got %q", cfg.Files[0].Path)
	}
	if cfg.Files[1].Path != "./other.vbo" {
		t.Errorf("expected object form path './other.vbo', got %q", cfg.Files[1].Path)
	}
}

func TestLoad_NoConfig(t *testing.T) {
	cfg, err := Load(mapfs.New(), "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != nil {
		t.Errorf("expected nil config, got %+v", cfg)
	}
	if LoadOrDefault(mapfs.New(), "/project") == nil {
		t.Error("expected default config")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/vbo.yaml", "files: [unterminated", 0644)

	if _, err := Load(mfs, "/project"); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
	if cfg := LoadOrDefault(mfs, "/project"); cfg.RawData || cfg.ConvertCoordinates != nil {
		t.Errorf("expected defaults on invalid config, got %+v", cfg)
	}
}

func TestOptionsForFile(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/simple", "/project")
	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	global := cfg.OptionsForFile("./laps/session.vbo")
	if !global.RawData {
		t.Error("expected global rawData true")
	}
	if global.ConvertCoordinates == nil || *global.ConvertCoordinates {
		t.Error("expected global convertCoordinates false")
	}
	if global.Location != time.UTC {
		t.Errorf("expected UTC location, got %v", global.Location)
	}

	override := cfg.OptionsForFile("./laps/raw.vbo")
	if override.RawData {
		t.Error("expected per-file rawData override false")
	}
	if override.ConvertCoordinates == nil || !*override.ConvertCoordinates {
		t.Error("expected per-file convertCoordinates override true")
	}
}

func TestLocation_Invalid(t *testing.T) {
	cfg := &Config{Timezone: "Not/AZone"}
	if _, err := cfg.Location(); err == nil {
		t.Fatal("expected error for unknown timezone")
	}
	if opts := cfg.OptionsForFile("x.vbo"); opts.Location != nil {
		t.Errorf("expected nil location for invalid timezone, got %v", opts.Location)
	}
}

func TestExpandFiles(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/globs", "/project")
	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	files, err := cfg.ExpandFiles(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sort.Strings(files)

	expected := []string{
		"/project/sessions/2023/day1/run1.vbo",
		"/project/sessions/2023/run2.vbo",
		"/project/single.vbo",
	}
	if len(files) != len(expected) {
		t.Fatalf("expected %d files, got %d: %v", len(expected), len(files), files)
	}
	for i := range expected {
		if files[i] != expected[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], expected[i])
		}
	}
}

func TestOptionsForFile_GlobOverrides(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/vbo.yaml", `
rawData: false
files:
  - sessions/**/*.vbo
  - path: sessions/raw/*.vbo
    rawData: true
  - path: sessions/raw/keep.vbo
    rawData: false
`, 0644)
	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		path string
		raw  bool
	}{
		{"/project/sessions/day1/run.vbo", false},
		{"/project/sessions/raw/run.vbo", true},
		{"sessions/raw/run.vbo", true},
		{"/project/sessions/raw/keep.vbo", false},
		{"/elsewhere/sessions/raw/run.vbo", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := cfg.OptionsForFile(tt.path).RawData; got != tt.raw {
				t.Errorf("expected rawData %v, got %v", tt.raw, got)
			}
		})
	}
}

func TestExpandFiles_Deduplicates(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/laps/a.vbo", "", 0644)
	mfs.AddFile("/project/laps/b.vbo", "", 0644)
	mfs.AddFile("/project/laps/notes.txt", "", 0644)

	cfg := &Config{Files: []FileSpec{
		{Path: "laps/b.vbo"},
		{Path: "laps/*.vbo"},
	}}
	files, err := cfg.ExpandFiles(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{"/project/laps/b.vbo", "/project/laps/a.vbo"}
	if len(files) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, files)
	}
	for i := range expected {
		if files[i] != expected[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], expected[i])
		}
	}
}
