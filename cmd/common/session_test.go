/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package common

import (
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"

	"bennypowers.dev/vbo/internal/mapfs"
	"bennypowers.dev/vbo/testutil"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestSession_FilesFromConfig(t *testing.T) {
	resetViper(t)
	mfs := testutil.NewFixtureFS(t, "fixtures/config/globs", "/project")
	s := NewSession(mfs, "/project")

	files, err := s.Files(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 3 {
		t.Errorf("expected 3 files, got %v", files)
	}

	files, err = s.Files([]string{"a.vbo"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 1 || files[0] != "a.vbo" {
		t.Errorf("expected args to take precedence, got %v", files)
	}
}

func TestSession_NoFiles(t *testing.T) {
	resetViper(t)
	s := NewSession(mapfs.New(), "/project")

	if _, err := s.Files(nil); !errors.Is(err, ErrNoFiles) {
		t.Errorf("expected ErrNoFiles, got %v", err)
	}
}

func TestSession_OptionsOverrides(t *testing.T) {
	resetViper(t)
	mfs := testutil.NewFixtureFS(t, "fixtures/config/simple", "/project")
	s := NewSession(mfs, "/project")

	opts, err := s.Options("./laps/session.vbo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !opts.RawData {
		t.Error("expected rawData from config")
	}
	if opts.Location != time.UTC {
		t.Errorf("expected UTC from config, got %v", opts.Location)
	}

	viper.Set(KeyRaw, false)
	viper.Set(KeyConvertCoordinates, true)
	viper.Set(KeyTimezone, "America/New_York")

	opts, err = s.Options("./laps/session.vbo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.RawData {
		t.Error("expected --raw=false to override config")
	}
	if opts.ConvertCoordinates == nil || !*opts.ConvertCoordinates {
		t.Error("expected --convert-coordinates to override config")
	}
	if opts.Location == nil || opts.Location.String() != "America/New_York" {
		t.Errorf("expected America/New_York, got %v", opts.Location)
	}
}

func TestSession_InvalidTimezone(t *testing.T) {
	resetViper(t)
	s := NewSession(mapfs.New(), "/project")

	viper.Set(KeyTimezone, "Mars/Olympus_Mons")
	if _, err := s.Options("x.vbo"); err == nil {
		t.Error("expected error for invalid timezone flag")
	}

	viper.Reset()
	s.Config.Timezone = "Mars/Olympus_Mons"
	if _, err := s.Options("x.vbo"); err == nil {
		t.Error("expected error for invalid configured timezone")
	}
}

func TestSession_Parse(t *testing.T) {
	resetViper(t)
	mfs := testutil.NewFixtureFS(t, "fixtures/vbo", "/logs")
	s := NewSession(mfs, "/logs")
	viper.Set(KeyTimezone, "UTC")

	file, err := s.Parse(t.Context(), "/logs/sample.vbo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(file.Data) != 3 {
		t.Errorf("expected 3 rows, got %d", len(file.Data))
	}
	if file.Header.CreationDate.Location() != time.UTC {
		t.Errorf("expected UTC creation date, got %v", file.Header.CreationDate.Location())
	}
}
