/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil provides testing utilities for vbo.
package testutil

import (
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"bennypowers.dev/vbo/internal/mapfs"
)

// updateGolden enables updating golden files with actual output when -update flag is set.
var updateGolden = flag.Bool("update", false, "update golden files with actual output")

// candidates lists where the repository testdata directory may be relative
// to the package under test: its own testdata, then the module root's.
func candidates(rel string) []string {
	paths := []string{filepath.Join("testdata", rel)}
	if root, ok := moduleRoot(); ok {
		paths = append(paths, filepath.Join(root, "testdata", rel))
	}
	return paths
}

// moduleRoot walks up from the working directory to the nearest go.mod.
func moduleRoot() (string, bool) {
	dir, err := os.Getwd()
	if err != nil {
		return "", false
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// NewFixtureFS loads every file under testdata/<fixtureDir> into a
// MapFileSystem, mapped below rootPath.
func NewFixtureFS(t *testing.T, fixtureDir string, rootPath string) *mapfs.MapFileSystem {
	t.Helper()

	var fixturePath string
	for _, p := range candidates(fixtureDir) {
		if _, err := os.Stat(p); err == nil {
			fixturePath = p
			break
		}
	}
	if fixturePath == "" {
		t.Fatalf("Could not find fixtures at %s (tried all paths)", fixtureDir)
	}

	mfs := mapfs.New()
	err := filepath.WalkDir(fixturePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(fixturePath, path)
		if err != nil {
			return err
		}
		mfs.AddBytes(filepath.ToSlash(filepath.Join(rootPath, relPath)), content, 0644)
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to load fixtures from %s: %v", fixtureDir, err)
	}

	return mfs
}

// LoadFixtureFile reads a single fixture file and returns its content.
func LoadFixtureFile(t *testing.T, fixturePath string) []byte {
	t.Helper()

	for _, p := range candidates(fixturePath) {
		content, err := os.ReadFile(p)
		if err == nil {
			return content
		}
	}
	t.Fatalf("Failed to read fixture %s (tried all paths)", fixturePath)
	return nil
}

// LoadFixture reads a single fixture file as text.
func LoadFixture(t *testing.T, fixturePath string) string {
	t.Helper()
	return string(LoadFixtureFile(t, fixturePath))
}

// UpdateGoldenFile writes actual output to the golden file when -update flag is set.
func UpdateGoldenFile(t *testing.T, goldenPath string, actual []byte) {
	t.Helper()
	if !*updateGolden {
		return
	}

	targetPath := candidates(goldenPath)[0]
	for _, p := range candidates(goldenPath) {
		if _, err := os.Stat(filepath.Dir(p)); err == nil {
			targetPath = p
			break
		}
	}

	if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
		t.Fatalf("Failed to create directory for golden file %s: %v", goldenPath, err)
	}
	if err := os.WriteFile(targetPath, actual, 0644); err != nil {
		t.Fatalf("Failed to write golden file %s: %v", goldenPath, err)
	}
	t.Logf("Updated golden file: %s", targetPath)
}

// CompareGolden fails the test if actual differs from the golden file.
// With -update, the golden file is rewritten first.
func CompareGolden(t *testing.T, goldenPath string, actual []byte) {
	t.Helper()
	UpdateGoldenFile(t, goldenPath, actual)

	expected := LoadFixtureFile(t, goldenPath)
	if string(expected) != string(actual) {
		t.Errorf("output does not match %s\n--- want ---\n%s\n--- got ---\n%s", goldenPath, expected, actual)
	}
}
