package fsio

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"
)

func TestOSFSReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.java")
	if err := os.WriteFile(path, []byte("class Sample {}\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	fsys := NewFS()

	data, err := fsys.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "class Sample {}\n" {
		t.Errorf("unexpected contents: %q", string(data))
	}

	if _, err := fsys.ReadFile(filepath.Join(dir, "missing.java")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestOSFSStat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "build.gradle")
	if err := os.WriteFile(path, []byte("plugins {}\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	fsys := NewFS()

	info, err := fsys.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.IsDir() {
		t.Error("expected a regular file")
	}

	if _, err := fsys.Stat(filepath.Join(dir, "nope")); err == nil {
		t.Error("expected error for missing path")
	}
}

func TestOSFSWalkVisitsFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.java", "b.kt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}
	}

	fsys := NewFS()

	var visited []string
	err := fsys.Walk(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			visited = append(visited, filepath.Base(path))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	sort.Strings(visited)
	if len(visited) != 2 || visited[0] != "a.java" || visited[1] != "b.kt" {
		t.Errorf("unexpected walk results: %v", visited)
	}
}

func TestSystemClockNow(t *testing.T) {
	clock := NewClock()

	before := time.Now().Add(-time.Minute)
	got := clock.Now()
	after := time.Now().Add(time.Minute)

	if got.Before(before) || got.After(after) {
		t.Errorf("Now() = %v, expected a current timestamp", got)
	}
}
