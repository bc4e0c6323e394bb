package fsio

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// FS defines the filesystem operations the scanner depends on.
type FS interface {
	Walk(root string, fn fs.WalkDirFunc) error
	ReadFile(path string) ([]byte, error)
	Stat(path string) (os.FileInfo, error)
}

// OSFS reads the real filesystem.
type OSFS struct{}

// NewFS returns the default OS-backed filesystem.
func NewFS() FS {
	return OSFS{}
}

// Walk traverses the tree rooted at root in lexical per-directory order.
func (OSFS) Walk(root string, fn fs.WalkDirFunc) error {
	return filepath.WalkDir(root, fn)
}

// ReadFile returns the full contents of the file at path, following symlinks.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Stat resolves symlinks and returns file metadata.
func (OSFS) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// Clock supplies timestamps for report headers and default output names.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// NewClock returns the default wall-clock source.
func NewClock() Clock {
	return SystemClock{}
}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
