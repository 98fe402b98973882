// Package loader provides configuration file loading for lexstyle.
//
// The loader package reads YAML configuration files from the layered
// data directories. A missing file is normal absence, not an error;
// malformed content is reported as a *ParseError so callers can abort
// the operation and surface the failure.
package loader

import (
	"io"
	"io/fs"
	"os"
)

// FileLoader is the interface for loaders that read from files.
type FileLoader interface {
	// LoadFrom reads configuration from a specific path.
	// Returns nil, nil if the file doesn't exist (not an error).
	LoadFrom(path string) (map[string]any, error)
}

// ReaderLoader is the interface for loaders that read from io.Reader.
type ReaderLoader interface {
	// LoadFromReader reads configuration from a reader.
	LoadFromReader(r io.Reader) (map[string]any, error)
}

// FileSystem is an abstraction for file system operations.
// This allows for easy testing with in-memory file systems.
type FileSystem interface {
	fs.FS
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
	// ReadDir reads the directory at path and returns its entries.
	ReadDir(path string) ([]fs.DirEntry, error)
	// Stat returns file info for path.
	Stat(path string) (fs.FileInfo, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// Open implements fs.FS.
func (OSFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// ReadDir reads the directory at path and returns its entries.
func (OSFS) ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path)
}

// Stat returns file info for path.
func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// DefaultFS returns the default file system (OS).
func DefaultFS() FileSystem {
	return OSFS{}
}
