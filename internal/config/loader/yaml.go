package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLLoader loads configuration from YAML files.
type YAMLLoader struct {
	fs FileSystem
}

// NewYAMLLoader creates a new YAML loader backed by the OS file system.
func NewYAMLLoader() *YAMLLoader {
	return &YAMLLoader{fs: DefaultFS()}
}

// NewYAMLLoaderWithFS creates a YAML loader with a custom file system.
func NewYAMLLoaderWithFS(fs FileSystem) *YAMLLoader {
	return &YAMLLoader{fs: fs}
}

// LoadFrom reads configuration from a specific path.
// Returns nil, nil if the file doesn't exist.
func (l *YAMLLoader) LoadFrom(path string) (map[string]any, error) {
	data, err := l.read(path)
	if err != nil || data == nil {
		return nil, err
	}

	var config map[string]any
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, newParseError(path, err)
	}
	return config, nil
}

// LoadFromReader reads configuration from an io.Reader.
func (l *YAMLLoader) LoadFromReader(r io.Reader) (map[string]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var config map[string]any
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, newParseError("<reader>", err)
	}
	return config, nil
}

// LoadInto decodes the file at path into v.
// The found result is false when the file doesn't exist; that is not
// an error. Malformed content returns a *ParseError.
func (l *YAMLLoader) LoadInto(path string, v any) (found bool, err error) {
	data, err := l.read(path)
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}

	if err := yaml.Unmarshal(data, v); err != nil {
		return false, newParseError(path, err)
	}
	return true, nil
}

// read returns the file contents, or nil, nil when the file is absent.
func (l *YAMLLoader) read(path string) ([]byte, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return data, nil
}

// newParseError wraps a yaml error, pulling out line information when
// the underlying error carries it.
func newParseError(path string, err error) *ParseError {
	pe := &ParseError{
		Path:    path,
		Message: err.Error(),
		Err:     err,
	}
	var te *yaml.TypeError
	if errors.As(err, &te) && len(te.Errors) > 0 {
		pe.Message = te.Errors[0]
	}
	return pe
}

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Message describes the parse error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
