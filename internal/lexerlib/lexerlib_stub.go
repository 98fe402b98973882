//go:build !(darwin || linux || freebsd)

package lexerlib

// Library is an opened external lexer library. On platforms without
// dlopen support it can never be constructed.
type Library struct{}

// Open always fails on this platform.
func Open(path string) (*Library, error) {
	return nil, ErrUnsupported
}

// Path returns the path the library was opened from.
func (l *Library) Path() string { return "" }

// CreateLexer always fails on this platform.
func (l *Library) CreateLexer(name string) (uintptr, error) {
	return 0, ErrUnsupported
}

// Close is a no-op on this platform.
func (l *Library) Close() error { return nil }
