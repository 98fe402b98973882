// Package datadir models the layered data directories lexstyle reads
// configuration from.
//
// Four locations are visited in a fixed order, from least to most
// specific: system data, user data, system non-packaged data, user
// non-packaged data. Callers that merge results across layers rely on
// this ordering so that later (more local) layers override earlier ones.
package datadir

import (
	"os"
	"path/filepath"
)

// Kind identifies one of the four standard data directory layers.
type Kind uint8

const (
	// SystemData is packaged system-wide data.
	SystemData Kind = iota
	// UserData is packaged per-user data.
	UserData
	// SystemNonPackaged is system-wide data installed outside package management.
	SystemNonPackaged
	// UserNonPackaged is per-user data installed outside package management.
	UserNonPackaged
)

// String returns a human-readable name for the layer.
func (k Kind) String() string {
	switch k {
	case SystemData:
		return "system"
	case UserData:
		return "user"
	case SystemNonPackaged:
		return "system-nonpackaged"
	case UserNonPackaged:
		return "user-nonpackaged"
	default:
		return "unknown"
	}
}

// Environment variables that override the default root of each layer.
// Packagers and tests redirect layers through these.
const (
	EnvSystemData            = "LEXSTYLE_SYSTEM_DATA"
	EnvUserData              = "LEXSTYLE_USER_DATA"
	EnvSystemNonPackagedData = "LEXSTYLE_SYSTEM_NONPACKAGED_DATA"
	EnvUserNonPackagedData   = "LEXSTYLE_USER_NONPACKAGED_DATA"
)

// Dir is a single resolved data directory layer.
type Dir struct {
	// Kind identifies which of the four layers this is.
	Kind Kind

	// Path is the absolute root of the layer.
	Path string
}

// Dirs returns the four standard data directories in override order
// (least specific first). Layers whose root cannot be resolved are
// still returned with an empty Path; visitors treat them as absent.
func Dirs() []Dir {
	return []Dir{
		{Kind: SystemData, Path: resolve(EnvSystemData, systemDataDir)},
		{Kind: UserData, Path: resolve(EnvUserData, userDataDir)},
		{Kind: SystemNonPackaged, Path: resolve(EnvSystemNonPackagedData, systemNonPackagedDir)},
		{Kind: UserNonPackaged, Path: resolve(EnvUserNonPackagedData, userNonPackagedDir)},
	}
}

// ForEach invokes fn once per layer, in override order. It performs no
// aggregation; merge semantics belong to the caller.
func ForEach(fn func(Dir)) {
	for _, d := range Dirs() {
		fn(d)
	}
}

// resolve returns the env override if set, otherwise the fallback.
func resolve(env string, fallback func() string) string {
	if p := os.Getenv(env); p != "" {
		return p
	}
	return fallback()
}

func systemDataDir() string {
	return "/usr/share"
}

func systemNonPackagedDir() string {
	return "/usr/local/share"
}

// userDataDir follows the XDG convention for per-user data.
func userDataDir() string {
	if p := os.Getenv("XDG_DATA_HOME"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share")
}

func userNonPackagedDir() string {
	base := userDataDir()
	if base == "" {
		return ""
	}
	return filepath.Join(base, "non-packaged")
}
