// Package config resolves the control stack's configuration
// directories and loads the gain profiles stored in them.
//
// Profiles are flat YAML files whose matrix-valued fields embed the
// bracketed row-major literal grammar from the matrix package. That
// grammar is the compatibility surface with existing deployments;
// everything else in this package is ordinary file plumbing.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Environment overrides for directory resolution. When set, they win
// over the user-config-dir convention.
const (
	EnvConfigDir     = "CTRLKIT_CONFIG_DIR"
	EnvLocoConfigDir = "CTRLKIT_LOCO_DIR"
)

const (
	appDirName  = "ctrlkit"
	locoDirName = "loco"
)

// PathProvider abstracts the OS lookups behind directory resolution so
// error paths are testable.
type PathProvider interface {
	UserConfigDir() (string, error)
	Getenv(key string) string
}

// DefaultPathProvider uses the real OS functions.
type DefaultPathProvider struct{}

// UserConfigDir returns the default root directory for user-specific
// configuration data.
func (DefaultPathProvider) UserConfigDir() (string, error) {
	return os.UserConfigDir()
}

// Getenv retrieves the value of the named environment variable.
func (DefaultPathProvider) Getenv(key string) string {
	return os.Getenv(key)
}

// Provider is the package-level path provider. Tests can replace it
// with SetProvider and restore it with ResetProvider.
var Provider PathProvider = DefaultPathProvider{}

// SetProvider installs a custom provider (for testing).
func SetProvider(p PathProvider) { Provider = p }

// ResetProvider restores the default provider.
func ResetProvider() { Provider = DefaultPathProvider{} }

// Dir resolves the primary configuration directory: the
// CTRLKIT_CONFIG_DIR environment variable when set, otherwise
// <user config dir>/ctrlkit.
func Dir() (string, error) {
	if dir := Provider.Getenv(EnvConfigDir); dir != "" {
		return dir, nil
	}
	base, err := Provider.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

// LocoDir resolves the locomotion configuration directory: the
// CTRLKIT_LOCO_DIR environment variable when set, otherwise the "loco"
// subdirectory of Dir.
func LocoDir() (string, error) {
	if dir := Provider.Getenv(EnvLocoConfigDir); dir != "" {
		return dir, nil
	}
	base, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, locoDirName), nil
}

// WriteStringToFile writes data to path, creating the file if needed
// and truncating any previous content.
func WriteStringToFile(path, data string) error {
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
