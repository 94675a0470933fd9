// Package xdg locates testprune's directories under the XDG base directory layout.
package xdg

import (
	"os"
	"path/filepath"

	adrg "github.com/adrg/xdg"
)

const (
	appName = "testprune"

	xdgConfigHomeEnvVar       = "XDG_CONFIG_HOME"
	testpruneConfigHomeEnvVar = "TESTPRUNE_XDG_CONFIG_HOME"
)

// ConfigDir returns the testprune config directory, e.g. ~/.config/testprune.
// TESTPRUNE_XDG_CONFIG_HOME takes precedence over XDG_CONFIG_HOME; without either the platform default is used.
// The directory is not created.
func ConfigDir() string {
	return filepath.Join(configHome(), appName)
}

func configHome() string {
	if dir := os.Getenv(testpruneConfigHomeEnvVar); dir != "" {
		return dir
	}
	if dir := os.Getenv(xdgConfigHomeEnvVar); dir != "" {
		return dir
	}
	// adrg/xdg resolves its variables once at init; refresh them so HOME changes are honored.
	adrg.Reload()
	return adrg.ConfigHome
}
