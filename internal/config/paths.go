// ABOUTME: Standard filesystem paths for zoomview configuration
// ABOUTME: Resolves ~/.zoomview/ for global and .zoomview/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".zoomview"
	projectDirName = ".zoomview"
)

// GlobalDir returns the user-global config directory (~/.zoomview/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory (.zoomview/ in root).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), "config.yaml")
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), "config.yaml")
}

// ThemesDir returns the directory searched for custom theme files.
func ThemesDir() string {
	return filepath.Join(GlobalDir(), "themes")
}

// EnsureDir creates a directory and all parents if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}
