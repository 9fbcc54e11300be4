// ABOUTME: Viewer settings loading with global + project config merge
// ABOUTME: YAML-based configuration; project values override global values

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds the merged viewer configuration.
type Settings struct {
	// Theme names a builtin theme or a JSON file under ThemesDir.
	Theme string `yaml:"theme,omitempty"`

	// ZoomMargin is the cell gap kept around the magnified overlay.
	// Zero means the widget default; negative values are rejected.
	ZoomMargin int `yaml:"zoom_margin,omitempty"`

	// ReplaceImage controls whether a completed zoom cycle adopts the
	// magnified source inline. Nil means the widget default (true).
	ReplaceImage *bool `yaml:"replace_image,omitempty"`

	// RespectMaxDimension suppresses zoom for images already rendered
	// at native size.
	RespectMaxDimension bool `yaml:"respect_max_dimension,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level,omitempty"`
}

// Load reads and merges global and project-local settings.
// Project settings override global settings.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(global, project)
	if err := merged.validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// loadFile reads a Settings from a YAML file. Returns zero Settings if file
// does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays project settings onto global settings.
// Non-zero project values override global values.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.Theme != "" {
		result.Theme = project.Theme
	}
	if project.ZoomMargin != 0 {
		result.ZoomMargin = project.ZoomMargin
	}
	if project.ReplaceImage != nil {
		result.ReplaceImage = project.ReplaceImage
	}
	if project.RespectMaxDimension {
		result.RespectMaxDimension = true
	}
	if project.LogLevel != "" {
		result.LogLevel = project.LogLevel
	}

	return &result
}

// validate rejects values the widgets cannot honor.
func (s *Settings) validate() error {
	if s.ZoomMargin < 0 {
		return fmt.Errorf("zoom_margin must be >= 0, got %d", s.ZoomMargin)
	}
	switch s.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", s.LogLevel)
	}
	return nil
}
