package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// SettingsDir is the directory, relative to the working directory, holding
// the settings file.
const SettingsDir = ".metasip"

// Settings holds the defaults read from .metasip/settings.yaml. Command line
// flags override them.
type Settings struct {
	// Project is the project file used when --project is not given.
	Project string `yaml:"project"`
	// OutputDir overrides the output directory stored in the project.
	OutputDir string `yaml:"output_dir"`
	// IgnoreModules lists modules that are never generated.
	IgnoreModules []string `yaml:"ignore_modules"`
	// LatestSyntax selects the newest SIP syntax. Nil means the default.
	LatestSyntax *bool `yaml:"latest_syntax"`
	Verbose      bool  `yaml:"verbose"`
}

// LoadSettings reads .metasip/settings.yaml relative to root.
// Returns nil (not an error) if the file does not exist.
func LoadSettings(root string) (*Settings, error) {
	path := filepath.Join(root, SettingsDir, "settings.yaml")

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &s, nil
}

// IsIgnoredModule reports whether the module called name is never
// generated. Safe to call on a nil *Settings receiver.
func (s *Settings) IsIgnoredModule(name string) bool {
	if s == nil {
		return false
	}

	return slices.Contains(s.IgnoreModules, name)
}

// UseLatestSyntax returns the configured syntax choice, or def when the
// settings do not make one. Safe to call on a nil *Settings receiver.
func (s *Settings) UseLatestSyntax(def bool) bool {
	if s == nil || s.LatestSyntax == nil {
		return def
	}

	return *s.LatestSyntax
}
