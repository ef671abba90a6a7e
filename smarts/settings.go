package smarts

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variable naming the SMARTS installation directory, used when
// Settings.Dir is empty. The engine hard-codes its data file names relative
// to the working directory, so runs happen inside this directory.
const EnvDir = "SMARTSPATH"

// DefaultTimeout bounds a single engine run.
const DefaultTimeout = 5 * time.Minute

// Settings carries the engine installation parameters explicitly through an
// invocation instead of relying on ambient process state.
type Settings struct {
	// Dir is the SMARTS installation directory. Empty means the SMARTSPATH
	// environment variable, or the current directory if that is unset too.
	Dir string `yaml:"dir"`

	// Executable overrides the candidate executable search (a name or path,
	// relative to Dir).
	Executable string `yaml:"executable"`

	// TimeoutSeconds bounds the engine subprocess; 0 means DefaultTimeout.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// LoadSettings reads a YAML settings file.
func LoadSettings(path string) (*Settings, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("smarts: read settings: %w", err)
	}
	var s Settings
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("smarts: parse settings %s: %w", path, err)
	}
	return &s, nil
}

// dir resolves the effective working directory for a run. Empty means the
// current directory (no chdir).
func (s *Settings) dir() string {
	if s != nil && s.Dir != "" {
		return s.Dir
	}
	return os.Getenv(EnvDir)
}

func (s *Settings) timeout() time.Duration {
	if s != nil && s.TimeoutSeconds > 0 {
		return time.Duration(s.TimeoutSeconds) * time.Second
	}
	return DefaultTimeout
}

func (s *Settings) executable() string {
	if s != nil {
		return s.Executable
	}
	return ""
}
