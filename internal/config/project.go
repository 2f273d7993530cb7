package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectConfig is the optional `.faber.yaml` project file a directory of
// sources can carry: which targets `faberc compile` should emit by default,
// and where generated output goes. Grounded on the teacher's `funxy.yaml`
// (internal/ext/config.go): load-then-validate-then-default, found by
// walking up from a starting directory.
type ProjectConfig struct {
	Targets   []string `yaml:"targets,omitempty"`
	OutputDir string   `yaml:"output_dir,omitempty"`
}

// ProjectConfigFileName is the recognized project config filename.
const ProjectConfigFileName = ".faber.yaml"

// LoadProjectConfig reads and parses a `.faber.yaml` file.
func LoadProjectConfig(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseProjectConfig(data, path)
}

// ParseProjectConfig parses `.faber.yaml` content from bytes. path is used
// only for error messages.
func ParseProjectConfig(data []byte, path string) (*ProjectConfig, error) {
	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	return &cfg, nil
}

// FindProjectConfig searches for .faber.yaml starting at dir and walking up
// to parent directories, the way the teacher's ext.FindConfig locates
// funxy.yaml. Returns "" with a nil error if none is found.
func FindProjectConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, ProjectConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
