package config

import (
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"

	"github.com/mansrc/mankit/core/host"
)

// Load reads and validates the configuration from the directory.
func Load(fsys afero.Fs, path string) (*Configuration, error) {
	// If given the path to a mankit.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}

	contents, err := afero.ReadFile(fsys, filepath.Join(path, ConfigurationName))
	if err != nil {
		return nil, err
	}

	out := Default()
	if err := yaml.UnmarshalStrict(contents, out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// ForHost resolves the configuration a kit function should run with: the
// directory named by $MANKIT_CONFIG, then the working directory, then
// the built-in defaults. Kit functions are shell conveniences; a missing
// or broken config file falls back rather than failing the call.
func ForHost(h host.Host) *Configuration {
	dirs := []string{}
	if dir := h.Getenv(EnvConfigDir); dir != "" {
		dirs = append(dirs, dir)
	}
	if wd, err := h.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}

	for _, dir := range dirs {
		if cfg, err := Load(h.FS(), dir); err == nil {
			return cfg
		}
	}
	return Default()
}
