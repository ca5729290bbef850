package config

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/spf13/afero"
)

// Initialize writes the default configuration into dir. It refuses to
// clobber an existing file.
func Initialize(fsys afero.Fs, dir string, logger *log.Logger) (*Configuration, error) {
	path := filepath.Join(dir, ConfigurationName)

	if exists, err := afero.Exists(fsys, path); err != nil {
		return nil, err
	} else if exists {
		return nil, fmt.Errorf("refusing to overwrite %s", path)
	}

	if err := afero.WriteFile(fsys, path, defaultConfigData, 0644); err != nil {
		return nil, err
	}
	logger.Printf("wrote %s", path)

	return Load(fsys, dir)
}
