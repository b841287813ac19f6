package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the default locations.
const FileName = ".jscheck.yaml"

// FileConfig represents .jscheck.yaml. Nil fields were not set in the file.
type FileConfig struct {
	Format  *string `yaml:"format"`
	Jobs    *int    `yaml:"jobs"`
	Theme   *string `yaml:"theme"`
	NoColor *bool   `yaml:"no_color"`
	Debug   *bool   `yaml:"debug"`
	// Exclude lists files and directories, relative to the repository root,
	// that directory arguments and --modified never expand to.
	Exclude []string `yaml:"exclude"`
}

// LoadFile reads the config file at path. An empty path searches the default
// locations and returns an empty FileConfig and "" when none exists.
func LoadFile(path string) (*FileConfig, string, error) {
	explicit := path != ""
	if !explicit {
		path = findConfigPath()
		if path == "" {
			return &FileConfig{}, "", nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return &FileConfig{}, "", nil
		}
		return nil, path, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := parse(data)
	if err != nil {
		return nil, path, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, path, nil
}

func parse(data []byte) (*FileConfig, error) {
	var cfg FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &cfg, nil
}

// findConfigPath tries to find the .jscheck.yaml configuration file.
// It checks local directory first, then XDG UserConfigDir (if valid).
func findConfigPath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}

	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, "jscheck", FileName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}
