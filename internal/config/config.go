// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//

// Package config loads the optional .pioneer/project.yaml project file
// that controls indexing behavior (ignore patterns, worker count; a
// batch_target field is parsed but not used by indexing). Unlike the index file itself (.pioneer.json), this config is
// optional: indexing runs fine with nothing but built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	perr "github.com/BiradarSiddhant02/pioneer/internal/errors"
	"gopkg.in/yaml.v3"
)

const (
	configVersion = "1"
	configDirName = ".pioneer"
	configFile    = "project.yaml"
)

// Config is the .pioneer/project.yaml schema.
type Config struct {
	Version string         `yaml:"version"`
	Index   IndexingConfig `yaml:"indexing"`
}

// IndexingConfig controls one indexing run's discovery and parse behavior.
type IndexingConfig struct {
	Ignore      []string `yaml:"ignore,omitempty"`       // extra directory names to prune
	Workers     int      `yaml:"workers,omitempty"`       // parse worker count; 0 selects runtime.NumCPU()
	BatchTarget int      `yaml:"batch_target,omitempty"` // parsed but not read by indexing; populate batches always come from indexer.BatchSize
}

// Default returns a config with the project's built-in defaults: no extra
// ignore patterns, auto-detected workers, auto-sized batches.
func Default() *Config {
	return &Config{Version: configVersion}
}

// Path returns <dir>/.pioneer/project.yaml.
func Path(dir string) string {
	return filepath.Join(dir, configDirName, configFile)
}

// Load reads path, or the default location under dir if path is empty. A
// missing file at the default location is not an error: Load returns
// Default() silently, since the config is optional (spec §2.1).
func Load(dir, path string) (*Config, error) {
	explicit := path != ""
	if path == "" {
		path = Path(dir)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return nil, perr.IOError(fmt.Sprintf("cannot read configuration file %s", path), err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, perr.InternalError(
			"invalid configuration format",
			fmt.Sprintf("%s contains invalid YAML", path),
			err,
		)
	}
	if cfg.Version == "" {
		cfg.Version = configVersion
	}
	return &cfg, nil
}

// Save writes cfg to path as YAML, creating the containing directory if
// needed.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return perr.InternalError("cannot encode configuration", "YAML marshaling failed", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return perr.IOError(fmt.Sprintf("cannot create directory %s", filepath.Dir(path)), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return perr.IOError(fmt.Sprintf("cannot write configuration file %s", path), err)
	}
	return nil
}
