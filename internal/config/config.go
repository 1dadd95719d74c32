// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles cdpgen project configuration.
package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// DefaultFile is the config file name looked up in the working directory.
const DefaultFile = "cdpgen.yaml"

// Config represents the cdpgen.yaml generator configuration file. Command
// line flags override any value set here.
type Config struct {
	Version int `yaml:"version"`
	// Package is the Python package path emitted into import statements.
	Package string `yaml:"package,omitempty"`
	// Output is the destination directory for generated modules.
	Output string `yaml:"output,omitempty"`
	// Domains are the root domains to generate, in addition to the
	// mandatory set.
	Domains []string `yaml:"domains,omitempty"`
	// Mandatory overrides the built-in always-included domain set.
	Mandatory []string `yaml:"mandatory,omitempty"`
	// Ref pins the protocol version label instead of resolving the latest.
	Ref string `yaml:"ref,omitempty"`
}

// Default returns a Config with the generator defaults filled in.
func Default() *Config {
	return &Config{
		Version:   CurrentConfigVersion,
		Package:   "cdp.devtools",
		Output:    "devtools",
		Mandatory: []string{"Target", "Inspector"},
	}
}

// Load reads a Config from a file path. Unset fields are filled from
// Default.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	cfg := Config{Version: CurrentConfigVersion}
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	def := Default()
	if cfg.Package == "" {
		cfg.Package = def.Package
	}
	if cfg.Output == "" {
		cfg.Output = def.Output
	}
	if cfg.Mandatory == nil {
		cfg.Mandatory = def.Mandatory
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if c.Package == "" {
		return errors.New("package must not be empty")
	}
	if c.Output == "" {
		return errors.New("output must not be empty")
	}
	return nil
}
