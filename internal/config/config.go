// Copyright 2024-2026 Firefly Software Solutions Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config holds bundlectl's on-disk settings: the operational limits
// passed to the bundler core, plus a couple of CLI conveniences.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	BundlectlDir = ".bundlectl"
	ConfigFile   = "config.yaml"
)

// ValidKeys lists every config key `bundlectl config get/set` accepts.
var ValidKeys = []string{
	"min_bundle_size",
	"parallel_request_limit",
	"verbose",
	"graph_fixture",
}

// Config is the persisted settings file. MinBundleSize and
// ParallelRequestLimit mirror bundler.Config directly; Verbose and
// GraphFixture are CLI-only conveniences that never reach the bundler core.
type Config struct {
	MinBundleSize        int    `yaml:"min_bundle_size"`
	ParallelRequestLimit int    `yaml:"parallel_request_limit"`
	Verbose              bool   `yaml:"verbose"`
	GraphFixture         string `yaml:"graph_fixture"`
}

// GetField returns the string form of a config key.
func (c *Config) GetField(key string) (string, bool) {
	switch key {
	case "min_bundle_size":
		return strconv.Itoa(c.MinBundleSize), true
	case "parallel_request_limit":
		return strconv.Itoa(c.ParallelRequestLimit), true
	case "verbose":
		return fmt.Sprintf("%v", c.Verbose), true
	case "graph_fixture":
		return c.GraphFixture, true
	default:
		return "", false
	}
}

// SetField parses and sets a config key. Invalid integers for the two
// numeric keys are rejected; everything else follows the same loose
// truthy-string convention the rest of the CLI uses for booleans.
func (c *Config) SetField(key, value string) error {
	switch key {
	case "min_bundle_size":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("min_bundle_size: %w", err)
		}
		c.MinBundleSize = n
	case "parallel_request_limit":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("parallel_request_limit: %w", err)
		}
		c.ParallelRequestLimit = n
	case "verbose":
		c.Verbose = value == "true" || value == "1" || value == "yes"
	case "graph_fixture":
		c.GraphFixture = value
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}

// Fields returns all config key-value pairs, in ValidKeys order.
func (c *Config) Fields() []KeyValue {
	out := make([]KeyValue, 0, len(ValidKeys))
	for _, k := range ValidKeys {
		v, _ := c.GetField(k)
		out = append(out, KeyValue{Key: k, Value: v})
	}
	return out
}

// KeyValue is a simple key-value pair.
type KeyValue struct {
	Key   string
	Value string
}

// DefaultConfig returns the reference settings: min_bundle_size=10,
// parallel_request_limit=3, the values spec'd throughout the bundler core.
func DefaultConfig() *Config {
	return &Config{
		MinBundleSize:        10,
		ParallelRequestLimit: 3,
		GraphFixture:         "reference",
	}
}

func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

func BundlectlHome() string {
	return filepath.Join(HomeDir(), BundlectlDir)
}

// Load reads the config file, falling back to DefaultConfig if it does not
// exist yet.
func Load() (*Config, error) {
	cfg := DefaultConfig()
	path := filepath.Join(BundlectlHome(), ConfigFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config file, creating the bundlectl home directory first.
func (c *Config) Save() error {
	dir := BundlectlHome()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, ConfigFile), data, 0644)
}
