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

package cmd

import (
	"fmt"
	"strings"

	"github.com/fireflyframework/bundlectl/internal/config"
	"github.com/fireflyframework/bundlectl/internal/ui"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and manage bundlectl configuration",
	Long: `View all configuration values. Use subcommands to get, set, or reset individual
keys. Configuration is stored in ~/.bundlectl/config.yaml.

Available Subcommands:
  get <key>          Get a single configuration value
  set <key> <value>  Set a configuration value
  reset              Reset all configuration to defaults

Valid configuration keys:
  min_bundle_size          Bundles smaller than this are inlined back into their sources (default: 10)
  parallel_request_limit   Max bundles a single bundle-group entry may load directly (default: 3)
  verbose                  Stored only; no command's output depends on it (default: false)
  graph_fixture            Built-in fixture used when --fixture is omitted (default: reference)

Examples:
  bundlectl config                                   Show all configuration
  bundlectl config get parallel_request_limit        Get a single value
  bundlectl config set min_bundle_size 11             Set a value
  bundlectl config reset                             Reset to defaults`,
	RunE: runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:       "get <key>",
	Short:     "Get a configuration value",
	Long:      `Prints the value of a single configuration key to stdout with no formatting.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: config.ValidKeys,
	RunE:      runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:       "set <key> <value>",
	Short:     "Set a configuration value",
	Long:      `Sets a configuration key to the specified value and saves it to ~/.bundlectl/config.yaml.`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: config.ValidKeys,
	RunE:      runConfigSet,
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset configuration to defaults",
	Long:  `Resets all configuration keys to their default values and saves the result.`,
	RunE:  runConfigReset,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configResetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigList(cmd *cobra.Command, args []string) error {
	p := ui.NewPrinter()
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	p.Header("Configuration")
	for _, kv := range cfg.Fields() {
		p.KeyValue(kv.Key, kv.Value)
	}
	p.Newline()
	p.Info(fmt.Sprintf("Config file: %s/config.yaml", config.BundlectlHome()))
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	val, ok := cfg.GetField(args[0])
	if !ok {
		return fmt.Errorf("unknown key %q — valid keys: %s", args[0], strings.Join(config.ValidKeys, ", "))
	}
	fmt.Println(val)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	p := ui.NewPrinter()
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	key, value := args[0], args[1]
	if err := cfg.SetField(key, value); err != nil {
		return err
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	p.Success(fmt.Sprintf("%s = %s", key, value))
	return nil
}

func runConfigReset(cmd *cobra.Command, args []string) error {
	p := ui.NewPrinter()
	cfg := config.DefaultConfig()
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	p.Success("Configuration reset to defaults")
	for _, kv := range cfg.Fields() {
		p.KeyValue(kv.Key, kv.Value)
	}
	return nil
}
