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
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	verbose bool

	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B35")).
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D")).
			Italic(true)
)

const banner = `
 __                     .___.__          _____  .__
|  |__  __ __  ____   __| _/|  |   ____ _/ ____\_|  |
|  |  \|  |  \/    \ / __ | |  | _/ __ \\   __\/ __ |
|   Y  \  |  /   |  / /_/ | |  |_\  ___/ |  | / /_/ |
|___|  /____/|___|  \____ | |____/\___  >|__| \____ |
     \/           \/     \/           \/            \/`

// skipBanner lists command names (or parent+child) that should NOT print the banner.
var skipBanner = map[string]bool{
	"version":      true,
	"config get":   true,
	"config set":   true,
	"config reset": true,
	"help":         true,
	"completion":   true,
}

func shouldSkipBanner(cmd *cobra.Command) bool {
	// Skip if --help/-h flag was set
	if cmd.Flags().Changed("help") {
		return true
	}
	// Skip if --json flag was set (prevents banner from corrupting JSON output)
	if f := cmd.Flags().Lookup("json"); f != nil && f.Changed {
		return true
	}
	// Build command path like "config get" (stop at root)
	parts := []string{}
	for c := cmd; c != nil && c.Parent() != nil; c = c.Parent() {
		parts = append([]string{c.Name()}, parts...)
	}
	path := strings.Join(parts, " ")
	return skipBanner[path]
}

var rootCmd = &cobra.Command{
	Use:   "bundlectl",
	Short: "A code-splitting bundle graph builder",
	Long: bannerStyle.Render(banner) + "\n" + subtitleStyle.Render("  Turn an asset graph into a deduplicated, size-bounded bundle graph") + `

bundlectl takes a graph of assets (pages, scripts, stylesheets) and their
dependencies and produces a bundle graph: one bundle per entry, split at
type boundaries and async import points, with shared code factored out and
folded back in when it's too small to be worth a separate request.

Available Commands:
  bundle      Run the bundler over an asset graph and print the result
  graph       Inspect an asset graph or a built-in fixture
  config      View and manage bundlectl configuration
  version     Print CLI version information

Getting Started:
  bundlectl graph show                 Inspect the built-in reference fixture
  bundlectl bundle                     Bundle the reference fixture with default limits
  bundlectl bundle --min-size 11       Raise the inlining threshold

Configuration:
  Config file: ~/.bundlectl/config.yaml`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if !shouldSkipBanner(cmd) {
			fmt.Println(bannerStyle.Render(banner))
			fmt.Println(subtitleStyle.Render("  Turn an asset graph into a deduplicated, size-bounded bundle graph"))
			fmt.Println()
		}
	},
}

func Execute() {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, lipgloss.NewStyle().Foreground(lipgloss.Color("#DC3545")).Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}
