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
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fireflyframework/bundlectl/internal/asset"
	"github.com/fireflyframework/bundlectl/internal/bundle"
	"github.com/fireflyframework/bundlectl/internal/bundler"
	"github.com/fireflyframework/bundlectl/internal/config"
	"github.com/fireflyframework/bundlectl/internal/fixture"
	"github.com/fireflyframework/bundlectl/internal/graph"
	"github.com/fireflyframework/bundlectl/internal/ui"
	"github.com/spf13/cobra"
)

var (
	bundleFixture string
	bundleMinSize int
	bundleLimit   int
	bundleJSON    bool
	bundleWatch   bool
)

var bundleCmd = &cobra.Command{
	Use:   "bundle",
	Short: "Run the bundler over an asset graph and print the resulting bundle graph",
	Long: `Runs the five-step bundling transformation — root selection, reachability,
placement, minimum-size inlining, and parallel-request enforcement — over a
built-in fixture and prints the resulting bundle graph.

Examples:
  bundlectl bundle                                Bundle the reference fixture
  bundlectl bundle --fixture async-split          Bundle a named scenario fixture
  bundlectl bundle --min-size 11                  Raise the inlining threshold
  bundlectl bundle --json                         Emit the bundle graph as JSON
  bundlectl bundle --watch                        Open the interactive bundle explorer`,
	RunE: runBundle,
}

func init() {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	bundleCmd.Flags().StringVar(&bundleFixture, "fixture", cfg.GraphFixture, "built-in asset graph to bundle: "+fixture.Names())
	bundleCmd.Flags().IntVar(&bundleMinSize, "min-size", cfg.MinBundleSize, "minimum size a shared bundle may have before it's inlined")
	bundleCmd.Flags().IntVar(&bundleLimit, "parallel-limit", cfg.ParallelRequestLimit, "maximum bundles a single entry may load directly")
	bundleCmd.Flags().BoolVar(&bundleJSON, "json", false, "emit the bundle graph as JSON")
	bundleCmd.Flags().BoolVar(&bundleWatch, "watch", false, "open the interactive bundle explorer")
	rootCmd.AddCommand(bundleCmd)
}

func runBundle(cmd *cobra.Command, args []string) error {
	fx, err := fixture.Named(bundleFixture)
	if err != nil {
		return err
	}

	bundlerCfg := bundler.Config{MinBundleSize: bundleMinSize, ParallelRequestLimit: bundleLimit}

	if bundleWatch {
		return runBundleWatch(fx, bundlerCfg)
	}

	bg, err := bundler.Bundle(fx.Assets, fx.Entries, bundlerCfg)
	if err != nil {
		return fmt.Errorf("bundling failed: %w", err)
	}

	if bundleJSON {
		return printBundleJSON(fx.Assets, bg)
	}

	p := ui.NewPrinter()
	p.Header(fmt.Sprintf("Bundle graph — %s", bundleFixture))
	p.Newline()
	p.PrintBundles(bundleLines(fx.Assets, bg))
	p.Newline()
	p.Info(fmt.Sprintf("%d bundles, min_bundle_size=%d, parallel_request_limit=%d", len(bg.NodeIDs()), bundlerCfg.MinBundleSize, bundlerCfg.ParallelRequestLimit))
	return nil
}

func runBundleWatch(fx *fixture.Graph, cfg bundler.Config) error {
	bg, err := bundler.Bundle(fx.Assets, fx.Entries, cfg)
	if err != nil {
		return fmt.Errorf("bundling failed: %w", err)
	}

	items := make([]ui.BundleItem, 0, len(bg.NodeIDs()))
	for _, id := range bg.NodeIDs() {
		b, ok := bg.Node(id)
		if !ok {
			continue
		}
		var loads []string
		for _, n := range bg.Neighbors(id, graph.Outgoing) {
			nb, ok := bg.Node(n)
			if !ok {
				continue
			}
			loads = append(loads, bundleLabel(fx.Assets, nb))
		}
		items = append(items, ui.BundleItem{
			Label:  bundleLabel(fx.Assets, b),
			Size:   b.Size,
			Shared: b.Root == bundle.NoRoot,
			Loads:  loads,
		})
	}

	return ui.RunBundleExplorer(fmt.Sprintf("bundlectl · %s", bundleFixture), items)
}

// bundleLabel names a bundle by the assets it carries, since a bundle has no
// identity of its own beyond its contents.
func bundleLabel(assets *asset.Graph, b *bundle.Bundle) string {
	names := make([]string, 0, len(b.AssetIDs))
	for _, id := range b.AssetIDs {
		a, ok := assets.Node(id)
		if !ok {
			continue
		}
		names = append(names, a.Name)
	}
	if len(names) > 3 {
		return strings.Join(names[:3], "+") + fmt.Sprintf("+%d more", len(names)-3)
	}
	return strings.Join(names, "+")
}

func bundleLines(assets *asset.Graph, bg *bundle.Graph) []ui.BundleLine {
	rows := make([]ui.BundleLine, 0, len(bg.NodeIDs()))
	for _, id := range bg.NodeIDs() {
		b, ok := bg.Node(id)
		if !ok {
			continue
		}
		var loads []string
		for _, n := range bg.Neighbors(id, graph.Outgoing) {
			nb, ok := bg.Node(n)
			if !ok {
				continue
			}
			loads = append(loads, bundleLabel(assets, nb))
		}
		rows = append(rows, ui.BundleLine{
			Label:    bundleLabel(assets, b),
			Size:     b.Size,
			Loads:    loads,
			IsShared: b.Root == bundle.NoRoot,
		})
	}
	return rows
}

func printBundleJSON(assets *asset.Graph, bg *bundle.Graph) error {
	type bundleOut struct {
		Label  string   `json:"label"`
		Size   int      `json:"size"`
		Shared bool     `json:"shared"`
		Loads  []string `json:"loads,omitempty"`
	}

	out := make([]bundleOut, 0, len(bg.NodeIDs()))
	for _, id := range bg.NodeIDs() {
		b, ok := bg.Node(id)
		if !ok {
			continue
		}
		var loads []string
		for _, n := range bg.Neighbors(id, graph.Outgoing) {
			nb, ok := bg.Node(n)
			if !ok {
				continue
			}
			loads = append(loads, bundleLabel(assets, nb))
		}
		out = append(out, bundleOut{
			Label:  bundleLabel(assets, b),
			Size:   b.Size,
			Shared: b.Root == bundle.NoRoot,
			Loads:  loads,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
