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

	"github.com/fireflyframework/bundlectl/internal/asset"
	"github.com/fireflyframework/bundlectl/internal/fixture"
	"github.com/fireflyframework/bundlectl/internal/graph"
	"github.com/fireflyframework/bundlectl/internal/ui"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Inspect a built-in asset graph fixture",
	Long:  "Commands for viewing the asset graphs bundlectl ships as fixtures and test inputs.",
}

var (
	graphShowFixture string
	graphShowJSON    bool
)

var graphShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display an asset graph as an indented dependency tree",
	RunE:  runGraphShow,
}

var graphListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in fixture names",
	RunE:  runGraphList,
}

func init() {
	graphShowCmd.Flags().StringVar(&graphShowFixture, "fixture", "reference", "built-in asset graph to show: "+fixture.Names())
	graphShowCmd.Flags().BoolVar(&graphShowJSON, "json", false, "emit the asset graph as JSON")

	graphCmd.AddCommand(graphShowCmd)
	graphCmd.AddCommand(graphListCmd)
	rootCmd.AddCommand(graphCmd)
}

func runGraphList(_ *cobra.Command, _ []string) error {
	p := ui.NewPrinter()
	p.Header("Built-in fixtures")
	p.Newline()
	for _, name := range []string{"reference", "type-change", "async-split", "shared-downstream", "dominated-root", "parallel-fanout"} {
		fmt.Printf("  %s %s\n", ui.StyleMuted.Render("•"), name)
	}
	return nil
}

func runGraphShow(_ *cobra.Command, _ []string) error {
	fx, err := fixture.Named(graphShowFixture)
	if err != nil {
		return err
	}

	if graphShowJSON {
		return printAssetGraphJSON(fx)
	}

	p := ui.NewPrinter()
	p.Header(fmt.Sprintf("Asset graph — %s", graphShowFixture))
	p.Newline()

	visited := make(map[graph.NodeID]bool)
	for _, entry := range fx.Entries {
		printAssetTree(fx.Assets, entry, 0, visited)
	}

	p.Newline()
	p.Info(fmt.Sprintf("%d assets, %d entries", len(fx.Assets.NodeIDs()), len(fx.Entries)))
	return nil
}

// printAssetTree walks the asset graph depth-first from id, printing each
// newly-visited asset once indented by depth. Assets reachable by more than
// one path are only expanded the first time they're discovered, matching
// the DFS the bundler itself runs.
func printAssetTree(assets *asset.Graph, id graph.NodeID, depth int, visited map[graph.NodeID]bool) {
	a, ok := assets.Node(id)
	if !ok {
		return
	}
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}

	if visited[id] {
		fmt.Printf("  %s%s %s\n", indent, ui.StyleMuted.Render("↺"), ui.StyleMuted.Render(a.Name))
		return
	}
	visited[id] = true

	label := fmt.Sprintf("%s %s", a.Name, ui.StyleMuted.Render(fmt.Sprintf("(%s, %d)", a.Type, a.Size)))
	fmt.Printf("  %s%s\n", indent, label)

	for _, n := range assets.Neighbors(id, graph.Outgoing) {
		dep, _ := assets.Edge(id, n)
		marker := ""
		if dep.Async {
			marker = ui.StyleInfo.Render(" (async)")
		}
		if marker != "" {
			fmt.Printf("  %s  %s\n", indent, marker)
		}
		printAssetTree(assets, n, depth+1, visited)
	}
}

func printAssetGraphJSON(fx *fixture.Graph) error {
	type edgeOut struct {
		From  string `json:"from"`
		To    string `json:"to"`
		Async bool   `json:"async"`
	}
	type nodeOut struct {
		Name string `json:"name"`
		Type string `json:"type"`
		Size int    `json:"size"`
	}
	type graphOut struct {
		Nodes   []nodeOut `json:"nodes"`
		Edges   []edgeOut `json:"edges"`
		Entries []string  `json:"entries"`
	}

	out := graphOut{}
	for _, id := range fx.Assets.NodeIDs() {
		a, _ := fx.Assets.Node(id)
		out.Nodes = append(out.Nodes, nodeOut{Name: a.Name, Type: string(a.Type), Size: a.Size})
		for _, n := range fx.Assets.Neighbors(id, graph.Outgoing) {
			dep, _ := fx.Assets.Edge(id, n)
			nb, _ := fx.Assets.Node(n)
			out.Edges = append(out.Edges, edgeOut{From: a.Name, To: nb.Name, Async: dep.Async})
		}
	}
	for _, e := range fx.Entries {
		a, _ := fx.Assets.Node(e)
		out.Entries = append(out.Entries, a.Name)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
