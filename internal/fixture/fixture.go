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

// Package fixture builds in-memory asset graphs for demos, the CLI's
// built-in --fixture flag, and the bundler's own test suite. Every builder
// returns the graph, its entry handles, and a lookup from asset name to
// handle so callers (and tests) never have to guess node numbering.
package fixture

import (
	"github.com/fireflyframework/bundlectl/internal/asset"
	"github.com/fireflyframework/bundlectl/internal/graph"
)

// Graph bundles an asset graph together with its entries and a name index,
// the shape every builder in this package returns.
type Graph struct {
	Assets  *asset.Graph
	Entries []assetHandle
	ByName  map[string]assetHandle
}

type assetHandle = graph.NodeID

// node adds a named asset of the given type and size, indexing it by name.
func (g *Graph) node(name string, typ asset.Type, size int) assetHandle {
	id := g.Assets.AddNode(asset.Asset{Name: name, Type: typ, Size: size})
	g.ByName[name] = id
	return id
}

func (g *Graph) edge(from, to assetHandle, async bool) {
	g.Assets.AddEdge(from, to, asset.Dependency{Async: async})
}

func newGraph() *Graph {
	return &Graph{Assets: asset.New(), ByName: make(map[string]assetHandle)}
}

// Reference builds the exact fixture the bundling algorithm was distilled
// against: two HTML entries, an async split under a.html, a CSS leaf, and a
// shared.js reachable from both entries' JS chains.
//
//	a.html -> a.js --async--> async.js -> async2.js -> shared.js
//	a.js -> async2.js
//	a.js -> styles.css
//	b.html -> b.js -> shared.js
func Reference() *Graph {
	g := newGraph()

	html := g.node("a.html", asset.HTML, 10)
	html2 := g.node("b.html", asset.HTML, 10)
	js := g.node("a.js", asset.JS, 10)
	asyncJS := g.node("async.js", asset.JS, 10)
	async2JS := g.node("async2.js", asset.JS, 10)
	bJS := g.node("b.js", asset.JS, 10)
	sharedJS := g.node("shared.js", asset.JS, 10)
	css := g.node("styles.css", asset.CSS, 10)

	g.edge(html, js, false)
	g.edge(js, asyncJS, true)
	g.edge(js, async2JS, false)
	g.edge(asyncJS, async2JS, false)
	g.edge(async2JS, sharedJS, false)
	g.edge(js, css, false)

	g.edge(html2, bJS, false)
	g.edge(bJS, sharedJS, false)

	g.Entries = []assetHandle{html, html2}
	return g
}

// TypeChange builds scenario 1: a single entry, a chain that crosses two
// type boundaries, no async and no sharing.
//
//	E:a.html -> a.js -> styles.css
func TypeChange() *Graph {
	g := newGraph()
	html := g.node("a.html", asset.HTML, 10)
	js := g.node("a.js", asset.JS, 10)
	css := g.node("styles.css", asset.CSS, 10)

	g.edge(html, js, false)
	g.edge(js, css, false)

	g.Entries = []assetHandle{html}
	return g
}

// AsyncSplit builds scenario 2: one entry whose JS splits into an async
// chunk, plus a sync CSS sibling.
//
//	E:a.html -> a.js --async--> async.js -> shared.js
//	a.js -> styles.css
func AsyncSplit() *Graph {
	g := newGraph()
	html := g.node("a.html", asset.HTML, 10)
	js := g.node("a.js", asset.JS, 10)
	asyncJS := g.node("async.js", asset.JS, 10)
	sharedJS := g.node("shared.js", asset.JS, 10)
	css := g.node("styles.css", asset.CSS, 10)

	g.edge(html, js, false)
	g.edge(js, asyncJS, true)
	g.edge(asyncJS, sharedJS, false)
	g.edge(js, css, false)

	g.Entries = []assetHandle{html}
	return g
}

// SharedDownstream builds scenario 3: two entries, each with its own JS,
// both importing a common shared.js of size 10 — the min_bundle_size
// threshold (10 keeps it shared, 11 forces inlining) is the caller's to
// apply via the Config passed to bundler.Bundle.
//
//	E:a.html -> a.js -> shared.js
//	E:b.html -> b.js -> shared.js
func SharedDownstream() *Graph {
	g := newGraph()
	html := g.node("a.html", asset.HTML, 10)
	html2 := g.node("b.html", asset.HTML, 10)
	aJS := g.node("a.js", asset.JS, 10)
	bJS := g.node("b.js", asset.JS, 10)
	sharedJS := g.node("shared.js", asset.JS, 10)

	g.edge(html, aJS, false)
	g.edge(html2, bJS, false)
	g.edge(aJS, sharedJS, false)
	g.edge(bJS, sharedJS, false)

	g.Entries = []assetHandle{html, html2}
	return g
}

// DominatedRoot builds scenario 4: an async chain nested two levels deep
// under one entry, reached both through the async edge and directly (the
// same shape as Reference's a.js -> async2.js shortcut), plus a second
// entry that also reaches the same shared.js — exercising the
// dominated-root filter in the placer.
//
//	E:a.html -> a.js --async--> async.js -> async2.js -> shared.js
//	a.js -> async2.js
//	E:b.html -> b.js -> shared.js
func DominatedRoot() *Graph {
	g := newGraph()
	html := g.node("a.html", asset.HTML, 10)
	html2 := g.node("b.html", asset.HTML, 10)
	aJS := g.node("a.js", asset.JS, 10)
	asyncJS := g.node("async.js", asset.JS, 10)
	async2JS := g.node("async2.js", asset.JS, 10)
	bJS := g.node("b.js", asset.JS, 10)
	sharedJS := g.node("shared.js", asset.JS, 10)

	g.edge(html, aJS, false)
	g.edge(aJS, asyncJS, true)
	g.edge(asyncJS, async2JS, false)
	g.edge(aJS, async2JS, false)
	g.edge(async2JS, sharedJS, false)

	g.edge(html2, bJS, false)
	g.edge(bJS, sharedJS, false)

	g.Entries = []assetHandle{html, html2}
	return g
}

// ParallelFanout builds scenario 5: one entry with four async out-neighbors
// of sizes 1, 5, 20, 50, for exercising the parallel-request enforcer
// (§4.5) once the caller sets parallel_request_limit = 3. The entry is
// itself JS so each child attaches as a direct async bundle-group neighbor
// of the entry's own group, with nothing else diluting its out-degree.
func ParallelFanout() *Graph {
	g := newGraph()
	entry := g.node("main.js", asset.JS, 10)

	sizes := []int{1, 5, 20, 50}
	names := []string{"tiny.js", "small.js", "medium.js", "large.js"}
	for i, size := range sizes {
		chunk := g.node(names[i], asset.JS, size)
		g.edge(entry, chunk, true)
	}

	g.Entries = []assetHandle{entry}
	return g
}
