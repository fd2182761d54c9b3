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

package asset_test

import (
	"testing"

	"github.com/fireflyframework/bundlectl/internal/asset"
	"github.com/fireflyframework/bundlectl/internal/graph"
)

func TestNewIsEmpty(t *testing.T) {
	g := asset.New()
	if len(g.NodeIDs()) != 0 {
		t.Fatalf("expected a fresh asset graph to be empty, got %v", g.NodeIDs())
	}
}

func TestAddNodeRoundTripsAsset(t *testing.T) {
	g := asset.New()
	a := asset.Asset{Name: "a.js", Type: asset.JS, Size: 12}
	id := g.AddNode(a)

	got, ok := g.Node(id)
	if !ok {
		t.Fatalf("expected node %d to exist", id)
	}
	if got != a {
		t.Fatalf("expected %+v, got %+v", a, got)
	}
}

func TestDependencyEdgeCarriesAsync(t *testing.T) {
	g := asset.New()
	a := g.AddNode(asset.Asset{Name: "a.html", Type: asset.HTML, Size: 1})
	b := g.AddNode(asset.Asset{Name: "b.js", Type: asset.JS, Size: 5})

	g.AddEdge(a, b, asset.Dependency{Async: true})

	dep, ok := g.Edge(a, b)
	if !ok {
		t.Fatalf("expected an edge a -> b")
	}
	if !dep.Async {
		t.Fatal("expected the dependency to be async")
	}
}

func TestTypesCompareByValue(t *testing.T) {
	if asset.HTML == asset.JS {
		t.Fatal("HTML and JS must not compare equal")
	}
	if asset.Type("css") != asset.CSS {
		t.Fatal("expected a raw string to compare equal to the CSS constant")
	}
}

func TestOutgoingNeighborsSortedByHandle(t *testing.T) {
	g := asset.New()
	a := g.AddNode(asset.Asset{Name: "a.js", Type: asset.JS, Size: 1})
	b := g.AddNode(asset.Asset{Name: "b.js", Type: asset.JS, Size: 1})
	c := g.AddNode(asset.Asset{Name: "c.js", Type: asset.JS, Size: 1})

	g.AddEdge(a, b, asset.Dependency{})
	g.AddEdge(a, c, asset.Dependency{})

	neighbors := g.Neighbors(a, graph.Outgoing)
	if len(neighbors) != 2 || neighbors[0] != b || neighbors[1] != c {
		t.Fatalf("expected [%d %d], got %v", b, c, neighbors)
	}
}
