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

package bundle_test

import (
	"testing"

	"github.com/fireflyframework/bundlectl/internal/asset"
	"github.com/fireflyframework/bundlectl/internal/bundle"
	"github.com/fireflyframework/bundlectl/internal/graph"
)

func TestFromAssetSeedsSizeAndRoot(t *testing.T) {
	b := bundle.FromAsset(graph.NodeID(1), asset.Asset{Name: "a.js", Type: asset.JS, Size: 10})
	if b.Size != 10 {
		t.Fatalf("expected size 10, got %d", b.Size)
	}
	if b.Root != graph.NodeID(1) {
		t.Fatalf("expected root 1, got %d", b.Root)
	}
	if len(b.SourceBundles) != 0 {
		t.Fatalf("expected no source bundles on a root bundle, got %v", b.SourceBundles)
	}
}

func TestSharedHasNoRoot(t *testing.T) {
	b := bundle.Shared([]graph.NodeID{1, 2})
	if b.Root != bundle.NoRoot {
		t.Fatalf("expected NoRoot, got %d", b.Root)
	}
	if len(b.SourceBundles) != 2 {
		t.Fatalf("expected 2 source bundles, got %v", b.SourceBundles)
	}
	if b.Size != 0 {
		t.Fatalf("expected a fresh shared bundle to start empty, got size %d", b.Size)
	}
}

func TestAppendAccumulatesSize(t *testing.T) {
	b := bundle.Shared(nil)
	b.Append(1, 10)
	b.Append(2, 5)
	if b.Size != 15 {
		t.Fatalf("expected size 15, got %d", b.Size)
	}
	if len(b.AssetIDs) != 2 {
		t.Fatalf("expected 2 asset ids, got %v", b.AssetIDs)
	}
}

func TestLinkSkipsSelfEdge(t *testing.T) {
	g := bundle.New()
	id := g.AddNode(bundle.FromAsset(graph.NodeID(1), asset.Asset{Name: "a.js", Type: asset.JS, Size: 10}))

	bundle.Link(g, id, id)
	if g.HasEdge(id, id) {
		t.Fatal("expected Link to skip a self-edge")
	}
}

func TestLinkAddsEdge(t *testing.T) {
	g := bundle.New()
	a := g.AddNode(bundle.FromAsset(graph.NodeID(1), asset.Asset{Name: "a.js", Type: asset.JS, Size: 10}))
	b := g.AddNode(bundle.FromAsset(graph.NodeID(2), asset.Asset{Name: "b.js", Type: asset.JS, Size: 10}))

	bundle.Link(g, a, b)
	if !g.HasEdge(a, b) {
		t.Fatal("expected an edge a -> b")
	}
}
