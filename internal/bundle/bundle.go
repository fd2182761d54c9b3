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

// Package bundle defines the output side of the bundler: a mutable Bundle
// record and the Graph of bundles the placer, inliner, and enforcer build.
package bundle

import (
	"github.com/fireflyframework/bundlectl/internal/asset"
	"github.com/fireflyframework/bundlectl/internal/graph"
)

// Bundle is a mutable output unit: an ordered multiset of asset handles, a
// cached aggregate size, and (for shared bundles) the root-bundles it was
// merged from. A root bundle has Root set and no SourceBundles; a shared
// bundle has no Root and a non-empty SourceBundles.
type Bundle struct {
	AssetIDs      []graph.NodeID
	Size          int
	SourceBundles []graph.NodeID

	// Root is the asset this bundle was created for, or -1 for a shared
	// bundle that was never keyed by a single root.
	Root graph.NodeID
}

// NoRoot marks a Bundle as shared rather than root-keyed.
const NoRoot graph.NodeID = -1

// FromAsset creates a single-asset root bundle for id.
func FromAsset(id graph.NodeID, a asset.Asset) *Bundle {
	return &Bundle{
		AssetIDs: []graph.NodeID{id},
		Size:     a.Size,
		Root:     id,
	}
}

// Shared creates an empty shared bundle keyed by sources.
func Shared(sources []graph.NodeID) *Bundle {
	b := &Bundle{Root: NoRoot}
	b.SourceBundles = append(b.SourceBundles, sources...)
	return b
}

// Append adds asset id of size to the bundle's asset list.
func (b *Bundle) Append(id graph.NodeID, size int) {
	b.AssetIDs = append(b.AssetIDs, id)
	b.Size += size
}

// Graph is a directed graph of Bundles. An edge A -> B means "whenever
// bundle group A loads, bundle B must also be loaded." Node values are
// *Bundle so mutating a looked-up bundle mutates the graph's copy.
type Graph = graph.Graph[*Bundle, struct{}]

// New returns an empty bundle graph.
func New() *Graph {
	return graph.New[*Bundle, struct{}]()
}

// Link adds the "loads together" edge from -> to, skipping self-edges.
func Link(g *Graph, from, to graph.NodeID) {
	if from == to {
		return
	}
	g.AddEdge(from, to, struct{}{})
}
