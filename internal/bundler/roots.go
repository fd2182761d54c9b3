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

package bundler

import (
	"github.com/fireflyframework/bundlectl/internal/asset"
	"github.com/fireflyframework/bundlectl/internal/bundle"
	"github.com/fireflyframework/bundlectl/internal/graph"
)

// rootInfo is the (bundle_id, bundle_group_id) pair a bundle root maps to.
// A root whose BundleID == GroupID is a bundle-group entry.
type rootInfo struct {
	BundleID graph.NodeID
	GroupID  graph.NodeID
}

// rootTable tracks every designated bundle root in discovery order.
type rootTable struct {
	info  map[graph.NodeID]rootInfo
	order []graph.NodeID
}

func newRootTable() *rootTable {
	return &rootTable{info: make(map[graph.NodeID]rootInfo)}
}

func (t *rootTable) set(assetID graph.NodeID, info rootInfo) {
	if _, exists := t.info[assetID]; !exists {
		t.order = append(t.order, assetID)
	}
	t.info[assetID] = info
}

func (t *rootTable) get(assetID graph.NodeID) (rootInfo, bool) {
	info, ok := t.info[assetID]
	return info, ok
}

func (t *rootTable) isRoot(assetID graph.NodeID) bool {
	_, ok := t.info[assetID]
	return ok
}

// pairKey is a set-of-pairs key, used for reachableBundles (§4.1 of the
// bundling algorithm).
type pairKey struct {
	A graph.NodeID
	B graph.NodeID
}

// stackEntry is one frame of the root selector's group stack: the root
// asset that pushed the frame, and the bundle group it belongs to.
type stackEntry struct {
	root    graph.NodeID
	groupID graph.NodeID
}

// selectRoots runs the stateful DFS of §4.1: it designates bundle roots at
// entries, asset-type transitions, and async dependencies, and records
// cross-group async reachability for the dominated-root filter in §4.3.
func selectRoots(assets *asset.Graph, entries []graph.NodeID, bundleGraph *bundle.Graph) (*rootTable, map[pairKey]struct{}) {
	roots := newRootTable()
	reachableBundles := make(map[pairKey]struct{})

	// Every entry is a root; each gets its own bundle and is its own group.
	for _, e := range entries {
		a, _ := assets.Node(e)
		bundleID := bundleGraph.AddNode(bundle.FromAsset(e, a))
		roots.set(e, rootInfo{BundleID: bundleID, GroupID: bundleID})
	}

	var stack []stackEntry

	top := func() (stackEntry, bool) {
		if len(stack) == 0 {
			return stackEntry{}, false
		}
		return stack[len(stack)-1], true
	}

	graph.DFS(assets, entries, func(event graph.Event, from, to graph.NodeID) bool {
		switch event {
		case graph.Discover:
			n := from // Discover reports (n, n)
			if info, ok := roots.get(n); ok {
				stack = append(stack, stackEntry{root: n, groupID: info.GroupID})
			}

		case graph.TreeEdge:
			u, v := from, to
			assetA, _ := assets.Node(u)
			assetB, _ := assets.Node(v)

			if assetA.Type != assetB.Type {
				// Type change: new bundle, joins the enclosing group.
				t, _ := top()
				bundleID := bundleGraph.AddNode(bundle.FromAsset(v, assetB))
				roots.set(v, rootInfo{BundleID: bundleID, GroupID: t.groupID})
				bundle.Link(bundleGraph, t.groupID, bundleID)
				return false
			}

			dep, _ := assets.Edge(u, v)
			if dep.Async {
				// Async dependency: new bundle AND new bundle group.
				t, _ := top()
				bundleID := bundleGraph.AddNode(bundle.FromAsset(v, assetB))
				roots.set(v, rootInfo{BundleID: bundleID, GroupID: bundleID})

				// Register the new bundle group as an out-neighbor of the
				// enclosing group's entry, the same way a type-change
				// offshoot is linked. Placement (§4.3) never gets a chance
				// to do this for a root's own single-asset bundle, since
				// reachable_nodes by construction never names one root as
				// reachable from another (every DFS prunes at a root
				// before recording it) — without this edge an async bundle
				// group's entry would always end up with in-degree zero.
				bundle.Link(bundleGraph, t.groupID, bundleID)

				// Walk the stack from the top down, marking v reachable
				// from every same-typed enclosing group; stop at the
				// first differently-typed frame (exclusive).
				for i := len(stack) - 1; i >= 0; i-- {
					frameAsset, _ := assets.Node(stack[i].root)
					if frameAsset.Type != assetB.Type {
						break
					}
					reachableBundles[pairKey{A: stack[i].root, B: v}] = struct{}{}
				}
			}

		case graph.Finish:
			n := from
			if t, ok := top(); ok && t.root == n {
				stack = stack[:len(stack)-1]
			}
		}
		return false
	})

	return roots, reachableBundles
}
