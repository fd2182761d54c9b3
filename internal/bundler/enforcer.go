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
	"sort"

	"github.com/fireflyframework/bundlectl/internal/asset"
	"github.com/fireflyframework/bundlectl/internal/bundle"
	"github.com/fireflyframework/bundlectl/internal/graph"
)

// enforceParallelLimit implements §4.5: every bundle-group entry's direct
// out-degree is capped at limit by inlining the smallest shared bundles
// first. Ties in size are broken by a stable sort (§9's open question);
// which same-size bundle goes first is intentionally unspecified.
func enforceParallelLimit(assets *asset.Graph, bundleGraph *bundle.Graph, roots *rootTable, limit int) {
	for _, assetID := range roots.order {
		info, _ := roots.get(assetID)
		if info.BundleID != info.GroupID {
			continue // not a bundle-group entry
		}
		groupID := info.GroupID

		neighbors := bundleGraph.Neighbors(groupID, graph.Outgoing)
		if len(neighbors) <= limit {
			continue
		}

		neighborSet := make(map[graph.NodeID]struct{}, len(neighbors))
		for _, n := range neighbors {
			neighborSet[n] = struct{}{}
		}

		sort.SliceStable(neighbors, func(i, j int) bool {
			bi, _ := bundleGraph.Node(neighbors[i])
			bj, _ := bundleGraph.Node(neighbors[j])
			return bi.Size < bj.Size
		})

		toRemove := neighbors[:len(neighbors)-limit]
		for _, s := range toRemove {
			drainSharedBundle(assets, bundleGraph, groupID, s, neighborSet)
		}
	}
}

// drainSharedBundle removes groupID's direct dependency on bundle s. If s is
// a genuine shared bundle, the sources it shares with groupID's other
// neighbors are duplicated into that member's own bundle; if s has no
// sources of its own (a root-keyed bundle such as an async chunk, whose
// only path in is the direct link from groupID), its assets are duplicated
// straight into groupID's bundle instead. Either way the edge from groupID
// is dropped and s itself is merged away or deleted once no other group
// still needs it.
func drainSharedBundle(assets *asset.Graph, bundleGraph *bundle.Graph, groupID, s graph.NodeID, neighborSet map[graph.NodeID]struct{}) {
	sb, ok := bundleGraph.Node(s)
	if !ok {
		return
	}

	if len(sb.SourceBundles) == 0 {
		if groupBundle, ok := bundleGraph.Node(groupID); ok {
			for _, assetID := range sb.AssetIDs {
				a, _ := assets.Node(assetID)
				groupBundle.Append(assetID, a.Size)
			}
		}
		bundleGraph.RemoveEdge(groupID, s)
		if bundleGraph.InDegree(s) == 0 {
			bundleGraph.RemoveNode(s)
		}
		return
	}

	var remaining, drained []graph.NodeID
	for _, src := range sb.SourceBundles {
		if _, inGroup := neighborSet[src]; inGroup {
			drained = append(drained, src)
		} else {
			remaining = append(remaining, src)
		}
	}
	sb.SourceBundles = remaining

	for _, src := range drained {
		srcBundle, ok := bundleGraph.Node(src)
		if !ok {
			continue
		}
		for _, assetID := range sb.AssetIDs {
			a, _ := assets.Node(assetID)
			srcBundle.Append(assetID, a.Size)
		}
	}

	bundleGraph.RemoveEdge(groupID, s)

	switch bundleGraph.InDegree(s) {
	case 1:
		removeBundle(assets, bundleGraph, s, sb)
	case 0:
		bundleGraph.RemoveNode(s)
	}
}
