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

// inlineUndersized implements §4.4: a shared bundle below minSize is
// collapsed into every one of its source bundles. The node list is
// snapshotted before mutation begins, since the bundle graph is edited
// while this loop runs (§9).
func inlineUndersized(assets *asset.Graph, bundleGraph *bundle.Graph, minSize int) {
	for _, id := range bundleGraph.NodeIDs() {
		b, ok := bundleGraph.Node(id)
		if !ok || len(b.SourceBundles) == 0 || b.Size >= minSize {
			continue
		}
		removeBundle(assets, bundleGraph, id, b)
	}
}

// removeBundle deletes a shared bundle, duplicating each of its assets into
// every one of its source bundles, then drops the node (and with it every
// incident edge).
func removeBundle(assets *asset.Graph, bundleGraph *bundle.Graph, id graph.NodeID, b *bundle.Bundle) {
	for _, assetID := range b.AssetIDs {
		a, _ := assets.Node(assetID)
		for _, srcID := range b.SourceBundles {
			src, ok := bundleGraph.Node(srcID)
			if !ok {
				continue
			}
			src.Append(assetID, a.Size)
		}
	}
	bundleGraph.RemoveNode(id)
}
