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
	"fmt"

	"github.com/fireflyframework/bundlectl/internal/asset"
	"github.com/fireflyframework/bundlectl/internal/bundle"
	"github.com/fireflyframework/bundlectl/internal/graph"
)

// Bundle runs the five-step bundling transformation described in §4: it
// turns an asset graph and a list of entries into a bundle graph that is
// correct, maximally code-split, and within cfg's operational limits. The
// asset graph is only ever read; the bundle graph is built from scratch.
func Bundle(assets *asset.Graph, entries []graph.NodeID, cfg Config) (*bundle.Graph, error) {
	for _, e := range entries {
		if !assets.HasNode(e) {
			return nil, fmt.Errorf("%w: %d", ErrUnknownEntry, e)
		}
	}

	bundleGraph := bundle.New()

	roots, reachableBundles := selectRoots(assets, entries, bundleGraph)
	reachableNodes := buildReachability(assets, roots)
	placeBundles(assets, bundleGraph, roots, reachableBundles, reachableNodes)
	inlineUndersized(assets, bundleGraph, cfg.MinBundleSize)
	enforceParallelLimit(assets, bundleGraph, roots, cfg.ParallelRequestLimit)

	return bundleGraph, nil
}
