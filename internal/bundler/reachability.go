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
	"github.com/fireflyframework/bundlectl/internal/graph"
)

// buildReachability implements §4.2: for every root, a pruned DFS records
// which non-root assets it reaches without passing through another root.
// The result is the bipartite "assets -> roots" graph used by the placer;
// for a non-root asset a, reachable[a] is R(a).
func buildReachability(assets *asset.Graph, roots *rootTable) map[graph.NodeID][]graph.NodeID {
	reachable := make(map[graph.NodeID][]graph.NodeID)

	for _, r := range roots.order {
		root := r
		graph.DFS(assets, []graph.NodeID{root}, func(event graph.Event, from, _ graph.NodeID) bool {
			if event != graph.Discover {
				return false
			}
			n := from
			if n == root {
				return false
			}
			if roots.isRoot(n) {
				return true // prune: stop at another bundle root
			}
			reachable[n] = append(reachable[n], root)
			return false
		})
	}

	return reachable
}
