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

package fixture

import "fmt"

// Named looks up one of the package's built-in builders by name, the form
// the CLI's --fixture flag and graph_fixture config key both take.
func Named(name string) (*Graph, error) {
	switch name {
	case "reference":
		return Reference(), nil
	case "type-change":
		return TypeChange(), nil
	case "async-split":
		return AsyncSplit(), nil
	case "shared-downstream":
		return SharedDownstream(), nil
	case "dominated-root":
		return DominatedRoot(), nil
	case "parallel-fanout":
		return ParallelFanout(), nil
	default:
		return nil, fmt.Errorf("unknown fixture %q — valid names: %s", name, Names())
	}
}

// Names lists the built-in fixture names, in a fixed display order.
func Names() string {
	return "reference, type-change, async-split, shared-downstream, dominated-root, parallel-fanout"
}
