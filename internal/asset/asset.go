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

// Package asset defines the input side of the bundler: an immutable Asset
// node and the Dependency edge that connects it to the assets it imports.
package asset

import "github.com/fireflyframework/bundlectl/internal/graph"

// Type is an open enumeration of asset kinds. Two Types compare only for
// equality; the reference set used throughout the fixtures is HTML, JS, CSS.
type Type string

const (
	HTML Type = "html"
	JS   Type = "js"
	CSS  Type = "css"
)

// Asset is an immutable input node: an opaque name, a type tag, and a
// non-negative size used to compute bundle weight.
type Asset struct {
	Name string
	Type Type
	Size int
}

// Dependency is the edge attribute on the asset graph: whether the
// dependency is loaded asynchronously (e.g. a dynamic import), which forces
// a new bundle group in the root selector.
type Dependency struct {
	Async bool
}

// Graph is a directed graph of Assets connected by Dependency edges.
type Graph = graph.Graph[Asset, Dependency]

// New returns an empty asset graph.
func New() *Graph {
	return graph.New[Asset, Dependency]()
}
