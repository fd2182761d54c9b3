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

package bundler_test

import (
	"errors"
	"testing"

	"github.com/fireflyframework/bundlectl/internal/bundle"
	"github.com/fireflyframework/bundlectl/internal/bundler"
	"github.com/fireflyframework/bundlectl/internal/fixture"
	"github.com/fireflyframework/bundlectl/internal/graph"
)

// bundleOf returns the id of the bundle in bg holding assetID, or -1.
func bundleOf(bg *bundle.Graph, assetID graph.NodeID) graph.NodeID {
	for _, id := range bg.NodeIDs() {
		b, _ := bg.Node(id)
		for _, a := range b.AssetIDs {
			if a == assetID {
				return id
			}
		}
	}
	return -1
}

func TestTypeChangeScenario(t *testing.T) {
	fx := fixture.TypeChange()
	bg, err := bundler.Bundle(fx.Assets, fx.Entries, bundler.DefaultConfig())
	if err != nil {
		t.Fatalf("Bundle: %v", err)
	}

	html := fx.ByName["a.html"]
	js := fx.ByName["a.js"]
	css := fx.ByName["styles.css"]

	htmlBundle := bundleOf(bg, html)
	jsBundle := bundleOf(bg, js)
	cssBundle := bundleOf(bg, css)

	if htmlBundle == -1 || jsBundle == -1 || cssBundle == -1 {
		t.Fatalf("expected all three assets to be placed: html=%d js=%d css=%d", htmlBundle, jsBundle, cssBundle)
	}
	if htmlBundle == jsBundle || jsBundle == cssBundle || htmlBundle == cssBundle {
		t.Fatalf("expected three distinct bundles, got html=%d js=%d css=%d", htmlBundle, jsBundle, cssBundle)
	}
	if !bg.HasEdge(htmlBundle, jsBundle) {
		t.Error("expected a.js's bundle linked from a.html's group")
	}
	if !bg.HasEdge(htmlBundle, cssBundle) {
		t.Error("expected styles.css's bundle linked from a.html's group")
	}
}

func TestAsyncSplitScenario(t *testing.T) {
	fx := fixture.AsyncSplit()
	bg, err := bundler.Bundle(fx.Assets, fx.Entries, bundler.DefaultConfig())
	if err != nil {
		t.Fatalf("Bundle: %v", err)
	}

	html := fx.ByName["a.html"]
	js := fx.ByName["a.js"]
	css := fx.ByName["styles.css"]
	asyncJS := fx.ByName["async.js"]
	sharedJS := fx.ByName["shared.js"]

	htmlBundle := bundleOf(bg, html)
	jsBundle := bundleOf(bg, js)
	cssBundle := bundleOf(bg, css)
	asyncBundle := bundleOf(bg, asyncJS)
	sharedBundle := bundleOf(bg, sharedJS)

	if !bg.HasEdge(htmlBundle, jsBundle) || !bg.HasEdge(htmlBundle, cssBundle) {
		t.Fatalf("expected a.html, a.js, styles.css in one bundle group; got %d %d %d", htmlBundle, jsBundle, cssBundle)
	}
	if asyncBundle != sharedBundle {
		t.Fatalf("expected async.js and shared.js to collapse into the same async bundle, got %d %d", asyncBundle, sharedBundle)
	}
	if asyncBundle == htmlBundle {
		t.Fatal("expected the async chunk to live outside a.html's own bundle")
	}
	if !bg.HasEdge(htmlBundle, asyncBundle) {
		t.Error("expected the async bundle group to be linked from a.html's group")
	}
}

func TestSharedDownstreamAtThresholdStaysShared(t *testing.T) {
	fx := fixture.SharedDownstream()
	cfg := bundler.Config{MinBundleSize: 10, ParallelRequestLimit: 3}
	bg, err := bundler.Bundle(fx.Assets, fx.Entries, cfg)
	if err != nil {
		t.Fatalf("Bundle: %v", err)
	}

	sharedJS := fx.ByName["shared.js"]
	aJS := fx.ByName["a.js"]
	bJS := fx.ByName["b.js"]
	html := fx.ByName["a.html"]
	html2 := fx.ByName["b.html"]

	sharedBundle := bundleOf(bg, sharedJS)
	aBundle := bundleOf(bg, aJS)
	bBundle := bundleOf(bg, bJS)
	htmlBundle := bundleOf(bg, html)
	html2Bundle := bundleOf(bg, html2)

	if sharedBundle == -1 {
		t.Fatal("expected shared.js to be placed somewhere")
	}
	if sharedBundle == aBundle || sharedBundle == bBundle {
		t.Fatalf("expected shared.js in its own shared bundle, not folded into a.js (%d) or b.js (%d); got %d", aBundle, bBundle, sharedBundle)
	}
	if !bg.HasEdge(htmlBundle, sharedBundle) || !bg.HasEdge(html2Bundle, sharedBundle) {
		t.Error("expected the shared bundle reachable from both entry groups")
	}
}

func TestSharedDownstreamAboveThresholdInlines(t *testing.T) {
	fx := fixture.SharedDownstream()
	cfg := bundler.Config{MinBundleSize: 11, ParallelRequestLimit: 3}
	bg, err := bundler.Bundle(fx.Assets, fx.Entries, cfg)
	if err != nil {
		t.Fatalf("Bundle: %v", err)
	}

	sharedJS := fx.ByName["shared.js"]
	aJS := fx.ByName["a.js"]
	bJS := fx.ByName["b.js"]

	count := 0
	for _, id := range bg.NodeIDs() {
		b, _ := bg.Node(id)
		for _, a := range b.AssetIDs {
			if a == sharedJS {
				count++
			}
		}
	}
	if count != 2 {
		t.Fatalf("expected shared.js duplicated into both entry bundles (count 2), got %d", count)
	}

	aBundleID := bundleOf(bg, aJS)
	bBundleID := bundleOf(bg, bJS)
	aBundle, _ := bg.Node(aBundleID)
	bBundle, _ := bg.Node(bBundleID)

	has := func(b *bundle.Bundle, assetID graph.NodeID) bool {
		for _, a := range b.AssetIDs {
			if a == assetID {
				return true
			}
		}
		return false
	}
	if !has(aBundle, sharedJS) || !has(bBundle, sharedJS) {
		t.Fatal("expected shared.js duplicated specifically into a.js's and b.js's own bundles")
	}
}

func TestDominatedRootFilter(t *testing.T) {
	fx := fixture.DominatedRoot()
	bg, err := bundler.Bundle(fx.Assets, fx.Entries, bundler.DefaultConfig())
	if err != nil {
		t.Fatalf("Bundle: %v", err)
	}

	sharedJS := fx.ByName["shared.js"]
	async2JS := fx.ByName["async2.js"]
	aJS := fx.ByName["a.js"]
	asyncJS := fx.ByName["async.js"]
	html := fx.ByName["a.html"]

	aBundle := bundleOf(bg, aJS)
	async2Bundle := bundleOf(bg, async2JS)
	if async2Bundle != aBundle {
		t.Fatalf("expected async2.js folded into a.js's own bundle (dominated by a.js over async.js), got bundle %d vs a.js bundle %d", async2Bundle, aBundle)
	}

	asyncBundle := bundleOf(bg, asyncJS)
	sharedBundle := bundleOf(bg, sharedJS)
	if sharedBundle == aBundle || sharedBundle == asyncBundle {
		t.Fatalf("expected shared.js in a distinct shared bundle, not folded into a.js (%d) or async.js (%d); got %d", aBundle, asyncBundle, sharedBundle)
	}

	htmlBundle := bundleOf(bg, html)
	if !bg.HasEdge(htmlBundle, sharedBundle) {
		t.Error("expected the shared bundle reachable from a.html's group")
	}
}

func TestParallelRequestLimit(t *testing.T) {
	fx := fixture.ParallelFanout()
	cfg := bundler.Config{MinBundleSize: 10, ParallelRequestLimit: 3}
	bg, err := bundler.Bundle(fx.Assets, fx.Entries, cfg)
	if err != nil {
		t.Fatalf("Bundle: %v", err)
	}

	entryJS := fx.ByName["main.js"]
	entryBundle := bundleOf(bg, entryJS)

	neighbors := bg.Neighbors(entryBundle, graph.Outgoing)
	if len(neighbors) > cfg.ParallelRequestLimit {
		t.Fatalf("expected out-degree <= %d after enforcement, got %d", cfg.ParallelRequestLimit, len(neighbors))
	}

	tinyJS := fx.ByName["tiny.js"]
	tinyBundle := bundleOf(bg, tinyJS)
	if tinyBundle != entryBundle {
		t.Fatalf("expected the size-1 chunk inlined into the entry bundle (%d), got %d", entryBundle, tinyBundle)
	}
}

func TestReferenceMixedPipeline(t *testing.T) {
	fx := fixture.Reference()
	bg, err := bundler.Bundle(fx.Assets, fx.Entries, bundler.DefaultConfig())
	if err != nil {
		t.Fatalf("Bundle: %v", err)
	}

	for _, name := range []string{"a.html", "b.html", "a.js", "async.js", "async2.js", "b.js", "shared.js", "styles.css"} {
		id := fx.ByName[name]
		if bundleOf(bg, id) == -1 {
			t.Errorf("expected %s to be placed in some bundle", name)
		}
	}

	aHTMLBundle := bundleOf(bg, fx.ByName["a.html"])
	cssBundle := bundleOf(bg, fx.ByName["styles.css"])
	if !bg.HasEdge(aHTMLBundle, cssBundle) {
		t.Error("expected styles.css attached to a.html's group")
	}

	if bundleOf(bg, fx.ByName["async2.js"]) != bundleOf(bg, fx.ByName["a.js"]) {
		t.Error("expected async2.js folded into a.js's bundle, since a.js dominates async.js")
	}
}

func TestCoverageInvariant(t *testing.T) {
	fx := fixture.Reference()
	bg, err := bundler.Bundle(fx.Assets, fx.Entries, bundler.DefaultConfig())
	if err != nil {
		t.Fatalf("Bundle: %v", err)
	}

	for name, id := range fx.ByName {
		if bundleOf(bg, id) == -1 {
			t.Errorf("asset %s not covered by any bundle", name)
		}
	}
}

func TestSizeConsistencyInvariant(t *testing.T) {
	fx := fixture.Reference()
	bg, err := bundler.Bundle(fx.Assets, fx.Entries, bundler.DefaultConfig())
	if err != nil {
		t.Fatalf("Bundle: %v", err)
	}

	for _, id := range bg.NodeIDs() {
		b, _ := bg.Node(id)
		sum := 0
		for _, assetID := range b.AssetIDs {
			a, ok := fx.Assets.Node(assetID)
			if !ok {
				t.Fatalf("bundle %d references unknown asset %d", id, assetID)
			}
			sum += a.Size
		}
		if sum != b.Size {
			t.Errorf("bundle %d: size %d does not match sum of asset sizes %d", id, b.Size, sum)
		}
	}
}

func TestFanOutCeilingInvariant(t *testing.T) {
	fx := fixture.ParallelFanout()
	cfg := bundler.Config{MinBundleSize: 10, ParallelRequestLimit: 3}
	bg, err := bundler.Bundle(fx.Assets, fx.Entries, cfg)
	if err != nil {
		t.Fatalf("Bundle: %v", err)
	}

	for _, id := range bg.NodeIDs() {
		if out := bg.Neighbors(id, graph.Outgoing); len(out) > cfg.ParallelRequestLimit {
			t.Errorf("bundle %d has out-degree %d, exceeds limit %d", id, len(out), cfg.ParallelRequestLimit)
		}
	}
}

func TestUnknownEntryReturnsError(t *testing.T) {
	fx := fixture.Reference()
	bogus := graph.NodeID(99999)
	_, err := bundler.Bundle(fx.Assets, []graph.NodeID{bogus}, bundler.DefaultConfig())
	if err == nil {
		t.Fatal("expected an error for an unknown entry")
	}
	if !errors.Is(err, bundler.ErrUnknownEntry) {
		t.Fatalf("expected ErrUnknownEntry, got %v", err)
	}
}

func TestPlacementIsDeterministic(t *testing.T) {
	fx1 := fixture.Reference()
	fx2 := fixture.Reference()

	bg1, err := bundler.Bundle(fx1.Assets, fx1.Entries, bundler.DefaultConfig())
	if err != nil {
		t.Fatalf("Bundle: %v", err)
	}
	bg2, err := bundler.Bundle(fx2.Assets, fx2.Entries, bundler.DefaultConfig())
	if err != nil {
		t.Fatalf("Bundle: %v", err)
	}

	if len(bg1.NodeIDs()) != len(bg2.NodeIDs()) {
		t.Fatalf("expected matching bundle counts across identical runs, got %d vs %d", len(bg1.NodeIDs()), len(bg2.NodeIDs()))
	}

	sizes1 := map[int]int{}
	for _, id := range bg1.NodeIDs() {
		b, _ := bg1.Node(id)
		sizes1[b.Size]++
	}
	sizes2 := map[int]int{}
	for _, id := range bg2.NodeIDs() {
		b, _ := bg2.Node(id)
		sizes2[b.Size]++
	}
	for size, count := range sizes1 {
		if sizes2[size] != count {
			t.Errorf("bundle size histogram mismatch at size %d: %d vs %d", size, count, sizes2[size])
		}
	}
}
