// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package tree_test

import (
	"errors"
	"slices"
	"testing"

	. "fillmore-labs.com/noclosures/internal/tree"
)

// buildSample builds
//
//	File
//	  FunctionDeclaration f
//	    Parameter (a)
//	    VariableDeclaration (x)
//	      Identifier x
//	      Identifier a
func buildSample(t *testing.T) (*Tree, map[string]Node) {
	t.Helper()

	var b Builder

	nodes := make(map[string]Node)

	nodes["file"] = b.Open(File, "", 0)
	nodes["f"] = b.Open(FunctionDeclaration, "f", 1)
	nodes["param"] = b.Open(Parameter, "", 2)
	nodes["a"] = b.Leaf(Identifier, "a", Span{Start: 2, End: 3})
	b.Bind(nodes["param"], nodes["a"])
	b.Close(3)
	nodes["var"] = b.Open(VariableDeclaration, "", 4)
	nodes["x"] = b.Leaf(Identifier, "x", Span{Start: 4, End: 5})
	b.Bind(nodes["var"], nodes["x"])
	nodes["use"] = b.Leaf(Identifier, "a", Span{Start: 6, End: 7})
	b.Close(7)
	b.Close(8)
	b.Close(9)

	tr, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	return tr, nodes
}

func TestTreeStructure(t *testing.T) {
	t.Parallel()

	tr, n := buildSample(t)

	if got, want := tr.Len(), 7; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}

	if got := tr.Root(); got != n["file"] {
		t.Errorf("Root() = %d, want %d", got, n["file"])
	}

	if got := tr.Parent(n["use"]); got != n["var"] {
		t.Errorf("Parent(use) = %d, want %d", got, n["var"])
	}

	if got := tr.Parent(n["file"]); got.Valid() {
		t.Errorf("Parent(root) = %d, want None", got)
	}

	if got, want := slices.Collect(tr.Children(n["f"])), []Node{n["param"], n["var"]}; !slices.Equal(got, want) {
		t.Errorf("Children(f) = %v, want %v", got, want)
	}

	if got, want := slices.Collect(tr.Ancestors(n["x"])), []Node{n["var"], n["f"], n["file"]}; !slices.Equal(got, want) {
		t.Errorf("Ancestors(x) = %v, want %v", got, want)
	}

	if got, want := tr.SubtreeLen(n["f"]), 6; got != want {
		t.Errorf("SubtreeLen(f) = %d, want %d", got, want)
	}

	if !tr.Contains(n["f"], n["use"]) || tr.Contains(n["param"], n["use"]) {
		t.Error("Contains reports wrong subtree membership")
	}

	if got := tr.Span(n["f"]); got != (Span{Start: 1, End: 8}) {
		t.Errorf("Span(f) = %v, want {1 8}", got)
	}
}

func TestTreeBindings(t *testing.T) {
	t.Parallel()

	tr, n := buildSample(t)

	if decl, ok := tr.BindingOf(n["x"]); !ok || decl != n["var"] {
		t.Errorf("BindingOf(x) = %d, %t, want %d, true", decl, ok, n["var"])
	}

	if _, ok := tr.BindingOf(n["use"]); ok {
		t.Error("BindingOf(use) reports a binding site")
	}

	if got, want := slices.Collect(tr.Bindings(n["param"])), []Node{n["a"]}; !slices.Equal(got, want) {
		t.Errorf("Bindings(param) = %v, want %v", got, want)
	}
}

func TestBuildUnbalanced(t *testing.T) {
	t.Parallel()

	var b Builder

	b.Open(File, "", 0)
	b.Open(Other, "", 1)
	b.Leaf(Identifier, "x", Span{Start: 2, End: 3})

	tr, err := b.Build()
	if !errors.Is(err, ErrUnbalanced) {
		t.Errorf("Build() error = %v, want %v", err, ErrUnbalanced)
	}

	if got, want := tr.SubtreeLen(tr.Root()), 3; got != want {
		t.Errorf("SubtreeLen(root) = %d, want %d", got, want)
	}
}

func TestBuildSecondRoot(t *testing.T) {
	t.Parallel()

	var b Builder

	root := b.Open(File, "", 0)
	b.Close(1)

	second := b.Open(Other, "", 2)
	use := b.Leaf(Identifier, "x", Span{Start: 3, End: 4})
	b.Close(5)

	tr, err := b.Build()
	if !errors.Is(err, ErrUnbalanced) {
		t.Errorf("Build() error = %v, want %v", err, ErrUnbalanced)
	}

	if got := tr.Parent(second); got != root {
		t.Errorf("Parent(second) = %d, want %d", got, root)
	}

	if got, want := tr.SubtreeLen(root), tr.Len(); got != want {
		t.Errorf("SubtreeLen(root) = %d, want %d", got, want)
	}

	if !tr.Contains(root, use) {
		t.Error("Expected root to contain the second root's children")
	}

	if got, want := tr.Span(root).End, 5; got != want {
		t.Errorf("Span(root).End = %d, want %d", got, want)
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		kind Kind
		want string
	}{
		{Identifier, "Identifier"},
		{ArrowFunction, "ArrowFunction"},
		{Kind(200), "Kind(200)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
