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

package closures_test

import (
	"testing"

	. "fillmore-labs.com/noclosures/internal/closures"
	"fillmore-labs.com/noclosures/internal/tree"
)

// decl is a declaration whose binding node is known once the fixture has built it.
type decl struct {
	kind DeclKind
	name string
	node tree.Node
}

func variable(name string) *decl  { return &decl{kind: DeclVariable, name: name, node: tree.None} }
func parameter(name string) *decl { return &decl{kind: DeclParameter, name: name, node: tree.None} }
func function(name string) *decl  { return &decl{kind: DeclOther, name: name, node: tree.None} }

// fixture builds hand-made trees together with a resolver mapping nodes to declarations.
type fixture struct {
	b       tree.Builder
	pos     int
	refs    map[tree.Node]*decl
	exports map[tree.Node]*decl
}

func newFixture() *fixture {
	f := &fixture{
		refs:    make(map[tree.Node]*decl),
		exports: make(map[tree.Node]*decl),
	}
	f.b.Open(tree.File, "", f.next())

	return f
}

func (f *fixture) next() int {
	f.pos++

	return f.pos
}

func (f *fixture) node(kind tree.Kind, text string, body func()) tree.Node {
	n := f.b.Open(kind, text, f.next())
	if body != nil {
		body()
	}

	f.b.Close(f.next())

	return n
}

func (f *fixture) leaf(kind tree.Kind, text string) tree.Node {
	start := f.next()

	return f.b.Leaf(kind, text, tree.Span{Start: start, End: start + len(text)})
}

func (f *fixture) function(kind tree.Kind, body func()) tree.Node {
	return f.node(kind, "", body)
}

func (f *fixture) bind(kind tree.Kind, d *decl, init func()) tree.Node {
	return f.node(kind, "", func() {
		id := f.leaf(tree.Identifier, d.name)
		d.node = id
		f.refs[id] = d
		f.b.Bind(f.b.Current(), id)

		if init != nil {
			init()
		}
	})
}

func (f *fixture) variable(d *decl, init func()) tree.Node { return f.bind(tree.VariableDeclaration, d, init) }

func (f *fixture) param(d *decl) tree.Node { return f.bind(tree.Parameter, d, nil) }

func (f *fixture) ref(d *decl) tree.Node {
	n := f.leaf(tree.Identifier, d.name)
	f.refs[n] = d

	return n
}

func (f *fixture) global(name string) tree.Node { return f.leaf(tree.Identifier, name) }

func (f *fixture) literal() tree.Node { return f.leaf(tree.Other, "1") }

func (f *fixture) access(base func(), property string) tree.Node {
	return f.node(tree.PropertyAccess, "", func() {
		base()
		f.leaf(tree.PropertyName, property)
	})
}

func (f *fixture) this() { f.leaf(tree.Receiver, "this") }

func (f *fixture) export(d *decl) tree.Node {
	n := f.leaf(tree.ExportSpecifier, d.name)
	f.exports[n] = d

	return n
}

func (f *fixture) build(t *testing.T) (*tree.Tree, Resolver) {
	t.Helper()

	f.b.Close(f.next())

	tr, err := f.b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	return tr, resolver{refs: f.refs, exports: f.exports}
}

type resolver struct {
	refs, exports map[tree.Node]*decl
}

func (r resolver) SymbolAt(n tree.Node) (Declaration, bool) { return lookup(r.refs, n) }

func (r resolver) ExportTargetOf(n tree.Node) (Declaration, bool) { return lookup(r.exports, n) }

func lookup(m map[tree.Node]*decl, n tree.Node) (Declaration, bool) {
	d, ok := m[n]
	if !ok {
		return Declaration{}, false
	}

	return Declaration{Kind: d.kind, Node: d.node, Name: d.name}, true
}
