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

package jssource

import (
	"fillmore-labs.com/noclosures/internal/closures"
	"fillmore-labs.com/noclosures/internal/tree"
)

// scope is one level of the lexical scope chain.
type scope struct {
	parent   *scope
	function bool
	names    map[string]closures.Declaration
}

func newScope(parent *scope, function bool) *scope {
	return &scope{parent: parent, function: function, names: make(map[string]closures.Declaration)}
}

// hoist returns the nearest function scope, the target of var and function declarations.
func (s *scope) hoist() *scope {
	for !s.function {
		s = s.parent
	}

	return s
}

// declare adds a name. Redeclarations keep the first declaration.
func (s *scope) declare(d closures.Declaration) {
	if _, ok := s.names[d.Name]; ok {
		return
	}

	s.names[d.Name] = d
}

func (s *scope) lookup(name string) (closures.Declaration, bool) {
	for ; s != nil; s = s.parent {
		if d, ok := s.names[name]; ok {
			return d, true
		}
	}

	return closures.Declaration{}, false
}

// use is a name looked up from a scope.
type use struct {
	scope *scope
	name  string
}

// resolver resolves identifiers lazily against the completed scope chain.
type resolver struct {
	uses    map[tree.Node]use
	exports map[tree.Node]string
	module  *scope
}

var _ closures.Resolver = resolver{}

// SymbolAt implements [closures.Resolver].
func (r resolver) SymbolAt(n tree.Node) (closures.Declaration, bool) {
	u, ok := r.uses[n]
	if !ok {
		return closures.Declaration{}, false
	}

	return u.scope.lookup(u.name)
}

// ExportTargetOf implements [closures.Resolver]. Export specifiers refer to module scope.
func (r resolver) ExportTargetOf(n tree.Node) (closures.Declaration, bool) {
	name, ok := r.exports[n]
	if !ok {
		return closures.Declaration{}, false
	}

	d, ok := r.module.names[name]

	return d, ok
}
