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

// Package closures implements the scope-aware reference check.
//
// A single pre-order walk over a [tree.Tree] classifies every name reference. Each reference that
// resolves to a variable or parameter is checked against its nearest enclosing scope boundary: when
// that boundary does not itself declare the name, the reference crosses a function scope and is
// reported.
//
// Locality is decided by name only. A reference counts as local when any parameter or variable
// declaration directly inside the boundary binds the same name, even when the reference binds to a
// different declaration.
package closures

import (
	"context"
	"runtime/trace"

	"fillmore-labs.com/noclosures/internal/tree"
)

// Checker runs the reference check with a selected [Variant].
type Checker struct {
	Variant Variant
}

// Check returns the diagnostics for t in walk order.
func Check(t *tree.Tree, r Resolver, variant Variant) []Diagnostic {
	return Checker{Variant: variant}.Check(context.Background(), t, r)
}

// Check returns the diagnostics for t in walk order.
func (c Checker) Check(ctx context.Context, t *tree.Tree, r Resolver) []Diagnostic {
	defer trace.StartRegion(ctx, "CheckReferences").End()

	if t.Len() == 0 {
		return nil
	}

	s := newScopes(t, c.Variant)

	var diagnostics []Diagnostic

	for ref := range References(t, r) {
		if d, ok := c.check(s, ref); ok {
			diagnostics = append(diagnostics, d)
		}
	}

	return diagnostics
}

func (c Checker) check(s *scopes, ref Reference) (Diagnostic, bool) {
	if !ref.Decl.Kind.checked() {
		return Diagnostic{}, false
	}

	if _, ok := s.tree.BindingOf(ref.Node); ok {
		return Diagnostic{}, false // declaration site
	}

	name := s.tree.Text(ref.Node)
	if name == "" {
		name = ref.Decl.Name
	}

	if exempt(name) {
		return Diagnostic{}, false
	}

	boundary := s.enclosing(ref.Node)

	switch {
	case !boundary.Valid():
		if c.Variant == ClosureCapture {
			return Diagnostic{}, false
		}

		return c.diagnostic(s, ref, name, Unscoped, notDefinedInFunction(name)), true

	case s.declares(boundary, name):
		return Diagnostic{}, false

	case c.Variant == ClosureCapture:
		return c.diagnostic(s, ref, name, Capture, usedAsClosure(name)), true

	case s.enclosing(ref.Decl.Node).Valid():
		return c.diagnostic(s, ref, name, Capture, closuresNotAllowed(name)), true

	default:
		return c.diagnostic(s, ref, name, UseBefore, usedBeforeDeclaration(name)), true
	}
}

func (Checker) diagnostic(s *scopes, ref Reference, name string, category Category, message string) Diagnostic {
	return Diagnostic{
		Node:     ref.Node,
		Span:     s.tree.Span(ref.Node),
		Category: category,
		Name:     name,
		Message:  message,
	}
}

// exempt reports whether name is never checked: the implicit arguments collection and the global
// namespace alias.
func exempt(name string) bool {
	switch name {
	case "arguments", "global":
		return true

	default:
		return false
	}
}
