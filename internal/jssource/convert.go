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
	"iter"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/noclosures/internal/closures"
	"fillmore-labs.com/noclosures/internal/tree"
)

// typeNode reports whether typ is a TypeScript syntax kind in type position, pruned from the tree.
func typeNode(typ string) bool {
	switch typ {
	case "type_annotation", "type_arguments", "type_parameters",
		"type_predicate_annotation", "asserts_annotation",
		"omitting_type_annotation", "opting_type_annotation",
		"interface_declaration", "type_alias_declaration", "implements_clause",
		"ambient_declaration", "abstract_method_signature", "index_signature",
		"function_signature", "method_signature",
		"type_identifier", "nested_type_identifier", "predefined_type", "generic_type",
		"union_type", "intersection_type", "object_type", "array_type", "tuple_type",
		"function_type", "constructor_type", "literal_type", "lookup_type",
		"index_type_query", "type_query", "conditional_type", "parenthesized_type",
		"readonly_type", "template_literal_type", "infer_type", "existential_type":
		return true

	default:
		return false
	}
}

// binding is the target of identifiers in binding position.
type binding struct {
	decl  tree.Node
	kind  closures.DeclKind
	scope *scope
}

type converter struct {
	b        tree.Builder
	src      []byte
	scope    *scope
	reexport bool

	resolver
}

func convert(root *sitter.Node, src []byte) (*tree.Tree, resolver, error) {
	module := newScope(nil, true)

	c := converter{
		src:   src,
		scope: module,
		resolver: resolver{
			uses:    make(map[tree.Node]use),
			exports: make(map[tree.Node]string),
			module:  module,
		},
	}

	c.children(root, tree.File)

	t, err := c.b.Build()
	if err != nil {
		return nil, resolver{}, err
	}

	return t, c.resolver, nil
}

func (c *converter) node(n *sitter.Node) {
	if !n.IsNamed() || n.IsMissing() {
		return
	}

	typ := n.Type()

	if typeNode(typ) {
		c.b.Leaf(tree.TypeReference, "", span(n))

		return
	}

	switch typ {
	case "comment", "html_comment", "hash_bang_line":
		return

	case "identifier", "shorthand_property_identifier":
		c.reference(n)

	case "property_identifier", "private_property_identifier":
		c.b.Leaf(tree.PropertyName, n.Content(c.src), span(n))

	case "this", "super":
		c.b.Leaf(tree.Receiver, typ, span(n))

	case "member_expression":
		c.children(n, tree.PropertyAccess)

	case "function_declaration", "generator_function_declaration":
		c.function(n, tree.FunctionDeclaration)

	case "function", "function_expression", "generator_function":
		c.function(n, tree.FunctionExpression)

	case "arrow_function":
		c.function(n, tree.ArrowFunction)

	case "method_definition":
		kind := tree.MethodDeclaration
		if name := n.ChildByFieldName("name"); name != nil && name.Content(c.src) == "constructor" {
			kind = tree.Constructor
		}

		c.function(n, kind)

	case "variable_declaration":
		c.declarations(n, c.scope.hoist())

	case "lexical_declaration":
		c.declarations(n, c.scope)

	case "statement_block", "switch_body", "for_statement", "class_body":
		c.block(n)

	case "for_in_statement":
		c.forIn(n)

	case "catch_clause":
		c.catchClause(n)

	case "class_declaration", "abstract_class_declaration", "enum_declaration":
		c.named(n, c.scope)

	case "import_statement":
		c.importStatement(n)

	case "export_statement":
		c.exportStatement(n)

	case "export_specifier":
		c.exportSpecifier(n)

	default:
		c.children(n, tree.Other)
	}
}

func (c *converter) children(n *sitter.Node, kind tree.Kind) tree.Node {
	id := c.b.Open(kind, "", int(n.StartByte()))

	for child := range children(n) {
		c.node(child)
	}

	c.b.Close(int(n.EndByte()))

	return id
}

func (c *converter) block(n *sitter.Node) {
	outer := c.scope
	c.scope = newScope(outer, false)
	c.children(n, tree.Other)
	c.scope = outer
}

func (c *converter) reference(n *sitter.Node) {
	name := n.Content(c.src)
	id := c.b.Leaf(tree.Identifier, name, span(n))
	c.uses[id] = use{scope: c.scope, name: name}
}

// declare emits a name that is neither a variable nor a parameter, so it shadows outer names.
func (c *converter) declare(n *sitter.Node, s *scope) {
	name := n.Content(c.src)
	id := c.b.Leaf(tree.Identifier, name, span(n))
	s.declare(closures.Declaration{Kind: closures.DeclOther, Node: id, Name: name})
	c.uses[id] = use{scope: s, name: name}
}

func (c *converter) bind(n *sitter.Node, b binding) {
	name := n.Content(c.src)
	id := c.b.Leaf(tree.Identifier, name, span(n))
	c.b.Bind(b.decl, id)
	b.scope.declare(closures.Declaration{Kind: b.kind, Node: id, Name: name})
	c.uses[id] = use{scope: b.scope, name: name}
}

// named converts a class or enum declaration, declaring its name in s. TypeScript class names are
// type identifiers.
func (c *converter) named(n *sitter.Node, s *scope) {
	name := n.ChildByFieldName("name")

	c.b.Open(tree.Other, "", int(n.StartByte()))

	for child := range children(n) {
		if same(child, name) && (child.Type() == "identifier" || child.Type() == "type_identifier") {
			c.declare(child, s)

			continue
		}

		c.node(child)
	}

	c.b.Close(int(n.EndByte()))
}

func (c *converter) function(n *sitter.Node, kind tree.Kind) {
	var (
		name  = n.ChildByFieldName("name")
		param = n.ChildByFieldName("parameter")
		body  = n.ChildByFieldName("body")
		outer = c.scope
		inner = newScope(outer, true)
	)

	c.b.Open(kind, "", int(n.StartByte()))
	c.scope = inner

	for child := range children(n) {
		switch {
		case same(child, name) && child.Type() == "identifier":
			if kind == tree.FunctionDeclaration {
				c.declare(child, outer.hoist())
			} else {
				c.declare(child, inner)
			}

		case child.Type() == "formal_parameters":
			c.b.Open(tree.Other, "", int(child.StartByte()))

			for p := range children(child) {
				c.parameter(p)
			}

			c.b.Close(int(child.EndByte()))

		case same(child, param):
			c.parameter(child)

		case same(child, body) && child.Type() == "statement_block":
			c.children(child, tree.Other)

		default:
			c.node(child)
		}
	}

	c.scope = outer
	c.b.Close(int(n.EndByte()))
}

func (c *converter) parameter(n *sitter.Node) {
	if !n.IsNamed() || n.IsMissing() || n.Type() == "comment" {
		return
	}

	id := c.b.Open(tree.Parameter, "", int(n.StartByte()))
	b := binding{decl: id, kind: closures.DeclParameter, scope: c.scope}

	switch n.Type() {
	case "required_parameter", "optional_parameter":
		pattern := n.ChildByFieldName("pattern")

		for child := range children(n) {
			if same(child, pattern) {
				c.pattern(child, b)
			} else {
				c.node(child)
			}
		}

	default:
		c.pattern(n, b)
	}

	c.b.Close(int(n.EndByte()))
}

// pattern converts a binding pattern. Default values are references.
func (c *converter) pattern(n *sitter.Node, b binding) {
	if !n.IsNamed() || n.IsMissing() {
		return
	}

	switch n.Type() {
	case "identifier", "shorthand_property_identifier_pattern":
		c.bind(n, b)

	case "object_pattern", "array_pattern", "rest_pattern":
		c.b.Open(tree.Other, "", int(n.StartByte()))

		for child := range children(n) {
			c.pattern(child, b)
		}

		c.b.Close(int(n.EndByte()))

	case "pair_pattern":
		c.patternField(n, "value", b)

	case "assignment_pattern", "object_assignment_pattern":
		c.patternField(n, "left", b)

	default:
		c.node(n)
	}
}

// patternField converts n, treating the named field as a binding pattern and the rest as expressions.
func (c *converter) patternField(n *sitter.Node, field string, b binding) {
	target := n.ChildByFieldName(field)

	c.b.Open(tree.Other, "", int(n.StartByte()))

	for child := range children(n) {
		if same(child, target) {
			c.pattern(child, b)
		} else {
			c.node(child)
		}
	}

	c.b.Close(int(n.EndByte()))
}

func (c *converter) declarations(n *sitter.Node, target *scope) {
	c.b.Open(tree.Other, "", int(n.StartByte()))

	for child := range children(n) {
		if child.Type() == "variable_declarator" {
			c.declarator(child, target)
		} else {
			c.node(child)
		}
	}

	c.b.Close(int(n.EndByte()))
}

func (c *converter) declarator(n *sitter.Node, target *scope) {
	name := n.ChildByFieldName("name")

	id := c.b.Open(tree.VariableDeclaration, "", int(n.StartByte()))
	b := binding{decl: id, kind: closures.DeclVariable, scope: target}

	for child := range children(n) {
		if same(child, name) {
			c.pattern(child, b)
		} else {
			c.node(child)
		}
	}

	c.b.Close(int(n.EndByte()))
}

// forIn converts for-in and for-of loops, which declare their left side when it has a keyword.
func (c *converter) forIn(n *sitter.Node) {
	outer := c.scope
	c.scope = newScope(outer, false)

	left := n.ChildByFieldName("left")
	keyword := declarationKeyword(n)

	c.b.Open(tree.Other, "", int(n.StartByte()))

	for child := range children(n) {
		if keyword == "" || !same(child, left) {
			c.node(child)

			continue
		}

		target := c.scope
		if keyword == "var" {
			target = c.scope.hoist()
		}

		id := c.b.Open(tree.VariableDeclaration, "", int(child.StartByte()))
		c.pattern(child, binding{decl: id, kind: closures.DeclVariable, scope: target})
		c.b.Close(int(child.EndByte()))
	}

	c.b.Close(int(n.EndByte()))

	c.scope = outer
}

func (c *converter) catchClause(n *sitter.Node) {
	outer := c.scope
	c.scope = newScope(outer, false)

	param := n.ChildByFieldName("parameter")

	c.b.Open(tree.Other, "", int(n.StartByte()))

	for child := range children(n) {
		if !same(child, param) {
			c.node(child)

			continue
		}

		id := c.b.Open(tree.VariableDeclaration, "", int(child.StartByte()))
		c.pattern(child, binding{decl: id, kind: closures.DeclVariable, scope: c.scope})
		c.b.Close(int(child.EndByte()))
	}

	c.b.Close(int(n.EndByte()))

	c.scope = outer
}

// importStatement declares the imported names in module scope.
func (c *converter) importStatement(n *sitter.Node) {
	id := c.b.Leaf(tree.Other, "", span(n))
	c.imported(n, id)
}

func (c *converter) imported(n *sitter.Node, decl tree.Node) {
	switch n.Type() {
	case "string", "comment":
		return

	case "identifier":
		name := n.Content(c.src)
		c.module.declare(closures.Declaration{Kind: closures.DeclOther, Node: decl, Name: name})

		return

	case "import_specifier":
		if alias := n.ChildByFieldName("alias"); alias != nil {
			c.imported(alias, decl)

			return
		}
	}

	for child := range children(n) {
		if child.IsNamed() {
			c.imported(child, decl)
		}
	}
}

func (c *converter) exportStatement(n *sitter.Node) {
	outer := c.reexport
	c.reexport = n.ChildByFieldName("source") != nil
	c.children(n, tree.Other)
	c.reexport = outer
}

func (c *converter) exportSpecifier(n *sitter.Node) {
	name := n.ChildByFieldName("name")
	if c.reexport || name == nil || name.Type() != "identifier" {
		c.b.Leaf(tree.Other, "", span(n))

		return
	}

	local := name.Content(c.src)
	id := c.b.Leaf(tree.ExportSpecifier, local, span(n))
	c.exports[id] = local
}

// declarationKeyword returns the var, let or const keyword of a loop header.
func declarationKeyword(n *sitter.Node) string {
	for child := range children(n) {
		if child.IsNamed() {
			continue
		}

		switch typ := child.Type(); typ {
		case "var", "let", "const":
			return typ
		}
	}

	return ""
}

func children(n *sitter.Node) iter.Seq[*sitter.Node] {
	return func(yield func(*sitter.Node) bool) {
		for i := range int(n.ChildCount()) {
			if !yield(n.Child(i)) {
				return
			}
		}
	}
}

// same reports whether a and b denote the same syntax node.
func same(a, b *sitter.Node) bool {
	return a != nil && b != nil &&
		a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Type() == b.Type()
}

func span(n *sitter.Node) tree.Span {
	return tree.Span{Start: int(n.StartByte()), End: int(n.EndByte())}
}
