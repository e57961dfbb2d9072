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

// Package gosource converts type-checked Go syntax into the tree the closure analysis walks.
//
// Functions with a receiver become methods, function literals become anonymous functions. Receivers,
// parameters and named results are parameters, while var specs, short variable declarations, range
// clauses and type switch guards declare variables. Expressions in type position are pruned, and a
// selector on a method receiver is treated like a receiver keyword.
package gosource

import (
	"go/ast"
	"go/token"
	"go/types"

	"fillmore-labs.com/noclosures/internal/closures"
	"fillmore-labs.com/noclosures/internal/tree"
)

// File is a converted Go source file.
type File struct {
	// Tree is the syntax tree, with [token.Pos] spans.
	Tree *tree.Tree

	resolver
}

// Build converts a type-checked file. Identifiers declared in other files stay unresolved.
func Build(file *ast.File, info *types.Info) (*File, error) {
	c := converter{
		info:      info,
		receivers: make(map[types.Object]struct{}),
		implicits: make(map[*ast.Ident][]types.Object),
		resolver: resolver{
			uses:  make(map[tree.Node]types.Object),
			decls: make(map[types.Object]closures.Declaration),
		},
	}

	ast.Inspect(file, c.visit)

	t, err := c.b.Build()
	if err != nil {
		return nil, err
	}

	return &File{Tree: t, resolver: c.resolver}, nil
}

type converter struct {
	b     tree.Builder
	info  *types.Info
	stack []frame

	// receivers are the receiver variables of all methods seen.
	receivers map[types.Object]struct{}

	// implicits maps type switch guard identifiers to the per-clause variables they declare.
	implicits map[*ast.Ident][]types.Object

	resolver
}

type frame struct {
	node ast.Node
	kind tree.Kind
	id   tree.Node
}

func (c *converter) parent() frame {
	if len(c.stack) == 0 {
		return frame{id: tree.None}
	}

	return c.stack[len(c.stack)-1]
}

// visit is the [ast.Inspect] callback.
func (c *converter) visit(n ast.Node) bool {
	if n == nil {
		top := c.stack[len(c.stack)-1]
		c.stack = c.stack[:len(c.stack)-1]
		c.b.Close(int(top.node.End()))

		return false
	}

	switch n.(type) {
	case *ast.CommentGroup, *ast.Comment:
		return false
	}

	if c.typePosition(n) {
		c.b.Leaf(tree.TypeReference, "", span(n))

		return false
	}

	if id, ok := n.(*ast.Ident); ok {
		c.ident(id)

		return false
	}

	kind := c.kind(n)

	id := c.b.Open(kind, "", int(n.Pos()))
	c.stack = append(c.stack, frame{node: n, kind: kind, id: id})

	switch n := n.(type) {
	case *ast.FuncDecl:
		c.recordReceivers(n.Recv)

	case *ast.TypeSwitchStmt:
		c.recordImplicits(n)
	}

	return true
}

// kind maps Go syntax to tree kinds.
func (c *converter) kind(n ast.Node) tree.Kind {
	switch n := n.(type) {
	case *ast.File:
		return tree.File

	case *ast.FuncDecl:
		if n.Recv != nil {
			return tree.MethodDeclaration
		}

		return tree.FunctionDeclaration

	case *ast.FuncLit:
		return tree.FunctionExpression

	case *ast.Field:
		if _, ok := c.parent().node.(*ast.FieldList); ok && len(c.stack) > 1 {
			switch c.stack[len(c.stack)-2].node.(type) {
			case *ast.FuncType, *ast.FuncDecl:
				return tree.Parameter
			}
		}

		return tree.Other

	case *ast.SelectorExpr:
		return tree.PropertyAccess

	case *ast.AssignStmt:
		if n.Tok == token.DEFINE {
			return tree.VariableDeclaration
		}

	case *ast.ValueSpec:
		if len(n.Names) > 0 {
			if _, ok := c.info.Defs[n.Names[0]].(*types.Var); ok {
				return tree.VariableDeclaration
			}
		}

	case *ast.RangeStmt:
		if n.Tok == token.DEFINE {
			return tree.VariableDeclaration
		}
	}

	return tree.Other
}

// typePosition reports whether n is an expression denoting a type or a type parameter list.
func (c *converter) typePosition(n ast.Node) bool {
	switch n := n.(type) {
	case *ast.ArrayType, *ast.ChanType, *ast.FuncType, *ast.InterfaceType, *ast.MapType, *ast.StructType:
		// A function signature holds parameters, its types are pruned field by field.
		if _, ok := n.(*ast.FuncType); ok {
			switch p := c.parent().node.(type) {
			case *ast.FuncDecl:
				return false

			case *ast.FuncLit:
				return p.Type != n
			}
		}

		return true

	case *ast.TypeSpec:
		return true

	case *ast.FieldList:
		switch p := c.parent().node.(type) {
		case *ast.FuncType:
			return p.TypeParams == n
		}

		return false
	}

	if f, ok := c.parent().node.(*ast.Field); ok && f.Type == n {
		return true
	}

	if e, ok := n.(ast.Expr); ok {
		if tv, ok := c.info.Types[e]; ok && tv.IsType() {
			return true
		}
	}

	return false
}

func (c *converter) ident(id *ast.Ident) {
	parent := c.parent()

	if sel, ok := parent.node.(*ast.SelectorExpr); ok {
		if sel.Sel == id {
			c.b.Leaf(tree.PropertyName, id.Name, span(id))

			return
		}

		if _, ok := c.receivers[c.info.Uses[id]]; ok {
			c.b.Leaf(tree.Receiver, id.Name, span(id))

			return
		}
	}

	n := c.b.Leaf(tree.Identifier, id.Name, span(id))

	if obj := c.info.Uses[id]; obj != nil {
		c.uses[n] = obj

		return
	}

	if !parent.kind.Declaration() || id.Name == "_" {
		return
	}

	kind := closures.DeclVariable
	if parent.kind == tree.Parameter {
		kind = closures.DeclParameter
	}

	decl := closures.Declaration{Kind: kind, Node: n, Name: id.Name}

	if v, ok := c.info.Defs[id].(*types.Var); ok {
		c.b.Bind(parent.id, n)
		c.decls[v] = decl
	}

	if objs, ok := c.implicits[id]; ok {
		c.b.Bind(parent.id, n)

		for _, obj := range objs {
			c.decls[obj] = decl
		}
	}
}

func (c *converter) recordReceivers(recv *ast.FieldList) {
	if recv == nil {
		return
	}

	for _, field := range recv.List {
		for _, name := range field.Names {
			if obj := c.info.Defs[name]; obj != nil {
				c.receivers[obj] = struct{}{}
			}
		}
	}
}

// recordImplicits remembers the per-clause variables of a type switch guard v := x.(type).
func (c *converter) recordImplicits(n *ast.TypeSwitchStmt) {
	assign, ok := n.Assign.(*ast.AssignStmt)
	if !ok || len(assign.Lhs) != 1 {
		return
	}

	guard, ok := assign.Lhs[0].(*ast.Ident)
	if !ok {
		return
	}

	var objs []types.Object

	for _, stmt := range n.Body.List {
		if obj := c.info.Implicits[stmt]; obj != nil {
			objs = append(objs, obj)
		}
	}

	c.implicits[guard] = objs
}

func span(n ast.Node) tree.Span {
	return tree.Span{Start: int(n.Pos()), End: int(n.End())}
}
