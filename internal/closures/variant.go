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

package closures

import (
	"encoding"
	"errors"
	"fmt"
	"log/slog"

	"fillmore-labs.com/noclosures/internal/tree"
)

// ErrUnknownVariant is returned when parsing an unknown [Variant] name.
var ErrUnknownVariant = errors.New("unknown rule variant")

// Variant selects one of the two rule semantics.
type Variant uint8

//go:generate go tool stringer -type Variant -linecomment
const (
	// ClosureCapture forbids closures: arrow functions and function expressions are boundaries too,
	// and references outside any function are exempt.
	ClosureCapture Variant = iota // closure

	// UseBeforeDeclaration requires variables to be declared in the named function or method using them.
	// References outside any function are reported.
	UseBeforeDeclaration // declaration
)

// IsBoundary reports whether nodes of the given kind introduce a scope under this variant.
func (v Variant) IsBoundary(k tree.Kind) bool {
	switch k {
	case tree.FunctionDeclaration, tree.MethodDeclaration:
		return true

	case tree.Constructor, tree.ArrowFunction, tree.FunctionExpression:
		return v == ClosureCapture

	default:
		return false
	}
}

var (
	_ encoding.TextUnmarshaler = (*Variant)(nil)
	_ encoding.TextMarshaler   = Variant(0)
)

// MarshalText implements [encoding.TextMarshaler].
func (v Variant) MarshalText() ([]byte, error) {
	switch v {
	case ClosureCapture, UseBeforeDeclaration:
		return []byte(v.String()), nil

	default:
		return nil, fmt.Errorf("cannot marshal %s: %w", v, ErrUnknownVariant)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (v *Variant) UnmarshalText(b []byte) error {
	switch string(b) {
	case "closure", "closure-capture":
		*v = ClosureCapture

	case "declaration", "use-before-declaration":
		*v = UseBeforeDeclaration

	default:
		return fmt.Errorf("%w %q", ErrUnknownVariant, b)
	}

	return nil
}

// Set implements [flag.Value].
func (v *Variant) Set(s string) error {
	return v.UnmarshalText([]byte(s))
}

// LogValue implements [slog.LogValuer].
func (v Variant) LogValue() slog.Value {
	return slog.StringValue(v.String())
}
