// Copyright 2025 Oliver Eikemeier. All Rights Reserved.
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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/noclosures/internal/closures"
	"fillmore-labs.com/noclosures/internal/config"
	"fillmore-labs.com/noclosures/internal/run"
)

// Option configures specific behavior of the noclosures [analysis.Analyzer].
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that also implements [Option].
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr implements [Option].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// Variant selects the closure rule of the analyzer.
type Variant = closures.Variant

const (
	// ClosureCapture treats function literals as boundaries and reports captured variables.
	ClosureCapture = closures.ClosureCapture

	// UseBeforeDeclaration treats only function declarations as boundaries.
	UseBeforeDeclaration = closures.UseBeforeDeclaration
)

// WithVariant selects the closure rule.
func WithVariant(variant Variant) Option { return variantOption{variant: variant} }

type variantOption struct{ variant Variant }

func (o variantOption) apply(r *run.Options) {
	r.Variant = o.variant
}

func (o variantOption) LogAttr() slog.Attr {
	return slog.Any("variant", o.variant)
}

// WithGenerated configures whether generated files are checked.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithNoLint configures whether //nolint:noclosures comments suppress diagnostics.
func WithNoLint(nolint bool) Option { return noLintOption{nolint: nolint} }

type noLintOption struct{ nolint bool }

func (o noLintOption) apply(r *run.Options) {
	r.Behavior.Set(config.HonorNoLint, o.nolint)
}

func (o noLintOption) LogAttr() slog.Attr {
	return slog.Bool("nolint", o.nolint)
}
