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

package gclplugin

import noclosures "fillmore-labs.com/noclosures/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Variant selects the closure rule, "closure" or "declaration".
	Variant *noclosures.Variant `json:"variant,omitzero"`
}

// Options converts [Settings] into a list of [noclosures.Option] for the noclosures analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []noclosures.Option {
	var opts []noclosures.Option

	opts = appendOption(opts, s.Variant, noclosures.WithVariant)

	return opts
}

// appendOption appends a non-nil setting to a [noclosures.Option] list.
func appendOption[T any](opts []noclosures.Option, value *T, constructor func(T) noclosures.Option) []noclosures.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
