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

package cli_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/noclosures/internal/cli"
	"fillmore-labs.com/noclosures/internal/closures"
)

func TestDecodeConfig(t *testing.T) {
	t.Parallel()

	const src = `variant: declaration
jobs: 2
format: json
exclude:
  - "*.min.js"
  - dist
`

	conf, err := DecodeConfig(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, Config{
		Variant: closures.UseBeforeDeclaration,
		Exclude: []string{"*.min.js", "dist"},
		Jobs:    2,
		Format:  FormatJSON,
	}, conf)
}

func TestDecodeConfigDefaults(t *testing.T) {
	t.Parallel()

	conf, err := DecodeConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), conf)

	conf, err = DecodeConfig(strings.NewReader("jobs: 8\n"))
	require.NoError(t, err)
	assert.Equal(t, closures.ClosureCapture, conf.Variant)
	assert.Equal(t, 8, conf.Jobs)
	assert.Equal(t, FormatText, conf.Format)
}

func TestDecodeConfigErrors(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name    string
		src     string
		invalid bool
	}{
		{name: "unknown_key", src: "variants: closure\n"},
		{name: "unknown_variant", src: "variant: lambda\n"},
		{name: "jobs", src: "jobs: 0\n", invalid: true},
		{name: "format", src: "format: xml\n", invalid: true},
		{name: "pattern", src: "exclude: [\"[\"]\n", invalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := DecodeConfig(strings.NewReader(tt.src))
			require.Error(t, err)

			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}
