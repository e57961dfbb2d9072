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

package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"fillmore-labs.com/noclosures/internal/closures"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrInvalidConfig is returned for configurations with out of range values.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the checker configuration, loaded from a YAML file and overridden by flags.
type Config struct {
	// Variant selects the closure rule.
	Variant closures.Variant `yaml:"variant"`

	// Exclude lists file or directory name patterns to skip, in [filepath.Match] syntax.
	Exclude []string `yaml:"exclude"`

	// Jobs is the number of files analyzed concurrently.
	Jobs int `yaml:"jobs"`

	// Format is the output format, "text" or "json".
	Format string `yaml:"format"`
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() Config {
	return Config{
		Variant: closures.ClosureCapture,
		Jobs:    4,
		Format:  FormatText,
	}
}

// LoadConfig reads a YAML configuration, starting from [DefaultConfig].
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	return DecodeConfig(f)
}

// DecodeConfig decodes a YAML configuration, starting from [DefaultConfig]. Unknown keys are rejected.
func DecodeConfig(r io.Reader) (Config, error) {
	c := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("can't decode config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Jobs < 1 {
		return fmt.Errorf("%w: jobs must be positive, got %d", ErrInvalidConfig, c.Jobs)
	}

	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, c.Format)
	}

	for _, pattern := range c.Exclude {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return fmt.Errorf("%w: exclude pattern %q: %v", ErrInvalidConfig, pattern, err)
		}
	}

	return nil
}

// LogValue implements [slog.LogValuer].
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("variant", c.Variant),
		slog.Any("exclude", c.Exclude),
		slog.Int("jobs", c.Jobs),
		slog.String("format", c.Format),
	)
}
