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
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	bold  = "\x1b[1m"
	reset = "\x1b[0m"
)

// printText writes one line per diagnostic, with the location in bold when color is set.
func printText(w io.Writer, results []Result, color bool) error {
	for _, r := range results {
		for _, d := range r.Diagnostics {
			loc := r.File.Position(d.Span.Start).String()
			if color {
				loc = bold + loc + reset
			}

			if _, err := fmt.Fprintf(w, "%s: %s [%s]\n", loc, d.Message, d.Category); err != nil {
				return err
			}
		}
	}

	return nil
}

type jsonDiagnostic struct {
	File      string `json:"file"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	EndLine   int    `json:"endLine"`
	EndColumn int    `json:"endColumn"`
	Category  string `json:"category"`
	Name      string `json:"name"`
	Message   string `json:"message"`
}

// printJSON writes all diagnostics as one JSON array.
func printJSON(w io.Writer, results []Result) error {
	out := []jsonDiagnostic{}

	for _, r := range results {
		for _, d := range r.Diagnostics {
			start, end := r.File.Position(d.Span.Start), r.File.Position(d.Span.End)

			out = append(out, jsonDiagnostic{
				File:      r.Path,
				Line:      start.Line,
				Column:    start.Column,
				EndLine:   end.Line,
				EndColumn: end.Column,
				Category:  d.Category.String(),
				Name:      d.Name,
				Message:   d.Message,
			})
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}

// colorOutput reports whether w is a terminal and colors are not disabled.
func colorOutput(w io.Writer, disabled bool) bool {
	if disabled || os.Getenv("NO_COLOR") != "" {
		return false
	}

	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}
