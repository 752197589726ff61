/*
Copyright 2026.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// Format selects how a command prints its result.
type Format string

const (
	// FormatTable is the human readable default. Each command renders its
	// own table or text line for it.
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

var formats = []Format{FormatTable, FormatJSON, FormatYAML}

// ParseFormat maps an --output value to a Format. Matching ignores case and
// surrounding blanks; empty selects FormatTable.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FormatTable, nil
	}
	if !slices.Contains(formats, f) {
		return "", fmt.Errorf("unknown output format %q, want one of table, json, yaml", s)
	}
	return f, nil
}

// Structured reports whether f is encoded by WriteObject.
func (f Format) Structured() bool {
	return f == FormatJSON || f == FormatYAML
}

// WriteObject encodes obj as indented JSON or as YAML.
func WriteObject(w io.Writer, format Format, obj any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(obj); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(obj); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("format %s has no object encoding", format)
	}
}
