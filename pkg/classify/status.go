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

package classify

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/telekom/execution-report/pkg/record"
	"k8s.io/utils/ptr"
)

// Status labels. Raw values other than pass/fail are passed through
// capitalized, so a report may contain labels outside this set.
const (
	StatusPass    = "Pass"
	StatusFail    = "Fail"
	StatusPending = "Pending"
)

// DefaultDescription is used when a row has no actual result text.
const DefaultDescription = "Test case"

// NormalizeStatus maps a raw status to its report label: Pending when the
// value is missing, otherwise the value with the first letter title-cased and
// the rest lower-cased.
func NormalizeStatus(raw *string) string {
	if raw == nil {
		return StatusPending
	}
	return capitalize(*raw)
}

// IsPass reports whether the raw status is a pass, ignoring ASCII case.
func IsPass(raw *string) bool {
	return raw != nil && lowerEquals(*raw, "pass")
}

// IsFail reports whether the raw status is a fail, ignoring ASCII case.
func IsFail(raw *string) bool {
	return raw != nil && lowerEquals(*raw, "fail")
}

// lowerEquals compares the lower-cased s with the ASCII word. Equal byte
// lengths keep non-ASCII look-alikes such as "paſs" or "FAİL" from matching.
func lowerEquals(s, word string) bool {
	return len(s) == len(word) && strings.ToLower(s) == word
}

// Describe returns the test description for rec.
func Describe(rec record.Record) string {
	return ptr.Deref(rec.Value(record.FieldActual), DefaultDescription)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToTitle(r)) + strings.ToLower(s[size:])
}
