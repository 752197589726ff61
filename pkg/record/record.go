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

package record

import (
	"strings"

	"k8s.io/utils/ptr"
)

// Field names of interest in the execution results file. Names are stored
// normalized (trimmed, lower-cased).
const (
	FieldUsername  = "username"
	FieldOTP       = "otp"
	FieldPage      = "page"
	FieldStatus    = "status"
	FieldActual    = "actual"
	FieldOrderType = "order_type"
)

// Record is one row of the execution results file. A field is either present
// with a value or absent; absent fields are stored as nil.
type Record struct {
	fields map[string]*string
}

// New builds a Record from already normalized field names.
func New(fields map[string]*string) Record {
	r := Record{fields: make(map[string]*string, len(fields))}
	for name, value := range fields {
		r.fields[NormalizeName(name)] = value
	}
	return r
}

// Value returns the raw field value or nil when the field is absent.
func (r Record) Value(name string) *string {
	return r.fields[NormalizeName(name)]
}

// Get returns the field value and whether it is present.
func (r Record) Get(name string) (string, bool) {
	v := r.Value(name)
	return ptr.Deref(v, ""), v != nil
}

// Has reports whether the field is present.
func (r Record) Has(name string) bool {
	return r.Value(name) != nil
}

// Fields returns the normalized names of all columns known to the record,
// including absent ones.
func (r Record) Fields() []string {
	names := make([]string, 0, len(r.fields))
	for name := range r.fields {
		names = append(names, name)
	}
	return names
}

// NormalizeName trims and lower-cases a column name.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
