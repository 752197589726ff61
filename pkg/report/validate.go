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

package report

import (
	"errors"
	"fmt"
)

// ErrEmptyTable is wrapped by every ValidationError.
var ErrEmptyTable = errors.New("report table is empty")

// Table names used in validation errors.
const (
	TableDetail  = "detail"
	TableModules = "module summary"
	TableOverall = "overall summary"
)

// ValidationError reports an empty report table.
type ValidationError struct {
	Table string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s table is empty or missing", e.Table)
}

func (e *ValidationError) Unwrap() error {
	return ErrEmptyTable
}

// Validate fails when any of the three tables is empty. There is nothing
// worth sending in that case, so callers must check it before rendering or
// mailing.
func (r Report) Validate() error {
	switch {
	case len(r.Detail) == 0:
		return &ValidationError{Table: TableDetail}
	case len(r.Modules) == 0:
		return &ValidationError{Table: TableModules}
	case len(r.Overall) == 0:
		return &ValidationError{Table: TableOverall}
	}
	return nil
}
