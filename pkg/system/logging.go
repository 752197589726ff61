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

package system

import (
	"go.uber.org/zap"
)

// NewLogger builds the process logger: a development logger when debug is
// set, a JSON production logger otherwise.
func NewLogger(debug bool) (*zap.SugaredLogger, error) {
	var zlog *zap.Logger
	var err error
	if debug {
		zlog, err = zap.NewDevelopment()
	} else {
		zlog, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return zlog.Sugar(), nil
}

// RunFields returns key/value pairs identifying a report run, suitable for
// SugaredLogger.With. The input path is omitted when empty.
func RunFields(runID, input string) []interface{} {
	if input == "" {
		return []interface{}{"runID", runID}
	}
	return []interface{}{"runID", runID, "input", input}
}
