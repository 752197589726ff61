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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	for _, debug := range []bool{true, false} {
		logger, err := NewLogger(debug)
		require.NoError(t, err)
		require.NotNil(t, logger)
		logger.Debugw("debug message", "debug", debug)
	}
}

func TestRunFields(t *testing.T) {
	assert.Equal(t, []interface{}{"runID", "r1"}, RunFields("r1", ""))
	assert.Equal(t, []interface{}{"runID", "r1", "input", "in.csv"}, RunFields("r1", "in.csv"))
}
