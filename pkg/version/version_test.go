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

package version

import (
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBuildVars(t *testing.T, version, commit, date string) {
	t.Helper()
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	t.Cleanup(func() {
		Version, GitCommit, BuildDate = origVersion, origCommit, origDate
	})
	Version, GitCommit, BuildDate = version, commit, date
}

func TestGetBuildInfo(t *testing.T) {
	tests := []struct {
		name          string
		date          string
		wantBuildTime *time.Time
	}{
		{
			name:          "release build",
			date:          "2026-10-01T10:30:00+02:00",
			wantBuildTime: func() *time.Time { tm := time.Date(2026, 10, 1, 8, 30, 0, 0, time.UTC); return &tm }(),
		},
		{name: "local build without date", date: "unknown"},
		{name: "unparsable date", date: "yesterday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBuildVars(t, "v0.3.1", "1a2b3c4", tt.date)

			info := GetBuildInfo()
			assert.Equal(t, "v0.3.1", info.Version)
			assert.Equal(t, "1a2b3c4", info.GitCommit)
			assert.Equal(t, tt.date, info.BuildDate)
			assert.Equal(t, runtime.Version(), info.GoVersion)
			assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
			if tt.wantBuildTime == nil {
				assert.Nil(t, info.BuildTime)
				return
			}
			require.NotNil(t, info.BuildTime)
			assert.True(t, tt.wantBuildTime.Equal(*info.BuildTime), "got %v", info.BuildTime)
		})
	}
}

func TestBuildInfo_String(t *testing.T) {
	setBuildVars(t, "v0.3.1", "1a2b3c4", "2026-10-01T08:30:00Z")

	assert.Equal(t, "execreport v0.3.1 (commit: 1a2b3c4, built: 2026-10-01T08:30:00Z)", GetBuildInfo().String())
}

func TestMailer(t *testing.T) {
	setBuildVars(t, "v0.3.1", "1a2b3c4", "unknown")

	got := Mailer()
	assert.True(t, strings.HasPrefix(got, "execreport/v0.3.1 ("), got)
	assert.True(t, strings.HasSuffix(got, "("+runtime.GOOS+"/"+runtime.GOARCH+")"), got)
	assert.NotContains(t, got, "1a2b3c4", "commit stays out of outgoing mail headers")
}
