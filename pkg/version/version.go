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
	"fmt"
	"runtime"
	"time"

	"k8s.io/utils/ptr"
)

// Set with -ldflags "-X github.com/telekom/execution-report/pkg/version.Version=v1.2.0" etc.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// BuildInfo describes the running execreport binary.
type BuildInfo struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"gitCommit" yaml:"gitCommit"`
	BuildDate string `json:"buildDate" yaml:"buildDate"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`
	Platform  string `json:"platform" yaml:"platform"`
	// BuildTime is BuildDate parsed as RFC 3339, nil when it does not parse.
	BuildTime *time.Time `json:"buildTime,omitempty" yaml:"buildTime,omitempty"`
}

func GetBuildInfo() BuildInfo {
	info := BuildInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if t, err := time.Parse(time.RFC3339, BuildDate); err == nil {
		info.BuildTime = ptr.To(t.UTC())
	}
	return info
}

// String is the line printed by "execreport version".
func (b BuildInfo) String() string {
	return fmt.Sprintf("execreport %s (commit: %s, built: %s)", b.Version, b.GitCommit, b.BuildDate)
}

// Mailer is the value of the X-Mailer header on report mails.
func Mailer() string {
	info := GetBuildInfo()
	return fmt.Sprintf("execreport/%s (%s)", info.Version, info.Platform)
}
