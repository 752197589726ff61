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
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Theme holds the colors and font of the rendered report.
type Theme struct {
	Font             string
	HeaderBackground string
	HeaderForeground string
	PassColor        string
	FailColor        string
	OtherColor       string
}

// DefaultTheme is the house style of the execution report.
var DefaultTheme = Theme{
	Font:             "Calibri",
	HeaderBackground: "#002060",
	HeaderForeground: "white",
	PassColor:        "#28a745",
	FailColor:        "#dc3545",
	OtherColor:       "#ffc107",
}

// StatusColor returns the cell color for a status label.
func (t Theme) StatusColor(status string) string {
	switch strings.ToLower(status) {
	case "pass":
		return t.PassColor
	case "fail":
		return t.FailColor
	default:
		return t.OtherColor
	}
}

type reportView struct {
	Subject string
	Theme   Theme
	Report
}

var (
	// text/template on purpose: cell values come from our own test runs and
	// are inserted verbatim.
	reportTemplate = template.New("report").Funcs(sprig.TxtFuncMap())

	//go:embed templates/report.html.tmpl
	reportTemplateRaw string
)

func init() {
	if _, err := reportTemplate.Parse(reportTemplateRaw); err != nil {
		panic(err)
	}
}

// Render produces the HTML document for rep using DefaultTheme.
func Render(rep Report, subject string) (string, error) {
	return RenderWithTheme(rep, subject, DefaultTheme)
}

// RenderWithTheme produces the HTML document for rep.
func RenderWithTheme(rep Report, subject string, theme Theme) (string, error) {
	b := bytes.Buffer{}
	if err := reportTemplate.Execute(&b, reportView{Subject: subject, Theme: theme, Report: rep}); err != nil {
		return "", fmt.Errorf("rendering report: %w", err)
	}
	return b.String(), nil
}
