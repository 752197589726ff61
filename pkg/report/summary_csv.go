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
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// OverallSummaryFile is the default file name of the overall summary artifact.
const OverallSummaryFile = "overall_execution_summary.csv"

// OverallSummaryHeader is the column layout of the overall summary artifact.
var OverallSummaryHeader = []string{
	"S No", "Total Test Case", "Executed Test Case", "Pending Test Case", "PASS", "FAIL",
}

// WriteOverallSummaryCSV writes the header and one line per row.
func WriteOverallSummaryCSV(w io.Writer, rows []OverallSummaryRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(OverallSummaryHeader); err != nil {
		return fmt.Errorf("write summary header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.SNo),
			strconv.Itoa(r.Total),
			strconv.Itoa(r.Executed),
			strconv.Itoa(r.Pending),
			strconv.Itoa(r.Pass),
			strconv.Itoa(r.Fail),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write summary record: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush summary: %w", err)
	}
	return nil
}

// SaveOverallSummary writes the overall summary artifact to path.
func SaveOverallSummary(path string, rows []OverallSummaryRow) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create summary file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close summary file: %w", cerr)
		}
	}()
	return WriteOverallSummaryCSV(f, rows)
}

// ReadOverallSummaryCSV parses an overall summary artifact. Columns are
// matched by header name, so reordered files are accepted.
func ReadOverallSummaryCSV(r io.Reader) ([]OverallSummaryRow, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("summary csv is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read summary header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(h)] = i
	}
	for _, col := range OverallSummaryHeader {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("summary csv is missing column %q", col)
		}
	}

	var rows []OverallSummaryRow
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read summary record: %w", err)
		}

		values := make([]int, len(OverallSummaryHeader))
		for i, col := range OverallSummaryHeader {
			v, err := strconv.Atoi(strings.TrimSpace(rec[index[col]]))
			if err != nil {
				return nil, fmt.Errorf("summary column %q: %w", col, err)
			}
			values[i] = v
		}
		rows = append(rows, OverallSummaryRow{
			SNo: values[0],
			Counts: Counts{
				Total:    values[1],
				Executed: values[2],
				Pending:  values[3],
				Pass:     values[4],
				Fail:     values[5],
			},
		})
	}
	return rows, nil
}

// LoadOverallSummary reads the overall summary artifact at path.
func LoadOverallSummary(path string) ([]OverallSummaryRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open summary file: %w", err)
	}
	defer f.Close()
	return ReadOverallSummaryCSV(f)
}
