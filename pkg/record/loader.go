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
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/telekom/execution-report/pkg/metrics"
	"k8s.io/utils/ptr"
)

// ErrNoHeader is returned when the input has no header row.
var ErrNoHeader = errors.New("csv input has no header row")

// nullMarkers are cell values treated as missing: the default set pandas
// recognizes when reading a CSV. Matching is exact, so padded markers and
// whitespace-only cells are values.
var nullMarkers = map[string]struct{}{
	"":         {},
	"nan":      {},
	"NaN":      {},
	"-nan":     {},
	"-NaN":     {},
	"NA":       {},
	"N/A":      {},
	"n/a":      {},
	"null":     {},
	"NULL":     {},
	"None":     {},
	"<NA>":     {},
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"1.#IND":   {},
	"1.#QNAN":  {},
}

const utf8BOM = "\ufeff"

// Load reads all records from the CSV file at path.
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening results file %s: %w", path, err)
	}
	defer f.Close()

	records, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading results file %s: %w", path, err)
	}
	return records, nil
}

// Read parses CSV input into records. The first row is the header; column
// names are normalized with NormalizeName. Short rows leave trailing fields
// absent.
func Read(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	// first occurrence of a duplicated column wins
	columns := make([]string, len(header))
	seen := make(map[string]struct{}, len(header))
	for i, name := range header {
		n := NormalizeName(name)
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		columns[i] = n
	}

	var records []Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", line, err)
		}

		fields := make(map[string]*string, len(columns))
		for i, name := range columns {
			if name == "" {
				continue
			}
			fields[name] = nil
			if i < len(row) && !isNull(row[i]) {
				fields[name] = ptr.To(row[i])
			}
		}
		records = append(records, Record{fields: fields})
	}

	metrics.RecordsLoaded.Add(float64(len(records)))
	return records, nil
}

func isNull(cell string) bool {
	_, ok := nullMarkers[cell]
	return ok
}
