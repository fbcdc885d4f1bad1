package entities

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultReportFileName is written when the output path names a directory.
	DefaultReportFileName = "version_check.csv"

	csvSuffix      = ".csv"
	reportFileMode = 0o600
	columnGap      = "  "
)

// reportHeader is the fixed first row of every report.
var reportHeader = []string{"package", "version", "latest", "compare"}

// ComparisonResult is one report row: a requirement compared against the
// latest version known to the index. Immutable once created.
type ComparisonResult struct {
	Name            string
	DeclaredVersion string
	LatestVersion   string
	Classification  Classification
}

// cells returns the row values in report column order.
func (c ComparisonResult) cells() []string {
	return []string{c.Name, c.DeclaredVersion, c.LatestVersion, string(c.Classification)}
}

// Report is an ordered collection of comparison rows. Row order equals
// manifest order regardless of how the rows were produced.
type Report struct {
	rows []ComparisonResult
}

// NewReport creates a report over rows, preserving their order.
func NewReport(rows []ComparisonResult) *Report {
	return &Report{rows: rows}
}

// Append adds a row at the end of the report.
func (r *Report) Append(row ComparisonResult) {
	r.rows = append(r.rows, row)
}

// Rows returns the rows in insertion order.
func (r *Report) Rows() []ComparisonResult {
	return r.rows
}

// Len returns the number of data rows, header excluded.
func (r *Report) Len() int {
	return len(r.rows)
}

// Table renders the report as an aligned text table: the header plus one row
// per requirement, each column padded to its widest cell.
func (r *Report) Table() string {
	widths := make([]int, len(reportHeader))
	for i, header := range reportHeader {
		widths[i] = len(header)
	}
	for _, row := range r.rows {
		for i, cell := range row.cells() {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	formatRow := func(cells []string) string {
		padded := make([]string, len(cells))
		for i, cell := range cells {
			padded[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		return strings.Join(padded, columnGap)
	}

	lines := make([]string, 0, len(r.rows)+1)
	lines = append(lines, formatRow(reportHeader))
	for _, row := range r.rows {
		lines = append(lines, formatRow(row.cells()))
	}
	return strings.Join(lines, "\n")
}

// WriteCSV writes the report to w as CSV, header row first.
func (r *Report) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(reportHeader); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}
	for _, row := range r.rows {
		if err := writer.Write(row.cells()); err != nil {
			return fmt.Errorf("failed to write report row for %q: %w", row.Name, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush report: %w", err)
	}
	return nil
}

// SaveCSV writes the report as CSV to the file at path.
func (r *Report) SaveCSV(path string) error {
	var buf bytes.Buffer
	if err := r.WriteCSV(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), reportFileMode); err != nil {
		return fmt.Errorf("failed to write report file %q: %w", path, err)
	}
	return nil
}

// ResolveOutputPath maps an output flag value to the CSV file that should be
// written: a directory gains DefaultReportFileName, and any other path is
// forced to carry the .csv suffix.
func ResolveOutputPath(output string) string {
	if info, statErr := os.Stat(output); statErr == nil && info.IsDir() {
		return filepath.Join(output, DefaultReportFileName)
	}
	if !strings.HasSuffix(output, csvSuffix) {
		return output + csvSuffix
	}
	return output
}
