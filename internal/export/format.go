// Package export writes TCO comparisons to report formats. Every format is
// written with the extension and MIME type of its actual content.
package export

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/piwi3910/tcocompare/internal/model"
)

// ErrUnknownFormat is returned for an export format name that is not supported.
var ErrUnknownFormat = errors.New("unknown export format")

// Format identifies one report type.
type Format string

const (
	FormatPDF   Format = "pdf"
	FormatCards Format = "cards"
	FormatXLSX  Format = "xlsx"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
	FormatHTML  Format = "html"
)

// AllFormats lists every format in the order bundles are written.
func AllFormats() []Format {
	return []Format{FormatPDF, FormatCards, FormatXLSX, FormatCSV, FormatJSON, FormatHTML}
}

// ParseFormat converts a user-supplied name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "excel" {
		n = string(FormatXLSX)
	}
	for _, f := range AllFormats() {
		if string(f) == n {
			return f, nil
		}
	}
	return "", goerr.Wrap(ErrUnknownFormat, "unsupported export format", goerr.V("format", name))
}

// Extension returns the file extension, without the dot.
func (f Format) Extension() string {
	switch f {
	case FormatPDF, FormatCards:
		return "pdf"
	default:
		return string(f)
	}
}

// ContentType returns the MIME type of the written content.
func (f Format) ContentType() string {
	switch f {
	case FormatPDF, FormatCards:
		return "application/pdf"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatJSON:
		return "application/json"
	case FormatHTML:
		return "text/html; charset=utf-8"
	}
	return "application/octet-stream"
}

// FileName returns the file name used for this format given a base name.
func (f Format) FileName(base string) string {
	if f == FormatCards {
		return base + "-cards." + f.Extension()
	}
	return base + "." + f.Extension()
}

// Write renders cmp in format f.
func Write(w io.Writer, f Format, cmp model.Comparison) error {
	switch f {
	case FormatPDF:
		return PDF(w, cmp)
	case FormatCards:
		return VendorCards(w, cmp)
	case FormatXLSX:
		return XLSX(w, cmp)
	case FormatCSV:
		return CSV(w, cmp)
	case FormatJSON:
		return JSON(w, cmp)
	case FormatHTML:
		return HTML(w, cmp)
	}
	return goerr.Wrap(ErrUnknownFormat, "unsupported export format", goerr.V("format", string(f)))
}

// WriteFile creates path, including parent directories, and fills it with fn.
// A partially written file is removed on failure.
func WriteFile(path string, fn func(io.Writer) error) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()
	return fn(f)
}

// BaseName is the default file name stem for a comparison.
func BaseName(cmp model.Comparison) string {
	id := cmp.Scenario.ID
	if id == "" {
		id = "report"
	}
	return "tco-" + id
}

// Money renders whole dollars with thousands separators, e.g. $1,430,000.
func Money(v float64) string {
	r := math.Round(v)
	neg := r < 0
	s := fmt.Sprintf("%.0f", math.Abs(r))
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(s[:lead])
	for i := lead; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func vendorLabel(r model.VendorResult) string {
	if r.IsBaseline {
		return r.Breakdown.VendorName + " (baseline)"
	}
	return r.Breakdown.VendorName
}
