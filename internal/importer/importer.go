// Package importer reads vendor price quotes from CSV and Excel files.
// It supports automatic delimiter detection, flexible column mapping, and
// case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/tcocompare/internal/catalog"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Quotes   []catalog.PriceQuote
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Vendor         int
	License        int
	Hardware       int
	Implementation int
	Maintenance    int
	Training       int
	DevicesPerFTE  int
}

// Column roles, in positional order for files without a header.
const (
	colVendor         = "vendor"
	colLicense        = "license"
	colHardware       = "hardware"
	colImplementation = "implementation"
	colMaintenance    = "maintenance"
	colTraining       = "training"
	colFTE            = "fte"
)

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	colVendor:         {"vendor", "vendor id", "vendor_id", "id", "product"},
	colLicense:        {"license", "license per device", "annual license", "license/device/year", "subscription"},
	colHardware:       {"hardware", "appliance cost", "appliance", "hardware cost"},
	colImplementation: {"implementation", "services", "professional services", "implementation cost"},
	colMaintenance:    {"maintenance", "support", "annual maintenance", "annual support"},
	colTraining:       {"training", "training cost"},
	colFTE:            {"fte", "devices per fte", "devices/fte", "devices_per_fte"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		// Only delimiters that split the first row count.
		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// Returns the mapping and true if a header was detected, or a default positional
// mapping and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	found := map[string]int{}
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			if _, taken := found[role]; taken {
				continue
			}
			for _, alias := range aliases {
				if normalized == alias {
					found[role] = i
					break
				}
			}
		}
	}

	if len(found) == 0 {
		return ColumnMapping{
			Vendor:         0,
			License:        1,
			Hardware:       2,
			Implementation: 3,
			Maintenance:    4,
			Training:       5,
			DevicesPerFTE:  6,
		}, false
	}

	idx := func(role string) int {
		if i, ok := found[role]; ok {
			return i
		}
		return -1
	}
	return ColumnMapping{
		Vendor:         idx(colVendor),
		License:        idx(colLicense),
		Hardware:       idx(colHardware),
		Implementation: idx(colImplementation),
		Maintenance:    idx(colMaintenance),
		Training:       idx(colTraining),
		DevicesPerFTE:  idx(colFTE),
	}, true
}

// NormalizeVendorID turns "Cisco ISE" or " cisco-ise " into "cisco_ise".
func NormalizeVendorID(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", "_", "-", "_").Replace(s)
	return s
}

// parseAmount accepts plain numbers as well as "$45,000" and "45 000".
func parseAmount(s string) (float64, error) {
	cleaned := strings.NewReplacer("$", "", "€", "", "£", "", ",", "", " ", "").Replace(s)
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("amount %q is not a finite number", s)
	}
	return v, nil
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseRow extracts a PriceQuote from a row using the given column mapping.
// Returns the quote, any error message, and any warning message.
func parseRow(row []string, mapping ColumnMapping, rowLabel string) (catalog.PriceQuote, string, string) {
	vendor := NormalizeVendorID(getCell(row, mapping.Vendor))
	if vendor == "" {
		return catalog.PriceQuote{}, fmt.Sprintf("%s: Missing vendor", rowLabel), ""
	}
	q := catalog.PriceQuote{VendorID: vendor, Source: rowLabel}

	amounts := []struct {
		name string
		idx  int
		dst  **float64
	}{
		{"license", mapping.License, &q.License},
		{"hardware", mapping.Hardware, &q.Hardware},
		{"implementation", mapping.Implementation, &q.Implementation},
		{"maintenance", mapping.Maintenance, &q.Maintenance},
		{"training", mapping.Training, &q.Training},
	}
	for _, a := range amounts {
		raw := getCell(row, a.idx)
		if raw == "" {
			continue
		}
		v, err := parseAmount(raw)
		if err != nil {
			return catalog.PriceQuote{}, fmt.Sprintf("%s: Invalid %s '%s'", rowLabel, a.name, raw), ""
		}
		if v < 0 {
			return catalog.PriceQuote{}, fmt.Sprintf("%s: %s must not be negative", rowLabel, a.name), ""
		}
		*a.dst = &v
	}

	if raw := getCell(row, mapping.DevicesPerFTE); raw != "" {
		n, err := strconv.Atoi(strings.ReplaceAll(raw, ",", ""))
		if err != nil {
			return catalog.PriceQuote{}, fmt.Sprintf("%s: Invalid devices per FTE '%s'", rowLabel, raw), ""
		}
		if n <= 0 {
			return catalog.PriceQuote{}, fmt.Sprintf("%s: devices per FTE must be positive", rowLabel), ""
		}
		q.DevicesPerFTE = &n
	}

	var warning string
	if q.IsEmpty() {
		warning = fmt.Sprintf("%s: No prices given for '%s', skipping", rowLabel, vendor)
	}
	return q, "", warning
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportFile picks the CSV or Excel reader from the file extension.
func ImportFile(path string) ImportResult {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xls":
		return ImportExcel(path)
	default:
		return ImportCSV(path)
	}
}

// ImportCSV imports quotes from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	return importFromRows(records, filepath.Base(path)+" line", result.Warnings)
}

// ImportCSVFromReader imports quotes from a CSV reader with a specific delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports quotes from the first sheet of an Excel file.
func ImportExcel(path string) ImportResult {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot open Excel file: %v", err)}}
	}
	defer f.Close()
	return importWorkbook(f, filepath.Base(path)+" row")
}

// ImportExcelFromReader imports quotes from an Excel workbook stream.
func ImportExcelFromReader(r io.Reader) ImportResult {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot open Excel file: %v", err)}}
	}
	defer f.Close()
	return importWorkbook(f, "Row")
}

func importWorkbook(f *excelize.File, rowPrefix string) ImportResult {
	result := ImportResult{}

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, rowPrefix, nil)
}

// importFromRows is the shared import logic for both CSV and Excel data.
// It detects headers, maps columns, and parses each row into quotes.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		if mapping.Vendor == -1 {
			result.Errors = append(result.Errors, "Required column not found in header: Vendor")
			return result
		}
		if mapping.License == -1 && mapping.Hardware == -1 && mapping.Implementation == -1 &&
			mapping.Maintenance == -1 && mapping.Training == -1 && mapping.DevicesPerFTE == -1 {
			result.Errors = append(result.Errors, "Header has no price columns")
			return result
		}
	} else if len(rows[0]) >= 2 {
		// An unrecognised header still has a non-numeric second column.
		if _, err := parseAmount(strings.TrimSpace(rows[0][1])); err != nil && strings.TrimSpace(rows[0][1]) != "" {
			startRow = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		quote, errMsg, warning := parseRow(row, mapping, rowLabel)

		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
			continue
		}

		result.Quotes = append(result.Quotes, quote)
	}

	if len(result.Quotes) == 0 && len(result.Errors) == 0 {
		result.Errors = append(result.Errors, "No quotes found")
	}
	return result
}

// CheckVendors moves quotes for vendors the catalog does not know into Errors.
func (r *ImportResult) CheckVendors(cat *catalog.Catalog) {
	kept := r.Quotes[:0]
	for _, q := range r.Quotes {
		if !cat.HasVendor(q.VendorID) {
			r.Errors = append(r.Errors, fmt.Sprintf("%s: Unknown vendor '%s'", q.Source, q.VendorID))
			continue
		}
		kept = append(kept, q)
	}
	r.Quotes = kept
}
