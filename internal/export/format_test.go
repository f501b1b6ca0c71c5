package export

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/tcocompare/internal/catalog"
	"github.com/piwi3910/tcocompare/internal/engine"
	"github.com/piwi3910/tcocompare/internal/model"
)

// buildTestComparison runs the default scenario against the built-in catalog.
func buildTestComparison(t *testing.T) model.Comparison {
	t.Helper()
	s := model.NewScenario("Export Test")
	s.ID = "export-test"
	return compareScenario(t, s)
}

func compareScenario(t *testing.T, s model.Scenario) model.Comparison {
	t.Helper()
	cmp, err := engine.Compare(catalog.Builtin(), s)
	require.NoError(t, err)
	return cmp
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"pdf", FormatPDF},
		{"PDF", FormatPDF},
		{" cards ", FormatCards},
		{"xlsx", FormatXLSX},
		{"Excel", FormatXLSX},
		{"csv", FormatCSV},
		{"json", FormatJSON},
		{"html", FormatHTML},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormatUnknown(t *testing.T) {
	for _, name := range []string{"pptx", "", "docx"} {
		_, err := ParseFormat(name)
		assert.True(t, errors.Is(err, ErrUnknownFormat), "format %q", name)
	}
}

func TestFormatFileNameAndContentType(t *testing.T) {
	assert.Equal(t, "tco-abc.pdf", FormatPDF.FileName("tco-abc"))
	assert.Equal(t, "tco-abc-cards.pdf", FormatCards.FileName("tco-abc"))
	assert.Equal(t, "tco-abc.xlsx", FormatXLSX.FileName("tco-abc"))
	assert.Equal(t, "tco-abc.html", FormatHTML.FileName("tco-abc"))

	assert.Equal(t, "application/pdf", FormatCards.ContentType())
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", FormatXLSX.ContentType())
	assert.Equal(t, "text/csv; charset=utf-8", FormatCSV.ContentType())
	assert.Equal(t, "application/json", FormatJSON.ContentType())
	assert.Equal(t, "text/html; charset=utf-8", FormatHTML.ContentType())
	assert.Equal(t, "application/octet-stream", Format("bogus").ContentType())
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{950, "$950"},
		{1000, "$1,000"},
		{488750, "$488,750"},
		{1430000, "$1,430,000"},
		{-941250, "-$941,250"},
		{999.6, "$1,000"},
		{-0.4, "$0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Money(tt.in), "Money(%v)", tt.in)
	}
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "tco-report", BaseName(model.Comparison{}))
	cmp := model.Comparison{Scenario: model.Scenario{ID: "abc"}}
	assert.Equal(t, "tco-abc", BaseName(cmp))
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, Format("pptx"), buildTestComparison(t))
	assert.True(t, errors.Is(err, ErrUnknownFormat))
	assert.Zero(t, buf.Len())
}

func TestWriteFileCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.txt")
	err := WriteFile(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "hello")
		return err
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestWriteFileRemovesPartialOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	boom := errors.New("boom")
	err := WriteFile(path, func(w io.Writer) error {
		io.WriteString(w, "partial")
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
