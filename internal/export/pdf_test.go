package export

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/tcocompare/internal/model"
)

func TestPDFWritesDocument(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PDF(&buf, buildTestComparison(t)))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	// Three text pages plus three embedded chart PNGs.
	assert.Greater(t, buf.Len(), 10_000)
}

func TestPDFEmptyComparison(t *testing.T) {
	var buf bytes.Buffer
	err := PDF(&buf, model.Comparison{})
	assert.Error(t, err)
}

func TestPDFManyVendors(t *testing.T) {
	s := model.NewScenario("All vendors")
	s.ID = "all-vendors"
	s.VendorIDs = []string{
		"portnox", "cisco_ise", "aruba_clearpass", "forescout", "fortinac",
		"extreme_control", "microsoft_nps", "packetfence", "foxpass", "securew2",
	}
	cmp := compareScenario(t, s)
	require.Len(t, cmp.Results, 10)

	path := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, WriteFile(path, func(w io.Writer) error { return PDF(w, cmp) }))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(10_000))
}

func TestFitText(t *testing.T) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 9)
	assert.Equal(t, "short", fitText(pdf, "short", 100))

	long := "An extremely long vendor name that cannot possibly fit in a narrow column"
	got := fitText(pdf, long, 20)
	assert.Less(t, len(got), len(long))
	assert.LessOrEqual(t, pdf.GetStringWidth(got), 20.0)
}
