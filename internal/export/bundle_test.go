package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundleAllFormats(t *testing.T) {
	dir := t.TempDir()
	cmp := buildTestComparison(t)

	paths, err := Bundle(context.Background(), dir, cmp, nil)
	require.NoError(t, err)
	require.Len(t, paths, len(AllFormats()))

	want := []string{
		"tco-export-test.pdf",
		"tco-export-test-cards.pdf",
		"tco-export-test.xlsx",
		"tco-export-test.csv",
		"tco-export-test.json",
		"tco-export-test.html",
	}
	for i, p := range paths {
		assert.Equal(t, filepath.Join(dir, want[i]), p)
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0), p)
	}
}

func TestBundleSelectedFormatsKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	paths, err := Bundle(context.Background(), dir, buildTestComparison(t),
		[]Format{FormatJSON, "Excel", FormatCSV, FormatJSON})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "tco-export-test.json"),
		filepath.Join(dir, "tco-export-test.xlsx"),
		filepath.Join(dir, "tco-export-test.csv"),
	}, paths)
}

func TestBundleUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	_, err := Bundle(context.Background(), dir, buildTestComparison(t), []Format{FormatCSV, "pptx"})
	assert.True(t, errors.Is(err, ErrUnknownFormat))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestBundleCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Bundle(ctx, t.TempDir(), buildTestComparison(t), []Format{FormatCSV})
	assert.ErrorIs(t, err, context.Canceled)
}
