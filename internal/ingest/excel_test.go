package ingest

import (
	"path/filepath"
	"testing"

	"github.com/spacesedan/sentibatch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "reviews.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadXLSX_ReviewColumn(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"stars", "reviewText"},
		{5, "Absolutely wonderful"},
		{1, ""},
		{3, "Arrived on Tuesday"},
	})

	out, err := Read(path, FormatXLSX)
	require.NoError(t, err)

	assert.Equal(t, []string{"Absolutely wonderful", "Arrived on Tuesday"}, rawTexts(out))
	assert.Equal(t, "row 4", out.Records[1].Location)
	assert.Len(t, out.Skipped, 1)
}

func TestReadXLSX_MissingColumn(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"stars", "comment"},
		{5, "Absolutely wonderful"},
	})

	_, err := Read(path, FormatXLSX)
	assert.Equal(t, models.ErrMissingColumn, models.KindOf(err))
}

func TestReadXLSX_Corrupt(t *testing.T) {
	path := writeFile(t, "reviews.xlsx", "definitely not a zip archive")

	_, err := Read(path, FormatXLSX)
	require.Error(t, err)
	assert.Equal(t, models.ErrRead, models.KindOf(err))
}

func TestReadXLS_ReviewColumn(t *testing.T) {
	out, err := Read(filepath.Join("testdata", "reviews.xls"), FormatXLS)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Absolutely wonderful, would buy again",
		"Très bien, livraison rapide",
	}, rawTexts(out))
	assert.Equal(t, "row 2", out.Records[0].Location)
	assert.Equal(t, "row 5", out.Records[1].Location)
	assert.Equal(t, []Skip{
		{Location: "row 3", Reason: "empty cell"},
		{Location: "row 4", Reason: "row has no reviewText cell"},
	}, out.Skipped)
}

func TestReadXLS_MissingColumn(t *testing.T) {
	_, err := Read(filepath.Join("testdata", "no_review_column.xls"), FormatXLS)
	assert.Equal(t, models.ErrMissingColumn, models.KindOf(err))
}

func TestReadXLS_NotACompoundFile(t *testing.T) {
	path := writeFile(t, "reviews.xls", "stars,reviewText\n5,great\n")

	_, err := Read(path, FormatXLS)
	require.Error(t, err)
	assert.Equal(t, models.ErrRead, models.KindOf(err))
}
