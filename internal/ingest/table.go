package ingest

import (
	"strings"

	"github.com/spacesedan/sentibatch/internal/models"
)

const utf8BOM = "\ufeff"

// columnIndex finds the review column in a header row. Header cells must
// match exactly, apart from a leading byte-order mark on the first cell.
func columnIndex(header []string) (int, error) {
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		if name == ReviewColumn {
			return i, nil
		}
	}
	return -1, models.NewError(models.ErrMissingColumn, msgMissingColumn)
}

// collectColumn pulls the review cell out of each data row. Row numbers are
// 1-based and count the header, the way a spreadsheet shows them.
func collectColumn(out *Outcome, col int, rows [][]string) {
	for i, row := range rows {
		loc := rowLocation(i + 2)
		if col >= len(row) {
			out.skip(loc, "row has no reviewText cell")
			continue
		}
		cell := row[col]
		if strings.TrimSpace(cell) == "" {
			out.skip(loc, "empty cell")
			continue
		}
		out.add(loc, cell)
	}
}

// tableOutcome validates a header plus data rows as one tabular source.
func tableOutcome(rows [][]string) (Outcome, error) {
	if len(rows) == 0 {
		return Outcome{}, models.NewError(models.ErrMissingColumn, msgMissingColumn)
	}

	col, err := columnIndex(rows[0])
	if err != nil {
		return Outcome{}, err
	}

	var out Outcome
	collectColumn(&out, col, rows[1:])
	return out, nil
}
