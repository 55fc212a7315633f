package ingest

import (
	"fmt"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// readXLSX reads the first worksheet of an Office Open XML workbook.
func readXLSX(path string) (_ Outcome, err error) {
	defer recoverRead(&err)

	f, err := excelize.OpenFile(path)
	if err != nil {
		return Outcome{}, readError(err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return Outcome{}, readError(fmt.Errorf("workbook has no worksheets"))
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return Outcome{}, readError(err)
	}

	return tableOutcome(rows)
}

// readXLS reads the first worksheet of a legacy BIFF workbook.
func readXLS(path string) (_ Outcome, err error) {
	defer recoverRead(&err)

	wb, closer, err := xls.OpenWithCloser(path, "utf-8")
	if closer != nil {
		defer closer.Close()
	}
	if err != nil {
		return Outcome{}, readError(err)
	}
	if wb == nil {
		return Outcome{}, readError(fmt.Errorf("no Workbook stream in compound file"))
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return Outcome{}, readError(fmt.Errorf("workbook has no worksheets"))
	}

	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		// LastCol is inclusive when the sheet carries no ROW records.
		cells := make([]string, row.LastCol()+1)
		for c := range cells {
			cells[c] = row.Col(c)
		}
		rows = append(rows, cells)
	}

	return tableOutcome(rows)
}
