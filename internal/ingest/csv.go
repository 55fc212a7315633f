package ingest

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
)

// errNoColumns reports a delimited source without even a header line.
var errNoColumns = errors.New("No columns to parse from file")

func readCSV(path string) (Outcome, error) {
	f, err := os.Open(path)
	if err != nil {
		return Outcome{}, readError(err)
	}
	defer f.Close()

	return parseCSV(f)
}

func parseCSV(r io.Reader) (Outcome, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return Outcome{}, readError(err)
	}
	if len(rows) == 0 {
		return Outcome{}, readError(errNoColumns)
	}

	return tableOutcome(rows)
}
