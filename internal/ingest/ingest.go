// Package ingest turns an input file into an ordered sequence of review
// records. Every source is validated once here so later stages only ever see
// plain strings.
package ingest

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spacesedan/sentibatch/internal/models"
)

// ReviewColumn is the header a tabular source must carry.
const ReviewColumn = "reviewText"

const (
	msgInvalidFormat = "Invalid file format. Please upload CSV, XLSX, or PDF files only."
	msgReadError     = "Error reading file"
	msgMissingColumn = "Missing 'reviewText' column in the uploaded file"
	msgEmptyTable    = "The uploaded file contains no valid data to analyze"
	msgEmptyPDF      = "No readable text found in PDF file"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatXLS  Format = "xls"
	FormatPDF  Format = "pdf"
)

// ParseFormat accepts the format tags csv, xlsx, xls and pdf.
func ParseFormat(tag string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(tag))); f {
	case FormatCSV, FormatXLSX, FormatXLS, FormatPDF:
		return f, nil
	default:
		return "", models.NewError(models.ErrInvalidFormat, msgInvalidFormat)
	}
}

// Skip records why a candidate row, cell or page produced no record.
type Skip struct {
	Location string
	Reason   string
}

// Outcome is the result of reading one source.
type Outcome struct {
	Records []models.Record
	Skipped []Skip
}

func (o *Outcome) add(location, text string) {
	o.Records = append(o.Records, models.Record{RawText: text, Location: location})
}

func (o *Outcome) skip(location, reason string) {
	o.Skipped = append(o.Skipped, Skip{Location: location, Reason: reason})
}

// Read loads path according to format. It fails with InvalidFormat,
// ReadError, MissingColumn or EmptyInput; it never returns a partial outcome
// together with an error.
func Read(path string, format Format) (Outcome, error) {
	var (
		out Outcome
		err error
	)

	switch format {
	case FormatCSV:
		out, err = readCSV(path)
	case FormatXLSX:
		out, err = readXLSX(path)
	case FormatXLS:
		out, err = readXLS(path)
	case FormatPDF:
		out, err = readPDF(path)
	default:
		return Outcome{}, models.NewError(models.ErrInvalidFormat, msgInvalidFormat)
	}
	if err != nil {
		return Outcome{}, err
	}

	return finalize(format, out)
}

// finalize logs skipped inputs and rejects a source that produced nothing.
func finalize(format Format, out Outcome) (Outcome, error) {
	for _, s := range out.Skipped {
		slog.Debug("[Ingest] Skipped input",
			slog.String("location", s.Location),
			slog.String("reason", s.Reason))
	}

	if len(out.Records) == 0 {
		msg := msgEmptyTable
		if format == FormatPDF {
			msg = msgEmptyPDF
		}
		return Outcome{}, models.NewError(models.ErrEmptyInput, msg)
	}

	slog.Info("[Ingest] Source read",
		slog.String("format", string(format)),
		slog.Int("records", len(out.Records)),
		slog.Int("skipped", len(out.Skipped)))

	return out, nil
}

// recoverRead turns a panic inside a third-party decoder into a ReadError.
func recoverRead(err *error) {
	if r := recover(); r != nil {
		*err = readError(fmt.Errorf("decoder panic: %v", r))
	}
}

func readError(err error) error {
	return models.WrapError(models.ErrRead, msgReadError, err)
}

func rowLocation(row int) string {
	return fmt.Sprintf("row %d", row)
}
