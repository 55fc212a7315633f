package ingest

import (
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// MinLineLength is exclusive: a PDF line must be longer than this, after
// trimming, to become a record.
const MinLineLength = 10

// pageSource is the part of a PDF reader the line extraction needs.
type pageSource interface {
	NumPage() int
	PageText(page int) (string, error)
}

type pdfReader struct {
	r *pdf.Reader
}

func (p pdfReader) NumPage() int {
	return p.r.NumPage()
}

// PageText rebuilds the page's lines from positioned glyphs. The library's
// row helpers only break on Tm, so Td, T* and BT-per-line layouts would come
// back as one run-on row.
func (p pdfReader) PageText(page int) (string, error) {
	pg := p.r.Page(page)
	if pg.V.IsNull() {
		return "", nil
	}
	return layoutLines(pg.Content().Text), nil
}

// layoutLines joins glyphs in content-stream order. A vertical move of more
// than half the font size starts a new line; whitespace glyphs and horizontal
// gaps (TJ offsets included) become a single space.
func layoutLines(glyphs []pdf.Text) string {
	var (
		lines []string
		b     strings.Builder
		prev  *pdf.Text
		space bool
	)
	flush := func() {
		lines = append(lines, b.String())
		b.Reset()
		space = false
	}

	for i := range glyphs {
		g := &glyphs[i]
		size := math.Max(g.FontSize, 1)

		if prev != nil && math.Abs(g.Y-prev.Y) > size/2 {
			flush()
			prev = nil
		}
		if isBreak(g.S) {
			space = b.Len() > 0
			continue
		}
		if prev != nil && g.X-(prev.X+prev.W) > size*wordGap {
			space = true
		}
		if space {
			b.WriteByte(' ')
			space = false
		}
		b.WriteString(g.S)
		prev = g
	}
	if b.Len() > 0 {
		flush()
	}
	return strings.Join(lines, "\n")
}

// wordGap is the horizontal gap, as a fraction of the font size, read as a
// word boundary.
const wordGap = 0.15

func isBreak(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) && !unicode.IsControl(r) {
			return false
		}
	}
	return true
}

func readPDF(path string) (_ Outcome, err error) {
	defer recoverRead(&err)

	f, r, err := pdf.Open(path)
	if err != nil {
		return Outcome{}, readError(err)
	}
	defer f.Close()

	return extractLines(pdfReader{r: r}), nil
}

// extractLines walks pages in order. A page that fails to extract is skipped
// with its reason instead of failing the whole document.
func extractLines(src pageSource) Outcome {
	var out Outcome
	for page := 1; page <= src.NumPage(); page++ {
		text, err := pageText(src, page)
		if err != nil {
			out.skip(fmt.Sprintf("page %d", page), err.Error())
			continue
		}
		for i, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if utf8.RuneCountInString(line) <= MinLineLength {
				continue
			}
			out.add(fmt.Sprintf("page %d line %d", page, i+1), line)
		}
	}
	return out
}

// pageText shields the caller from panics inside the PDF content decoder.
func pageText(src pageSource, page int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page extraction panicked: %v", r)
		}
	}()
	return src.PageText(page)
}
