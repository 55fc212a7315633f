package processing

import (
	"strconv"

	"github.com/spacesedan/sentibatch/internal/models"
)

// BuildReport turns a tally into the final report. Percentages are rounded to
// two decimals.
func BuildReport(t Tally) models.Report {
	total := t.Total()

	var pct models.ByCategory[float64]
	if total > 0 {
		for _, c := range models.Categories() {
			*pct.At(c) = round2(float64(t.Counts.Get(c)) / float64(total) * 100)
		}
	}

	grouped := models.ByCategory[[]string]{}
	for _, c := range models.Categories() {
		src := t.Grouped.Get(c)
		dst := make([]string, len(src))
		copy(dst, src)
		*grouped.At(c) = dst
	}

	return models.Report{
		Success:     true,
		Counts:      t.Counts,
		Percentages: pct,
		Grouped:     grouped,
	}
}

// round2 rounds the exact binary value of v to two decimals, ties to even,
// which matches Python's round(v, 2).
func round2(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return r
}
