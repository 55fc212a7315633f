package models

// Report is the terminal artifact of a run. The report builder is the only
// producer; callers treat it as read-only.
type Report struct {
	Success     bool                 `json:"success" yaml:"success"`
	Counts      ByCategory[int]      `json:"sentiment_counts" yaml:"sentiment_counts"`
	Percentages ByCategory[float64]  `json:"sentiment_percentages" yaml:"sentiment_percentages"`
	Grouped     ByCategory[[]string] `json:"grouped_reviews" yaml:"grouped_reviews"`
}

// Total is the number of records that were classified.
func (r Report) Total() int {
	total := 0
	for _, c := range Categories() {
		total += r.Counts.Get(c)
	}
	return total
}

// CategoryView is the per-category slice of a report.
type CategoryView struct {
	Sentiment Category `json:"sentiment" yaml:"sentiment"`
	Reviews   []string `json:"reviews" yaml:"reviews"`
	Count     int      `json:"count" yaml:"count"`
}

func (r Report) View(c Category) CategoryView {
	reviews := make([]string, len(r.Grouped.Get(c)))
	copy(reviews, r.Grouped.Get(c))
	return CategoryView{
		Sentiment: c,
		Reviews:   reviews,
		Count:     r.Counts.Get(c),
	}
}

// ErrorResponse is emitted instead of a report when a run fails.
type ErrorResponse struct {
	Error string `json:"error" yaml:"error"`
}
