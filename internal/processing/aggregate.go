package processing

import (
	"log/slog"

	"github.com/spacesedan/sentibatch/internal/models"
	"github.com/spacesedan/sentibatch/internal/sentiment"
)

// TextNormalizer and PolarityScorer are the two per-record steps the
// aggregator drives.
type TextNormalizer interface {
	Normalize(raw string) string
}

type PolarityScorer interface {
	Score(normalized string) sentiment.ScoreResult
}

// Tally is the folded classification of a record sequence.
type Tally struct {
	Counts  models.ByCategory[int]
	Grouped models.ByCategory[[]string]
}

func (t Tally) Total() int {
	total := 0
	for _, c := range models.Categories() {
		total += t.Counts.Get(c)
	}
	return total
}

type Aggregator struct {
	normalizer TextNormalizer
	scorer     PolarityScorer
}

func NewAggregator(normalizer TextNormalizer, scorer PolarityScorer) *Aggregator {
	return &Aggregator{normalizer: normalizer, scorer: scorer}
}

// Aggregate classifies every record and groups the raw texts per category in
// input order.
func (a *Aggregator) Aggregate(records []models.Record) (Tally, error) {
	tally := Tally{
		Grouped: models.ByCategory[[]string]{
			Positive: []string{},
			Negative: []string{},
			Neutral:  []string{},
		},
	}

	for _, rec := range records {
		normalized := a.normalizer.Normalize(rec.RawText)
		result := a.scorer.Score(normalized)

		*tally.Counts.At(result.Category)++
		group := tally.Grouped.At(result.Category)
		*group = append(*group, rec.RawText)

		slog.Debug("[Aggregator] Record classified",
			slog.String("location", rec.Location),
			slog.Float64("compound", result.Compound),
			slog.String("category", string(result.Category)))
	}

	if tally.Total() == 0 {
		return Tally{}, models.NewError(models.ErrNoValidData, "No valid text data found for sentiment analysis")
	}

	return tally, nil
}
