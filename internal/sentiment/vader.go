package sentiment

import (
	"github.com/jonreiter/govader"
	"github.com/spacesedan/sentibatch/internal/models"
)

const (
	PositiveThreshold = 0.05
	NegativeThreshold = -0.05
)

type ScoreResult struct {
	Compound float64
	Category models.Category
}

// Scorer wraps the VADER lexicon. The analyzer is never mutated after
// construction, so one Scorer can serve any number of runs.
type Scorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewScorer() *Scorer {
	return &Scorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score returns the compound polarity of already normalized text. Empty text
// is Neutral with a score of 0.
func (s *Scorer) Score(normalized string) ScoreResult {
	if normalized == "" {
		return ScoreResult{Compound: 0, Category: models.Neutral}
	}

	score := s.analyzer.PolarityScores(normalized).Compound
	return ScoreResult{Compound: score, Category: Classify(score)}
}

// Classify buckets a compound score. Both thresholds are exclusive, so
// exactly ±0.05 is Neutral.
func Classify(score float64) models.Category {
	switch {
	case score > PositiveThreshold:
		return models.Positive
	case score < NegativeThreshold:
		return models.Negative
	default:
		return models.Neutral
	}
}
