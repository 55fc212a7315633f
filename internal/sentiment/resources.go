package sentiment

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// Resources bundles the lookup data every run reads: stop-words, the
// lemmatizer dictionary and the VADER lexicon. Build it once per process and
// share it; nothing in it is written after LoadResources returns.
type Resources struct {
	StopWords  StopWords
	Lemmatizer Lemmatizer
	Scorer     *Scorer
}

func LoadResources() (*Resources, error) {
	start := time.Now()

	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("failed to load english lemmatizer: %w", err)
	}

	res := &Resources{
		StopWords:  EnglishStopWords(),
		Lemmatizer: lemmatizer,
		Scorer:     NewScorer(),
	}

	slog.Debug("[Sentiment] Lookup resources loaded",
		slog.Int("stop_words", res.StopWords.Len()),
		slog.Duration("elapsed", time.Since(start)))

	return res, nil
}

func (r *Resources) Normalizer(opts ...NormalizerOption) *Normalizer {
	return NewNormalizer(r.StopWords, r.Lemmatizer, opts...)
}
