package processing

import (
	"log/slog"
	"time"

	"github.com/spacesedan/sentibatch/internal/ingest"
	"github.com/spacesedan/sentibatch/internal/models"
	"github.com/spacesedan/sentibatch/internal/sentiment"
)

// Analyzer runs the whole ingest, classify and report pipeline for one file.
// It keeps no per-run state, so a single Analyzer may serve concurrent calls.
type Analyzer struct {
	aggregator *Aggregator
}

func NewAnalyzer(normalizer TextNormalizer, scorer PolarityScorer) *Analyzer {
	return &Analyzer{aggregator: NewAggregator(normalizer, scorer)}
}

// NewAnalyzerFromResources wires the normalizer and scorer from shared lookup
// resources.
func NewAnalyzerFromResources(res *sentiment.Resources, opts ...sentiment.NormalizerOption) *Analyzer {
	return NewAnalyzer(res.Normalizer(opts...), res.Scorer)
}

// Analyze reads path as formatTag and returns the sentiment report. No report
// is returned when any stage fails.
func (a *Analyzer) Analyze(path, formatTag string) (models.Report, error) {
	start := time.Now()

	format, err := ingest.ParseFormat(formatTag)
	if err != nil {
		return models.Report{}, err
	}

	outcome, err := ingest.Read(path, format)
	if err != nil {
		return models.Report{}, err
	}

	report, err := a.AnalyzeRecords(outcome.Records)
	if err != nil {
		return models.Report{}, err
	}

	slog.Info("[Analyzer] Analysis complete",
		slog.String("format", string(format)),
		slog.Int("records", report.Total()),
		slog.Int("positive", report.Counts.Positive),
		slog.Int("negative", report.Counts.Negative),
		slog.Int("neutral", report.Counts.Neutral),
		slog.Duration("elapsed", time.Since(start)))

	return report, nil
}

// AnalyzeRecords classifies an already ingested record sequence.
func (a *Analyzer) AnalyzeRecords(records []models.Record) (models.Report, error) {
	tally, err := a.aggregator.Aggregate(records)
	if err != nil {
		return models.Report{}, err
	}
	return BuildReport(tally), nil
}
