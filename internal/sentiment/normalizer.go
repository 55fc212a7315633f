package sentiment

import (
	"regexp"
	"strings"
)

var (
	// Anything that is neither a word rune nor whitespace.
	nonWordPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s\p{Z}\v]`)
	digitPattern   = regexp.MustCompile(`\p{Nd}`)
)

// Lemmatizer reduces a single lowercase token to its dictionary form.
type Lemmatizer interface {
	Lemma(word string) string
}

// Normalizer turns raw review text into the token string the scorer reads.
// It only holds read-only resources and is safe for concurrent use.
type Normalizer struct {
	stopWords   StopWords
	lemmatizer  Lemmatizer
	stripMarkup bool
}

type NormalizerOption func(*Normalizer)

// WithMarkupStripping renders markdown to plain text before normalizing.
func WithMarkupStripping(enabled bool) NormalizerOption {
	return func(n *Normalizer) {
		n.stripMarkup = enabled
	}
}

func NewNormalizer(stopWords StopWords, lemmatizer Lemmatizer, opts ...NormalizerOption) *Normalizer {
	n := &Normalizer{
		stopWords:  stopWords,
		lemmatizer: lemmatizer,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize lowercases, strips punctuation then digits, drops stop-words and
// lemmatizes what is left. The step order is significant.
func (n *Normalizer) Normalize(raw string) string {
	text := raw
	if n.stripMarkup {
		text = StripMarkup(text)
	}

	text = strings.ToLower(text)
	text = nonWordPattern.ReplaceAllString(text, "")
	text = digitPattern.ReplaceAllString(text, "")

	tokens := strings.Fields(text)
	kept := tokens[:0]
	for _, tok := range tokens {
		if n.stopWords.Contains(tok) {
			continue
		}
		kept = append(kept, n.lemma(tok))
	}

	return strings.Join(kept, " ")
}

func (n *Normalizer) lemma(tok string) string {
	if n.lemmatizer == nil {
		return tok
	}
	if l := n.lemmatizer.Lemma(tok); l != "" {
		return l
	}
	return tok
}
