// Package keywords pulls a few topic nouns out of a message.
package keywords

import (
	"log/slog"
	"strings"
	"sync"
	"unicode"

	"github.com/jdkato/prose/v2"

	"github.com/easeaico/moodmate/internal/utils"
)

// MaxKeywords is the number of keywords Extract returns at most.
const MaxKeywords = 3

const minTermRunes = 4

// nounTagPrefix matches the Penn Treebank noun tags NN, NNS, NNP and NNPS.
const nounTagPrefix = "NN"

// taggerModel loads the part-of-speech model once; it is read-only afterwards.
var taggerModel = sync.OnceValue(func() *prose.Model {
	doc, err := prose.NewDocument("", prose.WithSegmentation(false), prose.WithExtraction(false))
	if err != nil {
		slog.Error("failed to load part-of-speech model", "error", err.Error())
		return nil
	}
	return doc.Model
})

// Extractor selects the nouns of a message, minus stop words.
type Extractor struct {
	stop  map[string]bool
	model *prose.Model
}

// Option customizes an Extractor.
type Option func(*Extractor)

// WithStopWords excludes extra words, typically the mood keywords themselves.
func WithStopWords(words ...string) Option {
	return func(e *Extractor) {
		for _, w := range words {
			for _, tok := range utils.Tokenize(w) {
				e.stop[tok] = true
			}
		}
	}
}

// New returns an Extractor.
func New(opts ...Option) *Extractor {
	e := &Extractor{stop: make(map[string]bool, len(stopWords)), model: taggerModel()}
	for _, w := range stopWords {
		e.stop[w] = true
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns up to MaxKeywords distinct lowercase terms in order of first appearance.
func (e *Extractor) Extract(text string) []string {
	terms := e.Terms(text)
	if len(terms) > MaxKeywords {
		terms = terms[:MaxKeywords]
	}
	return terms
}

// Terms returns every distinct candidate term in order of first appearance. It never
// panics; on failure it returns an empty slice.
func (e *Extractor) Terms(text string) (terms []string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("keyword extraction failed", "error", r)
			terms = []string{}
		}
	}()

	terms = []string{}
	if strings.TrimSpace(text) == "" {
		return terms
	}
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
		prose.UsingModel(e.model),
	)
	if err != nil {
		slog.Warn("keyword extraction failed", "error", err.Error())
		return terms
	}

	seen := make(map[string]bool)
	for _, tok := range doc.Tokens() {
		if !strings.HasPrefix(tok.Tag, nounTagPrefix) {
			continue
		}
		term := strings.ToLower(tok.Text)
		if !e.candidate(term) || seen[term] {
			continue
		}
		seen[term] = true
		terms = append(terms, term)
	}
	return terms
}

func (e *Extractor) candidate(tok string) bool {
	if len([]rune(tok)) < minTermRunes || e.stop[tok] {
		return false
	}
	for _, r := range tok {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
