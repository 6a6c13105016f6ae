package emotion

import "github.com/jonreiter/govader"

// scoreScale maps a VADER compound in [-1, 1] onto the integer score range [-5, 5].
const scoreScale = 5

// Scorer computes a polarity score for a message.
type Scorer interface {
	Score(text string) int
}

// VaderScorer scores text with the VADER lexicon. Negators within the three words before
// a sentiment word flip its valence.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderScorer loads the VADER lexicon.
func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score returns the compound polarity times five, truncated toward zero.
func (s *VaderScorer) Score(text string) int {
	return int(s.analyzer.PolarityScores(text).Compound * scoreScale)
}
