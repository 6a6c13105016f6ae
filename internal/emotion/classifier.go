// Package emotion classifies the mood of a message from keyword rules and VADER sentiment.
package emotion

import (
	"strings"
	"unicode/utf8"

	"github.com/easeaico/moodmate/internal/types"
	"github.com/easeaico/moodmate/internal/utils"
)

// minClassifiableRunes is the length below which text skips keyword and sentiment checks.
const minClassifiableRunes = 3

const (
	sadThreshold     = -3
	anxiousThreshold = -1
	happyThreshold   = 3
)

// Classifier maps text to a mood and a sentiment score.
type Classifier struct {
	rules  Rules
	scorer Scorer
}

// NewClassifier returns a Classifier. A nil scorer uses VADER.
func NewClassifier(rules Rules, scorer Scorer) *Classifier {
	if scorer == nil {
		scorer = NewVaderScorer()
	}
	return &Classifier{rules: rules.normalized(), scorer: scorer}
}

// Classify returns the mood of text. Crisis phrases win over every other signal.
func (c *Classifier) Classify(text string) Result {
	txt := utils.NormalizeText(text)

	if c.isCrisis(txt) {
		return Result{Mood: types.MoodCrisis}
	}

	if utf8.RuneCountInString(txt) < minClassifiableRunes {
		return fallback(0)
	}

	score := c.scorer.Score(txt)
	tokens := utils.Tokenize(txt)

	for _, mk := range c.rules.Moods {
		for _, kw := range mk.Keywords {
			if containsPhrase(tokens, utils.Tokenize(kw)) {
				return Result{Mood: mk.Mood, Score: intPtr(score)}
			}
		}
	}

	return fallback(score)
}

func (c *Classifier) isCrisis(txt string) bool {
	stripped := strings.NewReplacer("'", "", "’", "").Replace(txt)
	for _, phrase := range c.rules.CrisisPhrases {
		if strings.Contains(txt, phrase) || strings.Contains(stripped, phrase) {
			return true
		}
	}
	return false
}

func fallback(score int) Result {
	switch {
	case score <= sadThreshold:
		return Result{Mood: types.MoodSad, Score: intPtr(score)}
	case score <= anxiousThreshold:
		return Result{Mood: types.MoodAnxious, Score: intPtr(score)}
	case score >= happyThreshold:
		return Result{Mood: types.MoodHappy, Score: intPtr(score)}
	default:
		return Result{Mood: types.MoodNeutral, Score: intPtr(score)}
	}
}

// containsPhrase reports whether phrase appears as a contiguous token run in tokens.
func containsPhrase(tokens, phrase []string) bool {
	if len(phrase) == 0 || len(phrase) > len(tokens) {
		return false
	}
outer:
	for i := 0; i+len(phrase) <= len(tokens); i++ {
		for j, p := range phrase {
			if tokens[i+j] != p {
				continue outer
			}
		}
		return true
	}
	return false
}
