// Package memory turns a user's chat log into summaries, insights and greetings.
package memory

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/easeaico/moodmate/internal/types"
)

// summaryKeywordCount is how many topics a summary mentions.
const summaryKeywordCount = 3

const emptyHistorySummary = "No previous conversation history."

// TermExtractor returns candidate topic words for a message.
type TermExtractor interface {
	Terms(text string) []string
}

// Summarizer builds a one-sentence digest of a history window.
type Summarizer struct {
	terms TermExtractor
}

// NewSummarizer returns a Summarizer.
func NewSummarizer(terms TermExtractor) *Summarizer {
	return &Summarizer{terms: terms}
}

// Summarize reports the dominant mood of window and, when at least three topics are
// known, the most frequent ones. Ties go to whichever appeared first.
func (s *Summarizer) Summarize(window []types.ChatEntry) string {
	if len(window) == 0 {
		return emptyHistorySummary
	}

	moods := make([]string, 0, len(window))
	var terms []string
	for _, entry := range window {
		mood := entry.Mood
		if mood == "" {
			mood = types.MoodNeutral
		}
		moods = append(moods, string(mood))
		if s.terms != nil {
			terms = append(terms, s.terms.Terms(entry.MessageText)...)
		}
	}

	dominant := rankByCount(moods)[0].Keyword
	var sb strings.Builder
	fmt.Fprintf(&sb, "You've mostly been feeling %s lately", dominant)

	top := rankByCount(terms)
	if len(top) >= summaryKeywordCount {
		fmt.Fprintf(&sb, ", talking about %s, %s, %s", top[0].Keyword, top[1].Keyword, top[2].Keyword)
	}
	sb.WriteString(". How does that sound?")
	return sb.String()
}

// rankByCount tallies items and orders them by count descending, keeping first-seen
// order among equal counts.
func rankByCount(items []string) []types.KeywordCount {
	index := make(map[string]int, len(items))
	var ranked []types.KeywordCount
	for _, item := range items {
		if i, ok := index[item]; ok {
			ranked[i].Count++
			continue
		}
		index[item] = len(ranked)
		ranked = append(ranked, types.KeywordCount{Keyword: item, Count: 1})
	}
	slices.SortStableFunc(ranked, func(a, b types.KeywordCount) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return ranked
}
