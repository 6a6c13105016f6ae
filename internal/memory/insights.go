package memory

import (
	"github.com/easeaico/moodmate/internal/types"
)

const (
	trendWindow          = 3
	insightKeywordCount  = 5
	extendedSessionTurns = 10
)

var themeKeywords = []struct {
	theme string
	words []string
}{
	{"relationships", []string{"friend", "family", "partner", "love", "relationship"}},
	{"work_school", []string{"work", "job", "school", "study", "boss", "teacher"}},
	{"health", []string{"health", "sick", "pain", "doctor", "medicine"}},
	{"personal_growth", []string{"goal", "dream", "future", "change", "improve"}},
	{"stress", []string{"stress", "pressure", "overwhelmed", "busy", "tired"}},
}

// Insights aggregates a user's full log into mood and topic statistics.
func Insights(userID string, entries []types.ChatEntry) types.UserStats {
	stats := types.UserStats{
		UserID:           userID,
		TotalMessages:    len(entries),
		MoodDistribution: make(map[types.Mood]int),
		DominantMood:     types.MoodNeutral,
		Trend:            types.TrendStable,
		TopKeywords:      []types.KeywordCount{},
		Themes:           []string{},
		SessionLength:    "brief",
	}
	if len(entries) == 0 {
		return stats
	}

	moods := make([]types.Mood, 0, len(entries))
	moodNames := make([]string, 0, len(entries))
	var keywords []string
	for _, entry := range entries {
		moods = append(moods, entry.Mood)
		moodNames = append(moodNames, string(entry.Mood))
		stats.MoodDistribution[entry.Mood]++
		keywords = append(keywords, entry.Keywords...)
	}

	stats.DominantMood = types.Mood(rankByCount(moodNames)[0].Keyword)
	stats.Trend = MoodTrend(moods)
	stats.NeedsAttention = stats.Trend == types.TrendConcerning

	top := rankByCount(keywords)
	if len(top) > insightKeywordCount {
		top = top[:insightKeywordCount]
	}
	stats.TopKeywords = append(stats.TopKeywords, top...)
	stats.Themes = append(stats.Themes, Themes(keywords)...)

	if len(entries) > extendedSessionTurns {
		stats.SessionLength = "extended"
	}

	first := entries[0].Timestamp
	last := entries[len(entries)-1].Timestamp
	stats.FirstMessageAt = &first
	stats.LastMessageAt = &last
	return stats
}

// MoodTrend classifies the last three moods. Fewer than three moods is stable.
func MoodTrend(moods []types.Mood) types.MoodTrend {
	if len(moods) < trendWindow {
		return types.TrendStable
	}
	recent := moods[len(moods)-trendWindow:]

	if allIn(recent, types.MoodSad, types.MoodAnxious, types.MoodCrisis) {
		return types.TrendConcerning
	}
	if allIn(recent, types.MoodHappy, types.MoodNeutral) {
		return types.TrendPositive
	}
	distinct := make(map[types.Mood]bool, trendWindow)
	for _, m := range recent {
		distinct[m] = true
	}
	if len(distinct) > 2 {
		return types.TrendFluctuating
	}
	return types.TrendStable
}

// Themes returns the conversation themes touched by keywords, in a fixed order.
func Themes(keywords []string) []string {
	present := make(map[string]bool, len(keywords))
	for _, kw := range keywords {
		present[kw] = true
	}
	var themes []string
	for _, tk := range themeKeywords {
		for _, w := range tk.words {
			if present[w] {
				themes = append(themes, tk.theme)
				break
			}
		}
	}
	return themes
}

func allIn(moods []types.Mood, allowed ...types.Mood) bool {
	for _, m := range moods {
		ok := false
		for _, a := range allowed {
			if m == a {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}
