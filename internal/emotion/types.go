package emotion

import "github.com/easeaico/moodmate/internal/types"

// Result is the outcome of classifying one message.
type Result struct {
	Mood types.Mood
	// Score is nil when Mood is crisis.
	Score *int
}

// Crisis reports whether the result is a crisis classification.
func (r Result) Crisis() bool {
	return r.Mood == types.MoodCrisis
}

// ScoreValue returns the sentiment score, or 0 when absent.
func (r Result) ScoreValue() int {
	if r.Score == nil {
		return 0
	}
	return *r.Score
}

// IntensityLevel is a coarse measure of how strongly a message is worded.
type IntensityLevel string

const (
	IntensityHigh    IntensityLevel = "high"
	IntensityMedium  IntensityLevel = "medium"
	IntensityLow     IntensityLevel = "low"
	IntensityNeutral IntensityLevel = "neutral"
)

func intPtr(v int) *int {
	return &v
}
