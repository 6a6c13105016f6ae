package emotion

import "github.com/easeaico/moodmate/internal/utils"

var intensityWords = []struct {
	level IntensityLevel
	words [][]string
}{
	{IntensityHigh, [][]string{{"extremely"}, {"incredibly"}, {"absolutely"}, {"completely"}, {"totally"}, {"very"}, {"really"}}},
	{IntensityMedium, [][]string{{"quite"}, {"pretty"}, {"fairly"}, {"rather"}}},
	{IntensityLow, [][]string{{"a", "bit"}, {"slightly"}, {"somewhat"}, {"kind", "of"}}},
}

// Intensity returns the strongest intensity modifier level found in text.
func Intensity(text string) IntensityLevel {
	tokens := utils.Tokenize(text)
	for _, group := range intensityWords {
		for _, phrase := range group.words {
			if containsPhrase(tokens, phrase) {
				return group.level
			}
		}
	}
	return IntensityNeutral
}
