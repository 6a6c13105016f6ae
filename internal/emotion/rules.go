package emotion

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/easeaico/moodmate/internal/types"
)

// MoodKeywords binds a mood to the words that trigger it.
type MoodKeywords struct {
	Mood     types.Mood `yaml:"mood"`
	Keywords []string   `yaml:"keywords"`
}

// Rules is the static data driving classification. Moods are checked in slice order
// and the first match wins.
type Rules struct {
	CrisisPhrases []string       `yaml:"crisis_phrases"`
	Moods         []MoodKeywords `yaml:"moods"`
}

// DefaultRules returns the built-in English rule set.
func DefaultRules() Rules {
	return Rules{
		CrisisPhrases: []string{
			"suicide", "kill myself", "end my life", "cant go on", "can't go on",
			"want to die", "i will die", "hurt myself", "self harm", "self-harm",
			"no point living", "better off dead", "ending it all",
		},
		Moods: []MoodKeywords{
			{Mood: types.MoodSad, Keywords: []string{"sad", "depressed", "lonely", "hopeless", "down", "unhappy", "tear", "tears", "cry", "crying", "miserable"}},
			{Mood: types.MoodAnxious, Keywords: []string{"anxious", "nervous", "worried", "panic", "panic attack", "stressed", "stress", "overwhelmed"}},
			{Mood: types.MoodAngry, Keywords: []string{"angry", "mad", "furious", "annoyed", "irritated", "hate", "rage", "outraged"}},
			{Mood: types.MoodHappy, Keywords: []string{"happy", "great", "good", "glad", "awesome", "fine", "joy", "excited", "wonderful"}},
		},
	}
}

// LoadRules reads a YAML rule file. An empty path returns DefaultRules.
func LoadRules(path string) (Rules, error) {
	if path == "" {
		return DefaultRules(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("failed to read rules file: %w", err)
	}
	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return Rules{}, fmt.Errorf("failed to parse rules file: %w", err)
	}
	if err := rules.Validate(); err != nil {
		return Rules{}, err
	}
	return rules.normalized(), nil
}

// Validate checks that every listed mood is a classifiable, non-crisis mood.
func (r Rules) Validate() error {
	if len(r.CrisisPhrases) == 0 {
		return fmt.Errorf("rules must define at least one crisis phrase")
	}
	seen := make(map[types.Mood]bool, len(r.Moods))
	for _, mk := range r.Moods {
		if !mk.Mood.Valid() || mk.Mood == types.MoodCrisis || mk.Mood == types.MoodNeutral {
			return fmt.Errorf("invalid keyword mood: %q", mk.Mood)
		}
		if seen[mk.Mood] {
			return fmt.Errorf("duplicate keyword mood: %q", mk.Mood)
		}
		seen[mk.Mood] = true
	}
	return nil
}

// Words returns every mood keyword, lowercased.
func (r Rules) Words() []string {
	var words []string
	for _, mk := range r.Moods {
		for _, kw := range mk.Keywords {
			words = append(words, strings.ToLower(kw))
		}
	}
	return words
}

func (r Rules) normalized() Rules {
	out := Rules{CrisisPhrases: make([]string, 0, len(r.CrisisPhrases))}
	for _, phrase := range r.CrisisPhrases {
		if p := strings.ToLower(strings.TrimSpace(phrase)); p != "" {
			out.CrisisPhrases = append(out.CrisisPhrases, p)
		}
	}
	for _, mk := range r.Moods {
		kws := make([]string, 0, len(mk.Keywords))
		for _, kw := range mk.Keywords {
			if k := strings.ToLower(strings.TrimSpace(kw)); k != "" {
				kws = append(kws, k)
			}
		}
		out.Moods = append(out.Moods, MoodKeywords{Mood: mk.Mood, Keywords: kws})
	}
	return out
}
