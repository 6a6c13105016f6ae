package emotion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/easeaico/moodmate/internal/types"
)

func newTestClassifier() *Classifier {
	return NewClassifier(DefaultRules(), nil)
}

func TestClassifyCrisisOverridesEverything(t *testing.T) {
	c := newTestClassifier()
	inputs := []string{
		"I want to kill myself",
		"I'm so happy but I can't go on",
		"i cant go on anymore",
		"I can’t go on",
		"thinking about SELF-HARM again",
		"Great day, awesome news, but suicide is on my mind",
	}
	for _, in := range inputs {
		got := c.Classify(in)
		if got.Mood != types.MoodCrisis {
			t.Fatalf("Classify(%q) mood = %s, want crisis", in, got.Mood)
		}
		if got.Score != nil {
			t.Fatalf("Classify(%q) score = %d, want nil", in, *got.Score)
		}
		if !got.Crisis() {
			t.Fatalf("Classify(%q) expected Crisis() true", in)
		}
	}
}

func TestClassifyKeywordPriority(t *testing.T) {
	c := newTestClassifier()
	cases := []struct {
		text string
		want types.Mood
	}{
		{"I am anxious", types.MoodAnxious},
		{"I feel happy today and it's great", types.MoodHappy},
		{"I feel sad now", types.MoodSad},
		{"I'm so angry at my boss", types.MoodAngry},
		// sad is checked before happy
		{"happy birthday but I feel lonely", types.MoodSad},
		{"I had a panic attack", types.MoodAnxious},
	}
	for _, tc := range cases {
		if got := c.Classify(tc.text); got.Mood != tc.want {
			t.Fatalf("Classify(%q) = %s, want %s", tc.text, got.Mood, tc.want)
		}
	}
}

func TestClassifyKeywordsMatchWholeWords(t *testing.T) {
	c := newTestClassifier()
	got := c.Classify("I made a download for the madrid trip")
	if got.Mood != types.MoodNeutral {
		t.Fatalf("expected neutral for partial word matches, got %s", got.Mood)
	}
}

func TestClassifyThresholdFallback(t *testing.T) {
	c := newTestClassifier()
	cases := []struct {
		text      string
		want      types.Mood
		wantScore int
	}{
		{"the weather is bad and terrible", types.MoodSad, -3},
		{"the weather is bad", types.MoodAnxious, -2},
		{"an amazing fantastic weekend", types.MoodHappy, 4},
		{"i went to the store", types.MoodNeutral, 0},
		{"this is not terrible", types.MoodNeutral, 1},
		{"this is not amazing", types.MoodAnxious, -2},
	}
	for _, tc := range cases {
		got := c.Classify(tc.text)
		if got.Mood != tc.want {
			t.Fatalf("Classify(%q) mood = %s, want %s", tc.text, got.Mood, tc.want)
		}
		if got.Score == nil || *got.Score != tc.wantScore {
			t.Fatalf("Classify(%q) score = %v, want %d", tc.text, got.Score, tc.wantScore)
		}
	}
}

func TestClassifyStrongWordsWithoutMoodKeywords(t *testing.T) {
	c := newTestClassifier()
	cases := []struct {
		text      string
		want      types.Mood
		wantScore int
	}{
		{"I feel devastated and heartbroken, everything is ruined", types.MoodSad, -4},
		{"What a brilliant, delightful, lovely evening", types.MoodHappy, 4},
	}
	for _, tc := range cases {
		got := c.Classify(tc.text)
		if got.Mood != tc.want || got.ScoreValue() != tc.wantScore {
			t.Fatalf("Classify(%q) = %s/%d, want %s/%d", tc.text, got.Mood, got.ScoreValue(), tc.want, tc.wantScore)
		}
	}
}

func TestVaderScorerRange(t *testing.T) {
	s := NewVaderScorer()
	if got := s.Score("i went to the store"); got != 0 {
		t.Fatalf("expected 0 for neutral text, got %d", got)
	}
	if got := s.Score("great great great amazing wonderful fantastic"); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
}

func TestClassifyShortTextIsNeutral(t *testing.T) {
	c := newTestClassifier()
	for _, in := range []string{"", "  ", "ok", ":("} {
		got := c.Classify(in)
		if got.Mood != types.MoodNeutral || got.ScoreValue() != 0 {
			t.Fatalf("Classify(%q) = %s/%d, want neutral/0", in, got.Mood, got.ScoreValue())
		}
		if got.Score == nil {
			t.Fatalf("Classify(%q) expected a present zero score", in)
		}
	}
}

func TestClassifyUsesInjectedScorer(t *testing.T) {
	c := NewClassifier(DefaultRules(), fixedScorer(-7))
	got := c.Classify("just a regular afternoon")
	if got.Mood != types.MoodSad || got.ScoreValue() != -7 {
		t.Fatalf("unexpected result: %s/%d", got.Mood, got.ScoreValue())
	}
}

func TestLoadRulesFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	data := []byte(`crisis_phrases:
  - "  Quiero Morir "
moods:
  - mood: happy
    keywords: ["Feliz"]
  - mood: sad
    keywords: ["triste"]
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write rules: %v", err)
	}

	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	c := NewClassifier(rules, nil)
	if got := c.Classify("hoy quiero morir"); got.Mood != types.MoodCrisis {
		t.Fatalf("expected crisis, got %s", got.Mood)
	}
	// happy is listed first in this rule set
	if got := c.Classify("feliz pero triste"); got.Mood != types.MoodHappy {
		t.Fatalf("expected happy, got %s", got.Mood)
	}
}

func TestLoadRulesRejectsInvalidMood(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	data := []byte("crisis_phrases: [x]\nmoods:\n  - mood: crisis\n    keywords: [y]\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write rules: %v", err)
	}
	if _, err := LoadRules(path); err == nil {
		t.Fatalf("expected error for crisis keyword mood")
	}
}

func TestLoadRulesEmptyPathUsesDefaults(t *testing.T) {
	rules, err := LoadRules("")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(rules.Moods) != len(DefaultRules().Moods) {
		t.Fatalf("expected default rules")
	}
}

func TestIntensity(t *testing.T) {
	cases := map[string]IntensityLevel{
		"I am extremely tired":      IntensityHigh,
		"it was quite a day":        IntensityMedium,
		"I'm a bit worried":         IntensityLow,
		"nothing special happened": IntensityNeutral,
	}
	for text, want := range cases {
		if got := Intensity(text); got != want {
			t.Fatalf("Intensity(%q) = %s, want %s", text, got, want)
		}
	}
}

type fixedScorer int

func (f fixedScorer) Score(string) int { return int(f) }
