package memory

import "github.com/easeaico/moodmate/internal/types"

const firstGreeting = "Hello! I'm here to listen and support you."

var greetings = map[types.Mood]string{
	types.MoodCrisis:  "I'm glad you're reaching out again. How are you feeling right now?",
	types.MoodSad:     "Hello again. I hope you're feeling a bit better since we last talked.",
	types.MoodHappy:   "Hi there! I hope you're still feeling as positive as when we last spoke.",
	types.MoodAnxious: "Hello! I hope some of that anxiety has settled since our last conversation.",
	types.MoodAngry:   "Welcome back. I hope things have cooled down a little since we last talked.",
	types.MoodNeutral: "Good to hear from you again. What's on your mind today?",
}

// Greeting picks an opening line based on the mood of the last logged message.
func Greeting(entries []types.ChatEntry) string {
	if len(entries) == 0 {
		return firstGreeting
	}
	if g, ok := greetings[entries[len(entries)-1].Mood]; ok {
		return g
	}
	return greetings[types.MoodNeutral]
}
