package reply

import "github.com/easeaico/moodmate/internal/types"

// DefaultCrisisMessage replaces the whole reply whenever a crisis is detected.
const DefaultCrisisMessage = "🚨 Your safety matters. Please call a helpline immediately: +91-9152987821"

const (
	warmthThreshold = -4
	warmthSentence  = "Please be gentle with yourself right now. You don't have to carry this alone."

	moodChangeFormat = "By the way, last time you mentioned feeling %s. How are things now?"
	crisisCheckIn    = "I've been thinking about you since we last talked, and I'm glad you're still here with me. How are you holding up?"

	imageAck = "Thanks for sharing that image! 📸"
	videoAck = "Thanks for sharing the video! 🎥"
	mediaAck = "Thanks for sharing the media!"

	summaryPrefix = "\n\nQuick summary: "
)

// pool holds the strong and mild variants of a mood's replies.
type pool struct {
	strong []string
	mild   []string
	// isStrong reports whether score calls for the strong variant.
	isStrong func(score int) bool
}

var replyPools = map[types.Mood]pool{
	types.MoodHappy: {
		strong: []string{
			"That's absolutely wonderful! I can feel your joy through your words! ✨",
			"Your happiness is contagious! It sounds like things are going really well for you.",
			"I'm so glad to hear you're feeling this good! You deserve all this happiness.",
			"What amazing news! Your positive energy really comes through.",
		},
		mild: []string{
			"That's really nice to hear! I'm glad you're feeling good today.",
			"It's lovely that you're in good spirits! Tell me more about what's making you happy.",
			"I can sense the positivity in your message. That's wonderful!",
			"It sounds like you're having a good day, and that makes me happy too.",
		},
		isStrong: func(score int) bool { return score >= 3 },
	},
	types.MoodSad: {
		strong: []string{
			"I can really hear the pain in your words, and I want you to know that I'm here with you.",
			"It sounds like you're carrying a heavy burden right now. That must feel overwhelming.",
			"I'm so sorry you're going through this difficult time. Your feelings are completely valid.",
			"Thank you for sharing something so personal with me. I can sense how much you're hurting.",
		},
		mild: []string{
			"I can hear that you're feeling down, and I want you to know that's okay.",
			"It sounds like you're having a tough time. I'm here to listen.",
			"I'm sorry you're feeling this way. Sometimes we all need someone to talk to.",
			"Your feelings are completely understandable. Thank you for sharing with me.",
		},
		isStrong: func(score int) bool { return score <= -3 },
	},
	types.MoodAnxious: {
		strong: []string{
			"I can sense you're feeling really overwhelmed right now. Let's take this one step at a time.",
			"It sounds like your mind is racing with worries. That must be exhausting.",
			"I hear the anxiety in your words, and I want you to know that what you're feeling is valid.",
			"It seems like you're carrying a lot of stress. Remember that it's okay to take breaks.",
		},
		mild: []string{
			"I can tell you're feeling a bit anxious. That's completely normal and understandable.",
			"It sounds like something is weighing on your mind. Would you like to talk about it?",
			"I sense some worry in your message. Sometimes it helps just to voice our concerns.",
			"I can feel that you're a bit unsettled. Thank you for sharing that with me.",
		},
		isStrong: func(score int) bool { return score <= -2 },
	},
	types.MoodAngry: {
		strong: []string{
			"It sounds like you're really furious right now, and that's a lot to hold.",
			"I can hear how angry you are. Your frustration makes sense.",
		},
		mild: []string{
			"It sounds like something really got under your skin.",
			"I can tell you're frustrated. It's okay to feel that way.",
		},
		isStrong: func(score int) bool { return score <= -3 },
	},
	types.MoodNeutral: {
		mild: []string{
			"Thank you for sharing that with me. I'm here to listen and support you.",
			"I appreciate you taking the time to reach out. How are you feeling overall?",
			"It's good to hear from you. I'm here if you need someone to talk to.",
			"Thanks for sharing. I'm listening and here to support you in whatever way I can.",
			"I'm glad you reached out today. What's on your mind?",
		},
	},
}

// followUps are the ordered questions asked across consecutive turns of one mood.
var followUps = map[types.Mood][]string{
	types.MoodHappy: {
		"What else has made you smile recently?",
		"Do you want to share more good news?",
	},
	types.MoodSad: {
		"Would you like to talk about what's troubling you?",
		"Can I help you find ways to feel better?",
	},
	types.MoodAnxious: {
		"What do you think is making you anxious?",
		"Want to try a quick relaxation exercise together?",
	},
	types.MoodAngry: {
		"What happened that made you feel this way?",
		"Would it help to talk through what set this off?",
	},
	types.MoodNeutral: {
		"Anything new or interesting on your mind today?",
		"Would you like to share something fun or relaxing?",
	},
}

// topicSentences personalize a reply when a keyword touches a known topic.
var topicSentences = []struct {
	topic    string
	sentence string
}{
	{"work", "It sounds like work is on your mind. Balancing work life can be challenging."},
	{"family", "Family relationships can bring both joy and stress. I'm here to listen."},
	{"school", "School can be overwhelming sometimes. You're doing your best."},
	{"friend", "Friendships are so important. It's good that you have people you care about."},
	{"health", "Your health and wellbeing are so important. I hope you're taking care of yourself."},
	{"money", "Financial stress can be really overwhelming. Those worries are completely valid."},
	{"relationship", "Relationships can be complex and emotionally intense. I'm here to support you."},
}

// FollowUps returns a copy of the fixed question sequence for mood.
func FollowUps(mood types.Mood) []string {
	return append([]string(nil), followUps[mood]...)
}
