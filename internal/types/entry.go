package types

import "time"

// Mood is the closed set of emotional classifications for one message.
type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodSad     Mood = "sad"
	MoodAnxious Mood = "anxious"
	MoodAngry   Mood = "angry"
	MoodNeutral Mood = "neutral"
	// MoodCrisis overrides every other signal and carries no sentiment score.
	MoodCrisis Mood = "crisis"
)

// Moods lists every mood in declaration order.
var Moods = []Mood{MoodHappy, MoodSad, MoodAnxious, MoodAngry, MoodNeutral, MoodCrisis}

// Valid reports whether m is one of the known moods.
func (m Mood) Valid() bool {
	for _, known := range Moods {
		if m == known {
			return true
		}
	}
	return false
}

func (m Mood) String() string {
	return string(m)
}

// ChatEntry is one inbound message as written to the offline cache.
type ChatEntry struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	MessageText string `json:"message_text"`
	Mood        Mood   `json:"mood"`
	// SentimentScore is nil for crisis messages.
	SentimentScore *int      `json:"sentiment_score"`
	Keywords       []string  `json:"keywords"`
	Timestamp      time.Time `json:"timestamp"`
}

// Media describes an attachment produced by the upload service.
type Media struct {
	MimeType     string `json:"mimetype"`
	OriginalName string `json:"originalName,omitempty"`
}

// Request is the input of one pipeline run.
type Request struct {
	UserID      string `json:"user_id"`
	MessageText string `json:"message_text"`
	// Language is the ISO code of MessageText; empty means English.
	Language string `json:"language,omitempty"`
	Media    *Media `json:"media,omitempty"`
}

// Response is the output of one pipeline run.
type Response struct {
	UserID         string   `json:"user_id"`
	Mood           Mood     `json:"mood"`
	SentimentScore *int     `json:"sentiment_score"`
	Keywords       []string `json:"keywords"`
	ReplyText      string   `json:"reply_text"`
	Crisis         bool     `json:"crisis"`
	Media          *Media   `json:"media"`
}

// MoodTrend describes the direction of the most recent moods.
type MoodTrend string

const (
	TrendStable      MoodTrend = "stable"
	TrendConcerning  MoodTrend = "concerning"
	TrendPositive    MoodTrend = "positive"
	TrendFluctuating MoodTrend = "fluctuating"
)

// KeywordCount is a keyword with its frequency.
type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// UserStats aggregates a user's full chat log.
type UserStats struct {
	UserID           string         `json:"user_id"`
	TotalMessages    int            `json:"total_messages"`
	MoodDistribution map[Mood]int   `json:"mood_distribution"`
	DominantMood     Mood           `json:"dominant_mood"`
	Trend            MoodTrend      `json:"mood_trend"`
	TopKeywords      []KeywordCount `json:"top_keywords"`
	Themes           []string       `json:"conversation_themes"`
	NeedsAttention   bool           `json:"needs_attention"`
	SessionLength    string         `json:"session_length"`
	FirstMessageAt   *time.Time     `json:"first_message_at,omitempty"`
	LastMessageAt    *time.Time     `json:"last_message_at,omitempty"`
}
