// Package reply composes the empathetic answer to one user message.
package reply

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/easeaico/moodmate/internal/emotion"
	"github.com/easeaico/moodmate/internal/session"
	"github.com/easeaico/moodmate/internal/storage"
	"github.com/easeaico/moodmate/internal/types"
)

// ErrEmptyInput rejects a request with neither text nor media.
var ErrEmptyInput = errors.New("message text is empty and no media was attached")

// DefaultUserID is used when a request carries no user id.
const DefaultUserID = "unknown"

// SummaryWindow is the number of trailing log entries a summary covers.
const SummaryWindow = 5

// SummaryPolicy decides on which turns a summary is appended.
type SummaryPolicy string

const (
	// SummaryEveryTurn appends a summary on every turn once the window is full.
	SummaryEveryTurn SummaryPolicy = "every_turn"
	// SummaryOncePerWindow appends a summary once per SummaryWindow logged messages.
	SummaryOncePerWindow SummaryPolicy = "once_per_window"
)

// ParseSummaryPolicy maps a config value to a policy. Empty means SummaryEveryTurn.
func ParseSummaryPolicy(v string) (SummaryPolicy, error) {
	switch p := SummaryPolicy(strings.ToLower(strings.TrimSpace(v))); p {
	case "", SummaryEveryTurn:
		return SummaryEveryTurn, nil
	case SummaryOncePerWindow:
		return p, nil
	default:
		return "", fmt.Errorf("unknown summary policy %q", v)
	}
}

// MoodClassifier labels a message with a mood and score.
type MoodClassifier interface {
	Classify(text string) emotion.Result
}

// KeywordExtractor pulls topic words out of a message.
type KeywordExtractor interface {
	Extract(text string) []string
}

// Summarizer digests a window of logged messages.
type Summarizer interface {
	Summarize(window []types.ChatEntry) string
}

// Config tunes a Composer. Zero values pick the defaults.
type Config struct {
	CrisisMessage string
	Selector      Selector
	SummaryPolicy SummaryPolicy
	Now           func() time.Time
}

// Composer runs the reply pipeline.
type Composer struct {
	classifier MoodClassifier
	extractor  KeywordExtractor
	sessions   session.Store
	log        storage.ChatLog
	summarizer Summarizer

	crisisMessage string
	selector      Selector
	policy        SummaryPolicy
	now           func() time.Time
	locks         *session.KeyedMutex
}

// NewComposer wires the pipeline collaborators.
func NewComposer(
	classifier MoodClassifier,
	extractor KeywordExtractor,
	sessions session.Store,
	log storage.ChatLog,
	summarizer Summarizer,
	cfg Config,
) *Composer {
	c := &Composer{
		classifier:    classifier,
		extractor:     extractor,
		sessions:      sessions,
		log:           log,
		summarizer:    summarizer,
		crisisMessage: cfg.CrisisMessage,
		selector:      cfg.Selector,
		policy:        cfg.SummaryPolicy,
		now:           cfg.Now,
		locks:         session.NewKeyedMutex(),
	}
	if c.crisisMessage == "" {
		c.crisisMessage = DefaultCrisisMessage
	}
	if c.selector == nil {
		c.selector = FirstSelector{}
	}
	if c.policy == "" {
		c.policy = SummaryEveryTurn
	}
	if c.now == nil {
		c.now = time.Now
	}
	return c
}

// Respond classifies req, logs it and returns the composed reply. Turns of the same user
// are serialized; the only error is ErrEmptyInput.
func (c *Composer) Respond(ctx context.Context, req types.Request) (types.Response, error) {
	text := strings.TrimSpace(req.MessageText)
	if text == "" && req.Media == nil {
		return types.Response{}, ErrEmptyInput
	}
	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		userID = DefaultUserID
	}

	unlock := c.locks.Lock(userID)
	defer unlock()

	lastQuestion, asked := c.sessions.LastFollowUp(userID)
	prior, hasPrior := c.sessions.PriorMood(userID)

	result := c.classifier.Classify(text)
	kws := c.extract(text)

	entry := types.ChatEntry{
		ID:             uuid.NewString(),
		UserID:         userID,
		MessageText:    text,
		Mood:           result.Mood,
		SentimentScore: result.Score,
		Keywords:       kws,
		Timestamp:      c.now().UTC(),
	}
	window, logged := c.persist(ctx, userID, entry)

	var followUp string
	var replyText string
	if result.Crisis() {
		replyText = c.crisisMessage
	} else {
		parts := []string{c.baseReply(result)}
		if s := topicSentence(kws); s != "" {
			parts = append(parts, s)
		}
		if result.ScoreValue() <= warmthThreshold {
			parts = append(parts, warmthSentence)
		}
		if hasPrior && prior != result.Mood {
			parts = append(parts, moodChangeSentence(prior))
		}
		if q, ok := nextFollowUp(result.Mood, lastQuestion, asked); ok {
			followUp = q
			parts = append(parts, q)
		}
		if ack := mediaAcknowledgment(req.Media); ack != "" {
			parts = append(parts, ack)
		}
		replyText = strings.Join(parts, " ")

		if c.summaryDue(window, logged) {
			if summary := c.summarize(window); summary != "" {
				replyText += summaryPrefix + summary
			}
		}
	}

	c.sessions.Record(userID, session.Turn{
		Mood:        result.Mood,
		Keywords:    kws,
		MessageText: text,
		Timestamp:   entry.Timestamp,
	}, followUp)

	var mediaName string
	if req.Media != nil {
		mediaName = req.Media.OriginalName
	}
	slog.Info("reply composed",
		"user_id", userID,
		"mood", result.Mood,
		"score", result.ScoreValue(),
		"crisis", result.Crisis(),
		"intensity", emotion.Intensity(text),
		"media", mediaName,
	)

	return types.Response{
		UserID:         userID,
		Mood:           result.Mood,
		SentimentScore: result.Score,
		Keywords:       kws,
		ReplyText:      strings.TrimSpace(replyText),
		Crisis:         result.Crisis(),
		Media:          req.Media,
	}, nil
}

// persist appends entry and reads back the trailing window. Storage failures are logged
// and leave the window empty.
func (c *Composer) persist(ctx context.Context, userID string, entry types.ChatEntry) ([]types.ChatEntry, int) {
	if err := c.log.Append(ctx, userID, entry); err != nil {
		slog.Warn("failed to append chat entry", "user_id", userID, "error", err.Error())
	}
	all, err := c.log.ReadAll(ctx, userID)
	if err != nil {
		slog.Warn("failed to read chat log", "user_id", userID, "error", err.Error())
		return nil, 0
	}
	return storage.Tail(all, SummaryWindow), len(all)
}

func (c *Composer) summaryDue(window []types.ChatEntry, logged int) bool {
	if len(window) < SummaryWindow {
		return false
	}
	if c.policy == SummaryOncePerWindow {
		return logged%SummaryWindow == 0
	}
	return true
}

func (c *Composer) summarize(window []types.ChatEntry) (summary string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("summary failed", "error", fmt.Sprint(r))
			summary = ""
		}
	}()
	return c.summarizer.Summarize(window)
}

func (c *Composer) extract(text string) (kws []string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("keyword extraction failed", "error", fmt.Sprint(r))
			kws = []string{}
		}
	}()
	kws = c.extractor.Extract(text)
	if kws == nil {
		kws = []string{}
	}
	return kws
}

func (c *Composer) baseReply(result emotion.Result) string {
	p, ok := replyPools[result.Mood]
	if !ok {
		p = replyPools[types.MoodNeutral]
	}
	candidates := p.mild
	if p.isStrong != nil && len(p.strong) > 0 && result.Score != nil && p.isStrong(*result.Score) {
		candidates = p.strong
	}
	idx := c.selector.Pick(len(candidates))
	if idx < 0 || idx >= len(candidates) {
		idx = 0
	}
	return candidates[idx]
}

func topicSentence(kws []string) string {
	for _, kw := range kws {
		for _, ts := range topicSentences {
			if strings.HasPrefix(kw, ts.topic) {
				return ts.sentence
			}
		}
	}
	return ""
}

// moodChangeSentence acknowledges the mood of the previous turn. A prior crisis gets a
// check-in rather than being named as a feeling.
func moodChangeSentence(prior types.Mood) string {
	if prior == types.MoodCrisis {
		return crisisCheckIn
	}
	return fmt.Sprintf(moodChangeFormat, prior)
}

func mediaAcknowledgment(media *types.Media) string {
	if media == nil {
		return ""
	}
	mime := strings.ToLower(media.MimeType)
	switch {
	case strings.HasPrefix(mime, "image/"):
		return imageAck
	case strings.HasPrefix(mime, "video/"):
		return videoAck
	default:
		return mediaAck
	}
}
