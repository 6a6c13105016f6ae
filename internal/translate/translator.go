// Package translate turns non-English messages into English before classification.
package translate

import (
	"context"
	"fmt"
	"strings"
)

// Translator converts text written in language into English.
type Translator interface {
	Translate(ctx context.Context, text, language string) (string, error)
}

// Kind names a translator backend.
type Kind string

const (
	KindNone   Kind = "none"
	KindGemini Kind = "gemini"
	KindOpenAI Kind = "openai"
)

// Options configures New.
type Options struct {
	Kind          Kind
	Model         string
	GoogleAPIKey  string
	OpenAIAPIKey  string
	OpenAIBaseURL string
}

// New builds the translator selected by opts.Kind.
func New(ctx context.Context, opts Options) (Translator, error) {
	switch Kind(strings.ToLower(string(opts.Kind))) {
	case "", KindNone:
		return Noop{}, nil
	case KindGemini:
		return NewGeminiTranslator(ctx, opts.GoogleAPIKey, opts.Model)
	case KindOpenAI:
		return NewOpenAITranslator(opts.OpenAIAPIKey, opts.OpenAIBaseURL, opts.Model)
	default:
		return nil, fmt.Errorf("unknown translator %q", opts.Kind)
	}
}

// Noop returns text unchanged.
type Noop struct{}

func (Noop) Translate(_ context.Context, text, _ string) (string, error) {
	return text, nil
}

// NeedsTranslation reports whether language is set and not English.
func NeedsTranslation(language string) bool {
	lang := strings.ToLower(strings.TrimSpace(language))
	return lang != "" && lang != "en" && !strings.HasPrefix(lang, "en-")
}
