package utils

import (
	"strings"
	"unicode"

	"google.golang.org/genai"
)

func ExtractContentText(content *genai.Content) string {
	if content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}

// NormalizeText lowercases text and collapses runs of whitespace into single spaces.
func NormalizeText(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// Tokenize splits lowercased text into word tokens. Apostrophes inside a word are
// dropped so "can't" and "cant" produce the same token.
func Tokenize(text string) []string {
	text = strings.ToLower(text)
	var (
		tokens []string
		sb     strings.Builder
	)
	flush := func() {
		if sb.Len() > 0 {
			tokens = append(tokens, sb.String())
			sb.Reset()
		}
	}
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
		case r == '\'' || r == '’':
			// keep contractions as one token
		default:
			flush()
		}
	}
	flush()
	return tokens
}
