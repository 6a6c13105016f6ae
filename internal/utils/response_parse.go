package utils

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TranslationOutput is the structured response from a translation model.
type TranslationOutput struct {
	Text           string `json:"text"`
	SourceLanguage string `json:"source_language"`
}

// ParseTranslationOutput extracts and validates structured translation output.
func ParseTranslationOutput(raw string) (TranslationOutput, error) {
	clean := strings.TrimSpace(raw)
	start := strings.Index(clean, "{")
	end := strings.LastIndex(clean, "}")
	if start >= 0 && end > start {
		clean = clean[start : end+1]
	}

	var output TranslationOutput
	if err := json.Unmarshal([]byte(clean), &output); err != nil {
		return TranslationOutput{}, fmt.Errorf("failed to parse translation output: %w", err)
	}

	output.Text = strings.TrimSpace(output.Text)
	if output.Text == "" {
		return TranslationOutput{}, fmt.Errorf("missing text")
	}
	output.SourceLanguage = strings.ToLower(strings.TrimSpace(output.SourceLanguage))

	return output, nil
}
