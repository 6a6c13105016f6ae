package translate

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/easeaico/moodmate/internal/utils"
)

const systemInstruction = `You translate chat messages into English for an emotional support service.
Keep the emotional tone, slang and intensity of the original. Do not answer the message.
Reply with JSON only: {"text": "<english translation>", "source_language": "<iso code>"}`

const userPromptText = `Source language: {{.Language}}
Message:
{{.Text}}`

var userPrompt = template.Must(template.New("translate").Parse(userPromptText))

func buildPrompt(text, language string) (string, error) {
	var buf bytes.Buffer
	data := struct {
		Language string
		Text     string
	}{Language: language, Text: text}
	if err := userPrompt.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render translation prompt: %w", err)
	}
	return buf.String(), nil
}

func parseOutput(raw string) (string, error) {
	out, err := utils.ParseTranslationOutput(raw)
	if err != nil {
		return "", fmt.Errorf("failed to parse translation: %w", err)
	}
	return out.Text, nil
}
