package analysis

import (
	"context"
	"strings"

	"github.com/jonathan/beetune/internal/llm"
	"github.com/jonathan/beetune/internal/prompts"
)

// TextAnalyzer extracts key information and improvement suggestions from
// arbitrary text.
type TextAnalyzer struct {
	client llm.Client
}

func NewTextAnalyzer(client llm.Client) *TextAnalyzer {
	return &TextAnalyzer{client: client}
}

// Analyze extracts key information from text as a key/value map. The model
// answers in "key: value" lines; anything else is ignored.
func (a *TextAnalyzer) Analyze(ctx context.Context, text string) (map[string]string, error) {
	prompt := prompts.GenAnalysis(text, prompts.ToneProfessional, prompts.FormatBulletPoints)
	content, err := a.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &Error{Message: "failed to analyze text", Cause: err}
	}

	result := make(map[string]string)
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimLeft(strings.TrimSpace(line), "•-* ")
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			continue
		}
		result[key] = strings.TrimSpace(value)
	}
	return result, nil
}

// SuggestImprovements asks for suggestions that move text toward goal.
func (a *TextAnalyzer) SuggestImprovements(ctx context.Context, text, goal string) (string, error) {
	prompt := prompts.GenSuggestions(text, goal, prompts.ToneProfessional, prompts.FormatBulletPoints)
	content, err := a.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		return "", &Error{Message: "failed to generate suggestions", Cause: err}
	}
	return strings.TrimSpace(content), nil
}
