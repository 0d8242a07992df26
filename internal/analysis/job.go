package analysis

import (
	"context"
	"strings"

	"github.com/jonathan/beetune/internal/llm"
	"github.com/jonathan/beetune/internal/prompts"
)

// JobAnalysis holds what the analyzer pulls out of a job description.
type JobAnalysis struct {
	Keywords string `json:"keywords"`
	Benefits string `json:"benefits"`
}

// JobAnalyzer extracts keywords and benefits from job descriptions.
type JobAnalyzer struct {
	client llm.Client
}

func NewJobAnalyzer(client llm.Client) *JobAnalyzer {
	return &JobAnalyzer{client: client}
}

// AnalyzeJobDescription runs the keyword and benefit extractions. Both are
// cheap calls, so they use the lite tier.
func (a *JobAnalyzer) AnalyzeJobDescription(ctx context.Context, jobDescription string) (*JobAnalysis, error) {
	keywords, err := a.client.GenerateContent(ctx, prompts.GenKeywords(jobDescription), llm.TierLite)
	if err != nil {
		return nil, &Error{Message: "failed to extract keywords", Cause: err}
	}

	benefits, err := a.client.GenerateContent(ctx, prompts.GenBenefits(jobDescription), llm.TierLite)
	if err != nil {
		return nil, &Error{Message: "failed to extract benefits", Cause: err}
	}

	return &JobAnalysis{
		Keywords: strings.TrimSpace(keywords),
		Benefits: strings.TrimSpace(benefits),
	}, nil
}
