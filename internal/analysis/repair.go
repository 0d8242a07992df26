package analysis

import (
	"context"
	"strings"

	"github.com/jonathan/beetune/internal/llm"
	"github.com/jonathan/beetune/internal/prompts"
)

// maxRepairLogBytes caps how much of a pdflatex log is sent to the model.
// Errors appear near the end of the log, so the tail is kept.
const maxRepairLogBytes = 4096

// LatexRepairer asks the model to fix a LaTeX document that failed to
// compile, using the pdflatex log as context.
type LatexRepairer struct {
	client llm.Client
}

func NewLatexRepairer(client llm.Client) *LatexRepairer {
	return &LatexRepairer{client: client}
}

// RepairDocument returns a corrected version of source. The caller is
// expected to recompile and decide whether the repair took.
func (r *LatexRepairer) RepairDocument(ctx context.Context, source, compileLog string) (string, error) {
	prompt := prompts.GenLatexRepair(source, tailOf(compileLog, maxRepairLogBytes))
	content, err := r.client.GenerateContent(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return "", &Error{Message: "failed to generate LaTeX repair", Cause: err}
	}

	repaired := strings.TrimSpace(stripCodeFence(content))
	if repaired == "" {
		return "", &Error{Message: "model returned an empty repair"}
	}
	return repaired, nil
}

func tailOf(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[len(s)-limit:]
}

// stripCodeFence removes a wrapping markdown code fence if the model added
// one despite instructions.
func stripCodeFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return s
	}
	trimmed = strings.TrimPrefix(trimmed, "```latex")
	trimmed = strings.TrimPrefix(trimmed, "```tex")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return trimmed
}
