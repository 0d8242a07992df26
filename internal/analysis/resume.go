package analysis

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/beetune/internal/llm"
	"github.com/jonathan/beetune/internal/prompts"
)

// ResumeAnalysis is the structured feedback for a resume on its own.
type ResumeAnalysis struct {
	Strengths         []string `json:"strengths"`
	Improvements      []string `json:"improvements"`
	MissingSections   []string `json:"missing_sections"`
	Keywords          []string `json:"keywords"`
	OverallAssessment string   `json:"overall_assessment"`
	Suggestions       []string `json:"suggestions"`
}

// ResumeJobMatch is the structured feedback for a resume against a job.
type ResumeJobMatch struct {
	MatchPercentage     float64  `json:"match_percentage"`
	MissingSkills       []string `json:"missing_skills"`
	RelevantExperiences []string `json:"relevant_experiences"`
	JobKeywords         []string `json:"job_keywords"`
	Improvements        []string `json:"improvements"`
	Strengths           []string `json:"strengths"`
	Suggestions         []string `json:"suggestions"`
	OverallAssessment   string   `json:"overall_assessment"`
}

// ResumeAnalyzer generates targeted suggestions for a resume and can apply
// them to produce an improved version.
type ResumeAnalyzer struct {
	client llm.Client
}

func NewResumeAnalyzer(client llm.Client) *ResumeAnalyzer {
	return &ResumeAnalyzer{client: client}
}

// SuggestImprovements returns suggestions for tailoring the resume to the
// job description.
func (a *ResumeAnalyzer) SuggestImprovements(ctx context.Context, resumeText, jobDescription string, tone prompts.Tone, format prompts.OutputFormat) (string, error) {
	prompt := prompts.GenResumeSuggestions(resumeText, jobDescription, tone, format)
	content, err := a.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		return "", &Error{Message: "failed to generate resume suggestions", Cause: err}
	}
	return strings.TrimSpace(content), nil
}

// ApplyImprovements rewrites the resume with the suggestions applied. The
// returned text is plain resume text ready for the formatter.
func (a *ResumeAnalyzer) ApplyImprovements(ctx context.Context, resumeText, suggestions, jobDescription string, tone prompts.Tone) (string, error) {
	prompt := prompts.GenResumeApplication(resumeText, suggestions, jobDescription, tone)
	content, err := a.client.GenerateContent(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return "", &Error{Message: "failed to apply improvements", Cause: err}
	}
	return strings.TrimSpace(content), nil
}

// AnalyzeResume produces general structured feedback for a resume.
func (a *ResumeAnalyzer) AnalyzeResume(ctx context.Context, resumeText string) (*ResumeAnalysis, error) {
	prompt := llm.BuildExtractionPrompt(llm.ResumeAnalysisSchema(), resumeText)
	raw, err := a.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &Error{Message: "failed to analyze resume", Cause: err}
	}

	var result ResumeAnalysis
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &result); err != nil {
		// Model ignored the schema; surface the raw answer rather than
		// losing it.
		return &ResumeAnalysis{
			OverallAssessment: strings.TrimSpace(raw),
			Suggestions:       []string{strings.TrimSpace(raw)},
		}, nil
	}
	return &result, nil
}

// AnalyzeResumeAgainstJob produces structured feedback for a resume targeted
// at a specific job description.
func (a *ResumeAnalyzer) AnalyzeResumeAgainstJob(ctx context.Context, resumeText, jobDescription string) (*ResumeJobMatch, error) {
	prompt := llm.BuildExtractionPrompt(llm.ResumeJobMatchSchema(jobDescription), resumeText)
	raw, err := a.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &Error{Message: "failed to analyze resume against job", Cause: err}
	}

	var result ResumeJobMatch
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &result); err != nil {
		return &ResumeJobMatch{
			MatchPercentage:   50,
			OverallAssessment: strings.TrimSpace(raw),
			Suggestions:       []string{strings.TrimSpace(raw)},
		}, nil
	}
	return &result, nil
}
