package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/beetune/internal/llm"
	"github.com/jonathan/beetune/internal/prompts"
)

// fakeClient returns canned responses and records the prompts it saw.
type fakeClient struct {
	responses []string
	err       error
	prompts   []string
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	return f.next(prompt)
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	return f.next(prompt)
}

func (f *fakeClient) next(prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	if len(f.responses) == 0 {
		return "", errors.New("fakeClient: no responses left")
	}
	resp := f.responses[0]
	f.responses = f.responses[1:]
	return resp, nil
}

func (f *fakeClient) GetModel(llm.ModelTier) string { return "fake-model" }
func (f *fakeClient) Close() error                  { return nil }

func TestTextAnalyzerParsesKeyValueLines(t *testing.T) {
	client := &fakeClient{responses: []string{
		"• Topics: Go, distributed systems\nEntities: Acme Corp\nnot a pair\nSentiment: positive",
	}}
	analyzer := NewTextAnalyzer(client)

	result, err := analyzer.Analyze(context.Background(), "some text")
	require.NoError(t, err)
	assert.Equal(t, "Go, distributed systems", result["topics"])
	assert.Equal(t, "Acme Corp", result["entities"])
	assert.Equal(t, "positive", result["sentiment"])
	assert.Len(t, result, 3)
}

func TestTextAnalyzerPropagatesClientError(t *testing.T) {
	client := &fakeClient{err: errors.New("quota exceeded")}
	analyzer := NewTextAnalyzer(client)

	_, err := analyzer.Analyze(context.Background(), "text")
	var analysisErr *Error
	require.ErrorAs(t, err, &analysisErr)
	assert.Contains(t, analysisErr.Error(), "quota exceeded")
}

func TestTextAnalyzerSuggestImprovementsSendsGoal(t *testing.T) {
	client := &fakeClient{responses: []string{"  • shorten the summary  "}}
	analyzer := NewTextAnalyzer(client)

	got, err := analyzer.SuggestImprovements(context.Background(), "text", "make it more concise")
	require.NoError(t, err)
	assert.Equal(t, "• shorten the summary", got)
	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "make it more concise")
}

func TestJobAnalyzerExtractsKeywordsAndBenefits(t *testing.T) {
	client := &fakeClient{responses: []string{
		"Go, Kubernetes, PostgreSQL\n",
		"• Health insurance\n• 401k match\n",
	}}
	analyzer := NewJobAnalyzer(client)

	result, err := analyzer.AnalyzeJobDescription(context.Background(), "job text")
	require.NoError(t, err)
	assert.Equal(t, "Go, Kubernetes, PostgreSQL", result.Keywords)
	assert.Equal(t, "• Health insurance\n• 401k match", result.Benefits)
	require.Len(t, client.prompts, 2)
	assert.Contains(t, client.prompts[0], "keywords")
	assert.Contains(t, client.prompts[1], "benefits")
}

func TestJobAnalyzerStopsOnFirstFailure(t *testing.T) {
	client := &fakeClient{err: errors.New("network down")}
	analyzer := NewJobAnalyzer(client)

	_, err := analyzer.AnalyzeJobDescription(context.Background(), "job text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "keywords")
	assert.Len(t, client.prompts, 1)
}

func TestResumeAnalyzerSuggestions(t *testing.T) {
	client := &fakeClient{responses: []string{"• add metrics to bullet points"}}
	analyzer := NewResumeAnalyzer(client)

	got, err := analyzer.SuggestImprovements(context.Background(), "RESUME", "JOB",
		prompts.ToneProfessional, prompts.FormatBulletPoints)
	require.NoError(t, err)
	assert.Equal(t, "• add metrics to bullet points", got)
	assert.Contains(t, client.prompts[0], "RESUME")
	assert.Contains(t, client.prompts[0], "JOB")
}

func TestResumeAnalyzerApplyImprovements(t *testing.T) {
	client := &fakeClient{responses: []string{"John Doe\n\nSummary\nImproved engineer.\n"}}
	analyzer := NewResumeAnalyzer(client)

	got, err := analyzer.ApplyImprovements(context.Background(), "resume", "suggestions", "", prompts.ToneProfessional)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "John Doe"))
	assert.Contains(t, client.prompts[0], "suggestions")
}

func TestResumeAnalyzerStructuredAnalysis(t *testing.T) {
	client := &fakeClient{responses: []string{
		`{"strengths": ["clear layout"], "improvements": ["add metrics"], "overall_assessment": "solid", "suggestions": ["quantify impact"]}`,
	}}
	analyzer := NewResumeAnalyzer(client)

	result, err := analyzer.AnalyzeResume(context.Background(), "resume text")
	require.NoError(t, err)
	assert.Equal(t, []string{"clear layout"}, result.Strengths)
	assert.Equal(t, "solid", result.OverallAssessment)
}

func TestResumeAnalyzerStructuredAnalysisFallback(t *testing.T) {
	client := &fakeClient{responses: []string{"the model rambled instead of returning JSON"}}
	analyzer := NewResumeAnalyzer(client)

	result, err := analyzer.AnalyzeResume(context.Background(), "resume text")
	require.NoError(t, err)
	assert.Equal(t, "the model rambled instead of returning JSON", result.OverallAssessment)
	require.Len(t, result.Suggestions, 1)
}

func TestResumeAnalyzerJobMatch(t *testing.T) {
	client := &fakeClient{responses: []string{
		`{"match_percentage": 75, "missing_skills": ["Terraform"], "job_keywords": ["Go"], "overall_assessment": "good fit"}`,
	}}
	analyzer := NewResumeAnalyzer(client)

	result, err := analyzer.AnalyzeResumeAgainstJob(context.Background(), "resume", "job")
	require.NoError(t, err)
	assert.Equal(t, 75.0, result.MatchPercentage)
	assert.Equal(t, []string{"Terraform"}, result.MissingSkills)
	assert.Contains(t, client.prompts[0], "match_percentage")
}

func TestResumeAnalyzerJobMatchFallback(t *testing.T) {
	client := &fakeClient{responses: []string{"not json"}}
	analyzer := NewResumeAnalyzer(client)

	result, err := analyzer.AnalyzeResumeAgainstJob(context.Background(), "resume", "job")
	require.NoError(t, err)
	assert.Equal(t, 50.0, result.MatchPercentage)
	assert.Equal(t, "not json", result.OverallAssessment)
}
