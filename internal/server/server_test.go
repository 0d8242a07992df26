package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/beetune/internal/llm"
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

func newTestServer(t *testing.T, client llm.Client) *Server {
	t.Helper()
	srv, err := New(Config{Port: 0}, nil, client)
	require.NoError(t, err)
	return srv
}

func postJSON(t *testing.T, srv *Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestIndexListsEndpoints(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "beetune-api", body["service"])

	endpoints, ok := body["endpoints"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, endpoints, "convert_latex")
	assert.Contains(t, endpoints, "analyze_job")
}

func TestHealthReportsAIProviderState(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "healthy", body["status"])

	components, ok := body["components"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "not_configured", components["ai_provider"])
	assert.Equal(t, "ready", components["file_processor"])
}

func TestAnalyzeJobWithoutProvider(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := postJSON(t, srv, "/analyze/job", map[string]string{"job_description": "Go engineer"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "ConfigurationError", body["error"])
}

func TestAnalyzeJobReturnsAnalysis(t *testing.T) {
	client := &fakeClient{responses: []string{
		"Topics: Go, Kubernetes\nSentiment: positive",
	}}
	srv := newTestServer(t, client)

	rec := postJSON(t, srv, "/analyze/job", map[string]string{"job_description": "Go engineer at Acme"})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])

	analysis, ok := body["analysis"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Go, Kubernetes", analysis["topics"])

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Go engineer at Acme")
}

func TestAnalyzeJobRejectsMissingField(t *testing.T) {
	srv := newTestServer(t, &fakeClient{})

	rec := postJSON(t, srv, "/analyze/job", map[string]string{})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "BadRequest", body["error"])
	assert.Contains(t, body["message"], "JobDescription")
}

func TestSuggestImprovementsTargetsJobWhenGiven(t *testing.T) {
	client := &fakeClient{responses: []string{"• Add metrics to the impact bullets"}}
	srv := newTestServer(t, client)

	rec := postJSON(t, srv, "/resume/suggest-improvements", map[string]string{
		"resume_text":     "Jane Doe\nExperience...",
		"job_description": "Senior Go engineer",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Contains(t, body["analysis"], "Add metrics")

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Senior Go engineer")
}

func TestSuggestImprovementsGeneralWithoutJob(t *testing.T) {
	client := &fakeClient{responses: []string{"Strengths: clear history\nGaps: no summary"}}
	srv := newTestServer(t, client)

	rec := postJSON(t, srv, "/resume/suggest-improvements", map[string]string{
		"resume_text": "Jane Doe\nExperience...",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	analysis, ok := body["analysis"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "clear history", analysis["strengths"])
}

func TestApplyImprovementsStylesResume(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := postJSON(t, srv, "/document/apply-improvements", map[string]any{
		"resume_text": "Jane Doe\njane@example.com\n\nEXPERIENCE\nAcme Corp\n- Built services",
		"template":    "professional",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])

	source, ok := body["latex_source"].(string)
	require.True(t, ok)
	assert.Contains(t, source, `\documentclass`)
	assert.Contains(t, source, `\begin{document}`)
	assert.Contains(t, source, "Jane Doe")
}

func TestApplyImprovementsRejectsUnknownTemplate(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := postJSON(t, srv, "/document/apply-improvements", map[string]any{
		"resume_text": "Jane Doe",
		"template":    "brutalist",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "BadRequest", body["error"])
}

func TestApplyImprovementsRunsRewriteWhenRequested(t *testing.T) {
	client := &fakeClient{responses: []string{
		"Jane Doe\njane@example.com\n\nEXPERIENCE\nAcme Corp\n- Shipped the payments platform",
	}}
	srv := newTestServer(t, client)

	rec := postJSON(t, srv, "/document/apply-improvements", map[string]any{
		"resume_text":  "Jane Doe\njane@example.com\n\nEXPERIENCE\nAcme Corp\n- Did payments",
		"improvements": []string{"Quantify the payments work"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	source, ok := body["latex_source"].(string)
	require.True(t, ok)
	assert.Contains(t, source, "payments platform")

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Quantify the payments work")
}

func TestConvertLatexRejectsInvalidSource(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := postJSON(t, srv, "/convert/latex", map[string]string{
		"latex_source": `\documentclass{article} no document environment`,
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "CompilationError", body["error"])
	assert.Contains(t, body["message"], `\begin{document}`)
}

func TestConvertLatexRejectsBadReturnFormat(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := postJSON(t, srv, "/convert/latex", map[string]string{
		"latex_source":  `\documentclass{article}\begin{document}x\end{document}`,
		"return_format": "xml",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "BadRequest", body["error"])
}

func TestExtractTextFromUpload(t *testing.T) {
	srv := newTestServer(t, nil)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "my resume.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("Jane Doe\n\nEXPERIENCE\nAcme Corp"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/resume/extract-text", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "my_resume.txt", body["filename"])
	assert.Contains(t, body["text"], "Acme Corp")
}

func TestExtractTextRejectsDisallowedExtension(t *testing.T) {
	srv := newTestServer(t, nil)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "resume.exe")
	require.NoError(t, err)
	_, err = part.Write([]byte("MZ fake binary"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/resume/extract-text", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "InvalidFileType", body["error"])
}

func TestAuthTokenDisabledWithoutSecret(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := postJSON(t, srv, "/auth/token", map[string]string{"secret": "whatever"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "AuthDisabled", body["error"])
}

func TestAuthFlow(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-jwt-secret-for-server-tests")
	t.Setenv("BCRYPT_COST", "10")

	srv, err := New(Config{Port: 0, APISecret: "hunter2"}, nil, &fakeClient{
		responses: []string{"Topics: Go"},
	})
	require.NoError(t, err)

	// Guarded route without a token.
	rec := postJSON(t, srv, "/analyze/job", map[string]string{"job_description": "Go engineer"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Wrong secret.
	rec = postJSON(t, srv, "/auth/token", map[string]string{"secret": "wrong"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Correct secret yields a token.
	rec = postJSON(t, srv, "/auth/token", map[string]string{"secret": "hunter2"})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	token, ok := body["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	assert.Equal(t, "Bearer", body["token_type"])

	// Token unlocks the guarded route.
	payload, err := json.Marshal(map[string]string{"job_description": "Go engineer"})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/analyze/job", bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+token)
	authed := httptest.NewRecorder()
	srv.Handler().ServeHTTP(authed, req)
	require.Equal(t, http.StatusOK, authed.Code)

	// Garbage token stays locked out.
	req = httptest.NewRequest(http.MethodPost, "/analyze/job", bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	denied := httptest.NewRecorder()
	srv.Handler().ServeHTTP(denied, req)
	require.Equal(t, http.StatusUnauthorized, denied.Code)
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/analyze/job", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.True(t, strings.Contains(rec.Header().Get("Access-Control-Allow-Headers"), "Authorization"))
}

func TestRequestIDHeaderSet(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
