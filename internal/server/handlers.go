package server

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/beetune/internal/extraction"
	"github.com/jonathan/beetune/internal/formatting"
	"github.com/jonathan/beetune/internal/prompts"
	"github.com/jonathan/beetune/internal/styles"
)

var validate = validator.New()

// decodeAndValidate parses a JSON request body into dst and runs struct
// validation. It writes the error response itself and reports success.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "BadRequest", "invalid JSON body")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) && len(invalid) > 0 {
			s.errorResponse(w, http.StatusBadRequest, "BadRequest",
				fmt.Sprintf("field %q failed validation (%s)", invalid[0].Field(), invalid[0].Tag()))
			return false
		}
		s.errorResponse(w, http.StatusBadRequest, "BadRequest", "invalid request")
		return false
	}
	return true
}

// --- auth ---

type authTokenRequest struct {
	Secret string `json:"secret" validate:"required"`
}

func (s *Server) handleAuthToken(w http.ResponseWriter, r *http.Request) {
	if s.jwtService == nil {
		s.errorResponse(w, http.StatusBadRequest, "AuthDisabled", "authentication is not configured")
		return
	}

	var req authTokenRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	if !s.secretCfg.VerifySecret(req.Secret, s.secretHash) {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized", "invalid API secret")
		return
	}

	token, err := s.jwtService.GenerateToken()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "TokenError", "failed to issue token")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"token":      token,
		"token_type": "Bearer",
		"expires_in": int((time.Duration(s.jwtService.config.ExpirationHours) * time.Hour).Seconds()),
	})
}

// --- analysis ---

type analyzeJobRequest struct {
	JobDescription string `json:"job_description" validate:"required"`
}

func (s *Server) handleAnalyzeJob(w http.ResponseWriter, r *http.Request) {
	analyzer := s.textAnalyzer()
	if analyzer == nil {
		s.errorResponse(w, http.StatusBadRequest, "ConfigurationError", "AI provider not configured")
		return
	}

	var req analyzeJobRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	result, err := analyzer.Analyze(r.Context(), req.JobDescription)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "AnalysisError",
			fmt.Sprintf("job analysis failed: %v", err))
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"success": true, "analysis": result})
}

type suggestImprovementsRequest struct {
	ResumeText     string `json:"resume_text" validate:"required"`
	JobDescription string `json:"job_description"`
}

func (s *Server) handleSuggestImprovements(w http.ResponseWriter, r *http.Request) {
	if s.client == nil {
		s.errorResponse(w, http.StatusBadRequest, "ConfigurationError", "AI provider not configured")
		return
	}

	var req suggestImprovementsRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	// With a job description the suggestions are targeted; without one the
	// resume gets a general analysis.
	var analysisResult any
	var err error
	if req.JobDescription != "" {
		analysisResult, err = s.resumeAnalyzer().SuggestImprovements(
			r.Context(), req.ResumeText, req.JobDescription,
			prompts.ToneProfessional, prompts.FormatBulletPoints)
	} else {
		analysisResult, err = s.textAnalyzer().Analyze(r.Context(), req.ResumeText)
	}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "AnalysisError",
			fmt.Sprintf("resume analysis failed: %v", err))
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"success": true, "analysis": analysisResult})
}

// --- extraction ---

func (s *Server) handleExtractText(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "BadRequest", "no file uploaded")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "BadRequest", "failed to read upload")
		return
	}

	filename, err := s.policy.ValidateUpload(data, header.Filename)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "InvalidFileType", err.Error())
		return
	}

	text, err := extraction.ExtractText(data, filename)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "ExtractionError",
			fmt.Sprintf("text extraction failed: %v", err))
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":  true,
		"text":     text,
		"filename": filename,
	})
}

// --- formatting ---

type applyImprovementsRequest struct {
	ResumeText   string   `json:"resume_text" validate:"required"`
	Improvements []string `json:"improvements"`
	Template     string   `json:"template"`
}

func (s *Server) handleApplyImprovements(w http.ResponseWriter, r *http.Request) {
	var req applyImprovementsRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	style := styles.StyleModern
	if req.Template != "" && req.Template != "professional" {
		parsed, err := styles.Parse(req.Template)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "BadRequest", err.Error())
			return
		}
		style = parsed
	}

	resumeText := req.ResumeText
	if len(req.Improvements) > 0 {
		analyzer := s.resumeAnalyzer()
		if analyzer == nil {
			s.errorResponse(w, http.StatusBadRequest, "ConfigurationError", "AI provider not configured")
			return
		}
		improved, err := analyzer.ApplyImprovements(r.Context(), resumeText,
			joinLines(req.Improvements), "", prompts.ToneProfessional)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "AnalysisError",
				fmt.Sprintf("failed to apply improvements: %v", err))
			return
		}
		resumeText = improved
	}

	latexSource, err := formatting.StyleDocument(resumeText, style)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "FormattingError",
			fmt.Sprintf("resume formatting failed: %v", err))
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":      true,
		"latex_source": latexSource,
	})
}

func joinLines(lines []string) string {
	out := ""
	for i, line := range lines {
		if i > 0 {
			out += "\n"
		}
		out += "- " + line
	}
	return out
}

// --- compilation ---

type convertLatexRequest struct {
	LatexSource  string `json:"latex_source" validate:"required"`
	ReturnFormat string `json:"return_format" validate:"omitempty,oneof=base64 binary"`
}

func (s *Server) handleConvertLatex(w http.ResponseWriter, r *http.Request) {
	var req convertLatexRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	result := s.compiler.Compile(r.Context(), req.LatexSource, true)
	if !result.Success {
		s.jsonResponse(w, http.StatusBadRequest, map[string]any{
			"error":   "CompilationError",
			"message": result.ErrorMessage,
			"log":     result.LogOutput,
		})
		return
	}

	if req.ReturnFormat == "binary" {
		pdf, err := base64.StdEncoding.DecodeString(result.PDFBase64)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "ConversionError", "failed to decode PDF")
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="resume.pdf"`)
		_, _ = w.Write(pdf)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":      true,
		"latex_source": result.TexBase64,
		"pdf_base64":   result.PDFBase64,
		"pages":        result.Pages,
	})
}
