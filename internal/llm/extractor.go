package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema describes a structured extraction task for a model.
// The analyzers build their JSON prompts from these instead of hand-written
// prompt strings so every structured call shares the same guardrails.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g. "ResumeAnalysis")
	Description string        // Preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", ["string"], {"key": "value"}
	Description string // Description for the model
	Required    bool
}

// BuildExtractionPrompt constructs the model prompt from schema and input.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  %q: %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// ResumeAnalysisSchema returns the extraction schema for general resume
// feedback without a target job.
func ResumeAnalysisSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "ResumeAnalysis",
		Description: `You are an expert resume reviewer. Analyze the resume below and provide structured feedback.
Identify strengths, areas for improvement, missing sections, and keywords worth adding.`,
		Fields: []SchemaField{
			{
				Name:        "strengths",
				Type:        `["string"]`,
				Description: "Key strengths of the resume",
				Required:    true,
			},
			{
				Name:        "improvements",
				Type:        `["string"]`,
				Description: "Areas that need improvement",
				Required:    true,
			},
			{
				Name:        "missing_sections",
				Type:        `["string"]`,
				Description: "Sections or information the resume lacks",
				Required:    false,
			},
			{
				Name:        "keywords",
				Type:        `["string"]`,
				Description: "Keywords worth adding to the resume",
				Required:    false,
			},
			{
				Name:        "overall_assessment",
				Type:        `"string"`,
				Description: "Brief overall assessment",
				Required:    true,
			},
			{
				Name:        "suggestions",
				Type:        `["string"]`,
				Description: "Specific, actionable suggestions",
				Required:    true,
			},
		},
	}
}

// ResumeJobMatchSchema returns the extraction schema for analyzing a resume
// against a specific job description. The job description is embedded in the
// description so both texts reach the model.
func ResumeJobMatchSchema(jobDescription string) ExtractionSchema {
	return ExtractionSchema{
		Name: "ResumeJobMatch",
		Description: fmt.Sprintf(`You are an expert recruiter. Analyze the resume below against this job description and provide targeted feedback.

Job description:
"""
%s
"""`, jobDescription),
		Fields: []SchemaField{
			{
				Name:        "match_percentage",
				Type:        "number",
				Description: "How well the resume matches the job, 0-100",
				Required:    true,
			},
			{
				Name:        "missing_skills",
				Type:        `["string"]`,
				Description: "Skills or experiences the job needs that the resume lacks",
				Required:    true,
			},
			{
				Name:        "relevant_experiences",
				Type:        `["string"]`,
				Description: "Experiences in the resume worth highlighting for this job",
				Required:    true,
			},
			{
				Name:        "job_keywords",
				Type:        `["string"]`,
				Description: "Keywords from the job description to incorporate",
				Required:    true,
			},
			{
				Name:        "improvements",
				Type:        `["string"]`,
				Description: "Specific improvements for this application",
				Required:    true,
			},
			{
				Name:        "strengths",
				Type:        `["string"]`,
				Description: "Resume strengths relative to this job",
				Required:    true,
			},
			{
				Name:        "suggestions",
				Type:        `["string"]`,
				Description: "Specific, actionable suggestions",
				Required:    true,
			},
			{
				Name:        "overall_assessment",
				Type:        `"string"`,
				Description: "Brief assessment for this specific job",
				Required:    true,
			},
		},
	}
}
