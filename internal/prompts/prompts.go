// Package prompts builds the parameterized prompts used by the analyzers.
// Every prompt takes a tone and, where the output is list-like, an output
// format, so callers can tune the voice without editing templates.
package prompts

import "fmt"

// Tone selects the persona the prompt opens with.
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneCasual       Tone = "casual"
	ToneEnthusiastic Tone = "enthusiastic"
	ToneConcise      Tone = "concise"
)

// OutputFormat selects how the model should shape its answer.
type OutputFormat string

const (
	FormatBulletPoints   OutputFormat = "bullet_points"
	FormatCommaSeparated OutputFormat = "comma_separated"
	FormatNumberedList   OutputFormat = "numbered_list"
	FormatParagraph      OutputFormat = "paragraph"
)

var toneModifiers = map[Tone]string{
	ToneProfessional: "You are a professional career advisor with extensive experience in recruitment and talent acquisition.",
	ToneCasual:       "You are a friendly career coach who helps job seekers in a relaxed, approachable manner.",
	ToneEnthusiastic: "You are an energetic career expert who is passionate about helping people succeed.",
	ToneConcise:      "You are an efficient career advisor who provides clear, direct guidance.",
}

var formatInstructions = map[OutputFormat]string{
	FormatBulletPoints:   "Present your response as clear bullet points using • symbols.",
	FormatCommaSeparated: "Present your response as a comma-separated list with no additional formatting.",
	FormatNumberedList:   "Present your response as a numbered list with clear numbering (1., 2., 3., etc.).",
	FormatParagraph:      "Present your response in well-structured paragraphs with clear explanations.",
}

// toneModifier falls back to professional for unknown tones.
func toneModifier(tone Tone) string {
	if m, ok := toneModifiers[tone]; ok {
		return m
	}
	return toneModifiers[ToneProfessional]
}

func formatInstruction(format OutputFormat) string {
	if inst, ok := formatInstructions[format]; ok {
		return inst
	}
	return formatInstructions[FormatBulletPoints]
}

// GenAnalysis builds a prompt that extracts key information from text.
func GenAnalysis(text string, tone Tone, format OutputFormat) string {
	return fmt.Sprintf(`%s

Your task is to analyze the following text and extract key information. Focus on identifying:
- Main topics and themes
- Key entities (people, places, organizations)
- Overall sentiment

IMPORTANT GUIDELINES:
1. Extract only explicit information mentioned in the text.
2. Avoid generic terms unless they are specifically emphasized.
3. Include acronyms and their full forms when both are mentioned.

%s

Text:
%s

Extract the key information now:`, toneModifier(tone), formatInstruction(format), text)
}

// GenSuggestions builds a prompt asking for improvement suggestions toward
// a stated goal. The model is told not to rewrite the text.
func GenSuggestions(text, goal string, tone Tone, format OutputFormat) string {
	return fmt.Sprintf(`%s

You are analyzing a text to provide targeted improvement suggestions. Your analysis should focus on the following goal: %s.

ANALYSIS APPROACH:
1. Identify areas of the text that can be improved to meet the goal.
2. Suggest specific, actionable improvements rather than generic advice.
3. Consider both content improvements and formatting/presentation enhancements.

IMPORTANT: Do not rewrite the text. Only provide specific, actionable suggestions for improvement.

%s

Text:
%s

Provide your improvement suggestions:`, toneModifier(tone), goal, formatInstruction(format), text)
}

// GenKeywords builds a prompt that extracts the skills and qualifications a
// job description asks for.
func GenKeywords(jobDescription string) string {
	return fmt.Sprintf(`%s

Your task is to extract the most important keywords from the following job description. Focus on identifying:
- Technical skills and technologies
- Required qualifications and certifications
- Soft skills that are specifically emphasized
- Industry-specific terminology

IMPORTANT GUIDELINES:
1. Extract only keywords explicitly mentioned in the job description.
2. Avoid generic terms unless they are specifically emphasized.
3. Include acronyms and their full forms when both are mentioned.

%s

Job description:
%s

Extract the keywords now:`, toneModifiers[ToneProfessional], formatInstructions[FormatCommaSeparated], jobDescription)
}

// GenBenefits builds a prompt that extracts compensation and benefits
// mentioned in a job description.
func GenBenefits(jobDescription string) string {
	return fmt.Sprintf(`%s

Your task is to extract the benefits and perks offered in the following job description. Focus on identifying:
- Compensation details (salary range, bonuses, equity)
- Health and wellness benefits
- Time off and flexibility policies
- Professional development opportunities

IMPORTANT GUIDELINES:
1. Extract only benefits explicitly mentioned in the job description.
2. Do not infer benefits that are not stated.
3. Keep each benefit short and specific.

%s

Job description:
%s

Extract the benefits now:`, toneModifiers[ToneProfessional], formatInstructions[FormatBulletPoints], jobDescription)
}

// GenResumeSuggestions builds a prompt for tailoring a resume toward a
// specific job description.
func GenResumeSuggestions(resumeText, jobDescription string, tone Tone, format OutputFormat) string {
	return fmt.Sprintf(`%s

You are reviewing a resume against a specific job description to provide targeted improvement suggestions.

ANALYSIS APPROACH:
1. Compare the resume content against the job requirements.
2. Identify missing keywords and skills the job description emphasizes.
3. Point out experiences that should be highlighted or reworded for this job.
4. Suggest specific, actionable improvements rather than generic advice.

IMPORTANT: Do not rewrite the resume. Only provide specific, actionable suggestions for improvement.

%s

Job description:
%s

Resume:
%s

Provide your improvement suggestions:`, toneModifier(tone), formatInstruction(format), jobDescription, resumeText)
}

// GenResumeApplication builds a prompt that applies suggestions to a resume
// and returns the improved plain-text resume. The output feeds the formatter,
// so the model is told to keep the section structure and avoid LaTeX.
func GenResumeApplication(resumeText, suggestions, jobDescription string, tone Tone) string {
	jobContext := ""
	if jobDescription != "" {
		jobContext = fmt.Sprintf("\nTarget job description for context:\n%s\n", jobDescription)
	}
	return fmt.Sprintf(`%s

Your task is to rewrite the resume below, applying the improvement suggestions provided.

RULES:
1. Apply every suggestion that fits; leave everything else unchanged.
2. Keep the original section headings and overall structure.
3. Do not invent experiences, skills, or dates that are not in the original.
4. Return plain text only, no LaTeX commands and no markdown fences.
%s
Improvement suggestions:
%s

Resume:
%s

Return the improved resume now:`, toneModifier(tone), jobContext, suggestions, resumeText)
}

// GenLatexRepair builds a prompt that fixes a LaTeX document that failed to
// compile. The compilation log is truncated by the caller; the model must
// return compilable LaTeX and nothing else.
func GenLatexRepair(latexSource, compileLog string) string {
	return fmt.Sprintf(`You are a LaTeX expert. The document below failed to compile. Fix the errors and return the corrected document.

RULES:
1. Change only what is needed to make the document compile.
2. Preserve all textual content, section order, and formatting intent.
3. Do not add packages unless an error requires one.
4. Return the complete corrected LaTeX source only, no explanations and no markdown fences.

Compilation log (excerpt):
%s

LaTeX source:
%s

Return the corrected document now:`, compileLog, latexSource)
}
