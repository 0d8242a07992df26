package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/beetune/internal/analysis"
	"github.com/jonathan/beetune/internal/extraction"
	"github.com/jonathan/beetune/internal/fetch"
	"github.com/jonathan/beetune/internal/prompts"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest resume improvements",
	Long:  "Suggests concrete improvements for a resume, optionally targeted at a specific job posting.",
	RunE:  runSuggest,
}

var (
	suggestResume  string
	suggestJobFile string
	suggestJobURL  string
	suggestTone    string
	suggestFormat  string
)

func init() {
	suggestCmd.Flags().StringVarP(&suggestResume, "in", "i", "", "Path to the resume file (required)")
	suggestCmd.Flags().StringVarP(&suggestJobFile, "job", "j", "", "Path to a job description to target")
	suggestCmd.Flags().StringVarP(&suggestJobURL, "job-url", "u", "", "URL of a job posting to target")
	suggestCmd.Flags().StringVar(&suggestTone, "tone", string(prompts.ToneProfessional), "Advice tone: professional, casual, enthusiastic, or concise")
	suggestCmd.Flags().StringVar(&suggestFormat, "format", string(prompts.FormatBulletPoints), "Output format: bullet_points, comma_separated, numbered_list, or paragraph")
	suggestCmd.MarkFlagsMutuallyExclusive("job", "job-url")

	if err := suggestCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}

	resumeText, err := extraction.ExtractFromFile(suggestResume)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	jobDescription, err := loadJobText(cmd, suggestJobFile, suggestJobURL)
	if err != nil {
		return err
	}

	client, err := newLLMClient(cmd.Context(), fileCfg.APIKey, fileCfg.Model)
	if err != nil {
		return err
	}
	defer client.Close()

	var suggestions string
	if jobDescription != "" {
		suggestions, err = analysis.NewResumeAnalyzer(client).SuggestImprovements(
			cmd.Context(), resumeText, jobDescription,
			prompts.Tone(suggestTone), prompts.OutputFormat(suggestFormat))
	} else {
		suggestions, err = analysis.NewTextAnalyzer(client).SuggestImprovements(
			cmd.Context(), resumeText, "Improve this resume's overall clarity and impact")
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, suggestions)
	return nil
}

// loadJobText resolves an optional job description from a file or URL.
// Both empty means no targeting.
func loadJobText(cmd *cobra.Command, jobFile, jobURL string) (string, error) {
	switch {
	case jobURL != "":
		result, err := fetch.JobPosting(cmd.Context(), jobURL, fetch.DefaultOptions())
		if err != nil {
			return "", fmt.Errorf("failed to fetch job posting: %w", err)
		}
		return result.Text, nil
	case jobFile != "":
		data, err := os.ReadFile(jobFile)
		if err != nil {
			return "", fmt.Errorf("failed to read job file: %w", err)
		}
		return string(data), nil
	default:
		return "", nil
	}
}
