package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/beetune/internal/analysis"
	"github.com/jonathan/beetune/internal/fetch"
	"github.com/jonathan/beetune/internal/observability"
)

var analyzeJobCmd = &cobra.Command{
	Use:   "analyze-job",
	Short: "Extract keywords and benefits from a job posting",
	Long:  "Analyzes a job description from a file or URL, extracting the technical keywords and offered benefits.",
	RunE:  runAnalyzeJob,
}

var (
	analyzeJobFile string
	analyzeJobURL  string
)

func init() {
	analyzeJobCmd.Flags().StringVarP(&analyzeJobFile, "file", "f", "", "Path to a job description text file, or '-' for stdin")
	analyzeJobCmd.Flags().StringVarP(&analyzeJobURL, "url", "u", "", "URL of the job posting")
	analyzeJobCmd.MarkFlagsMutuallyExclusive("file", "url")

	rootCmd.AddCommand(analyzeJobCmd)
}

func runAnalyzeJob(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}

	jobFile := analyzeJobFile
	jobURL := analyzeJobURL
	if jobFile == "" && jobURL == "" {
		jobFile = fileCfg.Job
		jobURL = fileCfg.JobURL
	}

	var description string
	switch {
	case jobURL != "":
		result, err := fetch.JobPosting(cmd.Context(), jobURL, fetch.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to fetch job posting: %w", err)
		}
		description = result.Text
	case jobFile == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read job description from stdin: %w", err)
		}
		description = string(data)
	case jobFile != "":
		data, err := os.ReadFile(jobFile)
		if err != nil {
			return fmt.Errorf("failed to read job file: %w", err)
		}
		description = string(data)
	default:
		return fmt.Errorf("either --file or --url is required")
	}

	if description == "" {
		return fmt.Errorf("job posting is empty")
	}

	client, err := newLLMClient(cmd.Context(), fileCfg.APIKey, fileCfg.Model)
	if err != nil {
		return err
	}
	defer client.Close()

	result, err := analysis.NewJobAnalyzer(client).AnalyzeJobDescription(cmd.Context(), description)
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintJobAnalysis(result)
	return nil
}
