package main

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/beetune/internal/analysis"
	"github.com/jonathan/beetune/internal/extraction"
	"github.com/jonathan/beetune/internal/formatting"
	"github.com/jonathan/beetune/internal/latex"
	"github.com/jonathan/beetune/internal/observability"
	"github.com/jonathan/beetune/internal/prompts"
	"github.com/jonathan/beetune/internal/styles"
)

var tailorCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Tailor a resume to a job and produce a PDF",
	Long:  "Runs the full pipeline: suggests improvements for the target job, applies them, formats the result as LaTeX, and compiles it to PDF.",
	RunE:  runTailor,
}

var (
	tailorResume  string
	tailorJobFile string
	tailorJobURL  string
	tailorStyle   string
	tailorOutDir  string
	tailorTexOnly bool
	tailorRepair  bool
)

func init() {
	tailorCmd.Flags().StringVarP(&tailorResume, "in", "i", "", "Path to the resume file (required)")
	tailorCmd.Flags().StringVarP(&tailorJobFile, "job", "j", "", "Path to the job description file")
	tailorCmd.Flags().StringVarP(&tailorJobURL, "job-url", "u", "", "URL of the job posting")
	tailorCmd.Flags().StringVarP(&tailorStyle, "style", "s", "", "Style template: modern, classic, minimal, or academic")
	tailorCmd.Flags().StringVarP(&tailorOutDir, "out", "o", "", "Output directory for the .tex and .pdf artifacts")
	tailorCmd.Flags().BoolVar(&tailorTexOnly, "tex-only", false, "Stop after writing the LaTeX source")
	tailorCmd.Flags().BoolVar(&tailorRepair, "repair", false, "Ask the model to fix the LaTeX once if compilation fails")
	tailorCmd.MarkFlagsMutuallyExclusive("job", "job-url")
	tailorCmd.MarkFlagsOneRequired("job", "job-url")

	if err := tailorCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(tailorCmd)
}

func runTailor(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	verbose := verboseEnabled(fileCfg)

	styleName := tailorStyle
	if styleName == "" {
		styleName = fileCfg.Style
	}
	if styleName == "" {
		styleName = string(styles.StyleModern)
	}
	style, err := styles.Parse(styleName)
	if err != nil {
		return err
	}

	resumeText, err := extraction.ExtractFromFile(tailorResume)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	jobDescription, err := loadJobText(cmd, tailorJobFile, tailorJobURL)
	if err != nil {
		return err
	}

	client, err := newLLMClient(cmd.Context(), fileCfg.APIKey, fileCfg.Model)
	if err != nil {
		return err
	}
	defer client.Close()

	analyzer := analysis.NewResumeAnalyzer(client)

	suggestions, err := analyzer.SuggestImprovements(cmd.Context(), resumeText, jobDescription,
		prompts.ToneProfessional, prompts.FormatBulletPoints)
	if err != nil {
		return err
	}
	if verbose {
		fmt.Fprintf(os.Stdout, "Suggestions:\n%s\n\n", suggestions)
	}

	improved, err := analyzer.ApplyImprovements(cmd.Context(), resumeText, suggestions,
		jobDescription, prompts.ToneProfessional)
	if err != nil {
		return err
	}

	if verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintContactInfo(formatting.ExtractContactInfo(improved))
		printer.PrintSections(formatting.ParseSections(improved))
	}

	document, err := formatting.FormatResume(improved, style)
	if err != nil {
		return fmt.Errorf("failed to format resume: %w", err)
	}

	outDir := tailorOutDir
	if outDir == "" {
		outDir = fileCfg.Output
	}
	if outDir == "" {
		outDir = filepath.Dir(tailorResume)
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(tailorResume), filepath.Ext(tailorResume))
	texPath := filepath.Join(outDir, base+".tex")
	if err := os.WriteFile(texPath, []byte(document), 0644); err != nil {
		return fmt.Errorf("failed to write LaTeX output: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Wrote %s\n", texPath)

	if tailorTexOnly {
		return nil
	}

	compiler := latex.NewCompiler()
	result := compiler.Compile(cmd.Context(), document, true)
	if verbose {
		observability.NewPrinter(os.Stdout).PrintCompilation(result)
	}
	if !result.Success && tailorRepair {
		fmt.Fprintln(os.Stderr, "Compilation failed, attempting repair")
		repaired, repairErr := analysis.NewLatexRepairer(client).RepairDocument(
			cmd.Context(), document, result.LogOutput)
		if repairErr != nil {
			return fmt.Errorf("compilation failed (%s) and repair did not help: %w", result.ErrorMessage, repairErr)
		}
		result = compiler.Compile(cmd.Context(), repaired, true)
		if result.Success {
			document = repaired
			if err := os.WriteFile(texPath, []byte(document), 0644); err != nil {
				return fmt.Errorf("failed to write repaired LaTeX output: %w", err)
			}
		}
	}
	if !result.Success {
		return fmt.Errorf("compilation failed: %s", result.ErrorMessage)
	}

	pdf, err := base64.StdEncoding.DecodeString(result.PDFBase64)
	if err != nil {
		return fmt.Errorf("failed to decode PDF: %w", err)
	}
	pdfPath := filepath.Join(outDir, base+".pdf")
	if err := os.WriteFile(pdfPath, pdf, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", pdfPath, err)
	}

	fmt.Fprintf(os.Stdout, "Wrote %s (%d pages)\n", pdfPath, result.Pages)
	return nil
}
