package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/beetune/internal/extraction"
	"github.com/jonathan/beetune/internal/formatting"
	"github.com/jonathan/beetune/internal/observability"
	"github.com/jonathan/beetune/internal/styles"
)

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Convert a resume into styled LaTeX",
	Long:  "Reads a resume (txt, md, pdf, or docx), splits it into sections, and emits a complete LaTeX document in the chosen style.",
	RunE:  runFormat,
}

var (
	formatInput  string
	formatOutput string
	formatStyle  string
)

func init() {
	formatCmd.Flags().StringVarP(&formatInput, "in", "i", "", "Path to the resume file (required)")
	formatCmd.Flags().StringVarP(&formatOutput, "out", "o", "", "Path to the output .tex file (defaults to the input name with a .tex extension)")
	formatCmd.Flags().StringVarP(&formatStyle, "style", "s", "", "Style template: modern, classic, minimal, or academic")

	if err := formatCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(formatCmd)
}

func runFormat(_ *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}

	styleName := formatStyle
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

	text, err := extraction.ExtractFromFile(formatInput)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	if verboseEnabled(fileCfg) {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintContactInfo(formatting.ExtractContactInfo(text))
		printer.PrintSections(formatting.ParseSections(text))
	}

	document, err := formatting.FormatResume(text, style)
	if err != nil {
		return fmt.Errorf("failed to format resume: %w", err)
	}

	output := formatOutput
	if output == "" {
		base := strings.TrimSuffix(formatInput, filepath.Ext(formatInput))
		output = base + ".tex"
	}
	if dir := filepath.Dir(output); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(output, []byte(document), 0644); err != nil {
		return fmt.Errorf("failed to write LaTeX output: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Wrote %s (%s style)\n", output, style)
	return nil
}
