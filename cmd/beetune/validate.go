package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/beetune/internal/latex"
	"github.com/jonathan/beetune/internal/observability"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file.tex>",
	Short: "Check a LaTeX file for structural problems",
	Long:  "Validates document structure without invoking pdflatex: required elements, environment balance, and package requirements.",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	result := latex.ValidateStructure(string(source))
	observability.NewPrinter(os.Stdout).PrintValidation(result)

	if !result.IsValid {
		return fmt.Errorf("validation found %d missing element(s)", len(result.MissingElements))
	}
	return nil
}
