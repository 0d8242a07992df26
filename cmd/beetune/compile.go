package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/beetune/internal/latex"
	"github.com/jonathan/beetune/internal/observability"
)

// defaultCompileWorkers bounds concurrent pdflatex runs in batch mode.
const defaultCompileWorkers = 4

var compileCmd = &cobra.Command{
	Use:   "compile <file.tex> [file.tex...]",
	Short: "Compile LaTeX files to PDF",
	Long:  "Compiles one or more LaTeX files to PDF with pdflatex. Multiple inputs compile concurrently.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCompile,
}

var (
	compileOutput     string
	compileOutDir     string
	compileSkipChecks bool
	compileWorkers    int
)

func init() {
	compileCmd.Flags().StringVarP(&compileOutput, "out", "o", "", "Output PDF path (single input only)")
	compileCmd.Flags().StringVar(&compileOutDir, "out-dir", "", "Directory for output PDFs (defaults to each input's directory)")
	compileCmd.Flags().BoolVar(&compileSkipChecks, "no-validate", false, "Skip structural validation before compiling")
	compileCmd.Flags().IntVar(&compileWorkers, "workers", 0, "Concurrent compilations in batch mode")

	rootCmd.AddCommand(compileCmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}

	if compileOutput != "" && len(args) > 1 {
		return fmt.Errorf("--out only applies to a single input; use --out-dir for batches")
	}

	workers := compileWorkers
	if workers == 0 {
		workers = fileCfg.MaxWorkers
	}
	if workers <= 0 {
		workers = defaultCompileWorkers
	}

	outDir := compileOutDir
	if outDir == "" {
		outDir = fileCfg.Output
	}
	if outDir != "" {
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	compiler := latex.NewCompiler()
	if err := compiler.CheckInstallation(cmd.Context()); err != nil {
		return err
	}

	verbose := verboseEnabled(fileCfg)

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(workers)
	for _, input := range args {
		g.Go(func() error {
			return compileOne(ctx, compiler, input, outDir, verbose)
		})
	}
	return g.Wait()
}

func compileOne(ctx context.Context, compiler *latex.Compiler, input, outDir string, verbose bool) error {
	source, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", input, err)
	}

	if verbose {
		observability.NewPrinter(os.Stdout).PrintValidation(latex.ValidateStructure(string(source)))
	}

	result := compiler.Compile(ctx, string(source), !compileSkipChecks)
	if verbose {
		observability.NewPrinter(os.Stdout).PrintCompilation(result)
	}
	if !result.Success {
		return fmt.Errorf("compilation of %s failed: %s", input, result.ErrorMessage)
	}

	pdf, err := base64.StdEncoding.DecodeString(result.PDFBase64)
	if err != nil {
		return fmt.Errorf("failed to decode PDF for %s: %w", input, err)
	}

	output := pdfOutputPath(input, outDir)
	if err := os.WriteFile(output, pdf, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	fmt.Fprintf(os.Stdout, "Wrote %s (%d pages)\n", output, result.Pages)
	return nil
}

func pdfOutputPath(input, outDir string) string {
	if compileOutput != "" {
		return compileOutput
	}
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + ".pdf"
	if outDir != "" {
		return filepath.Join(outDir, base)
	}
	return filepath.Join(filepath.Dir(input), base)
}
