package latex

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

const (
	// DefaultCommand is the pdflatex binary resolved through PATH.
	DefaultCommand = "pdflatex"
	// DefaultPassTimeout bounds each individual pdflatex pass.
	DefaultPassTimeout = 60 * time.Second

	scratchTexName = "document.tex"
	scratchLogName = "document.log"
	scratchPDFName = "document.pdf"
)

// CompilationResult carries everything a caller needs to report a compilation
// outcome. The source is always echoed back in TexBase64 so failed runs can
// still be inspected.
type CompilationResult struct {
	Success      bool   `json:"success"`
	TexBase64    string `json:"tex_base64"`
	PDFBase64    string `json:"pdf_base64,omitempty"`
	LogOutput    string `json:"log_output"`
	ErrorMessage string `json:"error_message,omitempty"`
	Pages        int    `json:"pages,omitempty"`
}

// Compiler drives pdflatex over a scratch directory. The zero value is not
// usable; construct with NewCompiler.
type Compiler struct {
	Command string
	Timeout time.Duration
}

func NewCompiler() *Compiler {
	return &Compiler{
		Command: DefaultCommand,
		Timeout: DefaultPassTimeout,
	}
}

// Compile runs pdflatex twice over source so cross-references settle. All
// failures are reported through the result rather than an error return; the
// scratch directory is removed on every path.
func (c *Compiler) Compile(ctx context.Context, source string, validateFirst bool) CompilationResult {
	result := CompilationResult{
		TexBase64: base64.StdEncoding.EncodeToString([]byte(source)),
	}

	if validateFirst {
		validation := ValidateStructure(source)
		if !validation.IsValid {
			result.ErrorMessage = fmt.Sprintf("structural validation failed: %s",
				strings.Join(validation.MissingElements, "; "))
			return result
		}
	}

	scratch, err := os.MkdirTemp("", "beetune-latex-")
	if err != nil {
		result.ErrorMessage = fmt.Sprintf("failed to create scratch directory: %v", err)
		return result
	}
	defer os.RemoveAll(scratch)

	texPath := filepath.Join(scratch, scratchTexName)
	if err := os.WriteFile(texPath, []byte(source), 0644); err != nil {
		result.ErrorMessage = fmt.Sprintf("failed to write tex source: %v", err)
		return result
	}

	for pass := 1; pass <= 2; pass++ {
		stderr, runErr := c.runPass(ctx, scratch)
		result.LogOutput = readLog(scratch)
		if runErr != nil {
			if ctxErr := ctx.Err(); ctxErr != nil || strings.Contains(runErr.Error(), context.DeadlineExceeded.Error()) {
				result.ErrorMessage = fmt.Sprintf("pdflatex pass %d timed out after %s", pass, c.Timeout)
			} else {
				result.ErrorMessage = fmt.Sprintf("pdflatex pass %d failed: %v: %s", pass, runErr, stderr)
			}
			return result
		}
	}

	pdfPath := filepath.Join(scratch, scratchPDFName)
	pdfBytes, err := os.ReadFile(pdfPath)
	if err != nil {
		// Both passes exited zero yet no PDF exists, which points at a
		// driver misconfiguration rather than a source problem.
		result.ErrorMessage = "pdflatex reported success but produced no PDF"
		return result
	}

	result.Success = true
	result.PDFBase64 = base64.StdEncoding.EncodeToString(pdfBytes)
	if pages, err := api.PageCountFile(pdfPath); err == nil {
		result.Pages = pages
	}
	return result
}

// runPass executes a single pdflatex invocation in dir with its own timeout.
func (c *Compiler) runPass(ctx context.Context, dir string) (string, error) {
	passCtx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	cmd := exec.CommandContext(passCtx, c.Command,
		"-interaction=nonstopmode",
		"-file-line-error",
		"-halt-on-error",
		scratchTexName,
	)
	cmd.Dir = dir

	var stderr strings.Builder
	cmd.Stderr = &stderr

	err := cmd.Run()
	if passCtx.Err() == context.DeadlineExceeded {
		return stderr.String(), context.DeadlineExceeded
	}
	return stderr.String(), err
}

// readLog returns the pdflatex log if one was written. The log often exists
// even when the pass fails, and is the most useful diagnostic.
func readLog(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, scratchLogName))
	if err != nil {
		return ""
	}
	return string(data)
}

// CheckInstallation verifies pdflatex is on PATH and responds to --version.
func (c *Compiler) CheckInstallation(ctx context.Context) *InstallError {
	checkCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cmd := exec.CommandContext(checkCtx, c.Command, "--version")
	out, err := cmd.Output()
	if err != nil {
		return &InstallError{
			Message: fmt.Sprintf("%s is not installed or not on PATH", c.Command),
			Cause:   err,
		}
	}
	if !strings.Contains(strings.ToLower(string(out)), "pdftex") &&
		!strings.Contains(strings.ToLower(string(out)), "pdflatex") {
		return &InstallError{
			Message: fmt.Sprintf("%s --version produced unexpected output", c.Command),
		}
	}
	return nil
}
