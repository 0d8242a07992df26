package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResumeText = `Jane Doe
jane@example.com
(555) 123-4567

EXPERIENCE
Acme Corp
- Built distributed services
- Led the payments migration

SKILLS
Go, Kubernetes, PostgreSQL
`

func TestRunFormatProducesFullDocument(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(input, []byte(sampleResumeText), 0644))

	formatInput = input
	formatOutput = filepath.Join(dir, "resume.tex")
	formatStyle = "modern"
	rootConfigPath = ""
	defer func() { formatInput, formatOutput, formatStyle = "", "", "" }()

	require.NoError(t, runFormat(nil, nil))

	data, err := os.ReadFile(formatOutput)
	require.NoError(t, err)
	document := string(data)

	// The full pipeline runs: contact header, section headings, and
	// formatted bullets, not raw text pasted into the preamble.
	assert.Contains(t, document, `\centerline{\huge\textbf{Jane Doe}}`)
	assert.Contains(t, document, "jane@example.com")
	assert.Contains(t, document, `\section{Experience}`)
	assert.Contains(t, document, `\begin{itemize}`)
	assert.Contains(t, document, `\section{Skills}`)
	assert.NotContains(t, document, "EXPERIENCE\nAcme Corp")
}

func TestRunFormatDefaultsOutputPath(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(input, []byte(sampleResumeText), 0644))

	formatInput = input
	formatOutput = ""
	formatStyle = ""
	rootConfigPath = ""
	defer func() { formatInput, formatStyle = "", "" }()

	require.NoError(t, runFormat(nil, nil))

	_, err := os.Stat(filepath.Join(dir, "resume.tex"))
	assert.NoError(t, err)
}
