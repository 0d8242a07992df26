package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPdfOutputPath(t *testing.T) {
	compileOutput = ""
	assert.Equal(t, filepath.Join("dir", "resume.pdf"), pdfOutputPath(filepath.Join("dir", "resume.tex"), ""))
	assert.Equal(t, filepath.Join("out", "resume.pdf"), pdfOutputPath(filepath.Join("dir", "resume.tex"), "out"))

	compileOutput = "explicit.pdf"
	defer func() { compileOutput = "" }()
	assert.Equal(t, "explicit.pdf", pdfOutputPath("resume.tex", "out"))
}

func TestMaskKey(t *testing.T) {
	assert.Equal(t, "****", maskKey(""))
	assert.Equal(t, "****", maskKey("abcd"))
	assert.Equal(t, "****6789", maskKey("sk-123456789"))
}

func TestLoadFileConfig_Empty(t *testing.T) {
	rootConfigPath = ""
	cfg, err := loadFileConfig()
	require.NoError(t, err)
	assert.Zero(t, cfg)
}

func TestLoadFileConfig_ValidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "beetune.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"style":"classic","max_workers":2}`), 0644))

	rootConfigPath = path
	defer func() { rootConfigPath = "" }()

	cfg, err := loadFileConfig()
	require.NoError(t, err)
	assert.Equal(t, "classic", cfg.Style)
	assert.Equal(t, 2, cfg.MaxWorkers)
}

func TestLoadFileConfig_InvalidStyle(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "beetune.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"style":"brutalist"}`), 0644))

	rootConfigPath = path
	defer func() { rootConfigPath = "" }()

	_, err := loadFileConfig()
	assert.Error(t, err)
}
