package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecureFilename(t *testing.T) {
	assert.Equal(t, "resume.pdf", SecureFilename("resume.pdf"))
	assert.Equal(t, "etc_passwd", SecureFilename("../../etc/passwd"))
	assert.Equal(t, "my_resume_final.pdf", SecureFilename("my resume (final).pdf"))
	assert.Equal(t, "hidden.txt", SecureFilename(".hidden.txt"))
	assert.Equal(t, "upload", SecureFilename("///"))
}

func TestValidateUploadAcceptsPDF(t *testing.T) {
	p := NewUploadPolicy()
	data := []byte("%PDF-1.4\n1 0 obj\n<< >>\nendobj\ntrailer\n%%EOF\n")
	name, err := p.ValidateUpload(data, "resume.pdf")
	require.NoError(t, err)
	assert.Equal(t, "resume.pdf", name)
}

func TestValidateUploadAcceptsPlainText(t *testing.T) {
	p := NewUploadPolicy()
	name, err := p.ValidateUpload([]byte("John Doe\njohn@example.com\n"), "resume.txt")
	require.NoError(t, err)
	assert.Equal(t, "resume.txt", name)
}

func TestValidateUploadRejectsMismatchedContent(t *testing.T) {
	p := NewUploadPolicy()
	_, err := p.ValidateUpload([]byte("just plain text, not a pdf"), "resume.pdf")
	var secErr *SecurityError
	require.ErrorAs(t, err, &secErr)
	assert.Equal(t, "invalid file type", secErr.Message)
}

func TestValidateUploadRejectsDisallowedExtension(t *testing.T) {
	p := NewUploadPolicy()
	_, err := p.ValidateUpload([]byte("binary"), "malware.exe")
	var secErr *SecurityError
	require.ErrorAs(t, err, &secErr)
	assert.Equal(t, "invalid file extension", secErr.Message)
}

func TestValidateUploadRejectsEmptyInputs(t *testing.T) {
	p := NewUploadPolicy()

	_, err := p.ValidateUpload([]byte("x"), "")
	var secErr *SecurityError
	require.ErrorAs(t, err, &secErr)
	assert.Equal(t, "empty filename", secErr.Message)

	_, err = p.ValidateUpload(nil, "resume.txt")
	require.ErrorAs(t, err, &secErr)
	assert.Equal(t, "empty file", secErr.Message)

	_, err = p.ValidateUpload([]byte("x"), "noextension")
	require.ErrorAs(t, err, &secErr)
	assert.Equal(t, "no file extension", secErr.Message)
}

func TestValidateUploadCustomAllowList(t *testing.T) {
	p := &UploadPolicy{AllowedExtensions: map[string]bool{"tex": true}}

	_, err := p.ValidateUpload([]byte(`\documentclass{article}`), "resume.tex")
	require.NoError(t, err)

	_, err = p.ValidateUpload([]byte("text"), "resume.txt")
	require.Error(t, err)
}
