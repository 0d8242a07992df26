package styles

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ValidStyles(t *testing.T) {
	for _, name := range []string{"modern", "classic", "minimal", "academic"} {
		style, err := Parse(name)
		require.NoError(t, err)
		assert.Equal(t, Style(name), style)
	}
}

func TestParse_UnknownStyle(t *testing.T) {
	_, err := Parse("baroque")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "baroque")
}

func TestLookup_EveryStyleHasTemplate(t *testing.T) {
	for _, style := range All() {
		tmpl, ok := Lookup(style)
		require.True(t, ok, "style %s has no template", style)
		assert.True(t, strings.HasPrefix(tmpl.DocumentClass, `\documentclass`))
		assert.NotEmpty(t, tmpl.Packages)
		assert.True(t, strings.HasPrefix(tmpl.Geometry, `\geometry`))
	}
}

func TestLookup_ModernHasColorAndSectionFormat(t *testing.T) {
	tmpl, ok := Lookup(StyleModern)
	require.True(t, ok)
	assert.Contains(t, tmpl.Colors, "primarycolor")
	assert.Contains(t, tmpl.SectionFormat, `\titleformat`)
	assert.Contains(t, tmpl.Packages, `\usepackage{xcolor}`)
	assert.Contains(t, tmpl.Packages, `\usepackage{hyperref}`)
}

func TestLookup_ClassicHasNoColors(t *testing.T) {
	tmpl, ok := Lookup(StyleClassic)
	require.True(t, ok)
	assert.Empty(t, tmpl.Colors)
	assert.Empty(t, tmpl.SectionFormat)
}

func TestLookup_UnknownStyle(t *testing.T) {
	_, ok := Lookup(Style("gothic"))
	assert.False(t, ok)
}
