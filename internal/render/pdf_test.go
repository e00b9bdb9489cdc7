package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTML_WrapsConvertedMarkdown(t *testing.T) {
	html, err := HTML("# Jane Doe\n\n- Built things\n")
	require.NoError(t, err)

	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "font-family: sans-serif")
	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "Jane Doe")
	assert.Contains(t, html, "<li>Built things</li>")
}

func TestOutputFilename(t *testing.T) {
	tests := []struct {
		name    string
		profile string
		company string
		role    string
		want    string
	}{
		{
			name:    "plain",
			profile: "me",
			company: "Acme Corp",
			role:    "Software Engineer",
			want:    "me_Acme Corp_Software Engineer.pdf",
		},
		{
			name:    "punctuation dropped",
			profile: "me",
			company: "Acme, Inc.",
			role:    "C++ Developer",
			want:    "me_Acme Inc_C Developer.pdf",
		},
		{
			name:    "empty fields",
			profile: "me",
			company: "",
			role:    "",
			want:    "me__.pdf",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OutputFilename(tt.profile, tt.company, tt.role))
		})
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"alphanumeric kept", "Engineer 2", "Engineer 2"},
		{"slash dropped", "SRE/DevOps", "SREDevOps"},
		{"underscore kept", "new_grad", "new_grad"},
		{"trailing space trimmed", "Acme, Inc.", "Acme Inc"},
		{"unicode letters kept", "Café Müller", "Café Müller"},
		{"emoji dropped", "Café 🔥", "Café"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestError_Message(t *testing.T) {
	err := &Error{Message: "headless browser rendering failed", Remediation: "install Google Chrome or Chromium and ensure it is on your PATH"}
	assert.Contains(t, err.Error(), "headless browser rendering failed")
	assert.Contains(t, err.Error(), "install Google Chrome")
}
