package api

import (
	"bytes"
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gompdf/gomresume/pkg/errors"
)

const sample = `personal:
  name: Ada Lovelace
  email: ada@example.com
  location: {city: London, country: UK}
summary: Analyst of engines.
experience:
  - title: Analyst
    company: Analytical Engine Co.
    start_date: "1842"
    present: true
    highlights:
      - Wrote the first published program
skills:
  Languages: [Notes, Tables]
config:
  section_order: [experience, skills, hobbies]
`

func TestLayout(t *testing.T) {
	l, err := New().Layout(context.Background(), []byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", l.Document.Personal.Name)
	assert.Equal(t, "letter", l.Config.PageSize.Name)
	assert.Equal(t, []string{"hobbies"}, l.Config.UnknownSections())
	assert.Equal(t, 1, l.Result.PageCount)
	require.NotEmpty(t, l.Result.Lines)
	assert.Equal(t, "Ada Lovelace", l.Result.Lines[0].Text)

	var texts []string
	for _, line := range l.Result.Lines {
		texts = append(texts, line.Text)
	}
	joined := strings.Join(texts, "\n")
	assert.Contains(t, joined, "PROFESSIONAL EXPERIENCE")
	assert.Contains(t, joined, "SKILLS")
	// summary is not in the configured order
	assert.NotContains(t, joined, "Analyst of engines.")
}

func TestLayoutWarnsOnUnknownSections(t *testing.T) {
	var logs bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{Level: log.DebugLevel})

	_, err := New(WithLogger(logger)).Layout(context.Background(), []byte(sample))
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "hobbies")
	assert.Contains(t, logs.String(), "flowed pages")
}

func TestLayoutMissingName(t *testing.T) {
	_, err := New().Layout(context.Background(), []byte("personal:\n  email: a@b.c\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeSchema))

	var se *errors.SchemaError
	require.True(t, stderrors.As(err, &se))
	assert.Equal(t, "personal.name", se.Path)
}

func TestLayoutUnsupportedFont(t *testing.T) {
	doc := "personal: {name: A}\nconfig:\n  fonts:\n    name: Comic-Sans\n"
	_, err := New().Layout(context.Background(), []byte(doc))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeUnsupportedFont))
	assert.Contains(t, err.Error(), "Comic-Sans")
}

func TestOverridePrecedence(t *testing.T) {
	doc := "personal: {name: A}\nconfig:\n  page_size: legal\n  margin: 1\n"

	l, err := New().Layout(context.Background(), []byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "legal", l.Config.PageSize.Name)
	assert.InDelta(t, 72.0, l.Config.Margins.Left, 1e-9)

	half := 0.5
	l, err = New(WithPageSizeA4(), WithOverrides(Overrides{Margin: &half})).Layout(context.Background(), []byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "a4", l.Config.PageSize.Name)
	assert.InDelta(t, 36.0, l.Config.Margins.Left, 1e-9)
}

func TestConfigFileOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.toml")
	require.NoError(t, os.WriteFile(path, []byte("page_size = \"a4\"\nfooter = true\n\n[fonts]\nbody_size = 10.0\n"), 0o644))

	l, err := New(WithConfigFile(path)).Layout(context.Background(), []byte("personal: {name: A}\nconfig:\n  page_size: legal\n"))
	require.NoError(t, err)
	assert.Equal(t, "a4", l.Config.PageSize.Name)
	assert.True(t, l.Config.Footer)
	assert.InDelta(t, 10.0, l.Config.Sizes.Body, 1e-9)

	_, err = New(WithConfigFile(filepath.Join(dir, "missing.toml"))).Layout(context.Background(), []byte("personal: {name: A}\n"))
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))
}

func TestConvert(t *testing.T) {
	c := New(WithCompression(false))
	ctx := context.Background()

	out, err := c.ConvertBytes(ctx, []byte(sample), FormatPDF)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Contains(t, string(out), "(Ada Lovelace) Tj")

	out, err = c.ConvertBytes(ctx, []byte(sample), FormatHTML)
	require.NoError(t, err)
	assert.Contains(t, string(out), "<title>Ada Lovelace - Resume</title>")

	out, err = c.ConvertBytes(ctx, []byte(sample), "JSON")
	require.NoError(t, err)
	assert.Contains(t, string(out), `"page_count": 1`)

	_, err = c.ConvertBytes(ctx, []byte(sample), "docx")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "resume.yaml")
	require.NoError(t, os.WriteFile(input, []byte(sample), 0o644))
	outDir := filepath.Join(dir, "out", "nested")

	paths, err := New(WithOutputDir(outDir), WithFormats(FormatPDF, FormatJSON)).ConvertFile(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(outDir, "Ada_Lovelace_resume.pdf"),
		filepath.Join(outDir, "Ada_Lovelace_resume.json"),
	}, paths)
	for _, p := range paths {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestConvertFileRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write([]byte("personal:\n  name: Grace Hopper\n"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	paths, err := New(WithOutputDir(dir), WithFormats(FormatHTML), WithHTTPClient(srv.Client())).
		ConvertFile(context.Background(), srv.URL+"/resume.yaml")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "Grace_Hopper_resume.html")}, paths)
}

func TestConvertFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := New(WithOutputDir(dir)).ConvertFile(context.Background(), filepath.Join(dir, "nope.yaml"))
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))

	input := filepath.Join(dir, "resume.yaml")
	require.NoError(t, os.WriteFile(input, []byte(sample), 0o644))
	_, err = New(WithOutputDir(dir), WithFormats("rtf")).ConvertFile(context.Background(), input)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		name, ext, want string
	}{
		{"Ada Lovelace", "pdf", "Ada_Lovelace_resume.pdf"},
		{"  Jean-Luc  Picard ", "html", "Jean-Luc__Picard_resume.html"},
		{"a/b\\c", "json", "a_b_c_resume.json"},
		{"   ", "pdf", "resume_resume.pdf"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, OutputName(tt.name, tt.ext))
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" HTML ")
	require.NoError(t, err)
	assert.Equal(t, FormatHTML, f)

	_, err = ParseFormat("docx")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))
}
