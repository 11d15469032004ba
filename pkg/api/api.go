// Package api turns resume documents into paginated output files.
//
// A conversion runs load, parse, configure, format, flow and render in
// order. Everything between parse and render is pure; the Converter only
// does I/O at the edges.
package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/gompdf/gomresume/internal/config"
	"github.com/gompdf/gomresume/internal/format"
	"github.com/gompdf/gomresume/internal/layout"
	"github.com/gompdf/gomresume/internal/model"
	"github.com/gompdf/gomresume/internal/pagination"
	"github.com/gompdf/gomresume/internal/parser/toml"
	"github.com/gompdf/gomresume/internal/parser/yaml"
	"github.com/gompdf/gomresume/internal/render"
	htmlrender "github.com/gompdf/gomresume/internal/render/html"
	jsonrender "github.com/gompdf/gomresume/internal/render/json"
	pdfrender "github.com/gompdf/gomresume/internal/render/pdf"
	"github.com/gompdf/gomresume/internal/res"
	"github.com/gompdf/gomresume/pkg/errors"
)

// Creator is stamped into every artifact's metadata.
const Creator = "gomresume"

// Result is a flowed document: placed lines and rules plus the page count.
type Result = pagination.Result

// PlacedLine is one line of text bound to a page position.
type PlacedLine = pagination.PlacedLine

// Layout is the outcome of everything up to rendering.
type Layout struct {
	Document *model.Document
	Config   config.Config
	Sections []layout.Section
	Result   *Result
}

// Converter is the main API for converting resume documents
type Converter struct {
	options Options
	loader  *res.Loader
}

// New creates a new converter with default options
func New(opts ...Option) *Converter {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return NewWithOptions(o)
}

// NewWithOptions creates a new converter with the specified options
func NewWithOptions(options Options) *Converter {
	if options.Logger == nil {
		options.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	loader := res.NewLoader("")
	for _, path := range options.ResourcePaths {
		loader.AddSearchPath(path)
	}
	if options.HTTPClient != nil {
		loader.SetClient(options.HTTPClient)
	}
	return &Converter{options: options, loader: loader}
}

// Options returns a copy of the converter's options.
func (c *Converter) Options() Options {
	return c.options
}

// Layout parses doc, resolves its configuration and flows it onto pages.
func (c *Converter) Layout(ctx context.Context, doc []byte) (*Layout, error) {
	logger := c.options.Logger
	start := time.Now()

	parsed, err := yaml.NewParser().ParseBytes(doc)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	logger.Debug("parsed document", "name", parsed.Document.Personal.Name, "duration", time.Since(start))

	cfg, err := c.configure(ctx, parsed.Config)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if unknown := cfg.UnknownSections(); len(unknown) > 0 {
		logger.Warn("ignoring unknown section_order entries", "sections", strings.Join(unknown, ", "))
	}

	t := time.Now()
	sections := format.New(cfg).Format(parsed.Document)
	logger.Debug("formatted sections", "sections", len(sections), "duration", time.Since(t))

	t = time.Now()
	result := pagination.NewEngine(cfg).Flow(sections)
	logger.Debug("flowed pages", "pages", result.PageCount, "lines", len(result.Lines), "duration", time.Since(t))

	return &Layout{
		Document: parsed.Document,
		Config:   cfg,
		Sections: sections,
		Result:   result,
	}, nil
}

// configure layers the document's config, the overlay file, the API
// overrides and the page size option, in that order.
func (c *Converter) configure(ctx context.Context, docConfig config.Overrides) (config.Config, error) {
	overlays := []config.Overrides{docConfig}

	if c.options.ConfigFile != "" {
		r, err := c.loader.LoadOverlay(ctx, c.options.ConfigFile)
		if err != nil {
			return config.Config{}, err
		}
		ov, err := toml.Parse(r.Data)
		if err != nil {
			return config.Config{}, err
		}
		if len(ov.Unknown) > 0 {
			c.options.Logger.Warn("ignoring unknown config keys", "file", c.options.ConfigFile, "keys", strings.Join(ov.Unknown, ", "))
		}
		overlays = append(overlays, ov.Overrides)
	}

	overlays = append(overlays, c.options.Overrides...)

	if c.options.PageSize != "" {
		size := c.options.PageSize
		overlays = append(overlays, config.Overrides{PageSize: &size})
	}

	return config.Build(overlays...)
}

// Convert lays out doc and writes it to w in the given format.
func (c *Converter) Convert(ctx context.Context, doc []byte, f Format, w io.Writer) error {
	l, err := c.Layout(ctx, doc)
	if err != nil {
		return err
	}
	return c.render(l, f, w)
}

// ConvertBytes is like Convert but returns the artifact.
func (c *Converter) ConvertBytes(ctx context.Context, doc []byte, f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Convert(ctx, doc, f, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ConvertFile loads input (a path or http(s) URL), writes one file per
// configured format under the output directory and returns their paths.
func (c *Converter) ConvertFile(ctx context.Context, input string) ([]string, error) {
	r, err := c.loader.LoadDocument(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	c.options.Logger.Debug("loaded document", "resource", r.String())

	l, err := c.Layout(ctx, r.Data)
	if err != nil {
		return nil, err
	}

	formats := make([]Format, 0, len(c.options.Formats))
	for _, f := range c.options.Formats {
		f, err := ParseFormat(string(f))
		if err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}
	if len(formats) == 0 {
		formats = []Format{FormatPDF}
	}
	dir := c.options.OutputDir
	if dir == "" {
		dir = DefaultOutputDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to create output directory %s", dir)
	}

	paths := make([]string, 0, len(formats))
	for _, f := range formats {
		var buf bytes.Buffer
		if err := c.render(l, f, &buf); err != nil {
			return paths, err
		}
		path := filepath.Join(dir, OutputName(l.Document.Personal.Name, string(f)))
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return paths, errors.Wrap(errors.ErrCodeInternal, err, "failed to write %s", path)
		}
		c.options.Logger.Info("wrote resume", "path", path, "pages", l.Result.PageCount)
		paths = append(paths, path)
	}
	return paths, nil
}

func (c *Converter) render(l *Layout, f Format, w io.Writer) error {
	r, err := c.renderer(f)
	if err != nil {
		return err
	}
	t := time.Now()
	if err := r.Render(w, l.Result, c.metadata(l.Document)); err != nil {
		return fmt.Errorf("render %s: %w", f, err)
	}
	c.options.Logger.Debug("rendered", "format", f, "duration", time.Since(t))
	return nil
}

func (c *Converter) renderer(f Format) (render.Renderer, error) {
	f, err := ParseFormat(string(f))
	if err != nil {
		return nil, err
	}
	switch f {
	case FormatPDF:
		r := pdfrender.NewRenderer()
		r.Compress = c.options.Compress
		return r, nil
	case FormatHTML:
		return htmlrender.NewRenderer(), nil
	case FormatJSON:
		return jsonrender.NewRenderer(), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported output format %q", f)
}

func (c *Converter) metadata(doc *model.Document) render.Metadata {
	name := doc.Personal.Name
	meta := render.Metadata{
		Title:   c.options.Title,
		Author:  c.options.Author,
		Subject: c.options.Subject,
		Creator: Creator,
	}
	if meta.Title == "" {
		meta.Title = name + " - Resume"
	}
	if meta.Author == "" {
		meta.Author = name
	}
	return meta
}

// OutputName derives a file name from the person's name: whitespace and
// path separators become underscores, e.g. "Ada_Lovelace_resume.pdf".
func OutputName(name, ext string) string {
	base := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '/', '\\':
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
	if base == "" {
		base = "resume"
	}
	return base + "_resume." + ext
}
