package api

import (
	"io"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/gompdf/gomresume/internal/config"
	"github.com/gompdf/gomresume/pkg/errors"
)

// Overrides is a partial layout configuration. See WithOverrides.
type Overrides = config.Overrides

// MarginOverrides sets individual margins in inches.
type MarginOverrides = config.MarginOverrides

// FontOverrides sets fonts and size tiers.
type FontOverrides = config.FontOverrides

// Format is an output format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatHTML Format = "html"
	FormatJSON Format = "json"
)

// Formats lists the supported output formats.
var Formats = []Format{FormatPDF, FormatHTML, FormatJSON}

// ParseFormat validates a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported output format %q (must be one of: pdf, html, json)", s)
}

// Page size names accepted by WithPageSize.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// DefaultOutputDir is where ConvertFile writes when no directory is set.
const DefaultOutputDir = "output"

// Options represents configuration options for the resume converter
type Options struct {
	// PageSize, when set, wins over the document's page_size.
	PageSize string

	// OutputDir receives the files written by ConvertFile.
	OutputDir string
	// Formats written by ConvertFile, in order.
	Formats []Format

	// Overrides are applied after the document's config sub-document and
	// the ConfigFile overlay.
	Overrides []Overrides
	// ConfigFile is a TOML layout overlay, as a path or http(s) URL.
	ConfigFile string

	// Resource paths searched when the input is not found as given
	ResourcePaths []string
	// HTTPClient fetches remote inputs. Nil uses a client with a timeout.
	HTTPClient *http.Client

	// Compress PDF streams
	Compress bool

	// Document metadata; empty values are derived from personal.name
	Title   string
	Author  string
	Subject string

	// Logger receives stage progress. Nil discards.
	Logger *log.Logger
}

// Option is a function that modifies Options
type Option func(*Options)

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		OutputDir:     DefaultOutputDir,
		Formats:       []Format{FormatPDF},
		ResourcePaths: []string{},
		Compress:      true,
		Subject:       "Resume",
		Logger:        log.NewWithOptions(io.Discard, log.Options{}),
	}
}

// WithPageSize sets the page size by name: letter, a4 or legal.
func WithPageSize(name string) Option {
	return func(o *Options) {
		o.PageSize = name
	}
}

// WithPageSizeA4 sets the page size to A4
func WithPageSizeA4() Option {
	return WithPageSize(PageSizeA4)
}

// WithPageSizeLetter sets the page size to US Letter
func WithPageSizeLetter() Option {
	return WithPageSize(PageSizeLetter)
}

// WithPageSizeLegal sets the page size to US Legal
func WithPageSizeLegal() Option {
	return WithPageSize(PageSizeLegal)
}

// WithOutputDir sets the directory ConvertFile writes to.
func WithOutputDir(dir string) Option {
	return func(o *Options) {
		o.OutputDir = dir
	}
}

// WithFormats sets the formats ConvertFile writes.
func WithFormats(formats ...Format) Option {
	return func(o *Options) {
		o.Formats = append([]Format(nil), formats...)
	}
}

// WithOverrides appends layout overrides.
func WithOverrides(overrides ...Overrides) Option {
	return func(o *Options) {
		o.Overrides = append(o.Overrides, overrides...)
	}
}

// WithConfigFile sets a TOML layout overlay.
func WithConfigFile(path string) Option {
	return func(o *Options) {
		o.ConfigFile = path
	}
}

// WithResourcePath adds a directory to search for inputs
func WithResourcePath(path string) Option {
	return func(o *Options) {
		o.ResourcePaths = append(o.ResourcePaths, path)
	}
}

// WithHTTPClient sets the client used for remote inputs.
func WithHTTPClient(c *http.Client) Option {
	return func(o *Options) {
		o.HTTPClient = c
	}
}

// WithCompression toggles PDF stream compression.
func WithCompression(compress bool) Option {
	return func(o *Options) {
		o.Compress = compress
	}
}

// WithTitle sets the document title
func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = title
	}
}

// WithAuthor sets the document author
func WithAuthor(author string) Option {
	return func(o *Options) {
		o.Author = author
	}
}

// WithSubject sets the document subject
func WithSubject(subject string) Option {
	return func(o *Options) {
		o.Subject = subject
	}
}

// WithLogger sets the logger for stage progress.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
