// Package gomresume renders YAML resume documents into paginated PDF, HTML
// and JSON files using the built-in PDF core fonts.
package gomresume

import (
	"github.com/gompdf/gomresume/pkg/api"
)

type Converter = api.Converter
type Options = api.Options
type Option = api.Option
type Format = api.Format
type Overrides = api.Overrides
type MarginOverrides = api.MarginOverrides
type FontOverrides = api.FontOverrides
type Layout = api.Layout
type Result = api.Result
type PlacedLine = api.PlacedLine

func New(opts ...Option) *Converter             { return api.New(opts...) }
func NewWithOptions(options Options) *Converter { return api.NewWithOptions(options) }
func DefaultOptions() Options                   { return api.DefaultOptions() }

var (
	ParseFormat        = api.ParseFormat
	OutputName         = api.OutputName
	WithPageSize       = api.WithPageSize
	WithPageSizeA4     = api.WithPageSizeA4
	WithPageSizeLetter = api.WithPageSizeLetter
	WithPageSizeLegal  = api.WithPageSizeLegal
	WithOutputDir      = api.WithOutputDir
	WithFormats        = api.WithFormats
	WithOverrides      = api.WithOverrides
	WithConfigFile     = api.WithConfigFile
	WithResourcePath   = api.WithResourcePath
	WithHTTPClient     = api.WithHTTPClient
	WithCompression    = api.WithCompression
	WithTitle          = api.WithTitle
	WithAuthor         = api.WithAuthor
	WithSubject        = api.WithSubject
	WithLogger         = api.WithLogger
)

const (
	FormatPDF  = api.FormatPDF
	FormatHTML = api.FormatHTML
	FormatJSON = api.FormatJSON

	PageSizeLetter = api.PageSizeLetter
	PageSizeA4     = api.PageSizeA4
	PageSizeLegal  = api.PageSizeLegal
)
