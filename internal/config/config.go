// Package config builds the immutable layout configuration shared by the
// formatters and the page flow engine.
//
// A Config is constructed once from built-in defaults overlaid with any
// number of Overrides (the document's config sub-document, then an optional
// overlay file) and is passed by value from then on.
package config

import (
	"fmt"
	"strings"

	"github.com/gompdf/gomresume/internal/text"
	"github.com/gompdf/gomresume/pkg/errors"
)

// PointsPerInch converts the inch values used in documents to PDF points.
const PointsPerInch = 72.0

// SectionKind tags one resume section.
type SectionKind string

// Section kinds. Header and Footer are synthetic: they are always placed
// first and last and never appear in a section order.
const (
	Header         SectionKind = "header"
	Summary        SectionKind = "summary"
	Experience     SectionKind = "experience"
	Education      SectionKind = "education"
	Skills         SectionKind = "skills"
	Projects       SectionKind = "projects"
	Certifications SectionKind = "certifications"
	Awards         SectionKind = "awards"
	Publications   SectionKind = "publications"
	Languages      SectionKind = "languages"
	Volunteer      SectionKind = "volunteer"
	Footer         SectionKind = "footer"
)

// DefaultSectionOrder is the body section order used when none is configured.
var DefaultSectionOrder = []SectionKind{
	Summary,
	Experience,
	Education,
	Skills,
	Projects,
	Certifications,
	Awards,
	Publications,
	Languages,
	Volunteer,
}

// Default values, lengths in inches.
const (
	DefaultMargin            = 0.6
	DefaultSectionSpacing    = 0.08
	DefaultItemSpacing       = 0.06
	DefaultNameSize          = 20.0
	DefaultSectionHeaderSize = 12.0
	DefaultTitleSize         = 10.0
	DefaultBodySize          = 9.0
	DefaultPageSize          = "letter"
	DefaultFooterText        = "Generated by gomresume"
)

// PageSize represents standard page sizes
type PageSize struct {
	Width  float64
	Height float64
	Name   string
}

// Standard page sizes in points (1/72 inch)
var (
	PageSizeLetter = PageSize{Width: 612.00, Height: 792.00, Name: "letter"}
	PageSizeA4     = PageSize{Width: 595.28, Height: 841.89, Name: "a4"}
	PageSizeLegal  = PageSize{Width: 612.00, Height: 1008.00, Name: "legal"}
)

var pageSizes = map[string]PageSize{
	PageSizeLetter.Name: PageSizeLetter,
	PageSizeA4.Name:     PageSizeA4,
	PageSizeLegal.Name:  PageSizeLegal,
}

// Margins represents page margins in points
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// Fonts is the regular/bold/italic triple every style is drawn from.
type Fonts struct {
	Regular text.Face
	Bold    text.Face
	Italic  text.Face
}

// Sizes holds the four font size tiers in points.
type Sizes struct {
	Name          float64
	SectionHeader float64
	Title         float64
	Body          float64
}

// Config is the validated layout configuration. Lengths are in points.
type Config struct {
	PageSize       PageSize
	Margins        Margins
	SectionSpacing float64
	ItemSpacing    float64
	Fonts          Fonts
	Sizes          Sizes
	Footer         bool
	FooterText     string

	sectionOrder []SectionKind
	unknown      []string
}

// SectionOrder returns the deduplicated body section order.
func (c Config) SectionOrder() []SectionKind {
	return append([]SectionKind(nil), c.sectionOrder...)
}

// UnknownSections returns section_order entries that named no known section.
func (c Config) UnknownSections() []string {
	return append([]string(nil), c.unknown...)
}

// ContentWidth is the page width between the left and right margins.
func (c Config) ContentWidth() float64 {
	return c.PageSize.Width - c.Margins.Left - c.Margins.Right
}

// ContentTop is the y offset of the first line on every page.
func (c Config) ContentTop() float64 {
	return c.Margins.Top
}

// ContentBottom is the y offset no line box may extend past.
func (c Config) ContentBottom() float64 {
	return c.PageSize.Height - c.Margins.Bottom
}

// Default returns the configuration with no overrides applied.
func Default() Config {
	cfg, err := Build()
	if err != nil {
		panic(fmt.Sprintf("config: invalid defaults: %v", err))
	}
	return cfg
}

// settings is the mutable, unresolved form Build merges overlays into.
type settings struct {
	margins        [4]float64 // top, right, bottom, left (inches)
	sectionSpacing float64
	itemSpacing    float64
	pageSize       string
	fontRegular    string
	fontBold       string
	fontItalic     string
	nameSize       float64
	headerSize     float64
	titleSize      float64
	bodySize       float64
	sectionOrder   []string
	footer         bool
	footerText     string
}

func defaults() settings {
	order := make([]string, len(DefaultSectionOrder))
	for i, k := range DefaultSectionOrder {
		order[i] = string(k)
	}
	return settings{
		margins:        [4]float64{DefaultMargin, DefaultMargin, DefaultMargin, DefaultMargin},
		sectionSpacing: DefaultSectionSpacing,
		itemSpacing:    DefaultItemSpacing,
		pageSize:       DefaultPageSize,
		fontRegular:    text.Helvetica,
		fontBold:       text.HelveticaBold,
		fontItalic:     text.HelveticaOblique,
		nameSize:       DefaultNameSize,
		headerSize:     DefaultSectionHeaderSize,
		titleSize:      DefaultTitleSize,
		bodySize:       DefaultBodySize,
		sectionOrder:   order,
		footerText:     DefaultFooterText,
	}
}

// Build merges the overlays over the defaults, in order, and validates the
// result. Font identifiers are checked here so no unsupported font can reach
// the flow engine.
func Build(overlays ...Overrides) (Config, error) {
	s := defaults()
	for _, o := range overlays {
		o.apply(&s)
	}
	return s.resolve()
}

func (s settings) resolve() (Config, error) {
	var cfg Config

	ps, ok := pageSizes[strings.ToLower(strings.TrimSpace(s.pageSize))]
	if !ok {
		return cfg, errors.NewSchemaError("config.page_size", "unknown page size %q (must be one of: letter, a4, legal)", s.pageSize)
	}
	cfg.PageSize = ps

	sides := [4]string{"top", "right", "bottom", "left"}
	for i, m := range s.margins {
		if m < 0 {
			return cfg, errors.NewSchemaError("config.margins."+sides[i], "must not be negative")
		}
	}
	cfg.Margins = Margins{
		Top:    s.margins[0] * PointsPerInch,
		Right:  s.margins[1] * PointsPerInch,
		Bottom: s.margins[2] * PointsPerInch,
		Left:   s.margins[3] * PointsPerInch,
	}
	if cfg.ContentWidth() <= 0 || cfg.ContentBottom() <= cfg.ContentTop() {
		return cfg, errors.New(errors.ErrCodeInvalidConfig,
			"margins leave no content area on a %.0fx%.0fpt page", ps.Width, ps.Height)
	}

	if s.sectionSpacing < 0 {
		return cfg, errors.NewSchemaError("config.section_spacing", "must not be negative")
	}
	if s.itemSpacing < 0 {
		return cfg, errors.NewSchemaError("config.item_spacing", "must not be negative")
	}
	cfg.SectionSpacing = s.sectionSpacing * PointsPerInch
	cfg.ItemSpacing = s.itemSpacing * PointsPerInch

	var err error
	if cfg.Fonts.Regular, err = text.Lookup(s.fontRegular); err != nil {
		return cfg, err
	}
	if cfg.Fonts.Bold, err = text.Lookup(s.fontBold); err != nil {
		return cfg, err
	}
	if cfg.Fonts.Italic, err = text.Lookup(s.fontItalic); err != nil {
		return cfg, err
	}

	sizes := []struct {
		path string
		v    float64
	}{
		{"config.fonts.name_size", s.nameSize},
		{"config.fonts.section_header_size", s.headerSize},
		{"config.fonts.title_size", s.titleSize},
		{"config.fonts.body_size", s.bodySize},
	}
	for _, sz := range sizes {
		if sz.v <= 0 {
			return cfg, errors.NewSchemaError(sz.path, "must be positive, got %g", sz.v)
		}
	}
	cfg.Sizes = Sizes{Name: s.nameSize, SectionHeader: s.headerSize, Title: s.titleSize, Body: s.bodySize}

	cfg.sectionOrder, cfg.unknown = normalizeOrder(s.sectionOrder)
	cfg.Footer = s.footer
	cfg.FooterText = s.footerText
	return cfg, nil
}

// normalizeOrder keeps the first occurrence of every known body section and
// collects everything else.
func normalizeOrder(tags []string) ([]SectionKind, []string) {
	known := make(map[SectionKind]bool, len(DefaultSectionOrder))
	for _, k := range DefaultSectionOrder {
		known[k] = true
	}

	seen := make(map[SectionKind]bool, len(tags))
	order := make([]SectionKind, 0, len(tags))
	var unknown []string
	for _, tag := range tags {
		k := SectionKind(strings.ToLower(strings.TrimSpace(tag)))
		switch {
		case !known[k]:
			unknown = append(unknown, tag)
		case seen[k]:
		default:
			seen[k] = true
			order = append(order, k)
		}
	}
	return order, unknown
}
