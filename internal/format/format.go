// Package format turns model records into layout blocks, one formatting
// function per section kind, dispatched through a single table.
package format

import (
	"strings"

	"github.com/gompdf/gomresume/internal/config"
	"github.com/gompdf/gomresume/internal/layout"
	"github.com/gompdf/gomresume/internal/model"
	"github.com/gompdf/gomresume/internal/style"
)

// Fixed gaps in points.
const (
	DetailGap    = 0.03 * config.PointsPerInch // before a description or highlight list
	EntryGap     = 0.04 * config.PointsPerInch // between certifications, awards, publications
	FooterGap    = 0.2 * config.PointsPerInch  // above the footer line
	BulletIndent = 10.0
	Separator    = " • "
)

// Titles are the headings printed above each body section.
var Titles = map[config.SectionKind]string{
	config.Summary:        "PROFESSIONAL SUMMARY",
	config.Experience:     "PROFESSIONAL EXPERIENCE",
	config.Education:      "EDUCATION",
	config.Skills:         "SKILLS",
	config.Projects:       "PROJECTS",
	config.Certifications: "CERTIFICATIONS",
	config.Awards:         "AWARDS & HONORS",
	config.Publications:   "PUBLICATIONS",
	config.Languages:      "LANGUAGES",
	config.Volunteer:      "VOLUNTEER EXPERIENCE",
}

type formatFunc func(*Formatter, *model.Document) []layout.Block

var formatters = map[config.SectionKind]formatFunc{
	config.Header:         (*Formatter).header,
	config.Summary:        (*Formatter).summary,
	config.Experience:     (*Formatter).experience,
	config.Education:      (*Formatter).education,
	config.Skills:         (*Formatter).skills,
	config.Projects:       (*Formatter).projects,
	config.Certifications: (*Formatter).certifications,
	config.Awards:         (*Formatter).awards,
	config.Publications:   (*Formatter).publications,
	config.Languages:      (*Formatter).languages,
	config.Volunteer:      (*Formatter).volunteer,
	config.Footer:         (*Formatter).footer,
}

// Formatter produces sections for one configuration. It holds no per-document
// state and may be shared.
type Formatter struct {
	cfg   config.Config
	sheet style.Sheet
}

// New returns a Formatter for cfg.
func New(cfg config.Config) *Formatter {
	return &Formatter{cfg: cfg, sheet: style.NewSheet(cfg)}
}

// Format returns the header, the configured body sections and the footer,
// in that order. Sections that produce nothing are left out.
func (f *Formatter) Format(doc *model.Document) []layout.Section {
	kinds := make([]config.SectionKind, 0, len(formatters))
	kinds = append(kinds, config.Header)
	kinds = append(kinds, f.cfg.SectionOrder()...)
	kinds = append(kinds, config.Footer)

	out := make([]layout.Section, 0, len(kinds))
	for _, k := range kinds {
		if s := f.Section(k, doc); !s.Empty() {
			out = append(out, s)
		}
	}
	return out
}

// Section formats one kind. Body sections get a ruled title heading when,
// and only when, they have content.
func (f *Formatter) Section(kind config.SectionKind, doc *model.Document) layout.Section {
	s := layout.Section{Kind: kind}
	fn, ok := formatters[kind]
	if !ok || doc == nil {
		return s
	}
	body := fn(f, doc)
	if len(body) == 0 {
		return s
	}
	if title, ok := Titles[kind]; ok {
		h := f.sheet.SectionHeader
		s.Blocks = append(s.Blocks, layout.Heading{Text: title, Font: h.Font, Size: h.Size, Level: 1, Rule: true})
	}
	s.Blocks = append(s.Blocks, body...)
	return s
}

// DateRange renders "start – end". A set present flag, or an end value of
// "present" in any case, renders the end as "Present". No start, no range.
func DateRange(d model.DateRange) string {
	switch {
	case d.Start == "":
		return ""
	case d.Present || strings.EqualFold(d.End, "present"):
		return d.Start + " – Present"
	case d.End != "":
		return d.Start + " – " + d.End
	default:
		return d.Start
	}
}

// joinNonEmpty joins the non-empty parts with sep.
func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// nonBlank drops empty and whitespace-only items.
func nonBlank(items []string) []string {
	var out []string
	for _, it := range items {
		if strings.TrimSpace(it) != "" {
			out = append(out, it)
		}
	}
	return out
}

// blocks accumulates the output of one formatter.
type blocks []layout.Block

func (b *blocks) add(bl ...layout.Block) { *b = append(*b, bl...) }

func (b *blocks) gap(h float64, when bool) {
	if when && h > 0 {
		b.add(layout.Spacer{Height: h})
	}
}

func (b *blocks) para(s style.Style, str string) {
	if str != "" {
		b.add(s.Paragraph(str))
	}
}

// title adds an item heading with an optional right-aligned aside.
func (f *Formatter) title(b *blocks, str, aside string) {
	if str == "" {
		return
	}
	t := f.sheet.ItemTitle
	h := layout.Heading{Text: str, Font: t.Font, Size: t.Size, Level: 2}
	if aside != "" {
		h.Aside = f.sheet.Date.Run(aside)
	}
	b.add(h)
}

func (f *Formatter) bullets(b *blocks, items []string, lead bool) {
	items = nonBlank(items)
	if len(items) == 0 {
		return
	}
	b.gap(DetailGap, lead)
	body := f.sheet.Body
	b.add(layout.BulletList{Items: items, Font: body.Font, Size: body.Size, Indent: BulletIndent, Glyph: layout.DefaultGlyph})
}

func (f *Formatter) description(b *blocks, str string) {
	if str == "" {
		return
	}
	b.gap(DetailGap, true)
	b.para(f.sheet.Body, str)
}
