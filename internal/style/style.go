// Package style derives the named text styles of a resume from the layout
// configuration.
package style

import (
	"github.com/gompdf/gomresume/internal/config"
	"github.com/gompdf/gomresume/internal/layout"
	"github.com/gompdf/gomresume/internal/text"
)

// FooterSize is the fixed size of the attribution line.
const FooterSize = 7

// Style is a font, a size and an alignment.
type Style struct {
	Font  text.Face
	Size  float64
	Align layout.Align
}

// Run returns s applied to str.
func (s Style) Run(str string) *layout.Run {
	return &layout.Run{Text: str, Font: s.Font, Size: s.Size}
}

// Paragraph returns s applied to str as a paragraph block.
func (s Style) Paragraph(str string) layout.Paragraph {
	return layout.Paragraph{Text: str, Font: s.Font, Size: s.Size, Align: s.Align}
}

// Sheet is the full set of styles used by the section formatters.
type Sheet struct {
	Name          Style
	Contact       Style
	SectionHeader Style
	ItemTitle     Style
	ItemSubtitle  Style
	Date          Style
	Body          Style
	Footer        Style
}

// NewSheet builds the style sheet for cfg.
func NewSheet(cfg config.Config) Sheet {
	f, sz := cfg.Fonts, cfg.Sizes
	return Sheet{
		Name:          Style{Font: f.Bold, Size: sz.Name, Align: layout.AlignCenter},
		Contact:       Style{Font: f.Regular, Size: sz.Body, Align: layout.AlignCenter},
		SectionHeader: Style{Font: f.Bold, Size: sz.SectionHeader},
		ItemTitle:     Style{Font: f.Bold, Size: sz.Title},
		ItemSubtitle:  Style{Font: f.Italic, Size: sz.Body},
		Date:          Style{Font: f.Regular, Size: sz.Body, Align: layout.AlignRight},
		Body:          Style{Font: f.Regular, Size: sz.Body},
		Footer:        Style{Font: f.Regular, Size: FooterSize, Align: layout.AlignCenter},
	}
}
