// Package layout defines the blocks section formatters produce and the page
// flow engine consumes. Blocks carry what to draw, never where.
package layout

import (
	"github.com/gompdf/gomresume/internal/config"
	"github.com/gompdf/gomresume/internal/text"
)

// Align is the horizontal alignment of a paragraph's lines.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// Block is one unit of formatted content. The set of variants is closed:
// Heading, Paragraph, BulletList and Spacer.
type Block interface {
	block()
}

// Run is a single unwrapped piece of text in one font.
type Run struct {
	Text string
	Font text.Face
	Size float64
}

// Heading is a section title (Level 1) or an item title (Level 2).
type Heading struct {
	Text  string
	Font  text.Face
	Size  float64
	Level int
	// Rule draws a horizontal line across the content width below the text.
	Rule bool
	// Aside is set flush right on the heading's first line, e.g. a date range.
	Aside *Run
}

// Paragraph is wrapped at the content width minus Indent.
type Paragraph struct {
	Text   string
	Font   text.Face
	Size   float64
	Indent float64
	Align  Align
}

// BulletList draws Glyph before the first line of every item.
type BulletList struct {
	Items  []string
	Font   text.Face
	Size   float64
	Indent float64
	Glyph  string
}

// Spacer is vertical whitespace. It is dropped at the top of a page.
type Spacer struct {
	Height float64
}

func (Heading) block()    {}
func (Paragraph) block()  {}
func (BulletList) block() {}
func (Spacer) block()     {}

// DefaultGlyph is the bullet marker used by formatters.
const DefaultGlyph = "•"

// Section is one resume section ready for flow.
type Section struct {
	Kind   config.SectionKind
	Blocks []Block
}

// Empty reports whether the section would draw nothing.
func (s Section) Empty() bool {
	for _, b := range s.Blocks {
		if _, ok := b.(Spacer); !ok {
			return false
		}
	}
	return true
}
