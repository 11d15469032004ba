package pagination

import (
	"github.com/gompdf/gomresume/internal/config"
	"github.com/gompdf/gomresume/internal/layout"
	"github.com/gompdf/gomresume/internal/text"
)

// Fixed geometry in points.
const (
	// HeadingGap follows a level-1 heading; its rule is drawn inside it.
	HeadingGap = 4.0
	// RuleOffset is the distance from the heading's last line box to its rule.
	RuleOffset = 1.0
	// RuleWidth is the stroke width of heading rules.
	RuleWidth = 1.0
	// AsideGap is the minimum space between a heading and its aside.
	AsideGap = 6.0

	epsilon = 1e-9
)

// PlacedLine is one line of text bound to a page position. Y is the top of
// the line box; Page is zero-based.
type PlacedLine struct {
	Text string
	X    float64
	Y    float64
	Font string
	Size float64
	Page int
}

// Rule is a horizontal line from X1 to X2 at Y.
type Rule struct {
	X1    float64
	X2    float64
	Y     float64
	Width float64
	Page  int
}

// Result is the output of one flow.
type Result struct {
	Lines     []PlacedLine
	Rules     []Rule
	PageCount int
	PageSize  config.PageSize
	Margins   config.Margins
}

// Page returns the lines placed on page i in reading order.
func (r *Result) Page(i int) []PlacedLine {
	var out []PlacedLine
	for _, l := range r.Lines {
		if l.Page == i {
			out = append(out, l)
		}
	}
	return out
}

// cursor is the write position: a page index and a y offset from the top
// edge of the page.
type cursor struct {
	page int
	y    float64
}

// Paginator handles breaking content into pages. One Paginator serves one
// flow.
type Paginator struct {
	opts   Options
	cur    cursor
	top    float64
	bottom float64
	left   float64
	width  float64
	// filled is set once anything is drawn on the current page.
	filled bool
	res    *Result
}

func newPaginator(opts Options) *Paginator {
	m := opts.Margins
	p := &Paginator{
		opts:   opts,
		top:    m.Top,
		bottom: opts.PageSize.Height - m.Bottom,
		left:   m.Left,
		width:  opts.PageSize.Width - m.Left - m.Right,
		res:    &Result{PageSize: opts.PageSize, Margins: m},
	}
	p.cur = cursor{page: 0, y: p.top}
	return p
}

func (p *Paginator) result() *Result {
	p.res.PageCount = p.cur.page + 1
	return p.res
}

func (p *Paginator) fits(h float64) bool {
	return p.cur.y+h <= p.bottom+epsilon
}

func (p *Paginator) newPage() {
	p.cur = cursor{page: p.cur.page + 1, y: p.top}
	p.filled = false
}

// ensure breaks the page when h does not fit below the cursor. An empty page
// takes anything, so an oversized line lands at the top of a fresh page.
func (p *Paginator) ensure(h float64) {
	if !p.fits(h) && p.filled {
		p.newPage()
	}
}

// advance moves the cursor down, never past the bottom margin.
func (p *Paginator) advance(h float64) {
	p.cur.y += h
	if p.cur.y > p.bottom {
		p.cur.y = p.bottom
	}
}

// space reserves vertical whitespace. It is dropped at the top of a page and
// a gap that does not fit ends the page.
func (p *Paginator) space(h float64) {
	if !p.filled || h <= 0 {
		return
	}
	if !p.fits(h) {
		p.newPage()
		return
	}
	p.advance(h)
}

func (p *Paginator) emit(str string, x, y float64, face text.Face, size float64) {
	p.res.Lines = append(p.res.Lines, PlacedLine{
		Text: str,
		X:    x,
		Y:    y,
		Font: face.Name,
		Size: size,
		Page: p.cur.page,
	})
	p.filled = true
}

func (p *Paginator) section(s layout.Section, first, last bool) {
	if !first {
		p.space(p.opts.SectionSpacing)
	}
	for i, b := range s.Blocks {
		p.block(b, s.Blocks[i+1:])
	}
	if !last {
		p.space(p.opts.ItemSpacing)
	}
}

func (p *Paginator) block(b layout.Block, rest []layout.Block) {
	switch v := b.(type) {
	case layout.Heading:
		p.heading(v, p.lead(rest))
	case layout.Paragraph:
		p.paragraph(v)
	case layout.BulletList:
		p.bullets(v)
	case layout.Spacer:
		p.space(v.Height)
	}
}
