package pagination

import (
	"strings"

	"github.com/gompdf/gomresume/internal/layout"
	"github.com/gompdf/gomresume/internal/text"
)

// headingLayout is a heading wrapped for the current content width.
type headingLayout struct {
	lines  []text.Line
	lh     float64
	gap    float64
	asideW float64
}

func (p *Paginator) layoutHeading(h layout.Heading) headingLayout {
	hl := headingLayout{lh: h.Font.LineHeight(h.Size)}
	avail := p.width
	if h.Aside != nil && h.Aside.Text != "" {
		hl.asideW = h.Aside.Font.Width(h.Aside.Size, h.Aside.Text)
		avail -= hl.asideW + AsideGap
	}
	if h.Level == 1 {
		hl.gap = HeadingGap
	}
	hl.lines = text.Wrap(h.Text, h.Font, h.Size, avail)
	return hl
}

func (hl headingLayout) height() float64 {
	return float64(len(hl.lines))*hl.lh + hl.gap
}

// heading places h so that it shares a page with at least the first line of
// what follows (next is that height). When both do not fit, the whole
// heading moves to the next page.
func (p *Paginator) heading(h layout.Heading, next float64) {
	hl := p.layoutHeading(h)
	if len(hl.lines) == 0 {
		return
	}
	if !p.fits(hl.height()+next) && p.filled {
		p.newPage()
	}

	for i, ln := range hl.lines {
		p.ensure(hl.lh)
		y := p.cur.y
		p.emit(ln.Text, p.left, y, h.Font, h.Size)
		if i == 0 && hl.asideW > 0 {
			alh := h.Aside.Font.LineHeight(h.Aside.Size)
			ay := y
			if alh < hl.lh {
				ay += hl.lh - alh
			}
			ax := p.left + p.width - hl.asideW
			if ax < p.left {
				ax = p.left
			}
			p.emit(h.Aside.Text, ax, ay, h.Aside.Font, h.Aside.Size)
		}
		p.advance(hl.lh)
	}

	if h.Rule {
		p.rule(p.cur.y + RuleOffset)
	}
	p.advance(hl.gap)
}

func (p *Paginator) rule(y float64) {
	if y > p.bottom {
		y = p.bottom
	}
	p.res.Rules = append(p.res.Rules, Rule{
		X1:    p.left,
		X2:    p.left + p.width,
		Y:     y,
		Width: RuleWidth,
		Page:  p.cur.page,
	})
}

// paragraph places each wrapped line whole; a line that does not fit starts
// a new page.
func (p *Paginator) paragraph(para layout.Paragraph) {
	width := p.width - para.Indent
	lh := para.Font.LineHeight(para.Size)
	for _, ln := range text.Wrap(para.Text, para.Font, para.Size, width) {
		p.ensure(lh)
		x := p.left + para.Indent + offset(para.Align, width, ln.Width)
		p.emit(ln.Text, x, p.cur.y, para.Font, para.Size)
		p.advance(lh)
	}
}

// bullets places the marker with the first line of its item. Continuation
// lines may fall on the next page.
func (p *Paginator) bullets(l layout.BulletList) {
	var markerW float64
	if l.Glyph != "" {
		markerW = l.Font.Width(l.Size, l.Glyph+" ")
	}
	x := p.left + l.Indent
	width := p.width - l.Indent - markerW
	lh := l.Font.LineHeight(l.Size)

	for _, item := range l.Items {
		for i, ln := range text.Wrap(item, l.Font, l.Size, width) {
			p.ensure(lh)
			if i == 0 && l.Glyph != "" {
				p.emit(l.Glyph, x, p.cur.y, l.Font, l.Size)
			}
			p.emit(ln.Text, x+markerW, p.cur.y, l.Font, l.Size)
			p.advance(lh)
		}
	}
}

// offset returns the x shift of a line of width w inside width.
func offset(a layout.Align, width, w float64) float64 {
	free := width - w
	if free <= 0 {
		return 0
	}
	switch a {
	case layout.AlignCenter:
		return free / 2
	case layout.AlignRight:
		return free
	default:
		return 0
	}
}

// lead is the height from the cursor to the bottom of the first content line
// in rest. A heading that follows counts in full together with its own first
// line of content; any heading after that counts as a content line itself, so
// the look-ahead never reaches past the next item. Zero when nothing follows.
func (p *Paginator) lead(rest []layout.Block) float64 {
	return p.leadFrom(rest, true)
}

func (p *Paginator) leadFrom(rest []layout.Block, nested bool) float64 {
	var h float64
	for i, b := range rest {
		switch v := b.(type) {
		case layout.Spacer:
			h += v.Height
		case layout.Heading:
			hl := p.layoutHeading(v)
			if len(hl.lines) == 0 {
				continue
			}
			if !nested {
				return h + hl.lh
			}
			return h + hl.height() + p.leadFrom(rest[i+1:], false)
		case layout.Paragraph:
			if strings.TrimSpace(v.Text) != "" {
				return h + v.Font.LineHeight(v.Size)
			}
		case layout.BulletList:
			for _, item := range v.Items {
				if strings.TrimSpace(item) != "" {
					return h + v.Font.LineHeight(v.Size)
				}
			}
		}
	}
	return 0
}
