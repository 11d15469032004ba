// Package html renders flowed results as a self-contained HTML preview.
// Every page is a fixed-size box and every placed line an absolutely
// positioned span, so the preview matches the PDF geometry.
package html

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/gompdf/gomresume/internal/pagination"
	"github.com/gompdf/gomresume/internal/render"
	"github.com/gompdf/gomresume/internal/text"
	"github.com/gompdf/gomresume/pkg/errors"
)

const stylesheet = `body{margin:0;background:#e5e5e5}
.page{position:relative;margin:16pt auto;background:#fff;box-shadow:0 1pt 4pt rgba(0,0,0,.3);overflow:hidden}
.line{position:absolute;white-space:pre;color:#000}
.rule{position:absolute;border-top-style:solid;border-top-color:#000;height:0}`

var families = map[string]string{
	"Helvetica": "Helvetica, Arial, sans-serif",
	"Times":     "'Times New Roman', Times, serif",
	"Courier":   "'Courier New', Courier, monospace",
}

// Renderer writes HTML previews.
type Renderer struct{}

// NewRenderer creates a new HTML renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Extension implements render.Renderer.
func (r *Renderer) Extension() string { return "html" }

// Render writes res as one HTML document.
func (r *Renderer) Render(w io.Writer, res *pagination.Result, meta render.Metadata) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html, "lang", "en")
	doc.AppendChild(root)

	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, "charset", "utf-8"))
	if meta.Creator != "" {
		head.AppendChild(element(atom.Meta, "name", "generator", "content", meta.Creator))
	}
	title := element(atom.Title)
	title.AppendChild(textNode(meta.Title))
	head.AppendChild(title)
	style := element(atom.Style)
	style.AppendChild(textNode(stylesheet))
	head.AppendChild(style)
	root.AppendChild(head)

	body := element(atom.Body)
	root.AppendChild(body)

	lines, rules := render.Pages(res)
	for i := range lines {
		page := element(atom.Div,
			"class", "page",
			"data-page", strconv.Itoa(i+1),
			"style", fmt.Sprintf("width:%s;height:%s", pt(res.PageSize.Width), pt(res.PageSize.Height)),
		)
		for _, l := range lines[i] {
			span, err := lineNode(l)
			if err != nil {
				return err
			}
			page.AppendChild(span)
		}
		for _, rl := range rules[i] {
			page.AppendChild(element(atom.Div,
				"class", "rule",
				"style", fmt.Sprintf("left:%s;top:%s;width:%s;border-top-width:%s",
					pt(rl.X1), pt(rl.Y-rl.Width/2), pt(rl.X2-rl.X1), pt(rl.Width)),
			))
		}
		body.AppendChild(page)
	}

	if err := html.Render(w, doc); err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "failed to write HTML")
	}
	return nil
}

func lineNode(l pagination.PlacedLine) (*html.Node, error) {
	face, err := text.Lookup(l.Font)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "cannot draw %q", l.Text)
	}
	css := []string{
		"left:" + pt(l.X),
		"top:" + pt(l.Y),
		"font-family:" + families[face.Family],
		"font-size:" + pt(l.Size),
		"line-height:" + pt(face.LineHeight(l.Size)),
	}
	switch face.Style {
	case "B":
		css = append(css, "font-weight:bold")
	case "I":
		css = append(css, "font-style:italic")
	}
	span := element(atom.Span, "class", "line", "style", strings.Join(css, ";"))
	span.AppendChild(textNode(l.Text))
	return span, nil
}

// element builds an element node from alternating attribute keys and values.
func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func pt(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) + "pt"
}
