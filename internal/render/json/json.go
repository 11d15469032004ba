// Package json renders flowed results as a JSON document, mainly for
// inspection and golden testing of the layout.
package json

import (
	"encoding/json"
	"io"

	"github.com/gompdf/gomresume/internal/pagination"
	"github.com/gompdf/gomresume/internal/render"
	"github.com/gompdf/gomresume/pkg/errors"
)

// Renderer writes JSON layout dumps.
type Renderer struct {
	// Indent pretty-prints the output when non-empty.
	Indent string
}

// NewRenderer creates a new JSON renderer
func NewRenderer() *Renderer {
	return &Renderer{Indent: "  "}
}

// Extension implements render.Renderer.
func (r *Renderer) Extension() string { return "json" }

// Output is the JSON document written by Render. Page numbers are 1-based.
type Output struct {
	Title     string     `json:"title,omitempty"`
	PageSize  jsonSize   `json:"page_size"`
	Margins   jsonMargin `json:"margins"`
	PageCount int        `json:"page_count"`
	Pages     []jsonPage `json:"pages"`
}

type jsonSize struct {
	Name   string  `json:"name,omitempty"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type jsonMargin struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

type jsonPage struct {
	Number int        `json:"number"`
	Lines  []jsonLine `json:"lines"`
	Rules  []jsonRule `json:"rules,omitempty"`
}

type jsonLine struct {
	Text string  `json:"text"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Font string  `json:"font"`
	Size float64 `json:"size"`
}

type jsonRule struct {
	X1    float64 `json:"x1"`
	X2    float64 `json:"x2"`
	Y     float64 `json:"y"`
	Width float64 `json:"width"`
}

// Render writes res as JSON.
func (r *Renderer) Render(w io.Writer, res *pagination.Result, meta render.Metadata) error {
	out := Output{
		Title:     meta.Title,
		PageSize:  jsonSize{Name: res.PageSize.Name, Width: res.PageSize.Width, Height: res.PageSize.Height},
		Margins:   jsonMargin(res.Margins),
		PageCount: res.PageCount,
		Pages:     make([]jsonPage, res.PageCount),
	}

	lines, rules := render.Pages(res)
	for i := range out.Pages {
		p := jsonPage{Number: i + 1, Lines: make([]jsonLine, 0, len(lines[i]))}
		for _, l := range lines[i] {
			p.Lines = append(p.Lines, jsonLine{Text: l.Text, X: l.X, Y: l.Y, Font: l.Font, Size: l.Size})
		}
		for _, rl := range rules[i] {
			p.Rules = append(p.Rules, jsonRule{X1: rl.X1, X2: rl.X2, Y: rl.Y, Width: rl.Width})
		}
		out.Pages[i] = p
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", r.Indent)
	if err := enc.Encode(out); err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "failed to write JSON")
	}
	return nil
}
