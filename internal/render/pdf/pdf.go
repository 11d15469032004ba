// Package pdf renders flowed results with the go-pdf/fpdf core fonts.
package pdf

import (
	"io"
	"time"

	"codeberg.org/go-pdf/fpdf"

	"github.com/gompdf/gomresume/internal/pagination"
	"github.com/gompdf/gomresume/internal/render"
	"github.com/gompdf/gomresume/internal/text"
	"github.com/gompdf/gomresume/pkg/errors"
)

// ascent approximates the baseline position within a glyph box, in em.
const ascent = 0.8

// Renderer handles rendering to PDF
type Renderer struct {
	// Compress enables stream compression.
	Compress bool
	// CreationDate is stamped into the document info when non-zero.
	CreationDate time.Time
}

// NewRenderer creates a new PDF renderer
func NewRenderer() *Renderer {
	return &Renderer{Compress: true}
}

// Extension implements render.Renderer.
func (r *Renderer) Extension() string { return "pdf" }

// Render writes res as a PDF document with one page per result page.
func (r *Renderer) Render(w io.Writer, res *pagination.Result, meta render.Metadata) error {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: res.PageSize.Width, Ht: res.PageSize.Height},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.SetCompression(r.Compress)
	pdf.SetTitle(meta.Title, true)
	pdf.SetAuthor(meta.Author, true)
	pdf.SetSubject(meta.Subject, true)
	pdf.SetCreator(meta.Creator, true)
	if !r.CreationDate.IsZero() {
		pdf.SetCreationDate(r.CreationDate)
		pdf.SetModificationDate(r.CreationDate)
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.SetDrawColor(0, 0, 0)

	lines, rules := render.Pages(res)
	for i := range lines {
		pdf.AddPage()
		for _, l := range lines[i] {
			if err := r.renderLine(pdf, l); err != nil {
				return err
			}
		}
		for _, rule := range rules[i] {
			pdf.SetLineWidth(rule.Width)
			pdf.Line(rule.X1, rule.Y, rule.X2, rule.Y)
		}
	}

	if err := pdf.Output(w); err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "failed to write PDF")
	}
	return nil
}

func (r *Renderer) renderLine(pdf *fpdf.Fpdf, l pagination.PlacedLine) error {
	face, err := text.Lookup(l.Font)
	if err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "cannot draw %q", l.Text)
	}
	pdf.SetFont(face.Family, face.Style, l.Size)
	// Y is the top of the line box; fpdf draws text on its baseline.
	lh := face.LineHeight(l.Size)
	baseline := l.Y + (lh-l.Size)/2 + ascent*l.Size
	pdf.Text(l.X, baseline, text.Encode(l.Text))
	return nil
}
