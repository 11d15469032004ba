// Package text measures and wraps strings set in the built-in PDF core fonts.
//
// Widths come from the core font metrics shipped with go-pdf/fpdf, read once
// into a static per-font table of 256 cp1252 code points. After that, every
// measurement is a pure table lookup and safe to call from any goroutine.
package text

import (
	"sync"

	"codeberg.org/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"

	"github.com/gompdf/gomresume/pkg/errors"
)

// Supported font identifiers (PostScript names of the standard families).
const (
	Helvetica        = "Helvetica"
	HelveticaBold    = "Helvetica-Bold"
	HelveticaOblique = "Helvetica-Oblique"
	TimesRoman       = "Times-Roman"
	TimesBold        = "Times-Bold"
	TimesItalic      = "Times-Italic"
	Courier          = "Courier"
	CourierBold      = "Courier-Bold"
	CourierOblique   = "Courier-Oblique"
)

// LeadingFactor is the ratio of line height to font size for every face.
const LeadingFactor = 1.2

// replacement is drawn and measured in place of runes cp1252 cannot encode.
const replacement = '?'

// Face is a resolved core font. The zero value is not usable; obtain one
// through Lookup.
type Face struct {
	Name   string // PostScript identifier, e.g. "Helvetica-Bold"
	Family string // fpdf family: Helvetica, Times or Courier
	Style  string // fpdf style: "", "B" or "I"
}

var faces = []Face{
	{Name: Helvetica, Family: "Helvetica", Style: ""},
	{Name: HelveticaBold, Family: "Helvetica", Style: "B"},
	{Name: HelveticaOblique, Family: "Helvetica", Style: "I"},
	{Name: TimesRoman, Family: "Times", Style: ""},
	{Name: TimesBold, Family: "Times", Style: "B"},
	{Name: TimesItalic, Family: "Times", Style: "I"},
	{Name: Courier, Family: "Courier", Style: ""},
	{Name: CourierBold, Family: "Courier", Style: "B"},
	{Name: CourierOblique, Family: "Courier", Style: "I"},
}

// Singleton width tables, in 1/1000 em per cp1252 byte.
var (
	tablesOnce sync.Once
	tables     map[string]*[256]float64
)

func loadTables() {
	pdf := fpdf.New("P", "pt", "", "")
	tables = make(map[string]*[256]float64, len(faces))
	for _, f := range faces {
		// At 1000pt with unit "pt" GetStringWidth returns the raw glyph width.
		pdf.SetFont(f.Family, f.Style, 1000)
		var t [256]float64
		for b := 1; b < 256; b++ {
			t[b] = pdf.GetStringWidth(string([]byte{byte(b)}))
		}
		tables[f.Name] = &t
	}
}

// Fonts returns the supported font identifiers in a stable order.
func Fonts() []string {
	out := make([]string, len(faces))
	for i, f := range faces {
		out[i] = f.Name
	}
	return out
}

// Lookup resolves a font identifier. It returns an *errors.UnsupportedFontError
// listing the valid identifiers when name is not one of them.
func Lookup(name string) (Face, error) {
	for _, f := range faces {
		if f.Name == name {
			return f, nil
		}
	}
	return Face{}, &errors.UnsupportedFontError{Font: name, Valid: Fonts()}
}

// MustLookup is like Lookup but panics on unknown names. It is meant for
// package-level defaults built from the constants above.
func MustLookup(name string) Face {
	f, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return f
}

// Width returns the advance width of s in points when set at size.
func (f Face) Width(size float64, s string) float64 {
	if s == "" || size <= 0 {
		return 0
	}
	tablesOnce.Do(loadTables)
	t, ok := tables[f.Name]
	if !ok {
		return 0
	}
	enc := Encode(s)
	var w float64
	for i := 0; i < len(enc); i++ {
		w += t[enc[i]]
	}
	return w * size / 1000
}

// LineHeight returns the height of one line box at size.
func (f Face) LineHeight(size float64) float64 {
	return size * LeadingFactor
}

// Encode converts s to the single-byte cp1252 encoding used by the core
// fonts. Input is NFC-normalised first so precomposed accents survive;
// anything outside cp1252 becomes '?'.
func Encode(s string) string {
	s = norm.NFC.String(s)
	buf := make([]byte, 0, len(s))
	for _, r := range s {
		b, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			b = replacement
		}
		buf = append(buf, b)
	}
	return string(buf)
}
