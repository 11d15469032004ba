package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gompdf/gomresume/internal/config"
	"github.com/gompdf/gomresume/internal/layout"
	"github.com/gompdf/gomresume/internal/text"
)

func TestNewSheetDefaults(t *testing.T) {
	s := NewSheet(config.Default())

	assert.Equal(t, text.HelveticaBold, s.Name.Font.Name)
	assert.Equal(t, 20.0, s.Name.Size)
	assert.Equal(t, layout.AlignCenter, s.Name.Align)
	assert.Equal(t, layout.AlignCenter, s.Contact.Align)
	assert.Equal(t, 12.0, s.SectionHeader.Size)
	assert.Equal(t, 10.0, s.ItemTitle.Size)
	assert.Equal(t, text.HelveticaOblique, s.ItemSubtitle.Font.Name)
	assert.Equal(t, layout.AlignRight, s.Date.Align)
	assert.Equal(t, text.Helvetica, s.Body.Font.Name)
	assert.Equal(t, 9.0, s.Body.Size)
	assert.Equal(t, float64(FooterSize), s.Footer.Size)
}

func TestNewSheetFollowsConfig(t *testing.T) {
	regular, bold, italic := text.TimesRoman, text.TimesBold, text.TimesItalic
	body := 11.0
	cfg, err := config.Build(config.Overrides{Fonts: &config.FontOverrides{
		Name: &regular, NameBold: &bold, NameItalic: &italic, BodySize: &body,
	}})
	require.NoError(t, err)

	s := NewSheet(cfg)
	assert.Equal(t, text.TimesBold, s.Name.Font.Name)
	assert.Equal(t, text.TimesItalic, s.ItemSubtitle.Font.Name)
	assert.Equal(t, text.TimesRoman, s.Body.Font.Name)
	assert.Equal(t, 11.0, s.Date.Size)
}

func TestStyleBlocks(t *testing.T) {
	s := Style{Font: text.MustLookup(text.Courier), Size: 8, Align: layout.AlignCenter}

	p := s.Paragraph("hello")
	assert.Equal(t, "hello", p.Text)
	assert.Equal(t, layout.AlignCenter, p.Align)
	assert.Equal(t, 8.0, p.Size)

	r := s.Run("2020")
	assert.Equal(t, &layout.Run{Text: "2020", Font: s.Font, Size: 8}, r)
}
