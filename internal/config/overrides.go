package config

// Overrides is a partial configuration as written by users. Nil fields are
// unspecified and keep whatever value is already in effect. The same struct
// decodes the document's config sub-document (YAML) and overlay files (TOML).
type Overrides struct {
	Margin         *float64         `yaml:"margin" toml:"margin"`
	Margins        *MarginOverrides `yaml:"margins" toml:"margins"`
	SectionSpacing *float64         `yaml:"section_spacing" toml:"section_spacing"`
	ItemSpacing    *float64         `yaml:"item_spacing" toml:"item_spacing"`
	PageSize       *string          `yaml:"page_size" toml:"page_size"`
	Fonts          *FontOverrides   `yaml:"fonts" toml:"fonts"`
	SectionOrder   []string         `yaml:"section_order" toml:"section_order"`
	Footer         *bool            `yaml:"footer" toml:"footer"`
	FooterText     *string          `yaml:"footer_text" toml:"footer_text"`
}

// MarginOverrides sets individual margins, in inches. They win over Margin.
type MarginOverrides struct {
	Top    *float64 `yaml:"top" toml:"top"`
	Right  *float64 `yaml:"right" toml:"right"`
	Bottom *float64 `yaml:"bottom" toml:"bottom"`
	Left   *float64 `yaml:"left" toml:"left"`
}

// FontOverrides mirrors the fonts table of the document config.
type FontOverrides struct {
	Name              *string  `yaml:"name" toml:"name"`
	NameBold          *string  `yaml:"name_bold" toml:"name_bold"`
	NameItalic        *string  `yaml:"name_italic" toml:"name_italic"`
	NameSize          *float64 `yaml:"name_size" toml:"name_size"`
	SectionHeaderSize *float64 `yaml:"section_header_size" toml:"section_header_size"`
	TitleSize         *float64 `yaml:"title_size" toml:"title_size"`
	BodySize          *float64 `yaml:"body_size" toml:"body_size"`
}

func (o Overrides) apply(s *settings) {
	if o.Margin != nil {
		s.margins = [4]float64{*o.Margin, *o.Margin, *o.Margin, *o.Margin}
	}
	if m := o.Margins; m != nil {
		for i, v := range []*float64{m.Top, m.Right, m.Bottom, m.Left} {
			if v != nil {
				s.margins[i] = *v
			}
		}
	}
	setFloat(&s.sectionSpacing, o.SectionSpacing)
	setFloat(&s.itemSpacing, o.ItemSpacing)
	setString(&s.pageSize, o.PageSize)
	if f := o.Fonts; f != nil {
		setString(&s.fontRegular, f.Name)
		setString(&s.fontBold, f.NameBold)
		setString(&s.fontItalic, f.NameItalic)
		setFloat(&s.nameSize, f.NameSize)
		setFloat(&s.headerSize, f.SectionHeaderSize)
		setFloat(&s.titleSize, f.TitleSize)
		setFloat(&s.bodySize, f.BodySize)
	}
	if o.SectionOrder != nil {
		s.sectionOrder = append([]string(nil), o.SectionOrder...)
	}
	if o.Footer != nil {
		s.footer = *o.Footer
	}
	setString(&s.footerText, o.FooterText)
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
