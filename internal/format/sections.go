package format

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gompdf/gomresume/internal/layout"
	"github.com/gompdf/gomresume/internal/model"
)

func (f *Formatter) header(doc *model.Document) []layout.Block {
	p := doc.Personal
	var b blocks
	b.para(f.sheet.Name, p.Name)
	b.para(f.sheet.Contact, joinNonEmpty(Separator, p.Email, p.Phone, p.Location.String()))

	// A Caser keeps state between calls and must not be shared.
	caser := cases.Title(language.English)
	links := make([]string, 0, len(p.Links))
	for _, l := range p.Links {
		if l.URL == "" {
			continue
		}
		links = append(links, caser.String(l.Label)+": "+l.URL)
	}
	b.para(f.sheet.Contact, strings.Join(links, Separator))
	return b
}

func (f *Formatter) footer(*model.Document) []layout.Block {
	if !f.cfg.Footer || f.cfg.FooterText == "" {
		return nil
	}
	return []layout.Block{
		layout.Spacer{Height: FooterGap},
		f.sheet.Footer.Paragraph(f.cfg.FooterText),
	}
}

func (f *Formatter) summary(doc *model.Document) []layout.Block {
	var b blocks
	b.para(f.sheet.Body, doc.Summary)
	return b
}

func (f *Formatter) experience(doc *model.Document) []layout.Block {
	var b blocks
	for i, e := range doc.Experience {
		b.gap(f.cfg.ItemSpacing, i > 0)
		f.title(&b, e.Title, DateRange(e.Dates))
		if e.Company != "" {
			b.para(f.sheet.ItemSubtitle, joinNonEmpty(Separator, e.Company, e.Location))
		}
		f.description(&b, e.Description)
		f.bullets(&b, e.Highlights, true)
	}
	return b
}

func (f *Formatter) education(doc *model.Document) []layout.Block {
	var b blocks
	for i, e := range doc.Education {
		b.gap(f.cfg.ItemSpacing, i > 0)
		degree := e.Degree
		if e.Degree != "" && e.Field != "" {
			degree = e.Degree + " in " + e.Field
		} else if e.Field != "" {
			degree = e.Field
		}
		f.title(&b, degree, DateRange(e.Dates))
		b.para(f.sheet.ItemSubtitle, joinNonEmpty(Separator, e.Institution, e.Location))

		var gpa string
		if e.GPA != "" {
			gpa = "GPA: " + e.GPA
		}
		b.para(f.sheet.Body, joinNonEmpty(Separator, gpa, e.Honors))
		f.bullets(&b, e.Highlights, false)
	}
	return b
}

// skills renders one "Category: a, b" line per non-empty category, or a
// single comma-joined line for the flat shape.
func (f *Formatter) skills(doc *model.Document) []layout.Block {
	var b blocks
	s := doc.Skills
	switch s.Shape {
	case model.SkillsCategorized:
		for _, c := range s.Categories {
			items := nonBlank(c.Items)
			if len(items) == 0 {
				continue
			}
			b.para(f.sheet.Body, c.Name+": "+strings.Join(items, ", "))
		}
	case model.SkillsFlat:
		b.para(f.sheet.Body, strings.Join(nonBlank(s.Flat), ", "))
	}
	return b
}

func (f *Formatter) projects(doc *model.Document) []layout.Block {
	var b blocks
	for i, p := range doc.Projects {
		b.gap(f.cfg.ItemSpacing, i > 0)
		f.title(&b, p.Name, p.Date)
		if tech := nonBlank(p.Technologies); len(tech) > 0 {
			b.para(f.sheet.ItemSubtitle, "Technologies: "+strings.Join(tech, ", "))
		}
		f.description(&b, p.Description)
		f.bullets(&b, p.Highlights, true)
		if p.URL != "" {
			b.para(f.sheet.Body, "Link: "+p.URL)
		}
	}
	return b
}

func (f *Formatter) certifications(doc *model.Document) []layout.Block {
	var b blocks
	for i, c := range doc.Certifications {
		b.gap(EntryGap, i > 0)
		f.title(&b, c.Name, c.Date)
		b.para(f.sheet.ItemSubtitle, c.Issuer)
		if c.CredentialID != "" {
			b.para(f.sheet.Body, "Credential ID: "+c.CredentialID)
		}
	}
	return b
}

func (f *Formatter) awards(doc *model.Document) []layout.Block {
	var b blocks
	for i, a := range doc.Awards {
		b.gap(EntryGap, i > 0)
		f.title(&b, a.Name, a.Date)
		b.para(f.sheet.ItemSubtitle, a.Issuer)
		b.para(f.sheet.Body, a.Description)
	}
	return b
}

func (f *Formatter) publications(doc *model.Document) []layout.Block {
	var b blocks
	for i, p := range doc.Publications {
		b.gap(EntryGap, i > 0)
		f.title(&b, p.Title, "")
		b.para(f.sheet.Body, strings.Join(nonBlank(p.Authors), ", "))
		b.para(f.sheet.ItemSubtitle, joinNonEmpty(", ", p.Venue, p.Date))
		if p.DOI != "" {
			b.para(f.sheet.Body, "DOI: "+p.DOI)
		}
	}
	return b
}

// languages renders a mapping as one line and a list as bullets.
func (f *Formatter) languages(doc *model.Document) []layout.Block {
	var b blocks
	entries := make([]string, 0, len(doc.Languages.Entries))
	for _, l := range doc.Languages.Entries {
		if l.Name == "" {
			continue
		}
		if l.Level != "" {
			entries = append(entries, l.Name+" ("+l.Level+")")
		} else {
			entries = append(entries, l.Name)
		}
	}
	switch doc.Languages.Shape {
	case model.LanguagesMap:
		b.para(f.sheet.Body, strings.Join(entries, ", "))
	case model.LanguagesList:
		f.bullets(&b, entries, false)
	}
	return b
}

func (f *Formatter) volunteer(doc *model.Document) []layout.Block {
	var b blocks
	for i, v := range doc.Volunteer {
		b.gap(f.cfg.ItemSpacing, i > 0)
		f.title(&b, v.Role, DateRange(v.Dates))
		b.para(f.sheet.ItemSubtitle, v.Organization)
		f.description(&b, v.Description)
		f.bullets(&b, v.Highlights, true)
	}
	return b
}
