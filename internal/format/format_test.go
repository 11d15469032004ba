package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gompdf/gomresume/internal/config"
	"github.com/gompdf/gomresume/internal/layout"
	"github.com/gompdf/gomresume/internal/model"
)

func paragraphs(blocks []layout.Block) []string {
	var out []string
	for _, b := range blocks {
		if p, ok := b.(layout.Paragraph); ok {
			out = append(out, p.Text)
		}
	}
	return out
}

func kinds(sections []layout.Section) []config.SectionKind {
	out := make([]config.SectionKind, len(sections))
	for i, s := range sections {
		out[i] = s.Kind
	}
	return out
}

func TestDateRange(t *testing.T) {
	tests := []struct {
		name string
		in   model.DateRange
		want string
	}{
		{"closed", model.DateRange{Start: "2019", End: "2021"}, "2019 – 2021"},
		{"present flag wins", model.DateRange{Start: "2019", End: "2020", Present: true}, "2019 – Present"},
		{"present literal", model.DateRange{Start: "2019", End: "PRESENT"}, "2019 – Present"},
		{"open", model.DateRange{Start: "2019"}, "2019"},
		{"no start", model.DateRange{End: "2020", Present: true}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DateRange(tt.in))
		})
	}
}

func TestFormat_NameOnly(t *testing.T) {
	doc := &model.Document{Personal: model.Personal{Name: "Ada Lovelace"}}
	sections := New(config.Default()).Format(doc)

	require.Len(t, sections, 1)
	assert.Equal(t, config.Header, sections[0].Kind)
	assert.Equal(t, []string{"Ada Lovelace"}, paragraphs(sections[0].Blocks))
}

func TestFormat_Header(t *testing.T) {
	doc := &model.Document{Personal: model.Personal{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Location: model.Location{City: "London", Country: "UK"},
		Links: []model.Link{
			{Label: "github", URL: "github.com/ada"},
			{Label: "twitter", URL: ""},
			{Label: "portfolio", URL: "ada.dev"},
		},
	}}
	s := New(config.Default()).Section(config.Header, doc)

	assert.Equal(t, []string{
		"Ada Lovelace",
		"ada@example.com • London, UK",
		"Github: github.com/ada • Portfolio: ada.dev",
	}, paragraphs(s.Blocks))

	name := s.Blocks[0].(layout.Paragraph)
	assert.Equal(t, layout.AlignCenter, name.Align)
	assert.Equal(t, 20.0, name.Size)
	assert.Equal(t, "Helvetica-Bold", name.Font.Name)
}

func TestFormat_SkillsMapping(t *testing.T) {
	doc := &model.Document{Skills: model.Skills{
		Shape: model.SkillsCategorized,
		Categories: []model.SkillCategory{
			{Name: "Languages", Items: []string{"Python", "C++"}},
			{Name: "Empty"},
			{Name: "Tools", Items: []string{"Git"}},
		},
	}}
	s := New(config.Default()).Section(config.Skills, doc)

	require.NotEmpty(t, s.Blocks)
	h, ok := s.Blocks[0].(layout.Heading)
	require.True(t, ok)
	assert.Equal(t, "SKILLS", h.Text)
	assert.True(t, h.Rule)
	assert.Equal(t, []string{"Languages: Python, C++", "Tools: Git"}, paragraphs(s.Blocks))
}

func TestFormat_SkillsFlat(t *testing.T) {
	doc := &model.Document{Skills: model.Skills{Shape: model.SkillsFlat, Flat: []string{"Python", "C++", "Git"}}}
	s := New(config.Default()).Section(config.Skills, doc)
	assert.Equal(t, []string{"Python, C++, Git"}, paragraphs(s.Blocks))
}

func TestFormat_ExperiencePresent(t *testing.T) {
	doc := &model.Document{Experience: []model.Experience{{
		Title:      "Engineer",
		Company:    "Acme",
		Location:   "Remote",
		Dates:      model.DateRange{Start: "2018", End: "2020", Present: true},
		Highlights: []string{"Shipped", "  ", "Scaled"},
	}}}
	s := New(config.Default()).Section(config.Experience, doc)

	var item layout.Heading
	var list layout.BulletList
	for _, b := range s.Blocks {
		switch v := b.(type) {
		case layout.Heading:
			if v.Level == 2 {
				item = v
			}
		case layout.BulletList:
			list = v
		}
	}
	assert.Equal(t, "Engineer", item.Text)
	require.NotNil(t, item.Aside)
	assert.Equal(t, "2018 – Present", item.Aside.Text)
	assert.Equal(t, []string{"Acme • Remote"}, paragraphs(s.Blocks))
	assert.Equal(t, []string{"Shipped", "Scaled"}, list.Items)
	assert.Equal(t, layout.DefaultGlyph, list.Glyph)
}

func TestFormat_EmptyListsProduceNoBlocks(t *testing.T) {
	doc := &model.Document{Projects: []model.Project{{Name: "Tool", Highlights: []string{}}}}
	s := New(config.Default()).Section(config.Projects, doc)
	for _, b := range s.Blocks {
		_, isList := b.(layout.BulletList)
		assert.False(t, isList)
	}
	assert.Empty(t, paragraphs(s.Blocks))

	pubs := &model.Document{Publications: []model.Publication{{Title: "Notes"}}}
	s = New(config.Default()).Section(config.Publications, pubs)
	assert.Empty(t, paragraphs(s.Blocks))
}

func TestFormat_EmptySectionsSkipped(t *testing.T) {
	doc := &model.Document{
		Personal:   model.Personal{Name: "A"},
		Experience: []model.Experience{},
		Skills:     model.Skills{Shape: model.SkillsFlat},
		Summary:    "Hello.",
	}
	sections := New(config.Default()).Format(doc)
	assert.Equal(t, []config.SectionKind{config.Header, config.Summary}, kinds(sections))
}

func TestFormat_Order(t *testing.T) {
	cfg, err := config.Build(config.Overrides{SectionOrder: []string{"skills", "skills", "summary"}})
	require.NoError(t, err)

	doc := &model.Document{
		Personal: model.Personal{Name: "A"},
		Summary:  "Hello.",
		Skills:   model.Skills{Shape: model.SkillsFlat, Flat: []string{"Go"}},
	}
	sections := New(cfg).Format(doc)
	assert.Equal(t, []config.SectionKind{config.Header, config.Skills, config.Summary}, kinds(sections))
}

func TestFormat_Footer(t *testing.T) {
	footer := true
	cfg, err := config.Build(config.Overrides{Footer: &footer})
	require.NoError(t, err)

	sections := New(cfg).Format(&model.Document{Personal: model.Personal{Name: "A"}})
	require.Len(t, sections, 2)
	last := sections[1]
	assert.Equal(t, config.Footer, last.Kind)
	assert.Equal(t, []string{config.DefaultFooterText}, paragraphs(last.Blocks))
	assert.Equal(t, layout.Spacer{Height: FooterGap}, last.Blocks[0])
}

func TestFormat_Languages(t *testing.T) {
	f := New(config.Default())

	mapped := &model.Document{Languages: model.Languages{
		Shape:   model.LanguagesMap,
		Entries: []model.Language{{Name: "English", Level: "Native"}, {Name: "German", Level: "B2"}},
	}}
	assert.Equal(t, []string{"English (Native), German (B2)"}, paragraphs(f.Section(config.Languages, mapped).Blocks))

	listed := &model.Document{Languages: model.Languages{
		Shape:   model.LanguagesList,
		Entries: []model.Language{{Name: "English", Level: "Native"}, {Name: "French"}},
	}}
	blocks := f.Section(config.Languages, listed).Blocks
	require.Len(t, blocks, 2)
	assert.Equal(t, []string{"English (Native)", "French"}, blocks[1].(layout.BulletList).Items)
}

func TestFormat_Education(t *testing.T) {
	doc := &model.Document{Education: []model.Education{{
		Institution: "MIT",
		Degree:      "BSc",
		Field:       "Physics",
		GPA:         "3.9",
		Honors:      "Cum Laude",
	}}}
	s := New(config.Default()).Section(config.Education, doc)
	require.Len(t, s.Blocks, 4)
	assert.Equal(t, "BSc in Physics", s.Blocks[1].(layout.Heading).Text)
	assert.Nil(t, s.Blocks[1].(layout.Heading).Aside)
	assert.Equal(t, []string{"MIT", "GPA: 3.9 • Cum Laude"}, paragraphs(s.Blocks))
}
