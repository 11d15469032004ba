package yaml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gompdf/gomresume/internal/model"
	"github.com/gompdf/gomresume/pkg/errors"
)

const fullDoc = `
personal:
  name: Ada Lovelace
  email: ada@example.com
  phone: "+44 20 0000"
  location:
    city: London
    country: UK
  links:
    github: github.com/ada
    linkedin: ""
    portfolio: ada.dev
summary:
  - First sentence.
  - Second sentence.
experience:
  - title: Analyst
    company: Babbage & Co
    start_date: 1842
    end_date: 2020
    present: true
    highlights:
      - Wrote the first program
education:
  - institution: Home
    degree: BSc
    field: Mathematics
    gpa: 4.0
skills:
  Languages: [Python, C++]
  Tools: Git
projects:
  - name: Engine notes
    technologies: [Ink, Paper]
languages:
  - name: English
    level: Native
  - French
config:
  margin: 0.5
  fonts:
    body_size: 10
  section_order: [skills, summary]
`

func TestParseBytes_Full(t *testing.T) {
	res, err := NewParser().ParseString(fullDoc)
	require.NoError(t, err)
	doc := res.Document

	assert.Equal(t, "Ada Lovelace", doc.Personal.Name)
	assert.Equal(t, "+44 20 0000", doc.Personal.Phone)
	assert.Equal(t, "London, UK", doc.Personal.Location.String())
	assert.Equal(t, []model.Link{
		{Label: "github", URL: "github.com/ada"},
		{Label: "linkedin", URL: ""},
		{Label: "portfolio", URL: "ada.dev"},
	}, doc.Personal.Links)
	assert.Equal(t, "First sentence. Second sentence.", doc.Summary)

	require.Len(t, doc.Experience, 1)
	exp := doc.Experience[0]
	assert.Equal(t, "Analyst", exp.Title)
	assert.Equal(t, model.DateRange{Start: "1842", End: "2020", Present: true}, exp.Dates)
	assert.Equal(t, []string{"Wrote the first program"}, exp.Highlights)

	require.Len(t, doc.Education, 1)
	assert.Equal(t, "4.0", doc.Education[0].GPA)

	assert.Equal(t, model.Skills{
		Shape: model.SkillsCategorized,
		Categories: []model.SkillCategory{
			{Name: "Languages", Items: []string{"Python", "C++"}},
			{Name: "Tools", Items: []string{"Git"}},
		},
	}, doc.Skills)

	assert.Equal(t, []string{"Ink", "Paper"}, doc.Projects[0].Technologies)

	assert.Equal(t, model.Languages{
		Shape: model.LanguagesList,
		Entries: []model.Language{
			{Name: "English", Level: "Native"},
			{Name: "French"},
		},
	}, doc.Languages)

	require.NotNil(t, res.Config.Margin)
	assert.Equal(t, 0.5, *res.Config.Margin)
	require.NotNil(t, res.Config.Fonts)
	require.NotNil(t, res.Config.Fonts.BodySize)
	assert.Equal(t, 10.0, *res.Config.Fonts.BodySize)
	assert.Nil(t, res.Config.Fonts.NameSize)
	assert.Equal(t, []string{"skills", "summary"}, res.Config.SectionOrder)
}

func TestParseBytes_NameOnly(t *testing.T) {
	res, err := NewParser().ParseString("personal:\n  name: Ada Lovelace\n")
	require.NoError(t, err)

	assert.Equal(t, model.Document{Personal: model.Personal{Name: "Ada Lovelace"}}, *res.Document)
	assert.Nil(t, res.Config.Margin)
	assert.Nil(t, res.Config.SectionOrder)
}

func TestParseBytes_SkillsShapes(t *testing.T) {
	res, err := NewParser().ParseString("personal: {name: A}\nskills: [Python, C++, Git]\n")
	require.NoError(t, err)
	assert.Equal(t, model.Skills{Shape: model.SkillsFlat, Flat: []string{"Python", "C++", "Git"}}, res.Document.Skills)

	res, err = NewParser().ParseString("personal: {name: A}\nskills:\n  Zeta: [z]\n  Alpha: [a]\n")
	require.NoError(t, err)
	require.Len(t, res.Document.Skills.Categories, 2)
	assert.Equal(t, "Zeta", res.Document.Skills.Categories[0].Name)
	assert.Equal(t, "Alpha", res.Document.Skills.Categories[1].Name)
}

func TestParseBytes_LanguagesMap(t *testing.T) {
	res, err := NewParser().ParseString("personal: {name: A}\nlanguages:\n  English: Native\n  German: B2\n")
	require.NoError(t, err)
	assert.Equal(t, model.Languages{
		Shape: model.LanguagesMap,
		Entries: []model.Language{
			{Name: "English", Level: "Native"},
			{Name: "German", Level: "B2"},
		},
	}, res.Document.Languages)
}

func TestParseBytes_LocationString(t *testing.T) {
	res, err := NewParser().ParseString("personal:\n  name: A\n  location: Remote\n")
	require.NoError(t, err)
	assert.Equal(t, "Remote", res.Document.Personal.Location.String())
}

func TestParseBytes_Aliases(t *testing.T) {
	doc := `
common: &hl [One, Two]
personal: {name: A}
experience:
  - title: T
    highlights: *hl
`
	res, err := NewParser().ParseString(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"One", "Two"}, res.Document.Experience[0].Highlights)
}

func TestParseBytes_SchemaErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		path string
	}{
		{"empty", "", ""},
		{"comments only", "# nothing\n", ""},
		{"scalar top level", "just text", ""},
		{"no personal", "summary: hi\n", "personal"},
		{"empty personal", "personal:\n", "personal.name"},
		{"blank name", "personal:\n  name: '  '\n", "personal.name"},
		{"experience without title", "personal: {name: A}\nexperience:\n  - company: X\n  - {}\n", "experience[0].title"},
		{"second record", "personal: {name: A}\nprojects:\n  - name: P\n  - date: 2020\n", "projects[1].name"},
		{"volunteer role", "personal: {name: A}\nvolunteer:\n  - organization: O\n", "volunteer[0].role"},
		{"language list name", "personal: {name: A}\nlanguages:\n  - level: Native\n", "languages[0].name"},
		{"experience not a list", "personal: {name: A}\nexperience: nope\n", "experience"},
		{"skills scalar", "personal: {name: A}\nskills: Go\n", "skills"},
		{"bad present", "personal: {name: A}\nexperience:\n  - title: T\n    present: maybe\n", "experience[0].present"},
		{"bad config value", "personal: {name: A}\nconfig:\n  margin: wide\n", "config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParser().ParseString(tt.doc)
			require.Error(t, err)

			var schemaErr *errors.SchemaError
			require.ErrorAs(t, err, &schemaErr)
			assert.Equal(t, tt.path, schemaErr.Path)
			assert.True(t, errors.Is(err, errors.ErrCodeSchema))
		})
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := NewParser().Parse(strings.NewReader("personal: [unclosed\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}
