// Package model is the in-memory record set produced by the document parser
// and consumed by the section formatters.
//
// Fields that accept more than one shape in the source document (skills,
// languages, location) are tagged unions resolved once at parse time.
package model

import "strings"

// Document is one parsed resume.
type Document struct {
	Personal       Personal
	Summary        string
	Experience     []Experience
	Education      []Education
	Skills         Skills
	Projects       []Project
	Certifications []Certification
	Awards         []Award
	Publications   []Publication
	Languages      Languages
	Volunteer      []Volunteer
}

// Personal is the header block. Name is always non-empty.
type Personal struct {
	Name     string
	Email    string
	Phone    string
	Location Location
	Links    []Link
}

// Link is one entry of personal.links, in document order.
type Link struct {
	Label string
	URL   string
}

// Location is either free text or a city/state/country triple.
type Location struct {
	Text    string
	City    string
	State   string
	Country string
}

// String joins the structured parts with ", " or returns the free text.
func (l Location) String() string {
	if l.Text != "" {
		return l.Text
	}
	var parts []string
	for _, p := range []string{l.City, l.State, l.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// DateRange is shared by records that span time.
type DateRange struct {
	Start   string
	End     string
	Present bool
}

type Experience struct {
	Title       string
	Company     string
	Location    string
	Dates       DateRange
	Description string
	Highlights  []string
}

type Education struct {
	Degree      string
	Field       string
	Institution string
	Location    string
	Dates       DateRange
	GPA         string
	Honors      string
	Highlights  []string
}

type Project struct {
	Name         string
	Date         string
	Technologies []string
	Description  string
	Highlights   []string
	URL          string
}

type Certification struct {
	Name         string
	Issuer       string
	Date         string
	CredentialID string
}

type Award struct {
	Name        string
	Issuer      string
	Date        string
	Description string
}

type Publication struct {
	Title   string
	Authors []string
	Venue   string
	Date    string
	DOI     string
}

type Volunteer struct {
	Role         string
	Organization string
	Dates        DateRange
	Description  string
	Highlights   []string
}

// SkillsShape tells which variant of Skills is populated.
type SkillsShape int

const (
	SkillsNone SkillsShape = iota
	SkillsCategorized
	SkillsFlat
)

// SkillCategory is one "Category: a, b" line.
type SkillCategory struct {
	Name  string
	Items []string
}

// Skills is a mapping of category to items (insertion order kept) or a
// flat list.
type Skills struct {
	Shape      SkillsShape
	Categories []SkillCategory
	Flat       []string
}

// LanguagesShape tells which variant of Languages is populated.
type LanguagesShape int

const (
	LanguagesNone LanguagesShape = iota
	LanguagesMap
	LanguagesList
)

// Language is a spoken language and an optional proficiency level.
type Language struct {
	Name  string
	Level string
}

// Languages keeps the entries in document order; Shape records whether they
// came from a mapping or a list since the two render differently.
type Languages struct {
	Shape   LanguagesShape
	Entries []Language
}
