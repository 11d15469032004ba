// Package yaml parses resume documents into the model record set.
//
// The document is decoded into a yaml.Node tree first so that fields which
// accept several shapes (skills, languages, location, summary) are told apart
// by node kind exactly once, here. Downstream code only sees tagged unions.
package yaml

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gompdf/gomresume/internal/config"
	"github.com/gompdf/gomresume/internal/model"
	"github.com/gompdf/gomresume/pkg/errors"
)

// Parser represents a resume document parser
type Parser struct{}

// Result is a parsed document plus its config sub-document.
type Result struct {
	Document *model.Document
	Config   config.Overrides
}

// NewParser creates a new document parser
func NewParser() *Parser {
	return &Parser{}
}

// ParseString parses a document from a string
func (p *Parser) ParseString(content string) (*Result, error) {
	return p.ParseBytes([]byte(content))
}

// Parse parses a document from an io.Reader
func (p *Parser) Parse(r io.Reader) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to read document")
	}
	return p.ParseBytes(data)
}

// ParseBytes parses a document. Missing required fields are reported as
// *errors.SchemaError carrying the offending field path.
func (p *Parser) ParseBytes(data []byte) (*Result, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.NewSchemaError("", "document is empty")
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid YAML")
	}
	top := deref(&root)
	if top.Kind == yaml.DocumentNode && len(top.Content) > 0 {
		top = deref(top.Content[0])
	}
	if isNull(top) {
		return nil, errors.NewSchemaError("", "document is empty")
	}
	if top.Kind != yaml.MappingNode {
		return nil, errors.NewSchemaError("", "top level must be a mapping")
	}

	d := &decoder{}
	res := &Result{Document: &model.Document{}}
	fields := d.fields(top, "")
	if d.err != nil {
		return nil, d.err
	}

	personal, ok := fields["personal"]
	if !ok {
		return nil, errors.NewSchemaError("personal", "missing required section")
	}
	doc := res.Document
	doc.Personal = d.personal(personal, "personal")
	doc.Summary = d.summary(fields["summary"], "summary")
	doc.Experience = decodeList(d, fields["experience"], "experience", d.experience)
	doc.Education = decodeList(d, fields["education"], "education", d.education)
	doc.Skills = d.skills(fields["skills"], "skills")
	doc.Projects = decodeList(d, fields["projects"], "projects", d.project)
	doc.Certifications = decodeList(d, fields["certifications"], "certifications", d.certification)
	doc.Awards = decodeList(d, fields["awards"], "awards", d.award)
	doc.Publications = decodeList(d, fields["publications"], "publications", d.publication)
	doc.Languages = d.languages(fields["languages"], "languages")
	doc.Volunteer = decodeList(d, fields["volunteer"], "volunteer", d.volunteer)
	res.Config = d.config(fields["config"], "config")

	if d.err != nil {
		return nil, d.err
	}
	return res, nil
}

// decoder walks the node tree and keeps the first error it meets, so the
// per-section functions stay free of error plumbing.
type decoder struct {
	err error
}

func (d *decoder) fail(path, format string, args ...any) {
	if d.err == nil {
		d.err = errors.NewSchemaError(path, format, args...)
	}
}

func deref(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.Tag == "!!null") || n.Kind == 0
}

func index(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// fields returns the key/value pairs of a mapping node. Later duplicates win.
func (d *decoder) fields(n *yaml.Node, path string) map[string]*yaml.Node {
	n = deref(n)
	if isNull(n) {
		return nil
	}
	if n.Kind != yaml.MappingNode {
		d.fail(path, "expected a mapping")
		return nil
	}
	out := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		out[n.Content[i].Value] = deref(n.Content[i+1])
	}
	return out
}

// pairs is like fields but keeps document order.
func (d *decoder) pairs(n *yaml.Node) [][2]*yaml.Node {
	n = deref(n)
	var out [][2]*yaml.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		out = append(out, [2]*yaml.Node{n.Content[i], deref(n.Content[i+1])})
	}
	return out
}

func (d *decoder) scalar(n *yaml.Node, path string) string {
	n = deref(n)
	if isNull(n) {
		return ""
	}
	if n.Kind != yaml.ScalarNode {
		d.fail(path, "expected a scalar value")
		return ""
	}
	return strings.TrimSpace(n.Value)
}

func (d *decoder) boolean(n *yaml.Node, path string) bool {
	n = deref(n)
	if isNull(n) {
		return false
	}
	var b bool
	if err := n.Decode(&b); err != nil {
		d.fail(path, "expected true or false")
	}
	return b
}

// stringList accepts a sequence of scalars or a single scalar.
func (d *decoder) stringList(n *yaml.Node, path string) []string {
	n = deref(n)
	switch {
	case isNull(n):
		return nil
	case n.Kind == yaml.ScalarNode:
		if v := strings.TrimSpace(n.Value); v != "" {
			return []string{v}
		}
		return nil
	case n.Kind == yaml.SequenceNode:
		out := make([]string, 0, len(n.Content))
		for i, item := range n.Content {
			out = append(out, d.scalar(item, index(path, i)))
		}
		return out
	default:
		d.fail(path, "expected a list of strings")
		return nil
	}
}

func (d *decoder) required(f map[string]*yaml.Node, key, path string) string {
	v := d.scalar(f[key], join(path, key))
	if v == "" {
		d.fail(join(path, key), "missing required field")
	}
	return v
}

func (d *decoder) dates(f map[string]*yaml.Node, path string) model.DateRange {
	return model.DateRange{
		Start:   d.scalar(f["start_date"], join(path, "start_date")),
		End:     d.scalar(f["end_date"], join(path, "end_date")),
		Present: d.boolean(f["present"], join(path, "present")),
	}
}

// decodeList decodes a sequence of records with one element decoder.
func decodeList[T any](d *decoder, n *yaml.Node, path string, elem func(map[string]*yaml.Node, string) T) []T {
	n = deref(n)
	if isNull(n) {
		return nil
	}
	if n.Kind != yaml.SequenceNode {
		d.fail(path, "expected a list")
		return nil
	}
	out := make([]T, 0, len(n.Content))
	for i, item := range n.Content {
		p := index(path, i)
		f := d.fields(item, p)
		if f == nil && d.err == nil {
			d.fail(p, "expected a mapping")
		}
		if d.err != nil {
			return nil
		}
		out = append(out, elem(f, p))
	}
	return out
}

func (d *decoder) personal(n *yaml.Node, path string) model.Personal {
	f := d.fields(n, path)
	if d.err != nil {
		return model.Personal{}
	}
	if f == nil {
		d.fail(join(path, "name"), "missing required field")
		return model.Personal{}
	}
	p := model.Personal{
		Name:  d.required(f, "name", path),
		Email: d.scalar(f["email"], join(path, "email")),
		Phone: d.scalar(f["phone"], join(path, "phone")),
	}

	if loc := f["location"]; !isNull(loc) {
		lp := join(path, "location")
		if loc.Kind == yaml.MappingNode {
			lf := d.fields(loc, lp)
			p.Location = model.Location{
				City:    d.scalar(lf["city"], join(lp, "city")),
				State:   d.scalar(lf["state"], join(lp, "state")),
				Country: d.scalar(lf["country"], join(lp, "country")),
			}
		} else {
			p.Location = model.Location{Text: d.scalar(loc, lp)}
		}
	}

	if links := f["links"]; !isNull(links) {
		lp := join(path, "links")
		if links.Kind != yaml.MappingNode {
			d.fail(lp, "expected a mapping of label to URL")
			return p
		}
		for _, kv := range d.pairs(links) {
			p.Links = append(p.Links, model.Link{
				Label: kv[0].Value,
				URL:   d.scalar(kv[1], join(lp, kv[0].Value)),
			})
		}
	}
	return p
}

func (d *decoder) summary(n *yaml.Node, path string) string {
	n = deref(n)
	if isNull(n) {
		return ""
	}
	switch n.Kind {
	case yaml.ScalarNode:
		return strings.TrimSpace(n.Value)
	case yaml.SequenceNode:
		return strings.Join(d.stringList(n, path), " ")
	default:
		d.fail(path, "expected a string or a list of strings")
		return ""
	}
}

func (d *decoder) experience(f map[string]*yaml.Node, path string) model.Experience {
	return model.Experience{
		Title:       d.required(f, "title", path),
		Company:     d.scalar(f["company"], join(path, "company")),
		Location:    d.scalar(f["location"], join(path, "location")),
		Dates:       d.dates(f, path),
		Description: d.scalar(f["description"], join(path, "description")),
		Highlights:  d.stringList(f["highlights"], join(path, "highlights")),
	}
}

func (d *decoder) education(f map[string]*yaml.Node, path string) model.Education {
	return model.Education{
		Degree:      d.scalar(f["degree"], join(path, "degree")),
		Field:       d.scalar(f["field"], join(path, "field")),
		Institution: d.required(f, "institution", path),
		Location:    d.scalar(f["location"], join(path, "location")),
		Dates:       d.dates(f, path),
		GPA:         d.scalar(f["gpa"], join(path, "gpa")),
		Honors:      d.scalar(f["honors"], join(path, "honors")),
		Highlights:  d.stringList(f["highlights"], join(path, "highlights")),
	}
}

func (d *decoder) project(f map[string]*yaml.Node, path string) model.Project {
	return model.Project{
		Name:         d.required(f, "name", path),
		Date:         d.scalar(f["date"], join(path, "date")),
		Technologies: d.stringList(f["technologies"], join(path, "technologies")),
		Description:  d.scalar(f["description"], join(path, "description")),
		Highlights:   d.stringList(f["highlights"], join(path, "highlights")),
		URL:          d.scalar(f["url"], join(path, "url")),
	}
}

func (d *decoder) certification(f map[string]*yaml.Node, path string) model.Certification {
	return model.Certification{
		Name:         d.required(f, "name", path),
		Issuer:       d.scalar(f["issuer"], join(path, "issuer")),
		Date:         d.scalar(f["date"], join(path, "date")),
		CredentialID: d.scalar(f["credential_id"], join(path, "credential_id")),
	}
}

func (d *decoder) award(f map[string]*yaml.Node, path string) model.Award {
	return model.Award{
		Name:        d.required(f, "name", path),
		Issuer:      d.scalar(f["issuer"], join(path, "issuer")),
		Date:        d.scalar(f["date"], join(path, "date")),
		Description: d.scalar(f["description"], join(path, "description")),
	}
}

func (d *decoder) publication(f map[string]*yaml.Node, path string) model.Publication {
	return model.Publication{
		Title:   d.required(f, "title", path),
		Authors: d.stringList(f["authors"], join(path, "authors")),
		Venue:   d.scalar(f["venue"], join(path, "venue")),
		Date:    d.scalar(f["date"], join(path, "date")),
		DOI:     d.scalar(f["doi"], join(path, "doi")),
	}
}

func (d *decoder) volunteer(f map[string]*yaml.Node, path string) model.Volunteer {
	return model.Volunteer{
		Role:         d.required(f, "role", path),
		Organization: d.scalar(f["organization"], join(path, "organization")),
		Dates:        d.dates(f, path),
		Description:  d.scalar(f["description"], join(path, "description")),
		Highlights:   d.stringList(f["highlights"], join(path, "highlights")),
	}
}

// skills detects the shape from the node kind: a mapping is categorized,
// a sequence is flat.
func (d *decoder) skills(n *yaml.Node, path string) model.Skills {
	n = deref(n)
	switch {
	case isNull(n):
		return model.Skills{}
	case n.Kind == yaml.MappingNode:
		s := model.Skills{Shape: model.SkillsCategorized}
		for _, kv := range d.pairs(n) {
			s.Categories = append(s.Categories, model.SkillCategory{
				Name:  kv[0].Value,
				Items: d.stringList(kv[1], join(path, kv[0].Value)),
			})
		}
		return s
	case n.Kind == yaml.SequenceNode:
		return model.Skills{Shape: model.SkillsFlat, Flat: d.stringList(n, path)}
	default:
		d.fail(path, "expected a mapping of categories or a list of skills")
		return model.Skills{}
	}
}

// languages detects the shape the same way as skills. List items may be
// {name, level} mappings or plain strings.
func (d *decoder) languages(n *yaml.Node, path string) model.Languages {
	n = deref(n)
	switch {
	case isNull(n):
		return model.Languages{}
	case n.Kind == yaml.MappingNode:
		l := model.Languages{Shape: model.LanguagesMap}
		for _, kv := range d.pairs(n) {
			l.Entries = append(l.Entries, model.Language{
				Name:  kv[0].Value,
				Level: d.scalar(kv[1], join(path, kv[0].Value)),
			})
		}
		return l
	case n.Kind == yaml.SequenceNode:
		l := model.Languages{Shape: model.LanguagesList}
		for i, item := range n.Content {
			p := index(path, i)
			item = deref(item)
			if item.Kind == yaml.MappingNode {
				f := d.fields(item, p)
				l.Entries = append(l.Entries, model.Language{
					Name:  d.required(f, "name", p),
					Level: d.scalar(f["level"], join(p, "level")),
				})
				continue
			}
			if name := d.scalar(item, p); name != "" {
				l.Entries = append(l.Entries, model.Language{Name: name})
			}
		}
		return l
	default:
		d.fail(path, "expected a mapping of language to level or a list")
		return model.Languages{}
	}
}

func (d *decoder) config(n *yaml.Node, path string) config.Overrides {
	var o config.Overrides
	n = deref(n)
	if isNull(n) {
		return o
	}
	if n.Kind != yaml.MappingNode {
		d.fail(path, "expected a mapping")
		return o
	}
	if err := n.Decode(&o); err != nil {
		d.fail(path, "%v", err)
	}
	return o
}
