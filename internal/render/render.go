// Package render defines the rendering back end contract: turn a flowed
// result into one output artifact.
package render

import (
	"io"

	"github.com/gompdf/gomresume/internal/pagination"
)

// Renderer writes a flowed result to w. Implementations finalize one page
// per page of the result, numbered from 1.
type Renderer interface {
	Render(w io.Writer, res *pagination.Result, meta Metadata) error
	// Extension is the output file extension without the dot.
	Extension() string
}

// Metadata is document-level information carried into the artifact.
type Metadata struct {
	Title   string
	Author  string
	Subject string
	Creator string
}

// Pages splits the result into per-page line and rule lists, in order.
func Pages(res *pagination.Result) ([][]pagination.PlacedLine, [][]pagination.Rule) {
	lines := make([][]pagination.PlacedLine, res.PageCount)
	rules := make([][]pagination.Rule, res.PageCount)
	for _, l := range res.Lines {
		if l.Page >= 0 && l.Page < res.PageCount {
			lines[l.Page] = append(lines[l.Page], l)
		}
	}
	for _, r := range res.Rules {
		if r.Page >= 0 && r.Page < res.PageCount {
			rules[r.Page] = append(rules[r.Page], r)
		}
	}
	return lines, rules
}
