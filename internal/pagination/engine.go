// Package pagination places formatted sections on pages.
//
// The Engine walks sections and blocks in order with a private cursor,
// wraps text through the text package and decides where page breaks fall.
// It never reorders content. Its only output is a flat list of PlacedLines
// (plus horizontal rules) in reading order.
package pagination

import (
	"github.com/gompdf/gomresume/internal/config"
	"github.com/gompdf/gomresume/internal/layout"
)

// Options represents options for the pagination engine
type Options struct {
	PageSize       config.PageSize
	Margins        config.Margins
	SectionSpacing float64
	ItemSpacing    float64
	// SectionOrder positions body sections; Header and Footer are pinned.
	SectionOrder []config.SectionKind
}

// OptionsFromConfig takes the geometry and ordering of cfg.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		PageSize:       cfg.PageSize,
		Margins:        cfg.Margins,
		SectionSpacing: cfg.SectionSpacing,
		ItemSpacing:    cfg.ItemSpacing,
		SectionOrder:   cfg.SectionOrder(),
	}
}

// Engine handles the pagination process
type Engine struct {
	options Options
}

// NewEngine creates a new pagination engine
func NewEngine(cfg config.Config) *Engine {
	return &Engine{options: OptionsFromConfig(cfg)}
}

// SetOptions sets the options for the pagination engine
func (e *Engine) SetOptions(options Options) {
	e.options = options
}

// Flow places sections on pages. Sections are taken in configured order:
// header first, body sections as listed in SectionOrder, footer last.
// Kinds the order does not name and sections without content are left out.
// Flow keeps no state between calls and is safe for concurrent use.
func (e *Engine) Flow(sections []layout.Section) *Result {
	p := newPaginator(e.options)
	ordered := e.order(sections)
	for i, s := range ordered {
		p.section(s, i == 0, i == len(ordered)-1)
	}
	return p.result()
}

func (e *Engine) order(sections []layout.Section) []layout.Section {
	byKind := make(map[config.SectionKind]layout.Section, len(sections))
	for _, s := range sections {
		if _, dup := byKind[s.Kind]; !dup {
			byKind[s.Kind] = s
		}
	}

	kinds := make([]config.SectionKind, 0, len(e.options.SectionOrder)+2)
	kinds = append(kinds, config.Header)
	kinds = append(kinds, e.options.SectionOrder...)
	kinds = append(kinds, config.Footer)

	seen := make(map[config.SectionKind]bool, len(kinds))
	out := make([]layout.Section, 0, len(kinds))
	for _, k := range kinds {
		s, ok := byKind[k]
		if !ok || seen[k] || s.Empty() {
			continue
		}
		seen[k] = true
		out = append(out, s)
	}
	return out
}
