package pipeline

import (
	"fmt"

	"cin-generator/internal/cinmap"
	"cin-generator/internal/diagnostic"
	"cin-generator/internal/dict"
)

// Pipeline runs the enabled passes over one dictionary source.
type Pipeline struct {
	config Config
	passes []PassKind
}

// New assembles a pipeline from the passes enabled in cfg.
func New(cfg Config) *Pipeline {
	p := &Pipeline{config: cfg}

	for _, kind := range Order {
		if cfg.Enabled(kind) {
			p.passes = append(p.passes, kind)
		}
	}

	return p
}

// Passes returns the passes the pipeline runs, in order.
func (p *Pipeline) Passes() []PassKind {
	return append([]PassKind(nil), p.passes...)
}

// Run filters rows and threads a fresh map through every enabled pass,
// returning the source map and the diagnostics raised along the way.
func (p *Pipeline) Run(source string, rows []dict.Row) (cinmap.Map, diagnostic.Diagnostics) {
	env := Env{Source: source, Config: p.config}
	filtered := dict.Filter(rows)

	m := cinmap.New()

	var diags diagnostic.Diagnostics

	if dropped := len(rows) - len(filtered); dropped > 0 {
		diags.AddInfo(diagnostic.CodeRowsWithoutInput,
			fmt.Sprintf("%d rows without input skipped", dropped), source, 0)
	}

	rows = filtered

	for _, kind := range p.passes {
		pass, _ := Func(kind)

		var d diagnostic.Diagnostics

		m, d = pass(env, rows, m)
		diags.Merge(d)
	}

	return m, diags
}
