package dashboard

import (
	"fmt"
	"slices"
)

type Registry struct {
	defs   []*Definition
	bySlug map[string]*Definition
}

func NewRegistry(defs ...*Definition) (*Registry, error) {
	r := &Registry{bySlug: make(map[string]*Definition, len(defs))}
	for _, def := range defs {
		if err := def.validate(); err != nil {
			return nil, err
		}
		if _, dup := r.bySlug[def.Slug]; dup {
			return nil, fmt.Errorf("duplicate page slug %q", def.Slug)
		}
		r.bySlug[def.Slug] = def
		r.defs = append(r.defs, def)
	}
	return r, nil
}

func (r *Registry) Get(slug string) (*Definition, error) {
	def, ok := r.bySlug[slug]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPageNotFound, slug)
	}
	return def, nil
}

func (r *Registry) All() []*Definition {
	return append([]*Definition(nil), r.defs...)
}

func (r *Registry) Summaries() []Summary {
	out := make([]Summary, 0, len(r.defs))
	for _, def := range r.defs {
		out = append(out, def.Summary())
	}
	return out
}

// Fixtures lists every fixture the registered pages load, once each.
func (r *Registry) Fixtures() []string {
	var out []string
	for _, def := range r.defs {
		for _, t := range def.Tables() {
			if !slices.Contains(out, t.Fixture) {
				out = append(out, t.Fixture)
			}
		}
	}
	return out
}
